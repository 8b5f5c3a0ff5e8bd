package render

import (
	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/result"
)

// handLabels pairs annotation groups with the label drawn at their tip
var handLabels = []struct {
	group string
	title string
}{
	{result.IndexFinger, "index"},
	{result.MiddleFinger, "middle"},
	{result.RingFinger, "ring"},
	{result.Pinky, "pinky"},
	{result.Thumb, "thumb"},
	{result.PalmBase, "palm"},
}

// fingers are the annotation groups drawn as connected chains
var fingers = []string{
	result.IndexFinger,
	result.MiddleFinger,
	result.RingFinger,
	result.Pinky,
	result.Thumb,
}

// Hand annotates detected hands with their box, landmarks, finger labels
// and finger chains
func Hand(surface canvas.Surface, hands []result.Hand, style Style) {

	defer recoverDraw("hand")

	ctx := contextOf(surface)

	if ctx == nil || len(hands) == 0 {
		return
	}

	ctx.SetLineJoin(canvas.JoinRound)
	ctx.SetFont(style.Font)

	for i := range hands {
		drawHand(ctx, &hands[i], style)
	}
}

func drawHand(ctx canvas.Context, h *result.Hand, style Style) {

	if style.DrawBoxes {
		ctx.SetStrokeColor(style.Color)
		ctx.SetFillColor(style.Color)
		drawBox(ctx, h.Box, style)

		if style.DrawLabels {
			drawBoxLabel(ctx, style, "hand", h.Box)
		}

		ctx.Stroke()
	}

	if style.DrawPoints {
		for _, pt := range h.Landmarks {
			DrawPoint(ctx, pt.X, pt.Y, pt.Z, style)
		}
	}

	if style.DrawLabels {
		ctx.SetFont(style.Font)

		for _, l := range handLabels {
			pts := h.Annotations[l.group]

			if len(pts) == 0 {
				continue
			}

			tip := pts[len(pts)-1]

			ctx.SetFillColor(style.tint(tip.Z, labelAlpha))
			ctx.FillText(l.title, tip.X+4, tip.Y+4, 0)
		}
	}

	if style.DrawPolygons {
		ctx.SetLineWidth(style.LineWidth)

		for _, group := range fingers {
			drawFinger(ctx, h.Annotations[group], style)
		}
	}
}

// drawFinger strokes each segment of a finger separately, colored by the
// depth of the point it ends at.  The first segment starts and ends on the
// first point.
func drawFinger(ctx canvas.Context, pts []result.Point, style Style) {

	for i, pt := range pts {
		from := pts[0]

		if i > 0 {
			from = pts[i-1]
		}

		ctx.BeginPath()
		ctx.SetStrokeColor(style.tint(pt.Z, labelAlpha))
		ctx.MoveTo(from.X, from.Y)
		ctx.LineTo(pt.X, pt.Y)
		ctx.Stroke()
	}
}
