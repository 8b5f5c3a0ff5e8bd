package render

import (
	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/result"
)

// skeleton chains drawn for a body, each a list of keypoint part names.
// Missing parts are skipped which shortens the chain.
var (
	shoulderChain = []string{"leftShoulder", "rightShoulder"}
	torsoChain    = []string{"rightShoulder", "rightHip", "leftHip", "leftShoulder"}
	limbChains    = [][]string{
		{"leftHip", "leftKnee", "leftAnkle", "leftHeel", "leftFoot"},
		{"rightHip", "rightKnee", "rightAnkle", "rightHeel", "rightFoot"},
		{"leftShoulder", "leftElbow", "leftWrist", "leftPalm"},
		{"rightShoulder", "rightElbow", "rightWrist", "rightPalm"},
	}
)

// Body annotates detected bodies with their box and score, keypoints with
// their part labels and the skeleton
func Body(surface canvas.Surface, bodies []result.Body, style Style) {

	defer recoverDraw("body")

	ctx := contextOf(surface)

	if ctx == nil || len(bodies) == 0 {
		return
	}

	ctx.SetLineJoin(canvas.JoinRound)

	for i := range bodies {
		drawBody(ctx, &bodies[i], style)
	}
}

func drawBody(ctx canvas.Context, b *result.Body, style Style) {

	ctx.SetStrokeColor(style.Color)
	ctx.SetFillColor(style.Color)
	ctx.SetLineWidth(style.LineWidth)
	ctx.SetFont(style.Font)

	if style.DrawBoxes {
		drawBox(ctx, b.Box, style)

		if style.DrawLabels {
			drawBoxLabel(ctx, style, "body "+percent(b.Score), b.Box)
		}
	}

	if style.DrawPoints {
		for _, kp := range b.Keypoints {
			DrawPoint(ctx, kp.Position.X, kp.Position.Y, kp.Position.Z, style)
		}
	}

	if style.DrawLabels {
		for _, kp := range b.Keypoints {
			ctx.SetFillColor(style.tint(kp.Position.Z, labelAlpha))
			ctx.FillText(kp.Part+" "+percent(kp.Score), kp.Position.X+4, kp.Position.Y+4, 0)
		}
	}

	if !style.DrawPolygons || len(b.Keypoints) == 0 {
		return
	}

	DrawCurves(ctx, chain(b, shoulderChain), style)

	// the torso is only drawn when all four corners are known
	if torso := chain(b, torsoChain); len(torso) == len(torsoChain) {
		DrawLines(ctx, torso, style)
	}

	for _, parts := range limbChains {
		DrawCurves(ctx, chain(b, parts), style)
	}
}

// chain looks up the named parts in order returning the 2D positions of
// those present
func chain(b *result.Body, parts []string) []result.Point {

	pts := make([]result.Point, 0, len(parts))

	for _, part := range parts {
		if kp, ok := b.Keypoint(part); ok {
			pts = append(pts, result.Pt(kp.Position.X, kp.Position.Y))
		}
	}

	return pts
}
