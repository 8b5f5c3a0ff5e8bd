package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/result"
)

// iris annotation groups, each holding [center, left, top, right, bottom]
var irisGroups = []string{"leftEyeIris", "rightEyeIris"}

// Face annotates detected faces with their box, a stack of attribute labels,
// the mesh points and the mesh triangulation with both irises
func Face(surface canvas.Surface, faces []result.Face, style Style) {

	defer recoverDraw("face")

	ctx := contextOf(surface)

	if ctx == nil || len(faces) == 0 {
		return
	}

	for i := range faces {
		drawFace(ctx, &faces[i], style)
	}
}

func drawFace(ctx canvas.Context, f *result.Face, style Style) {

	ctx.SetFont(style.Font)
	ctx.SetStrokeColor(style.Color)
	ctx.SetFillColor(style.Color)

	if style.DrawBoxes {
		drawBox(ctx, f.Box, style)
	}

	if style.DrawLabels {
		labels := FaceLabels(f)
		x := math.Max(f.Box.X(), 0)

		// bottom line first so upper lines are painted over any overlap
		for i := len(labels) - 1; i >= 0; i-- {
			y := float64(i)*style.LineHeight + f.Box.Y()
			drawLabel(ctx, style, labels[i], x+4, y+15, 0, 1, 1)
		}
	}

	ctx.SetLineWidth(1)

	if len(f.Mesh) == 0 {
		return
	}

	if style.DrawPoints {
		for _, pt := range f.Mesh {
			DrawPoint(ctx, pt.X, pt.Y, pt.Z, style)
		}
	}

	if !style.DrawPolygons {
		return
	}

	tri := style.Triangulation

	for i := 0; i+2 < len(tri); i += 3 {
		a, b, c := tri[i], tri[i+1], tri[i+2]

		if !validIndex(a, f.Mesh) || !validIndex(b, f.Mesh) || !validIndex(c, f.Mesh) {
			continue
		}

		DrawLines(ctx, []result.Point{f.Mesh[a], f.Mesh[b], f.Mesh[c]}, style)
	}

	for _, group := range irisGroups {
		drawIris(ctx, f.Annotations[group], style)
	}
}

func validIndex(i int, pts []result.Point) bool {
	return i >= 0 && i < len(pts)
}

// drawIris draws an ellipse centered on the first iris point sized from the
// horizontal and vertical extent of the ring points
func drawIris(ctx canvas.Context, ring []result.Point, style Style) {

	if len(ring) < 5 {
		return
	}

	stroke, fill := style.Color, style.Color

	if style.UseDepth {
		stroke, fill = irisStroke, irisFill
	}

	rx := math.Abs(ring[3].X-ring[1].X) / 2
	ry := math.Abs(ring[4].Y-ring[2].Y) / 2

	ctx.SetStrokeColor(stroke)
	ctx.BeginPath()
	ctx.Ellipse(ring[0].X, ring[0].Y, rx, ry)
	ctx.Stroke()

	if style.FillPolygons {
		ctx.SetFillColor(fill)
		ctx.Fill()
	}
}

// FaceLabels returns the label lines for a face in top to bottom order.
// Attributes that are absent or zero are left out and a face without any
// attribute is labelled "face".
func FaceLabels(f *result.Face) []string {

	var labels []string

	if f.Confidence != 0 {
		labels = append(labels, "face confidence: "+percent(f.Confidence))
	}

	if f.GenderConfidence != nil && *f.GenderConfidence != 0 {
		labels = append(labels, fmt.Sprintf("%s %s confident", f.Gender, percent(*f.GenderConfidence)))
	}

	if f.Age != nil && *f.Age != 0 {
		labels = append(labels, "age: "+number(*f.Age))
	}

	if f.Iris != nil && *f.Iris != 0 {
		labels = append(labels, "iris distance: "+number(*f.Iris))
	}

	if len(f.Emotion) > 0 {
		emotions := make([]string, 0, len(f.Emotion))

		for _, e := range f.Emotion {
			emotions = append(emotions, percent(e.Score)+" "+e.Emotion)
		}

		labels = append(labels, strings.Join(emotions, " "))
	}

	if f.Rotation != nil && f.Rotation.Angle.Roll != 0 {
		a := f.Rotation.Angle
		labels = append(labels, fmt.Sprintf("roll: %s yaw:%s pitch:%s",
			hundredths(a.Roll), hundredths(a.Yaw), hundredths(a.Pitch)))
	}

	if len(labels) == 0 {
		labels = append(labels, "face")
	}

	return labels
}
