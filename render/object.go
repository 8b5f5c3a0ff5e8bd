package render

import (
	"fmt"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/result"
)

// Object annotates detected objects with their box and a label of the form
// "<score>% <label>"
func Object(surface canvas.Surface, items []result.Item, style Style) {

	defer recoverDraw("object")

	ctx := contextOf(surface)

	if ctx == nil || len(items) == 0 {
		return
	}

	ctx.SetLineJoin(canvas.JoinRound)
	ctx.SetFont(style.Font)

	for i := range items {
		it := &items[i]
		drawLabeledBox(ctx, it.Box, roundPercent(it.Score)+" "+it.Label, style)
	}
}

// Person annotates persons with their box labelled by position in the slice
func Person(surface canvas.Surface, persons []result.Person, style Style) {

	defer recoverDraw("person")

	ctx := contextOf(surface)

	if ctx == nil || len(persons) == 0 {
		return
	}

	ctx.SetLineJoin(canvas.JoinRound)
	ctx.SetFont(style.Font)

	for i := range persons {
		drawLabeledBox(ctx, persons[i].Box, fmt.Sprintf("person #%d", i), style)
	}
}

// drawLabeledBox draws a box with a label in its top left corner, then
// strokes the box path again so the outline stays on top of the label
func drawLabeledBox(ctx canvas.Context, box result.Box, label string, style Style) {

	if !style.DrawBoxes {
		return
	}

	ctx.SetStrokeColor(style.Color)
	ctx.SetFillColor(style.Color)
	drawBox(ctx, box, style)

	if style.DrawLabels {
		drawBoxLabel(ctx, style, label, box)
	}

	ctx.Stroke()
}
