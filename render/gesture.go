package render

import (
	"strconv"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/result"
)

// Gesture lists detected gestures as text lines down the top left of the
// surface, one line per gesture that has a description
func Gesture(surface canvas.Surface, gestures []result.Gesture, style Style) {

	defer recoverDraw("gesture")

	ctx := contextOf(surface)

	if ctx == nil || len(gestures) == 0 {
		return
	}

	ctx.SetFont(style.Font)
	ctx.SetFillColor(style.Color)

	line := 1

	for _, g := range gestures {
		if g.Gesture == "" {
			continue
		}

		y := float64(line) * style.LineHeight
		drawLabel(ctx, style, GestureLabel(g), 6, y, 0, 2, 2)

		line++
	}
}

// GestureLabel formats a gesture as "<part> #<index>: <gesture>".  An index
// that is not positive is left out, keeping the space before the colon.
func GestureLabel(g result.Gesture) string {

	if g.Index > 0 {
		return g.Part + " #" + strconv.Itoa(g.Index) + ": " + g.Gesture
	}

	return g.Part + " : " + g.Gesture
}
