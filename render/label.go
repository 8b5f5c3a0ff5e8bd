package render

import (
	"math"
	"strconv"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/log"
	"github.com/swdee/go-annotate/result"
)

var logger = log.New("render")

// contextOf returns the drawing context of the surface or nil
func contextOf(surface canvas.Surface) canvas.Context {
	return canvas.ContextOf(surface)
}

// recoverDraw absorbs a panic raised while annotating malformed input so a
// bad frame never takes down the caller
func recoverDraw(kind string) {
	if r := recover(); r != nil {
		logger.Warningf("%s annotation aborted: %v", kind, r)
	}
}

// drawLabel fills text at (x, y), preceded by the shadow at the given offset
// when the style has one
func drawLabel(ctx canvas.Context, style Style, text string, x, y, maxWidth, shadowX, shadowY float64) {

	if style.HasShadow() {
		ctx.SetFillColor(style.ShadowColor)
		ctx.FillText(text, x+shadowX, y+shadowY, maxWidth)
	}

	ctx.SetFillColor(style.LabelColor)
	ctx.FillText(text, x, y, maxWidth)
}

// drawBoxLabel draws a label inside the top left corner of a box, cut to the
// box width
func drawBoxLabel(ctx canvas.Context, style Style, text string, box result.Box) {
	drawLabel(ctx, style, text, box.X()+2, box.Y()+style.LineHeight, box.Width(), 1, 1)
}

// percent formats 100*v truncated toward zero
func percent(v float64) string {
	return strconv.FormatFloat(math.Trunc(100*v), 'f', -1, 64) + "%"
}

// roundPercent formats 100*v rounded to the nearest integer
func roundPercent(v float64) string {
	return strconv.FormatFloat(math.Round(100*v), 'f', -1, 64) + "%"
}

// number formats v in its shortest form
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hundredths truncates v to two decimals
func hundredths(v float64) string {
	return number(math.Trunc(100*v) / 100)
}
