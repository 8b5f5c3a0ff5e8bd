package render

import (
	"math"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/result"
)

// DrawPoint fills a circle of radius style.PointSize at (x, y), tinted by z
// when depth tinting is enabled
func DrawPoint(ctx canvas.Context, x, y, z float64, style Style) {

	if ctx == nil {
		return
	}

	ctx.SetFillColor(style.tint(z, pointAlpha))
	ctx.BeginPath()
	ctx.Ellipse(x, y, style.PointSize, style.PointSize)
	ctx.Fill()
}

// DrawBox strokes the box outline.  With curves enabled an ellipse inscribed
// in the box is drawn, otherwise a rectangle with corners rounded by
// style.RoundRect.
func DrawBox(ctx canvas.Context, x, y, width, height float64, style Style) {

	if ctx == nil {
		return
	}

	ctx.BeginPath()

	if style.UseCurves {
		ctx.Ellipse(x+width/2, y+height/2, width/2, height/2)
	} else {
		r := style.RoundRect

		ctx.SetLineWidth(style.LineWidth)
		ctx.MoveTo(x+r, y)
		ctx.LineTo(x+width-r, y)
		ctx.QuadraticTo(x+width, y, x+width, y+r)
		ctx.LineTo(x+width, y+height-r)
		ctx.QuadraticTo(x+width, y+height, x+width-r, y+height)
		ctx.LineTo(x+r, y+height)
		ctx.QuadraticTo(x, y+height, x, y+height-r)
		ctx.LineTo(x, y+r)
		ctx.QuadraticTo(x, y, x+r, y)
		ctx.ClosePath()
	}

	ctx.Stroke()
}

// drawBox draws a result box
func drawBox(ctx canvas.Context, box result.Box, style Style) {
	DrawBox(ctx, box.X(), box.Y(), box.Width(), box.Height(), style)
}

// DrawLines strokes a polyline through points, setting the stroke and fill
// color from each point's depth as it goes.  With polygon filling enabled the
// path is closed and filled.
func DrawLines(ctx canvas.Context, points []result.Point, style Style) {

	if ctx == nil || len(points) == 0 {
		return
	}

	ctx.BeginPath()
	ctx.MoveTo(points[0].X, points[0].Y)

	for _, pt := range points {
		c := style.tint(pt.Z, pointAlpha)

		ctx.SetStrokeColor(c)
		ctx.SetFillColor(c)
		ctx.LineTo(pt.X, math.Round(pt.Y))
	}

	ctx.Stroke()

	if style.FillPolygons {
		ctx.ClosePath()
		ctx.Fill()
	}
}

// DrawCurves strokes a smooth curve through points using quadratic segments
// that pass through the midpoints between consecutive points.  It falls back
// to DrawLines when curves are disabled or there are two or fewer points.
func DrawCurves(ctx canvas.Context, points []result.Point, style Style) {

	if ctx == nil || len(points) == 0 {
		return
	}

	if !style.UseCurves || len(points) <= 2 {
		DrawLines(ctx, points, style)
		return
	}

	ctx.BeginPath()
	ctx.MoveTo(points[0].X, points[0].Y)

	for i := 0; i < len(points)-2; i++ {
		xc := (points[i].X + points[i+1].X) / 2
		yc := (points[i].Y + points[i+1].Y) / 2
		ctx.QuadraticTo(points[i].X, points[i].Y, xc, yc)
	}

	n := len(points)
	ctx.QuadraticTo(points[n-2].X, points[n-2].Y, points[n-1].X, points[n-1].Y)
	ctx.Stroke()

	if style.FillPolygons {
		ctx.ClosePath()
		ctx.Fill()
	}
}
