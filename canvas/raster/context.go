package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/vector"

	"github.com/swdee/go-annotate/canvas"
)

// Context is the canvas.Context implementation for raster surfaces.  It is
// not safe for concurrent use.
type Context struct {
	dst *image.RGBA

	stroke    color.NRGBA
	fill      color.NRGBA
	lineWidth float64
	join      canvas.LineJoin
	font      canvas.Font

	// typeface overrides the built in Go fonts when set
	typeface *Typeface
	faces    map[faceKey]font.Face

	path canvas.Path
	ras  *vector.Rasterizer
}

func newContext(dst *image.RGBA) *Context {
	b := dst.Bounds()

	return &Context{
		dst:       dst,
		stroke:    color.NRGBA{A: 255},
		fill:      color.NRGBA{A: 255},
		lineWidth: 1,
		font:      canvas.DefaultFont(),
		faces:     make(map[faceKey]font.Face),
		ras:       vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}

	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (c *Context) SetStrokeColor(col color.Color) {
	c.stroke = toNRGBA(col)
}

func (c *Context) SetFillColor(col color.Color) {
	c.fill = toNRGBA(col)
}

func (c *Context) SetLineWidth(width float64) {
	// canvas ignores non positive widths
	if width > 0 {
		c.lineWidth = width
	}
}

func (c *Context) SetLineJoin(join canvas.LineJoin) {
	c.join = join
}

func (c *Context) SetFont(f canvas.Font) {
	c.font = f
}

// SetTypeface replaces the built in Go fonts used for text, nil restores
// them
func (c *Context) SetTypeface(t *Typeface) {
	c.typeface = t
	c.closeFaces()
}

func (c *Context) BeginPath() {
	c.path.Reset()
}

func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}

func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	c.path.Ellipse(cx, cy, rx, ry)
}

func (c *Context) ClosePath() {
	c.path.ClosePath()
}

// Fill paints the interior of every subpath with the fill color, open
// subpaths are closed implicitly
func (c *Context) Fill() {

	if c.fill.A == 0 || c.path.Empty() {
		return
	}

	c.reset()
	drawn := false

	for _, sp := range c.path.Subpaths() {
		if len(sp.Points) < 3 {
			continue
		}

		c.ras.MoveTo(float32(sp.Points[0].X), float32(sp.Points[0].Y))

		for _, pt := range sp.Points[1:] {
			c.ras.LineTo(float32(pt.X), float32(pt.Y))
		}

		c.ras.ClosePath()
		drawn = true
	}

	if drawn {
		c.paint(c.fill)
	}
}

// Stroke paints the outline of the current path with the stroke color
func (c *Context) Stroke() {

	if c.stroke.A == 0 || c.path.Empty() {
		return
	}

	outlines := strokeOutlines(c.path.Subpaths(), c.lineWidth, c.join)

	if len(outlines) == 0 {
		return
	}

	c.reset()

	for _, poly := range outlines {
		c.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))

		for _, pt := range poly[1:] {
			c.ras.LineTo(float32(pt.X), float32(pt.Y))
		}

		c.ras.ClosePath()
	}

	c.paint(c.stroke)
}

// reset prepares the rasterizer for a new shape
func (c *Context) reset() {
	b := c.dst.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
}

// paint composites the accumulated shape onto the destination
func (c *Context) paint(col color.NRGBA) {
	c.ras.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
}
