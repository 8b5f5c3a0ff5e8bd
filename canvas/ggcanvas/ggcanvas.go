// Package ggcanvas implements the canvas drawing context on top of the
// gogpu/gg 2D graphics library.
package ggcanvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/log"
)

var logger = log.New("ggcanvas")

var (
	sourceOnce    sync.Once
	defaultSource *text.FontSource
)

// goSource returns the embedded Go font, nil if it could not be parsed
func goSource() *text.FontSource {
	sourceOnce.Do(func() {
		var err error

		if defaultSource, err = text.NewFontSource(goregular.TTF); err != nil {
			logger.Warningf("built in font unavailable: %v", err)
		}
	})

	return defaultSource
}

// joins maps canvas line joins to gg
var joins = map[canvas.LineJoin]gg.LineJoin{
	canvas.JoinMiter: gg.LineJoinMiter,
	canvas.JoinRound: gg.LineJoinRound,
	canvas.JoinBevel: gg.LineJoinBevel,
}

// Surface wraps a gg drawing context
type Surface struct {
	dc  *gg.Context
	ctx *Context
}

// New creates a transparent surface of the given size
func New(width, height int) *Surface {
	return wrap(gg.NewContext(width, height))
}

// FromImage creates a surface initialised with the given image
func FromImage(img image.Image) *Surface {
	return wrap(gg.NewContextForImage(img))
}

func wrap(dc *gg.Context) *Surface {
	return &Surface{
		dc: dc,
		ctx: &Context{
			dc:        dc,
			stroke:    color.NRGBA{A: 255},
			fill:      color.NRGBA{A: 255},
			lineWidth: 1,
			font:      canvas.DefaultFont(),
			source:    goSource(),
			faces:     make(map[float64]text.Face),
		},
	}
}

// Context2D returns the drawing context of the surface, nil for a nil or
// zero value surface
func (s *Surface) Context2D() canvas.Context {
	if s == nil || s.ctx == nil {
		return nil
	}

	return s.ctx
}

// GG returns the underlying gg context
func (s *Surface) GG() *gg.Context {
	return s.dc
}

// Image returns the rendered pixels
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// DrawImage composites img onto the surface at (x, y)
func (s *Surface) DrawImage(img image.Image, x, y float64) {
	s.dc.DrawImage(gg.ImageBufFromImage(img), x, y)
}

// SetFontSource replaces the built in font used for text
func (s *Surface) SetFontSource(src *text.FontSource) {
	s.ctx.source = src
	s.ctx.faces = make(map[float64]text.Face)
}

// EncodePNG writes the surface as a PNG image
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}

	return nil
}

// SavePNG writes the surface to a PNG file
func (s *Surface) SavePNG(file string) error {
	if err := s.dc.SavePNG(file); err != nil {
		return fmt.Errorf("error saving png %s: %w", file, err)
	}

	return nil
}

// Close releases the gg context
func (s *Surface) Close() error {
	return s.dc.Close()
}

// Context adapts gg to canvas.Context.  gg shares one brush between fill and
// stroke so the matching color is set before each paint operation.
type Context struct {
	dc *gg.Context

	stroke    color.NRGBA
	fill      color.NRGBA
	lineWidth float64
	font      canvas.Font

	source *text.FontSource
	faces  map[float64]text.Face
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
	if width > 0 {
		c.lineWidth = width
	}
}

func (c *Context) SetLineJoin(join canvas.LineJoin) {
	if j, ok := joins[join]; ok {
		c.dc.SetLineJoin(j)
	}
}

func (c *Context) SetFont(f canvas.Font) {
	c.font = f
}

func (c *Context) BeginPath() {
	c.dc.ClearPath()
}

func (c *Context) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

func (c *Context) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	c.dc.QuadraticTo(cx, cy, x, y)
}

func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	c.dc.DrawEllipse(cx, cy, rx, ry)
}

func (c *Context) ClosePath() {
	c.dc.ClosePath()
}

func (c *Context) Stroke() {

	if c.stroke.A == 0 {
		return
	}

	c.dc.SetColor(c.stroke)
	c.dc.SetLineWidth(c.lineWidth)

	if err := c.dc.StrokePreserve(); err != nil {
		logger.Debugf("stroke failed: %v", err)
	}
}

func (c *Context) Fill() {

	if c.fill.A == 0 {
		return
	}

	c.dc.SetColor(c.fill)

	if err := c.dc.FillPreserve(); err != nil {
		logger.Debugf("fill failed: %v", err)
	}
}

// face returns a cached face for the current font size
func (c *Context) face() text.Face {

	if c.source == nil || c.font.Size <= 0 {
		return nil
	}

	if f, ok := c.faces[c.font.Size]; ok {
		return f
	}

	f := c.source.Face(c.font.Size)
	c.faces[c.font.Size] = f

	return f
}

// FillText draws text with its baseline at y.  Text wider than maxWidth is
// cut at the last rune that fits.
func (c *Context) FillText(s string, x, y, maxWidth float64) {

	face := c.face()

	if s == "" || c.fill.A == 0 || face == nil {
		return
	}

	s = c.font.Apply(s)

	c.dc.SetFont(face)
	c.dc.SetColor(c.fill)

	if maxWidth > 0 {
		runes := []rune(s)

		for len(runes) > 0 {
			if w, _ := c.dc.MeasureString(string(runes)); w <= maxWidth {
				break
			}

			runes = runes[:len(runes)-1]
		}

		s = string(runes)
	}

	c.dc.DrawString(s, x, y)
}
