package canvas

import (
	"image"
	"image/color"
)

// LineJoin is the shape used where two stroked segments meet
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Context is a 2D drawing context modelled on the HTML canvas API.  Path
// construction calls accumulate into the current path until BeginPath starts
// a new one; Stroke and Fill paint the current path without clearing it.
type Context interface {
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(width float64)
	SetLineJoin(join LineJoin)
	SetFont(f Font)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	// Ellipse adds a closed axis aligned ellipse as a new subpath
	Ellipse(cx, cy, rx, ry float64)
	ClosePath()

	Stroke()
	Fill()

	// FillText draws text with its baseline at y using the fill color.  Text
	// wider than maxWidth is condensed or cut to fit; maxWidth <= 0 means
	// unbounded.
	FillText(text string, x, y, maxWidth float64)
}

// Surface is a drawable target that yields a 2D context
type Surface interface {
	// Context2D returns the drawing context or nil if the surface cannot be
	// drawn on
	Context2D() Context
}

// ImageSource is implemented by surfaces whose pixels can be read back
type ImageSource interface {
	Image() image.Image
}

// ImageTarget is implemented by surfaces that can composite an image
type ImageTarget interface {
	DrawImage(img image.Image, x, y float64)
}

// ContextOf returns the 2D context of the surface, or nil when the surface is
// missing or yields none.  A surface that panics while handing out its
// context is treated as having none.
func ContextOf(s Surface) (ctx Context) {
	if s == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			ctx = nil
		}
	}()

	return s.Context2D()
}

// Copy draws the entire source surface onto the destination at the origin.
// It does nothing unless src can be read back and dst can composite images.
func Copy(dst, src Surface) {
	if dst == nil || src == nil {
		return
	}

	source, ok := src.(ImageSource)

	if !ok {
		return
	}

	target, ok := dst.(ImageTarget)

	if !ok {
		return
	}

	img := source.Image()

	if img == nil {
		return
	}

	target.DrawImage(img, 0, 0)
}
