// Package raster implements the canvas drawing context in pure Go on top of
// an image.RGBA.  Paths are filled with golang.org/x/image/vector, strokes are
// turned into outlines with a clipper offset and text uses x/image/font.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/log"
)

var logger = log.New("raster")

// Surface is an in-memory RGBA drawing surface
type Surface struct {
	img *image.RGBA
	ctx *Context
}

// New creates a transparent surface of the given size
func New(width, height int) *Surface {
	return wrap(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// FromImage creates a surface holding a copy of the given image
func FromImage(img image.Image) *Surface {

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return wrap(dst)
}

func wrap(img *image.RGBA) *Surface {
	s := &Surface{img: img}
	s.ctx = newContext(img)
	return s
}

// Context2D returns the drawing context of the surface, nil for a nil or
// zero value surface
func (s *Surface) Context2D() canvas.Context {
	if s == nil || s.ctx == nil {
		return nil
	}

	return s.ctx
}

// Context returns the concrete raster context
func (s *Surface) Context() *Context {
	return s.ctx
}

// Image returns the surface pixels
func (s *Surface) Image() image.Image {
	return s.img
}

// RGBA returns the underlying pixel buffer
func (s *Surface) RGBA() *image.RGBA {
	return s.img
}

// Width of the surface in pixels
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height of the surface in pixels
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// DrawImage composites img over the surface with its top left corner at
// (x, y)
func (s *Surface) DrawImage(img image.Image, x, y float64) {

	b := img.Bounds()
	at := image.Pt(int(x), int(y))

	draw.Draw(s.img, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img,
		b.Min, draw.Over)
}

// Clear fills the whole surface with c, use color.Transparent to erase it
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	s.ctx.path.Reset()
}

// EncodePNG writes the surface as a PNG image
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}

	return nil
}

// SavePNG writes the surface to a PNG file
func (s *Surface) SavePNG(file string) error {

	f, err := os.Create(file)

	if err != nil {
		return fmt.Errorf("error creating file %s: %w", file, err)
	}

	if err := s.EncodePNG(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing file %s: %w", file, err)
	}

	logger.Debugf("saved %dx%d surface to %s", s.Width(), s.Height(), file)

	return nil
}
