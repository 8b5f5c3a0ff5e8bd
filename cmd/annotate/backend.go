package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	// image formats accepted as backgrounds
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gg/text"
	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/canvas/cvcanvas"
	"github.com/swdee/go-annotate/canvas/ggcanvas"
	"github.com/swdee/go-annotate/canvas/raster"
)

// drawing backends selectable with --backend
const (
	backendRaster = "raster"
	backendGG     = "gg"
	backendOpenCV = "opencv"
)

// target is a drawing surface that a background can be composited onto and
// that can be read back as an image
type target interface {
	canvas.Surface
	Image() image.Image
	DrawImage(img image.Image, x, y float64)
}

// newTarget creates a transparent surface of the given size on the named
// backend
func newTarget(backend string, width, height int) (target, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}

	switch backend {
	case backendRaster, "":
		return raster.New(width, height), nil
	case backendGG:
		return ggcanvas.New(width, height), nil
	case backendOpenCV:
		return cvcanvas.New(width, height), nil
	}

	return nil, fmt.Errorf("unknown backend %q", backend)
}

// closeTarget releases native resources held by the target
func closeTarget(t target) {
	if c, ok := t.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Debugf("Error closing surface: %v", err)
		}
	}
}

// setFont makes the target draw labels with the given font file
func setFont(t target, file string) error {

	if file == "" {
		return nil
	}

	switch s := t.(type) {
	case *raster.Surface:
		tf, err := raster.LoadFont(file)

		if err != nil {
			return err
		}

		s.Context().SetTypeface(tf)

	case *ggcanvas.Surface:
		data, err := os.ReadFile(file)

		if err != nil {
			return fmt.Errorf("error reading font file %s: %w", file, err)
		}

		src, err := text.NewFontSource(data)

		if err != nil {
			return fmt.Errorf("error parsing font file %s: %w", file, err)
		}

		s.SetFontSource(src)

	default:
		logger.Noticef("Backend %T only draws Hershey fonts, ignoring %s", t, file)
	}

	return nil
}

// loadImage decodes a PNG, JPEG, BMP or WebP image file
func loadImage(file string) (image.Image, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}

	defer f.Close()

	img, _, err := image.Decode(f)

	if err != nil {
		return nil, fmt.Errorf("error decoding image %s: %w", file, err)
	}

	return img, nil
}

// writePNG encodes the target as a PNG image, using the backend's own
// encoder when it has one
func writePNG(t target, w io.Writer) error {

	if enc, ok := t.(interface{ EncodePNG(io.Writer) error }); ok {
		return enc.EncodePNG(w)
	}

	if err := png.Encode(w, t.Image()); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}

	return nil
}

// savePNG writes the target to a PNG file
func savePNG(t target, file string) error {

	f, err := os.Create(file)

	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := writePNG(t, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
