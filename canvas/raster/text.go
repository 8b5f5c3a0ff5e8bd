package raster

import (
	"fmt"
	"image"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Typeface is a parsed TrueType or OpenType font that can be shared between
// contexts
type Typeface struct {
	font *opentype.Font
	name string
}

// ParseTypeface parses font data
func ParseTypeface(name string, data []byte) (*Typeface, error) {

	f, err := opentype.Parse(data)

	if err != nil {
		return nil, fmt.Errorf("error parsing font %s: %w", name, err)
	}

	return &Typeface{font: f, name: name}, nil
}

// LoadFont reads a TrueType or OpenType font file
func LoadFont(file string) (*Typeface, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading font file %s: %w", file, err)
	}

	return ParseTypeface(file, data)
}

// Name of the typeface
func (t *Typeface) Name() string {
	return t.name
}

var (
	builtinOnce sync.Once
	goRegular   *Typeface
	goBold      *Typeface
)

// builtin returns the embedded Go fonts, either may be nil if parsing
// failed in which case text falls back to a fixed bitmap face
func builtin(bold bool) *Typeface {

	builtinOnce.Do(func() {
		var err error

		if goRegular, err = ParseTypeface("goregular", goregular.TTF); err != nil {
			logger.Warningf("built in font unavailable: %v", err)
		}

		if goBold, err = ParseTypeface("gobold", gobold.TTF); err != nil {
			logger.Warningf("built in bold font unavailable: %v", err)
		}
	})

	if bold && goBold != nil {
		return goBold
	}

	return goRegular
}

type faceKey struct {
	size float64
	bold bool
}

// face returns the font face for the current font settings.  Faces hold
// glyph buffers so they are cached per context rather than shared.
func (c *Context) face() font.Face {

	key := faceKey{size: c.font.Size, bold: c.font.Bold}

	if f, ok := c.faces[key]; ok {
		return f
	}

	tf := c.typeface

	if tf == nil {
		tf = builtin(key.bold)
	}

	var face font.Face = basicfont.Face7x13

	if tf != nil && key.size > 0 {
		f, err := opentype.NewFace(tf.font, &opentype.FaceOptions{
			Size:    key.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})

		if err != nil {
			logger.Debugf("falling back to bitmap face for %s: %v", tf.name, err)
		} else {
			face = f
		}
	}

	c.faces[key] = face

	return face
}

// closeFaces releases cached faces
func (c *Context) closeFaces() {
	for k, f := range c.faces {
		f.Close()
		delete(c.faces, k)
	}
}

// FillText draws text with its baseline at y in the fill color.  Text wider
// than maxWidth is cut at the last rune that fits.
func (c *Context) FillText(text string, x, y, maxWidth float64) {

	if text == "" || c.fill.A == 0 {
		return
	}

	text = c.font.Apply(text)

	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(c.fill),
		Face: c.face(),
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}

	if maxWidth > 0 {
		text = fit(d, text, fixed.Int26_6(maxWidth*64))
	}

	d.DrawString(text)
}

// fit trims text until it measures no wider than limit
func fit(d *font.Drawer, text string, limit fixed.Int26_6) string {

	if d.MeasureString(text) <= limit {
		return text
	}

	runes := []rune(text)

	for len(runes) > 0 {
		runes = runes[:len(runes)-1]

		if d.MeasureString(string(runes)) <= limit {
			break
		}
	}

	return string(runes)
}
