package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor reads a CSS color: a named color, #rgb, #rrggbb, #rrggbbaa,
// rgb(r, g, b) or rgba(r, g, b, a) with alpha in the 0..1 range.  An empty
// string or "transparent" yields the zero color, which renders nothing.
func ParseColor(css string) (color.NRGBA, error) {

	s := strings.ToLower(strings.TrimSpace(css))

	switch {
	case s == "" || s == "transparent" || s == "none":
		return color.NRGBA{}, nil

	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])

	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFunc(s)
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}

	return color.NRGBA{}, fmt.Errorf("unknown color %q", css)
}

// MustParseColor is like ParseColor but panics on error.  It is intended for
// package level defaults.
func MustParseColor(css string) color.NRGBA {
	c, err := ParseColor(css)

	if err != nil {
		panic(err)
	}

	return c
}

// FormatColor returns the rgba() form of a color
func FormatColor(c color.NRGBA) string {
	alpha := strconv.FormatFloat(math.Round(float64(c.A)/255*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alpha)
}

// RGBA returns a non-premultiplied color from float channels where r, g and b
// are in 0..255 and alpha is in 0..1.  Channels are clamped.
func RGBA(r, g, b, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: clampByte(r),
		G: clampByte(g),
		B: clampByte(b),
		A: clampByte(alpha * 255),
	}
}

func clampByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}

	if v >= 255 {
		return 255
	}

	return uint8(math.Round(v))
}

func parseHex(s string) (color.NRGBA, error) {

	switch len(s) {
	case 3, 4:
		// expand #rgb(a) to #rrggbb(aa)
		var b strings.Builder

		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}

		s = b.String()

	case 6, 8:

	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length %d", len(s))
	}

	v, err := strconv.ParseUint(s, 16, 32)

	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color: %w", err)
	}

	if len(s) == 6 {
		v = v<<8 | 0xff
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func parseFunc(s string) (color.NRGBA, error) {

	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')

	if end < open {
		return color.NRGBA{}, fmt.Errorf("unterminated color function %q", s)
	}

	args := strings.Split(s[open+1:end], ",")

	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, fmt.Errorf("color function needs 3 or 4 arguments, got %d", len(args))
	}

	vals := make([]float64, 4)
	vals[3] = 1

	for i, arg := range args {
		arg = strings.TrimSpace(arg)
		percent := strings.HasSuffix(arg, "%")

		v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)

		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color channel %q: %w", arg, err)
		}

		if percent {
			if i == 3 {
				v /= 100
			} else {
				v = v * 255 / 100
			}
		}

		vals[i] = v
	}

	return RGBA(vals[0], vals[1], vals[2], vals[3]), nil
}
