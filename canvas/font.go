package canvas

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Font describes the typeface used for labels
type Font struct {
	// Family is the requested font family, backends fall back to their
	// built in face when it is not available
	Family string
	// Size in pixels
	Size float64
	// SmallCaps renders lower case letters as capitals
	SmallCaps bool
	// Bold requests a bold weight where the backend supports it
	Bold bool
}

// DefaultFont returns default label font settings
func DefaultFont() Font {
	return Font{
		Family:    "Segoe UI",
		Size:      16,
		SmallCaps: true,
	}
}

// Apply returns the text as it should be drawn with this font
func (f Font) Apply(text string) string {
	if f.SmallCaps {
		// a Caser keeps state so one is created per call
		return cases.Upper(language.Und).String(text)
	}

	return text
}

// String formats the font as a CSS font shorthand
func (f Font) String() string {

	var parts []string

	if f.SmallCaps {
		parts = append(parts, "small-caps")
	}

	if f.Bold {
		parts = append(parts, "bold")
	}

	parts = append(parts, strconv.FormatFloat(f.Size, 'f', -1, 64)+"px")

	if f.Family != "" {
		parts = append(parts, strconv.Quote(f.Family))
	}

	return strings.Join(parts, " ")
}

// ParseFont reads a CSS font shorthand such as `small-caps 16px "Segoe UI"`.
// Unrecognised keywords are ignored and a missing size falls back to the
// default font size.
func ParseFont(css string) Font {

	f := Font{Size: DefaultFont().Size}

	fields := strings.Fields(strings.TrimSpace(css))

	for i, field := range fields {
		lower := strings.ToLower(field)

		switch {
		case lower == "small-caps":
			f.SmallCaps = true

		case lower == "bold" || lower == "bolder" || lower == "700" || lower == "800" || lower == "900":
			f.Bold = true

		case strings.HasSuffix(lower, "px"):
			if size, err := strconv.ParseFloat(strings.TrimSuffix(lower, "px"), 64); err == nil {
				f.Size = size
			}

			// everything after the size is the family list
			family := strings.Join(fields[i+1:], " ")

			if idx := strings.Index(family, ","); idx >= 0 {
				family = family[:idx]
			}

			f.Family = strings.Trim(strings.TrimSpace(family), `"'`)
			return f
		}
	}

	return f
}
