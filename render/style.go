package render

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/swdee/go-annotate/canvas"
)

// Style holds every parameter used when annotating a frame.  A Style is
// treated as immutable for the duration of a render call.
type Style struct {
	// Color is used for boxes, points and polygons
	Color color.NRGBA
	// LabelColor is used for label text
	LabelColor color.NRGBA
	// ShadowColor is drawn behind labels, a zero alpha disables the shadow
	ShadowColor color.NRGBA
	// Font for labels
	Font canvas.Font
	// LineHeight between stacked labels
	LineHeight float64
	// LineWidth of boxes and skeleton lines
	LineWidth float64
	// PointSize is the radius of drawn points
	PointSize float64
	// RoundRect is the corner radius of boxes
	RoundRect float64

	DrawPoints bool
	DrawLabels bool
	DrawBoxes  bool
	// DrawPolygons draws body skeletons, finger chains and the face mesh
	// wireframe.  The face wireframe needs a Triangulation, DefaultStyle has
	// none so only the irises are drawn for a face mesh until one is set.
	DrawPolygons bool
	FillPolygons bool
	// UseDepth tints points and lines by their z coordinate
	UseDepth bool
	// UseCurves draws boxes as ellipses and polylines as smooth curves
	UseCurves bool

	// BufferedOutput enables temporal smoothing of body, hand and person
	// results
	BufferedOutput bool
	// BufferedFactor controls smoothing speed, 1 snaps to the new value and
	// larger values converge slower
	BufferedFactor float64

	// Triangulation lists face mesh point indices, three per triangle, such
	// as the 468 point mesh table loaded with LoadTriangulation.  No table is
	// built in; when empty no mesh triangles are drawn.
	Triangulation []int
}

// DefaultStyle returns the default annotation style
func DefaultStyle() Style {
	return Style{
		Color:          canvas.RGBA(173, 216, 230, 0.3),
		LabelColor:     canvas.RGBA(173, 216, 230, 1),
		ShadowColor:    Black,
		Font:           canvas.DefaultFont(),
		LineHeight:     24,
		LineWidth:      6,
		PointSize:      2,
		RoundRect:      28,
		DrawPoints:     false,
		DrawLabels:     true,
		DrawBoxes:      true,
		DrawPolygons:   true,
		FillPolygons:   false,
		UseDepth:       true,
		UseCurves:      false,
		BufferedOutput: false,
		BufferedFactor: 2,
	}
}

// HasShadow reports whether labels get a shadow
func (s Style) HasShadow() bool {
	return s.ShadowColor.A != 0
}

// tint returns the depth color for z when depth tinting applies, otherwise
// the style color
func (s Style) tint(z, alpha float64) color.NRGBA {
	if s.UseDepth && z != 0 {
		return DepthColor(z, alpha)
	}

	return s.Color
}

// Override is a partial Style.  Nil fields keep the value of the style it is
// applied to.
type Override struct {
	Color       *color.NRGBA
	LabelColor  *color.NRGBA
	ShadowColor *color.NRGBA
	Font        *canvas.Font
	LineHeight  *float64
	LineWidth   *float64
	PointSize   *float64
	RoundRect   *float64

	DrawPoints   *bool
	DrawLabels   *bool
	DrawBoxes    *bool
	DrawPolygons *bool
	FillPolygons *bool
	UseDepth     *bool
	UseCurves    *bool

	BufferedOutput *bool
	BufferedFactor *float64

	Triangulation []int
}

// With returns a copy of the style with every field set in o applied.
// Neither the style nor the override is modified.
func (s Style) With(o *Override) Style {

	if o == nil {
		return s
	}

	setColor(&s.Color, o.Color)
	setColor(&s.LabelColor, o.LabelColor)
	setColor(&s.ShadowColor, o.ShadowColor)

	if o.Font != nil {
		s.Font = *o.Font
	}

	setFloat(&s.LineHeight, o.LineHeight)
	setFloat(&s.LineWidth, o.LineWidth)
	setFloat(&s.PointSize, o.PointSize)
	setFloat(&s.RoundRect, o.RoundRect)
	setFloat(&s.BufferedFactor, o.BufferedFactor)

	setBool(&s.DrawPoints, o.DrawPoints)
	setBool(&s.DrawLabels, o.DrawLabels)
	setBool(&s.DrawBoxes, o.DrawBoxes)
	setBool(&s.DrawPolygons, o.DrawPolygons)
	setBool(&s.FillPolygons, o.FillPolygons)
	setBool(&s.UseDepth, o.UseDepth)
	setBool(&s.UseCurves, o.UseCurves)
	setBool(&s.BufferedOutput, o.BufferedOutput)

	if o.Triangulation != nil {
		s.Triangulation = o.Triangulation
	}

	return s
}

// Resolve applies the override on top of the default style
func Resolve(o *Override) Style {
	return DefaultStyle().With(o)
}

func setColor(dst *color.NRGBA, v *color.NRGBA) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// overrideJSON is the wire form of an Override using CSS strings for colors
// and fonts
type overrideJSON struct {
	Color       *string  `json:"color,omitempty"`
	LabelColor  *string  `json:"labelColor,omitempty"`
	ShadowColor *string  `json:"shadowColor,omitempty"`
	Font        *string  `json:"font,omitempty"`
	LineHeight  *float64 `json:"lineHeight,omitempty"`
	LineWidth   *float64 `json:"lineWidth,omitempty"`
	PointSize   *float64 `json:"pointSize,omitempty"`
	RoundRect   *float64 `json:"roundRect,omitempty"`

	DrawPoints   *bool `json:"drawPoints,omitempty"`
	DrawLabels   *bool `json:"drawLabels,omitempty"`
	DrawBoxes    *bool `json:"drawBoxes,omitempty"`
	DrawPolygons *bool `json:"drawPolygons,omitempty"`
	FillPolygons *bool `json:"fillPolygons,omitempty"`
	UseDepth     *bool `json:"useDepth,omitempty"`
	UseCurves    *bool `json:"useCurves,omitempty"`

	BufferedOutput *bool    `json:"bufferedOutput,omitempty"`
	BufferedFactor *float64 `json:"bufferedFactor,omitempty"`

	Triangulation []int `json:"triangulation,omitempty"`
}

// UnmarshalJSON decodes an override from the option names used by drawing
// clients, e.g. {"color": "rgba(255, 0, 0, 0.5)", "drawPoints": true}.
// Unknown keys are ignored.
func (o *Override) UnmarshalJSON(data []byte) error {

	var aux overrideJSON

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	out := Override{
		LineHeight:     aux.LineHeight,
		LineWidth:      aux.LineWidth,
		PointSize:      aux.PointSize,
		RoundRect:      aux.RoundRect,
		DrawPoints:     aux.DrawPoints,
		DrawLabels:     aux.DrawLabels,
		DrawBoxes:      aux.DrawBoxes,
		DrawPolygons:   aux.DrawPolygons,
		FillPolygons:   aux.FillPolygons,
		UseDepth:       aux.UseDepth,
		UseCurves:      aux.UseCurves,
		BufferedOutput: aux.BufferedOutput,
		BufferedFactor: aux.BufferedFactor,
		Triangulation:  aux.Triangulation,
	}

	var err error

	if out.Color, err = parseColorPtr("color", aux.Color); err != nil {
		return err
	}

	if out.LabelColor, err = parseColorPtr("labelColor", aux.LabelColor); err != nil {
		return err
	}

	if out.ShadowColor, err = parseColorPtr("shadowColor", aux.ShadowColor); err != nil {
		return err
	}

	if aux.Font != nil {
		f := canvas.ParseFont(*aux.Font)
		out.Font = &f
	}

	*o = out

	return nil
}

// MarshalJSON encodes the set fields using CSS strings
func (o Override) MarshalJSON() ([]byte, error) {

	aux := overrideJSON{
		LineHeight:     o.LineHeight,
		LineWidth:      o.LineWidth,
		PointSize:      o.PointSize,
		RoundRect:      o.RoundRect,
		DrawPoints:     o.DrawPoints,
		DrawLabels:     o.DrawLabels,
		DrawBoxes:      o.DrawBoxes,
		DrawPolygons:   o.DrawPolygons,
		FillPolygons:   o.FillPolygons,
		UseDepth:       o.UseDepth,
		UseCurves:      o.UseCurves,
		BufferedOutput: o.BufferedOutput,
		BufferedFactor: o.BufferedFactor,
		Triangulation:  o.Triangulation,
	}

	aux.Color = formatColorPtr(o.Color)
	aux.LabelColor = formatColorPtr(o.LabelColor)
	aux.ShadowColor = formatColorPtr(o.ShadowColor)

	if o.Font != nil {
		f := o.Font.String()
		aux.Font = &f
	}

	return json.Marshal(aux)
}

func parseColorPtr(key string, css *string) (*color.NRGBA, error) {

	if css == nil {
		return nil, nil
	}

	c, err := canvas.ParseColor(*css)

	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}

	return &c, nil
}

func formatColorPtr(c *color.NRGBA) *string {

	if c == nil {
		return nil
	}

	s := canvas.FormatColor(*c)

	return &s
}

// LoadOverride reads a JSON style override file
func LoadOverride(file string) (*Override, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading style file %s: %w", file, err)
	}

	var o Override

	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("error decoding style file %s: %w", file, err)
	}

	return &o, nil
}

// LoadTriangulation reads a face mesh triangulation table, a JSON array of
// point indices with three entries per triangle
func LoadTriangulation(file string) ([]int, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error reading triangulation file %s: %w", file, err)
	}

	var tri []int

	if err := json.Unmarshal(data, &tri); err != nil {
		return nil, fmt.Errorf("error decoding triangulation file %s: %w", file, err)
	}

	if len(tri)%3 != 0 {
		return nil, fmt.Errorf("triangulation in %s has %d indices, not a multiple of 3",
			file, len(tri))
	}

	for i, idx := range tri {
		if idx < 0 {
			return nil, fmt.Errorf("triangulation in %s has negative index at %d", file, i)
		}
	}

	return tri, nil
}
