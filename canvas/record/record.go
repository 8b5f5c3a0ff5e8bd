// Package record provides a canvas backend that captures the sequence of
// drawing calls instead of painting pixels.
package record

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/swdee/go-annotate/canvas"
)

// Op names a recorded drawing call
type Op string

const (
	OpStrokeColor Op = "strokeColor"
	OpFillColor   Op = "fillColor"
	OpLineWidth   Op = "lineWidth"
	OpLineJoin    Op = "lineJoin"
	OpFont        Op = "font"
	OpBeginPath   Op = "beginPath"
	OpMoveTo      Op = "moveTo"
	OpLineTo      Op = "lineTo"
	OpQuadTo      Op = "quadraticTo"
	OpEllipse     Op = "ellipse"
	OpClosePath   Op = "closePath"
	OpStroke      Op = "stroke"
	OpFill        Op = "fill"
	OpFillText    Op = "fillText"
)

// Call is one recorded drawing call
type Call struct {
	Op    Op
	Args  []float64
	Text  string
	Color color.NRGBA
	Font  canvas.Font
}

// String formats the call for test failure output
func (c Call) String() string {

	var b strings.Builder
	b.WriteString(string(c.Op))

	switch c.Op {
	case OpStrokeColor, OpFillColor:
		b.WriteString(" " + canvas.FormatColor(c.Color))
	case OpFont:
		b.WriteString(" " + c.Font.String())
	case OpFillText:
		fmt.Fprintf(&b, " %q", c.Text)
	}

	if len(c.Args) > 0 {
		fmt.Fprintf(&b, " %v", c.Args)
	}

	return b.String()
}

// Recorder implements canvas.Context and keeps every call made on it
type Recorder struct {
	Calls []Call
}

func (r *Recorder) add(c Call) {
	r.Calls = append(r.Calls, c)
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}

	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.add(Call{Op: OpStrokeColor, Color: toNRGBA(c)})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.add(Call{Op: OpFillColor, Color: toNRGBA(c)})
}

func (r *Recorder) SetLineWidth(width float64) {
	r.add(Call{Op: OpLineWidth, Args: []float64{width}})
}

func (r *Recorder) SetLineJoin(join canvas.LineJoin) {
	r.add(Call{Op: OpLineJoin, Args: []float64{float64(join)}})
}

func (r *Recorder) SetFont(f canvas.Font) {
	r.add(Call{Op: OpFont, Font: f})
}

func (r *Recorder) BeginPath() {
	r.add(Call{Op: OpBeginPath})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.add(Call{Op: OpMoveTo, Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.add(Call{Op: OpLineTo, Args: []float64{x, y}})
}

func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.add(Call{Op: OpQuadTo, Args: []float64{cx, cy, x, y}})
}

func (r *Recorder) Ellipse(cx, cy, rx, ry float64) {
	r.add(Call{Op: OpEllipse, Args: []float64{cx, cy, rx, ry}})
}

func (r *Recorder) ClosePath() {
	r.add(Call{Op: OpClosePath})
}

func (r *Recorder) Stroke() {
	r.add(Call{Op: OpStroke})
}

func (r *Recorder) Fill() {
	r.add(Call{Op: OpFill})
}

func (r *Recorder) FillText(text string, x, y, maxWidth float64) {
	r.add(Call{Op: OpFillText, Text: text, Args: []float64{x, y, maxWidth}})
}

// Reset discards the recorded calls
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Len returns the number of recorded calls
func (r *Recorder) Len() int {
	return len(r.Calls)
}

// Ops returns every recorded call with the given op
func (r *Recorder) Ops(op Op) []Call {

	var out []Call

	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}

	return out
}

// Count returns the number of recorded calls with the given op
func (r *Recorder) Count(op Op) int {
	return len(r.Ops(op))
}

// Texts returns the text of every FillText call in order
func (r *Recorder) Texts() []string {

	var out []string

	for _, c := range r.Ops(OpFillText) {
		out = append(out, c.Text)
	}

	return out
}

// Surface is a canvas.Surface whose context is a Recorder
type Surface struct {
	Recorder
}

// NewSurface returns an empty recording surface
func NewSurface() *Surface {
	return &Surface{}
}

// Context2D returns the recorder, nil for a nil surface
func (s *Surface) Context2D() canvas.Context {
	if s == nil {
		return nil
	}

	return &s.Recorder
}

// Detached is a surface that never yields a drawing context
type Detached struct{}

// Context2D always returns nil
func (Detached) Context2D() canvas.Context {
	return nil
}
