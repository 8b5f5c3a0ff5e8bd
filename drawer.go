package annotate

import (
	"github.com/swdee/go-annotate/buffer"
	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/log"
	"github.com/swdee/go-annotate/render"
	"github.com/swdee/go-annotate/result"
)

var logger = log.New("annotate")

// All draws every entity of the result onto the surface in the order face,
// body, hand, gesture, object.  When the style enables buffered output the
// result is blended into buf first and bodies and hands are drawn from the
// smoothed state, otherwise buf is reset to the raw result so turning
// buffering back on resumes from current data.  Persons are not drawn.
//
// Nothing is drawn for a nil result or a surface without a context.  buf may
// be nil, in which case the result is always drawn raw.
func All(surface canvas.Surface, res *result.Result, buf *buffer.Buffer, style render.Style) {

	defer func() {
		if r := recover(); r != nil {
			logger.Warningf("Frame annotation aborted: %v", r)
		}
	}()

	if res == nil || canvas.ContextOf(surface) == nil {
		return
	}

	smoothed := res

	if buf != nil {
		if style.BufferedOutput {
			smoothed = buf.Update(res, style.BufferedFactor)
		} else {
			buf.Reset(res)
		}
	}

	// source picks the smoothed result for kinds the buffer interpolates
	source := func(k result.Kind) *result.Result {
		if buffer.Supports(k) && smoothed != nil {
			return smoothed
		}

		return res
	}

	render.Face(surface, source(result.KindFace).Face, style)
	render.Body(surface, source(result.KindBody).Body, style)
	render.Hand(surface, source(result.KindHand).Hand, style)
	render.Gesture(surface, source(result.KindGesture).Gesture, style)
	render.Object(surface, source(result.KindObject).Object, style)
}

// Drawer annotates a single stream of results with a base style and its own
// interpolation buffer.  A Drawer is not safe for concurrent rendering of
// different streams, create one per stream instead.
type Drawer struct {
	// Style is the base style each call's override is applied to
	Style render.Style
	buf   *buffer.Buffer
}

// NewDrawer returns a drawer using the given base style
func NewDrawer(style render.Style) *Drawer {
	return &Drawer{
		Style: style,
		buf:   buffer.New(),
	}
}

// Buffer returns the drawer's interpolation buffer
func (d *Drawer) Buffer() *buffer.Buffer {
	return d.buf
}

// All resolves the override against the base style and draws the complete
// result, see the package level All
func (d *Drawer) All(surface canvas.Surface, res *result.Result, o *render.Override) {
	All(surface, res, d.buf, d.Style.With(o))
}

// Face draws faces with the resolved style
func (d *Drawer) Face(surface canvas.Surface, faces []result.Face, o *render.Override) {
	render.Face(surface, faces, d.Style.With(o))
}

// Body draws bodies with the resolved style
func (d *Drawer) Body(surface canvas.Surface, bodies []result.Body, o *render.Override) {
	render.Body(surface, bodies, d.Style.With(o))
}

// Hand draws hands with the resolved style
func (d *Drawer) Hand(surface canvas.Surface, hands []result.Hand, o *render.Override) {
	render.Hand(surface, hands, d.Style.With(o))
}

// Object draws detected objects with the resolved style
func (d *Drawer) Object(surface canvas.Surface, items []result.Item, o *render.Override) {
	render.Object(surface, items, d.Style.With(o))
}

// Gesture draws the gesture list with the resolved style
func (d *Drawer) Gesture(surface canvas.Surface, gestures []result.Gesture, o *render.Override) {
	render.Gesture(surface, gestures, d.Style.With(o))
}

// Person draws persons with the resolved style.  Persons are only drawn on
// request, All never draws them.
func (d *Drawer) Person(surface canvas.Surface, persons []result.Person, o *render.Override) {
	render.Person(surface, persons, d.Style.With(o))
}

// Persons draws the persons of the result, taking them from the buffer's
// smoothed state when buffered output is enabled and the buffer holds a
// frame
func (d *Drawer) Persons(surface canvas.Surface, res *result.Result, o *render.Override) {

	if res == nil {
		return
	}

	style := d.Style.With(o)
	persons := res.People()

	if style.BufferedOutput {
		if snap := d.buf.Snapshot(); snap != nil && len(snap.Persons) == len(persons) {
			persons = snap.Persons
		}
	}

	render.Person(surface, persons, style)
}
