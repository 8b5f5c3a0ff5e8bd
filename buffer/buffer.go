// Package buffer smooths detection results across frames so annotations
// move steadily instead of jittering with every inference.
package buffer

import (
	"sync"

	"github.com/swdee/go-annotate/log"
	"github.com/swdee/go-annotate/result"
)

var logger = log.New("buffer")

// Buffer holds the interpolated state of a single stream of results.  Each
// stream should use its own Buffer.
type Buffer struct {
	// state is the last smoothed result, nil until the first update
	state *result.Result
	sync.Mutex
}

// New returns an empty buffer
func New() *Buffer {
	return &Buffer{}
}

// Update blends the incoming result into the buffer and returns a copy of
// the smoothed state.  Each coordinate moves 1/factor of the way from its
// buffered value to the incoming value, so a factor of 1 follows the
// incoming result exactly.  An entity list whose length changed since the
// last frame replaces the buffered list outright.
func (b *Buffer) Update(res *result.Result, factor float64) *result.Result {
	if res == nil {
		return b.Snapshot()
	}

	f := clampFactor(factor)

	if f != factor {
		logger.Debugf("Convergence factor %v clamped to %v", factor, f)
	}

	b.Lock()
	defer b.Unlock()

	if b.state == nil {
		b.state = &result.Result{}
	}

	b.state.Body = b.bodies(res.Body, f)
	b.state.Hand = b.hands(res.Hand, f)
	b.state.Persons = b.persons(res.People(), f)

	// raw kinds and frame metadata follow the incoming result
	raw := res.Clone()
	b.state.Face = raw.Face
	b.state.Object = raw.Object
	b.state.Gesture = raw.Gesture
	b.state.Performance = raw.Performance
	b.state.Timestamp = raw.Timestamp
	b.state.Shape = raw.Shape

	return b.state.Clone()
}

// Reset replaces the buffered state with a copy of the given result so the
// next Update starts from it.  A nil result empties the buffer.
func (b *Buffer) Reset(res *result.Result) {
	b.Lock()
	defer b.Unlock()

	b.state = res.Clone()

	if b.state != nil && b.state.Persons == nil {
		b.state.Persons = result.ClonePersons(res.People())
	}
}

// Snapshot returns a copy of the buffered state, or nil before the first
// update
func (b *Buffer) Snapshot() *result.Result {
	b.Lock()
	defer b.Unlock()

	return b.state.Clone()
}

// bodies smooths the box, raw box and keypoint positions of each body
func (b *Buffer) bodies(in []result.Body, f float64) []result.Body {

	old := b.state.Body

	if len(old) != len(in) {
		logger.Debugf("Body buffer reset from %d to %d entries", len(old), len(in))
		return result.CloneBodies(in)
	}

	out := result.CloneBodies(in)

	for i := range out {
		cur := &out[i]
		prev := &old[i]

		cur.Box = smoothBox(prev.Box, cur.Box, f)
		cur.BoxRaw = smoothBox(prev.BoxRaw, cur.BoxRaw, f)

		for j := range cur.Keypoints {
			if j >= len(prev.Keypoints) {
				break
			}

			kp := &cur.Keypoints[j]
			kp.Position = blendPosition(prev.Keypoints[j].Position, kp.Position, f)

			if kp.PositionRaw != nil && prev.Keypoints[j].PositionRaw != nil {
				raw := blendPosition(*prev.Keypoints[j].PositionRaw, *kp.PositionRaw, f)
				kp.PositionRaw = &raw
			}
		}
	}

	return out
}

// hands smooths the box, raw box, landmarks and annotation groups of each
// hand.  Annotation groups missing from the incoming hand are dropped.
func (b *Buffer) hands(in []result.Hand, f float64) []result.Hand {

	old := b.state.Hand

	if len(old) != len(in) {
		logger.Debugf("Hand buffer reset from %d to %d entries", len(old), len(in))
		return result.CloneHands(in)
	}

	out := result.CloneHands(in)

	for i := range out {
		cur := &out[i]
		prev := &old[i]

		cur.Box = smoothBox(prev.Box, cur.Box, f)
		cur.BoxRaw = smoothBox(prev.BoxRaw, cur.BoxRaw, f)
		cur.Landmarks = blendPoints(prev.Landmarks, cur.Landmarks, f)

		for key, pts := range cur.Annotations {
			cur.Annotations[key] = blendPoints(prev.Annotations[key], pts, f)
		}
	}

	return out
}

// persons smooths only the box of each person, the nested face, body and
// hands keep referencing the entities of the incoming frame
func (b *Buffer) persons(in []result.Person, f float64) []result.Person {

	old := b.state.Persons

	if len(old) != len(in) {
		logger.Debugf("Person buffer reset from %d to %d entries", len(old), len(in))
		return result.ClonePersons(in)
	}

	out := result.ClonePersons(in)

	for i := range out {
		out[i].Box = smoothBox(old[i].Box, out[i].Box, f)
	}

	return out
}

// smoothBox returns the buffered box moved towards the incoming box
func smoothBox(prev, cur result.Box, f float64) result.Box {
	blendBox(&prev, cur, f)
	return prev
}
