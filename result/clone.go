package result

// clonePoints returns a copy of a point slice, preserving nil
func clonePoints(pts []Point) []Point {
	if pts == nil {
		return nil
	}

	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}

// cloneAnnotations copies every annotation group
func cloneAnnotations(in map[string][]Point) map[string][]Point {
	if in == nil {
		return nil
	}

	out := make(map[string][]Point, len(in))

	for key, pts := range in {
		out[key] = clonePoints(pts)
	}

	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	c := *v
	return &c
}

func cloneFloats(in []float64) []float64 {
	if in == nil {
		return nil
	}

	out := make([]float64, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy of the face
func (f *Face) Clone() Face {
	c := *f
	c.Mesh = clonePoints(f.Mesh)
	c.MeshRaw = clonePoints(f.MeshRaw)
	c.Annotations = cloneAnnotations(f.Annotations)
	c.Age = cloneFloat(f.Age)
	c.GenderConfidence = cloneFloat(f.GenderConfidence)
	c.Iris = cloneFloat(f.Iris)
	c.Embedding = cloneFloats(f.Embedding)

	if f.Emotion != nil {
		c.Emotion = make([]Emotion, len(f.Emotion))
		copy(c.Emotion, f.Emotion)
	}

	if f.Rotation != nil {
		rot := *f.Rotation
		c.Rotation = &rot
	}

	return c
}

// Clone returns a deep copy of the body
func (b *Body) Clone() Body {
	c := *b

	if b.Keypoints != nil {
		c.Keypoints = make([]Keypoint, len(b.Keypoints))

		for i, kp := range b.Keypoints {
			if kp.PositionRaw != nil {
				raw := *kp.PositionRaw
				kp.PositionRaw = &raw
			}

			kp.Presence = cloneFloat(kp.Presence)
			c.Keypoints[i] = kp
		}
	}

	return c
}

// Clone returns a deep copy of the hand
func (h *Hand) Clone() Hand {
	c := *h
	c.Landmarks = clonePoints(h.Landmarks)
	c.Annotations = cloneAnnotations(h.Annotations)
	return c
}

// Clone returns a deep copy of the item
func (it *Item) Clone() Item {
	c := *it
	c.Center = cloneFloats(it.Center)
	c.CenterRaw = cloneFloats(it.CenterRaw)

	if it.StrideSize != nil {
		s := *it.StrideSize
		c.StrideSize = &s
	}

	return c
}

// Clone returns a copy of the person.  Box, BoxRaw and the gesture list are
// copied while Face, Body and Hands keep pointing at the entities they were
// joined from.
func (p *Person) Clone() Person {
	c := *p

	if p.BoxRaw != nil {
		raw := *p.BoxRaw
		c.BoxRaw = &raw
	}

	if p.Gestures != nil {
		c.Gestures = make([]Gesture, len(p.Gestures))
		copy(c.Gestures, p.Gestures)
	}

	return c
}

// CloneFaces deep copies a face slice, preserving nil
func CloneFaces(in []Face) []Face {
	if in == nil {
		return nil
	}

	out := make([]Face, len(in))

	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

// CloneBodies deep copies a body slice, preserving nil
func CloneBodies(in []Body) []Body {
	if in == nil {
		return nil
	}

	out := make([]Body, len(in))

	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

// CloneHands deep copies a hand slice, preserving nil
func CloneHands(in []Hand) []Hand {
	if in == nil {
		return nil
	}

	out := make([]Hand, len(in))

	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

// CloneItems deep copies an item slice, preserving nil
func CloneItems(in []Item) []Item {
	if in == nil {
		return nil
	}

	out := make([]Item, len(in))

	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

// ClonePersons copies a person slice, preserving nil
func ClonePersons(in []Person) []Person {
	if in == nil {
		return nil
	}

	out := make([]Person, len(in))

	for i := range in {
		out[i] = in[i].Clone()
	}

	return out
}

// Clone returns a deep copy of the result.  Persons in the copy keep
// referencing the entities of the source result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}

	c := &Result{
		Face:      CloneFaces(r.Face),
		Body:      CloneBodies(r.Body),
		Hand:      CloneHands(r.Hand),
		Object:    CloneItems(r.Object),
		Persons:   ClonePersons(r.Persons),
		Timestamp: r.Timestamp,
	}

	if r.Gesture != nil {
		c.Gesture = make([]Gesture, len(r.Gesture))
		copy(c.Gesture, r.Gesture)
	}

	if r.Performance != nil {
		c.Performance = make(map[string]float64, len(r.Performance))

		for k, v := range r.Performance {
			c.Performance[k] = v
		}
	}

	if r.Shape != nil {
		c.Shape = make([]int, len(r.Shape))
		copy(c.Shape, r.Shape)
	}

	return c
}
