package result

import (
	"gonum.org/v1/gonum/floats"
)

// JoinPersons groups detections into persons.  A person is created for every
// face; the body whose box holds the face's left edge and bottom edge is
// assigned to it, then hands ending inside that body box become the left
// hand and hands starting inside it the right hand.  Gestures are attached
// when their part index matches a member entity id.  The person box is the
// union of all member boxes and BoxRaw is derived from shape
// ([batch, height, width, channels]) when supplied.
func JoinPersons(faces []Face, bodies []Body, hands []Hand,
	gestures []Gesture, shape []int) []Person {

	persons := make([]Person, 0, len(faces))

	for i := range faces {
		face := &faces[i]

		person := Person{
			ID:   i,
			Face: face,
		}

		for j := range bodies {
			body := &bodies[j]

			if body.Box.ContainsX(face.Box.X()) && body.Box.ContainsY(face.Box.Bottom()) {
				person.Body = body
			}
		}

		if person.Body != nil {
			bodyBox := person.Body.Box

			for j := range hands {
				hand := &hands[j]

				if !bodyBox.ContainsY(hand.Box.Bottom()) {
					continue
				}

				if bodyBox.ContainsX(hand.Box.Right()) {
					person.Hands.Left = hand
				}

				if bodyBox.ContainsX(hand.Box.X()) {
					person.Hands.Right = hand
				}
			}
		}

		for _, g := range gestures {
			if person.ownsGesture(g) {
				person.Gestures = append(person.Gestures, g)
			}
		}

		person.Box = person.unionBox()

		if len(shape) == 4 {
			raw := person.Box.Scale(float64(shape[2]), float64(shape[1]))
			person.BoxRaw = &raw
		}

		persons = append(persons, person)
	}

	return persons
}

// ownsGesture reports whether the gesture refers to one of the person's
// member entities
func (p *Person) ownsGesture(g Gesture) bool {
	switch g.Part {
	case GestureFace, GestureIris:
		return p.Face != nil && g.Index == p.Face.ID
	case GestureBody:
		return p.Body != nil && g.Index == p.Body.ID
	case GestureHand:
		if p.Hands.Left != nil && g.Index == p.Hands.Left.ID {
			return true
		}

		return p.Hands.Right != nil && g.Index == p.Hands.Right.ID
	}

	return false
}

// unionBox returns the box enclosing the boxes of all member entities
func (p *Person) unionBox() Box {

	var xs, ys []float64

	add := func(b Box) {
		if b.IsZero() {
			return
		}

		xs = append(xs, b.X(), b.Right())
		ys = append(ys, b.Y(), b.Bottom())
	}

	if p.Face != nil {
		add(p.Face.Box)
	}

	if p.Body != nil {
		add(p.Body.Box)
	}

	if p.Hands.Left != nil {
		add(p.Hands.Left.Box)
	}

	if p.Hands.Right != nil {
		add(p.Hands.Right.Box)
	}

	if len(xs) == 0 {
		return Box{}
	}

	minX, minY := floats.Min(xs), floats.Min(ys)

	return Box{minX, minY, floats.Max(xs) - minX, floats.Max(ys) - minY}
}
