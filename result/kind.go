package result

// Kind identifies one of the entity arrays carried by a Result
type Kind int

const (
	KindFace Kind = iota
	KindBody
	KindHand
	KindObject
	KindGesture
	KindPerson
)

// Kinds lists every entity kind
var Kinds = []Kind{KindFace, KindBody, KindHand, KindObject, KindGesture, KindPerson}

// String returns the result field name of the kind
func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindBody:
		return "body"
	case KindHand:
		return "hand"
	case KindObject:
		return "object"
	case KindGesture:
		return "gesture"
	case KindPerson:
		return "person"
	}

	return "unknown"
}

// Len returns the number of entities of the given kind in the result
func (r *Result) Len(k Kind) int {
	if r == nil {
		return 0
	}

	switch k {
	case KindFace:
		return len(r.Face)
	case KindBody:
		return len(r.Body)
	case KindHand:
		return len(r.Hand)
	case KindObject:
		return len(r.Object)
	case KindGesture:
		return len(r.Gesture)
	case KindPerson:
		return len(r.People())
	}

	return 0
}
