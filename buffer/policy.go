package buffer

import "github.com/swdee/go-annotate/result"

// buffered records which entity kinds are smoothed.  Faces, objects and
// gestures are always drawn from the raw frame.
var buffered = map[result.Kind]bool{
	result.KindFace:    false,
	result.KindBody:    true,
	result.KindHand:    true,
	result.KindObject:  false,
	result.KindGesture: false,
	result.KindPerson:  true,
}

// Supports reports whether the buffer smooths entities of the given kind
func Supports(k result.Kind) bool {
	return buffered[k]
}
