package result

import (
	"encoding/json"
	"fmt"
)

// Gesture parts identify which entity type a gesture was detected on
const (
	GestureFace = "face"
	GestureIris = "iris"
	GestureBody = "body"
	GestureHand = "hand"
)

// gestureParts lists the recognised part keys in lookup order
var gestureParts = []string{GestureFace, GestureIris, GestureBody, GestureHand}

// Gesture is a gesture detected on one entity.  On the wire it is a record
// with a single part key holding the entity index plus the gesture string,
// for example {"face": 0, "gesture": "blink left eye"}.
type Gesture struct {
	// Part is one of face, iris, body or hand
	Part string
	// Index is the id of the entity the gesture belongs to
	Index int
	// Gesture is the gesture description, empty when nothing was detected
	Gesture string
}

// MarshalJSON encodes the gesture in its single part key form
func (g Gesture) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		g.Part:    g.Index,
		"gesture": g.Gesture,
	})
}

// UnmarshalJSON decodes the single part key form
func (g *Gesture) UnmarshalJSON(data []byte) error {

	var raw map[string]json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("gesture must be an object: %w", err)
	}

	*g = Gesture{}

	if msg, ok := raw["gesture"]; ok {
		if err := json.Unmarshal(msg, &g.Gesture); err != nil {
			return fmt.Errorf("gesture text: %w", err)
		}
	}

	for _, part := range gestureParts {
		msg, ok := raw[part]

		if !ok {
			continue
		}

		var idx float64

		if err := json.Unmarshal(msg, &idx); err != nil {
			return fmt.Errorf("gesture %s index: %w", part, err)
		}

		g.Part = part
		g.Index = int(idx)
		return nil
	}

	// fall back to whichever other key is present so unknown parts still
	// render
	for key, msg := range raw {
		if key == "gesture" {
			continue
		}

		var idx float64

		if err := json.Unmarshal(msg, &idx); err == nil {
			g.Part = key
			g.Index = int(idx)
			return nil
		}
	}

	return nil
}
