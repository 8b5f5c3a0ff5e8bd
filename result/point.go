package result

import (
	"encoding/json"
	"fmt"
)

// Point is a coordinate in image pixel space.  Z carries the optional depth
// component and is 0 when the detector did not supply one.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt is shorthand for a Point without depth
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Pt3 is shorthand for a Point with depth
func Pt3(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// MarshalJSON encodes the point as a [x, y, z] array
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

// UnmarshalJSON decodes a [x, y] or [x, y, z] array
func (p *Point) UnmarshalJSON(data []byte) error {

	var coords []float64

	if err := json.Unmarshal(data, &coords); err != nil {
		return fmt.Errorf("point must be a numeric array: %w", err)
	}

	if len(coords) < 2 {
		return fmt.Errorf("point needs at least 2 coordinates, got %d", len(coords))
	}

	p.X, p.Y, p.Z = coords[0], coords[1], 0

	if len(coords) > 2 {
		p.Z = coords[2]
	}

	return nil
}

// Position is the named-field form of a coordinate used by body keypoints
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Point converts the position to a Point
func (p Position) Point() Point {
	return Point{X: p.X, Y: p.Y, Z: p.Z}
}
