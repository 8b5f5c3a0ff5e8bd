package result

// Box is a bounding box in [x, y, width, height] format
type Box [4]float64

// NewBox creates a Box with the given coordinates
func NewBox(x, y, width, height float64) Box {
	return Box{x, y, width, height}
}

// X returns the left coordinate of the box
func (b Box) X() float64 {
	return b[0]
}

// Y returns the top coordinate of the box
func (b Box) Y() float64 {
	return b[1]
}

// Width returns the width of the box
func (b Box) Width() float64 {
	return b[2]
}

// Height returns the height of the box
func (b Box) Height() float64 {
	return b[3]
}

// Right returns the bottom-right x coordinate of the box
func (b Box) Right() float64 {
	return b[0] + b[2]
}

// Bottom returns the bottom-right y coordinate of the box
func (b Box) Bottom() float64 {
	return b[1] + b[3]
}

// Center returns the center point of the box
func (b Box) Center() Point {
	return Point{X: b[0] + b[2]/2, Y: b[1] + b[3]/2}
}

// IsZero reports whether every coordinate is zero, meaning the detector did
// not provide a box
func (b Box) IsZero() bool {
	return b == Box{}
}

// ContainsX reports whether x lies strictly between the left and right edges
func (b Box) ContainsX(x float64) bool {
	return x > b[0] && x < b.Right()
}

// ContainsY reports whether y lies strictly between the top and bottom edges
func (b Box) ContainsY(y float64) bool {
	return y > b[1] && y < b.Bottom()
}

// Scale returns the box with x/width divided by width and y/height divided
// by height, converting pixel coordinates to the 0..1 range
func (b Box) Scale(width, height float64) Box {
	if width == 0 || height == 0 {
		return Box{}
	}

	return Box{b[0] / width, b[1] / height, b[2] / width, b[3] / height}
}
