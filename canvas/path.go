package canvas

import (
	"math"
)

// Vec is a point on the drawing surface
type Vec struct {
	X, Y float64
}

// Subpath is a flattened run of connected points
type Subpath struct {
	Points []Vec
	Closed bool
}

// Path accumulates canvas style path commands and flattens curves into
// polylines for backends that can only draw straight segments
type Path struct {
	subpaths []Subpath
}

// maxCurveSegments caps the number of segments a single curve flattens to
const maxCurveSegments = 128

// Reset clears the path
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

// Empty reports whether the path has no points
func (p *Path) Empty() bool {
	return len(p.subpaths) == 0
}

// Subpaths returns the flattened subpaths.  The slice is owned by the path
// and is only valid until the next mutating call.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// current returns the open subpath, or nil when a new one must be started
func (p *Path) current() *Subpath {
	if len(p.subpaths) == 0 {
		return nil
	}

	sp := &p.subpaths[len(p.subpaths)-1]

	if sp.Closed {
		return nil
	}

	return sp
}

// MoveTo starts a new subpath at (x, y)
func (p *Path) MoveTo(x, y float64) {
	// a subpath holding only a lone move is replaced
	if sp := p.current(); sp != nil && len(sp.Points) == 1 {
		sp.Points[0] = Vec{x, y}
		return
	}

	p.subpaths = append(p.subpaths, Subpath{Points: []Vec{{x, y}}})
}

// LineTo adds a straight segment.  Without a current point it behaves like
// MoveTo.
func (p *Path) LineTo(x, y float64) {
	sp := p.ensure(x, y)
	sp.Points = append(sp.Points, Vec{x, y})
}

// QuadraticTo adds a quadratic Bézier curve flattened to line segments
func (p *Path) QuadraticTo(cx, cy, x, y float64) {

	sp := p.ensure(cx, cy)
	p0 := sp.Points[len(sp.Points)-1]

	length := math.Hypot(cx-p0.X, cy-p0.Y) + math.Hypot(x-cx, y-cy)
	n := int(math.Ceil(math.Sqrt(length)))

	if n < 1 {
		n = 1
	}

	if n > maxCurveSegments {
		n = maxCurveSegments
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t

		sp.Points = append(sp.Points, Vec{
			X: mt*mt*p0.X + 2*mt*t*cx + t*t*x,
			Y: mt*mt*p0.Y + 2*mt*t*cy + t*t*y,
		})
	}
}

// Ellipse adds a closed axis aligned ellipse as its own subpath
func (p *Path) Ellipse(cx, cy, rx, ry float64) {

	rx, ry = math.Abs(rx), math.Abs(ry)

	n := int(math.Ceil(2 * math.Pi * math.Max(rx, ry) / 3))

	if n < 8 {
		n = 8
	}

	if n > maxCurveSegments {
		n = maxCurveSegments
	}

	pts := make([]Vec, 0, n)

	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts = append(pts, Vec{cx + rx*math.Cos(a), cy + ry*math.Sin(a)})
	}

	// drop a pending lone move so it does not leave a stray point
	if sp := p.current(); sp != nil && len(sp.Points) == 1 {
		p.subpaths = p.subpaths[:len(p.subpaths)-1]
	}

	p.subpaths = append(p.subpaths, Subpath{Points: pts, Closed: true})
}

// ClosePath closes the current subpath
func (p *Path) ClosePath() {
	if sp := p.current(); sp != nil {
		sp.Closed = true
	}
}

// ensure returns the open subpath, starting one at (x, y) if needed.  After a
// ClosePath the new subpath starts at the start of the closed one, matching
// canvas semantics.
func (p *Path) ensure(x, y float64) *Subpath {

	if sp := p.current(); sp != nil {
		return sp
	}

	start := Vec{x, y}

	if n := len(p.subpaths); n > 0 {
		start = p.subpaths[n-1].Points[0]
	}

	p.subpaths = append(p.subpaths, Subpath{Points: []Vec{start}})

	return &p.subpaths[len(p.subpaths)-1]
}

// Bounds returns the min and max corners of every point in the path
func (p *Path) Bounds() (min, max Vec) {

	min = Vec{math.Inf(1), math.Inf(1)}
	max = Vec{math.Inf(-1), math.Inf(-1)}

	for _, sp := range p.subpaths {
		for _, pt := range sp.Points {
			min.X = math.Min(min.X, pt.X)
			min.Y = math.Min(min.Y, pt.Y)
			max.X = math.Max(max.X, pt.X)
			max.Y = math.Max(max.Y, pt.Y)
		}
	}

	return min, max
}
