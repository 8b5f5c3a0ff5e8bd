package buffer

import (
	"math"

	"github.com/swdee/go-annotate/result"
	"gonum.org/v1/gonum/floats"
)

// clampFactor returns the convergence factor to use, values below 1 and NaN
// become 1 which makes the buffer follow the incoming frame exactly
func clampFactor(f float64) float64 {
	if math.IsNaN(f) || f < 1 {
		return 1
	}

	return f
}

// blend moves the buffered value b towards the incoming value v by 1/f of
// their distance
func blend(b, v, f float64) float64 {
	return ((f-1)*b + v) / f
}

// blendInto applies the blend to each element of dst in place
func blendInto(dst, src []float64, f float64) {
	floats.Scale(f-1, dst)
	floats.Add(dst, src)
	floats.Scale(1/f, dst)
}

func blendBox(dst *result.Box, src result.Box, f float64) {
	blendInto(dst[:], src[:], f)
}

func blendPoint(b, v result.Point, f float64) result.Point {
	return result.Point{
		X: blend(b.X, v.X, f),
		Y: blend(b.Y, v.Y, f),
		Z: blend(b.Z, v.Z, f),
	}
}

func blendPosition(b, v result.Position, f float64) result.Position {
	return result.Position{
		X: blend(b.X, v.X, f),
		Y: blend(b.Y, v.Y, f),
		Z: blend(b.Z, v.Z, f),
	}
}

// blendPoints returns the smoothed points, falling back to a copy of the
// incoming points when the lengths differ
func blendPoints(b, v []result.Point, f float64) []result.Point {
	if v == nil {
		return nil
	}

	out := make([]result.Point, len(v))

	if len(b) != len(v) {
		copy(out, v)
		return out
	}

	for i := range v {
		out[i] = blendPoint(b[i], v[i], f)
	}

	return out
}
