package raster

import (
	clipper "github.com/ctessum/go.clipper"

	"github.com/swdee/go-annotate/canvas"
)

// clipperScale converts float coordinates into the integer space clipper
// works in, giving 1/16th pixel precision
const clipperScale = 16

// joinTypes maps canvas line joins to clipper offset joins, clipper has no
// bevel so square is the closest match
var joinTypes = map[canvas.LineJoin]clipper.JoinType{
	canvas.JoinMiter: clipper.JtMiter,
	canvas.JoinRound: clipper.JtRound,
	canvas.JoinBevel: clipper.JtSquare,
}

// strokeOutlines offsets every subpath by half the line width and returns
// the resulting outline polygons in pixel space.  Open subpaths get butt
// caps like a default canvas stroke.
func strokeOutlines(subpaths []canvas.Subpath, width float64, join canvas.LineJoin) [][]canvas.Vec {

	if width <= 0 {
		return nil
	}

	jt, ok := joinTypes[join]

	if !ok {
		jt = clipper.JtMiter
	}

	co := clipper.NewClipperOffset()
	added := 0

	for _, sp := range subpaths {
		path := toClipperPath(sp.Points)

		if len(path) < 2 {
			// a single point strokes to nothing
			continue
		}

		end := clipper.EtOpenButt

		if sp.Closed && len(path) > 2 {
			end = clipper.EtClosedLine
		}

		co.AddPath(path, jt, end)
		added++
	}

	if added == 0 {
		return nil
	}

	solution := co.Execute(width / 2 * clipperScale)

	outlines := make([][]canvas.Vec, 0, len(solution))

	for _, sol := range solution {
		if len(sol) < 3 {
			continue
		}

		poly := make([]canvas.Vec, 0, len(sol))

		for _, pt := range sol {
			poly = append(poly, canvas.Vec{
				X: float64(pt.X) / clipperScale,
				Y: float64(pt.Y) / clipperScale,
			})
		}

		outlines = append(outlines, poly)
	}

	return outlines
}

// toClipperPath scales points into clipper space dropping consecutive
// duplicates
func toClipperPath(points []canvas.Vec) clipper.Path {

	var path clipper.Path

	for _, pt := range points {
		ip := &clipper.IntPoint{
			X: clipper.CInt(pt.X * clipperScale),
			Y: clipper.CInt(pt.Y * clipperScale),
		}

		if n := len(path); n > 0 && path[n-1].X == ip.X && path[n-1].Y == ip.Y {
			continue
		}

		path = append(path, ip)
	}

	return path
}
