// Package cvcanvas implements the canvas drawing context on an OpenCV
// gocv.Mat so annotations can be drawn directly onto captured video frames.
package cvcanvas

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"github.com/swdee/go-annotate/canvas"
	"github.com/swdee/go-annotate/log"
)

var logger = log.New("cvcanvas")

// hersheyHeight is the approximate pixel height of the Hershey simplex font
// at scale 1
const hersheyHeight = 22.0

// Surface wraps a BGR gocv.Mat
type Surface struct {
	img   *gocv.Mat
	owned bool
	ctx   *Context
}

// New creates a black surface of the given size.  Close must be called to
// release it.
func New(width, height int) *Surface {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)
	s := wrap(&img)
	s.owned = true
	return s
}

// FromMat draws directly onto an existing 8 bit BGR Mat such as a frame read
// from a video capture.  The caller keeps ownership of the Mat.
func FromMat(img *gocv.Mat) *Surface {
	return wrap(img)
}

func wrap(img *gocv.Mat) *Surface {
	return &Surface{
		img: img,
		ctx: &Context{
			img:       img,
			stroke:    color.NRGBA{A: 255},
			fill:      color.NRGBA{A: 255},
			lineWidth: 1,
			font:      canvas.DefaultFont(),
		},
	}
}

// Context2D returns the drawing context, nil for a nil surface or an empty
// Mat
func (s *Surface) Context2D() canvas.Context {
	if s == nil || s.ctx == nil || s.img == nil || s.img.Empty() {
		return nil
	}

	return s.ctx
}

// Mat returns the underlying Mat
func (s *Surface) Mat() *gocv.Mat {
	return s.img
}

// Image converts the Mat to an image, nil on failure
func (s *Surface) Image() image.Image {

	img, err := s.img.ToImage()

	if err != nil {
		logger.Debugf("error converting mat to image: %v", err)
		return nil
	}

	return img
}

// DrawImage copies img onto the Mat at (x, y), alpha is ignored since the
// Mat has no alpha channel
func (s *Surface) DrawImage(img image.Image, x, y float64) {

	src, err := gocv.ImageToMatRGB(img)

	if err != nil {
		logger.Debugf("error converting image to mat: %v", err)
		return
	}

	defer src.Close()

	at := image.Pt(int(x), int(y))
	dstRect := image.Rect(0, 0, s.img.Cols(), s.img.Rows()).
		Intersect(image.Rectangle{Min: at, Max: at.Add(image.Pt(src.Cols(), src.Rows()))})

	if dstRect.Empty() {
		return
	}

	srcRect := dstRect.Sub(at)

	roi := s.img.Region(dstRect)
	defer roi.Close()

	sub := src.Region(srcRect)
	defer sub.Close()

	sub.CopyTo(&roi)
}

// Close releases the Mat if it was created by New
func (s *Surface) Close() error {
	if s.owned {
		return s.img.Close()
	}

	return nil
}

// Context adapts gocv drawing functions to canvas.Context.  Semi transparent
// colors are blended by drawing onto a copy of the affected region and
// merging it back with AddWeighted.
type Context struct {
	img *gocv.Mat

	stroke    color.NRGBA
	fill      color.NRGBA
	lineWidth float64
	font      canvas.Font

	path canvas.Path
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}

	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (c *Context) SetStrokeColor(col color.Color) {
	c.stroke = toNRGBA(col)
}

func (c *Context) SetFillColor(col color.Color) {
	c.fill = toNRGBA(col)
}

func (c *Context) SetLineWidth(width float64) {
	if width > 0 {
		c.lineWidth = width
	}
}

// SetLineJoin is ignored, OpenCV always draws round joins for thick lines
func (c *Context) SetLineJoin(canvas.LineJoin) {}

func (c *Context) SetFont(f canvas.Font) {
	c.font = f
}

func (c *Context) BeginPath() {
	c.path.Reset()
}

func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(x, y)
}

func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}

func (c *Context) Ellipse(cx, cy, rx, ry float64) {
	c.path.Ellipse(cx, cy, rx, ry)
}

func (c *Context) ClosePath() {
	c.path.ClosePath()
}

func (c *Context) Stroke() {

	if c.stroke.A == 0 || c.path.Empty() {
		return
	}

	thickness := int(math.Max(1, math.Round(c.lineWidth)))

	c.blend(c.stroke, c.pathBounds(float64(thickness)), func(dst *gocv.Mat, offset image.Point, col color.RGBA) {

		var open, closed [][]image.Point

		for _, sp := range c.path.Subpaths() {
			pts := toPoints(sp.Points, offset)

			if len(pts) < 2 {
				continue
			}

			if sp.Closed {
				closed = append(closed, pts)
			} else {
				open = append(open, pts)
			}
		}

		polylines(dst, open, false, col, thickness)
		polylines(dst, closed, true, col, thickness)
	})
}

func (c *Context) Fill() {

	if c.fill.A == 0 || c.path.Empty() {
		return
	}

	c.blend(c.fill, c.pathBounds(1), func(dst *gocv.Mat, offset image.Point, col color.RGBA) {

		var polys [][]image.Point

		for _, sp := range c.path.Subpaths() {
			if pts := toPoints(sp.Points, offset); len(pts) >= 3 {
				polys = append(polys, pts)
			}
		}

		if len(polys) == 0 {
			return
		}

		pv := gocv.NewPointsVectorFromPoints(polys)
		defer pv.Close()

		gocv.FillPoly(dst, pv, col)
	})
}

// FillText draws text with the Hershey simplex font with its baseline at y
func (c *Context) FillText(text string, x, y, maxWidth float64) {

	if text == "" || c.fill.A == 0 {
		return
	}

	text = c.font.Apply(text)

	scale := c.font.Size / hersheyHeight
	thickness := 1

	if c.font.Bold {
		thickness = 2
	}

	if maxWidth > 0 {
		runes := []rune(text)

		for len(runes) > 0 {
			size := gocv.GetTextSize(string(runes), gocv.FontHersheySimplex, scale, thickness)

			if float64(size.X) <= maxWidth {
				break
			}

			runes = runes[:len(runes)-1]
		}

		text = string(runes)
	}

	if text == "" {
		return
	}

	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, scale, thickness)

	// region the text can touch, including descenders
	bounds := image.Rect(int(x)-2, int(y)-size.Y-2, int(x)+size.X+2, int(y)+size.Y/2+2)

	c.blend(c.fill, bounds, func(dst *gocv.Mat, offset image.Point, col color.RGBA) {
		gocv.PutTextWithParams(dst, text, image.Pt(int(x)-offset.X, int(y)-offset.Y),
			gocv.FontHersheySimplex, scale, col, thickness, gocv.LineAA, false)
	})
}

// pathBounds returns the pixel region covered by the current path grown by
// pad on every side
func (c *Context) pathBounds(pad float64) image.Rectangle {
	min, max := c.path.Bounds()

	return image.Rect(
		int(math.Floor(min.X-pad)), int(math.Floor(min.Y-pad)),
		int(math.Ceil(max.X+pad))+1, int(math.Ceil(max.Y+pad))+1,
	)
}

// blend runs draw with an opaque version of col.  Opaque colors draw
// straight onto the Mat, otherwise draw runs on a copy of the bounds region
// which is then weighted back by alpha.
func (c *Context) blend(col color.NRGBA, bounds image.Rectangle, draw func(dst *gocv.Mat, offset image.Point, col color.RGBA)) {

	opaque := color.RGBA{R: col.R, G: col.G, B: col.B, A: 255}

	if col.A == 255 {
		draw(c.img, image.Point{}, opaque)
		return
	}

	r := bounds.Intersect(image.Rect(0, 0, c.img.Cols(), c.img.Rows()))

	if r.Empty() {
		return
	}

	roi := c.img.Region(r)
	defer roi.Close()

	overlay := roi.Clone()
	defer overlay.Close()

	draw(&overlay, r.Min, opaque)

	alpha := float64(col.A) / 255
	gocv.AddWeighted(overlay, alpha, roi, 1-alpha, 0, &roi)
}

func polylines(dst *gocv.Mat, polys [][]image.Point, closed bool, col color.RGBA, thickness int) {

	if len(polys) == 0 {
		return
	}

	pv := gocv.NewPointsVectorFromPoints(polys)
	defer pv.Close()

	gocv.Polylines(dst, pv, closed, col, thickness)
}

func toPoints(vs []canvas.Vec, offset image.Point) []image.Point {

	pts := make([]image.Point, 0, len(vs))

	for _, v := range vs {
		pts = append(pts, image.Pt(
			int(math.Round(v.X))-offset.X,
			int(math.Round(v.Y))-offset.Y,
		))
	}

	return pts
}
