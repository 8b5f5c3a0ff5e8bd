package render

import (
	"image/color"

	"github.com/swdee/go-annotate/canvas"
)

var (
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	// irisStroke and irisFill are used for the iris outline when depth
	// tinting is enabled
	irisStroke = canvas.RGBA(255, 200, 255, 0.3)
	irisFill   = canvas.RGBA(255, 255, 200, 0.3)
)

const (
	// pointAlpha is the alpha of depth tinted points and polylines
	pointAlpha = 0.3
	// labelAlpha is the alpha of depth tinted keypoint labels and hand lines
	labelAlpha = 0.5
)

// DepthColor returns the depth tint for z, shifting toward red for positive z
// and blue for negative z
func DepthColor(z, alpha float64) color.NRGBA {
	return canvas.RGBA(127.5+2*z, 127.5-2*z, 255, alpha)
}
