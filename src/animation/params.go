package animation

import (
	stdimage "image"
	"time"

	"github.com/seventv/LogoAnimator/src/image"
)

const (
	FrameCount   = 20
	FrameDelay   = 100 * time.Millisecond
	LoopCount    = 0 // forever
	MinScale     = 1.0
	ScaleRange   = 0.1
	CanvasFactor = 1.15
)

// Progress is a triangular ramp over n frames: 0 at i=0, 1 at i=n/2, back towards 0 at i=n-1.
// For odd n the ramp is not symmetric, the peak is never reached.
func Progress(i, n int) float64 {
	half := float64(n) / 2
	if float64(i) < half {
		return float64(i) / half
	}

	return float64(n-i) / half
}

func Scale(i, n int) float64 {
	return MinScale + ScaleRange*Progress(i, n)
}

// CanvasSize truncates, so every scaled copy fits with at least a pixel of slack.
func CanvasSize(width, height int) stdimage.Point {
	return scaled(width, height, CanvasFactor)
}

func ResizedSize(width, height int, scale float64) stdimage.Point {
	return scaled(width, height, scale)
}

func Offset(canvas, resized stdimage.Point) stdimage.Point {
	return stdimage.Pt((canvas.X-resized.X)/2, (canvas.Y-resized.Y)/2)
}

func scaled(width, height int, factor float64) stdimage.Point {
	return stdimage.Pt(int(float64(width)*factor), int(float64(height)*factor))
}

// Plan lays out every frame of the animation for a width x height source.
func Plan(width, height int) []image.Layout {
	canvas := CanvasSize(width, height)

	layouts := make([]image.Layout, FrameCount)
	for i := range layouts {
		scale := Scale(i, FrameCount)
		resized := ResizedSize(width, height, scale)

		layouts[i] = image.Layout{
			Index:   i,
			Scale:   scale,
			Resized: resized,
			Offset:  Offset(canvas, resized),
		}
	}

	return layouts
}
