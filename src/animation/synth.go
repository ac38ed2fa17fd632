package animation

import (
	"context"

	stdimage "image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/seventv/LogoAnimator/src/image"
)

var ErrNoSource = errors.New("source image has no pixels")

// Synthesize builds the breathing animation for src. Frames are produced in order and
// never touched again once appended.
func Synthesize(ctx context.Context, src image.Image) (image.Animation, error) {
	if src.Raster == nil || src.Width <= 0 || src.Height <= 0 {
		return image.Animation{}, ErrNoSource
	}

	canvas := CanvasSize(src.Width, src.Height)
	frames := make([]image.Frame, 0, FrameCount)

	for _, layout := range Plan(src.Width, src.Height) {
		if err := ctx.Err(); err != nil {
			return image.Animation{}, errors.Wrapf(err, "frame %d", layout.Index)
		}

		frames = append(frames, image.Frame{
			Layout: layout,
			Canvas: compose(src.Raster, canvas, layout),
		})

		logrus.WithFields(logrus.Fields{
			"frame":  layout.Index,
			"scale":  layout.Scale,
			"size":   layout.Resized,
			"offset": layout.Offset,
		}).Debug("frame composed")
	}

	return image.Animation{
		Width:     canvas.X,
		Height:    canvas.Y,
		Frames:    frames,
		Delay:     FrameDelay,
		LoopCount: LoopCount,
	}, nil
}

// compose resizes src with a lanczos filter and draws it over a transparent canvas, so the
// resized alpha decides what shows through.
func compose(src *stdimage.RGBA, canvas stdimage.Point, layout image.Layout) *stdimage.RGBA {
	resized := resize.Resize(uint(layout.Resized.X), uint(layout.Resized.Y), src, resize.Lanczos3)

	frame := stdimage.NewRGBA(stdimage.Rectangle{Max: canvas})
	r := stdimage.Rectangle{Min: layout.Offset, Max: layout.Offset.Add(layout.Resized)}
	draw.Draw(frame, r, resized, resized.Bounds().Min, draw.Over)

	return frame
}
