package animation

import (
	"context"
	stdimage "image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seventv/LogoAnimator/src/image"
)

func solidSource(w, h int, c color.RGBA) image.Image {
	raster := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			raster.SetRGBA(x, y, c)
		}
	}

	return image.Image{
		Type:   image.PNG,
		Width:  w,
		Height: h,
		Raster: raster,
	}
}

func TestSynthesize(t *testing.T) {
	src := solidSource(192, 192, color.RGBA{R: 0xe0, G: 0x40, B: 0x20, A: 0xff})

	anim, err := Synthesize(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 220, anim.Width)
	assert.Equal(t, 220, anim.Height)
	assert.Equal(t, FrameDelay, anim.Delay)
	assert.Equal(t, 0, anim.LoopCount)
	require.Len(t, anim.Frames, FrameCount)

	for i, f := range anim.Frames {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, stdimage.Rect(0, 0, 220, 220), f.Canvas.Bounds())
	}
}

func TestSynthesizeCentersFrames(t *testing.T) {
	src := solidSource(192, 192, color.RGBA{R: 0x20, G: 0x80, B: 0xe0, A: 0xff})

	anim, err := Synthesize(context.Background(), src)
	require.NoError(t, err)

	for _, f := range anim.Frames {
		tl := f.Offset
		br := f.Offset.Add(f.Resized).Sub(stdimage.Pt(1, 1))

		assert.Zero(t, f.Canvas.RGBAAt(tl.X-1, tl.Y-1).A, "frame %d outside top left", f.Index)
		assert.Zero(t, f.Canvas.RGBAAt(br.X+1, br.Y+1).A, "frame %d outside bottom right", f.Index)
		assert.Zero(t, f.Canvas.RGBAAt(0, 0).A, "frame %d corner", f.Index)

		assert.GreaterOrEqual(t, f.Canvas.RGBAAt(tl.X, tl.Y).A, uint8(0x80), "frame %d inside top left", f.Index)
		assert.GreaterOrEqual(t, f.Canvas.RGBAAt(br.X, br.Y).A, uint8(0x80), "frame %d inside bottom right", f.Index)
		assert.GreaterOrEqual(t, f.Canvas.RGBAAt(110, 110).A, uint8(0x80), "frame %d center", f.Index)
	}

	assert.Equal(t, stdimage.Pt(14, 14), anim.Frames[0].Offset)
	assert.Equal(t, stdimage.Pt(4, 4), anim.Frames[10].Offset)
}

func TestSynthesizeKeepsTransparency(t *testing.T) {
	src := solidSource(64, 64, color.RGBA{})
	// opaque 16x16 block in the middle, transparent everywhere else
	for y := 24; y < 40; y++ {
		for x := 24; x < 40; x++ {
			src.Raster.SetRGBA(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}

	anim, err := Synthesize(context.Background(), src)
	require.NoError(t, err)

	for _, f := range anim.Frames {
		inner := f.Offset.Add(stdimage.Pt(2, 2))
		assert.Zero(t, f.Canvas.RGBAAt(inner.X, inner.Y).A, "frame %d", f.Index)

		mid := f.Offset.Add(f.Resized.Div(2))
		assert.Equal(t, uint8(0xff), f.Canvas.RGBAAt(mid.X, mid.Y).A, "frame %d", f.Index)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	src := solidSource(48, 32, color.RGBA{G: 0xff, A: 0xff})
	src.Raster.SetRGBA(10, 10, color.RGBA{R: 0xff, A: 0x40})

	a, err := Synthesize(context.Background(), src)
	require.NoError(t, err)
	b, err := Synthesize(context.Background(), src)
	require.NoError(t, err)

	require.Len(t, b.Frames, len(a.Frames))
	for i := range a.Frames {
		assert.Equal(t, a.Frames[i].Canvas.Pix, b.Frames[i].Canvas.Pix, "frame %d", i)
	}
}

func TestSynthesizeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Synthesize(ctx, solidSource(8, 8, color.RGBA{A: 0xff}))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSynthesizeEmptySource(t *testing.T) {
	_, err := Synthesize(context.Background(), image.Image{})
	assert.ErrorIs(t, err, ErrNoSource)
}
