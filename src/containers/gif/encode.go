package gif

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"time"

	stdimage "image"
	nGif "image/gif"

	"github.com/seventv/LogoAnimator/src/image"
)

var ErrNoFrames = fmt.Errorf("no frames to encode")

// TransparentIndex is the palette slot fully transparent pixels are written to.
const TransparentIndex = 0

// pixels below half coverage become transparent, everything else is made opaque.
const alphaThreshold = 0x80

func Encode(ctx context.Context, w io.Writer, anim image.Animation) error {
	if len(anim.Frames) == 0 {
		return ErrNoFrames
	}

	delay := DelayCentiseconds(anim.Delay)
	pal := BuildPalette(anim.Frames)

	out := &nGif.GIF{
		Image:     make([]*stdimage.Paletted, 0, len(anim.Frames)),
		Delay:     make([]int, 0, len(anim.Frames)),
		Disposal:  make([]byte, 0, len(anim.Frames)),
		LoopCount: anim.LoopCount,
		Config: stdimage.Config{
			ColorModel: pal,
			Width:      anim.Width,
			Height:     anim.Height,
		},
		BackgroundIndex: TransparentIndex,
	}

	q := newQuantizer(pal)
	for _, f := range anim.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		out.Image = append(out.Image, q.paletted(f.Canvas))
		out.Delay = append(out.Delay, delay)
		out.Disposal = append(out.Disposal, nGif.DisposalBackground)
	}

	if err := nGif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("gif encode failed: %w", err)
	}

	return nil
}

// DelayCentiseconds converts a frame duration to the GIF delay unit.
func DelayCentiseconds(d time.Duration) int {
	return int(d / (10 * time.Millisecond))
}

type quantizer struct {
	palette color.Palette
	cache   map[color.NRGBA]uint8
}

func newQuantizer(pal color.Palette) *quantizer {
	return &quantizer{
		palette: pal,
		cache:   map[color.NRGBA]uint8{},
	}
}

func (q *quantizer) paletted(src *stdimage.RGBA) *stdimage.Paletted {
	b := src.Bounds()
	dst := stdimage.NewPaletted(b, q.palette)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			if c.A < alphaThreshold {
				// NewPaletted zeroes Pix, which is already the transparent index.
				continue
			}

			dst.SetColorIndex(x, y, q.index(opaque(c)))
		}
	}

	return dst
}

// index never returns the transparent slot for an opaque color.
func (q *quantizer) index(c color.NRGBA) uint8 {
	if idx, ok := q.cache[c]; ok {
		return idx
	}

	idx := uint8(q.palette[1:].Index(c) + 1)
	q.cache[c] = idx

	return idx
}
