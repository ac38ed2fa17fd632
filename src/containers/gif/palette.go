package gif

import (
	"image/color"
	"sort"

	stdimage "image"

	"github.com/seventv/LogoAnimator/src/image"
)

// MaxColors is what is left of a 256 entry color table once the transparent slot is taken.
const MaxColors = 255

type colorCount struct {
	c     color.NRGBA
	key   uint32
	count int
}

// BuildPalette derives one palette for every frame of anim. Index 0 is transparent. When the
// opaque pixels use at most MaxColors distinct colors they are kept exactly, otherwise the
// most used 5 bit per channel buckets are kept, each as the mean of the colors that fell in it.
func BuildPalette(frames []image.Frame) color.Palette {
	exact := map[uint32]*colorCount{}
	buckets := map[uint32]*bucket{}

	for _, f := range frames {
		eachOpaque(f.Canvas, func(c color.NRGBA) {
			key := packRGB(c)
			if cc, ok := exact[key]; ok {
				cc.count++
			} else if len(exact) <= MaxColors {
				exact[key] = &colorCount{c: c, key: key, count: 1}
			}

			bk := packRGB(color.NRGBA{R: c.R >> 3, G: c.G >> 3, B: c.B >> 3})
			b, ok := buckets[bk]
			if !ok {
				b = &bucket{colorCount: colorCount{key: bk}}
				buckets[bk] = b
			}
			b.add(c)
		})
	}

	var counts []colorCount
	if len(exact) <= MaxColors {
		for _, cc := range exact {
			counts = append(counts, *cc)
		}
	} else {
		for _, b := range buckets {
			counts = append(counts, b.mean())
		}
	}

	// most used first, the key breaks ties so the palette is the same on every run.
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].key < counts[j].key
	})
	if len(counts) > MaxColors {
		counts = counts[:MaxColors]
	}

	pal := make(color.Palette, 0, len(counts)+1)
	pal = append(pal, color.NRGBA{})
	for _, cc := range counts {
		pal = append(pal, cc.c)
	}

	return pal
}

type bucket struct {
	colorCount
	r, g, b int
}

func (b *bucket) add(c color.NRGBA) {
	b.r += int(c.R)
	b.g += int(c.G)
	b.b += int(c.B)
	b.count++
}

func (b *bucket) mean() colorCount {
	cc := b.colorCount
	cc.c = color.NRGBA{
		R: uint8(b.r / b.count),
		G: uint8(b.g / b.count),
		B: uint8(b.b / b.count),
		A: 0xff,
	}
	return cc
}

// eachOpaque calls fn with the straight alpha color of every pixel that survives the
// transparency threshold, forced fully opaque.
func eachOpaque(src *stdimage.RGBA, fn func(color.NRGBA)) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.RGBAAt(x, y)
			if c.A < alphaThreshold {
				continue
			}
			fn(opaque(c))
		}
	}
}

func opaque(c color.RGBA) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}

func packRGB(c color.NRGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
