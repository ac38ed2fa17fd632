package containers

import (
	"bytes"
	"fmt"
	"io"

	stdimage "image"

	"golang.org/x/image/draw"

	"github.com/seventv/LogoAnimator/src/containers/gif"
	"github.com/seventv/LogoAnimator/src/containers/jpeg"
	"github.com/seventv/LogoAnimator/src/containers/png"
	"github.com/seventv/LogoAnimator/src/image"
)

var (
	ErrUnknownFormat = fmt.Errorf("unknown image format")
	ErrEmptyImage    = fmt.Errorf("image has no pixels")
)

func ToType(data []byte) (image.ImageType, error) {
	if png.Test(data) {
		return image.PNG, nil
	} else if gif.Test(data) {
		return image.GIF, nil
	} else if jpeg.Test(data) {
		return image.JPEG, nil
	}

	return "", ErrUnknownFormat
}

// Decode sniffs the format of data and decodes it into an RGBA raster anchored at the origin.
func Decode(data []byte) (image.Image, error) {
	imgType, err := ToType(data)
	if err != nil {
		return image.Image{}, err
	}

	var decode func(io.Reader) (stdimage.Image, error)
	switch imgType {
	case image.PNG:
		decode = png.Decode
	case image.GIF:
		decode = gif.Decode
	case image.JPEG:
		decode = jpeg.Decode
	default:
		return image.Image{}, ErrUnknownFormat
	}

	src, err := decode(bytes.NewReader(data))
	if err != nil {
		return image.Image{}, fmt.Errorf("%s decode failed: %w", imgType, err)
	}

	raster := ToRGBA(src)
	if raster.Rect.Empty() {
		return image.Image{}, ErrEmptyImage
	}

	return image.Image{
		Type:   imgType,
		Width:  raster.Rect.Dx(),
		Height: raster.Rect.Dy(),
		Raster: raster,
	}, nil
}

func ToRGBA(src stdimage.Image) *stdimage.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*stdimage.RGBA); ok && b.Min == (stdimage.Point{}) {
		return rgba
	}

	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return dst
}
