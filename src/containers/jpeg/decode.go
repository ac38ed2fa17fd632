package jpeg

import (
	"image"
	"io"

	nJpeg "image/jpeg"
)

func Decode(r io.Reader) (image.Image, error) {
	return nJpeg.Decode(r)
}
