package png

import (
	"image"
	"io"

	nPng "image/png"
)

func Decode(r io.Reader) (image.Image, error) {
	return nPng.Decode(r)
}
