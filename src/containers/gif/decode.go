package gif

import (
	"image"
	"io"

	nGif "image/gif"
)

// Decode returns the first frame only; an animated source is treated as a still.
func Decode(r io.Reader) (image.Image, error) {
	return nGif.Decode(r)
}
