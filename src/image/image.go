package image

import (
	stdimage "image"
	"time"
)

// Image is the decoded source icon. Pix is never written to after decoding.
type Image struct {
	Type   ImageType
	Width  int
	Height int
	Raster *stdimage.RGBA
}

// Layout describes where a rescaled copy of the source sits inside a frame.
type Layout struct {
	Index   int
	Scale   float64
	Resized stdimage.Point
	Offset  stdimage.Point
}

type Frame struct {
	Layout
	Canvas *stdimage.RGBA
}

// Animation is the ordered frame sequence handed to an encoder.
type Animation struct {
	Width     int
	Height    int
	Frames    []Frame
	Delay     time.Duration
	LoopCount int
}

type ImageType string

const (
	GIF  ImageType = "gif"
	JPEG ImageType = "jpeg"
	PNG  ImageType = "png"
)

func (t ImageType) ContentType() string {
	return "image/" + string(t)
}
