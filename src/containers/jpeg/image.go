package jpeg

import "bytes"

// JPEG Magic Numbers
// https://www.garykessler.net/library/file_sigs.html
var (
	header  = []byte{0xFF, 0xD8}
	trailer = []byte{0xFF, 0xD9}
)

func Test(data []byte) bool {
	if len(data) < len(header)+len(trailer) {
		return false
	}

	return bytes.HasPrefix(data, header) && bytes.HasSuffix(data, trailer)
}
