package png

import "bytes"

// PNG Magic Numbers
// https://www.garykessler.net/library/file_sigs.html
var (
	header  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	trailer = []byte{'I', 'E', 'N', 'D', 0xAE, 'B', 0x60, 0x82}
)

func Test(data []byte) bool {
	if len(data) < len(header)+len(trailer) {
		return false
	}

	return bytes.HasPrefix(data, header) && bytes.HasSuffix(data, trailer)
}
