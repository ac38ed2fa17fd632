package gif

import "bytes"

// GIF Magic Numbers
// https://www.garykessler.net/library/file_sigs.html
var (
	header87 = []byte("GIF87a")
	header89 = []byte("GIF89a")
	trailer  = []byte{0x00, ';'}
)

func Test(data []byte) bool {
	if len(data) < len(header89)+len(trailer) {
		return false
	}

	return (bytes.HasPrefix(data, header87) || bytes.HasPrefix(data, header89)) &&
		bytes.HasSuffix(data, trailer)
}
