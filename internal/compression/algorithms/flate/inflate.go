package flate

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

// Decompress inflates a DEFLATE stream back into the original bytes.
func Decompress(data []byte) ([]byte, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()
	return io.ReadAll(fr)
}
