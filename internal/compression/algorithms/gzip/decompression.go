package gzip

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Decompress unwraps a gzip stream back into the original bytes. The CRC32
// and length trailer are checked by the underlying reader on EOF.
func Decompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return io.ReadAll(gr)
}
