// Package flate provides DEFLATE (RFC 1951) streams backed by
// github.com/klauspost/compress.
package flate

import (
	"bytes"

	"github.com/klauspost/compress/flate"
)

// Compress deflates data. Level follows flate.NewWriter semantics; 0 is
// mapped to the default level.
func Compress(data []byte, level int) ([]byte, error) {
	if level == 0 {
		level = flate.DefaultCompression
	}
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
