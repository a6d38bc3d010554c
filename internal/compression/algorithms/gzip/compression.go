// Package gzip provides gzip (RFC 1952) streams backed by
// github.com/klauspost/compress.
package gzip

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

// Compress wraps data in a single-member gzip stream. Level follows
// gzip.NewWriterLevel semantics; 0 is mapped to the default level.
func Compress(data []byte, level int) ([]byte, error) {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	var buf bytes.Buffer
	gw, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := gw.Write(data); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
