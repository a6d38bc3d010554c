// Package zstd provides Zstandard frames backed by
// github.com/klauspost/compress.
package zstd

import "github.com/klauspost/compress/zstd"

// Compress encodes data as one zstd frame. Level follows zstd's own 1-22
// scale; 0 is mapped to the encoder default.
func Compress(data []byte, level int) ([]byte, error) {
	var opts []zstd.EOption
	if level != 0 {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	}
	enc, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		return nil, err
	}
	out := enc.EncodeAll(data, nil)
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

// Decompress decodes one zstd frame back into the original bytes.
func Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}
