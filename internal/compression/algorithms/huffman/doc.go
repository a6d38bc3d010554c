// Package huffman implements a static Huffman coder for arbitrary byte
// streams.
//
// Compression runs in two passes: one over the input to count symbol
// frequencies, one to emit the code words. The frequency table travels in
// the container header, and decompression rebuilds the identical tree by
// replaying the same deterministic construction (ties between equal weights
// fall back to insertion order, with leaves inserted in ascending symbol
// order).
//
// Container layout, all integers little-endian:
//
//	magic      4 bytes  "RUFF"
//	version    1 byte   0x01
//	origLen    8 bytes  decompressed byte count
//	entryCount 2 bytes  distinct symbol count n, followed by n records
//	                    of symbol (1 byte) and frequency (8 bytes) in
//	                    ascending symbol order
//	padding    1 byte   zero bits completing the last payload byte (0-7)
//	payloadLen 8 bytes  packed payload byte count
//	payload             code words packed MSB-first
//
// A zero-length input produces a header-only container with an empty symbol
// table. A single distinct symbol is paired with a zero-weight phantom leaf
// so its code is one bit long.
package huffman
