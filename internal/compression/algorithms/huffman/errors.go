package huffman

import "errors"

// Failure kinds a transform can report. IO failures from the surrounding
// plumbing are passed through untouched and never wrapped in one of these.
var (
	// ErrEmptyInput marks a tree build over an empty frequency table. The
	// compressor never triggers it: zero-length input becomes a header-only
	// container instead.
	ErrEmptyInput = errors.New("huffman: empty frequency table")

	// ErrMalformedHeader marks a container whose structure is inconsistent:
	// bad magic, truncated fields, an impossible symbol table, or metadata
	// that contradicts the payload.
	ErrMalformedHeader = errors.New("huffman: malformed container header")

	// ErrTruncatedStream marks a payload that ends in the middle of a code
	// word.
	ErrTruncatedStream = errors.New("huffman: truncated bit stream")
)
