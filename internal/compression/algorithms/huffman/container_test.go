package huffman

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainerEncodeDecodeRoundTrip(t *testing.T) {
	c := container{
		origLen: 9,
		freqs:   countFrequencies([]byte("aaaabbbcc")),
		padding: 2,
		payload: []byte{0x0B, 0xA8},
	}
	decoded, err := decodeContainer(c.encode())
	require.NoError(t, err)
	require.Equal(t, c.origLen, decoded.origLen)
	require.Equal(t, c.freqs, decoded.freqs)
	require.Equal(t, c.padding, decoded.padding)
	require.Equal(t, c.payload, decoded.payload)
}

func TestDecodeContainerMalformed(t *testing.T) {
	valid, err := Compress([]byte("aaaabbbcc"))
	require.NoError(t, err)
	// Layout for three entries: fixed fields to offset 15, entries at
	// 15/24/33, padding byte at 42, payload length at 43, payload at 51.
	const tableOff = 4 + 1 + 8 + 2

	cases := map[string]func([]byte) []byte{
		"empty input": func(b []byte) []byte { return nil },
		"three bytes": func(b []byte) []byte { return b[:3] },
		"wrong magic": func(b []byte) []byte { b[0] = 'X'; return b },
		"unknown version": func(b []byte) []byte {
			b[4] = 0x7F
			return b
		},
		"truncated fixed fields": func(b []byte) []byte { return b[:tableOff-1] },
		"oversized entry count": func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[13:], 300)
			return b
		},
		"entry count past input": func(b []byte) []byte {
			binary.LittleEndian.PutUint16(b[13:], 200)
			return b
		},
		"out of order symbols": func(b []byte) []byte {
			b[tableOff], b[tableOff+headerEntrySize] = b[tableOff+headerEntrySize], b[tableOff]
			return b
		},
		"zero frequency entry": func(b []byte) []byte {
			for i := 0; i < 8; i++ {
				b[tableOff+1+i] = 0
			}
			return b
		},
		"padding out of range": func(b []byte) []byte {
			b[tableOff+3*headerEntrySize] = 9
			return b
		},
		"payload length overdeclared": func(b []byte) []byte {
			binary.LittleEndian.PutUint64(b[tableOff+3*headerEntrySize+1:], 99)
			return b
		},
		"trailing garbage":  func(b []byte) []byte { return append(b, 0x00) },
		"truncated payload": func(b []byte) []byte { return b[:len(b)-1] },
		"frequency sum mismatch": func(b []byte) []byte {
			binary.LittleEndian.PutUint64(b[5:], 1000)
			return b
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := mutate(append([]byte(nil), valid...))
			_, err := decodeContainer(input)
			require.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}

func TestDecodeContainerHeaderOnlyVariants(t *testing.T) {
	headerOnly, err := Compress(nil)
	require.NoError(t, err)
	require.Len(t, headerOnly, headerFixedSize)

	t.Run("valid", func(t *testing.T) {
		c, err := decodeContainer(headerOnly)
		require.NoError(t, err)
		require.Zero(t, c.origLen)
		require.Zero(t, c.freqs.distinct())
		require.Empty(t, c.payload)
	})
	t.Run("padding without payload", func(t *testing.T) {
		mutated := append([]byte(nil), headerOnly...)
		mutated[15] = 1
		_, err := decodeContainer(mutated)
		require.ErrorIs(t, err, ErrMalformedHeader)
	})
	t.Run("payload without symbol table", func(t *testing.T) {
		mutated := append([]byte(nil), headerOnly...)
		binary.LittleEndian.PutUint64(mutated[16:], 1)
		mutated = append(mutated, 0x00)
		_, err := decodeContainer(mutated)
		require.ErrorIs(t, err, ErrMalformedHeader)
	})
}
