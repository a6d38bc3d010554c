package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitPackerPaddingBound(t *testing.T) {
	for nbits := 1; nbits <= 16; nbits++ {
		packer := newBitPacker()
		for i := 0; i < nbits; i++ {
			require.NoError(t, packer.writeCode(code{bits: 1, len: 1}))
		}
		payload, padding, err := packer.finalize()
		require.NoError(t, err)
		require.EqualValues(t, (8-nbits%8)%8, padding, "nbits=%d", nbits)
		require.Len(t, payload, (nbits+7)/8, "nbits=%d", nbits)
	}
}

func TestBitPackerMSBFirst(t *testing.T) {
	packer := newBitPacker()
	require.NoError(t, packer.writeCode(code{bits: 0b101, len: 3}))
	require.NoError(t, packer.writeCode(code{bits: 0b1, len: 1}))
	payload, padding, err := packer.finalize()
	require.NoError(t, err)
	require.EqualValues(t, 4, padding)
	require.Equal(t, []byte{0b10110000}, payload)
}

func TestBitPackerEmpty(t *testing.T) {
	packer := newBitPacker()
	payload, padding, err := packer.finalize()
	require.NoError(t, err)
	require.EqualValues(t, 0, padding)
	require.Empty(t, payload)
}

func TestBitReaderStopsAtValidBits(t *testing.T) {
	reader := newBitReader([]byte{0xFF}, 3)
	for i := 0; i < 3; i++ {
		bit, err := reader.readBit()
		require.NoError(t, err)
		require.True(t, bit)
	}
	_, err := reader.readBit()
	require.ErrorIs(t, err, ErrTruncatedStream)
}

func TestBitRoundTrip(t *testing.T) {
	words := []code{
		{bits: 0b0, len: 1},
		{bits: 0b10, len: 2},
		{bits: 0b110, len: 3},
		{bits: 0b111111, len: 6},
	}
	packer := newBitPacker()
	for _, word := range words {
		require.NoError(t, packer.writeCode(word))
	}
	payload, padding, err := packer.finalize()
	require.NoError(t, err)
	reader := newBitReader(payload, uint64(len(payload))*8-uint64(padding))
	for _, word := range words {
		for shift := int(word.len) - 1; shift >= 0; shift-- {
			bit, err := reader.readBit()
			require.NoError(t, err)
			require.Equal(t, word.bits>>shift&1 == 1, bit)
		}
	}
	require.Zero(t, reader.remaining)
}
