package compression

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shizde/ruffman/internal/compression/algorithms/huffman"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompressAllAlgorithms(t *testing.T) {
	input := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 64)
	for _, algorithm := range GetSupportedAlgorithms() {
		t.Run(algorithm, func(t *testing.T) {
			options := Options{Algorithm: algorithm}
			compressed, stats, err := Compress(input, options)
			require.NoError(t, err)
			require.Equal(t, len(input), stats.OriginalSize)
			require.Equal(t, len(compressed), stats.ProcessedSize)
			require.Equal(t, algorithm, stats.Algorithm)
			require.Less(t, len(compressed), len(input))

			decompressed, stats, err := Decompress(compressed, options)
			require.NoError(t, err)
			require.Equal(t, input, decompressed)
			require.Equal(t, len(compressed), stats.OriginalSize)
			require.Equal(t, len(input), stats.ProcessedSize)
		})
	}
}

func TestCompressEmptyInput(t *testing.T) {
	for _, algorithm := range GetSupportedAlgorithms() {
		t.Run(algorithm, func(t *testing.T) {
			compressed, stats, err := Compress(nil, Options{Algorithm: algorithm})
			require.NoError(t, err)
			require.Zero(t, stats.OriginalSize)
			decompressed, _, err := Decompress(compressed, Options{Algorithm: algorithm})
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCompressUnknownAlgorithm(t *testing.T) {
	_, _, err := Compress([]byte("data"), Options{Algorithm: "lzma"})
	require.ErrorContains(t, err, "unsupported algorithm")
	_, _, err = Decompress([]byte("data"), Options{Algorithm: ""})
	require.ErrorContains(t, err, "unsupported algorithm")
}

func TestIsValidAlgorithm(t *testing.T) {
	for _, algorithm := range SupportedAlgorithms {
		require.True(t, IsValidAlgorithm(algorithm))
	}
	require.False(t, IsValidAlgorithm("brotli"))
}

func TestCompressLevelPassthrough(t *testing.T) {
	input := bytes.Repeat([]byte("abcdefgh"), 512)
	for _, level := range []int{1, 9} {
		compressed, _, err := Compress(input, Options{Algorithm: "gzip", Level: level})
		require.NoError(t, err)
		decompressed, _, err := Decompress(compressed, Options{Algorithm: "gzip"})
		require.NoError(t, err)
		require.Equal(t, input, decompressed)
	}
}

func TestDecompressSurfacesHuffmanErrorKinds(t *testing.T) {
	_, _, err := Decompress([]byte("not a container"), Options{Algorithm: "huffman"})
	require.ErrorIs(t, err, huffman.ErrMalformedHeader)
}

func TestTransformPipeReadBeforeClose(t *testing.T) {
	reader, writer := newTransformPipe(func(data []byte) ([]byte, error) { return data, nil })
	_, err := writer.Write([]byte("abc"))
	require.NoError(t, err)

	buf := make([]byte, 8)
	_, err = reader.Read(buf)
	require.EqualError(t, err, "input buffer not closed")

	require.NoError(t, writer.Close())
	n, err := reader.Read(buf)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), buf[:n])
}

func TestTransformPipeSurfacesTransformError(t *testing.T) {
	sentinel := errors.New("boom")
	reader, writer := newTransformPipe(func([]byte) ([]byte, error) { return nil, sentinel })
	_, err := writer.Write([]byte("abc"))
	require.NoError(t, err)
	require.ErrorIs(t, writer.Close(), sentinel)
	_, err = reader.Read(make([]byte, 1))
	require.ErrorIs(t, err, sentinel)
}

func TestTransformPipeWriteAfterClose(t *testing.T) {
	_, writer := newTransformPipe(func(data []byte) ([]byte, error) { return data, nil })
	require.NoError(t, writer.Close())
	_, err := writer.Write([]byte("late"))
	require.EqualError(t, err, "write on closed pipe")
}
