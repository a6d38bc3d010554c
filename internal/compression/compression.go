package compression

import (
	"fmt"
	"io"

	"github.com/shizde/ruffman/internal/compression/algorithms/flate"
	"github.com/shizde/ruffman/internal/compression/algorithms/gzip"
	"github.com/shizde/ruffman/internal/compression/algorithms/huffman"
	"github.com/shizde/ruffman/internal/compression/algorithms/zstd"
)

// SupportedAlgorithms contains all supported compression algorithms
var SupportedAlgorithms = []string{
	"huffman",
	"flate",
	"gzip",
	"zstd",
}

// Options contains compression/decompression options
type Options struct {
	Algorithm string
	Level     int // flate/gzip/zstd only; 0 picks the codec default
}

// Stats contains compression statistics
type Stats struct {
	OriginalSize     int
	ProcessedSize    int
	CompressionRatio float64
	Algorithm        string
}

// AlgorithmFactory defines the interface for compression algorithms
type AlgorithmFactory interface {
	NewCompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser)
	NewDecompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser)
}

// factoryMap maps algorithm names to their factories
var factoryMap = map[string]AlgorithmFactory{
	"huffman": &HuffmanFactory{},
	"flate":   &FlateFactory{},
	"gzip":    &GzipFactory{},
	"zstd":    &ZstdFactory{},
}

// HuffmanFactory produces pipes around the static Huffman container codec.
type HuffmanFactory struct{}

func (f *HuffmanFactory) NewCompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(huffman.Compress)
}

func (f *HuffmanFactory) NewDecompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(huffman.Decompress)
}

type FlateFactory struct{}

func (f *FlateFactory) NewCompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(func(data []byte) ([]byte, error) {
		return flate.Compress(data, options.Level)
	})
}

func (f *FlateFactory) NewDecompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(flate.Decompress)
}

type GzipFactory struct{}

func (f *GzipFactory) NewCompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(func(data []byte) ([]byte, error) {
		return gzip.Compress(data, options.Level)
	})
}

func (f *GzipFactory) NewDecompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(gzip.Decompress)
}

type ZstdFactory struct{}

func (f *ZstdFactory) NewCompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(func(data []byte) ([]byte, error) {
		return zstd.Compress(data, options.Level)
	})
}

func (f *ZstdFactory) NewDecompressionReaderAndWriter(options Options) (io.ReadCloser, io.WriteCloser) {
	return newTransformPipe(zstd.Decompress)
}

// IsValidAlgorithm checks if the provided algorithm is supported
func IsValidAlgorithm(algorithm string) bool {
	_, exists := factoryMap[algorithm]
	return exists
}

// GetSupportedAlgorithms returns a list of supported algorithms
func GetSupportedAlgorithms() []string {
	return append([]string{}, SupportedAlgorithms...)
}

// Compress compresses data using the specified algorithm
func Compress(data []byte, options Options) ([]byte, *Stats, error) {
	if !IsValidAlgorithm(options.Algorithm) {
		return nil, nil, fmt.Errorf("unsupported algorithm: %s", options.Algorithm)
	}

	factory := factoryMap[options.Algorithm]
	reader, writer := factory.NewCompressionReaderAndWriter(options)

	compressedData, err := processData(data, reader, writer)
	if err != nil {
		return nil, nil, fmt.Errorf("compression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(compressedData),
		Algorithm:     options.Algorithm,
	}
	if len(data) > 0 {
		stats.CompressionRatio = float64(len(compressedData)) / float64(len(data)) * 100
	}

	return compressedData, stats, nil
}

// Decompress decompresses data using the specified algorithm
func Decompress(data []byte, options Options) ([]byte, *Stats, error) {
	if !IsValidAlgorithm(options.Algorithm) {
		return nil, nil, fmt.Errorf("unsupported algorithm: %s", options.Algorithm)
	}

	factory := factoryMap[options.Algorithm]
	reader, writer := factory.NewDecompressionReaderAndWriter(options)

	decompressedData, err := processData(data, reader, writer)
	if err != nil {
		return nil, nil, fmt.Errorf("decompression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(decompressedData),
		Algorithm:     options.Algorithm,
	}
	if len(decompressedData) > 0 {
		stats.CompressionRatio = float64(len(data)) / float64(len(decompressedData)) * 100
	}

	return decompressedData, stats, nil
}

// processData pushes the input through a factory pipe: write everything,
// close the writer to run the transform, then drain the reader.
func processData(inputData []byte, reader io.ReadCloser, writer io.WriteCloser) ([]byte, error) {
	defer reader.Close()

	if _, err := writer.Write(inputData); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return io.ReadAll(reader)
}
