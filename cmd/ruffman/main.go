package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/c2h5oh/datasize"
	pb "github.com/cheggaaa/pb/v3"
	"github.com/shizde/ruffman/internal/compression"
	"github.com/sirupsen/logrus"
)

const usageText = `Usage: ruffman [options] <compress|decompress> <input_file> <output_file>

Options:
  -a string   compression algorithm: huffman, flate, gzip, zstd (default "huffman")
  -l int      compression level for flate/gzip/zstd (0 = codec default)
  -q          quiet mode: no progress bar, warnings and errors only
`

func main() {
	algorithm := flag.String("a", "huffman", "compression algorithm")
	level := flag.Int("l", 0, "compression level (flate/gzip/zstd)")
	quiet := flag.Bool("q", false, "suppress progress output")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usageText) }
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *quiet {
		log.SetLevel(logrus.WarnLevel)
	}

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	mode, inputPath, outputPath := flag.Arg(0), flag.Arg(1), flag.Arg(2)
	if mode != "compress" && mode != "decompress" {
		flag.Usage()
		os.Exit(2)
	}
	if !compression.IsValidAlgorithm(*algorithm) {
		log.Errorf("unsupported algorithm %q, pick one of %v", *algorithm, compression.GetSupportedAlgorithms())
		os.Exit(2)
	}

	options := compression.Options{Algorithm: *algorithm, Level: *level}
	if err := run(log, mode, inputPath, outputPath, options, *quiet); err != nil {
		log.WithError(err).Errorf("error %sing file", mode)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, mode, inputPath, outputPath string, options compression.Options, quiet bool) error {
	input, err := readInput(inputPath, quiet)
	if err != nil {
		return err
	}

	var output []byte
	var stats *compression.Stats
	switch mode {
	case "compress":
		output, stats, err = compression.Compress(input, options)
	case "decompress":
		output, stats, err = compression.Decompress(input, options)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"algorithm": stats.Algorithm,
		"input":     datasize.ByteSize(stats.OriginalSize).HumanReadable(),
		"output":    datasize.ByteSize(stats.ProcessedSize).HumanReadable(),
		"ratio":     fmt.Sprintf("%.2f%%", stats.CompressionRatio),
	}).Infof("%s complete", mode)
	return nil
}

// readInput loads the whole file, with a progress bar over the ingest when
// running interactively.
func readInput(path string, quiet bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if quiet {
		return io.ReadAll(f)
	}

	bar := pb.Full.Start64(info.Size())
	bar.Set(pb.Bytes, true)
	defer bar.Finish()
	return io.ReadAll(bar.NewProxyReader(f))
}
