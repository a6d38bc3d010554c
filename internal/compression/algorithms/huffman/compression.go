package huffman

import "fmt"

// Compress encodes data as a self-contained container. The header carries
// the symbol frequencies, so Decompress needs nothing besides the container
// to rebuild the exact tree. Identical input always yields an identical
// container.
func Compress(data []byte) ([]byte, error) {
	c := container{
		origLen: uint64(len(data)),
		freqs:   countFrequencies(data),
	}
	if len(data) == 0 {
		// Header-only container: no symbols, no payload.
		return c.encode(), nil
	}
	tree, err := buildTree(c.freqs)
	if err != nil {
		return nil, err
	}
	table := buildCodeTable(tree)
	packer := newBitPacker()
	for _, symbol := range data {
		if err := packer.writeCode(table[symbol]); err != nil {
			return nil, fmt.Errorf("pack symbol %#02x: %w", symbol, err)
		}
	}
	payload, padding, err := packer.finalize()
	if err != nil {
		return nil, fmt.Errorf("finalize payload: %w", err)
	}
	c.payload = payload
	c.padding = padding
	return c.encode(), nil
}
