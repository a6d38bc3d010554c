package huffman

import (
	"errors"
	"fmt"
)

// Decompress reverses Compress. It rebuilds the tree from the container
// header and walks the payload bits back into the original bytes.
func Decompress(data []byte) ([]byte, error) {
	c, err := decodeContainer(data)
	if err != nil {
		return nil, err
	}
	if c.freqs.distinct() == 0 {
		return []byte{}, nil
	}
	tree, err := buildTree(c.freqs)
	if err != nil {
		return nil, err
	}
	validBits := uint64(len(c.payload))*8 - uint64(c.padding)
	if c.origLen > validBits {
		// Every code word is at least one bit.
		return nil, fmt.Errorf("%w: %d payload bits cannot encode %d symbols", ErrMalformedHeader, validBits, c.origLen)
	}
	reader := newBitReader(c.payload, validBits)
	out := make([]byte, 0, c.origLen)
	for reader.remaining > 0 {
		symbol, err := resolveSymbol(tree, reader)
		if err != nil {
			return nil, err
		}
		out = append(out, symbol)
	}
	if uint64(len(out)) != c.origLen {
		return nil, fmt.Errorf("%w: payload decodes to %d bytes, header declares %d", ErrMalformedHeader, len(out), c.origLen)
	}
	return out, nil
}

// resolveSymbol follows one code word from the root to a leaf, one bit per
// branch (0 = left, 1 = right).
func resolveSymbol(tree huffmanTree, reader *bitReader) (byte, error) {
	for {
		switch node := tree.(type) {
		case huffmanLeaf:
			return node.symbol, nil
		case huffmanNode:
			bit, err := reader.readBit()
			if err != nil {
				return 0, err
			}
			if bit {
				tree = node.right
			} else {
				tree = node.left
			}
		default:
			return 0, errors.New("unknown tree node type")
		}
	}
}
