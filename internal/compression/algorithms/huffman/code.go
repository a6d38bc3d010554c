package huffman

import "fmt"

// code is one Huffman code word: the low len bits of bits, first branch
// decision in the most significant position (0 = left, 1 = right).
type code struct {
	bits uint64
	len  uint8
}

func (c code) String() string {
	if c.len == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(c.len), c.bits)
}

type codeTable [256]code

// buildCodeTable assigns a code word to every leaf by walking the tree
// depth-first. Code lengths stay under 64 bits for any input that fits in
// memory, so a uint64 holds every word.
func buildCodeTable(root huffmanTree) codeTable {
	var table codeTable
	var walk func(tree huffmanTree, bits uint64, depth uint8)
	walk = func(tree huffmanTree, bits uint64, depth uint8) {
		switch node := tree.(type) {
		case huffmanLeaf:
			table[node.symbol] = code{bits: bits, len: depth}
		case huffmanNode:
			walk(node.left, bits<<1, depth+1)
			walk(node.right, bits<<1|1, depth+1)
		}
	}
	walk(root, 0, 0)
	return table
}
