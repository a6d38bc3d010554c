package huffman

import "container/heap"

type huffmanTree interface {
	getFrequency() uint64
	getId() int
}

type huffmanLeaf struct {
	freq   uint64
	id     int
	symbol byte
}

type huffmanNode struct {
	freq        uint64
	id          int
	left, right huffmanTree
}

// huffmanHeap is a min-heap ordered by frequency, with the monotonic node
// id as tie-break so equal weights always merge in insertion order.
type huffmanHeap []huffmanTree

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(huffmanTree))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	*hub = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].getFrequency() != hub[j].getFrequency() {
		return hub[i].getFrequency() < hub[j].getFrequency()
	}
	return hub[i].getId() < hub[j].getId()
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

func (leaf huffmanLeaf) getFrequency() uint64 {
	return leaf.freq
}

func (leaf huffmanLeaf) getId() int {
	return leaf.id
}

func (node huffmanNode) getFrequency() uint64 {
	return node.freq
}

func (node huffmanNode) getId() int {
	return node.id
}

// buildTree merges the occurring symbols into a strict binary tree, always
// taking the two lightest subtrees first. Leaves enter in ascending symbol
// order, so the same table yields the same tree on every run.
func buildTree(freqs frequencyTable) (huffmanTree, error) {
	var treehub huffmanHeap
	monoId := 0
	for symbol := 0; symbol < len(freqs); symbol++ {
		if freqs[symbol] == 0 {
			continue
		}
		treehub = append(treehub, huffmanLeaf{
			freq:   freqs[symbol],
			symbol: byte(symbol),
			id:     monoId,
		})
		monoId++
	}
	if len(treehub) == 0 {
		return nil, ErrEmptyInput
	}
	if len(treehub) == 1 {
		// A lone symbol still needs a 1-bit code: pair it with a
		// zero-weight phantom leaf that never occurs in the payload.
		lone := treehub[0].(huffmanLeaf)
		treehub = append(treehub, huffmanLeaf{
			freq:   0,
			symbol: lone.symbol ^ 1,
			id:     monoId,
		})
		monoId++
	}
	heap.Init(&treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(huffmanTree)
		y := heap.Pop(&treehub).(huffmanTree)
		heap.Push(&treehub, huffmanNode{
			freq:  x.getFrequency() + y.getFrequency(),
			left:  x,
			right: y,
			id:    monoId,
		})
		monoId++
	}
	return heap.Pop(&treehub).(huffmanTree), nil
}
