package huffman

// frequencyTable holds one occurrence count per byte value.
type frequencyTable [256]uint64

func countFrequencies(data []byte) frequencyTable {
	var freqs frequencyTable
	for _, symbol := range data {
		freqs[symbol]++
	}
	return freqs
}

// distinct reports how many symbols occur at least once.
func (ft *frequencyTable) distinct() int {
	count := 0
	for _, freq := range ft {
		if freq > 0 {
			count++
		}
	}
	return count
}

// total is the sum of all counts, which equals the original input length.
func (ft *frequencyTable) total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}
