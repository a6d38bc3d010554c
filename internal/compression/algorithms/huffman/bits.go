package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// bitPacker accumulates code words MSB-first into a byte buffer.
type bitPacker struct {
	buf   bytes.Buffer
	bw    *bitio.Writer
	nbits uint64
}

func newBitPacker() *bitPacker {
	packer := new(bitPacker)
	packer.bw = bitio.NewWriter(&packer.buf)
	return packer
}

func (p *bitPacker) writeCode(c code) error {
	if err := p.bw.WriteBits(c.bits, c.len); err != nil {
		return err
	}
	p.nbits += uint64(c.len)
	return nil
}

// finalize zero-fills the last partial byte and returns the packed payload
// along with the number of padding bits added (0-7).
func (p *bitPacker) finalize() ([]byte, uint8, error) {
	padding, err := p.bw.Align()
	if err != nil {
		return nil, 0, err
	}
	if err := p.bw.Close(); err != nil {
		return nil, 0, err
	}
	return p.buf.Bytes(), padding, nil
}

// bitReader hands out payload bits one at a time and refuses to cross into
// the padding region, even though those bits exist in the buffer.
type bitReader struct {
	br        *bitio.Reader
	remaining uint64
}

func newBitReader(payload []byte, validBits uint64) *bitReader {
	return &bitReader{
		br:        bitio.NewReader(bytes.NewReader(payload)),
		remaining: validBits,
	}
}

func (r *bitReader) readBit() (bool, error) {
	if r.remaining == 0 {
		return false, ErrTruncatedStream
	}
	bit, err := r.br.ReadBool()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrTruncatedStream, err)
	}
	r.remaining--
	return bit, nil
}
