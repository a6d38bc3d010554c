package huffman

import (
	"encoding/binary"
	"fmt"
)

const (
	containerMagic   = "RUFF"
	containerVersion = 0x01

	headerFixedSize = 4 + 1 + 8 + 2 + 1 + 8
	headerEntrySize = 1 + 8
	maxTableEntries = 256
)

// container is the decoded wire form: enough metadata to rebuild the exact
// tree, plus the packed payload.
type container struct {
	origLen uint64
	freqs   frequencyTable
	padding uint8
	payload []byte
}

func (c *container) encode() []byte {
	entries := c.freqs.distinct()
	out := make([]byte, 0, headerFixedSize+entries*headerEntrySize+len(c.payload))
	out = append(out, containerMagic...)
	out = append(out, containerVersion)
	out = binary.LittleEndian.AppendUint64(out, c.origLen)
	out = binary.LittleEndian.AppendUint16(out, uint16(entries))
	for symbol := 0; symbol < len(c.freqs); symbol++ {
		if c.freqs[symbol] == 0 {
			continue
		}
		out = append(out, byte(symbol))
		out = binary.LittleEndian.AppendUint64(out, c.freqs[symbol])
	}
	out = append(out, c.padding)
	out = binary.LittleEndian.AppendUint64(out, uint64(len(c.payload)))
	out = append(out, c.payload...)
	return out
}

// decodeContainer validates the header and splits a container back into its
// parts. Every structural inconsistency comes back as ErrMalformedHeader.
func decodeContainer(data []byte) (*container, error) {
	if len(data) < len(containerMagic) || string(data[:len(containerMagic)]) != containerMagic {
		return nil, fmt.Errorf("%w: missing %q marker", ErrMalformedHeader, containerMagic)
	}
	off := len(containerMagic)
	if len(data) < off+1 {
		return nil, fmt.Errorf("%w: truncated before version", ErrMalformedHeader)
	}
	if version := data[off]; version != containerVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedHeader, version)
	}
	off++
	if len(data) < off+8 {
		return nil, fmt.Errorf("%w: truncated before original length", ErrMalformedHeader)
	}
	origLen := binary.LittleEndian.Uint64(data[off:])
	off += 8
	if len(data) < off+2 {
		return nil, fmt.Errorf("%w: truncated before symbol table", ErrMalformedHeader)
	}
	entryCount := int(binary.LittleEndian.Uint16(data[off:]))
	off += 2
	if entryCount > maxTableEntries {
		return nil, fmt.Errorf("%w: %d symbol table entries", ErrMalformedHeader, entryCount)
	}
	if len(data) < off+entryCount*headerEntrySize {
		return nil, fmt.Errorf("%w: symbol table needs %d bytes, %d remain", ErrMalformedHeader, entryCount*headerEntrySize, len(data)-off)
	}
	c := container{origLen: origLen}
	prevSymbol := -1
	for i := 0; i < entryCount; i++ {
		symbol := int(data[off])
		freq := binary.LittleEndian.Uint64(data[off+1:])
		off += headerEntrySize
		if symbol <= prevSymbol {
			return nil, fmt.Errorf("%w: symbol table out of order at entry %d", ErrMalformedHeader, i)
		}
		if freq == 0 {
			return nil, fmt.Errorf("%w: zero frequency for symbol %#02x", ErrMalformedHeader, symbol)
		}
		c.freqs[symbol] = freq
		prevSymbol = symbol
	}
	if len(data) < off+1 {
		return nil, fmt.Errorf("%w: truncated before padding", ErrMalformedHeader)
	}
	c.padding = data[off]
	off++
	if c.padding > 7 {
		return nil, fmt.Errorf("%w: padding %d out of range", ErrMalformedHeader, c.padding)
	}
	if len(data) < off+8 {
		return nil, fmt.Errorf("%w: truncated before payload length", ErrMalformedHeader)
	}
	payloadLen := binary.LittleEndian.Uint64(data[off:])
	off += 8
	if payloadLen != uint64(len(data)-off) {
		return nil, fmt.Errorf("%w: payload length %d does not match %d remaining bytes", ErrMalformedHeader, payloadLen, len(data)-off)
	}
	c.payload = data[off:]
	if c.padding != 0 && payloadLen == 0 {
		return nil, fmt.Errorf("%w: padding bits without payload", ErrMalformedHeader)
	}
	if entryCount == 0 && payloadLen != 0 {
		return nil, fmt.Errorf("%w: payload without symbol table", ErrMalformedHeader)
	}
	if total := c.freqs.total(); total != origLen {
		return nil, fmt.Errorf("%w: frequency sum %d disagrees with original length %d", ErrMalformedHeader, total, origLen)
	}
	return &c, nil
}
