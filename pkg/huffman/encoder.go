package huffman

import (
	"bytes"
	"fmt"
)

// Encode replaces every byte of buf with its code and packs the result
// MSB-first. The returned Bits is the exact payload length.
func Encode(buf []byte, table *CodeTable) (Bitstream, error) {
	if table == nil {
		return Bitstream{}, ErrNilTable
	}
	var total uint64
	for _, b := range buf {
		total += uint64(len(table.Code(b)))
	}

	out := bytes.NewBuffer(make([]byte, 0, packedLen(total)))
	bw := newBitWriter(out)
	for i, b := range buf {
		if err := bw.writeCode(table.Code(b)); err != nil {
			return Bitstream{}, fmt.Errorf("huffman: encode symbol %d: %w", i, err)
		}
	}
	if err := bw.close(); err != nil {
		return Bitstream{}, fmt.Errorf("huffman: encode flush: %w", err)
	}
	return Bitstream{Packed: out.Bytes(), Bits: bw.bits}, nil
}
