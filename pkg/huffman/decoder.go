package huffman

import (
	"errors"
	"fmt"
	"io"
)

// Decode walks tree from the root once per symbol until count symbols are
// produced. Bits after the last symbol are ignored. Running out of bits
// first is ErrTruncated; no partial output is returned.
//
// tree must be the one whose codes produced stream.
func Decode(stream Bitstream, tree *Tree, count int) ([]byte, error) {
	if err := tree.check(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if stream.Bits > uint64(len(stream.Packed))*8 {
		return nil, fmt.Errorf("%w: %d bits in %d bytes", ErrShortBuffer, stream.Bits, len(stream.Packed))
	}

	// 심볼마다 최소 1비트
	capacity := count
	if uint64(capacity) > stream.Bits {
		capacity = int(stream.Bits)
	}
	out := make([]byte, 0, capacity)
	br := newBitReader(stream)

	for len(out) < count {
		n := tree.root
		for !tree.IsLeaf(n) {
			bit, err := br.readBit()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil, fmt.Errorf("%w: decoded %d of %d symbols in %d bits", ErrTruncated, len(out), count, br.pos)
				}
				return nil, fmt.Errorf("huffman: read bit %d: %w", br.pos, err)
			}
			if bit {
				n = tree.nodes[n].right
			} else {
				n = tree.nodes[n].left
			}
		}
		out = append(out, byte(tree.nodes[n].symbol))
	}
	return out, nil
}
