package huffman

import (
	"fmt"
	"slices"
	"strings"
)

/*** ---------- 코드 테이블 ---------- ***/

// Code is a root-to-leaf path, one entry per edge: 0 for left, 1 for right.
type Code []byte

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		sb.WriteByte('0' + b)
	}
	return sb.String()
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	return len(p) <= len(c) && slices.Equal(c[:len(p)], p)
}

// CodeTable maps every symbol index to its code. It is not modified after
// Codes returns it.
type CodeTable struct {
	codes [AlphabetSize]Code
}

// Codes derives the code of each leaf by walking parent links to the root
// and reversing the path.
func (t *Tree) Codes() (*CodeTable, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	ct := &CodeTable{}
	for i := 0; i < AlphabetSize; i++ {
		path := make(Code, 0, 8)
		for cur := t.Leaf(i); t.nodes[cur].parent != None; cur = t.nodes[cur].parent {
			p := t.nodes[cur].parent
			if t.nodes[p].left == cur {
				path = append(path, 0)
			} else {
				path = append(path, 1)
			}
		}
		slices.Reverse(path)
		ct.codes[i] = path
	}
	return ct, nil
}

// Index returns the code for symbol index i.
func (ct *CodeTable) Index(i int) Code { return ct.codes[i] }

// Code returns the code for byte b.
func (ct *CodeTable) Code(b byte) Code { return ct.codes[SymbolIndex(b)] }

func (ct *CodeTable) Len(i int) int { return len(ct.codes[i]) }

// EncodedBits is the payload length, in bits, of a buffer with the given
// frequencies.
func (ct *CodeTable) EncodedBits(freq FrequencyTable) uint64 {
	var bits uint64
	for i, c := range freq {
		bits += c * uint64(len(ct.codes[i]))
	}
	return bits
}

// Strings renders the table keyed by signed symbol value.
func (ct *CodeTable) Strings() map[int8]string {
	out := make(map[int8]string, AlphabetSize)
	for i, c := range ct.codes {
		out[IndexSymbol(i)] = c.String()
	}
	return out
}

// Verify follows every code in table from the root of t and checks that it
// ends exactly on the leaf it belongs to.
func (t *Tree) Verify(table *CodeTable) error {
	if err := t.check(); err != nil {
		return err
	}
	if table == nil {
		return ErrNilTable
	}
	for i, code := range table.codes {
		cur := t.root
		for k, bit := range code {
			if t.IsLeaf(cur) {
				return fmt.Errorf("%w: symbol %d reaches a leaf after %d of %d bits", ErrCodeMismatch, IndexSymbol(i), k, len(code))
			}
			if bit == 0 {
				cur = t.nodes[cur].left
			} else {
				cur = t.nodes[cur].right
			}
		}
		if cur != t.Leaf(i) {
			return fmt.Errorf("%w: symbol %d", ErrCodeMismatch, IndexSymbol(i))
		}
	}
	return nil
}
