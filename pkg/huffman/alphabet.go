// 256개 고정 심볼(부호 있는 바이트 -128..127) 정적 허프만 코덱
package huffman

/*** ---------- 알파벳 ---------- ***/

// AlphabetSize is the fixed number of symbols: every signed byte value.
const AlphabetSize = 256

// SymbolIndex maps a byte, read as a signed 8-bit value v, to v+128.
func SymbolIndex(b byte) int { return int(int8(b)) + 128 }

// IndexSymbol is the inverse of SymbolIndex.
func IndexSymbol(i int) int8 { return int8(i - 128) }

// FrequencyTable holds one count per symbol, indexed by SymbolIndex.
type FrequencyTable [AlphabetSize]uint64

// CountFrequencies scans buf once. An empty buf gives all-zero counts.
func CountFrequencies(buf []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range buf {
		freq[SymbolIndex(b)]++
	}
	return freq
}

// Total is the number of symbols counted.
func (f *FrequencyTable) Total() uint64 {
	var n uint64
	for _, c := range f {
		n += c
	}
	return n
}

// Distinct counts symbols that occur at least once.
func (f *FrequencyTable) Distinct() int {
	n := 0
	for _, c := range f {
		if c > 0 {
			n++
		}
	}
	return n
}

// Leaf is one alphabet entry.
type Leaf struct {
	Symbol int8
	Weight uint64
}

// Alphabet is the per-session set of 256 leaves, one per byte value,
// whether or not the value occurs.
type Alphabet struct {
	leaves [AlphabetSize]Leaf
}

func NewAlphabet(freq FrequencyTable) *Alphabet {
	a := &Alphabet{}
	for i := range a.leaves {
		a.leaves[i] = Leaf{Symbol: IndexSymbol(i), Weight: freq[i]}
	}
	return a
}

// Leaf returns the entry at index i (0..255).
func (a *Alphabet) Leaf(i int) Leaf { return a.leaves[i] }

// Frequencies rebuilds the table the alphabet was made from.
func (a *Alphabet) Frequencies() FrequencyTable {
	var freq FrequencyTable
	for i, l := range a.leaves {
		freq[i] = l.Weight
	}
	return freq
}
