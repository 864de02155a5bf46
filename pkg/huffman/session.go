package huffman

import "sync"

// Session is the context of one compression: the frequencies, alphabet, tree
// and code table built from a single input buffer. Encoding and decoding
// through the same Session share one tree instance.
//
// Encode, Decode and CodeStrings may run concurrently with each other and
// with Release; a call that starts after Release returns ErrReleased.
type Session struct {
	mu       sync.RWMutex // Release 는 쓰기 락, 나머지는 읽기 락
	freq     FrequencyTable
	alphabet *Alphabet
	tree     *Tree
	codes    *CodeTable
}

// NewSession counts buf and builds the tree and code table for it. An empty
// buf yields a tree of 256 zero-weight leaves.
func NewSession(buf []byte) (*Session, error) {
	return NewSessionFromFrequencies(CountFrequencies(buf))
}

func NewSessionFromFrequencies(freq FrequencyTable) (*Session, error) {
	alphabet := NewAlphabet(freq)
	tree := BuildTree(alphabet)
	codes, err := tree.Codes()
	if err != nil {
		return nil, err
	}
	return &Session{freq: freq, alphabet: alphabet, tree: tree, codes: codes}, nil
}

func (s *Session) Frequencies() FrequencyTable { return s.freq }
func (s *Session) Alphabet() *Alphabet         { return s.alphabet }
func (s *Session) Tree() *Tree                 { return s.tree }

// Codes returns the code table, nil once released. A table obtained earlier
// is never modified, so it stays readable after Release.
func (s *Session) Codes() *CodeTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codes
}

func (s *Session) Encode(buf []byte) (Bitstream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree.Released() {
		return Bitstream{}, ErrReleased
	}
	return Encode(buf, s.codes)
}

func (s *Session) Decode(stream Bitstream, count int) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Decode(stream, s.tree, count)
}

// CodeStrings is CodeTable.Strings taken under the session lock.
func (s *Session) CodeStrings() (map[int8]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tree.Released() || s.codes == nil {
		return nil, ErrReleased
	}
	return s.codes.Strings(), nil
}

// Release frees the tree. It waits for running Encode and Decode calls;
// later ones fail with ErrReleased.
func (s *Session) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Release()
	s.codes = nil
}

// Stats summarises one encoding.
type Stats struct {
	InputBytes  int     `json:"inputBytes"`
	EncodedBits uint64  `json:"encodedBits"`
	PackedBytes int     `json:"packedBytes"`
	Ratio       float64 `json:"ratio"` // packed/input, 0 for empty input
}

func NewStats(inputBytes int, stream Bitstream) Stats {
	st := Stats{
		InputBytes:  inputBytes,
		EncodedBits: stream.Bits,
		PackedBytes: len(stream.Packed),
	}
	if inputBytes > 0 {
		st.Ratio = float64(st.PackedBytes) / float64(inputBytes)
	}
	return st
}
