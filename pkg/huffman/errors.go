package huffman

import "errors"

var (
	ErrNilTree       = errors.New("huffman: nil tree")
	ErrNilTable      = errors.New("huffman: nil code table")
	ErrReleased      = errors.New("huffman: tree already released")
	ErrTruncated     = errors.New("huffman: bitstream exhausted before expected symbol count")
	ErrShortBuffer   = errors.New("huffman: bit length exceeds packed buffer")
	ErrNegativeCount = errors.New("huffman: negative symbol count")
	ErrCodeMismatch  = errors.New("huffman: code does not lead to its leaf")
)
