package model

import (
	"time"

	"github.com/xiaocenxiaocen/huffmantree/pkg/huffman"
)

// Blob은 압축 결과 + 그 결과를 만든 세션(트리 공유용)
type Blob struct {
	ID        string           `json:"id"`
	Symbols   int              `json:"symbols"`
	Bits      uint64           `json:"bits"`
	Stats     huffman.Stats    `json:"stats"`
	CreatedAt time.Time        `json:"createdAt"`
	Packed    []byte           `json:"-"`
	Session   *huffman.Session `json:"-"`
}

func (b *Blob) Stream() huffman.Bitstream {
	return huffman.Bitstream{Packed: b.Packed, Bits: b.Bits}
}

// Stats는 압축 1회 기록 (DB 저장용)
type Stats struct {
	BlobID      string    `json:"blobId"`
	InputBytes  int       `json:"inputBytes"`
	EncodedBits uint64    `json:"encodedBits"`
	PackedBytes int       `json:"packedBytes"`
	Ratio       float64   `json:"ratio"`
	Distinct    int       `json:"distinct"`
	CreatedAt   time.Time `json:"createdAt"`
}
