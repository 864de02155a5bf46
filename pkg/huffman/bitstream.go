package huffman

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

// Bitstream is a packed MSB-first payload. The last byte may carry zero
// padding, so Bits travels with Packed.
type Bitstream struct {
	Packed []byte
	Bits   uint64
}

func packedLen(bits uint64) int { return int((bits + 7) / 8) }

// Padding is the number of zero bits after the payload in the last byte.
func (s Bitstream) Padding() int {
	return packedLen(s.Bits)*8 - int(s.Bits)
}

/*** ---------- MSB-first 비트 리더 ---------- ***/
type bitReader struct {
	r    *bitio.Reader
	bits uint64
	pos  uint64
}

func newBitReader(s Bitstream) *bitReader {
	return &bitReader{r: bitio.NewReader(bytes.NewReader(s.Packed)), bits: s.Bits}
}

func (br *bitReader) readBit() (bool, error) {
	if br.pos >= br.bits {
		return false, io.EOF
	}
	v, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.pos++
	return v, nil
}

/*** ---------- MSB-first 비트 라이터 ---------- ***/
type bitWriter struct {
	w    *bitio.Writer
	bits uint64
}

func newBitWriter(out io.Writer) *bitWriter {
	return &bitWriter{w: bitio.NewWriter(out)}
}

// writeCode packs up to 64 bits per call into the underlying writer.
func (bw *bitWriter) writeCode(c Code) error {
	for len(c) > 0 {
		n := len(c)
		if n > 64 {
			n = 64
		}
		var v uint64
		for _, b := range c[:n] {
			v = v<<1 | uint64(b)
		}
		if err := bw.w.WriteBits(v, uint8(n)); err != nil {
			return err
		}
		bw.bits += uint64(n)
		c = c[n:]
	}
	return nil
}

// close pads the last byte with zeros.
func (bw *bitWriter) close() error { return bw.w.Close() }
