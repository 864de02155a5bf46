// float32 파형 샘플 <-> 바이트 버퍼, 파일 입출력, 복원 오차 측정
package wfl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var ErrLengthMismatch = errors.New("wfl: sample buffers differ in length")

// SampleSize is the byte width of one sample.
const SampleSize = 4

// Float32sToBytes lays samples out little endian, 4 bytes each.
func Float32sToBytes(samples []float32) []byte {
	out := make([]byte, len(samples)*SampleSize)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(out[i*SampleSize:], math.Float32bits(v))
	}
	return out
}

// BytesToFloat32s is the inverse of Float32sToBytes. A trailing partial
// sample is an error.
func BytesToFloat32s(b []byte) ([]float32, error) {
	if len(b)%SampleSize != 0 {
		return nil, fmt.Errorf("wfl: %d bytes is not a whole number of samples", len(b))
	}
	out := make([]float32, len(b)/SampleSize)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*SampleSize:]))
	}
	return out, nil
}

// ReadSamples reads n samples from path. n <= 0 reads the whole file.
func ReadSamples(path string, n int) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []byte
	if n > 0 {
		raw = make([]byte, n*SampleSize)
		if _, err := io.ReadFull(f, raw); err != nil {
			return nil, fmt.Errorf("wfl: read %d samples from %s: %w", n, path, err)
		}
	} else {
		if raw, err = io.ReadAll(f); err != nil {
			return nil, fmt.Errorf("wfl: read %s: %w", path, err)
		}
	}
	return BytesToFloat32s(raw)
}

func WriteSamples(path string, samples []float32) error {
	return WriteStream(path, Float32sToBytes(samples))
}

// WriteStream writes an arbitrary byte buffer, e.g. a packed bitstream.
func WriteStream(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("wfl: write %s: %w", path, err)
	}
	return nil
}

// MaxAbsDeviation returns the largest |a[i]-b[i]| and the first index where
// it occurs.
func MaxAbsDeviation(a, b []float32) (float64, int, error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	maxErr, idx := 0.0, 0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxErr || math.IsNaN(d) && !math.IsNaN(maxErr) {
			maxErr, idx = d, i
		}
	}
	return maxErr, idx, nil
}
