package wfl

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat32Bytes(t *testing.T) {
	samples := []float32{0, 1, -1.5, math.MaxFloat32, float32(math.Inf(-1))}
	b := Float32sToBytes(samples)
	require.Len(t, b, len(samples)*SampleSize)
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, b[4:8]) // 1.0

	back, err := BytesToFloat32s(b)
	require.NoError(t, err)
	require.Equal(t, samples, back)

	_, err = BytesToFloat32s([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestReadWriteSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wfl.dat")
	samples := []float32{0.25, -3, 7.5, 1e-3}
	require.NoError(t, WriteSamples(path, samples))

	all, err := ReadSamples(path, 0)
	require.NoError(t, err)
	require.Equal(t, samples, all)

	head, err := ReadSamples(path, 2)
	require.NoError(t, err)
	require.Equal(t, samples[:2], head)

	_, err = ReadSamples(path, 10)
	require.Error(t, err)

	_, err = ReadSamples(filepath.Join(t.TempDir(), "missing.dat"), 0)
	require.Error(t, err)
}

func TestMaxAbsDeviation(t *testing.T) {
	d, idx, err := MaxAbsDeviation([]float32{1, 2, 3}, []float32{1, 2.5, 1})
	require.NoError(t, err)
	require.InDelta(t, 2.0, d, 1e-9)
	require.Equal(t, 2, idx)

	d, idx, err = MaxAbsDeviation([]float32{1, 2}, []float32{1, 2})
	require.NoError(t, err)
	require.Zero(t, d)
	require.Zero(t, idx)

	_, _, err = MaxAbsDeviation([]float32{1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}
