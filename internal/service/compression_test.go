package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xiaocenxiaocen/huffmantree/internal/repo"
	"github.com/xiaocenxiaocen/huffmantree/pkg/huffman"
	"github.com/xiaocenxiaocen/huffmantree/pkg/logger"
)

func newService(maxBytes int64) *CompressionService {
	return NewCompressionService(repo.NewBlobRepoInMemory(), repo.NewStatsRepoInMemory(), logger.Nop(), maxBytes)
}

type recordingLogger struct {
	mu     sync.Mutex
	levels []string
}

func (l *recordingLogger) add(level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levels = append(l.levels, level+" "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Debugf(format string, v ...any) { l.add("DEBU", format, v...) }
func (l *recordingLogger) Infof(format string, v ...any)  { l.add("INFO", format, v...) }
func (l *recordingLogger) Warnf(format string, v ...any)  { l.add("WARN", format, v...) }
func (l *recordingLogger) Errorf(format string, v ...any) { l.add("ERRO", format, v...) }

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, line := range l.levels {
		if len(line) >= len(level) && line[:len(level)] == level {
			n++
		}
	}
	return n
}

func TestCompressDecompress(t *testing.T) {
	ctx := context.Background()
	svc := newService(0)
	data := bytes.Repeat([]byte("compress me, decompress me. "), 20)

	b, err := svc.Compress(ctx, data)
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	require.Equal(t, len(data), b.Symbols)
	require.Less(t, len(b.Packed), len(data))

	out, err := svc.Decompress(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, data, out)

	rows, err := svc.RecentStats(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, b.ID, rows[0].BlobID)
	require.Equal(t, 11, rows[0].Distinct)
}

func TestCompressEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newService(0)
	b, err := svc.Compress(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, b.Bits)

	out, err := svc.Decompress(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCompressTooLarge(t *testing.T) {
	svc := newService(4)
	_, err := svc.Compress(context.Background(), []byte("12345"))
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestDecodeWith(t *testing.T) {
	ctx := context.Background()
	svc := newService(0)
	b, err := svc.Compress(ctx, []byte("shared tree"))
	require.NoError(t, err)

	out, err := svc.DecodeWith(ctx, b.ID, b.Stream(), 6)
	require.NoError(t, err)
	require.Equal(t, []byte("shared"), out)

	short := huffman.Bitstream{Packed: b.Packed, Bits: b.Bits / 2}
	_, err = svc.DecodeWith(ctx, b.ID, short, b.Symbols)
	require.ErrorIs(t, err, huffman.ErrTruncated)

	_, err = svc.DecodeWith(ctx, "missing", b.Stream(), 1)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCodesAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(0)
	b, err := svc.Compress(ctx, []byte("aaaab"))
	require.NoError(t, err)

	codes, err := svc.Codes(b.ID)
	require.NoError(t, err)
	require.Len(t, codes, huffman.AlphabetSize)
	require.Equal(t, "1", codes['a'])

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(b.ID))
	require.True(t, b.Session.Tree().Released())
	_, err = svc.Get(b.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
	require.ErrorIs(t, svc.Delete(b.ID), repo.ErrNotFound)
}

func TestDecompressCanceled(t *testing.T) {
	svc := newService(0)
	b, err := svc.Compress(context.Background(), []byte("ctx"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Decompress(ctx, b.ID)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDeleteDuringDecompress(t *testing.T) {
	ctx := context.Background()
	svc := newService(0)
	data := bytes.Repeat([]byte("delete while another request decodes. "), 8000)
	b, err := svc.Compress(ctx, data)
	require.NoError(t, err)

	const readers = 4
	var wg sync.WaitGroup
	errs := make(chan error, readers+1)
	start := make(chan struct{})
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			out, err := svc.Decompress(ctx, b.ID)
			if err == nil && !bytes.Equal(data, out) {
				err = fmt.Errorf("decoded %d bytes, want %d", len(out), len(data))
			}
			errs <- err
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-start
		errs <- svc.Delete(b.ID)
	}()
	close(start)
	wg.Wait()
	close(errs)

	// 삭제 전에 찾았으면 전부 복원하거나 ErrReleased, 삭제 후면 ErrNotFound
	for err := range errs {
		if err != nil {
			require.True(t, errors.Is(err, huffman.ErrReleased) || errors.Is(err, repo.ErrNotFound), err.Error())
		}
	}
	require.True(t, b.Session.Tree().Released())

	_, err = svc.Codes(b.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
	_, err = b.Session.Decode(b.Stream(), b.Symbols)
	require.ErrorIs(t, err, huffman.ErrReleased)
}

func TestDecodeCallerErrorsLogWarn(t *testing.T) {
	ctx := context.Background()
	log := &recordingLogger{}
	svc := NewCompressionService(repo.NewBlobRepoInMemory(), repo.NewStatsRepoInMemory(), log, 0)
	b, err := svc.Compress(ctx, []byte("bad streams are the caller's problem"))
	require.NoError(t, err)

	_, err = svc.DecodeWith(ctx, b.ID, huffman.Bitstream{Packed: b.Packed, Bits: 2}, b.Symbols)
	require.ErrorIs(t, err, huffman.ErrTruncated)
	_, err = svc.DecodeWith(ctx, b.ID, huffman.Bitstream{Packed: nil, Bits: 8}, 1)
	require.ErrorIs(t, err, huffman.ErrShortBuffer)
	_, err = svc.DecodeWith(ctx, b.ID, b.Stream(), -1)
	require.ErrorIs(t, err, huffman.ErrNegativeCount)

	require.Equal(t, 3, log.count("WARN"))
	require.Zero(t, log.count("ERRO"))
}
