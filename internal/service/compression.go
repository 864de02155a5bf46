package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xiaocenxiaocen/huffmantree/internal/model"
	"github.com/xiaocenxiaocen/huffmantree/internal/repo"
	"github.com/xiaocenxiaocen/huffmantree/pkg/huffman"
	"github.com/xiaocenxiaocen/huffmantree/pkg/logger"
)

var ErrPayloadTooLarge = errors.New("payload too large")

type CompressionService struct {
	blobs    repo.BlobRepo
	stats    repo.StatsRepo
	logger   logger.Logger
	maxBytes int64
	now      func() time.Time
}

func NewCompressionService(b repo.BlobRepo, s repo.StatsRepo, l logger.Logger, maxBytes int64) *CompressionService {
	return &CompressionService{blobs: b, stats: s, logger: l, maxBytes: maxBytes, now: time.Now}
}

// MaxBytes is the payload limit, 0 for none.
func (s *CompressionService) MaxBytes() int64 { return s.maxBytes }

// Compress는 data 전용 세션을 만들어 인코딩하고, 같은 트리로 복원할 수 있게 세션째 보관
func (s *CompressionService) Compress(ctx context.Context, data []byte) (*model.Blob, error) {
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, len(data), s.maxBytes)
	}
	sess, err := huffman.NewSession(data)
	if err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}
	stream, err := sess.Encode(data)
	if err != nil {
		sess.Release()
		return nil, fmt.Errorf("encode: %w", err)
	}

	b := &model.Blob{
		ID:        uuid.NewString(),
		Symbols:   len(data),
		Bits:      stream.Bits,
		Stats:     huffman.NewStats(len(data), stream),
		CreatedAt: s.now(),
		Packed:    stream.Packed,
		Session:   sess,
	}
	if err := s.blobs.Save(b); err != nil {
		sess.Release()
		return nil, err
	}

	freq := sess.Frequencies()
	if s.stats != nil {
		row := &model.Stats{
			BlobID:      b.ID,
			InputBytes:  b.Stats.InputBytes,
			EncodedBits: b.Stats.EncodedBits,
			PackedBytes: b.Stats.PackedBytes,
			Ratio:       b.Stats.Ratio,
			Distinct:    freq.Distinct(),
			CreatedAt:   b.CreatedAt,
		}
		// 통계 실패는 압축 결과에 영향 없음
		if err := s.stats.Record(ctx, row); err != nil {
			s.logger.Warnf("record stats %s: %v", b.ID, err)
		}
	}
	s.logger.Infof("blob compressed: %s (%d bytes -> %d bytes, %d bits)", b.ID, len(data), len(b.Packed), b.Bits)
	return b, nil
}

func (s *CompressionService) Get(id string) (*model.Blob, error) {
	return s.blobs.FindByID(id)
}

func (s *CompressionService) List() ([]*model.Blob, error) {
	return s.blobs.List()
}

// Decompress는 저장된 스트림을 저장된 트리로 복원
func (s *CompressionService) Decompress(ctx context.Context, id string) ([]byte, error) {
	b, err := s.blobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.decode(ctx, b, b.Stream(), b.Symbols)
}

// DecodeWith는 호출자가 준 스트림을 blob의 트리로 복원
func (s *CompressionService) DecodeWith(ctx context.Context, id string, stream huffman.Bitstream, count int) ([]byte, error) {
	b, err := s.blobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.decode(ctx, b, stream, count)
}

func (s *CompressionService) decode(ctx context.Context, b *model.Blob, stream huffman.Bitstream, count int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := b.Session.Decode(stream, count)
	if err != nil {
		if isCallerError(err) {
			s.logger.Warnf("decode %s: %v", b.ID, err)
		} else {
			s.logger.Errorf("decode %s: %v", b.ID, err)
		}
		return nil, err
	}
	return out, nil
}

// Codes는 심볼(-128..127) → 코드 문자열
func (s *CompressionService) Codes(id string) (map[int8]string, error) {
	b, err := s.blobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	return b.Session.CodeStrings()
}

func (s *CompressionService) Delete(id string) error {
	b, err := s.blobs.Delete(id)
	if err != nil {
		return err
	}
	b.Session.Release()
	s.logger.Infof("blob deleted: %s", id)
	return nil
}

// isCallerError: 잘못된 스트림/개수, 삭제 경합 등 서버 결함이 아닌 경우
func isCallerError(err error) bool {
	return errors.Is(err, huffman.ErrTruncated) ||
		errors.Is(err, huffman.ErrShortBuffer) ||
		errors.Is(err, huffman.ErrNegativeCount) ||
		errors.Is(err, huffman.ErrReleased)
}

func (s *CompressionService) RecentStats(ctx context.Context, limit int) ([]*model.Stats, error) {
	if s.stats == nil {
		return []*model.Stats{}, nil
	}
	return s.stats.Recent(ctx, limit)
}
