package repo

import (
	"context"
	"sync"

	"github.com/xiaocenxiaocen/huffmantree/internal/model"
)

type StatsRepo interface {
	Record(ctx context.Context, s *model.Stats) error
	Recent(ctx context.Context, limit int) ([]*model.Stats, error)
}

type statsRepoInMemory struct {
	mu   sync.Mutex
	rows []*model.Stats
}

func NewStatsRepoInMemory() StatsRepo {
	return &statsRepoInMemory{}
}

func (r *statsRepoInMemory) Record(_ context.Context, s *model.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, s)
	return nil
}

// Recent는 최신순
func (r *statsRepoInMemory) Recent(_ context.Context, limit int) ([]*model.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 || limit > len(r.rows) {
		limit = len(r.rows)
	}
	out := make([]*model.Stats, 0, limit)
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.rows[i])
	}
	return out, nil
}
