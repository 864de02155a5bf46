package repo

import (
	"errors"
	"sort"
	"sync"

	"github.com/xiaocenxiaocen/huffmantree/internal/model"
)

var ErrNotFound = errors.New("not found")

// 인터페이스
type BlobRepo interface {
	Save(b *model.Blob) error
	FindByID(id string) (*model.Blob, error)
	List() ([]*model.Blob, error)
	Delete(id string) (*model.Blob, error)
}

type blobRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Blob
}

func NewBlobRepoInMemory() BlobRepo {
	return &blobRepoInMemory{store: make(map[string]*model.Blob)}
}

func (r *blobRepoInMemory) Save(b *model.Blob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[b.ID] = b
	return nil
}

func (r *blobRepoInMemory) FindByID(id string) (*model.Blob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

// List는 생성 시각 순
func (r *blobRepoInMemory) List() ([]*model.Blob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Blob, 0, len(r.store))
	for _, b := range r.store {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete는 지운 blob을 돌려줌 (호출자가 세션 해제)
func (r *blobRepoInMemory) Delete(id string) (*model.Blob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.store, id)
	return b, nil
}
