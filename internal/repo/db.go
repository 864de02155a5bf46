package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xiaocenxiaocen/huffmantree/internal/model"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS compression_stats (
  blob_id      TEXT PRIMARY KEY,
  input_bytes  INTEGER NOT NULL,
  encoded_bits BIGINT NOT NULL,
  packed_bytes INTEGER NOT NULL,
  ratio        DOUBLE PRECISION NOT NULL,
  distinct_symbols INTEGER NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL
)`)
	return err
}

type statsRepoPostgres struct {
	pool *pgxpool.Pool
}

func NewStatsRepoPostgres(pool *pgxpool.Pool) StatsRepo {
	return &statsRepoPostgres{pool: pool}
}

func (r *statsRepoPostgres) Record(ctx context.Context, s *model.Stats) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO compression_stats
  (blob_id, input_bytes, encoded_bits, packed_bytes, ratio, distinct_symbols, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.BlobID, s.InputBytes, int64(s.EncodedBits), s.PackedBytes, s.Ratio, s.Distinct, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stats %s: %w", s.BlobID, err)
	}
	return nil
}

func (r *statsRepoPostgres) Recent(ctx context.Context, limit int) ([]*model.Stats, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
SELECT blob_id, input_bytes, encoded_bits, packed_bytes, ratio, distinct_symbols, created_at
FROM compression_stats
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []*model.Stats
	for rows.Next() {
		var s model.Stats
		var bits int64
		if err := rows.Scan(&s.BlobID, &s.InputBytes, &bits, &s.PackedBytes, &s.Ratio, &s.Distinct, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		s.EncodedBits = uint64(bits)
		out = append(out, &s)
	}
	return out, rows.Err()
}
