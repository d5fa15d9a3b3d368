package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huffman_compression_go/internal/model"
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
CREATE TABLE IF NOT EXISTS archives (
  id TEXT PRIMARY KEY,
  strategy TEXT NOT NULL,
  symbol_width INT NOT NULL,
  symbols INT NOT NULL,
  distinct_symbols INT NOT NULL,
  bit_length BIGINT NOT NULL,
  payload BYTEA NOT NULL,
  created_at TIMESTAMPTZ NOT NULL
)`)
	return err
}

const archiveColumns = `id, strategy, symbol_width, symbols, distinct_symbols, bit_length, payload, created_at`

type pgArchiveRepo struct {
	pool *pgxpool.Pool
}

func NewArchiveRepoPG(pool *pgxpool.Pool) ArchiveRepo {
	return &pgArchiveRepo{pool: pool}
}

func (r *pgArchiveRepo) Save(ctx context.Context, a *model.Archive) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO archives (`+archiveColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  strategy = EXCLUDED.strategy,
  symbol_width = EXCLUDED.symbol_width,
  symbols = EXCLUDED.symbols,
  distinct_symbols = EXCLUDED.distinct_symbols,
  bit_length = EXCLUDED.bit_length,
  payload = EXCLUDED.payload,
  created_at = EXCLUDED.created_at`,
		a.ID, a.Strategy, a.SymbolWidth, a.Symbols, a.Distinct, a.BitLength, a.Payload, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save archive %s: %w", a.ID, err)
	}
	return nil
}

// pgx.Row와 pgx.Rows 둘 다 받기 위한 인터페이스
type scanner interface {
	Scan(dest ...any) error
}

func scanArchive(s scanner) (*model.Archive, error) {
	var a model.Archive
	if err := s.Scan(&a.ID, &a.Strategy, &a.SymbolWidth, &a.Symbols, &a.Distinct, &a.BitLength, &a.Payload, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *pgArchiveRepo) FindByID(ctx context.Context, id string) (*model.Archive, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+archiveColumns+` FROM archives WHERE id = $1`, id)
	a, err := scanArchive(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find archive %s: %w", id, err)
	}
	return a, nil
}

func (r *pgArchiveRepo) List(ctx context.Context) ([]*model.Archive, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+archiveColumns+` FROM archives ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Archive, 0)
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return nil, fmt.Errorf("list archives: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	return out, nil
}

func (r *pgArchiveRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM archives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete archive %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
