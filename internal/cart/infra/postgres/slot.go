package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS cart_slots (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Slot keeps the cart in one row of cart_slots.
type Slot struct {
	pool *pgxpool.Pool
	key  string
}

func NewSlot(pool *pgxpool.Pool, key string) *Slot {
	return &Slot{pool: pool, key: key}
}

func (s *Slot) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create cart_slots: %w", err)
	}
	return nil
}

func (s *Slot) Load(ctx context.Context) ([]byte, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM cart_slots WHERE key = $1`, s.key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart slot %q: %w", s.key, err)
	}
	return []byte(value), nil
}

func (s *Slot) Save(ctx context.Context, data []byte) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO cart_slots (key, value, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		s.key, string(data))
	if err != nil {
		return fmt.Errorf("save cart slot %q: %w", s.key, err)
	}
	return nil
}
