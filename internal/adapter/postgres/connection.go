package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgxpool.Pool the repositories use, so tests can swap it out
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Close()
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

type CommandTag interface {
	RowsAffected() int64
}

type pgxDB struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &pgxDB{pool: pool}, nil
}

func (db *pgxDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

func (db *pgxDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return db.pool.Exec(ctx, sql, args...)
}

func (db *pgxDB) Close() {
	db.pool.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS dishes (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	price      NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the catalogue table if it does not exist yet
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create dishes table: %w", err)
	}
	return nil
}
