package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBackend keeps collection snapshots in a Postgres JSONB column.
type PgBackend struct{ db *pgxpool.Pool }

var _ Backend = (*PgBackend)(nil)

func NewPgBackend(ctx context.Context, db *pgxpool.Pool) (*PgBackend, error) {
	if _, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS collections (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("ensure collections table: %w", err)
	}
	return &PgBackend{db: db}, nil
}

func (b *PgBackend) Locate(bucket string) string { return "postgres#" + bucket }

func (b *PgBackend) Read(ctx context.Context, bucket string) ([]byte, error) {
	var payload []byte
	err := b.db.QueryRow(ctx,
		`SELECT payload FROM collections WHERE bucket=$1`, bucket,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", bucket, err)
	}
	return payload, nil
}

func (b *PgBackend) Write(ctx context.Context, bucket string, payload []byte) error {
	_, err := b.db.Exec(ctx,
		`INSERT INTO collections(bucket, payload) VALUES($1, $2)
		 ON CONFLICT(bucket) DO UPDATE SET payload=EXCLUDED.payload`,
		bucket, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", bucket, err)
	}
	return nil
}

func (b *PgBackend) Exists(ctx context.Context, bucket string) (bool, error) {
	var ok bool
	err := b.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM collections WHERE bucket=$1)`, bucket,
	).Scan(&ok)
	return ok, err
}

