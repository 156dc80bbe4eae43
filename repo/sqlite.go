package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteBackend stores every collection as one JSON blob row in the
// collections table.
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

var _ Backend = (*SQLiteBackend)(nil)

func NewSQLiteBackend(ctx context.Context, db *sql.DB, path string) (*SQLiteBackend, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS collections (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &SQLiteBackend{db: db, path: path}, nil
}

func (b *SQLiteBackend) Locate(bucket string) string {
	return fmt.Sprintf("sqlite:%s#%s", b.path, bucket)
}

func (b *SQLiteBackend) Read(ctx context.Context, bucket string) ([]byte, error) {
	var payload []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE bucket = ?`, bucket,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", bucket, err)
	}
	return payload, nil
}

func (b *SQLiteBackend) Write(ctx context.Context, bucket string, payload []byte) error {
	if _, err := b.db.ExecContext(ctx,
		`INSERT INTO collections(bucket, payload) VALUES(?, ?)
		 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
		bucket, payload,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", bucket, err)
	}
	return nil
}

func (b *SQLiteBackend) Exists(ctx context.Context, bucket string) (bool, error) {
	var n int
	if err := b.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM collections WHERE bucket = ?`, bucket,
	).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *SQLiteBackend) Close() error { return b.db.Close() }
