package repo

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by a Backend when a bucket was never written.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Backend persists opaque whole-collection payloads keyed by bucket name.
// Every write replaces the previous payload of that bucket entirely.
type Backend interface {
	Read(ctx context.Context, bucket string) ([]byte, error)
	Write(ctx context.Context, bucket string, payload []byte) error
	Exists(ctx context.Context, bucket string) (bool, error)
	// Locate describes where a bucket lives, for user-facing messages.
	Locate(bucket string) string
}
