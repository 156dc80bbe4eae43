package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// CorruptError reports a backing collection whose content could not be
// decoded. The store hands back an empty collection alongside it.
type CorruptError struct {
	Collection string
	Location   string
	Err        error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("collection %s (%s): malformed content: %v", e.Collection, e.Location, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Store loads and saves one whole collection as a JSON array. There are no
// partial updates: callers load everything, change it in memory and save
// everything back.
type Store[T any] struct {
	name    string
	backend Backend
}

func NewStore[T any](name string, backend Backend) *Store[T] {
	return &Store[T]{name: name, backend: backend}
}

func (s *Store[T]) Name() string     { return s.name }
func (s *Store[T]) Location() string { return s.backend.Locate(s.name) }

// Load returns the stored collection in insertion order. A collection that
// was never written is empty. Malformed content yields an empty collection
// together with a *CorruptError.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	data, err := s.backend.Read(ctx, s.name)
	if errors.Is(err, ErrNoSnapshot) {
		slog.Debug("collection absent", "collection", s.name)
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("collection is malformed", "collection", s.name, "location", s.Location(), "error", err)
		return []T{}, &CorruptError{Collection: s.name, Location: s.Location(), Err: err}
	}
	if out == nil {
		out = []T{}
	}
	slog.Debug("collection loaded", "collection", s.name, "records", len(out))
	return out, nil
}

func (s *Store[T]) Save(ctx context.Context, records []T) error {
	payload, err := Encode(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.name, err)
	}
	if err := s.backend.Write(ctx, s.name, payload); err != nil {
		return fmt.Errorf("write %s: %w", s.name, err)
	}
	slog.Debug("collection saved", "collection", s.name, "records", len(records))
	return nil
}

// Ensure writes an empty collection when none exists yet and reports
// whether it did.
func (s *Store[T]) Ensure(ctx context.Context) (bool, error) {
	ok, err := s.backend.Exists(ctx, s.name)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", s.name, err)
	}
	if ok {
		return false, nil
	}
	if err := s.Save(ctx, []T{}); err != nil {
		return false, err
	}
	slog.Info("collection created", "collection", s.name, "location", s.Location())
	return true, nil
}

// Encode renders records as an indented JSON array, keeping non-ASCII text
// and HTML characters unescaped.
func Encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
