package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"organizer/domain"
	"organizer/files"
	"organizer/repo"
)

// Manager implements the read-modify-write cycle shared by every
// collection: each call loads the full collection, changes it in memory
// and, when something changed, saves the full collection back. Nothing is
// cached between calls.
type Manager[T domain.Record[T]] struct {
	collection domain.Collection
	store      Store[T]
	codec      files.Codec[T]
	exportDir  string
	onCorrupt  func(*repo.CorruptError)
}

func NewManager[T domain.Record[T]](c domain.Collection, store Store[T], codec files.Codec[T], exportDir string) *Manager[T] {
	return &Manager[T]{collection: c, store: store, codec: codec, exportDir: exportDir}
}

func (m *Manager[T]) Collection() domain.Collection { return m.collection }

// OnCorrupt registers the callback told about a malformed backing
// collection. The call that hit it continues with an empty collection.
func (m *Manager[T]) OnCorrupt(fn func(*repo.CorruptError)) { m.onCorrupt = fn }

func (m *Manager[T]) load(ctx context.Context) ([]T, error) {
	records, err := m.store.Load(ctx)
	var ce *repo.CorruptError
	if errors.As(err, &ce) {
		if m.onCorrupt != nil {
			m.onCorrupt(ce)
		}
		return records, nil
	}
	return records, err
}

// Create assigns the next id to rec, appends it and persists.
func (m *Manager[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	records, err := m.load(ctx)
	if err != nil {
		return zero, err
	}
	rec = rec.WithID(domain.NextID(records))
	records = append(records, rec)
	if err := m.store.Save(ctx, records); err != nil {
		return zero, err
	}
	slog.Info("record added", "collection", m.collection, "id", rec.RecordID())
	return rec, nil
}

// List returns the whole collection in file order.
func (m *Manager[T]) List(ctx context.Context) ([]T, error) {
	return m.load(ctx)
}

// Get returns the first record with the given id.
func (m *Manager[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	records, err := m.load(ctx)
	if err != nil {
		return zero, err
	}
	i := index(records, id)
	if i < 0 {
		return zero, fmt.Errorf("%s %d: %w", m.collection, id, domain.ErrNotFound)
	}
	return records[i], nil
}

// Select returns the records matching keep, in file order.
func (m *Manager[T]) Select(ctx context.Context, keep func(T) bool) ([]T, error) {
	records, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Update applies change to the first record with the given id and
// persists. A missing id leaves the collection untouched.
func (m *Manager[T]) Update(ctx context.Context, id int, change func(*T)) (T, error) {
	var zero T
	records, err := m.load(ctx)
	if err != nil {
		return zero, err
	}
	i := index(records, id)
	if i < 0 {
		return zero, fmt.Errorf("%s %d: %w", m.collection, id, domain.ErrNotFound)
	}
	change(&records[i])
	// ids are not editable
	records[i] = records[i].WithID(id)
	if err := m.store.Save(ctx, records); err != nil {
		return zero, err
	}
	slog.Info("record updated", "collection", m.collection, "id", id)
	return records[i], nil
}

// Delete removes every record with the given id and reports whether any
// was removed. Deleting an absent id is not an error.
func (m *Manager[T]) Delete(ctx context.Context, id int) (bool, error) {
	records, err := m.load(ctx)
	if err != nil {
		return false, err
	}
	kept := slices.DeleteFunc(slices.Clone(records), func(r T) bool { return r.RecordID() == id })
	if len(kept) == len(records) {
		return false, nil
	}
	if err := m.store.Save(ctx, kept); err != nil {
		return false, err
	}
	slog.Info("record deleted", "collection", m.collection, "id", id)
	return true, nil
}

// ExportPath is where Export writes the given format.
func (m *Manager[T]) ExportPath(f files.Format) string {
	return filepath.Join(m.exportDir, files.ExportName(m.collection, f))
}

// Export writes the whole collection to its fixed export file and returns
// the path and record count.
func (m *Manager[T]) Export(ctx context.Context, f files.Format) (string, int, error) {
	enc, err := files.NewEncoder(f, m.codec)
	if err != nil {
		return "", 0, err
	}
	records, err := m.load(ctx)
	if err != nil {
		return "", 0, err
	}
	path := m.ExportPath(f)
	if err := files.Export(path, records, enc); err != nil {
		return "", 0, fmt.Errorf("export %s: %w", m.collection, err)
	}
	slog.Info("collection exported", "collection", m.collection, "path", path, "records", len(records))
	return path, len(records), nil
}

// Import parses the whole file before touching the collection; a file
// that is missing or malformed aborts the import with nothing changed.
// Imported records keep their ids as-is, collisions included.
func (m *Manager[T]) Import(ctx context.Context, path string, f files.Format) (int, error) {
	imp, err := files.NewImporter(f, m.codec)
	if err != nil {
		return 0, err
	}
	batch := uuid.NewString()
	incoming, err := imp.Import(path)
	if err != nil {
		slog.Warn("import aborted", "collection", m.collection, "path", path, "batch", batch, "error", err)
		return 0, fmt.Errorf("import %s: %w", path, err)
	}
	records, err := m.load(ctx)
	if err != nil {
		return 0, err
	}
	records = append(records, incoming...)
	if err := m.store.Save(ctx, records); err != nil {
		return 0, err
	}
	slog.Info("collection imported", "collection", m.collection, "path", path, "batch", batch, "records", len(incoming))
	return len(incoming), nil
}

func index[T domain.Record[T]](records []T, id int) int {
	return slices.IndexFunc(records, func(r T) bool { return r.RecordID() == id })
}
