package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"organizer/domain"
)

func newFileStore[T any](t testing.TB, name string) (*Store[T], string) {
	t.Helper()
	dir := t.TempDir()
	b := NewFileBackend(dir, map[string]string{name: name + ".json"})
	return NewStore[T](name, b), filepath.Join(dir, name+".json")
}

func TestStoreLoadMissingFileIsEmpty(t *testing.T) {
	s, _ := newFileStore[domain.Note](t, "notes")

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStoreLoadMalformedReportsAndReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	s, path := newFileStore[domain.Task](t, "tasks")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "title": `), 0o644))

	got, err := s.Load(ctx)
	assert.Empty(t, got)

	var ce *CorruptError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "tasks", ce.Collection)
	assert.Equal(t, path, ce.Location)

	// the corrupt content is left alone until the next save overwrites it
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `[{"id": 1, "title": `, string(raw))
}

func TestStoreLoadEmptyFileIsCorrupt(t *testing.T) {
	s, path := newFileStore[domain.Contact](t, "contacts")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := s.Load(context.Background())
	var ce *CorruptError
	assert.ErrorAs(t, err, &ce)
}

func TestStoreSaveFormat(t *testing.T) {
	ctx := context.Background()
	s, path := newFileStore[domain.Contact](t, "contacts")

	require.NoError(t, s.Save(ctx, []domain.Contact{{ID: 1, Name: "Анна <A&B>", Phone: "1", Email: "a@b"}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `[
    {
        "id": 1,
        "name": "Анна <A&B>",
        "phone": "1",
        "email": "a@b"
    }
]`
	assert.Equal(t, want, string(raw))
}

func TestStoreSaveNilWritesEmptyArray(t *testing.T) {
	s, path := newFileStore[domain.Note](t, "notes")
	require.NoError(t, s.Save(context.Background(), nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestStoreEnsure(t *testing.T) {
	ctx := context.Background()
	s, path := newFileStore[domain.FinanceRecord](t, "finance")

	created, err := s.Ensure(ctx)
	require.NoError(t, err)
	assert.True(t, created)
	assert.FileExists(t, path)

	require.NoError(t, s.Save(ctx, []domain.FinanceRecord{{ID: 1, Amount: 5}}))
	created, err = s.Ensure(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFileBackendLocate(t *testing.T) {
	b := NewFileBackend("/data", map[string]string{"notes": "my-notes.json", "tasks": "/abs/tasks.json"})

	assert.Equal(t, filepath.Join("/data", "my-notes.json"), b.Locate("notes"))
	assert.Equal(t, "/abs/tasks.json", b.Locate("tasks"))
	assert.Equal(t, filepath.Join("/data", "finance.json"), b.Locate("finance"))
	assert.Equal(t, "contacts.json", FileBackend{}.Locate("contacts"))
}

func TestFileBackendWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b := NewFileBackend(dir, nil)
	require.NoError(t, b.Write(context.Background(), "notes", []byte("[]")))
	require.NoError(t, b.Write(context.Background(), "notes", []byte("[ ]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.json", entries[0].Name())
}

func financeGen() *rapid.Generator[domain.FinanceRecord] {
	return rapid.Custom(func(t *rapid.T) domain.FinanceRecord {
		return domain.FinanceRecord{
			ID:          rapid.IntRange(1, 1000).Draw(t, "id"),
			Amount:      float64(rapid.IntRange(-100000, 100000).Draw(t, "cents")) / 100,
			Category:    rapid.StringMatching(`[A-Za-zА-Яа-я ]{0,12}`).Draw(t, "category"),
			Date:        rapid.StringMatching(`[0-3][0-9]-[01][0-9]-20[0-9]{2}`).Draw(t, "date"),
			Description: rapid.StringMatching(`[A-Za-zА-Яа-я0-9 .,!?"<>&]{0,30}`).Draw(t, "description"),
		}
	})
}

func TestStoreRoundTripProperty(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		s := NewStore[domain.FinanceRecord]("finance", NewFileBackend(dir, nil))
		records := rapid.SliceOf(financeGen()).Draw(rt, "records")

		ctx := context.Background()
		if err := s.Save(ctx, records); err != nil {
			rt.Fatalf("save: %v", err)
		}
		got, err := s.Load(ctx)
		if err != nil {
			rt.Fatalf("load: %v", err)
		}
		if len(records) == 0 {
			if len(got) != 0 {
				rt.Fatalf("want empty, got %v", got)
			}
			return
		}
		if !assert.ObjectsAreEqual(records, got) {
			rt.Fatalf("round trip mismatch:\nwant %#v\ngot  %#v", records, got)
		}
	})
}
