package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const fileName = ".state.json"

type appState struct {
	LastImport map[string]string `json:"last_import,omitempty"`
}

// Store keeps small UI state next to the data files. It is not part of
// any collection.
type Store struct {
	dir string
}

func New(dir string) Store { return Store{dir: dir} }

func (s Store) path() string {
	return filepath.Join(s.dir, fileName)
}

func (s Store) load() (appState, error) {
	var st appState
	b, err := os.ReadFile(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	if err := json.Unmarshal(b, &st); err != nil {
		return appState{}, err
	}
	return st, nil
}

// LastImport returns the path most recently imported into collection, or
// "" when there is none.
func (s Store) LastImport(collection string) (string, error) {
	st, err := s.load()
	if err != nil {
		return "", err
	}
	return st.LastImport[collection], nil
}

func (s Store) SaveLastImport(collection, path string) error {
	st, err := s.load()
	if err != nil {
		// unreadable state is replaced
		st = appState{}
	}
	if st.LastImport == nil {
		st.LastImport = map[string]string{}
	}
	st.LastImport[collection] = path

	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0644)
}
