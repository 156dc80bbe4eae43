package files

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// Encoder renders a whole collection in one transfer format.
type Encoder[T any] interface {
	EncodeRecords(records []T) ([]byte, error)
}

type CSVEncoder[T any] struct{ Codec Codec[T] }

func (e CSVEncoder[T]) EncodeRecords(records []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, e.Codec, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type JSONEncoder[T any] struct{}

func (JSONEncoder[T]) EncodeRecords(records []T) ([]byte, error) {
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
	return buf.Bytes(), nil
}

func NewEncoder[T any](f Format, codec Codec[T]) (Encoder[T], error) {
	switch f {
	case CSV:
		return CSVEncoder[T]{Codec: codec}, nil
	case JSON:
		return JSONEncoder[T]{}, nil
	case YAML:
		return YAMLEncoder[T]{}, nil
	}
	return nil, ErrUnknownFormat
}

// Export writes records to path, replacing any previous file.
func Export[T any](path string, records []T, enc Encoder[T]) error {
	b, err := enc.EncodeRecords(records)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, b, 0o644)
}
