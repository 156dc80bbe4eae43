package files

import (
	"bytes"
	"encoding/json"
	"os"
)

// Importer parses the raw content of a transfer file.
type Importer[T any] interface {
	parse(data []byte) ([]T, error)
}

// BaseImporter carries the shared import steps: read the file, hand the
// bytes to the format parser, return the records.
type BaseImporter[T any] struct {
	parser Importer[T]
}

func (b BaseImporter[T]) Import(path string) ([]T, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return b.parser.parse(bin)
}

type CSVImporter[T any] struct{ Codec Codec[T] }

func (i CSVImporter[T]) parse(data []byte) ([]T, error) {
	return ReadCSV(bytes.NewReader(data), i.Codec)
}

type JSONImporter[T any] struct{}

func (JSONImporter[T]) parse(data []byte) ([]T, error) {
	var in []T
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	return in, nil
}

func NewImporter[T any](f Format, codec Codec[T]) (BaseImporter[T], error) {
	switch f {
	case CSV:
		return BaseImporter[T]{parser: CSVImporter[T]{Codec: codec}}, nil
	case JSON:
		return BaseImporter[T]{parser: JSONImporter[T]{}}, nil
	case YAML:
		return BaseImporter[T]{parser: YAMLImporter[T]{}}, nil
	}
	return BaseImporter[T]{}, ErrUnknownFormat
}
