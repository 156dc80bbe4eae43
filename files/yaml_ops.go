package files

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLEncoder[T any] struct{}

func (YAMLEncoder[T]) EncodeRecords(records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	return yaml.Marshal(records)
}

type YAMLImporter[T any] struct{}

func (YAMLImporter[T]) parse(data []byte) ([]T, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var in []T
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return in, nil
}
