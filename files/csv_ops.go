package files

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes a header row followed by one row per record.
func WriteCSV[T any](w io.Writer, codec Codec[T], records []T) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(codec.Header()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(codec.Encode(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses every row up front; any error aborts the whole read so
// callers never see a partial import. Columns are matched by header name,
// in any order; extra columns are ignored.
func ReadCSV[T any](r io.Reader, codec Codec[T]) ([]T, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	var missing []string
	for _, col := range codec.Header() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	var out []T
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < len(header) {
			return nil, fmt.Errorf("line %d: %w: %d of %d fields", line, ErrMalformedRow, len(rec), len(header))
		}
		row := make(Row, len(codec.Header()))
		for _, col := range codec.Header() {
			row[col] = rec[index[col]]
		}
		v, err := codec.Decode(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRow, err)
		}
		out = append(out, v)
	}
	return out, nil
}
