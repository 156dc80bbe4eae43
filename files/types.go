package files

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"organizer/domain"
)

var (
	ErrUnknownFormat = errors.New("unknown format, expected csv, json or yaml")
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
)

// Format is a transfer file format for export and import.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatOf picks the format from a file extension; anything that is not
// JSON or YAML is read as CSV.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	}
	return CSV
}

// ExportName is the fixed export file name of a collection,
// e.g. notes_export.csv.
func ExportName(c domain.Collection, f Format) string {
	return fmt.Sprintf("%s_export.%s", c, f)
}

// Row is one CSV record keyed by column name.
type Row map[string]string

// Codec converts one entity kind to and from CSV rows. Header is the
// fixed export column order; import looks columns up by name.
type Codec[T any] interface {
	Header() []string
	Encode(rec T) []string
	Decode(row Row) (T, error)
}
