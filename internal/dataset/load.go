package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is the dataset file looked up when none is configured.
const DefaultPath = "complete_data.csv"

// ErrMissingColumn is returned when a source lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Options controls how a source is mapped onto records.
type Options struct {
	// DialogueColumn names the raw dialogue column.
	DialogueColumn string
	// Table names the SQLite table holding the records.
	Table string
}

func (o Options) dialogueColumn() string {
	if strings.TrimSpace(o.DialogueColumn) == "" {
		return DefaultDialogueColumn
	}
	return o.DialogueColumn
}

// Open loads a collection from path, picking the reader by file extension.
func Open(path string, opts Options) (*Collection, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path, opts)
	default:
		return LoadCSV(path, opts)
	}
}

// LoadCSV reads a CSV file with a header row.
func LoadCSV(path string, opts Options) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	records, err := ReadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewCollection(path, records), nil
}

// ReadCSV decodes records from CSV input. The first row names the columns.
func ReadCSV(r io.Reader, opts Options) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: header row required")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	layout, err := newLayout(header, opts.dialogueColumn())
	if err != nil {
		return nil, err
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, layout.record(row))
	}
	return records, nil
}

// layout maps header positions onto record fields.
type layout struct {
	names       []string
	category    int
	subCategory int
	kind        int
	dialogue    int
}

func newLayout(header []string, dialogueColumn string) (layout, error) {
	names := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		names[i] = name
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	l := layout{names: names}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{ColumnCategory, &l.category},
		{ColumnSubCategory, &l.subCategory},
		{ColumnType, &l.kind},
		{dialogueColumn, &l.dialogue},
	} {
		idx, ok := index[want.name]
		if !ok {
			return layout{}, fmt.Errorf("%w %q", ErrMissingColumn, want.name)
		}
		*want.dst = idx
	}
	return l, nil
}

func (l layout) record(row []string) Record {
	get := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}
	rec := Record{
		Category:    get(l.category),
		SubCategory: get(l.subCategory),
		Type:        get(l.kind),
		Dialogue:    get(l.dialogue),
	}
	for i, name := range l.names {
		switch i {
		case l.category, l.subCategory, l.kind, l.dialogue:
			continue
		}
		if name == "" {
			continue
		}
		rec.Fields = append(rec.Fields, Field{Name: name, Value: get(i)})
	}
	return rec
}
