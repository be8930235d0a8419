package dataset

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// DefaultTable is the SQLite table read when none is configured.
const DefaultTable = "conversations"

var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3F", "#", "%23")

// readOnlyDSN builds a read-only SQLite URI for path. Characters that would
// start the query or fragment are percent-encoded.
func readOnlyDSN(path string) string {
	return "file:" + uriPathEscaper.Replace(path) + "?mode=ro"
}

// LoadSQLite reads every row of the configured table from a SQLite database
// opened read-only.
func LoadSQLite(path string, opts Options) (*Collection, error) {
	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	records, err := ReadTable(db, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewCollection(path, records), nil
}

// ReadTable decodes records from a table, ordered by rowid.
func ReadTable(db *sql.DB, opts Options) ([]Record, error) {
	table := opts.Table
	if strings.TrimSpace(table) == "" {
		table = DefaultTable
	}
	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM %s ORDER BY rowid`, quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	layout, err := newLayout(columns, opts.dialogueColumn())
	if err != nil {
		return nil, err
	}

	var records []Record
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = stringify(v)
		}
		records = append(records, layout.record(row))
	}
	return records, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
