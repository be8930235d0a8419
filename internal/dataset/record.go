package dataset

// Column names expected in every source.
const (
	ColumnCategory        = "Category"
	ColumnSubCategory     = "Sub_category"
	ColumnType            = "type"
	DefaultDialogueColumn = "generated_conversation"
)

// Record is one labeled dialogue row.
type Record struct {
	Category    string
	SubCategory string
	Type        string
	Dialogue    string
	// Fields holds the remaining columns in source order.
	Fields []Field
}

// Field is a named column value that is not part of the taxonomy or dialogue.
type Field struct {
	Name  string
	Value string
}

// Field returns the value of the named extra column.
func (r Record) Field(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Collection is an immutable, ordered set of records loaded from one source.
type Collection struct {
	source  string
	records []Record
}

// NewCollection copies records into a new collection.
func NewCollection(source string, records []Record) *Collection {
	dup := make([]Record, len(records))
	for i, r := range records {
		r.Fields = append([]Field(nil), r.Fields...)
		dup[i] = r
	}
	return &Collection{source: source, records: dup}
}

// Source returns the path the collection was loaded from.
func (c *Collection) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the record at index i.
func (c *Collection) At(i int) Record {
	return c.records[i]
}

// Records returns a shallow copy of the records in source order.
func (c *Collection) Records() []Record {
	if c == nil {
		return nil
	}
	dup := make([]Record, len(c.records))
	copy(dup, c.records)
	return dup
}

// DistinctCategories returns the non-empty category values in order of first
// appearance.
func (c *Collection) DistinctCategories() []string {
	return c.distinct(func(r Record) string { return r.Category })
}

// DistinctTypes returns the non-empty type values in order of first appearance.
func (c *Collection) DistinctTypes() []string {
	return c.distinct(func(r Record) string { return r.Type })
}

func (c *Collection) distinct(field func(Record) string) []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
