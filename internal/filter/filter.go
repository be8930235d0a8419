package filter

import (
	"fmt"

	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/taxonomy"
)

// Selection is the active filter triple. An empty component places no
// constraint on the corresponding record field.
type Selection struct {
	Category    string
	SubCategory string
	Type        string
}

// IsZero reports whether the selection constrains nothing.
func (s Selection) IsZero() bool {
	return s == Selection{}
}

func (s Selection) String() string {
	return fmt.Sprintf("category=%q sub_category=%q type=%q", s.Category, s.SubCategory, s.Type)
}

// WithCategory returns the selection with category replaced. A sub-category
// that the taxonomy does not list under the new category is cleared.
func (s Selection) WithCategory(category string) Selection {
	s.Category = category
	if s.SubCategory != "" && !taxonomy.Contains(category, s.SubCategory) {
		s.SubCategory = ""
	}
	return s
}

// View is the ordered subsequence of records matching a selection.
type View []dataset.Record

// Len returns the number of records in the view.
func (v View) Len() int { return len(v) }

// Empty reports whether no record matched.
func (v View) Empty() bool { return len(v) == 0 }

type predicate func(dataset.Record) bool

// Apply returns the records matching every non-empty component of sel, in
// source order. Matching is exact equality on the stored value. A selection
// with no components returns the input unchanged.
func Apply(records []dataset.Record, sel Selection) View {
	preds := predicates(sel)
	if len(preds) == 0 {
		return View(records)
	}
	out := make(View, 0, len(records))
	for _, r := range records {
		if matchesAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func predicates(sel Selection) []predicate {
	preds := make([]predicate, 0, 3)
	if sel.Category != "" {
		preds = append(preds, func(r dataset.Record) bool { return r.Category == sel.Category })
	}
	if sel.SubCategory != "" {
		preds = append(preds, func(r dataset.Record) bool { return r.SubCategory == sel.SubCategory })
	}
	if sel.Type != "" {
		preds = append(preds, func(r dataset.Record) bool { return r.Type == sel.Type })
	}
	return preds
}

func matchesAll(r dataset.Record, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}
