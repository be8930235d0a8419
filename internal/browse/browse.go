// Package browse runs one evaluation pass over a record collection: it filters
// the records by the active selection, moves the cursor, and parses the
// transcript of the record under the cursor.
//
// All functions are pure. Callers own the returned nav.State and pass it back
// on the next interaction; Session bundles that bookkeeping for a single
// viewer.
package browse

import (
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/filter"
	"github.com/atomicstack/dialogue-browser/internal/nav"
	"github.com/atomicstack/dialogue-browser/internal/transcript"
)

// Frame is everything the presentation layer needs to draw one state.
type Frame struct {
	Selection filter.Selection
	Total     int
	Cursor    int
	Record    *dataset.Record
	Entries   []transcript.Entry
}

// Empty reports whether no record matched the selection.
func (f Frame) Empty() bool {
	return f.Total == 0
}

// Position returns the one-based index of the displayed record, or 0 when empty.
func (f Frame) Position() int {
	if f.Empty() || f.Cursor == nav.None {
		return 0
	}
	return f.Cursor + 1
}

// Evaluate applies sel to the collection and resolves the cursor against st.
func Evaluate(c *dataset.Collection, sel filter.Selection, st nav.State) (Frame, nav.State) {
	view := filter.Apply(c.Records(), sel)
	st = st.Apply(sel, view.Len())
	return frame(view, st), st
}

// Navigate re-evaluates the remembered selection and resolves b.
func Navigate(c *dataset.Collection, st nav.State, b nav.Buttons) (Frame, nav.State) {
	view := filter.Apply(c.Records(), st.Remembered)
	st = st.Press(view.Len(), b)
	return frame(view, st), st
}

func frame(view filter.View, st nav.State) Frame {
	f := Frame{
		Selection: st.Remembered,
		Total:     view.Len(),
		Cursor:    st.Cursor,
	}
	if st.Positioned() && st.Cursor < view.Len() {
		rec := view[st.Cursor]
		f.Record = &rec
		f.Entries = transcript.Parse(rec.Dialogue)
	}
	return f
}
