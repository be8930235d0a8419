package nav

import "github.com/atomicstack/dialogue-browser/internal/filter"

// None is the cursor value for an empty view.
const None = -1

// Directions accepted by Step.
const (
	Backward = -1
	Forward  = 1
)

// State is the navigation state a caller keeps between interactions.
type State struct {
	Cursor     int
	Remembered filter.Selection
}

// Buttons records which navigation commands fired in one interaction.
type Buttons struct {
	Previous bool
	Next     bool
}

// Clamp bounds cursor to [0, size-1], or returns None for an empty view.
func Clamp(cursor, size int) int {
	if size <= 0 {
		return None
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	return cursor
}

// OnFilterApplied resets the cursor to the first record when current differs
// from remembered, then clamps it to the view.
func OnFilterApplied(current, remembered filter.Selection, cursor, size int) (int, filter.Selection) {
	if current != remembered {
		cursor = 0
		remembered = current
	}
	return Clamp(cursor, size), remembered
}

// Step moves the cursor by delta when the result stays inside the view.
// Moves past either end are ignored.
func Step(cursor, size, delta int) int {
	cursor = Clamp(cursor, size)
	if cursor == None {
		return None
	}
	next := cursor + delta
	if next < 0 || next >= size {
		return cursor
	}
	return next
}

// Press resolves one interaction. When both commands fired, Next wins.
func Press(cursor, size int, b Buttons) int {
	switch {
	case b.Next:
		return Step(cursor, size, Forward)
	case b.Previous:
		return Step(cursor, size, Backward)
	default:
		return Clamp(cursor, size)
	}
}

// Apply returns the state after sel has been applied to a view of size records.
func (s State) Apply(sel filter.Selection, size int) State {
	s.Cursor, s.Remembered = OnFilterApplied(sel, s.Remembered, s.Cursor, size)
	return s
}

// Step returns the state after moving by delta.
func (s State) Step(size, delta int) State {
	s.Cursor = Step(s.Cursor, size, delta)
	return s
}

// Press returns the state after resolving b.
func (s State) Press(size int, b Buttons) State {
	s.Cursor = Press(s.Cursor, size, b)
	return s
}

// Clamp returns the state with the cursor bounded to size.
func (s State) Clamp(size int) State {
	s.Cursor = Clamp(s.Cursor, size)
	return s
}

// Positioned reports whether the cursor points at a record.
func (s State) Positioned() bool {
	return s.Cursor != None
}
