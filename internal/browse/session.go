package browse

import (
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/filter"
	"github.com/atomicstack/dialogue-browser/internal/nav"
)

// Session holds the collection and navigation state for one viewer.
type Session struct {
	collection *dataset.Collection
	state      nav.State
	frame      Frame
}

// NewSession evaluates the initial selection against c.
func NewSession(c *dataset.Collection, initial filter.Selection) *Session {
	s := &Session{collection: c}
	s.state = nav.State{Remembered: initial}
	s.frame, s.state = Evaluate(c, initial, s.state)
	return s
}

// Collection returns the collection being browsed.
func (s *Session) Collection() *dataset.Collection {
	return s.collection
}

// State returns the current navigation state.
func (s *Session) State() nav.State {
	return s.state
}

// Frame returns the most recently evaluated frame.
func (s *Session) Frame() Frame {
	return s.frame
}

// Selection returns the remembered selection.
func (s *Session) Selection() filter.Selection {
	return s.state.Remembered
}

// Select applies sel and returns the new frame.
func (s *Session) Select(sel filter.Selection) Frame {
	s.frame, s.state = Evaluate(s.collection, sel, s.state)
	return s.frame
}

// Next moves to the following record if there is one.
func (s *Session) Next() Frame {
	return s.Press(nav.Buttons{Next: true})
}

// Previous moves to the preceding record if there is one.
func (s *Session) Previous() Frame {
	return s.Press(nav.Buttons{Previous: true})
}

// Press resolves a navigation interaction.
func (s *Session) Press(b nav.Buttons) Frame {
	s.frame, s.state = Navigate(s.collection, s.state, b)
	return s.frame
}

// Reload swaps in a new collection, keeping the remembered selection and
// clamping the cursor to the new view.
func (s *Session) Reload(c *dataset.Collection) Frame {
	s.collection = c
	return s.Press(nav.Buttons{})
}
