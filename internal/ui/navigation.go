package ui

import (
	"github.com/atomicstack/dialogue-browser/internal/logging/events"
	"github.com/atomicstack/dialogue-browser/internal/nav"
	"github.com/atomicstack/dialogue-browser/internal/taxonomy"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// maxPickerRows bounds the option list of the focused picker.
	maxPickerRows = 6
	wheelLines    = 3
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.quit("ctrl+c")
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Previous):
		m.stepRecord(nav.Buttons{Previous: true})
		return nil
	case key.Matches(keyMsg, m.keys.Next):
		m.stepRecord(nav.Buttons{Next: true})
		return nil
	case key.Matches(keyMsg, m.keys.FocusNext):
		m.cycleFocus(1)
		return nil
	case key.Matches(keyMsg, m.keys.FocusPrev):
		m.cycleFocus(-1)
		return nil
	case key.Matches(keyMsg, m.keys.Apply):
		m.applyFocused()
		return nil
	case key.Matches(keyMsg, m.keys.ScrollUp):
		m.scrollTranscript(-1)
		return nil
	case key.Matches(keyMsg, m.keys.ScrollDown):
		m.scrollTranscript(1)
		return nil
	case key.Matches(keyMsg, m.keys.Details):
		m.showDetails = !m.showDetails
		events.UI.Details(m.showDetails)
		m.syncTranscript(false)
		return nil
	case key.Matches(keyMsg, m.keys.Copy):
		m.copyConversation()
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		m.movePicker(func(p *picker) bool { return p.MoveCursorUp() })
		return nil
	case key.Matches(keyMsg, m.keys.Down):
		m.movePicker(func(p *picker) bool { return p.MoveCursorDown() })
		return nil
	case key.Matches(keyMsg, m.keys.PageUp):
		m.movePicker(func(p *picker) bool { return p.MoveCursorPageUp(maxPickerRows) })
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		m.movePicker(func(p *picker) bool { return p.MoveCursorPageDown(maxPickerRows) })
		return nil
	case key.Matches(keyMsg, m.keys.Home):
		m.movePicker(func(p *picker) bool { return p.MoveCursorHome() })
		return nil
	case key.Matches(keyMsg, m.keys.End):
		m.movePicker(func(p *picker) bool { return p.MoveCursorEnd() })
		return nil
	}
	m.handleTextInput(keyMsg)
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		m.scrollTranscript(-wheelLines)
	case tea.MouseButtonWheelDown:
		m.scrollTranscript(wheelLines)
	}
	return nil
}

// scrollTranscript moves the conversation viewport by delta lines.
func (m *Model) scrollTranscript(delta int) {
	before := m.transcript.YOffset
	if delta < 0 {
		m.transcript.LineUp(-delta)
	} else {
		m.transcript.LineDown(delta)
	}
	if m.transcript.YOffset != before {
		events.UI.Scroll(m.transcript.YOffset)
	}
}

func (m *Model) quit(reason string) tea.Cmd {
	m.quitting = true
	events.App.Quit(reason)
	return tea.Quit
}

// handleEscapeKey clears the focused picker's search, or quits when there is
// none.
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.focused()
	if current.Query != "" {
		before := current.QueryCursorPos()
		current.ClearQuery()
		m.noteQueryCursorChange(current, before)
		events.Filter.Cleared(current.ID)
		return nil
	}
	return m.quit("esc")
}

func (m *Model) cycleFocus(delta int) {
	current := m.focused()
	if current.Query != "" {
		current.ClearQuery()
	}
	m.focus = (m.focus + delta + pickerCount) % pickerCount
	m.queryDirty = true
	events.UI.Focus(m.focused().ID)
}

func (m *Model) movePicker(move func(*picker) bool) {
	current := m.focused()
	if !move(current) {
		return
	}
	current.EnsureCursorVisible(maxPickerRows)
	events.UI.PickerCursor(current.ID, current.Cursor)
}

// applyFocused applies the highlighted option of the focused picker and
// re-evaluates the browse pass with the resulting selection. A search with no
// matches leaves everything as it is.
func (m *Model) applyFocused() {
	current := m.focused()
	if _, ok := current.Highlighted(); !ok {
		return
	}
	hadQuery := current.Query != ""
	current.Choose()
	if hadQuery {
		m.queryDirty = true
	}
	sel := m.session.Selection()
	switch m.focus {
	case pickerCategory:
		sel = sel.WithCategory(current.Value)
		sub := m.pickers[pickerSubCategory]
		sub.SetValues(taxonomy.SubcategoriesFor(current.Value))
		sub.SetValue(sel.SubCategory)
	case pickerSubCategory:
		sel.SubCategory = current.Value
	case pickerType:
		sel.Type = current.Value
	}
	frame := m.session.Select(sel)
	m.forceClearInfo()
	events.Filter.Applied(sel.String(), frame.Total, frame.Cursor)
	m.syncTranscript(false)
}

// stepRecord resolves a previous/next interaction against the remembered
// selection. Presses at either end leave the cursor where it is.
func (m *Model) stepRecord(b nav.Buttons) {
	before := m.session.Frame()
	frame := m.session.Press(b)
	direction := "next"
	if b.Previous && !b.Next {
		direction = "previous"
	}
	events.Nav.Step(direction, frame.Cursor, frame.Total)
	if frame.Cursor != before.Cursor {
		m.syncTranscript(true)
	}
}
