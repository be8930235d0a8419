package ui

import (
	"unicode"

	"github.com/atomicstack/dialogue-browser/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const queryPlaceholder = "(type to search)"

func (m *Model) updateQueryCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.queryCursor, cmd = m.queryCursor.Update(msg)
	return cmd
}

func (m *Model) noteQueryCursorChange(p *picker, before int) {
	if p == nil {
		return
	}
	if before != p.QueryCursorPos() {
		m.queryDirty = true
	}
}

// handleTextInput edits the focused picker's type-ahead query.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.focused()
	switch {
	case key.Matches(msg, m.keys.ClearQuery):
		if current.Query == "" {
			return false
		}
		before := current.QueryCursorPos()
		current.ClearQuery()
		m.noteQueryCursorChange(current, before)
		events.Filter.Cleared(current.ID)
		return true
	case key.Matches(msg, m.keys.DeleteWord):
		before := current.QueryCursorPos()
		if !current.DeleteQueryWordBackward() {
			return false
		}
		m.noteQueryCursorChange(current, before)
		events.Filter.Query(current.ID, current.Query)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := current.QueryCursorPos()
		if !current.DeleteQueryRuneBackward() {
			return false
		}
		m.noteQueryCursorChange(current, before)
		events.Filter.Query(current.ID, current.Query)
		return true
	case tea.KeyCtrlA:
		before := current.QueryCursorPos()
		if !current.MoveQueryCursorStart() {
			return false
		}
		m.noteQueryCursorChange(current, before)
		return true
	case tea.KeyCtrlE:
		before := current.QueryCursorPos()
		if !current.MoveQueryCursorEnd() {
			return false
		}
		m.noteQueryCursorChange(current, before)
		return true
	case tea.KeySpace:
		return m.appendToQuery(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToQuery(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToQuery(text string) bool {
	current := m.focused()
	before := current.QueryCursorPos()
	if !current.InsertQueryText(text) {
		return false
	}
	current.EnsureCursorVisible(maxPickerRows)
	m.noteQueryCursorChange(current, before)
	events.Filter.Query(current.ID, current.Query)
	return true
}

// queryPrompt renders the focused picker's search line with its caret.
func (m *Model) queryPrompt() string {
	current := m.focused()
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.queryCursor.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		m.queryCursor.TextStyle = styles.Query.Copy()
	} else {
		m.queryCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.QueryPrompt != nil {
		prompt = styles.QueryPrompt.Render(prompt)
	}
	if current.Query == "" {
		runes := []rune(queryPlaceholder)
		if styles.QueryPlaceholder != nil {
			m.queryCursor.TextStyle = styles.QueryPlaceholder.Copy()
		}
		caret := m.renderQueryCursor(string(runes[0]))
		return prompt + caret + render(styles.QueryPlaceholder, string(runes[1:]))
	}
	runes := []rune(current.Query)
	pos := current.QueryCursorPos()
	before := render(styles.Query, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Query, string(runes[pos+1:]))
	}
	return prompt + before + m.renderQueryCursor(caretRune) + after
}

func (m *Model) renderQueryCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.queryCursor.SetChar(char)

	base := m.queryCursor.TextStyle.Copy().Inline(true)
	if m.queryCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
