package ui

import (
	"fmt"

	"github.com/atomicstack/dialogue-browser/internal/backend"
	"github.com/atomicstack/dialogue-browser/internal/logging/events"
	"github.com/atomicstack/dialogue-browser/internal/taxonomy"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForDatasetEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return datasetDoneMsg{}
		}
		return datasetEventMsg{event: evt}
	}
}

type datasetEventMsg struct {
	event backend.Event
}

type datasetDoneMsg struct{}

func (m *Model) handleDatasetEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(datasetEventMsg)
	if !ok {
		return nil
	}
	m.applyDatasetEvent(eventMsg.event)
	if m.watcher != nil {
		return waitForDatasetEvent(m.watcher)
	}
	return nil
}

func (m *Model) handleDatasetDoneMsg(msg tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// applyDatasetEvent swaps in a reloaded collection. The remembered selection
// survives unless one of its values is no longer offered, and the cursor is
// clamped to the new view. A failed reload keeps the current collection.
func (m *Model) applyDatasetEvent(evt backend.Event) {
	if evt.Err != nil {
		m.watchErr = evt.Err.Error()
		events.Dataset.Failed(evt.Source, evt.Err)
		return
	}
	if evt.Collection == nil {
		return
	}
	m.watchErr = ""
	c := evt.Collection
	before := m.session.Frame()

	m.pickers[pickerCategory].SetValues(c.DistinctCategories())
	m.pickers[pickerSubCategory].SetValues(taxonomy.SubcategoriesFor(m.pickers[pickerCategory].Value))
	m.pickers[pickerType].SetValues(c.DistinctTypes())

	frame := m.session.Reload(c)
	if sel := m.selection(); sel != m.session.Selection() {
		frame = m.session.Select(sel)
		events.Filter.Applied(sel.String(), frame.Total, frame.Cursor)
	} else if frame.Cursor != before.Cursor {
		events.Nav.Clamp(frame.Cursor, frame.Total)
	}
	events.Dataset.Reloaded(c.Source(), c.Len())
	m.setInfo(fmt.Sprintf("Reloaded %d conversations from %s", c.Len(), c.Source()))
	m.syncTranscript(false)
}
