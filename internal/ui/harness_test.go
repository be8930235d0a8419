package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdTimeout bounds how long the harness waits on a command. Commands that
// take longer, such as cursor blink ticks and idle watcher waits, are dropped.
const cmdTimeout = 50 * time.Millisecond

// harness drives the model programmatically, feeding command results back
// into Update the way the Bubble Tea runtime would.
type harness struct {
	model *Model
	quit  bool
}

func newHarness(model *Model) *harness {
	return &harness{model: model}
}

// send routes msg through the model and resolves any returned commands.
func (h *harness) send(msg tea.Msg) {
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd)
}

// keys sends each message in order.
func (h *harness) keys(msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		h.send(msg)
	}
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := resolve(cmd).(type) {
	case nil:
	case tea.QuitMsg:
		h.quit = true
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	default:
		h.send(msg)
	}
}

func resolve(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

func (h *harness) view() string {
	return h.model.View()
}

func typed(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
