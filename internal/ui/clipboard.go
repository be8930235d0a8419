package ui

import (
	"fmt"

	"github.com/atomicstack/dialogue-browser/internal/logging/events"
	"github.com/atotto/clipboard"
)

var clipboardWrite = clipboard.WriteAll

// copyConversation puts the raw dialogue of the displayed record on the
// system clipboard.
func (m *Model) copyConversation() {
	frame := m.session.Frame()
	if frame.Record == nil {
		m.errMsg = "Nothing to copy"
		return
	}
	err := clipboardWrite(frame.Record.Dialogue)
	events.UI.Copy(frame.Cursor, err)
	if err != nil {
		m.errMsg = fmt.Sprintf("Clipboard error: %v", err)
		return
	}
	m.setInfo(fmt.Sprintf("Copied conversation %d to clipboard", frame.Position()))
}
