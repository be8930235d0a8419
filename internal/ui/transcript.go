package ui

import (
	"strings"

	"github.com/atomicstack/dialogue-browser/internal/transcript"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// renderTranscript lays entries out one per line, wrapped to width. Speaker
// names render bold ahead of their message; headings render bold on their own.
func renderTranscript(entries []transcript.Entry, width int) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Heading {
			if e.Message == "" {
				lines = append(lines, "")
				continue
			}
			for _, line := range wrapText(e.Message, width) {
				lines = append(lines, styles.Heading.Render(line))
			}
			continue
		}
		prefix := e.Speaker + ":"
		text := prefix
		if e.Message != "" {
			text += " " + e.Message
		}
		for i, line := range wrapText(text, width) {
			if i == 0 && strings.HasPrefix(line, prefix) {
				rest := line[len(prefix):]
				lines = append(lines, styles.Speaker.Render(prefix)+styles.Message.Render(rest))
				continue
			}
			lines = append(lines, styles.Message.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

// wrapText breaks text at word boundaries, hard-wrapping words longer than
// width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
}
