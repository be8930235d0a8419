package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/dialogue-browser/internal/browse"
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/format/table"
	"github.com/atomicstack/dialogue-browser/internal/transcript"
	uistate "github.com/atomicstack/dialogue-browser/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth    = 100
	defaultHeight   = 30
	sidebarMinWidth = 24
	sidebarMaxWidth = 36
	columnGap       = 2
	minMainWidth    = 20
	minBoxHeight    = 3
)

// legend explains the values of the type column.
var legend = [][2]string{
	{"desc", "Description of the doctor and the patient."},
	{"tax_description", "Description of the taxonomy categories."},
	{"pattern", "Flow of the conversation: small talk, consultation, end of conversation."},
	{"res", "Patients are resistant to share how they feel."},
	{"examples", "Couple of real-world examples."},
	{"followup", "Ending the conversation by setting up an appointment for the next meeting."},
}

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// layout holds the cell geometry of one frame.
type layout struct {
	width   int
	height  int
	sidebar int
	main    int
	box     int // outer rows of the conversation box
}

func (m *Model) layout() layout {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	sidebar := min(max(w/3, sidebarMinWidth), sidebarMaxWidth)
	main := max(w-sidebar-columnGap, minMainWidth)
	rows := h - m.footerRows()
	used := 4 // title, counter, navigation row, status line
	if details := m.detailLines(); len(details) > 0 {
		used += len(details) + 2
	}
	return layout{
		width:   w,
		height:  h,
		sidebar: sidebar,
		main:    main,
		box:     max(rows-used, minBoxHeight),
	}
}

// applyLayout sizes the conversation viewport and help line to the frame.
func (m *Model) applyLayout() {
	l := m.layout()
	m.transcript.Width = max(l.main-4, 1)
	m.transcript.Height = max(l.box-2, 1)
	m.help.Width = l.width
}

func (m *Model) footerRows() int {
	if m.showFooter {
		return 1
	}
	return 0
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.layout()
	sidebar := m.renderSidebar(l)
	main := m.renderMain(l)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, strings.Repeat(" ", columnGap), main)
	if m.showFooter {
		footer := m.help.View(m.keys)
		if lipgloss.Width(footer) > l.width {
			footer = truncate.StringWithTail(footer, uint(l.width-1), "…")
		}
		body += "\n" + footer
	}
	return body
}

func (m *Model) renderSidebar(l layout) string {
	lines := []styledLine{{text: sidebarTitle, style: styles.SidebarTitle}, {}}
	for i, p := range m.pickers {
		if i != m.focus {
			lines = append(lines,
				styledLine{text: "  " + p.Title, style: styles.PickerLabel},
				styledLine{text: "  " + p.ValueLabel(), style: styles.PickerValue},
				styledLine{},
			)
			continue
		}
		lines = append(lines,
			styledLine{text: "▸ " + p.Title, style: styles.PickerLabelFocus},
			styledLine{text: "  " + m.queryPrompt(), raw: true},
		)
		opts, start := p.Visible(maxPickerRows)
		if len(opts) == 0 {
			lines = append(lines, styledLine{text: fmt.Sprintf("  No matches for %q", p.Query), style: styles.Info})
		}
		for j, opt := range opts {
			lines = append(lines, optionLine(p, opt, start+j, l.sidebar))
		}
		lines = append(lines, styledLine{})
	}
	lines = append(lines, legendLines(l.sidebar)...)
	lines = limitHeight(lines, l.height-m.footerRows(), l.sidebar)
	lines = applyWidth(lines, l.sidebar)
	return lipgloss.NewStyle().Width(l.sidebar).Render(renderLines(lines))
}

// optionLine renders one picker option. width pads the highlighted row so
// its background spans the sidebar.
func optionLine(p *picker, opt uistate.Option, idx, width int) styledLine {
	lineStyle := styles.Option
	indicatorStyle := styles.OptionIndicator
	if idx == p.Cursor {
		lineStyle = styles.SelectedOption
		indicatorStyle = styles.SelectedIndicator
	}
	mark := "  "
	if opt.Value == p.Value {
		mark = "✓ "
	}
	fullText := "  ▌ " + mark + opt.Label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 3, // indent and the ▌ character
	}
}

func legendLines(width int) []styledLine {
	lines := []styledLine{{text: "Description", style: styles.SidebarTitle}}
	for _, entry := range legend {
		text := entry[0] + ": " + entry[1]
		if width > 0 {
			text = wordwrap.String(text, width)
		}
		for i, line := range strings.Split(text, "\n") {
			sl := styledLine{text: line, style: styles.LegendText}
			if i == 0 {
				sl.prefixStyle = styles.LegendTerm
				sl.highlightFrom = len([]rune(entry[0])) + 1
			}
			lines = append(lines, sl)
		}
	}
	return lines
}

func (m *Model) renderMain(l layout) string {
	frame := m.session.Frame()
	lines := make([]string, 0, 8)
	if frame.Empty() {
		lines = append(lines, styles.Error.Render(truncateText(emptyMessage, l.main)))
	} else {
		counter := fmt.Sprintf("Conversation %d of %d", frame.Position(), frame.Total)
		lines = append(lines,
			styles.Title.Render(truncateText(pageTitle, l.main)),
			styles.Counter.Render(truncateText(counter, l.main)),
			styles.Border.Copy().Width(l.main-2).Height(l.box-2).Render(m.transcript.View()),
			navigationRow(frame, l.main),
		)
		if details := m.detailLines(); len(details) > 0 {
			lines = append(lines, "", styles.SidebarTitle.Render("Details"))
			for _, d := range details {
				lines = append(lines, styles.DetailName.Render(truncateText(d, l.main)))
			}
		}
	}
	lines = append(lines, m.statusLine(l.main))
	return lipgloss.NewStyle().Width(l.main).Render(strings.Join(lines, "\n"))
}

// navigationRow renders the previous/next hints, dimming the one that would
// not move the cursor.
func navigationRow(frame browse.Frame, width int) string {
	prev, next := "← Previous", "Next →"
	prevStyle, nextStyle := styles.NavEnabled, styles.NavEnabled
	if frame.Cursor <= 0 {
		prevStyle = styles.NavDisabled
	}
	if frame.Cursor >= frame.Total-1 {
		nextStyle = styles.NavDisabled
	}
	gap := max(width-lipgloss.Width(prev)-lipgloss.Width(next), 1)
	return prevStyle.Render(prev) + strings.Repeat(" ", gap) + nextStyle.Render(next)
}

// detailLines lists the displayed record's columns when the details panel is
// open.
func (m *Model) detailLines() []string {
	if !m.showDetails {
		return nil
	}
	frame := m.session.Frame()
	rec := frame.Record
	if rec == nil {
		return nil
	}
	pairs := [][2]string{
		{dataset.ColumnCategory, rec.Category},
		{dataset.ColumnSubCategory, rec.SubCategory},
		{dataset.ColumnType, rec.Type},
	}
	if speakers := transcript.Speakers(frame.Entries); len(speakers) > 0 {
		pairs = append(pairs, [2]string{"speakers", strings.Join(speakers, ", ")})
	}
	for _, f := range rec.Fields {
		pairs = append(pairs, [2]string{f.Name, strings.Join(strings.Fields(f.Value), " ")})
	}
	return table.KeyValues(pairs)
}

func (m *Model) statusLine(width int) string {
	if m.errMsg != "" {
		return styles.Error.Render(truncateText(m.errMsg, width))
	}
	if m.watchErr != "" {
		return styles.Error.Render(truncateText("Reload failed: "+m.watchErr, width))
	}
	if info := m.currentInfo(); info != "" {
		return styles.Info.Render(truncateText(info, width))
	}
	return ""
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncTranscript(false)
	return nil
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
