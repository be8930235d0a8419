package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/filter"
	"github.com/atomicstack/dialogue-browser/internal/taxonomy"
	tea "github.com/charmbracelet/bubbletea"
)

func fixtureRecords() []dataset.Record {
	return []dataset.Record{
		{
			Category: "Physical", SubCategory: "Trauma", Type: "desc",
			Dialogue: "Doctor: Hello\nPatient: Hi there",
			Fields:   []dataset.Field{{Name: "pattern", Value: "small talk"}},
		},
		{
			Category: "Psychological", SubCategory: "Emotional Stress", Type: "res",
			Dialogue: "Doctor: How are you?\nPatient: Fine.",
		},
		{
			Category: "Physical", SubCategory: "Illness", Type: "res",
			Dialogue: "Small talk\nDoctor: Any pain?",
		},
		{
			Category: "Physical", SubCategory: "Trauma", Type: "res",
			Dialogue: "Doctor: Tell me more.",
		},
	}
}

func fixtureModel(t *testing.T) *Model {
	t.Helper()
	return NewModel(dataset.NewCollection("fixture.csv", fixtureRecords()), filter.Selection{}, 0, 0, false, nil)
}

func pickerValues(p *picker) []string {
	out := make([]string, 0, len(p.Full))
	for _, o := range p.Full {
		out = append(out, o.Value)
	}
	return out
}

func TestNewModelShowsFirstRecord(t *testing.T) {
	m := fixtureModel(t)
	frame := m.Frame()
	if frame.Total != 4 || frame.Cursor != 0 {
		t.Fatalf("expected cursor 0 of 4, got %d of %d", frame.Cursor, frame.Total)
	}
	if got := pickerValues(m.pickers[pickerCategory]); !reflect.DeepEqual(got, []string{"", "Physical", "Psychological"}) {
		t.Fatalf("unexpected category options %v", got)
	}
	if got := pickerValues(m.pickers[pickerSubCategory]); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("expected only any sub-category without a category, got %v", got)
	}
	if got := pickerValues(m.pickers[pickerType]); !reflect.DeepEqual(got, []string{"", "desc", "res"}) {
		t.Fatalf("unexpected type options %v", got)
	}
}

func TestNewModelAppliesInitialSelection(t *testing.T) {
	initial := filter.Selection{Category: "Physical", SubCategory: "Trauma", Type: "Unknown"}
	m := NewModel(dataset.NewCollection("fixture.csv", fixtureRecords()), initial, 0, 0, false, nil)
	want := filter.Selection{Category: "Physical", SubCategory: "Trauma"}
	if got := m.session.Selection(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if frame := m.Frame(); frame.Total != 2 {
		t.Fatalf("expected 2 Physical/Trauma records, got %d", frame.Total)
	}
}

func TestNextAndPreviousStayInRange(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(keyOf(tea.KeyLeft))
	if got := h.model.Frame().Cursor; got != 0 {
		t.Fatalf("expected previous at start to keep cursor 0, got %d", got)
	}
	h.keys(keyOf(tea.KeyRight), keyOf(tea.KeyCtrlN), keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	if got := h.model.Frame().Cursor; got != 3 {
		t.Fatalf("expected cursor clamped at 3, got %d", got)
	}
	h.keys(keyOf(tea.KeyCtrlP))
	if got := h.model.Frame().Cursor; got != 2 {
		t.Fatalf("expected cursor 2 after previous, got %d", got)
	}
}

func TestTypeAheadAppliesCategory(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(typed("phys"))
	if got := h.model.pickers[pickerCategory].Query; got != "phys" {
		t.Fatalf("expected query phys, got %q", got)
	}
	h.keys(keyOf(tea.KeyEnter))
	m := h.model
	if got := m.session.Selection().Category; got != "Physical" {
		t.Fatalf("expected Physical applied, got %q", got)
	}
	if m.pickers[pickerCategory].Query != "" {
		t.Fatalf("expected query cleared after apply")
	}
	if frame := m.Frame(); frame.Total != 3 || frame.Cursor != 0 {
		t.Fatalf("expected cursor 0 of 3, got %d of %d", frame.Cursor, frame.Total)
	}
	want := append([]string{""}, taxonomy.SubcategoriesFor("Physical")...)
	if got := pickerValues(m.pickers[pickerSubCategory]); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sub-categories %v, got %v", want, got)
	}
}

func TestReapplyingSameSelectionKeepsCursor(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	h.keys(keyOf(tea.KeyTab), keyOf(tea.KeyTab), keyOf(tea.KeyEnter))
	if got := h.model.Frame().Cursor; got != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", got)
	}
	h.keys(keyOf(tea.KeyDown), keyOf(tea.KeyDown), keyOf(tea.KeyEnter))
	m := h.model
	if got := m.session.Selection().Type; got != "res" {
		t.Fatalf("expected type res applied, got %q", got)
	}
	if frame := m.Frame(); frame.Total != 3 || frame.Cursor != 0 {
		t.Fatalf("expected reset to 0 of 3, got %d of %d", frame.Cursor, frame.Total)
	}
}

func TestCategoryChangeDropsForeignSubCategory(t *testing.T) {
	initial := filter.Selection{Category: "Physical", SubCategory: "Trauma"}
	h := newHarness(NewModel(dataset.NewCollection("fixture.csv", fixtureRecords()), initial, 0, 0, false, nil))
	h.keys(typed("psychol"), keyOf(tea.KeyEnter))
	m := h.model
	want := filter.Selection{Category: "Psychological"}
	if got := m.session.Selection(); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if m.pickers[pickerSubCategory].Value != "" {
		t.Fatalf("expected sub-category picker reset, got %q", m.pickers[pickerSubCategory].Value)
	}
	if frame := m.Frame(); frame.Total != 1 {
		t.Fatalf("expected one Psychological record, got %d", frame.Total)
	}
}

func TestFocusCyclesBothWays(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(keyOf(tea.KeyShiftTab))
	if h.model.focus != pickerType {
		t.Fatalf("expected focus to wrap to type picker, got %d", h.model.focus)
	}
	h.keys(keyOf(tea.KeyTab), keyOf(tea.KeyTab))
	if h.model.focus != pickerSubCategory {
		t.Fatalf("expected sub-category focus, got %d", h.model.focus)
	}
}

func TestFocusChangeClearsQuery(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(typed("ps"), keyOf(tea.KeyTab))
	if q := h.model.pickers[pickerCategory].Query; q != "" {
		t.Fatalf("expected query cleared on focus change, got %q", q)
	}
}

func TestEscapeClearsQueryThenQuits(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(typed("x"), keyOf(tea.KeyEsc))
	if h.quit {
		t.Fatal("expected first escape to clear the query")
	}
	if h.model.pickers[pickerCategory].Query != "" {
		t.Fatal("expected query cleared")
	}
	h.keys(keyOf(tea.KeyEsc))
	if !h.quit {
		t.Fatal("expected second escape to quit")
	}
	if h.view() != "" {
		t.Fatal("expected empty view after quitting")
	}
}

func TestCtrlCQuits(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(typed("x"), keyOf(tea.KeyCtrlC))
	if !h.quit {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestQueryEditingKeys(t *testing.T) {
	h := newHarness(fixtureModel(t))
	h.keys(typed("phys"), keyOf(tea.KeySpace), typed("ill"))
	p := h.model.pickers[pickerCategory]
	if p.Query != "phys ill" {
		t.Fatalf("expected query with space, got %q", p.Query)
	}
	h.keys(keyOf(tea.KeyCtrlW))
	if p.Query != "phys " {
		t.Fatalf("expected word deleted, got %q", p.Query)
	}
	h.keys(keyOf(tea.KeyBackspace))
	if p.Query != "phys" {
		t.Fatalf("expected rune deleted, got %q", p.Query)
	}
	h.keys(keyOf(tea.KeyCtrlU))
	if p.Query != "" {
		t.Fatalf("expected query cleared, got %q", p.Query)
	}
}

func TestPickerMovementKeys(t *testing.T) {
	h := newHarness(fixtureModel(t))
	p := h.model.pickers[pickerCategory]
	h.keys(keyOf(tea.KeyEnd))
	if p.Cursor != 2 {
		t.Fatalf("expected end at 2, got %d", p.Cursor)
	}
	h.keys(keyOf(tea.KeyHome), keyOf(tea.KeyUp))
	if p.Cursor != 2 {
		t.Fatalf("expected wrap to 2, got %d", p.Cursor)
	}
	h.keys(keyOf(tea.KeyPgUp))
	if p.Cursor != 0 {
		t.Fatalf("expected page up to 0, got %d", p.Cursor)
	}
	if p.Value != "" {
		t.Fatalf("expected movement not to apply a value, got %q", p.Value)
	}
}

func TestScrollKeysMoveTranscript(t *testing.T) {
	records := []dataset.Record{{Category: "Physical", Type: "desc", Dialogue: strings.Repeat("Doctor: line\n", 60)}}
	h := newHarness(NewModel(dataset.NewCollection("long.csv", records), filter.Selection{}, 80, 20, false, nil))
	h.keys(keyOf(tea.KeyShiftDown), keyOf(tea.KeyShiftDown))
	if got := h.model.transcript.YOffset; got != 2 {
		t.Fatalf("expected offset 2, got %d", got)
	}
	h.keys(keyOf(tea.KeyShiftUp))
	if got := h.model.transcript.YOffset; got != 1 {
		t.Fatalf("expected offset 1, got %d", got)
	}
	h.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if got := h.model.transcript.YOffset; got != 4 {
		t.Fatalf("expected offset 4 after wheel, got %d", got)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(dataset.NewCollection("fixture.csv", fixtureRecords()), filter.Selection{}, 90, 0, false, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 90 || m.height != 40 {
		t.Fatalf("expected 90x40, got %dx%d", m.width, m.height)
	}
	if m.transcript.Height <= 0 || m.transcript.Width <= 0 {
		t.Fatalf("expected sized viewport, got %dx%d", m.transcript.Width, m.transcript.Height)
	}
}

func TestKeyMapHelp(t *testing.T) {
	k := defaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Fatal("expected short help bindings")
	}
	total := 0
	for _, group := range k.FullHelp() {
		total += len(group)
	}
	if total < len(k.ShortHelp()) {
		t.Fatalf("expected full help to cover short help, got %d bindings", total)
	}
}

func TestEnterWithoutMatchesKeepsSelection(t *testing.T) {
	initial := filter.Selection{Category: "Physical"}
	h := newHarness(NewModel(dataset.NewCollection("fixture.csv", fixtureRecords()), initial, 0, 0, false, nil))
	h.keys(keyOf(tea.KeyRight), typed("zzzq"))
	before := h.model.session.State()
	if !strings.Contains(h.view(), `No matches for "zzzq"`) {
		t.Fatalf("expected no-match notice, got:\n%s", h.view())
	}

	h.keys(keyOf(tea.KeyEnter))
	after := h.model.session.State()
	if after != before {
		t.Fatalf("expected state %+v kept, got %+v", before, after)
	}
	if got := h.model.session.Selection(); got != initial {
		t.Fatalf("expected selection %v kept, got %v", initial, got)
	}
	if frame := h.model.Frame(); frame.Cursor != 1 || frame.Total != 3 {
		t.Fatalf("expected cursor 1 of 3, got %d of %d", frame.Cursor, frame.Total)
	}
	if got := h.model.pickers[pickerCategory].Query; got != "zzzq" {
		t.Fatalf("expected query kept, got %q", got)
	}
}
