package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/dialogue-browser/internal/backend"
	"github.com/atomicstack/dialogue-browser/internal/browse"
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/filter"
	"github.com/atomicstack/dialogue-browser/internal/taxonomy"
	"github.com/atomicstack/dialogue-browser/internal/theme"
	uistate "github.com/atomicstack/dialogue-browser/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type picker = uistate.Picker

// Sidebar pickers in display and focus order.
const (
	pickerCategory = iota
	pickerSubCategory
	pickerType
	pickerCount
)

const (
	pageTitle    = "Mental Health Simulated Data"
	sidebarTitle = "Filters"
	emptyMessage = "No conversations found for selected filters."
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the dialogue browser.
type Model struct {
	session *browse.Session
	pickers [pickerCount]*picker
	focus   int

	transcript  viewport.Model
	shownCursor int
	shownSel    filter.Selection
	showDetails bool
	showFooter  bool
	keys        keyMap
	help        help.Model
	queryCursor cursor.Model
	queryDirty  bool
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	infoMsg     string
	infoExpire  time.Time
	watcher     *backend.Watcher
	watchErr    string
	errMsg      string
	quitting    bool
	handlers    map[reflect.Type]msgHandler
}

// NewModel builds the browser over collection. Components of initial that the
// collection does not offer are dropped.
func NewModel(collection *dataset.Collection, initial filter.Selection, width, height int, showFooter bool, watcher *backend.Watcher) *Model {
	m := &Model{
		watcher:    watcher,
		showFooter: showFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.pickers[pickerCategory] = uistate.NewPicker("category", "Category", collection.DistinctCategories())
	m.pickers[pickerCategory].SetValue(initial.Category)
	m.pickers[pickerSubCategory] = uistate.NewPicker("sub_category", "Sub-category", taxonomy.SubcategoriesFor(m.pickers[pickerCategory].Value))
	m.pickers[pickerSubCategory].SetValue(initial.SubCategory)
	m.pickers[pickerType] = uistate.NewPicker("type", "Type", collection.DistinctTypes())
	m.pickers[pickerType].SetValue(initial.Type)

	m.session = browse.NewSession(collection, m.selection())

	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if styles.Footer != nil {
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.FullDesc = styles.Footer.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Query != nil {
		c.TextStyle = styles.Query.Copy()
	}
	c.SetChar(" ")
	m.queryCursor = c

	m.transcript = viewport.New(0, 0)
	m.syncTranscript(true)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForDatasetEvent(m.watcher))
	}
	if cmd := m.queryCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateQueryCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(datasetEventMsg{}):   m.handleDatasetEventMsg,
		reflect.TypeOf(datasetDoneMsg{}):    m.handleDatasetDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.queryDirty {
		m.queryDirty = false
		m.queryCursor.Blink = false
		if cmd := m.queryCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// selection reads the applied picker values.
func (m *Model) selection() filter.Selection {
	return filter.Selection{
		Category:    m.pickers[pickerCategory].Value,
		SubCategory: m.pickers[pickerSubCategory].Value,
		Type:        m.pickers[pickerType].Value,
	}
}

func (m *Model) focused() *picker {
	return m.pickers[m.focus]
}

// Frame exposes the frame currently on screen.
func (m *Model) Frame() browse.Frame {
	return m.session.Frame()
}

// syncTranscript refreshes the conversation viewport from the current frame.
// The scroll position resets when the displayed record changed or reset is set.
func (m *Model) syncTranscript(reset bool) {
	m.applyLayout()
	frame := m.session.Frame()
	m.transcript.SetContent(renderTranscript(frame.Entries, m.transcript.Width))
	if reset || frame.Cursor != m.shownCursor || frame.Selection != m.shownSel {
		m.transcript.GotoTop()
	}
	m.shownCursor = frame.Cursor
	m.shownSel = frame.Selection
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
