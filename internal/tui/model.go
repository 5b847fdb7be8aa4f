package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todo-list/internal/announce"
	"todo-list/internal/config"
	"todo-list/internal/render"
	"todo-list/internal/store"
	"todo-list/internal/theme"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusList
)

type Options struct {
	DeleteDelay time.Duration
	Logger      *log.Logger
}

type Model struct {
	store  *store.Store
	region *announce.Region
	logger *log.Logger
	ctx    context.Context

	input textinput.Model
	help  help.Model
	keys  keyMap

	focus       focusArea
	cursor      int // index into the visible rows
	deleteDelay time.Duration

	err      error
	width    int
	height   int
	showHelp bool
	quitting bool

	theme  *theme.Theme
	styles *theme.Styles
}

// NewModel wraps an already restored store. region must be the announcer
// the store was built with so the live line reflects store notifications.
func NewModel(s *store.Store, region *announce.Region, opts Options) Model {
	if opts.DeleteDelay <= 0 {
		opts.DeleteDelay = config.DefaultDeleteDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	m := Model{
		store:       s,
		region:      region,
		logger:      opts.Logger,
		ctx:         context.Background(),
		input:       ti,
		help:        help.New(),
		keys:        defaultKeyMap(),
		focus:       focusForm,
		deleteDelay: opts.DeleteDelay,
		width:       80,
		height:      24,
	}
	m.applyTheme()

	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) applyTheme() {
	m.theme = theme.ForMode(m.store.Theme())
	m.styles = theme.NewStyles(m.theme)
}

func (m Model) view() render.View {
	return m.store.View()
}

// the row under the cursor, if any
func (m Model) selectedRow() (render.Row, bool) {
	rows := m.view().Visible()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return render.Row{}, false
	}
	return rows[m.cursor], true
}

// keeps the cursor inside the visible rows after the list or filter changed
func (m *Model) clampCursor() {
	n := len(m.view().Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
