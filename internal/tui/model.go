// Package tui provides an interactive terminal session for generating ranks.
package tui

import (
	"strconv"

	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/bcanseco/rank-generator/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Generator is the part of the rank generator the session drives.
type Generator interface {
	NextRank(withPostfix bool) (*model.Rank, bool)
	RandomRank() (*model.Rank, error)
	IsExhausted() bool
}

// Model holds the TUI state.
type Model struct {
	theme     themes.Theme
	generator Generator
	lastError error
	help      help.Model
	keymap    KeyMap
	title     string
	ranks     model.Ranks
	table     table.Model
	width     int
	height    int
	mode      Mode
	postfix   bool
	exhausted bool
	quitting  bool
}

// New creates a session model around gen.
func New(gen Generator, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := table.New(
		table.WithColumns(columnsFor(cfg.Width)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(cfg.Height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cfg.Theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = cfg.Theme.Selected
	t.SetStyles(s)

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	return Model{
		theme:     cfg.Theme,
		generator: gen,
		help:      h,
		keymap:    DefaultKeyMap(),
		title:     cfg.Title,
		table:     t,
		width:     cfg.Width,
		height:    cfg.Height,
		mode:      cfg.Mode,
		postfix:   cfg.Postfix,
		exhausted: gen.IsExhausted(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Generate):
			m.generate()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleMode):
			if m.mode == ModeNext {
				m.mode = ModeRandom
			} else {
				m.mode = ModeNext
			}
			return m, nil
		case key.Matches(msg, m.keymap.TogglePostfix):
			m.postfix = !m.postfix
			return m, nil
		case key.Matches(msg, m.keymap.ToggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.ClearScreen):
			return m, tea.ClearScreen
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Ranks returns every rank produced in this session, in order.
func (m Model) Ranks() model.Ranks {
	out := make(model.Ranks, len(m.ranks))
	copy(out, m.ranks)
	return out
}

// Mode returns the active mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Exhausted reports whether next mode has run out of ranks.
func (m Model) Exhausted() bool {
	return m.exhausted
}

func (m *Model) generate() {
	m.lastError = nil

	if m.mode == ModeRandom {
		r, err := m.generator.RandomRank()
		if err != nil {
			m.lastError = err
			return
		}
		m.appendRank(r)
		return
	}

	if m.exhausted {
		return
	}
	r, ok := m.generator.NextRank(m.postfix)
	if !ok {
		m.exhausted = true
		return
	}
	m.appendRank(r)
}

func (m *Model) appendRank(r *model.Rank) {
	m.ranks = append(m.ranks, r)
	m.table.SetRows(buildRows(m.ranks))
	m.table.GotoBottom()
}

func (m *Model) handleResize() {
	m.table.SetColumns(columnsFor(m.width))
	m.table.SetHeight(tableHeight(m.height))
	m.help.Width = m.width
}

func buildRows(ranks model.Ranks) []table.Row {
	rows := make([]table.Row, 0, len(ranks))
	for i, r := range ranks {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			r.String(),
			strconv.Itoa(r.Tier()),
			r.Format().String(),
		})
	}
	return rows
}

func columnsFor(width int) []table.Column {
	rankWidth := width - 4 - 6 - 18 - 12
	if rankWidth < 20 {
		rankWidth = 20
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Rank", Width: rankWidth},
		{Title: "Tier", Width: 6},
		{Title: "Format", Width: 18},
	}
}

// tableHeight leaves room for the header, latest rank box, status, and help.
func tableHeight(height int) int {
	h := height - 12
	if h < 3 {
		return 3
	}
	return h
}
