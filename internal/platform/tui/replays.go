package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bouncing-seal/internal/replay"
	"github.com/vovakirdan/bouncing-seal/internal/storage"
)

// maxReplays is how many recent replays the browser loads.
const maxReplays = 100

// ReplayLister loads stored replays. *storage.Store implements it.
type ReplayLister interface {
	RecentReplays(limit int) ([]storage.ReplayEntry, error)
}

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Verify key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Verify, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Verify, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for browsing stored replays.
type ReplaysModel struct {
	entries  []storage.ReplayEntry
	loadErr  error
	status   string
	table    table.Model
	help     help.Model
	keys     ReplaysKeyMap
	width    int
	height   int
	quitting bool
}

// NewReplaysModel creates a replay browser and loads the most recent replays.
func NewReplaysModel(store ReplayLister, width, height int) ReplaysModel {
	m := ReplaysModel{
		keys:   DefaultReplaysKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()

	if store != nil {
		m.entries, m.loadErr = store.RecentReplays(maxReplays)
	}
	m.updateTableRows()

	return m
}

// createTable creates a new table sized to the window.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Bounces", Width: 8},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for title, status and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded entries.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			shortID(e.ID),
			fmt.Sprintf("%d", e.Log.Score),
			fmt.Sprintf("%d", e.Log.Ticks),
			fmt.Sprintf("%d", len(e.Log.Bounces)),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// shortID abbreviates a replay id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// verifySelected re-simulates the highlighted replay and reports the outcome.
func (m *ReplaysModel) verifySelected() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return
	}
	e := m.entries[i]

	res, err := replay.Verify(context.Background(), e.Log)
	switch {
	case errors.Is(err, replay.ErrMismatch):
		m.status = fmt.Sprintf("%s: MISMATCH, replayed score %d in %d ticks", shortID(e.ID), res.Score, res.Ticks)
	case err != nil:
		m.status = fmt.Sprintf("%s: %v", shortID(e.ID), err)
	default:
		m.status = fmt.Sprintf("%s: verified, score %d in %d ticks", shortID(e.ID), res.Score, res.Ticks)
	}
}

// Status returns the result line of the last verification.
func (m ReplaysModel) Status() string {
	return m.status
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ReplaysModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not load replays:\n%v", m.loadErr))
	}
	if len(m.entries) == 0 {
		return emptyStyle.Render("No replays recorded yet.\nFinish a round to record one!")
	}
	return m.table.View()
}

// RunReplays runs the replay browser.
func RunReplays(store ReplayLister, width, height int) error {
	p := tea.NewProgram(
		NewReplaysModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
