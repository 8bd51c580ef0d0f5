package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bouncing-seal/internal/core"
	"github.com/vovakirdan/bouncing-seal/internal/games/seal"
	"github.com/vovakirdan/bouncing-seal/internal/replay"
)

// ReplaySaver persists finished rounds. *storage.Store implements it.
type ReplaySaver interface {
	SaveReplay(l replay.Log) (string, error)
}

// Model is the Bubble Tea model for playing Bouncing Seal.
type Model struct {
	game       *seal.Game
	screen     *core.Screen
	store      ReplaySaver
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	roundSaved bool   // Whether the current finished round has been saved
	lastReplay string // ID of the most recently saved replay
}

// NewModel creates a new Bubble Tea model for the game.
// store and logger may be nil.
func NewModel(game *seal.Game, store ReplaySaver, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init resets the game to its title prompt and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records input for the next tick. Several presses within one tick
// collapse into a single bounce.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBounce:
		m.inputFrame.Set(core.ActionBounce)
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps its own
// pixel space, so only the cell buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.roundSaved = false
	} else if !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRound stores the finished round. Failures are logged and play continues.
func (m *Model) saveRound() {
	if m.store == nil {
		return
	}
	round, ok := m.game.LastRound()
	if !ok {
		return
	}

	id, err := m.store.SaveReplay(replay.FromRound(round))
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save replay", "error", err)
		}
		return
	}
	m.lastReplay = id
	if m.logger != nil {
		m.logger.Debug("replay saved", "id", id, "score", round.Score, "ticks", round.Ticks)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".seal", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// LastReplay returns the ID of the most recently saved replay, if any.
func (m Model) LastReplay() string {
	return m.lastReplay
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game *seal.Game, store ReplaySaver, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
