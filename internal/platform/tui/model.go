// Package tui provides the Bubble Tea integration: it maps keys to game
// actions, drives the game one event at a time and draws its screen buffer.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// ResultSaver persists finished games. *storage.Store implements it.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Options configures a Model. Zero values are usable.
type Options struct {
	Saver  ResultSaver // nil disables persistence
	Logger *log.Logger // nil discards log output
	Keys   KeyMap      // zero value means DefaultKeyMap
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	game      core.Game
	screen    *core.Screen
	saver     ResultSaver
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	config    core.RuntimeConfig
	gameState core.GameState

	width, height int

	quitting    bool
	resultSaved bool // Whether the current terminal state has been recorded
}

// NewModel creates a model and starts the first game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if len(opts.Keys.Quit.Keys()) == 0 {
		opts.Keys = DefaultKeyMap()
	}

	m := Model{
		game:   game,
		saver:  opts.Saver,
		logger: opts.Logger,
		keys:   opts.Keys,
		help:   help.New(),
		config: cfg,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.config.ScreenH = m.screen.Height()

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Debug("new game", "game", game.ID(), "seed", m.config.Seed)
	return m
}

// Init implements tea.Model. The game is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.recordResult()
	}

	return m, nil
}

// restart starts a new game with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.resultSaved = false
	m.logger.Debug("new game", "game", m.game.ID(), "seed", m.config.Seed)
}

// recordResult logs and stores the finished game once.
func (m *Model) recordResult() {
	m.resultSaved = true

	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}
	m.logger.Info("game finished",
		"game", m.game.ID(),
		"outcome", outcome,
		"score", m.gameState.Score,
		"seed", m.config.Seed,
	)

	if m.saver == nil {
		return
	}
	_, err := m.saver.SaveResult(storage.Result{
		GameID:  m.game.ID(),
		Outcome: outcome,
		Score:   m.gameState.Score,
		Seed:    m.config.Seed,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save result", "error", err)
	}
}

// gameHeight is the terminal height minus the help footer.
func (m Model) gameHeight() int {
	h := m.height - lipgloss.Height(m.help.View(m.keys))
	return core.Max(h, 0)
}

// layout resizes the screen buffer and informs the game. The board is kept.
func (m *Model) layout() {
	h := m.gameHeight()
	m.config.ScreenW = m.width
	m.config.ScreenH = h
	m.screen.Resize(m.width, h)
	m.game.Resize(m.width, h)
	m.gameState = m.game.State()
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
