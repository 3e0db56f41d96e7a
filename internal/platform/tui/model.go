package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-wars/internal/core"
	"github.com/vovakirdan/space-wars/internal/registry"
)

// Model is the Bubble Tea model for running a game.
// Simulation ticks and render passes arrive as separate messages on
// independent cadences; View only returns the last rendered frame.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	frame     string
	ticking   bool // A TickMsg is in flight
	sessions  int
	quitting  bool
	back      bool // Left with ActionBack rather than ActionQuit
}

// NewModel creates a new Bubble Tea model for the given game and starts
// the first session. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if cfg.RenderInterval <= 0 {
		cfg.RenderInterval = core.DefaultConfig().RenderInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if n, ok := game.(registry.GameOverNotifier); ok {
		n.OnGameOver(func(score int) {
			logger.Info("game over", "game", game.ID(), "score", score)
		})
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		ticking: true,
	}
	m.startSession()
	return m
}

// playRows leaves the bottom row for the help footer.
func playRows(h int) int {
	return core.Max(h-1, 1)
}

func (m *Model) startSession() {
	m.sessions++
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("session started", "game", m.game.ID(), "session", m.sessions, "seed", m.config.Seed,
		"tick", m.config.TickInterval, "render", m.config.RenderInterval)
}

// Init starts both loops.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickInterval),
		renderCmd(m.config.RenderInterval),
	)
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

	case RenderMsg:
		return m.handleRender()
	}

	return m, nil
}

// handleKey applies commands as soon as they arrive.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		m.back = action == core.ActionBack
		m.logger.Debug("leaving game", "action", action, "score", m.gameState.Score)
		return m, tea.Quit

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.startSession()
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.config.TickInterval)
		}
		return m, nil

	case core.ActionNone:
		return m, nil
	}

	m.game.Act(action)
	m.gameState = m.game.State()
	return m, nil
}

// handleResize only resizes the screen. Games keep their own coordinates.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step. The tick loop stops at game over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		m.ticking = false
		return m, nil
	}

	result := m.game.Step(core.InputFrame{})
	m.gameState = result.State

	if m.gameState.GameOver {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval)
}

// handleRender paints the current state into the cached frame.
func (m Model) handleRender() (tea.Model, tea.Cmd) {
	m.game.Render(m.screen)
	m.frame = RenderScreen(m.screen)
	return m, renderCmd(m.config.RenderInterval)
}

// View returns the last rendered frame with the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame + "\n" + m.help.View(m.keys)
}

// Result summarizes a finished TUI run.
type Result struct {
	Score    int  // Score of the last session
	Sessions int  // Sessions played, including restarts
	Back     bool // The player asked to return to the menu
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Result, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	fm, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	fm.logger.Info("driver stopped", "renderer", "tui", "score", fm.gameState.Score, "sessions", fm.sessions)
	return Result{Score: fm.gameState.Score, Sessions: fm.sessions, Back: fm.back}, nil
}
