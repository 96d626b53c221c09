// Package tui runs a game in the terminal with Bubble Tea. It owns the
// frame clock, maps keys to actions, emulates key releases and draws the
// screen buffer with colors.
package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the fixed-tick contract the terminal front end drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options tunes the terminal front end.
type Options struct {
	Score     *ScoreDisplay // Shared with the game as its score sink
	Logger    *log.Logger
	HoldTicks int // Ticks a direction stays held without key repeats
}

// TickMsg asks the model to advance the game one tick.
type TickMsg time.Time

// chromeRows is the HUD line plus the help line around the game screen.
const chromeRows = 2

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	reseed     bool // Pick a new seed on every restart
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	hold       *holdTracker
	score      *ScoreDisplay
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH size the game screen, without the HUD and help lines.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	reseed := false
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		reseed = true
	}
	if opts.Score == nil {
		opts.Score = NewScoreDisplay()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		reseed:     reseed,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       newHoldTracker(opts.HoldTicks),
		score:      opts.Score,
		logger:     opts.Logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return m.nextTick()
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionLeft, core.ActionRight:
		m.hold.press(action, &m.inputFrame)
	case core.ActionFire, core.ActionPause:
		m.inputFrame.Set(action)
	case core.ActionRestart:
		if m.gameState.Halted {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize follows the terminal with the screen buffer. The world keeps
// the bounds it was created with.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := msg.Width, msg.Height-chromeRows
	m.help.Width = msg.Width
	if w == m.screen.Width() && h == m.screen.Height() {
		return m, nil
	}
	if w <= 0 || h <= 0 {
		return m, nil
	}

	m.logger.Warn("terminal resized; world bounds stay fixed",
		"from", [2]int{m.screen.Width(), m.screen.Height()}, "to", [2]int{w, h})
	m.screen.Resize(w, h)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.Halted {
		if m.reseed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.hold.reset()
		m.inputFrame.Clear()
		m.logger.Info("restarted", "seed", m.config.Seed)
		return m, m.nextTick()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame; expired holds are released there
	m.inputFrame.Clear()
	m.hold.advance(&m.inputFrame)

	return m, m.nextTick()
}

func (m Model) nextTick() tea.Cmd {
	return tea.Tick(m.config.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(m.score.View(m.game.Title(), m.gameState))
	sb.WriteRune('\n')
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
