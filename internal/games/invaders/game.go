// Package invaders implements a Space Invaders-style shooter.
// The player's ship fires upward at marching grids of invaders that
// fire back; one hit ends the run.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/asset"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game adapts a World to the fixed-tick game contract: pause, restart
// and rendering around one simulation step per tick.
type Game struct {
	cfg     config.InvadersConfig
	logger  *log.Logger
	sink    ScoreSink
	sprites Sprites

	runtime core.RuntimeConfig
	world   *World
	paused  bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the game configuration.
func WithConfig(cfg config.InvadersConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger used for gameplay events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithScoreSink sets where score changes are reported.
func WithScoreSink(sink ScoreSink) Option {
	return func(g *Game) {
		if sink != nil {
			g.sink = sink
		}
	}
}

// WithAssets supplies sprite handles instead of loading them on Reset.
func WithAssets(ship, alien *asset.Handle) Option {
	return func(g *Game) { g.sprites = Sprites{Ship: ship, Alien: alien} }
}

// New creates a new invaders game instance.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultInvadersConfig(),
		logger: log.New(io.Discard),
		sink:   discardScore{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset starts a fresh run. Sprites are requested on the first Reset only.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.sprites.Ship == nil || g.sprites.Alien == nil {
		loader := asset.NewDirLoader(g.cfg.Assets.Dir, g.logger)
		if g.sprites.Ship == nil {
			g.sprites.Ship = loader.LoadAsync(asset.Ship)
		}
		if g.sprites.Alien == nil {
			g.sprites.Alien = loader.LoadAsync(asset.Alien)
		}
	}

	size := core.Vec2{
		X: float64(runtime.ScreenW) * g.cfg.Viewport.CellWidth,
		Y: float64(runtime.ScreenH) * g.cfg.Viewport.CellHeight,
	}
	g.world = NewWorld(size, g.cfg, runtime.Seed, runtime.TickRate, g.sprites)
	g.world.sink = g.sink
	g.world.logger = g.logger
	g.paused = false
	g.sink.SetScore(0)

	g.logger.Debug("run started", "width", size.X, "height", size.Y, "seed", runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && !g.world.Active {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.world.Over {
		g.paused = !g.paused
	}
	if g.paused {
		g.world.ApplyReleases(in)
		return core.StepResult{State: g.State()}
	}

	g.world.ApplyInput(in)
	g.world.Step()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score,
		GameOver: g.world.Over,
		Halted:   !g.world.Active,
		Paused:   g.paused,
	}
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// Config returns the configuration in use.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}
