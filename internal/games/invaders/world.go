package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/asset"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Keys is the held state of the movement controls.
type Keys struct {
	Left  bool
	Right bool
}

// Sprites are the asset handles the world's entities depend on.
type Sprites struct {
	Ship  *asset.Handle
	Alien *asset.Handle
}

// World owns every entity and counter of one run.
type World struct {
	Player          *Player
	Missiles        []*Missile
	Grids           []*Grid
	InvaderMissiles []*InvaderMissile
	Debris          []*Debris

	Keys   Keys
	Score  int
	Frames int
	Over   bool // The player has been hit
	Active bool // The simulation still advances

	size       core.Vec2
	cfg        config.InvadersConfig
	rng        *SimpleRNG
	alien      *asset.Handle
	sink       ScoreSink
	logger     *log.Logger
	haltAt     int
	delayTicks int
}

// NewWorld creates a world of the given size in world units and scatters
// the background stars.
func NewWorld(size core.Vec2, cfg config.InvadersConfig, seed int64, tickRate int, sprites Sprites) *World {
	w := &World{
		Player:     newPlayer(sprites.Ship),
		Active:     true,
		size:       size,
		cfg:        cfg,
		rng:        NewSimpleRNG(seed),
		alien:      sprites.Alien,
		sink:       discardScore{},
		logger:     log.New(io.Discard),
		delayTicks: config.Ticks(cfg.GameOver.Delay, tickRate),
	}

	for i := 0; i < cfg.Debris.Stars; i++ {
		w.Debris = append(w.Debris, &Debris{
			Position: core.Vec2{
				X: w.rng.Float64() * size.X,
				Y: w.rng.Float64() * size.Y,
			},
			Velocity: core.Vec2{Y: cfg.Debris.StarSpeed},
			Radius:   w.rng.Float64() * cfg.Debris.MaxRadius,
			Color:    core.ColorSkyBlue,
			Opacity:  1,
		})
	}
	return w
}

// Size returns the world bounds.
func (w *World) Size() core.Vec2 {
	return w.size
}

// HaltAt returns the frame at which the simulation stops, or -1 while the
// player is alive.
func (w *World) HaltAt() int {
	if !w.Over {
		return -1
	}
	return w.haltAt
}

// burst spawns fading explosion debris at center.
func (w *World) burst(center core.Vec2, color core.Color) {
	d := w.cfg.Debris
	for i := 0; i < d.BurstCount; i++ {
		w.Debris = append(w.Debris, &Debris{
			Position: center,
			Velocity: core.Vec2{
				X: (w.rng.Float64() - 0.5) * d.BurstSpeed,
				Y: (w.rng.Float64() - 0.5) * d.BurstSpeed,
			},
			Radius:   w.rng.Float64() * d.MaxRadius,
			Color:    color,
			Opacity:  1,
			Fades:    true,
			FadeRate: d.FadeRate,
		})
	}
}

// LiveEntities counts everything the world is tracking.
func (w *World) LiveEntities() int {
	n := len(w.Missiles) + len(w.InvaderMissiles) + len(w.Debris)
	for _, g := range w.Grids {
		n += len(g.Invaders)
	}
	return n
}
