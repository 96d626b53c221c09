// Package config provides YAML-based game configuration loading and
// validation for the invaders game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// InvadersConfig contains all configuration for the invaders game.
// Distances are in world units, speeds in world units per tick.
type InvadersConfig struct {
	Viewport       ViewportConfig       `yaml:"viewport"`
	Player         PlayerConfig         `yaml:"player"`
	Missile        MissileConfig        `yaml:"missile"`
	InvaderMissile InvaderMissileConfig `yaml:"invader_missile"`
	Invader        InvaderConfig        `yaml:"invader"`
	Grid           GridConfig           `yaml:"grid"`
	Debris         DebrisConfig         `yaml:"debris"`
	Scoring        ScoringConfig        `yaml:"scoring"`
	GameOver       GameOverConfig       `yaml:"game_over"`
	Assets         AssetsConfig         `yaml:"assets"`
	Input          InputConfig          `yaml:"input"`
}

// ViewportConfig maps world units onto terminal cells.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Scale        float64 `yaml:"scale"`
	Speed        float64 `yaml:"speed"`
	Tilt         float64 `yaml:"tilt"` // Radians
	BottomMargin float64 `yaml:"bottom_margin"`
}

// MissileConfig defines the player's projectile.
type MissileConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// InvaderMissileConfig defines the enemy projectile.
type InvaderMissileConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InvaderConfig defines a single enemy unit.
type InvaderConfig struct {
	Scale   float64 `yaml:"scale"`
	Spacing float64 `yaml:"spacing"`
}

// GridConfig defines enemy formations.
type GridConfig struct {
	Speed         float64 `yaml:"speed"`
	Descent       float64 `yaml:"descent"`
	MinColumns    int     `yaml:"min_columns"`
	MaxColumns    int     `yaml:"max_columns"`
	MinRows       int     `yaml:"min_rows"`
	MaxRows       int     `yaml:"max_rows"`
	FireInterval  int     `yaml:"fire_interval"`  // Ticks between shots per grid
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between new grids
}

// DebrisConfig defines background stars and explosion particles.
type DebrisConfig struct {
	Stars      int     `yaml:"stars"`
	StarSpeed  float64 `yaml:"star_speed"`
	MaxRadius  float64 `yaml:"max_radius"`
	BurstCount int     `yaml:"burst_count"`
	BurstSpeed float64 `yaml:"burst_speed"`
	FadeRate   float64 `yaml:"fade_rate"`   // Opacity lost per tick
	WrapFading bool    `yaml:"wrap_fading"` // Wrap explosion particles like stars
}

// ScoringConfig defines points.
type ScoringConfig struct {
	InvaderPoints int `yaml:"invader_points"`
}

// GameOverConfig defines the death sequence.
type GameOverConfig struct {
	Delay time.Duration `yaml:"delay"` // Time between the hit and the halt
}

// AssetsConfig points at sprite files.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // Empty means embedded sprites
}

// InputConfig tunes the terminal key adapter.
type InputConfig struct {
	Hold time.Duration `yaml:"hold"` // How long a direction stays held without key repeats
}

// Ticks converts a duration to whole ticks at tickRate, rounding up.
// A tickRate <= 0 means 60 ticks per second.
func Ticks(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return int(math.Ceil(d.Seconds() * float64(tickRate)))
}

// Validate reports every invalid setting at once.
func (c InvadersConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	span := func(name string, lo, hi int) {
		if lo <= 0 || hi < lo {
			errs = append(errs, fmt.Errorf("%s range [%d, %d] is invalid", name, lo, hi))
		}
	}

	positive("viewport.cell_width", c.Viewport.CellWidth)
	positive("viewport.cell_height", c.Viewport.CellHeight)
	positive("player.scale", c.Player.Scale)
	nonNegative("player.speed", c.Player.Speed)
	positive("missile.speed", c.Missile.Speed)
	nonNegative("missile.radius", c.Missile.Radius)
	positive("invader_missile.speed", c.InvaderMissile.Speed)
	positive("invader_missile.width", c.InvaderMissile.Width)
	positive("invader_missile.height", c.InvaderMissile.Height)
	positive("invader.scale", c.Invader.Scale)
	positive("invader.spacing", c.Invader.Spacing)
	nonNegative("grid.speed", c.Grid.Speed)
	nonNegative("grid.descent", c.Grid.Descent)
	span("grid.columns", c.Grid.MinColumns, c.Grid.MaxColumns)
	span("grid.rows", c.Grid.MinRows, c.Grid.MaxRows)
	positive("grid.fire_interval", float64(c.Grid.FireInterval))
	positive("grid.spawn_interval", float64(c.Grid.SpawnInterval))
	nonNegative("debris.stars", float64(c.Debris.Stars))
	nonNegative("debris.max_radius", c.Debris.MaxRadius)
	nonNegative("debris.burst_count", float64(c.Debris.BurstCount))
	positive("debris.fade_rate", c.Debris.FadeRate)
	nonNegative("scoring.invader_points", float64(c.Scoring.InvaderPoints))
	nonNegative("game_over.delay", float64(c.GameOver.Delay))
	positive("input.hold", float64(c.Input.Hold))

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
