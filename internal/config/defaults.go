package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Viewport: ViewportConfig{
			CellWidth:  10,
			CellHeight: 15,
		},
		Player: PlayerConfig{
			Scale:        0.15,
			Speed:        7,
			Tilt:         0.15,
			BottomMargin: 20,
		},
		Missile: MissileConfig{
			Speed:  10,
			Radius: 4,
		},
		InvaderMissile: InvaderMissileConfig{
			Speed:  5,
			Width:  5,
			Height: 8,
		},
		Invader: InvaderConfig{
			Scale:   0.025,
			Spacing: 30,
		},
		Grid: GridConfig{
			Speed:         3,
			Descent:       30,
			MinColumns:    5,
			MaxColumns:    14,
			MinRows:       2,
			MaxRows:       6,
			FireInterval:  100,
			SpawnInterval: 1000,
		},
		Debris: DebrisConfig{
			Stars:      100,
			StarSpeed:  2,
			MaxRadius:  3,
			BurstCount: 15,
			BurstSpeed: 3,
			FadeRate:   0.01,
		},
		Scoring: ScoringConfig{
			InvaderPoints: 100,
		},
		GameOver: GameOverConfig{
			Delay: 2 * time.Second,
		},
		Input: InputConfig{
			Hold: 750 * time.Millisecond,
		},
	}
}
