package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/asset"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Grid is a formation of invaders sharing one velocity. It marches
// sideways and steps down one descent each time it touches a side.
type Grid struct {
	Position core.Vec2
	Velocity core.Vec2
	Width    float64
	Invaders []*Invader // Column-major: all rows of column 0 first

	descent float64
	dead    bool
}

// NewGrid builds a grid with a random number of columns and rows.
func NewGrid(rng *SimpleRNG, cfg config.InvadersConfig, alien *asset.Handle) *Grid {
	cols := rng.Between(cfg.Grid.MinColumns, cfg.Grid.MaxColumns)
	rows := rng.Between(cfg.Grid.MinRows, cfg.Grid.MaxRows)
	return newGrid(cols, rows, cfg, alien)
}

func newGrid(cols, rows int, cfg config.InvadersConfig, alien *asset.Handle) *Grid {
	spacing := cfg.Invader.Spacing
	g := &Grid{
		Velocity: core.Vec2{X: cfg.Grid.Speed},
		Width:    float64(cols) * spacing,
		Invaders: make([]*Invader, 0, cols*rows),
		descent:  cfg.Grid.Descent,
	}
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			g.Invaders = append(g.Invaders, &Invader{
				Position: core.Vec2{X: float64(x) * spacing, Y: float64(y) * spacing},
				scale:    cfg.Invader.Scale,
				sprite:   alien,
			})
		}
	}
	return g
}

// Update advances the grid. The vertical velocity only lasts one tick.
func (g *Grid) Update(viewWidth float64) {
	g.Position = g.Position.Add(g.Velocity)
	g.Velocity.Y = 0

	if g.Position.X+g.Width >= viewWidth || g.Position.X <= 0 {
		g.Velocity.X = -g.Velocity.X
		g.Velocity.Y = g.descent
	}
}

// refit shrinks the grid's box to the surviving invaders.
func (g *Grid) refit() {
	if len(g.Invaders) == 0 {
		return
	}
	left, right := math.Inf(1), math.Inf(-1)
	for _, inv := range g.Invaders {
		left = min(left, inv.Position.X)
		right = max(right, inv.Position.X+inv.Width)
	}
	g.Position.X = left
	g.Width = right - left
}

// Draw renders every invader.
func (g *Grid) Draw(s core.Surface) {
	for _, inv := range g.Invaders {
		inv.Draw(s)
	}
}
