package invaders

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// hit is an invader and a missile found overlapping in one tick.
type hit struct {
	grid    *Grid
	invader *Invader
	missile *Missile
}

// Step advances the world by one tick. Once the halt deadline is reached
// the world turns inactive and every later Step is a no-op.
func (w *World) Step() {
	if !w.Active {
		return
	}
	if w.Over && w.Frames >= w.haltAt {
		w.Active = false
		w.logger.Info("simulation halted", "frame", w.Frames, "score", w.Score)
		return
	}

	if w.Player.activate(w.size, w.cfg.Player) {
		w.logger.Debug("player ready", "x", w.Player.Position.X, "y", w.Player.Position.Y)
	}
	w.Player.Update()

	w.stepDebris()
	w.stepInvaderMissiles()
	w.stepMissiles()
	w.stepGrids()
	w.steer()

	if w.Frames%w.cfg.Grid.SpawnInterval == 0 {
		w.spawnGrid()
	}
	w.Frames++
}

func (w *World) stepDebris() {
	for _, d := range w.Debris {
		if d.Position.Y-d.Radius >= w.size.Y && (!d.Fades || w.cfg.Debris.WrapFading) {
			d.Position.X = w.rng.Float64() * w.size.X
			d.Position.Y = -d.Radius
		}
		if d.Opacity <= 0 {
			d.dead = true
			continue
		}
		d.Update()
	}
	w.Debris = slices.DeleteFunc(w.Debris, func(d *Debris) bool { return d.dead })
}

func (w *World) stepInvaderMissiles() {
	for _, m := range w.InvaderMissiles {
		if m.Position.Y+m.Height >= w.size.Y {
			m.dead = true
		} else {
			m.Update()
		}

		if !w.Over && w.Player.Ready() && m.Bounds().Intersects(w.Player.Bounds()) {
			m.dead = true
			w.killPlayer()
		}
	}
	w.InvaderMissiles = slices.DeleteFunc(w.InvaderMissiles, func(m *InvaderMissile) bool { return m.dead })
}

// killPlayer starts the death sequence. Input stops counting at once; the
// simulation halts after the configured delay.
func (w *World) killPlayer() {
	w.Over = true
	w.Player.Opacity = 0
	w.Keys = Keys{}
	w.haltAt = w.Frames + w.delayTicks
	w.burst(w.Player.Bounds().Center(), core.ColorRed)
	w.logger.Info("player hit", "frame", w.Frames, "score", w.Score, "halt_at", w.haltAt)
}

func (w *World) stepMissiles() {
	for _, m := range w.Missiles {
		m.Update()
		if m.Position.Y+m.Radius <= 0 {
			m.dead = true
		}
	}
	w.Missiles = slices.DeleteFunc(w.Missiles, func(m *Missile) bool { return m.dead })
}

func (w *World) stepGrids() {
	var hits []hit

	for _, g := range w.Grids {
		g.Update(w.size.X)

		if w.Frames%w.cfg.Grid.FireInterval == 0 && len(g.Invaders) > 0 {
			shooter := g.Invaders[w.rng.Intn(len(g.Invaders))]
			if shooter.Ready() {
				w.InvaderMissiles = shooter.Shoot(w.InvaderMissiles, w.cfg.InvaderMissile)
			}
		}

		for _, inv := range g.Invaders {
			inv.Update(g.Velocity)
			if !inv.Ready() {
				continue
			}
			box := inv.Bounds()
			for _, m := range w.Missiles {
				if m.Bounds().Intersects(box) {
					hits = append(hits, hit{grid: g, invader: inv, missile: m})
				}
			}
		}
	}

	w.applyHits(hits)
}

// applyHits destroys each invader and missile at most once, then compacts
// the touched grids.
func (w *World) applyHits(hits []hit) {
	if len(hits) == 0 {
		return
	}

	var touched []*Grid
	for _, h := range hits {
		if h.invader.dead || h.missile.dead {
			continue
		}
		h.invader.dead = true
		h.missile.dead = true

		w.Score += w.cfg.Scoring.InvaderPoints
		w.sink.SetScore(w.Score)
		w.burst(h.invader.Bounds().Center(), core.ColorOrange)
		w.logger.Debug("invader destroyed", "frame", w.Frames, "score", w.Score)

		if !slices.Contains(touched, h.grid) {
			touched = append(touched, h.grid)
		}
	}

	for _, g := range touched {
		g.Invaders = slices.DeleteFunc(g.Invaders, func(inv *Invader) bool { return inv.dead })
		if len(g.Invaders) == 0 {
			g.dead = true
			w.logger.Debug("grid cleared", "frame", w.Frames)
			continue
		}
		g.refit()
	}

	w.Missiles = slices.DeleteFunc(w.Missiles, func(m *Missile) bool { return m.dead })
	w.Grids = slices.DeleteFunc(w.Grids, func(g *Grid) bool { return g.dead })
}

// steer turns the held keys into player velocity and tilt. Left wins when
// both are held.
func (w *World) steer() {
	p := w.Player
	speed, tilt := w.cfg.Player.Speed, w.cfg.Player.Tilt

	switch {
	case w.Keys.Left && p.Ready() && p.Position.X >= 0:
		p.Velocity.X, p.Rotation = -speed, -tilt
	case w.Keys.Right && p.Ready() && p.Position.X+p.Width <= w.size.X:
		p.Velocity.X, p.Rotation = speed, tilt
	default:
		p.Velocity.X, p.Rotation = 0, 0
	}
}

func (w *World) spawnGrid() {
	g := NewGrid(w.rng, w.cfg, w.alien)
	w.Grids = append(w.Grids, g)
	w.logger.Debug("grid spawned", "frame", w.Frames, "invaders", len(g.Invaders), "width", g.Width)
}
