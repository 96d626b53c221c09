package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// ApplyInput folds one frame of input into the world. Releases are applied
// before presses; each Fire press launches one missile. Input is ignored
// once the player has been hit.
func (w *World) ApplyInput(in core.InputFrame) {
	if w.Over {
		return
	}

	w.ApplyReleases(in)
	if in.Has(core.ActionLeft) {
		w.Keys.Left = true
	}
	if in.Has(core.ActionRight) {
		w.Keys.Right = true
	}

	for i, n := 0, in.Count(core.ActionFire); i < n; i++ {
		w.Fire()
	}
}

// ApplyReleases lets go of the directions released in this frame. It runs
// even while the game is paused so a release is never lost.
func (w *World) ApplyReleases(in core.InputFrame) {
	if in.Released(core.ActionLeft) {
		w.Keys.Left = false
	}
	if in.Released(core.ActionRight) {
		w.Keys.Right = false
	}
}

// Fire launches a missile from the nose of the ship.
func (w *World) Fire() {
	p := w.Player
	if w.Over || !p.Ready() {
		return
	}
	w.Missiles = append(w.Missiles, &Missile{
		Position: core.Vec2{X: p.Position.X + p.Width/2, Y: p.Position.Y},
		Velocity: core.Vec2{Y: -w.cfg.Missile.Speed},
		Radius:   w.cfg.Missile.Radius,
	})
}
