package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/asset"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship at the bottom of the screen. It is inert until its
// sprite is ready; only horizontal motion is possible.
type Player struct {
	Position core.Vec2
	Velocity core.Vec2
	Width    float64
	Height   float64
	Rotation float64 // Visual tilt in radians
	Opacity  float64

	sprite *asset.Handle
	ready  bool
}

func newPlayer(sprite *asset.Handle) *Player {
	return &Player{sprite: sprite, Opacity: 1}
}

// Ready reports whether the player has been placed in the world.
func (p *Player) Ready() bool {
	return p.ready
}

// activate sizes and places the player once the sprite has loaded.
// Reports true on the call that makes the player ready.
func (p *Player) activate(view core.Vec2, cfg config.PlayerConfig) bool {
	if p.ready || !p.sprite.Ready() {
		return false
	}
	img := p.sprite.Image()
	p.Width = img.Width * cfg.Scale
	p.Height = img.Height * cfg.Scale
	p.Position = core.Vec2{
		X: view.X/2 - p.Width/2,
		Y: view.Y - p.Height - cfg.BottomMargin,
	}
	p.ready = true
	return true
}

// Update applies horizontal velocity.
func (p *Player) Update() {
	if !p.ready {
		return
	}
	p.Position.X += p.Velocity.X
}

// Bounds returns the player's box.
func (p *Player) Bounds() core.RectF {
	return core.RectF{X: p.Position.X, Y: p.Position.Y, W: p.Width, H: p.Height}
}

// Draw renders the ship tilted around its center.
func (p *Player) Draw(s core.Surface) {
	if !p.ready {
		return
	}
	b := p.Bounds()
	s.Save()
	s.SetAlpha(p.Opacity)
	s.Rotate(b.Center(), p.Rotation)
	s.DrawImage(p.sprite.Image(), b)
	s.Restore()
}

// Missile is the player's projectile.
type Missile struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64

	dead bool
}

// Update moves the missile.
func (m *Missile) Update() {
	m.Position = m.Position.Add(m.Velocity)
}

// Bounds returns the box around the missile's circle.
func (m *Missile) Bounds() core.RectF {
	return core.RectF{
		X: m.Position.X - m.Radius,
		Y: m.Position.Y - m.Radius,
		W: 2 * m.Radius,
		H: 2 * m.Radius,
	}
}

// Draw renders the missile.
func (m *Missile) Draw(s core.Surface) {
	s.FillCircle(m.Position, m.Radius, core.ColorYellow)
}

// InvaderMissile is an enemy projectile.
type InvaderMissile struct {
	Position core.Vec2
	Velocity core.Vec2
	Width    float64
	Height   float64

	dead bool
}

// Update moves the missile.
func (m *InvaderMissile) Update() {
	m.Position = m.Position.Add(m.Velocity)
}

// Bounds returns the missile's box.
func (m *InvaderMissile) Bounds() core.RectF {
	return core.RectF{X: m.Position.X, Y: m.Position.Y, W: m.Width, H: m.Height}
}

// Draw renders the missile.
func (m *InvaderMissile) Draw(s core.Surface) {
	s.FillRect(m.Bounds(), core.ColorRed)
}

// Debris is a particle: a background star when Fades is false, an
// explosion fragment otherwise.
type Debris struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
	Color    core.Color
	Opacity  float64
	Fades    bool
	FadeRate float64

	dead bool
}

// Update moves the particle and fades it.
func (d *Debris) Update() {
	d.Position = d.Position.Add(d.Velocity)
	if d.Fades {
		d.Opacity -= d.FadeRate
	}
}

// Draw renders the particle at its current opacity.
func (d *Debris) Draw(s core.Surface) {
	s.Save()
	s.SetAlpha(d.Opacity)
	s.FillCircle(d.Position, d.Radius, d.Color)
	s.Restore()
}

// Invader is one enemy unit. It moves with its grid's velocity and is
// inert until its sprite is ready.
type Invader struct {
	Position core.Vec2
	Width    float64
	Height   float64

	scale  float64
	sprite *asset.Handle
	ready  bool
	dead   bool
}

// Ready reports whether the invader is sized and moving.
func (inv *Invader) Ready() bool {
	return inv.ready
}

func (inv *Invader) activate() bool {
	if !inv.sprite.Ready() {
		return false
	}
	img := inv.sprite.Image()
	inv.Width = img.Width * inv.scale
	inv.Height = img.Height * inv.scale
	inv.ready = true
	return true
}

// Update moves the invader by the owning grid's velocity.
func (inv *Invader) Update(velocity core.Vec2) {
	if !inv.ready && !inv.activate() {
		return
	}
	inv.Position = inv.Position.Add(velocity)
}

// Bounds returns the invader's box.
func (inv *Invader) Bounds() core.RectF {
	return core.RectF{X: inv.Position.X, Y: inv.Position.Y, W: inv.Width, H: inv.Height}
}

// Shoot appends a missile leaving the invader's bottom center.
func (inv *Invader) Shoot(missiles []*InvaderMissile, cfg config.InvaderMissileConfig) []*InvaderMissile {
	return append(missiles, &InvaderMissile{
		Position: core.Vec2{
			X: inv.Position.X + inv.Width/2,
			Y: inv.Position.Y + inv.Height,
		},
		Velocity: core.Vec2{Y: cfg.Speed},
		Width:    cfg.Width,
		Height:   cfg.Height,
	})
}

// Draw renders the invader.
func (inv *Invader) Draw(s core.Surface) {
	if !inv.ready {
		return
	}
	s.DrawImage(inv.sprite.Image(), inv.Bounds())
}
