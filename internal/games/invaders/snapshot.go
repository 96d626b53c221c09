package invaders

import "math"

// Snapshot contains the complete world state for determinism checks.
// Uses primitive types only; floats are stored as their IEEE-754 bits.
type Snapshot struct {
	Frames int
	Score  int
	Over   bool
	Active bool
	Left   bool
	Right  bool
	HaltAt int

	// Player: X, Y, VX, Rotation, Opacity
	PlayerData  [5]uint64
	PlayerReady bool

	// Each missile is 2 values: X, Y
	MissileData []uint64

	// Each invader missile is 2 values: X, Y
	InvaderMissileData []uint64

	// Each debris is 3 values: X, Y, Opacity
	DebrisData []uint64

	// Each grid is 4 values (X, Y, VX, Width) followed by its invader count
	// and then 2 values (X, Y) per invader
	GridData []uint64

	RNGState uint64
}

func bits(v float64) uint64 {
	return math.Float64bits(v)
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	p := w.Player
	snap := Snapshot{
		Frames:      w.Frames,
		Score:       w.Score,
		Over:        w.Over,
		Active:      w.Active,
		Left:        w.Keys.Left,
		Right:       w.Keys.Right,
		HaltAt:      w.HaltAt(),
		PlayerData:  [5]uint64{bits(p.Position.X), bits(p.Position.Y), bits(p.Velocity.X), bits(p.Rotation), bits(p.Opacity)},
		PlayerReady: p.Ready(),
		RNGState:    w.rng.state,
	}

	for _, m := range w.Missiles {
		snap.MissileData = append(snap.MissileData, bits(m.Position.X), bits(m.Position.Y))
	}
	for _, m := range w.InvaderMissiles {
		snap.InvaderMissileData = append(snap.InvaderMissileData, bits(m.Position.X), bits(m.Position.Y))
	}
	for _, d := range w.Debris {
		snap.DebrisData = append(snap.DebrisData, bits(d.Position.X), bits(d.Position.Y), bits(d.Opacity))
	}
	for _, g := range w.Grids {
		snap.GridData = append(snap.GridData,
			bits(g.Position.X), bits(g.Position.Y), bits(g.Velocity.X), bits(g.Width),
			uint64(len(g.Invaders)))
		for _, inv := range g.Invaders {
			snap.GridData = append(snap.GridData, bits(inv.Position.X), bits(inv.Position.Y))
		}
	}
	return snap
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

func flag(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frames)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HaltAt) //#nosec G115 -- hash computation
	h = h*31 + flag(snap.Over)
	h = h*31 + flag(snap.Active)
	h = h*31 + flag(snap.Left)
	h = h*31 + flag(snap.Right)
	h = h*31 + flag(snap.PlayerReady)

	for _, v := range snap.PlayerData {
		h = h*31 + v
	}
	for _, data := range [][]uint64{snap.MissileData, snap.InvaderMissileData, snap.DebrisData, snap.GridData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + v
		}
	}

	h = h*31 + snap.RNGState

	return h
}
