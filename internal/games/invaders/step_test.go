package invaders

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/asset"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestFadingDebrisRemovedOnce(t *testing.T) {
	w := newTestWorld(t, nil)
	d := &Debris{Position: core.Vec2{X: 100, Y: 100}, Radius: 1, Opacity: 0.5, Fades: true, FadeRate: 0.25}
	w.Debris = append(w.Debris, d)

	expected := []float64{0.25, 0}
	for tick, opacity := range expected {
		w.Step()
		if n := countDebris(w, d); n != 1 {
			t.Fatalf("tick %d: debris present %d times, expected once", tick+1, n)
		}
		if d.Opacity != opacity {
			t.Errorf("tick %d: opacity = %v, expected %v", tick+1, d.Opacity, opacity)
		}
	}

	w.Step()
	if n := countDebris(w, d); n != 0 {
		t.Fatalf("debris at opacity 0 should be removed, present %d times", n)
	}
	w.Step()
	if n := countDebris(w, d); n != 0 {
		t.Fatal("removed debris must not come back")
	}
}

func TestFadingDebrisDefaultRate(t *testing.T) {
	w := newTestWorld(t, nil)
	d := &Debris{Position: core.Vec2{X: 100, Y: 100}, Radius: 1, Opacity: 1, Fades: true, FadeRate: w.cfg.Debris.FadeRate}
	w.Debris = append(w.Debris, d)

	ticks := 0
	prev := d.Opacity
	for countDebris(w, d) == 1 {
		w.Step()
		ticks++
		if ticks > 200 {
			t.Fatal("debris never removed")
		}
		if countDebris(w, d) == 0 {
			break
		}
		if diff := prev - d.Opacity; math.Abs(diff-0.01) > 1e-9 {
			t.Fatalf("tick %d: opacity fell by %v, expected 0.01", ticks, diff)
		}
		prev = d.Opacity
	}

	if prev > 0 {
		t.Errorf("removed at opacity %v, expected <= 0", prev)
	}
	// 1.0 reaches <= 0 after about 100 decrements, and is removed on the tick after.
	if ticks < 100 || ticks > 102 {
		t.Errorf("removed after %d ticks, expected about 101", ticks)
	}
	steps(w, 5)
	if countDebris(w, d) != 0 {
		t.Error("removed debris must not come back")
	}
}

func countDebris(w *World, d *Debris) int {
	n := 0
	for _, other := range w.Debris {
		if other == d {
			n++
		}
	}
	return n
}

func TestDebrisWrap(t *testing.T) {
	tests := []struct {
		name       string
		wrapFading bool
		fades      bool
		expectWrap bool
	}{
		{"star wraps", false, false, true},
		{"explosion falls through", false, true, false},
		{"explosion wraps when enabled", true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, func(c *config.InvadersConfig) { c.Debris.WrapFading = tc.wrapFading })
			d := &Debris{
				Position: core.Vec2{X: 100, Y: testView.Y + 5},
				Velocity: core.Vec2{Y: 2},
				Radius:   1,
				Opacity:  1,
				Fades:    tc.fades,
				FadeRate: 0.01,
			}
			w.Debris = append(w.Debris, d)

			w.Step()

			wrapped := d.Position.Y < testView.Y
			if wrapped != tc.expectWrap {
				t.Errorf("wrapped = %v (y=%v), expected %v", wrapped, d.Position.Y, tc.expectWrap)
			}
			if wrapped && d.Position.Y != 1 {
				t.Errorf("wrapped debris should restart above the top edge, y = %v", d.Position.Y)
			}
		})
	}
}

func TestMissileLeavesTop(t *testing.T) {
	w := newTestWorld(t, nil)
	m := &Missile{Position: core.Vec2{X: 100, Y: 500}, Velocity: core.Vec2{Y: -10}, Radius: 4}
	w.Missiles = append(w.Missiles, m)

	steps(w, 50)
	if !slices.Contains(w.Missiles, m) {
		t.Fatalf("missile removed early at y=%v", m.Position.Y)
	}
	if m.Position.Y != 0 {
		t.Errorf("after 50 ticks y = %v, expected 0", m.Position.Y)
	}

	w.Step()
	if slices.Contains(w.Missiles, m) {
		t.Errorf("missile should be removed on tick 51, y=%v", m.Position.Y)
	}
	if m.Position.Y > 0 {
		t.Errorf("removed missile y = %v, expected <= 0", m.Position.Y)
	}
}

func TestInvaderMissileLeavesBottom(t *testing.T) {
	w := newTestWorld(t, nil)
	m := &InvaderMissile{Position: core.Vec2{X: 10, Y: testView.Y - 8}, Velocity: core.Vec2{Y: 5}, Width: 5, Height: 8}
	w.InvaderMissiles = append(w.InvaderMissiles, m)

	w.Step()
	if len(w.InvaderMissiles) != 0 {
		t.Error("missile touching the bottom edge should be removed")
	}
	if w.Over {
		t.Error("missile far from the player must not end the game")
	}
}

// hitPlayer drops an enemy missile onto the player.
func hitPlayer(w *World) {
	w.InvaderMissiles = append(w.InvaderMissiles, &InvaderMissile{
		Position: w.Player.Position,
		Velocity: core.Vec2{Y: 5},
		Width:    5,
		Height:   8,
	})
	w.Step()
}

func TestPlayerHitHaltsAfterDelay(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Keys.Left = true
	hitFrame := w.Frames

	hitPlayer(w)

	if !w.Over {
		t.Fatal("game should be over in the tick of the hit")
	}
	if !w.Active {
		t.Fatal("simulation should keep running for the explosion")
	}
	if w.Player.Opacity != 0 {
		t.Errorf("player opacity = %v, expected 0", w.Player.Opacity)
	}
	if w.Keys != (Keys{}) {
		t.Errorf("keys should be released on death, got %+v", w.Keys)
	}
	if len(w.InvaderMissiles) != 0 {
		t.Error("the missile that hit should be removed")
	}
	red := 0
	for _, d := range w.Debris {
		if d.Fades && d.Color == core.ColorRed {
			red++
		}
	}
	if red != 15 {
		t.Errorf("explosion debris = %d, expected 15", red)
	}

	// 2s at 60 ticks per second.
	if w.HaltAt() != hitFrame+120 {
		t.Errorf("HaltAt() = %d, expected %d", w.HaltAt(), hitFrame+120)
	}

	steps(w, 119)
	if !w.Active {
		t.Fatalf("simulation halted early at frame %d", w.Frames)
	}

	w.Step()
	if w.Active {
		t.Fatal("simulation should halt exactly 120 ticks after the hit")
	}
	halted := w.Snapshot()

	steps(w, 10)
	if after := w.Snapshot(); after.Hash() != halted.Hash() {
		t.Error("a halted world must not change")
	}
}

func TestPlayerHitDoesNotRetrigger(t *testing.T) {
	w := newTestWorld(t, nil)
	hitPlayer(w)
	haltAt := w.HaltAt()

	steps(w, 10)
	hitPlayer(w)

	if w.HaltAt() != haltAt {
		t.Errorf("second hit moved the halt from %d to %d", haltAt, w.HaltAt())
	}
}

func TestInputIgnoredAfterHit(t *testing.T) {
	w := newTestWorld(t, nil)
	hitPlayer(w)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionFire)
	w.ApplyInput(in)

	if w.Keys.Left {
		t.Error("movement should be ignored after game over")
	}
	if len(w.Missiles) != 0 {
		t.Error("fire should be ignored after game over")
	}
}

// gridAt places a grid of ready invaders at the origin.
func gridAt(t *testing.T, w *World, cols, rows int) *Grid {
	t.Helper()
	g := newGrid(cols, rows, w.cfg, testSprites(t).Alien)
	w.Grids = append(w.Grids, g)
	return g
}

func TestMissilesDestroyInvaderOnce(t *testing.T) {
	w := newTestWorld(t, nil)
	var reported []int
	w.sink = ScoreFunc(func(score int) { reported = append(reported, score) })

	gridAt(t, w, 1, 1)
	// Both missiles overlap the single invader after this tick's movement.
	first := &Missile{Position: core.Vec2{X: 15, Y: 30}, Velocity: core.Vec2{Y: -10}, Radius: 4}
	second := &Missile{Position: core.Vec2{X: 16, Y: 30}, Velocity: core.Vec2{Y: -10}, Radius: 4}
	w.Missiles = append(w.Missiles, first, second)

	w.Step()

	if w.Score != 100 {
		t.Errorf("score = %d, expected 100", w.Score)
	}
	if !slices.Equal(reported, []int{100}) {
		t.Errorf("sink saw %v, expected [100]", reported)
	}
	if len(w.Grids) != 0 {
		t.Error("empty grid should be removed in the same tick")
	}
	if len(w.Missiles) != 1 || w.Missiles[0] != second {
		t.Errorf("only the first missile should be spent, %d left", len(w.Missiles))
	}
	orange := 0
	for _, d := range w.Debris {
		if d.Color == core.ColorOrange {
			orange++
		}
	}
	if orange != 15 {
		t.Errorf("explosion debris = %d, expected 15", orange)
	}
}

func TestHitsRefitGridAndTrackScore(t *testing.T) {
	w := newTestWorld(t, nil)
	var reported []int
	w.sink = ScoreFunc(func(score int) { reported = append(reported, score) })

	g := gridAt(t, w, 3, 1)
	w.Missiles = append(w.Missiles,
		&Missile{Position: core.Vec2{X: 15, Y: 30}, Velocity: core.Vec2{Y: -10}, Radius: 4},
		&Missile{Position: core.Vec2{X: 78, Y: 30}, Velocity: core.Vec2{Y: -10}, Radius: 4},
	)

	w.Step()

	if w.Score != 200 || !slices.Equal(reported, []int{100, 200}) {
		t.Errorf("score = %d, sink saw %v; expected 200 and [100 200]", w.Score, reported)
	}
	if len(w.Grids) != 1 || len(g.Invaders) != 1 {
		t.Fatalf("grid should survive with one invader, got %d grids", len(w.Grids))
	}

	survivor := g.Invaders[0]
	if g.Position.X != survivor.Position.X {
		t.Errorf("grid x = %v, expected leftmost invader x %v", g.Position.X, survivor.Position.X)
	}
	if g.Width != survivor.Width {
		t.Errorf("grid width = %v, expected %v", g.Width, survivor.Width)
	}
	if len(w.Missiles) != 0 {
		t.Errorf("both missiles should be spent, %d left", len(w.Missiles))
	}
}

func TestPlayerSteering(t *testing.T) {
	tests := []struct {
		name      string
		press     []core.Action
		x         float64
		expectVel float64
		expectRot float64
	}{
		{"no keys", nil, 385, 0, 0},
		{"left", []core.Action{core.ActionLeft}, 385, -7, -0.15},
		{"right", []core.Action{core.ActionRight}, 385, 7, 0.15},
		{"left wins", []core.Action{core.ActionLeft, core.ActionRight}, 385, -7, -0.15},
		{"left edge", []core.Action{core.ActionLeft}, -1, 0, 0},
		{"right edge", []core.Action{core.ActionRight}, 771, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, nil)
			w.Player.Position.X = tc.x

			in := core.NewInputFrame()
			for _, a := range tc.press {
				in.Set(a)
			}
			w.ApplyInput(in)
			w.steer()

			if w.Player.Velocity.X != tc.expectVel || w.Player.Rotation != tc.expectRot {
				t.Errorf("velocity %v rotation %v, expected %v and %v",
					w.Player.Velocity.X, w.Player.Rotation, tc.expectVel, tc.expectRot)
			}
		})
	}
}

func TestPlayerStopsOnRelease(t *testing.T) {
	w := newTestWorld(t, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	w.ApplyInput(in)
	w.Step()
	w.Step()
	if w.Player.Position.X != 392 {
		t.Errorf("x = %v, expected one step of 7 from 385", w.Player.Position.X)
	}

	in = core.NewInputFrame()
	in.Release(core.ActionRight)
	w.ApplyInput(in)
	w.Step()

	if w.Player.Velocity.X != 0 || w.Player.Rotation != 0 {
		t.Errorf("released player should stop, velocity %v rotation %v", w.Player.Velocity.X, w.Player.Rotation)
	}
}

func TestFireSpawnsFromNose(t *testing.T) {
	w := newTestWorld(t, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	in.Set(core.ActionFire)
	w.ApplyInput(in)

	if len(w.Missiles) != 2 {
		t.Fatalf("two presses should fire two missiles, got %d", len(w.Missiles))
	}
	for _, m := range w.Missiles {
		if m.Position != (core.Vec2{X: 400, Y: 550}) || m.Velocity != (core.Vec2{Y: -10}) || m.Radius != 4 {
			t.Errorf("missile %+v, expected at {400 550} moving {0 -10} radius 4", *m)
		}
	}
}

func TestGridSpawnEveryInterval(t *testing.T) {
	cfg := testConfig(func(c *config.InvadersConfig) { c.Grid.FireInterval = 1 << 30 })
	w := NewWorld(testView, cfg, 7, 60, testSprites(t))

	checks := []struct {
		ticks int
		grids int
	}{
		{1, 1},   // frame 0
		{999, 1}, // frames 1..999
		{1, 2},   // frame 1000
		{999, 2}, // frames 1001..1999
		{1, 3},   // frame 2000
	}

	for _, c := range checks {
		steps(w, c.ticks)
		if len(w.Grids) != c.grids {
			t.Fatalf("after frame %d: %d grids, expected %d", w.Frames-1, len(w.Grids), c.grids)
		}
	}
}

func TestInvaderFireCadence(t *testing.T) {
	w := newTestWorld(t, func(c *config.InvadersConfig) {
		c.Grid.Speed = 0
		c.Grid.Descent = 0
		c.InvaderMissile.Speed = 0
	})
	gridAt(t, w, 1, 2)
	lone := gridAt(t, w, 1, 1)
	lone.Invaders[0].Position = core.Vec2{X: 200, Y: 40}
	w.Grids = append(w.Grids, &Grid{})

	added := make(map[int]int)
	for w.Frames <= 201 {
		frame, before := w.Frames, len(w.InvaderMissiles)
		w.Step()
		added[frame] = len(w.InvaderMissiles) - before
	}

	tests := []struct {
		frame int
		shots int
	}{
		{99, 0},
		{100, 2}, // one per non-empty grid
		{101, 0},
		{150, 0},
		{199, 0},
		{200, 2},
		{201, 0},
	}
	for _, tc := range tests {
		if added[tc.frame] != tc.shots {
			t.Errorf("frame %d: %d shots, expected %d", tc.frame, added[tc.frame], tc.shots)
		}
	}

	total := 0
	for _, n := range added {
		total += n
	}
	if total != 4 {
		t.Errorf("%d shots over frames 1..201, expected 4", total)
	}

	// The lone invader is 25x25, so it fires from {212.5 65}.
	fromLone := 0
	for _, m := range w.InvaderMissiles {
		if m.Position == (core.Vec2{X: 212.5, Y: 65}) {
			fromLone++
		}
	}
	if fromLone != 2 {
		t.Errorf("%d shots from the lone invader's bottom centre, expected 2", fromLone)
	}
}

func TestFailedShipLeavesPlayerInert(t *testing.T) {
	sprites := testSprites(t)
	sprites.Ship = asset.Failed(asset.Ship, asset.ErrInvalidSprite)
	w := NewWorld(testView, testConfig(nil), 1, 60, sprites)
	w.Step()

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionFire)
	w.ApplyInput(in)
	w.Step()

	if w.Player.Ready() {
		t.Error("player should stay inert without its sprite")
	}
	if len(w.Missiles) != 0 {
		t.Error("an inert player cannot fire")
	}
	if w.Player.Velocity.X != 0 {
		t.Errorf("an inert player cannot move, velocity %v", w.Player.Velocity.X)
	}
}

func TestBackgroundStars(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	w := NewWorld(testView, cfg, 3, 60, testSprites(t))

	if len(w.Debris) != cfg.Debris.Stars {
		t.Fatalf("stars = %d, expected %d", len(w.Debris), cfg.Debris.Stars)
	}
	for _, d := range w.Debris {
		if d.Fades || d.Color != core.ColorSkyBlue || d.Velocity != (core.Vec2{Y: 2}) {
			t.Fatalf("unexpected star %+v", *d)
		}
		if d.Position.X < 0 || d.Position.X >= testView.X || d.Position.Y < 0 || d.Position.Y >= testView.Y {
			t.Fatalf("star outside the view: %v", d.Position)
		}
		if d.Radius < 0 || d.Radius >= 3 {
			t.Fatalf("star radius %v outside [0, 3)", d.Radius)
		}
	}
}
