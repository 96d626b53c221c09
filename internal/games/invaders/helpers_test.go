package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/asset"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

var testView = core.Vec2{X: 800, Y: 600}

// testSprites returns ready handles for the embedded sprites.
func testSprites(t *testing.T) Sprites {
	t.Helper()
	l := asset.NewLoader(nil, nil)
	ship, err := l.Load(asset.Ship)
	if err != nil {
		t.Fatalf("load ship: %v", err)
	}
	alien, err := l.Load(asset.Alien)
	if err != nil {
		t.Fatalf("load alien: %v", err)
	}
	return Sprites{Ship: asset.Preloaded(ship), Alien: asset.Preloaded(alien)}
}

// testConfig returns the defaults without background stars.
func testConfig(tweak func(*config.InvadersConfig)) config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Debris.Stars = 0
	if tweak != nil {
		tweak(&cfg)
	}
	return cfg
}

// newTestWorld returns an 800x600 world after its first tick, with the
// player placed and the opening grid removed.
func newTestWorld(t *testing.T, tweak func(*config.InvadersConfig)) *World {
	t.Helper()
	w := NewWorld(testView, testConfig(tweak), 42, 60, testSprites(t))
	w.Step()
	if !w.Player.Ready() {
		t.Fatal("player should be ready after the first tick")
	}
	w.Grids = nil
	return w
}

func steps(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}
