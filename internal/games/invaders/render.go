package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/asset"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Render draws the world onto dst, one cell per viewport cell size.
func (g *Game) Render(dst *core.Screen) {
	c := core.NewCanvas(dst, g.cfg.Viewport.CellWidth, g.cfg.Viewport.CellHeight)
	g.world.Draw(c)
	g.renderOverlay(dst)
}

// Draw issues the draw calls for every live entity, back to front.
func (w *World) Draw(s core.Surface) {
	s.Clear(core.ColorBackground)
	w.Player.Draw(s)
	for _, d := range w.Debris {
		d.Draw(s)
	}
	for _, m := range w.InvaderMissiles {
		m.Draw(s)
	}
	for _, m := range w.Missiles {
		m.Draw(s)
	}
	for _, grid := range w.Grids {
		grid.Draw(s)
	}
}

// renderOverlay draws loading and game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.sprites.Ship.State() {
	case asset.StateLoading:
		dst.DrawTextCentered(dst.Height()-1, "Loading...")
	case asset.StateFailed:
		dst.DrawTextCentered(dst.Height()-1, "Ship sprite failed to load")
	}

	switch {
	case !g.world.Active:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle, core.ColorBrightRed)
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

// drawCenteredBox draws a centered message box with a colored frame and title.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen, subtitleLen := len([]rune(title)), len([]rune(subtitle))

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawColorText(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
