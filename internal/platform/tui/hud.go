package tui

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var (
	hudTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	hudScoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Padding(0, 1)
	hudStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// ScoreDisplay is the on-screen score. The game writes to it through
// SetScore; the HUD reads it when drawing.
type ScoreDisplay struct {
	score atomic.Int64
}

// NewScoreDisplay creates a score display showing zero.
func NewScoreDisplay() *ScoreDisplay {
	return &ScoreDisplay{}
}

// SetScore updates the displayed score.
func (d *ScoreDisplay) SetScore(score int) {
	d.score.Store(int64(score))
}

// Score returns the displayed score.
func (d *ScoreDisplay) Score() int {
	return int(d.score.Load())
}

// View renders the HUD line.
func (d *ScoreDisplay) View(title string, state core.GameState) string {
	line := hudTitleStyle.Render(title) + hudScoreStyle.Render(fmt.Sprintf("Score: %d", d.Score()))

	switch {
	case state.Halted:
		line += hudStatusStyle.Render("GAME OVER")
	case state.GameOver:
		line += hudStatusStyle.Render("HIT!")
	case state.Paused:
		line += hudStatusStyle.Render("PAUSED")
	}
	return line
}
