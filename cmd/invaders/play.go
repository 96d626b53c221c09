package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space/W    - Fire
  P/Esc      - Pause
  R          - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Logs are discarded unless --log-file is given, since the game owns the screen.

Examples:
  invaders play
  invaders play --seed 42
  invaders play --config ./my-invaders.yaml --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", sourceName(path))

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The HUD and help lines take two rows
	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  max(height-2, 1),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	score := tui.NewScoreDisplay()
	game := invaders.New(
		invaders.WithConfig(cfg),
		invaders.WithLogger(logger),
		invaders.WithScoreSink(score),
	)

	if err := tui.Run(game, runtime, tui.Options{
		Score:     score,
		Logger:    logger,
		HoldTicks: config.Ticks(cfg.Input.Hold, flagFPS),
	}); err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	logger.Info("session ended", "score", score.Score())
	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded defaults"
	}
	return path
}
