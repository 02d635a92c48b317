package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
	"github.com/vovakirdan/duoflap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a duel in the terminal.

Controls:
  Enter      - Start the round
  Space      - Player 1 flap
  Up         - Player 2 flap
  R          - Restart (after game over)
  Tab        - Round results (between rounds)
  Q/Ctrl+C   - Quit

The terminal belongs to the game, so logs are discarded unless --log is set.

Examples:
  duoflap play
  duoflap play --seed 42 --log duel.log --log-level debug
  duoflap play --config ./my-duel.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	duel, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting terminal duel", "config", config.Locate(flagConfig), "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(cfg, duel, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
