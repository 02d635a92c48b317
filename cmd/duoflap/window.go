package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
	"github.com/vovakirdan/duoflap/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a duel in a desktop window at the world's native resolution.

Controls:
  Enter      - Start the round
  Space      - Player 1 flap
  Up         - Player 2 flap
  R          - Restart (after game over)
  Esc/Q      - Quit

Logs go to stderr unless --log is set.

Examples:
  duoflap window
  duoflap window --scale 0.75 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale relative to the world size")
}

func runWindow(_ *cobra.Command, _ []string) error {
	duel, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg := core.RuntimeConfig{
		ScreenW:  int(duel.World.Width),
		ScreenH:  int(duel.World.Height),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("opening window", "config", config.Locate(flagConfig), "scale", flagScale)

	return window.Run(cfg, duel, flagScale, logger)
}
