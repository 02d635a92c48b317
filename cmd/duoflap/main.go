// duoflap is a two-player Flappy Bird duel for the terminal and the desktop.
//
// Usage:
//
//	duoflap                 - Play in the terminal (same as "duoflap play")
//	duoflap play            - Play in the terminal
//	duoflap window          - Play in a desktop window
//	duoflap config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for pipe placement
//	--config <path>     - Use a custom duel YAML file
//	--log <path>        - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duoflap/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duoflap",
	Short: "Flappy Duel - two birds, one keyboard",
	Long: `Flappy Duel is a two-player Flappy Bird game. Both birds fly through
the same stream of pipes; the first to touch a pipe or the ground loses.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print or validate the duel configuration

Examples:
  duoflap
  duoflap play --seed 42
  duoflap window --scale 0.75
  duoflap config --config ./my-duel.yaml --validate`,
	SilenceUsage:      true,
	PersistentPreRunE: checkGlobalFlags,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom duel config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// checkGlobalFlags rejects tick rates the pass-through scoring cannot keep up with.
func checkGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS < config.MinTickRate || flagFPS > config.MaxTickRate {
		return fmt.Errorf("--fps must be between %d and %d, got %d", config.MinTickRate, config.MaxTickRate, flagFPS)
	}
	return nil
}
