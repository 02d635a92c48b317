package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duoflap/internal/config"
)

var flagValidate bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective duel configuration",
	Long: `Load the duel configuration the way play and window do and print it
as YAML. Files are searched in this order:

  --config <path>
  ~/.duoflap/configs/duel.yaml
  ./configs/duel.yaml
  built-in defaults

Examples:
  duoflap config > ~/.duoflap/configs/duel.yaml
  duoflap config --config ./my-duel.yaml --validate`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only validate, do not print")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	source := config.Locate(flagConfig)
	duel, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagValidate {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", source)
		return nil
	}

	data, err := duel.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
