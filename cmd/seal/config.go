package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncing-seal/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config as YAML",
	Long: `Print the game config after applying the search order:
--config path, ~/.seal/configs/seal.yaml, ./configs/seal.yaml, built-in defaults.

Examples:
  seal config
  seal config > ~/.seal/configs/seal.yaml
  seal config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file, comments included")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			logger.Fatal("cannot write config", "error", err)
		}
		return
	}

	data, err := config.Marshal(gameConfig)
	if err != nil {
		logger.Fatal("cannot encode config", "error", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		logger.Fatal("cannot write config", "error", err)
	}
}
