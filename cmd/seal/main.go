// seal plays Bouncing Seal, a Flappy Bird-style arcade game, in the terminal.
//
// Usage:
//
//	seal play           - Play in this terminal
//	seal serve          - Start SSH server for remote play
//	seal sim            - Run a headless round with scripted bounces
//	seal replays        - Browse stored replays
//	seal replay <id>    - Re-simulate and verify a stored replay
//	seal rm <id>        - Delete a stored replay
//	seal config         - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: config tick_rate)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set replay database path (default: ~/.seal/replays.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <lvl>   - debug, info, warn or error
//	--mute              - Disable the terminal bell
//	--bounce-bell       - Also ring the bell on every bounce
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncing-seal/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagMute       bool
	flagBounceBell bool

	// Set up in PersistentPreRunE
	logger     *log.Logger
	gameConfig config.SealConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seal",
	Short: "Bouncing Seal - bounce a seal between icebergs in your terminal",
	Long: `Bouncing Seal is a Flappy Bird-style arcade game for the terminal.
Bounce the seal through the gaps between icebergs; every pair you pass
scores a point.

Examples:
  seal play
  seal play --seed 42 --mute
  seal serve --ssh :2222
  seal sim --bounce-every 17
  seal replays
  seal config > my-seal.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.seal/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
	rootCmd.PersistentFlags().BoolVar(&flagBounceBell, "bounce-bell", false, "Also ring the bell on every bounce")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and loads the game config for every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "seal",
		Level:           level,
	})

	gameConfig, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "path", flagConfig, "tick_rate", gameConfig.TickRate)
	return nil
}

// tickRate returns --fps, falling back to the config's rate.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return gameConfig.TickRate
}
