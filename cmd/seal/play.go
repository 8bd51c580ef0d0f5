package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bouncing-seal/internal/core"
	"github.com/vovakirdan/bouncing-seal/internal/games/seal"
	"github.com/vovakirdan/bouncing-seal/internal/platform/tui"
	"github.com/vovakirdan/bouncing-seal/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Bouncing Seal in the current terminal.

Controls:
  Space/Up     - Bounce (also starts a round)
  Esc/Q        - Quit
  Ctrl+S       - Save a screenshot to ~/.seal/screenshots

Every finished round is stored as a replay in the database.

Examples:
  seal play
  seal play --seed 42
  seal play --config ./my-seal.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(),
		Seed:     flagSeed,
	}

	sound := tui.NewSound(os.Stderr, flagMute, flagBounceBell)
	game, err := seal.New(gameConfig, sound)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	// Replays are optional; the game still works without them.
	var saver tui.ReplaySaver
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
	} else {
		saver = store
		defer store.Close()
	}

	if err := tui.Run(game, saver, logger, cfg); err != nil {
		logger.Error("error running game", "error", err)
		return
	}
}
