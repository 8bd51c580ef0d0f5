package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncing-seal/internal/games/seal"
	"github.com/vovakirdan/bouncing-seal/internal/replay"
	"github.com/vovakirdan/bouncing-seal/internal/storage"
)

var flagReplayWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate and verify a stored replay",
	Long: `Re-run a stored round from its seed and bounce ticks and check that it
reproduces the recorded score and length. Exits non-zero on a mismatch.

With --watch the round is drawn to the terminal in real time instead.

Examples:
  seal replay 0b6f3c1e-8d1a-4c55-9c1e-2f7d2a9a1b11
  seal replay 0b6f3c1e-8d1a-4c55-9c1e-2f7d2a9a1b11 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Draw the replay in real time")
}

func runReplay(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open replay database", "error", err)
	}
	entry, err := store.Replay(args[0])
	store.Close()
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay with id %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'seal replays' to see stored replays.")
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("cannot load replay", "error", err)
	}

	if flagReplayWatch {
		watchReplay(entry.Log)
		return
	}

	res, err := replay.Verify(context.Background(), entry.Log)
	if errors.Is(err, replay.ErrMismatch) {
		logger.Error("replay does not reproduce", "id", entry.ID, "error", err)
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("cannot re-simulate replay", "error", err)
	}
	fmt.Printf("replay %s verified: score %d after %d ticks\n", entry.ID, res.Score, res.Ticks)
}

// watchReplay plays the log back at its tick rate on the terminal.
func watchReplay(l replay.Log) {
	session, err := seal.NewSession(l.Config, rand.New(rand.NewSource(l.Seed)), nil)
	if err != nil {
		logger.Fatal("cannot create session", "error", err)
	}
	loop := seal.Loop{
		Clock:    &seal.PacedClock{},
		Input:    replay.NewScript(l.Bounces),
		Renderer: newTermRenderer(os.Stdout),
		FPS:      tickRate(),
		MaxTicks: l.Ticks,
	}
	res, err := loop.Run(context.Background(), session)
	if err != nil {
		logger.Fatal("replay failed", "error", err)
	}
	fmt.Printf("score %d after %d ticks\n", res.Score, res.Ticks)
}
