package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncing-seal/internal/games/seal"
	"github.com/vovakirdan/bouncing-seal/internal/replay"
	"github.com/vovakirdan/bouncing-seal/internal/storage"
)

var (
	flagBounceEvery int
	flagMaxTicks    int
	flagWatch       bool
	flagSave        bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round with scripted bounces",
	Long: `Run one round without a UI. The seal bounces on tick 0 and then every
--bounce-every ticks until it crashes or --max-ticks is reached.

With --watch the round is drawn to the terminal in real time.
With --save the round is stored as a replay.

Examples:
  seal sim --seed 7
  seal sim --bounce-every 16 --max-ticks 3000
  seal sim --watch --bounce-every 17
  seal sim --seed 7 --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagBounceEvery, "bounce-every", 17, "Bounce every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 100000, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagWatch, "watch", false, "Draw the round in real time")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Store the round as a replay")
}

func runSim(_ *cobra.Command, _ []string) {
	if flagMaxTicks <= 0 {
		logger.Fatal("--max-ticks must be positive", "max_ticks", flagMaxTicks)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := seal.NewSession(gameConfig, rand.New(rand.NewSource(seed)), nil)
	if err != nil {
		logger.Fatal("cannot create session", "error", err)
	}

	bounces := replay.Periodic(flagBounceEvery, flagMaxTicks)
	loop := seal.Loop{
		Input:    replay.NewScript(bounces),
		FPS:      tickRate(),
		MaxTicks: flagMaxTicks,
	}
	if flagWatch {
		loop.Clock = &seal.PacedClock{}
		loop.Renderer = newTermRenderer(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := loop.Run(ctx, session)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("simulation failed", "error", err)
	}
	logger.Info("round finished",
		"seed", seed,
		"score", res.Score,
		"ticks", res.Ticks,
		"state", res.State,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	fmt.Printf("score %d after %d ticks (%s)\n", res.Score, res.Ticks, res.State)

	if !flagSave {
		return
	}

	rec := replay.Log{
		Seed:    seed,
		Bounces: ticksBefore(bounces, res.Ticks),
		Ticks:   res.Ticks,
		Score:   res.Score,
		Config:  gameConfig,
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open replay database", "error", err)
	}
	defer store.Close()

	id, err := store.SaveReplay(rec)
	if err != nil {
		logger.Error("cannot save replay", "error", err)
		return
	}
	fmt.Printf("saved replay %s\n", id)
}

// ticksBefore returns the leading ticks that are smaller than limit.
func ticksBefore(ticks []int, limit int) []int {
	for i, t := range ticks {
		if t >= limit {
			return ticks[:i]
		}
	}
	return ticks
}
