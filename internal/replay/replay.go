// Package replay re-simulates recorded rounds. A round is fully determined by
// its config, its RNG seed and the ticks on which bounce was pressed.
package replay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
	"github.com/vovakirdan/bouncing-seal/internal/games/seal"
)

// ErrMismatch is returned by Verify when a re-simulation disagrees with the log.
var ErrMismatch = errors.New("replay: result mismatch")

// Log is the recorded input of one round and its outcome.
type Log struct {
	Seed    int64
	Bounces []int
	Ticks   int
	Score   int
	Config  config.SealConfig
}

// FromRound converts a finished round into a log.
func FromRound(r seal.Round) Log {
	return Log{
		Seed:    r.Seed,
		Bounces: append([]int(nil), r.Bounces...),
		Ticks:   r.Ticks,
		Score:   r.Score,
		Config:  r.Config,
	}
}

// Script is an InputSource that presses bounce on the given ticks.
type Script struct {
	bounces map[int]bool
	tick    int
}

// NewScript creates a script from tick numbers, counted from zero.
func NewScript(bounces []int) *Script {
	s := &Script{bounces: make(map[int]bool, len(bounces))}
	for _, t := range bounces {
		s.bounces[t] = true
	}
	return s
}

// Poll returns the input for the next tick.
func (s *Script) Poll() core.InputFrame {
	in := core.NewInputFrame()
	if s.bounces[s.tick] {
		in.Set(core.ActionBounce)
	}
	s.tick++
	return in
}

// Periodic returns bounce ticks 0, every, 2*every, ... below limit.
func Periodic(every, limit int) []int {
	if every <= 0 || limit <= 0 {
		return nil
	}
	ticks := make([]int, 0, limit/every+1)
	for t := 0; t < limit; t += every {
		ticks = append(ticks, t)
	}
	return ticks
}

// Simulate replays the log headlessly. The run stops when the round ends or
// after log.Ticks ticks; a zero Ticks runs until the round ends.
func Simulate(ctx context.Context, l Log) (seal.Result, error) {
	session, err := seal.NewSession(l.Config, rand.New(rand.NewSource(l.Seed)), nil)
	if err != nil {
		return seal.Result{}, fmt.Errorf("replay: %w", err)
	}
	loop := seal.Loop{
		Input:    NewScript(l.Bounces),
		MaxTicks: l.Ticks,
	}
	return loop.Run(ctx, session)
}

// Verify re-simulates the log and checks the recorded score and tick count.
func Verify(ctx context.Context, l Log) (seal.Result, error) {
	res, err := Simulate(ctx, l)
	if err != nil {
		return res, err
	}
	if res.Score != l.Score || res.Ticks != l.Ticks {
		return res, fmt.Errorf("%w: recorded score %d in %d ticks, replayed score %d in %d ticks",
			ErrMismatch, l.Score, l.Ticks, res.Score, res.Ticks)
	}
	return res, nil
}
