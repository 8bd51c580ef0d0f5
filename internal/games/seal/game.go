// Package seal implements Bouncing Seal, a Flappy Bird-style game.
// The player bounces a seal through gaps between pairs of icebergs scrolling
// in from the right. Passing a pair scores a point; touching an iceberg or
// falling off the bottom of the screen ends the round.
package seal

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// restartDelay is how many ticks the game over screen ignores input,
// so a held bounce key does not start the next round immediately.
const restartDelay = 15

// Phase is the host-level state: title prompt, a round in play, or a finished round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

// Round is the input log of one session, enough to re-simulate it.
type Round struct {
	Seed    int64
	Bounces []int // Ticks on which a bounce key was pressed
	Ticks   int
	Score   int
	Config  config.SealConfig
}

// Game wraps successive sessions behind the platform's Reset/Step/Render contract.
type Game struct {
	cfg   config.SealConfig
	sound SoundPlayer

	seeds   *rand.Rand
	session *Session
	phase   Phase
	round   Round

	overTicks int
}

// New creates a game. cfg is validated once here so later rounds cannot fail.
func New(cfg config.SealConfig, sound SoundPlayer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}
	if sound == nil {
		sound = NopSound{}
	}
	return &Game{
		cfg:   cfg,
		sound: sound,
		seeds: rand.New(rand.NewSource(0)),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "seal"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bouncing Seal"
}

// Reset returns to the title prompt. Round seeds are drawn from rc.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seeds = rand.New(rand.NewSource(rc.Seed))
	g.session = nil
	g.phase = PhaseIdle
	g.round = Round{}
	g.overTicks = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	bounce := in.Has(core.ActionBounce)

	switch g.phase {
	case PhaseIdle:
		if bounce {
			g.start()
		}

	case PhaseRunning:
		if bounce {
			g.round.Bounces = append(g.round.Bounces, g.session.Ticks())
		}
		if g.session.Step(in) == StateOver {
			g.phase = PhaseOver
			g.overTicks = 0
		}
		g.round.Ticks = g.session.Ticks()
		g.round.Score = g.session.Score()

	case PhaseOver:
		g.overTicks++
		if bounce && g.overTicks >= restartDelay {
			g.start()
		}
	}

	return core.StepResult{State: g.State()}
}

// start replaces the session with a fresh round.
func (g *Game) start() {
	seed := g.seeds.Int63()
	session, err := NewSession(g.cfg, rand.New(rand.NewSource(seed)), g.sound)
	if err != nil {
		// cfg was validated in New and the random source is non-nil.
		panic(fmt.Sprintf("seal: cannot start round: %v", err))
	}
	g.session = session
	g.phase = PhaseRunning
	g.round = Round{Seed: seed, Config: g.cfg}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Started:  g.phase != PhaseIdle,
		GameOver: g.phase == PhaseOver,
	}
	if g.session != nil {
		state.Score = g.session.Score()
	}
	return state
}

// Phase returns the host-level phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Session returns the current round, or nil on the title prompt.
func (g *Game) Session() *Session {
	return g.session
}

// LastRound returns the log of the finished round. ok is false unless the game is over.
func (g *Game) LastRound() (round Round, ok bool) {
	if g.phase != PhaseOver {
		return Round{}, false
	}
	round = g.round
	round.Bounces = append([]int(nil), g.round.Bounces...)
	return round, true
}
