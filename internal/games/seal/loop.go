package seal

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// ErrQuit is returned by Loop.Run when the input source requests a quit.
var ErrQuit = errors.New("seal: quit requested")

// Clock paces the loop to a fixed tick rate.
type Clock interface {
	Tick(fps int)
}

// InputSource reports the discrete input events of one tick.
type InputSource interface {
	Poll() core.InputFrame
}

// Renderer draws a frame.
type Renderer interface {
	Draw(f Frame)
}

// NoWaitClock never blocks. Used for headless simulation.
type NoWaitClock struct{}

// Tick returns immediately.
func (NoWaitClock) Tick(int) {}

// PacedClock sleeps so that consecutive Tick calls are 1/fps apart.
type PacedClock struct {
	last time.Time
}

// Tick blocks until one frame interval has passed since the previous call.
func (c *PacedClock) Tick(fps int) {
	interval := time.Second / time.Duration(fps)
	if !c.last.IsZero() {
		if wait := interval - time.Since(c.last); wait > 0 {
			time.Sleep(wait)
		}
	}
	c.last = time.Now()
}

// Loop drives a session outside of a UI event loop.
type Loop struct {
	Clock    Clock       // Defaults to NoWaitClock
	Input    InputSource // Required
	Renderer Renderer    // Optional
	FPS      int         // Defaults to the session's tick rate
	MaxTicks int         // Stop after this many ticks; 0 means until the round ends
}

// Result summarises a finished (or stopped) loop.
type Result struct {
	Score int
	Ticks int
	State State
}

// Run ticks the session until it is Over, MaxTicks is reached, the input
// source asks to quit (ErrQuit) or ctx is cancelled. Quit and cancellation
// are only observed between ticks.
func (l Loop) Run(ctx context.Context, s *Session) (Result, error) {
	if l.Input == nil {
		return Result{}, errors.New("seal: loop requires an input source")
	}
	clock := l.Clock
	if clock == nil {
		clock = NoWaitClock{}
	}
	fps := l.FPS
	if fps <= 0 {
		fps = s.Config().TickRate
	}

	result := func() Result {
		return Result{Score: s.Score(), Ticks: s.Ticks(), State: s.State()}
	}

	for s.State() == StateRunning {
		if err := ctx.Err(); err != nil {
			return result(), err
		}
		if l.MaxTicks > 0 && s.Ticks() >= l.MaxTicks {
			break
		}

		clock.Tick(fps)
		in := l.Input.Poll()
		if in.Has(core.ActionQuit) {
			return result(), ErrQuit
		}

		s.Step(in)
		if l.Renderer != nil {
			l.Renderer.Draw(s.Frame())
		}
	}
	return result(), nil
}
