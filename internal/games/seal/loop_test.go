package seal

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

type countingClock struct {
	ticks int
	fps   int
}

func (c *countingClock) Tick(fps int) {
	c.ticks++
	c.fps = fps
}

type countingRenderer struct {
	frames int
	last   Frame
}

func (r *countingRenderer) Draw(f Frame) {
	r.frames++
	r.last = f
}

// quitAfter requests a quit on poll number n.
type quitAfter struct {
	n    int
	poll int
}

func (q *quitAfter) Poll() core.InputFrame {
	q.poll++
	in := core.NewInputFrame()
	if q.poll >= q.n {
		in.Set(core.ActionQuit)
	}
	return in
}

func TestLoopRunsUntilOver(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultSealConfig(), 1)
	clock := &countingClock{}
	renderer := &countingRenderer{}

	res, err := Loop{Clock: clock, Input: &periodicInput{}, Renderer: renderer}.Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.State != StateOver {
		t.Errorf("state = %v, expected over", res.State)
	}
	if clock.ticks != res.Ticks || renderer.frames != res.Ticks {
		t.Errorf("clock=%d frames=%d ticks=%d should match", clock.ticks, renderer.frames, res.Ticks)
	}
	if clock.fps != 30 {
		t.Errorf("clock paced at %d fps, expected the configured 30", clock.fps)
	}
	if renderer.last.State != StateOver || renderer.last.Sprite != SpriteHit {
		t.Errorf("last frame = %+v, expected the hit frame", renderer.last)
	}
}

func TestLoopQuit(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultSealConfig(), 1)

	res, err := Loop{Input: &quitAfter{n: 3}}.Run(context.Background(), s)
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, expected ErrQuit", err)
	}
	// The quit is observed before the third tick is simulated.
	if res.Ticks != 2 {
		t.Errorf("ticks = %d, expected 2", res.Ticks)
	}
}

func TestLoopMaxTicks(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultSealConfig(), 1)

	res, err := Loop{Input: &periodicInput{}, MaxTicks: 10}.Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Ticks != 10 || res.State != StateRunning {
		t.Errorf("result = %+v, expected 10 ticks still running", res)
	}
}

func TestLoopContextCancelled(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultSealConfig(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Loop{Input: &periodicInput{}}.Run(ctx, s)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
	if s.Ticks() != 0 {
		t.Errorf("cancelled loop simulated %d ticks", s.Ticks())
	}
}

func TestLoopRequiresInput(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultSealConfig(), 1)
	if _, err := (Loop{}).Run(context.Background(), s); err == nil {
		t.Error("Run() without input should fail")
	}
}
