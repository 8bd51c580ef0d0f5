package seal

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// recordingSound counts sound effects.
type recordingSound struct {
	bounces int
	hits    int
}

func (s *recordingSound) PlayBounce() { s.bounces++ }
func (s *recordingSound) PlayHit()    { s.hits++ }

// periodicInput presses bounce every n ticks, starting on the first poll.
type periodicInput struct {
	n    int
	tick int
}

func (p *periodicInput) Poll() core.InputFrame {
	in := core.NewInputFrame()
	if p.n > 0 && p.tick%p.n == 0 {
		in.Set(core.ActionBounce)
	}
	p.tick++
	return in
}

func newTestSession(t *testing.T, cfg config.SealConfig, seed int64) (*Session, *recordingSound) {
	t.Helper()
	sound := &recordingSound{}
	s, err := NewSession(cfg, rand.New(rand.NewSource(seed)), sound)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, sound
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSealConfig()
	cfg.Screen.Width = 0

	_, err := NewSession(cfg, rand.New(rand.NewSource(1)), nil)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewSession() = %v, expected ErrInvalidConfig", err)
	}
}

func TestNewSessionRequiresRand(t *testing.T) {
	if _, err := NewSession(config.DefaultSealConfig(), nil, nil); err == nil {
		t.Error("NewSession() should fail without a random source")
	}
}

func TestNewSessionLayout(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultSealConfig(), 1)

	p := s.Player()
	if p.Position.X != 128 || p.Position.Y != 240 {
		t.Errorf("player at (%v, %v), expected (128, 240)", p.Position.X, p.Position.Y)
	}
	if p.VelocityY != -9 {
		t.Errorf("initial VelocityY = %v, expected -9", p.VelocityY)
	}

	pairs := s.Stream().Pairs()
	if len(pairs) != 2 {
		t.Fatalf("expected 2 initial pairs, got %d", len(pairs))
	}
	if pairs[0].X() != 840 || pairs[1].X() != 1160 {
		t.Errorf("initial pairs at %v and %v, expected 840 and 1160", pairs[0].X(), pairs[1].X())
	}
	if s.State() != StateRunning || s.Score() != 0 {
		t.Errorf("new session state=%v score=%d", s.State(), s.Score())
	}
}

func TestSessionGroundEndsRound(t *testing.T) {
	s, sound := newTestSession(t, config.DefaultSealConfig(), 1)
	s.player.Position.Y = 470
	s.player.VelocityY = 10

	if state := s.Step(core.NewInputFrame()); state != StateOver {
		t.Fatalf("state = %v, expected over after reaching y=480", state)
	}
	if sound.hits != 1 {
		t.Errorf("hit sound played %d times, expected 1", sound.hits)
	}
	if s.Frame().Sprite != SpriteHit {
		t.Errorf("sprite = %v, expected hit", s.Frame().Sprite)
	}

	// Over is terminal.
	ticks := s.Ticks()
	y := s.Player().Position.Y
	s.Step(core.NewInputFrame())
	if s.Ticks() != ticks || s.Player().Position.Y != y {
		t.Error("session should not advance once over")
	}
	if sound.hits != 1 {
		t.Error("hit sound should play only once")
	}
}

func TestSessionBounceSound(t *testing.T) {
	s, sound := newTestSession(t, config.DefaultSealConfig(), 1)

	in := core.NewInputFrame()
	in.Set(core.ActionBounce)
	s.Step(in)

	if sound.bounces != 1 {
		t.Errorf("bounce sound played %d times, expected 1", sound.bounces)
	}
	if v := s.Player().VelocityY; v != -8 {
		t.Errorf("VelocityY = %v, expected -8", v)
	}
	if s.Frame().Sprite != SpriteBounce {
		t.Errorf("sprite = %v, expected bounce", s.Frame().Sprite)
	}

	// A bounce above the top edge is silent.
	s.player.Position.Y = -5
	s.Step(in)
	if sound.bounces != 1 {
		t.Errorf("ignored bounce should be silent, got %d sounds", sound.bounces)
	}
}

func TestSessionFallsToGroundWithoutInput(t *testing.T) {
	s, _ := newTestSession(t, config.DefaultSealConfig(), 99)

	for s.State() == StateRunning {
		s.Step(core.NewInputFrame())
		if s.Ticks() > 1000 {
			t.Fatal("round never ended")
		}
	}

	// 240 -> apex 204 at tick 9, terminal velocity at tick 19 (y=259), then +10 per tick.
	if s.Ticks() != 42 {
		t.Errorf("round ended at tick %d, expected 42", s.Ticks())
	}
	if y := s.Player().Position.Y; y < 480 {
		t.Errorf("round ended at y=%v, expected ground", y)
	}
	if s.Score() != s.Stream().Retired() {
		t.Errorf("score %d != retired %d", s.Score(), s.Stream().Retired())
	}
}

func TestSessionScoresRetiredPairs(t *testing.T) {
	cfg := config.DefaultSealConfig()
	s, _ := newTestSession(t, cfg, 3)
	// Put the leading pair just before the retire threshold, out of the player's way.
	s.stream.pairs[0] = pairAt(-125)
	s.stream.leadFired = true

	s.Step(core.NewInputFrame())

	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1", s.Score())
	}
	if s.Stream().Len() != 1 {
		t.Errorf("stream length = %d, expected 1", s.Stream().Len())
	}
}

func TestSessionStreamInvariant(t *testing.T) {
	cfg := config.DefaultSealConfig()
	// A hairline hit range keeps the seal alive so the stream cycles many times.
	cfg.Obstacles.HitRange = 0.0001
	cfg.Sprites.Player.Width = 47
	s, _ := newTestSession(t, cfg, 5)

	// Bouncing every 17 ticks nets zero vertical movement.
	input := &periodicInput{n: 17}
	for i := 0; i < 3000; i++ {
		if s.Step(input.Poll()) == StateOver {
			t.Fatalf("seal died at tick %d (y=%v)", s.Ticks(), s.Player().Position.Y)
		}
		st := s.Stream()
		if st.Len() == 0 {
			t.Fatalf("stream empty at tick %d", s.Ticks())
		}
		if st.Len() != cfg.Obstacles.InitialPairs+st.Spawned()-st.Retired() {
			t.Fatalf("tick %d: len %d != %d + %d - %d",
				s.Ticks(), st.Len(), cfg.Obstacles.InitialPairs, st.Spawned(), st.Retired())
		}
		if s.Score() != st.Retired() {
			t.Fatalf("tick %d: score %d != retired %d", s.Ticks(), s.Score(), st.Retired())
		}
	}

	if s.Score() == 0 {
		t.Error("expected some pairs to be passed in 3000 ticks")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Result {
		s, _ := newTestSession(t, config.DefaultSealConfig(), 12345)
		res, err := Loop{Input: &periodicInput{n: 9}, MaxTicks: 5000}.Run(context.Background(), s)
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return res
	}

	r1, r2 := run(), run()
	if r1 != r2 {
		t.Errorf("same seed and inputs gave %+v and %+v", r1, r2)
	}
}
