package seal

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// State is the lifecycle of a single round.
type State int

const (
	StateRunning State = iota
	StateOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// SoundPlayer plays fire-and-forget sound effects.
type SoundPlayer interface {
	PlayBounce()
	PlayHit()
}

// NopSound is a SoundPlayer that plays nothing.
type NopSound struct{}

func (NopSound) PlayBounce() {}
func (NopSound) PlayHit()    {}

// Frame is everything a renderer needs to draw one tick. Coordinates are game pixels.
type Frame struct {
	Screen       core.Size
	Tops         []core.Vec
	Bottoms      []core.Vec
	ObstacleSize core.Size
	Player       core.Vec
	PlayerSize   core.Size
	Sprite       Sprite
	Score        int
	State        State
}

// Session is one round of play. It owns the player and the obstacle stream;
// once Over it ignores further ticks and must be replaced to play again.
type Session struct {
	cfg      config.SealConfig
	kin      Kinematics
	detector Detector
	gen      *Generator
	sound    SoundPlayer

	player Player
	stream *Stream
	sprite Sprite

	score int
	ticks int
	state State
}

// NewSession validates cfg and lays out a fresh round.
// A nil sound player is replaced with NopSound.
func NewSession(cfg config.SealConfig, rng Rand, sound SoundPlayer) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seal: %w", err)
	}
	if rng == nil {
		return nil, errors.New("seal: random source is required")
	}
	if sound == nil {
		sound = NopSound{}
	}

	gen := NewGenerator(rng, cfg)

	firstX := cfg.Screen.Width + cfg.Obstacles.FirstPairLead
	initial := make([]Obstacle, cfg.Obstacles.InitialPairs)
	for i := range initial {
		initial[i] = gen.At(firstX + float64(i)*cfg.Obstacles.InitialSpacing)
	}

	return &Session{
		cfg:      cfg,
		kin:      KinematicsFrom(cfg),
		detector: DetectorFrom(cfg),
		gen:      gen,
		sound:    sound,
		player: Player{
			Position:  core.Vec{X: cfg.PlayerX(), Y: cfg.PlayerStartY()},
			Size:      core.Size{W: cfg.Sprites.Player.Width, H: cfg.Sprites.Player.Height},
			VelocityY: cfg.Physics.InitialVelocity,
		},
		stream: NewStream(initial...),
		sprite: SpriteIdle,
		state:  StateRunning,
	}, nil
}

// Step advances the round by one tick: input, kinematics, obstacles, collision.
func (s *Session) Step(in core.InputFrame) State {
	if s.state == StateOver {
		return s.state
	}

	if in.Has(core.ActionBounce) && s.player.ApplyBounce(s.kin) {
		s.sound.PlayBounce()
	}
	s.sprite = s.player.Tick(s.kin)

	s.stream.Advance(s.cfg.Physics.ScrollSpeed)
	s.stream.MaybeSpawn(s.cfg.Obstacles.SpawnGap, s.gen.Next)
	if s.stream.MaybeRetire(s.cfg.RetireX()) {
		s.score++
	}
	s.ticks++

	if s.detector.IsGameOver(s.player.Position, s.player.Size, s.stream.Tops(), s.stream.Bottoms()) {
		s.sound.PlayHit()
		s.sprite = SpriteHit
		s.state = StateOver
	}
	return s.state
}

// Score returns the number of obstacle pairs passed.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of ticks simulated.
func (s *Session) Ticks() int {
	return s.ticks
}

// State returns the round's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Stream returns the obstacle stream.
func (s *Session) Stream() *Stream {
	return s.stream
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.SealConfig {
	return s.cfg
}

// Frame snapshots the session for a renderer.
func (s *Session) Frame() Frame {
	return Frame{
		Screen:       core.Size{W: s.cfg.Screen.Width, H: s.cfg.Screen.Height},
		Tops:         s.stream.Tops(),
		Bottoms:      s.stream.Bottoms(),
		ObstacleSize: s.detector.ObstacleSize,
		Player:       s.player.Position,
		PlayerSize:   s.player.Size,
		Sprite:       s.sprite,
		Score:        s.score,
		State:        s.state,
	}
}
