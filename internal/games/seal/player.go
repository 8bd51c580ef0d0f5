package seal

import (
	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// Sprite selects which player image the renderer draws.
type Sprite int

const (
	SpriteIdle Sprite = iota
	SpriteBounce
	SpriteHit
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteIdle:
		return "idle"
	case SpriteBounce:
		return "bounce"
	case SpriteHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Kinematics holds the vertical motion constants, in pixels per tick.
type Kinematics struct {
	AccelerationY   float64
	MaxFallVelocity float64
	BounceVelocity  float64
}

// KinematicsFrom extracts the motion constants from cfg.
func KinematicsFrom(cfg config.SealConfig) Kinematics {
	return Kinematics{
		AccelerationY:   cfg.Physics.AccelerationY,
		MaxFallVelocity: cfg.Physics.MaxFallVelocity,
		BounceVelocity:  cfg.Physics.BounceVelocity,
	}
}

// Player is the seal. Only Position.Y and VelocityY change during a round.
type Player struct {
	Position  core.Vec
	Size      core.Size
	VelocityY float64

	// Bouncing is set by a bounce and consumed by the next Tick.
	Bouncing bool
}

// ApplyBounce sets the bounce velocity if the player is still below the top edge.
// Returns false when the input is ignored.
func (p *Player) ApplyBounce(k Kinematics) bool {
	if p.Position.Y <= 0 {
		return false
	}
	p.VelocityY = k.BounceVelocity
	p.Bouncing = true
	return true
}

// Tick integrates one step of motion and returns the sprite for this frame.
// Gravity is skipped on the tick a bounce was applied and stops accumulating
// once VelocityY reaches MaxFallVelocity.
func (p *Player) Tick(k Kinematics) Sprite {
	if p.VelocityY < k.MaxFallVelocity && !p.Bouncing {
		p.VelocityY += k.AccelerationY
	}

	sprite := SpriteIdle
	if p.Bouncing {
		sprite = SpriteBounce
		p.Bouncing = false
	}

	p.Position.Y += p.VelocityY
	return sprite
}
