// Package config provides YAML-based configuration for the Bouncing Seal game:
// screen and sprite dimensions plus the tuning constants of the simulation.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned by Validate for malformed configuration.
var ErrInvalidConfig = errors.New("invalid config")

// SealConfig contains all configuration for one game session.
// All distances are pixels and all rates are per tick.
type SealConfig struct {
	Screen    Screen    `yaml:"screen"`
	Sprites   Sprites   `yaml:"sprites"`
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	TickRate  int       `yaml:"tick_rate"` // Ticks per second the constants are tuned for
}

// Screen is the logical playfield size.
type Screen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Sprites holds the on-screen sprite sizes used for collision and drawing.
type Sprites struct {
	Player   SpriteSize `yaml:"player"`
	Obstacle SpriteSize `yaml:"obstacle"`
}

// SpriteSize is a sprite's width and height after scaling.
type SpriteSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the player's vertical kinematics and the scroll speed.
type Physics struct {
	AccelerationY   float64 `yaml:"acceleration_y"`    // Gravity added per tick
	MaxFallVelocity float64 `yaml:"max_fall_velocity"` // Gravity stops accumulating at this speed
	BounceVelocity  float64 `yaml:"bounce_velocity"`   // Velocity set by a bounce (negative = up)
	InitialVelocity float64 `yaml:"initial_velocity"`  // Velocity at round start
	ScrollSpeed     float64 `yaml:"scroll_speed"`      // Leftward obstacle movement per tick
}

// Obstacles defines obstacle stream layout and the collision band.
type Obstacles struct {
	SpawnGap       float64 `yaml:"spawn_gap"`       // Width of the (0, spawn_gap] spawn trigger window
	SpawnLeadIn    float64 `yaml:"spawn_lead_in"`   // New pairs appear at screen width + lead-in
	FirstPairLead  float64 `yaml:"first_pair_lead"` // Initial pairs start at screen width + this
	InitialPairs   int     `yaml:"initial_pairs"`   // Pairs present when a round starts
	InitialSpacing float64 `yaml:"initial_spacing"` // Horizontal distance between initial pairs
	HitRange       float64 `yaml:"hit_range"`       // Horizontal center distance that counts as contact
}

// GapOffset is the vertical distance between the top obstacle's lower edge
// and the bottom obstacle's upper edge.
func (c SealConfig) GapOffset() float64 {
	return c.Screen.Height / 3
}

// GapRange is the number of distinct gap positions the generator draws from.
func (c SealConfig) GapRange() int {
	return int(c.Screen.Height - 1.2*c.GapOffset())
}

// SpawnX is the x coordinate at which new obstacle pairs appear.
func (c SealConfig) SpawnX() float64 {
	return c.Screen.Width + c.Obstacles.SpawnLeadIn
}

// RetireX is the x coordinate below which the leading pair is removed.
func (c SealConfig) RetireX() float64 {
	return -c.Screen.Width / 5
}

// PlayerX is the player's fixed horizontal position.
func (c SealConfig) PlayerX() float64 {
	return float64(int(c.Screen.Width / 5))
}

// PlayerStartY is the player's vertical position at round start.
func (c SealConfig) PlayerStartY() float64 {
	return float64(int(c.Screen.Height / 2))
}

// Validate reports the first malformed field, wrapped in ErrInvalidConfig.
// Values are never clamped.
func (c SealConfig) Validate() error {
	finite := []struct {
		name string
		val  float64
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"sprites.player.width", c.Sprites.Player.Width},
		{"sprites.player.height", c.Sprites.Player.Height},
		{"sprites.obstacle.width", c.Sprites.Obstacle.Width},
		{"sprites.obstacle.height", c.Sprites.Obstacle.Height},
		{"physics.acceleration_y", c.Physics.AccelerationY},
		{"physics.max_fall_velocity", c.Physics.MaxFallVelocity},
		{"physics.bounce_velocity", c.Physics.BounceVelocity},
		{"physics.initial_velocity", c.Physics.InitialVelocity},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
		{"obstacles.spawn_gap", c.Obstacles.SpawnGap},
		{"obstacles.spawn_lead_in", c.Obstacles.SpawnLeadIn},
		{"obstacles.first_pair_lead", c.Obstacles.FirstPairLead},
		{"obstacles.initial_spacing", c.Obstacles.InitialSpacing},
		{"obstacles.hit_range", c.Obstacles.HitRange},
	}
	for _, f := range finite {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("config: %w: %s must be a finite number, got %v", ErrInvalidConfig, f.name, f.val)
		}
	}

	positive := []struct {
		name string
		val  float64
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"sprites.player.width", c.Sprites.Player.Width},
		{"sprites.player.height", c.Sprites.Player.Height},
		{"sprites.obstacle.width", c.Sprites.Obstacle.Width},
		{"sprites.obstacle.height", c.Sprites.Obstacle.Height},
		{"physics.max_fall_velocity", c.Physics.MaxFallVelocity},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
		{"obstacles.spawn_gap", c.Obstacles.SpawnGap},
		{"obstacles.hit_range", c.Obstacles.HitRange},
		{"tick_rate", float64(c.TickRate)},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Physics.AccelerationY < 0 {
		return fmt.Errorf("config: %w: physics.acceleration_y must not be negative, got %v",
			ErrInvalidConfig, c.Physics.AccelerationY)
	}
	if c.Obstacles.InitialPairs < 1 {
		return fmt.Errorf("config: %w: obstacles.initial_pairs must be at least 1, got %d",
			ErrInvalidConfig, c.Obstacles.InitialPairs)
	}
	if c.Obstacles.InitialPairs > 1 && c.Obstacles.InitialSpacing <= 0 {
		return fmt.Errorf("config: %w: obstacles.initial_spacing must be positive, got %v",
			ErrInvalidConfig, c.Obstacles.InitialSpacing)
	}
	if c.GapRange() < 1 {
		return fmt.Errorf("config: %w: screen.height %v leaves no room for a gap",
			ErrInvalidConfig, c.Screen.Height)
	}
	return nil
}
