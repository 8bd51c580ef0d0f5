package config

import (
	_ "embed"
)

//go:embed defaults/seal.yaml
var defaultSealYAML []byte

// DefaultSealConfig returns the reference tuning: a 640x480 playfield at 30 ticks per second.
func DefaultSealConfig() SealConfig {
	return SealConfig{
		Screen: Screen{
			Width:  640,
			Height: 480,
		},
		Sprites: Sprites{
			Player:   SpriteSize{Width: 48, Height: 40},
			Obstacle: SpriteSize{Width: 80, Height: 320},
		},
		Physics: Physics{
			AccelerationY:   1,
			MaxFallVelocity: 10,
			BounceVelocity:  -8,
			InitialVelocity: -9,
			ScrollSpeed:     4,
		},
		Obstacles: Obstacles{
			SpawnGap:       5,
			SpawnLeadIn:    10,
			FirstPairLead:  200,
			InitialPairs:   2,
			InitialSpacing: 320,
			HitRange:       50,
		},
		TickRate: 30,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSealYAML
}
