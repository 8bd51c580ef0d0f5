package seal

import (
	"testing"

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

func TestDetectorIsGameOver(t *testing.T) {
	d := DetectorFrom(config.DefaultSealConfig())
	size := core.Size{W: 48, H: 40}
	// Player at x=128 has its center at 152; an iceberg at x has its center at x+40.
	player := core.Vec{X: 128, Y: 100} // vertical midpoint 120

	tests := []struct {
		name     string
		pos      core.Vec
		tops     []core.Vec
		bottoms  []core.Vec
		expected bool
	}{
		{
			name:     "ground",
			pos:      core.Vec{X: 128, Y: 480},
			expected: true,
		},
		{
			name:     "below ground",
			pos:      core.Vec{X: 128, Y: 495},
			expected: true,
		},
		{
			name:     "just above ground",
			pos:      core.Vec{X: 128, Y: 479},
			expected: false,
		},
		{
			name:     "inside top iceberg extent, 49px away",
			pos:      player,
			tops:     []core.Vec{{X: 161, Y: -150}},
			expected: true,
		},
		{
			name:     "inside top iceberg extent, 51px away",
			pos:      player,
			tops:     []core.Vec{{X: 163, Y: -150}},
			expected: false,
		},
		{
			name:     "inside top iceberg extent, exactly 50px away",
			pos:      player,
			tops:     []core.Vec{{X: 162, Y: -150}},
			expected: false,
		},
		{
			name:     "inside top iceberg extent, 49px to the left",
			pos:      player,
			tops:     []core.Vec{{X: 63, Y: -150}},
			expected: true,
		},
		{
			name:     "below top iceberg",
			pos:      player,
			tops:     []core.Vec{{X: 112, Y: -250}}, // lower edge at 70
			expected: false,
		},
		{
			name:     "overlapping bottom iceberg",
			pos:      player,
			bottoms:  []core.Vec{{X: 112, Y: 110}},
			expected: true,
		},
		{
			name:     "overlapping bottom iceberg, 51px away",
			pos:      player,
			bottoms:  []core.Vec{{X: 61, Y: 110}},
			expected: false,
		},
		{
			name:     "in the gap",
			pos:      player,
			tops:     []core.Vec{{X: 112, Y: -220}}, // lower edge at 100
			bottoms:  []core.Vec{{X: 112, Y: 260}},
			expected: false,
		},
		{
			name: "only a later pair collides",
			pos:  player,
			tops: []core.Vec{{X: 600, Y: -150}, {X: 112, Y: -150}},
			bottoms: []core.Vec{
				{X: 600, Y: 330}, {X: 112, Y: 330},
			},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.IsGameOver(tc.pos, size, tc.tops, tc.bottoms)
			if got != tc.expected {
				t.Errorf("IsGameOver() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
