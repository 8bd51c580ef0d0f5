package seal

import (
	"math"

	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// Detector decides whether the round has ended.
//
// The hitbox is a horizontal band: the player's vertical midpoint is tested
// against an iceberg's vertical extent, but only while the two sprite centers
// are closer than HitRange horizontally.
type Detector struct {
	ScreenHeight float64
	ObstacleSize core.Size
	HitRange     float64
}

// DetectorFrom builds a detector from cfg.
func DetectorFrom(cfg config.SealConfig) Detector {
	return Detector{
		ScreenHeight: cfg.Screen.Height,
		ObstacleSize: core.Size{W: cfg.Sprites.Obstacle.Width, H: cfg.Sprites.Obstacle.Height},
		HitRange:     cfg.Obstacles.HitRange,
	}
}

// IsGameOver reports a ground hit or contact with any top or bottom iceberg.
func (d Detector) IsGameOver(pos core.Vec, size core.Size, tops, bottoms []core.Vec) bool {
	if pos.Y >= d.ScreenHeight {
		return true
	}

	mid := pos.Y + size.H/2
	centerX := pos.X + size.W/2

	for _, o := range tops {
		if mid < o.Y+d.ObstacleSize.H && d.near(centerX, o) {
			return true
		}
	}
	for _, o := range bottoms {
		if mid > o.Y && d.near(centerX, o) {
			return true
		}
	}
	return false
}

func (d Detector) near(playerCenterX float64, o core.Vec) bool {
	return math.Abs(playerCenterX-(o.X+d.ObstacleSize.W/2)) < d.HitRange
}
