package seal

import (
	"github.com/vovakirdan/bouncing-seal/internal/config"
	"github.com/vovakirdan/bouncing-seal/internal/core"
)

// Rand is the random source used for obstacle placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is one iceberg pair sharing a vertical gap.
// Both anchors are sprite top-left corners and always share x.
type Obstacle struct {
	Top    core.Vec
	Bottom core.Vec
}

// X returns the pair's horizontal position.
func (o Obstacle) X() float64 {
	return o.Top.X
}

// shift moves the pair horizontally by dx.
func (o *Obstacle) shift(dx float64) {
	o.Top.X += dx
	o.Bottom.X += dx
}

// Generate places a new obstacle pair at spawnX.
//
// The bottom iceberg's top edge lands at gapY, drawn from
// [offset, offset + int(screenHeight - 1.2*offset)) with offset = screenHeight/3.
// The top iceberg hangs above the screen so that its lower edge sits offset
// pixels above gapY.
func Generate(rng Rand, screenHeight, obstacleHeight, spawnX float64) Obstacle {
	offset := screenHeight / 3
	gapY := offset + float64(rng.Intn(int(screenHeight-1.2*offset)))

	return Obstacle{
		Top:    core.Vec{X: spawnX, Y: -(obstacleHeight - gapY + offset)},
		Bottom: core.Vec{X: spawnX, Y: gapY},
	}
}

// Generator produces obstacle pairs for one session.
type Generator struct {
	rng            Rand
	screenHeight   float64
	obstacleHeight float64
	spawnX         float64
}

// NewGenerator creates a generator bound to the session's configuration.
func NewGenerator(rng Rand, cfg config.SealConfig) *Generator {
	return &Generator{
		rng:            rng,
		screenHeight:   cfg.Screen.Height,
		obstacleHeight: cfg.Sprites.Obstacle.Height,
		spawnX:         cfg.SpawnX(),
	}
}

// Next returns a fresh pair at the configured spawn position.
func (g *Generator) Next() Obstacle {
	return g.At(g.spawnX)
}

// At returns a fresh pair at x. Used to lay out the initial pairs.
func (g *Generator) At(x float64) Obstacle {
	return Generate(g.rng, g.screenHeight, g.obstacleHeight, x)
}
