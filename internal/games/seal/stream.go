package seal

import "github.com/vovakirdan/bouncing-seal/internal/core"

// Stream is the ordered set of active obstacle pairs, oldest (leftmost) first.
type Stream struct {
	pairs []Obstacle

	// leadFired records whether the current leading pair already triggered a spawn.
	leadFired bool

	spawned int
	retired int
}

// NewStream creates a stream holding the given pairs in screen order.
func NewStream(initial ...Obstacle) *Stream {
	s := &Stream{pairs: make([]Obstacle, 0, len(initial)+2)}
	s.pairs = append(s.pairs, initial...)
	return s
}

// Advance moves every pair left by dx.
func (s *Stream) Advance(dx float64) {
	for i := range s.pairs {
		s.pairs[i].shift(-dx)
	}
}

// MaybeSpawn appends one pair from next when the leading pair reaches the
// (0, spawnGap] trigger window. It fires once per leading pair: the first
// tick its x is at or below spawnGap.
//
// The window is deliberately extended to every x <= spawnGap, including
// x <= 0. A scroll step wider than the window can carry the leading pair
// from above spawnGap to zero or below in one tick; it then spawns on that
// tick, at whatever x it landed on, instead of never spawning at all.
func (s *Stream) MaybeSpawn(spawnGap float64, next func() Obstacle) bool {
	if len(s.pairs) == 0 || s.leadFired {
		return false
	}
	if s.pairs[0].X() > spawnGap {
		return false
	}
	s.pairs = append(s.pairs, next())
	s.leadFired = true
	s.spawned++
	return true
}

// MaybeRetire removes the leading pair once its x drops below threshold.
// At most one pair is removed per call. Returns true when a pair was passed.
func (s *Stream) MaybeRetire(threshold float64) bool {
	if len(s.pairs) == 0 || s.pairs[0].X() >= threshold {
		return false
	}
	copy(s.pairs, s.pairs[1:])
	s.pairs = s.pairs[:len(s.pairs)-1]
	s.leadFired = false
	s.retired++
	return true
}

// Len returns the number of active pairs.
func (s *Stream) Len() int {
	return len(s.pairs)
}

// Pairs returns the active pairs. The slice must not be modified.
func (s *Stream) Pairs() []Obstacle {
	return s.pairs
}

// Tops returns the top iceberg anchors in screen order.
func (s *Stream) Tops() []core.Vec {
	tops := make([]core.Vec, len(s.pairs))
	for i, p := range s.pairs {
		tops[i] = p.Top
	}
	return tops
}

// Bottoms returns the bottom iceberg anchors in screen order.
func (s *Stream) Bottoms() []core.Vec {
	bottoms := make([]core.Vec, len(s.pairs))
	for i, p := range s.pairs {
		bottoms[i] = p.Bottom
	}
	return bottoms
}

// Spawned returns how many pairs MaybeSpawn has appended.
func (s *Stream) Spawned() int {
	return s.spawned
}

// Retired returns how many pairs MaybeRetire has removed.
func (s *Stream) Retired() int {
	return s.retired
}
