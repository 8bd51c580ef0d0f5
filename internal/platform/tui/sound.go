package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/bouncing-seal/internal/games/seal"
)

// bell is the ASCII BEL control character.
const bell = "\a"

// BellSound plays sound effects as terminal bells.
// The hit always rings; the bounce rings only when bounce is set.
type BellSound struct {
	mu     sync.Mutex
	w      io.Writer
	bounce bool
}

// NewBellSound creates a bell player writing to w.
func NewBellSound(w io.Writer, bounce bool) *BellSound {
	return &BellSound{w: w, bounce: bounce}
}

// NewSound picks the sound player for a session. mute silences everything;
// bounceBell additionally rings on every bounce.
func NewSound(w io.Writer, mute, bounceBell bool) seal.SoundPlayer {
	if mute {
		return seal.NopSound{}
	}
	return NewBellSound(w, bounceBell)
}

// PlayBounce rings the bell if bounce sounds are enabled.
func (b *BellSound) PlayBounce() {
	if b.bounce {
		b.ring()
	}
}

// PlayHit rings the bell.
func (b *BellSound) PlayHit() {
	b.ring()
}

func (b *BellSound) ring() {
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort, a lost bell is harmless
	io.WriteString(b.w, bell)
}
