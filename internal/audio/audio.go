// Package audio plays short cues for game events. Players are
// fire-and-forget: Play never blocks the game loop and never fails.
package audio

import (
	"io"

	"github.com/vovakirdan/tui-whack/internal/core"
)

// Player plays the cue for an event kind, if it has one.
type Player interface {
	Play(kind core.EventKind)
}

// Nop is a silent player.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.EventKind) {}

// Bell rings the terminal bell. It only rings for the events a player
// needs to notice without looking: misses and the end of a round.
type Bell struct {
	w     io.Writer
	muted bool
}

// NewBell creates a bell writing to w (usually the terminal).
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play rings the bell for misses and round ends.
func (b *Bell) Play(kind core.EventKind) {
	if b == nil || b.muted || b.w == nil {
		return
	}
	switch kind {
	case core.EventMiss, core.EventRoundEnd:
		_, _ = io.WriteString(b.w, "\a")
	}
}

// SetMuted silences or restores the bell.
func (b *Bell) SetMuted(muted bool) {
	b.muted = muted
}

// Muted reports whether the bell is silenced.
func (b *Bell) Muted() bool {
	return b.muted
}
