package core

import "time"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventRoundStart EventKind = iota
	EventSpawn
	EventHit
	EventMiss
	EventEscape
	EventRoundEnd
	EventInputRejected
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventRoundStart:
		return "round_start"
	case EventSpawn:
		return "spawn"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventEscape:
		return "escape"
	case EventRoundEnd:
		return "round_end"
	case EventInputRejected:
		return "input_rejected"
	default:
		return "unknown"
	}
}

// Event is emitted by a game for the platform's collaborators
// (audio, logging). Consumers must not feed anything back into the game.
type Event struct {
	Kind   EventKind
	Tile   int           // Tile index for spawn/hit/miss/escape; -1 otherwise
	Points int64         // Score after the event
	At     time.Duration // Round time when the event happened
	Detail string        // Free-form detail (end reason, rejection error)
}
