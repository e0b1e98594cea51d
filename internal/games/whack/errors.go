package whack

import "errors"

// Errors returned by the game engine. Callers match them with errors.Is;
// returned errors wrap these with the offending index or phase.
var (
	// ErrInvalidIndex reports a tile index outside the board. It indicates a
	// caller bug such as a malformed input event; the event should be discarded.
	ErrInvalidIndex = errors.New("whack: invalid tile index")

	// ErrAlreadyOccupied reports an attempt to raise a mole that is already up.
	ErrAlreadyOccupied = errors.New("whack: tile already occupied")

	// ErrRoundNotRunning reports an action outside a running round.
	ErrRoundNotRunning = errors.New("whack: round not running")
)

// ErrRoundStarted reports a Start call on a round that already started.
// A finished round must be Reset first.
var ErrRoundStarted = errors.New("whack: round already started")
