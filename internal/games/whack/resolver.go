package whack

import "fmt"

// Outcome is the result of a whack.
type Outcome int

const (
	OutcomeHit Outcome = iota
	OutcomeMiss
)

// String returns "hit" or "miss".
func (o Outcome) String() string {
	if o == OutcomeHit {
		return "hit"
	}
	return "miss"
}

// PenaltyState carries extra spawns owed for misses until the spawner
// consumes them on the next tick.
type PenaltyState struct {
	PendingExtraSpawns uint32
}

// Resolver turns a whack at a tile into a hit or a miss.
type Resolver struct {
	penalty uint32
}

// NewResolver creates a resolver adding penalty extra spawns per miss.
func NewResolver(penalty int) *Resolver {
	return &Resolver{penalty: uint32(max(0, penalty))}
}

// Penalty returns the number of extra spawns owed per miss.
func (r *Resolver) Penalty() uint32 {
	return r.penalty
}

// ResolveAction whacks tile i. An occupied tile is a hit: the mole goes
// down and the tracker adds points. An empty tile is a miss: the tracker
// records it and the penalty grows. An out-of-range index changes nothing
// and returns ErrInvalidIndex.
func (r *Resolver) ResolveAction(b *Board, i int, score *ScoreTracker, penalty *PenaltyState) (Outcome, error) {
	if err := b.checkIndex(i); err != nil {
		return OutcomeMiss, fmt.Errorf("resolve: %w", err)
	}

	if b.IsOccupied(i) {
		_ = b.Lower(i)
		score.RecordHit()
		return OutcomeHit, nil
	}

	score.RecordMiss()
	penalty.PendingExtraSpawns += r.penalty
	return OutcomeMiss, nil
}
