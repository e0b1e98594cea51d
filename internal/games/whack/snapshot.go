package whack

import "time"

// Snapshot is a read-only view of the game for renderers, tests and replays.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Phase     Phase
	Reason    EndReason
	Elapsed   time.Duration
	Remaining time.Duration
	Fraction  float64 // Share of the round remaining
	Tiles     []Tile
	Columns   int
	Score     Score
	Pending   uint32
	Cursor    int
	Level     float64
	Interval  time.Duration
	Paused    bool
	Marks     map[int]Outcome // Tiles showing a recent hit/miss marker
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.round.State()

	marks := make(map[int]Outcome, len(g.fx))
	for _, f := range g.fx {
		marks[f.tile] = f.outcome
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Phase:     st.Phase,
		Reason:    st.Reason,
		Elapsed:   st.Elapsed,
		Remaining: st.Remaining,
		Fraction:  g.round.TimerFraction(),
		Tiles:     g.round.Tiles(),
		Columns:   g.round.Board().Columns(),
		Score:     g.round.Score(),
		Pending:   g.round.Pending(),
		Cursor:    g.cursor,
		Level:     g.round.Level(),
		Interval:  g.round.Interval(),
		Paused:    g.paused,
		Marks:     marks,
	}
}

// Occupied returns the number of moles up in the snapshot.
func (s Snapshot) Occupied() int {
	n := 0
	for _, t := range s.Tiles {
		if t.Occupied {
			n++
		}
	}
	return n
}
