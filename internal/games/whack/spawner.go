package whack

import "time"

// Source supplies random numbers to the spawner. *math/rand.Rand satisfies
// it; tests can plug in a scripted source.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Spawner raises moles on unoccupied tiles.
type Spawner struct {
	rng       Source
	baseCount int
}

// NewSpawner creates a spawner that raises baseCount moles per update.
func NewSpawner(rng Source, baseCount int) *Spawner {
	return &Spawner{rng: rng, baseCount: max(0, baseCount)}
}

// BaseCount returns the number of moles raised per update without penalty.
func (s *Spawner) BaseCount() int {
	return s.baseCount
}

// Update raises baseCount + *pending moles, capped at the number of free
// tiles, picking uniformly at random among the free tiles. It zeroes
// *pending and returns the raised indices in the order they came up.
func (s *Spawner) Update(b *Board, pending *uint32, now time.Duration) []int {
	want := s.baseCount
	if pending != nil {
		want += int(*pending)
		*pending = 0
	}

	free := b.FreePositions()
	want = min(want, len(free))
	if want == 0 {
		return nil
	}

	// Partial Fisher-Yates: the first want entries become a uniform sample.
	raised := make([]int, 0, want)
	for i := range want {
		j := i + s.rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]

		// Cannot fail: the index came from FreePositions.
		_ = b.Raise(free[i], now)
		raised = append(raised, free[i])
	}
	return raised
}
