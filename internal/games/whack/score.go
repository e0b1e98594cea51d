package whack

// Score is the read-only result of a round.
type Score struct {
	Hits    uint32
	Misses  uint32
	Escapes uint32 // Moles that retreated before being hit
	Points  int64
}

// Accuracy returns hits / (hits + misses), or 0 before any whack.
func (s Score) Accuracy() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// ScoreTracker accumulates a round's score. It is the only writer of Score.
type ScoreTracker struct {
	hitPoints  int64
	missPoints int64
	score      Score
}

// NewScoreTracker creates a tracker awarding hitPoints per hit and
// deducting missPoints per miss (0 for no deduction).
func NewScoreTracker(hitPoints, missPoints int64) *ScoreTracker {
	return &ScoreTracker{hitPoints: hitPoints, missPoints: max(0, missPoints)}
}

// RecordHit counts a hit and adds the hit value.
func (t *ScoreTracker) RecordHit() {
	t.score.Hits++
	t.score.Points += t.hitPoints
}

// RecordMiss counts a miss and applies the configured deduction.
func (t *ScoreTracker) RecordMiss() {
	t.score.Misses++
	t.score.Points -= t.missPoints
}

// RecordEscape counts a mole that went back down unhit.
func (t *ScoreTracker) RecordEscape() {
	t.score.Escapes++
}

// Snapshot returns the current score without changing it.
func (t *ScoreTracker) Snapshot() Score {
	return t.score
}

// Reset zeroes the score for a new round.
func (t *ScoreTracker) Reset() {
	t.score = Score{}
}
