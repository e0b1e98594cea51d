package whack

import "time"

// Timer is the round countdown. It never fails: bad inputs are clamped.
type Timer struct {
	duration  time.Duration
	remaining time.Duration
	elapsed   time.Duration
}

// NewTimer creates a timer set to d.
func NewTimer(d time.Duration) *Timer {
	t := &Timer{}
	t.Reset(d)
	return t
}

// Reset reinitializes the timer for a new round.
func (t *Timer) Reset(d time.Duration) {
	d = max(0, d)
	t.duration = d
	t.remaining = d
	t.elapsed = 0
}

// Tick advances the timer by delta. Remaining time is clamped at zero and
// negative deltas count as zero.
func (t *Timer) Tick(delta time.Duration) {
	delta = max(0, delta)
	if delta > t.remaining {
		delta = t.remaining
	}
	t.remaining -= delta
	t.elapsed += delta
}

// IsExpired reports whether the remaining time has reached zero.
func (t *Timer) IsExpired() bool {
	return t.remaining == 0
}

// Remaining returns the time left in the round.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Elapsed returns the time played so far.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured round length.
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Fraction returns the share of the round still remaining, in [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration == 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.duration)
}
