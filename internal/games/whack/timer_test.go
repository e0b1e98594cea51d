package whack

import (
	"testing"
	"time"
)

func TestTimerTick(t *testing.T) {
	tests := []struct {
		name      string
		duration  time.Duration
		deltas    []time.Duration
		remaining time.Duration
		expired   bool
	}{
		{"no ticks", 10 * time.Second, nil, 10 * time.Second, false},
		{"partial", 10 * time.Second, []time.Duration{3 * time.Second}, 7 * time.Second, false},
		{"exact", 2 * time.Second, []time.Duration{time.Second, time.Second}, 0, true},
		{"overshoot clamps", 2 * time.Second, []time.Duration{5 * time.Second}, 0, true},
		{"negative delta ignored", 2 * time.Second, []time.Duration{-time.Second}, 2 * time.Second, false},
		{"zero duration", 0, nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(tt.duration)
			for _, d := range tt.deltas {
				timer.Tick(d)
			}
			if timer.Remaining() != tt.remaining {
				t.Errorf("Remaining = %v, want %v", timer.Remaining(), tt.remaining)
			}
			if timer.IsExpired() != tt.expired {
				t.Errorf("IsExpired = %v, want %v", timer.IsExpired(), tt.expired)
			}
			if timer.Remaining() < 0 {
				t.Error("Remaining must never be negative")
			}
		})
	}
}

func TestTimerElapsedStopsAtZero(t *testing.T) {
	timer := NewTimer(time.Second)
	timer.Tick(3 * time.Second)

	if timer.Elapsed() != time.Second {
		t.Errorf("Elapsed = %v, want 1s", timer.Elapsed())
	}
	if timer.Fraction() != 0 {
		t.Errorf("Fraction = %v, want 0", timer.Fraction())
	}
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(time.Second)
	timer.Tick(time.Second)
	timer.Reset(5 * time.Second)

	if timer.IsExpired() {
		t.Error("Timer should not be expired after Reset")
	}
	if timer.Remaining() != 5*time.Second || timer.Elapsed() != 0 {
		t.Errorf("After Reset: remaining %v elapsed %v", timer.Remaining(), timer.Elapsed())
	}
	if timer.Fraction() != 1 {
		t.Errorf("Fraction = %v, want 1", timer.Fraction())
	}
}
