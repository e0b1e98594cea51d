package whack

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
)

const tick = time.Second / 60

// testConfig spawns on every tick with no difficulty curve.
func testConfig() config.WhackConfig {
	cfg := config.DefaultWhackConfig()
	cfg.Board.GridSize = 9
	cfg.Round.Duration = 10
	cfg.Round.EndOnFullBoard = false
	cfg.Spawn.BaseCount = 1
	cfg.Spawn.MaxInterval = 0
	cfg.Spawn.MinInterval = 0
	cfg.Spawn.MoleLifetime = 0
	cfg.Scoring.HitPoints = 10
	cfg.Scoring.MissPoints = 0
	cfg.Scoring.MissPenalty = 1
	cfg.Difficulty.Enabled = false
	return cfg
}

func firstTile(r *Round, occupied bool) int {
	for i, t := range r.Tiles() {
		if t.Occupied == occupied {
			return i
		}
	}
	return -1
}

func TestRoundStart(t *testing.T) {
	r := NewRound(testConfig(), rand.New(rand.NewSource(1)))
	if r.Phase() != PhaseNotStarted {
		t.Fatalf("Expected NotStarted, got %v", r.Phase())
	}

	if err := r.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if r.Phase() != PhaseRunning {
		t.Errorf("Expected Running, got %v", r.Phase())
	}
	if r.Board().OccupiedCount() != 1 {
		t.Errorf("Expected initial spawn of 1 mole, got %d", r.Board().OccupiedCount())
	}

	events := r.DrainEvents()
	if len(events) != 2 || events[0].Kind != core.EventRoundStart || events[1].Kind != core.EventSpawn {
		t.Errorf("Expected round_start then spawn, got %v", events)
	}

	if err := r.Start(); !errors.Is(err, ErrRoundStarted) {
		t.Errorf("Expected ErrRoundStarted on second Start, got %v", err)
	}
}

func TestRoundMissPenaltyScenario(t *testing.T) {
	// grid 9, base 1, penalty 1, hit 10
	r := NewRound(testConfig(), rand.New(rand.NewSource(42)))
	if err := r.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	empty := firstTile(r, false)
	outcome, err := r.Whack(empty)
	if err != nil || outcome != OutcomeMiss {
		t.Fatalf("Expected miss on empty tile, got %v, %v", outcome, err)
	}
	if r.Pending() != 1 {
		t.Errorf("Expected 1 pending extra spawn, got %d", r.Pending())
	}
	if s := r.Score(); s.Misses != 1 || s.Points != 0 {
		t.Errorf("Expected 1 miss / 0 points, got %+v", s)
	}

	r.Tick(tick)
	if got := r.Board().OccupiedCount(); got != 3 {
		t.Errorf("Expected 1 + 2 moles after penalty tick, got %d", got)
	}
	if r.Pending() != 0 {
		t.Errorf("Expected pending consumed, got %d", r.Pending())
	}

	full := firstTile(r, true)
	outcome, err = r.Whack(full)
	if err != nil || outcome != OutcomeHit {
		t.Fatalf("Expected hit on occupied tile, got %v, %v", outcome, err)
	}
	if s := r.Score(); s.Hits != 1 || s.Points != 10 {
		t.Errorf("Expected 1 hit / 10 points, got %+v", s)
	}
	if r.Board().IsOccupied(full) {
		t.Error("Expected whacked mole to go down")
	}
}

func TestRoundHitThenMissScenario(t *testing.T) {
	// grid 9, base 1, penalty 1, hit 10, spawning every tick
	r := NewRound(testConfig(), rand.New(rand.NewSource(7)))
	if err := r.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := r.Board().OccupiedCount(); got != 1 {
		t.Fatalf("Expected 1 mole after start, got %d", got)
	}

	outcome, err := r.Whack(firstTile(r, true))
	if err != nil || outcome != OutcomeHit {
		t.Fatalf("Expected hit, got %v, %v", outcome, err)
	}
	if s := r.Score(); s.Points != 10 || s.Hits != 1 {
		t.Errorf("Expected 10 points / 1 hit, got %+v", s)
	}
	if got := r.Board().OccupiedCount(); got != 0 {
		t.Errorf("Expected empty board after the hit, got %d", got)
	}

	r.Tick(tick)
	if got := r.Board().OccupiedCount(); got != 1 {
		t.Fatalf("Expected exactly 1 mole raised on the next tick, got %d", got)
	}

	outcome, err = r.Whack(firstTile(r, false))
	if err != nil || outcome != OutcomeMiss {
		t.Fatalf("Expected miss, got %v, %v", outcome, err)
	}
	if s := r.Score(); s.Misses != 1 || s.Points != 10 {
		t.Errorf("Expected 1 miss / 10 points, got %+v", s)
	}
	if r.Pending() != 1 {
		t.Errorf("Expected 1 pending extra spawn, got %d", r.Pending())
	}

	r.Tick(tick)
	if got := r.Board().OccupiedCount(); got != 3 {
		t.Errorf("Expected 2 more moles after the miss tick (3 total), got %d", got)
	}
	if r.Pending() != 0 {
		t.Errorf("Expected pending consumed, got %d", r.Pending())
	}
}

func TestRoundInvalidWhack(t *testing.T) {
	r := NewRound(testConfig(), rand.New(rand.NewSource(1)))
	_ = r.Start()
	before := r.Tiles()

	if _, err := r.Whack(42); !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("Expected ErrInvalidIndex, got %v", err)
	}
	if r.Score() != (Score{}) || r.Pending() != 0 {
		t.Errorf("Invalid whack changed state: score %+v pending %d", r.Score(), r.Pending())
	}
	for i, tile := range r.Tiles() {
		if tile != before[i] {
			t.Fatalf("Invalid whack changed tile %d", i)
		}
	}
}

func TestRoundEndsOnTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.Round.Duration = 1
	r := NewRound(cfg, rand.New(rand.NewSource(3)))
	_ = r.Start()
	r.DrainEvents()

	r.Tick(2 * time.Second)
	st := r.State()
	if st.Phase != PhaseEnded || st.Reason != EndTimeout {
		t.Fatalf("Expected ended by timeout, got %v/%q", st.Phase, st.Reason)
	}
	if st.Remaining != 0 || st.Active {
		t.Errorf("Expected remaining 0 and inactive, got %+v", st)
	}

	events := r.DrainEvents()
	if len(events) != 1 || events[0].Kind != core.EventRoundEnd || events[0].Detail != "timeout" {
		t.Errorf("Expected a single round_end event, got %v", events)
	}
}

func TestRoundEndedIsFrozen(t *testing.T) {
	cfg := testConfig()
	cfg.Round.Duration = 1
	r := NewRound(cfg, rand.New(rand.NewSource(5)))
	_ = r.Start()
	r.Tick(time.Second)
	if r.Phase() != PhaseEnded {
		t.Fatalf("Expected Ended, got %v", r.Phase())
	}

	tiles := r.Tiles()
	score := r.Score()
	elapsed := r.State().Elapsed
	r.DrainEvents()

	for i := range 9 {
		if _, err := r.Whack(i); !errors.Is(err, ErrRoundNotRunning) {
			t.Fatalf("Whack(%d) after end: expected ErrRoundNotRunning, got %v", i, err)
		}
	}
	for range 30 {
		r.Tick(tick)
	}

	if r.Score() != score {
		t.Errorf("Score changed after end: %+v -> %+v", score, r.Score())
	}
	if r.State().Elapsed != elapsed {
		t.Errorf("Timer advanced after end")
	}
	for i, tile := range r.Tiles() {
		if tile != tiles[i] {
			t.Fatalf("Tile %d changed after end", i)
		}
	}
	if ev := r.DrainEvents(); len(ev) != 0 {
		t.Errorf("Expected no events after end, got %v", ev)
	}
}

func TestRoundWhackBeforeStart(t *testing.T) {
	r := NewRound(testConfig(), rand.New(rand.NewSource(1)))
	if _, err := r.Whack(0); !errors.Is(err, ErrRoundNotRunning) {
		t.Errorf("Expected ErrRoundNotRunning, got %v", err)
	}
	r.Tick(time.Second)
	if r.Board().OccupiedCount() != 0 || r.State().Elapsed != 0 {
		t.Error("Tick before Start must not change the round")
	}
}

func TestRoundSpawnCadence(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.MaxInterval = 1
	cfg.Spawn.MinInterval = 1
	r := NewRound(cfg, rand.New(rand.NewSource(8)))
	_ = r.Start()

	r.Tick(500 * time.Millisecond)
	if got := r.Board().OccupiedCount(); got != 1 {
		t.Errorf("Expected no spawn before the interval, got %d moles", got)
	}
	r.Tick(500 * time.Millisecond)
	if got := r.Board().OccupiedCount(); got != 2 {
		t.Errorf("Expected a spawn at the interval, got %d moles", got)
	}

	// A miss forces a spawn on the next tick regardless of the interval
	_, _ = r.Whack(firstTile(r, false))
	r.Tick(tick)
	if got := r.Board().OccupiedCount(); got != 4 {
		t.Errorf("Expected penalty spawn of 2 moles, got %d total", got)
	}
}

func TestRoundMoleLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.MaxInterval = 10
	cfg.Spawn.MinInterval = 10
	cfg.Spawn.MoleLifetime = 0.5
	r := NewRound(cfg, rand.New(rand.NewSource(4)))
	_ = r.Start()
	r.DrainEvents()

	r.Tick(250 * time.Millisecond)
	if r.Board().OccupiedCount() != 1 {
		t.Fatal("Mole retreated too early")
	}

	r.Tick(250 * time.Millisecond)
	if r.Board().OccupiedCount() != 0 {
		t.Errorf("Expected mole to escape after its lifetime")
	}
	if r.Score().Escapes != 1 {
		t.Errorf("Expected 1 escape, got %d", r.Score().Escapes)
	}

	events := r.DrainEvents()
	if len(events) != 1 || events[0].Kind != core.EventEscape {
		t.Errorf("Expected a single escape event, got %v", events)
	}
}

func TestRoundSurvivalEndsOnFullBoard(t *testing.T) {
	cfg := testConfig()
	cfg.Board.GridSize = 4
	cfg.Spawn.BaseCount = 2
	cfg.Round.EndOnFullBoard = true
	r := NewRound(cfg, rand.New(rand.NewSource(6)))
	_ = r.Start()

	if r.Phase() != PhaseRunning {
		t.Fatalf("Expected Running with 2 of 4 holes filled, got %v", r.Phase())
	}

	r.Tick(tick)
	st := r.State()
	if st.Phase != PhaseEnded || st.Reason != EndBoardFull {
		t.Errorf("Expected ended with board_full, got %v/%q", st.Phase, st.Reason)
	}
}

func TestRoundTimedIgnoresFullBoard(t *testing.T) {
	cfg := testConfig()
	cfg.Board.GridSize = 4
	cfg.Spawn.BaseCount = 4
	r := NewRound(cfg, rand.New(rand.NewSource(6)))
	_ = r.Start()

	r.Tick(tick)
	if r.Phase() != PhaseRunning {
		t.Errorf("Timed round must keep running on a full board, got %v", r.Phase())
	}
}

func TestRoundCancelAndReset(t *testing.T) {
	r := NewRound(testConfig(), rand.New(rand.NewSource(2)))
	_ = r.Start()
	_, _ = r.Whack(firstTile(r, true))

	r.Cancel()
	if r.State().Reason != EndCancelled {
		t.Errorf("Expected cancelled, got %q", r.State().Reason)
	}

	r.Reset()
	if r.Phase() != PhaseNotStarted {
		t.Errorf("Expected NotStarted after Reset, got %v", r.Phase())
	}
	if r.Score() != (Score{}) || r.Board().OccupiedCount() != 0 {
		t.Error("Reset must clear score and board")
	}
	if err := r.Start(); err != nil {
		t.Errorf("Start after Reset failed: %v", err)
	}
}

func TestRoundDifficultyShortensInterval(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.MaxInterval = 1
	cfg.Spawn.MinInterval = 0.2
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "score", MaxAt: 20},
	}
	r := NewRound(cfg, rand.New(rand.NewSource(9)))
	_ = r.Start()

	if r.Interval() != time.Second {
		t.Errorf("Initial interval = %v, want 1s", r.Interval())
	}

	for range 2 {
		_, _ = r.Whack(firstTile(r, true))
		r.Tick(time.Second)
	}

	if r.Score().Points != 20 {
		t.Fatalf("Expected 20 points, got %d", r.Score().Points)
	}
	if r.Interval() != 200*time.Millisecond {
		t.Errorf("Interval at max difficulty = %v, want 200ms", r.Interval())
	}
}
