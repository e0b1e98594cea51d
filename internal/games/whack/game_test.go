package whack

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-whack/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Configure(testConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := range 120 {
		var in core.InputFrame
		switch {
		case i == 0:
			in = core.NewInputFrame(core.Press(core.ActionStart))
		case i%7 == 0:
			in = core.NewInputFrame(core.Tap(i % 9))
		case i%11 == 0:
			in = core.NewInputFrame(core.Press(core.ActionRight), core.Press(core.ActionWhack))
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Cursor != s2.Cursor || s1.Pending != s2.Pending {
		t.Errorf("Snapshot mismatch: %+v vs %+v", s1, s2)
	}
	for i := range s1.Tiles {
		if s1.Tiles[i] != s2.Tiles[i] {
			t.Fatalf("Tile %d mismatch: %+v vs %+v", i, s1.Tiles[i], s2.Tiles[i])
		}
	}
}

func TestTapStartsRound(t *testing.T) {
	g := newTestGame(1)
	if g.Snapshot().Phase != PhaseNotStarted {
		t.Fatalf("Expected NotStarted after Reset")
	}

	// Ticks before the start do nothing
	g.Step(core.InputFrame{})
	if g.Snapshot().Elapsed != 0 {
		t.Error("Timer advanced before the round started")
	}

	res := g.Step(core.NewInputFrame(core.Tap(0)))
	if g.Snapshot().Phase != PhaseRunning {
		t.Fatalf("Expected Running after first tap, got %v", g.Snapshot().Phase)
	}
	if !hasEvent(res.Events, core.EventRoundStart) || !hasEvent(res.Events, core.EventSpawn) {
		t.Errorf("Expected round_start and spawn events, got %v", res.Events)
	}
	if g.Snapshot().Score != (Score{}) {
		t.Error("The starting tap must not count as a whack")
	}
}

func TestTapResolvesTile(t *testing.T) {
	g := newTestGame(3)
	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))

	mole := firstTile(g.Round(), true)
	res := g.Step(core.NewInputFrame(core.Tap(mole)))

	if !hasEvent(res.Events, core.EventHit) {
		t.Errorf("Expected hit event, got %v", res.Events)
	}
	if res.State.Score != 10 {
		t.Errorf("Expected score 10, got %d", res.State.Score)
	}
	if g.Cursor() != mole {
		t.Errorf("Cursor should follow the tap, got %d want %d", g.Cursor(), mole)
	}
	if g.Snapshot().Marks[mole] != OutcomeHit {
		t.Error("Expected a hit marker on the whacked tile")
	}
}

func TestInvalidTapRejected(t *testing.T) {
	g := newTestGame(3)
	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))
	before := g.Snapshot()

	res := g.Step(core.NewInputFrame(core.Tap(99)))

	if !hasEvent(res.Events, core.EventInputRejected) {
		t.Fatalf("Expected input_rejected event, got %v", res.Events)
	}
	after := g.Snapshot()
	if after.Score != before.Score || after.Pending != before.Pending {
		t.Errorf("Rejected input changed state: %+v -> %+v", before.Score, after.Score)
	}
	if after.Phase != PhaseRunning {
		t.Error("Rejected input must not end the round")
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(1)
	if g.Cursor() != 4 {
		t.Fatalf("Expected cursor at center tile 4, got %d", g.Cursor())
	}

	tests := []struct {
		action core.Action
		want   int
	}{
		{core.ActionUp, 1},
		{core.ActionUp, 1}, // top edge
		{core.ActionLeft, 0},
		{core.ActionLeft, 0}, // left edge
		{core.ActionDown, 3},
		{core.ActionDown, 6},
		{core.ActionDown, 6}, // bottom edge
		{core.ActionRight, 7},
		{core.ActionRight, 8},
		{core.ActionRight, 8}, // right edge, no wrap
	}

	for i, tt := range tests {
		g.Step(core.NewInputFrame(core.Press(tt.action)))
		if g.Cursor() != tt.want {
			t.Errorf("step %d (%v): cursor = %d, want %d", i, tt.action, g.Cursor(), tt.want)
		}
	}
}

func TestPauseStopsTime(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))
	g.Step(core.InputFrame{})

	res := g.Step(core.NewInputFrame(core.Press(core.ActionPause)))
	if !res.State.Paused {
		t.Fatal("Expected game to be paused")
	}
	elapsed := g.Snapshot().Elapsed

	for range 10 {
		g.Step(core.NewInputFrame(core.Tap(0)))
	}
	snap := g.Snapshot()
	if snap.Elapsed != elapsed {
		t.Errorf("Time advanced while paused: %v -> %v", elapsed, snap.Elapsed)
	}
	if snap.Score.Hits+snap.Score.Misses != 0 {
		t.Error("Taps must be ignored while paused")
	}

	// Unpausing takes effect from the next tick
	g.Step(core.NewInputFrame(core.Press(core.ActionPause)))
	g.Step(core.InputFrame{})
	if g.Snapshot().Elapsed <= elapsed {
		t.Error("Expected time to advance after unpausing")
	}
}

func TestPauseAppliedInFrameOrder(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))

	// A tap before the pause counts, a tap after it does not
	mole := firstTile(g.Round(), true)
	empty := firstTile(g.Round(), false)
	res := g.Step(core.NewInputFrame(core.Tap(mole), core.Press(core.ActionPause), core.Tap(empty)))
	if !res.State.Paused {
		t.Fatal("Expected game to be paused")
	}
	if s := g.Snapshot().Score; s.Hits != 1 || s.Misses != 0 {
		t.Errorf("Expected only the tap before the pause to count, got %+v", s)
	}

	// Two presses in one frame cancel out
	res = g.Step(core.NewInputFrame(core.Press(core.ActionPause), core.Press(core.ActionPause)))
	if !res.State.Paused {
		t.Error("Expected a double press to leave the game paused")
	}
}

func TestRestartCancelsRunningRound(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))
	g.Step(core.NewInputFrame(core.Tap(firstTile(g.Round(), true))))

	res := g.Step(core.NewInputFrame(core.Press(core.ActionRestart)))

	var end *core.Event
	for i := range res.Events {
		if res.Events[i].Kind == core.EventRoundEnd {
			end = &res.Events[i]
		}
	}
	if end == nil {
		t.Fatal("Expected round_end when restarting a running round")
	}
	if end.Detail != string(EndCancelled) || end.Points != 10 {
		t.Errorf("Expected cancelled end with 10 points, got %+v", *end)
	}

	snap := g.Snapshot()
	if snap.Phase != PhaseNotStarted || snap.Score != (Score{}) || snap.Occupied() != 0 {
		t.Errorf("Expected a fresh round, got %v %+v with %d moles", snap.Phase, snap.Score, snap.Occupied())
	}
}

func TestCancel(t *testing.T) {
	g := newTestGame(1)
	if evs := g.Cancel(); len(evs) != 0 {
		t.Errorf("Cancel before the round started emitted %v", evs)
	}

	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))
	g.Step(core.NewInputFrame(core.Press(core.ActionPause)))

	evs := g.Cancel()
	if !hasEvent(evs, core.EventRoundEnd) {
		t.Fatalf("Expected round_end from Cancel, got %v", evs)
	}
	snap := g.Snapshot()
	if snap.Phase != PhaseEnded || snap.Reason != EndCancelled || snap.Paused {
		t.Errorf("Expected unpaused cancelled end, got %v/%q paused=%v", snap.Phase, snap.Reason, snap.Paused)
	}
	if evs := g.Cancel(); len(evs) != 0 {
		t.Errorf("Second Cancel emitted %v", evs)
	}
}

func TestRestartAfterRoundEnd(t *testing.T) {
	cfg := testConfig()
	cfg.Round.Duration = 0.5
	g := New()
	g.Configure(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})

	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))
	var ended bool
	for range 60 {
		res := g.Step(core.InputFrame{})
		if hasEvent(res.Events, core.EventRoundEnd) {
			if ended {
				t.Fatal("round_end reported twice")
			}
			ended = true
		}
	}
	if !ended || !g.State().GameOver {
		t.Fatal("Expected the round to end")
	}

	// Restart only resets; the player starts the next round
	g.Step(core.NewInputFrame(core.Press(core.ActionRestart)))
	snap := g.Snapshot()
	if snap.Phase != PhaseNotStarted || snap.Score != (Score{}) {
		t.Errorf("Expected fresh round after restart, got %v %+v", snap.Phase, snap.Score)
	}
}

func TestSurvivalMode(t *testing.T) {
	cfg := testConfig()
	cfg.Board.GridSize = 4
	g := NewSurvival()
	g.Configure(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})

	if g.ID() != "whack_survival" {
		t.Errorf("ID = %q", g.ID())
	}
	if !g.Config().Round.EndOnFullBoard {
		t.Error("Survival mode must end on a full board")
	}

	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))
	for range 10 {
		g.Step(core.InputFrame{})
	}
	snap := g.Snapshot()
	if snap.Phase != PhaseEnded || snap.Reason != EndBoardFull {
		t.Errorf("Expected board_full end, got %v/%q", snap.Phase, snap.Reason)
	}
}

func TestRenderAndTileAt(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Points: 0") {
		t.Errorf("HUD missing points: %q", scr.Row(0))
	}

	for i := range 9 {
		x, y := g.layout[i].Center()
		if got := g.TileAt(x, y); got != i {
			t.Errorf("TileAt center of tile %d = %d", i, got)
		}
	}
	if got := g.TileAt(0, 0); got != -1 {
		t.Errorf("TileAt on HUD = %d, want -1", got)
	}

	// Too small for the grid: no tiles to click
	small := core.NewScreen(12, 6)
	g.Render(small)
	if got := g.TileAt(5, 4); got != -1 {
		t.Errorf("TileAt on tiny screen = %d, want -1", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	if !strings.Contains(scr.String(), "Press Space to start") {
		t.Error("Expected start prompt before the round")
	}

	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))
	g.Cancel()
	g.Render(scr)
	if !strings.Contains(scr.String(), "Round cancelled") {
		t.Error("Expected end overlay after the round")
	}
}

func TestRenderMoleOverMarker(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame(core.Press(core.ActionStart)))

	// Miss a hole, then bring a mole up in that same hole
	empty := firstTile(g.Round(), false)
	g.Step(core.NewInputFrame(core.Tap(empty)))
	if _, ok := g.Snapshot().Marks[empty]; !ok {
		t.Fatalf("Expected a miss marker on tile %d", empty)
	}
	g.Round().Board().Clear()
	if err := g.Round().Board().Raise(empty, 0); err != nil {
		t.Fatalf("Raise failed: %v", err)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	r := g.layout[empty]
	_, cy := r.Center()
	row := string([]rune(scr.Row(cy))[r.X:r.Right()])
	if !strings.Contains(row, moleFace) && !strings.Contains(row, moleFaceMin) {
		t.Errorf("Expected the mole in tile %d, got %q", empty, row)
	}
	if strings.Contains(row, "miss") {
		t.Errorf("Miss marker drawn over a mole: %q", row)
	}
}
