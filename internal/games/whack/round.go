package whack

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
)

// Phase is the round state machine: NotStarted -> Running -> Ended.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason explains why a round ended.
type EndReason string

const (
	EndNone      EndReason = ""
	EndTimeout   EndReason = "timeout"
	EndBoardFull EndReason = "board_full"
	EndCancelled EndReason = "cancelled"
)

// RoundState is the timing part of a round snapshot.
type RoundState struct {
	Phase     Phase
	Reason    EndReason
	Elapsed   time.Duration
	Remaining time.Duration
	Active    bool
}

// Round owns all mutable state of one play session: board, timer, score
// and miss penalty. It is driven by a single control loop and is not safe
// for concurrent use.
type Round struct {
	cfg        config.WhackConfig
	board      *Board
	timer      *Timer
	spawner    *Spawner
	resolver   *Resolver
	score      *ScoreTracker
	penalty    PenaltyState
	difficulty *config.DifficultyManager

	phase      Phase
	reason     EndReason
	sinceSpawn time.Duration
	events     []core.Event
}

// NewRound creates a round in the NotStarted phase.
func NewRound(cfg config.WhackConfig, rng Source) *Round {
	r := &Round{
		cfg:        cfg,
		board:      NewBoard(cfg.Board.GridSize),
		timer:      NewTimer(cfg.RoundDuration()),
		spawner:    NewSpawner(rng, cfg.Spawn.BaseCount),
		resolver:   NewResolver(cfg.Scoring.MissPenalty),
		score:      NewScoreTracker(cfg.Scoring.HitPoints, cfg.Scoring.MissPoints),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	return r
}

// Start enters the Running phase: the timer restarts and the first
// moles come up immediately.
func (r *Round) Start() error {
	if r.phase != PhaseNotStarted {
		return fmt.Errorf("%w: phase %s", ErrRoundStarted, r.phase)
	}

	r.board = NewBoard(r.cfg.Board.GridSize)
	r.timer.Reset(r.cfg.RoundDuration())
	r.score.Reset()
	r.penalty = PenaltyState{}
	r.sinceSpawn = 0
	r.phase = PhaseRunning
	r.emit(core.EventRoundStart, -1, "")

	r.spawn()
	r.checkFullBoard()
	return nil
}

// Tick advances a running round by delta, in fixed order: timer, expired
// moles, spawner. Outside the Running phase it does nothing.
func (r *Round) Tick(delta time.Duration) {
	if r.phase != PhaseRunning {
		return
	}

	r.timer.Tick(delta)
	if r.timer.IsExpired() {
		r.end(EndTimeout)
		return
	}

	r.retreatExpired()

	r.sinceSpawn += max(0, delta)
	if r.penalty.PendingExtraSpawns > 0 || r.sinceSpawn >= r.Interval() {
		r.spawn()
	}
	r.checkFullBoard()
}

// Whack resolves a whack at tile i. It fails with ErrRoundNotRunning
// outside a running round and with ErrInvalidIndex for a bad index;
// neither changes any state.
func (r *Round) Whack(i int) (Outcome, error) {
	if r.phase != PhaseRunning {
		return OutcomeMiss, fmt.Errorf("%w: phase %s", ErrRoundNotRunning, r.phase)
	}

	outcome, err := r.resolver.ResolveAction(r.board, i, r.score, &r.penalty)
	if err != nil {
		return outcome, err
	}

	if outcome == OutcomeHit {
		r.emit(core.EventHit, i, "")
	} else {
		r.emit(core.EventMiss, i, "")
	}
	return outcome, nil
}

// Cancel ends a running round early.
func (r *Round) Cancel() {
	if r.phase == PhaseRunning {
		r.end(EndCancelled)
	}
}

// Reset discards the round and returns to NotStarted.
func (r *Round) Reset() {
	r.board = NewBoard(r.cfg.Board.GridSize)
	r.timer.Reset(r.cfg.RoundDuration())
	r.score.Reset()
	r.penalty = PenaltyState{}
	r.sinceSpawn = 0
	r.phase = PhaseNotStarted
	r.reason = EndNone
}

// Interval returns the current time between spawn cycles.
func (r *Round) Interval() time.Duration {
	return r.difficulty.Interval(r.cfg.MaxInterval(), r.cfg.MinInterval(), r.score.Snapshot().Points, r.timer.Elapsed())
}

// Level returns the current difficulty level in [0, 1].
func (r *Round) Level() float64 {
	return r.difficulty.Level(r.score.Snapshot().Points, r.timer.Elapsed())
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// State returns the round timing snapshot.
func (r *Round) State() RoundState {
	return RoundState{
		Phase:     r.phase,
		Reason:    r.reason,
		Elapsed:   r.timer.Elapsed(),
		Remaining: r.timer.Remaining(),
		Active:    r.phase == PhaseRunning,
	}
}

// Score returns the score so far.
func (r *Round) Score() Score {
	return r.score.Snapshot()
}

// Pending returns the extra spawns owed for misses.
func (r *Round) Pending() uint32 {
	return r.penalty.PendingExtraSpawns
}

// Tiles returns a copy of the board tiles.
func (r *Round) Tiles() []Tile {
	return r.board.Tiles()
}

// Board returns the board for read-only inspection.
func (r *Round) Board() *Board {
	return r.board
}

// TimerFraction returns the share of the round still remaining.
func (r *Round) TimerFraction() float64 {
	return r.timer.Fraction()
}

// DrainEvents returns and clears the events emitted since the last drain.
func (r *Round) DrainEvents() []core.Event {
	ev := r.events
	r.events = nil
	return ev
}

func (r *Round) spawn() {
	raised := r.spawner.Update(r.board, &r.penalty.PendingExtraSpawns, r.timer.Elapsed())
	r.sinceSpawn = 0
	for _, i := range raised {
		r.emit(core.EventSpawn, i, "")
	}
}

func (r *Round) retreatExpired() {
	lifetime := r.cfg.MoleLifetime()
	if lifetime <= 0 {
		return
	}
	now := r.timer.Elapsed()
	for i := range r.board.Size() {
		if r.board.IsOccupied(i) && r.board.Age(i, now) >= lifetime {
			_ = r.board.Lower(i)
			r.score.RecordEscape()
			r.emit(core.EventEscape, i, "")
		}
	}
}

func (r *Round) checkFullBoard() {
	if r.cfg.Round.EndOnFullBoard && r.phase == PhaseRunning && r.board.IsFull() {
		r.end(EndBoardFull)
	}
}

func (r *Round) end(reason EndReason) {
	r.phase = PhaseEnded
	r.reason = reason
	r.emit(core.EventRoundEnd, -1, string(reason))
}

func (r *Round) emit(kind core.EventKind, tile int, detail string) {
	r.events = append(r.events, core.Event{
		Kind:   kind,
		Tile:   tile,
		Points: r.score.Snapshot().Points,
		At:     r.timer.Elapsed(),
		Detail: detail,
	})
}
