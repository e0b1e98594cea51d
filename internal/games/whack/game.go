package whack

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeTimed ends the round when the timer runs out.
	ModeTimed Mode = "timed"
	// ModeSurvival also ends the round as soon as every hole has a mole.
	ModeSurvival Mode = "survival"
)

// feedbackTicks is how long a hit or miss marker stays on a tile.
const feedbackTicks = 12

type feedback struct {
	tile    int
	outcome Outcome
	ticks   int
}

// Game adapts a Round to the arcade platform: fixed-step ticks, cursor
// and tap input, rendering and pause.
type Game struct {
	mode  Mode
	cfg   config.WhackConfig
	rng   *rand.Rand
	round *Round
	tick  uint64

	tickDur time.Duration
	cursor  int
	paused  bool
	fx      []feedback

	// Screen dimensions and the tile rectangles of the last render
	screenW int
	screenH int
	layout  []core.Rect
}

// New creates a timed Whack game with the default configuration.
func New() *Game {
	return &Game{mode: ModeTimed, cfg: config.DefaultWhackConfig()}
}

// NewSurvival creates a survival Whack game with the default configuration.
func NewSurvival() *Game {
	return &Game{mode: ModeSurvival, cfg: config.DefaultWhackConfig()}
}

func init() {
	registry.Register("whack", func() registry.Game {
		return New()
	})
	registry.Register("whack_survival", func() registry.Game {
		return NewSurvival()
	})
}

// Configure replaces the game configuration. It takes effect on the next Reset.
func (g *Game) Configure(cfg config.WhackConfig) {
	g.cfg = cfg
}

// Config returns the configuration in use, including mode overrides.
func (g *Game) Config() config.WhackConfig {
	cfg := g.cfg
	if g.mode == ModeSurvival {
		cfg.Round.EndOnFullBoard = true
	}
	return cfg
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSurvival {
		return "whack_survival"
	}
	return "whack"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSurvival {
		return "Whack! (Survival)"
	}
	return "Whack!"
}

// Reset initializes/restarts the game. The round waits in NotStarted
// until the player starts it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.round = NewRound(g.Config(), g.rng)
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.paused = false
	g.fx = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout = nil
	g.cursor = g.round.Board().Size() / 2
}

// Step advances the game by one tick and then applies the frame's inputs.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Pause presses in this frame take effect from the next tick
	var events []core.Event
	if !g.paused {
		g.round.Tick(g.tickDur)
		g.ageFeedback()
		events = append(events, g.round.DrainEvents()...)
	}

	for _, ev := range in.Events {
		events = append(events, g.apply(ev)...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// apply handles one input event and returns the events it caused.
func (g *Game) apply(ev core.InputEvent) []core.Event {
	switch ev.Action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		g.moveCursor(ev.Action)
	case core.ActionStart:
		g.start()
	case core.ActionWhack:
		if g.round.Phase() == PhaseNotStarted {
			g.start()
		} else {
			return g.whack(g.cursor)
		}
	case core.ActionTap:
		if g.round.Phase() == PhaseNotStarted {
			g.start()
		} else {
			return g.whack(ev.Tile)
		}
	case core.ActionPause:
		if g.round.Phase() == PhaseRunning {
			g.paused = !g.paused
		}
	case core.ActionRestart:
		switch g.round.Phase() {
		case PhaseRunning:
			events := g.Cancel()
			g.round.Reset()
			g.fx = nil
			return events
		case PhaseEnded:
			g.round.Reset()
			g.fx = nil
		}
	}
	return g.round.DrainEvents()
}

// Cancel ends a running round with reason cancelled and returns the events
// it caused. It does nothing outside a running round.
func (g *Game) Cancel() []core.Event {
	if g.round.Phase() != PhaseRunning {
		return nil
	}
	g.round.Cancel()
	g.paused = false
	return g.round.DrainEvents()
}

func (g *Game) start() {
	if g.round.Phase() != PhaseNotStarted {
		return
	}
	_ = g.round.Start()
	g.paused = false
}

// whack resolves a whack at tile i. Bad indices are discarded and reported
// as an input_rejected event.
func (g *Game) whack(i int) []core.Event {
	if g.paused {
		return nil
	}

	outcome, err := g.round.Whack(i)
	switch {
	case errors.Is(err, ErrInvalidIndex):
		return []core.Event{{
			Kind:   core.EventInputRejected,
			Tile:   i,
			Points: g.round.Score().Points,
			At:     g.round.State().Elapsed,
			Detail: err.Error(),
		}}
	case err != nil:
		// Round not running: the tap arrived after the round ended.
		return nil
	}

	g.cursor = i
	g.fx = append(g.fx, feedback{tile: i, outcome: outcome, ticks: feedbackTicks})
	return g.round.DrainEvents()
}

func (g *Game) moveCursor(a core.Action) {
	size := g.round.Board().Size()
	cols := g.round.Board().Columns()
	if size == 0 {
		return
	}

	next := g.cursor
	switch a {
	case core.ActionUp:
		next -= cols
	case core.ActionDown:
		next += cols
	case core.ActionLeft:
		if g.cursor%cols > 0 {
			next--
		}
	case core.ActionRight:
		if g.cursor%cols < cols-1 {
			next++
		}
	}

	if next >= 0 && next < size {
		g.cursor = next
	}
}

func (g *Game) ageFeedback() {
	kept := g.fx[:0]
	for _, f := range g.fx {
		f.ticks--
		if f.ticks > 0 {
			kept = append(kept, f)
		}
	}
	g.fx = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.round.Score().Points),
		GameOver: g.round.Phase() == PhaseEnded,
		Paused:   g.paused,
	}
}

// Round exposes the underlying round for read-only inspection.
func (g *Game) Round() *Round {
	return g.round
}

// TickDuration returns the fixed simulation step set by Reset.
func (g *Game) TickDuration() time.Duration {
	return g.tickDur
}

// Cursor returns the tile under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// TileAt returns the tile drawn at screen cell (x, y) during the last
// Render, or -1.
func (g *Game) TileAt(x, y int) int {
	for i, r := range g.layout {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
