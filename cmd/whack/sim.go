package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/events"
	"github.com/vovakirdan/tui-whack/internal/games/whack"
	"github.com/vovakirdan/tui-whack/internal/registry"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

var (
	flagSimRounds   int
	flagSimAccuracy float64
	flagSimReaction int
	flagSimMode     string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless rounds with a scripted player",
	Long: `Play rounds without a screen using a scripted player and print the
session results. Useful for tuning a config: the bot reacts to a mole after
--reaction ticks and hits it with probability --accuracy, otherwise it taps
an empty hole.

Examples:
  whack sim
  whack sim --rounds 50 --accuracy 0.6 --difficulty hard
  whack sim --mode survival --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRounds, "rounds", 10, "Number of rounds to play")
	simCmd.Flags().Float64Var(&flagSimAccuracy, "accuracy", 0.8, "Chance the bot hits the mole it aims at (0-1)")
	simCmd.Flags().IntVar(&flagSimReaction, "reaction", 20, "Ticks the bot waits before each tap")
	simCmd.Flags().StringVar(&flagSimMode, "mode", "timed", "Game mode: timed or survival")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagSimRounds < 1 {
		return fmt.Errorf("--rounds must be at least 1")
	}
	if flagSimAccuracy < 0 || flagSimAccuracy > 1 {
		return fmt.Errorf("--accuracy must be between 0 and 1")
	}

	gameID, err := modeID(flagSimMode)
	if err != nil {
		return err
	}
	game, err := newGame(gameID, "")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer store.Close()

	cfg := runtimeConfig()
	recorder := events.NewRecorder(store, gameID, logger)
	dispatcher := events.NewDispatcher()
	dispatcher.SubscribeAll(recorder)
	dispatcher.SubscribeAll(events.Log(logger, gameID))

	base := cfg.Seed
	for i := 0; i < flagSimRounds; i++ {
		cfg.Seed = base + int64(i)
		game.Reset(cfg)
		simulateRound(game, newBot(cfg.Seed, flagSimAccuracy, flagSimReaction), dispatcher)
	}

	return printSession(os.Stdout, store, gameID)
}

// bot is a scripted player. It waits a fixed number of ticks between taps
// and aims at a random mole.
type bot struct {
	rng      *rand.Rand
	accuracy float64
	reaction int
	wait     int
}

func newBot(seed int64, accuracy float64, reaction int) *bot {
	if reaction < 1 {
		reaction = 1
	}
	return &bot{
		rng:      rand.New(rand.NewSource(seed)),
		accuracy: accuracy,
		reaction: reaction,
		wait:     reaction,
	}
}

// next returns the bot's input for the coming tick.
func (b *bot) next(snap whack.Snapshot) core.InputFrame {
	switch snap.Phase {
	case whack.PhaseNotStarted:
		return core.NewInputFrame(core.Press(core.ActionStart))
	case whack.PhaseEnded:
		return core.InputFrame{}
	}

	b.wait--
	if b.wait > 0 {
		return core.InputFrame{}
	}

	var up, down []int
	for i, t := range snap.Tiles {
		if t.Occupied {
			up = append(up, i)
		} else {
			down = append(down, i)
		}
	}
	if len(up) == 0 {
		// Nothing to aim at yet
		b.wait = 1
		return core.InputFrame{}
	}
	b.wait = b.reaction

	if b.rng.Float64() < b.accuracy || len(down) == 0 {
		return core.NewInputFrame(core.Tap(up[b.rng.Intn(len(up))]))
	}
	return core.NewInputFrame(core.Tap(down[b.rng.Intn(len(down))]))
}

// simulateRound plays one round to the end and dispatches its events.
// It returns the number of ticks played.
func simulateRound(game *whack.Game, b *bot, d *events.Dispatcher) int {
	maxTicks := roundTickLimit(game.Config().RoundDuration(), game.TickDuration())

	ticks := 0
	for ; ticks < maxTicks; ticks++ {
		snap := game.Snapshot()
		if snap.Phase == whack.PhaseEnded {
			break
		}
		res := game.Step(b.next(snap))
		d.DispatchAll(res.Events)
	}
	return ticks
}

// roundTickLimit bounds a simulated round at twice the ticks its timer
// needs to run out.
func roundTickLimit(duration, tick time.Duration) int {
	if tick <= 0 {
		tick = time.Millisecond
	}
	return 2*int(duration/tick) + 2
}

var (
	simHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	simCellStyle   = lipgloss.NewStyle()
	simSumStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// printSession writes the session rounds as a table followed by a summary.
func printSession(w io.Writer, store *storage.Store, gameID string) error {
	rounds, err := store.Rounds(gameID)
	if err != nil {
		return err
	}
	sum, err := store.Summarize(gameID)
	if err != nil {
		return err
	}

	widths := []int{4, 8, 6, 8, 8, 12, 8}
	row := func(style lipgloss.Style, cells ...string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i]).Render(c)
		}
		return strings.Join(parts, " ")
	}

	var b strings.Builder
	if info, ok := registry.Lookup(gameID); ok {
		b.WriteString(simHeaderStyle.Render(info.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(row(simHeaderStyle, "#", "Points", "Hits", "Misses", "Escapes", "End", "Time"))
	b.WriteByte('\n')
	for i, r := range rounds {
		b.WriteString(row(simCellStyle,
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Points),
			fmt.Sprintf("%d", r.Hits),
			fmt.Sprintf("%d", r.Misses),
			fmt.Sprintf("%d", r.Escapes),
			r.Reason,
			r.Duration.Round(100*time.Millisecond).String(),
		))
		b.WriteByte('\n')
	}
	b.WriteString(simSumStyle.Render(fmt.Sprintf(
		"%d rounds  best %d  accuracy %.0f%%", sum.Rounds, sum.Best, sum.Accuracy()*100)))
	b.WriteByte('\n')

	_, err = io.WriteString(w, b.String())
	return err
}
