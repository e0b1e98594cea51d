package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/audio"
	"github.com/vovakirdan/tui-whack/internal/platform/tui"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

var (
	flagMode string
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls:
  Arrows/WASD  - Move the cursor
  Space        - Whack the hole under the cursor (also starts the round)
  1-9 / click  - Whack a hole directly
  P/Esc        - Pause
  R            - Abandon the running round, or reset after it ended
  M            - Mute the bell
  Q/Ctrl+C     - Quit

Modes:
  timed     - Score as much as you can before the timer runs out
  survival  - Same, but the round also ends when every hole has a mole

Difficulty options:
  easy   - Longer round, slower moles, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Shorter round, misses cost points and bring two extra moles
  fixed  - No progression, stays at config's initial level

Examples:
  whack play
  whack play --mode survival
  whack play --difficulty hard
  whack play --config ./my-whack.yaml --log-file whack.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "timed", "Game mode: timed or survival")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Do not ring the terminal bell")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := modeID(flagMode)
	if err != nil {
		return err
	}

	game, err := newGame(gameID, "")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	// Session history lives in memory for this process only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open session store", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	bell := audio.NewBell(os.Stderr)
	bell.SetMuted(flagMute)

	rec, played, err := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Sound:  bell,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if played {
		fmt.Printf("Last round: %d points (%d hits, %d misses) - %s\n",
			rec.Points, rec.Hits, rec.Misses, rec.Reason)
		if n, err := store.Count(gameID); err == nil && n > 1 {
			fmt.Printf("Rounds played this session: %d\n", n)
		}
	}
	return nil
}
