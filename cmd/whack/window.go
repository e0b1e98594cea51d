package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/platform/window"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

var (
	flagWindowMode string
	flagWindowMute bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the mouse.

Controls:
  Click / 1-9  - Whack a hole
  Arrows/WASD  - Move the cursor, Space to whack it
  P/Esc        - Pause
  R            - Abandon the running round, or reset after it ended
  M            - Mute
  Q            - Quit

Examples:
  whack window
  whack window --mode survival --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowMode, "mode", "timed", "Game mode: timed or survival")
	windowCmd.Flags().BoolVar(&flagWindowMute, "mute", false, "Start without sound")
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameID, err := modeID(flagWindowMode)
	if err != nil {
		return err
	}

	game, err := newGame(gameID, "")
	if err != nil {
		return err
	}

	// The window does not own the terminal, so logs can go to stderr
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open session store", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	logger.Info("opening window", "game", gameID, "seed", cfg.Seed)

	if err := window.Run(game, cfg, window.Options{
		Store:  store,
		Logger: logger,
		Sound:  !flagWindowMute,
	}); err != nil {
		return err
	}

	if store != nil {
		if sum, err := store.Summarize(gameID); err == nil && sum.Rounds > 0 {
			logger.Info("session finished", "rounds", sum.Rounds, "best", sum.Best, "accuracy", sum.Accuracy())
		}
	}
	return nil
}
