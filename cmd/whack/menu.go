package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/audio"
	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/platform/tui"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change the difficulty,
Enter to play. After a game you return to the menu; Tab shows the rounds
played this session.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Play
  Tab          - Session results
  Q            - Quit

Examples:
  whack menu
  whack menu --fps 30
  whack menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	initial, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closeLog, err := newLogger(true)
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
	bell := audio.NewBell(os.Stderr)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, initial)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		initial = menuResult.Preset

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsResults {
			goBack, err := tui.RunResults(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := newGame(menuResult.GameID, menuResult.Preset)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if _, _, err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger, Sound: bell}); err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
