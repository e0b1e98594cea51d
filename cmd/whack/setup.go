package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/games/whack"
	"github.com/vovakirdan/tui-whack/internal/logging"
	"github.com/vovakirdan/tui-whack/internal/registry"
)

// modeID maps a --mode value to the registered game ID.
func modeID(mode string) (string, error) {
	var id string
	switch whack.Mode(mode) {
	case "", whack.ModeTimed:
		id = "whack"
	case whack.ModeSurvival:
		id = "whack_survival"
	default:
		return "", fmt.Errorf("unknown mode %q (want timed or survival)", mode)
	}

	if !registry.Exists(id) {
		return "", fmt.Errorf("game mode %q is not registered", id)
	}
	return id, nil
}

// loadConfig loads the game configuration and applies a difficulty preset.
// An empty preset falls back to the --difficulty flag.
func loadConfig(preset config.DifficultyPreset) (config.WhackConfig, error) {
	cfg, err := config.LoadWhack(flagConfig)
	if err != nil {
		return cfg, err
	}

	if preset == "" {
		p, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		preset = p
	}
	config.ApplyWhackPreset(&cfg, preset)
	return cfg, nil
}

// newGame creates a registered game mode and configures it.
func newGame(gameID string, preset config.DifficultyPreset) (*whack.Game, error) {
	cfg, err := loadConfig(preset)
	if err != nil {
		return nil, err
	}

	g, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*whack.Game)
	if !ok {
		return nil, fmt.Errorf("game %q is not a whack mode", gameID)
	}
	game.Configure(cfg)
	return game, nil
}

// runtimeConfig builds the runtime config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// newLogger builds the command logger. While a TUI owns the terminal,
// logs go to --log-file or nowhere. The returned func closes the log file.
func newLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	case ownsTerminal:
		w = io.Discard
	}

	return logging.New(w, level, "whack"), closeFn, nil
}
