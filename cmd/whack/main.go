// whack is a whack-a-mole arcade game for the terminal and the desktop.
//
// Usage:
//
//	whack play               - Play in the terminal
//	whack menu               - Pick a mode and difficulty interactively
//	whack window             - Play in a desktop window
//	whack list               - List game modes
//	whack sim                - Run headless rounds with a scripted player
//	whack config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-whack/internal/games/whack"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whack",
	Short: "Whack! - whack-a-mole in your terminal",
	Long: `Whack! is a whack-a-mole arcade game. Moles pop out of a grid of holes;
whack them before the round timer runs out. Every miss brings extra moles
out of the ground on the next tick.

Available commands:
  play     - Play in the terminal
  menu     - Interactive mode and difficulty picker
  window   - Play in a desktop window
  list     - Show the game modes
  sim      - Run headless rounds with a scripted player
  config   - Print the effective configuration

Examples:
  whack play
  whack play --mode survival --difficulty hard
  whack menu
  whack window --seed 42
  whack sim --rounds 20 --accuracy 0.8`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
