package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the search order
(--config, ~/.arcade/configs/whack.yaml, ./configs/whack.yaml, built-in)
and the --difficulty preset are applied.

Use --defaults to print the commented built-in file, a good starting
point for a custom config.

Examples:
  whack config
  whack config --difficulty hard
  whack config --defaults > configs/whack.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML("whack"))
		return err
	}

	cfg, err := loadConfig("")
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
