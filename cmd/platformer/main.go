// platformer is a 2D platformer physics sandbox that runs in the terminal.
//
// Usage:
//
//	platformer list                 - List built-in scenarios
//	platformer play [scenario]      - Play a scenario
//	platformer menu                 - Pick scenarios interactively
//	platformer simulate [scenario]  - Run a scripted headless simulation
//	platformer runs [scenario]      - Show recorded runs
//	platformer serve                - Start SSH server for remote play
//	platformer config               - Print the effective tuning
//	platformer export [scenario]    - Write a scenario as YAML
//
// Global flags:
//
//	--config <path>     - Tuning file (default search: ~/.platformer/configs, ./configs)
//	--preset <name>     - Physics preset: classic, floaty, heavy
//	--db <path>         - Run history database (default: ~/.platformer/runs.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	// Import levels to register them
	_ "github.com/vovakirdan/tui-platformer/internal/levels"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal platformer physics sandbox",
	Long: `platformer runs a small axis-aligned rectangle physics world in your
terminal: a controllable player, gravity, friction, and collision
correction against static bodies, with a camera that follows one body.

Available commands:
  list      - Show all built-in scenarios
  play      - Play a scenario directly
  menu      - Interactive scenario picker
  simulate  - Headless scripted run, prints the final state
  runs      - View recorded runs
  serve     - Start SSH server for remote play
  config    - Print the effective tuning
  export    - Write a scenario as YAML

Examples:
  platformer play
  platformer play stairs --preset floaty
  platformer simulate default --frames 240 --hold right:0-120
  platformer serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Physics preset: classic, floaty, heavy")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadConfig resolves the tuning file and applies --preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds a logger writing to --log-file, or to fallback when no
// file is given. The returned closer must be called when done.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
