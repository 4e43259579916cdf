package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/scenario"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagScenarioFile string

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario",
	Long: `Start playing the specified scenario ("default" if omitted).

Controls:
  Left/A, Right/D  - Run
  Up/W/Space       - Jump (while grounded)
  Tab              - Move the camera to the next body
  R                - Restart the scenario
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Terminals only report key presses, so a key counts as held until no
repeat arrives for render.hold_ms milliseconds.

Examples:
  platformer play
  platformer play corridor --preset heavy
  platformer play --file ./my-level.yaml
  platformer play --log-file /tmp/platformer.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScenarioFile, "file", "", "Load the scenario from a YAML file instead")
}

// resolveScenario picks the scenario from --file or the registry.
func resolveScenario(args []string) (*scenario.Scenario, error) {
	if flagScenarioFile != "" {
		f, err := config.LoadScenario(flagScenarioFile)
		if err != nil {
			return nil, err
		}
		return scenario.New(f)
	}

	id := "default"
	if len(args) > 0 {
		id = args[0]
	}
	s, err := registry.Get(id)
	if errors.Is(err, registry.ErrUnknownScenario) {
		return nil, fmt.Errorf("%w (run 'platformer list' to see available scenarios)", err)
	}
	return s, err
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens run history, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := resolveScenario(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so discard unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "platformer")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.Run(s, tui.Options{
		Config: cfg,
		Preset: flagPreset,
		Store:  store,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Loop.TickRate,
		},
	})
}
