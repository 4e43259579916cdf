package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var (
	flagConfigDefaults bool
	flagConfigPresets  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning",
	Long: `Print the tuning the other commands would use, after the config file
search and --preset are applied. Redirect it to a file to start your own.

Examples:
  platformer config > ~/.platformer/configs/platformer.yaml
  platformer config --preset floaty
  platformer config --defaults
  platformer config --presets`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
	configCmd.Flags().BoolVar(&flagConfigPresets, "presets", false, "List physics presets")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	switch {
	case flagConfigDefaults:
		_, err := out.Write(config.DefaultYAML())
		return err

	case flagConfigPresets:
		fmt.Fprintf(out, "  %-8s  %6s  %6s  %7s  %8s  %6s\n", "Preset", "Speed", "Jump", "Gravity", "Friction", "Air")
		for _, p := range config.Presets() {
			cfg := config.Default()
			config.ApplyPreset(&cfg, p)
			ph := cfg.Physics
			fmt.Fprintf(out, "  %-8s  %6.0f  %6.0f  %7.0f  %8.0f  %6.0f\n",
				p, ph.Speed, ph.JumpSpeed, ph.Gravity, ph.GroundFriction, ph.AirFriction)
		}
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
