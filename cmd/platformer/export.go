package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export [scenario]",
	Short: "Write a scenario as YAML",
	Long: `Write a built-in scenario as YAML, ready to edit and load back with
--file.

Examples:
  platformer export stairs > my-level.yaml
  platformer export default -o ./levels/default.yaml
  platformer play --file my-level.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := resolveScenario(args)
	if err != nil {
		return err
	}
	data, err := config.MarshalScenario(s.File())
	if err != nil {
		return err
	}

	if flagExportOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		return fmt.Errorf("cannot write scenario: %w", err)
	}
	spawn := s.Spawn()
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bodies, player spawns at %s)\n", flagExportOut, s.Len(), spawn)
	return nil
}
