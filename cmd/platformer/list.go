package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all built-in scenarios",
	Long:  `Shows a list of all scenarios registered with the platformer.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	scenarios := registry.List()

	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Bodies")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "------")

	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-12s  %d\n", maxIDLen, s.ID, s.Title, s.Entities)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a scenario.")
}
