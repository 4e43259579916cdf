package main

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsTUI   bool
	flagRunsClear bool
	flagRunsID    string
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recorded runs",
	Long: `Display recorded runs. Without a scenario the most recent runs of
every scenario are shown; with one, its runs ranked by distance.

Examples:
  platformer runs
  platformer runs stairs --limit 5
  platformer runs --tui
  platformer runs corridor --clear
  platformer runs --id 7c9e6679-7425-40de-944b-e07fc1f90ae7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs in an interactive table")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every run of the scenario")
	runsCmd.Flags().StringVar(&flagRunsID, "id", "", "Show one run in detail")
}

func runRuns(cmd *cobra.Command, args []string) error {
	var scenarioID string
	if len(args) > 0 {
		scenarioID = args[0]
		if !registry.Exists(scenarioID) {
			return fmt.Errorf("unknown scenario %q (run 'platformer list' to see available scenarios)", scenarioID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open runs database: %w", err)
	}
	defer store.Close()

	if flagRunsTUI {
		width, height := terminalSize()
		return tui.RunRunsBoard(store, width, height)
	}

	out := cmd.OutOrStdout()
	if flagRunsID != "" {
		return printRun(out, store, flagRunsID)
	}
	if flagRunsClear {
		if scenarioID == "" {
			return fmt.Errorf("--clear needs a scenario")
		}
		if err := store.ClearRuns(scenarioID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared runs of %s\n", scenarioID)
		return nil
	}

	var runs []storage.Run
	if scenarioID == "" {
		fmt.Fprintln(out, "Recent runs")
		runs, err = store.RecentRuns(flagRunsLimit)
	} else {
		fmt.Fprintf(out, "Best runs - %s\n", scenarioID)
		runs, err = store.BestRuns(scenarioID, flagRunsLimit)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'platformer play' to record one!")
		return nil
	}

	now := time.Now()
	fmt.Fprintf(out, "  %-4s  %-10s  %-10s  %9s  %5s  %8s  %s\n", "#", "Scenario", "Player", "Distance", "Jumps", "Time", "When")
	fmt.Fprintf(out, "  %-4s  %-10s  %-10s  %9s  %5s  %8s  %s\n", "-", "--------", "------", "--------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10s  %-10s  %9s  %5d  %8s  %s\n",
			i+1, r.ScenarioID, r.Player,
			humanize.Commaf(float64(int64(r.MaxDistance))),
			r.Jumps, r.Elapsed.Round(100*time.Millisecond),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"))
	}

	if scenarioID != "" {
		if st, err := store.GetScenarioStats(scenarioID); err == nil && st != nil {
			fmt.Fprintln(out)
			printStats(out, st)
		}
		return nil
	}

	all, err := store.GetAllScenarioStats()
	if err != nil || len(all) == 0 {
		return err
	}
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fmt.Fprintln(out)
	for _, id := range ids {
		fmt.Fprintf(out, "  %-10s  ", id)
		printStats(out, all[id])
	}
	return nil
}

func printStats(out io.Writer, st *storage.ScenarioStats) {
	fmt.Fprintf(out, "%s runs, best %s px, %s jumps, %s played, last %s\n",
		humanize.Comma(int64(st.Runs)), humanize.Commaf(float64(int64(st.BestDistance))),
		humanize.Comma(st.TotalJumps), st.TotalTime.Round(time.Second), humanize.Time(st.LastPlayed))
}

func printRun(out io.Writer, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with id %q", id)
	}

	fmt.Fprintf(out, "Run:      %s\n", r.RunID)
	fmt.Fprintf(out, "Scenario: %s\n", r.ScenarioID)
	fmt.Fprintf(out, "Player:   %s\n", r.Player)
	if r.Preset != "" {
		fmt.Fprintf(out, "Preset:   %s\n", r.Preset)
	}
	fmt.Fprintf(out, "Frames:   %s advanced, %s skipped\n", humanize.Comma(int64(r.Frames)), humanize.Comma(int64(r.Skipped)))
	fmt.Fprintf(out, "Jumps:    %d\n", r.Jumps)
	fmt.Fprintf(out, "Distance: %.1f px\n", r.MaxDistance)
	fmt.Fprintf(out, "Time:     %s at %.0f FPS\n", r.Elapsed.Round(100*time.Millisecond), r.AvgFPS)
	fmt.Fprintf(out, "Played:   %s (%s)\n", r.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(r.CreatedAt))
	return nil
}
