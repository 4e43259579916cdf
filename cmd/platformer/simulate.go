package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

var (
	flagFrames   int
	flagDT       float64
	flagHold     string
	flagTrace    bool
	flagViewport string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario]",
	Short: "Run a scripted headless simulation",
	Long: `Run a scenario without a terminal UI at a fixed dt and print the
final player state. The same script always produces the same result.

Holds are comma-separated "key:from-to" entries, with frames counted from
0 and the end exclusive. Keys: left, right, up, focus. A single frame
number holds for one frame; focus cycles the camera once.

Examples:
  platformer simulate --frames 120
  platformer simulate stairs --frames 600 --hold right:0-600,up:100-110
  platformer simulate --dt 0.5 --trace   # every frame is skipped`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 240, "Number of iterations")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 1.0/120, "Seconds per iteration")
	simulateCmd.Flags().StringVar(&flagHold, "hold", "", "Scripted holds, e.g. right:0-120,up:30-32")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the player after every iteration")
	simulateCmd.Flags().StringVar(&flagViewport, "viewport", "1200x700", "Viewport size in pixels")
	simulateCmd.Flags().StringVar(&flagScenarioFile, "file", "", "Load the scenario from a YAML file instead")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	s, err := resolveScenario(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := sim.ParseScript(flagHold)
	if err != nil {
		return err
	}
	if flagDT <= 0 {
		return fmt.Errorf("--dt must be positive, got %g", flagDT)
	}

	viewport, err := parseViewport(flagViewport)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		return err
	}
	defer closeLog()

	opts := sim.OptionsFrom(cfg, viewport)
	opts.Logger = logger

	out := cmd.OutOrStdout()
	var trace func(int, sim.Frame, bool)
	if flagTrace {
		trace = func(i int, f sim.Frame, ok bool) {
			if !ok {
				fmt.Fprintf(out, "%5d  skipped\n", i)
				return
			}
			p := playerSprite(f)
			fmt.Fprintf(out, "%5d  pos %-18s vel %-18s grounded=%v contacts=%d\n",
				i, p.World, f.Player.Velocity, f.Grounded, len(f.Contacts))
		}
	}

	logger.Info("simulating", "scenario", s.ID(), "frames", flagFrames, "dt", flagDT)
	dt := time.Duration(flagDT * float64(time.Second))
	last, stats := sim.Replay(s.Build(), script, flagFrames, dt, opts, trace)

	fmt.Fprintf(out, "Scenario: %s\n", s.Title())
	fmt.Fprintf(out, "Frames:   %d advanced, %d skipped\n", stats.Frames, stats.Skipped)
	if stats.Frames == 0 {
		return nil
	}

	p := playerSprite(last)
	fmt.Fprintf(out, "Player:   pos %s size %s\n", p.World, p.Size)
	fmt.Fprintf(out, "Velocity: %s\n", last.Player.Velocity)
	fmt.Fprintf(out, "Grounded: %v\n", last.Grounded)
	fmt.Fprintf(out, "Jumps:    %d\n", stats.Jumps)
	fmt.Fprintf(out, "Distance: %.1f px\n", stats.MaxDistance)
	fmt.Fprintf(out, "Elapsed:  %s\n", stats.Elapsed.Round(time.Millisecond))
	for _, c := range last.Contacts {
		applied := ""
		if !c.Applied {
			applied = " (not applied)"
		}
		fmt.Fprintf(out, "Contact:  %s on %s%s\n", last.Sprites[c.Index].Label, c.Side, applied)
	}
	return nil
}

func playerSprite(f sim.Frame) world.Sprite {
	for _, s := range f.Sprites {
		if s.Player {
			return s
		}
	}
	return world.Sprite{}
}

// parseViewport reads a "WxH" pixel size.
func parseViewport(s string) (core.Vec2, error) {
	ws, hs, ok := strings.Cut(s, "x")
	w, errW := strconv.ParseFloat(ws, 64)
	h, errH := strconv.ParseFloat(hs, 64)
	if !ok || errW != nil || errH != nil || w <= 0 || h <= 0 {
		return core.Vec2{}, fmt.Errorf("invalid --viewport %q, want WxH like 1200x700", s)
	}
	return core.V(w, h), nil
}
