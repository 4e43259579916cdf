package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

// runRoot executes the CLI and restores flag globals afterwards, since
// pflag leaves unset flags at their previous values.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagFrames, flagDT, flagHold, flagTrace = 240, 1.0/120, "", false
		flagScenarioFile = ""
		flagConfigDefaults, flagConfigPresets, flagExportOut = false, false, ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimulateLandsOnGround(t *testing.T) {
	out, err := runRoot(t, "simulate", "default", "--frames", "240")
	if err != nil {
		t.Fatalf("simulate error = %v", err)
	}

	for _, want := range []string{
		"Scenario: Default",
		"Frames:   240 advanced, 0 skipped",
		"Player:   pos (0.00, -100.00)",
		"Jumps:    0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateLongFramesAreSkipped(t *testing.T) {
	out, err := runRoot(t, "simulate", "--frames", "10", "--dt", "0.5")
	if err != nil {
		t.Fatalf("simulate error = %v", err)
	}
	if !strings.Contains(out, "Frames:   0 advanced, 10 skipped") {
		t.Errorf("expected every frame skipped:\n%s", out)
	}
	if strings.Contains(out, "Player:") {
		t.Errorf("no player state expected when nothing advanced:\n%s", out)
	}
}

func TestSimulateTrace(t *testing.T) {
	out, err := runRoot(t, "simulate", "--frames", "3", "--trace")
	if err != nil {
		t.Fatalf("simulate error = %v", err)
	}
	for _, want := range []string{"    0  pos", "    2  pos"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateRejectsBadScript(t *testing.T) {
	if _, err := runRoot(t, "simulate", "--hold", "sideways:0-10"); err == nil {
		t.Error("expected error for unknown hold key")
	}
}

func TestSimulateUnknownScenario(t *testing.T) {
	_, err := runRoot(t, "simulate", "nowhere")
	if err == nil || !strings.Contains(err.Error(), "platformer list") {
		t.Errorf("error = %v, expected unknown scenario hint", err)
	}
}

func TestConfigPresets(t *testing.T) {
	out, err := runRoot(t, "config", "--presets")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"classic", "floaty", "heavy", "-1200"} {
		if !strings.Contains(out, want) {
			t.Errorf("presets output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigDefaultsAreEmbeddedFile(t *testing.T) {
	out, err := runRoot(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if !strings.Contains(out, "physics:") || !strings.Contains(out, "max_frame_seconds") {
		t.Errorf("unexpected defaults:\n%s", out)
	}
}

func TestExportRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	out, err := runRoot(t, "export", "default", "-o", path)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "6 bodies") {
		t.Errorf("unexpected export summary: %q", out)
	}

	out, err = runRoot(t, "simulate", "--file", path, "--frames", "240")
	if err != nil {
		t.Fatalf("simulate --file error = %v", err)
	}
	if !strings.Contains(out, "Player:   pos (0.00, -100.00)") {
		t.Errorf("exported level behaves differently:\n%s", out)
	}
}
