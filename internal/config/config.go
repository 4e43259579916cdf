// Package config provides YAML-based tuning and scenario loading for the
// platformer, with embedded defaults.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScenario is returned when a scenario file describes a world
// that cannot be built.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Config is the full tuning file.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Loop    LoopConfig    `yaml:"loop"`
	Render  RenderConfig  `yaml:"render"`
}

// PhysicsConfig holds movement constants in pixels and seconds.
type PhysicsConfig struct {
	Speed          float64 `yaml:"speed"`
	JumpSpeed      float64 `yaml:"jump_speed"` // negative is up
	Gravity        float64 `yaml:"gravity"`
	GroundFriction float64 `yaml:"ground_friction"`
	AirFriction    float64 `yaml:"air_friction"`
}

// LoopConfig controls the simulation loop.
type LoopConfig struct {
	TickRate        int     `yaml:"tick_rate"`         // iterations per second
	MaxFrameSeconds float64 `yaml:"max_frame_seconds"` // frames with a longer dt are skipped
	FPSWindow       int     `yaml:"fps_window"`        // frames averaged by the FPS meter
}

// RenderConfig controls how world pixels map to terminal cells.
type RenderConfig struct {
	PixelsPerCol float64 `yaml:"pixels_per_col"`
	PixelsPerRow float64 `yaml:"pixels_per_row"`
	HoldMillis   int     `yaml:"hold_ms"` // a key counts as held this long after its last repeat
}

// Validate checks values the loop and renderer divide by.
func (c Config) Validate() error {
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	if c.Loop.MaxFrameSeconds <= 0 {
		return fmt.Errorf("config: max_frame_seconds must be positive, got %g", c.Loop.MaxFrameSeconds)
	}
	if c.Loop.FPSWindow <= 0 {
		return fmt.Errorf("config: fps_window must be positive, got %d", c.Loop.FPSWindow)
	}
	if c.Render.PixelsPerCol <= 0 || c.Render.PixelsPerRow <= 0 {
		return fmt.Errorf("config: pixels_per_col and pixels_per_row must be positive")
	}
	if c.Render.HoldMillis < 0 {
		return fmt.Errorf("config: hold_ms must not be negative, got %d", c.Render.HoldMillis)
	}
	return nil
}

// ScenarioFile is the YAML form of a scenario.
type ScenarioFile struct {
	ID       string       `yaml:"id"`
	Title    string       `yaml:"title"`
	Player   int          `yaml:"player"` // index of the controllable entity
	Focus    int          `yaml:"focus"`  // index of the camera target
	Entities []EntitySpec `yaml:"entities"`
}

// EntitySpec is one body of a scenario: label, top-left corner and size.
type EntitySpec struct {
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
}

// Validate reports every problem in the scenario wrapped in
// ErrInvalidScenario.
func (s ScenarioFile) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if len(s.Entities) == 0 {
		errs = append(errs, errors.New("no entities"))
	}
	if s.Player < 0 || s.Player >= len(s.Entities) {
		errs = append(errs, fmt.Errorf("player index %d out of range", s.Player))
	}
	if s.Focus < 0 || s.Focus >= len(s.Entities) {
		errs = append(errs, fmt.Errorf("focus index %d out of range", s.Focus))
	}
	for i, e := range s.Entities {
		if !finite(e.X, e.Y, e.W, e.H) {
			errs = append(errs, fmt.Errorf("entity %d (%s) has non-finite geometry", i, e.Label))
			continue
		}
		if e.W < 0 || e.H < 0 {
			errs = append(errs, fmt.Errorf("entity %d (%s) has negative size %gx%g", i, e.Label, e.W, e.H))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidScenario, s.ID, errors.Join(errs...))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
