package config

import "fmt"

// Preset is a named physics tuning.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetFloaty  Preset = "floaty"
	PresetHeavy   Preset = "heavy"
)

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetFloaty, PresetHeavy}
}

// ParsePreset converts a flag value into a Preset. The empty string means
// "keep whatever the config file says".
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetClassic, PresetFloaty, PresetHeavy:
		return Preset(s), nil
	}
	return "", fmt.Errorf("config: unknown preset %q (want classic, floaty or heavy)", s)
}

// ApplyPreset overwrites the physics section with the preset's tuning.
func ApplyPreset(cfg *Config, p Preset) {
	switch p {
	case PresetClassic:
		cfg.Physics = Default().Physics
	case PresetFloaty:
		cfg.Physics = PhysicsConfig{
			Speed:          450,
			JumpSpeed:      -900,
			Gravity:        1200,
			GroundFriction: 3600,
			AirFriction:    300,
		}
	case PresetHeavy:
		cfg.Physics = PhysicsConfig{
			Speed:          700,
			JumpSpeed:      -1500,
			Gravity:        6000,
			GroundFriction: 12000,
			AirFriction:    3600,
		}
	}
}
