package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the built-in tuning, used when the embedded YAML cannot
// be parsed.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Speed:          600,
			JumpSpeed:      -1200,
			Gravity:        3600,
			GroundFriction: 7200,
			AirFriction:    1800,
		},
		Loop: LoopConfig{
			TickRate:        120,
			MaxFrameSeconds: 0.25,
			FPSWindow:       120,
		},
		Render: RenderConfig{
			PixelsPerCol: 12,
			PixelsPerRow: 24,
			HoldMillis:   180,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultYAML
}
