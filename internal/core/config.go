package core

// RuntimeConfig describes the terminal the simulation is displayed on.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation iterations per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 120,
	}
}

// Viewport returns the screen size in world pixels for the given cell size.
func (c RuntimeConfig) Viewport(pxPerCol, pxPerRow float64) Vec2 {
	return Vec2{X: float64(c.ScreenW) * pxPerCol, Y: float64(c.ScreenH) * pxPerRow}
}
