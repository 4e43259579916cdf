package sim

import (
	"math"
	"time"
)

// Stats accumulates per-run counters. It is saved as a run record when a
// session ends.
type Stats struct {
	Frames      int           // frames advanced
	Skipped     int           // frames dropped because dt was too large
	Jumps       int           // jumps started
	MaxDistance float64       // furthest horizontal distance from spawn, in px
	Elapsed     time.Duration // simulated time
}

// record folds one advanced frame into the counters.
func (s *Stats) record(dt float64, jumped bool, distance float64) {
	s.Frames++
	if jumped {
		s.Jumps++
	}
	s.MaxDistance = math.Max(s.MaxDistance, math.Abs(distance))
	s.Elapsed += time.Duration(dt * float64(time.Second))
}
