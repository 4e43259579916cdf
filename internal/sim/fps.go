package sim

// FPSMeter averages instantaneous frame rates over a fixed window. The
// average is refreshed each time the window fills, so the displayed value
// changes at most once per window.
type FPSMeter struct {
	ring    []float64
	count   int
	average float64
}

// NewFPSMeter creates a meter over window frames. A window below 1 is
// treated as 1.
func NewFPSMeter(window int) *FPSMeter {
	return &FPSMeter{ring: make([]float64, max(window, 1))}
}

// Add records a frame that took dt seconds. Non-positive dt is ignored.
func (m *FPSMeter) Add(dt float64) {
	if dt <= 0 {
		return
	}
	i := m.count % len(m.ring)
	if i == 0 && m.count > 0 {
		m.average = mean(m.ring)
	}
	m.ring[i] = 1 / dt
	m.count++
}

// Average returns the mean FPS of the last complete window, or 0 before
// the first window completes.
func (m *FPSMeter) Average() float64 { return m.average }

// Frames returns the number of frames recorded.
func (m *FPSMeter) Frames() int { return m.count }

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
