package sim

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Options configure a Loop. Zero values fall back to the defaults noted
// on each field.
type Options struct {
	Params       physics.Params
	TickRate     int              // iterations per second, default 120
	MaxFrameTime time.Duration    // longer frames are skipped, default 250ms
	FPSWindow    int              // default 120
	Viewport     core.Vec2        // world pixels visible on screen
	Clock        func() time.Time // default time.Now
	Logger       *log.Logger      // default discards
}

// OptionsFrom builds loop options from a tuning file.
func OptionsFrom(cfg config.Config, viewport core.Vec2) Options {
	return Options{
		Params: physics.Params{
			Speed:          cfg.Physics.Speed,
			JumpSpeed:      cfg.Physics.JumpSpeed,
			Gravity:        cfg.Physics.Gravity,
			GroundFriction: cfg.Physics.GroundFriction,
			AirFriction:    cfg.Physics.AirFriction,
		},
		TickRate:     cfg.Loop.TickRate,
		MaxFrameTime: time.Duration(cfg.Loop.MaxFrameSeconds * float64(time.Second)),
		FPSWindow:    cfg.Loop.FPSWindow,
		Viewport:     viewport,
	}
}

// Frame is a copy of the world state after one advanced iteration.
type Frame struct {
	Seq      uint64
	DT       float64 // seconds
	Sprites  []world.Sprite
	Player   physics.PlayerState
	Grounded bool
	Contacts []physics.Contact
	Focus    int
	FPS      float64
	Camera   core.Vec2
	Stats    Stats
}

// Loop owns a World and advances it with measured wall-clock dt.
// Only the goroutine running Run (or calling Tick) may touch the world.
type Loop struct {
	world    *world.World
	controls *Controls
	opts     Options
	logger   *log.Logger
	fps      *FPSMeter
	stats    Stats
	spawn    core.Vec2

	last      time.Time
	seq       uint64
	focusSeen uint32

	mu       sync.Mutex
	viewport core.Vec2

	frames chan Frame
	done   chan struct{}
}

// NewLoop creates a loop for w driven by c. The dt of the first Tick is
// measured from the time NewLoop is called.
func NewLoop(w *world.World, c *Controls, opts Options) *Loop {
	if opts.TickRate <= 0 {
		opts.TickRate = 120
	}
	if opts.MaxFrameTime <= 0 {
		opts.MaxFrameTime = 250 * time.Millisecond
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w.Update(opts.Viewport)

	return &Loop{
		world:     w,
		controls:  c,
		opts:      opts,
		logger:    logger,
		fps:       NewFPSMeter(opts.FPSWindow),
		spawn:     w.Player().Pos(),
		last:      opts.Clock(),
		focusSeen: c.focusRequests(),
		viewport:  opts.Viewport,
		frames:    make(chan Frame, 1),
		done:      make(chan struct{}),
	}
}

// Frames delivers the most recent frame. Frames the reader did not pick
// up in time are replaced, never queued.
func (l *Loop) Frames() <-chan Frame { return l.frames }

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} { return l.done }

// SetViewport changes the visible area. It is safe to call from any
// goroutine and applies from the next frame.
func (l *Loop) SetViewport(v core.Vec2) {
	l.mu.Lock()
	l.viewport = v
	l.mu.Unlock()
}

func (l *Loop) currentViewport() core.Vec2 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.viewport
}

// Stats returns the counters so far. Not safe to call while Run is
// active; use Frame.Stats or the value Run returns instead.
func (l *Loop) Stats() Stats { return l.stats }

// FPS returns the meter's current average, with the same access rules as
// Stats.
func (l *Loop) FPS() float64 { return l.fps.Average() }

// Tick runs one iteration at time now. It reports false when the frame
// was skipped because dt was negative or longer than MaxFrameTime; the
// next Tick measures from now either way.
func (l *Loop) Tick(now time.Time) (Frame, bool) {
	dt := now.Sub(l.last)
	l.last = now

	if dt < 0 || dt > l.opts.MaxFrameTime {
		l.stats.Skipped++
		l.logger.Debug("frame skipped", "dt", dt, "max", l.opts.MaxFrameTime)
		return Frame{}, false
	}

	for n := l.controls.focusRequests(); l.focusSeen != n; l.focusSeen++ {
		l.world.CycleFocus()
	}

	sec := dt.Seconds()
	res := l.world.Advance(l.controls.Snapshot(), sec, l.opts.Params, l.currentViewport())
	l.fps.Add(sec)
	l.stats.record(sec, res.Jumped, l.world.Player().X()-l.spawn.X)
	l.seq++

	f := Frame{
		Seq:      l.seq,
		DT:       sec,
		Sprites:  l.world.Sprites(),
		Player:   l.world.PlayerState(),
		Grounded: res.Grounded,
		Contacts: res.Contacts,
		Focus:    l.world.Focus(),
		FPS:      l.fps.Average(),
		Camera:   l.world.Camera(),
		Stats:    l.stats,
	}
	l.publish(f)
	return f, true
}

// publish replaces any unread frame with f.
func (l *Loop) publish(f Frame) {
	select {
	case l.frames <- f:
		return
	default:
	}
	select {
	case <-l.frames:
	default:
	}
	select {
	case l.frames <- f:
	default:
	}
}

// Run ticks at the configured rate until ctx is cancelled or Close is
// called on the controls, then returns the final stats.
func (l *Loop) Run(ctx context.Context) Stats {
	defer close(l.done)

	ticker := time.NewTicker(time.Second / time.Duration(l.opts.TickRate))
	defer ticker.Stop()

	l.last = l.opts.Clock()
	l.logger.Info("loop started", "bodies", l.world.Len(), "tick_rate", l.opts.TickRate)

	for !l.controls.Closing() {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", "reason", ctx.Err(), "frames", l.stats.Frames, "skipped", l.stats.Skipped)
			return l.stats
		case <-ticker.C:
		}
		l.Tick(l.opts.Clock())
	}

	l.logger.Info("loop stopped", "reason", "closing", "frames", l.stats.Frames, "skipped", l.stats.Skipped)
	return l.stats
}
