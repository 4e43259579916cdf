package sim

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Hold is one scripted key: Key is held on frames [From, To).
type Hold struct {
	Key  string // left, right, up, focus
	From int
	To   int
}

// Script is a list of scripted holds for headless runs.
type Script []Hold

// ParseScript parses "key:from-to" entries separated by commas, e.g.
// "right:0-120,up:30". A single frame number holds for that frame only.
// focus entries cycle the camera once, on their first frame.
func ParseScript(s string) (Script, error) {
	var sc Script
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		h, err := parseHold(entry)
		if err != nil {
			return nil, fmt.Errorf("sim: bad script entry %q: %w", entry, err)
		}
		sc = append(sc, h)
	}
	return sc, nil
}

func parseHold(entry string) (Hold, error) {
	name, span, ok := strings.Cut(entry, ":")
	if !ok {
		return Hold{}, fmt.Errorf("missing ':'")
	}
	switch name {
	case "left", "right", "up", "focus":
	default:
		return Hold{}, fmt.Errorf("unknown key %q", name)
	}

	fromStr, toStr, isRange := strings.Cut(span, "-")
	from, err := strconv.Atoi(fromStr)
	if err != nil {
		return Hold{}, fmt.Errorf("bad start frame: %w", err)
	}
	to := from + 1
	if isRange {
		if to, err = strconv.Atoi(toStr); err != nil {
			return Hold{}, fmt.Errorf("bad end frame: %w", err)
		}
	}
	if from < 0 || to <= from {
		return Hold{}, fmt.Errorf("empty frame range %d-%d", from, to)
	}
	return Hold{Key: name, From: from, To: to}, nil
}

// Input returns the held flags on frame i.
func (sc Script) Input(i int) physics.Input {
	var in physics.Input
	for _, h := range sc {
		if i < h.From || i >= h.To {
			continue
		}
		switch h.Key {
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		case "up":
			in.Up = true
		}
	}
	return in
}

// FocusCycles returns how many focus entries start on frame i.
func (sc Script) FocusCycles(i int) int {
	n := 0
	for _, h := range sc {
		if h.Key == "focus" && h.From == i {
			n++
		}
	}
	return n
}

// Replay runs frames iterations of w at a fixed dt, driven by sc, through
// a Loop on a synthetic clock. each, if non-nil, sees every iteration,
// including skipped ones (ok false).
func Replay(w *world.World, sc Script, frames int, dt time.Duration, opts Options, each func(i int, f Frame, ok bool)) (Frame, Stats) {
	now := time.Unix(0, 0)
	opts.Clock = func() time.Time { return now }

	c := &Controls{}
	l := NewLoop(w, c, opts)

	var last Frame
	for i := range frames {
		c.Set(sc.Input(i))
		for range sc.FocusCycles(i) {
			c.CycleFocus()
		}

		now = now.Add(dt)
		f, ok := l.Tick(now)
		if ok {
			last = f
		}
		if each != nil {
			each(i, f, ok)
		}
	}
	return last, l.Stats()
}
