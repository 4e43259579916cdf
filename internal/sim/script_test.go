package sim

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

func TestParseScript(t *testing.T) {
	sc, err := ParseScript("right:0-120, up:30 ,focus:5,")
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}
	want := Script{
		{Key: "right", From: 0, To: 120},
		{Key: "up", From: 30, To: 31},
		{Key: "focus", From: 5, To: 6},
	}
	if len(sc) != len(want) {
		t.Fatalf("ParseScript() = %+v", sc)
	}
	for i := range want {
		if sc[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, sc[i], want[i])
		}
	}

	if in := sc.Input(30); in != (physics.Input{Right: true, Up: true}) {
		t.Errorf("Input(30) = %+v", in)
	}
	if in := sc.Input(31); in != (physics.Input{Right: true}) {
		t.Errorf("Input(31) = %+v", in)
	}
	if in := sc.Input(120); in != (physics.Input{}) {
		t.Errorf("Input(120) = %+v, expected end to be exclusive", in)
	}
	if sc.FocusCycles(5) != 1 || sc.FocusCycles(6) != 0 {
		t.Error("focus should fire once on its start frame")
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{"right", "jump:1", "left:x", "left:5-3", "up:1-y", "up:-1"} {
		if _, err := ParseScript(s); err == nil {
			t.Errorf("ParseScript(%q) expected error", s)
		}
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	sc, err := ParseScript("right:0-60,up:70-72")
	if err != nil {
		t.Fatal(err)
	}
	opts := OptionsFrom(config.Default(), core.V(1200, 700))

	a, sa := Replay(newTestWorld(), sc, 200, frame, opts, nil)
	b, sb := Replay(newTestWorld(), sc, 200, frame, opts, nil)

	if a.Sprites[0].World != b.Sprites[0].World || sa != sb {
		t.Errorf("replays differ: %v %+v vs %v %+v", a.Sprites[0].World, sa, b.Sprites[0].World, sb)
	}
	if sa.Frames != 200 || sa.Skipped != 0 {
		t.Errorf("stats = %+v", sa)
	}
	if sa.Jumps != 1 {
		t.Errorf("jumps = %d, expected 1", sa.Jumps)
	}
	if sa.MaxDistance <= 0 {
		t.Error("player never moved")
	}
}

func TestReplayRunsIntoThing(t *testing.T) {
	// Player lands, then runs right into the 120px box at x=300.
	sc, _ := ParseScript("right:60-240")
	last, _ := Replay(newTestWorld(), sc, 240, frame, OptionsFrom(config.Default(), core.V(1200, 700)), nil)

	player := last.Sprites[0]
	if right := player.World.X + player.Size.X; math.Abs(right-300) > 1e-9 {
		t.Errorf("player right edge = %g, expected flush with the box at 300", right)
	}
	if last.Player.Velocity.X != 0 {
		t.Errorf("vx = %g, expected 0 against the wall", last.Player.Velocity.X)
	}
}

func TestReplaySkipsOversizedDT(t *testing.T) {
	var skipped int
	_, st := Replay(newTestWorld(), nil, 5, time.Second, Options{}, func(_ int, _ Frame, ok bool) {
		if !ok {
			skipped++
		}
	})
	if skipped != 5 || st.Skipped != 5 || st.Frames != 0 {
		t.Errorf("skipped=%d stats=%+v, expected every frame skipped", skipped, st)
	}
}
