package levels

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"default", "stairs", "corridor"} {
		if !registry.Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
	}
}

func TestDefaultLevelLayout(t *testing.T) {
	w, err := registry.Create("default")
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		label     string
		pos, size core.Vec2
	}{
		{"Player", core.V(0, -200), core.V(100, 100)},
		{"Ground", core.V(-800, 0), core.V(1600, 300)},
		{"Ground", core.V(800, 0), core.V(1600, 300)},
		{"Thing", core.V(300, -120), core.V(120, 120)},
		{"Thing", core.V(500, -220), core.V(120, 220)},
		{"Ceiling", core.V(-700, -600), core.V(1000, 300)},
	}
	if w.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", w.Len(), len(want))
	}
	for i, e := range want {
		b := w.Body(i)
		if b.Label() != e.label || b.Pos() != e.pos || b.Size() != e.size {
			t.Errorf("body %d = %v, expected %s at %v size %v", i, b, e.label, e.pos, e.size)
		}
	}
	if w.PlayerIndex() != 0 || w.Focus() != 0 {
		t.Errorf("player=%d focus=%d, expected 0, 0", w.PlayerIndex(), w.Focus())
	}
}

func TestPlayersStartClearAndLand(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			w, err := registry.Create(info.ID)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < w.Len(); i++ {
				if i != w.PlayerIndex() && w.Player().Overlaps(w.Body(i)) {
					t.Errorf("player starts inside body %d (%s)", i, w.Body(i).Label())
				}
			}

			var grounded bool
			for i := 0; i < 240 && !grounded; i++ {
				grounded = w.Advance(physics.Input{}, 1.0/120, physics.DefaultParams(), core.V(1200, 700)).Grounded
			}
			if !grounded {
				t.Error("player never lands")
			}
		})
	}
}
