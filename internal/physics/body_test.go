package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func box(x, y, w, h float64) *Body {
	return NewBody("box", core.V(x, y), core.V(w, h))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Body
		expected bool
	}{
		{"overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"contained", box(0, 0, 20, 20), box(5, 5, 5, 5), true},
		{"separated horizontally", box(0, 0, 10, 10), box(15, 0, 10, 10), false},
		{"separated vertically", box(0, 0, 10, 10), box(0, 15, 10, 10), false},
		{"touching right edge", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"touching bottom edge", box(0, 0, 10, 10), box(0, 10, 10, 10), false},
		{"resting on ground", box(0, -100, 100, 100), box(-800, 0, 1600, 300), false},
		{"touching corner", box(0, 0, 10, 10), box(10, 10, 10, 10), false},
		{"overlap on x only", box(0, 0, 10, 10), box(5, 20, 10, 10), false},
		{"fractional overlap", box(0, 0, 10, 10), box(9.999, 0, 10, 10), true},
		{"zero-size inside", box(0, 0, 10, 10), box(5, 5, 0, 0), true},
		{"zero-size on right edge", box(0, 0, 10, 10), box(10, 5, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestOverlapsSymmetricGrid(t *testing.T) {
	a := box(0, 0, 30, 20)
	for x := -40.0; x <= 40; x += 5 {
		for y := -30.0; y <= 30; y += 5 {
			b := box(x, y, 10, 10)
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Fatalf("asymmetric overlap at (%g, %g)", x, y)
			}
		}
	}
}

func TestBodyMove(t *testing.T) {
	b := NewBody("player", core.V(0, -200), core.V(100, 100))
	b.Move(core.V(5, -3))
	b.Move(core.V(-1, 1))

	if b.Pos() != core.V(4, -202) {
		t.Errorf("Pos() = %v, expected (4, -202)", b.Pos())
	}
	if b.Right() != 104 || b.Bottom() != -102 {
		t.Errorf("edges = (%g, %g), expected (104, -102)", b.Right(), b.Bottom())
	}
	if b.Center() != core.V(54, -152) {
		t.Errorf("Center() = %v, expected (54, -152)", b.Center())
	}
	if b.Size() != core.V(100, 100) {
		t.Errorf("Move changed size: %v", b.Size())
	}
}

func TestNewBodyRejectsNegativeSize(t *testing.T) {
	for _, size := range []core.Vec2{core.V(-1, 10), core.V(10, math.NaN())} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewBody with size %v should panic", size)
				}
			}()
			NewBody("bad", core.V(0, 0), size)
		}()
	}
}
