package scenario

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func testFile() config.ScenarioFile {
	return config.ScenarioFile{
		ID:     "test",
		Player: 1,
		Focus:  0,
		Entities: []config.EntitySpec{
			{Label: "Ground", X: -500, Y: 0, W: 1000, H: 100},
			{Label: "Player", X: 0, Y: -100, W: 50, H: 100},
		},
	}
}

func TestBuild(t *testing.T) {
	s, err := New(testFile())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	w := s.Build()
	if w.Len() != 2 || w.PlayerIndex() != 1 || w.Focus() != 0 {
		t.Fatalf("world len=%d player=%d focus=%d", w.Len(), w.PlayerIndex(), w.Focus())
	}
	if p := w.Player(); p.Label() != "Player" || p.Pos() != core.V(0, -100) || p.Size() != core.V(50, 100) {
		t.Errorf("player body = %v", p)
	}
	if s.Spawn() != core.V(0, -100) {
		t.Errorf("Spawn() = %v", s.Spawn())
	}
}

func TestBuildReturnsIndependentWorlds(t *testing.T) {
	s, err := New(testFile())
	if err != nil {
		t.Fatal(err)
	}
	a, b := s.Build(), s.Build()
	a.Player().Move(core.V(10, 0))
	if b.Player().X() != 0 {
		t.Error("worlds share bodies")
	}
}

func TestNewCopiesEntities(t *testing.T) {
	f := testFile()
	s, err := New(f)
	if err != nil {
		t.Fatal(err)
	}
	f.Entities[1].X = 999
	if s.Spawn().X != 0 {
		t.Error("scenario aliases caller's entities")
	}
}

func TestTitleFallback(t *testing.T) {
	s, _ := New(testFile())
	if s.Title() != "test" {
		t.Errorf("Title() = %q, expected id", s.Title())
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	f := testFile()
	f.Focus = 5
	if _, err := New(f); !errors.Is(err, config.ErrInvalidScenario) {
		t.Errorf("New() error = %v, expected ErrInvalidScenario", err)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse([]byte("id: broken"))
}
