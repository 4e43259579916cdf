// Package scenario turns validated scenario files into worlds.
package scenario

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Scenario is an immutable level description. Build can be called any
// number of times; each call returns an independent world.
type Scenario struct {
	file config.ScenarioFile
}

// New validates f and wraps it.
func New(f config.ScenarioFile) (*Scenario, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.Entities = append([]config.EntitySpec(nil), f.Entities...)
	return &Scenario{file: f}, nil
}

// Parse decodes a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	f, err := config.ParseScenario(data)
	if err != nil {
		return nil, err
	}
	return New(f)
}

// MustParse is Parse for embedded levels. It panics on error.
func MustParse(data []byte) *Scenario {
	s, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("scenario: %v", err))
	}
	return s
}

// ID returns the scenario identifier.
func (s *Scenario) ID() string { return s.file.ID }

// Title returns the display name, falling back to the ID.
func (s *Scenario) Title() string {
	if s.file.Title == "" {
		return s.file.ID
	}
	return s.file.Title
}

// Len returns the number of entities.
func (s *Scenario) Len() int { return len(s.file.Entities) }

// File returns a copy of the underlying scenario file.
func (s *Scenario) File() config.ScenarioFile {
	f := s.file
	f.Entities = append([]config.EntitySpec(nil), s.file.Entities...)
	return f
}

// Spawn returns the player's starting position.
func (s *Scenario) Spawn() core.Vec2 {
	e := s.file.Entities[s.file.Player]
	return core.V(e.X, e.Y)
}

// Build creates a fresh world with the player at rest.
func (s *Scenario) Build() *world.World {
	bodies := make([]*physics.Body, len(s.file.Entities))
	for i, e := range s.file.Entities {
		bodies[i] = physics.NewBody(e.Label, core.V(e.X, e.Y), core.V(e.W, e.H))
	}
	return world.New(bodies, s.file.Player, s.file.Focus)
}
