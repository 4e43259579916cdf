// Package registry provides a global registry of playable scenarios.
// Levels register themselves in init() functions, so the CLI can discover
// them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/scenario"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// ErrUnknownScenario is returned for IDs nobody registered.
var ErrUnknownScenario = errors.New("registry: unknown scenario")

// Info contains metadata about a registered scenario.
type Info struct {
	ID       string
	Title    string
	Entities int
}

var (
	scenarios = make(map[string]*scenario.Scenario)
	mu        sync.RWMutex
)

// Register adds a scenario to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(s *scenario.Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := scenarios[s.ID()]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", s.ID()))
	}
	scenarios[s.ID()] = s
}

// List returns information about all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(scenarios))
	for id, s := range scenarios {
		result = append(result, Info{
			ID:       id,
			Title:    s.Title(),
			Entities: s.Len(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the scenario registered under id.
func Get(id string) (*scenario.Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := scenarios[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScenario, id)
	}
	return s, nil
}

// Create builds a fresh world for the scenario id.
func Create(id string) (*world.World, error) {
	s, err := Get(id)
	if err != nil {
		return nil, err
	}
	return s.Build(), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenarios[id]
	return ok
}

// unregister removes a scenario. Used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(scenarios, id)
}
