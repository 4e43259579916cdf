// Package levels registers the built-in scenarios. Import it for side
// effects.
package levels

import (
	"embed"
	"path"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/scenario"
)

//go:embed data/*.yaml
var files embed.FS

func init() {
	entries, err := files.ReadDir("data")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := files.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			panic(err)
		}
		registry.Register(scenario.MustParse(data))
	}
}
