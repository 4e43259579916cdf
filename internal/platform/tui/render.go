package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/sim"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// obstaclePalette colours non-player bodies by index.
var obstaclePalette = []core.Color{
	core.ColorOrange,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorGray,
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawFrame draws every sprite of f, then the HUD on the top row.
// The screen is cleared first.
func DrawFrame(dst *core.Screen, f sim.Frame, rc config.RenderConfig, title string) {
	dst.Clear()
	drawSprites(dst, f.Sprites, rc)
	drawHUD(dst, f, title)
}

// drawSprites places sprites at their display positions. Labels are
// written inside obstacles big enough to hold them.
func drawSprites(dst *core.Screen, sprites []world.Sprite, rc config.RenderConfig) {
	for i, s := range sprites {
		r := core.CellRect(s.Display, s.Size, rc.PixelsPerCol, rc.PixelsPerRow)
		if !r.Intersects(dst.Bounds()) {
			continue
		}

		switch {
		case s.Player:
			dst.DrawRect(r, '█', core.ColorGreen)
		case s.Focused:
			dst.DrawBox(r, core.ColorYellow)
		default:
			dst.DrawBox(r, obstaclePalette[i%len(obstaclePalette)])
		}

		lx, ly := r.X+(r.W-len(s.Label))/2, r.Y+r.H/2
		if !s.Player && r.H >= 3 && r.W >= len(s.Label)+2 && dst.Bounds().Contains(lx, ly) {
			dst.DrawTextColored(lx, ly, s.Label, core.ColorGray)
		}
	}
}

// drawHUD writes the status line on row 0.
func drawHUD(dst *core.Screen, f sim.Frame, title string) {
	state := "air"
	if f.Grounded {
		state = "ground"
	}

	var player, focus string
	for _, s := range f.Sprites {
		if s.Player {
			player = fmt.Sprintf("x %.0f y %.0f", s.World.X, s.World.Y)
		}
		if s.Focused {
			focus = s.Label
		}
	}

	hud := fmt.Sprintf(" %s | %3.0f FPS | %s | vx %.0f vy %.0f | %s | jumps %d | camera: %s ",
		title, f.FPS, player, f.Player.Velocity.X, f.Player.Velocity.Y, state, f.Stats.Jumps, focus)
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), 1), ' ', core.ColorDefault)
	dst.DrawText(0, 0, hud)
	dst.DrawTextColored(1, 0, title, core.ColorWhite)
}
