package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// previewZoom is how many times further out the preview camera sits
// compared to play.
const previewZoom = 4

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuItemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	menuCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	previewBorder  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the scenario picker. The selected
// scenario is drawn zoomed out next to the list.
type MenuModel struct {
	items     []registry.Info
	cursor    int
	runtime   core.RuntimeConfig
	render    config.RenderConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *registry.Info
	openRuns  bool
}

// NewMenuModel creates a menu over every registered scenario.
func NewMenuModel(rt core.RuntimeConfig, rc config.RenderConfig) MenuModel {
	return MenuModel{
		items:     registry.List(),
		runtime:   rt,
		render:    rc,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}

	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case MenuActionSelect:
		if n > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}

	case MenuActionRuns:
		m.openRuns = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the list and the preview side by side.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.runtime.ScreenW

	var list strings.Builder
	list.WriteString(menuTitleStyle.Render("P L A T F O R M E R"))
	list.WriteString("\n\n")
	if len(m.items) == 0 {
		list.WriteString("No scenarios registered.\n")
	}
	for i, item := range m.items {
		line := fmt.Sprintf("%-12s %2d bodies", item.Title, item.Entities)
		if i == m.cursor {
			list.WriteString(menuCursor.Render("> " + line))
		} else {
			list.WriteString(menuItemStyle.Render(line))
		}
		list.WriteString("\n")
	}

	body := list.String()
	if pw, ph := width/2, m.runtime.ScreenH-8; len(m.items) > 0 && pw >= 20 && ph >= 6 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "   ", previewBorder.Render(m.preview(pw, ph)))
	}

	hint := menuHintStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Runs  |  Q: Quit")
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, hint) + "\n"
}

// preview draws the scenario under the cursor at its spawn state.
func (m MenuModel) preview(cols, rows int) string {
	w, err := registry.Create(m.items[m.cursor].ID)
	if err != nil {
		return err.Error()
	}

	rc := m.render
	rc.PixelsPerCol *= previewZoom
	rc.PixelsPerRow *= previewZoom

	rt := core.RuntimeConfig{ScreenW: cols, ScreenH: rows}
	w.Update(rt.Viewport(rc.PixelsPerCol, rc.PixelsPerRow))

	screen := core.NewScreen(cols, rows)
	drawSprites(screen, w.Sprites(), rc)
	return RenderScreen(screen)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *registry.Info {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRuns returns true if user requested the run history.
func (m MenuModel) WantsRuns() bool {
	return m.openRuns
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
