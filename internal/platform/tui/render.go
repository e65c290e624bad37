package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

const skyColor = lipgloss.Color("17")

// palette maps color roles to lipgloss styles.
var palette = map[core.Color]lipgloss.Style{
	core.ColorSky:      lipgloss.NewStyle().Background(skyColor),
	core.ColorPipe:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Background(skyColor),
	core.ColorPipeCap:  lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Background(skyColor),
	core.ColorBird:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(skyColor),
	core.ColorBirdDead: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(skyColor),
	core.ColorRoad:     lipgloss.NewStyle().Foreground(lipgloss.Color("180")).Background(lipgloss.Color("94")),
	core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("136")).Background(lipgloss.Color("58")),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(skyColor).Bold(true),
	core.ColorScore:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(skyColor).Bold(true),
	core.ColorBoard:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
}

// RenderScreen converts a Screen buffer to a styled string, one style per
// same-color run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		s.Runs(y, func(text string, c core.Color) {
			style, ok := palette[c]
			if !ok {
				style = palette[core.ColorSky]
			}
			sb.WriteString(style.Render(text))
		})
	}
	return sb.String()
}
