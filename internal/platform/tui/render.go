package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/soaring-eagle/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorFarLayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	core.ColorNearLayer: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorEagle:     lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
	core.ColorEagleHit:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorCloud:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorBalloon:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorZeppelin:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorCoin:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorWarning:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
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
