package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/soaring-eagle/internal/games/eagle"
)

// hudHeight is the number of rows outside the scene: status and help.
const hudHeight = 2

const staminaBarWidth = 20

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	hudDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	shieldStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func newStaminaBar() progress.Model {
	return progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(staminaBarWidth),
		progress.WithoutPercentage(),
	)
}

// renderHUD draws the status line: mode, score, clock and stamina.
func renderHUD(snap eagle.Snapshot, bar progress.Model, status string, width int) string {
	mode := fmt.Sprintf("Level %d", snap.Level)
	if snap.Tournament {
		mode = "Tournament"
	}

	frac := 0.0
	if snap.StaminaMax > 0 {
		frac = snap.Stamina / snap.StaminaMax
	}

	parts := []string{
		hudStyle.Render(fmt.Sprintf(" %s  Score %d  Time %4.1f ", mode, snap.Score, snap.TimeRemaining.Seconds())),
		hudDimStyle.Render(" Stamina "),
		bar.ViewAs(frac),
	}
	if snap.Accelerating {
		parts = append(parts, boostStyle.Render(" BOOST"))
	}
	switch {
	case snap.Invulnerable:
		parts = append(parts, shieldStyle.Render(" SHIELD"))
	case snap.HasCollidedOnce:
		parts = append(parts, statusStyle.Render(" LAST CHANCE"))
	}
	if status != "" {
		parts = append(parts, statusStyle.Render("  "+status))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
