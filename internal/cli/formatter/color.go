package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the style for a task, area or room status.
func StatusColor(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusOverdue:
		return StyleRed
	case domain.StatusDue:
		return StyleOrange
	case domain.StatusSoon:
		return StyleYellow
	case domain.StatusComplete:
		return StyleGreen
	default:
		return StyleDim
	}
}

func statusGlyph(s domain.Status) string {
	switch s {
	case domain.StatusOverdue:
		return "▲"
	case domain.StatusDue:
		return "●"
	case domain.StatusSoon:
		return "◐"
	case domain.StatusComplete:
		return "✔"
	default:
		return "·"
	}
}

// StatusPill returns a colored indicator such as "▲ OVERDUE".
func StatusPill(s domain.Status) string {
	if s == "" {
		s = domain.StatusNeutral
	}
	return StatusColor(s).Render(statusGlyph(s) + " " + strings.ToUpper(string(s)))
}

// StatusDot returns just the colored glyph.
func StatusDot(s domain.Status) string {
	return StatusColor(s).Render(statusGlyph(s))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
