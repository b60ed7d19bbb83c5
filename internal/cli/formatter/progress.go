package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/homekeep/internal/domain"
)

// RenderProgress renders a bar of the given width. pct is clamped to 0..1.
func RenderProgress(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	pct = min(max(pct, 0), 1)

	filled := int(pct * float64(width))
	empty := width - filled
	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// ScoreBar renders a 0-100 health score as a bar colored by status,
// followed by the rounded percentage. Areas and rooms without signal
// get a dimmed placeholder.
func ScoreBar(score float64, s domain.Status, hasSignal bool, width int) string {
	if !hasSignal {
		return StyleDim.Render(strings.Repeat("·", width) + "    -")
	}
	bar := StatusColor(s).Render(RenderProgress(score/100, width))
	return fmt.Sprintf("%s %3.0f%%", bar, score)
}
