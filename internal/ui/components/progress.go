package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ewei/lexikid/internal/ui/theme"
)

// progressSegments is the number of stars in a full bar.
const progressSegments = 10

// ProgressBar renders progress as a row of stars, one per tenth
// filled. Young readers parse stars faster than block bars.
type ProgressBar struct {
	Label       string
	Ratio       float64
	ShowPercent bool
}

func NewProgressBar(label string, ratio float64, showPercent bool) ProgressBar {
	return ProgressBar{Label: label, Ratio: ratio, ShowPercent: showPercent}
}

func (p ProgressBar) View() string {
	ratio := p.Ratio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*progressSegments + 0.5)

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}
	b.WriteString(theme.StarStyle.Render(strings.Repeat("★", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("☆", progressSegments-filled)))
	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  %d%%", int(ratio*100))))
	}
	return b.String()
}
