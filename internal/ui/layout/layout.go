// Package layout renders the fixed chrome around every screen: the
// stats header, the key-hint footer, and the too-small fallback.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ewei/lexikid/internal/ui/theme"
)

const (
	MinWidth  = 72
	MinHeight = 22
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"窗口太小啦！\n\n请放大到至少 %d x %d\n现在是 %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

var chromeBox = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader draws the top bar: app name left, screen title center,
// the child's stars and level right.
func RenderHeader(title string, stars, level int, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Lexikid")

	right := theme.StarStyle.Render(fmt.Sprintf("⭐ %d", stars)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("Lv.%d", level)) +
		"  "

	inner := width - 2
	if inner < 0 {
		inner = 0
	}

	sides := lipgloss.Width(left) + lipgloss.Width(right)
	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(max(inner-sides, 0)).
		Align(lipgloss.Center).
		Render(title)

	return chromeBox.Width(width).Render(left + center + right)
}

// RenderFooter draws the key hints for the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return chromeBox.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content, and footer to fill the terminal.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)
	return header + "\n" + body + "\n" + footer
}
