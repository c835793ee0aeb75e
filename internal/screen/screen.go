package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ewei/lexikid/internal/ui/layout"
)

// Screen is one full-area view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface screens implement to put
// their own key hints in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
