package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ewei/lexikid/internal/game"
	"github.com/ewei/lexikid/internal/profile"
	"github.com/ewei/lexikid/internal/progress"
	"github.com/ewei/lexikid/internal/router"
	"github.com/ewei/lexikid/internal/screen"
	"github.com/ewei/lexikid/internal/screens/home"
	"github.com/ewei/lexikid/internal/store"
	"github.com/ewei/lexikid/internal/ui/layout"
)

// Options carries the wired services the TUI runs on.
type Options struct {
	Items        store.ItemRepo
	Sessions     store.SessionRepo
	Achievements store.AchievementRepo

	Engine   *game.Engine
	Progress *progress.Service
	Profile  *profile.Service
}

// statsLoadedMsg carries a recomputed header snapshot.
type statsLoadedMsg struct {
	Stats profile.Stats
	Err   error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile *profile.Service
	stats   profile.Stats
	width   int
	height  int
}

// newAppModel builds the model with the home screen at the bottom of
// the stack.
func newAppModel(opts Options) AppModel {
	stats, _ := opts.Profile.Compute(context.Background())

	homeScreen := home.New(home.Deps{
		Items:        opts.Items,
		Sessions:     opts.Sessions,
		Achievements: opts.Achievements,
		Engine:       opts.Engine,
		Progress:     opts.Progress,
		Profile:      opts.Profile,
	}, stats)

	return AppModel{
		router:  router.New(homeScreen),
		profile: opts.Profile,
		stats:   stats,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.StatsChangedMsg:
		return m, m.refreshStats()

	case statsLoadedMsg:
		if msg.Err == nil {
			m.stats = msg.Stats
			m.pushStatsToHome()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// refreshStats asks the profile service for a fresh snapshot. The
// numbers come back through the service's subscription, which Run
// wires to a statsLoadedMsg.
func (m AppModel) refreshStats() tea.Cmd {
	svc := m.profile
	return func() tea.Msg {
		if err := svc.Notify(context.Background()); err != nil {
			return statsLoadedMsg{Err: err}
		}
		return nil
	}
}

// pushStatsToHome keeps the home screen's stats line in step with the
// header.
func (m AppModel) pushStatsToHome() {
	var bottom screen.Screen
	if m.router.Depth() > 0 {
		bottom = m.router.Active()
	}
	if m.router.Depth() == 1 {
		if h, ok := bottom.(*home.HomeScreen); ok {
			h.SetStats(m.stats)
		}
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats.TotalStars, m.stats.Level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if len(footerHints) == 0 {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and subscribes the header to
// profile changes.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	opts.Profile.Subscribe(func(stats profile.Stats) {
		p.Send(statsLoadedMsg{Stats: stats})
	})
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
