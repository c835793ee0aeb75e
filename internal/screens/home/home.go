package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ewei/lexikid/internal/game"
	"github.com/ewei/lexikid/internal/profile"
	"github.com/ewei/lexikid/internal/progress"
	"github.com/ewei/lexikid/internal/router"
	"github.com/ewei/lexikid/internal/screen"
	gamescreen "github.com/ewei/lexikid/internal/screens/game"
	"github.com/ewei/lexikid/internal/screens/leaderboard"
	"github.com/ewei/lexikid/internal/screens/learn"
	profilescreen "github.com/ewei/lexikid/internal/screens/profile"
	"github.com/ewei/lexikid/internal/store"
	"github.com/ewei/lexikid/internal/ui/components"
	"github.com/ewei/lexikid/internal/ui/theme"
)

// Block-letter title.
const titleFull = ` ██╗     ███████╗██╗  ██╗██╗██╗  ██╗██╗██████╗
 ██║     ██╔════╝╚██╗██╔╝██║██║ ██╔╝██║██╔══██╗
 ██║     █████╗   ╚███╔╝ ██║█████╔╝ ██║██║  ██║
 ██║     ██╔══╝   ██╔██╗ ██║██╔═██╗ ██║██║  ██║
 ███████╗███████╗██╔╝ ██╗██║██║  ██╗██║██████╔╝
 ╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═╝╚═╝╚═════╝`

const titleCompact = "L · E · X · I · K · I · D"

// HomeScreen is the application's main menu.
type HomeScreen struct {
	menu  components.Menu
	stats profile.Stats
}

var _ screen.Screen = (*HomeScreen)(nil)

// Deps bundles the services the home screen hands down to the screens
// it opens.
type Deps struct {
	Items        store.ItemRepo
	Sessions     store.SessionRepo
	Achievements store.AchievementRepo
	Engine       *game.Engine
	Progress     *progress.Service
	Profile      *profile.Service
}

// New creates the home screen with the initial stats snapshot.
func New(deps Deps, stats profile.Stats) *HomeScreen {
	items := []components.MenuItem{
		{Label: "开始游戏  PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: gamescreen.New(deps.Engine)}
			}
		}},
		{Label: "学习词语  LEARN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: learn.New(deps.Items, deps.Progress)}
			}
		}},
		{Label: "排行榜   LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(deps.Sessions)}
			}
		}},
		{Label: "我的成就  PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: profilescreen.New(deps.Profile, deps.Achievements),
				}
			}
		}},
		{Label: "退出     EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		stats: stats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// SetStats refreshes the stats line without rebuilding the menu.
func (h *HomeScreen) SetStats(stats profile.Stats) {
	h.stats = stats
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 18 || width < 100

	title := titleFull
	if compact {
		title = titleCompact
	}
	titleBlock := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title))

	subtitle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("和我一起认识世界吧！")

	statsLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(renderStatsLine(h.stats))

	menuBlock := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(h.menu.View()))

	sections := []string{titleBlock, subtitle, statsLine, menuBlock}
	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderStatsLine(stats profile.Stats) string {
	learned := theme.Correct.Render(fmt.Sprintf("📖 已学 %d", stats.LearnedCount))
	star := theme.StarStyle.Render(fmt.Sprintf("⭐ %d", stats.TotalStars))
	games := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("🎮 %d", stats.GameCount))
	return learned + "   " + star + "   " + games
}
