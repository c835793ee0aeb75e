// Package profile renders the child's stats and achievement wall.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	prof "github.com/ewei/lexikid/internal/profile"
	"github.com/ewei/lexikid/internal/router"
	"github.com/ewei/lexikid/internal/screen"
	"github.com/ewei/lexikid/internal/store"
	"github.com/ewei/lexikid/internal/ui/components"
	"github.com/ewei/lexikid/internal/ui/layout"
	"github.com/ewei/lexikid/internal/ui/theme"
)

type loadedMsg struct {
	Stats        prof.Stats
	Achievements []store.Achievement
	Err          error
}

// ProfileScreen shows the profile snapshot and every achievement with
// its unlock state.
type ProfileScreen struct {
	profile      *prof.Service
	achievements store.AchievementRepo

	stats  prof.Stats
	wall   []store.Achievement
	loaded bool
	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen.
func New(profileSvc *prof.Service, achievements store.AchievementRepo) *ProfileScreen {
	return &ProfileScreen{profile: profileSvc, achievements: achievements}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "返回"}}
}

func (s *ProfileScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := s.profile.Compute(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		wall, err := s.achievements.All(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Stats: stats, Achievements: wall}
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.stats = msg.Stats
		s.wall = msg.Achievements
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, height, theme.Incorrect.Render("出错了: "+s.errMsg))
	}
	if !s.loaded {
		return centered(width, height, theme.Hint.Render("加载中…"))
	}

	statLines := []string{
		theme.Title.Render("我的成就"),
		"",
		theme.Body.Render(fmt.Sprintf("📖 已学词语   %d", s.stats.LearnedCount)),
		theme.Body.Render(fmt.Sprintf("🎮 游戏次数   %d", s.stats.GameCount)),
		theme.StarStyle.Render(fmt.Sprintf("⭐ 星星      %d", s.stats.TotalStars)),
		theme.Body.Render(fmt.Sprintf("🏅 成就      %d/%d",
			s.stats.UnlockedAchievements, s.stats.TotalAchievements)),
		"",
		components.NewProgressBar(fmt.Sprintf("Lv.%d", s.stats.Level),
			levelProgress(s.stats.LearnedCount), false).View(),
	}
	statsCard := theme.Card.Render(strings.Join(statLines, "\n"))

	var wallLines []string
	for _, a := range s.wall {
		if a.Unlocked {
			line := fmt.Sprintf("%s %s — %s", a.Icon, a.Name, a.Description)
			if a.UnlockedAt != nil {
				line += theme.Hint.Render("  " + a.UnlockedAt.Format("2006-01-02"))
			}
			wallLines = append(wallLines, theme.Correct.Render(line))
		} else {
			wallLines = append(wallLines, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("🔒 %s — %s", a.Name, a.Description)))
		}
	}
	wallCard := theme.Card.Render(strings.Join(wallLines, "\n"))

	return centered(width, height, statsCard+"\n\n"+wallCard)
}

// levelProgress is how far into the current level the child is.
func levelProgress(learned int) float64 {
	return float64(learned%prof.LevelStep) / float64(prof.LevelStep)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
