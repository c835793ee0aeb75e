// Package leaderboard shows the per-mode top scores.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ewei/lexikid/internal/game"
	"github.com/ewei/lexikid/internal/router"
	"github.com/ewei/lexikid/internal/screen"
	"github.com/ewei/lexikid/internal/store"
	"github.com/ewei/lexikid/internal/ui/layout"
	"github.com/ewei/lexikid/internal/ui/theme"
)

type loadedMsg struct {
	Mode    game.Mode
	Records []store.SessionRecord
	Err     error
}

// LeaderboardScreen shows the top scores for one mode at a time, with
// left/right switching between modes.
type LeaderboardScreen struct {
	sessions store.SessionRepo

	modes    []game.Mode
	modeIdx  int
	records  []store.SessionRecord
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates the leaderboard screen on the first mode.
func New(sessions store.SessionRepo) *LeaderboardScreen {
	return &LeaderboardScreen{
		sessions: sessions,
		modes:    game.Modes(),
	}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return s.load()
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "换玩法"},
		{Key: "Esc", Description: "返回"},
	}
}

func (s *LeaderboardScreen) load() tea.Cmd {
	mode := s.modes[s.modeIdx]
	s.loading = true
	return func() tea.Msg {
		recs, err := s.sessions.TopScores(context.Background(),
			string(mode), game.DefaultLeaderboardSize)
		return loadedMsg{Mode: mode, Records: recs, Err: err}
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		if msg.Mode != s.modes[s.modeIdx] {
			// Stale load from a fast mode switch.
			return s, nil
		}
		s.records = msg.Records
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			s.modeIdx = (s.modeIdx + len(s.modes) - 1) % len(s.modes)
			return s, s.load()
		case "right", "l":
			s.modeIdx = (s.modeIdx + 1) % len(s.modes)
			return s, s.load()
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	mode := s.modes[s.modeIdx]

	var tabs []string
	for i, m := range s.modes {
		label := " " + m.DisplayName() + " "
		if i == s.modeIdx {
			tabs = append(tabs, theme.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render(" "+label+" "))
		}
	}
	header := theme.Title.Render("🏆 排行榜") + "\n" + strings.Join(tabs, " ")

	var body string
	switch {
	case s.errMsg != "":
		body = theme.Incorrect.Render("出错了: " + s.errMsg)
	case s.loading:
		body = theme.Hint.Render("加载中…")
	case len(s.records) == 0:
		body = theme.Hint.Render("「" + mode.DisplayName() + "」还没有记录，快去玩一局吧！")
	default:
		var rows []string
		for i, rec := range s.records {
			medal := "  "
			switch i {
			case 0:
				medal = "🥇"
			case 1:
				medal = "🥈"
			case 2:
				medal = "🥉"
			}
			rows = append(rows, fmt.Sprintf("%s %2d.  %4d 分   %d/%d   %s",
				medal, i+1, rec.Score, rec.CorrectCount, rec.TotalCount,
				rec.Timestamp.Format("01-02 15:04")))
		}
		body = theme.Card.Render(theme.Body.Render(strings.Join(rows, "\n")))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(header + "\n\n" + body)
}
