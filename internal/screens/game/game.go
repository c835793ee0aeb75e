package game

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ewei/lexikid/internal/catalog"
	quiz "github.com/ewei/lexikid/internal/game"
	"github.com/ewei/lexikid/internal/router"
	"github.com/ewei/lexikid/internal/screen"
	"github.com/ewei/lexikid/internal/store"
	"github.com/ewei/lexikid/internal/ui/components"
	"github.com/ewei/lexikid/internal/ui/layout"
)

// feedbackDelay is how long the verdict stays up before the next
// question, long enough for a young child to take it in.
const feedbackDelay = time.Second

// GameScreen drives one visit to the quiz: mode and category menus,
// the question loop, the result view, and the mode leaderboard.
type GameScreen struct {
	engine *quiz.Engine

	modeMenu     components.Menu
	categoryMenu components.Menu
	resultMenu   components.Menu

	mc              components.MultiChoice
	showingFeedback bool

	boardRecords []store.SessionRecord

	emptyCategory bool
	errMsg        string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// New creates the game screen over a fresh engine menu state.
func New(engine *quiz.Engine) *GameScreen {
	engine.ToMenu()
	g := &GameScreen{engine: engine}
	g.modeMenu = g.buildModeMenu()
	g.resultMenu = g.buildResultMenu()
	return g
}

func (g *GameScreen) Init() tea.Cmd {
	return nil
}

func (g *GameScreen) Title() string {
	return "Game"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch g.engine.State() {
	case quiz.StatePlaying:
		if g.showingFeedback {
			return []layout.KeyHint{{Key: "…", Description: "下一题马上来"}}
		}
		return []layout.KeyHint{
			{Key: "1-4/↑↓", Description: "选答案"},
			{Key: "Enter", Description: "确定"},
			{Key: "Esc", Description: "不玩了"},
		}
	case quiz.StateLeaderboard:
		return []layout.KeyHint{{Key: "Esc/B", Description: "返回"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "选择"},
		{Key: "Enter", Description: "确定"},
		{Key: "Esc", Description: "返回"},
	}
}

func (g *GameScreen) buildModeMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(quiz.Modes()))
	for _, m := range quiz.Modes() {
		mode := m
		items = append(items, components.MenuItem{
			Label: mode.DisplayName(),
			Action: func() tea.Cmd {
				if err := g.engine.SelectMode(mode); err != nil {
					g.errMsg = err.Error()
					return nil
				}
				g.categoryMenu = g.buildCategoryMenu()
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (g *GameScreen) buildCategoryMenu() components.Menu {
	cats := append([]catalog.Category{catalog.AllCategories}, catalog.All()...)
	items := make([]components.MenuItem, 0, len(cats))
	for _, c := range cats {
		cat := c
		label := cat.Icon() + " " + cat.DisplayName()
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				if err := g.engine.SelectCategory(cat); err != nil {
					g.errMsg = err.Error()
					return nil
				}
				return g.startRun()
			},
		})
	}
	return components.NewMenu(items)
}

func (g *GameScreen) buildResultMenu() components.Menu {
	return components.NewMenu([]components.MenuItem{
		{Label: "再玩一次  PLAY AGAIN", Action: func() tea.Cmd {
			return g.playAgain()
		}},
		{Label: "排行榜   LEADERBOARD", Action: func() tea.Cmd {
			return g.openLeaderboard()
		}},
		{Label: "返回菜单  MENU", Action: func() tea.Cmd {
			g.engine.ToMenu()
			g.modeMenu = g.buildModeMenu()
			return nil
		}},
	})
}

func (g *GameScreen) startRun() tea.Cmd {
	return func() tea.Msg {
		ok, err := g.engine.StartRun(context.Background())
		return runStartedMsg{OK: ok, Err: err}
	}
}

func (g *GameScreen) playAgain() tea.Cmd {
	return func() tea.Msg {
		ok, err := g.engine.PlayAgain(context.Background())
		return runStartedMsg{OK: ok, Err: err}
	}
}

func (g *GameScreen) openLeaderboard() tea.Cmd {
	if err := g.engine.OpenLeaderboard(); err != nil {
		g.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg {
		recs, err := g.engine.Leaderboard(context.Background(), 0)
		return leaderboardLoadedMsg{Records: recs, Err: err}
	}
}

func (g *GameScreen) advance() tea.Cmd {
	return func() tea.Msg {
		return advanceDoneMsg{Err: g.engine.Advance(context.Background())}
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runStartedMsg:
		return g.handleRunStarted(msg)

	case feedbackDoneMsg:
		g.showingFeedback = false
		return g, g.advance()

	case advanceDoneMsg:
		return g.handleAdvanceDone(msg)

	case leaderboardLoadedMsg:
		if msg.Err != nil {
			g.errMsg = msg.Err.Error()
			g.engine.CloseLeaderboard()
			return g, nil
		}
		g.boardRecords = msg.Records
		return g, nil

	case tea.KeyMsg:
		return g.handleKey(msg)
	}
	return g, nil
}

func (g *GameScreen) handleRunStarted(msg runStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.errMsg = msg.Err.Error()
		return g, nil
	}
	if !msg.OK {
		g.emptyCategory = true
		return g, nil
	}
	g.emptyCategory = false
	g.setupQuestion()
	return g, nil
}

func (g *GameScreen) handleAdvanceDone(msg advanceDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		g.errMsg = msg.Err.Error()
		return g, nil
	}
	switch g.engine.State() {
	case quiz.StatePlaying:
		g.setupQuestion()
		return g, nil
	case quiz.StateResult:
		g.resultMenu = g.buildResultMenu()
		return g, func() tea.Msg { return router.StatsChangedMsg{} }
	}
	return g, nil
}

// setupQuestion rebuilds the multichoice from the engine's current
// question, labeling options by Chinese name.
func (g *GameScreen) setupQuestion() {
	q := g.engine.CurrentQuestion()
	if q == nil {
		return
	}
	options := make([]string, len(q.Options))
	correctIndex := 0
	for i, opt := range q.Options {
		options[i] = opt.NameCN
		if opt.ID == q.Target.ID {
			correctIndex = i
		}
	}
	g.mc = components.NewMultiChoice(g.prompt(q), options, correctIndex)
}

// prompt renders the question cue for the selected mode.
func (g *GameScreen) prompt(q *quiz.Question) string {
	switch g.engine.Mode() {
	case quiz.ModeListen:
		return "🔊 听一听: " + q.Target.AudioCN
	default:
		return q.Target.NameEN + "\n" + q.Target.DescriptionCN
	}
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if g.errMsg != "" {
		g.errMsg = ""
		return g, nil
	}

	switch g.engine.State() {
	case quiz.StateMenu:
		if key == "esc" {
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		g.modeMenu, cmd = g.modeMenu.Update(msg)
		return g, cmd

	case quiz.StateModeSelected, quiz.StateCategorySelected:
		if g.emptyCategory && key != "" {
			g.emptyCategory = false
			return g, nil
		}
		if key == "esc" {
			g.engine.Abandon()
			g.modeMenu = g.buildModeMenu()
			return g, nil
		}
		var cmd tea.Cmd
		g.categoryMenu, cmd = g.categoryMenu.Update(msg)
		return g, cmd

	case quiz.StatePlaying:
		if g.showingFeedback {
			return g, nil
		}
		if key == "esc" {
			g.engine.Abandon()
			g.modeMenu = g.buildModeMenu()
			return g, nil
		}
		var cmd tea.Cmd
		g.mc, cmd = g.mc.Update(msg)
		if g.mc.Submitted {
			return g, g.submit()
		}
		return g, cmd

	case quiz.StateResult:
		if key == "esc" {
			g.engine.ToMenu()
			g.modeMenu = g.buildModeMenu()
			return g, nil
		}
		var cmd tea.Cmd
		g.resultMenu, cmd = g.resultMenu.Update(msg)
		return g, cmd

	case quiz.StateLeaderboard:
		switch key {
		case "esc", "b", "q":
			g.engine.CloseLeaderboard()
			g.boardRecords = nil
			return g, nil
		}
	}
	return g, nil
}

// submit hands the chosen option to the engine and schedules the
// feedback dismissal.
func (g *GameScreen) submit() tea.Cmd {
	q := g.engine.CurrentQuestion()
	if q == nil || g.mc.ChosenIndex < 0 || g.mc.ChosenIndex >= len(q.Options) {
		return nil
	}
	if _, err := g.engine.SubmitAnswer(q.Options[g.mc.ChosenIndex].ID); err != nil {
		g.errMsg = err.Error()
		return nil
	}
	g.showingFeedback = true
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}
