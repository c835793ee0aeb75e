package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quiz "github.com/ewei/lexikid/internal/game"
	"github.com/ewei/lexikid/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	if g.errMsg != "" {
		return centered(width, height,
			theme.Incorrect.Render("出错了: "+g.errMsg)+"\n\n"+
				theme.Hint.Render("按任意键继续"))
	}

	switch g.engine.State() {
	case quiz.StateMenu:
		return g.viewModeMenu(width, height)
	case quiz.StateModeSelected, quiz.StateCategorySelected:
		return g.viewCategoryMenu(width, height)
	case quiz.StatePlaying:
		return g.viewQuestion(width, height)
	case quiz.StateResult:
		return g.viewResult(width, height)
	case quiz.StateLeaderboard:
		return g.viewLeaderboard(width, height)
	}
	return ""
}

func (g *GameScreen) viewModeMenu(width, height int) string {
	title := theme.Title.Render("选一个玩法吧！")
	return centered(width, height, title+"\n\n"+theme.Card.Render(g.modeMenu.View()))
}

func (g *GameScreen) viewCategoryMenu(width, height int) string {
	if g.emptyCategory {
		return centered(width, height,
			theme.Body.Render("这个分类还没有词语哦")+"\n\n"+
				theme.Hint.Render("按任意键换一个分类"))
	}
	title := theme.Title.Render(g.engine.Mode().DisplayName() + " — 选一个分类")
	return centered(width, height, title+"\n\n"+theme.Card.Render(g.categoryMenu.View()))
}

func (g *GameScreen) viewQuestion(width, height int) string {
	run := g.engine.Run()
	q := g.engine.CurrentQuestion()
	if run == nil || q == nil {
		return ""
	}

	header := theme.Subtitle.Render(fmt.Sprintf("第 %d/%d 题    得分 %d",
		run.QuestionNumber(), run.TotalQuestions(), run.Score))

	body := g.mc.View()

	var feedback string
	if g.showingFeedback {
		if q.Correct {
			feedback = theme.Correct.Render("✓ 答对啦！+10 分")
		} else {
			feedback = theme.Incorrect.Render("✗ 是 " + q.Target.NameCN + " 哦")
		}
	}

	content := header + "\n\n" + theme.Card.Render(body)
	if feedback != "" {
		content += "\n\n" + feedback
	}
	return centered(width, height, content)
}

func (g *GameScreen) viewResult(width, height int) string {
	run := g.engine.Run()
	if run == nil {
		return ""
	}

	lines := []string{
		theme.Title.Render("🎉 游戏结束！"),
		"",
		theme.Body.Render(fmt.Sprintf("得分: %d", run.Score)),
		theme.Body.Render(fmt.Sprintf("答对: %d/%d", run.CorrectCount, run.TotalQuestions())),
		theme.StarStyle.Render(fmt.Sprintf("⭐ +%d", run.Score/10)),
	}
	if run.Report != nil {
		for _, a := range run.Report.Unlocked {
			lines = append(lines, theme.Correct.Render(
				fmt.Sprintf("%s 解锁成就: %s +%d⭐", a.Icon, a.Name, a.Reward)))
		}
	}
	card := theme.Card.Render(strings.Join(lines, "\n"))
	return centered(width, height, card+"\n\n"+g.resultMenu.View())
}

func (g *GameScreen) viewLeaderboard(width, height int) string {
	title := theme.Title.Render("🏆 " + g.engine.Mode().DisplayName() + " 排行榜")

	if len(g.boardRecords) == 0 {
		return centered(width, height,
			title+"\n\n"+theme.Hint.Render("还没有记录，快去玩一局吧！"))
	}

	var rows []string
	for i, rec := range g.boardRecords {
		rows = append(rows, fmt.Sprintf("%2d.  %4d 分   %d/%d   %s",
			i+1, rec.Score, rec.CorrectCount, rec.TotalCount,
			rec.Timestamp.Format("01-02 15:04")))
	}
	table := theme.Card.Render(theme.Body.Render(strings.Join(rows, "\n")))
	return centered(width, height, title+"\n\n"+table)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
