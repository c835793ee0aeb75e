// Package learn implements the browse-and-study flow: pick a
// category, page through its items, and have each advance recorded as
// a view.
package learn

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/progress"
	"github.com/ewei/lexikid/internal/rewards"
	"github.com/ewei/lexikid/internal/router"
	"github.com/ewei/lexikid/internal/screen"
	"github.com/ewei/lexikid/internal/store"
	"github.com/ewei/lexikid/internal/ui/components"
	"github.com/ewei/lexikid/internal/ui/layout"
	"github.com/ewei/lexikid/internal/ui/theme"
)

// randomSetSize is how many items a mixed browsing round holds.
const randomSetSize = 10

type phase int

const (
	phasePickCategory phase = iota
	phaseBrowsing
	phaseFinished
)

type itemsLoadedMsg struct {
	Items []store.Item
	Err   error
}

type recordLoadedMsg struct {
	Record *store.ProgressRecord
}

type viewedMsg struct {
	Report *rewards.Report
	Err    error
}

// LearnScreen pages a child through a category's items.
type LearnScreen struct {
	items    store.ItemRepo
	progress *progress.Service

	phase        phase
	categoryMenu components.Menu
	category     catalog.Category
	favorites    bool

	set    []store.Item
	index  int
	record *store.ProgressRecord

	spelling bool
	input    components.TextInput

	unlocked []store.Achievement
	errMsg   string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates the learn screen at category selection.
func New(items store.ItemRepo, progressSvc *progress.Service) *LearnScreen {
	l := &LearnScreen{items: items, progress: progressSvc}
	l.categoryMenu = l.buildCategoryMenu()
	return l
}

func (l *LearnScreen) Init() tea.Cmd {
	return nil
}

func (l *LearnScreen) Title() string {
	return "Learn"
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	switch l.phase {
	case phaseBrowsing:
		if l.spelling {
			return []layout.KeyHint{
				{Key: "Enter", Description: "检查"},
				{Key: "Esc", Description: "取消"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter/→", Description: "下一个"},
			{Key: "T", Description: "拼一拼"},
			{Key: "R", Description: "再学一遍"},
			{Key: "F", Description: "收藏"},
			{Key: "Esc", Description: "返回"},
		}
	case phaseFinished:
		return []layout.KeyHint{{Key: "Enter", Description: "返回"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "选择"},
		{Key: "Enter", Description: "确定"},
		{Key: "Esc", Description: "返回"},
	}
}

func (l *LearnScreen) buildCategoryMenu() components.Menu {
	cats := append([]catalog.Category{catalog.AllCategories}, catalog.All()...)
	items := make([]components.MenuItem, 0, len(cats))
	for _, c := range cats {
		cat := c
		items = append(items, components.MenuItem{
			Label: cat.Icon() + " " + cat.DisplayName(),
			Action: func() tea.Cmd {
				l.category = cat
				l.favorites = false
				return l.loadItems(cat)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "❤ 我的收藏",
		Action: func() tea.Cmd {
			l.category = catalog.AllCategories
			l.favorites = true
			return l.loadFavorites()
		},
	})
	return components.NewMenu(items)
}

// loadFavorites resolves favorited progress records back to items.
func (l *LearnScreen) loadFavorites() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		recs, err := l.progress.Favorites(ctx)
		if err != nil {
			return itemsLoadedMsg{Err: err}
		}
		items := make([]store.Item, 0, len(recs))
		for _, rec := range recs {
			it, err := l.items.Get(ctx, rec.ItemID)
			if err != nil {
				return itemsLoadedMsg{Err: err}
			}
			if it != nil {
				items = append(items, *it)
			}
		}
		return itemsLoadedMsg{Items: items}
	}
}

func (l *LearnScreen) loadItems(cat catalog.Category) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if cat == catalog.AllCategories {
			items, err := l.items.Sample(ctx, randomSetSize)
			return itemsLoadedMsg{Items: items, Err: err}
		}
		items, err := l.items.ByCategory(ctx, cat)
		if err == nil {
			// Vary the walk order so repeat visits feel fresh.
			rand.Shuffle(len(items), func(i, j int) {
				items[i], items[j] = items[j], items[i]
			})
		}
		return itemsLoadedMsg{Items: items, Err: err}
	}
}

func (l *LearnScreen) loadRecord() tea.Cmd {
	if l.index >= len(l.set) {
		return nil
	}
	id := l.set[l.index].ID
	return func() tea.Msg {
		rec, err := l.progress.Get(context.Background(), id)
		if err != nil {
			return recordLoadedMsg{}
		}
		return recordLoadedMsg{Record: rec}
	}
}

// markViewed records the current item as seen and moves on.
func (l *LearnScreen) markViewed() tea.Cmd {
	id := l.set[l.index].ID
	return func() tea.Msg {
		report, err := l.progress.MarkViewed(context.Background(), id)
		return viewedMsg{Report: report, Err: err}
	}
}

func (l *LearnScreen) review() tea.Cmd {
	id := l.set[l.index].ID
	return func() tea.Msg {
		err := l.progress.Review(context.Background(), id)
		return viewedMsg{Err: err}
	}
}

func (l *LearnScreen) toggleFavorite() tea.Cmd {
	id := l.set[l.index].ID
	return func() tea.Msg {
		_, err := l.progress.ToggleFavorite(context.Background(), id)
		return viewedMsg{Err: err}
	}
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		if len(msg.Items) == 0 {
			if l.favorites {
				l.errMsg = "还没有收藏的词语哦"
			} else {
				l.errMsg = "这个分类还没有词语哦"
			}
			return l, nil
		}
		l.set = msg.Items
		l.index = 0
		l.unlocked = nil
		l.phase = phaseBrowsing
		return l, l.loadRecord()

	case recordLoadedMsg:
		l.record = msg.Record
		return l, nil

	case viewedMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		if msg.Report != nil {
			l.unlocked = append(l.unlocked, msg.Report.Unlocked...)
		}
		return l, tea.Batch(
			l.loadRecord(),
			func() tea.Msg { return router.StatsChangedMsg{} },
		)

	case tea.KeyMsg:
		return l.handleKey(msg)
	}
	return l, nil
}

func (l *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if l.errMsg != "" {
		l.errMsg = ""
		return l, nil
	}

	switch l.phase {
	case phasePickCategory:
		if key == "esc" {
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		l.categoryMenu, cmd = l.categoryMenu.Update(msg)
		return l, cmd

	case phaseBrowsing:
		if l.spelling {
			return l.handleSpellKey(msg)
		}
		switch key {
		case "esc":
			l.phase = phasePickCategory
			l.record = nil
			return l, nil
		case "t":
			l.spelling = true
			l.input = components.NewTextInput("英文怎么写？", 24)
			return l, l.input.Init()
		case "enter", "right", "l", " ":
			mark := l.markViewed()
			if l.index+1 < len(l.set) {
				l.index++
				return l, mark
			}
			l.phase = phaseFinished
			return l, mark
		case "r":
			return l, l.review()
		case "f":
			return l, l.toggleFavorite()
		}
		return l, nil

	case phaseFinished:
		switch key {
		case "enter", "esc":
			l.phase = phasePickCategory
			l.record = nil
			return l, nil
		}
	}
	return l, nil
}

// handleSpellKey runs the spell-it mini exercise. A correct spelling
// counts as a review so mastery moves up.
func (l *LearnScreen) handleSpellKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		l.spelling = false
		return l, nil
	case "enter":
		if l.input.Checked() {
			l.spelling = false
			return l, nil
		}
		guess := strings.TrimSpace(l.input.Value())
		ok := strings.EqualFold(guess, l.set[l.index].NameEN)
		l.input.Submit(ok)
		if ok {
			return l, l.review()
		}
		return l, nil
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *LearnScreen) View(width, height int) string {
	if l.errMsg != "" {
		return centered(width, height,
			theme.Body.Render(l.errMsg)+"\n\n"+theme.Hint.Render("按任意键继续"))
	}

	switch l.phase {
	case phasePickCategory:
		title := theme.Title.Render("想学哪一类呢？")
		return centered(width, height, title+"\n\n"+theme.Card.Render(l.categoryMenu.View()))
	case phaseBrowsing:
		return l.viewItem(width, height)
	case phaseFinished:
		return l.viewFinished(width, height)
	}
	return ""
}

func (l *LearnScreen) viewItem(width, height int) string {
	it := l.set[l.index]

	setName := l.category.DisplayName()
	if l.favorites {
		setName = "我的收藏"
	}
	header := theme.Subtitle.Render(fmt.Sprintf("%s %s    %d/%d",
		it.Category.Icon(), setName, l.index+1, len(l.set)))

	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(it.NameCN)
	english := it.NameEN
	if l.spelling && !l.input.Checked() {
		// Hide the answer while the child is spelling it.
		english = strings.Repeat("?", len(it.NameEN))
	}
	nameEN := lipgloss.NewStyle().Foreground(theme.Secondary).Render(english)
	desc := theme.Body.Render(it.DescriptionCN)
	audio := theme.Hint.Render("🔊 " + it.AudioCN)

	lines := []string{name, nameEN, "", desc, "", audio}

	if len(it.Features) > 0 {
		lines = append(lines, theme.Hint.Render("特点: "+strings.Join(it.Features, "、")))
	}

	if l.spelling {
		lines = append(lines, "", l.input.View())
	}

	if l.record != nil {
		bar := components.NewProgressBar("掌握",
			float64(l.record.MasteryLevel)/float64(store.MasteryCap), true)
		lines = append(lines, "", bar.View())
		if l.record.Favorite {
			lines = append(lines, theme.StarStyle.Render("❤ 已收藏"))
		}
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))

	content := header + "\n\n" + card
	for _, a := range l.unlocked {
		content += "\n" + theme.Correct.Render(
			fmt.Sprintf("%s 解锁成就: %s +%d⭐", a.Icon, a.Name, a.Reward))
	}
	return centered(width, height, content)
}

func (l *LearnScreen) viewFinished(width, height int) string {
	lines := []string{
		theme.Title.Render("🎊 这一轮学完啦！"),
		"",
		theme.Body.Render(fmt.Sprintf("一共认识了 %d 个新朋友", len(l.set))),
	}
	for _, a := range l.unlocked {
		lines = append(lines, theme.Correct.Render(
			fmt.Sprintf("%s 解锁成就: %s +%d⭐", a.Icon, a.Name, a.Reward)))
	}
	return centered(width, height, theme.Card.Render(strings.Join(lines, "\n")))
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(content)
}
