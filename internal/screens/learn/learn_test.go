package learn

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/progress"
	"github.com/ewei/lexikid/internal/store"
)

type mockItemRepo struct {
	items []store.Item
}

func (m *mockItemRepo) ByCategory(_ context.Context, c catalog.Category) ([]store.Item, error) {
	var out []store.Item
	for _, it := range m.items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockItemRepo) ByDifficulty(_ context.Context, d int) ([]store.Item, error) {
	var out []store.Item
	for _, it := range m.items {
		if it.Difficulty == d {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockItemRepo) Sample(_ context.Context, n int) ([]store.Item, error) {
	if n > len(m.items) {
		n = len(m.items)
	}
	return append([]store.Item(nil), m.items[:n]...), nil
}

func (m *mockItemRepo) Get(_ context.Context, id int64) (*store.Item, error) {
	for _, it := range m.items {
		if it.ID == id {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockItemRepo) Categories(_ context.Context) ([]catalog.Category, error) {
	return []catalog.Category{catalog.CategoryFruits}, nil
}

func (m *mockItemRepo) SetCustomImage(_ context.Context, _ int64, _ string) error { return nil }

func (m *mockItemRepo) Count(_ context.Context) (int, error) { return len(m.items), nil }

type mockProgressRepo struct {
	records   map[int64]*store.ProgressRecord
	viewed    []int64
	reviewed  []int64
	favorites []int64
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{records: make(map[int64]*store.ProgressRecord)}
}

func (m *mockProgressRepo) All(_ context.Context) ([]store.ProgressRecord, error) {
	var out []store.ProgressRecord
	for _, r := range m.records {
		out = append(out, *r)
	}
	return out, nil
}

func (m *mockProgressRepo) Get(_ context.Context, itemID int64) (*store.ProgressRecord, error) {
	r, ok := m.records[itemID]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *mockProgressRepo) MarkViewed(_ context.Context, itemID int64, at time.Time) error {
	m.viewed = append(m.viewed, itemID)
	r, ok := m.records[itemID]
	if !ok {
		r = &store.ProgressRecord{ItemID: itemID}
		m.records[itemID] = r
	}
	r.Viewed = true
	r.LastViewed = at
	return nil
}

func (m *mockProgressRepo) Review(_ context.Context, itemID int64, at time.Time) error {
	m.reviewed = append(m.reviewed, itemID)
	r, ok := m.records[itemID]
	if !ok {
		r = &store.ProgressRecord{ItemID: itemID}
		m.records[itemID] = r
	}
	r.ReviewCount++
	r.MasteryLevel = min(store.MasteryCap, r.MasteryLevel+store.MasteryStep)
	r.LastViewed = at
	return nil
}

func (m *mockProgressRepo) SetFavorite(_ context.Context, itemID int64, favorite bool) error {
	r, ok := m.records[itemID]
	if !ok {
		return nil
	}
	r.Favorite = favorite
	if favorite {
		m.favorites = append(m.favorites, itemID)
	}
	return nil
}

func (m *mockProgressRepo) Favorites(_ context.Context) ([]store.ProgressRecord, error) {
	var out []store.ProgressRecord
	for _, r := range m.records {
		if r.Favorite {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockProgressRepo) RecentViewed(_ context.Context, _ int) ([]store.ProgressRecord, error) {
	return nil, nil
}

func testItems() []store.Item {
	return []store.Item{
		{ID: 101, NameCN: "苹果", NameEN: "Apple", Category: catalog.CategoryFruits, Difficulty: 1, DescriptionCN: "红红的水果"},
		{ID: 102, NameCN: "香蕉", NameEN: "Banana", Category: catalog.CategoryFruits, Difficulty: 1, DescriptionCN: "弯弯的像月亮"},
	}
}

func newTestScreen(items *mockItemRepo, repo *mockProgressRepo) *LearnScreen {
	return New(items, progress.NewService(repo, nil))
}

// drive executes a returned command and feeds the resulting message
// back into the screen, up to a fixed depth.
func drive(t *testing.T, l *LearnScreen, cmd tea.Cmd) {
	t.Helper()
	for depth := 0; cmd != nil && depth < 4; depth++ {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = l.Update(msg)
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSelectCategoryStartsBrowsing(t *testing.T) {
	l := newTestScreen(&mockItemRepo{items: testItems()}, newMockProgressRepo())

	// First menu entry is the all-random set.
	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	if l.phase != phaseBrowsing {
		t.Fatalf("phase = %v, want browsing", l.phase)
	}
	if len(l.set) != 2 {
		t.Fatalf("set size = %d, want 2", len(l.set))
	}
	view := l.View(100, 40)
	if !strings.Contains(view, l.set[0].NameCN) {
		t.Errorf("view does not show the first item")
	}
}

func TestAdvanceMarksViewed(t *testing.T) {
	repo := newMockProgressRepo()
	l := newTestScreen(&mockItemRepo{items: testItems()}, repo)

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	first := l.set[0].ID
	_, cmd = l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	if len(repo.viewed) != 1 || repo.viewed[0] != first {
		t.Fatalf("viewed = %v, want [%d]", repo.viewed, first)
	}
	if l.index != 1 {
		t.Errorf("index = %d, want 1", l.index)
	}
}

func TestLastAdvanceFinishesRound(t *testing.T) {
	repo := newMockProgressRepo()
	l := newTestScreen(&mockItemRepo{items: testItems()}, repo)

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	for range l.set {
		_, cmd = l.Update(specialKey(tea.KeyEnter))
		drive(t, l, cmd)
	}

	if l.phase != phaseFinished {
		t.Fatalf("phase = %v, want finished", l.phase)
	}
	if len(repo.viewed) != 2 {
		t.Errorf("viewed %d items, want 2", len(repo.viewed))
	}
}

func TestReviewKeyRaisesMastery(t *testing.T) {
	repo := newMockProgressRepo()
	l := newTestScreen(&mockItemRepo{items: testItems()}, repo)

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	id := l.set[0].ID
	_, cmd = l.Update(keyPress('r'))
	drive(t, l, cmd)

	if len(repo.reviewed) != 1 || repo.reviewed[0] != id {
		t.Fatalf("reviewed = %v, want [%d]", repo.reviewed, id)
	}
	if rec := repo.records[id]; rec == nil || rec.MasteryLevel != store.MasteryStep {
		t.Errorf("mastery not raised after review: %+v", rec)
	}
}

func TestSpellingCorrectCountsAsReview(t *testing.T) {
	repo := newMockProgressRepo()
	l := newTestScreen(&mockItemRepo{items: testItems()}, repo)

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	_, cmd = l.Update(keyPress('t'))
	drive(t, l, cmd)
	if !l.spelling {
		t.Fatal("t did not enter spelling mode")
	}

	for _, r := range strings.ToLower(l.set[0].NameEN) {
		_, cmd = l.Update(keyPress(r))
		drive(t, l, cmd)
	}
	_, cmd = l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	if len(repo.reviewed) != 1 {
		t.Fatalf("reviewed = %v, want one entry", repo.reviewed)
	}
	if !l.input.Checked() {
		t.Error("input not marked checked")
	}

	// A second enter leaves spelling mode without another review.
	_, cmd = l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)
	if l.spelling {
		t.Error("still in spelling mode")
	}
	if len(repo.reviewed) != 1 {
		t.Errorf("reviewed = %v after closing, want one entry", repo.reviewed)
	}
}

func TestSpellingWrongDoesNotReview(t *testing.T) {
	repo := newMockProgressRepo()
	l := newTestScreen(&mockItemRepo{items: testItems()}, repo)

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	_, cmd = l.Update(keyPress('t'))
	drive(t, l, cmd)
	_, cmd = l.Update(keyPress('x'))
	drive(t, l, cmd)
	_, cmd = l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	if len(repo.reviewed) != 0 {
		t.Errorf("reviewed = %v, want none", repo.reviewed)
	}
}

func TestFavoritesEntryLoadsFavoritedItems(t *testing.T) {
	repo := newMockProgressRepo()
	repo.records[102] = &store.ProgressRecord{ItemID: 102, Viewed: true, Favorite: true}
	l := newTestScreen(&mockItemRepo{items: testItems()}, repo)

	// Last menu entry is the favorites set.
	for i := 0; i < len(l.categoryMenu.Items)-1; i++ {
		_, _ = l.Update(specialKey(tea.KeyDown))
	}
	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	if l.phase != phaseBrowsing {
		t.Fatalf("phase = %v, want browsing", l.phase)
	}
	if len(l.set) != 1 || l.set[0].ID != 102 {
		t.Fatalf("set = %+v, want the favorited item", l.set)
	}
}

func TestEmptyFavoritesShowsMessage(t *testing.T) {
	l := newTestScreen(&mockItemRepo{items: testItems()}, newMockProgressRepo())

	for i := 0; i < len(l.categoryMenu.Items)-1; i++ {
		_, _ = l.Update(specialKey(tea.KeyDown))
	}
	_, cmd := l.Update(specialKey(tea.KeyEnter))
	drive(t, l, cmd)

	if l.phase != phasePickCategory {
		t.Fatalf("phase = %v, want pickCategory", l.phase)
	}
	if l.errMsg == "" {
		t.Error("no message for empty favorites")
	}
}
