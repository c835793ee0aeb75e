package progress

import (
	"context"
	"testing"
	"time"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/rewards"
	"github.com/ewei/lexikid/internal/store"
)

type mockProgressRepo struct {
	records map[int64]*store.ProgressRecord
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{records: make(map[int64]*store.ProgressRecord)}
}

func (m *mockProgressRepo) All(ctx context.Context) ([]store.ProgressRecord, error) {
	var out []store.ProgressRecord
	for _, rec := range m.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (m *mockProgressRepo) Get(ctx context.Context, itemID int64) (*store.ProgressRecord, error) {
	rec, ok := m.records[itemID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockProgressRepo) MarkViewed(ctx context.Context, itemID int64, at time.Time) error {
	if rec, ok := m.records[itemID]; ok {
		rec.LastViewed = at
		return nil
	}
	m.records[itemID] = &store.ProgressRecord{ItemID: itemID, Viewed: true, LastViewed: at}
	return nil
}

func (m *mockProgressRepo) Review(ctx context.Context, itemID int64, at time.Time) error {
	rec, ok := m.records[itemID]
	if !ok {
		rec = &store.ProgressRecord{ItemID: itemID, Viewed: true}
		m.records[itemID] = rec
	}
	rec.ReviewCount++
	rec.MasteryLevel += store.MasteryStep
	if rec.MasteryLevel > store.MasteryCap {
		rec.MasteryLevel = store.MasteryCap
	}
	rec.LastViewed = at
	return nil
}

func (m *mockProgressRepo) SetFavorite(ctx context.Context, itemID int64, favorite bool) error {
	m.records[itemID].Favorite = favorite
	return nil
}

func (m *mockProgressRepo) Favorites(ctx context.Context) ([]store.ProgressRecord, error) {
	var out []store.ProgressRecord
	for _, rec := range m.records {
		if rec.Favorite {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *mockProgressRepo) RecentViewed(ctx context.Context, limit int) ([]store.ProgressRecord, error) {
	return nil, nil
}

type mockAchievementRepo struct {
	achievements []store.Achievement
}

func (m *mockAchievementRepo) All(ctx context.Context) ([]store.Achievement, error) {
	return m.achievements, nil
}

func (m *mockAchievementRepo) Locked(ctx context.Context) ([]store.Achievement, error) {
	var out []store.Achievement
	for _, a := range m.achievements {
		if !a.Unlocked {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAchievementRepo) Unlocked(ctx context.Context) ([]store.Achievement, error) {
	return nil, nil
}

func (m *mockAchievementRepo) Get(ctx context.Context, id string) (*store.Achievement, error) {
	return nil, nil
}

func (m *mockAchievementRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	for i := range m.achievements {
		if m.achievements[i].ID == id {
			m.achievements[i].Unlocked = true
		}
	}
	return nil
}

type mockSessionRepo struct{}

func (mockSessionRepo) Append(ctx context.Context, rec store.SessionRecord) (*store.SessionRecord, error) {
	return &rec, nil
}

func (mockSessionRepo) All(ctx context.Context) ([]store.SessionRecord, error) {
	return nil, nil
}

func (mockSessionRepo) ByMode(ctx context.Context, mode string) ([]store.SessionRecord, error) {
	return nil, nil
}

func (mockSessionRepo) TopScores(ctx context.Context, mode string, limit int) ([]store.SessionRecord, error) {
	return nil, nil
}

type mockItemRepo struct{}

func (mockItemRepo) ByCategory(ctx context.Context, c catalog.Category) ([]store.Item, error) {
	return nil, nil
}

func (mockItemRepo) ByDifficulty(ctx context.Context, difficulty int) ([]store.Item, error) {
	return nil, nil
}

func (mockItemRepo) Sample(ctx context.Context, n int) ([]store.Item, error) {
	return nil, nil
}

func (mockItemRepo) Get(ctx context.Context, id int64) (*store.Item, error) {
	return nil, nil
}

func (mockItemRepo) Categories(ctx context.Context) ([]catalog.Category, error) {
	return nil, nil
}

func (mockItemRepo) SetCustomImage(ctx context.Context, id int64, path string) error {
	return nil
}

func (mockItemRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}

func TestMarkViewedTriggersEvaluation(t *testing.T) {
	repo := newMockProgressRepo()
	achs := &mockAchievementRepo{achievements: []store.Achievement{{
		ID:          "first_explore",
		Requirement: store.Requirement{Kind: rewards.KindLearnedCount, Threshold: 1},
		Reward:      10,
	}}}
	evaluator := rewards.NewService(achs, repo, mockSessionRepo{}, mockItemRepo{})
	svc := NewService(repo, evaluator)

	var changes []*rewards.Report
	svc.OnChange = func(r *rewards.Report) { changes = append(changes, r) }

	report, err := svc.MarkViewed(context.Background(), 1)
	if err != nil {
		t.Fatalf("mark viewed: %v", err)
	}
	if report == nil || len(report.Unlocked) != 1 || report.Unlocked[0].ID != "first_explore" {
		t.Fatalf("report = %+v, want first_explore unlocked", report)
	}
	if len(changes) != 1 || changes[0] != report {
		t.Errorf("changes = %v", changes)
	}

	// A second view unlocks nothing further.
	report, err = svc.MarkViewed(context.Background(), 1)
	if err != nil {
		t.Fatalf("mark viewed again: %v", err)
	}
	if len(report.Unlocked) != 0 {
		t.Errorf("second view unlocked %+v", report.Unlocked)
	}
}

func TestMarkViewedWithoutEvaluator(t *testing.T) {
	repo := newMockProgressRepo()
	svc := NewService(repo, nil)

	report, err := svc.MarkViewed(context.Background(), 7)
	if err != nil {
		t.Fatalf("mark viewed: %v", err)
	}
	if report != nil {
		t.Errorf("report = %+v, want nil", report)
	}
	rec, _ := repo.Get(context.Background(), 7)
	if rec == nil || !rec.Viewed {
		t.Errorf("record = %+v", rec)
	}
}

func TestReviewRaisesMastery(t *testing.T) {
	repo := newMockProgressRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	notified := 0
	svc.OnChange = func(*rewards.Report) { notified++ }

	for i := 0; i < 3; i++ {
		if err := svc.Review(ctx, 2); err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
	}
	rec, _ := repo.Get(ctx, 2)
	if rec.ReviewCount != 3 || rec.MasteryLevel != 3*store.MasteryStep {
		t.Errorf("record = %+v", rec)
	}
	if notified != 3 {
		t.Errorf("notified = %d, want 3", notified)
	}
}

func TestToggleFavorite(t *testing.T) {
	repo := newMockProgressRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	if _, err := svc.ToggleFavorite(ctx, 3); err == nil {
		t.Fatal("expected error toggling an unseen item")
	}

	if _, err := svc.MarkViewed(ctx, 3); err != nil {
		t.Fatalf("mark viewed: %v", err)
	}
	fav, err := svc.ToggleFavorite(ctx, 3)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !fav {
		t.Error("first toggle should favorite")
	}
	fav, err = svc.ToggleFavorite(ctx, 3)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if fav {
		t.Error("second toggle should unfavorite")
	}
}
