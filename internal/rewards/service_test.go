package rewards

import (
	"context"
	"testing"
	"time"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/store"
)

type mockAchievementRepo struct {
	achievements []store.Achievement
	unlockCalls  []string
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
	var out []store.Achievement
	for _, a := range m.achievements {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAchievementRepo) Get(ctx context.Context, id string) (*store.Achievement, error) {
	for i := range m.achievements {
		if m.achievements[i].ID == id {
			a := m.achievements[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *mockAchievementRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	m.unlockCalls = append(m.unlockCalls, id)
	for i := range m.achievements {
		if m.achievements[i].ID == id && !m.achievements[i].Unlocked {
			m.achievements[i].Unlocked = true
			ts := at
			m.achievements[i].UnlockedAt = &ts
		}
	}
	return nil
}

type mockProgressRepo struct {
	records []store.ProgressRecord
}

func (m *mockProgressRepo) All(ctx context.Context) ([]store.ProgressRecord, error) {
	return m.records, nil
}

func (m *mockProgressRepo) Get(ctx context.Context, itemID int64) (*store.ProgressRecord, error) {
	for i := range m.records {
		if m.records[i].ItemID == itemID {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *mockProgressRepo) MarkViewed(ctx context.Context, itemID int64, at time.Time) error {
	return nil
}

func (m *mockProgressRepo) Review(ctx context.Context, itemID int64, at time.Time) error {
	return nil
}

func (m *mockProgressRepo) SetFavorite(ctx context.Context, itemID int64, favorite bool) error {
	return nil
}

func (m *mockProgressRepo) Favorites(ctx context.Context) ([]store.ProgressRecord, error) {
	return nil, nil
}

func (m *mockProgressRepo) RecentViewed(ctx context.Context, limit int) ([]store.ProgressRecord, error) {
	return nil, nil
}

type mockSessionRepo struct {
	records []store.SessionRecord
}

func (m *mockSessionRepo) Append(ctx context.Context, rec store.SessionRecord) (*store.SessionRecord, error) {
	rec.ID = len(m.records) + 1
	m.records = append(m.records, rec)
	return &rec, nil
}

func (m *mockSessionRepo) All(ctx context.Context) ([]store.SessionRecord, error) {
	return m.records, nil
}

func (m *mockSessionRepo) ByMode(ctx context.Context, mode string) ([]store.SessionRecord, error) {
	var out []store.SessionRecord
	for _, rec := range m.records {
		if rec.Mode == mode {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) TopScores(ctx context.Context, mode string, limit int) ([]store.SessionRecord, error) {
	return m.ByMode(ctx, mode)
}

type mockItemRepo struct {
	categories map[int64]catalog.Category
}

func (m *mockItemRepo) ByCategory(ctx context.Context, c catalog.Category) ([]store.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) ByDifficulty(ctx context.Context, difficulty int) ([]store.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) Sample(ctx context.Context, n int) ([]store.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) Get(ctx context.Context, id int64) (*store.Item, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	return &store.Item{ID: id, Category: c}, nil
}

func (m *mockItemRepo) Categories(ctx context.Context) ([]catalog.Category, error) {
	return nil, nil
}

func (m *mockItemRepo) SetCustomImage(ctx context.Context, id int64, path string) error {
	return nil
}

func (m *mockItemRepo) Count(ctx context.Context) (int, error) {
	return len(m.categories), nil
}

func achievement(id, kind string, threshold, reward int) store.Achievement {
	return store.Achievement{
		ID:          id,
		Name:        id,
		Requirement: store.Requirement{Kind: kind, Threshold: threshold},
		Reward:      reward,
	}
}

func viewedRecords(n int) []store.ProgressRecord {
	recs := make([]store.ProgressRecord, n)
	for i := range recs {
		recs[i] = store.ProgressRecord{
			ItemID:     int64(i + 1),
			Viewed:     true,
			LastViewed: time.Now(),
		}
	}
	return recs
}

func newTestService(achs *mockAchievementRepo, prog *mockProgressRepo, sess *mockSessionRepo, items *mockItemRepo) *Service {
	if prog == nil {
		prog = &mockProgressRepo{}
	}
	if sess == nil {
		sess = &mockSessionRepo{}
	}
	if items == nil {
		items = &mockItemRepo{}
	}
	return NewService(achs, prog, sess, items)
}

func TestEvaluateLearnedCount(t *testing.T) {
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		achievement("first_explore", KindLearnedCount, 1, 10),
		achievement("learning_master", KindLearnedCount, 10, 50),
	}}
	svc := newTestService(achs, &mockProgressRepo{records: viewedRecords(3)}, nil, nil)

	report, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(report.Unlocked) != 1 || report.Unlocked[0].ID != "first_explore" {
		t.Fatalf("unlocked = %+v, want just first_explore", report.Unlocked)
	}
	if report.Unlocked[0].UnlockedAt == nil {
		t.Error("expected unlock timestamp")
	}
}

func TestEvaluateGameCountAndPerfectRun(t *testing.T) {
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		achievement("game_master", KindGameCount, 5, 30),
		achievement("perfect_answer", KindPerfectAnswer, 10, 60),
	}}
	sess := &mockSessionRepo{}
	now := time.Now()
	for i := 0; i < 5; i++ {
		sess.records = append(sess.records, store.SessionRecord{
			Mode: "guess", Score: 70, CorrectCount: 7, TotalCount: 10,
			Timestamp: now,
		})
	}
	svc := newTestService(achs, nil, sess, nil)

	report, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(report.Unlocked) != 1 || report.Unlocked[0].ID != "game_master" {
		t.Fatalf("unlocked = %+v, want just game_master", report.Unlocked)
	}

	// A perfect 10/10 run unlocks the second achievement.
	sess.records = append(sess.records, store.SessionRecord{
		Mode: "guess", Score: 100, CorrectCount: 10, TotalCount: 10,
		Timestamp: now,
	})
	report, err = svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if len(report.Unlocked) != 1 || report.Unlocked[0].ID != "perfect_answer" {
		t.Fatalf("unlocked = %+v, want just perfect_answer", report.Unlocked)
	}
}

func TestEvaluatePerfectRunRequiresEnoughQuestions(t *testing.T) {
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		achievement("perfect_answer", KindPerfectAnswer, 10, 60),
	}}
	sess := &mockSessionRepo{records: []store.SessionRecord{
		{Mode: "guess", Score: 50, CorrectCount: 5, TotalCount: 5, Timestamp: time.Now()},
	}}
	svc := newTestService(achs, nil, sess, nil)

	report, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(report.Unlocked) != 0 {
		t.Errorf("unlocked = %+v, want none for a short perfect run", report.Unlocked)
	}
}

func TestEvaluateContinuousDays(t *testing.T) {
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		achievement("continuous_learning", KindContinuousDays, 3, 40),
	}}
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.Local)
	prog := &mockProgressRepo{records: []store.ProgressRecord{
		{ItemID: 1, Viewed: true, LastViewed: base},
		{ItemID: 2, Viewed: true, LastViewed: base.AddDate(0, 0, 1)},
	}}
	sess := &mockSessionRepo{records: []store.SessionRecord{
		{Mode: "guess", TotalCount: 10, Timestamp: base.AddDate(0, 0, 2)},
	}}
	svc := newTestService(achs, prog, sess, nil)

	report, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(report.Unlocked) != 1 || report.Unlocked[0].ID != "continuous_learning" {
		t.Fatalf("unlocked = %+v", report.Unlocked)
	}
}

func TestEvaluateCategoriesLearned(t *testing.T) {
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		achievement("all_knowing", KindCategoriesLearned, 2, 100),
	}}
	prog := &mockProgressRepo{records: []store.ProgressRecord{
		{ItemID: 1, Viewed: true, LastViewed: time.Now()},
		{ItemID: 101, Viewed: true, LastViewed: time.Now()},
		{ItemID: 2, Viewed: false},
	}}
	items := &mockItemRepo{categories: map[int64]catalog.Category{
		1:   catalog.CategoryAnimals,
		2:   catalog.CategoryAnimals,
		101: catalog.CategoryFruits,
	}}
	svc := newTestService(achs, prog, nil, items)

	report, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(report.Unlocked) != 1 || report.Unlocked[0].ID != "all_knowing" {
		t.Fatalf("unlocked = %+v", report.Unlocked)
	}
}

func TestEvaluateSkipsUnknownKinds(t *testing.T) {
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		achievement("sharp_shooter", "correct_streak", 10, 20),
		achievement("first_explore", KindLearnedCount, 1, 10),
	}}
	svc := newTestService(achs, &mockProgressRepo{records: viewedRecords(1)}, nil, nil)

	report, err := svc.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != "sharp_shooter" {
		t.Errorf("skipped = %v", report.Skipped)
	}
	if len(report.Unlocked) != 1 || report.Unlocked[0].ID != "first_explore" {
		t.Errorf("unlocked = %+v", report.Unlocked)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		achievement("first_explore", KindLearnedCount, 1, 10),
	}}
	svc := newTestService(achs, &mockProgressRepo{records: viewedRecords(1)}, nil, nil)

	var notified []string
	svc.OnUnlock = func(a store.Achievement) {
		notified = append(notified, a.ID)
	}

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := svc.Evaluate(ctx); err != nil {
			t.Fatalf("evaluate %d: %v", i, err)
		}
	}
	if len(achs.unlockCalls) != 1 {
		t.Errorf("unlock calls = %v, want one", achs.unlockCalls)
	}
	if len(notified) != 1 || notified[0] != "first_explore" {
		t.Errorf("notifications = %v", notified)
	}
}
