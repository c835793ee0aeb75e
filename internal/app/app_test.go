package app

import (
	"context"
	"testing"
	"time"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/game"
	"github.com/ewei/lexikid/internal/profile"
	"github.com/ewei/lexikid/internal/progress"
	"github.com/ewei/lexikid/internal/router"
	"github.com/ewei/lexikid/internal/store"
)

type stubItemRepo struct{}

func (stubItemRepo) ByCategory(context.Context, catalog.Category) ([]store.Item, error) {
	return nil, nil
}
func (stubItemRepo) ByDifficulty(context.Context, int) ([]store.Item, error) { return nil, nil }
func (stubItemRepo) Sample(context.Context, int) ([]store.Item, error)       { return nil, nil }
func (stubItemRepo) Get(context.Context, int64) (*store.Item, error)         { return nil, nil }
func (stubItemRepo) Categories(context.Context) ([]catalog.Category, error)  { return nil, nil }
func (stubItemRepo) SetCustomImage(context.Context, int64, string) error     { return nil }
func (stubItemRepo) Count(context.Context) (int, error)                      { return 0, nil }

type stubProgressRepo struct {
	records []store.ProgressRecord
}

func (p *stubProgressRepo) All(context.Context) ([]store.ProgressRecord, error) {
	return p.records, nil
}
func (p *stubProgressRepo) Get(context.Context, int64) (*store.ProgressRecord, error) {
	return nil, nil
}
func (p *stubProgressRepo) MarkViewed(context.Context, int64, time.Time) error  { return nil }
func (p *stubProgressRepo) Review(context.Context, int64, time.Time) error      { return nil }
func (p *stubProgressRepo) SetFavorite(context.Context, int64, bool) error      { return nil }
func (p *stubProgressRepo) Favorites(context.Context) ([]store.ProgressRecord, error) {
	return nil, nil
}
func (p *stubProgressRepo) RecentViewed(context.Context, int) ([]store.ProgressRecord, error) {
	return nil, nil
}

type stubSessionRepo struct{}

func (stubSessionRepo) Append(_ context.Context, rec store.SessionRecord) (*store.SessionRecord, error) {
	return &rec, nil
}
func (stubSessionRepo) All(context.Context) ([]store.SessionRecord, error)            { return nil, nil }
func (stubSessionRepo) ByMode(context.Context, string) ([]store.SessionRecord, error) { return nil, nil }
func (stubSessionRepo) TopScores(context.Context, string, int) ([]store.SessionRecord, error) {
	return nil, nil
}

type stubAchievementRepo struct{}

func (stubAchievementRepo) All(context.Context) ([]store.Achievement, error)      { return nil, nil }
func (stubAchievementRepo) Locked(context.Context) ([]store.Achievement, error)   { return nil, nil }
func (stubAchievementRepo) Unlocked(context.Context) ([]store.Achievement, error) { return nil, nil }
func (stubAchievementRepo) Get(context.Context, string) (*store.Achievement, error) {
	return nil, nil
}
func (stubAchievementRepo) Unlock(context.Context, string, time.Time) error { return nil }

func testOptions(progressRepo *stubProgressRepo) Options {
	items := stubItemRepo{}
	sessions := stubSessionRepo{}
	achievements := stubAchievementRepo{}
	svc := profile.NewService(progressRepo, sessions, achievements)
	return Options{
		Items:        items,
		Sessions:     sessions,
		Achievements: achievements,
		Engine:       game.NewEngine(items, sessions, nil),
		Progress:     progress.NewService(progressRepo, nil),
		Profile:      svc,
	}
}

// The header refreshes through the profile subscription: a stats-changed
// event makes the model call Notify, and the snapshot comes back to the
// model as a message, the way Run delivers it.
func TestStatsChangeFlowsThroughSubscription(t *testing.T) {
	progressRepo := &stubProgressRepo{}
	opts := testOptions(progressRepo)
	m := newAppModel(opts)

	var delivered []profile.Stats
	opts.Profile.Subscribe(func(s profile.Stats) {
		delivered = append(delivered, s)
	})

	progressRepo.records = []store.ProgressRecord{
		{ItemID: 1, Viewed: true},
		{ItemID: 2, Viewed: true},
		{ItemID: 3, Viewed: true},
	}

	model, cmd := m.Update(router.StatsChangedMsg{})
	if cmd == nil {
		t.Fatal("stats change produced no refresh command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("refresh command returned %#v, want nil (snapshot arrives via subscription)", msg)
	}
	if len(delivered) != 1 {
		t.Fatalf("subscriber called %d times, want 1", len(delivered))
	}
	if delivered[0].LearnedCount != 3 {
		t.Fatalf("delivered LearnedCount = %d, want 3", delivered[0].LearnedCount)
	}

	model, _ = model.Update(statsLoadedMsg{Stats: delivered[0]})
	got := model.(AppModel).stats
	if got.LearnedCount != 3 || got.TotalStars != 3 {
		t.Fatalf("header stats = %+v, want LearnedCount 3 and TotalStars 3", got)
	}
}

func TestRefreshWithoutSubscribersIsQuiet(t *testing.T) {
	m := newAppModel(testOptions(&stubProgressRepo{}))

	cmd := m.refreshStats()
	if msg := cmd(); msg != nil {
		t.Fatalf("refresh without subscribers returned %#v, want nil", msg)
	}
}
