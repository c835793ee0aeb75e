package profile

import (
	"context"
	"testing"
	"time"

	"github.com/ewei/lexikid/internal/store"
)

type mockProgressRepo struct {
	records []store.ProgressRecord
}

func (m *mockProgressRepo) All(ctx context.Context) ([]store.ProgressRecord, error) {
	return m.records, nil
}

func (m *mockProgressRepo) Get(ctx context.Context, itemID int64) (*store.ProgressRecord, error) {
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
	return &rec, nil
}

func (m *mockSessionRepo) All(ctx context.Context) ([]store.SessionRecord, error) {
	return m.records, nil
}

func (m *mockSessionRepo) ByMode(ctx context.Context, mode string) ([]store.SessionRecord, error) {
	return nil, nil
}

func (m *mockSessionRepo) TopScores(ctx context.Context, mode string, limit int) ([]store.SessionRecord, error) {
	return nil, nil
}

type mockAchievementRepo struct {
	achievements []store.Achievement
}

func (m *mockAchievementRepo) All(ctx context.Context) ([]store.Achievement, error) {
	return m.achievements, nil
}

func (m *mockAchievementRepo) Locked(ctx context.Context) ([]store.Achievement, error) {
	return nil, nil
}

func (m *mockAchievementRepo) Unlocked(ctx context.Context) ([]store.Achievement, error) {
	return nil, nil
}

func (m *mockAchievementRepo) Get(ctx context.Context, id string) (*store.Achievement, error) {
	return nil, nil
}

func (m *mockAchievementRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	return nil
}

func viewed(n int) []store.ProgressRecord {
	recs := make([]store.ProgressRecord, n)
	for i := range recs {
		recs[i] = store.ProgressRecord{ItemID: int64(i + 1), Viewed: true}
	}
	return recs
}

func TestComputeEmptyProfile(t *testing.T) {
	svc := NewService(&mockProgressRepo{}, &mockSessionRepo{}, &mockAchievementRepo{})

	stats, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	want := Stats{Level: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestComputeStars(t *testing.T) {
	// 25 learned items, two games worth 80 and 100 points, and two
	// unlocked achievements worth 10 and 50 stars:
	// 25 + 8 + 10 + 60 = 103 stars.
	prog := &mockProgressRepo{records: append(viewed(25),
		store.ProgressRecord{ItemID: 999, Viewed: false})}
	sess := &mockSessionRepo{records: []store.SessionRecord{
		{Score: 80}, {Score: 100},
	}}
	achs := &mockAchievementRepo{achievements: []store.Achievement{
		{ID: "a", Unlocked: true, Reward: 10},
		{ID: "b", Unlocked: true, Reward: 50},
		{ID: "c", Unlocked: false, Reward: 100},
	}}
	svc := NewService(prog, sess, achs)

	stats, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.LearnedCount != 25 {
		t.Errorf("learned = %d, want 25", stats.LearnedCount)
	}
	if stats.GameCount != 2 {
		t.Errorf("games = %d, want 2", stats.GameCount)
	}
	if stats.TotalStars != 103 {
		t.Errorf("stars = %d, want 103", stats.TotalStars)
	}
	if stats.UnlockedAchievements != 2 || stats.TotalAchievements != 3 {
		t.Errorf("achievements = %d/%d, want 2/3",
			stats.UnlockedAchievements, stats.TotalAchievements)
	}
	if stats.Level != 3 {
		t.Errorf("level = %d, want 3 (25 learned)", stats.Level)
	}
}

func TestLevelBoundaries(t *testing.T) {
	tests := []struct {
		learned int
		want    int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
	}
	for _, tt := range tests {
		svc := NewService(&mockProgressRepo{records: viewed(tt.learned)},
			&mockSessionRepo{}, &mockAchievementRepo{})
		stats, err := svc.Compute(context.Background())
		if err != nil {
			t.Fatalf("compute(%d): %v", tt.learned, err)
		}
		if stats.Level != tt.want {
			t.Errorf("level(%d learned) = %d, want %d", tt.learned, stats.Level, tt.want)
		}
	}
}

func TestNotifyPushesToSubscribers(t *testing.T) {
	svc := NewService(&mockProgressRepo{records: viewed(5)},
		&mockSessionRepo{}, &mockAchievementRepo{})

	var got []Stats
	svc.Subscribe(func(s Stats) { got = append(got, s) })
	svc.Subscribe(func(s Stats) { got = append(got, s) })

	if err := svc.Notify(context.Background()); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("notified %d subscribers, want 2", len(got))
	}
	if got[0].LearnedCount != 5 || got[1].LearnedCount != 5 {
		t.Errorf("stats = %+v", got)
	}
}
