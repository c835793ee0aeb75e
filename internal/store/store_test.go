package store

import (
	"context"
	"testing"
	"time"

	"github.com/ewei/lexikid/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openSeededStore(t *testing.T) *Store {
	t.Helper()
	s := openTestStore(t)
	if err := s.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSeedPopulatesCatalog(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	n, err := s.Items().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if want := len(catalog.SeedItems()); n != want {
		t.Errorf("item count = %d, want %d", n, want)
	}

	cats, err := s.Items().Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != len(catalog.All()) {
		t.Errorf("categories = %d, want %d", len(cats), len(catalog.All()))
	}

	achs, err := s.Achievements().All(ctx)
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if want := len(catalog.SeedAchievements()); len(achs) != want {
		t.Errorf("achievement count = %d, want %d", len(achs), want)
	}
	for _, a := range achs {
		if a.Unlocked {
			t.Errorf("achievement %q seeded unlocked", a.ID)
		}
		if a.Requirement.Kind == "" || a.Requirement.Threshold < 1 {
			t.Errorf("achievement %q has bad requirement %+v", a.ID, a.Requirement)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	n, err := s.Items().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if want := len(catalog.SeedItems()); n != want {
		t.Errorf("item count after reseed = %d, want %d", n, want)
	}
}

func TestItemsByCategory(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	items, err := s.Items().ByCategory(ctx, catalog.CategoryFruits)
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected fruit items")
	}
	for _, it := range items {
		if it.Category != catalog.CategoryFruits {
			t.Errorf("item %d category = %q", it.ID, it.Category)
		}
		if it.ID < 101 || it.ID > 200 {
			t.Errorf("fruit item id %d outside its id block", it.ID)
		}
	}
}

func TestItemSample(t *testing.T) {
	s := openSeededStore(t)
	ctx := context.Background()

	items, err := s.Items().Sample(ctx, 30)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(items) != 30 {
		t.Fatalf("sample size = %d, want 30", len(items))
	}
	seen := make(map[int64]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			t.Errorf("item %d sampled twice", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestProgressMarkViewedAndReview(t *testing.T) {
	s := openSeededStore(t)
	repo := s.Progress()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	// Unknown item has no record.
	rec, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record before first view")
	}

	if err := repo.MarkViewed(ctx, 1, now); err != nil {
		t.Fatalf("mark viewed: %v", err)
	}
	rec, err = repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || !rec.Viewed {
		t.Fatal("expected viewed record")
	}
	if rec.ReviewCount != 0 || rec.MasteryLevel != 0 {
		t.Errorf("fresh record = %+v, want zero review/mastery", rec)
	}

	// A second view only refreshes the timestamp.
	later := now.Add(time.Hour)
	if err := repo.MarkViewed(ctx, 1, later); err != nil {
		t.Fatalf("mark viewed again: %v", err)
	}
	rec, _ = repo.Get(ctx, 1)
	if !rec.LastViewed.Equal(later) {
		t.Errorf("last viewed = %v, want %v", rec.LastViewed, later)
	}

	if err := repo.Review(ctx, 1, later); err != nil {
		t.Fatalf("review: %v", err)
	}
	rec, _ = repo.Get(ctx, 1)
	if rec.ReviewCount != 1 || rec.MasteryLevel != MasteryStep {
		t.Errorf("after review = %+v", rec)
	}
}

func TestReviewCapsMastery(t *testing.T) {
	s := openSeededStore(t)
	repo := s.Progress()
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 12; i++ {
		if err := repo.Review(ctx, 2, now); err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
	}
	rec, err := repo.Get(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.MasteryLevel != MasteryCap {
		t.Errorf("mastery = %d, want %d", rec.MasteryLevel, MasteryCap)
	}
	if rec.ReviewCount != 12 {
		t.Errorf("review count = %d, want 12", rec.ReviewCount)
	}
}

func TestReviewCreatesRecord(t *testing.T) {
	s := openSeededStore(t)
	repo := s.Progress()
	ctx := context.Background()

	if err := repo.Review(ctx, 3, time.Now()); err != nil {
		t.Fatalf("review: %v", err)
	}
	rec, err := repo.Get(ctx, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || !rec.Viewed || rec.MasteryLevel != MasteryStep {
		t.Errorf("record = %+v", rec)
	}
}

func TestSetFavoriteRequiresRecord(t *testing.T) {
	s := openSeededStore(t)
	repo := s.Progress()
	ctx := context.Background()

	if err := repo.SetFavorite(ctx, 5, true); err == nil {
		t.Fatal("expected error favoriting an unseen item")
	}

	if err := repo.MarkViewed(ctx, 5, time.Now()); err != nil {
		t.Fatalf("mark viewed: %v", err)
	}
	if err := repo.SetFavorite(ctx, 5, true); err != nil {
		t.Fatalf("set favorite: %v", err)
	}
	favs, err := repo.Favorites(ctx)
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(favs) != 1 || favs[0].ItemID != 5 {
		t.Errorf("favorites = %+v", favs)
	}
}

func TestSessionAppendAndTopScores(t *testing.T) {
	s := openSeededStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	scores := []int{50, 80, 80, 30}
	for i, sc := range scores {
		_, err := repo.Append(ctx, SessionRecord{
			RunID:        "run",
			Mode:         "guess",
			Score:        sc,
			CorrectCount: sc / 10,
			TotalCount:   10,
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	_, err := repo.Append(ctx, SessionRecord{
		RunID: "other", Mode: "listen", Score: 100, TotalCount: 10,
		Timestamp: base,
	})
	if err != nil {
		t.Fatalf("append listen: %v", err)
	}

	top, err := repo.TopScores(ctx, "guess", 3)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("top = %d records, want 3", len(top))
	}
	if top[0].Score != 80 || top[1].Score != 80 || top[2].Score != 50 {
		t.Errorf("top scores = %d,%d,%d", top[0].Score, top[1].Score, top[2].Score)
	}
	// Equal scores rank the newer run first.
	if !top[0].Timestamp.After(top[1].Timestamp) {
		t.Errorf("tie break: %v not after %v", top[0].Timestamp, top[1].Timestamp)
	}
}

func TestSessionByModeNewestFirst(t *testing.T) {
	s := openSeededStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 3; i++ {
		_, err := repo.Append(ctx, SessionRecord{
			RunID: "r", Mode: "guess", Score: i * 10, TotalCount: 10,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	recs, err := repo.ByMode(ctx, "guess")
	if err != nil {
		t.Fatalf("by mode: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	if recs[0].Score != 20 {
		t.Errorf("newest first: got score %d", recs[0].Score)
	}
}

func TestAchievementUnlock(t *testing.T) {
	s := openSeededStore(t)
	repo := s.Achievements()
	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Second)

	if err := repo.Unlock(ctx, "first_explore", at); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	a, err := repo.Get(ctx, "first_explore")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !a.Unlocked || a.UnlockedAt == nil || !a.UnlockedAt.Equal(at) {
		t.Errorf("achievement = %+v", a)
	}

	// Unlocking again keeps the original timestamp.
	if err := repo.Unlock(ctx, "first_explore", at.Add(time.Hour)); err != nil {
		t.Fatalf("unlock again: %v", err)
	}
	a, _ = repo.Get(ctx, "first_explore")
	if !a.UnlockedAt.Equal(at) {
		t.Errorf("unlocked at = %v, want %v", a.UnlockedAt, at)
	}

	locked, err := repo.Locked(ctx)
	if err != nil {
		t.Fatalf("locked: %v", err)
	}
	if want := len(catalog.SeedAchievements()) - 1; len(locked) != want {
		t.Errorf("locked = %d, want %d", len(locked), want)
	}
}
