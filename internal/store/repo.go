package store

import (
	"context"
	"time"

	"github.com/ewei/lexikid/internal/catalog"
)

// Item is one catalog entry as the engine sees it.
type Item struct {
	ID            int64
	NameCN        string
	NameEN        string
	Category      catalog.Category
	Difficulty    int
	DescriptionCN string
	DescriptionEN string
	ImageRes      string
	AudioCN       string
	AudioEN       string
	AudioDescCN   string
	Features      []string
	Scenarios     []string
	CustomImage   string
}

// ProgressRecord is the per-item engagement record.
type ProgressRecord struct {
	ItemID       int64
	Viewed       bool
	ReviewCount  int
	MasteryLevel int
	LastViewed   time.Time
	Favorite     bool
}

// SessionRecord is one completed quiz run.
type SessionRecord struct {
	ID           int
	RunID        string
	Mode         string
	Score        int
	CorrectCount int
	TotalCount   int
	DurationSecs int
	Timestamp    time.Time
}

// Requirement is the typed unlock condition of an achievement, decoded
// from the seed JSON once at load time.
type Requirement struct {
	Kind      string `json:"kind"`
	Threshold int    `json:"threshold"`
}

// Achievement is a reward definition plus its unlock state.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	Requirement Requirement
	Reward      int
	Unlocked    bool
	UnlockedAt  *time.Time
}

// ItemRepo provides read access to the item catalog plus the single
// guardian-writable field.
type ItemRepo interface {
	// ByCategory lists items in a category ordered by id.
	ByCategory(ctx context.Context, c catalog.Category) ([]Item, error)

	// ByDifficulty lists items of a difficulty tier ordered by id.
	ByDifficulty(ctx context.Context, difficulty int) ([]Item, error)

	// Sample returns up to n items drawn uniformly at random.
	Sample(ctx context.Context, n int) ([]Item, error)

	// Get returns the item with the given id, or nil if absent.
	Get(ctx context.Context, id int64) (*Item, error)

	// Categories lists the distinct categories present in the catalog.
	Categories(ctx context.Context) ([]catalog.Category, error)

	// SetCustomImage sets the guardian image override for an item.
	SetCustomImage(ctx context.Context, id int64, path string) error

	// Count returns the number of items in the catalog.
	Count(ctx context.Context) (int, error)
}

// ProgressRepo manages per-item progress records.
type ProgressRepo interface {
	// All lists every progress record.
	All(ctx context.Context) ([]ProgressRecord, error)

	// Get returns the record for an item, or nil if none exists.
	Get(ctx context.Context, itemID int64) (*ProgressRecord, error)

	// MarkViewed creates the record on first view or refreshes the
	// last-viewed timestamp on later views. Idempotent.
	MarkViewed(ctx context.Context, itemID int64, at time.Time) error

	// Review increments the review count, raises mastery by the fixed
	// step capped at 100, and refreshes the last-viewed timestamp.
	Review(ctx context.Context, itemID int64, at time.Time) error

	// SetFavorite flips the favorite flag.
	SetFavorite(ctx context.Context, itemID int64, favorite bool) error

	// Favorites lists records flagged as favorite.
	Favorites(ctx context.Context) ([]ProgressRecord, error)

	// RecentViewed lists up to limit records by last-viewed descending.
	RecentViewed(ctx context.Context, limit int) ([]ProgressRecord, error)
}

// SessionRepo manages the append-only quiz run history.
type SessionRepo interface {
	// Append stores a new record and returns it with the assigned id.
	Append(ctx context.Context, rec SessionRecord) (*SessionRecord, error)

	// All lists every record by timestamp descending.
	All(ctx context.Context) ([]SessionRecord, error)

	// ByMode lists records for a mode by timestamp descending.
	ByMode(ctx context.Context, mode string) ([]SessionRecord, error)

	// TopScores lists up to limit records for a mode by score
	// descending, ties broken by most recent first.
	TopScores(ctx context.Context, mode string, limit int) ([]SessionRecord, error)
}

// AchievementRepo manages achievement definitions and unlock state.
type AchievementRepo interface {
	// All lists every achievement.
	All(ctx context.Context) ([]Achievement, error)

	// Locked lists achievements not yet unlocked.
	Locked(ctx context.Context) ([]Achievement, error)

	// Unlocked lists unlocked achievements.
	Unlocked(ctx context.Context) ([]Achievement, error)

	// Get returns one achievement by id, or nil if absent.
	Get(ctx context.Context, id string) (*Achievement, error)

	// Unlock flips one achievement to unlocked with the given
	// timestamp. A no-op if it is already unlocked.
	Unlock(ctx context.Context, id string, at time.Time) error
}
