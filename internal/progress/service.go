// Package progress wraps the progress store with the side effects a
// learning action carries: achievement evaluation and profile
// refresh.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/ewei/lexikid/internal/rewards"
	"github.com/ewei/lexikid/internal/store"
)

// Service records learning activity.
type Service struct {
	progress store.ProgressRepo

	// evaluator, when set, runs after every mark-viewed so unlocks
	// land right after the learning action that earned them.
	evaluator *rewards.Service

	// OnChange, when set, is called after any mutation, with the
	// evaluation report when one ran (nil otherwise).
	OnChange func(*rewards.Report)

	now func() time.Time
}

// NewService creates a progress service. evaluator may be nil.
func NewService(progress store.ProgressRepo, evaluator *rewards.Service) *Service {
	return &Service{
		progress:  progress,
		evaluator: evaluator,
		now:       time.Now,
	}
}

// MarkViewed records that the child has seen an item. Repeats only
// refresh the last-viewed timestamp.
func (s *Service) MarkViewed(ctx context.Context, itemID int64) (*rewards.Report, error) {
	if err := s.progress.MarkViewed(ctx, itemID, s.now()); err != nil {
		return nil, err
	}
	report, err := s.evaluate(ctx)
	if err != nil {
		return nil, err
	}
	s.notify(report)
	return report, nil
}

// Review records a repeat study pass: review count up, mastery up by
// the fixed step capped at 100.
func (s *Service) Review(ctx context.Context, itemID int64) error {
	if err := s.progress.Review(ctx, itemID, s.now()); err != nil {
		return err
	}
	s.notify(nil)
	return nil
}

// ToggleFavorite flips the favorite flag for an item and returns the
// new value.
func (s *Service) ToggleFavorite(ctx context.Context, itemID int64) (bool, error) {
	rec, err := s.progress.Get(ctx, itemID)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, fmt.Errorf("toggle favorite: item %d has no progress record", itemID)
	}
	next := !rec.Favorite
	if err := s.progress.SetFavorite(ctx, itemID, next); err != nil {
		return false, err
	}
	s.notify(nil)
	return next, nil
}

// Favorites lists the records flagged as favorite.
func (s *Service) Favorites(ctx context.Context) ([]store.ProgressRecord, error) {
	return s.progress.Favorites(ctx)
}

// RecentViewed lists up to limit records by last-viewed descending.
func (s *Service) RecentViewed(ctx context.Context, limit int) ([]store.ProgressRecord, error) {
	return s.progress.RecentViewed(ctx, limit)
}

// Get returns the record for one item, nil if the item was never
// viewed.
func (s *Service) Get(ctx context.Context, itemID int64) (*store.ProgressRecord, error) {
	return s.progress.Get(ctx, itemID)
}

func (s *Service) evaluate(ctx context.Context) (*rewards.Report, error) {
	if s.evaluator == nil {
		return nil, nil
	}
	report, err := s.evaluator.Evaluate(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluate achievements: %w", err)
	}
	return report, nil
}

func (s *Service) notify(report *rewards.Report) {
	if s.OnChange != nil {
		s.OnChange(report)
	}
}
