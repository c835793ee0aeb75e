// Package profile derives the child's headline numbers from the
// progress, session, and achievement stores.
package profile

import (
	"context"
	"fmt"

	"github.com/ewei/lexikid/internal/store"
)

// LevelStep is how many learned items advance the level by one.
const LevelStep = 10

// Stats is a read-only snapshot of the profile numbers.
type Stats struct {
	LearnedCount int
	GameCount    int
	TotalStars   int

	UnlockedAchievements int
	TotalAchievements    int

	Level int
}

// Service computes profile stats and fans out change notifications to
// live screens.
type Service struct {
	progress     store.ProgressRepo
	sessions     store.SessionRepo
	achievements store.AchievementRepo

	subscribers []func(Stats)
}

// NewService creates a profile aggregator over the given repositories.
func NewService(progress store.ProgressRepo, sessions store.SessionRepo, achievements store.AchievementRepo) *Service {
	return &Service{
		progress:     progress,
		sessions:     sessions,
		achievements: achievements,
	}
}

// Compute derives a fresh stats snapshot. Stars come from three
// sources: one per learned item, one per ten session points, and the
// reward credit of each unlocked achievement.
func (s *Service) Compute(ctx context.Context) (Stats, error) {
	progress, err := s.progress.All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load progress: %w", err)
	}
	sessions, err := s.sessions.All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load sessions: %w", err)
	}
	achievements, err := s.achievements.All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("load achievements: %w", err)
	}

	stats := Stats{
		GameCount:         len(sessions),
		TotalAchievements: len(achievements),
	}
	for _, rec := range progress {
		if rec.Viewed {
			stats.LearnedCount++
		}
	}

	stars := stats.LearnedCount
	for _, rec := range sessions {
		stars += rec.Score / 10
	}
	for _, a := range achievements {
		if a.Unlocked {
			stats.UnlockedAchievements++
			stars += a.Reward
		}
	}
	stats.TotalStars = stars
	stats.Level = stats.LearnedCount/LevelStep + 1
	return stats, nil
}

// Subscribe registers a callback for stats changes. Not safe for
// concurrent use; subscriptions happen during screen setup.
func (s *Service) Subscribe(fn func(Stats)) {
	s.subscribers = append(s.subscribers, fn)
}

// Notify recomputes the stats and pushes the snapshot to every
// subscriber.
func (s *Service) Notify(ctx context.Context) error {
	if len(s.subscribers) == 0 {
		return nil
	}
	stats, err := s.Compute(ctx)
	if err != nil {
		return err
	}
	for _, fn := range s.subscribers {
		fn(stats)
	}
	return nil
}
