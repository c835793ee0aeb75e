package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/ewei/lexikid/internal/catalog"
	"github.com/ewei/lexikid/internal/store"
)

// Report summarizes one evaluation pass.
type Report struct {
	// Unlocked holds achievements newly unlocked by this pass.
	Unlocked []store.Achievement

	// Skipped holds ids of locked achievements whose requirement kind
	// the evaluator does not implement.
	Skipped []string
}

// Service evaluates achievement requirements against the player's
// recorded progress and sessions, and unlocks what qualifies.
type Service struct {
	achievements store.AchievementRepo
	progress     store.ProgressRepo
	sessions     store.SessionRepo
	items        store.ItemRepo

	// OnUnlock, when set, is called once per newly unlocked
	// achievement, in unlock order.
	OnUnlock func(store.Achievement)

	now func() time.Time
}

// NewService creates an evaluator over the given repositories.
func NewService(achievements store.AchievementRepo, progress store.ProgressRepo, sessions store.SessionRepo, items store.ItemRepo) *Service {
	return &Service{
		achievements: achievements,
		progress:     progress,
		sessions:     sessions,
		items:        items,
		now:          time.Now,
	}
}

// facts caches the derived counters one evaluation pass works from.
type facts struct {
	progress []store.ProgressRecord
	sessions []store.SessionRecord
}

func (f *facts) learnedCount() int {
	n := 0
	for _, rec := range f.progress {
		if rec.Viewed {
			n++
		}
	}
	return n
}

func (f *facts) activityStreak() int {
	stamps := make([]time.Time, 0, len(f.progress)+len(f.sessions))
	for _, rec := range f.progress {
		stamps = append(stamps, rec.LastViewed)
	}
	for _, rec := range f.sessions {
		stamps = append(stamps, rec.Timestamp)
	}
	return LongestDayStreak(stamps)
}

func (f *facts) hasPerfectRun(minQuestions int) bool {
	for _, rec := range f.sessions {
		if rec.TotalCount >= minQuestions && rec.TotalCount > 0 &&
			rec.CorrectCount == rec.TotalCount {
			return true
		}
	}
	return false
}

// Evaluate checks every locked achievement and unlocks those whose
// requirement is met. Unlocks are monotonic: an achievement once
// unlocked is never re-evaluated or revoked.
func (s *Service) Evaluate(ctx context.Context) (*Report, error) {
	locked, err := s.achievements.Locked(ctx)
	if err != nil {
		return nil, fmt.Errorf("load locked achievements: %w", err)
	}
	report := &Report{}
	if len(locked) == 0 {
		return report, nil
	}

	f, err := s.loadFacts(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range locked {
		met, known, err := s.requirementMet(ctx, f, a.Requirement)
		if err != nil {
			return report, fmt.Errorf("evaluate %q: %w", a.ID, err)
		}
		if !known {
			report.Skipped = append(report.Skipped, a.ID)
			continue
		}
		if !met {
			continue
		}

		at := s.now()
		if err := s.achievements.Unlock(ctx, a.ID, at); err != nil {
			return report, err
		}
		a.Unlocked = true
		a.UnlockedAt = &at
		report.Unlocked = append(report.Unlocked, a)
		if s.OnUnlock != nil {
			s.OnUnlock(a)
		}
	}
	return report, nil
}

func (s *Service) loadFacts(ctx context.Context) (*facts, error) {
	progress, err := s.progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	sessions, err := s.sessions.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	return &facts{progress: progress, sessions: sessions}, nil
}

func (s *Service) requirementMet(ctx context.Context, f *facts, req store.Requirement) (met, known bool, err error) {
	switch req.Kind {
	case KindLearnedCount:
		return f.learnedCount() >= req.Threshold, true, nil
	case KindGameCount:
		return len(f.sessions) >= req.Threshold, true, nil
	case KindContinuousDays:
		return f.activityStreak() >= req.Threshold, true, nil
	case KindCategoriesLearned:
		n, err := s.categoriesLearned(ctx, f)
		if err != nil {
			return false, true, err
		}
		return n >= req.Threshold, true, nil
	case KindPerfectAnswer:
		return f.hasPerfectRun(req.Threshold), true, nil
	}
	return false, false, nil
}

// categoriesLearned counts the distinct categories among viewed items.
func (s *Service) categoriesLearned(ctx context.Context, f *facts) (int, error) {
	seen := make(map[catalog.Category]bool)
	for _, rec := range f.progress {
		if !rec.Viewed {
			continue
		}
		it, err := s.items.Get(ctx, rec.ItemID)
		if err != nil {
			return 0, fmt.Errorf("load item %d: %w", rec.ItemID, err)
		}
		if it == nil {
			continue
		}
		seen[it.Category] = true
	}
	return len(seen), nil
}
