package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ewei/lexikid/ent"
	"github.com/ewei/lexikid/ent/achievement"
	"github.com/ewei/lexikid/ent/schema"
)

type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) All(ctx context.Context) ([]Achievement, error) {
	rows, err := r.client.Achievement.Query().
		Order(ent.Asc(achievement.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	return achievementsFromEnt(rows), nil
}

func (r *achievementRepo) Locked(ctx context.Context) ([]Achievement, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.Unlocked(false)).
		Order(ent.Asc(achievement.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query locked achievements: %w", err)
	}
	return achievementsFromEnt(rows), nil
}

func (r *achievementRepo) Unlocked(ctx context.Context) ([]Achievement, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.Unlocked(true)).
		Order(ent.Asc(achievement.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unlocked achievements: %w", err)
	}
	return achievementsFromEnt(rows), nil
}

func (r *achievementRepo) Get(ctx context.Context, id string) (*Achievement, error) {
	row, err := r.client.Achievement.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get achievement %q: %w", id, err)
	}
	a := achievementFromEnt(row)
	return &a, nil
}

// Unlock only touches rows still locked, so repeating it after a
// partial evaluation pass is harmless.
func (r *achievementRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	_, err := r.client.Achievement.Update().
		Where(achievement.ID(id), achievement.Unlocked(false)).
		SetUnlocked(true).
		SetUnlockedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("unlock achievement %q: %w", id, err)
	}
	return nil
}

func achievementFromEnt(e *ent.Achievement) Achievement {
	return Achievement{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Icon:        e.Icon,
		Category:    e.Category,
		Requirement: Requirement{
			Kind:      e.Requirement.Kind,
			Threshold: e.Requirement.Threshold,
		},
		Reward:     e.Reward,
		Unlocked:   e.Unlocked,
		UnlockedAt: e.UnlockedAt,
	}
}

func achievementsFromEnt(rows []*ent.Achievement) []Achievement {
	recs := make([]Achievement, len(rows))
	for i, e := range rows {
		recs[i] = achievementFromEnt(e)
	}
	return recs
}

// requirementToSchema converts the decoded seed requirement into the
// ent JSON column type.
func requirementToSchema(r Requirement) schema.Requirement {
	return schema.Requirement{Kind: r.Kind, Threshold: r.Threshold}
}
