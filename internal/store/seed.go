package store

import (
	"context"
	"fmt"

	"github.com/ewei/lexikid/ent"
	"github.com/ewei/lexikid/internal/catalog"
)

// Seed populates the item catalog and achievement definitions on first
// run. Existing rows are left alone so guardian edits and unlock state
// survive upgrades.
func (s *Store) Seed(ctx context.Context) error {
	if err := s.seedItems(ctx); err != nil {
		return err
	}
	return s.seedAchievements(ctx)
}

func (s *Store) seedItems(ctx context.Context) error {
	n, err := s.client.Item.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if n > 0 {
		return nil
	}

	builders := make([]*ent.ItemCreate, 0, len(catalog.SeedItems()))
	for _, it := range catalog.SeedItems() {
		b := s.client.Item.Create().
			SetID(it.ID).
			SetNameCn(it.NameCN).
			SetNameEn(it.NameEN).
			SetCategory(string(it.Category)).
			SetDifficulty(it.Difficulty).
			SetDescriptionCn(it.DescriptionCN).
			SetDescriptionEn(it.DescriptionEN).
			SetImageRes(it.ImageRes).
			SetAudioCn(it.AudioCN).
			SetAudioEn(it.AudioEN).
			SetAudioDescCn(it.AudioDescCN)
		if len(it.Features) > 0 {
			b = b.SetFeatures(it.Features)
		}
		if len(it.Scenarios) > 0 {
			b = b.SetScenarios(it.Scenarios)
		}
		builders = append(builders, b)
	}
	if err := s.client.Item.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("seed items: %w", err)
	}
	return nil
}

func (s *Store) seedAchievements(ctx context.Context) error {
	n, err := s.client.Achievement.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("count achievements: %w", err)
	}
	if n > 0 {
		return nil
	}

	builders := make([]*ent.AchievementCreate, 0, len(catalog.SeedAchievements()))
	for _, a := range catalog.SeedAchievements() {
		req, err := ParseRequirement(a.Requirement)
		if err != nil {
			return fmt.Errorf("achievement %q: %w", a.ID, err)
		}
		builders = append(builders, s.client.Achievement.Create().
			SetID(a.ID).
			SetName(a.Name).
			SetDescription(a.Description).
			SetIcon(a.Icon).
			SetCategory(a.Category).
			SetRequirement(requirementToSchema(req)).
			SetReward(a.Reward))
	}
	if err := s.client.Achievement.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("seed achievements: %w", err)
	}
	return nil
}
