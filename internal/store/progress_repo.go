package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ewei/lexikid/ent"
	"github.com/ewei/lexikid/ent/progressrecord"
)

// MasteryStep is the fixed mastery increase per review.
const MasteryStep = 10

// MasteryCap is the maximum mastery level.
const MasteryCap = 100

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) All(ctx context.Context) ([]ProgressRecord, error) {
	rows, err := r.client.ProgressRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress records: %w", err)
	}
	return progressFromEnt(rows), nil
}

func (r *progressRepo) Get(ctx context.Context, itemID int64) (*ProgressRecord, error) {
	row, err := r.client.ProgressRecord.Query().
		Where(progressrecord.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get progress for item %d: %w", itemID, err)
	}
	rec := progressRecordFromEnt(row)
	return &rec, nil
}

func (r *progressRepo) MarkViewed(ctx context.Context, itemID int64, at time.Time) error {
	n, err := r.client.ProgressRecord.Update().
		Where(progressrecord.ItemID(itemID)).
		SetViewed(true).
		SetLastViewed(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark item %d viewed: %w", itemID, err)
	}
	if n > 0 {
		return nil
	}

	// First view: create the record.
	err = r.client.ProgressRecord.Create().
		SetItemID(itemID).
		SetViewed(true).
		SetLastViewed(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create progress for item %d: %w", itemID, err)
	}
	return nil
}

func (r *progressRepo) Review(ctx context.Context, itemID int64, at time.Time) error {
	row, err := r.client.ProgressRecord.Query().
		Where(progressrecord.ItemID(itemID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("load progress for item %d: %w", itemID, err)
		}
		// Reviewing an item never marked viewed still creates a record.
		err = r.client.ProgressRecord.Create().
			SetItemID(itemID).
			SetViewed(true).
			SetReviewCount(1).
			SetMasteryLevel(MasteryStep).
			SetLastViewed(at).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create progress for item %d: %w", itemID, err)
		}
		return nil
	}

	mastery := row.MasteryLevel + MasteryStep
	if mastery > MasteryCap {
		mastery = MasteryCap
	}
	err = r.client.ProgressRecord.UpdateOne(row).
		AddReviewCount(1).
		SetMasteryLevel(mastery).
		SetLastViewed(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("review item %d: %w", itemID, err)
	}
	return nil
}

func (r *progressRepo) SetFavorite(ctx context.Context, itemID int64, favorite bool) error {
	n, err := r.client.ProgressRecord.Update().
		Where(progressrecord.ItemID(itemID)).
		SetFavorite(favorite).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set favorite for item %d: %w", itemID, err)
	}
	if n == 0 {
		return fmt.Errorf("set favorite for item %d: no progress record", itemID)
	}
	return nil
}

func (r *progressRepo) Favorites(ctx context.Context) ([]ProgressRecord, error) {
	rows, err := r.client.ProgressRecord.Query().
		Where(progressrecord.Favorite(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	return progressFromEnt(rows), nil
}

func (r *progressRepo) RecentViewed(ctx context.Context, limit int) ([]ProgressRecord, error) {
	q := r.client.ProgressRecord.Query().
		Order(ent.Desc(progressrecord.FieldLastViewed))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent viewed: %w", err)
	}
	return progressFromEnt(rows), nil
}

func progressRecordFromEnt(e *ent.ProgressRecord) ProgressRecord {
	return ProgressRecord{
		ItemID:       e.ItemID,
		Viewed:       e.Viewed,
		ReviewCount:  e.ReviewCount,
		MasteryLevel: e.MasteryLevel,
		LastViewed:   e.LastViewed,
		Favorite:     e.Favorite,
	}
}

func progressFromEnt(rows []*ent.ProgressRecord) []ProgressRecord {
	recs := make([]ProgressRecord, len(rows))
	for i, e := range rows {
		recs[i] = progressRecordFromEnt(e)
	}
	return recs
}
