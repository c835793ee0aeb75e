package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/ewei/lexikid/ent"
	"github.com/ewei/lexikid/ent/sessionrecord"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Append(ctx context.Context, rec SessionRecord) (*SessionRecord, error) {
	create := r.client.SessionRecord.Create().
		SetRunID(rec.RunID).
		SetMode(rec.Mode).
		SetScore(rec.Score).
		SetCorrectCount(rec.CorrectCount).
		SetTotalCount(rec.TotalCount).
		SetDurationSecs(rec.DurationSecs)
	if !rec.Timestamp.IsZero() {
		create = create.SetTimestamp(rec.Timestamp)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append session record: %w", err)
	}
	saved := sessionFromEnt(row)
	return &saved, nil
}

func (r *sessionRepo) All(ctx context.Context) ([]SessionRecord, error) {
	rows, err := r.client.SessionRecord.Query().
		Order(ent.Desc(sessionrecord.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session records: %w", err)
	}
	return sessionsFromEnt(rows), nil
}

func (r *sessionRepo) ByMode(ctx context.Context, mode string) ([]SessionRecord, error) {
	rows, err := r.client.SessionRecord.Query().
		Where(sessionrecord.Mode(mode)).
		Order(ent.Desc(sessionrecord.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session records for mode %q: %w", mode, err)
	}
	return sessionsFromEnt(rows), nil
}

// TopScores sorts the mode's records by score over a timestamp-desc
// base order, so equal scores rank the most recent run first.
func (r *sessionRepo) TopScores(ctx context.Context, mode string, limit int) ([]SessionRecord, error) {
	recs, err := r.ByMode(ctx, mode)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func sessionFromEnt(e *ent.SessionRecord) SessionRecord {
	return SessionRecord{
		ID:           e.ID,
		RunID:        e.RunID,
		Mode:         e.Mode,
		Score:        e.Score,
		CorrectCount: e.CorrectCount,
		TotalCount:   e.TotalCount,
		DurationSecs: e.DurationSecs,
		Timestamp:    e.Timestamp,
	}
}

func sessionsFromEnt(rows []*ent.SessionRecord) []SessionRecord {
	recs := make([]SessionRecord, len(rows))
	for i, e := range rows {
		recs[i] = sessionFromEnt(e)
	}
	return recs
}
