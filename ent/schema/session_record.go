package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the persisted outcome of one completed quiz run.
// Append-only: rows are immutable once created.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID of the run that produced this record"),
		field.String("mode").
			NotEmpty().
			Comment("guess or listen"),
		field.Int("score").
			Default(0).
			Min(0),
		field.Int("correct_count").
			Default(0).
			Min(0),
		field.Int("total_count").
			Default(0).
			Min(0),
		field.Int("duration_secs").
			Default(0).
			Min(0),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mode"),
		index.Fields("timestamp"),
		index.Fields("mode", "score"),
	}
}
