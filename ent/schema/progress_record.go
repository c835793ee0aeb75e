package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord tracks one learner's engagement with one item.
// Created on first view, updated on every later view or review,
// never deleted.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("item_id").
			Unique().
			Immutable(),
		field.Bool("viewed").
			Default(false),
		field.Int("review_count").
			Default(0).
			Min(0),
		field.Int("mastery_level").
			Default(0).
			Min(0).
			Max(100),
		field.Time("last_viewed"),
		field.Bool("favorite").
			Default(false),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_viewed"),
		index.Fields("favorite"),
	}
}
