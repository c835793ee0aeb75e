package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Requirement is the typed unlock condition stored with an achievement.
// Decoded from the seed JSON once at load time; the evaluator never
// parses requirement expressions during evaluation.
type Requirement struct {
	Kind      string `json:"kind"`
	Threshold int    `json:"threshold"`
}

// Achievement is a declarative reward definition plus its unlock state.
// Definitions are seeded once; only unlocked/unlocked_at ever change,
// and only from locked to unlocked.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.String("icon").
			Default(""),
		field.String("category").
			Default("").
			Comment("Display grouping: learning, game, ..."),
		field.JSON("requirement", Requirement{}),
		field.Int("reward").
			Default(0).
			Min(0).
			Comment("Stars credited when unlocked"),
		field.Bool("unlocked").
			Default(false),
		field.Time("unlocked_at").
			Optional().
			Nillable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unlocked"),
		index.Fields("category"),
	}
}
