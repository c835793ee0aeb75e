package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is one catalog entry: a learnable word with bilingual text and
// media resource keys. Rows are seeded once and read-only afterwards,
// except for the guardian-settable custom image override.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Immutable().
			Comment("Stable externally assigned identifier"),
		field.String("name_cn").
			NotEmpty(),
		field.String("name_en").
			NotEmpty(),
		field.String("category").
			NotEmpty(),
		field.Int("difficulty").
			Default(1).
			Min(1),
		field.String("description_cn").
			Default(""),
		field.String("description_en").
			Default(""),
		field.String("image_res").
			Default(""),
		field.String("audio_cn").
			Default(""),
		field.String("audio_en").
			Default(""),
		field.String("audio_desc_cn").
			Default("").
			Comment("Riddle-style description audio for the guess mode"),
		field.JSON("features", []string{}).
			Optional(),
		field.JSON("scenarios", []string{}).
			Optional(),
		field.String("custom_image").
			Default("").
			Comment("Guardian-supplied image path overriding image_res"),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("difficulty"),
	}
}
