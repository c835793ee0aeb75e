// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "requirement", Type: field.TypeJSON},
		{Name: "reward", Type: field.TypeInt, Default: 0},
		{Name: "unlocked", Type: field.TypeBool, Default: false},
		{Name: "unlocked_at", Type: field.TypeTime, Nullable: true},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_unlocked",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[7]},
			},
			{
				Name:    "achievement_category",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[4]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name_cn", Type: field.TypeString},
		{Name: "name_en", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt, Default: 1},
		{Name: "description_cn", Type: field.TypeString, Default: ""},
		{Name: "description_en", Type: field.TypeString, Default: ""},
		{Name: "image_res", Type: field.TypeString, Default: ""},
		{Name: "audio_cn", Type: field.TypeString, Default: ""},
		{Name: "audio_en", Type: field.TypeString, Default: ""},
		{Name: "audio_desc_cn", Type: field.TypeString, Default: ""},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "scenarios", Type: field.TypeJSON, Nullable: true},
		{Name: "custom_image", Type: field.TypeString, Default: ""},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_category",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[3]},
			},
			{
				Name:    "item_difficulty",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[4]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "item_id", Type: field.TypeInt64, Unique: true},
		{Name: "viewed", Type: field.TypeBool, Default: false},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
		{Name: "last_viewed", Type: field.TypeTime},
		{Name: "favorite", Type: field.TypeBool, Default: false},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_last_viewed",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[5]},
			},
			{
				Name:    "progressrecord_favorite",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[6]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_mode",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2]},
			},
			{
				Name:    "sessionrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[7]},
			},
			{
				Name:    "sessionrecord_mode_score",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2], SessionRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		ItemsTable,
		ProgressRecordsTable,
		SessionRecordsTable,
	}
)

func init() {
}
