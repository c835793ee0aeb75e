// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNameCn holds the string denoting the name_cn field in the database.
	FieldNameCn = "name_cn"
	// FieldNameEn holds the string denoting the name_en field in the database.
	FieldNameEn = "name_en"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldDescriptionCn holds the string denoting the description_cn field in the database.
	FieldDescriptionCn = "description_cn"
	// FieldDescriptionEn holds the string denoting the description_en field in the database.
	FieldDescriptionEn = "description_en"
	// FieldImageRes holds the string denoting the image_res field in the database.
	FieldImageRes = "image_res"
	// FieldAudioCn holds the string denoting the audio_cn field in the database.
	FieldAudioCn = "audio_cn"
	// FieldAudioEn holds the string denoting the audio_en field in the database.
	FieldAudioEn = "audio_en"
	// FieldAudioDescCn holds the string denoting the audio_desc_cn field in the database.
	FieldAudioDescCn = "audio_desc_cn"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// FieldScenarios holds the string denoting the scenarios field in the database.
	FieldScenarios = "scenarios"
	// FieldCustomImage holds the string denoting the custom_image field in the database.
	FieldCustomImage = "custom_image"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldNameCn,
	FieldNameEn,
	FieldCategory,
	FieldDifficulty,
	FieldDescriptionCn,
	FieldDescriptionEn,
	FieldImageRes,
	FieldAudioCn,
	FieldAudioEn,
	FieldAudioDescCn,
	FieldFeatures,
	FieldScenarios,
	FieldCustomImage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameCnValidator is a validator for the "name_cn" field. It is called by the builders before save.
	NameCnValidator func(string) error
	// NameEnValidator is a validator for the "name_en" field. It is called by the builders before save.
	NameEnValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty int
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(int) error
	// DefaultDescriptionCn holds the default value on creation for the "description_cn" field.
	DefaultDescriptionCn string
	// DefaultDescriptionEn holds the default value on creation for the "description_en" field.
	DefaultDescriptionEn string
	// DefaultImageRes holds the default value on creation for the "image_res" field.
	DefaultImageRes string
	// DefaultAudioCn holds the default value on creation for the "audio_cn" field.
	DefaultAudioCn string
	// DefaultAudioEn holds the default value on creation for the "audio_en" field.
	DefaultAudioEn string
	// DefaultAudioDescCn holds the default value on creation for the "audio_desc_cn" field.
	DefaultAudioDescCn string
	// DefaultCustomImage holds the default value on creation for the "custom_image" field.
	DefaultCustomImage string
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNameCn orders the results by the name_cn field.
func ByNameCn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameCn, opts...).ToFunc()
}

// ByNameEn orders the results by the name_en field.
func ByNameEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameEn, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByDescriptionCn orders the results by the description_cn field.
func ByDescriptionCn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionCn, opts...).ToFunc()
}

// ByDescriptionEn orders the results by the description_en field.
func ByDescriptionEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescriptionEn, opts...).ToFunc()
}

// ByImageRes orders the results by the image_res field.
func ByImageRes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageRes, opts...).ToFunc()
}

// ByAudioCn orders the results by the audio_cn field.
func ByAudioCn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioCn, opts...).ToFunc()
}

// ByAudioEn orders the results by the audio_en field.
func ByAudioEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioEn, opts...).ToFunc()
}

// ByAudioDescCn orders the results by the audio_desc_cn field.
func ByAudioDescCn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioDescCn, opts...).ToFunc()
}

// ByCustomImage orders the results by the custom_image field.
func ByCustomImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomImage, opts...).ToFunc()
}
