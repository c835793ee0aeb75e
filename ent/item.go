// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ewei/lexikid/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	// Stable externally assigned identifier
	ID int64 `json:"id,omitempty"`
	// NameCn holds the value of the "name_cn" field.
	NameCn string `json:"name_cn,omitempty"`
	// NameEn holds the value of the "name_en" field.
	NameEn string `json:"name_en,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty int `json:"difficulty,omitempty"`
	// DescriptionCn holds the value of the "description_cn" field.
	DescriptionCn string `json:"description_cn,omitempty"`
	// DescriptionEn holds the value of the "description_en" field.
	DescriptionEn string `json:"description_en,omitempty"`
	// ImageRes holds the value of the "image_res" field.
	ImageRes string `json:"image_res,omitempty"`
	// AudioCn holds the value of the "audio_cn" field.
	AudioCn string `json:"audio_cn,omitempty"`
	// AudioEn holds the value of the "audio_en" field.
	AudioEn string `json:"audio_en,omitempty"`
	// Riddle-style description audio for the guess mode
	AudioDescCn string `json:"audio_desc_cn,omitempty"`
	// Features holds the value of the "features" field.
	Features []string `json:"features,omitempty"`
	// Scenarios holds the value of the "scenarios" field.
	Scenarios []string `json:"scenarios,omitempty"`
	// Guardian-supplied image path overriding image_res
	CustomImage  string `json:"custom_image,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldFeatures, item.FieldScenarios:
			values[i] = new([]byte)
		case item.FieldID, item.FieldDifficulty:
			values[i] = new(sql.NullInt64)
		case item.FieldNameCn, item.FieldNameEn, item.FieldCategory, item.FieldDescriptionCn, item.FieldDescriptionEn, item.FieldImageRes, item.FieldAudioCn, item.FieldAudioEn, item.FieldAudioDescCn, item.FieldCustomImage:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case item.FieldNameCn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_cn", values[i])
			} else if value.Valid {
				_m.NameCn = value.String
			}
		case item.FieldNameEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_en", values[i])
			} else if value.Valid {
				_m.NameEn = value.String
			}
		case item.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case item.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case item.FieldDescriptionCn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_cn", values[i])
			} else if value.Valid {
				_m.DescriptionCn = value.String
			}
		case item.FieldDescriptionEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description_en", values[i])
			} else if value.Valid {
				_m.DescriptionEn = value.String
			}
		case item.FieldImageRes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_res", values[i])
			} else if value.Valid {
				_m.ImageRes = value.String
			}
		case item.FieldAudioCn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_cn", values[i])
			} else if value.Valid {
				_m.AudioCn = value.String
			}
		case item.FieldAudioEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_en", values[i])
			} else if value.Valid {
				_m.AudioEn = value.String
			}
		case item.FieldAudioDescCn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_desc_cn", values[i])
			} else if value.Valid {
				_m.AudioDescCn = value.String
			}
		case item.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		case item.FieldScenarios:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scenarios", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scenarios); err != nil {
					return fmt.Errorf("unmarshal field scenarios: %w", err)
				}
			}
		case item.FieldCustomImage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_image", values[i])
			} else if value.Valid {
				_m.CustomImage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name_cn=")
	builder.WriteString(_m.NameCn)
	builder.WriteString(", ")
	builder.WriteString("name_en=")
	builder.WriteString(_m.NameEn)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("description_cn=")
	builder.WriteString(_m.DescriptionCn)
	builder.WriteString(", ")
	builder.WriteString("description_en=")
	builder.WriteString(_m.DescriptionEn)
	builder.WriteString(", ")
	builder.WriteString("image_res=")
	builder.WriteString(_m.ImageRes)
	builder.WriteString(", ")
	builder.WriteString("audio_cn=")
	builder.WriteString(_m.AudioCn)
	builder.WriteString(", ")
	builder.WriteString("audio_en=")
	builder.WriteString(_m.AudioEn)
	builder.WriteString(", ")
	builder.WriteString("audio_desc_cn=")
	builder.WriteString(_m.AudioDescCn)
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", _m.Features))
	builder.WriteString(", ")
	builder.WriteString("scenarios=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scenarios))
	builder.WriteString(", ")
	builder.WriteString("custom_image=")
	builder.WriteString(_m.CustomImage)
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
