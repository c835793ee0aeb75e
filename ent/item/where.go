// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ewei/lexikid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// NameCn applies equality check predicate on the "name_cn" field. It's identical to NameCnEQ.
func NameCn(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldNameCn, v))
}

// NameEn applies equality check predicate on the "name_en" field. It's identical to NameEnEQ.
func NameEn(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldNameEn, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// DescriptionCn applies equality check predicate on the "description_cn" field. It's identical to DescriptionCnEQ.
func DescriptionCn(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDescriptionCn, v))
}

// DescriptionEn applies equality check predicate on the "description_en" field. It's identical to DescriptionEnEQ.
func DescriptionEn(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDescriptionEn, v))
}

// ImageRes applies equality check predicate on the "image_res" field. It's identical to ImageResEQ.
func ImageRes(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldImageRes, v))
}

// AudioCn applies equality check predicate on the "audio_cn" field. It's identical to AudioCnEQ.
func AudioCn(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudioCn, v))
}

// AudioEn applies equality check predicate on the "audio_en" field. It's identical to AudioEnEQ.
func AudioEn(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudioEn, v))
}

// AudioDescCn applies equality check predicate on the "audio_desc_cn" field. It's identical to AudioDescCnEQ.
func AudioDescCn(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudioDescCn, v))
}

// CustomImage applies equality check predicate on the "custom_image" field. It's identical to CustomImageEQ.
func CustomImage(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCustomImage, v))
}

// NameCnEQ applies the EQ predicate on the "name_cn" field.
func NameCnEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldNameCn, v))
}

// NameCnNEQ applies the NEQ predicate on the "name_cn" field.
func NameCnNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldNameCn, v))
}

// NameCnIn applies the In predicate on the "name_cn" field.
func NameCnIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldNameCn, vs...))
}

// NameCnNotIn applies the NotIn predicate on the "name_cn" field.
func NameCnNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldNameCn, vs...))
}

// NameCnGT applies the GT predicate on the "name_cn" field.
func NameCnGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldNameCn, v))
}

// NameCnGTE applies the GTE predicate on the "name_cn" field.
func NameCnGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldNameCn, v))
}

// NameCnLT applies the LT predicate on the "name_cn" field.
func NameCnLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldNameCn, v))
}

// NameCnLTE applies the LTE predicate on the "name_cn" field.
func NameCnLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldNameCn, v))
}

// NameCnContains applies the Contains predicate on the "name_cn" field.
func NameCnContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldNameCn, v))
}

// NameCnHasPrefix applies the HasPrefix predicate on the "name_cn" field.
func NameCnHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldNameCn, v))
}

// NameCnHasSuffix applies the HasSuffix predicate on the "name_cn" field.
func NameCnHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldNameCn, v))
}

// NameCnEqualFold applies the EqualFold predicate on the "name_cn" field.
func NameCnEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldNameCn, v))
}

// NameCnContainsFold applies the ContainsFold predicate on the "name_cn" field.
func NameCnContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldNameCn, v))
}

// NameEnEQ applies the EQ predicate on the "name_en" field.
func NameEnEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldNameEn, v))
}

// NameEnNEQ applies the NEQ predicate on the "name_en" field.
func NameEnNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldNameEn, v))
}

// NameEnIn applies the In predicate on the "name_en" field.
func NameEnIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldNameEn, vs...))
}

// NameEnNotIn applies the NotIn predicate on the "name_en" field.
func NameEnNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldNameEn, vs...))
}

// NameEnGT applies the GT predicate on the "name_en" field.
func NameEnGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldNameEn, v))
}

// NameEnGTE applies the GTE predicate on the "name_en" field.
func NameEnGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldNameEn, v))
}

// NameEnLT applies the LT predicate on the "name_en" field.
func NameEnLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldNameEn, v))
}

// NameEnLTE applies the LTE predicate on the "name_en" field.
func NameEnLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldNameEn, v))
}

// NameEnContains applies the Contains predicate on the "name_en" field.
func NameEnContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldNameEn, v))
}

// NameEnHasPrefix applies the HasPrefix predicate on the "name_en" field.
func NameEnHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldNameEn, v))
}

// NameEnHasSuffix applies the HasSuffix predicate on the "name_en" field.
func NameEnHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldNameEn, v))
}

// NameEnEqualFold applies the EqualFold predicate on the "name_en" field.
func NameEnEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldNameEn, v))
}

// NameEnContainsFold applies the ContainsFold predicate on the "name_en" field.
func NameEnContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldNameEn, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldCategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDifficulty, v))
}

// DescriptionCnEQ applies the EQ predicate on the "description_cn" field.
func DescriptionCnEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDescriptionCn, v))
}

// DescriptionCnNEQ applies the NEQ predicate on the "description_cn" field.
func DescriptionCnNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDescriptionCn, v))
}

// DescriptionCnIn applies the In predicate on the "description_cn" field.
func DescriptionCnIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDescriptionCn, vs...))
}

// DescriptionCnNotIn applies the NotIn predicate on the "description_cn" field.
func DescriptionCnNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDescriptionCn, vs...))
}

// DescriptionCnGT applies the GT predicate on the "description_cn" field.
func DescriptionCnGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDescriptionCn, v))
}

// DescriptionCnGTE applies the GTE predicate on the "description_cn" field.
func DescriptionCnGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDescriptionCn, v))
}

// DescriptionCnLT applies the LT predicate on the "description_cn" field.
func DescriptionCnLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDescriptionCn, v))
}

// DescriptionCnLTE applies the LTE predicate on the "description_cn" field.
func DescriptionCnLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDescriptionCn, v))
}

// DescriptionCnContains applies the Contains predicate on the "description_cn" field.
func DescriptionCnContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDescriptionCn, v))
}

// DescriptionCnHasPrefix applies the HasPrefix predicate on the "description_cn" field.
func DescriptionCnHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDescriptionCn, v))
}

// DescriptionCnHasSuffix applies the HasSuffix predicate on the "description_cn" field.
func DescriptionCnHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDescriptionCn, v))
}

// DescriptionCnEqualFold applies the EqualFold predicate on the "description_cn" field.
func DescriptionCnEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDescriptionCn, v))
}

// DescriptionCnContainsFold applies the ContainsFold predicate on the "description_cn" field.
func DescriptionCnContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDescriptionCn, v))
}

// DescriptionEnEQ applies the EQ predicate on the "description_en" field.
func DescriptionEnEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldDescriptionEn, v))
}

// DescriptionEnNEQ applies the NEQ predicate on the "description_en" field.
func DescriptionEnNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldDescriptionEn, v))
}

// DescriptionEnIn applies the In predicate on the "description_en" field.
func DescriptionEnIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldDescriptionEn, vs...))
}

// DescriptionEnNotIn applies the NotIn predicate on the "description_en" field.
func DescriptionEnNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldDescriptionEn, vs...))
}

// DescriptionEnGT applies the GT predicate on the "description_en" field.
func DescriptionEnGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldDescriptionEn, v))
}

// DescriptionEnGTE applies the GTE predicate on the "description_en" field.
func DescriptionEnGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldDescriptionEn, v))
}

// DescriptionEnLT applies the LT predicate on the "description_en" field.
func DescriptionEnLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldDescriptionEn, v))
}

// DescriptionEnLTE applies the LTE predicate on the "description_en" field.
func DescriptionEnLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldDescriptionEn, v))
}

// DescriptionEnContains applies the Contains predicate on the "description_en" field.
func DescriptionEnContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldDescriptionEn, v))
}

// DescriptionEnHasPrefix applies the HasPrefix predicate on the "description_en" field.
func DescriptionEnHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldDescriptionEn, v))
}

// DescriptionEnHasSuffix applies the HasSuffix predicate on the "description_en" field.
func DescriptionEnHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldDescriptionEn, v))
}

// DescriptionEnEqualFold applies the EqualFold predicate on the "description_en" field.
func DescriptionEnEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldDescriptionEn, v))
}

// DescriptionEnContainsFold applies the ContainsFold predicate on the "description_en" field.
func DescriptionEnContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldDescriptionEn, v))
}

// ImageResEQ applies the EQ predicate on the "image_res" field.
func ImageResEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldImageRes, v))
}

// ImageResNEQ applies the NEQ predicate on the "image_res" field.
func ImageResNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldImageRes, v))
}

// ImageResIn applies the In predicate on the "image_res" field.
func ImageResIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldImageRes, vs...))
}

// ImageResNotIn applies the NotIn predicate on the "image_res" field.
func ImageResNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldImageRes, vs...))
}

// ImageResGT applies the GT predicate on the "image_res" field.
func ImageResGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldImageRes, v))
}

// ImageResGTE applies the GTE predicate on the "image_res" field.
func ImageResGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldImageRes, v))
}

// ImageResLT applies the LT predicate on the "image_res" field.
func ImageResLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldImageRes, v))
}

// ImageResLTE applies the LTE predicate on the "image_res" field.
func ImageResLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldImageRes, v))
}

// ImageResContains applies the Contains predicate on the "image_res" field.
func ImageResContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldImageRes, v))
}

// ImageResHasPrefix applies the HasPrefix predicate on the "image_res" field.
func ImageResHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldImageRes, v))
}

// ImageResHasSuffix applies the HasSuffix predicate on the "image_res" field.
func ImageResHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldImageRes, v))
}

// ImageResEqualFold applies the EqualFold predicate on the "image_res" field.
func ImageResEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldImageRes, v))
}

// ImageResContainsFold applies the ContainsFold predicate on the "image_res" field.
func ImageResContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldImageRes, v))
}

// AudioCnEQ applies the EQ predicate on the "audio_cn" field.
func AudioCnEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudioCn, v))
}

// AudioCnNEQ applies the NEQ predicate on the "audio_cn" field.
func AudioCnNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAudioCn, v))
}

// AudioCnIn applies the In predicate on the "audio_cn" field.
func AudioCnIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAudioCn, vs...))
}

// AudioCnNotIn applies the NotIn predicate on the "audio_cn" field.
func AudioCnNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAudioCn, vs...))
}

// AudioCnGT applies the GT predicate on the "audio_cn" field.
func AudioCnGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAudioCn, v))
}

// AudioCnGTE applies the GTE predicate on the "audio_cn" field.
func AudioCnGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAudioCn, v))
}

// AudioCnLT applies the LT predicate on the "audio_cn" field.
func AudioCnLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAudioCn, v))
}

// AudioCnLTE applies the LTE predicate on the "audio_cn" field.
func AudioCnLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAudioCn, v))
}

// AudioCnContains applies the Contains predicate on the "audio_cn" field.
func AudioCnContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAudioCn, v))
}

// AudioCnHasPrefix applies the HasPrefix predicate on the "audio_cn" field.
func AudioCnHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAudioCn, v))
}

// AudioCnHasSuffix applies the HasSuffix predicate on the "audio_cn" field.
func AudioCnHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAudioCn, v))
}

// AudioCnEqualFold applies the EqualFold predicate on the "audio_cn" field.
func AudioCnEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAudioCn, v))
}

// AudioCnContainsFold applies the ContainsFold predicate on the "audio_cn" field.
func AudioCnContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAudioCn, v))
}

// AudioEnEQ applies the EQ predicate on the "audio_en" field.
func AudioEnEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudioEn, v))
}

// AudioEnNEQ applies the NEQ predicate on the "audio_en" field.
func AudioEnNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAudioEn, v))
}

// AudioEnIn applies the In predicate on the "audio_en" field.
func AudioEnIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAudioEn, vs...))
}

// AudioEnNotIn applies the NotIn predicate on the "audio_en" field.
func AudioEnNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAudioEn, vs...))
}

// AudioEnGT applies the GT predicate on the "audio_en" field.
func AudioEnGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAudioEn, v))
}

// AudioEnGTE applies the GTE predicate on the "audio_en" field.
func AudioEnGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAudioEn, v))
}

// AudioEnLT applies the LT predicate on the "audio_en" field.
func AudioEnLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAudioEn, v))
}

// AudioEnLTE applies the LTE predicate on the "audio_en" field.
func AudioEnLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAudioEn, v))
}

// AudioEnContains applies the Contains predicate on the "audio_en" field.
func AudioEnContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAudioEn, v))
}

// AudioEnHasPrefix applies the HasPrefix predicate on the "audio_en" field.
func AudioEnHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAudioEn, v))
}

// AudioEnHasSuffix applies the HasSuffix predicate on the "audio_en" field.
func AudioEnHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAudioEn, v))
}

// AudioEnEqualFold applies the EqualFold predicate on the "audio_en" field.
func AudioEnEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAudioEn, v))
}

// AudioEnContainsFold applies the ContainsFold predicate on the "audio_en" field.
func AudioEnContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAudioEn, v))
}

// AudioDescCnEQ applies the EQ predicate on the "audio_desc_cn" field.
func AudioDescCnEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudioDescCn, v))
}

// AudioDescCnNEQ applies the NEQ predicate on the "audio_desc_cn" field.
func AudioDescCnNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAudioDescCn, v))
}

// AudioDescCnIn applies the In predicate on the "audio_desc_cn" field.
func AudioDescCnIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAudioDescCn, vs...))
}

// AudioDescCnNotIn applies the NotIn predicate on the "audio_desc_cn" field.
func AudioDescCnNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAudioDescCn, vs...))
}

// AudioDescCnGT applies the GT predicate on the "audio_desc_cn" field.
func AudioDescCnGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAudioDescCn, v))
}

// AudioDescCnGTE applies the GTE predicate on the "audio_desc_cn" field.
func AudioDescCnGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAudioDescCn, v))
}

// AudioDescCnLT applies the LT predicate on the "audio_desc_cn" field.
func AudioDescCnLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAudioDescCn, v))
}

// AudioDescCnLTE applies the LTE predicate on the "audio_desc_cn" field.
func AudioDescCnLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAudioDescCn, v))
}

// AudioDescCnContains applies the Contains predicate on the "audio_desc_cn" field.
func AudioDescCnContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAudioDescCn, v))
}

// AudioDescCnHasPrefix applies the HasPrefix predicate on the "audio_desc_cn" field.
func AudioDescCnHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAudioDescCn, v))
}

// AudioDescCnHasSuffix applies the HasSuffix predicate on the "audio_desc_cn" field.
func AudioDescCnHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAudioDescCn, v))
}

// AudioDescCnEqualFold applies the EqualFold predicate on the "audio_desc_cn" field.
func AudioDescCnEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAudioDescCn, v))
}

// AudioDescCnContainsFold applies the ContainsFold predicate on the "audio_desc_cn" field.
func AudioDescCnContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAudioDescCn, v))
}

// FeaturesIsNil applies the IsNil predicate on the "features" field.
func FeaturesIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldFeatures))
}

// FeaturesNotNil applies the NotNil predicate on the "features" field.
func FeaturesNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldFeatures))
}

// ScenariosIsNil applies the IsNil predicate on the "scenarios" field.
func ScenariosIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldScenarios))
}

// ScenariosNotNil applies the NotNil predicate on the "scenarios" field.
func ScenariosNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldScenarios))
}

// CustomImageEQ applies the EQ predicate on the "custom_image" field.
func CustomImageEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCustomImage, v))
}

// CustomImageNEQ applies the NEQ predicate on the "custom_image" field.
func CustomImageNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCustomImage, v))
}

// CustomImageIn applies the In predicate on the "custom_image" field.
func CustomImageIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCustomImage, vs...))
}

// CustomImageNotIn applies the NotIn predicate on the "custom_image" field.
func CustomImageNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCustomImage, vs...))
}

// CustomImageGT applies the GT predicate on the "custom_image" field.
func CustomImageGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCustomImage, v))
}

// CustomImageGTE applies the GTE predicate on the "custom_image" field.
func CustomImageGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCustomImage, v))
}

// CustomImageLT applies the LT predicate on the "custom_image" field.
func CustomImageLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCustomImage, v))
}

// CustomImageLTE applies the LTE predicate on the "custom_image" field.
func CustomImageLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCustomImage, v))
}

// CustomImageContains applies the Contains predicate on the "custom_image" field.
func CustomImageContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldCustomImage, v))
}

// CustomImageHasPrefix applies the HasPrefix predicate on the "custom_image" field.
func CustomImageHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldCustomImage, v))
}

// CustomImageHasSuffix applies the HasSuffix predicate on the "custom_image" field.
func CustomImageHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldCustomImage, v))
}

// CustomImageEqualFold applies the EqualFold predicate on the "custom_image" field.
func CustomImageEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldCustomImage, v))
}

// CustomImageContainsFold applies the ContainsFold predicate on the "custom_image" field.
func CustomImageContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldCustomImage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
