// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ewei/lexikid/ent/item"
	"github.com/ewei/lexikid/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNameCn sets the "name_cn" field.
func (_u *ItemUpdate) SetNameCn(v string) *ItemUpdate {
	_u.mutation.SetNameCn(v)
	return _u
}

// SetNillableNameCn sets the "name_cn" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableNameCn(v *string) *ItemUpdate {
	if v != nil {
		_u.SetNameCn(*v)
	}
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *ItemUpdate) SetNameEn(v string) *ItemUpdate {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableNameEn(v *string) *ItemUpdate {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ItemUpdate) SetCategory(v string) *ItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCategory(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdate) SetDifficulty(v int) *ItemUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDifficulty(v *int) *ItemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemUpdate) AddDifficulty(v int) *ItemUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDescriptionCn sets the "description_cn" field.
func (_u *ItemUpdate) SetDescriptionCn(v string) *ItemUpdate {
	_u.mutation.SetDescriptionCn(v)
	return _u
}

// SetNillableDescriptionCn sets the "description_cn" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDescriptionCn(v *string) *ItemUpdate {
	if v != nil {
		_u.SetDescriptionCn(*v)
	}
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *ItemUpdate) SetDescriptionEn(v string) *ItemUpdate {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableDescriptionEn(v *string) *ItemUpdate {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// SetImageRes sets the "image_res" field.
func (_u *ItemUpdate) SetImageRes(v string) *ItemUpdate {
	_u.mutation.SetImageRes(v)
	return _u
}

// SetNillableImageRes sets the "image_res" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableImageRes(v *string) *ItemUpdate {
	if v != nil {
		_u.SetImageRes(*v)
	}
	return _u
}

// SetAudioCn sets the "audio_cn" field.
func (_u *ItemUpdate) SetAudioCn(v string) *ItemUpdate {
	_u.mutation.SetAudioCn(v)
	return _u
}

// SetNillableAudioCn sets the "audio_cn" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAudioCn(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAudioCn(*v)
	}
	return _u
}

// SetAudioEn sets the "audio_en" field.
func (_u *ItemUpdate) SetAudioEn(v string) *ItemUpdate {
	_u.mutation.SetAudioEn(v)
	return _u
}

// SetNillableAudioEn sets the "audio_en" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAudioEn(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAudioEn(*v)
	}
	return _u
}

// SetAudioDescCn sets the "audio_desc_cn" field.
func (_u *ItemUpdate) SetAudioDescCn(v string) *ItemUpdate {
	_u.mutation.SetAudioDescCn(v)
	return _u
}

// SetNillableAudioDescCn sets the "audio_desc_cn" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableAudioDescCn(v *string) *ItemUpdate {
	if v != nil {
		_u.SetAudioDescCn(*v)
	}
	return _u
}

// SetFeatures sets the "features" field.
func (_u *ItemUpdate) SetFeatures(v []string) *ItemUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *ItemUpdate) AppendFeatures(v []string) *ItemUpdate {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *ItemUpdate) ClearFeatures() *ItemUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// SetScenarios sets the "scenarios" field.
func (_u *ItemUpdate) SetScenarios(v []string) *ItemUpdate {
	_u.mutation.SetScenarios(v)
	return _u
}

// AppendScenarios appends value to the "scenarios" field.
func (_u *ItemUpdate) AppendScenarios(v []string) *ItemUpdate {
	_u.mutation.AppendScenarios(v)
	return _u
}

// ClearScenarios clears the value of the "scenarios" field.
func (_u *ItemUpdate) ClearScenarios() *ItemUpdate {
	_u.mutation.ClearScenarios()
	return _u
}

// SetCustomImage sets the "custom_image" field.
func (_u *ItemUpdate) SetCustomImage(v string) *ItemUpdate {
	_u.mutation.SetCustomImage(v)
	return _u
}

// SetNillableCustomImage sets the "custom_image" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCustomImage(v *string) *ItemUpdate {
	if v != nil {
		_u.SetCustomImage(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.NameCn(); ok {
		if err := item.NameCnValidator(v); err != nil {
			return &ValidationError{Name: "name_cn", err: fmt.Errorf(`ent: validator failed for field "Item.name_cn": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameEn(); ok {
		if err := item.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`ent: validator failed for field "Item.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Item.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := item.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NameCn(); ok {
		_spec.SetField(item.FieldNameCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(item.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(item.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DescriptionCn(); ok {
		_spec.SetField(item.FieldDescriptionCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(item.FieldDescriptionEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageRes(); ok {
		_spec.SetField(item.FieldImageRes, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioCn(); ok {
		_spec.SetField(item.FieldAudioCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioEn(); ok {
		_spec.SetField(item.FieldAudioEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioDescCn(); ok {
		_spec.SetField(item.FieldAudioDescCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(item.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(item.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scenarios(); ok {
		_spec.SetField(item.FieldScenarios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenarios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldScenarios, value)
		})
	}
	if _u.mutation.ScenariosCleared() {
		_spec.ClearField(item.FieldScenarios, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomImage(); ok {
		_spec.SetField(item.FieldCustomImage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetNameCn sets the "name_cn" field.
func (_u *ItemUpdateOne) SetNameCn(v string) *ItemUpdateOne {
	_u.mutation.SetNameCn(v)
	return _u
}

// SetNillableNameCn sets the "name_cn" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableNameCn(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetNameCn(*v)
	}
	return _u
}

// SetNameEn sets the "name_en" field.
func (_u *ItemUpdateOne) SetNameEn(v string) *ItemUpdateOne {
	_u.mutation.SetNameEn(v)
	return _u
}

// SetNillableNameEn sets the "name_en" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableNameEn(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetNameEn(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ItemUpdateOne) SetCategory(v string) *ItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCategory(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ItemUpdateOne) SetDifficulty(v int) *ItemUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDifficulty(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ItemUpdateOne) AddDifficulty(v int) *ItemUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetDescriptionCn sets the "description_cn" field.
func (_u *ItemUpdateOne) SetDescriptionCn(v string) *ItemUpdateOne {
	_u.mutation.SetDescriptionCn(v)
	return _u
}

// SetNillableDescriptionCn sets the "description_cn" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDescriptionCn(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetDescriptionCn(*v)
	}
	return _u
}

// SetDescriptionEn sets the "description_en" field.
func (_u *ItemUpdateOne) SetDescriptionEn(v string) *ItemUpdateOne {
	_u.mutation.SetDescriptionEn(v)
	return _u
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableDescriptionEn(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetDescriptionEn(*v)
	}
	return _u
}

// SetImageRes sets the "image_res" field.
func (_u *ItemUpdateOne) SetImageRes(v string) *ItemUpdateOne {
	_u.mutation.SetImageRes(v)
	return _u
}

// SetNillableImageRes sets the "image_res" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableImageRes(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetImageRes(*v)
	}
	return _u
}

// SetAudioCn sets the "audio_cn" field.
func (_u *ItemUpdateOne) SetAudioCn(v string) *ItemUpdateOne {
	_u.mutation.SetAudioCn(v)
	return _u
}

// SetNillableAudioCn sets the "audio_cn" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAudioCn(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAudioCn(*v)
	}
	return _u
}

// SetAudioEn sets the "audio_en" field.
func (_u *ItemUpdateOne) SetAudioEn(v string) *ItemUpdateOne {
	_u.mutation.SetAudioEn(v)
	return _u
}

// SetNillableAudioEn sets the "audio_en" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAudioEn(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAudioEn(*v)
	}
	return _u
}

// SetAudioDescCn sets the "audio_desc_cn" field.
func (_u *ItemUpdateOne) SetAudioDescCn(v string) *ItemUpdateOne {
	_u.mutation.SetAudioDescCn(v)
	return _u
}

// SetNillableAudioDescCn sets the "audio_desc_cn" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableAudioDescCn(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetAudioDescCn(*v)
	}
	return _u
}

// SetFeatures sets the "features" field.
func (_u *ItemUpdateOne) SetFeatures(v []string) *ItemUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *ItemUpdateOne) AppendFeatures(v []string) *ItemUpdateOne {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *ItemUpdateOne) ClearFeatures() *ItemUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// SetScenarios sets the "scenarios" field.
func (_u *ItemUpdateOne) SetScenarios(v []string) *ItemUpdateOne {
	_u.mutation.SetScenarios(v)
	return _u
}

// AppendScenarios appends value to the "scenarios" field.
func (_u *ItemUpdateOne) AppendScenarios(v []string) *ItemUpdateOne {
	_u.mutation.AppendScenarios(v)
	return _u
}

// ClearScenarios clears the value of the "scenarios" field.
func (_u *ItemUpdateOne) ClearScenarios() *ItemUpdateOne {
	_u.mutation.ClearScenarios()
	return _u
}

// SetCustomImage sets the "custom_image" field.
func (_u *ItemUpdateOne) SetCustomImage(v string) *ItemUpdateOne {
	_u.mutation.SetCustomImage(v)
	return _u
}

// SetNillableCustomImage sets the "custom_image" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCustomImage(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetCustomImage(*v)
	}
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.NameCn(); ok {
		if err := item.NameCnValidator(v); err != nil {
			return &ValidationError{Name: "name_cn", err: fmt.Errorf(`ent: validator failed for field "Item.name_cn": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameEn(); ok {
		if err := item.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`ent: validator failed for field "Item.name_en": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Item.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := item.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NameCn(); ok {
		_spec.SetField(item.FieldNameCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameEn(); ok {
		_spec.SetField(item.FieldNameEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(item.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DescriptionCn(); ok {
		_spec.SetField(item.FieldDescriptionCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.DescriptionEn(); ok {
		_spec.SetField(item.FieldDescriptionEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageRes(); ok {
		_spec.SetField(item.FieldImageRes, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioCn(); ok {
		_spec.SetField(item.FieldAudioCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioEn(); ok {
		_spec.SetField(item.FieldAudioEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.AudioDescCn(); ok {
		_spec.SetField(item.FieldAudioDescCn, field.TypeString, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(item.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(item.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Scenarios(); ok {
		_spec.SetField(item.FieldScenarios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScenarios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldScenarios, value)
		})
	}
	if _u.mutation.ScenariosCleared() {
		_spec.ClearField(item.FieldScenarios, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomImage(); ok {
		_spec.SetField(item.FieldCustomImage, field.TypeString, value)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
