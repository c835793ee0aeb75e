// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ewei/lexikid/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetNameCn sets the "name_cn" field.
func (_c *ItemCreate) SetNameCn(v string) *ItemCreate {
	_c.mutation.SetNameCn(v)
	return _c
}

// SetNameEn sets the "name_en" field.
func (_c *ItemCreate) SetNameEn(v string) *ItemCreate {
	_c.mutation.SetNameEn(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ItemCreate) SetCategory(v string) *ItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ItemCreate) SetDifficulty(v int) *ItemCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDifficulty(v *int) *ItemCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetDescriptionCn sets the "description_cn" field.
func (_c *ItemCreate) SetDescriptionCn(v string) *ItemCreate {
	_c.mutation.SetDescriptionCn(v)
	return _c
}

// SetNillableDescriptionCn sets the "description_cn" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDescriptionCn(v *string) *ItemCreate {
	if v != nil {
		_c.SetDescriptionCn(*v)
	}
	return _c
}

// SetDescriptionEn sets the "description_en" field.
func (_c *ItemCreate) SetDescriptionEn(v string) *ItemCreate {
	_c.mutation.SetDescriptionEn(v)
	return _c
}

// SetNillableDescriptionEn sets the "description_en" field if the given value is not nil.
func (_c *ItemCreate) SetNillableDescriptionEn(v *string) *ItemCreate {
	if v != nil {
		_c.SetDescriptionEn(*v)
	}
	return _c
}

// SetImageRes sets the "image_res" field.
func (_c *ItemCreate) SetImageRes(v string) *ItemCreate {
	_c.mutation.SetImageRes(v)
	return _c
}

// SetNillableImageRes sets the "image_res" field if the given value is not nil.
func (_c *ItemCreate) SetNillableImageRes(v *string) *ItemCreate {
	if v != nil {
		_c.SetImageRes(*v)
	}
	return _c
}

// SetAudioCn sets the "audio_cn" field.
func (_c *ItemCreate) SetAudioCn(v string) *ItemCreate {
	_c.mutation.SetAudioCn(v)
	return _c
}

// SetNillableAudioCn sets the "audio_cn" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAudioCn(v *string) *ItemCreate {
	if v != nil {
		_c.SetAudioCn(*v)
	}
	return _c
}

// SetAudioEn sets the "audio_en" field.
func (_c *ItemCreate) SetAudioEn(v string) *ItemCreate {
	_c.mutation.SetAudioEn(v)
	return _c
}

// SetNillableAudioEn sets the "audio_en" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAudioEn(v *string) *ItemCreate {
	if v != nil {
		_c.SetAudioEn(*v)
	}
	return _c
}

// SetAudioDescCn sets the "audio_desc_cn" field.
func (_c *ItemCreate) SetAudioDescCn(v string) *ItemCreate {
	_c.mutation.SetAudioDescCn(v)
	return _c
}

// SetNillableAudioDescCn sets the "audio_desc_cn" field if the given value is not nil.
func (_c *ItemCreate) SetNillableAudioDescCn(v *string) *ItemCreate {
	if v != nil {
		_c.SetAudioDescCn(*v)
	}
	return _c
}

// SetFeatures sets the "features" field.
func (_c *ItemCreate) SetFeatures(v []string) *ItemCreate {
	_c.mutation.SetFeatures(v)
	return _c
}

// SetScenarios sets the "scenarios" field.
func (_c *ItemCreate) SetScenarios(v []string) *ItemCreate {
	_c.mutation.SetScenarios(v)
	return _c
}

// SetCustomImage sets the "custom_image" field.
func (_c *ItemCreate) SetCustomImage(v string) *ItemCreate {
	_c.mutation.SetCustomImage(v)
	return _c
}

// SetNillableCustomImage sets the "custom_image" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCustomImage(v *string) *ItemCreate {
	if v != nil {
		_c.SetCustomImage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemCreate) SetID(v int64) *ItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := item.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.DescriptionCn(); !ok {
		v := item.DefaultDescriptionCn
		_c.mutation.SetDescriptionCn(v)
	}
	if _, ok := _c.mutation.DescriptionEn(); !ok {
		v := item.DefaultDescriptionEn
		_c.mutation.SetDescriptionEn(v)
	}
	if _, ok := _c.mutation.ImageRes(); !ok {
		v := item.DefaultImageRes
		_c.mutation.SetImageRes(v)
	}
	if _, ok := _c.mutation.AudioCn(); !ok {
		v := item.DefaultAudioCn
		_c.mutation.SetAudioCn(v)
	}
	if _, ok := _c.mutation.AudioEn(); !ok {
		v := item.DefaultAudioEn
		_c.mutation.SetAudioEn(v)
	}
	if _, ok := _c.mutation.AudioDescCn(); !ok {
		v := item.DefaultAudioDescCn
		_c.mutation.SetAudioDescCn(v)
	}
	if _, ok := _c.mutation.CustomImage(); !ok {
		v := item.DefaultCustomImage
		_c.mutation.SetCustomImage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.NameCn(); !ok {
		return &ValidationError{Name: "name_cn", err: errors.New(`ent: missing required field "Item.name_cn"`)}
	}
	if v, ok := _c.mutation.NameCn(); ok {
		if err := item.NameCnValidator(v); err != nil {
			return &ValidationError{Name: "name_cn", err: fmt.Errorf(`ent: validator failed for field "Item.name_cn": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NameEn(); !ok {
		return &ValidationError{Name: "name_en", err: errors.New(`ent: missing required field "Item.name_en"`)}
	}
	if v, ok := _c.mutation.NameEn(); ok {
		if err := item.NameEnValidator(v); err != nil {
			return &ValidationError{Name: "name_en", err: fmt.Errorf(`ent: validator failed for field "Item.name_en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Item.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := item.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Item.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Item.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := item.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Item.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DescriptionCn(); !ok {
		return &ValidationError{Name: "description_cn", err: errors.New(`ent: missing required field "Item.description_cn"`)}
	}
	if _, ok := _c.mutation.DescriptionEn(); !ok {
		return &ValidationError{Name: "description_en", err: errors.New(`ent: missing required field "Item.description_en"`)}
	}
	if _, ok := _c.mutation.ImageRes(); !ok {
		return &ValidationError{Name: "image_res", err: errors.New(`ent: missing required field "Item.image_res"`)}
	}
	if _, ok := _c.mutation.AudioCn(); !ok {
		return &ValidationError{Name: "audio_cn", err: errors.New(`ent: missing required field "Item.audio_cn"`)}
	}
	if _, ok := _c.mutation.AudioEn(); !ok {
		return &ValidationError{Name: "audio_en", err: errors.New(`ent: missing required field "Item.audio_en"`)}
	}
	if _, ok := _c.mutation.AudioDescCn(); !ok {
		return &ValidationError{Name: "audio_desc_cn", err: errors.New(`ent: missing required field "Item.audio_desc_cn"`)}
	}
	if _, ok := _c.mutation.CustomImage(); !ok {
		return &ValidationError{Name: "custom_image", err: errors.New(`ent: missing required field "Item.custom_image"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NameCn(); ok {
		_spec.SetField(item.FieldNameCn, field.TypeString, value)
		_node.NameCn = value
	}
	if value, ok := _c.mutation.NameEn(); ok {
		_spec.SetField(item.FieldNameEn, field.TypeString, value)
		_node.NameEn = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(item.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.DescriptionCn(); ok {
		_spec.SetField(item.FieldDescriptionCn, field.TypeString, value)
		_node.DescriptionCn = value
	}
	if value, ok := _c.mutation.DescriptionEn(); ok {
		_spec.SetField(item.FieldDescriptionEn, field.TypeString, value)
		_node.DescriptionEn = value
	}
	if value, ok := _c.mutation.ImageRes(); ok {
		_spec.SetField(item.FieldImageRes, field.TypeString, value)
		_node.ImageRes = value
	}
	if value, ok := _c.mutation.AudioCn(); ok {
		_spec.SetField(item.FieldAudioCn, field.TypeString, value)
		_node.AudioCn = value
	}
	if value, ok := _c.mutation.AudioEn(); ok {
		_spec.SetField(item.FieldAudioEn, field.TypeString, value)
		_node.AudioEn = value
	}
	if value, ok := _c.mutation.AudioDescCn(); ok {
		_spec.SetField(item.FieldAudioDescCn, field.TypeString, value)
		_node.AudioDescCn = value
	}
	if value, ok := _c.mutation.Features(); ok {
		_spec.SetField(item.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	if value, ok := _c.mutation.Scenarios(); ok {
		_spec.SetField(item.FieldScenarios, field.TypeJSON, value)
		_node.Scenarios = value
	}
	if value, ok := _c.mutation.CustomImage(); ok {
		_spec.SetField(item.FieldCustomImage, field.TypeString, value)
		_node.CustomImage = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
