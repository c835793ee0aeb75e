// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ewei/lexikid/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ProgressRecordCreate) SetItemID(v int64) *ProgressRecordCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetViewed sets the "viewed" field.
func (_c *ProgressRecordCreate) SetViewed(v bool) *ProgressRecordCreate {
	_c.mutation.SetViewed(v)
	return _c
}

// SetNillableViewed sets the "viewed" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableViewed(v *bool) *ProgressRecordCreate {
	if v != nil {
		_c.SetViewed(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ProgressRecordCreate) SetReviewCount(v int) *ProgressRecordCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableReviewCount(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetMasteryLevel sets the "mastery_level" field.
func (_c *ProgressRecordCreate) SetMasteryLevel(v int) *ProgressRecordCreate {
	_c.mutation.SetMasteryLevel(v)
	return _c
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableMasteryLevel(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetMasteryLevel(*v)
	}
	return _c
}

// SetLastViewed sets the "last_viewed" field.
func (_c *ProgressRecordCreate) SetLastViewed(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetLastViewed(v)
	return _c
}

// SetFavorite sets the "favorite" field.
func (_c *ProgressRecordCreate) SetFavorite(v bool) *ProgressRecordCreate {
	_c.mutation.SetFavorite(v)
	return _c
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFavorite(v *bool) *ProgressRecordCreate {
	if v != nil {
		_c.SetFavorite(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.Viewed(); !ok {
		v := progressrecord.DefaultViewed
		_c.mutation.SetViewed(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := progressrecord.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		v := progressrecord.DefaultMasteryLevel
		_c.mutation.SetMasteryLevel(v)
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		v := progressrecord.DefaultFavorite
		_c.mutation.SetFavorite(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ProgressRecord.item_id"`)}
	}
	if _, ok := _c.mutation.Viewed(); !ok {
		return &ValidationError{Name: "viewed", err: errors.New(`ent: missing required field "ProgressRecord.viewed"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "ProgressRecord.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := progressrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryLevel(); !ok {
		return &ValidationError{Name: "mastery_level", err: errors.New(`ent: missing required field "ProgressRecord.mastery_level"`)}
	}
	if v, ok := _c.mutation.MasteryLevel(); ok {
		if err := progressrecord.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.mastery_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastViewed(); !ok {
		return &ValidationError{Name: "last_viewed", err: errors.New(`ent: missing required field "ProgressRecord.last_viewed"`)}
	}
	if _, ok := _c.mutation.Favorite(); !ok {
		return &ValidationError{Name: "favorite", err: errors.New(`ent: missing required field "ProgressRecord.favorite"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(progressrecord.FieldItemID, field.TypeInt64, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Viewed(); ok {
		_spec.SetField(progressrecord.FieldViewed, field.TypeBool, value)
		_node.Viewed = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(progressrecord.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeInt, value)
		_node.MasteryLevel = value
	}
	if value, ok := _c.mutation.LastViewed(); ok {
		_spec.SetField(progressrecord.FieldLastViewed, field.TypeTime, value)
		_node.LastViewed = value
	}
	if value, ok := _c.mutation.Favorite(); ok {
		_spec.SetField(progressrecord.FieldFavorite, field.TypeBool, value)
		_node.Favorite = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
