// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ewei/lexikid/ent/predicate"
	"github.com/ewei/lexikid/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetViewed sets the "viewed" field.
func (_u *ProgressRecordUpdate) SetViewed(v bool) *ProgressRecordUpdate {
	_u.mutation.SetViewed(v)
	return _u
}

// SetNillableViewed sets the "viewed" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableViewed(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetViewed(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ProgressRecordUpdate) SetReviewCount(v int) *ProgressRecordUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableReviewCount(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ProgressRecordUpdate) AddReviewCount(v int) *ProgressRecordUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressRecordUpdate) SetMasteryLevel(v int) *ProgressRecordUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableMasteryLevel(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ProgressRecordUpdate) AddMasteryLevel(v int) *ProgressRecordUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetLastViewed sets the "last_viewed" field.
func (_u *ProgressRecordUpdate) SetLastViewed(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastViewed(v)
	return _u
}

// SetNillableLastViewed sets the "last_viewed" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastViewed(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastViewed(*v)
	}
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *ProgressRecordUpdate) SetFavorite(v bool) *ProgressRecordUpdate {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFavorite(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := progressrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := progressrecord.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Viewed(); ok {
		_spec.SetField(progressrecord.FieldViewed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(progressrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(progressrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(progressrecord.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastViewed(); ok {
		_spec.SetField(progressrecord.FieldLastViewed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(progressrecord.FieldFavorite, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetViewed sets the "viewed" field.
func (_u *ProgressRecordUpdateOne) SetViewed(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetViewed(v)
	return _u
}

// SetNillableViewed sets the "viewed" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableViewed(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetViewed(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ProgressRecordUpdateOne) SetReviewCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableReviewCount(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ProgressRecordUpdateOne) AddReviewCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *ProgressRecordUpdateOne) SetMasteryLevel(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableMasteryLevel(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *ProgressRecordUpdateOne) AddMasteryLevel(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// SetLastViewed sets the "last_viewed" field.
func (_u *ProgressRecordUpdateOne) SetLastViewed(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastViewed(v)
	return _u
}

// SetNillableLastViewed sets the "last_viewed" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastViewed(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastViewed(*v)
	}
	return _u
}

// SetFavorite sets the "favorite" field.
func (_u *ProgressRecordUpdateOne) SetFavorite(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetFavorite(v)
	return _u
}

// SetNillableFavorite sets the "favorite" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFavorite(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFavorite(*v)
	}
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := progressrecord.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := progressrecord.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
	if value, ok := _u.mutation.Viewed(); ok {
		_spec.SetField(progressrecord.FieldViewed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(progressrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(progressrecord.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(progressrecord.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(progressrecord.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastViewed(); ok {
		_spec.SetField(progressrecord.FieldLastViewed, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Favorite(); ok {
		_spec.SetField(progressrecord.FieldFavorite, field.TypeBool, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
