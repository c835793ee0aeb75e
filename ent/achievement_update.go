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
	"github.com/ewei/lexikid/ent/achievement"
	"github.com/ewei/lexikid/ent/predicate"
	"github.com/ewei/lexikid/ent/schema"
)

// AchievementUpdate is the builder for updating Achievement entities.
type AchievementUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementMutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdate) Where(ps ...predicate.Achievement) *AchievementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AchievementUpdate) SetName(v string) *AchievementUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableName(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUpdate) SetDescription(v string) *AchievementUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableDescription(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *AchievementUpdate) SetIcon(v string) *AchievementUpdate {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableIcon(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AchievementUpdate) SetCategory(v string) *AchievementUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableCategory(v *string) *AchievementUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *AchievementUpdate) SetRequirement(v schema.Requirement) *AchievementUpdate {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableRequirement(v *schema.Requirement) *AchievementUpdate {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *AchievementUpdate) SetReward(v int) *AchievementUpdate {
	_u.mutation.ResetReward()
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableReward(v *int) *AchievementUpdate {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// AddReward adds value to the "reward" field.
func (_u *AchievementUpdate) AddReward(v int) *AchievementUpdate {
	_u.mutation.AddReward(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *AchievementUpdate) SetUnlocked(v bool) *AchievementUpdate {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableUnlocked(v *bool) *AchievementUpdate {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *AchievementUpdate) SetUnlockedAt(v time.Time) *AchievementUpdate {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *AchievementUpdate) SetNillableUnlockedAt(v *time.Time) *AchievementUpdate {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *AchievementUpdate) ClearUnlockedAt() *AchievementUpdate {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdate) Mutation() *AchievementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := achievement.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Achievement.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reward(); ok {
		if err := achievement.RewardValidator(v); err != nil {
			return &ValidationError{Name: "reward", err: fmt.Errorf(`ent: validator failed for field "Achievement.reward": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(achievement.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(achievement.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(achievement.FieldRequirement, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(achievement.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReward(); ok {
		_spec.AddField(achievement.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(achievement.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(achievement.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(achievement.FieldUnlockedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementUpdateOne is the builder for updating a single Achievement entity.
type AchievementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementMutation
}

// SetName sets the "name" field.
func (_u *AchievementUpdateOne) SetName(v string) *AchievementUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableName(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AchievementUpdateOne) SetDescription(v string) *AchievementUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableDescription(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetIcon sets the "icon" field.
func (_u *AchievementUpdateOne) SetIcon(v string) *AchievementUpdateOne {
	_u.mutation.SetIcon(v)
	return _u
}

// SetNillableIcon sets the "icon" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableIcon(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetIcon(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *AchievementUpdateOne) SetCategory(v string) *AchievementUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableCategory(v *string) *AchievementUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetRequirement sets the "requirement" field.
func (_u *AchievementUpdateOne) SetRequirement(v schema.Requirement) *AchievementUpdateOne {
	_u.mutation.SetRequirement(v)
	return _u
}

// SetNillableRequirement sets the "requirement" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableRequirement(v *schema.Requirement) *AchievementUpdateOne {
	if v != nil {
		_u.SetRequirement(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *AchievementUpdateOne) SetReward(v int) *AchievementUpdateOne {
	_u.mutation.ResetReward()
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableReward(v *int) *AchievementUpdateOne {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// AddReward adds value to the "reward" field.
func (_u *AchievementUpdateOne) AddReward(v int) *AchievementUpdateOne {
	_u.mutation.AddReward(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *AchievementUpdateOne) SetUnlocked(v bool) *AchievementUpdateOne {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableUnlocked(v *bool) *AchievementUpdateOne {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_u *AchievementUpdateOne) SetUnlockedAt(v time.Time) *AchievementUpdateOne {
	_u.mutation.SetUnlockedAt(v)
	return _u
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_u *AchievementUpdateOne) SetNillableUnlockedAt(v *time.Time) *AchievementUpdateOne {
	if v != nil {
		_u.SetUnlockedAt(*v)
	}
	return _u
}

// ClearUnlockedAt clears the value of the "unlocked_at" field.
func (_u *AchievementUpdateOne) ClearUnlockedAt() *AchievementUpdateOne {
	_u.mutation.ClearUnlockedAt()
	return _u
}

// Mutation returns the AchievementMutation object of the builder.
func (_u *AchievementUpdateOne) Mutation() *AchievementMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementUpdate builder.
func (_u *AchievementUpdateOne) Where(ps ...predicate.Achievement) *AchievementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementUpdateOne) Select(field string, fields ...string) *AchievementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Achievement entity.
func (_u *AchievementUpdateOne) Save(ctx context.Context) (*Achievement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementUpdateOne) SaveX(ctx context.Context) *Achievement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := achievement.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Achievement.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reward(); ok {
		if err := achievement.RewardValidator(v); err != nil {
			return &ValidationError{Name: "reward", err: fmt.Errorf(`ent: validator failed for field "Achievement.reward": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementUpdateOne) sqlSave(ctx context.Context) (_node *Achievement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievement.Table, achievement.Columns, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Achievement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievement.FieldID)
		for _, f := range fields {
			if !achievement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievement.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievement.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Icon(); ok {
		_spec.SetField(achievement.FieldIcon, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(achievement.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Requirement(); ok {
		_spec.SetField(achievement.FieldRequirement, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(achievement.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReward(); ok {
		_spec.AddField(achievement.FieldReward, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(achievement.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UnlockedAt(); ok {
		_spec.SetField(achievement.FieldUnlockedAt, field.TypeTime, value)
	}
	if _u.mutation.UnlockedAtCleared() {
		_spec.ClearField(achievement.FieldUnlockedAt, field.TypeTime)
	}
	_node = &Achievement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
