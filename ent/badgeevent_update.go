// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Ajinkya236/skillsprint/ent/badgeevent"
	"github.com/Ajinkya236/skillsprint/ent/predicate"
)

// BadgeEventUpdate is the builder for updating BadgeEvent entities.
type BadgeEventUpdate struct {
	config
	hooks    []Hook
	mutation *BadgeEventMutation
}

// Where appends a list predicates to the BadgeEventUpdate builder.
func (_u *BadgeEventUpdate) Where(ps ...predicate.BadgeEvent) *BadgeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBadgeType sets the "badge_type" field.
func (_u *BadgeEventUpdate) SetBadgeType(v string) *BadgeEventUpdate {
	_u.mutation.SetBadgeType(v)
	return _u
}

// SetNillableBadgeType sets the "badge_type" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableBadgeType(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetBadgeType(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BadgeEventUpdate) SetSessionID(v string) *BadgeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableSessionID(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *BadgeEventUpdate) SetSkillID(v string) *BadgeEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableSkillID(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// ClearSkillID clears the value of the "skill_id" field.
func (_u *BadgeEventUpdate) ClearSkillID() *BadgeEventUpdate {
	_u.mutation.ClearSkillID()
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *BadgeEventUpdate) SetSkillName(v string) *BadgeEventUpdate {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableSkillName(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// ClearSkillName clears the value of the "skill_name" field.
func (_u *BadgeEventUpdate) ClearSkillName() *BadgeEventUpdate {
	_u.mutation.ClearSkillName()
	return _u
}

// SetPoints sets the "points" field.
func (_u *BadgeEventUpdate) SetPoints(v int) *BadgeEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillablePoints(v *int) *BadgeEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *BadgeEventUpdate) AddPoints(v int) *BadgeEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *BadgeEventUpdate) SetReason(v string) *BadgeEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BadgeEventUpdate) SetNillableReason(v *string) *BadgeEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the BadgeEventMutation object of the builder.
func (_u *BadgeEventUpdate) Mutation() *BadgeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BadgeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BadgeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeEventUpdate) check() error {
	if v, ok := _u.mutation.BadgeType(); ok {
		if err := badgeevent.BadgeTypeValidator(v); err != nil {
			return &ValidationError{Name: "badge_type", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := badgeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := badgeevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeevent.Table, badgeevent.Columns, sqlgraph.NewFieldSpec(badgeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BadgeType(); ok {
		_spec.SetField(badgeevent.FieldBadgeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(badgeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(badgeevent.FieldSkillID, field.TypeString, value)
	}
	if _u.mutation.SkillIDCleared() {
		_spec.ClearField(badgeevent.FieldSkillID, field.TypeString)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(badgeevent.FieldSkillName, field.TypeString, value)
	}
	if _u.mutation.SkillNameCleared() {
		_spec.ClearField(badgeevent.FieldSkillName, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(badgeevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(badgeevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(badgeevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BadgeEventUpdateOne is the builder for updating a single BadgeEvent entity.
type BadgeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BadgeEventMutation
}

// SetBadgeType sets the "badge_type" field.
func (_u *BadgeEventUpdateOne) SetBadgeType(v string) *BadgeEventUpdateOne {
	_u.mutation.SetBadgeType(v)
	return _u
}

// SetNillableBadgeType sets the "badge_type" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableBadgeType(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetBadgeType(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *BadgeEventUpdateOne) SetSessionID(v string) *BadgeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableSessionID(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *BadgeEventUpdateOne) SetSkillID(v string) *BadgeEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableSkillID(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// ClearSkillID clears the value of the "skill_id" field.
func (_u *BadgeEventUpdateOne) ClearSkillID() *BadgeEventUpdateOne {
	_u.mutation.ClearSkillID()
	return _u
}

// SetSkillName sets the "skill_name" field.
func (_u *BadgeEventUpdateOne) SetSkillName(v string) *BadgeEventUpdateOne {
	_u.mutation.SetSkillName(v)
	return _u
}

// SetNillableSkillName sets the "skill_name" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableSkillName(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetSkillName(*v)
	}
	return _u
}

// ClearSkillName clears the value of the "skill_name" field.
func (_u *BadgeEventUpdateOne) ClearSkillName() *BadgeEventUpdateOne {
	_u.mutation.ClearSkillName()
	return _u
}

// SetPoints sets the "points" field.
func (_u *BadgeEventUpdateOne) SetPoints(v int) *BadgeEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillablePoints(v *int) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *BadgeEventUpdateOne) AddPoints(v int) *BadgeEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *BadgeEventUpdateOne) SetReason(v string) *BadgeEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *BadgeEventUpdateOne) SetNillableReason(v *string) *BadgeEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the BadgeEventMutation object of the builder.
func (_u *BadgeEventUpdateOne) Mutation() *BadgeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BadgeEventUpdate builder.
func (_u *BadgeEventUpdateOne) Where(ps ...predicate.BadgeEvent) *BadgeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BadgeEventUpdateOne) Select(field string, fields ...string) *BadgeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BadgeEvent entity.
func (_u *BadgeEventUpdateOne) Save(ctx context.Context) (*BadgeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BadgeEventUpdateOne) SaveX(ctx context.Context) *BadgeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BadgeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BadgeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BadgeEventUpdateOne) check() error {
	if v, ok := _u.mutation.BadgeType(); ok {
		if err := badgeevent.BadgeTypeValidator(v); err != nil {
			return &ValidationError{Name: "badge_type", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.badge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := badgeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := badgeevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "BadgeEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *BadgeEventUpdateOne) sqlSave(ctx context.Context) (_node *BadgeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(badgeevent.Table, badgeevent.Columns, sqlgraph.NewFieldSpec(badgeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BadgeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, badgeevent.FieldID)
		for _, f := range fields {
			if !badgeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != badgeevent.FieldID {
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
	if value, ok := _u.mutation.BadgeType(); ok {
		_spec.SetField(badgeevent.FieldBadgeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(badgeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(badgeevent.FieldSkillID, field.TypeString, value)
	}
	if _u.mutation.SkillIDCleared() {
		_spec.ClearField(badgeevent.FieldSkillID, field.TypeString)
	}
	if value, ok := _u.mutation.SkillName(); ok {
		_spec.SetField(badgeevent.FieldSkillName, field.TypeString, value)
	}
	if _u.mutation.SkillNameCleared() {
		_spec.ClearField(badgeevent.FieldSkillName, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(badgeevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(badgeevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(badgeevent.FieldReason, field.TypeString, value)
	}
	_node = &BadgeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{badgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
