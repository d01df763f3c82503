// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/courseforge/ent/predicate"
	"github.com/meera/courseforge/ent/transitionevent"
)

// TransitionEventUpdate is the builder for updating TransitionEvent entities.
type TransitionEventUpdate struct {
	config
	hooks    []Hook
	mutation *TransitionEventMutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (_u *TransitionEventUpdate) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *TransitionEventUpdate) SetCourseID(v string) *TransitionEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableCourseID(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *TransitionEventUpdate) SetActivityID(v string) *TransitionEventUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableActivityID(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *TransitionEventUpdate) SetFromState(v string) *TransitionEventUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableFromState(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *TransitionEventUpdate) SetToState(v string) *TransitionEventUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableToState(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *TransitionEventUpdate) SetTrigger(v string) *TransitionEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *TransitionEventUpdate) SetNillableTrigger(v *string) *TransitionEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_u *TransitionEventUpdate) Mutation() *TransitionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransitionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransitionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransitionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransitionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransitionEventUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := transitionevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := transitionevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := transitionevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := transitionevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := transitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *TransitionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(transitionevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(transitionevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(transitionevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(transitionevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(transitionevent.FieldTrigger, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransitionEventUpdateOne is the builder for updating a single TransitionEvent entity.
type TransitionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransitionEventMutation
}

// SetCourseID sets the "course_id" field.
func (_u *TransitionEventUpdateOne) SetCourseID(v string) *TransitionEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableCourseID(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *TransitionEventUpdateOne) SetActivityID(v string) *TransitionEventUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableActivityID(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *TransitionEventUpdateOne) SetFromState(v string) *TransitionEventUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableFromState(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *TransitionEventUpdateOne) SetToState(v string) *TransitionEventUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableToState(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *TransitionEventUpdateOne) SetTrigger(v string) *TransitionEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *TransitionEventUpdateOne) SetNillableTrigger(v *string) *TransitionEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the TransitionEventMutation object of the builder.
func (_u *TransitionEventUpdateOne) Mutation() *TransitionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransitionEventUpdate builder.
func (_u *TransitionEventUpdateOne) Where(ps ...predicate.TransitionEvent) *TransitionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransitionEventUpdateOne) Select(field string, fields ...string) *TransitionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TransitionEvent entity.
func (_u *TransitionEventUpdateOne) Save(ctx context.Context) (*TransitionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransitionEventUpdateOne) SaveX(ctx context.Context) *TransitionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransitionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransitionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransitionEventUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := transitionevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := transitionevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := transitionevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := transitionevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := transitionevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "TransitionEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *TransitionEventUpdateOne) sqlSave(ctx context.Context) (_node *TransitionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transitionevent.Table, transitionevent.Columns, sqlgraph.NewFieldSpec(transitionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TransitionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transitionevent.FieldID)
		for _, f := range fields {
			if !transitionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transitionevent.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(transitionevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(transitionevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(transitionevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(transitionevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(transitionevent.FieldTrigger, field.TypeString, value)
	}
	_node = &TransitionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transitionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
