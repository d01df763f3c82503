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
	"github.com/meera/courseforge/ent/validationrun"
)

// ValidationRunUpdate is the builder for updating ValidationRun entities.
type ValidationRunUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationRunMutation
}

// Where appends a list predicates to the ValidationRunUpdate builder.
func (_u *ValidationRunUpdate) Where(ps ...predicate.ValidationRun) *ValidationRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ValidationRunUpdate) SetCourseID(v string) *ValidationRunUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableCourseID(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetValidator sets the "validator" field.
func (_u *ValidationRunUpdate) SetValidator(v string) *ValidationRunUpdate {
	_u.mutation.SetValidator(v)
	return _u
}

// SetNillableValidator sets the "validator" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableValidator(v *string) *ValidationRunUpdate {
	if v != nil {
		_u.SetValidator(*v)
	}
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *ValidationRunUpdate) SetIsValid(v bool) *ValidationRunUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableIsValid(v *bool) *ValidationRunUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ValidationRunUpdate) SetErrorCount(v int) *ValidationRunUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableErrorCount(v *int) *ValidationRunUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ValidationRunUpdate) AddErrorCount(v int) *ValidationRunUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ValidationRunUpdate) SetWarningCount(v int) *ValidationRunUpdate {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableWarningCount(v *int) *ValidationRunUpdate {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ValidationRunUpdate) AddWarningCount(v int) *ValidationRunUpdate {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetSuggestionCount sets the "suggestion_count" field.
func (_u *ValidationRunUpdate) SetSuggestionCount(v int) *ValidationRunUpdate {
	_u.mutation.ResetSuggestionCount()
	_u.mutation.SetSuggestionCount(v)
	return _u
}

// SetNillableSuggestionCount sets the "suggestion_count" field if the given value is not nil.
func (_u *ValidationRunUpdate) SetNillableSuggestionCount(v *int) *ValidationRunUpdate {
	if v != nil {
		_u.SetSuggestionCount(*v)
	}
	return _u
}

// AddSuggestionCount adds value to the "suggestion_count" field.
func (_u *ValidationRunUpdate) AddSuggestionCount(v int) *ValidationRunUpdate {
	_u.mutation.AddSuggestionCount(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *ValidationRunUpdate) SetMetrics(v map[string]interface{}) *ValidationRunUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *ValidationRunUpdate) ClearMetrics() *ValidationRunUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// Mutation returns the ValidationRunMutation object of the builder.
func (_u *ValidationRunUpdate) Mutation() *ValidationRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRunUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := validationrun.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Validator(); ok {
		if err := validationrun.ValidatorValidator(v); err != nil {
			return &ValidationError{Name: "validator", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.validator": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrun.Table, validationrun.Columns, sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(validationrun.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Validator(); ok {
		_spec.SetField(validationrun.FieldValidator, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(validationrun.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(validationrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(validationrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(validationrun.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(validationrun.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuggestionCount(); ok {
		_spec.SetField(validationrun.FieldSuggestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuggestionCount(); ok {
		_spec.AddField(validationrun.FieldSuggestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(validationrun.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(validationrun.FieldMetrics, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationRunUpdateOne is the builder for updating a single ValidationRun entity.
type ValidationRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationRunMutation
}

// SetCourseID sets the "course_id" field.
func (_u *ValidationRunUpdateOne) SetCourseID(v string) *ValidationRunUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableCourseID(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetValidator sets the "validator" field.
func (_u *ValidationRunUpdateOne) SetValidator(v string) *ValidationRunUpdateOne {
	_u.mutation.SetValidator(v)
	return _u
}

// SetNillableValidator sets the "validator" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableValidator(v *string) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetValidator(*v)
	}
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *ValidationRunUpdateOne) SetIsValid(v bool) *ValidationRunUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableIsValid(v *bool) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ValidationRunUpdateOne) SetErrorCount(v int) *ValidationRunUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableErrorCount(v *int) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ValidationRunUpdateOne) AddErrorCount(v int) *ValidationRunUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ValidationRunUpdateOne) SetWarningCount(v int) *ValidationRunUpdateOne {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableWarningCount(v *int) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ValidationRunUpdateOne) AddWarningCount(v int) *ValidationRunUpdateOne {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetSuggestionCount sets the "suggestion_count" field.
func (_u *ValidationRunUpdateOne) SetSuggestionCount(v int) *ValidationRunUpdateOne {
	_u.mutation.ResetSuggestionCount()
	_u.mutation.SetSuggestionCount(v)
	return _u
}

// SetNillableSuggestionCount sets the "suggestion_count" field if the given value is not nil.
func (_u *ValidationRunUpdateOne) SetNillableSuggestionCount(v *int) *ValidationRunUpdateOne {
	if v != nil {
		_u.SetSuggestionCount(*v)
	}
	return _u
}

// AddSuggestionCount adds value to the "suggestion_count" field.
func (_u *ValidationRunUpdateOne) AddSuggestionCount(v int) *ValidationRunUpdateOne {
	_u.mutation.AddSuggestionCount(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *ValidationRunUpdateOne) SetMetrics(v map[string]interface{}) *ValidationRunUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *ValidationRunUpdateOne) ClearMetrics() *ValidationRunUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// Mutation returns the ValidationRunMutation object of the builder.
func (_u *ValidationRunUpdateOne) Mutation() *ValidationRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationRunUpdate builder.
func (_u *ValidationRunUpdateOne) Where(ps ...predicate.ValidationRun) *ValidationRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationRunUpdateOne) Select(field string, fields ...string) *ValidationRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationRun entity.
func (_u *ValidationRunUpdateOne) Save(ctx context.Context) (*ValidationRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRunUpdateOne) SaveX(ctx context.Context) *ValidationRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRunUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := validationrun.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Validator(); ok {
		if err := validationrun.ValidatorValidator(v); err != nil {
			return &ValidationError{Name: "validator", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.validator": %w`, err)}
		}
	}
	return nil
}

func (_u *ValidationRunUpdateOne) sqlSave(ctx context.Context) (_node *ValidationRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrun.Table, validationrun.Columns, sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationrun.FieldID)
		for _, f := range fields {
			if !validationrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationrun.FieldID {
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
		_spec.SetField(validationrun.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Validator(); ok {
		_spec.SetField(validationrun.FieldValidator, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(validationrun.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(validationrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(validationrun.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(validationrun.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(validationrun.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuggestionCount(); ok {
		_spec.SetField(validationrun.FieldSuggestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuggestionCount(); ok {
		_spec.AddField(validationrun.FieldSuggestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(validationrun.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(validationrun.FieldMetrics, field.TypeJSON)
	}
	_node = &ValidationRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
