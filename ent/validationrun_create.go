// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/courseforge/ent/validationrun"
)

// ValidationRunCreate is the builder for creating a ValidationRun entity.
type ValidationRunCreate struct {
	config
	mutation *ValidationRunMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ValidationRunCreate) SetSequence(v int64) *ValidationRunCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ValidationRunCreate) SetTimestamp(v time.Time) *ValidationRunCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableTimestamp(v *time.Time) *ValidationRunCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *ValidationRunCreate) SetCourseID(v string) *ValidationRunCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetValidator sets the "validator" field.
func (_c *ValidationRunCreate) SetValidator(v string) *ValidationRunCreate {
	_c.mutation.SetValidator(v)
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *ValidationRunCreate) SetIsValid(v bool) *ValidationRunCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *ValidationRunCreate) SetErrorCount(v int) *ValidationRunCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableErrorCount(v *int) *ValidationRunCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetWarningCount sets the "warning_count" field.
func (_c *ValidationRunCreate) SetWarningCount(v int) *ValidationRunCreate {
	_c.mutation.SetWarningCount(v)
	return _c
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableWarningCount(v *int) *ValidationRunCreate {
	if v != nil {
		_c.SetWarningCount(*v)
	}
	return _c
}

// SetSuggestionCount sets the "suggestion_count" field.
func (_c *ValidationRunCreate) SetSuggestionCount(v int) *ValidationRunCreate {
	_c.mutation.SetSuggestionCount(v)
	return _c
}

// SetNillableSuggestionCount sets the "suggestion_count" field if the given value is not nil.
func (_c *ValidationRunCreate) SetNillableSuggestionCount(v *int) *ValidationRunCreate {
	if v != nil {
		_c.SetSuggestionCount(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *ValidationRunCreate) SetMetrics(v map[string]interface{}) *ValidationRunCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// Mutation returns the ValidationRunMutation object of the builder.
func (_c *ValidationRunCreate) Mutation() *ValidationRunMutation {
	return _c.mutation
}

// Save creates the ValidationRun in the database.
func (_c *ValidationRunCreate) Save(ctx context.Context) (*ValidationRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationRunCreate) SaveX(ctx context.Context) *ValidationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationRunCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := validationrun.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := validationrun.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		v := validationrun.DefaultWarningCount
		_c.mutation.SetWarningCount(v)
	}
	if _, ok := _c.mutation.SuggestionCount(); !ok {
		v := validationrun.DefaultSuggestionCount
		_c.mutation.SetSuggestionCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationRunCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ValidationRun.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ValidationRun.timestamp"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "ValidationRun.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := validationrun.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Validator(); !ok {
		return &ValidationError{Name: "validator", err: errors.New(`ent: missing required field "ValidationRun.validator"`)}
	}
	if v, ok := _c.mutation.Validator(); ok {
		if err := validationrun.ValidatorValidator(v); err != nil {
			return &ValidationError{Name: "validator", err: fmt.Errorf(`ent: validator failed for field "ValidationRun.validator": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "ValidationRun.is_valid"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "ValidationRun.error_count"`)}
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		return &ValidationError{Name: "warning_count", err: errors.New(`ent: missing required field "ValidationRun.warning_count"`)}
	}
	if _, ok := _c.mutation.SuggestionCount(); !ok {
		return &ValidationError{Name: "suggestion_count", err: errors.New(`ent: missing required field "ValidationRun.suggestion_count"`)}
	}
	return nil
}

func (_c *ValidationRunCreate) sqlSave(ctx context.Context) (*ValidationRun, error) {
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

func (_c *ValidationRunCreate) createSpec() (*ValidationRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationrun.Table, sqlgraph.NewFieldSpec(validationrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(validationrun.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(validationrun.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(validationrun.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Validator(); ok {
		_spec.SetField(validationrun.FieldValidator, field.TypeString, value)
		_node.Validator = value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(validationrun.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(validationrun.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.WarningCount(); ok {
		_spec.SetField(validationrun.FieldWarningCount, field.TypeInt, value)
		_node.WarningCount = value
	}
	if value, ok := _c.mutation.SuggestionCount(); ok {
		_spec.SetField(validationrun.FieldSuggestionCount, field.TypeInt, value)
		_node.SuggestionCount = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(validationrun.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	return _node, _spec
}

// ValidationRunCreateBulk is the builder for creating many ValidationRun entities in bulk.
type ValidationRunCreateBulk struct {
	config
	err      error
	builders []*ValidationRunCreate
}

// Save creates the ValidationRun entities in the database.
func (_c *ValidationRunCreateBulk) Save(ctx context.Context) ([]*ValidationRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationRunMutation)
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
func (_c *ValidationRunCreateBulk) SaveX(ctx context.Context) []*ValidationRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
