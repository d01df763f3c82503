// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/courseforge/ent/coursesnapshot"
)

// CourseSnapshotCreate is the builder for creating a CourseSnapshot entity.
type CourseSnapshotCreate struct {
	config
	mutation *CourseSnapshotMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *CourseSnapshotCreate) SetCourseID(v string) *CourseSnapshotCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *CourseSnapshotCreate) SetSequence(v int64) *CourseSnapshotCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CourseSnapshotCreate) SetTimestamp(v time.Time) *CourseSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CourseSnapshotCreate) SetNillableTimestamp(v *time.Time) *CourseSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *CourseSnapshotCreate) SetLabel(v string) *CourseSnapshotCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *CourseSnapshotCreate) SetNillableLabel(v *string) *CourseSnapshotCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *CourseSnapshotCreate) SetData(v map[string]interface{}) *CourseSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the CourseSnapshotMutation object of the builder.
func (_c *CourseSnapshotCreate) Mutation() *CourseSnapshotMutation {
	return _c.mutation
}

// Save creates the CourseSnapshot in the database.
func (_c *CourseSnapshotCreate) Save(ctx context.Context) (*CourseSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseSnapshotCreate) SaveX(ctx context.Context) *CourseSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := coursesnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Label(); !ok {
		v := coursesnapshot.DefaultLabel
		_c.mutation.SetLabel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseSnapshotCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "CourseSnapshot.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := coursesnapshot.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "CourseSnapshot.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CourseSnapshot.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CourseSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "CourseSnapshot.label"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "CourseSnapshot.data"`)}
	}
	return nil
}

func (_c *CourseSnapshotCreate) sqlSave(ctx context.Context) (*CourseSnapshot, error) {
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

func (_c *CourseSnapshotCreate) createSpec() (*CourseSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coursesnapshot.Table, sqlgraph.NewFieldSpec(coursesnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(coursesnapshot.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(coursesnapshot.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(coursesnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(coursesnapshot.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(coursesnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// CourseSnapshotCreateBulk is the builder for creating many CourseSnapshot entities in bulk.
type CourseSnapshotCreateBulk struct {
	config
	err      error
	builders []*CourseSnapshotCreate
}

// Save creates the CourseSnapshot entities in the database.
func (_c *CourseSnapshotCreateBulk) Save(ctx context.Context) ([]*CourseSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseSnapshotMutation)
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
func (_c *CourseSnapshotCreateBulk) SaveX(ctx context.Context) []*CourseSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
