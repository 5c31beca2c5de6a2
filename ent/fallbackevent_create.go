// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/classim/ent/fallbackevent"
)

// FallbackEventCreate is the builder for creating a FallbackEvent entity.
type FallbackEventCreate struct {
	config
	mutation *FallbackEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *FallbackEventCreate) SetSequence(v int64) *FallbackEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *FallbackEventCreate) SetTimestamp(v time.Time) *FallbackEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *FallbackEventCreate) SetNillableTimestamp(v *time.Time) *FallbackEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCapability sets the "capability" field.
func (_c *FallbackEventCreate) SetCapability(v string) *FallbackEventCreate {
	_c.mutation.SetCapability(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *FallbackEventCreate) SetReason(v string) *FallbackEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *FallbackEventCreate) SetQuestionID(v string) *FallbackEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_c *FallbackEventCreate) SetNillableQuestionID(v *string) *FallbackEventCreate {
	if v != nil {
		_c.SetQuestionID(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *FallbackEventCreate) SetStudentID(v string) *FallbackEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_c *FallbackEventCreate) SetNillableStudentID(v *string) *FallbackEventCreate {
	if v != nil {
		_c.SetStudentID(*v)
	}
	return _c
}

// Mutation returns the FallbackEventMutation object of the builder.
func (_c *FallbackEventCreate) Mutation() *FallbackEventMutation {
	return _c.mutation
}

// Save creates the FallbackEvent in the database.
func (_c *FallbackEventCreate) Save(ctx context.Context) (*FallbackEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FallbackEventCreate) SaveX(ctx context.Context) *FallbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FallbackEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FallbackEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FallbackEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := fallbackevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		v := fallbackevent.DefaultQuestionID
		_c.mutation.SetQuestionID(v)
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		v := fallbackevent.DefaultStudentID
		_c.mutation.SetStudentID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FallbackEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "FallbackEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "FallbackEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Capability(); !ok {
		return &ValidationError{Name: "capability", err: errors.New(`ent: missing required field "FallbackEvent.capability"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "FallbackEvent.reason"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "FallbackEvent.question_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "FallbackEvent.student_id"`)}
	}
	return nil
}

func (_c *FallbackEventCreate) sqlSave(ctx context.Context) (*FallbackEvent, error) {
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

func (_c *FallbackEventCreate) createSpec() (*FallbackEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FallbackEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fallbackevent.Table, sqlgraph.NewFieldSpec(fallbackevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(fallbackevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(fallbackevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Capability(); ok {
		_spec.SetField(fallbackevent.FieldCapability, field.TypeString, value)
		_node.Capability = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(fallbackevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(fallbackevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(fallbackevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	return _node, _spec
}

// FallbackEventCreateBulk is the builder for creating many FallbackEvent entities in bulk.
type FallbackEventCreateBulk struct {
	config
	err      error
	builders []*FallbackEventCreate
}

// Save creates the FallbackEvent entities in the database.
func (_c *FallbackEventCreateBulk) Save(ctx context.Context) ([]*FallbackEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FallbackEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FallbackEventMutation)
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
func (_c *FallbackEventCreateBulk) SaveX(ctx context.Context) []*FallbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FallbackEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FallbackEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
