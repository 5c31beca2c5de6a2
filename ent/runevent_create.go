// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/classim/ent/runevent"
)

// RunEventCreate is the builder for creating a RunEvent entity.
type RunEventCreate struct {
	config
	mutation *RunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RunEventCreate) SetSequence(v int64) *RunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RunEventCreate) SetTimestamp(v time.Time) *RunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableTimestamp(v *time.Time) *RunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *RunEventCreate) SetRunID(v string) *RunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPolicy sets the "policy" field.
func (_c *RunEventCreate) SetPolicy(v string) *RunEventCreate {
	_c.mutation.SetPolicy(v)
	return _c
}

// SetSeed sets the "seed" field.
func (_c *RunEventCreate) SetSeed(v int64) *RunEventCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// SetStudents sets the "students" field.
func (_c *RunEventCreate) SetStudents(v int) *RunEventCreate {
	_c.mutation.SetStudents(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *RunEventCreate) SetQuestions(v int) *RunEventCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetMeanCorrectness sets the "mean_correctness" field.
func (_c *RunEventCreate) SetMeanCorrectness(v float64) *RunEventCreate {
	_c.mutation.SetMeanCorrectness(v)
	return _c
}

// SetDiscussionRate sets the "discussion_rate" field.
func (_c *RunEventCreate) SetDiscussionRate(v float64) *RunEventCreate {
	_c.mutation.SetDiscussionRate(v)
	return _c
}

// SetGenuineLearningGain sets the "genuine_learning_gain" field.
func (_c *RunEventCreate) SetGenuineLearningGain(v float64) *RunEventCreate {
	_c.mutation.SetGenuineLearningGain(v)
	return _c
}

// SetTotalDebates sets the "total_debates" field.
func (_c *RunEventCreate) SetTotalDebates(v int) *RunEventCreate {
	_c.mutation.SetTotalDebates(v)
	return _c
}

// SetNillableTotalDebates sets the "total_debates" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableTotalDebates(v *int) *RunEventCreate {
	if v != nil {
		_c.SetTotalDebates(*v)
	}
	return _c
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (_c *RunEventCreate) SetPositiveOutcomes(v int) *RunEventCreate {
	_c.mutation.SetPositiveOutcomes(v)
	return _c
}

// SetNillablePositiveOutcomes sets the "positive_outcomes" field if the given value is not nil.
func (_c *RunEventCreate) SetNillablePositiveOutcomes(v *int) *RunEventCreate {
	if v != nil {
		_c.SetPositiveOutcomes(*v)
	}
	return _c
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (_c *RunEventCreate) SetNegativeOutcomes(v int) *RunEventCreate {
	_c.mutation.SetNegativeOutcomes(v)
	return _c
}

// SetNillableNegativeOutcomes sets the "negative_outcomes" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableNegativeOutcomes(v *int) *RunEventCreate {
	if v != nil {
		_c.SetNegativeOutcomes(*v)
	}
	return _c
}

// SetFallbackCount sets the "fallback_count" field.
func (_c *RunEventCreate) SetFallbackCount(v int64) *RunEventCreate {
	_c.mutation.SetFallbackCount(v)
	return _c
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_c *RunEventCreate) SetNillableFallbackCount(v *int64) *RunEventCreate {
	if v != nil {
		_c.SetFallbackCount(*v)
	}
	return _c
}

// Mutation returns the RunEventMutation object of the builder.
func (_c *RunEventCreate) Mutation() *RunEventMutation {
	return _c.mutation
}

// Save creates the RunEvent in the database.
func (_c *RunEventCreate) Save(ctx context.Context) (*RunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunEventCreate) SaveX(ctx context.Context) *RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := runevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TotalDebates(); !ok {
		v := runevent.DefaultTotalDebates
		_c.mutation.SetTotalDebates(v)
	}
	if _, ok := _c.mutation.PositiveOutcomes(); !ok {
		v := runevent.DefaultPositiveOutcomes
		_c.mutation.SetPositiveOutcomes(v)
	}
	if _, ok := _c.mutation.NegativeOutcomes(); !ok {
		v := runevent.DefaultNegativeOutcomes
		_c.mutation.SetNegativeOutcomes(v)
	}
	if _, ok := _c.mutation.FallbackCount(); !ok {
		v := runevent.DefaultFallbackCount
		_c.mutation.SetFallbackCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "RunEvent.run_id"`)}
	}
	if _, ok := _c.mutation.Policy(); !ok {
		return &ValidationError{Name: "policy", err: errors.New(`ent: missing required field "RunEvent.policy"`)}
	}
	if _, ok := _c.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "RunEvent.seed"`)}
	}
	if _, ok := _c.mutation.Students(); !ok {
		return &ValidationError{Name: "students", err: errors.New(`ent: missing required field "RunEvent.students"`)}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "RunEvent.questions"`)}
	}
	if _, ok := _c.mutation.MeanCorrectness(); !ok {
		return &ValidationError{Name: "mean_correctness", err: errors.New(`ent: missing required field "RunEvent.mean_correctness"`)}
	}
	if _, ok := _c.mutation.DiscussionRate(); !ok {
		return &ValidationError{Name: "discussion_rate", err: errors.New(`ent: missing required field "RunEvent.discussion_rate"`)}
	}
	if _, ok := _c.mutation.GenuineLearningGain(); !ok {
		return &ValidationError{Name: "genuine_learning_gain", err: errors.New(`ent: missing required field "RunEvent.genuine_learning_gain"`)}
	}
	if _, ok := _c.mutation.TotalDebates(); !ok {
		return &ValidationError{Name: "total_debates", err: errors.New(`ent: missing required field "RunEvent.total_debates"`)}
	}
	if _, ok := _c.mutation.PositiveOutcomes(); !ok {
		return &ValidationError{Name: "positive_outcomes", err: errors.New(`ent: missing required field "RunEvent.positive_outcomes"`)}
	}
	if _, ok := _c.mutation.NegativeOutcomes(); !ok {
		return &ValidationError{Name: "negative_outcomes", err: errors.New(`ent: missing required field "RunEvent.negative_outcomes"`)}
	}
	if _, ok := _c.mutation.FallbackCount(); !ok {
		return &ValidationError{Name: "fallback_count", err: errors.New(`ent: missing required field "RunEvent.fallback_count"`)}
	}
	return nil
}

func (_c *RunEventCreate) sqlSave(ctx context.Context) (*RunEvent, error) {
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

func (_c *RunEventCreate) createSpec() (*RunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runevent.Table, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(runevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(runevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Policy(); ok {
		_spec.SetField(runevent.FieldPolicy, field.TypeString, value)
		_node.Policy = value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(runevent.FieldSeed, field.TypeInt64, value)
		_node.Seed = value
	}
	if value, ok := _c.mutation.Students(); ok {
		_spec.SetField(runevent.FieldStudents, field.TypeInt, value)
		_node.Students = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(runevent.FieldQuestions, field.TypeInt, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.MeanCorrectness(); ok {
		_spec.SetField(runevent.FieldMeanCorrectness, field.TypeFloat64, value)
		_node.MeanCorrectness = value
	}
	if value, ok := _c.mutation.DiscussionRate(); ok {
		_spec.SetField(runevent.FieldDiscussionRate, field.TypeFloat64, value)
		_node.DiscussionRate = value
	}
	if value, ok := _c.mutation.GenuineLearningGain(); ok {
		_spec.SetField(runevent.FieldGenuineLearningGain, field.TypeFloat64, value)
		_node.GenuineLearningGain = value
	}
	if value, ok := _c.mutation.TotalDebates(); ok {
		_spec.SetField(runevent.FieldTotalDebates, field.TypeInt, value)
		_node.TotalDebates = value
	}
	if value, ok := _c.mutation.PositiveOutcomes(); ok {
		_spec.SetField(runevent.FieldPositiveOutcomes, field.TypeInt, value)
		_node.PositiveOutcomes = value
	}
	if value, ok := _c.mutation.NegativeOutcomes(); ok {
		_spec.SetField(runevent.FieldNegativeOutcomes, field.TypeInt, value)
		_node.NegativeOutcomes = value
	}
	if value, ok := _c.mutation.FallbackCount(); ok {
		_spec.SetField(runevent.FieldFallbackCount, field.TypeInt64, value)
		_node.FallbackCount = value
	}
	return _node, _spec
}

// RunEventCreateBulk is the builder for creating many RunEvent entities in bulk.
type RunEventCreateBulk struct {
	config
	err      error
	builders []*RunEventCreate
}

// Save creates the RunEvent entities in the database.
func (_c *RunEventCreateBulk) Save(ctx context.Context) ([]*RunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunEventMutation)
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
func (_c *RunEventCreateBulk) SaveX(ctx context.Context) []*RunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
