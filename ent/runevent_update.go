// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/classim/ent/predicate"
	"github.com/abhisek/classim/ent/runevent"
)

// RunEventUpdate is the builder for updating RunEvent entities.
type RunEventUpdate struct {
	config
	hooks    []Hook
	mutation *RunEventMutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdate) Where(ps ...predicate.RunEvent) *RunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdate) SetRunID(v string) *RunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableRunID(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPolicy sets the "policy" field.
func (_u *RunEventUpdate) SetPolicy(v string) *RunEventUpdate {
	_u.mutation.SetPolicy(v)
	return _u
}

// SetNillablePolicy sets the "policy" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillablePolicy(v *string) *RunEventUpdate {
	if v != nil {
		_u.SetPolicy(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *RunEventUpdate) SetSeed(v int64) *RunEventUpdate {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableSeed(v *int64) *RunEventUpdate {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *RunEventUpdate) AddSeed(v int64) *RunEventUpdate {
	_u.mutation.AddSeed(v)
	return _u
}

// SetStudents sets the "students" field.
func (_u *RunEventUpdate) SetStudents(v int) *RunEventUpdate {
	_u.mutation.ResetStudents()
	_u.mutation.SetStudents(v)
	return _u
}

// SetNillableStudents sets the "students" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableStudents(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetStudents(*v)
	}
	return _u
}

// AddStudents adds value to the "students" field.
func (_u *RunEventUpdate) AddStudents(v int) *RunEventUpdate {
	_u.mutation.AddStudents(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *RunEventUpdate) SetQuestions(v int) *RunEventUpdate {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableQuestions(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *RunEventUpdate) AddQuestions(v int) *RunEventUpdate {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetMeanCorrectness sets the "mean_correctness" field.
func (_u *RunEventUpdate) SetMeanCorrectness(v float64) *RunEventUpdate {
	_u.mutation.ResetMeanCorrectness()
	_u.mutation.SetMeanCorrectness(v)
	return _u
}

// SetNillableMeanCorrectness sets the "mean_correctness" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableMeanCorrectness(v *float64) *RunEventUpdate {
	if v != nil {
		_u.SetMeanCorrectness(*v)
	}
	return _u
}

// AddMeanCorrectness adds value to the "mean_correctness" field.
func (_u *RunEventUpdate) AddMeanCorrectness(v float64) *RunEventUpdate {
	_u.mutation.AddMeanCorrectness(v)
	return _u
}

// SetDiscussionRate sets the "discussion_rate" field.
func (_u *RunEventUpdate) SetDiscussionRate(v float64) *RunEventUpdate {
	_u.mutation.ResetDiscussionRate()
	_u.mutation.SetDiscussionRate(v)
	return _u
}

// SetNillableDiscussionRate sets the "discussion_rate" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableDiscussionRate(v *float64) *RunEventUpdate {
	if v != nil {
		_u.SetDiscussionRate(*v)
	}
	return _u
}

// AddDiscussionRate adds value to the "discussion_rate" field.
func (_u *RunEventUpdate) AddDiscussionRate(v float64) *RunEventUpdate {
	_u.mutation.AddDiscussionRate(v)
	return _u
}

// SetGenuineLearningGain sets the "genuine_learning_gain" field.
func (_u *RunEventUpdate) SetGenuineLearningGain(v float64) *RunEventUpdate {
	_u.mutation.ResetGenuineLearningGain()
	_u.mutation.SetGenuineLearningGain(v)
	return _u
}

// SetNillableGenuineLearningGain sets the "genuine_learning_gain" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableGenuineLearningGain(v *float64) *RunEventUpdate {
	if v != nil {
		_u.SetGenuineLearningGain(*v)
	}
	return _u
}

// AddGenuineLearningGain adds value to the "genuine_learning_gain" field.
func (_u *RunEventUpdate) AddGenuineLearningGain(v float64) *RunEventUpdate {
	_u.mutation.AddGenuineLearningGain(v)
	return _u
}

// SetTotalDebates sets the "total_debates" field.
func (_u *RunEventUpdate) SetTotalDebates(v int) *RunEventUpdate {
	_u.mutation.ResetTotalDebates()
	_u.mutation.SetTotalDebates(v)
	return _u
}

// SetNillableTotalDebates sets the "total_debates" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableTotalDebates(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetTotalDebates(*v)
	}
	return _u
}

// AddTotalDebates adds value to the "total_debates" field.
func (_u *RunEventUpdate) AddTotalDebates(v int) *RunEventUpdate {
	_u.mutation.AddTotalDebates(v)
	return _u
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (_u *RunEventUpdate) SetPositiveOutcomes(v int) *RunEventUpdate {
	_u.mutation.ResetPositiveOutcomes()
	_u.mutation.SetPositiveOutcomes(v)
	return _u
}

// SetNillablePositiveOutcomes sets the "positive_outcomes" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillablePositiveOutcomes(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetPositiveOutcomes(*v)
	}
	return _u
}

// AddPositiveOutcomes adds value to the "positive_outcomes" field.
func (_u *RunEventUpdate) AddPositiveOutcomes(v int) *RunEventUpdate {
	_u.mutation.AddPositiveOutcomes(v)
	return _u
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (_u *RunEventUpdate) SetNegativeOutcomes(v int) *RunEventUpdate {
	_u.mutation.ResetNegativeOutcomes()
	_u.mutation.SetNegativeOutcomes(v)
	return _u
}

// SetNillableNegativeOutcomes sets the "negative_outcomes" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableNegativeOutcomes(v *int) *RunEventUpdate {
	if v != nil {
		_u.SetNegativeOutcomes(*v)
	}
	return _u
}

// AddNegativeOutcomes adds value to the "negative_outcomes" field.
func (_u *RunEventUpdate) AddNegativeOutcomes(v int) *RunEventUpdate {
	_u.mutation.AddNegativeOutcomes(v)
	return _u
}

// SetFallbackCount sets the "fallback_count" field.
func (_u *RunEventUpdate) SetFallbackCount(v int64) *RunEventUpdate {
	_u.mutation.ResetFallbackCount()
	_u.mutation.SetFallbackCount(v)
	return _u
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_u *RunEventUpdate) SetNillableFallbackCount(v *int64) *RunEventUpdate {
	if v != nil {
		_u.SetFallbackCount(*v)
	}
	return _u
}

// AddFallbackCount adds value to the "fallback_count" field.
func (_u *RunEventUpdate) AddFallbackCount(v int64) *RunEventUpdate {
	_u.mutation.AddFallbackCount(v)
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdate) Mutation() *RunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Policy(); ok {
		_spec.SetField(runevent.FieldPolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(runevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(runevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Students(); ok {
		_spec.SetField(runevent.FieldStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudents(); ok {
		_spec.AddField(runevent.FieldStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(runevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(runevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeanCorrectness(); ok {
		_spec.SetField(runevent.FieldMeanCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMeanCorrectness(); ok {
		_spec.AddField(runevent.FieldMeanCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscussionRate(); ok {
		_spec.SetField(runevent.FieldDiscussionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscussionRate(); ok {
		_spec.AddField(runevent.FieldDiscussionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GenuineLearningGain(); ok {
		_spec.SetField(runevent.FieldGenuineLearningGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGenuineLearningGain(); ok {
		_spec.AddField(runevent.FieldGenuineLearningGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalDebates(); ok {
		_spec.SetField(runevent.FieldTotalDebates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDebates(); ok {
		_spec.AddField(runevent.FieldTotalDebates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PositiveOutcomes(); ok {
		_spec.SetField(runevent.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPositiveOutcomes(); ok {
		_spec.AddField(runevent.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NegativeOutcomes(); ok {
		_spec.SetField(runevent.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNegativeOutcomes(); ok {
		_spec.AddField(runevent.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackCount(); ok {
		_spec.SetField(runevent.FieldFallbackCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFallbackCount(); ok {
		_spec.AddField(runevent.FieldFallbackCount, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunEventUpdateOne is the builder for updating a single RunEvent entity.
type RunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *RunEventUpdateOne) SetRunID(v string) *RunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableRunID(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPolicy sets the "policy" field.
func (_u *RunEventUpdateOne) SetPolicy(v string) *RunEventUpdateOne {
	_u.mutation.SetPolicy(v)
	return _u
}

// SetNillablePolicy sets the "policy" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillablePolicy(v *string) *RunEventUpdateOne {
	if v != nil {
		_u.SetPolicy(*v)
	}
	return _u
}

// SetSeed sets the "seed" field.
func (_u *RunEventUpdateOne) SetSeed(v int64) *RunEventUpdateOne {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableSeed(v *int64) *RunEventUpdateOne {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *RunEventUpdateOne) AddSeed(v int64) *RunEventUpdateOne {
	_u.mutation.AddSeed(v)
	return _u
}

// SetStudents sets the "students" field.
func (_u *RunEventUpdateOne) SetStudents(v int) *RunEventUpdateOne {
	_u.mutation.ResetStudents()
	_u.mutation.SetStudents(v)
	return _u
}

// SetNillableStudents sets the "students" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableStudents(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetStudents(*v)
	}
	return _u
}

// AddStudents adds value to the "students" field.
func (_u *RunEventUpdateOne) AddStudents(v int) *RunEventUpdateOne {
	_u.mutation.AddStudents(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *RunEventUpdateOne) SetQuestions(v int) *RunEventUpdateOne {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableQuestions(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *RunEventUpdateOne) AddQuestions(v int) *RunEventUpdateOne {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetMeanCorrectness sets the "mean_correctness" field.
func (_u *RunEventUpdateOne) SetMeanCorrectness(v float64) *RunEventUpdateOne {
	_u.mutation.ResetMeanCorrectness()
	_u.mutation.SetMeanCorrectness(v)
	return _u
}

// SetNillableMeanCorrectness sets the "mean_correctness" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableMeanCorrectness(v *float64) *RunEventUpdateOne {
	if v != nil {
		_u.SetMeanCorrectness(*v)
	}
	return _u
}

// AddMeanCorrectness adds value to the "mean_correctness" field.
func (_u *RunEventUpdateOne) AddMeanCorrectness(v float64) *RunEventUpdateOne {
	_u.mutation.AddMeanCorrectness(v)
	return _u
}

// SetDiscussionRate sets the "discussion_rate" field.
func (_u *RunEventUpdateOne) SetDiscussionRate(v float64) *RunEventUpdateOne {
	_u.mutation.ResetDiscussionRate()
	_u.mutation.SetDiscussionRate(v)
	return _u
}

// SetNillableDiscussionRate sets the "discussion_rate" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableDiscussionRate(v *float64) *RunEventUpdateOne {
	if v != nil {
		_u.SetDiscussionRate(*v)
	}
	return _u
}

// AddDiscussionRate adds value to the "discussion_rate" field.
func (_u *RunEventUpdateOne) AddDiscussionRate(v float64) *RunEventUpdateOne {
	_u.mutation.AddDiscussionRate(v)
	return _u
}

// SetGenuineLearningGain sets the "genuine_learning_gain" field.
func (_u *RunEventUpdateOne) SetGenuineLearningGain(v float64) *RunEventUpdateOne {
	_u.mutation.ResetGenuineLearningGain()
	_u.mutation.SetGenuineLearningGain(v)
	return _u
}

// SetNillableGenuineLearningGain sets the "genuine_learning_gain" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableGenuineLearningGain(v *float64) *RunEventUpdateOne {
	if v != nil {
		_u.SetGenuineLearningGain(*v)
	}
	return _u
}

// AddGenuineLearningGain adds value to the "genuine_learning_gain" field.
func (_u *RunEventUpdateOne) AddGenuineLearningGain(v float64) *RunEventUpdateOne {
	_u.mutation.AddGenuineLearningGain(v)
	return _u
}

// SetTotalDebates sets the "total_debates" field.
func (_u *RunEventUpdateOne) SetTotalDebates(v int) *RunEventUpdateOne {
	_u.mutation.ResetTotalDebates()
	_u.mutation.SetTotalDebates(v)
	return _u
}

// SetNillableTotalDebates sets the "total_debates" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableTotalDebates(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetTotalDebates(*v)
	}
	return _u
}

// AddTotalDebates adds value to the "total_debates" field.
func (_u *RunEventUpdateOne) AddTotalDebates(v int) *RunEventUpdateOne {
	_u.mutation.AddTotalDebates(v)
	return _u
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (_u *RunEventUpdateOne) SetPositiveOutcomes(v int) *RunEventUpdateOne {
	_u.mutation.ResetPositiveOutcomes()
	_u.mutation.SetPositiveOutcomes(v)
	return _u
}

// SetNillablePositiveOutcomes sets the "positive_outcomes" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillablePositiveOutcomes(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetPositiveOutcomes(*v)
	}
	return _u
}

// AddPositiveOutcomes adds value to the "positive_outcomes" field.
func (_u *RunEventUpdateOne) AddPositiveOutcomes(v int) *RunEventUpdateOne {
	_u.mutation.AddPositiveOutcomes(v)
	return _u
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (_u *RunEventUpdateOne) SetNegativeOutcomes(v int) *RunEventUpdateOne {
	_u.mutation.ResetNegativeOutcomes()
	_u.mutation.SetNegativeOutcomes(v)
	return _u
}

// SetNillableNegativeOutcomes sets the "negative_outcomes" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableNegativeOutcomes(v *int) *RunEventUpdateOne {
	if v != nil {
		_u.SetNegativeOutcomes(*v)
	}
	return _u
}

// AddNegativeOutcomes adds value to the "negative_outcomes" field.
func (_u *RunEventUpdateOne) AddNegativeOutcomes(v int) *RunEventUpdateOne {
	_u.mutation.AddNegativeOutcomes(v)
	return _u
}

// SetFallbackCount sets the "fallback_count" field.
func (_u *RunEventUpdateOne) SetFallbackCount(v int64) *RunEventUpdateOne {
	_u.mutation.ResetFallbackCount()
	_u.mutation.SetFallbackCount(v)
	return _u
}

// SetNillableFallbackCount sets the "fallback_count" field if the given value is not nil.
func (_u *RunEventUpdateOne) SetNillableFallbackCount(v *int64) *RunEventUpdateOne {
	if v != nil {
		_u.SetFallbackCount(*v)
	}
	return _u
}

// AddFallbackCount adds value to the "fallback_count" field.
func (_u *RunEventUpdateOne) AddFallbackCount(v int64) *RunEventUpdateOne {
	_u.mutation.AddFallbackCount(v)
	return _u
}

// Mutation returns the RunEventMutation object of the builder.
func (_u *RunEventUpdateOne) Mutation() *RunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunEventUpdate builder.
func (_u *RunEventUpdateOne) Where(ps ...predicate.RunEvent) *RunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunEventUpdateOne) Select(field string, fields ...string) *RunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunEvent entity.
func (_u *RunEventUpdateOne) Save(ctx context.Context) (*RunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunEventUpdateOne) SaveX(ctx context.Context) *RunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunEventUpdateOne) sqlSave(ctx context.Context) (_node *RunEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(runevent.Table, runevent.Columns, sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runevent.FieldID)
		for _, f := range fields {
			if !runevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(runevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Policy(); ok {
		_spec.SetField(runevent.FieldPolicy, field.TypeString, value)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(runevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(runevent.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Students(); ok {
		_spec.SetField(runevent.FieldStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudents(); ok {
		_spec.AddField(runevent.FieldStudents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(runevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(runevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeanCorrectness(); ok {
		_spec.SetField(runevent.FieldMeanCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMeanCorrectness(); ok {
		_spec.AddField(runevent.FieldMeanCorrectness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscussionRate(); ok {
		_spec.SetField(runevent.FieldDiscussionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscussionRate(); ok {
		_spec.AddField(runevent.FieldDiscussionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GenuineLearningGain(); ok {
		_spec.SetField(runevent.FieldGenuineLearningGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGenuineLearningGain(); ok {
		_spec.AddField(runevent.FieldGenuineLearningGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalDebates(); ok {
		_spec.SetField(runevent.FieldTotalDebates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDebates(); ok {
		_spec.AddField(runevent.FieldTotalDebates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PositiveOutcomes(); ok {
		_spec.SetField(runevent.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPositiveOutcomes(); ok {
		_spec.AddField(runevent.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NegativeOutcomes(); ok {
		_spec.SetField(runevent.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNegativeOutcomes(); ok {
		_spec.AddField(runevent.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FallbackCount(); ok {
		_spec.SetField(runevent.FieldFallbackCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFallbackCount(); ok {
		_spec.AddField(runevent.FieldFallbackCount, field.TypeInt64, value)
	}
	_node = &RunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
