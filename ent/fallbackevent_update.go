// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/classim/ent/fallbackevent"
	"github.com/abhisek/classim/ent/predicate"
)

// FallbackEventUpdate is the builder for updating FallbackEvent entities.
type FallbackEventUpdate struct {
	config
	hooks    []Hook
	mutation *FallbackEventMutation
}

// Where appends a list predicates to the FallbackEventUpdate builder.
func (_u *FallbackEventUpdate) Where(ps ...predicate.FallbackEvent) *FallbackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCapability sets the "capability" field.
func (_u *FallbackEventUpdate) SetCapability(v string) *FallbackEventUpdate {
	_u.mutation.SetCapability(v)
	return _u
}

// SetNillableCapability sets the "capability" field if the given value is not nil.
func (_u *FallbackEventUpdate) SetNillableCapability(v *string) *FallbackEventUpdate {
	if v != nil {
		_u.SetCapability(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *FallbackEventUpdate) SetReason(v string) *FallbackEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FallbackEventUpdate) SetNillableReason(v *string) *FallbackEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *FallbackEventUpdate) SetQuestionID(v string) *FallbackEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *FallbackEventUpdate) SetNillableQuestionID(v *string) *FallbackEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *FallbackEventUpdate) SetStudentID(v string) *FallbackEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *FallbackEventUpdate) SetNillableStudentID(v *string) *FallbackEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// Mutation returns the FallbackEventMutation object of the builder.
func (_u *FallbackEventUpdate) Mutation() *FallbackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FallbackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FallbackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FallbackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FallbackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FallbackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fallbackevent.Table, fallbackevent.Columns, sqlgraph.NewFieldSpec(fallbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Capability(); ok {
		_spec.SetField(fallbackevent.FieldCapability, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(fallbackevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(fallbackevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(fallbackevent.FieldStudentID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fallbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FallbackEventUpdateOne is the builder for updating a single FallbackEvent entity.
type FallbackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FallbackEventMutation
}

// SetCapability sets the "capability" field.
func (_u *FallbackEventUpdateOne) SetCapability(v string) *FallbackEventUpdateOne {
	_u.mutation.SetCapability(v)
	return _u
}

// SetNillableCapability sets the "capability" field if the given value is not nil.
func (_u *FallbackEventUpdateOne) SetNillableCapability(v *string) *FallbackEventUpdateOne {
	if v != nil {
		_u.SetCapability(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *FallbackEventUpdateOne) SetReason(v string) *FallbackEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *FallbackEventUpdateOne) SetNillableReason(v *string) *FallbackEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *FallbackEventUpdateOne) SetQuestionID(v string) *FallbackEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *FallbackEventUpdateOne) SetNillableQuestionID(v *string) *FallbackEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *FallbackEventUpdateOne) SetStudentID(v string) *FallbackEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *FallbackEventUpdateOne) SetNillableStudentID(v *string) *FallbackEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// Mutation returns the FallbackEventMutation object of the builder.
func (_u *FallbackEventUpdateOne) Mutation() *FallbackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FallbackEventUpdate builder.
func (_u *FallbackEventUpdateOne) Where(ps ...predicate.FallbackEvent) *FallbackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FallbackEventUpdateOne) Select(field string, fields ...string) *FallbackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FallbackEvent entity.
func (_u *FallbackEventUpdateOne) Save(ctx context.Context) (*FallbackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FallbackEventUpdateOne) SaveX(ctx context.Context) *FallbackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FallbackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FallbackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FallbackEventUpdateOne) sqlSave(ctx context.Context) (_node *FallbackEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(fallbackevent.Table, fallbackevent.Columns, sqlgraph.NewFieldSpec(fallbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FallbackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fallbackevent.FieldID)
		for _, f := range fields {
			if !fallbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fallbackevent.FieldID {
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
	if value, ok := _u.mutation.Capability(); ok {
		_spec.SetField(fallbackevent.FieldCapability, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(fallbackevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(fallbackevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(fallbackevent.FieldStudentID, field.TypeString, value)
	}
	_node = &FallbackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fallbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
