// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/classim/ent/runevent"
)

// RunEvent is the model entity for the RunEvent schema.
type RunEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the run
	RunID string `json:"run_id,omitempty"`
	// Discussion policy: static, adaptive, adaptive-relaxed
	Policy string `json:"policy,omitempty"`
	// Random seed the run used
	Seed int64 `json:"seed,omitempty"`
	// Class size
	Students int `json:"students,omitempty"`
	// Questions completed (skipped excluded)
	Questions int `json:"questions,omitempty"`
	// Mean final correctness rate across questions
	MeanCorrectness float64 `json:"mean_correctness,omitempty"`
	// Fraction of questions that triggered discussion
	DiscussionRate float64 `json:"discussion_rate,omitempty"`
	// Mean final-minus-initial correctness across questions
	GenuineLearningGain float64 `json:"genuine_learning_gain,omitempty"`
	// TotalDebates holds the value of the "total_debates" field.
	TotalDebates int `json:"total_debates,omitempty"`
	// correct_convinced_wrong debates
	PositiveOutcomes int `json:"positive_outcomes,omitempty"`
	// wrong_convinced_correct debates
	NegativeOutcomes int `json:"negative_outcomes,omitempty"`
	// Heuristic fallback invocations across capabilities
	FallbackCount int64 `json:"fallback_count,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runevent.FieldMeanCorrectness, runevent.FieldDiscussionRate, runevent.FieldGenuineLearningGain:
			values[i] = new(sql.NullFloat64)
		case runevent.FieldID, runevent.FieldSequence, runevent.FieldSeed, runevent.FieldStudents, runevent.FieldQuestions, runevent.FieldTotalDebates, runevent.FieldPositiveOutcomes, runevent.FieldNegativeOutcomes, runevent.FieldFallbackCount:
			values[i] = new(sql.NullInt64)
		case runevent.FieldRunID, runevent.FieldPolicy:
			values[i] = new(sql.NullString)
		case runevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunEvent fields.
func (_m *RunEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case runevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case runevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case runevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case runevent.FieldPolicy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field policy", values[i])
			} else if value.Valid {
				_m.Policy = value.String
			}
		case runevent.FieldSeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				_m.Seed = value.Int64
			}
		case runevent.FieldStudents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field students", values[i])
			} else if value.Valid {
				_m.Students = int(value.Int64)
			}
		case runevent.FieldQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value.Valid {
				_m.Questions = int(value.Int64)
			}
		case runevent.FieldMeanCorrectness:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mean_correctness", values[i])
			} else if value.Valid {
				_m.MeanCorrectness = value.Float64
			}
		case runevent.FieldDiscussionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discussion_rate", values[i])
			} else if value.Valid {
				_m.DiscussionRate = value.Float64
			}
		case runevent.FieldGenuineLearningGain:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field genuine_learning_gain", values[i])
			} else if value.Valid {
				_m.GenuineLearningGain = value.Float64
			}
		case runevent.FieldTotalDebates:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_debates", values[i])
			} else if value.Valid {
				_m.TotalDebates = int(value.Int64)
			}
		case runevent.FieldPositiveOutcomes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field positive_outcomes", values[i])
			} else if value.Valid {
				_m.PositiveOutcomes = int(value.Int64)
			}
		case runevent.FieldNegativeOutcomes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field negative_outcomes", values[i])
			} else if value.Valid {
				_m.NegativeOutcomes = int(value.Int64)
			}
		case runevent.FieldFallbackCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fallback_count", values[i])
			} else if value.Valid {
				_m.FallbackCount = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RunEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RunEvent.
// Note that you need to call RunEvent.Unwrap() before calling this method if this RunEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunEvent) Update() *RunEventUpdateOne {
	return NewRunEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunEvent) Unwrap() *RunEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RunEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("policy=")
	builder.WriteString(_m.Policy)
	builder.WriteString(", ")
	builder.WriteString("seed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seed))
	builder.WriteString(", ")
	builder.WriteString("students=")
	builder.WriteString(fmt.Sprintf("%v", _m.Students))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("mean_correctness=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeanCorrectness))
	builder.WriteString(", ")
	builder.WriteString("discussion_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscussionRate))
	builder.WriteString(", ")
	builder.WriteString("genuine_learning_gain=")
	builder.WriteString(fmt.Sprintf("%v", _m.GenuineLearningGain))
	builder.WriteString(", ")
	builder.WriteString("total_debates=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDebates))
	builder.WriteString(", ")
	builder.WriteString("positive_outcomes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PositiveOutcomes))
	builder.WriteString(", ")
	builder.WriteString("negative_outcomes=")
	builder.WriteString(fmt.Sprintf("%v", _m.NegativeOutcomes))
	builder.WriteString(", ")
	builder.WriteString("fallback_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FallbackCount))
	builder.WriteByte(')')
	return builder.String()
}

// RunEvents is a parsable slice of RunEvent.
type RunEvents []*RunEvent
