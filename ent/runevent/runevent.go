// Code generated by ent, DO NOT EDIT.

package runevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the runevent type in the database.
	Label = "run_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldPolicy holds the string denoting the policy field in the database.
	FieldPolicy = "policy"
	// FieldSeed holds the string denoting the seed field in the database.
	FieldSeed = "seed"
	// FieldStudents holds the string denoting the students field in the database.
	FieldStudents = "students"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldMeanCorrectness holds the string denoting the mean_correctness field in the database.
	FieldMeanCorrectness = "mean_correctness"
	// FieldDiscussionRate holds the string denoting the discussion_rate field in the database.
	FieldDiscussionRate = "discussion_rate"
	// FieldGenuineLearningGain holds the string denoting the genuine_learning_gain field in the database.
	FieldGenuineLearningGain = "genuine_learning_gain"
	// FieldTotalDebates holds the string denoting the total_debates field in the database.
	FieldTotalDebates = "total_debates"
	// FieldPositiveOutcomes holds the string denoting the positive_outcomes field in the database.
	FieldPositiveOutcomes = "positive_outcomes"
	// FieldNegativeOutcomes holds the string denoting the negative_outcomes field in the database.
	FieldNegativeOutcomes = "negative_outcomes"
	// FieldFallbackCount holds the string denoting the fallback_count field in the database.
	FieldFallbackCount = "fallback_count"
	// Table holds the table name of the runevent in the database.
	Table = "run_events"
)

// Columns holds all SQL columns for runevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldPolicy,
	FieldSeed,
	FieldStudents,
	FieldQuestions,
	FieldMeanCorrectness,
	FieldDiscussionRate,
	FieldGenuineLearningGain,
	FieldTotalDebates,
	FieldPositiveOutcomes,
	FieldNegativeOutcomes,
	FieldFallbackCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultTotalDebates holds the default value on creation for the "total_debates" field.
	DefaultTotalDebates int
	// DefaultPositiveOutcomes holds the default value on creation for the "positive_outcomes" field.
	DefaultPositiveOutcomes int
	// DefaultNegativeOutcomes holds the default value on creation for the "negative_outcomes" field.
	DefaultNegativeOutcomes int
	// DefaultFallbackCount holds the default value on creation for the "fallback_count" field.
	DefaultFallbackCount int64
)

// OrderOption defines the ordering options for the RunEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByPolicy orders the results by the policy field.
func ByPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPolicy, opts...).ToFunc()
}

// BySeed orders the results by the seed field.
func BySeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeed, opts...).ToFunc()
}

// ByStudents orders the results by the students field.
func ByStudents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudents, opts...).ToFunc()
}

// ByQuestions orders the results by the questions field.
func ByQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestions, opts...).ToFunc()
}

// ByMeanCorrectness orders the results by the mean_correctness field.
func ByMeanCorrectness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeanCorrectness, opts...).ToFunc()
}

// ByDiscussionRate orders the results by the discussion_rate field.
func ByDiscussionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscussionRate, opts...).ToFunc()
}

// ByGenuineLearningGain orders the results by the genuine_learning_gain field.
func ByGenuineLearningGain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenuineLearningGain, opts...).ToFunc()
}

// ByTotalDebates orders the results by the total_debates field.
func ByTotalDebates(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDebates, opts...).ToFunc()
}

// ByPositiveOutcomes orders the results by the positive_outcomes field.
func ByPositiveOutcomes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPositiveOutcomes, opts...).ToFunc()
}

// ByNegativeOutcomes orders the results by the negative_outcomes field.
func ByNegativeOutcomes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNegativeOutcomes, opts...).ToFunc()
}

// ByFallbackCount orders the results by the fallback_count field.
func ByFallbackCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallbackCount, opts...).ToFunc()
}
