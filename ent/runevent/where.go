// Code generated by ent, DO NOT EDIT.

package runevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/classim/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldRunID, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSeed, v))
}

// Students applies equality check predicate on the "students" field. It's identical to StudentsEQ.
func Students(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldStudents, v))
}

// Questions applies equality check predicate on the "questions" field. It's identical to QuestionsEQ.
func Questions(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldQuestions, v))
}

// MeanCorrectness applies equality check predicate on the "mean_correctness" field. It's identical to MeanCorrectnessEQ.
func MeanCorrectness(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldMeanCorrectness, v))
}

// DiscussionRate applies equality check predicate on the "discussion_rate" field. It's identical to DiscussionRateEQ.
func DiscussionRate(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldDiscussionRate, v))
}

// GenuineLearningGain applies equality check predicate on the "genuine_learning_gain" field. It's identical to GenuineLearningGainEQ.
func GenuineLearningGain(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldGenuineLearningGain, v))
}

// TotalDebates applies equality check predicate on the "total_debates" field. It's identical to TotalDebatesEQ.
func TotalDebates(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTotalDebates, v))
}

// PositiveOutcomes applies equality check predicate on the "positive_outcomes" field. It's identical to PositiveOutcomesEQ.
func PositiveOutcomes(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldPositiveOutcomes, v))
}

// NegativeOutcomes applies equality check predicate on the "negative_outcomes" field. It's identical to NegativeOutcomesEQ.
func NegativeOutcomes(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldNegativeOutcomes, v))
}

// FallbackCount applies equality check predicate on the "fallback_count" field. It's identical to FallbackCountEQ.
func FallbackCount(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldFallbackCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldRunID, v))
}

// PolicyEQ applies the EQ predicate on the "policy" field.
func PolicyEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldPolicy, v))
}

// PolicyNEQ applies the NEQ predicate on the "policy" field.
func PolicyNEQ(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldPolicy, v))
}

// PolicyIn applies the In predicate on the "policy" field.
func PolicyIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldPolicy, vs...))
}

// PolicyNotIn applies the NotIn predicate on the "policy" field.
func PolicyNotIn(vs ...string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldPolicy, vs...))
}

// PolicyGT applies the GT predicate on the "policy" field.
func PolicyGT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldPolicy, v))
}

// PolicyGTE applies the GTE predicate on the "policy" field.
func PolicyGTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldPolicy, v))
}

// PolicyLT applies the LT predicate on the "policy" field.
func PolicyLT(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldPolicy, v))
}

// PolicyLTE applies the LTE predicate on the "policy" field.
func PolicyLTE(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldPolicy, v))
}

// PolicyContains applies the Contains predicate on the "policy" field.
func PolicyContains(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContains(FieldPolicy, v))
}

// PolicyHasPrefix applies the HasPrefix predicate on the "policy" field.
func PolicyHasPrefix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasPrefix(FieldPolicy, v))
}

// PolicyHasSuffix applies the HasSuffix predicate on the "policy" field.
func PolicyHasSuffix(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldHasSuffix(FieldPolicy, v))
}

// PolicyEqualFold applies the EqualFold predicate on the "policy" field.
func PolicyEqualFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEqualFold(FieldPolicy, v))
}

// PolicyContainsFold applies the ContainsFold predicate on the "policy" field.
func PolicyContainsFold(v string) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldContainsFold(FieldPolicy, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldSeed, v))
}

// StudentsEQ applies the EQ predicate on the "students" field.
func StudentsEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldStudents, v))
}

// StudentsNEQ applies the NEQ predicate on the "students" field.
func StudentsNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldStudents, v))
}

// StudentsIn applies the In predicate on the "students" field.
func StudentsIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldStudents, vs...))
}

// StudentsNotIn applies the NotIn predicate on the "students" field.
func StudentsNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldStudents, vs...))
}

// StudentsGT applies the GT predicate on the "students" field.
func StudentsGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldStudents, v))
}

// StudentsGTE applies the GTE predicate on the "students" field.
func StudentsGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldStudents, v))
}

// StudentsLT applies the LT predicate on the "students" field.
func StudentsLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldStudents, v))
}

// StudentsLTE applies the LTE predicate on the "students" field.
func StudentsLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldStudents, v))
}

// QuestionsEQ applies the EQ predicate on the "questions" field.
func QuestionsEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldQuestions, v))
}

// QuestionsNEQ applies the NEQ predicate on the "questions" field.
func QuestionsNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldQuestions, v))
}

// QuestionsIn applies the In predicate on the "questions" field.
func QuestionsIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldQuestions, vs...))
}

// QuestionsNotIn applies the NotIn predicate on the "questions" field.
func QuestionsNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldQuestions, vs...))
}

// QuestionsGT applies the GT predicate on the "questions" field.
func QuestionsGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldQuestions, v))
}

// QuestionsGTE applies the GTE predicate on the "questions" field.
func QuestionsGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldQuestions, v))
}

// QuestionsLT applies the LT predicate on the "questions" field.
func QuestionsLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldQuestions, v))
}

// QuestionsLTE applies the LTE predicate on the "questions" field.
func QuestionsLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldQuestions, v))
}

// MeanCorrectnessEQ applies the EQ predicate on the "mean_correctness" field.
func MeanCorrectnessEQ(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldMeanCorrectness, v))
}

// MeanCorrectnessNEQ applies the NEQ predicate on the "mean_correctness" field.
func MeanCorrectnessNEQ(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldMeanCorrectness, v))
}

// MeanCorrectnessIn applies the In predicate on the "mean_correctness" field.
func MeanCorrectnessIn(vs ...float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldMeanCorrectness, vs...))
}

// MeanCorrectnessNotIn applies the NotIn predicate on the "mean_correctness" field.
func MeanCorrectnessNotIn(vs ...float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldMeanCorrectness, vs...))
}

// MeanCorrectnessGT applies the GT predicate on the "mean_correctness" field.
func MeanCorrectnessGT(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldMeanCorrectness, v))
}

// MeanCorrectnessGTE applies the GTE predicate on the "mean_correctness" field.
func MeanCorrectnessGTE(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldMeanCorrectness, v))
}

// MeanCorrectnessLT applies the LT predicate on the "mean_correctness" field.
func MeanCorrectnessLT(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldMeanCorrectness, v))
}

// MeanCorrectnessLTE applies the LTE predicate on the "mean_correctness" field.
func MeanCorrectnessLTE(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldMeanCorrectness, v))
}

// DiscussionRateEQ applies the EQ predicate on the "discussion_rate" field.
func DiscussionRateEQ(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldDiscussionRate, v))
}

// DiscussionRateNEQ applies the NEQ predicate on the "discussion_rate" field.
func DiscussionRateNEQ(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldDiscussionRate, v))
}

// DiscussionRateIn applies the In predicate on the "discussion_rate" field.
func DiscussionRateIn(vs ...float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldDiscussionRate, vs...))
}

// DiscussionRateNotIn applies the NotIn predicate on the "discussion_rate" field.
func DiscussionRateNotIn(vs ...float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldDiscussionRate, vs...))
}

// DiscussionRateGT applies the GT predicate on the "discussion_rate" field.
func DiscussionRateGT(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldDiscussionRate, v))
}

// DiscussionRateGTE applies the GTE predicate on the "discussion_rate" field.
func DiscussionRateGTE(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldDiscussionRate, v))
}

// DiscussionRateLT applies the LT predicate on the "discussion_rate" field.
func DiscussionRateLT(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldDiscussionRate, v))
}

// DiscussionRateLTE applies the LTE predicate on the "discussion_rate" field.
func DiscussionRateLTE(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldDiscussionRate, v))
}

// GenuineLearningGainEQ applies the EQ predicate on the "genuine_learning_gain" field.
func GenuineLearningGainEQ(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldGenuineLearningGain, v))
}

// GenuineLearningGainNEQ applies the NEQ predicate on the "genuine_learning_gain" field.
func GenuineLearningGainNEQ(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldGenuineLearningGain, v))
}

// GenuineLearningGainIn applies the In predicate on the "genuine_learning_gain" field.
func GenuineLearningGainIn(vs ...float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldGenuineLearningGain, vs...))
}

// GenuineLearningGainNotIn applies the NotIn predicate on the "genuine_learning_gain" field.
func GenuineLearningGainNotIn(vs ...float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldGenuineLearningGain, vs...))
}

// GenuineLearningGainGT applies the GT predicate on the "genuine_learning_gain" field.
func GenuineLearningGainGT(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldGenuineLearningGain, v))
}

// GenuineLearningGainGTE applies the GTE predicate on the "genuine_learning_gain" field.
func GenuineLearningGainGTE(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldGenuineLearningGain, v))
}

// GenuineLearningGainLT applies the LT predicate on the "genuine_learning_gain" field.
func GenuineLearningGainLT(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldGenuineLearningGain, v))
}

// GenuineLearningGainLTE applies the LTE predicate on the "genuine_learning_gain" field.
func GenuineLearningGainLTE(v float64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldGenuineLearningGain, v))
}

// TotalDebatesEQ applies the EQ predicate on the "total_debates" field.
func TotalDebatesEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldTotalDebates, v))
}

// TotalDebatesNEQ applies the NEQ predicate on the "total_debates" field.
func TotalDebatesNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldTotalDebates, v))
}

// TotalDebatesIn applies the In predicate on the "total_debates" field.
func TotalDebatesIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldTotalDebates, vs...))
}

// TotalDebatesNotIn applies the NotIn predicate on the "total_debates" field.
func TotalDebatesNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldTotalDebates, vs...))
}

// TotalDebatesGT applies the GT predicate on the "total_debates" field.
func TotalDebatesGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldTotalDebates, v))
}

// TotalDebatesGTE applies the GTE predicate on the "total_debates" field.
func TotalDebatesGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldTotalDebates, v))
}

// TotalDebatesLT applies the LT predicate on the "total_debates" field.
func TotalDebatesLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldTotalDebates, v))
}

// TotalDebatesLTE applies the LTE predicate on the "total_debates" field.
func TotalDebatesLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldTotalDebates, v))
}

// PositiveOutcomesEQ applies the EQ predicate on the "positive_outcomes" field.
func PositiveOutcomesEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldPositiveOutcomes, v))
}

// PositiveOutcomesNEQ applies the NEQ predicate on the "positive_outcomes" field.
func PositiveOutcomesNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldPositiveOutcomes, v))
}

// PositiveOutcomesIn applies the In predicate on the "positive_outcomes" field.
func PositiveOutcomesIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldPositiveOutcomes, vs...))
}

// PositiveOutcomesNotIn applies the NotIn predicate on the "positive_outcomes" field.
func PositiveOutcomesNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldPositiveOutcomes, vs...))
}

// PositiveOutcomesGT applies the GT predicate on the "positive_outcomes" field.
func PositiveOutcomesGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldPositiveOutcomes, v))
}

// PositiveOutcomesGTE applies the GTE predicate on the "positive_outcomes" field.
func PositiveOutcomesGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldPositiveOutcomes, v))
}

// PositiveOutcomesLT applies the LT predicate on the "positive_outcomes" field.
func PositiveOutcomesLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldPositiveOutcomes, v))
}

// PositiveOutcomesLTE applies the LTE predicate on the "positive_outcomes" field.
func PositiveOutcomesLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldPositiveOutcomes, v))
}

// NegativeOutcomesEQ applies the EQ predicate on the "negative_outcomes" field.
func NegativeOutcomesEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldNegativeOutcomes, v))
}

// NegativeOutcomesNEQ applies the NEQ predicate on the "negative_outcomes" field.
func NegativeOutcomesNEQ(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldNegativeOutcomes, v))
}

// NegativeOutcomesIn applies the In predicate on the "negative_outcomes" field.
func NegativeOutcomesIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldNegativeOutcomes, vs...))
}

// NegativeOutcomesNotIn applies the NotIn predicate on the "negative_outcomes" field.
func NegativeOutcomesNotIn(vs ...int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldNegativeOutcomes, vs...))
}

// NegativeOutcomesGT applies the GT predicate on the "negative_outcomes" field.
func NegativeOutcomesGT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldNegativeOutcomes, v))
}

// NegativeOutcomesGTE applies the GTE predicate on the "negative_outcomes" field.
func NegativeOutcomesGTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldNegativeOutcomes, v))
}

// NegativeOutcomesLT applies the LT predicate on the "negative_outcomes" field.
func NegativeOutcomesLT(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldNegativeOutcomes, v))
}

// NegativeOutcomesLTE applies the LTE predicate on the "negative_outcomes" field.
func NegativeOutcomesLTE(v int) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldNegativeOutcomes, v))
}

// FallbackCountEQ applies the EQ predicate on the "fallback_count" field.
func FallbackCountEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldEQ(FieldFallbackCount, v))
}

// FallbackCountNEQ applies the NEQ predicate on the "fallback_count" field.
func FallbackCountNEQ(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNEQ(FieldFallbackCount, v))
}

// FallbackCountIn applies the In predicate on the "fallback_count" field.
func FallbackCountIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldIn(FieldFallbackCount, vs...))
}

// FallbackCountNotIn applies the NotIn predicate on the "fallback_count" field.
func FallbackCountNotIn(vs ...int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldNotIn(FieldFallbackCount, vs...))
}

// FallbackCountGT applies the GT predicate on the "fallback_count" field.
func FallbackCountGT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGT(FieldFallbackCount, v))
}

// FallbackCountGTE applies the GTE predicate on the "fallback_count" field.
func FallbackCountGTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldGTE(FieldFallbackCount, v))
}

// FallbackCountLT applies the LT predicate on the "fallback_count" field.
func FallbackCountLT(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLT(FieldFallbackCount, v))
}

// FallbackCountLTE applies the LTE predicate on the "fallback_count" field.
func FallbackCountLTE(v int64) predicate.RunEvent {
	return predicate.RunEvent(sql.FieldLTE(FieldFallbackCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunEvent) predicate.RunEvent {
	return predicate.RunEvent(sql.NotPredicates(p))
}
