// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/classim/ent/fallbackevent"
	"github.com/abhisek/classim/ent/llmrequestevent"
	"github.com/abhisek/classim/ent/runevent"
	"github.com/abhisek/classim/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fallbackeventMixin := schema.FallbackEvent{}.Mixin()
	fallbackeventMixinFields0 := fallbackeventMixin[0].Fields()
	_ = fallbackeventMixinFields0
	fallbackeventFields := schema.FallbackEvent{}.Fields()
	_ = fallbackeventFields
	// fallbackeventDescTimestamp is the schema descriptor for timestamp field.
	fallbackeventDescTimestamp := fallbackeventMixinFields0[1].Descriptor()
	// fallbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	fallbackevent.DefaultTimestamp = fallbackeventDescTimestamp.Default.(func() time.Time)
	// fallbackeventDescQuestionID is the schema descriptor for question_id field.
	fallbackeventDescQuestionID := fallbackeventFields[2].Descriptor()
	// fallbackevent.DefaultQuestionID holds the default value on creation for the question_id field.
	fallbackevent.DefaultQuestionID = fallbackeventDescQuestionID.Default.(string)
	// fallbackeventDescStudentID is the schema descriptor for student_id field.
	fallbackeventDescStudentID := fallbackeventFields[3].Descriptor()
	// fallbackevent.DefaultStudentID holds the default value on creation for the student_id field.
	fallbackevent.DefaultStudentID = fallbackeventDescStudentID.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescTotalDebates is the schema descriptor for total_debates field.
	runeventDescTotalDebates := runeventFields[8].Descriptor()
	// runevent.DefaultTotalDebates holds the default value on creation for the total_debates field.
	runevent.DefaultTotalDebates = runeventDescTotalDebates.Default.(int)
	// runeventDescPositiveOutcomes is the schema descriptor for positive_outcomes field.
	runeventDescPositiveOutcomes := runeventFields[9].Descriptor()
	// runevent.DefaultPositiveOutcomes holds the default value on creation for the positive_outcomes field.
	runevent.DefaultPositiveOutcomes = runeventDescPositiveOutcomes.Default.(int)
	// runeventDescNegativeOutcomes is the schema descriptor for negative_outcomes field.
	runeventDescNegativeOutcomes := runeventFields[10].Descriptor()
	// runevent.DefaultNegativeOutcomes holds the default value on creation for the negative_outcomes field.
	runevent.DefaultNegativeOutcomes = runeventDescNegativeOutcomes.Default.(int)
	// runeventDescFallbackCount is the schema descriptor for fallback_count field.
	runeventDescFallbackCount := runeventFields[11].Descriptor()
	// runevent.DefaultFallbackCount holds the default value on creation for the fallback_count field.
	runevent.DefaultFallbackCount = runeventDescFallbackCount.Default.(int64)
}
