// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FallbackEventsColumns holds the columns for the "fallback_events" table.
	FallbackEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "capability", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Default: ""},
		{Name: "student_id", Type: field.TypeString, Default: ""},
	}
	// FallbackEventsTable holds the schema information for the "fallback_events" table.
	FallbackEventsTable = &schema.Table{
		Name:       "fallback_events",
		Columns:    FallbackEventsColumns,
		PrimaryKey: []*schema.Column{FallbackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fallbackevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FallbackEventsColumns[1]},
			},
			{
				Name:    "fallbackevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FallbackEventsColumns[2]},
			},
			{
				Name:    "fallbackevent_capability",
				Unique:  false,
				Columns: []*schema.Column{FallbackEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "policy", Type: field.TypeString},
		{Name: "seed", Type: field.TypeInt64},
		{Name: "students", Type: field.TypeInt},
		{Name: "questions", Type: field.TypeInt},
		{Name: "mean_correctness", Type: field.TypeFloat64},
		{Name: "discussion_rate", Type: field.TypeFloat64},
		{Name: "genuine_learning_gain", Type: field.TypeFloat64},
		{Name: "total_debates", Type: field.TypeInt, Default: 0},
		{Name: "positive_outcomes", Type: field.TypeInt, Default: 0},
		{Name: "negative_outcomes", Type: field.TypeInt, Default: 0},
		{Name: "fallback_count", Type: field.TypeInt64, Default: 0},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1]},
			},
			{
				Name:    "runevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[2]},
			},
			{
				Name:    "runevent_policy",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FallbackEventsTable,
		LlmRequestEventsTable,
		RunEventsTable,
	}
)

func init() {
}
