package store

import (
	"context"
	"time"

	"github.com/abhisek/classim/ent"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// FallbackEventData captures one heuristic-fallback invocation.
type FallbackEventData struct {
	Capability string
	Reason     string
	QuestionID string
	StudentID  string
}

// RunEventData captures the summary of one completed experiment run.
type RunEventData struct {
	RunID               string
	Policy              string
	Seed                int64
	Students            int
	Questions           int
	MeanCorrectness     float64
	DiscussionRate      float64
	GenuineLearningGain float64
	TotalDebates        int
	PositiveOutcomes    int
	NegativeOutcomes    int
	FallbackCount       int64
}

// PurposeUsage aggregates LLM token usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage per model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendFallback records a heuristic-fallback invocation.
	AppendFallback(ctx context.Context, data FallbackEventData) error

	// AppendRun records a completed run's summary.
	AppendRun(ctx context.Context, data RunEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by row ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*ent.LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// CountFallbacks tallies fallback events per capability.
	CountFallbacks(ctx context.Context) (map[string]int, error)

	// QueryRuns returns run summaries, newest first.
	QueryRuns(ctx context.Context, opts QueryOpts) ([]*ent.RunEvent, error)
}
