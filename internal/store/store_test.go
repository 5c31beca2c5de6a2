package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"student-answer", "peer-debate", "reasoning-grade"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "claude-sonnet-4-5",
			Model:        "claude-sonnet-4-5",
			Purpose:      purpose,
			InputTokens:  100 * (i + 1),
			OutputTokens: 50,
			LatencyMs:    int64(200 + i),
			Success:      true,
			RequestBody:  `{"prompt":"which fraction is larger"}`,
			ResponseBody: `{"answer":"B"}`,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].Purpose != "reasoning-grade" || events[2].Purpose != "student-answer" {
		t.Fatalf("order wrong: %s .. %s", events[0].Purpose, events[2].Purpose)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Fatalf("sequences not monotonic: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("limited query: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limit ignored: %d events", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"answer":"B"}` {
		t.Fatalf("get returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 999999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("absent event should be nil, not an error")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Model: "gpt-5-mini", Purpose: "student-answer", InputTokens: 100, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Model: "gpt-5-mini", Purpose: "student-answer", InputTokens: 200, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Model: "claude-sonnet-4-5", Purpose: "peer-debate", InputTokens: 50, OutputTokens: 10, LatencyMs: 150, Success: true},
	}
	for _, data := range appends {
		data.Provider = data.Model
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := make(map[string]PurposeUsage)
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	answers := usage["student-answer"]
	if answers.Calls != 2 || answers.InputTokens != 300 || answers.OutputTokens != 60 {
		t.Fatalf("student-answer usage %+v", answers)
	}
	if answers.AvgLatencyMs != 200 {
		t.Fatalf("avg latency %d, want 200", answers.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := make(map[string]ModelUsage)
	for _, u := range byModel {
		models[u.Model] = u
	}
	if models["gpt-5-mini"].Calls != 2 || models["claude-sonnet-4-5"].Calls != 1 {
		t.Fatalf("model usage %+v", models)
	}
}

func TestFallbackCounting(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, capability := range []string{"reasoner", "reasoner", "grader"} {
		err := repo.AppendFallback(ctx, FallbackEventData{
			Capability: capability,
			Reason:     "request timed out",
			QuestionID: "frac-compare-1",
			StudentID:  "s03",
		})
		if err != nil {
			t.Fatalf("append fallback: %v", err)
		}
	}

	counts, err := repo.CountFallbacks(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts["reasoner"] != 2 || counts["grader"] != 1 || counts["persuader"] != 0 {
		t.Fatalf("counts %v", counts)
	}
}

func TestAppendAndQueryRuns(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, policy := range []string{"static", "adaptive"} {
		err := repo.AppendRun(ctx, RunEventData{
			RunID:               "run-" + policy,
			Policy:              policy,
			Seed:                42,
			Students:            8,
			Questions:           8,
			MeanCorrectness:     0.6 + float64(i)*0.1,
			DiscussionRate:      float64(i) * 0.5,
			GenuineLearningGain: float64(i) * 0.05,
			TotalDebates:        i * 12,
		})
		if err != nil {
			t.Fatalf("append run: %v", err)
		}
	}

	runs, err := repo.QueryRuns(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Policy != "adaptive" || runs[1].Policy != "static" {
		t.Fatalf("order wrong: %s then %s", runs[0].Policy, runs[1].Policy)
	}
	if runs[0].Students != 8 || runs[0].Seed != 42 {
		t.Fatalf("run fields %+v", runs[0])
	}
}
