package experiment

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/classim/internal/agent"
	"github.com/abhisek/classim/internal/debate"
	"github.com/abhisek/classim/internal/question"
	"github.com/abhisek/classim/internal/tracker"
)

func testConfig(t *testing.T, policy DiscussionPolicy) Config {
	t.Helper()
	engine := agent.NewHeuristicEngine(42)
	return Config{
		Policy:        policy,
		Students:      agent.NewClassroom(8, engine, 42, agent.DefaultActivationProb),
		Questions:     question.SeedBank(),
		MaxTurns:      debate.DefaultMaxTurns,
		MaxConcurrent: 4,
		Seed:          42,
	}
}

func newOrchestrator(t *testing.T, cfg Config) *Orchestrator {
	t.Helper()
	eng, err := debate.NewEngine(cfg.MaxTurns)
	if err != nil {
		t.Fatal(err)
	}
	orch, err := New(cfg, eng, tracker.NewTracker(agent.NewHeuristicEngine(42)))
	if err != nil {
		t.Fatal(err)
	}
	return orch
}

func TestConfigValidate(t *testing.T) {
	base := func() Config { return testConfig(t, StaticPolicy{}) }

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"nil policy", func(c *Config) { c.Policy = nil }},
		{"no students", func(c *Config) { c.Students = nil }},
		{"nil questions", func(c *Config) { c.Questions = nil }},
		{"zero turns", func(c *Config) { c.MaxTurns = 0 }},
		{"zero concurrency", func(c *Config) { c.MaxConcurrent = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}
}

func TestRun_StaticPolicyNeverDebates(t *testing.T) {
	orch := newOrchestrator(t, testConfig(t, StaticPolicy{}))

	res, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Policy != "static" || res.Seed != 42 || res.Classes != 8 {
		t.Fatalf("run header %s/%d/%d", res.Policy, res.Seed, res.Classes)
	}
	if len(res.Questions) != question.SeedBank().Len() {
		t.Fatalf("completed %d questions, want all %d", len(res.Questions), question.SeedBank().Len())
	}
	if res.SkippedQuestions != 0 {
		t.Fatalf("skipped %d questions", res.SkippedQuestions)
	}
	if res.DiscussionRate != 0 || res.TotalDebates != 0 {
		t.Fatalf("static run discussed: rate=%v debates=%d", res.DiscussionRate, res.TotalDebates)
	}
	for _, qr := range res.Questions {
		if qr.Discussed || len(qr.Debates) != 0 {
			t.Fatalf("question %s debated under static policy", qr.QuestionID)
		}
		if len(qr.Events) != 8 {
			t.Fatalf("question %s has %d learning events, want 8", qr.QuestionID, len(qr.Events))
		}
		// Without discussion nobody can change their answer.
		for _, ev := range qr.Events {
			if ev.ChangedMind {
				t.Fatalf("student %s changed answers without a debate", ev.StudentID)
			}
		}
	}
}

func TestRun_AdaptivePolicyCompletes(t *testing.T) {
	orch := newOrchestrator(t, testConfig(t, NewAdaptivePolicy()))

	res, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Questions) != question.SeedBank().Len() {
		t.Fatalf("completed %d questions, want all %d", len(res.Questions), question.SeedBank().Len())
	}
	if res.RunID == "" {
		t.Fatal("missing run id")
	}

	for _, qr := range res.Questions {
		if len(qr.Events) != 8 {
			t.Fatalf("question %s has %d events, want 8", qr.QuestionID, len(qr.Events))
		}
		if qr.Metrics == nil {
			t.Fatalf("question %s missing metrics", qr.QuestionID)
		}
		if qr.Discussed {
			if qr.Consensus == nil {
				t.Fatalf("discussed question %s missing consensus", qr.QuestionID)
			}
			if qr.Consensus.DebateCount != len(qr.Debates) {
				t.Fatalf("question %s consensus count %d vs %d debates",
					qr.QuestionID, qr.Consensus.DebateCount, len(qr.Debates))
			}
		} else if len(qr.Debates) != 0 {
			t.Fatalf("question %s has debates without a discussion decision", qr.QuestionID)
		}
	}

	if res.TotalDebates != len(res.AllDebates()) {
		t.Fatalf("total debates %d vs collected %d", res.TotalDebates, len(res.AllDebates()))
	}
}

func TestRun_SameSeedIsReproducible(t *testing.T) {
	runOnce := func() *ExperimentResult {
		orch := newOrchestrator(t, testConfig(t, NewAdaptivePolicy()))
		res, err := orch.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return res
	}

	a, b := runOnce(), runOnce()
	if a.MeanCorrectness != b.MeanCorrectness || a.DiscussionRate != b.DiscussionRate ||
		a.TotalDebates != b.TotalDebates || a.GenuineLearningGain != b.GenuineLearningGain {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
	for i := range a.Questions {
		if a.Questions[i].Discussed != b.Questions[i].Discussed {
			t.Fatalf("question %s discussion decision diverged", a.Questions[i].QuestionID)
		}
	}
}

func TestRun_CancelledContext(t *testing.T) {
	orch := newOrchestrator(t, testConfig(t, StaticPolicy{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := orch.Run(ctx)
	if err == nil {
		t.Fatal("cancelled run returned no error")
	}
	if res == nil {
		t.Fatal("cancelled run must still return a result")
	}
	if res.SkippedQuestions != question.SeedBank().Len() {
		t.Fatalf("skipped %d questions, want all %d", res.SkippedQuestions, question.SeedBank().Len())
	}
}

func TestExportJSONL(t *testing.T) {
	orch := newOrchestrator(t, testConfig(t, NewAdaptivePolicy()))
	res, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportJSONL(&buf, res); err != nil {
		t.Fatalf("export: %v", err)
	}

	counts := make(map[string]int)
	scanner := bufio.NewScanner(&buf)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		var rec struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("bad JSONL line: %v", err)
		}
		counts[rec.Type]++
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	if counts["experiment_result"] != 1 {
		t.Fatalf("run records %d, want 1", counts["experiment_result"])
	}
	if counts["debate_result"] != len(res.AllDebates()) {
		t.Fatalf("debate records %d, want %d", counts["debate_result"], len(res.AllDebates()))
	}
	if counts["learning_event"] != len(res.AllEvents()) {
		t.Fatalf("event records %d, want %d", counts["learning_event"], len(res.AllEvents()))
	}
}
