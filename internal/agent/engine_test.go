package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/classim/internal/llm"
)

func TestLLMEngineAnswer_ParsesStructuredOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"answer": "b",
			"steps": ["1/3 has the smaller denominator", "so 1/3 is larger"],
			"confidence": 0.8,
			"misconceptions_used": ["frac-bigger-denominator", "made-up-id"]
		}`),
	})
	eng := NewLLMEngine(mock, DefaultEngineConfig())

	answer, chain, err := eng.Answer(context.Background(), Context{StudentID: "s01"}, testQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "B" {
		t.Fatalf("answer %q, want normalized B", answer)
	}
	if len(chain.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(chain.Steps))
	}
	if chain.Confidence != 0.8 {
		t.Fatalf("confidence %v, want 0.8", chain.Confidence)
	}
	// Invented misconception IDs are dropped.
	if len(chain.MisconceptionsUsed) != 1 || chain.MisconceptionsUsed[0] != "frac-bigger-denominator" {
		t.Fatalf("misconceptions = %v", chain.MisconceptionsUsed)
	}
}

func TestLLMEngineAnswer_RejectsUnknownOption(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"answer":"Z","steps":[],"confidence":0.5,"misconceptions_used":[]}`),
	})
	eng := NewLLMEngine(mock, DefaultEngineConfig())

	if _, _, err := eng.Answer(context.Background(), Context{StudentID: "s01"}, testQuestion()); err == nil {
		t.Fatal("expected error for answer outside the option set")
	}
}

func TestLLMEngineDebate_AnswerLetterIsAuthoritative(t *testing.T) {
	// The model claims changed_mind=false but switches its letter; the
	// letter wins.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"answer": "B",
			"steps": ["their point about denominators holds"],
			"confidence": 0.6,
			"changed_mind": false,
			"argument": "You are right, 1/3 is larger."
		}`),
	})
	eng := NewLLMEngine(mock, DefaultEngineConfig())

	own := Position{
		Answer:     "A",
		Chain:      &ReasoningChain{Conclusion: "A", MisconceptionsUsed: []string{"frac-bigger-denominator"}},
		Confidence: 0.5,
	}
	opp := Position{Answer: "B", Chain: &ReasoningChain{Conclusion: "B"}, Confidence: 0.7}

	reb, err := eng.Debate(context.Background(), Context{StudentID: "s01"}, testQuestion(), own, opp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reb.ChangedMind {
		t.Fatal("switched letter must report a changed mind")
	}
	// Switching answers abandons the old reasoning's misconceptions.
	if len(reb.Position.Chain.MisconceptionsUsed) != 0 {
		t.Fatalf("misconceptions carried across a switch: %v", reb.Position.Chain.MisconceptionsUsed)
	}
	if reb.Position.Turn != 1 {
		t.Fatalf("turn %d, want 1", reb.Position.Turn)
	}
}

func TestLLMEngineDebate_HoldingCarriesMisconceptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"answer": "A",
			"steps": ["still sure"],
			"confidence": 0.65,
			"changed_mind": true,
			"argument": "I still think 1/4 is bigger."
		}`),
	})
	eng := NewLLMEngine(mock, DefaultEngineConfig())

	own := Position{
		Answer:     "A",
		Chain:      &ReasoningChain{Conclusion: "A", MisconceptionsUsed: []string{"frac-bigger-denominator"}},
		Confidence: 0.5,
	}
	opp := Position{Answer: "B", Chain: &ReasoningChain{Conclusion: "B"}, Confidence: 0.7}

	reb, err := eng.Debate(context.Background(), Context{StudentID: "s01"}, testQuestion(), own, opp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reb.ChangedMind {
		t.Fatal("same letter must not report a changed mind, whatever the model claims")
	}
	if len(reb.Position.Chain.MisconceptionsUsed) != 1 {
		t.Fatalf("held position should keep its misconceptions: %v", reb.Position.Chain.MisconceptionsUsed)
	}
}

func TestLLMEngineGrade_ClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 1.4, "rationale": "excellent"}`),
	})
	eng := NewLLMEngine(mock, DefaultEngineConfig())

	score, err := eng.Grade(context.Background(), &ReasoningChain{Conclusion: "B"}, testQuestion(), "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 1.0 {
		t.Fatalf("score %v, want clamped 1.0", score)
	}
}
