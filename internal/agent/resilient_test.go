package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/classim/internal/question"
)

// brokenEngine fails every call.
type brokenEngine struct{}

func (brokenEngine) Answer(context.Context, Context, *question.Question) (string, *ReasoningChain, error) {
	return "", nil, errors.New("transport down")
}

func (brokenEngine) Debate(context.Context, Context, *question.Question, Position, Position) (*Rebuttal, error) {
	return nil, errors.New("transport down")
}

func (brokenEngine) Grade(context.Context, *ReasoningChain, *question.Question, string) (float64, error) {
	return 0, errors.New("transport down")
}

func TestResilient_FallsBackOnFailure(t *testing.T) {
	heuristic := NewHeuristicEngine(7)
	eng := NewResilientEngine(brokenEngine{}, heuristic, time.Second, nil)
	sc := Context{StudentID: "s01", Ability: 0.5}
	q := testQuestion()

	answer, chain, err := eng.Answer(context.Background(), sc, q)
	if err != nil {
		t.Fatalf("fallback should absorb the failure: %v", err)
	}
	if chain == nil {
		t.Fatal("missing reasoning chain")
	}

	// The fallback must match the heuristic engine exactly.
	wantAnswer, wantChain, err := heuristic.Answer(context.Background(), sc, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != wantAnswer || chain.Confidence != wantChain.Confidence {
		t.Fatalf("fallback diverged from heuristic: %q/%v vs %q/%v",
			answer, chain.Confidence, wantAnswer, wantChain.Confidence)
	}

	answers, debates, grades := eng.FallbackCounts()
	if answers != 1 || debates != 0 || grades != 0 {
		t.Fatalf("counts = %d/%d/%d, want 1/0/0", answers, debates, grades)
	}
}

func TestResilient_CountsPerCapability(t *testing.T) {
	eng := NewResilientEngine(brokenEngine{}, NewHeuristicEngine(7), time.Second, nil)
	sc := Context{StudentID: "s01", Ability: 0.5}
	q := testQuestion()
	own := Position{Answer: "A", Chain: &ReasoningChain{Conclusion: "A"}, Confidence: 0.5}
	opp := Position{Answer: "B", Chain: &ReasoningChain{Conclusion: "B"}, Confidence: 0.7}

	if _, _, err := eng.Answer(context.Background(), sc, q); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := eng.Debate(context.Background(), sc, q, own, opp); err != nil {
		t.Fatalf("debate: %v", err)
	}
	if _, err := eng.Grade(context.Background(), own.Chain, q, "B"); err != nil {
		t.Fatalf("grade: %v", err)
	}

	answers, debates, grades := eng.FallbackCounts()
	if answers != 1 || debates != 1 || grades != 1 {
		t.Fatalf("counts = %d/%d/%d, want 1/1/1", answers, debates, grades)
	}
}

func TestResilient_HonorsParentCancellation(t *testing.T) {
	eng := NewResilientEngine(brokenEngine{}, NewHeuristicEngine(7), time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := eng.Answer(ctx, Context{StudentID: "s01"}, testQuestion())
	if err == nil {
		t.Fatal("cancelled call must not fall back")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	answers, _, _ := eng.FallbackCounts()
	if answers != 0 {
		t.Fatalf("cancellation counted as fallback: %d", answers)
	}
}

func TestResilient_PassesThroughSuccess(t *testing.T) {
	heuristic := NewHeuristicEngine(7)
	eng := NewResilientEngine(heuristic, NewHeuristicEngine(8), time.Second, nil)

	if _, _, err := eng.Answer(context.Background(), Context{StudentID: "s01", Ability: 0.5}, testQuestion()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	answers, debates, grades := eng.FallbackCounts()
	if answers+debates+grades != 0 {
		t.Fatalf("successful call counted as fallback: %d/%d/%d", answers, debates, grades)
	}
}
