package debate

import (
	"context"
	"testing"

	"github.com/abhisek/classim/internal/agent"
)

func TestNewEngine_RejectsNonPositiveTurns(t *testing.T) {
	for _, turns := range []int{0, -1} {
		if _, err := NewEngine(turns); err == nil {
			t.Errorf("NewEngine(%d) accepted", turns)
		}
	}
}

func TestEngineRun_HaltsImmediatelyOnAgreement(t *testing.T) {
	eng, err := NewEngine(3)
	if err != nil {
		t.Fatal(err)
	}
	a, b := newTestStudent("s01", 0.5), newTestStudent("s02", 0.5)
	positions := map[string]agent.Position{
		"s01": position("B", 0.6),
		"s02": position("B", 0.8),
	}

	res, err := eng.Run(context.Background(), testQuestion(), Pair{A: a, B: b}, positions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Turns) != 0 {
		t.Fatalf("agreeing pair spoke %d turns, want 0", len(res.Turns))
	}
	if res.Outcome != OutcomeBothCorrect {
		t.Fatalf("outcome %s, want %s", res.Outcome, OutcomeBothCorrect)
	}
	if res.WinnerAnswer != "B" {
		t.Fatalf("winner %q, want shared answer B", res.WinnerAnswer)
	}
}

func TestEngineRun_TerminatesAtTurnCap(t *testing.T) {
	const maxTurns = 3
	eng, err := NewEngine(maxTurns)
	if err != nil {
		t.Fatal(err)
	}

	// Susceptibility 0 students never flip, so the debate runs the full
	// 2 x maxTurns turns without converging.
	a, b := newTestStudent("s01", 0), newTestStudent("s02", 0)
	positions := map[string]agent.Position{
		"s01": position("A", 0.5),
		"s02": position("C", 0.7),
	}

	res, err := eng.Run(context.Background(), testQuestion(), Pair{A: a, B: b}, positions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Turns) != 2*maxTurns {
		t.Fatalf("turn count %d, want %d", len(res.Turns), 2*maxTurns)
	}
	for i, turn := range res.Turns {
		if turn.Turn != i+1 {
			t.Fatalf("turn %d numbered %d", i, turn.Turn)
		}
		want := "s01"
		if i%2 == 1 {
			want = "s02"
		}
		if turn.SpeakerID != want {
			t.Fatalf("turn %d spoken by %s, want %s", i+1, turn.SpeakerID, want)
		}
	}
	if len(res.BeliefChanges) != 0 {
		t.Fatalf("stubborn pair recorded %d belief changes", len(res.BeliefChanges))
	}
	if res.FinalAnswerA != "A" || res.FinalAnswerB != "C" {
		t.Fatalf("finals %s/%s, want A/C", res.FinalAnswerA, res.FinalAnswerB)
	}
	// Holding firm hardens confidence, so s02 stays ahead and wins.
	if res.WinnerAnswer != "C" {
		t.Fatalf("winner %q, want higher-confidence C", res.WinnerAnswer)
	}
	if res.Outcome != OutcomeBothWrongStayedWrong {
		t.Fatalf("outcome %s, want %s", res.Outcome, OutcomeBothWrongStayedWrong)
	}
}

func TestEngineRun_ConsensusAfterFlip(t *testing.T) {
	eng, err := NewEngine(3)
	if err != nil {
		t.Fatal(err)
	}

	// s01 is maximally susceptible and faces a fully confident opponent,
	// so the first turn flips it to B and the debate converges.
	a, b := newTestStudent("s01", 1.0), newTestStudent("s02", 0)
	positions := map[string]agent.Position{
		"s01": position("A", 0.0),
		"s02": position("B", 1.0),
	}

	res, err := eng.Run(context.Background(), testQuestion(), Pair{A: a, B: b}, positions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Turns) != 1 {
		t.Fatalf("turn count %d, want 1", len(res.Turns))
	}
	if res.FinalAnswerA != "B" || res.FinalAnswerB != "B" {
		t.Fatalf("finals %s/%s, want B/B", res.FinalAnswerA, res.FinalAnswerB)
	}

	if len(res.BeliefChanges) != 1 {
		t.Fatalf("belief changes %d, want 1", len(res.BeliefChanges))
	}
	bc := res.BeliefChanges[0]
	if bc.StudentID != "s01" || bc.FromAnswer != "A" || bc.ToAnswer != "B" || !bc.ToCorrect {
		t.Fatalf("belief change %+v", bc)
	}
	if bc.Argument == "" {
		t.Fatal("belief change missing its argument")
	}

	if res.Outcome != OutcomeCorrectConvincedWrong {
		t.Fatalf("outcome %s, want %s", res.Outcome, OutcomeCorrectConvincedWrong)
	}

	if len(a.History) != 1 || !a.History[0].ChangedMind {
		t.Fatalf("s01 history %+v, want one changed-mind entry", a.History)
	}
	if len(b.History) != 1 || b.History[0].ChangedMind {
		t.Fatalf("s02 history %+v, want one held entry", b.History)
	}
}

func TestEngineRun_MissingPositionErrors(t *testing.T) {
	eng, err := NewEngine(3)
	if err != nil {
		t.Fatal(err)
	}
	a, b := newTestStudent("s01", 0.5), newTestStudent("s02", 0.5)
	positions := map[string]agent.Position{"s01": position("A", 0.5)}

	if _, err := eng.Run(context.Background(), testQuestion(), Pair{A: a, B: b}, positions); err == nil {
		t.Fatal("expected error for pair member without an initial position")
	}
}
