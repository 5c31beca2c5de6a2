package agent

import (
	"context"
	"testing"

	"github.com/abhisek/classim/internal/question"
)

func testQuestion() *question.Question {
	return &question.Question{
		ID:            "q-frac-1",
		Concept:       "fraction comparison",
		Difficulty:    0.5,
		Prompt:        "Which fraction is larger: 1/3 or 1/4?",
		Options:       []string{"A) 1/4", "B) 1/3", "C) They are equal", "D) Cannot tell"},
		CorrectAnswer: "B",
	}
}

func TestHeuristicAnswer_Deterministic(t *testing.T) {
	sc := Context{
		StudentID:        "s01",
		Ability:          0.5,
		ConfidenceOffset: 0.1,
	}
	q := testQuestion()

	first, firstChain, err := NewHeuristicEngine(7).Answer(context.Background(), sc, q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for range 5 {
		answer, chain, err := NewHeuristicEngine(7).Answer(context.Background(), sc, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != first {
			t.Fatalf("answer not deterministic: %q vs %q", answer, first)
		}
		if chain.Confidence != firstChain.Confidence {
			t.Fatalf("confidence not deterministic: %v vs %v", chain.Confidence, firstChain.Confidence)
		}
	}
}

func TestHeuristicAnswer_SeedChangesDraws(t *testing.T) {
	sc := Context{StudentID: "s01", Ability: 0.5}
	q := testQuestion()

	answers := make(map[string]bool)
	for seed := int64(0); seed < 32; seed++ {
		answer, _, err := NewHeuristicEngine(seed).Answer(context.Background(), sc, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		answers[answer] = true
	}
	if len(answers) < 2 {
		t.Fatalf("expected varied answers across seeds, got only %v", answers)
	}
}

func TestHeuristicAnswer_FullAbilityAlwaysCorrect(t *testing.T) {
	sc := Context{StudentID: "s01", Ability: 1.0}
	q := testQuestion()

	for seed := int64(0); seed < 20; seed++ {
		answer, chain, err := NewHeuristicEngine(seed).Answer(context.Background(), sc, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer != "B" {
			t.Fatalf("seed %d: ability 1.0 answered %q", seed, answer)
		}
		if chain.Conclusion != "B" {
			t.Fatalf("chain conclusion %q, want B", chain.Conclusion)
		}
	}
}

func TestHeuristicAnswer_ZeroAbilityAlwaysWrong(t *testing.T) {
	sc := Context{StudentID: "s01", Ability: 0.0}
	q := testQuestion()

	for seed := int64(0); seed < 20; seed++ {
		answer, _, err := NewHeuristicEngine(seed).Answer(context.Background(), sc, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if answer == "B" {
			t.Fatalf("seed %d: ability 0.0 answered correctly", seed)
		}
	}
}

func TestHeuristicAnswer_CitesActiveMisconception(t *testing.T) {
	m := GetMisconception("frac-bigger-denominator")
	if m == nil {
		t.Fatal("taxonomy missing frac-bigger-denominator")
	}
	sc := Context{
		StudentID:            "s01",
		Ability:              0.0,
		ActiveMisconceptions: []*Misconception{m},
	}

	_, chain, err := NewHeuristicEngine(3).Answer(context.Background(), sc, testQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chain.MisconceptionsUsed) != 1 || chain.MisconceptionsUsed[0] != m.ID {
		t.Fatalf("expected misconception %s cited, got %v", m.ID, chain.MisconceptionsUsed)
	}
}

func TestHeuristicDebate_NeverFlipsAgainstLessConfidentOpponent(t *testing.T) {
	sc := Context{StudentID: "s01", Susceptibility: 1.0}
	own := Position{Answer: "A", Chain: &ReasoningChain{Conclusion: "A"}, Confidence: 0.8}
	opp := Position{Answer: "B", Chain: &ReasoningChain{Conclusion: "B"}, Confidence: 0.3}

	for seed := int64(0); seed < 20; seed++ {
		reb, err := NewHeuristicEngine(seed).Debate(context.Background(), sc, testQuestion(), own, opp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reb.ChangedMind {
			t.Fatalf("seed %d: flipped against a less confident opponent", seed)
		}
		if reb.Position.Answer != "A" {
			t.Fatalf("seed %d: answer changed to %q", seed, reb.Position.Answer)
		}
		if reb.Position.Confidence <= own.Confidence {
			t.Fatalf("holding firm should harden confidence, got %v", reb.Position.Confidence)
		}
	}
}

func TestHeuristicDebate_FlipsUnderFullPressure(t *testing.T) {
	sc := Context{StudentID: "s01", Susceptibility: 1.0}
	own := Position{Answer: "A", Chain: &ReasoningChain{Conclusion: "A"}, Confidence: 0.0}
	opp := Position{Answer: "B", Chain: &ReasoningChain{Conclusion: "B"}, Confidence: 1.0}

	for seed := int64(0); seed < 20; seed++ {
		reb, err := NewHeuristicEngine(seed).Debate(context.Background(), sc, testQuestion(), own, opp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reb.ChangedMind {
			t.Fatalf("seed %d: susceptibility 1.0 against confidence gap 1.0 did not flip", seed)
		}
		if reb.Position.Answer != "B" {
			t.Fatalf("flip should adopt opponent answer, got %q", reb.Position.Answer)
		}
		if reb.Position.Turn != own.Turn+1 {
			t.Fatalf("turn index %d, want %d", reb.Position.Turn, own.Turn+1)
		}
	}
}

func TestHeuristicGrade_Rubric(t *testing.T) {
	q := testQuestion()
	eng := NewHeuristicEngine(1)

	tests := []struct {
		name  string
		chain *ReasoningChain
		want  float64
	}{
		{
			name:  "base only",
			chain: &ReasoningChain{Conclusion: "A", Confidence: 0.5},
			want:  0.3,
		},
		{
			name:  "two steps",
			chain: &ReasoningChain{Steps: []string{"a", "b"}, Conclusion: "A", Confidence: 0.5},
			want:  0.4,
		},
		{
			name:  "three steps",
			chain: &ReasoningChain{Steps: []string{"a", "b", "c"}, Conclusion: "A", Confidence: 0.5},
			want:  0.5,
		},
		{
			name:  "confident correct with depth",
			chain: &ReasoningChain{Steps: []string{"a", "b", "c"}, Conclusion: "B", Confidence: 0.7},
			want:  0.9,
		},
		{
			name:  "calibrated uncertainty on wrong answer",
			chain: &ReasoningChain{Conclusion: "A", Confidence: 0.3},
			want:  0.4,
		},
		{
			name: "misconception penalty",
			chain: &ReasoningChain{
				Conclusion:         "A",
				Confidence:         0.5,
				MisconceptionsUsed: []string{"frac-bigger-denominator"},
			},
			want: 0.15,
		},
		{
			name: "clamped at zero",
			chain: &ReasoningChain{
				Conclusion:         "A",
				Confidence:         0.5,
				MisconceptionsUsed: []string{"m1", "m2", "m3"},
			},
			want: 0,
		},
		{
			name:  "correct but hesitant",
			chain: &ReasoningChain{Conclusion: "B", Confidence: 0.5},
			want:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eng.Grade(context.Background(), tt.chain, q, q.CorrectAnswer)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("grade = %v, want %v", got, tt.want)
			}
		})
	}
}
