package tracker

import (
	"context"
	"testing"

	"github.com/abhisek/classim/internal/agent"
	"github.com/abhisek/classim/internal/question"
)

func testQuestion() *question.Question {
	return &question.Question{
		ID:            "q-frac-1",
		Concept:       "fraction comparison",
		Difficulty:    0.4,
		Prompt:        "Which fraction is larger, 1/3 or 1/4?",
		Options:       []string{"A) 1/4", "B) 1/3", "C) They are equal", "D) Cannot tell"},
		CorrectAnswer: "B",
	}
}

func TestClassifyLearningType(t *testing.T) {
	const threshold = 0.15
	tests := []struct {
		name                     string
		initCorrect, finalCorrect bool
		before, after            float64
		want                     LearningType
	}{
		{"wrong to correct with gain", false, true, 0.3, 0.6, LearningGenuine},
		{"wrong to correct without gain", false, true, 0.3, 0.35, LearningSuperficial},
		{"correct to wrong with gain", true, false, 0.3, 0.6, LearningNegative},
		{"correct to wrong without gain", true, false, 0.6, 0.3, LearningNegative},
		{"stayed correct with gain", true, true, 0.5, 0.7, LearningGenuine},
		{"stayed correct without gain", true, true, 0.5, 0.55, LearningNone},
		{"stayed wrong with gain", false, false, 0.2, 0.5, LearningSuperficial},
		{"stayed wrong without gain", false, false, 0.2, 0.25, LearningNone},
		{"gain exactly at threshold", false, true, 0.3, 0.45, LearningGenuine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLearningType(tt.initCorrect, tt.finalCorrect, tt.before, tt.after, threshold)
			if got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTrack_BuildsEventAndAppliesUpdate(t *testing.T) {
	engine := agent.NewHeuristicEngine(1)
	tr := NewTracker(engine)

	p := agent.Profile{Name: "fixture", BaselineAbility: 0.5, Susceptibility: 0.8}
	s := agent.NewStudent("s01", "Ava", p, engine, 42, 0)
	q := testQuestion()

	initial := agent.Position{
		Answer:     "A",
		Chain:      &agent.ReasoningChain{Conclusion: "A", Confidence: 0.5, Steps: []string{"guess"}},
		Confidence: 0.5,
	}
	final := agent.Position{
		Answer: "B",
		Chain: &agent.ReasoningChain{
			Conclusion: "B",
			Confidence: 0.7,
			Steps:      []string{"1/3 splits into fewer pieces", "fewer pieces means bigger pieces", "so 1/3 is larger"},
		},
		Confidence: 0.7,
		Turn:       2,
	}

	ev, err := tr.Track(context.Background(), s, q, initial, final)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ev.StudentID != "s01" || ev.QuestionID != "q-frac-1" {
		t.Fatalf("event identity %s/%s", ev.StudentID, ev.QuestionID)
	}
	if ev.InitialCorrect || !ev.FinalCorrect || !ev.ChangedMind {
		t.Fatalf("correctness flags %+v", ev)
	}

	// Rubric: initial = 0.3 base. Final = 0.3 + 0.1 + 0.1 (three steps)
	// + 0.2 (confident and correct) + 0.2 (correct) = 0.9.
	if ev.InitialQuality != 0.3 {
		t.Fatalf("initial quality %v, want 0.3", ev.InitialQuality)
	}
	if diff := ev.FinalQuality - 0.9; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("final quality %v, want 0.9", ev.FinalQuality)
	}
	if ev.Type != LearningGenuine {
		t.Fatalf("learning type %s, want %s", ev.Type, LearningGenuine)
	}

	// A correct final answer leaves knowledge untouched.
	if ev.AbilityDelta != 0 || s.Ability != p.BaselineAbility {
		t.Fatalf("correct final answer changed ability: delta=%v ability=%v", ev.AbilityDelta, s.Ability)
	}
}

func TestTrack_WrongFinalAnswerGainsAbility(t *testing.T) {
	engine := agent.NewHeuristicEngine(1)
	tr := NewTracker(engine)

	p := agent.Profile{Name: "fixture", BaselineAbility: 0.5, Susceptibility: 0.8}
	s := agent.NewStudent("s01", "Ava", p, engine, 42, 0)
	q := testQuestion()

	pos := agent.Position{
		Answer:     "A",
		Chain:      &agent.ReasoningChain{Conclusion: "A", Confidence: 0.5},
		Confidence: 0.5,
	}

	ev, err := tr.Track(context.Background(), s, q, pos, pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0.1 * p.Susceptibility
	if diff := ev.AbilityDelta - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("ability delta %v, want %v", ev.AbilityDelta, want)
	}
	if ev.Type != LearningNone {
		t.Fatalf("learning type %s, want %s", ev.Type, LearningNone)
	}
	if ev.ChangedMind {
		t.Fatal("identical positions reported a changed mind")
	}
}
