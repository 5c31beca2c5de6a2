package debate

import (
	"math/rand/v2"
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

// newTestStudent builds a student with a fixed persona and no activated
// misconceptions, so debate behavior depends only on the given
// susceptibility.
func newTestStudent(id string, susceptibility float64) *agent.Student {
	p := agent.Profile{
		Name:            "fixture",
		BaselineAbility: 0.5,
		Susceptibility:  susceptibility,
	}
	return agent.NewStudent(id, "Student "+id, p, agent.NewHeuristicEngine(1), 1, 0)
}

func position(answer string, confidence float64) agent.Position {
	return agent.Position{
		Answer:     answer,
		Chain:      &agent.ReasoningChain{Conclusion: answer, Confidence: confidence},
		Confidence: confidence,
	}
}

func TestPairStudents_EachStudentAtMostOnce(t *testing.T) {
	students := []*agent.Student{
		newTestStudent("s01", 0.5), newTestStudent("s02", 0.5),
		newTestStudent("s03", 0.5), newTestStudent("s04", 0.5),
		newTestStudent("s05", 0.5), newTestStudent("s06", 0.5),
		newTestStudent("s07", 0.5),
	}
	positions := map[string]agent.Position{
		"s01": position("A", 0.4),
		"s02": position("A", 0.6),
		"s03": position("B", 0.9),
		"s04": position("B", 0.3),
		"s05": position("B", 0.5),
		"s06": position("C", 0.7),
		// s07 has no position and must never be paired.
	}

	pairs := PairStudents(students, positions, rand.New(rand.NewPCG(1, 2)))

	seen := make(map[string]bool)
	for _, p := range pairs {
		for _, s := range []*agent.Student{p.A, p.B} {
			if s.ID == "s07" {
				t.Fatal("paired a student without an initial position")
			}
			if seen[s.ID] {
				t.Fatalf("student %s appears in two pairs", s.ID)
			}
			seen[s.ID] = true
		}
		if positions[p.A.ID].Answer == positions[p.B.ID].Answer {
			t.Fatalf("pair %s/%s shares answer %q despite multiple groups",
				p.A.ID, p.B.ID, positions[p.A.ID].Answer)
		}
	}
	if len(pairs) == 0 {
		t.Fatal("no pairs formed from a split class")
	}
}

func TestPairStudents_ConfidenceOrdering(t *testing.T) {
	// The higher-mean-confidence group pairs its most confident member
	// with the least confident member of the other group.
	b1 := newTestStudent("b1", 0.5)
	b2 := newTestStudent("b2", 0.5)
	a1 := newTestStudent("a1", 0.5)
	a2 := newTestStudent("a2", 0.5)
	students := []*agent.Student{b1, b2, a1, a2}
	positions := map[string]agent.Position{
		"b1": position("B", 0.9),
		"b2": position("B", 0.5),
		"a1": position("A", 0.3),
		"a2": position("A", 0.7),
	}

	pairs := PairStudents(students, positions, rand.New(rand.NewPCG(1, 2)))
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].A != b1 || pairs[0].B != a1 {
		t.Fatalf("first pair %s/%s, want b1/a1", pairs[0].A.ID, pairs[0].B.ID)
	}
	if pairs[1].A != b2 || pairs[1].B != a2 {
		t.Fatalf("second pair %s/%s, want b2/a2", pairs[1].A.ID, pairs[1].B.ID)
	}
}

func TestPairStudents_SingleGroupPairsAdjacent(t *testing.T) {
	var students []*agent.Student
	positions := make(map[string]agent.Position)
	for _, id := range []string{"s01", "s02", "s03", "s04", "s05"} {
		s := newTestStudent(id, 0.5)
		students = append(students, s)
		positions[id] = position("B", 0.5)
	}

	pairs := PairStudents(students, positions, rand.New(rand.NewPCG(3, 4)))
	if len(pairs) != 2 {
		t.Fatalf("5 unanimous students should form 2 pairs, got %d", len(pairs))
	}

	seen := make(map[string]bool)
	for _, p := range pairs {
		if seen[p.A.ID] || seen[p.B.ID] {
			t.Fatal("student reused within a round")
		}
		seen[p.A.ID] = true
		seen[p.B.ID] = true
	}
}

func TestPairStudents_OverconfidentWrongMeetsHesitantCorrect(t *testing.T) {
	over := newTestStudent("s-over", 0.2)
	novice := newTestStudent("s-nov", 0.8)
	positions := map[string]agent.Position{
		"s-over": position("A", 0.8),
		"s-nov":  position("B", 0.3),
	}

	pairs := PairStudents([]*agent.Student{over, novice}, positions, rand.New(rand.NewPCG(1, 2)))
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one pair, got %d", len(pairs))
	}
	if pairs[0].A != over || pairs[0].B != novice {
		t.Fatalf("pair %s/%s, want the confident student in slot A", pairs[0].A.ID, pairs[0].B.ID)
	}
}

func TestPairStudents_NoPositions(t *testing.T) {
	students := []*agent.Student{newTestStudent("s01", 0.5)}
	pairs := PairStudents(students, map[string]agent.Position{}, rand.New(rand.NewPCG(1, 2)))
	if pairs != nil {
		t.Fatalf("expected no pairs, got %d", len(pairs))
	}
}
