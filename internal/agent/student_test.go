package agent

import (
	"context"
	"fmt"
	"testing"
)

func TestNewClassroom_CyclesPersonas(t *testing.T) {
	students := NewClassroom(8, NewHeuristicEngine(1), 42, DefaultActivationProb)
	if len(students) != 8 {
		t.Fatalf("expected 8 students, got %d", len(students))
	}

	profiles := Profiles()
	ids := make(map[string]bool)
	for i, s := range students {
		if ids[s.ID] {
			t.Fatalf("duplicate student id %s", s.ID)
		}
		ids[s.ID] = true

		want := profiles[i%len(profiles)].Name
		if s.Persona.Name != want {
			t.Fatalf("student %d persona %q, want %q", i, s.Persona.Name, want)
		}
		if s.Ability != s.Persona.BaselineAbility {
			t.Fatalf("student %d ability %v, want baseline %v", i, s.Ability, s.Persona.BaselineAbility)
		}
	}
}

func TestNewClassroom_SameSeedSameMisconceptions(t *testing.T) {
	a := NewClassroom(8, NewHeuristicEngine(1), 42, DefaultActivationProb)
	b := NewClassroom(8, NewHeuristicEngine(1), 42, DefaultActivationProb)

	for i := range a {
		if len(a[i].Active) != len(b[i].Active) {
			t.Fatalf("student %d misconception sets diverge: %v vs %v",
				i, a[i].ActiveMisconceptionIDs(), b[i].ActiveMisconceptionIDs())
		}
		for id := range a[i].Active {
			if !b[i].Active[id] {
				t.Fatalf("student %d: %s active in one classroom only", i, id)
			}
		}
	}
}

func TestUpdateKnowledge_CorrectIsNoOp(t *testing.T) {
	s := NewStudent("s01", "Ava", mustProfile(t, "novice"), NewHeuristicEngine(1), 42, DefaultActivationProb)
	before := s.Ability
	misconceptions := len(s.Active)

	delta, corrected := s.UpdateKnowledge("fraction comparison", true)
	if delta != 0 || corrected != nil {
		t.Fatalf("correct answer changed state: delta=%v corrected=%v", delta, corrected)
	}
	if s.Ability != before || len(s.Active) != misconceptions {
		t.Fatal("correct answer mutated student")
	}
}

func TestUpdateKnowledge_WrongGainsAbility(t *testing.T) {
	p := mustProfile(t, "novice") // susceptibility 0.80
	s := NewStudent("s01", "Ava", p, NewHeuristicEngine(1), 42, 0)

	delta, _ := s.UpdateKnowledge("fraction comparison", false)
	want := 0.1 * p.Susceptibility
	if diff := delta - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("delta = %v, want %v", delta, want)
	}
	if diff := s.Ability - (p.BaselineAbility + want); diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("ability = %v, want %v", s.Ability, p.BaselineAbility+want)
	}
}

func TestUpdateKnowledge_AbilityCappedAtOne(t *testing.T) {
	s := NewStudent("s01", "Ava", mustProfile(t, "novice"), NewHeuristicEngine(1), 42, 0)
	s.Ability = 0.99

	delta, _ := s.UpdateKnowledge("fraction comparison", false)
	if s.Ability > 1.0 {
		t.Fatalf("ability exceeded 1.0: %v", s.Ability)
	}
	if diff := delta - 0.01; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("capped delta = %v, want 0.01", delta)
	}
}

func TestUpdateKnowledge_CorrectsOnlyRelevantMisconceptions(t *testing.T) {
	// Across many students, corrections must happen eventually, and only
	// ever to misconceptions relevant to the concept.
	correctedAny := false
	for i := range 50 {
		s := NewStudent(fmt.Sprintf("s%02d", i), "Ava", mustProfile(t, "novice"), NewHeuristicEngine(1), int64(i), 0)
		s.Active = map[string]bool{
			"frac-bigger-denominator": true, // relevant
			"dec-longer-is-larger":    true, // irrelevant to fractions
		}

		_, corrected := s.UpdateKnowledge("fraction comparison", false)
		for _, id := range corrected {
			if id != "frac-bigger-denominator" {
				t.Fatalf("corrected irrelevant misconception %s", id)
			}
			correctedAny = true
		}
		if !s.Active["dec-longer-is-larger"] {
			t.Fatal("irrelevant misconception removed")
		}
	}
	if !correctedAny {
		t.Fatal("no correction across 50 students at probability 0.6")
	}
}

func TestContextFor_FiltersByRelevance(t *testing.T) {
	s := NewStudent("s01", "Ava", mustProfile(t, "novice"), NewHeuristicEngine(1), 42, 0)
	s.Active = map[string]bool{
		"frac-bigger-denominator": true,
		"place-face-value":        true,
	}

	sc := s.ContextFor(testQuestion())
	if len(sc.ActiveMisconceptions) != 1 {
		t.Fatalf("expected 1 relevant misconception, got %d", len(sc.ActiveMisconceptions))
	}
	if sc.ActiveMisconceptions[0].ID != "frac-bigger-denominator" {
		t.Fatalf("wrong misconception selected: %s", sc.ActiveMisconceptions[0].ID)
	}
	if sc.Knowledge == "" {
		t.Fatal("knowledge context is empty")
	}
}

func TestStudentAnswer_ProducesInitialPosition(t *testing.T) {
	s := NewStudent("s01", "Ava", mustProfile(t, "competent"), NewHeuristicEngine(9), 42, 0)

	pos, err := s.Answer(context.Background(), testQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Turn != 0 {
		t.Fatalf("initial position turn %d, want 0", pos.Turn)
	}
	if pos.Chain == nil {
		t.Fatal("missing reasoning chain")
	}
	if pos.Confidence < 0 || pos.Confidence > 1 {
		t.Fatalf("confidence %v out of range", pos.Confidence)
	}
}

func mustProfile(t *testing.T, name string) Profile {
	t.Helper()
	p, ok := ProfileByName(name)
	if !ok {
		t.Fatalf("persona %q not found", name)
	}
	return p
}
