package agent

import (
	"math/rand/v2"
	"testing"
)

func TestProfiles_WellFormed(t *testing.T) {
	profiles := Profiles()
	if len(profiles) == 0 {
		t.Fatal("no personas defined")
	}

	seen := make(map[string]bool)
	for _, p := range profiles {
		if seen[p.Name] {
			t.Fatalf("duplicate persona %q", p.Name)
		}
		seen[p.Name] = true

		if p.BaselineAbility < 0 || p.BaselineAbility > 1 {
			t.Errorf("%s: baseline ability %v out of range", p.Name, p.BaselineAbility)
		}
		if p.Susceptibility < 0 || p.Susceptibility > 1 {
			t.Errorf("%s: susceptibility %v out of range", p.Name, p.Susceptibility)
		}
		for _, c := range p.Candidates {
			if GetMisconception(c.ID) == nil {
				t.Errorf("%s: candidate %q not in taxonomy", p.Name, c.ID)
			}
			if c.Weight <= 0 || c.Weight > 1 {
				t.Errorf("%s: candidate %q weight %v out of range", p.Name, c.ID, c.Weight)
			}
		}
	}

	for _, name := range []string{"novice", "average", "competent", "overconfident"} {
		if !seen[name] {
			t.Errorf("missing persona %q", name)
		}
	}
}

func TestProfileByName(t *testing.T) {
	p, ok := ProfileByName("overconfident")
	if !ok {
		t.Fatal("overconfident persona not found")
	}
	if p.ConfidenceOffset <= 0 {
		t.Fatalf("overconfident should have a positive confidence offset, got %v", p.ConfidenceOffset)
	}

	if _, ok := ProfileByName("wizard"); ok {
		t.Fatal("unknown persona resolved")
	}
}

func TestActivateMisconceptions_ZeroProbability(t *testing.T) {
	p, _ := ProfileByName("novice")
	rng := rand.New(rand.NewPCG(1, 2))

	active := activateMisconceptions(p, 0, rng)
	if len(active) != 0 {
		t.Fatalf("probability 0 activated %v", active)
	}
}

func TestActivateMisconceptions_CertainActivation(t *testing.T) {
	p := Profile{
		Name: "test",
		Candidates: []CandidateMisconception{
			{ID: "frac-bigger-denominator", Weight: 1.0},
			{ID: "dec-longer-is-larger", Weight: 1.0},
		},
	}
	rng := rand.New(rand.NewPCG(1, 2))

	active := activateMisconceptions(p, 1.0, rng)
	if len(active) != 2 {
		t.Fatalf("weight 1.0 at probability 1.0 activated %d of 2", len(active))
	}
}

func TestActivateMisconceptions_SkipsUnknownIDs(t *testing.T) {
	p := Profile{
		Name: "test",
		Candidates: []CandidateMisconception{
			{ID: "not-a-misconception", Weight: 1.0},
		},
	}
	rng := rand.New(rand.NewPCG(1, 2))

	active := activateMisconceptions(p, 1.0, rng)
	if len(active) != 0 {
		t.Fatalf("unknown candidate activated: %v", active)
	}
}

func TestMisconceptionRelevance(t *testing.T) {
	tests := []struct {
		id      string
		concept string
		want    bool
	}{
		{"frac-bigger-denominator", "fraction comparison", true},
		{"frac-bigger-denominator", "decimal comparison", false},
		{"dec-longer-is-larger", "Decimal Comparison", true},
		{"div-always-smaller", "fraction division", true},
		{"area-perim-confusion", "area and perimeter", true},
		{"place-face-value", "multiplication properties", false},
	}

	for _, tt := range tests {
		m := GetMisconception(tt.id)
		if m == nil {
			t.Fatalf("taxonomy missing %s", tt.id)
		}
		if got := m.RelevantTo(tt.concept); got != tt.want {
			t.Errorf("%s relevant to %q = %v, want %v", tt.id, tt.concept, got, tt.want)
		}
	}
}
