package agent

import "math/rand/v2"

// Activation probabilities for persona misconception candidates. Both
// historical tunings are kept as named constants; construction uses the
// default unless callers opt into the aggressive variant.
const (
	// DefaultActivationProb is the standard chance that a candidate
	// misconception is active at student creation.
	DefaultActivationProb = 0.70

	// HighActivationProb seeds nearly every candidate misconception.
	// Useful for stress-testing debate correction rates.
	HighActivationProb = 0.95
)

// CandidateMisconception pairs a misconception ID with a persona-specific
// weight scaling its activation probability.
type CandidateMisconception struct {
	ID     string
	Weight float64
}

// Profile is a persona: a named bundle of default ability, confidence
// bias, persuasion susceptibility and candidate misconceptions.
// Profiles are immutable after creation.
type Profile struct {
	Name             string
	BaselineAbility  float64
	ConfidenceOffset float64
	Susceptibility   float64
	Candidates       []CandidateMisconception
}

// Profiles returns the fixed persona set in a stable order.
func Profiles() []Profile {
	return []Profile{
		{
			Name:             "novice",
			BaselineAbility:  0.35,
			ConfidenceOffset: -0.10,
			Susceptibility:   0.80,
			Candidates: []CandidateMisconception{
				{ID: "frac-bigger-denominator", Weight: 0.9},
				{ID: "frac-add-straight-across", Weight: 0.9},
				{ID: "dec-longer-is-larger", Weight: 0.8},
				{ID: "neg-smaller-from-larger", Weight: 0.7},
				{ID: "place-face-value", Weight: 0.6},
			},
		},
		{
			Name:             "average",
			BaselineAbility:  0.55,
			ConfidenceOffset: 0.0,
			Susceptibility:   0.50,
			Candidates: []CandidateMisconception{
				{ID: "frac-add-straight-across", Weight: 0.6},
				{ID: "mult-always-bigger", Weight: 0.5},
				{ID: "div-always-smaller", Weight: 0.5},
				{ID: "area-perim-confusion", Weight: 0.4},
			},
		},
		{
			Name:             "competent",
			BaselineAbility:  0.75,
			ConfidenceOffset: 0.05,
			Susceptibility:   0.30,
			Candidates: []CandidateMisconception{
				{ID: "div-always-smaller", Weight: 0.3},
				{ID: "mult-always-bigger", Weight: 0.2},
			},
		},
		{
			Name:             "overconfident",
			BaselineAbility:  0.50,
			ConfidenceOffset: 0.25,
			Susceptibility:   0.15,
			Candidates: []CandidateMisconception{
				{ID: "frac-bigger-denominator", Weight: 0.7},
				{ID: "dec-longer-is-larger", Weight: 0.6},
				{ID: "neg-smaller-from-larger", Weight: 0.5},
				{ID: "area-perim-confusion", Weight: 0.5},
			},
		},
	}
}

// ProfileByName returns the persona with the given name, or false.
func ProfileByName(name string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// activateMisconceptions draws the active misconception set for a new
// student from the profile's candidates. Each candidate activates with
// probability activationProb x weight.
func activateMisconceptions(p Profile, activationProb float64, rng *rand.Rand) map[string]bool {
	active := make(map[string]bool)
	for _, c := range p.Candidates {
		if GetMisconception(c.ID) == nil {
			continue
		}
		if rng.Float64() < activationProb*c.Weight {
			active[c.ID] = true
		}
	}
	return active
}
