package agent

import "strings"

// Misconception defines a known false belief a simulated student can hold.
// When active and relevant to a question's concept, it biases the
// student's reasoning toward a wrong conclusion.
type Misconception struct {
	ID          string
	Label       string
	Description string

	// Keywords are concept substrings this misconception applies to.
	// A misconception is relevant to a question when any keyword occurs
	// in the question's concept tag.
	Keywords []string
}

// registry is the package-level misconception registry, keyed by ID.
var registry map[string]*Misconception

func init() {
	registry = make(map[string]*Misconception, len(seedMisconceptions))
	for i := range seedMisconceptions {
		m := &seedMisconceptions[i]
		registry[m.ID] = m
	}
}

// GetMisconception returns a misconception by ID, or nil if not found.
func GetMisconception(id string) *Misconception {
	return registry[id]
}

// AllMisconceptions returns every misconception in the taxonomy.
func AllMisconceptions() []*Misconception {
	result := make([]*Misconception, 0, len(seedMisconceptions))
	for i := range seedMisconceptions {
		result = append(result, &seedMisconceptions[i])
	}
	return result
}

// RelevantTo reports whether the misconception applies to the given
// concept tag. Matching is case-insensitive keyword containment.
func (m *Misconception) RelevantTo(concept string) bool {
	c := strings.ToLower(concept)
	for _, kw := range m.Keywords {
		if strings.Contains(c, kw) {
			return true
		}
	}
	return false
}

// seedMisconceptions covers the concepts of the built-in question bank.
var seedMisconceptions = []Misconception{
	{
		ID:          "frac-bigger-denominator",
		Label:       "Bigger denominator means bigger fraction",
		Description: "Believes 1/4 > 1/3 because 4 > 3.",
		Keywords:    []string{"fraction"},
	},
	{
		ID:          "frac-add-straight-across",
		Label:       "Add fractions straight across",
		Description: "Adds numerators and denominators separately: 1/2 + 1/4 = 2/6.",
		Keywords:    []string{"fraction addition"},
	},
	{
		ID:          "dec-longer-is-larger",
		Label:       "Longer decimal is larger",
		Description: "Believes 0.65 > 0.8 because 65 > 8.",
		Keywords:    []string{"decimal"},
	},
	{
		ID:          "mult-always-bigger",
		Label:       "Multiplication always makes bigger",
		Description: "Expects any product to exceed both factors, including by zero.",
		Keywords:    []string{"multiplication"},
	},
	{
		ID:          "neg-smaller-from-larger",
		Label:       "Always subtract smaller from larger",
		Description: "Computes 3 - 7 as 7 - 3 = 4, ignoring sign.",
		Keywords:    []string{"negative"},
	},
	{
		ID:          "div-always-smaller",
		Label:       "Division always makes smaller",
		Description: "Expects 6 / (1/2) to be less than 6.",
		Keywords:    []string{"division", "fraction division"},
	},
	{
		ID:          "area-perim-confusion",
		Label:       "Confuses area with perimeter",
		Description: "Adds side lengths when asked for area.",
		Keywords:    []string{"area", "perimeter"},
	},
	{
		ID:          "place-face-value",
		Label:       "Digit face value",
		Description: "Reads the 5 in 352 as worth 5 rather than 50.",
		Keywords:    []string{"place value"},
	},
}
