package experiment

import (
	"math"
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

// positionsFor maps sequential student ids s01.. to the given answers.
func positionsFor(answers ...string) map[string]agent.Position {
	out := make(map[string]agent.Position, len(answers))
	for i, a := range answers {
		id := string(rune('0'+(i+1)/10)) + string(rune('0'+(i+1)%10))
		out["s"+id] = agent.Position{Answer: a, Confidence: 0.5}
	}
	return out
}

func TestStaticPolicy_NeverDiscusses(t *testing.T) {
	p := StaticPolicy{}
	if p.Name() != "static" {
		t.Fatalf("name %q", p.Name())
	}
	if p.ShouldDiscuss(testQuestion(), positionsFor("A", "B", "C", "D")) {
		t.Fatal("static policy triggered discussion")
	}
}

func TestAdaptivePolicy_UnanimousClassSkips(t *testing.T) {
	p := NewAdaptivePolicy()
	// Everyone wrong the same way: zero correctness hits the floor, which
	// overrides both the band and the entropy check.
	if !p.ShouldDiscuss(testQuestion(), positionsFor("A", "A", "A", "A")) {
		t.Fatal("fully wrong class must trigger the low-correctness floor")
	}

	// Everyone right: nothing to discuss.
	if p.ShouldDiscuss(testQuestion(), positionsFor("B", "B", "B", "B")) {
		t.Fatal("unanimously correct class triggered discussion")
	}
}

func TestAdaptivePolicy_SplitInsideBandDiscusses(t *testing.T) {
	p := NewAdaptivePolicy()
	// Half right, half wrong: incorrect fraction 0.5 sits inside
	// [0.30, 0.70] and the answers disagree.
	if !p.ShouldDiscuss(testQuestion(), positionsFor("B", "B", "A", "A")) {
		t.Fatal("productive split did not trigger discussion")
	}
}

func TestAdaptivePolicy_OutsideBandSkips(t *testing.T) {
	p := NewAdaptivePolicy()
	// 7 of 8 correct: incorrect fraction 0.125 is below the default band.
	positions := positionsFor("B", "B", "B", "B", "B", "B", "B", "A")
	if p.ShouldDiscuss(testQuestion(), positions) {
		t.Fatal("default band triggered below its lower edge")
	}

	// The relaxed band reaches down to 0.15 but 0.125 is still below it.
	if NewRelaxedAdaptivePolicy().ShouldDiscuss(testQuestion(), positions) {
		t.Fatal("relaxed band triggered below its lower edge")
	}

	// 2 of 8 wrong (0.25) is inside the relaxed band but below default.
	positions = positionsFor("B", "B", "B", "B", "B", "B", "A", "A")
	if p.ShouldDiscuss(testQuestion(), positions) {
		t.Fatal("default band triggered at 0.25 incorrect")
	}
	if !NewRelaxedAdaptivePolicy().ShouldDiscuss(testQuestion(), positions) {
		t.Fatal("relaxed band missed 0.25 incorrect")
	}
}

func TestAdaptivePolicy_LowCorrectnessForcesDiscussion(t *testing.T) {
	p := NewAdaptivePolicy()
	// 1 of 5 correct (0.2) is under the floor; the 0.8 incorrect fraction
	// would otherwise fall outside the default band.
	if !p.ShouldDiscuss(testQuestion(), positionsFor("B", "A", "A", "C", "D")) {
		t.Fatal("struggling class did not force discussion")
	}
}

func TestAdaptivePolicy_EmptyPositions(t *testing.T) {
	if NewAdaptivePolicy().ShouldDiscuss(testQuestion(), nil) {
		t.Fatal("empty class triggered discussion")
	}
}

func TestAnswerEntropy(t *testing.T) {
	if h := answerEntropy(positionsFor("B", "B", "B")); h != 0 {
		t.Fatalf("unanimous entropy %v, want 0", h)
	}
	if h := answerEntropy(positionsFor("A", "A", "B", "B")); math.Abs(h-1.0) > 1e-9 {
		t.Fatalf("even two-way split entropy %v, want 1", h)
	}
	if h := answerEntropy(positionsFor("A", "B", "C", "D")); math.Abs(h-1.0) > 1e-9 {
		t.Fatalf("uniform four-way split entropy %v, want 1", h)
	}
	h := answerEntropy(positionsFor("A", "A", "A", "B"))
	if h <= 0 || h >= 1 {
		t.Fatalf("skewed split entropy %v, want strictly between 0 and 1", h)
	}
}

func TestPolicyByName(t *testing.T) {
	for name, want := range map[string]string{
		"static":           "static",
		"adaptive":         "adaptive",
		"adaptive-relaxed": "adaptive-relaxed",
	} {
		p, err := PolicyByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if p.Name() != want {
			t.Fatalf("%s resolved to %s", name, p.Name())
		}
	}

	if _, err := PolicyByName("oracle"); err == nil {
		t.Fatal("unknown policy resolved")
	}
}
