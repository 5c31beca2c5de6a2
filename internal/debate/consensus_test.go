package debate

import (
	"fmt"
	"testing"
)

func TestCompetitiveConsensus_CountsBothParticipants(t *testing.T) {
	results := []*DebateResult{
		{
			AInitCorrect: true, BInitCorrect: false,
			AFinalCorrect: true, BFinalCorrect: true,
			Outcome: OutcomeCorrectConvincedWrong,
		},
		{
			AInitCorrect: false, BInitCorrect: false,
			AFinalCorrect: false, BFinalCorrect: true,
			Outcome: OutcomeBothWrongOneLearned,
		},
	}

	c := CompetitiveConsensus("q-frac-1", results)
	if c.DebateCount != 2 {
		t.Fatalf("debate count %d, want 2", c.DebateCount)
	}
	if c.InitialCorrectCount != 1 || c.FinalCorrectCount != 3 {
		t.Fatalf("correct counts %d/%d, want 1/3", c.InitialCorrectCount, c.FinalCorrectCount)
	}
	// Two participants per debate: (3-1) / (2*2).
	if c.LearningGain != 0.5 {
		t.Fatalf("learning gain %v, want 0.5", c.LearningGain)
	}
	if c.OutcomeCounts[OutcomeCorrectConvincedWrong] != 1 || c.OutcomeCounts[OutcomeBothWrongOneLearned] != 1 {
		t.Fatalf("outcome histogram %v", c.OutcomeCounts)
	}
}

func TestCompetitiveConsensus_NoDebates(t *testing.T) {
	c := CompetitiveConsensus("q-frac-1", nil)
	if c.DebateCount != 0 || c.LearningGain != 0 {
		t.Fatalf("empty consensus = %+v", c)
	}
}

func TestCompetitiveConsensus_GainCanBeNegative(t *testing.T) {
	results := []*DebateResult{{
		AInitCorrect: true, BInitCorrect: false,
		AFinalCorrect: false, BFinalCorrect: false,
		Outcome: OutcomeWrongConvincedCorrect,
	}}

	c := CompetitiveConsensus("q-frac-1", results)
	if c.LearningGain != -0.5 {
		t.Fatalf("learning gain %v, want -0.5", c.LearningGain)
	}
	if c.LearningGain < -1 || c.LearningGain > 1 {
		t.Fatalf("learning gain %v outside [-1,1]", c.LearningGain)
	}
}

func TestCompetitiveConsensus_ExemplarSelection(t *testing.T) {
	var changes []BeliefChange
	for i := range 7 {
		changes = append(changes, BeliefChange{
			Turn:      i + 1,
			StudentID: "s01",
			ToCorrect: true,
			Argument:  fmt.Sprintf("argument %d", i+1),
		})
	}
	// Neither a wrong-ward change nor an empty argument qualifies.
	changes = append(changes,
		BeliefChange{Turn: 8, StudentID: "s02", ToCorrect: false, Argument: "bad direction"},
		BeliefChange{Turn: 9, StudentID: "s03", ToCorrect: true, Argument: ""},
	)

	c := CompetitiveConsensus("q-frac-1", []*DebateResult{{BeliefChanges: changes}})
	if len(c.ExemplarArguments) != 5 {
		t.Fatalf("exemplars %d, want capped 5", len(c.ExemplarArguments))
	}
	for _, arg := range c.ExemplarArguments {
		if arg == "bad direction" || arg == "" {
			t.Fatalf("unqualified argument collected: %q", arg)
		}
	}
}
