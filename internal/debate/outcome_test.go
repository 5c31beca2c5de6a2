package debate

import "testing"

func TestClassifyOutcome_FullDecisionTable(t *testing.T) {
	tests := []struct {
		aInit, bInit, aFinal, bFinal bool
		want                         OutcomeCategory
	}{
		// Both correct initially: finals are irrelevant.
		{true, true, true, true, OutcomeBothCorrect},
		{true, true, true, false, OutcomeBothCorrect},
		{true, true, false, true, OutcomeBothCorrect},
		{true, true, false, false, OutcomeBothCorrect},

		// Both wrong initially.
		{false, false, false, false, OutcomeBothWrongStayedWrong},
		{false, false, true, false, OutcomeBothWrongOneLearned},
		{false, false, false, true, OutcomeBothWrongOneLearned},
		{false, false, true, true, OutcomeBothWrongOneLearned},

		// A correct, B wrong: B's final is checked first.
		{true, false, true, true, OutcomeCorrectConvincedWrong},
		{true, false, false, true, OutcomeCorrectConvincedWrong},
		{true, false, false, false, OutcomeWrongConvincedCorrect},
		{true, false, true, false, OutcomeNoChange},

		// B correct, A wrong: symmetric.
		{false, true, true, true, OutcomeCorrectConvincedWrong},
		{false, true, true, false, OutcomeCorrectConvincedWrong},
		{false, true, false, false, OutcomeWrongConvincedCorrect},
		{false, true, false, true, OutcomeNoChange},
	}

	if len(tests) != 16 {
		t.Fatalf("decision table covers %d of 16 combinations", len(tests))
	}

	named := map[OutcomeCategory]bool{
		OutcomeBothCorrect:           true,
		OutcomeBothWrongOneLearned:   true,
		OutcomeBothWrongStayedWrong:  true,
		OutcomeCorrectConvincedWrong: true,
		OutcomeWrongConvincedCorrect: true,
		OutcomeNoChange:              true,
	}

	for _, tt := range tests {
		got := ClassifyOutcome(tt.aInit, tt.bInit, tt.aFinal, tt.bFinal)
		if got != tt.want {
			t.Errorf("ClassifyOutcome(%v,%v,%v,%v) = %s, want %s",
				tt.aInit, tt.bInit, tt.aFinal, tt.bFinal, got, tt.want)
		}
		if !named[got] {
			t.Errorf("ClassifyOutcome(%v,%v,%v,%v) returned unnamed category %q",
				tt.aInit, tt.bInit, tt.aFinal, tt.bFinal, got)
		}
	}
}

func TestOutcomePolarity(t *testing.T) {
	if !OutcomeCorrectConvincedWrong.Positive() {
		t.Error("correct_convinced_wrong should be positive")
	}
	if !OutcomeWrongConvincedCorrect.Negative() {
		t.Error("wrong_convinced_correct should be negative")
	}
	for _, o := range []OutcomeCategory{
		OutcomeBothCorrect, OutcomeBothWrongOneLearned,
		OutcomeBothWrongStayedWrong, OutcomeNoChange,
	} {
		if o.Positive() || o.Negative() {
			t.Errorf("%s should be neutral", o)
		}
	}
}
