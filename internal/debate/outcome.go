package debate

// OutcomeCategory classifies what a pairwise debate did to the two
// participants' correctness.
type OutcomeCategory string

const (
	// OutcomeBothCorrect means both students started correct.
	OutcomeBothCorrect OutcomeCategory = "both_correct"

	// OutcomeBothWrongOneLearned means both started wrong and at least
	// one ended correct.
	OutcomeBothWrongOneLearned OutcomeCategory = "both_wrong_one_learned"

	// OutcomeBothWrongStayedWrong means both started and ended wrong.
	OutcomeBothWrongStayedWrong OutcomeCategory = "both_wrong_stayed_wrong"

	// OutcomeCorrectConvincedWrong means the correct student brought the
	// wrong one onto the correct answer.
	OutcomeCorrectConvincedWrong OutcomeCategory = "correct_convinced_wrong"

	// OutcomeWrongConvincedCorrect means the wrong student pulled the
	// correct one off the correct answer. This is the negative outcome.
	OutcomeWrongConvincedCorrect OutcomeCategory = "wrong_convinced_correct"

	// OutcomeNoChange means one student started correct and neither
	// participant's correctness changed.
	OutcomeNoChange OutcomeCategory = "no_change"

	// OutcomeUnknown is the sentinel for an unclassified result. The
	// decision table is total, so it only appears on a zero value.
	OutcomeUnknown OutcomeCategory = "unknown"
)

// Positive reports whether the outcome counts as a win for discussion.
func (o OutcomeCategory) Positive() bool {
	return o == OutcomeCorrectConvincedWrong
}

// Negative reports whether the outcome counts against discussion.
func (o OutcomeCategory) Negative() bool {
	return o == OutcomeWrongConvincedCorrect
}

// ClassifyOutcome maps the four correctness booleans of a debate to its
// outcome category. The mixed-start branch checks the wrong student's
// final answer before the correct student's slide, so a pair where both
// flipped counts as correct_convinced_wrong.
func ClassifyOutcome(aInit, bInit, aFinal, bFinal bool) OutcomeCategory {
	switch {
	case aInit && bInit:
		return OutcomeBothCorrect

	case !aInit && !bInit:
		if aFinal || bFinal {
			return OutcomeBothWrongOneLearned
		}
		return OutcomeBothWrongStayedWrong

	case aInit:
		// A correct, B wrong.
		if bFinal {
			return OutcomeCorrectConvincedWrong
		}
		if !aFinal {
			return OutcomeWrongConvincedCorrect
		}
		return OutcomeNoChange

	default:
		// B correct, A wrong.
		if aFinal {
			return OutcomeCorrectConvincedWrong
		}
		if !bFinal {
			return OutcomeWrongConvincedCorrect
		}
		return OutcomeNoChange
	}
}
