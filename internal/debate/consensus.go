package debate

// maxExemplarArguments caps the arguments collected from belief changes
// that moved a student onto the correct answer.
const maxExemplarArguments = 5

// CompetitiveConsensus folds one question's pairwise debates into a
// class-wide result: correctness counts before and after, the learning
// gain normalized by participant count, the outcome histogram, and up to
// maxExemplarArguments arguments that accompanied a wrong-to-correct
// belief change.
func CompetitiveConsensus(questionID string, results []*DebateResult) *ConsensusResult {
	out := &ConsensusResult{
		QuestionID:    questionID,
		DebateCount:   len(results),
		OutcomeCounts: make(map[OutcomeCategory]int),
	}

	for _, r := range results {
		if r.AInitCorrect {
			out.InitialCorrectCount++
		}
		if r.BInitCorrect {
			out.InitialCorrectCount++
		}
		if r.AFinalCorrect {
			out.FinalCorrectCount++
		}
		if r.BFinalCorrect {
			out.FinalCorrectCount++
		}
		out.OutcomeCounts[r.Outcome]++

		for _, bc := range r.BeliefChanges {
			if !bc.ToCorrect || bc.Argument == "" {
				continue
			}
			if len(out.ExemplarArguments) < maxExemplarArguments {
				out.ExemplarArguments = append(out.ExemplarArguments, bc.Argument)
			}
		}
	}

	if out.DebateCount > 0 {
		out.LearningGain = float64(out.FinalCorrectCount-out.InitialCorrectCount) / float64(2*out.DebateCount)
	}
	return out
}
