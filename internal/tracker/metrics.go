package tracker

import "github.com/abhisek/classim/internal/question"

// ClassLearningMetrics is the per-question aggregate over all students'
// learning events.
type ClassLearningMetrics struct {
	QuestionID string `json:"question_id"`
	Concept    string `json:"concept"`

	CorrectRateBefore float64 `json:"correct_rate_before"`
	CorrectRateAfter  float64 `json:"correct_rate_after"`

	// NormalizedGain is the fraction of the possible improvement from
	// the initial rate up to 1.0 that was actually achieved.
	NormalizedGain float64 `json:"normalized_gain"`

	MeanQualityDelta float64 `json:"mean_quality_delta"`

	LearningTypeCounts map[LearningType]int `json:"learning_type_counts"`

	// DebateEffectiveness is (helped - hurt) / mindChangers, where
	// helped counts wrong-to-correct mind changers and hurt counts
	// correct-to-wrong ones. Zero when nobody changed their mind.
	DebateEffectiveness float64 `json:"debate_effectiveness"`

	MisconceptionFrequency map[string]int `json:"misconception_frequency"`
}

// ComputeClassMetrics aggregates one question's learning events.
func ComputeClassMetrics(q *question.Question, events []*LearningEvent) *ClassLearningMetrics {
	m := &ClassLearningMetrics{
		QuestionID:             q.ID,
		Concept:                q.Concept,
		LearningTypeCounts:     make(map[LearningType]int),
		MisconceptionFrequency: make(map[string]int),
	}
	if len(events) == 0 {
		return m
	}

	var initCorrect, finalCorrect int
	var qualityDelta float64
	var mindChangers, helped, hurt int

	for _, ev := range events {
		if ev.InitialCorrect {
			initCorrect++
		}
		if ev.FinalCorrect {
			finalCorrect++
		}
		qualityDelta += ev.FinalQuality - ev.InitialQuality
		m.LearningTypeCounts[ev.Type]++

		if ev.ChangedMind {
			mindChangers++
			if !ev.InitialCorrect && ev.FinalCorrect {
				helped++
			}
			if ev.InitialCorrect && !ev.FinalCorrect {
				hurt++
			}
		}

		for _, id := range ev.MisconceptionsCorrected {
			m.MisconceptionFrequency[id]++
		}
	}

	n := float64(len(events))
	m.CorrectRateBefore = float64(initCorrect) / n
	m.CorrectRateAfter = float64(finalCorrect) / n
	if m.CorrectRateBefore < 1 {
		m.NormalizedGain = (m.CorrectRateAfter - m.CorrectRateBefore) / (1 - m.CorrectRateBefore)
	}
	m.MeanQualityDelta = qualityDelta / n
	if mindChangers > 0 {
		m.DebateEffectiveness = float64(helped-hurt) / float64(mindChangers)
	}
	return m
}
