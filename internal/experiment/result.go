package experiment

import (
	"github.com/abhisek/classim/internal/debate"
	"github.com/abhisek/classim/internal/tracker"
)

// QuestionResult holds everything one question's cycle produced.
type QuestionResult struct {
	QuestionID string `json:"question_id"`
	Discussed  bool   `json:"discussed"`

	MeanConfidence float64 `json:"mean_confidence"`

	Debates   []*debate.DebateResult        `json:"debates,omitempty"`
	Consensus *debate.ConsensusResult       `json:"consensus,omitempty"`
	Events    []*tracker.LearningEvent      `json:"events"`
	Metrics   *tracker.ClassLearningMetrics `json:"metrics"`
}

// ExperimentResult is the run-level aggregate, comparable across
// policies run on the same bank and seed.
type ExperimentResult struct {
	RunID   string `json:"run_id"`
	Policy  string `json:"policy"`
	Seed    int64  `json:"seed"`
	Classes int    `json:"students"`

	Questions []*QuestionResult `json:"questions"`

	// SkippedQuestions counts question cycles abandoned mid-flight
	// (cancellation or a pairing invariant violation); they are excluded
	// from every aggregate below.
	SkippedQuestions int `json:"skipped_questions"`

	MeanCorrectness     float64 `json:"mean_correctness"`
	MeanConfidence      float64 `json:"mean_confidence"`
	DiscussionRate      float64 `json:"discussion_rate"`
	GenuineLearningGain float64 `json:"genuine_learning_gain"`

	TotalDebates     int `json:"total_debates"`
	PositiveOutcomes int `json:"positive_outcomes"`
	NegativeOutcomes int `json:"negative_outcomes"`

	FallbackAnswers int64 `json:"fallback_answers"`
	FallbackDebates int64 `json:"fallback_debates"`
	FallbackGrades  int64 `json:"fallback_grades"`
}

// aggregate fills the run-level fields from the completed questions.
func (r *ExperimentResult) aggregate() {
	n := len(r.Questions)
	if n == 0 {
		return
	}

	var correctness, confidence, gain float64
	discussed := 0
	for _, qr := range r.Questions {
		correctness += qr.Metrics.CorrectRateAfter
		gain += qr.Metrics.CorrectRateAfter - qr.Metrics.CorrectRateBefore
		confidence += qr.MeanConfidence
		if qr.Discussed {
			discussed++
		}
		for _, d := range qr.Debates {
			r.TotalDebates++
			if d.Outcome.Positive() {
				r.PositiveOutcomes++
			}
			if d.Outcome.Negative() {
				r.NegativeOutcomes++
			}
		}
	}

	r.MeanCorrectness = correctness / float64(n)
	r.MeanConfidence = confidence / float64(n)
	r.DiscussionRate = float64(discussed) / float64(n)
	r.GenuineLearningGain = gain / float64(n)
}

// AllDebates returns the run's debate records in question order.
func (r *ExperimentResult) AllDebates() []*debate.DebateResult {
	var out []*debate.DebateResult
	for _, qr := range r.Questions {
		out = append(out, qr.Debates...)
	}
	return out
}

// AllEvents returns the run's learning events in question order.
func (r *ExperimentResult) AllEvents() []*tracker.LearningEvent {
	var out []*tracker.LearningEvent
	for _, qr := range r.Questions {
		out = append(out, qr.Events...)
	}
	return out
}
