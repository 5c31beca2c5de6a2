// Package debate pairs students who answered a question differently and
// runs bounded alternating-turn debates between them, classifying each
// pair's outcome and aggregating the class-wide shift in correctness.
package debate

import "github.com/abhisek/classim/internal/agent"

// DebateTurn is one append-only entry in a debate's turn log.
type DebateTurn struct {
	Turn        int            `json:"turn"`
	SpeakerID   string         `json:"speaker_id"`
	Position    agent.Position `json:"position"`
	Argument    string         `json:"argument"`
	ChangedMind bool           `json:"changed_mind"`
}

// BeliefChange records a student switching answers mid-debate.
type BeliefChange struct {
	Turn       int    `json:"turn"`
	StudentID  string `json:"student_id"`
	FromAnswer string `json:"from_answer"`
	ToAnswer   string `json:"to_answer"`
	Argument   string `json:"argument"`
	ToCorrect  bool   `json:"to_correct"`
}

// DebateResult is the immutable record of one pair's debate on one
// question.
type DebateResult struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`

	StudentA string `json:"student_a"`
	StudentB string `json:"student_b"`

	InitialAnswerA string `json:"initial_answer_a"`
	InitialAnswerB string `json:"initial_answer_b"`
	FinalAnswerA   string `json:"final_answer_a"`
	FinalAnswerB   string `json:"final_answer_b"`

	Turns         []DebateTurn   `json:"turns"`
	WinnerAnswer  string         `json:"winner_answer"`
	BeliefChanges []BeliefChange `json:"belief_changes"`

	AInitCorrect  bool `json:"a_init_correct"`
	BInitCorrect  bool `json:"b_init_correct"`
	AFinalCorrect bool `json:"a_final_correct"`
	BFinalCorrect bool `json:"b_final_correct"`

	Outcome OutcomeCategory `json:"outcome"`
}

// FinalPositionFor returns the student's final position in this debate.
func (r *DebateResult) FinalPositionFor(studentID string) (agent.Position, bool) {
	var pos agent.Position
	found := false
	for _, t := range r.Turns {
		if t.SpeakerID == studentID {
			pos = t.Position
			found = true
		}
	}
	return pos, found
}

// ConsensusResult aggregates all pairwise debates for one question into
// a class-wide before/after picture.
type ConsensusResult struct {
	QuestionID          string                  `json:"question_id"`
	DebateCount         int                     `json:"debate_count"`
	InitialCorrectCount int                     `json:"initial_correct_count"`
	FinalCorrectCount   int                     `json:"final_correct_count"`
	LearningGain        float64                 `json:"learning_gain"`
	OutcomeCounts       map[OutcomeCategory]int `json:"outcome_counts"`
	ExemplarArguments   []string                `json:"exemplar_arguments"`
}
