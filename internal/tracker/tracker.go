// Package tracker grades reasoning quality before and after discussion,
// classifies each student's learning event, and rolls per-question
// events into class-wide metrics.
package tracker

import (
	"context"
	"fmt"

	"github.com/abhisek/classim/internal/agent"
	"github.com/abhisek/classim/internal/question"
)

// DefaultQualityGainThreshold is the minimum reasoning-quality gain for
// a correctness improvement to count as genuine learning.
const DefaultQualityGainThreshold = 0.15

// LearningType tags what kind of learning (if any) a student exhibited
// on one question.
type LearningType string

const (
	// LearningGenuine is a correctness or quality improvement backed by
	// a qualifying reasoning-quality gain.
	LearningGenuine LearningType = "genuine"

	// LearningSuperficial is an answer improvement without the reasoning
	// to back it, or reasoning gain without a correct answer.
	LearningSuperficial LearningType = "superficial"

	// LearningNegative is a correct student talked out of the answer.
	LearningNegative LearningType = "negative"

	// LearningNone is no measurable change.
	LearningNone LearningType = "none"
)

// LearningEvent is the per-student, per-question learning record.
type LearningEvent struct {
	StudentID  string `json:"student_id"`
	QuestionID string `json:"question_id"`

	InitialAnswer string `json:"initial_answer"`
	FinalAnswer   string `json:"final_answer"`

	InitialQuality float64 `json:"initial_quality"`
	FinalQuality   float64 `json:"final_quality"`

	InitialCorrect bool `json:"initial_correct"`
	FinalCorrect   bool `json:"final_correct"`

	ChangedMind bool         `json:"changed_mind"`
	Type        LearningType `json:"learning_type"`

	MisconceptionsCorrected []string `json:"misconceptions_corrected"`
	AbilityDelta            float64  `json:"ability_delta"`
}

// ClassifyLearningType maps a correctness transition plus the
// reasoning-quality delta to a learning type. gain means
// qualityAfter - qualityBefore >= threshold.
func ClassifyLearningType(initCorrect, finalCorrect bool, qualityBefore, qualityAfter, threshold float64) LearningType {
	gain := qualityAfter-qualityBefore >= threshold

	switch {
	case !initCorrect && finalCorrect:
		if gain {
			return LearningGenuine
		}
		return LearningSuperficial

	case initCorrect && !finalCorrect:
		return LearningNegative

	case initCorrect && finalCorrect:
		if gain {
			return LearningGenuine
		}
		return LearningNone

	default:
		// Wrong both times.
		if gain {
			return LearningSuperficial
		}
		return LearningNone
	}
}

// Tracker builds learning events using an external reasoning grader and
// applies the post-reveal knowledge update to each student.
type Tracker struct {
	grader    agent.Grader
	threshold float64
}

// NewTracker creates a tracker grading with the given capability.
func NewTracker(grader agent.Grader) *Tracker {
	return &Tracker{grader: grader, threshold: DefaultQualityGainThreshold}
}

// Track grades the student's initial and final reasoning for one
// question, classifies the learning event, and applies the knowledge
// update (ability gain and misconception correction on a wrong final
// answer).
func (t *Tracker) Track(ctx context.Context, s *agent.Student, q *question.Question, initial, final agent.Position) (*LearningEvent, error) {
	initQuality, err := t.grader.Grade(ctx, initial.Chain, q, q.CorrectAnswer)
	if err != nil {
		return nil, fmt.Errorf("grade initial reasoning for %s: %w", s.ID, err)
	}
	finalQuality, err := t.grader.Grade(ctx, final.Chain, q, q.CorrectAnswer)
	if err != nil {
		return nil, fmt.Errorf("grade final reasoning for %s: %w", s.ID, err)
	}

	initCorrect := q.IsCorrect(initial.Answer)
	finalCorrect := q.IsCorrect(final.Answer)

	delta, corrected := s.UpdateKnowledge(q.Concept, finalCorrect)

	return &LearningEvent{
		StudentID:               s.ID,
		QuestionID:              q.ID,
		InitialAnswer:           initial.Answer,
		FinalAnswer:             final.Answer,
		InitialQuality:          initQuality,
		FinalQuality:            finalQuality,
		InitialCorrect:          initCorrect,
		FinalCorrect:            finalCorrect,
		ChangedMind:             initial.Answer != final.Answer,
		Type:                    ClassifyLearningType(initCorrect, finalCorrect, initQuality, finalQuality, t.threshold),
		MisconceptionsCorrected: corrected,
		AbilityDelta:            delta,
	}, nil
}
