package debate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/classim/internal/agent"
	"github.com/abhisek/classim/internal/question"
)

// DefaultMaxTurns is the default number of debate rounds per pair. Each
// round gives both students one speaking turn, so a debate holds at most
// 2 x maxTurns turns.
const DefaultMaxTurns = 3

// Engine runs bounded alternating-turn debates between paired students.
type Engine struct {
	maxTurns int
}

// NewEngine creates a debate engine. maxTurns must be positive.
func NewEngine(maxTurns int) (*Engine, error) {
	if maxTurns <= 0 {
		return nil, fmt.Errorf("max turns must be positive, got %d", maxTurns)
	}
	return &Engine{maxTurns: maxTurns}, nil
}

// Run debates one pair on one question starting from their initial
// positions. Speakers alternate, A first. The debate halts the instant
// both current answers match, or after maxTurns rounds with possibly
// divergent positions. A missing initial position for either student is
// an invariant violation in pairing and returns an error.
func (e *Engine) Run(ctx context.Context, q *question.Question, pair Pair, positions map[string]agent.Position) (*DebateResult, error) {
	initA, okA := positions[pair.A.ID]
	initB, okB := positions[pair.B.ID]
	if !okA || !okB {
		return nil, fmt.Errorf("debate pair references student without an initial position (%s, %s)", pair.A.ID, pair.B.ID)
	}

	students := [2]*agent.Student{pair.A, pair.B}
	current := [2]agent.Position{initA, initB}

	result := &DebateResult{
		ID:             uuid.NewString(),
		QuestionID:     q.ID,
		StudentA:       pair.A.ID,
		StudentB:       pair.B.ID,
		InitialAnswerA: initA.Answer,
		InitialAnswerB: initB.Answer,
	}

	turnIndex := 0
rounds:
	for round := 0; round < e.maxTurns; round++ {
		for idx := range 2 {
			if current[0].Answer == current[1].Answer {
				break rounds
			}

			speaker := students[idx]
			own, opponent := current[idx], current[1-idx]

			reb, err := speaker.Debate(ctx, q, own, opponent)
			if err != nil {
				return nil, fmt.Errorf("debate %s on %s: %w", result.ID, q.ID, err)
			}

			turnIndex++
			result.Turns = append(result.Turns, DebateTurn{
				Turn:        turnIndex,
				SpeakerID:   speaker.ID,
				Position:    reb.Position,
				Argument:    reb.Argument,
				ChangedMind: reb.ChangedMind,
			})
			if reb.ChangedMind {
				result.BeliefChanges = append(result.BeliefChanges, BeliefChange{
					Turn:       turnIndex,
					StudentID:  speaker.ID,
					FromAnswer: own.Answer,
					ToAnswer:   reb.Position.Answer,
					Argument:   reb.Argument,
					ToCorrect:  q.IsCorrect(reb.Position.Answer),
				})
			}
			current[idx] = reb.Position
		}
	}

	result.FinalAnswerA = current[0].Answer
	result.FinalAnswerB = current[1].Answer
	result.WinnerAnswer = resolveWinner(current[0], current[1])

	result.AInitCorrect = q.IsCorrect(initA.Answer)
	result.BInitCorrect = q.IsCorrect(initB.Answer)
	result.AFinalCorrect = q.IsCorrect(current[0].Answer)
	result.BFinalCorrect = q.IsCorrect(current[1].Answer)
	result.Outcome = ClassifyOutcome(result.AInitCorrect, result.BInitCorrect, result.AFinalCorrect, result.BFinalCorrect)

	for idx, s := range students {
		s.RecordDebate(agent.HistoryEntry{
			QuestionID:  q.ID,
			DebateID:    result.ID,
			ChangedMind: current[idx].Answer != positions[s.ID].Answer,
		})
	}

	return result, nil
}

// resolveWinner picks the debate's winning answer: the higher-confidence
// position when the finals disagree, the shared answer otherwise. A
// confidence tie takes A's answer.
func resolveWinner(a, b agent.Position) string {
	if a.Answer == b.Answer {
		return a.Answer
	}
	if b.Confidence > a.Confidence {
		return b.Answer
	}
	return a.Answer
}
