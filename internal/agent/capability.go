package agent

import (
	"context"

	"github.com/abhisek/classim/internal/question"
)

// Reasoner produces an initial answer and reasoning chain for a question.
type Reasoner interface {
	Answer(ctx context.Context, sc Context, q *question.Question) (string, *ReasoningChain, error)
}

// Persuader runs one debate turn: given the student's own position and
// the opponent's latest position, it returns the student's new position,
// whether they changed their mind, and the argument they voiced.
type Persuader interface {
	Debate(ctx context.Context, sc Context, q *question.Question, own, opponent Position) (*Rebuttal, error)
}

// Grader scores the quality of a reasoning chain in [0,1].
type Grader interface {
	Grade(ctx context.Context, chain *ReasoningChain, q *question.Question, correctAnswer string) (float64, error)
}

// Engine bundles the three simulated-cognition capabilities. The
// simulation depends only on this contract: the LLM engine and the
// heuristic engine are interchangeable implementations.
type Engine interface {
	Reasoner
	Persuader
	Grader
}
