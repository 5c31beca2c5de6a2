package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/abhisek/classim/internal/question"
	"github.com/abhisek/classim/internal/store"
)

// ResilientEngine decorates a primary Engine with a per-call timeout and
// a heuristic fallback. External failure or latency degrades result
// quality instead of blocking or failing the run; cancellation of the
// parent context is still honored and never falls back.
type ResilientEngine struct {
	primary  Engine
	fallback *HeuristicEngine
	timeout  time.Duration
	events   store.EventRepo

	answerFallbacks int64
	debateFallbacks int64
	gradeFallbacks  int64
}

// NewResilientEngine wraps primary with heuristic fallback. events may be
// nil when observability is not wired (tests).
func NewResilientEngine(primary Engine, fallback *HeuristicEngine, timeout time.Duration, events store.EventRepo) *ResilientEngine {
	return &ResilientEngine{
		primary:  primary,
		fallback: fallback,
		timeout:  timeout,
		events:   events,
	}
}

func (r *ResilientEngine) Answer(ctx context.Context, sc Context, q *question.Question) (string, *ReasoningChain, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	answer, chain, err := r.primary.Answer(callCtx, sc, q)
	if err == nil {
		return answer, chain, nil
	}
	if parentCanceled(ctx) {
		return "", nil, ctx.Err()
	}

	atomic.AddInt64(&r.answerFallbacks, 1)
	r.recordFallback(ctx, "reasoner", err, q.ID, sc.StudentID)
	return r.fallback.Answer(ctx, sc, q)
}

func (r *ResilientEngine) Debate(ctx context.Context, sc Context, q *question.Question, own, opponent Position) (*Rebuttal, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	reb, err := r.primary.Debate(callCtx, sc, q, own, opponent)
	if err == nil {
		return reb, nil
	}
	if parentCanceled(ctx) {
		return nil, ctx.Err()
	}

	atomic.AddInt64(&r.debateFallbacks, 1)
	r.recordFallback(ctx, "persuader", err, q.ID, sc.StudentID)
	return r.fallback.Debate(ctx, sc, q, own, opponent)
}

func (r *ResilientEngine) Grade(ctx context.Context, chain *ReasoningChain, q *question.Question, correctAnswer string) (float64, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	score, err := r.primary.Grade(callCtx, chain, q, correctAnswer)
	if err == nil {
		return score, nil
	}
	if parentCanceled(ctx) {
		return 0, ctx.Err()
	}

	atomic.AddInt64(&r.gradeFallbacks, 1)
	r.recordFallback(ctx, "grader", err, q.ID, "")
	return r.fallback.Grade(ctx, chain, q, correctAnswer)
}

// FallbackCounts returns the per-capability fallback invocation counts.
func (r *ResilientEngine) FallbackCounts() (answers, debates, grades int64) {
	return atomic.LoadInt64(&r.answerFallbacks),
		atomic.LoadInt64(&r.debateFallbacks),
		atomic.LoadInt64(&r.gradeFallbacks)
}

func (r *ResilientEngine) recordFallback(ctx context.Context, capability string, cause error, questionID, studentID string) {
	if r.events == nil {
		return
	}
	data := store.FallbackEventData{
		Capability: capability,
		Reason:     cause.Error(),
		QuestionID: questionID,
		StudentID:  studentID,
	}
	if err := r.events.AppendFallback(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log fallback event: %v\n", err)
	}
}

// parentCanceled reports whether the caller's context (not the per-call
// timeout) has been canceled.
func parentCanceled(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
