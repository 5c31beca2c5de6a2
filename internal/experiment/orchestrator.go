package experiment

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/classim/internal/agent"
	"github.com/abhisek/classim/internal/debate"
	"github.com/abhisek/classim/internal/question"
	"github.com/abhisek/classim/internal/tracker"
)

// Config holds everything an experiment run needs. Invalid configuration
// is fatal before any simulation work begins.
type Config struct {
	Policy        DiscussionPolicy
	Students      []*agent.Student
	Questions     *question.Source
	MaxTurns      int
	MaxConcurrent int
	Seed          int64

	// Fallbacks optionally reports heuristic-fallback invocation counts
	// for the run output. Nil when the run is heuristic-only.
	Fallbacks FallbackCounter
}

// FallbackCounter reports how often each capability fell back to the
// heuristic path.
type FallbackCounter interface {
	FallbackCounts() (answers, debates, grades int64)
}

// Validate rejects configurations the orchestrator cannot run.
func (c Config) Validate() error {
	if c.Policy == nil {
		return fmt.Errorf("discussion policy is required")
	}
	if len(c.Students) == 0 {
		return fmt.Errorf("at least one student is required")
	}
	if c.Questions == nil || c.Questions.Len() == 0 {
		return fmt.Errorf("question list is empty")
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("max concurrent must be positive, got %d", c.MaxConcurrent)
	}
	return nil
}

// Orchestrator runs the full question cycle for every question in the
// bank: answer, decide, debate, track, aggregate. It owns one debate
// engine and one tracker per run; coordination is values in, results
// out.
type Orchestrator struct {
	cfg     Config
	engine  *debate.Engine
	tracker *tracker.Tracker
	rng     *rand.Rand
}

// New validates the configuration and builds an orchestrator around the
// given debate engine and tracker.
func New(cfg Config, engine *debate.Engine, tr *tracker.Tracker) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment config: %w", err)
	}
	return &Orchestrator{
		cfg:     cfg,
		engine:  engine,
		tracker: tr,
		rng:     rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15)),
	}, nil
}

// Run executes the experiment. A question cycle either completes fully
// (heuristic fallbacks included) or is abandoned and excluded from the
// aggregates; prior questions' results always stand. The returned result
// is well-formed even when the run was cancelled partway.
func (o *Orchestrator) Run(ctx context.Context) (*ExperimentResult, error) {
	res := &ExperimentResult{
		RunID:   uuid.NewString(),
		Policy:  o.cfg.Policy.Name(),
		Seed:    o.cfg.Seed,
		Classes: len(o.cfg.Students),
	}

	questions := o.cfg.Questions.Questions()
	for i := range questions {
		q := &questions[i]
		qr, err := o.runQuestion(ctx, q)
		if err != nil {
			res.SkippedQuestions++
			fmt.Fprintf(os.Stderr, "warning: question %s abandoned: %v\n", q.ID, err)
			if ctx.Err() != nil {
				res.SkippedQuestions += len(questions) - i - 1
				break
			}
			continue
		}
		res.Questions = append(res.Questions, qr)
	}

	res.aggregate()
	if o.cfg.Fallbacks != nil {
		res.FallbackAnswers, res.FallbackDebates, res.FallbackGrades = o.cfg.Fallbacks.FallbackCounts()
	}
	return res, ctx.Err()
}

// runQuestion executes one question's full cycle. The cancellation check
// up front matters for heuristic-only runs, whose capability calls never
// block on the context.
func (o *Orchestrator) runQuestion(ctx context.Context, q *question.Question) (*QuestionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	initials, err := o.collectAnswers(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("collect answers: %w", err)
	}

	qr := &QuestionResult{QuestionID: q.ID}
	finals := make(map[string]agent.Position, len(initials))
	for id, pos := range initials {
		finals[id] = pos
	}

	if o.cfg.Policy.ShouldDiscuss(q, initials) {
		qr.Discussed = true
		debates, err := o.runDebates(ctx, q, initials)
		if err != nil {
			return nil, fmt.Errorf("debate round: %w", err)
		}
		qr.Debates = debates
		qr.Consensus = debate.CompetitiveConsensus(q.ID, debates)

		for _, d := range debates {
			for _, id := range []string{d.StudentA, d.StudentB} {
				if pos, ok := d.FinalPositionFor(id); ok {
					finals[id] = pos
				}
			}
		}
	}

	// Tracking mutates student state, so it stays sequential.
	for _, s := range o.cfg.Students {
		ev, err := o.tracker.Track(ctx, s, q, initials[s.ID], finals[s.ID])
		if err != nil {
			return nil, fmt.Errorf("track learning: %w", err)
		}
		qr.Events = append(qr.Events, ev)
	}
	qr.Metrics = tracker.ComputeClassMetrics(q, qr.Events)

	var confidence float64
	for _, pos := range finals {
		confidence += pos.Confidence
	}
	qr.MeanConfidence = confidence / float64(len(finals))

	return qr, nil
}

// collectAnswers gathers every student's independent initial answer in
// parallel, bounded by MaxConcurrent.
func (o *Orchestrator) collectAnswers(ctx context.Context, q *question.Question) (map[string]agent.Position, error) {
	positions := make([]agent.Position, len(o.cfg.Students))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.MaxConcurrent)
	for i, s := range o.cfg.Students {
		g.Go(func() error {
			pos, err := s.Answer(gctx, q)
			if err != nil {
				return err
			}
			positions[i] = pos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]agent.Position, len(positions))
	for i, s := range o.cfg.Students {
		byID[s.ID] = positions[i]
	}
	return byID, nil
}

// runDebates pairs the class and debates every pair concurrently. Turns
// within a pair stay strictly sequential inside the debate engine.
func (o *Orchestrator) runDebates(ctx context.Context, q *question.Question, initials map[string]agent.Position) ([]*debate.DebateResult, error) {
	pairs := debate.PairStudents(o.cfg.Students, initials, o.rng)
	if len(pairs) == 0 {
		return nil, nil
	}

	results := make([]*debate.DebateResult, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.MaxConcurrent)
	for i, pair := range pairs {
		g.Go(func() error {
			r, err := o.engine.Run(gctx, q, pair, initials)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
