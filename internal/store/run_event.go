package store

import (
	"context"
	"fmt"

	"github.com/abhisek/classim/ent"
	"github.com/abhisek/classim/ent/runevent"
)

func (r *eventRepo) AppendRun(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetPolicy(data.Policy).
		SetSeed(data.Seed).
		SetStudents(data.Students).
		SetQuestions(data.Questions).
		SetMeanCorrectness(data.MeanCorrectness).
		SetDiscussionRate(data.DiscussionRate).
		SetGenuineLearningGain(data.GenuineLearningGain).
		SetTotalDebates(data.TotalDebates).
		SetPositiveOutcomes(data.PositiveOutcomes).
		SetNegativeOutcomes(data.NegativeOutcomes).
		SetFallbackCount(data.FallbackCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryRuns(ctx context.Context, opts QueryOpts) ([]*ent.RunEvent, error) {
	q := r.client.RunEvent.Query().
		Order(ent.Desc(runevent.FieldSequence))

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	runs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}
