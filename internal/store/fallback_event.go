package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendFallback(ctx context.Context, data FallbackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FallbackEvent.Create().
		SetSequence(seqNum).
		SetCapability(data.Capability).
		SetReason(data.Reason).
		SetQuestionID(data.QuestionID).
		SetStudentID(data.StudentID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save fallback event: %w", err)
	}

	return nil
}

func (r *eventRepo) CountFallbacks(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT capability, COUNT(*)
		FROM fallback_events
		GROUP BY capability`)
	if err != nil {
		return nil, fmt.Errorf("count fallbacks: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var capability string
		var n int
		if err := rows.Scan(&capability, &n); err != nil {
			return nil, fmt.Errorf("scan fallback count: %w", err)
		}
		counts[capability] = n
	}
	return counts, rows.Err()
}
