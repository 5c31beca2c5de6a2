package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent records the summary of one completed experiment run so runs
// can be compared later without re-simulating.
type RunEvent struct {
	ent.Schema
}

func (RunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Comment("UUID of the run"),
		field.String("policy").
			Comment("Discussion policy: static, adaptive, adaptive-relaxed"),
		field.Int64("seed").
			Comment("Random seed the run used"),
		field.Int("students").
			Comment("Class size"),
		field.Int("questions").
			Comment("Questions completed (skipped excluded)"),
		field.Float("mean_correctness").
			Comment("Mean final correctness rate across questions"),
		field.Float("discussion_rate").
			Comment("Fraction of questions that triggered discussion"),
		field.Float("genuine_learning_gain").
			Comment("Mean final-minus-initial correctness across questions"),
		field.Int("total_debates").
			Default(0),
		field.Int("positive_outcomes").
			Default(0).
			Comment("correct_convinced_wrong debates"),
		field.Int("negative_outcomes").
			Default(0).
			Comment("wrong_convinced_correct debates"),
		field.Int64("fallback_count").
			Default(0).
			Comment("Heuristic fallback invocations across capabilities"),
	}
}

func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("policy"),
	}
}
