package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FallbackEvent records a capability call that fell back to the
// heuristic path after the LLM failed or timed out.
type FallbackEvent struct {
	ent.Schema
}

func (FallbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FallbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("capability").
			Comment("Which capability fell back: reasoner, persuader, grader"),
		field.String("reason").
			Comment("Error that triggered the fallback"),
		field.String("question_id").
			Default("").
			Comment("Question being processed, if any"),
		field.String("student_id").
			Default("").
			Comment("Student on whose behalf the call ran, if any"),
	}
}

func (FallbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("capability"),
	}
}
