package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded submission.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{SessionEvent{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exercise").
			NotEmpty().
			Comment("Exercise individual name"),
		field.String("level").
			Optional().
			Comment("Skill level of the exercise, empty if none"),
		field.String("answer").
			Comment("Trimmed text the learner entered"),
		field.String("category").
			NotEmpty().
			Comment("Checker category, or unparsable"),
		field.Bool("correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exercise"),
		index.Fields("category"),
	}
}
