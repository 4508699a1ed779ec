package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ResetEvent records a learner clearing their score.
type ResetEvent struct {
	ent.Schema
}

func (ResetEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{SessionEvent{}}
}

func (ResetEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("attempts").
			NonNegative().
			Comment("Attempts on record when the reset happened"),
		field.Int("correct").
			NonNegative(),
	}
}
