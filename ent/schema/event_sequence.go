package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// EventSequence is a single-row table holding the next event sequence
// number.
type EventSequence struct {
	ent.Schema
}

func (EventSequence) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("next_val").
			Positive().
			Default(1),
	}
}
