package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// SessionEvent is mixed into every event logged on behalf of a browser
// or terminal session.
type SessionEvent struct {
	mixin.Schema
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Positive().
			Unique().
			Comment("Position in the merged answer and reset log"),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }),
		field.String("session_id").
			NotEmpty().
			Comment("Session cookie ID, or a per-process ID for the terminal"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp"),
	}
}
