package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment persists one completed or in-progress assessment session:
// transcript, learner model snapshot, and the final report payload.
type Assessment struct {
	ent.Schema
}

// TurnRecord is the serialized form of one conversation turn.
type TurnRecord struct {
	TurnNumber int            `json:"turn_number"`
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []ToolCallSpec `json:"tool_calls,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ToolCallSpec is the serialized form of a tool call on a turn.
type ToolCallSpec struct {
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input,omitempty"`
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("UUID identifying the assessment session"),
		field.String("mode").
			NotEmpty().
			Comment("real or synthetic"),
		field.String("persona_name").
			Default("").
			Comment("Synthetic learner persona, empty in real mode"),
		field.Time("started_at").
			Comment("Session start time (UTC)"),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Session end time, nil while in progress"),
		field.Int("turn_count").
			Default(0).
			Comment("Number of learner inputs processed"),
		field.JSON("conversation", []TurnRecord{}).
			Optional().
			Comment("Full ordered transcript"),
		field.JSON("learner_model", map[string]any{}).
			Optional().
			Comment("Learner model snapshot at save time"),
		field.JSON("report", map[string]any{}).
			Optional().
			Comment("Conclusion payload, verbatim from the conclude tool"),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
		index.Fields("started_at"),
	}
}
