package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LocalizedVariant holds the schema definition for a per-language
// instantiation of a job. Workers fill in artifact URLs as their stage
// completes; the orchestrator owns the status column.
type LocalizedVariant struct {
	ent.Schema
}

// Fields of the LocalizedVariant.
func (LocalizedVariant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("lang").
			Immutable(),
		field.Enum("status").
			Values("queued", "processing", "done", "error").
			Default("queued"),
		field.String("last_completed_stage").
			Optional().
			Nillable().
			Comment("Duplicate/out-of-order completion guard"),
		field.Text("video_url").
			Optional().
			Nillable(),
		field.Text("audio_url").
			Optional().
			Nillable(),
		field.Text("subs_url").
			Optional().
			Nillable(),
		field.Text("preview_url").
			Optional().
			Nillable(),
		field.JSON("report", map[string]interface{}{}).
			Optional().
			Comment("QC metrics"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the LocalizedVariant.
func (LocalizedVariant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", LocalizationJob.Type).
			Ref("variants").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LocalizedVariant.
func (LocalizedVariant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "lang").
			Unique(),
		index.Fields("status"),
	}
}
