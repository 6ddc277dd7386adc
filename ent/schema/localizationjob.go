package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/glocalhq/glocal/pkg/pipeline"
)

// LocalizationJob holds the schema definition for a localization job: one
// source asset fanned out into per-language variants.
type LocalizationJob struct {
	ent.Schema
}

// Fields of the LocalizationJob.
func (LocalizationJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable().
			Comment("Owning project (ownership checks live in the API layer)"),
		field.Enum("status").
			Values("queued", "processing", "done", "partial", "error").
			Default("queued"),
		field.String("source_asset_id").
			Immutable(),
		field.JSON("languages", []string{}).
			Immutable().
			Comment("Target languages, frozen at creation"),
		field.String("voice_profile_id").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("options", pipeline.Options{}).
			Immutable().
			Comment("Stage skip flags and the youtube hook switch"),
		field.String("created_by").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the LocalizationJob.
func (LocalizationJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("variants", LocalizedVariant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the LocalizationJob.
func (LocalizationJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
