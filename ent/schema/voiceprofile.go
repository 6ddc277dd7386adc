package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// VoiceProfile holds the schema definition for a TTS voice configuration.
// Provider parameters are opaque to the pipeline and handed to the tts
// agent as-is.
type VoiceProfile struct {
	ent.Schema
}

// Fields of the VoiceProfile.
func (VoiceProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("provider"),
		field.JSON("provider_params", map[string]interface{}{}).
			Default(map[string]interface{}{}),
	}
}
