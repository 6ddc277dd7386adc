// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Asset is the predicate function for asset builders.
type Asset func(*sql.Selector)

// LocalizationJob is the predicate function for localizationjob builders.
type LocalizationJob func(*sql.Selector)

// LocalizedVariant is the predicate function for localizedvariant builders.
type LocalizedVariant func(*sql.Selector)

// VoiceProfile is the predicate function for voiceprofile builders.
type VoiceProfile func(*sql.Selector)
