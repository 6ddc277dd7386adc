// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/glocalhq/glocal/ent/asset"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/ent/schema"
	"github.com/glocalhq/glocal/ent/voiceprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assetFields := schema.Asset{}.Fields()
	_ = assetFields
	// assetDescMeta is the schema descriptor for meta field.
	assetDescMeta := assetFields[4].Descriptor()
	// asset.DefaultMeta holds the default value on creation for the meta field.
	asset.DefaultMeta = assetDescMeta.Default.(map[string]interface{})
	// assetDescCreatedAt is the schema descriptor for created_at field.
	assetDescCreatedAt := assetFields[5].Descriptor()
	// asset.DefaultCreatedAt holds the default value on creation for the created_at field.
	asset.DefaultCreatedAt = assetDescCreatedAt.Default.(func() time.Time)
	localizationjobFields := schema.LocalizationJob{}.Fields()
	_ = localizationjobFields
	// localizationjobDescCreatedAt is the schema descriptor for created_at field.
	localizationjobDescCreatedAt := localizationjobFields[8].Descriptor()
	// localizationjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	localizationjob.DefaultCreatedAt = localizationjobDescCreatedAt.Default.(func() time.Time)
	// localizationjobDescUpdatedAt is the schema descriptor for updated_at field.
	localizationjobDescUpdatedAt := localizationjobFields[9].Descriptor()
	// localizationjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	localizationjob.DefaultUpdatedAt = localizationjobDescUpdatedAt.Default.(func() time.Time)
	// localizationjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	localizationjob.UpdateDefaultUpdatedAt = localizationjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	localizedvariantFields := schema.LocalizedVariant{}.Fields()
	_ = localizedvariantFields
	// localizedvariantDescCreatedAt is the schema descriptor for created_at field.
	localizedvariantDescCreatedAt := localizedvariantFields[11].Descriptor()
	// localizedvariant.DefaultCreatedAt holds the default value on creation for the created_at field.
	localizedvariant.DefaultCreatedAt = localizedvariantDescCreatedAt.Default.(func() time.Time)
	// localizedvariantDescUpdatedAt is the schema descriptor for updated_at field.
	localizedvariantDescUpdatedAt := localizedvariantFields[12].Descriptor()
	// localizedvariant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	localizedvariant.DefaultUpdatedAt = localizedvariantDescUpdatedAt.Default.(func() time.Time)
	// localizedvariant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	localizedvariant.UpdateDefaultUpdatedAt = localizedvariantDescUpdatedAt.UpdateDefault.(func() time.Time)
	voiceprofileFields := schema.VoiceProfile{}.Fields()
	_ = voiceprofileFields
	// voiceprofileDescProviderParams is the schema descriptor for provider_params field.
	voiceprofileDescProviderParams := voiceprofileFields[3].Descriptor()
	// voiceprofile.DefaultProviderParams holds the default value on creation for the provider_params field.
	voiceprofile.DefaultProviderParams = voiceprofileDescProviderParams.Default.(map[string]interface{})
}
