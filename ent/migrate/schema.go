// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssetsColumns holds the columns for the "assets" table.
	AssetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"video", "image", "text"}},
		{Name: "s3_url", Type: field.TypeString, Size: 2147483647},
		{Name: "meta", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AssetsTable holds the schema information for the "assets" table.
	AssetsTable = &schema.Table{
		Name:       "assets",
		Columns:    AssetsColumns,
		PrimaryKey: []*schema.Column{AssetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "asset_project_id",
				Unique:  false,
				Columns: []*schema.Column{AssetsColumns[1]},
			},
		},
	}
	// LocalizationJobsColumns holds the columns for the "localization_jobs" table.
	LocalizationJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "done", "partial", "error"}, Default: "queued"},
		{Name: "source_asset_id", Type: field.TypeString},
		{Name: "languages", Type: field.TypeJSON},
		{Name: "voice_profile_id", Type: field.TypeString, Nullable: true},
		{Name: "options", Type: field.TypeJSON},
		{Name: "created_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// LocalizationJobsTable holds the schema information for the "localization_jobs" table.
	LocalizationJobsTable = &schema.Table{
		Name:       "localization_jobs",
		Columns:    LocalizationJobsColumns,
		PrimaryKey: []*schema.Column{LocalizationJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "localizationjob_project_id",
				Unique:  false,
				Columns: []*schema.Column{LocalizationJobsColumns[1]},
			},
			{
				Name:    "localizationjob_status",
				Unique:  false,
				Columns: []*schema.Column{LocalizationJobsColumns[2]},
			},
			{
				Name:    "localizationjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{LocalizationJobsColumns[2], LocalizationJobsColumns[8]},
			},
		},
	}
	// LocalizedVariantsColumns holds the columns for the "localized_variants" table.
	LocalizedVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "lang", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "processing", "done", "error"}, Default: "queued"},
		{Name: "last_completed_stage", Type: field.TypeString, Nullable: true},
		{Name: "video_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "audio_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "subs_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "preview_url", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "report", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// LocalizedVariantsTable holds the schema information for the "localized_variants" table.
	LocalizedVariantsTable = &schema.Table{
		Name:       "localized_variants",
		Columns:    LocalizedVariantsColumns,
		PrimaryKey: []*schema.Column{LocalizedVariantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "localized_variants_localization_jobs_variants",
				Columns:    []*schema.Column{LocalizedVariantsColumns[12]},
				RefColumns: []*schema.Column{LocalizationJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "localizedvariant_job_id_lang",
				Unique:  true,
				Columns: []*schema.Column{LocalizedVariantsColumns[12], LocalizedVariantsColumns[1]},
			},
			{
				Name:    "localizedvariant_status",
				Unique:  false,
				Columns: []*schema.Column{LocalizedVariantsColumns[2]},
			},
		},
	}
	// VoiceProfilesColumns holds the columns for the "voice_profiles" table.
	VoiceProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "provider_params", Type: field.TypeJSON},
	}
	// VoiceProfilesTable holds the schema information for the "voice_profiles" table.
	VoiceProfilesTable = &schema.Table{
		Name:       "voice_profiles",
		Columns:    VoiceProfilesColumns,
		PrimaryKey: []*schema.Column{VoiceProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssetsTable,
		LocalizationJobsTable,
		LocalizedVariantsTable,
		VoiceProfilesTable,
	}
)

func init() {
	LocalizedVariantsTable.ForeignKeys[0].RefTable = LocalizationJobsTable
}
