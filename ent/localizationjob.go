// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/pkg/pipeline"
)

// LocalizationJob is the model entity for the LocalizationJob schema.
type LocalizationJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning project (ownership checks live in the API layer)
	ProjectID string `json:"project_id,omitempty"`
	// Status holds the value of the "status" field.
	Status localizationjob.Status `json:"status,omitempty"`
	// SourceAssetID holds the value of the "source_asset_id" field.
	SourceAssetID string `json:"source_asset_id,omitempty"`
	// Target languages, frozen at creation
	Languages []string `json:"languages,omitempty"`
	// VoiceProfileID holds the value of the "voice_profile_id" field.
	VoiceProfileID *string `json:"voice_profile_id,omitempty"`
	// Stage skip flags and the youtube hook switch
	Options pipeline.Options `json:"options,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LocalizationJobQuery when eager-loading is set.
	Edges        LocalizationJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LocalizationJobEdges holds the relations/edges for other nodes in the graph.
type LocalizationJobEdges struct {
	// Variants holds the value of the variants edge.
	Variants []*LocalizedVariant `json:"variants,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VariantsOrErr returns the Variants value or an error if the edge
// was not loaded in eager-loading.
func (e LocalizationJobEdges) VariantsOrErr() ([]*LocalizedVariant, error) {
	if e.loadedTypes[0] {
		return e.Variants, nil
	}
	return nil, &NotLoadedError{edge: "variants"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LocalizationJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case localizationjob.FieldLanguages, localizationjob.FieldOptions:
			values[i] = new([]byte)
		case localizationjob.FieldID, localizationjob.FieldProjectID, localizationjob.FieldStatus, localizationjob.FieldSourceAssetID, localizationjob.FieldVoiceProfileID, localizationjob.FieldCreatedBy, localizationjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case localizationjob.FieldCreatedAt, localizationjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LocalizationJob fields.
func (_m *LocalizationJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case localizationjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case localizationjob.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case localizationjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = localizationjob.Status(value.String)
			}
		case localizationjob.FieldSourceAssetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_asset_id", values[i])
			} else if value.Valid {
				_m.SourceAssetID = value.String
			}
		case localizationjob.FieldLanguages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field languages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Languages); err != nil {
					return fmt.Errorf("unmarshal field languages: %w", err)
				}
			}
		case localizationjob.FieldVoiceProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field voice_profile_id", values[i])
			} else if value.Valid {
				_m.VoiceProfileID = new(string)
				*_m.VoiceProfileID = value.String
			}
		case localizationjob.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case localizationjob.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		case localizationjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case localizationjob.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case localizationjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LocalizationJob.
// This includes values selected through modifiers, order, etc.
func (_m *LocalizationJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVariants queries the "variants" edge of the LocalizationJob entity.
func (_m *LocalizationJob) QueryVariants() *LocalizedVariantQuery {
	return NewLocalizationJobClient(_m.config).QueryVariants(_m)
}

// Update returns a builder for updating this LocalizationJob.
// Note that you need to call LocalizationJob.Unwrap() before calling this method if this LocalizationJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LocalizationJob) Update() *LocalizationJobUpdateOne {
	return NewLocalizationJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LocalizationJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LocalizationJob) Unwrap() *LocalizationJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LocalizationJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LocalizationJob) String() string {
	var builder strings.Builder
	builder.WriteString("LocalizationJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("source_asset_id=")
	builder.WriteString(_m.SourceAssetID)
	builder.WriteString(", ")
	builder.WriteString("languages=")
	builder.WriteString(fmt.Sprintf("%v", _m.Languages))
	builder.WriteString(", ")
	if v := _m.VoiceProfileID; v != nil {
		builder.WriteString("voice_profile_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// LocalizationJobs is a parsable slice of LocalizationJob.
type LocalizationJobs []*LocalizationJob
