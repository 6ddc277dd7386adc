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
	"github.com/glocalhq/glocal/ent/localizedvariant"
)

// LocalizedVariant is the model entity for the LocalizedVariant schema.
type LocalizedVariant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// Lang holds the value of the "lang" field.
	Lang string `json:"lang,omitempty"`
	// Status holds the value of the "status" field.
	Status localizedvariant.Status `json:"status,omitempty"`
	// Duplicate/out-of-order completion guard
	LastCompletedStage *string `json:"last_completed_stage,omitempty"`
	// VideoURL holds the value of the "video_url" field.
	VideoURL *string `json:"video_url,omitempty"`
	// AudioURL holds the value of the "audio_url" field.
	AudioURL *string `json:"audio_url,omitempty"`
	// SubsURL holds the value of the "subs_url" field.
	SubsURL *string `json:"subs_url,omitempty"`
	// PreviewURL holds the value of the "preview_url" field.
	PreviewURL *string `json:"preview_url,omitempty"`
	// QC metrics
	Report map[string]interface{} `json:"report,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LocalizedVariantQuery when eager-loading is set.
	Edges        LocalizedVariantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LocalizedVariantEdges holds the relations/edges for other nodes in the graph.
type LocalizedVariantEdges struct {
	// Job holds the value of the job edge.
	Job *LocalizationJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LocalizedVariantEdges) JobOrErr() (*LocalizationJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: localizationjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LocalizedVariant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case localizedvariant.FieldReport:
			values[i] = new([]byte)
		case localizedvariant.FieldID, localizedvariant.FieldJobID, localizedvariant.FieldLang, localizedvariant.FieldStatus, localizedvariant.FieldLastCompletedStage, localizedvariant.FieldVideoURL, localizedvariant.FieldAudioURL, localizedvariant.FieldSubsURL, localizedvariant.FieldPreviewURL, localizedvariant.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case localizedvariant.FieldCreatedAt, localizedvariant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LocalizedVariant fields.
func (_m *LocalizedVariant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case localizedvariant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case localizedvariant.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case localizedvariant.FieldLang:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lang", values[i])
			} else if value.Valid {
				_m.Lang = value.String
			}
		case localizedvariant.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = localizedvariant.Status(value.String)
			}
		case localizedvariant.FieldLastCompletedStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_completed_stage", values[i])
			} else if value.Valid {
				_m.LastCompletedStage = new(string)
				*_m.LastCompletedStage = value.String
			}
		case localizedvariant.FieldVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_url", values[i])
			} else if value.Valid {
				_m.VideoURL = new(string)
				*_m.VideoURL = value.String
			}
		case localizedvariant.FieldAudioURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field audio_url", values[i])
			} else if value.Valid {
				_m.AudioURL = new(string)
				*_m.AudioURL = value.String
			}
		case localizedvariant.FieldSubsURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subs_url", values[i])
			} else if value.Valid {
				_m.SubsURL = new(string)
				*_m.SubsURL = value.String
			}
		case localizedvariant.FieldPreviewURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview_url", values[i])
			} else if value.Valid {
				_m.PreviewURL = new(string)
				*_m.PreviewURL = value.String
			}
		case localizedvariant.FieldReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Report); err != nil {
					return fmt.Errorf("unmarshal field report: %w", err)
				}
			}
		case localizedvariant.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case localizedvariant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case localizedvariant.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LocalizedVariant.
// This includes values selected through modifiers, order, etc.
func (_m *LocalizedVariant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the LocalizedVariant entity.
func (_m *LocalizedVariant) QueryJob() *LocalizationJobQuery {
	return NewLocalizedVariantClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this LocalizedVariant.
// Note that you need to call LocalizedVariant.Unwrap() before calling this method if this LocalizedVariant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LocalizedVariant) Update() *LocalizedVariantUpdateOne {
	return NewLocalizedVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LocalizedVariant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LocalizedVariant) Unwrap() *LocalizedVariant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LocalizedVariant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LocalizedVariant) String() string {
	var builder strings.Builder
	builder.WriteString("LocalizedVariant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("lang=")
	builder.WriteString(_m.Lang)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastCompletedStage; v != nil {
		builder.WriteString("last_completed_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VideoURL; v != nil {
		builder.WriteString("video_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AudioURL; v != nil {
		builder.WriteString("audio_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubsURL; v != nil {
		builder.WriteString("subs_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PreviewURL; v != nil {
		builder.WriteString("preview_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("report=")
	builder.WriteString(fmt.Sprintf("%v", _m.Report))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LocalizedVariants is a parsable slice of LocalizedVariant.
type LocalizedVariants []*LocalizedVariant
