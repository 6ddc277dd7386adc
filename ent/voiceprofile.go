// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/glocalhq/glocal/ent/voiceprofile"
)

// VoiceProfile is the model entity for the VoiceProfile schema.
type VoiceProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// ProviderParams holds the value of the "provider_params" field.
	ProviderParams map[string]interface{} `json:"provider_params,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VoiceProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case voiceprofile.FieldProviderParams:
			values[i] = new([]byte)
		case voiceprofile.FieldID, voiceprofile.FieldName, voiceprofile.FieldProvider:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VoiceProfile fields.
func (_m *VoiceProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case voiceprofile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case voiceprofile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case voiceprofile.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case voiceprofile.FieldProviderParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field provider_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProviderParams); err != nil {
					return fmt.Errorf("unmarshal field provider_params: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VoiceProfile.
// This includes values selected through modifiers, order, etc.
func (_m *VoiceProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this VoiceProfile.
// Note that you need to call VoiceProfile.Unwrap() before calling this method if this VoiceProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VoiceProfile) Update() *VoiceProfileUpdateOne {
	return NewVoiceProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VoiceProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VoiceProfile) Unwrap() *VoiceProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VoiceProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VoiceProfile) String() string {
	var builder strings.Builder
	builder.WriteString("VoiceProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("provider_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProviderParams))
	builder.WriteByte(')')
	return builder.String()
}

// VoiceProfiles is a parsable slice of VoiceProfile.
type VoiceProfiles []*VoiceProfile
