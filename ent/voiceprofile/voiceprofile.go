// Code generated by ent, DO NOT EDIT.

package voiceprofile

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the voiceprofile type in the database.
	Label = "voice_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldProviderParams holds the string denoting the provider_params field in the database.
	FieldProviderParams = "provider_params"
	// Table holds the table name of the voiceprofile in the database.
	Table = "voice_profiles"
)

// Columns holds all SQL columns for voiceprofile fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldProvider,
	FieldProviderParams,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultProviderParams holds the default value on creation for the "provider_params" field.
	DefaultProviderParams map[string]interface{}
)

// OrderOption defines the ordering options for the VoiceProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}
