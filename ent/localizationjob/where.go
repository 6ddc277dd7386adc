// Code generated by ent, DO NOT EDIT.

package localizationjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/glocalhq/glocal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldProjectID, v))
}

// SourceAssetID applies equality check predicate on the "source_asset_id" field. It's identical to SourceAssetIDEQ.
func SourceAssetID(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldSourceAssetID, v))
}

// VoiceProfileID applies equality check predicate on the "voice_profile_id" field. It's identical to VoiceProfileIDEQ.
func VoiceProfileID(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldVoiceProfileID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContainsFold(FieldProjectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldStatus, vs...))
}

// SourceAssetIDEQ applies the EQ predicate on the "source_asset_id" field.
func SourceAssetIDEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldSourceAssetID, v))
}

// SourceAssetIDNEQ applies the NEQ predicate on the "source_asset_id" field.
func SourceAssetIDNEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldSourceAssetID, v))
}

// SourceAssetIDIn applies the In predicate on the "source_asset_id" field.
func SourceAssetIDIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldSourceAssetID, vs...))
}

// SourceAssetIDNotIn applies the NotIn predicate on the "source_asset_id" field.
func SourceAssetIDNotIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldSourceAssetID, vs...))
}

// SourceAssetIDGT applies the GT predicate on the "source_asset_id" field.
func SourceAssetIDGT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldSourceAssetID, v))
}

// SourceAssetIDGTE applies the GTE predicate on the "source_asset_id" field.
func SourceAssetIDGTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldSourceAssetID, v))
}

// SourceAssetIDLT applies the LT predicate on the "source_asset_id" field.
func SourceAssetIDLT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldSourceAssetID, v))
}

// SourceAssetIDLTE applies the LTE predicate on the "source_asset_id" field.
func SourceAssetIDLTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldSourceAssetID, v))
}

// SourceAssetIDContains applies the Contains predicate on the "source_asset_id" field.
func SourceAssetIDContains(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContains(FieldSourceAssetID, v))
}

// SourceAssetIDHasPrefix applies the HasPrefix predicate on the "source_asset_id" field.
func SourceAssetIDHasPrefix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasPrefix(FieldSourceAssetID, v))
}

// SourceAssetIDHasSuffix applies the HasSuffix predicate on the "source_asset_id" field.
func SourceAssetIDHasSuffix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasSuffix(FieldSourceAssetID, v))
}

// SourceAssetIDEqualFold applies the EqualFold predicate on the "source_asset_id" field.
func SourceAssetIDEqualFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEqualFold(FieldSourceAssetID, v))
}

// SourceAssetIDContainsFold applies the ContainsFold predicate on the "source_asset_id" field.
func SourceAssetIDContainsFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContainsFold(FieldSourceAssetID, v))
}

// VoiceProfileIDEQ applies the EQ predicate on the "voice_profile_id" field.
func VoiceProfileIDEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldVoiceProfileID, v))
}

// VoiceProfileIDNEQ applies the NEQ predicate on the "voice_profile_id" field.
func VoiceProfileIDNEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldVoiceProfileID, v))
}

// VoiceProfileIDIn applies the In predicate on the "voice_profile_id" field.
func VoiceProfileIDIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldVoiceProfileID, vs...))
}

// VoiceProfileIDNotIn applies the NotIn predicate on the "voice_profile_id" field.
func VoiceProfileIDNotIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldVoiceProfileID, vs...))
}

// VoiceProfileIDGT applies the GT predicate on the "voice_profile_id" field.
func VoiceProfileIDGT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldVoiceProfileID, v))
}

// VoiceProfileIDGTE applies the GTE predicate on the "voice_profile_id" field.
func VoiceProfileIDGTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldVoiceProfileID, v))
}

// VoiceProfileIDLT applies the LT predicate on the "voice_profile_id" field.
func VoiceProfileIDLT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldVoiceProfileID, v))
}

// VoiceProfileIDLTE applies the LTE predicate on the "voice_profile_id" field.
func VoiceProfileIDLTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldVoiceProfileID, v))
}

// VoiceProfileIDContains applies the Contains predicate on the "voice_profile_id" field.
func VoiceProfileIDContains(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContains(FieldVoiceProfileID, v))
}

// VoiceProfileIDHasPrefix applies the HasPrefix predicate on the "voice_profile_id" field.
func VoiceProfileIDHasPrefix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasPrefix(FieldVoiceProfileID, v))
}

// VoiceProfileIDHasSuffix applies the HasSuffix predicate on the "voice_profile_id" field.
func VoiceProfileIDHasSuffix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasSuffix(FieldVoiceProfileID, v))
}

// VoiceProfileIDIsNil applies the IsNil predicate on the "voice_profile_id" field.
func VoiceProfileIDIsNil() predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIsNull(FieldVoiceProfileID))
}

// VoiceProfileIDNotNil applies the NotNil predicate on the "voice_profile_id" field.
func VoiceProfileIDNotNil() predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotNull(FieldVoiceProfileID))
}

// VoiceProfileIDEqualFold applies the EqualFold predicate on the "voice_profile_id" field.
func VoiceProfileIDEqualFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEqualFold(FieldVoiceProfileID, v))
}

// VoiceProfileIDContainsFold applies the ContainsFold predicate on the "voice_profile_id" field.
func VoiceProfileIDContainsFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContainsFold(FieldVoiceProfileID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasVariants applies the HasEdge predicate on the "variants" edge.
func HasVariants() predicate.LocalizationJob {
	return predicate.LocalizationJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VariantsTable, VariantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariantsWith applies the HasEdge predicate on the "variants" edge with a given conditions (other predicates).
func HasVariantsWith(preds ...predicate.LocalizedVariant) predicate.LocalizationJob {
	return predicate.LocalizationJob(func(s *sql.Selector) {
		step := newVariantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LocalizationJob) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LocalizationJob) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LocalizationJob) predicate.LocalizationJob {
	return predicate.LocalizationJob(sql.NotPredicates(p))
}
