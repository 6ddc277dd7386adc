// Code generated by ent, DO NOT EDIT.

package localizedvariant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/glocalhq/glocal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldJobID, v))
}

// Lang applies equality check predicate on the "lang" field. It's identical to LangEQ.
func Lang(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldLang, v))
}

// LastCompletedStage applies equality check predicate on the "last_completed_stage" field. It's identical to LastCompletedStageEQ.
func LastCompletedStage(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldLastCompletedStage, v))
}

// VideoURL applies equality check predicate on the "video_url" field. It's identical to VideoURLEQ.
func VideoURL(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldVideoURL, v))
}

// AudioURL applies equality check predicate on the "audio_url" field. It's identical to AudioURLEQ.
func AudioURL(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldAudioURL, v))
}

// SubsURL applies equality check predicate on the "subs_url" field. It's identical to SubsURLEQ.
func SubsURL(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldSubsURL, v))
}

// PreviewURL applies equality check predicate on the "preview_url" field. It's identical to PreviewURLEQ.
func PreviewURL(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldPreviewURL, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldJobID, v))
}

// LangEQ applies the EQ predicate on the "lang" field.
func LangEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldLang, v))
}

// LangNEQ applies the NEQ predicate on the "lang" field.
func LangNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldLang, v))
}

// LangIn applies the In predicate on the "lang" field.
func LangIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldLang, vs...))
}

// LangNotIn applies the NotIn predicate on the "lang" field.
func LangNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldLang, vs...))
}

// LangGT applies the GT predicate on the "lang" field.
func LangGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldLang, v))
}

// LangGTE applies the GTE predicate on the "lang" field.
func LangGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldLang, v))
}

// LangLT applies the LT predicate on the "lang" field.
func LangLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldLang, v))
}

// LangLTE applies the LTE predicate on the "lang" field.
func LangLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldLang, v))
}

// LangContains applies the Contains predicate on the "lang" field.
func LangContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldLang, v))
}

// LangHasPrefix applies the HasPrefix predicate on the "lang" field.
func LangHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldLang, v))
}

// LangHasSuffix applies the HasSuffix predicate on the "lang" field.
func LangHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldLang, v))
}

// LangEqualFold applies the EqualFold predicate on the "lang" field.
func LangEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldLang, v))
}

// LangContainsFold applies the ContainsFold predicate on the "lang" field.
func LangContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldLang, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldStatus, vs...))
}

// LastCompletedStageEQ applies the EQ predicate on the "last_completed_stage" field.
func LastCompletedStageEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldLastCompletedStage, v))
}

// LastCompletedStageNEQ applies the NEQ predicate on the "last_completed_stage" field.
func LastCompletedStageNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldLastCompletedStage, v))
}

// LastCompletedStageIn applies the In predicate on the "last_completed_stage" field.
func LastCompletedStageIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldLastCompletedStage, vs...))
}

// LastCompletedStageNotIn applies the NotIn predicate on the "last_completed_stage" field.
func LastCompletedStageNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldLastCompletedStage, vs...))
}

// LastCompletedStageGT applies the GT predicate on the "last_completed_stage" field.
func LastCompletedStageGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldLastCompletedStage, v))
}

// LastCompletedStageGTE applies the GTE predicate on the "last_completed_stage" field.
func LastCompletedStageGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldLastCompletedStage, v))
}

// LastCompletedStageLT applies the LT predicate on the "last_completed_stage" field.
func LastCompletedStageLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldLastCompletedStage, v))
}

// LastCompletedStageLTE applies the LTE predicate on the "last_completed_stage" field.
func LastCompletedStageLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldLastCompletedStage, v))
}

// LastCompletedStageContains applies the Contains predicate on the "last_completed_stage" field.
func LastCompletedStageContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldLastCompletedStage, v))
}

// LastCompletedStageHasPrefix applies the HasPrefix predicate on the "last_completed_stage" field.
func LastCompletedStageHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldLastCompletedStage, v))
}

// LastCompletedStageHasSuffix applies the HasSuffix predicate on the "last_completed_stage" field.
func LastCompletedStageHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldLastCompletedStage, v))
}

// LastCompletedStageIsNil applies the IsNil predicate on the "last_completed_stage" field.
func LastCompletedStageIsNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIsNull(FieldLastCompletedStage))
}

// LastCompletedStageNotNil applies the NotNil predicate on the "last_completed_stage" field.
func LastCompletedStageNotNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotNull(FieldLastCompletedStage))
}

// LastCompletedStageEqualFold applies the EqualFold predicate on the "last_completed_stage" field.
func LastCompletedStageEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldLastCompletedStage, v))
}

// LastCompletedStageContainsFold applies the ContainsFold predicate on the "last_completed_stage" field.
func LastCompletedStageContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldLastCompletedStage, v))
}

// VideoURLEQ applies the EQ predicate on the "video_url" field.
func VideoURLEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldVideoURL, v))
}

// VideoURLNEQ applies the NEQ predicate on the "video_url" field.
func VideoURLNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldVideoURL, v))
}

// VideoURLIn applies the In predicate on the "video_url" field.
func VideoURLIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldVideoURL, vs...))
}

// VideoURLNotIn applies the NotIn predicate on the "video_url" field.
func VideoURLNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldVideoURL, vs...))
}

// VideoURLGT applies the GT predicate on the "video_url" field.
func VideoURLGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldVideoURL, v))
}

// VideoURLGTE applies the GTE predicate on the "video_url" field.
func VideoURLGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldVideoURL, v))
}

// VideoURLLT applies the LT predicate on the "video_url" field.
func VideoURLLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldVideoURL, v))
}

// VideoURLLTE applies the LTE predicate on the "video_url" field.
func VideoURLLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldVideoURL, v))
}

// VideoURLContains applies the Contains predicate on the "video_url" field.
func VideoURLContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldVideoURL, v))
}

// VideoURLHasPrefix applies the HasPrefix predicate on the "video_url" field.
func VideoURLHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldVideoURL, v))
}

// VideoURLHasSuffix applies the HasSuffix predicate on the "video_url" field.
func VideoURLHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldVideoURL, v))
}

// VideoURLIsNil applies the IsNil predicate on the "video_url" field.
func VideoURLIsNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIsNull(FieldVideoURL))
}

// VideoURLNotNil applies the NotNil predicate on the "video_url" field.
func VideoURLNotNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotNull(FieldVideoURL))
}

// VideoURLEqualFold applies the EqualFold predicate on the "video_url" field.
func VideoURLEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldVideoURL, v))
}

// VideoURLContainsFold applies the ContainsFold predicate on the "video_url" field.
func VideoURLContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldVideoURL, v))
}

// AudioURLEQ applies the EQ predicate on the "audio_url" field.
func AudioURLEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldAudioURL, v))
}

// AudioURLNEQ applies the NEQ predicate on the "audio_url" field.
func AudioURLNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldAudioURL, v))
}

// AudioURLIn applies the In predicate on the "audio_url" field.
func AudioURLIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldAudioURL, vs...))
}

// AudioURLNotIn applies the NotIn predicate on the "audio_url" field.
func AudioURLNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldAudioURL, vs...))
}

// AudioURLGT applies the GT predicate on the "audio_url" field.
func AudioURLGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldAudioURL, v))
}

// AudioURLGTE applies the GTE predicate on the "audio_url" field.
func AudioURLGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldAudioURL, v))
}

// AudioURLLT applies the LT predicate on the "audio_url" field.
func AudioURLLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldAudioURL, v))
}

// AudioURLLTE applies the LTE predicate on the "audio_url" field.
func AudioURLLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldAudioURL, v))
}

// AudioURLContains applies the Contains predicate on the "audio_url" field.
func AudioURLContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldAudioURL, v))
}

// AudioURLHasPrefix applies the HasPrefix predicate on the "audio_url" field.
func AudioURLHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldAudioURL, v))
}

// AudioURLHasSuffix applies the HasSuffix predicate on the "audio_url" field.
func AudioURLHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldAudioURL, v))
}

// AudioURLIsNil applies the IsNil predicate on the "audio_url" field.
func AudioURLIsNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIsNull(FieldAudioURL))
}

// AudioURLNotNil applies the NotNil predicate on the "audio_url" field.
func AudioURLNotNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotNull(FieldAudioURL))
}

// AudioURLEqualFold applies the EqualFold predicate on the "audio_url" field.
func AudioURLEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldAudioURL, v))
}

// AudioURLContainsFold applies the ContainsFold predicate on the "audio_url" field.
func AudioURLContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldAudioURL, v))
}

// SubsURLEQ applies the EQ predicate on the "subs_url" field.
func SubsURLEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldSubsURL, v))
}

// SubsURLNEQ applies the NEQ predicate on the "subs_url" field.
func SubsURLNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldSubsURL, v))
}

// SubsURLIn applies the In predicate on the "subs_url" field.
func SubsURLIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldSubsURL, vs...))
}

// SubsURLNotIn applies the NotIn predicate on the "subs_url" field.
func SubsURLNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldSubsURL, vs...))
}

// SubsURLGT applies the GT predicate on the "subs_url" field.
func SubsURLGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldSubsURL, v))
}

// SubsURLGTE applies the GTE predicate on the "subs_url" field.
func SubsURLGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldSubsURL, v))
}

// SubsURLLT applies the LT predicate on the "subs_url" field.
func SubsURLLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldSubsURL, v))
}

// SubsURLLTE applies the LTE predicate on the "subs_url" field.
func SubsURLLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldSubsURL, v))
}

// SubsURLContains applies the Contains predicate on the "subs_url" field.
func SubsURLContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldSubsURL, v))
}

// SubsURLHasPrefix applies the HasPrefix predicate on the "subs_url" field.
func SubsURLHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldSubsURL, v))
}

// SubsURLHasSuffix applies the HasSuffix predicate on the "subs_url" field.
func SubsURLHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldSubsURL, v))
}

// SubsURLIsNil applies the IsNil predicate on the "subs_url" field.
func SubsURLIsNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIsNull(FieldSubsURL))
}

// SubsURLNotNil applies the NotNil predicate on the "subs_url" field.
func SubsURLNotNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotNull(FieldSubsURL))
}

// SubsURLEqualFold applies the EqualFold predicate on the "subs_url" field.
func SubsURLEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldSubsURL, v))
}

// SubsURLContainsFold applies the ContainsFold predicate on the "subs_url" field.
func SubsURLContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldSubsURL, v))
}

// PreviewURLEQ applies the EQ predicate on the "preview_url" field.
func PreviewURLEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldPreviewURL, v))
}

// PreviewURLNEQ applies the NEQ predicate on the "preview_url" field.
func PreviewURLNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldPreviewURL, v))
}

// PreviewURLIn applies the In predicate on the "preview_url" field.
func PreviewURLIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldPreviewURL, vs...))
}

// PreviewURLNotIn applies the NotIn predicate on the "preview_url" field.
func PreviewURLNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldPreviewURL, vs...))
}

// PreviewURLGT applies the GT predicate on the "preview_url" field.
func PreviewURLGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldPreviewURL, v))
}

// PreviewURLGTE applies the GTE predicate on the "preview_url" field.
func PreviewURLGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldPreviewURL, v))
}

// PreviewURLLT applies the LT predicate on the "preview_url" field.
func PreviewURLLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldPreviewURL, v))
}

// PreviewURLLTE applies the LTE predicate on the "preview_url" field.
func PreviewURLLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldPreviewURL, v))
}

// PreviewURLContains applies the Contains predicate on the "preview_url" field.
func PreviewURLContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldPreviewURL, v))
}

// PreviewURLHasPrefix applies the HasPrefix predicate on the "preview_url" field.
func PreviewURLHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldPreviewURL, v))
}

// PreviewURLHasSuffix applies the HasSuffix predicate on the "preview_url" field.
func PreviewURLHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldPreviewURL, v))
}

// PreviewURLIsNil applies the IsNil predicate on the "preview_url" field.
func PreviewURLIsNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIsNull(FieldPreviewURL))
}

// PreviewURLNotNil applies the NotNil predicate on the "preview_url" field.
func PreviewURLNotNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotNull(FieldPreviewURL))
}

// PreviewURLEqualFold applies the EqualFold predicate on the "preview_url" field.
func PreviewURLEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldPreviewURL, v))
}

// PreviewURLContainsFold applies the ContainsFold predicate on the "preview_url" field.
func PreviewURLContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldPreviewURL, v))
}

// ReportIsNil applies the IsNil predicate on the "report" field.
func ReportIsNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIsNull(FieldReport))
}

// ReportNotNil applies the NotNil predicate on the "report" field.
func ReportNotNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotNull(FieldReport))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.LocalizedVariant {
	return predicate.LocalizedVariant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.LocalizationJob) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LocalizedVariant) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LocalizedVariant) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LocalizedVariant) predicate.LocalizedVariant {
	return predicate.LocalizedVariant(sql.NotPredicates(p))
}
