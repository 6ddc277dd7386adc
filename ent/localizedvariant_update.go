// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/ent/predicate"
)

// LocalizedVariantUpdate is the builder for updating LocalizedVariant entities.
type LocalizedVariantUpdate struct {
	config
	hooks    []Hook
	mutation *LocalizedVariantMutation
}

// Where appends a list predicates to the LocalizedVariantUpdate builder.
func (_u *LocalizedVariantUpdate) Where(ps ...predicate.LocalizedVariant) *LocalizedVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LocalizedVariantUpdate) SetStatus(v localizedvariant.Status) *LocalizedVariantUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LocalizedVariantUpdate) SetNillableStatus(v *localizedvariant.Status) *LocalizedVariantUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastCompletedStage sets the "last_completed_stage" field.
func (_u *LocalizedVariantUpdate) SetLastCompletedStage(v string) *LocalizedVariantUpdate {
	_u.mutation.SetLastCompletedStage(v)
	return _u
}

// SetNillableLastCompletedStage sets the "last_completed_stage" field if the given value is not nil.
func (_u *LocalizedVariantUpdate) SetNillableLastCompletedStage(v *string) *LocalizedVariantUpdate {
	if v != nil {
		_u.SetLastCompletedStage(*v)
	}
	return _u
}

// ClearLastCompletedStage clears the value of the "last_completed_stage" field.
func (_u *LocalizedVariantUpdate) ClearLastCompletedStage() *LocalizedVariantUpdate {
	_u.mutation.ClearLastCompletedStage()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *LocalizedVariantUpdate) SetVideoURL(v string) *LocalizedVariantUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdate) SetNillableVideoURL(v *string) *LocalizedVariantUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *LocalizedVariantUpdate) ClearVideoURL() *LocalizedVariantUpdate {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *LocalizedVariantUpdate) SetAudioURL(v string) *LocalizedVariantUpdate {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdate) SetNillableAudioURL(v *string) *LocalizedVariantUpdate {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *LocalizedVariantUpdate) ClearAudioURL() *LocalizedVariantUpdate {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetSubsURL sets the "subs_url" field.
func (_u *LocalizedVariantUpdate) SetSubsURL(v string) *LocalizedVariantUpdate {
	_u.mutation.SetSubsURL(v)
	return _u
}

// SetNillableSubsURL sets the "subs_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdate) SetNillableSubsURL(v *string) *LocalizedVariantUpdate {
	if v != nil {
		_u.SetSubsURL(*v)
	}
	return _u
}

// ClearSubsURL clears the value of the "subs_url" field.
func (_u *LocalizedVariantUpdate) ClearSubsURL() *LocalizedVariantUpdate {
	_u.mutation.ClearSubsURL()
	return _u
}

// SetPreviewURL sets the "preview_url" field.
func (_u *LocalizedVariantUpdate) SetPreviewURL(v string) *LocalizedVariantUpdate {
	_u.mutation.SetPreviewURL(v)
	return _u
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdate) SetNillablePreviewURL(v *string) *LocalizedVariantUpdate {
	if v != nil {
		_u.SetPreviewURL(*v)
	}
	return _u
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (_u *LocalizedVariantUpdate) ClearPreviewURL() *LocalizedVariantUpdate {
	_u.mutation.ClearPreviewURL()
	return _u
}

// SetReport sets the "report" field.
func (_u *LocalizedVariantUpdate) SetReport(v map[string]interface{}) *LocalizedVariantUpdate {
	_u.mutation.SetReport(v)
	return _u
}

// ClearReport clears the value of the "report" field.
func (_u *LocalizedVariantUpdate) ClearReport() *LocalizedVariantUpdate {
	_u.mutation.ClearReport()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LocalizedVariantUpdate) SetErrorMessage(v string) *LocalizedVariantUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LocalizedVariantUpdate) SetNillableErrorMessage(v *string) *LocalizedVariantUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LocalizedVariantUpdate) ClearErrorMessage() *LocalizedVariantUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LocalizedVariantUpdate) SetUpdatedAt(v time.Time) *LocalizedVariantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LocalizedVariantMutation object of the builder.
func (_u *LocalizedVariantUpdate) Mutation() *LocalizedVariantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocalizedVariantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocalizedVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocalizedVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocalizedVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LocalizedVariantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := localizedvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocalizedVariantUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := localizedvariant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LocalizedVariant.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LocalizedVariant.job"`)
	}
	return nil
}

func (_u *LocalizedVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(localizedvariant.Table, localizedvariant.Columns, sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(localizedvariant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastCompletedStage(); ok {
		_spec.SetField(localizedvariant.FieldLastCompletedStage, field.TypeString, value)
	}
	if _u.mutation.LastCompletedStageCleared() {
		_spec.ClearField(localizedvariant.FieldLastCompletedStage, field.TypeString)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(localizedvariant.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(localizedvariant.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(localizedvariant.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(localizedvariant.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.SubsURL(); ok {
		_spec.SetField(localizedvariant.FieldSubsURL, field.TypeString, value)
	}
	if _u.mutation.SubsURLCleared() {
		_spec.ClearField(localizedvariant.FieldSubsURL, field.TypeString)
	}
	if value, ok := _u.mutation.PreviewURL(); ok {
		_spec.SetField(localizedvariant.FieldPreviewURL, field.TypeString, value)
	}
	if _u.mutation.PreviewURLCleared() {
		_spec.ClearField(localizedvariant.FieldPreviewURL, field.TypeString)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(localizedvariant.FieldReport, field.TypeJSON, value)
	}
	if _u.mutation.ReportCleared() {
		_spec.ClearField(localizedvariant.FieldReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(localizedvariant.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(localizedvariant.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(localizedvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{localizedvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocalizedVariantUpdateOne is the builder for updating a single LocalizedVariant entity.
type LocalizedVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocalizedVariantMutation
}

// SetStatus sets the "status" field.
func (_u *LocalizedVariantUpdateOne) SetStatus(v localizedvariant.Status) *LocalizedVariantUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LocalizedVariantUpdateOne) SetNillableStatus(v *localizedvariant.Status) *LocalizedVariantUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastCompletedStage sets the "last_completed_stage" field.
func (_u *LocalizedVariantUpdateOne) SetLastCompletedStage(v string) *LocalizedVariantUpdateOne {
	_u.mutation.SetLastCompletedStage(v)
	return _u
}

// SetNillableLastCompletedStage sets the "last_completed_stage" field if the given value is not nil.
func (_u *LocalizedVariantUpdateOne) SetNillableLastCompletedStage(v *string) *LocalizedVariantUpdateOne {
	if v != nil {
		_u.SetLastCompletedStage(*v)
	}
	return _u
}

// ClearLastCompletedStage clears the value of the "last_completed_stage" field.
func (_u *LocalizedVariantUpdateOne) ClearLastCompletedStage() *LocalizedVariantUpdateOne {
	_u.mutation.ClearLastCompletedStage()
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *LocalizedVariantUpdateOne) SetVideoURL(v string) *LocalizedVariantUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdateOne) SetNillableVideoURL(v *string) *LocalizedVariantUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// ClearVideoURL clears the value of the "video_url" field.
func (_u *LocalizedVariantUpdateOne) ClearVideoURL() *LocalizedVariantUpdateOne {
	_u.mutation.ClearVideoURL()
	return _u
}

// SetAudioURL sets the "audio_url" field.
func (_u *LocalizedVariantUpdateOne) SetAudioURL(v string) *LocalizedVariantUpdateOne {
	_u.mutation.SetAudioURL(v)
	return _u
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdateOne) SetNillableAudioURL(v *string) *LocalizedVariantUpdateOne {
	if v != nil {
		_u.SetAudioURL(*v)
	}
	return _u
}

// ClearAudioURL clears the value of the "audio_url" field.
func (_u *LocalizedVariantUpdateOne) ClearAudioURL() *LocalizedVariantUpdateOne {
	_u.mutation.ClearAudioURL()
	return _u
}

// SetSubsURL sets the "subs_url" field.
func (_u *LocalizedVariantUpdateOne) SetSubsURL(v string) *LocalizedVariantUpdateOne {
	_u.mutation.SetSubsURL(v)
	return _u
}

// SetNillableSubsURL sets the "subs_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdateOne) SetNillableSubsURL(v *string) *LocalizedVariantUpdateOne {
	if v != nil {
		_u.SetSubsURL(*v)
	}
	return _u
}

// ClearSubsURL clears the value of the "subs_url" field.
func (_u *LocalizedVariantUpdateOne) ClearSubsURL() *LocalizedVariantUpdateOne {
	_u.mutation.ClearSubsURL()
	return _u
}

// SetPreviewURL sets the "preview_url" field.
func (_u *LocalizedVariantUpdateOne) SetPreviewURL(v string) *LocalizedVariantUpdateOne {
	_u.mutation.SetPreviewURL(v)
	return _u
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_u *LocalizedVariantUpdateOne) SetNillablePreviewURL(v *string) *LocalizedVariantUpdateOne {
	if v != nil {
		_u.SetPreviewURL(*v)
	}
	return _u
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (_u *LocalizedVariantUpdateOne) ClearPreviewURL() *LocalizedVariantUpdateOne {
	_u.mutation.ClearPreviewURL()
	return _u
}

// SetReport sets the "report" field.
func (_u *LocalizedVariantUpdateOne) SetReport(v map[string]interface{}) *LocalizedVariantUpdateOne {
	_u.mutation.SetReport(v)
	return _u
}

// ClearReport clears the value of the "report" field.
func (_u *LocalizedVariantUpdateOne) ClearReport() *LocalizedVariantUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LocalizedVariantUpdateOne) SetErrorMessage(v string) *LocalizedVariantUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LocalizedVariantUpdateOne) SetNillableErrorMessage(v *string) *LocalizedVariantUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LocalizedVariantUpdateOne) ClearErrorMessage() *LocalizedVariantUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LocalizedVariantUpdateOne) SetUpdatedAt(v time.Time) *LocalizedVariantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LocalizedVariantMutation object of the builder.
func (_u *LocalizedVariantUpdateOne) Mutation() *LocalizedVariantMutation {
	return _u.mutation
}

// Where appends a list predicates to the LocalizedVariantUpdate builder.
func (_u *LocalizedVariantUpdateOne) Where(ps ...predicate.LocalizedVariant) *LocalizedVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocalizedVariantUpdateOne) Select(field string, fields ...string) *LocalizedVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LocalizedVariant entity.
func (_u *LocalizedVariantUpdateOne) Save(ctx context.Context) (*LocalizedVariant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocalizedVariantUpdateOne) SaveX(ctx context.Context) *LocalizedVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocalizedVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocalizedVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LocalizedVariantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := localizedvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocalizedVariantUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := localizedvariant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LocalizedVariant.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LocalizedVariant.job"`)
	}
	return nil
}

func (_u *LocalizedVariantUpdateOne) sqlSave(ctx context.Context) (_node *LocalizedVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(localizedvariant.Table, localizedvariant.Columns, sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LocalizedVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, localizedvariant.FieldID)
		for _, f := range fields {
			if !localizedvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != localizedvariant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(localizedvariant.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastCompletedStage(); ok {
		_spec.SetField(localizedvariant.FieldLastCompletedStage, field.TypeString, value)
	}
	if _u.mutation.LastCompletedStageCleared() {
		_spec.ClearField(localizedvariant.FieldLastCompletedStage, field.TypeString)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(localizedvariant.FieldVideoURL, field.TypeString, value)
	}
	if _u.mutation.VideoURLCleared() {
		_spec.ClearField(localizedvariant.FieldVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.AudioURL(); ok {
		_spec.SetField(localizedvariant.FieldAudioURL, field.TypeString, value)
	}
	if _u.mutation.AudioURLCleared() {
		_spec.ClearField(localizedvariant.FieldAudioURL, field.TypeString)
	}
	if value, ok := _u.mutation.SubsURL(); ok {
		_spec.SetField(localizedvariant.FieldSubsURL, field.TypeString, value)
	}
	if _u.mutation.SubsURLCleared() {
		_spec.ClearField(localizedvariant.FieldSubsURL, field.TypeString)
	}
	if value, ok := _u.mutation.PreviewURL(); ok {
		_spec.SetField(localizedvariant.FieldPreviewURL, field.TypeString, value)
	}
	if _u.mutation.PreviewURLCleared() {
		_spec.ClearField(localizedvariant.FieldPreviewURL, field.TypeString)
	}
	if value, ok := _u.mutation.Report(); ok {
		_spec.SetField(localizedvariant.FieldReport, field.TypeJSON, value)
	}
	if _u.mutation.ReportCleared() {
		_spec.ClearField(localizedvariant.FieldReport, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(localizedvariant.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(localizedvariant.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(localizedvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LocalizedVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{localizedvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
