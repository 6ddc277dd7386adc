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
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/ent/predicate"
)

// LocalizationJobUpdate is the builder for updating LocalizationJob entities.
type LocalizationJobUpdate struct {
	config
	hooks    []Hook
	mutation *LocalizationJobMutation
}

// Where appends a list predicates to the LocalizationJobUpdate builder.
func (_u *LocalizationJobUpdate) Where(ps ...predicate.LocalizationJob) *LocalizationJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *LocalizationJobUpdate) SetStatus(v localizationjob.Status) *LocalizationJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LocalizationJobUpdate) SetNillableStatus(v *localizationjob.Status) *LocalizationJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LocalizationJobUpdate) SetUpdatedAt(v time.Time) *LocalizationJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LocalizationJobUpdate) SetErrorMessage(v string) *LocalizationJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LocalizationJobUpdate) SetNillableErrorMessage(v *string) *LocalizationJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LocalizationJobUpdate) ClearErrorMessage() *LocalizationJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddVariantIDs adds the "variants" edge to the LocalizedVariant entity by IDs.
func (_u *LocalizationJobUpdate) AddVariantIDs(ids ...string) *LocalizationJobUpdate {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the LocalizedVariant entity.
func (_u *LocalizationJobUpdate) AddVariants(v ...*LocalizedVariant) *LocalizationJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// Mutation returns the LocalizationJobMutation object of the builder.
func (_u *LocalizationJobUpdate) Mutation() *LocalizationJobMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the LocalizedVariant entity.
func (_u *LocalizationJobUpdate) ClearVariants() *LocalizationJobUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to LocalizedVariant entities by IDs.
func (_u *LocalizationJobUpdate) RemoveVariantIDs(ids ...string) *LocalizationJobUpdate {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to LocalizedVariant entities.
func (_u *LocalizationJobUpdate) RemoveVariants(v ...*LocalizedVariant) *LocalizationJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LocalizationJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocalizationJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LocalizationJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocalizationJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LocalizationJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := localizationjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocalizationJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := localizationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LocalizationJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LocalizationJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(localizationjob.Table, localizationjob.Columns, sqlgraph.NewFieldSpec(localizationjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(localizationjob.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.VoiceProfileIDCleared() {
		_spec.ClearField(localizationjob.FieldVoiceProfileID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(localizationjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(localizationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(localizationjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   localizationjob.VariantsTable,
			Columns: []string{localizationjob.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   localizationjob.VariantsTable,
			Columns: []string{localizationjob.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   localizationjob.VariantsTable,
			Columns: []string{localizationjob.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{localizationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LocalizationJobUpdateOne is the builder for updating a single LocalizationJob entity.
type LocalizationJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LocalizationJobMutation
}

// SetStatus sets the "status" field.
func (_u *LocalizationJobUpdateOne) SetStatus(v localizationjob.Status) *LocalizationJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LocalizationJobUpdateOne) SetNillableStatus(v *localizationjob.Status) *LocalizationJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LocalizationJobUpdateOne) SetUpdatedAt(v time.Time) *LocalizationJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LocalizationJobUpdateOne) SetErrorMessage(v string) *LocalizationJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LocalizationJobUpdateOne) SetNillableErrorMessage(v *string) *LocalizationJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LocalizationJobUpdateOne) ClearErrorMessage() *LocalizationJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddVariantIDs adds the "variants" edge to the LocalizedVariant entity by IDs.
func (_u *LocalizationJobUpdateOne) AddVariantIDs(ids ...string) *LocalizationJobUpdateOne {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the LocalizedVariant entity.
func (_u *LocalizationJobUpdateOne) AddVariants(v ...*LocalizedVariant) *LocalizationJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// Mutation returns the LocalizationJobMutation object of the builder.
func (_u *LocalizationJobUpdateOne) Mutation() *LocalizationJobMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the LocalizedVariant entity.
func (_u *LocalizationJobUpdateOne) ClearVariants() *LocalizationJobUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to LocalizedVariant entities by IDs.
func (_u *LocalizationJobUpdateOne) RemoveVariantIDs(ids ...string) *LocalizationJobUpdateOne {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to LocalizedVariant entities.
func (_u *LocalizationJobUpdateOne) RemoveVariants(v ...*LocalizedVariant) *LocalizationJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// Where appends a list predicates to the LocalizationJobUpdate builder.
func (_u *LocalizationJobUpdateOne) Where(ps ...predicate.LocalizationJob) *LocalizationJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LocalizationJobUpdateOne) Select(field string, fields ...string) *LocalizationJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LocalizationJob entity.
func (_u *LocalizationJobUpdateOne) Save(ctx context.Context) (*LocalizationJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LocalizationJobUpdateOne) SaveX(ctx context.Context) *LocalizationJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LocalizationJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LocalizationJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LocalizationJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := localizationjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LocalizationJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := localizationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LocalizationJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LocalizationJobUpdateOne) sqlSave(ctx context.Context) (_node *LocalizationJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(localizationjob.Table, localizationjob.Columns, sqlgraph.NewFieldSpec(localizationjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LocalizationJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, localizationjob.FieldID)
		for _, f := range fields {
			if !localizationjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != localizationjob.FieldID {
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
		_spec.SetField(localizationjob.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.VoiceProfileIDCleared() {
		_spec.ClearField(localizationjob.FieldVoiceProfileID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(localizationjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(localizationjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(localizationjob.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   localizationjob.VariantsTable,
			Columns: []string{localizationjob.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   localizationjob.VariantsTable,
			Columns: []string{localizationjob.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   localizationjob.VariantsTable,
			Columns: []string{localizationjob.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LocalizationJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{localizationjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
