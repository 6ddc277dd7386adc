// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
)

// LocalizedVariantCreate is the builder for creating a LocalizedVariant entity.
type LocalizedVariantCreate struct {
	config
	mutation *LocalizedVariantMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *LocalizedVariantCreate) SetJobID(v string) *LocalizedVariantCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetLang sets the "lang" field.
func (_c *LocalizedVariantCreate) SetLang(v string) *LocalizedVariantCreate {
	_c.mutation.SetLang(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LocalizedVariantCreate) SetStatus(v localizedvariant.Status) *LocalizedVariantCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableStatus(v *localizedvariant.Status) *LocalizedVariantCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastCompletedStage sets the "last_completed_stage" field.
func (_c *LocalizedVariantCreate) SetLastCompletedStage(v string) *LocalizedVariantCreate {
	_c.mutation.SetLastCompletedStage(v)
	return _c
}

// SetNillableLastCompletedStage sets the "last_completed_stage" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableLastCompletedStage(v *string) *LocalizedVariantCreate {
	if v != nil {
		_c.SetLastCompletedStage(*v)
	}
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *LocalizedVariantCreate) SetVideoURL(v string) *LocalizedVariantCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableVideoURL(v *string) *LocalizedVariantCreate {
	if v != nil {
		_c.SetVideoURL(*v)
	}
	return _c
}

// SetAudioURL sets the "audio_url" field.
func (_c *LocalizedVariantCreate) SetAudioURL(v string) *LocalizedVariantCreate {
	_c.mutation.SetAudioURL(v)
	return _c
}

// SetNillableAudioURL sets the "audio_url" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableAudioURL(v *string) *LocalizedVariantCreate {
	if v != nil {
		_c.SetAudioURL(*v)
	}
	return _c
}

// SetSubsURL sets the "subs_url" field.
func (_c *LocalizedVariantCreate) SetSubsURL(v string) *LocalizedVariantCreate {
	_c.mutation.SetSubsURL(v)
	return _c
}

// SetNillableSubsURL sets the "subs_url" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableSubsURL(v *string) *LocalizedVariantCreate {
	if v != nil {
		_c.SetSubsURL(*v)
	}
	return _c
}

// SetPreviewURL sets the "preview_url" field.
func (_c *LocalizedVariantCreate) SetPreviewURL(v string) *LocalizedVariantCreate {
	_c.mutation.SetPreviewURL(v)
	return _c
}

// SetNillablePreviewURL sets the "preview_url" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillablePreviewURL(v *string) *LocalizedVariantCreate {
	if v != nil {
		_c.SetPreviewURL(*v)
	}
	return _c
}

// SetReport sets the "report" field.
func (_c *LocalizedVariantCreate) SetReport(v map[string]interface{}) *LocalizedVariantCreate {
	_c.mutation.SetReport(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LocalizedVariantCreate) SetErrorMessage(v string) *LocalizedVariantCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableErrorMessage(v *string) *LocalizedVariantCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LocalizedVariantCreate) SetCreatedAt(v time.Time) *LocalizedVariantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableCreatedAt(v *time.Time) *LocalizedVariantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LocalizedVariantCreate) SetUpdatedAt(v time.Time) *LocalizedVariantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LocalizedVariantCreate) SetNillableUpdatedAt(v *time.Time) *LocalizedVariantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LocalizedVariantCreate) SetID(v string) *LocalizedVariantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the LocalizationJob entity.
func (_c *LocalizedVariantCreate) SetJob(v *LocalizationJob) *LocalizedVariantCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the LocalizedVariantMutation object of the builder.
func (_c *LocalizedVariantCreate) Mutation() *LocalizedVariantMutation {
	return _c.mutation
}

// Save creates the LocalizedVariant in the database.
func (_c *LocalizedVariantCreate) Save(ctx context.Context) (*LocalizedVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LocalizedVariantCreate) SaveX(ctx context.Context) *LocalizedVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocalizedVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocalizedVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LocalizedVariantCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := localizedvariant.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := localizedvariant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := localizedvariant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LocalizedVariantCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "LocalizedVariant.job_id"`)}
	}
	if _, ok := _c.mutation.Lang(); !ok {
		return &ValidationError{Name: "lang", err: errors.New(`ent: missing required field "LocalizedVariant.lang"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LocalizedVariant.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := localizedvariant.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LocalizedVariant.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LocalizedVariant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LocalizedVariant.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "LocalizedVariant.job"`)}
	}
	return nil
}

func (_c *LocalizedVariantCreate) sqlSave(ctx context.Context) (*LocalizedVariant, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LocalizedVariant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LocalizedVariantCreate) createSpec() (*LocalizedVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &LocalizedVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(localizedvariant.Table, sqlgraph.NewFieldSpec(localizedvariant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Lang(); ok {
		_spec.SetField(localizedvariant.FieldLang, field.TypeString, value)
		_node.Lang = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(localizedvariant.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastCompletedStage(); ok {
		_spec.SetField(localizedvariant.FieldLastCompletedStage, field.TypeString, value)
		_node.LastCompletedStage = &value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(localizedvariant.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = &value
	}
	if value, ok := _c.mutation.AudioURL(); ok {
		_spec.SetField(localizedvariant.FieldAudioURL, field.TypeString, value)
		_node.AudioURL = &value
	}
	if value, ok := _c.mutation.SubsURL(); ok {
		_spec.SetField(localizedvariant.FieldSubsURL, field.TypeString, value)
		_node.SubsURL = &value
	}
	if value, ok := _c.mutation.PreviewURL(); ok {
		_spec.SetField(localizedvariant.FieldPreviewURL, field.TypeString, value)
		_node.PreviewURL = &value
	}
	if value, ok := _c.mutation.Report(); ok {
		_spec.SetField(localizedvariant.FieldReport, field.TypeJSON, value)
		_node.Report = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(localizedvariant.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(localizedvariant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(localizedvariant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   localizedvariant.JobTable,
			Columns: []string{localizedvariant.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(localizationjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LocalizedVariantCreateBulk is the builder for creating many LocalizedVariant entities in bulk.
type LocalizedVariantCreateBulk struct {
	config
	err      error
	builders []*LocalizedVariantCreate
}

// Save creates the LocalizedVariant entities in the database.
func (_c *LocalizedVariantCreateBulk) Save(ctx context.Context) ([]*LocalizedVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LocalizedVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LocalizedVariantMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LocalizedVariantCreateBulk) SaveX(ctx context.Context) []*LocalizedVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocalizedVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocalizedVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
