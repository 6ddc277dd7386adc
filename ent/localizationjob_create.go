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
	"github.com/glocalhq/glocal/pkg/pipeline"
)

// LocalizationJobCreate is the builder for creating a LocalizationJob entity.
type LocalizationJobCreate struct {
	config
	mutation *LocalizationJobMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *LocalizationJobCreate) SetProjectID(v string) *LocalizationJobCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LocalizationJobCreate) SetStatus(v localizationjob.Status) *LocalizationJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LocalizationJobCreate) SetNillableStatus(v *localizationjob.Status) *LocalizationJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSourceAssetID sets the "source_asset_id" field.
func (_c *LocalizationJobCreate) SetSourceAssetID(v string) *LocalizationJobCreate {
	_c.mutation.SetSourceAssetID(v)
	return _c
}

// SetLanguages sets the "languages" field.
func (_c *LocalizationJobCreate) SetLanguages(v []string) *LocalizationJobCreate {
	_c.mutation.SetLanguages(v)
	return _c
}

// SetVoiceProfileID sets the "voice_profile_id" field.
func (_c *LocalizationJobCreate) SetVoiceProfileID(v string) *LocalizationJobCreate {
	_c.mutation.SetVoiceProfileID(v)
	return _c
}

// SetNillableVoiceProfileID sets the "voice_profile_id" field if the given value is not nil.
func (_c *LocalizationJobCreate) SetNillableVoiceProfileID(v *string) *LocalizationJobCreate {
	if v != nil {
		_c.SetVoiceProfileID(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *LocalizationJobCreate) SetOptions(v pipeline.Options) *LocalizationJobCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *LocalizationJobCreate) SetCreatedBy(v string) *LocalizationJobCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LocalizationJobCreate) SetCreatedAt(v time.Time) *LocalizationJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LocalizationJobCreate) SetNillableCreatedAt(v *time.Time) *LocalizationJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LocalizationJobCreate) SetUpdatedAt(v time.Time) *LocalizationJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LocalizationJobCreate) SetNillableUpdatedAt(v *time.Time) *LocalizationJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LocalizationJobCreate) SetErrorMessage(v string) *LocalizationJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LocalizationJobCreate) SetNillableErrorMessage(v *string) *LocalizationJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LocalizationJobCreate) SetID(v string) *LocalizationJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddVariantIDs adds the "variants" edge to the LocalizedVariant entity by IDs.
func (_c *LocalizationJobCreate) AddVariantIDs(ids ...string) *LocalizationJobCreate {
	_c.mutation.AddVariantIDs(ids...)
	return _c
}

// AddVariants adds the "variants" edges to the LocalizedVariant entity.
func (_c *LocalizationJobCreate) AddVariants(v ...*LocalizedVariant) *LocalizationJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVariantIDs(ids...)
}

// Mutation returns the LocalizationJobMutation object of the builder.
func (_c *LocalizationJobCreate) Mutation() *LocalizationJobMutation {
	return _c.mutation
}

// Save creates the LocalizationJob in the database.
func (_c *LocalizationJobCreate) Save(ctx context.Context) (*LocalizationJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LocalizationJobCreate) SaveX(ctx context.Context) *LocalizationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocalizationJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocalizationJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LocalizationJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := localizationjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := localizationjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := localizationjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LocalizationJobCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "LocalizationJob.project_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LocalizationJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := localizationjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LocalizationJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceAssetID(); !ok {
		return &ValidationError{Name: "source_asset_id", err: errors.New(`ent: missing required field "LocalizationJob.source_asset_id"`)}
	}
	if _, ok := _c.mutation.Languages(); !ok {
		return &ValidationError{Name: "languages", err: errors.New(`ent: missing required field "LocalizationJob.languages"`)}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "LocalizationJob.options"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "LocalizationJob.created_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LocalizationJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LocalizationJob.updated_at"`)}
	}
	return nil
}

func (_c *LocalizationJobCreate) sqlSave(ctx context.Context) (*LocalizationJob, error) {
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
			return nil, fmt.Errorf("unexpected LocalizationJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LocalizationJobCreate) createSpec() (*LocalizationJob, *sqlgraph.CreateSpec) {
	var (
		_node = &LocalizationJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(localizationjob.Table, sqlgraph.NewFieldSpec(localizationjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(localizationjob.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(localizationjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SourceAssetID(); ok {
		_spec.SetField(localizationjob.FieldSourceAssetID, field.TypeString, value)
		_node.SourceAssetID = value
	}
	if value, ok := _c.mutation.Languages(); ok {
		_spec.SetField(localizationjob.FieldLanguages, field.TypeJSON, value)
		_node.Languages = value
	}
	if value, ok := _c.mutation.VoiceProfileID(); ok {
		_spec.SetField(localizationjob.FieldVoiceProfileID, field.TypeString, value)
		_node.VoiceProfileID = &value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(localizationjob.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(localizationjob.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(localizationjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(localizationjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(localizationjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.VariantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LocalizationJobCreateBulk is the builder for creating many LocalizationJob entities in bulk.
type LocalizationJobCreateBulk struct {
	config
	err      error
	builders []*LocalizationJobCreate
}

// Save creates the LocalizationJob entities in the database.
func (_c *LocalizationJobCreateBulk) Save(ctx context.Context) ([]*LocalizationJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LocalizationJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LocalizationJobMutation)
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
func (_c *LocalizationJobCreateBulk) SaveX(ctx context.Context) []*LocalizationJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LocalizationJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LocalizationJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
