// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/glocalhq/glocal/ent/voiceprofile"
)

// VoiceProfileCreate is the builder for creating a VoiceProfile entity.
type VoiceProfileCreate struct {
	config
	mutation *VoiceProfileMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *VoiceProfileCreate) SetName(v string) *VoiceProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *VoiceProfileCreate) SetProvider(v string) *VoiceProfileCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetProviderParams sets the "provider_params" field.
func (_c *VoiceProfileCreate) SetProviderParams(v map[string]interface{}) *VoiceProfileCreate {
	_c.mutation.SetProviderParams(v)
	return _c
}

// SetID sets the "id" field.
func (_c *VoiceProfileCreate) SetID(v string) *VoiceProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VoiceProfileMutation object of the builder.
func (_c *VoiceProfileCreate) Mutation() *VoiceProfileMutation {
	return _c.mutation
}

// Save creates the VoiceProfile in the database.
func (_c *VoiceProfileCreate) Save(ctx context.Context) (*VoiceProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VoiceProfileCreate) SaveX(ctx context.Context) *VoiceProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoiceProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoiceProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VoiceProfileCreate) defaults() {
	if _, ok := _c.mutation.ProviderParams(); !ok {
		v := voiceprofile.DefaultProviderParams
		_c.mutation.SetProviderParams(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VoiceProfileCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "VoiceProfile.name"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "VoiceProfile.provider"`)}
	}
	if _, ok := _c.mutation.ProviderParams(); !ok {
		return &ValidationError{Name: "provider_params", err: errors.New(`ent: missing required field "VoiceProfile.provider_params"`)}
	}
	return nil
}

func (_c *VoiceProfileCreate) sqlSave(ctx context.Context) (*VoiceProfile, error) {
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
			return nil, fmt.Errorf("unexpected VoiceProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VoiceProfileCreate) createSpec() (*VoiceProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &VoiceProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(voiceprofile.Table, sqlgraph.NewFieldSpec(voiceprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(voiceprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(voiceprofile.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ProviderParams(); ok {
		_spec.SetField(voiceprofile.FieldProviderParams, field.TypeJSON, value)
		_node.ProviderParams = value
	}
	return _node, _spec
}

// VoiceProfileCreateBulk is the builder for creating many VoiceProfile entities in bulk.
type VoiceProfileCreateBulk struct {
	config
	err      error
	builders []*VoiceProfileCreate
}

// Save creates the VoiceProfile entities in the database.
func (_c *VoiceProfileCreateBulk) Save(ctx context.Context) ([]*VoiceProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VoiceProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VoiceProfileMutation)
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
func (_c *VoiceProfileCreateBulk) SaveX(ctx context.Context) []*VoiceProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoiceProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoiceProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
