// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/glocalhq/glocal/ent/predicate"
	"github.com/glocalhq/glocal/ent/voiceprofile"
)

// VoiceProfileUpdate is the builder for updating VoiceProfile entities.
type VoiceProfileUpdate struct {
	config
	hooks    []Hook
	mutation *VoiceProfileMutation
}

// Where appends a list predicates to the VoiceProfileUpdate builder.
func (_u *VoiceProfileUpdate) Where(ps ...predicate.VoiceProfile) *VoiceProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VoiceProfileUpdate) SetName(v string) *VoiceProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VoiceProfileUpdate) SetNillableName(v *string) *VoiceProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *VoiceProfileUpdate) SetProvider(v string) *VoiceProfileUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VoiceProfileUpdate) SetNillableProvider(v *string) *VoiceProfileUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderParams sets the "provider_params" field.
func (_u *VoiceProfileUpdate) SetProviderParams(v map[string]interface{}) *VoiceProfileUpdate {
	_u.mutation.SetProviderParams(v)
	return _u
}

// Mutation returns the VoiceProfileMutation object of the builder.
func (_u *VoiceProfileUpdate) Mutation() *VoiceProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoiceProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoiceProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoiceProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoiceProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VoiceProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(voiceprofile.Table, voiceprofile.Columns, sqlgraph.NewFieldSpec(voiceprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(voiceprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(voiceprofile.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderParams(); ok {
		_spec.SetField(voiceprofile.FieldProviderParams, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voiceprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoiceProfileUpdateOne is the builder for updating a single VoiceProfile entity.
type VoiceProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoiceProfileMutation
}

// SetName sets the "name" field.
func (_u *VoiceProfileUpdateOne) SetName(v string) *VoiceProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VoiceProfileUpdateOne) SetNillableName(v *string) *VoiceProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *VoiceProfileUpdateOne) SetProvider(v string) *VoiceProfileUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *VoiceProfileUpdateOne) SetNillableProvider(v *string) *VoiceProfileUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderParams sets the "provider_params" field.
func (_u *VoiceProfileUpdateOne) SetProviderParams(v map[string]interface{}) *VoiceProfileUpdateOne {
	_u.mutation.SetProviderParams(v)
	return _u
}

// Mutation returns the VoiceProfileMutation object of the builder.
func (_u *VoiceProfileUpdateOne) Mutation() *VoiceProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the VoiceProfileUpdate builder.
func (_u *VoiceProfileUpdateOne) Where(ps ...predicate.VoiceProfile) *VoiceProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoiceProfileUpdateOne) Select(field string, fields ...string) *VoiceProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VoiceProfile entity.
func (_u *VoiceProfileUpdateOne) Save(ctx context.Context) (*VoiceProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoiceProfileUpdateOne) SaveX(ctx context.Context) *VoiceProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoiceProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoiceProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VoiceProfileUpdateOne) sqlSave(ctx context.Context) (_node *VoiceProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(voiceprofile.Table, voiceprofile.Columns, sqlgraph.NewFieldSpec(voiceprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VoiceProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voiceprofile.FieldID)
		for _, f := range fields {
			if !voiceprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != voiceprofile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(voiceprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(voiceprofile.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderParams(); ok {
		_spec.SetField(voiceprofile.FieldProviderParams, field.TypeJSON, value)
	}
	_node = &VoiceProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voiceprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
