// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/glocalhq/glocal/ent/asset"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/ent/predicate"
	"github.com/glocalhq/glocal/ent/voiceprofile"
	"github.com/glocalhq/glocal/pkg/pipeline"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAsset            = "Asset"
	TypeLocalizationJob  = "LocalizationJob"
	TypeLocalizedVariant = "LocalizedVariant"
	TypeVoiceProfile     = "VoiceProfile"
)

// AssetMutation represents an operation that mutates the Asset nodes in the graph.
type AssetMutation struct {
	config
	op            Op
	typ           string
	id            *string
	project_id    *string
	_type         *asset.Type
	s3_url        *string
	meta          *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Asset, error)
	predicates    []predicate.Asset
}

var _ ent.Mutation = (*AssetMutation)(nil)

// assetOption allows management of the mutation configuration using functional options.
type assetOption func(*AssetMutation)

// newAssetMutation creates new mutation for the Asset entity.
func newAssetMutation(c config, op Op, opts ...assetOption) *AssetMutation {
	m := &AssetMutation{
		config:        c,
		op:            op,
		typ:           TypeAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssetID sets the ID field of the mutation.
func withAssetID(id string) assetOption {
	return func(m *AssetMutation) {
		var (
			err   error
			once  sync.Once
			value *Asset
		)
		m.oldValue = func(ctx context.Context) (*Asset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Asset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAsset sets the old Asset of the mutation.
func withAsset(node *Asset) assetOption {
	return func(m *AssetMutation) {
		m.oldValue = func(context.Context) (*Asset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Asset entities.
func (m *AssetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Asset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *AssetMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *AssetMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *AssetMutation) ResetProjectID() {
	m.project_id = nil
}

// SetType sets the "type" field.
func (m *AssetMutation) SetType(a asset.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *AssetMutation) GetType() (r asset.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldType(ctx context.Context) (v asset.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AssetMutation) ResetType() {
	m._type = nil
}

// SetS3URL sets the "s3_url" field.
func (m *AssetMutation) SetS3URL(s string) {
	m.s3_url = &s
}

// S3URL returns the value of the "s3_url" field in the mutation.
func (m *AssetMutation) S3URL() (r string, exists bool) {
	v := m.s3_url
	if v == nil {
		return
	}
	return *v, true
}

// OldS3URL returns the old "s3_url" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldS3URL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldS3URL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldS3URL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldS3URL: %w", err)
	}
	return oldValue.S3URL, nil
}

// ResetS3URL resets all changes to the "s3_url" field.
func (m *AssetMutation) ResetS3URL() {
	m.s3_url = nil
}

// SetMeta sets the "meta" field.
func (m *AssetMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *AssetMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ResetMeta resets all changes to the "meta" field.
func (m *AssetMutation) ResetMeta() {
	m.meta = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AssetMutation builder.
func (m *AssetMutation) Where(ps ...predicate.Asset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Asset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Asset).
func (m *AssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssetMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project_id != nil {
		fields = append(fields, asset.FieldProjectID)
	}
	if m._type != nil {
		fields = append(fields, asset.FieldType)
	}
	if m.s3_url != nil {
		fields = append(fields, asset.FieldS3URL)
	}
	if m.meta != nil {
		fields = append(fields, asset.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, asset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case asset.FieldProjectID:
		return m.ProjectID()
	case asset.FieldType:
		return m.GetType()
	case asset.FieldS3URL:
		return m.S3URL()
	case asset.FieldMeta:
		return m.Meta()
	case asset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case asset.FieldProjectID:
		return m.OldProjectID(ctx)
	case asset.FieldType:
		return m.OldType(ctx)
	case asset.FieldS3URL:
		return m.OldS3URL(ctx)
	case asset.FieldMeta:
		return m.OldMeta(ctx)
	case asset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Asset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case asset.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case asset.FieldType:
		v, ok := value.(asset.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case asset.FieldS3URL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetS3URL(v)
		return nil
	case asset.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case asset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Asset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Asset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssetMutation) ResetField(name string) error {
	switch name {
	case asset.FieldProjectID:
		m.ResetProjectID()
		return nil
	case asset.FieldType:
		m.ResetType()
		return nil
	case asset.FieldS3URL:
		m.ResetS3URL()
		return nil
	case asset.FieldMeta:
		m.ResetMeta()
		return nil
	case asset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Asset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Asset edge %s", name)
}

// LocalizationJobMutation represents an operation that mutates the LocalizationJob nodes in the graph.
type LocalizationJobMutation struct {
	config
	op               Op
	typ              string
	id               *string
	project_id       *string
	status           *localizationjob.Status
	source_asset_id  *string
	languages        *[]string
	appendlanguages  []string
	voice_profile_id *string
	options          *pipeline.Options
	created_by       *string
	created_at       *time.Time
	updated_at       *time.Time
	error_message    *string
	clearedFields    map[string]struct{}
	variants         map[string]struct{}
	removedvariants  map[string]struct{}
	clearedvariants  bool
	done             bool
	oldValue         func(context.Context) (*LocalizationJob, error)
	predicates       []predicate.LocalizationJob
}

var _ ent.Mutation = (*LocalizationJobMutation)(nil)

// localizationjobOption allows management of the mutation configuration using functional options.
type localizationjobOption func(*LocalizationJobMutation)

// newLocalizationJobMutation creates new mutation for the LocalizationJob entity.
func newLocalizationJobMutation(c config, op Op, opts ...localizationjobOption) *LocalizationJobMutation {
	m := &LocalizationJobMutation{
		config:        c,
		op:            op,
		typ:           TypeLocalizationJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLocalizationJobID sets the ID field of the mutation.
func withLocalizationJobID(id string) localizationjobOption {
	return func(m *LocalizationJobMutation) {
		var (
			err   error
			once  sync.Once
			value *LocalizationJob
		)
		m.oldValue = func(ctx context.Context) (*LocalizationJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LocalizationJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLocalizationJob sets the old LocalizationJob of the mutation.
func withLocalizationJob(node *LocalizationJob) localizationjobOption {
	return func(m *LocalizationJobMutation) {
		m.oldValue = func(context.Context) (*LocalizationJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LocalizationJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LocalizationJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LocalizationJob entities.
func (m *LocalizationJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LocalizationJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LocalizationJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LocalizationJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *LocalizationJobMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *LocalizationJobMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *LocalizationJobMutation) ResetProjectID() {
	m.project_id = nil
}

// SetStatus sets the "status" field.
func (m *LocalizationJobMutation) SetStatus(l localizationjob.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LocalizationJobMutation) Status() (r localizationjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldStatus(ctx context.Context) (v localizationjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LocalizationJobMutation) ResetStatus() {
	m.status = nil
}

// SetSourceAssetID sets the "source_asset_id" field.
func (m *LocalizationJobMutation) SetSourceAssetID(s string) {
	m.source_asset_id = &s
}

// SourceAssetID returns the value of the "source_asset_id" field in the mutation.
func (m *LocalizationJobMutation) SourceAssetID() (r string, exists bool) {
	v := m.source_asset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAssetID returns the old "source_asset_id" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldSourceAssetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAssetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAssetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAssetID: %w", err)
	}
	return oldValue.SourceAssetID, nil
}

// ResetSourceAssetID resets all changes to the "source_asset_id" field.
func (m *LocalizationJobMutation) ResetSourceAssetID() {
	m.source_asset_id = nil
}

// SetLanguages sets the "languages" field.
func (m *LocalizationJobMutation) SetLanguages(s []string) {
	m.languages = &s
	m.appendlanguages = nil
}

// Languages returns the value of the "languages" field in the mutation.
func (m *LocalizationJobMutation) Languages() (r []string, exists bool) {
	v := m.languages
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguages returns the old "languages" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldLanguages(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguages: %w", err)
	}
	return oldValue.Languages, nil
}

// AppendLanguages adds s to the "languages" field.
func (m *LocalizationJobMutation) AppendLanguages(s []string) {
	m.appendlanguages = append(m.appendlanguages, s...)
}

// AppendedLanguages returns the list of values that were appended to the "languages" field in this mutation.
func (m *LocalizationJobMutation) AppendedLanguages() ([]string, bool) {
	if len(m.appendlanguages) == 0 {
		return nil, false
	}
	return m.appendlanguages, true
}

// ResetLanguages resets all changes to the "languages" field.
func (m *LocalizationJobMutation) ResetLanguages() {
	m.languages = nil
	m.appendlanguages = nil
}

// SetVoiceProfileID sets the "voice_profile_id" field.
func (m *LocalizationJobMutation) SetVoiceProfileID(s string) {
	m.voice_profile_id = &s
}

// VoiceProfileID returns the value of the "voice_profile_id" field in the mutation.
func (m *LocalizationJobMutation) VoiceProfileID() (r string, exists bool) {
	v := m.voice_profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVoiceProfileID returns the old "voice_profile_id" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldVoiceProfileID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoiceProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoiceProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoiceProfileID: %w", err)
	}
	return oldValue.VoiceProfileID, nil
}

// ClearVoiceProfileID clears the value of the "voice_profile_id" field.
func (m *LocalizationJobMutation) ClearVoiceProfileID() {
	m.voice_profile_id = nil
	m.clearedFields[localizationjob.FieldVoiceProfileID] = struct{}{}
}

// VoiceProfileIDCleared returns if the "voice_profile_id" field was cleared in this mutation.
func (m *LocalizationJobMutation) VoiceProfileIDCleared() bool {
	_, ok := m.clearedFields[localizationjob.FieldVoiceProfileID]
	return ok
}

// ResetVoiceProfileID resets all changes to the "voice_profile_id" field.
func (m *LocalizationJobMutation) ResetVoiceProfileID() {
	m.voice_profile_id = nil
	delete(m.clearedFields, localizationjob.FieldVoiceProfileID)
}

// SetOptions sets the "options" field.
func (m *LocalizationJobMutation) SetOptions(pi pipeline.Options) {
	m.options = &pi
}

// Options returns the value of the "options" field in the mutation.
func (m *LocalizationJobMutation) Options() (r pipeline.Options, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldOptions(ctx context.Context) (v pipeline.Options, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ResetOptions resets all changes to the "options" field.
func (m *LocalizationJobMutation) ResetOptions() {
	m.options = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *LocalizationJobMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *LocalizationJobMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *LocalizationJobMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LocalizationJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LocalizationJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LocalizationJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LocalizationJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LocalizationJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LocalizationJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LocalizationJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LocalizationJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LocalizationJob entity.
// If the LocalizationJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizationJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LocalizationJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[localizationjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LocalizationJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[localizationjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LocalizationJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, localizationjob.FieldErrorMessage)
}

// AddVariantIDs adds the "variants" edge to the LocalizedVariant entity by ids.
func (m *LocalizationJobMutation) AddVariantIDs(ids ...string) {
	if m.variants == nil {
		m.variants = make(map[string]struct{})
	}
	for i := range ids {
		m.variants[ids[i]] = struct{}{}
	}
}

// ClearVariants clears the "variants" edge to the LocalizedVariant entity.
func (m *LocalizationJobMutation) ClearVariants() {
	m.clearedvariants = true
}

// VariantsCleared reports if the "variants" edge to the LocalizedVariant entity was cleared.
func (m *LocalizationJobMutation) VariantsCleared() bool {
	return m.clearedvariants
}

// RemoveVariantIDs removes the "variants" edge to the LocalizedVariant entity by IDs.
func (m *LocalizationJobMutation) RemoveVariantIDs(ids ...string) {
	if m.removedvariants == nil {
		m.removedvariants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.variants, ids[i])
		m.removedvariants[ids[i]] = struct{}{}
	}
}

// RemovedVariants returns the removed IDs of the "variants" edge to the LocalizedVariant entity.
func (m *LocalizationJobMutation) RemovedVariantsIDs() (ids []string) {
	for id := range m.removedvariants {
		ids = append(ids, id)
	}
	return
}

// VariantsIDs returns the "variants" edge IDs in the mutation.
func (m *LocalizationJobMutation) VariantsIDs() (ids []string) {
	for id := range m.variants {
		ids = append(ids, id)
	}
	return
}

// ResetVariants resets all changes to the "variants" edge.
func (m *LocalizationJobMutation) ResetVariants() {
	m.variants = nil
	m.clearedvariants = false
	m.removedvariants = nil
}

// Where appends a list predicates to the LocalizationJobMutation builder.
func (m *LocalizationJobMutation) Where(ps ...predicate.LocalizationJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LocalizationJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LocalizationJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LocalizationJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LocalizationJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LocalizationJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LocalizationJob).
func (m *LocalizationJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LocalizationJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project_id != nil {
		fields = append(fields, localizationjob.FieldProjectID)
	}
	if m.status != nil {
		fields = append(fields, localizationjob.FieldStatus)
	}
	if m.source_asset_id != nil {
		fields = append(fields, localizationjob.FieldSourceAssetID)
	}
	if m.languages != nil {
		fields = append(fields, localizationjob.FieldLanguages)
	}
	if m.voice_profile_id != nil {
		fields = append(fields, localizationjob.FieldVoiceProfileID)
	}
	if m.options != nil {
		fields = append(fields, localizationjob.FieldOptions)
	}
	if m.created_by != nil {
		fields = append(fields, localizationjob.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, localizationjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, localizationjob.FieldUpdatedAt)
	}
	if m.error_message != nil {
		fields = append(fields, localizationjob.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LocalizationJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case localizationjob.FieldProjectID:
		return m.ProjectID()
	case localizationjob.FieldStatus:
		return m.Status()
	case localizationjob.FieldSourceAssetID:
		return m.SourceAssetID()
	case localizationjob.FieldLanguages:
		return m.Languages()
	case localizationjob.FieldVoiceProfileID:
		return m.VoiceProfileID()
	case localizationjob.FieldOptions:
		return m.Options()
	case localizationjob.FieldCreatedBy:
		return m.CreatedBy()
	case localizationjob.FieldCreatedAt:
		return m.CreatedAt()
	case localizationjob.FieldUpdatedAt:
		return m.UpdatedAt()
	case localizationjob.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LocalizationJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case localizationjob.FieldProjectID:
		return m.OldProjectID(ctx)
	case localizationjob.FieldStatus:
		return m.OldStatus(ctx)
	case localizationjob.FieldSourceAssetID:
		return m.OldSourceAssetID(ctx)
	case localizationjob.FieldLanguages:
		return m.OldLanguages(ctx)
	case localizationjob.FieldVoiceProfileID:
		return m.OldVoiceProfileID(ctx)
	case localizationjob.FieldOptions:
		return m.OldOptions(ctx)
	case localizationjob.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case localizationjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case localizationjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case localizationjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LocalizationJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocalizationJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case localizationjob.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case localizationjob.FieldStatus:
		v, ok := value.(localizationjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case localizationjob.FieldSourceAssetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAssetID(v)
		return nil
	case localizationjob.FieldLanguages:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguages(v)
		return nil
	case localizationjob.FieldVoiceProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoiceProfileID(v)
		return nil
	case localizationjob.FieldOptions:
		v, ok := value.(pipeline.Options)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case localizationjob.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case localizationjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case localizationjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case localizationjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LocalizationJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LocalizationJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LocalizationJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocalizationJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LocalizationJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LocalizationJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(localizationjob.FieldVoiceProfileID) {
		fields = append(fields, localizationjob.FieldVoiceProfileID)
	}
	if m.FieldCleared(localizationjob.FieldErrorMessage) {
		fields = append(fields, localizationjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LocalizationJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LocalizationJobMutation) ClearField(name string) error {
	switch name {
	case localizationjob.FieldVoiceProfileID:
		m.ClearVoiceProfileID()
		return nil
	case localizationjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LocalizationJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LocalizationJobMutation) ResetField(name string) error {
	switch name {
	case localizationjob.FieldProjectID:
		m.ResetProjectID()
		return nil
	case localizationjob.FieldStatus:
		m.ResetStatus()
		return nil
	case localizationjob.FieldSourceAssetID:
		m.ResetSourceAssetID()
		return nil
	case localizationjob.FieldLanguages:
		m.ResetLanguages()
		return nil
	case localizationjob.FieldVoiceProfileID:
		m.ResetVoiceProfileID()
		return nil
	case localizationjob.FieldOptions:
		m.ResetOptions()
		return nil
	case localizationjob.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case localizationjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case localizationjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case localizationjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LocalizationJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LocalizationJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.variants != nil {
		edges = append(edges, localizationjob.EdgeVariants)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LocalizationJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case localizationjob.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.variants))
		for id := range m.variants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LocalizationJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedvariants != nil {
		edges = append(edges, localizationjob.EdgeVariants)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LocalizationJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case localizationjob.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.removedvariants))
		for id := range m.removedvariants {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LocalizationJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvariants {
		edges = append(edges, localizationjob.EdgeVariants)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LocalizationJobMutation) EdgeCleared(name string) bool {
	switch name {
	case localizationjob.EdgeVariants:
		return m.clearedvariants
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LocalizationJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown LocalizationJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LocalizationJobMutation) ResetEdge(name string) error {
	switch name {
	case localizationjob.EdgeVariants:
		m.ResetVariants()
		return nil
	}
	return fmt.Errorf("unknown LocalizationJob edge %s", name)
}

// LocalizedVariantMutation represents an operation that mutates the LocalizedVariant nodes in the graph.
type LocalizedVariantMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	lang                 *string
	status               *localizedvariant.Status
	last_completed_stage *string
	video_url            *string
	audio_url            *string
	subs_url             *string
	preview_url          *string
	report               *map[string]interface{}
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	job                  *string
	clearedjob           bool
	done                 bool
	oldValue             func(context.Context) (*LocalizedVariant, error)
	predicates           []predicate.LocalizedVariant
}

var _ ent.Mutation = (*LocalizedVariantMutation)(nil)

// localizedvariantOption allows management of the mutation configuration using functional options.
type localizedvariantOption func(*LocalizedVariantMutation)

// newLocalizedVariantMutation creates new mutation for the LocalizedVariant entity.
func newLocalizedVariantMutation(c config, op Op, opts ...localizedvariantOption) *LocalizedVariantMutation {
	m := &LocalizedVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeLocalizedVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLocalizedVariantID sets the ID field of the mutation.
func withLocalizedVariantID(id string) localizedvariantOption {
	return func(m *LocalizedVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *LocalizedVariant
		)
		m.oldValue = func(ctx context.Context) (*LocalizedVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LocalizedVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLocalizedVariant sets the old LocalizedVariant of the mutation.
func withLocalizedVariant(node *LocalizedVariant) localizedvariantOption {
	return func(m *LocalizedVariantMutation) {
		m.oldValue = func(context.Context) (*LocalizedVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LocalizedVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LocalizedVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LocalizedVariant entities.
func (m *LocalizedVariantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LocalizedVariantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LocalizedVariantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LocalizedVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *LocalizedVariantMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *LocalizedVariantMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *LocalizedVariantMutation) ResetJobID() {
	m.job = nil
}

// SetLang sets the "lang" field.
func (m *LocalizedVariantMutation) SetLang(s string) {
	m.lang = &s
}

// Lang returns the value of the "lang" field in the mutation.
func (m *LocalizedVariantMutation) Lang() (r string, exists bool) {
	v := m.lang
	if v == nil {
		return
	}
	return *v, true
}

// OldLang returns the old "lang" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldLang(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLang is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLang requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLang: %w", err)
	}
	return oldValue.Lang, nil
}

// ResetLang resets all changes to the "lang" field.
func (m *LocalizedVariantMutation) ResetLang() {
	m.lang = nil
}

// SetStatus sets the "status" field.
func (m *LocalizedVariantMutation) SetStatus(l localizedvariant.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LocalizedVariantMutation) Status() (r localizedvariant.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldStatus(ctx context.Context) (v localizedvariant.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LocalizedVariantMutation) ResetStatus() {
	m.status = nil
}

// SetLastCompletedStage sets the "last_completed_stage" field.
func (m *LocalizedVariantMutation) SetLastCompletedStage(s string) {
	m.last_completed_stage = &s
}

// LastCompletedStage returns the value of the "last_completed_stage" field in the mutation.
func (m *LocalizedVariantMutation) LastCompletedStage() (r string, exists bool) {
	v := m.last_completed_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldLastCompletedStage returns the old "last_completed_stage" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldLastCompletedStage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastCompletedStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastCompletedStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastCompletedStage: %w", err)
	}
	return oldValue.LastCompletedStage, nil
}

// ClearLastCompletedStage clears the value of the "last_completed_stage" field.
func (m *LocalizedVariantMutation) ClearLastCompletedStage() {
	m.last_completed_stage = nil
	m.clearedFields[localizedvariant.FieldLastCompletedStage] = struct{}{}
}

// LastCompletedStageCleared returns if the "last_completed_stage" field was cleared in this mutation.
func (m *LocalizedVariantMutation) LastCompletedStageCleared() bool {
	_, ok := m.clearedFields[localizedvariant.FieldLastCompletedStage]
	return ok
}

// ResetLastCompletedStage resets all changes to the "last_completed_stage" field.
func (m *LocalizedVariantMutation) ResetLastCompletedStage() {
	m.last_completed_stage = nil
	delete(m.clearedFields, localizedvariant.FieldLastCompletedStage)
}

// SetVideoURL sets the "video_url" field.
func (m *LocalizedVariantMutation) SetVideoURL(s string) {
	m.video_url = &s
}

// VideoURL returns the value of the "video_url" field in the mutation.
func (m *LocalizedVariantMutation) VideoURL() (r string, exists bool) {
	v := m.video_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoURL returns the old "video_url" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldVideoURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoURL: %w", err)
	}
	return oldValue.VideoURL, nil
}

// ClearVideoURL clears the value of the "video_url" field.
func (m *LocalizedVariantMutation) ClearVideoURL() {
	m.video_url = nil
	m.clearedFields[localizedvariant.FieldVideoURL] = struct{}{}
}

// VideoURLCleared returns if the "video_url" field was cleared in this mutation.
func (m *LocalizedVariantMutation) VideoURLCleared() bool {
	_, ok := m.clearedFields[localizedvariant.FieldVideoURL]
	return ok
}

// ResetVideoURL resets all changes to the "video_url" field.
func (m *LocalizedVariantMutation) ResetVideoURL() {
	m.video_url = nil
	delete(m.clearedFields, localizedvariant.FieldVideoURL)
}

// SetAudioURL sets the "audio_url" field.
func (m *LocalizedVariantMutation) SetAudioURL(s string) {
	m.audio_url = &s
}

// AudioURL returns the value of the "audio_url" field in the mutation.
func (m *LocalizedVariantMutation) AudioURL() (r string, exists bool) {
	v := m.audio_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioURL returns the old "audio_url" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldAudioURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioURL: %w", err)
	}
	return oldValue.AudioURL, nil
}

// ClearAudioURL clears the value of the "audio_url" field.
func (m *LocalizedVariantMutation) ClearAudioURL() {
	m.audio_url = nil
	m.clearedFields[localizedvariant.FieldAudioURL] = struct{}{}
}

// AudioURLCleared returns if the "audio_url" field was cleared in this mutation.
func (m *LocalizedVariantMutation) AudioURLCleared() bool {
	_, ok := m.clearedFields[localizedvariant.FieldAudioURL]
	return ok
}

// ResetAudioURL resets all changes to the "audio_url" field.
func (m *LocalizedVariantMutation) ResetAudioURL() {
	m.audio_url = nil
	delete(m.clearedFields, localizedvariant.FieldAudioURL)
}

// SetSubsURL sets the "subs_url" field.
func (m *LocalizedVariantMutation) SetSubsURL(s string) {
	m.subs_url = &s
}

// SubsURL returns the value of the "subs_url" field in the mutation.
func (m *LocalizedVariantMutation) SubsURL() (r string, exists bool) {
	v := m.subs_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSubsURL returns the old "subs_url" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldSubsURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubsURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubsURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubsURL: %w", err)
	}
	return oldValue.SubsURL, nil
}

// ClearSubsURL clears the value of the "subs_url" field.
func (m *LocalizedVariantMutation) ClearSubsURL() {
	m.subs_url = nil
	m.clearedFields[localizedvariant.FieldSubsURL] = struct{}{}
}

// SubsURLCleared returns if the "subs_url" field was cleared in this mutation.
func (m *LocalizedVariantMutation) SubsURLCleared() bool {
	_, ok := m.clearedFields[localizedvariant.FieldSubsURL]
	return ok
}

// ResetSubsURL resets all changes to the "subs_url" field.
func (m *LocalizedVariantMutation) ResetSubsURL() {
	m.subs_url = nil
	delete(m.clearedFields, localizedvariant.FieldSubsURL)
}

// SetPreviewURL sets the "preview_url" field.
func (m *LocalizedVariantMutation) SetPreviewURL(s string) {
	m.preview_url = &s
}

// PreviewURL returns the value of the "preview_url" field in the mutation.
func (m *LocalizedVariantMutation) PreviewURL() (r string, exists bool) {
	v := m.preview_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewURL returns the old "preview_url" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldPreviewURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewURL: %w", err)
	}
	return oldValue.PreviewURL, nil
}

// ClearPreviewURL clears the value of the "preview_url" field.
func (m *LocalizedVariantMutation) ClearPreviewURL() {
	m.preview_url = nil
	m.clearedFields[localizedvariant.FieldPreviewURL] = struct{}{}
}

// PreviewURLCleared returns if the "preview_url" field was cleared in this mutation.
func (m *LocalizedVariantMutation) PreviewURLCleared() bool {
	_, ok := m.clearedFields[localizedvariant.FieldPreviewURL]
	return ok
}

// ResetPreviewURL resets all changes to the "preview_url" field.
func (m *LocalizedVariantMutation) ResetPreviewURL() {
	m.preview_url = nil
	delete(m.clearedFields, localizedvariant.FieldPreviewURL)
}

// SetReport sets the "report" field.
func (m *LocalizedVariantMutation) SetReport(value map[string]interface{}) {
	m.report = &value
}

// Report returns the value of the "report" field in the mutation.
func (m *LocalizedVariantMutation) Report() (r map[string]interface{}, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReport returns the old "report" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldReport(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReport is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReport requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReport: %w", err)
	}
	return oldValue.Report, nil
}

// ClearReport clears the value of the "report" field.
func (m *LocalizedVariantMutation) ClearReport() {
	m.report = nil
	m.clearedFields[localizedvariant.FieldReport] = struct{}{}
}

// ReportCleared returns if the "report" field was cleared in this mutation.
func (m *LocalizedVariantMutation) ReportCleared() bool {
	_, ok := m.clearedFields[localizedvariant.FieldReport]
	return ok
}

// ResetReport resets all changes to the "report" field.
func (m *LocalizedVariantMutation) ResetReport() {
	m.report = nil
	delete(m.clearedFields, localizedvariant.FieldReport)
}

// SetErrorMessage sets the "error_message" field.
func (m *LocalizedVariantMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LocalizedVariantMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LocalizedVariantMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[localizedvariant.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LocalizedVariantMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[localizedvariant.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LocalizedVariantMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, localizedvariant.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LocalizedVariantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LocalizedVariantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LocalizedVariantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LocalizedVariantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LocalizedVariantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LocalizedVariant entity.
// If the LocalizedVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocalizedVariantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LocalizedVariantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the LocalizationJob entity.
func (m *LocalizedVariantMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[localizedvariant.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the LocalizationJob entity was cleared.
func (m *LocalizedVariantMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *LocalizedVariantMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *LocalizedVariantMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the LocalizedVariantMutation builder.
func (m *LocalizedVariantMutation) Where(ps ...predicate.LocalizedVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LocalizedVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LocalizedVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LocalizedVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LocalizedVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LocalizedVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LocalizedVariant).
func (m *LocalizedVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LocalizedVariantMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.job != nil {
		fields = append(fields, localizedvariant.FieldJobID)
	}
	if m.lang != nil {
		fields = append(fields, localizedvariant.FieldLang)
	}
	if m.status != nil {
		fields = append(fields, localizedvariant.FieldStatus)
	}
	if m.last_completed_stage != nil {
		fields = append(fields, localizedvariant.FieldLastCompletedStage)
	}
	if m.video_url != nil {
		fields = append(fields, localizedvariant.FieldVideoURL)
	}
	if m.audio_url != nil {
		fields = append(fields, localizedvariant.FieldAudioURL)
	}
	if m.subs_url != nil {
		fields = append(fields, localizedvariant.FieldSubsURL)
	}
	if m.preview_url != nil {
		fields = append(fields, localizedvariant.FieldPreviewURL)
	}
	if m.report != nil {
		fields = append(fields, localizedvariant.FieldReport)
	}
	if m.error_message != nil {
		fields = append(fields, localizedvariant.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, localizedvariant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, localizedvariant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LocalizedVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case localizedvariant.FieldJobID:
		return m.JobID()
	case localizedvariant.FieldLang:
		return m.Lang()
	case localizedvariant.FieldStatus:
		return m.Status()
	case localizedvariant.FieldLastCompletedStage:
		return m.LastCompletedStage()
	case localizedvariant.FieldVideoURL:
		return m.VideoURL()
	case localizedvariant.FieldAudioURL:
		return m.AudioURL()
	case localizedvariant.FieldSubsURL:
		return m.SubsURL()
	case localizedvariant.FieldPreviewURL:
		return m.PreviewURL()
	case localizedvariant.FieldReport:
		return m.Report()
	case localizedvariant.FieldErrorMessage:
		return m.ErrorMessage()
	case localizedvariant.FieldCreatedAt:
		return m.CreatedAt()
	case localizedvariant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LocalizedVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case localizedvariant.FieldJobID:
		return m.OldJobID(ctx)
	case localizedvariant.FieldLang:
		return m.OldLang(ctx)
	case localizedvariant.FieldStatus:
		return m.OldStatus(ctx)
	case localizedvariant.FieldLastCompletedStage:
		return m.OldLastCompletedStage(ctx)
	case localizedvariant.FieldVideoURL:
		return m.OldVideoURL(ctx)
	case localizedvariant.FieldAudioURL:
		return m.OldAudioURL(ctx)
	case localizedvariant.FieldSubsURL:
		return m.OldSubsURL(ctx)
	case localizedvariant.FieldPreviewURL:
		return m.OldPreviewURL(ctx)
	case localizedvariant.FieldReport:
		return m.OldReport(ctx)
	case localizedvariant.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case localizedvariant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case localizedvariant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LocalizedVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocalizedVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case localizedvariant.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case localizedvariant.FieldLang:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLang(v)
		return nil
	case localizedvariant.FieldStatus:
		v, ok := value.(localizedvariant.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case localizedvariant.FieldLastCompletedStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastCompletedStage(v)
		return nil
	case localizedvariant.FieldVideoURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoURL(v)
		return nil
	case localizedvariant.FieldAudioURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioURL(v)
		return nil
	case localizedvariant.FieldSubsURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubsURL(v)
		return nil
	case localizedvariant.FieldPreviewURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewURL(v)
		return nil
	case localizedvariant.FieldReport:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReport(v)
		return nil
	case localizedvariant.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case localizedvariant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case localizedvariant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LocalizedVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LocalizedVariantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LocalizedVariantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocalizedVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LocalizedVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LocalizedVariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(localizedvariant.FieldLastCompletedStage) {
		fields = append(fields, localizedvariant.FieldLastCompletedStage)
	}
	if m.FieldCleared(localizedvariant.FieldVideoURL) {
		fields = append(fields, localizedvariant.FieldVideoURL)
	}
	if m.FieldCleared(localizedvariant.FieldAudioURL) {
		fields = append(fields, localizedvariant.FieldAudioURL)
	}
	if m.FieldCleared(localizedvariant.FieldSubsURL) {
		fields = append(fields, localizedvariant.FieldSubsURL)
	}
	if m.FieldCleared(localizedvariant.FieldPreviewURL) {
		fields = append(fields, localizedvariant.FieldPreviewURL)
	}
	if m.FieldCleared(localizedvariant.FieldReport) {
		fields = append(fields, localizedvariant.FieldReport)
	}
	if m.FieldCleared(localizedvariant.FieldErrorMessage) {
		fields = append(fields, localizedvariant.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LocalizedVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LocalizedVariantMutation) ClearField(name string) error {
	switch name {
	case localizedvariant.FieldLastCompletedStage:
		m.ClearLastCompletedStage()
		return nil
	case localizedvariant.FieldVideoURL:
		m.ClearVideoURL()
		return nil
	case localizedvariant.FieldAudioURL:
		m.ClearAudioURL()
		return nil
	case localizedvariant.FieldSubsURL:
		m.ClearSubsURL()
		return nil
	case localizedvariant.FieldPreviewURL:
		m.ClearPreviewURL()
		return nil
	case localizedvariant.FieldReport:
		m.ClearReport()
		return nil
	case localizedvariant.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LocalizedVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LocalizedVariantMutation) ResetField(name string) error {
	switch name {
	case localizedvariant.FieldJobID:
		m.ResetJobID()
		return nil
	case localizedvariant.FieldLang:
		m.ResetLang()
		return nil
	case localizedvariant.FieldStatus:
		m.ResetStatus()
		return nil
	case localizedvariant.FieldLastCompletedStage:
		m.ResetLastCompletedStage()
		return nil
	case localizedvariant.FieldVideoURL:
		m.ResetVideoURL()
		return nil
	case localizedvariant.FieldAudioURL:
		m.ResetAudioURL()
		return nil
	case localizedvariant.FieldSubsURL:
		m.ResetSubsURL()
		return nil
	case localizedvariant.FieldPreviewURL:
		m.ResetPreviewURL()
		return nil
	case localizedvariant.FieldReport:
		m.ResetReport()
		return nil
	case localizedvariant.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case localizedvariant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case localizedvariant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LocalizedVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LocalizedVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, localizedvariant.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LocalizedVariantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case localizedvariant.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LocalizedVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LocalizedVariantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LocalizedVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, localizedvariant.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LocalizedVariantMutation) EdgeCleared(name string) bool {
	switch name {
	case localizedvariant.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LocalizedVariantMutation) ClearEdge(name string) error {
	switch name {
	case localizedvariant.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown LocalizedVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LocalizedVariantMutation) ResetEdge(name string) error {
	switch name {
	case localizedvariant.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown LocalizedVariant edge %s", name)
}

// VoiceProfileMutation represents an operation that mutates the VoiceProfile nodes in the graph.
type VoiceProfileMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	provider        *string
	provider_params *map[string]interface{}
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*VoiceProfile, error)
	predicates      []predicate.VoiceProfile
}

var _ ent.Mutation = (*VoiceProfileMutation)(nil)

// voiceprofileOption allows management of the mutation configuration using functional options.
type voiceprofileOption func(*VoiceProfileMutation)

// newVoiceProfileMutation creates new mutation for the VoiceProfile entity.
func newVoiceProfileMutation(c config, op Op, opts ...voiceprofileOption) *VoiceProfileMutation {
	m := &VoiceProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeVoiceProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoiceProfileID sets the ID field of the mutation.
func withVoiceProfileID(id string) voiceprofileOption {
	return func(m *VoiceProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *VoiceProfile
		)
		m.oldValue = func(ctx context.Context) (*VoiceProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VoiceProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVoiceProfile sets the old VoiceProfile of the mutation.
func withVoiceProfile(node *VoiceProfile) voiceprofileOption {
	return func(m *VoiceProfileMutation) {
		m.oldValue = func(context.Context) (*VoiceProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoiceProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoiceProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VoiceProfile entities.
func (m *VoiceProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoiceProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoiceProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VoiceProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VoiceProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VoiceProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the VoiceProfile entity.
// If the VoiceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *VoiceProfileMutation) ResetName() {
	m.name = nil
}

// SetProvider sets the "provider" field.
func (m *VoiceProfileMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *VoiceProfileMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the VoiceProfile entity.
// If the VoiceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceProfileMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *VoiceProfileMutation) ResetProvider() {
	m.provider = nil
}

// SetProviderParams sets the "provider_params" field.
func (m *VoiceProfileMutation) SetProviderParams(value map[string]interface{}) {
	m.provider_params = &value
}

// ProviderParams returns the value of the "provider_params" field in the mutation.
func (m *VoiceProfileMutation) ProviderParams() (r map[string]interface{}, exists bool) {
	v := m.provider_params
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderParams returns the old "provider_params" field's value of the VoiceProfile entity.
// If the VoiceProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoiceProfileMutation) OldProviderParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderParams: %w", err)
	}
	return oldValue.ProviderParams, nil
}

// ResetProviderParams resets all changes to the "provider_params" field.
func (m *VoiceProfileMutation) ResetProviderParams() {
	m.provider_params = nil
}

// Where appends a list predicates to the VoiceProfileMutation builder.
func (m *VoiceProfileMutation) Where(ps ...predicate.VoiceProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoiceProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoiceProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VoiceProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoiceProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoiceProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VoiceProfile).
func (m *VoiceProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoiceProfileMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, voiceprofile.FieldName)
	}
	if m.provider != nil {
		fields = append(fields, voiceprofile.FieldProvider)
	}
	if m.provider_params != nil {
		fields = append(fields, voiceprofile.FieldProviderParams)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoiceProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case voiceprofile.FieldName:
		return m.Name()
	case voiceprofile.FieldProvider:
		return m.Provider()
	case voiceprofile.FieldProviderParams:
		return m.ProviderParams()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoiceProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case voiceprofile.FieldName:
		return m.OldName(ctx)
	case voiceprofile.FieldProvider:
		return m.OldProvider(ctx)
	case voiceprofile.FieldProviderParams:
		return m.OldProviderParams(ctx)
	}
	return nil, fmt.Errorf("unknown VoiceProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoiceProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case voiceprofile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case voiceprofile.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case voiceprofile.FieldProviderParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderParams(v)
		return nil
	}
	return fmt.Errorf("unknown VoiceProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoiceProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoiceProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoiceProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VoiceProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoiceProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoiceProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoiceProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown VoiceProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoiceProfileMutation) ResetField(name string) error {
	switch name {
	case voiceprofile.FieldName:
		m.ResetName()
		return nil
	case voiceprofile.FieldProvider:
		m.ResetProvider()
		return nil
	case voiceprofile.FieldProviderParams:
		m.ResetProviderParams()
		return nil
	}
	return fmt.Errorf("unknown VoiceProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoiceProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoiceProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoiceProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoiceProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoiceProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoiceProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoiceProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VoiceProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoiceProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VoiceProfile edge %s", name)
}
