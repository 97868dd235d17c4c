// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/analysisjob"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisJob     = "AnalysisJob"
	TypeAnalysisVersion = "AnalysisVersion"
	TypeLegislation     = "Legislation"
)

// AnalysisJobMutation represents an operation that mutates the AnalysisJob nodes in the graph.
type AnalysisJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	version_id         *uuid.UUID
	status             *string
	content_kind       *string
	fingerprint        *string
	cache_hit          *bool
	error_message      *string
	started_at         *time.Time
	finished_at        *time.Time
	clearedFields      map[string]struct{}
	legislation        *uuid.UUID
	clearedlegislation bool
	done               bool
	oldValue           func(context.Context) (*AnalysisJob, error)
	predicates         []predicate.AnalysisJob
}

var _ ent.Mutation = (*AnalysisJobMutation)(nil)

// analysisjobOption allows management of the mutation configuration using functional options.
type analysisjobOption func(*AnalysisJobMutation)

// newAnalysisJobMutation creates new mutation for the AnalysisJob entity.
func newAnalysisJobMutation(c config, op Op, opts ...analysisjobOption) *AnalysisJobMutation {
	m := &AnalysisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisJobID sets the ID field of the mutation.
func withAnalysisJobID(id uuid.UUID) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisJob
		)
		m.oldValue = func(ctx context.Context) (*AnalysisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisJob sets the old AnalysisJob of the mutation.
func withAnalysisJob(node *AnalysisJob) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		m.oldValue = func(context.Context) (*AnalysisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisJob entities.
func (m *AnalysisJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLegislationID sets the "legislation_id" field.
func (m *AnalysisJobMutation) SetLegislationID(u uuid.UUID) {
	m.legislation = &u
}

// LegislationID returns the value of the "legislation_id" field in the mutation.
func (m *AnalysisJobMutation) LegislationID() (r uuid.UUID, exists bool) {
	v := m.legislation
	if v == nil {
		return
	}
	return *v, true
}

// OldLegislationID returns the old "legislation_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldLegislationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegislationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegislationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegislationID: %w", err)
	}
	return oldValue.LegislationID, nil
}

// ResetLegislationID resets all changes to the "legislation_id" field.
func (m *AnalysisJobMutation) ResetLegislationID() {
	m.legislation = nil
}

// SetVersionID sets the "version_id" field.
func (m *AnalysisJobMutation) SetVersionID(u uuid.UUID) {
	m.version_id = &u
}

// VersionID returns the value of the "version_id" field in the mutation.
func (m *AnalysisJobMutation) VersionID() (r uuid.UUID, exists bool) {
	v := m.version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionID returns the old "version_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldVersionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionID: %w", err)
	}
	return oldValue.VersionID, nil
}

// ClearVersionID clears the value of the "version_id" field.
func (m *AnalysisJobMutation) ClearVersionID() {
	m.version_id = nil
	m.clearedFields[analysisjob.FieldVersionID] = struct{}{}
}

// VersionIDCleared returns if the "version_id" field was cleared in this mutation.
func (m *AnalysisJobMutation) VersionIDCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldVersionID]
	return ok
}

// ResetVersionID resets all changes to the "version_id" field.
func (m *AnalysisJobMutation) ResetVersionID() {
	m.version_id = nil
	delete(m.clearedFields, analysisjob.FieldVersionID)
}

// SetStatus sets the "status" field.
func (m *AnalysisJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *AnalysisJobMutation) ResetStatus() {
	m.status = nil
}

// SetContentKind sets the "content_kind" field.
func (m *AnalysisJobMutation) SetContentKind(s string) {
	m.content_kind = &s
}

// ContentKind returns the value of the "content_kind" field in the mutation.
func (m *AnalysisJobMutation) ContentKind() (r string, exists bool) {
	v := m.content_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldContentKind returns the old "content_kind" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldContentKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentKind: %w", err)
	}
	return oldValue.ContentKind, nil
}

// ResetContentKind resets all changes to the "content_kind" field.
func (m *AnalysisJobMutation) ResetContentKind() {
	m.content_kind = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *AnalysisJobMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AnalysisJobMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (m *AnalysisJobMutation) ClearFingerprint() {
	m.fingerprint = nil
	m.clearedFields[analysisjob.FieldFingerprint] = struct{}{}
}

// FingerprintCleared returns if the "fingerprint" field was cleared in this mutation.
func (m *AnalysisJobMutation) FingerprintCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldFingerprint]
	return ok
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AnalysisJobMutation) ResetFingerprint() {
	m.fingerprint = nil
	delete(m.clearedFields, analysisjob.FieldFingerprint)
}

// SetCacheHit sets the "cache_hit" field.
func (m *AnalysisJobMutation) SetCacheHit(b bool) {
	m.cache_hit = &b
}

// CacheHit returns the value of the "cache_hit" field in the mutation.
func (m *AnalysisJobMutation) CacheHit() (r bool, exists bool) {
	v := m.cache_hit
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheHit returns the old "cache_hit" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCacheHit(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheHit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheHit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheHit: %w", err)
	}
	return oldValue.CacheHit, nil
}

// ResetCacheHit resets all changes to the "cache_hit" field.
func (m *AnalysisJobMutation) ResetCacheHit() {
	m.cache_hit = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
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
func (m *AnalysisJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisjob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *AnalysisJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AnalysisJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AnalysisJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[analysisjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AnalysisJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, analysisjob.FieldFinishedAt)
}

// ClearLegislation clears the "legislation" edge to the Legislation entity.
func (m *AnalysisJobMutation) ClearLegislation() {
	m.clearedlegislation = true
	m.clearedFields[analysisjob.FieldLegislationID] = struct{}{}
}

// LegislationCleared reports if the "legislation" edge to the Legislation entity was cleared.
func (m *AnalysisJobMutation) LegislationCleared() bool {
	return m.clearedlegislation
}

// LegislationIDs returns the "legislation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LegislationID instead. It exists only for internal usage by the builders.
func (m *AnalysisJobMutation) LegislationIDs() (ids []uuid.UUID) {
	if id := m.legislation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLegislation resets all changes to the "legislation" edge.
func (m *AnalysisJobMutation) ResetLegislation() {
	m.legislation = nil
	m.clearedlegislation = false
}

// Where appends a list predicates to the AnalysisJobMutation builder.
func (m *AnalysisJobMutation) Where(ps ...predicate.AnalysisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisJob).
func (m *AnalysisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.legislation != nil {
		fields = append(fields, analysisjob.FieldLegislationID)
	}
	if m.version_id != nil {
		fields = append(fields, analysisjob.FieldVersionID)
	}
	if m.status != nil {
		fields = append(fields, analysisjob.FieldStatus)
	}
	if m.content_kind != nil {
		fields = append(fields, analysisjob.FieldContentKind)
	}
	if m.fingerprint != nil {
		fields = append(fields, analysisjob.FieldFingerprint)
	}
	if m.cache_hit != nil {
		fields = append(fields, analysisjob.FieldCacheHit)
	}
	if m.error_message != nil {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, analysisjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, analysisjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldLegislationID:
		return m.LegislationID()
	case analysisjob.FieldVersionID:
		return m.VersionID()
	case analysisjob.FieldStatus:
		return m.Status()
	case analysisjob.FieldContentKind:
		return m.ContentKind()
	case analysisjob.FieldFingerprint:
		return m.Fingerprint()
	case analysisjob.FieldCacheHit:
		return m.CacheHit()
	case analysisjob.FieldErrorMessage:
		return m.ErrorMessage()
	case analysisjob.FieldStartedAt:
		return m.StartedAt()
	case analysisjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisjob.FieldLegislationID:
		return m.OldLegislationID(ctx)
	case analysisjob.FieldVersionID:
		return m.OldVersionID(ctx)
	case analysisjob.FieldStatus:
		return m.OldStatus(ctx)
	case analysisjob.FieldContentKind:
		return m.OldContentKind(ctx)
	case analysisjob.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case analysisjob.FieldCacheHit:
		return m.OldCacheHit(ctx)
	case analysisjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysisjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysisjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldLegislationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegislationID(v)
		return nil
	case analysisjob.FieldVersionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionID(v)
		return nil
	case analysisjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisjob.FieldContentKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentKind(v)
		return nil
	case analysisjob.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case analysisjob.FieldCacheHit:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheHit(v)
		return nil
	case analysisjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysisjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysisjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisjob.FieldVersionID) {
		fields = append(fields, analysisjob.FieldVersionID)
	}
	if m.FieldCleared(analysisjob.FieldFingerprint) {
		fields = append(fields, analysisjob.FieldFingerprint)
	}
	if m.FieldCleared(analysisjob.FieldErrorMessage) {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.FieldCleared(analysisjob.FieldFinishedAt) {
		fields = append(fields, analysisjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ClearField(name string) error {
	switch name {
	case analysisjob.FieldVersionID:
		m.ClearVersionID()
		return nil
	case analysisjob.FieldFingerprint:
		m.ClearFingerprint()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysisjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ResetField(name string) error {
	switch name {
	case analysisjob.FieldLegislationID:
		m.ResetLegislationID()
		return nil
	case analysisjob.FieldVersionID:
		m.ResetVersionID()
		return nil
	case analysisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisjob.FieldContentKind:
		m.ResetContentKind()
		return nil
	case analysisjob.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case analysisjob.FieldCacheHit:
		m.ResetCacheHit()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysisjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysisjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.legislation != nil {
		edges = append(edges, analysisjob.EdgeLegislation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisjob.EdgeLegislation:
		if id := m.legislation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlegislation {
		edges = append(edges, analysisjob.EdgeLegislation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisJobMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisjob.EdgeLegislation:
		return m.clearedlegislation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisJobMutation) ClearEdge(name string) error {
	switch name {
	case analysisjob.EdgeLegislation:
		m.ClearLegislation()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisJobMutation) ResetEdge(name string) error {
	switch name {
	case analysisjob.EdgeLegislation:
		m.ResetLegislation()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob edge %s", name)
}

// AnalysisVersionMutation represents an operation that mutates the AnalysisVersion nodes in the graph.
type AnalysisVersionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	version_number       *int
	addversion_number    *int
	predecessor_id       *uuid.UUID
	fingerprint          *string
	model_name           *string
	schema_version       *string
	analysis_json        *json.RawMessage
	appendanalysis_json  json.RawMessage
	confidence           *float64
	addconfidence        *float64
	impact_level         *string
	insufficient_text    *bool
	chunked              *bool
	chunk_count          *int
	addchunk_count       *int
	dropped_chunks       *[]int
	appenddropped_chunks []int
	processing_ms        *int64
	addprocessing_ms     *int64
	created_at           *time.Time
	clearedFields        map[string]struct{}
	legislation          *uuid.UUID
	clearedlegislation   bool
	done                 bool
	oldValue             func(context.Context) (*AnalysisVersion, error)
	predicates           []predicate.AnalysisVersion
}

var _ ent.Mutation = (*AnalysisVersionMutation)(nil)

// analysisversionOption allows management of the mutation configuration using functional options.
type analysisversionOption func(*AnalysisVersionMutation)

// newAnalysisVersionMutation creates new mutation for the AnalysisVersion entity.
func newAnalysisVersionMutation(c config, op Op, opts ...analysisversionOption) *AnalysisVersionMutation {
	m := &AnalysisVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisVersionID sets the ID field of the mutation.
func withAnalysisVersionID(id uuid.UUID) analysisversionOption {
	return func(m *AnalysisVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisVersion
		)
		m.oldValue = func(ctx context.Context) (*AnalysisVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisVersion sets the old AnalysisVersion of the mutation.
func withAnalysisVersion(node *AnalysisVersion) analysisversionOption {
	return func(m *AnalysisVersionMutation) {
		m.oldValue = func(context.Context) (*AnalysisVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisVersion entities.
func (m *AnalysisVersionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisVersionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisVersionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLegislationID sets the "legislation_id" field.
func (m *AnalysisVersionMutation) SetLegislationID(u uuid.UUID) {
	m.legislation = &u
}

// LegislationID returns the value of the "legislation_id" field in the mutation.
func (m *AnalysisVersionMutation) LegislationID() (r uuid.UUID, exists bool) {
	v := m.legislation
	if v == nil {
		return
	}
	return *v, true
}

// OldLegislationID returns the old "legislation_id" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldLegislationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegislationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegislationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegislationID: %w", err)
	}
	return oldValue.LegislationID, nil
}

// ResetLegislationID resets all changes to the "legislation_id" field.
func (m *AnalysisVersionMutation) ResetLegislationID() {
	m.legislation = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *AnalysisVersionMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *AnalysisVersionMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *AnalysisVersionMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *AnalysisVersionMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *AnalysisVersionMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetPredecessorID sets the "predecessor_id" field.
func (m *AnalysisVersionMutation) SetPredecessorID(u uuid.UUID) {
	m.predecessor_id = &u
}

// PredecessorID returns the value of the "predecessor_id" field in the mutation.
func (m *AnalysisVersionMutation) PredecessorID() (r uuid.UUID, exists bool) {
	v := m.predecessor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPredecessorID returns the old "predecessor_id" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldPredecessorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredecessorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredecessorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredecessorID: %w", err)
	}
	return oldValue.PredecessorID, nil
}

// ClearPredecessorID clears the value of the "predecessor_id" field.
func (m *AnalysisVersionMutation) ClearPredecessorID() {
	m.predecessor_id = nil
	m.clearedFields[analysisversion.FieldPredecessorID] = struct{}{}
}

// PredecessorIDCleared returns if the "predecessor_id" field was cleared in this mutation.
func (m *AnalysisVersionMutation) PredecessorIDCleared() bool {
	_, ok := m.clearedFields[analysisversion.FieldPredecessorID]
	return ok
}

// ResetPredecessorID resets all changes to the "predecessor_id" field.
func (m *AnalysisVersionMutation) ResetPredecessorID() {
	m.predecessor_id = nil
	delete(m.clearedFields, analysisversion.FieldPredecessorID)
}

// SetFingerprint sets the "fingerprint" field.
func (m *AnalysisVersionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AnalysisVersionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AnalysisVersionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetModelName sets the "model_name" field.
func (m *AnalysisVersionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *AnalysisVersionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *AnalysisVersionMutation) ResetModelName() {
	m.model_name = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *AnalysisVersionMutation) SetSchemaVersion(s string) {
	m.schema_version = &s
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *AnalysisVersionMutation) SchemaVersion() (r string, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldSchemaVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *AnalysisVersionMutation) ResetSchemaVersion() {
	m.schema_version = nil
}

// SetAnalysisJSON sets the "analysis_json" field.
func (m *AnalysisVersionMutation) SetAnalysisJSON(jm json.RawMessage) {
	m.analysis_json = &jm
	m.appendanalysis_json = nil
}

// AnalysisJSON returns the value of the "analysis_json" field in the mutation.
func (m *AnalysisVersionMutation) AnalysisJSON() (r json.RawMessage, exists bool) {
	v := m.analysis_json
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisJSON returns the old "analysis_json" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldAnalysisJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisJSON: %w", err)
	}
	return oldValue.AnalysisJSON, nil
}

// AppendAnalysisJSON adds jm to the "analysis_json" field.
func (m *AnalysisVersionMutation) AppendAnalysisJSON(jm json.RawMessage) {
	m.appendanalysis_json = append(m.appendanalysis_json, jm...)
}

// AppendedAnalysisJSON returns the list of values that were appended to the "analysis_json" field in this mutation.
func (m *AnalysisVersionMutation) AppendedAnalysisJSON() (json.RawMessage, bool) {
	if len(m.appendanalysis_json) == 0 {
		return nil, false
	}
	return m.appendanalysis_json, true
}

// ResetAnalysisJSON resets all changes to the "analysis_json" field.
func (m *AnalysisVersionMutation) ResetAnalysisJSON() {
	m.analysis_json = nil
	m.appendanalysis_json = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnalysisVersionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnalysisVersionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnalysisVersionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnalysisVersionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *AnalysisVersionMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[analysisversion.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *AnalysisVersionMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[analysisversion.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnalysisVersionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, analysisversion.FieldConfidence)
}

// SetImpactLevel sets the "impact_level" field.
func (m *AnalysisVersionMutation) SetImpactLevel(s string) {
	m.impact_level = &s
}

// ImpactLevel returns the value of the "impact_level" field in the mutation.
func (m *AnalysisVersionMutation) ImpactLevel() (r string, exists bool) {
	v := m.impact_level
	if v == nil {
		return
	}
	return *v, true
}

// OldImpactLevel returns the old "impact_level" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldImpactLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpactLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpactLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpactLevel: %w", err)
	}
	return oldValue.ImpactLevel, nil
}

// ClearImpactLevel clears the value of the "impact_level" field.
func (m *AnalysisVersionMutation) ClearImpactLevel() {
	m.impact_level = nil
	m.clearedFields[analysisversion.FieldImpactLevel] = struct{}{}
}

// ImpactLevelCleared returns if the "impact_level" field was cleared in this mutation.
func (m *AnalysisVersionMutation) ImpactLevelCleared() bool {
	_, ok := m.clearedFields[analysisversion.FieldImpactLevel]
	return ok
}

// ResetImpactLevel resets all changes to the "impact_level" field.
func (m *AnalysisVersionMutation) ResetImpactLevel() {
	m.impact_level = nil
	delete(m.clearedFields, analysisversion.FieldImpactLevel)
}

// SetInsufficientText sets the "insufficient_text" field.
func (m *AnalysisVersionMutation) SetInsufficientText(b bool) {
	m.insufficient_text = &b
}

// InsufficientText returns the value of the "insufficient_text" field in the mutation.
func (m *AnalysisVersionMutation) InsufficientText() (r bool, exists bool) {
	v := m.insufficient_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInsufficientText returns the old "insufficient_text" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldInsufficientText(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsufficientText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsufficientText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsufficientText: %w", err)
	}
	return oldValue.InsufficientText, nil
}

// ResetInsufficientText resets all changes to the "insufficient_text" field.
func (m *AnalysisVersionMutation) ResetInsufficientText() {
	m.insufficient_text = nil
}

// SetChunked sets the "chunked" field.
func (m *AnalysisVersionMutation) SetChunked(b bool) {
	m.chunked = &b
}

// Chunked returns the value of the "chunked" field in the mutation.
func (m *AnalysisVersionMutation) Chunked() (r bool, exists bool) {
	v := m.chunked
	if v == nil {
		return
	}
	return *v, true
}

// OldChunked returns the old "chunked" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldChunked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunked: %w", err)
	}
	return oldValue.Chunked, nil
}

// ResetChunked resets all changes to the "chunked" field.
func (m *AnalysisVersionMutation) ResetChunked() {
	m.chunked = nil
}

// SetChunkCount sets the "chunk_count" field.
func (m *AnalysisVersionMutation) SetChunkCount(i int) {
	m.chunk_count = &i
	m.addchunk_count = nil
}

// ChunkCount returns the value of the "chunk_count" field in the mutation.
func (m *AnalysisVersionMutation) ChunkCount() (r int, exists bool) {
	v := m.chunk_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkCount returns the old "chunk_count" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldChunkCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkCount: %w", err)
	}
	return oldValue.ChunkCount, nil
}

// AddChunkCount adds i to the "chunk_count" field.
func (m *AnalysisVersionMutation) AddChunkCount(i int) {
	if m.addchunk_count != nil {
		*m.addchunk_count += i
	} else {
		m.addchunk_count = &i
	}
}

// AddedChunkCount returns the value that was added to the "chunk_count" field in this mutation.
func (m *AnalysisVersionMutation) AddedChunkCount() (r int, exists bool) {
	v := m.addchunk_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkCount resets all changes to the "chunk_count" field.
func (m *AnalysisVersionMutation) ResetChunkCount() {
	m.chunk_count = nil
	m.addchunk_count = nil
}

// SetDroppedChunks sets the "dropped_chunks" field.
func (m *AnalysisVersionMutation) SetDroppedChunks(i []int) {
	m.dropped_chunks = &i
	m.appenddropped_chunks = nil
}

// DroppedChunks returns the value of the "dropped_chunks" field in the mutation.
func (m *AnalysisVersionMutation) DroppedChunks() (r []int, exists bool) {
	v := m.dropped_chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldDroppedChunks returns the old "dropped_chunks" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldDroppedChunks(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDroppedChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDroppedChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDroppedChunks: %w", err)
	}
	return oldValue.DroppedChunks, nil
}

// AppendDroppedChunks adds i to the "dropped_chunks" field.
func (m *AnalysisVersionMutation) AppendDroppedChunks(i []int) {
	m.appenddropped_chunks = append(m.appenddropped_chunks, i...)
}

// AppendedDroppedChunks returns the list of values that were appended to the "dropped_chunks" field in this mutation.
func (m *AnalysisVersionMutation) AppendedDroppedChunks() ([]int, bool) {
	if len(m.appenddropped_chunks) == 0 {
		return nil, false
	}
	return m.appenddropped_chunks, true
}

// ClearDroppedChunks clears the value of the "dropped_chunks" field.
func (m *AnalysisVersionMutation) ClearDroppedChunks() {
	m.dropped_chunks = nil
	m.appenddropped_chunks = nil
	m.clearedFields[analysisversion.FieldDroppedChunks] = struct{}{}
}

// DroppedChunksCleared returns if the "dropped_chunks" field was cleared in this mutation.
func (m *AnalysisVersionMutation) DroppedChunksCleared() bool {
	_, ok := m.clearedFields[analysisversion.FieldDroppedChunks]
	return ok
}

// ResetDroppedChunks resets all changes to the "dropped_chunks" field.
func (m *AnalysisVersionMutation) ResetDroppedChunks() {
	m.dropped_chunks = nil
	m.appenddropped_chunks = nil
	delete(m.clearedFields, analysisversion.FieldDroppedChunks)
}

// SetProcessingMs sets the "processing_ms" field.
func (m *AnalysisVersionMutation) SetProcessingMs(i int64) {
	m.processing_ms = &i
	m.addprocessing_ms = nil
}

// ProcessingMs returns the value of the "processing_ms" field in the mutation.
func (m *AnalysisVersionMutation) ProcessingMs() (r int64, exists bool) {
	v := m.processing_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMs returns the old "processing_ms" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldProcessingMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMs: %w", err)
	}
	return oldValue.ProcessingMs, nil
}

// AddProcessingMs adds i to the "processing_ms" field.
func (m *AnalysisVersionMutation) AddProcessingMs(i int64) {
	if m.addprocessing_ms != nil {
		*m.addprocessing_ms += i
	} else {
		m.addprocessing_ms = &i
	}
}

// AddedProcessingMs returns the value that was added to the "processing_ms" field in this mutation.
func (m *AnalysisVersionMutation) AddedProcessingMs() (r int64, exists bool) {
	v := m.addprocessing_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingMs resets all changes to the "processing_ms" field.
func (m *AnalysisVersionMutation) ResetProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisVersion entity.
// If the AnalysisVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AnalysisVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLegislation clears the "legislation" edge to the Legislation entity.
func (m *AnalysisVersionMutation) ClearLegislation() {
	m.clearedlegislation = true
	m.clearedFields[analysisversion.FieldLegislationID] = struct{}{}
}

// LegislationCleared reports if the "legislation" edge to the Legislation entity was cleared.
func (m *AnalysisVersionMutation) LegislationCleared() bool {
	return m.clearedlegislation
}

// LegislationIDs returns the "legislation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LegislationID instead. It exists only for internal usage by the builders.
func (m *AnalysisVersionMutation) LegislationIDs() (ids []uuid.UUID) {
	if id := m.legislation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLegislation resets all changes to the "legislation" edge.
func (m *AnalysisVersionMutation) ResetLegislation() {
	m.legislation = nil
	m.clearedlegislation = false
}

// Where appends a list predicates to the AnalysisVersionMutation builder.
func (m *AnalysisVersionMutation) Where(ps ...predicate.AnalysisVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisVersion).
func (m *AnalysisVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisVersionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.legislation != nil {
		fields = append(fields, analysisversion.FieldLegislationID)
	}
	if m.version_number != nil {
		fields = append(fields, analysisversion.FieldVersionNumber)
	}
	if m.predecessor_id != nil {
		fields = append(fields, analysisversion.FieldPredecessorID)
	}
	if m.fingerprint != nil {
		fields = append(fields, analysisversion.FieldFingerprint)
	}
	if m.model_name != nil {
		fields = append(fields, analysisversion.FieldModelName)
	}
	if m.schema_version != nil {
		fields = append(fields, analysisversion.FieldSchemaVersion)
	}
	if m.analysis_json != nil {
		fields = append(fields, analysisversion.FieldAnalysisJSON)
	}
	if m.confidence != nil {
		fields = append(fields, analysisversion.FieldConfidence)
	}
	if m.impact_level != nil {
		fields = append(fields, analysisversion.FieldImpactLevel)
	}
	if m.insufficient_text != nil {
		fields = append(fields, analysisversion.FieldInsufficientText)
	}
	if m.chunked != nil {
		fields = append(fields, analysisversion.FieldChunked)
	}
	if m.chunk_count != nil {
		fields = append(fields, analysisversion.FieldChunkCount)
	}
	if m.dropped_chunks != nil {
		fields = append(fields, analysisversion.FieldDroppedChunks)
	}
	if m.processing_ms != nil {
		fields = append(fields, analysisversion.FieldProcessingMs)
	}
	if m.created_at != nil {
		fields = append(fields, analysisversion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisversion.FieldLegislationID:
		return m.LegislationID()
	case analysisversion.FieldVersionNumber:
		return m.VersionNumber()
	case analysisversion.FieldPredecessorID:
		return m.PredecessorID()
	case analysisversion.FieldFingerprint:
		return m.Fingerprint()
	case analysisversion.FieldModelName:
		return m.ModelName()
	case analysisversion.FieldSchemaVersion:
		return m.SchemaVersion()
	case analysisversion.FieldAnalysisJSON:
		return m.AnalysisJSON()
	case analysisversion.FieldConfidence:
		return m.Confidence()
	case analysisversion.FieldImpactLevel:
		return m.ImpactLevel()
	case analysisversion.FieldInsufficientText:
		return m.InsufficientText()
	case analysisversion.FieldChunked:
		return m.Chunked()
	case analysisversion.FieldChunkCount:
		return m.ChunkCount()
	case analysisversion.FieldDroppedChunks:
		return m.DroppedChunks()
	case analysisversion.FieldProcessingMs:
		return m.ProcessingMs()
	case analysisversion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisversion.FieldLegislationID:
		return m.OldLegislationID(ctx)
	case analysisversion.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case analysisversion.FieldPredecessorID:
		return m.OldPredecessorID(ctx)
	case analysisversion.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case analysisversion.FieldModelName:
		return m.OldModelName(ctx)
	case analysisversion.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case analysisversion.FieldAnalysisJSON:
		return m.OldAnalysisJSON(ctx)
	case analysisversion.FieldConfidence:
		return m.OldConfidence(ctx)
	case analysisversion.FieldImpactLevel:
		return m.OldImpactLevel(ctx)
	case analysisversion.FieldInsufficientText:
		return m.OldInsufficientText(ctx)
	case analysisversion.FieldChunked:
		return m.OldChunked(ctx)
	case analysisversion.FieldChunkCount:
		return m.OldChunkCount(ctx)
	case analysisversion.FieldDroppedChunks:
		return m.OldDroppedChunks(ctx)
	case analysisversion.FieldProcessingMs:
		return m.OldProcessingMs(ctx)
	case analysisversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisversion.FieldLegislationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegislationID(v)
		return nil
	case analysisversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case analysisversion.FieldPredecessorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredecessorID(v)
		return nil
	case analysisversion.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case analysisversion.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case analysisversion.FieldSchemaVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case analysisversion.FieldAnalysisJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisJSON(v)
		return nil
	case analysisversion.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case analysisversion.FieldImpactLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpactLevel(v)
		return nil
	case analysisversion.FieldInsufficientText:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsufficientText(v)
		return nil
	case analysisversion.FieldChunked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunked(v)
		return nil
	case analysisversion.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkCount(v)
		return nil
	case analysisversion.FieldDroppedChunks:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDroppedChunks(v)
		return nil
	case analysisversion.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMs(v)
		return nil
	case analysisversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, analysisversion.FieldVersionNumber)
	}
	if m.addconfidence != nil {
		fields = append(fields, analysisversion.FieldConfidence)
	}
	if m.addchunk_count != nil {
		fields = append(fields, analysisversion.FieldChunkCount)
	}
	if m.addprocessing_ms != nil {
		fields = append(fields, analysisversion.FieldProcessingMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisversion.FieldVersionNumber:
		return m.AddedVersionNumber()
	case analysisversion.FieldConfidence:
		return m.AddedConfidence()
	case analysisversion.FieldChunkCount:
		return m.AddedChunkCount()
	case analysisversion.FieldProcessingMs:
		return m.AddedProcessingMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisversion.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	case analysisversion.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case analysisversion.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkCount(v)
		return nil
	case analysisversion.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingMs(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisversion.FieldPredecessorID) {
		fields = append(fields, analysisversion.FieldPredecessorID)
	}
	if m.FieldCleared(analysisversion.FieldConfidence) {
		fields = append(fields, analysisversion.FieldConfidence)
	}
	if m.FieldCleared(analysisversion.FieldImpactLevel) {
		fields = append(fields, analysisversion.FieldImpactLevel)
	}
	if m.FieldCleared(analysisversion.FieldDroppedChunks) {
		fields = append(fields, analysisversion.FieldDroppedChunks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisVersionMutation) ClearField(name string) error {
	switch name {
	case analysisversion.FieldPredecessorID:
		m.ClearPredecessorID()
		return nil
	case analysisversion.FieldConfidence:
		m.ClearConfidence()
		return nil
	case analysisversion.FieldImpactLevel:
		m.ClearImpactLevel()
		return nil
	case analysisversion.FieldDroppedChunks:
		m.ClearDroppedChunks()
		return nil
	}
	return fmt.Errorf("unknown AnalysisVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisVersionMutation) ResetField(name string) error {
	switch name {
	case analysisversion.FieldLegislationID:
		m.ResetLegislationID()
		return nil
	case analysisversion.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case analysisversion.FieldPredecessorID:
		m.ResetPredecessorID()
		return nil
	case analysisversion.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case analysisversion.FieldModelName:
		m.ResetModelName()
		return nil
	case analysisversion.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case analysisversion.FieldAnalysisJSON:
		m.ResetAnalysisJSON()
		return nil
	case analysisversion.FieldConfidence:
		m.ResetConfidence()
		return nil
	case analysisversion.FieldImpactLevel:
		m.ResetImpactLevel()
		return nil
	case analysisversion.FieldInsufficientText:
		m.ResetInsufficientText()
		return nil
	case analysisversion.FieldChunked:
		m.ResetChunked()
		return nil
	case analysisversion.FieldChunkCount:
		m.ResetChunkCount()
		return nil
	case analysisversion.FieldDroppedChunks:
		m.ResetDroppedChunks()
		return nil
	case analysisversion.FieldProcessingMs:
		m.ResetProcessingMs()
		return nil
	case analysisversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.legislation != nil {
		edges = append(edges, analysisversion.EdgeLegislation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisversion.EdgeLegislation:
		if id := m.legislation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlegislation {
		edges = append(edges, analysisversion.EdgeLegislation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisversion.EdgeLegislation:
		return m.clearedlegislation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisVersionMutation) ClearEdge(name string) error {
	switch name {
	case analysisversion.EdgeLegislation:
		m.ClearLegislation()
		return nil
	}
	return fmt.Errorf("unknown AnalysisVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisVersionMutation) ResetEdge(name string) error {
	switch name {
	case analysisversion.EdgeLegislation:
		m.ResetLegislation()
		return nil
	}
	return fmt.Errorf("unknown AnalysisVersion edge %s", name)
}

// LegislationMutation represents an operation that mutates the Legislation nodes in the graph.
type LegislationMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	external_id     *string
	bill_number     *string
	title           *string
	description     *string
	govt_type       *string
	govt_source     *string
	bill_status     *string
	url             *string
	last_action_at  *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	versions        map[uuid.UUID]struct{}
	removedversions map[uuid.UUID]struct{}
	clearedversions bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Legislation, error)
	predicates      []predicate.Legislation
}

var _ ent.Mutation = (*LegislationMutation)(nil)

// legislationOption allows management of the mutation configuration using functional options.
type legislationOption func(*LegislationMutation)

// newLegislationMutation creates new mutation for the Legislation entity.
func newLegislationMutation(c config, op Op, opts ...legislationOption) *LegislationMutation {
	m := &LegislationMutation{
		config:        c,
		op:            op,
		typ:           TypeLegislation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLegislationID sets the ID field of the mutation.
func withLegislationID(id uuid.UUID) legislationOption {
	return func(m *LegislationMutation) {
		var (
			err   error
			once  sync.Once
			value *Legislation
		)
		m.oldValue = func(ctx context.Context) (*Legislation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Legislation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLegislation sets the old Legislation of the mutation.
func withLegislation(node *Legislation) legislationOption {
	return func(m *LegislationMutation) {
		m.oldValue = func(context.Context) (*Legislation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LegislationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LegislationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Legislation entities.
func (m *LegislationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LegislationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LegislationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Legislation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *LegislationMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *LegislationMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *LegislationMutation) ResetExternalID() {
	m.external_id = nil
}

// SetBillNumber sets the "bill_number" field.
func (m *LegislationMutation) SetBillNumber(s string) {
	m.bill_number = &s
}

// BillNumber returns the value of the "bill_number" field in the mutation.
func (m *LegislationMutation) BillNumber() (r string, exists bool) {
	v := m.bill_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBillNumber returns the old "bill_number" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldBillNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillNumber: %w", err)
	}
	return oldValue.BillNumber, nil
}

// ResetBillNumber resets all changes to the "bill_number" field.
func (m *LegislationMutation) ResetBillNumber() {
	m.bill_number = nil
}

// SetTitle sets the "title" field.
func (m *LegislationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LegislationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LegislationMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *LegislationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LegislationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *LegislationMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[legislation.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *LegislationMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[legislation.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *LegislationMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, legislation.FieldDescription)
}

// SetGovtType sets the "govt_type" field.
func (m *LegislationMutation) SetGovtType(s string) {
	m.govt_type = &s
}

// GovtType returns the value of the "govt_type" field in the mutation.
func (m *LegislationMutation) GovtType() (r string, exists bool) {
	v := m.govt_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGovtType returns the old "govt_type" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldGovtType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGovtType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGovtType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGovtType: %w", err)
	}
	return oldValue.GovtType, nil
}

// ClearGovtType clears the value of the "govt_type" field.
func (m *LegislationMutation) ClearGovtType() {
	m.govt_type = nil
	m.clearedFields[legislation.FieldGovtType] = struct{}{}
}

// GovtTypeCleared returns if the "govt_type" field was cleared in this mutation.
func (m *LegislationMutation) GovtTypeCleared() bool {
	_, ok := m.clearedFields[legislation.FieldGovtType]
	return ok
}

// ResetGovtType resets all changes to the "govt_type" field.
func (m *LegislationMutation) ResetGovtType() {
	m.govt_type = nil
	delete(m.clearedFields, legislation.FieldGovtType)
}

// SetGovtSource sets the "govt_source" field.
func (m *LegislationMutation) SetGovtSource(s string) {
	m.govt_source = &s
}

// GovtSource returns the value of the "govt_source" field in the mutation.
func (m *LegislationMutation) GovtSource() (r string, exists bool) {
	v := m.govt_source
	if v == nil {
		return
	}
	return *v, true
}

// OldGovtSource returns the old "govt_source" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldGovtSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGovtSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGovtSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGovtSource: %w", err)
	}
	return oldValue.GovtSource, nil
}

// ClearGovtSource clears the value of the "govt_source" field.
func (m *LegislationMutation) ClearGovtSource() {
	m.govt_source = nil
	m.clearedFields[legislation.FieldGovtSource] = struct{}{}
}

// GovtSourceCleared returns if the "govt_source" field was cleared in this mutation.
func (m *LegislationMutation) GovtSourceCleared() bool {
	_, ok := m.clearedFields[legislation.FieldGovtSource]
	return ok
}

// ResetGovtSource resets all changes to the "govt_source" field.
func (m *LegislationMutation) ResetGovtSource() {
	m.govt_source = nil
	delete(m.clearedFields, legislation.FieldGovtSource)
}

// SetBillStatus sets the "bill_status" field.
func (m *LegislationMutation) SetBillStatus(s string) {
	m.bill_status = &s
}

// BillStatus returns the value of the "bill_status" field in the mutation.
func (m *LegislationMutation) BillStatus() (r string, exists bool) {
	v := m.bill_status
	if v == nil {
		return
	}
	return *v, true
}

// OldBillStatus returns the old "bill_status" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldBillStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBillStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBillStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBillStatus: %w", err)
	}
	return oldValue.BillStatus, nil
}

// ClearBillStatus clears the value of the "bill_status" field.
func (m *LegislationMutation) ClearBillStatus() {
	m.bill_status = nil
	m.clearedFields[legislation.FieldBillStatus] = struct{}{}
}

// BillStatusCleared returns if the "bill_status" field was cleared in this mutation.
func (m *LegislationMutation) BillStatusCleared() bool {
	_, ok := m.clearedFields[legislation.FieldBillStatus]
	return ok
}

// ResetBillStatus resets all changes to the "bill_status" field.
func (m *LegislationMutation) ResetBillStatus() {
	m.bill_status = nil
	delete(m.clearedFields, legislation.FieldBillStatus)
}

// SetURL sets the "url" field.
func (m *LegislationMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *LegislationMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *LegislationMutation) ClearURL() {
	m.url = nil
	m.clearedFields[legislation.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *LegislationMutation) URLCleared() bool {
	_, ok := m.clearedFields[legislation.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *LegislationMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, legislation.FieldURL)
}

// SetLastActionAt sets the "last_action_at" field.
func (m *LegislationMutation) SetLastActionAt(t time.Time) {
	m.last_action_at = &t
}

// LastActionAt returns the value of the "last_action_at" field in the mutation.
func (m *LegislationMutation) LastActionAt() (r time.Time, exists bool) {
	v := m.last_action_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActionAt returns the old "last_action_at" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldLastActionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActionAt: %w", err)
	}
	return oldValue.LastActionAt, nil
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (m *LegislationMutation) ClearLastActionAt() {
	m.last_action_at = nil
	m.clearedFields[legislation.FieldLastActionAt] = struct{}{}
}

// LastActionAtCleared returns if the "last_action_at" field was cleared in this mutation.
func (m *LegislationMutation) LastActionAtCleared() bool {
	_, ok := m.clearedFields[legislation.FieldLastActionAt]
	return ok
}

// ResetLastActionAt resets all changes to the "last_action_at" field.
func (m *LegislationMutation) ResetLastActionAt() {
	m.last_action_at = nil
	delete(m.clearedFields, legislation.FieldLastActionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LegislationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LegislationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LegislationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LegislationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LegislationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Legislation entity.
// If the Legislation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LegislationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *LegislationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddVersionIDs adds the "versions" edge to the AnalysisVersion entity by ids.
func (m *LegislationMutation) AddVersionIDs(ids ...uuid.UUID) {
	if m.versions == nil {
		m.versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the AnalysisVersion entity.
func (m *LegislationMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the AnalysisVersion entity was cleared.
func (m *LegislationMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the AnalysisVersion entity by IDs.
func (m *LegislationMutation) RemoveVersionIDs(ids ...uuid.UUID) {
	if m.removedversions == nil {
		m.removedversions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the AnalysisVersion entity.
func (m *LegislationMutation) RemovedVersionsIDs() (ids []uuid.UUID) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *LegislationMutation) VersionsIDs() (ids []uuid.UUID) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *LegislationMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by ids.
func (m *LegislationMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the AnalysisJob entity.
func (m *LegislationMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the AnalysisJob entity was cleared.
func (m *LegislationMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the AnalysisJob entity by IDs.
func (m *LegislationMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the AnalysisJob entity.
func (m *LegislationMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *LegislationMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *LegislationMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the LegislationMutation builder.
func (m *LegislationMutation) Where(ps ...predicate.Legislation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LegislationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LegislationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Legislation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LegislationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LegislationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Legislation).
func (m *LegislationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LegislationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.external_id != nil {
		fields = append(fields, legislation.FieldExternalID)
	}
	if m.bill_number != nil {
		fields = append(fields, legislation.FieldBillNumber)
	}
	if m.title != nil {
		fields = append(fields, legislation.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, legislation.FieldDescription)
	}
	if m.govt_type != nil {
		fields = append(fields, legislation.FieldGovtType)
	}
	if m.govt_source != nil {
		fields = append(fields, legislation.FieldGovtSource)
	}
	if m.bill_status != nil {
		fields = append(fields, legislation.FieldBillStatus)
	}
	if m.url != nil {
		fields = append(fields, legislation.FieldURL)
	}
	if m.last_action_at != nil {
		fields = append(fields, legislation.FieldLastActionAt)
	}
	if m.created_at != nil {
		fields = append(fields, legislation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, legislation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LegislationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case legislation.FieldExternalID:
		return m.ExternalID()
	case legislation.FieldBillNumber:
		return m.BillNumber()
	case legislation.FieldTitle:
		return m.Title()
	case legislation.FieldDescription:
		return m.Description()
	case legislation.FieldGovtType:
		return m.GovtType()
	case legislation.FieldGovtSource:
		return m.GovtSource()
	case legislation.FieldBillStatus:
		return m.BillStatus()
	case legislation.FieldURL:
		return m.URL()
	case legislation.FieldLastActionAt:
		return m.LastActionAt()
	case legislation.FieldCreatedAt:
		return m.CreatedAt()
	case legislation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LegislationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case legislation.FieldExternalID:
		return m.OldExternalID(ctx)
	case legislation.FieldBillNumber:
		return m.OldBillNumber(ctx)
	case legislation.FieldTitle:
		return m.OldTitle(ctx)
	case legislation.FieldDescription:
		return m.OldDescription(ctx)
	case legislation.FieldGovtType:
		return m.OldGovtType(ctx)
	case legislation.FieldGovtSource:
		return m.OldGovtSource(ctx)
	case legislation.FieldBillStatus:
		return m.OldBillStatus(ctx)
	case legislation.FieldURL:
		return m.OldURL(ctx)
	case legislation.FieldLastActionAt:
		return m.OldLastActionAt(ctx)
	case legislation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case legislation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Legislation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LegislationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case legislation.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case legislation.FieldBillNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillNumber(v)
		return nil
	case legislation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case legislation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case legislation.FieldGovtType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGovtType(v)
		return nil
	case legislation.FieldGovtSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGovtSource(v)
		return nil
	case legislation.FieldBillStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBillStatus(v)
		return nil
	case legislation.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case legislation.FieldLastActionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActionAt(v)
		return nil
	case legislation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case legislation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Legislation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LegislationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LegislationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LegislationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Legislation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LegislationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(legislation.FieldDescription) {
		fields = append(fields, legislation.FieldDescription)
	}
	if m.FieldCleared(legislation.FieldGovtType) {
		fields = append(fields, legislation.FieldGovtType)
	}
	if m.FieldCleared(legislation.FieldGovtSource) {
		fields = append(fields, legislation.FieldGovtSource)
	}
	if m.FieldCleared(legislation.FieldBillStatus) {
		fields = append(fields, legislation.FieldBillStatus)
	}
	if m.FieldCleared(legislation.FieldURL) {
		fields = append(fields, legislation.FieldURL)
	}
	if m.FieldCleared(legislation.FieldLastActionAt) {
		fields = append(fields, legislation.FieldLastActionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LegislationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LegislationMutation) ClearField(name string) error {
	switch name {
	case legislation.FieldDescription:
		m.ClearDescription()
		return nil
	case legislation.FieldGovtType:
		m.ClearGovtType()
		return nil
	case legislation.FieldGovtSource:
		m.ClearGovtSource()
		return nil
	case legislation.FieldBillStatus:
		m.ClearBillStatus()
		return nil
	case legislation.FieldURL:
		m.ClearURL()
		return nil
	case legislation.FieldLastActionAt:
		m.ClearLastActionAt()
		return nil
	}
	return fmt.Errorf("unknown Legislation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LegislationMutation) ResetField(name string) error {
	switch name {
	case legislation.FieldExternalID:
		m.ResetExternalID()
		return nil
	case legislation.FieldBillNumber:
		m.ResetBillNumber()
		return nil
	case legislation.FieldTitle:
		m.ResetTitle()
		return nil
	case legislation.FieldDescription:
		m.ResetDescription()
		return nil
	case legislation.FieldGovtType:
		m.ResetGovtType()
		return nil
	case legislation.FieldGovtSource:
		m.ResetGovtSource()
		return nil
	case legislation.FieldBillStatus:
		m.ResetBillStatus()
		return nil
	case legislation.FieldURL:
		m.ResetURL()
		return nil
	case legislation.FieldLastActionAt:
		m.ResetLastActionAt()
		return nil
	case legislation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case legislation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Legislation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LegislationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.versions != nil {
		edges = append(edges, legislation.EdgeVersions)
	}
	if m.jobs != nil {
		edges = append(edges, legislation.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LegislationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case legislation.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case legislation.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LegislationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedversions != nil {
		edges = append(edges, legislation.EdgeVersions)
	}
	if m.removedjobs != nil {
		edges = append(edges, legislation.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LegislationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case legislation.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	case legislation.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LegislationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedversions {
		edges = append(edges, legislation.EdgeVersions)
	}
	if m.clearedjobs {
		edges = append(edges, legislation.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LegislationMutation) EdgeCleared(name string) bool {
	switch name {
	case legislation.EdgeVersions:
		return m.clearedversions
	case legislation.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LegislationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Legislation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LegislationMutation) ResetEdge(name string) error {
	switch name {
	case legislation.EdgeVersions:
		m.ResetVersions()
		return nil
	case legislation.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Legislation edge %s", name)
}
