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
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/analysisjob"
	"github.com/policypulse/policypulse/gen/ent/legislation"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

// AnalysisJobUpdate is the builder for updating AnalysisJob entities.
type AnalysisJobUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdate) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLegislationID sets the "legislation_id" field.
func (_u *AnalysisJobUpdate) SetLegislationID(v uuid.UUID) *AnalysisJobUpdate {
	_u.mutation.SetLegislationID(v)
	return _u
}

// SetNillableLegislationID sets the "legislation_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableLegislationID(v *uuid.UUID) *AnalysisJobUpdate {
	if v != nil {
		_u.SetLegislationID(*v)
	}
	return _u
}

// SetVersionID sets the "version_id" field.
func (_u *AnalysisJobUpdate) SetVersionID(v uuid.UUID) *AnalysisJobUpdate {
	_u.mutation.SetVersionID(v)
	return _u
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableVersionID(v *uuid.UUID) *AnalysisJobUpdate {
	if v != nil {
		_u.SetVersionID(*v)
	}
	return _u
}

// ClearVersionID clears the value of the "version_id" field.
func (_u *AnalysisJobUpdate) ClearVersionID() *AnalysisJobUpdate {
	_u.mutation.ClearVersionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdate) SetStatus(v string) *AnalysisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStatus(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentKind sets the "content_kind" field.
func (_u *AnalysisJobUpdate) SetContentKind(v string) *AnalysisJobUpdate {
	_u.mutation.SetContentKind(v)
	return _u
}

// SetNillableContentKind sets the "content_kind" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableContentKind(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetContentKind(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnalysisJobUpdate) SetFingerprint(v string) *AnalysisJobUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableFingerprint(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *AnalysisJobUpdate) ClearFingerprint() *AnalysisJobUpdate {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *AnalysisJobUpdate) SetCacheHit(v bool) *AnalysisJobUpdate {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCacheHit(v *bool) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdate) SetErrorMessage(v string) *AnalysisJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableErrorMessage(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdate) ClearErrorMessage() *AnalysisJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdate) SetStartedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnalysisJobUpdate) SetFinishedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableFinishedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnalysisJobUpdate) ClearFinishedAt() *AnalysisJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLegislation sets the "legislation" edge to the Legislation entity.
func (_u *AnalysisJobUpdate) SetLegislation(v *Legislation) *AnalysisJobUpdate {
	return _u.SetLegislationID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdate) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearLegislation clears the "legislation" edge to the Legislation entity.
func (_u *AnalysisJobUpdate) ClearLegislation() *AnalysisJobUpdate {
	_u.mutation.ClearLegislation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentKind(); ok {
		if err := analysisjob.ContentKindValidator(v); err != nil {
			return &ValidationError{Name: "content_kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.content_kind": %w`, err)}
		}
	}
	if _u.mutation.LegislationCleared() && len(_u.mutation.LegislationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.legislation"`)
	}
	return nil
}

func (_u *AnalysisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VersionID(); ok {
		_spec.SetField(analysisjob.FieldVersionID, field.TypeUUID, value)
	}
	if _u.mutation.VersionIDCleared() {
		_spec.ClearField(analysisjob.FieldVersionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentKind(); ok {
		_spec.SetField(analysisjob.FieldContentKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(analysisjob.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(analysisjob.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(analysisjob.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(analysisjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(analysisjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.LegislationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.LegislationTable,
			Columns: []string{analysisjob.LegislationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legislation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LegislationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.LegislationTable,
			Columns: []string{analysisjob.LegislationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legislation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisJobUpdateOne is the builder for updating a single AnalysisJob entity.
type AnalysisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// SetLegislationID sets the "legislation_id" field.
func (_u *AnalysisJobUpdateOne) SetLegislationID(v uuid.UUID) *AnalysisJobUpdateOne {
	_u.mutation.SetLegislationID(v)
	return _u
}

// SetNillableLegislationID sets the "legislation_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableLegislationID(v *uuid.UUID) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetLegislationID(*v)
	}
	return _u
}

// SetVersionID sets the "version_id" field.
func (_u *AnalysisJobUpdateOne) SetVersionID(v uuid.UUID) *AnalysisJobUpdateOne {
	_u.mutation.SetVersionID(v)
	return _u
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableVersionID(v *uuid.UUID) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetVersionID(*v)
	}
	return _u
}

// ClearVersionID clears the value of the "version_id" field.
func (_u *AnalysisJobUpdateOne) ClearVersionID() *AnalysisJobUpdateOne {
	_u.mutation.ClearVersionID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdateOne) SetStatus(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStatus(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentKind sets the "content_kind" field.
func (_u *AnalysisJobUpdateOne) SetContentKind(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetContentKind(v)
	return _u
}

// SetNillableContentKind sets the "content_kind" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableContentKind(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetContentKind(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnalysisJobUpdateOne) SetFingerprint(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableFingerprint(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// ClearFingerprint clears the value of the "fingerprint" field.
func (_u *AnalysisJobUpdateOne) ClearFingerprint() *AnalysisJobUpdateOne {
	_u.mutation.ClearFingerprint()
	return _u
}

// SetCacheHit sets the "cache_hit" field.
func (_u *AnalysisJobUpdateOne) SetCacheHit(v bool) *AnalysisJobUpdateOne {
	_u.mutation.SetCacheHit(v)
	return _u
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCacheHit(v *bool) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCacheHit(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdateOne) SetErrorMessage(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableErrorMessage(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdateOne) ClearErrorMessage() *AnalysisJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdateOne) SetStartedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnalysisJobUpdateOne) SetFinishedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableFinishedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnalysisJobUpdateOne) ClearFinishedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLegislation sets the "legislation" edge to the Legislation entity.
func (_u *AnalysisJobUpdateOne) SetLegislation(v *Legislation) *AnalysisJobUpdateOne {
	return _u.SetLegislationID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdateOne) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearLegislation clears the "legislation" edge to the Legislation entity.
func (_u *AnalysisJobUpdateOne) ClearLegislation() *AnalysisJobUpdateOne {
	_u.mutation.ClearLegislation()
	return _u
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdateOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisJobUpdateOne) Select(field string, fields ...string) *AnalysisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisJob entity.
func (_u *AnalysisJobUpdateOne) Save(ctx context.Context) (*AnalysisJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) SaveX(ctx context.Context) *AnalysisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentKind(); ok {
		if err := analysisjob.ContentKindValidator(v); err != nil {
			return &ValidationError{Name: "content_kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.content_kind": %w`, err)}
		}
	}
	if _u.mutation.LegislationCleared() && len(_u.mutation.LegislationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.legislation"`)
	}
	return nil
}

func (_u *AnalysisJobUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisjob.FieldID)
		for _, f := range fields {
			if !analysisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisjob.FieldID {
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
	if value, ok := _u.mutation.VersionID(); ok {
		_spec.SetField(analysisjob.FieldVersionID, field.TypeUUID, value)
	}
	if _u.mutation.VersionIDCleared() {
		_spec.ClearField(analysisjob.FieldVersionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentKind(); ok {
		_spec.SetField(analysisjob.FieldContentKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(analysisjob.FieldFingerprint, field.TypeString, value)
	}
	if _u.mutation.FingerprintCleared() {
		_spec.ClearField(analysisjob.FieldFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.CacheHit(); ok {
		_spec.SetField(analysisjob.FieldCacheHit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(analysisjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(analysisjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.LegislationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.LegislationTable,
			Columns: []string{analysisjob.LegislationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legislation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LegislationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.LegislationTable,
			Columns: []string{analysisjob.LegislationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(legislation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
