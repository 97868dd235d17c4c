// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/analysisjob"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// AnalysisJobCreate is the builder for creating a AnalysisJob entity.
type AnalysisJobCreate struct {
	config
	mutation *AnalysisJobMutation
	hooks    []Hook
}

// SetLegislationID sets the "legislation_id" field.
func (_c *AnalysisJobCreate) SetLegislationID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetLegislationID(v)
	return _c
}

// SetVersionID sets the "version_id" field.
func (_c *AnalysisJobCreate) SetVersionID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetVersionID(v)
	return _c
}

// SetNillableVersionID sets the "version_id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableVersionID(v *uuid.UUID) *AnalysisJobCreate {
	if v != nil {
		_c.SetVersionID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisJobCreate) SetStatus(v string) *AnalysisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetContentKind sets the "content_kind" field.
func (_c *AnalysisJobCreate) SetContentKind(v string) *AnalysisJobCreate {
	_c.mutation.SetContentKind(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *AnalysisJobCreate) SetFingerprint(v string) *AnalysisJobCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableFingerprint(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetFingerprint(*v)
	}
	return _c
}

// SetCacheHit sets the "cache_hit" field.
func (_c *AnalysisJobCreate) SetCacheHit(v bool) *AnalysisJobCreate {
	_c.mutation.SetCacheHit(v)
	return _c
}

// SetNillableCacheHit sets the "cache_hit" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCacheHit(v *bool) *AnalysisJobCreate {
	if v != nil {
		_c.SetCacheHit(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisJobCreate) SetErrorMessage(v string) *AnalysisJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableErrorMessage(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisJobCreate) SetStartedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStartedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AnalysisJobCreate) SetFinishedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableFinishedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisJobCreate) SetID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableID(v *uuid.UUID) *AnalysisJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLegislation sets the "legislation" edge to the Legislation entity.
func (_c *AnalysisJobCreate) SetLegislation(v *Legislation) *AnalysisJobCreate {
	return _c.SetLegislationID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_c *AnalysisJobCreate) Mutation() *AnalysisJobMutation {
	return _c.mutation
}

// Save creates the AnalysisJob in the database.
func (_c *AnalysisJobCreate) Save(ctx context.Context) (*AnalysisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisJobCreate) SaveX(ctx context.Context) *AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisJobCreate) defaults() {
	if _, ok := _c.mutation.CacheHit(); !ok {
		v := analysisjob.DefaultCacheHit
		_c.mutation.SetCacheHit(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := analysisjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisJobCreate) check() error {
	if _, ok := _c.mutation.LegislationID(); !ok {
		return &ValidationError{Name: "legislation_id", err: errors.New(`ent: missing required field "AnalysisJob.legislation_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentKind(); !ok {
		return &ValidationError{Name: "content_kind", err: errors.New(`ent: missing required field "AnalysisJob.content_kind"`)}
	}
	if v, ok := _c.mutation.ContentKind(); ok {
		if err := analysisjob.ContentKindValidator(v); err != nil {
			return &ValidationError{Name: "content_kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.content_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CacheHit(); !ok {
		return &ValidationError{Name: "cache_hit", err: errors.New(`ent: missing required field "AnalysisJob.cache_hit"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AnalysisJob.started_at"`)}
	}
	if len(_c.mutation.LegislationIDs()) == 0 {
		return &ValidationError{Name: "legislation", err: errors.New(`ent: missing required edge "AnalysisJob.legislation"`)}
	}
	return nil
}

func (_c *AnalysisJobCreate) sqlSave(ctx context.Context) (*AnalysisJob, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisJobCreate) createSpec() (*AnalysisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VersionID(); ok {
		_spec.SetField(analysisjob.FieldVersionID, field.TypeUUID, value)
		_node.VersionID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContentKind(); ok {
		_spec.SetField(analysisjob.FieldContentKind, field.TypeString, value)
		_node.ContentKind = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(analysisjob.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = &value
	}
	if value, ok := _c.mutation.CacheHit(); ok {
		_spec.SetField(analysisjob.FieldCacheHit, field.TypeBool, value)
		_node.CacheHit = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(analysisjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.LegislationIDs(); len(nodes) > 0 {
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
		_node.LegislationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisJobCreateBulk is the builder for creating many AnalysisJob entities in bulk.
type AnalysisJobCreateBulk struct {
	config
	err      error
	builders []*AnalysisJobCreate
}

// Save creates the AnalysisJob entities in the database.
func (_c *AnalysisJobCreateBulk) Save(ctx context.Context) ([]*AnalysisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisJobMutation)
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
func (_c *AnalysisJobCreateBulk) SaveX(ctx context.Context) []*AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
