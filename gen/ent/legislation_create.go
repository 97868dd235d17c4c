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
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// LegislationCreate is the builder for creating a Legislation entity.
type LegislationCreate struct {
	config
	mutation *LegislationMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (_c *LegislationCreate) SetExternalID(v string) *LegislationCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetBillNumber sets the "bill_number" field.
func (_c *LegislationCreate) SetBillNumber(v string) *LegislationCreate {
	_c.mutation.SetBillNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LegislationCreate) SetTitle(v string) *LegislationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LegislationCreate) SetDescription(v string) *LegislationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableDescription(v *string) *LegislationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetGovtType sets the "govt_type" field.
func (_c *LegislationCreate) SetGovtType(v string) *LegislationCreate {
	_c.mutation.SetGovtType(v)
	return _c
}

// SetNillableGovtType sets the "govt_type" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableGovtType(v *string) *LegislationCreate {
	if v != nil {
		_c.SetGovtType(*v)
	}
	return _c
}

// SetGovtSource sets the "govt_source" field.
func (_c *LegislationCreate) SetGovtSource(v string) *LegislationCreate {
	_c.mutation.SetGovtSource(v)
	return _c
}

// SetNillableGovtSource sets the "govt_source" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableGovtSource(v *string) *LegislationCreate {
	if v != nil {
		_c.SetGovtSource(*v)
	}
	return _c
}

// SetBillStatus sets the "bill_status" field.
func (_c *LegislationCreate) SetBillStatus(v string) *LegislationCreate {
	_c.mutation.SetBillStatus(v)
	return _c
}

// SetNillableBillStatus sets the "bill_status" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableBillStatus(v *string) *LegislationCreate {
	if v != nil {
		_c.SetBillStatus(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *LegislationCreate) SetURL(v string) *LegislationCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableURL(v *string) *LegislationCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetLastActionAt sets the "last_action_at" field.
func (_c *LegislationCreate) SetLastActionAt(v time.Time) *LegislationCreate {
	_c.mutation.SetLastActionAt(v)
	return _c
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableLastActionAt(v *time.Time) *LegislationCreate {
	if v != nil {
		_c.SetLastActionAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LegislationCreate) SetCreatedAt(v time.Time) *LegislationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableCreatedAt(v *time.Time) *LegislationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LegislationCreate) SetUpdatedAt(v time.Time) *LegislationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableUpdatedAt(v *time.Time) *LegislationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LegislationCreate) SetID(v uuid.UUID) *LegislationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LegislationCreate) SetNillableID(v *uuid.UUID) *LegislationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddVersionIDs adds the "versions" edge to the AnalysisVersion entity by IDs.
func (_c *LegislationCreate) AddVersionIDs(ids ...uuid.UUID) *LegislationCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the AnalysisVersion entity.
func (_c *LegislationCreate) AddVersions(v ...*AnalysisVersion) *LegislationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by IDs.
func (_c *LegislationCreate) AddJobIDs(ids ...uuid.UUID) *LegislationCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the AnalysisJob entity.
func (_c *LegislationCreate) AddJobs(v ...*AnalysisJob) *LegislationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the LegislationMutation object of the builder.
func (_c *LegislationCreate) Mutation() *LegislationMutation {
	return _c.mutation
}

// Save creates the Legislation in the database.
func (_c *LegislationCreate) Save(ctx context.Context) (*Legislation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LegislationCreate) SaveX(ctx context.Context) *Legislation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LegislationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LegislationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LegislationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := legislation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := legislation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := legislation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LegislationCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Legislation.external_id"`)}
	}
	if v, ok := _c.mutation.ExternalID(); ok {
		if err := legislation.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "Legislation.external_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BillNumber(); !ok {
		return &ValidationError{Name: "bill_number", err: errors.New(`ent: missing required field "Legislation.bill_number"`)}
	}
	if v, ok := _c.mutation.BillNumber(); ok {
		if err := legislation.BillNumberValidator(v); err != nil {
			return &ValidationError{Name: "bill_number", err: fmt.Errorf(`ent: validator failed for field "Legislation.bill_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Legislation.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := legislation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Legislation.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Legislation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Legislation.updated_at"`)}
	}
	return nil
}

func (_c *LegislationCreate) sqlSave(ctx context.Context) (*Legislation, error) {
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

func (_c *LegislationCreate) createSpec() (*Legislation, *sqlgraph.CreateSpec) {
	var (
		_node = &Legislation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(legislation.Table, sqlgraph.NewFieldSpec(legislation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(legislation.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.BillNumber(); ok {
		_spec.SetField(legislation.FieldBillNumber, field.TypeString, value)
		_node.BillNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(legislation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(legislation.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.GovtType(); ok {
		_spec.SetField(legislation.FieldGovtType, field.TypeString, value)
		_node.GovtType = &value
	}
	if value, ok := _c.mutation.GovtSource(); ok {
		_spec.SetField(legislation.FieldGovtSource, field.TypeString, value)
		_node.GovtSource = &value
	}
	if value, ok := _c.mutation.BillStatus(); ok {
		_spec.SetField(legislation.FieldBillStatus, field.TypeString, value)
		_node.BillStatus = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(legislation.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.LastActionAt(); ok {
		_spec.SetField(legislation.FieldLastActionAt, field.TypeTime, value)
		_node.LastActionAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(legislation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(legislation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   legislation.VersionsTable,
			Columns: []string{legislation.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisversion.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   legislation.JobsTable,
			Columns: []string{legislation.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LegislationCreateBulk is the builder for creating many Legislation entities in bulk.
type LegislationCreateBulk struct {
	config
	err      error
	builders []*LegislationCreate
}

// Save creates the Legislation entities in the database.
func (_c *LegislationCreateBulk) Save(ctx context.Context) ([]*Legislation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Legislation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LegislationMutation)
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
func (_c *LegislationCreateBulk) SaveX(ctx context.Context) []*Legislation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LegislationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LegislationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
