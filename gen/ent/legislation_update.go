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
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

// LegislationUpdate is the builder for updating Legislation entities.
type LegislationUpdate struct {
	config
	hooks    []Hook
	mutation *LegislationMutation
}

// Where appends a list predicates to the LegislationUpdate builder.
func (_u *LegislationUpdate) Where(ps ...predicate.Legislation) *LegislationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *LegislationUpdate) SetExternalID(v string) *LegislationUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableExternalID(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetBillNumber sets the "bill_number" field.
func (_u *LegislationUpdate) SetBillNumber(v string) *LegislationUpdate {
	_u.mutation.SetBillNumber(v)
	return _u
}

// SetNillableBillNumber sets the "bill_number" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableBillNumber(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetBillNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LegislationUpdate) SetTitle(v string) *LegislationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableTitle(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LegislationUpdate) SetDescription(v string) *LegislationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableDescription(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *LegislationUpdate) ClearDescription() *LegislationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetGovtType sets the "govt_type" field.
func (_u *LegislationUpdate) SetGovtType(v string) *LegislationUpdate {
	_u.mutation.SetGovtType(v)
	return _u
}

// SetNillableGovtType sets the "govt_type" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableGovtType(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetGovtType(*v)
	}
	return _u
}

// ClearGovtType clears the value of the "govt_type" field.
func (_u *LegislationUpdate) ClearGovtType() *LegislationUpdate {
	_u.mutation.ClearGovtType()
	return _u
}

// SetGovtSource sets the "govt_source" field.
func (_u *LegislationUpdate) SetGovtSource(v string) *LegislationUpdate {
	_u.mutation.SetGovtSource(v)
	return _u
}

// SetNillableGovtSource sets the "govt_source" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableGovtSource(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetGovtSource(*v)
	}
	return _u
}

// ClearGovtSource clears the value of the "govt_source" field.
func (_u *LegislationUpdate) ClearGovtSource() *LegislationUpdate {
	_u.mutation.ClearGovtSource()
	return _u
}

// SetBillStatus sets the "bill_status" field.
func (_u *LegislationUpdate) SetBillStatus(v string) *LegislationUpdate {
	_u.mutation.SetBillStatus(v)
	return _u
}

// SetNillableBillStatus sets the "bill_status" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableBillStatus(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetBillStatus(*v)
	}
	return _u
}

// ClearBillStatus clears the value of the "bill_status" field.
func (_u *LegislationUpdate) ClearBillStatus() *LegislationUpdate {
	_u.mutation.ClearBillStatus()
	return _u
}

// SetURL sets the "url" field.
func (_u *LegislationUpdate) SetURL(v string) *LegislationUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableURL(v *string) *LegislationUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *LegislationUpdate) ClearURL() *LegislationUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetLastActionAt sets the "last_action_at" field.
func (_u *LegislationUpdate) SetLastActionAt(v time.Time) *LegislationUpdate {
	_u.mutation.SetLastActionAt(v)
	return _u
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableLastActionAt(v *time.Time) *LegislationUpdate {
	if v != nil {
		_u.SetLastActionAt(*v)
	}
	return _u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (_u *LegislationUpdate) ClearLastActionAt() *LegislationUpdate {
	_u.mutation.ClearLastActionAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LegislationUpdate) SetCreatedAt(v time.Time) *LegislationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LegislationUpdate) SetNillableCreatedAt(v *time.Time) *LegislationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LegislationUpdate) SetUpdatedAt(v time.Time) *LegislationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVersionIDs adds the "versions" edge to the AnalysisVersion entity by IDs.
func (_u *LegislationUpdate) AddVersionIDs(ids ...uuid.UUID) *LegislationUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the AnalysisVersion entity.
func (_u *LegislationUpdate) AddVersions(v ...*AnalysisVersion) *LegislationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by IDs.
func (_u *LegislationUpdate) AddJobIDs(ids ...uuid.UUID) *LegislationUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the AnalysisJob entity.
func (_u *LegislationUpdate) AddJobs(v ...*AnalysisJob) *LegislationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LegislationMutation object of the builder.
func (_u *LegislationUpdate) Mutation() *LegislationMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the AnalysisVersion entity.
func (_u *LegislationUpdate) ClearVersions() *LegislationUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to AnalysisVersion entities by IDs.
func (_u *LegislationUpdate) RemoveVersionIDs(ids ...uuid.UUID) *LegislationUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to AnalysisVersion entities.
func (_u *LegislationUpdate) RemoveVersions(v ...*AnalysisVersion) *LegislationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the AnalysisJob entity.
func (_u *LegislationUpdate) ClearJobs() *LegislationUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to AnalysisJob entities by IDs.
func (_u *LegislationUpdate) RemoveJobIDs(ids ...uuid.UUID) *LegislationUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to AnalysisJob entities.
func (_u *LegislationUpdate) RemoveJobs(v ...*AnalysisJob) *LegislationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LegislationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LegislationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LegislationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LegislationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LegislationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := legislation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LegislationUpdate) check() error {
	if v, ok := _u.mutation.ExternalID(); ok {
		if err := legislation.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "Legislation.external_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillNumber(); ok {
		if err := legislation.BillNumberValidator(v); err != nil {
			return &ValidationError{Name: "bill_number", err: fmt.Errorf(`ent: validator failed for field "Legislation.bill_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := legislation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Legislation.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LegislationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(legislation.Table, legislation.Columns, sqlgraph.NewFieldSpec(legislation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(legislation.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillNumber(); ok {
		_spec.SetField(legislation.FieldBillNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(legislation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(legislation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(legislation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GovtType(); ok {
		_spec.SetField(legislation.FieldGovtType, field.TypeString, value)
	}
	if _u.mutation.GovtTypeCleared() {
		_spec.ClearField(legislation.FieldGovtType, field.TypeString)
	}
	if value, ok := _u.mutation.GovtSource(); ok {
		_spec.SetField(legislation.FieldGovtSource, field.TypeString, value)
	}
	if _u.mutation.GovtSourceCleared() {
		_spec.ClearField(legislation.FieldGovtSource, field.TypeString)
	}
	if value, ok := _u.mutation.BillStatus(); ok {
		_spec.SetField(legislation.FieldBillStatus, field.TypeString, value)
	}
	if _u.mutation.BillStatusCleared() {
		_spec.ClearField(legislation.FieldBillStatus, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(legislation.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(legislation.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastActionAt(); ok {
		_spec.SetField(legislation.FieldLastActionAt, field.TypeTime, value)
	}
	if _u.mutation.LastActionAtCleared() {
		_spec.ClearField(legislation.FieldLastActionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(legislation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(legislation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{legislation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LegislationUpdateOne is the builder for updating a single Legislation entity.
type LegislationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LegislationMutation
}

// SetExternalID sets the "external_id" field.
func (_u *LegislationUpdateOne) SetExternalID(v string) *LegislationUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableExternalID(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetBillNumber sets the "bill_number" field.
func (_u *LegislationUpdateOne) SetBillNumber(v string) *LegislationUpdateOne {
	_u.mutation.SetBillNumber(v)
	return _u
}

// SetNillableBillNumber sets the "bill_number" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableBillNumber(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetBillNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LegislationUpdateOne) SetTitle(v string) *LegislationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableTitle(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LegislationUpdateOne) SetDescription(v string) *LegislationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableDescription(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *LegislationUpdateOne) ClearDescription() *LegislationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetGovtType sets the "govt_type" field.
func (_u *LegislationUpdateOne) SetGovtType(v string) *LegislationUpdateOne {
	_u.mutation.SetGovtType(v)
	return _u
}

// SetNillableGovtType sets the "govt_type" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableGovtType(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetGovtType(*v)
	}
	return _u
}

// ClearGovtType clears the value of the "govt_type" field.
func (_u *LegislationUpdateOne) ClearGovtType() *LegislationUpdateOne {
	_u.mutation.ClearGovtType()
	return _u
}

// SetGovtSource sets the "govt_source" field.
func (_u *LegislationUpdateOne) SetGovtSource(v string) *LegislationUpdateOne {
	_u.mutation.SetGovtSource(v)
	return _u
}

// SetNillableGovtSource sets the "govt_source" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableGovtSource(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetGovtSource(*v)
	}
	return _u
}

// ClearGovtSource clears the value of the "govt_source" field.
func (_u *LegislationUpdateOne) ClearGovtSource() *LegislationUpdateOne {
	_u.mutation.ClearGovtSource()
	return _u
}

// SetBillStatus sets the "bill_status" field.
func (_u *LegislationUpdateOne) SetBillStatus(v string) *LegislationUpdateOne {
	_u.mutation.SetBillStatus(v)
	return _u
}

// SetNillableBillStatus sets the "bill_status" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableBillStatus(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetBillStatus(*v)
	}
	return _u
}

// ClearBillStatus clears the value of the "bill_status" field.
func (_u *LegislationUpdateOne) ClearBillStatus() *LegislationUpdateOne {
	_u.mutation.ClearBillStatus()
	return _u
}

// SetURL sets the "url" field.
func (_u *LegislationUpdateOne) SetURL(v string) *LegislationUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableURL(v *string) *LegislationUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *LegislationUpdateOne) ClearURL() *LegislationUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetLastActionAt sets the "last_action_at" field.
func (_u *LegislationUpdateOne) SetLastActionAt(v time.Time) *LegislationUpdateOne {
	_u.mutation.SetLastActionAt(v)
	return _u
}

// SetNillableLastActionAt sets the "last_action_at" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableLastActionAt(v *time.Time) *LegislationUpdateOne {
	if v != nil {
		_u.SetLastActionAt(*v)
	}
	return _u
}

// ClearLastActionAt clears the value of the "last_action_at" field.
func (_u *LegislationUpdateOne) ClearLastActionAt() *LegislationUpdateOne {
	_u.mutation.ClearLastActionAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *LegislationUpdateOne) SetCreatedAt(v time.Time) *LegislationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *LegislationUpdateOne) SetNillableCreatedAt(v *time.Time) *LegislationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LegislationUpdateOne) SetUpdatedAt(v time.Time) *LegislationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVersionIDs adds the "versions" edge to the AnalysisVersion entity by IDs.
func (_u *LegislationUpdateOne) AddVersionIDs(ids ...uuid.UUID) *LegislationUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the AnalysisVersion entity.
func (_u *LegislationUpdateOne) AddVersions(v ...*AnalysisVersion) *LegislationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the AnalysisJob entity by IDs.
func (_u *LegislationUpdateOne) AddJobIDs(ids ...uuid.UUID) *LegislationUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the AnalysisJob entity.
func (_u *LegislationUpdateOne) AddJobs(v ...*AnalysisJob) *LegislationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the LegislationMutation object of the builder.
func (_u *LegislationUpdateOne) Mutation() *LegislationMutation {
	return _u.mutation
}

// ClearVersions clears all "versions" edges to the AnalysisVersion entity.
func (_u *LegislationUpdateOne) ClearVersions() *LegislationUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to AnalysisVersion entities by IDs.
func (_u *LegislationUpdateOne) RemoveVersionIDs(ids ...uuid.UUID) *LegislationUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to AnalysisVersion entities.
func (_u *LegislationUpdateOne) RemoveVersions(v ...*AnalysisVersion) *LegislationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the AnalysisJob entity.
func (_u *LegislationUpdateOne) ClearJobs() *LegislationUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to AnalysisJob entities by IDs.
func (_u *LegislationUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *LegislationUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to AnalysisJob entities.
func (_u *LegislationUpdateOne) RemoveJobs(v ...*AnalysisJob) *LegislationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the LegislationUpdate builder.
func (_u *LegislationUpdateOne) Where(ps ...predicate.Legislation) *LegislationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LegislationUpdateOne) Select(field string, fields ...string) *LegislationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Legislation entity.
func (_u *LegislationUpdateOne) Save(ctx context.Context) (*Legislation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LegislationUpdateOne) SaveX(ctx context.Context) *Legislation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LegislationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LegislationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LegislationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := legislation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LegislationUpdateOne) check() error {
	if v, ok := _u.mutation.ExternalID(); ok {
		if err := legislation.ExternalIDValidator(v); err != nil {
			return &ValidationError{Name: "external_id", err: fmt.Errorf(`ent: validator failed for field "Legislation.external_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillNumber(); ok {
		if err := legislation.BillNumberValidator(v); err != nil {
			return &ValidationError{Name: "bill_number", err: fmt.Errorf(`ent: validator failed for field "Legislation.bill_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := legislation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Legislation.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LegislationUpdateOne) sqlSave(ctx context.Context) (_node *Legislation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(legislation.Table, legislation.Columns, sqlgraph.NewFieldSpec(legislation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Legislation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, legislation.FieldID)
		for _, f := range fields {
			if !legislation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != legislation.FieldID {
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
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(legislation.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BillNumber(); ok {
		_spec.SetField(legislation.FieldBillNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(legislation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(legislation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(legislation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GovtType(); ok {
		_spec.SetField(legislation.FieldGovtType, field.TypeString, value)
	}
	if _u.mutation.GovtTypeCleared() {
		_spec.ClearField(legislation.FieldGovtType, field.TypeString)
	}
	if value, ok := _u.mutation.GovtSource(); ok {
		_spec.SetField(legislation.FieldGovtSource, field.TypeString, value)
	}
	if _u.mutation.GovtSourceCleared() {
		_spec.ClearField(legislation.FieldGovtSource, field.TypeString)
	}
	if value, ok := _u.mutation.BillStatus(); ok {
		_spec.SetField(legislation.FieldBillStatus, field.TypeString, value)
	}
	if _u.mutation.BillStatusCleared() {
		_spec.ClearField(legislation.FieldBillStatus, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(legislation.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(legislation.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.LastActionAt(); ok {
		_spec.SetField(legislation.FieldLastActionAt, field.TypeTime, value)
	}
	if _u.mutation.LastActionAtCleared() {
		_spec.ClearField(legislation.FieldLastActionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(legislation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(legislation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Legislation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{legislation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
