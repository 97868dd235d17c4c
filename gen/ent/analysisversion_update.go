// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

// AnalysisVersionUpdate is the builder for updating AnalysisVersion entities.
type AnalysisVersionUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisVersionMutation
}

// Where appends a list predicates to the AnalysisVersionUpdate builder.
func (_u *AnalysisVersionUpdate) Where(ps ...predicate.AnalysisVersion) *AnalysisVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLegislationID sets the "legislation_id" field.
func (_u *AnalysisVersionUpdate) SetLegislationID(v uuid.UUID) *AnalysisVersionUpdate {
	_u.mutation.SetLegislationID(v)
	return _u
}

// SetNillableLegislationID sets the "legislation_id" field if the given value is not nil.
func (_u *AnalysisVersionUpdate) SetNillableLegislationID(v *uuid.UUID) *AnalysisVersionUpdate {
	if v != nil {
		_u.SetLegislationID(*v)
	}
	return _u
}

// SetDroppedChunks sets the "dropped_chunks" field.
func (_u *AnalysisVersionUpdate) SetDroppedChunks(v []int) *AnalysisVersionUpdate {
	_u.mutation.SetDroppedChunks(v)
	return _u
}

// AppendDroppedChunks appends value to the "dropped_chunks" field.
func (_u *AnalysisVersionUpdate) AppendDroppedChunks(v []int) *AnalysisVersionUpdate {
	_u.mutation.AppendDroppedChunks(v)
	return _u
}

// ClearDroppedChunks clears the value of the "dropped_chunks" field.
func (_u *AnalysisVersionUpdate) ClearDroppedChunks() *AnalysisVersionUpdate {
	_u.mutation.ClearDroppedChunks()
	return _u
}

// SetLegislation sets the "legislation" edge to the Legislation entity.
func (_u *AnalysisVersionUpdate) SetLegislation(v *Legislation) *AnalysisVersionUpdate {
	return _u.SetLegislationID(v.ID)
}

// Mutation returns the AnalysisVersionMutation object of the builder.
func (_u *AnalysisVersionUpdate) Mutation() *AnalysisVersionMutation {
	return _u.mutation
}

// ClearLegislation clears the "legislation" edge to the Legislation entity.
func (_u *AnalysisVersionUpdate) ClearLegislation() *AnalysisVersionUpdate {
	_u.mutation.ClearLegislation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisVersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisVersionUpdate) check() error {
	if _u.mutation.LegislationCleared() && len(_u.mutation.LegislationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisVersion.legislation"`)
	}
	return nil
}

func (_u *AnalysisVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisversion.Table, analysisversion.Columns, sqlgraph.NewFieldSpec(analysisversion.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.PredecessorIDCleared() {
		_spec.ClearField(analysisversion.FieldPredecessorID, field.TypeUUID)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(analysisversion.FieldConfidence, field.TypeFloat64)
	}
	if _u.mutation.ImpactLevelCleared() {
		_spec.ClearField(analysisversion.FieldImpactLevel, field.TypeString)
	}
	if value, ok := _u.mutation.DroppedChunks(); ok {
		_spec.SetField(analysisversion.FieldDroppedChunks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDroppedChunks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisversion.FieldDroppedChunks, value)
		})
	}
	if _u.mutation.DroppedChunksCleared() {
		_spec.ClearField(analysisversion.FieldDroppedChunks, field.TypeJSON)
	}
	if _u.mutation.LegislationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisversion.LegislationTable,
			Columns: []string{analysisversion.LegislationColumn},
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
			Table:   analysisversion.LegislationTable,
			Columns: []string{analysisversion.LegislationColumn},
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
			err = &NotFoundError{analysisversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisVersionUpdateOne is the builder for updating a single AnalysisVersion entity.
type AnalysisVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisVersionMutation
}

// SetLegislationID sets the "legislation_id" field.
func (_u *AnalysisVersionUpdateOne) SetLegislationID(v uuid.UUID) *AnalysisVersionUpdateOne {
	_u.mutation.SetLegislationID(v)
	return _u
}

// SetNillableLegislationID sets the "legislation_id" field if the given value is not nil.
func (_u *AnalysisVersionUpdateOne) SetNillableLegislationID(v *uuid.UUID) *AnalysisVersionUpdateOne {
	if v != nil {
		_u.SetLegislationID(*v)
	}
	return _u
}

// SetDroppedChunks sets the "dropped_chunks" field.
func (_u *AnalysisVersionUpdateOne) SetDroppedChunks(v []int) *AnalysisVersionUpdateOne {
	_u.mutation.SetDroppedChunks(v)
	return _u
}

// AppendDroppedChunks appends value to the "dropped_chunks" field.
func (_u *AnalysisVersionUpdateOne) AppendDroppedChunks(v []int) *AnalysisVersionUpdateOne {
	_u.mutation.AppendDroppedChunks(v)
	return _u
}

// ClearDroppedChunks clears the value of the "dropped_chunks" field.
func (_u *AnalysisVersionUpdateOne) ClearDroppedChunks() *AnalysisVersionUpdateOne {
	_u.mutation.ClearDroppedChunks()
	return _u
}

// SetLegislation sets the "legislation" edge to the Legislation entity.
func (_u *AnalysisVersionUpdateOne) SetLegislation(v *Legislation) *AnalysisVersionUpdateOne {
	return _u.SetLegislationID(v.ID)
}

// Mutation returns the AnalysisVersionMutation object of the builder.
func (_u *AnalysisVersionUpdateOne) Mutation() *AnalysisVersionMutation {
	return _u.mutation
}

// ClearLegislation clears the "legislation" edge to the Legislation entity.
func (_u *AnalysisVersionUpdateOne) ClearLegislation() *AnalysisVersionUpdateOne {
	_u.mutation.ClearLegislation()
	return _u
}

// Where appends a list predicates to the AnalysisVersionUpdate builder.
func (_u *AnalysisVersionUpdateOne) Where(ps ...predicate.AnalysisVersion) *AnalysisVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisVersionUpdateOne) Select(field string, fields ...string) *AnalysisVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisVersion entity.
func (_u *AnalysisVersionUpdateOne) Save(ctx context.Context) (*AnalysisVersion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisVersionUpdateOne) SaveX(ctx context.Context) *AnalysisVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisVersionUpdateOne) check() error {
	if _u.mutation.LegislationCleared() && len(_u.mutation.LegislationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisVersion.legislation"`)
	}
	return nil
}

func (_u *AnalysisVersionUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisversion.Table, analysisversion.Columns, sqlgraph.NewFieldSpec(analysisversion.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisversion.FieldID)
		for _, f := range fields {
			if !analysisversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisversion.FieldID {
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
	if _u.mutation.PredecessorIDCleared() {
		_spec.ClearField(analysisversion.FieldPredecessorID, field.TypeUUID)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(analysisversion.FieldConfidence, field.TypeFloat64)
	}
	if _u.mutation.ImpactLevelCleared() {
		_spec.ClearField(analysisversion.FieldImpactLevel, field.TypeString)
	}
	if value, ok := _u.mutation.DroppedChunks(); ok {
		_spec.SetField(analysisversion.FieldDroppedChunks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDroppedChunks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisversion.FieldDroppedChunks, value)
		})
	}
	if _u.mutation.DroppedChunksCleared() {
		_spec.ClearField(analysisversion.FieldDroppedChunks, field.TypeJSON)
	}
	if _u.mutation.LegislationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisversion.LegislationTable,
			Columns: []string{analysisversion.LegislationColumn},
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
			Table:   analysisversion.LegislationTable,
			Columns: []string{analysisversion.LegislationColumn},
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
	_node = &AnalysisVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
