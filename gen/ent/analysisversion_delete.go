// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

// AnalysisVersionDelete is the builder for deleting a AnalysisVersion entity.
type AnalysisVersionDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisVersionMutation
}

// Where appends a list predicates to the AnalysisVersionDelete builder.
func (_d *AnalysisVersionDelete) Where(ps ...predicate.AnalysisVersion) *AnalysisVersionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisVersionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisVersionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisVersionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisversion.Table, sqlgraph.NewFieldSpec(analysisversion.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisVersionDeleteOne is the builder for deleting a single AnalysisVersion entity.
type AnalysisVersionDeleteOne struct {
	_d *AnalysisVersionDelete
}

// Where appends a list predicates to the AnalysisVersionDelete builder.
func (_d *AnalysisVersionDeleteOne) Where(ps ...predicate.AnalysisVersion) *AnalysisVersionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisVersionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisversion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisVersionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
