// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// AnalysisVersionCreate is the builder for creating a AnalysisVersion entity.
type AnalysisVersionCreate struct {
	config
	mutation *AnalysisVersionMutation
	hooks    []Hook
}

// SetLegislationID sets the "legislation_id" field.
func (_c *AnalysisVersionCreate) SetLegislationID(v uuid.UUID) *AnalysisVersionCreate {
	_c.mutation.SetLegislationID(v)
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *AnalysisVersionCreate) SetVersionNumber(v int) *AnalysisVersionCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetPredecessorID sets the "predecessor_id" field.
func (_c *AnalysisVersionCreate) SetPredecessorID(v uuid.UUID) *AnalysisVersionCreate {
	_c.mutation.SetPredecessorID(v)
	return _c
}

// SetNillablePredecessorID sets the "predecessor_id" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillablePredecessorID(v *uuid.UUID) *AnalysisVersionCreate {
	if v != nil {
		_c.SetPredecessorID(*v)
	}
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *AnalysisVersionCreate) SetFingerprint(v string) *AnalysisVersionCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *AnalysisVersionCreate) SetModelName(v string) *AnalysisVersionCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *AnalysisVersionCreate) SetSchemaVersion(v string) *AnalysisVersionCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetAnalysisJSON sets the "analysis_json" field.
func (_c *AnalysisVersionCreate) SetAnalysisJSON(v json.RawMessage) *AnalysisVersionCreate {
	_c.mutation.SetAnalysisJSON(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnalysisVersionCreate) SetConfidence(v float64) *AnalysisVersionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableConfidence(v *float64) *AnalysisVersionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetImpactLevel sets the "impact_level" field.
func (_c *AnalysisVersionCreate) SetImpactLevel(v string) *AnalysisVersionCreate {
	_c.mutation.SetImpactLevel(v)
	return _c
}

// SetNillableImpactLevel sets the "impact_level" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableImpactLevel(v *string) *AnalysisVersionCreate {
	if v != nil {
		_c.SetImpactLevel(*v)
	}
	return _c
}

// SetInsufficientText sets the "insufficient_text" field.
func (_c *AnalysisVersionCreate) SetInsufficientText(v bool) *AnalysisVersionCreate {
	_c.mutation.SetInsufficientText(v)
	return _c
}

// SetNillableInsufficientText sets the "insufficient_text" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableInsufficientText(v *bool) *AnalysisVersionCreate {
	if v != nil {
		_c.SetInsufficientText(*v)
	}
	return _c
}

// SetChunked sets the "chunked" field.
func (_c *AnalysisVersionCreate) SetChunked(v bool) *AnalysisVersionCreate {
	_c.mutation.SetChunked(v)
	return _c
}

// SetNillableChunked sets the "chunked" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableChunked(v *bool) *AnalysisVersionCreate {
	if v != nil {
		_c.SetChunked(*v)
	}
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *AnalysisVersionCreate) SetChunkCount(v int) *AnalysisVersionCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableChunkCount(v *int) *AnalysisVersionCreate {
	if v != nil {
		_c.SetChunkCount(*v)
	}
	return _c
}

// SetDroppedChunks sets the "dropped_chunks" field.
func (_c *AnalysisVersionCreate) SetDroppedChunks(v []int) *AnalysisVersionCreate {
	_c.mutation.SetDroppedChunks(v)
	return _c
}

// SetProcessingMs sets the "processing_ms" field.
func (_c *AnalysisVersionCreate) SetProcessingMs(v int64) *AnalysisVersionCreate {
	_c.mutation.SetProcessingMs(v)
	return _c
}

// SetNillableProcessingMs sets the "processing_ms" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableProcessingMs(v *int64) *AnalysisVersionCreate {
	if v != nil {
		_c.SetProcessingMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisVersionCreate) SetCreatedAt(v time.Time) *AnalysisVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableCreatedAt(v *time.Time) *AnalysisVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisVersionCreate) SetID(v uuid.UUID) *AnalysisVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisVersionCreate) SetNillableID(v *uuid.UUID) *AnalysisVersionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetLegislation sets the "legislation" edge to the Legislation entity.
func (_c *AnalysisVersionCreate) SetLegislation(v *Legislation) *AnalysisVersionCreate {
	return _c.SetLegislationID(v.ID)
}

// Mutation returns the AnalysisVersionMutation object of the builder.
func (_c *AnalysisVersionCreate) Mutation() *AnalysisVersionMutation {
	return _c.mutation
}

// Save creates the AnalysisVersion in the database.
func (_c *AnalysisVersionCreate) Save(ctx context.Context) (*AnalysisVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisVersionCreate) SaveX(ctx context.Context) *AnalysisVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisVersionCreate) defaults() {
	if _, ok := _c.mutation.InsufficientText(); !ok {
		v := analysisversion.DefaultInsufficientText
		_c.mutation.SetInsufficientText(v)
	}
	if _, ok := _c.mutation.Chunked(); !ok {
		v := analysisversion.DefaultChunked
		_c.mutation.SetChunked(v)
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		v := analysisversion.DefaultChunkCount
		_c.mutation.SetChunkCount(v)
	}
	if _, ok := _c.mutation.ProcessingMs(); !ok {
		v := analysisversion.DefaultProcessingMs
		_c.mutation.SetProcessingMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisversion.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisVersionCreate) check() error {
	if _, ok := _c.mutation.LegislationID(); !ok {
		return &ValidationError{Name: "legislation_id", err: errors.New(`ent: missing required field "AnalysisVersion.legislation_id"`)}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "AnalysisVersion.version_number"`)}
	}
	if v, ok := _c.mutation.VersionNumber(); ok {
		if err := analysisversion.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "AnalysisVersion.version_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "AnalysisVersion.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := analysisversion.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "AnalysisVersion.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "AnalysisVersion.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := analysisversion.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "AnalysisVersion.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "AnalysisVersion.schema_version"`)}
	}
	if v, ok := _c.mutation.SchemaVersion(); ok {
		if err := analysisversion.SchemaVersionValidator(v); err != nil {
			return &ValidationError{Name: "schema_version", err: fmt.Errorf(`ent: validator failed for field "AnalysisVersion.schema_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnalysisJSON(); !ok {
		return &ValidationError{Name: "analysis_json", err: errors.New(`ent: missing required field "AnalysisVersion.analysis_json"`)}
	}
	if _, ok := _c.mutation.InsufficientText(); !ok {
		return &ValidationError{Name: "insufficient_text", err: errors.New(`ent: missing required field "AnalysisVersion.insufficient_text"`)}
	}
	if _, ok := _c.mutation.Chunked(); !ok {
		return &ValidationError{Name: "chunked", err: errors.New(`ent: missing required field "AnalysisVersion.chunked"`)}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "AnalysisVersion.chunk_count"`)}
	}
	if _, ok := _c.mutation.ProcessingMs(); !ok {
		return &ValidationError{Name: "processing_ms", err: errors.New(`ent: missing required field "AnalysisVersion.processing_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisVersion.created_at"`)}
	}
	if len(_c.mutation.LegislationIDs()) == 0 {
		return &ValidationError{Name: "legislation", err: errors.New(`ent: missing required edge "AnalysisVersion.legislation"`)}
	}
	return nil
}

func (_c *AnalysisVersionCreate) sqlSave(ctx context.Context) (*AnalysisVersion, error) {
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

func (_c *AnalysisVersionCreate) createSpec() (*AnalysisVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisversion.Table, sqlgraph.NewFieldSpec(analysisversion.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(analysisversion.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.PredecessorID(); ok {
		_spec.SetField(analysisversion.FieldPredecessorID, field.TypeUUID, value)
		_node.PredecessorID = &value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(analysisversion.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(analysisversion.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(analysisversion.FieldSchemaVersion, field.TypeString, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.AnalysisJSON(); ok {
		_spec.SetField(analysisversion.FieldAnalysisJSON, field.TypeJSON, value)
		_node.AnalysisJSON = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(analysisversion.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.ImpactLevel(); ok {
		_spec.SetField(analysisversion.FieldImpactLevel, field.TypeString, value)
		_node.ImpactLevel = &value
	}
	if value, ok := _c.mutation.InsufficientText(); ok {
		_spec.SetField(analysisversion.FieldInsufficientText, field.TypeBool, value)
		_node.InsufficientText = value
	}
	if value, ok := _c.mutation.Chunked(); ok {
		_spec.SetField(analysisversion.FieldChunked, field.TypeBool, value)
		_node.Chunked = value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(analysisversion.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.DroppedChunks(); ok {
		_spec.SetField(analysisversion.FieldDroppedChunks, field.TypeJSON, value)
		_node.DroppedChunks = value
	}
	if value, ok := _c.mutation.ProcessingMs(); ok {
		_spec.SetField(analysisversion.FieldProcessingMs, field.TypeInt64, value)
		_node.ProcessingMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.LegislationIDs(); len(nodes) > 0 {
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
		_node.LegislationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisVersionCreateBulk is the builder for creating many AnalysisVersion entities in bulk.
type AnalysisVersionCreateBulk struct {
	config
	err      error
	builders []*AnalysisVersionCreate
}

// Save creates the AnalysisVersion entities in the database.
func (_c *AnalysisVersionCreateBulk) Save(ctx context.Context) ([]*AnalysisVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisVersionMutation)
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
func (_c *AnalysisVersionCreateBulk) SaveX(ctx context.Context) []*AnalysisVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
