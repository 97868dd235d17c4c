// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// AnalysisVersion is the model entity for the AnalysisVersion schema.
type AnalysisVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LegislationID holds the value of the "legislation_id" field.
	LegislationID uuid.UUID `json:"legislation_id,omitempty"`
	// VersionNumber holds the value of the "version_number" field.
	VersionNumber int `json:"version_number,omitempty"`
	// PredecessorID holds the value of the "predecessor_id" field.
	PredecessorID *uuid.UUID `json:"predecessor_id,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint string `json:"fingerprint,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// SchemaVersion holds the value of the "schema_version" field.
	SchemaVersion string `json:"schema_version,omitempty"`
	// AnalysisJSON holds the value of the "analysis_json" field.
	AnalysisJSON json.RawMessage `json:"analysis_json,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// ImpactLevel holds the value of the "impact_level" field.
	ImpactLevel *string `json:"impact_level,omitempty"`
	// InsufficientText holds the value of the "insufficient_text" field.
	InsufficientText bool `json:"insufficient_text,omitempty"`
	// Chunked holds the value of the "chunked" field.
	Chunked bool `json:"chunked,omitempty"`
	// ChunkCount holds the value of the "chunk_count" field.
	ChunkCount int `json:"chunk_count,omitempty"`
	// DroppedChunks holds the value of the "dropped_chunks" field.
	DroppedChunks []int `json:"dropped_chunks,omitempty"`
	// ProcessingMs holds the value of the "processing_ms" field.
	ProcessingMs int64 `json:"processing_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisVersionQuery when eager-loading is set.
	Edges        AnalysisVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisVersionEdges holds the relations/edges for other nodes in the graph.
type AnalysisVersionEdges struct {
	// Legislation holds the value of the legislation edge.
	Legislation *Legislation `json:"legislation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LegislationOrErr returns the Legislation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisVersionEdges) LegislationOrErr() (*Legislation, error) {
	if e.Legislation != nil {
		return e.Legislation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: legislation.Label}
	}
	return nil, &NotLoadedError{edge: "legislation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisversion.FieldPredecessorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case analysisversion.FieldAnalysisJSON, analysisversion.FieldDroppedChunks:
			values[i] = new([]byte)
		case analysisversion.FieldInsufficientText, analysisversion.FieldChunked:
			values[i] = new(sql.NullBool)
		case analysisversion.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case analysisversion.FieldVersionNumber, analysisversion.FieldChunkCount, analysisversion.FieldProcessingMs:
			values[i] = new(sql.NullInt64)
		case analysisversion.FieldFingerprint, analysisversion.FieldModelName, analysisversion.FieldSchemaVersion, analysisversion.FieldImpactLevel:
			values[i] = new(sql.NullString)
		case analysisversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case analysisversion.FieldID, analysisversion.FieldLegislationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisVersion fields.
func (_m *AnalysisVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisversion.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisversion.FieldLegislationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field legislation_id", values[i])
			} else if value != nil {
				_m.LegislationID = *value
			}
		case analysisversion.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = int(value.Int64)
			}
		case analysisversion.FieldPredecessorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field predecessor_id", values[i])
			} else if value.Valid {
				_m.PredecessorID = new(uuid.UUID)
				*_m.PredecessorID = *value.S.(*uuid.UUID)
			}
		case analysisversion.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = value.String
			}
		case analysisversion.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case analysisversion.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = value.String
			}
		case analysisversion.FieldAnalysisJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnalysisJSON); err != nil {
					return fmt.Errorf("unmarshal field analysis_json: %w", err)
				}
			}
		case analysisversion.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case analysisversion.FieldImpactLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field impact_level", values[i])
			} else if value.Valid {
				_m.ImpactLevel = new(string)
				*_m.ImpactLevel = value.String
			}
		case analysisversion.FieldInsufficientText:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field insufficient_text", values[i])
			} else if value.Valid {
				_m.InsufficientText = value.Bool
			}
		case analysisversion.FieldChunked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field chunked", values[i])
			} else if value.Valid {
				_m.Chunked = value.Bool
			}
		case analysisversion.FieldChunkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_count", values[i])
			} else if value.Valid {
				_m.ChunkCount = int(value.Int64)
			}
		case analysisversion.FieldDroppedChunks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dropped_chunks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DroppedChunks); err != nil {
					return fmt.Errorf("unmarshal field dropped_chunks: %w", err)
				}
			}
		case analysisversion.FieldProcessingMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_ms", values[i])
			} else if value.Valid {
				_m.ProcessingMs = value.Int64
			}
		case analysisversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisVersion.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLegislation queries the "legislation" edge of the AnalysisVersion entity.
func (_m *AnalysisVersion) QueryLegislation() *LegislationQuery {
	return NewAnalysisVersionClient(_m.config).QueryLegislation(_m)
}

// Update returns a builder for updating this AnalysisVersion.
// Note that you need to call AnalysisVersion.Unwrap() before calling this method if this AnalysisVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisVersion) Update() *AnalysisVersionUpdateOne {
	return NewAnalysisVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisVersion) Unwrap() *AnalysisVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisVersion) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("legislation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LegislationID))
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNumber))
	builder.WriteString(", ")
	if v := _m.PredecessorID; v != nil {
		builder.WriteString("predecessor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("fingerprint=")
	builder.WriteString(_m.Fingerprint)
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(_m.SchemaVersion)
	builder.WriteString(", ")
	builder.WriteString("analysis_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisJSON))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ImpactLevel; v != nil {
		builder.WriteString("impact_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("insufficient_text=")
	builder.WriteString(fmt.Sprintf("%v", _m.InsufficientText))
	builder.WriteString(", ")
	builder.WriteString("chunked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Chunked))
	builder.WriteString(", ")
	builder.WriteString("chunk_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkCount))
	builder.WriteString(", ")
	builder.WriteString("dropped_chunks=")
	builder.WriteString(fmt.Sprintf("%v", _m.DroppedChunks))
	builder.WriteString(", ")
	builder.WriteString("processing_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisVersions is a parsable slice of AnalysisVersion.
type AnalysisVersions []*AnalysisVersion
