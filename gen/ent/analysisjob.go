// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/analysisjob"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// AnalysisJob is the model entity for the AnalysisJob schema.
type AnalysisJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LegislationID holds the value of the "legislation_id" field.
	LegislationID uuid.UUID `json:"legislation_id,omitempty"`
	// VersionID holds the value of the "version_id" field.
	VersionID *uuid.UUID `json:"version_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ContentKind holds the value of the "content_kind" field.
	ContentKind string `json:"content_kind,omitempty"`
	// Fingerprint holds the value of the "fingerprint" field.
	Fingerprint *string `json:"fingerprint,omitempty"`
	// CacheHit holds the value of the "cache_hit" field.
	CacheHit bool `json:"cache_hit,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisJobQuery when eager-loading is set.
	Edges        AnalysisJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisJobEdges holds the relations/edges for other nodes in the graph.
type AnalysisJobEdges struct {
	// Legislation holds the value of the legislation edge.
	Legislation *Legislation `json:"legislation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LegislationOrErr returns the Legislation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisJobEdges) LegislationOrErr() (*Legislation, error) {
	if e.Legislation != nil {
		return e.Legislation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: legislation.Label}
	}
	return nil, &NotLoadedError{edge: "legislation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldVersionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case analysisjob.FieldCacheHit:
			values[i] = new(sql.NullBool)
		case analysisjob.FieldStatus, analysisjob.FieldContentKind, analysisjob.FieldFingerprint, analysisjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case analysisjob.FieldStartedAt, analysisjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case analysisjob.FieldID, analysisjob.FieldLegislationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisJob fields.
func (_m *AnalysisJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisjob.FieldLegislationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field legislation_id", values[i])
			} else if value != nil {
				_m.LegislationID = *value
			}
		case analysisjob.FieldVersionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field version_id", values[i])
			} else if value.Valid {
				_m.VersionID = new(uuid.UUID)
				*_m.VersionID = *value.S.(*uuid.UUID)
			}
		case analysisjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case analysisjob.FieldContentKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_kind", values[i])
			} else if value.Valid {
				_m.ContentKind = value.String
			}
		case analysisjob.FieldFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fingerprint", values[i])
			} else if value.Valid {
				_m.Fingerprint = new(string)
				*_m.Fingerprint = value.String
			}
		case analysisjob.FieldCacheHit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cache_hit", values[i])
			} else if value.Valid {
				_m.CacheHit = value.Bool
			}
		case analysisjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case analysisjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case analysisjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisJob.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLegislation queries the "legislation" edge of the AnalysisJob entity.
func (_m *AnalysisJob) QueryLegislation() *LegislationQuery {
	return NewAnalysisJobClient(_m.config).QueryLegislation(_m)
}

// Update returns a builder for updating this AnalysisJob.
// Note that you need to call AnalysisJob.Unwrap() before calling this method if this AnalysisJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisJob) Update() *AnalysisJobUpdateOne {
	return NewAnalysisJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisJob) Unwrap() *AnalysisJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisJob) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("legislation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LegislationID))
	builder.WriteString(", ")
	if v := _m.VersionID; v != nil {
		builder.WriteString("version_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("content_kind=")
	builder.WriteString(_m.ContentKind)
	builder.WriteString(", ")
	if v := _m.Fingerprint; v != nil {
		builder.WriteString("fingerprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("cache_hit=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheHit))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisJobs is a parsable slice of AnalysisJob.
type AnalysisJobs []*AnalysisJob
