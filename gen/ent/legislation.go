// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// Legislation is the model entity for the Legislation schema.
type Legislation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// BillNumber holds the value of the "bill_number" field.
	BillNumber string `json:"bill_number,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// GovtType holds the value of the "govt_type" field.
	GovtType *string `json:"govt_type,omitempty"`
	// GovtSource holds the value of the "govt_source" field.
	GovtSource *string `json:"govt_source,omitempty"`
	// BillStatus holds the value of the "bill_status" field.
	BillStatus *string `json:"bill_status,omitempty"`
	// URL holds the value of the "url" field.
	URL *string `json:"url,omitempty"`
	// LastActionAt holds the value of the "last_action_at" field.
	LastActionAt *time.Time `json:"last_action_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LegislationQuery when eager-loading is set.
	Edges        LegislationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LegislationEdges holds the relations/edges for other nodes in the graph.
type LegislationEdges struct {
	// Versions holds the value of the versions edge.
	Versions []*AnalysisVersion `json:"versions,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*AnalysisJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e LegislationEdges) VersionsOrErr() ([]*AnalysisVersion, error) {
	if e.loadedTypes[0] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e LegislationEdges) JobsOrErr() ([]*AnalysisJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Legislation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case legislation.FieldExternalID, legislation.FieldBillNumber, legislation.FieldTitle, legislation.FieldDescription, legislation.FieldGovtType, legislation.FieldGovtSource, legislation.FieldBillStatus, legislation.FieldURL:
			values[i] = new(sql.NullString)
		case legislation.FieldLastActionAt, legislation.FieldCreatedAt, legislation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case legislation.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Legislation fields.
func (_m *Legislation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case legislation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case legislation.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case legislation.FieldBillNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_number", values[i])
			} else if value.Valid {
				_m.BillNumber = value.String
			}
		case legislation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case legislation.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case legislation.FieldGovtType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field govt_type", values[i])
			} else if value.Valid {
				_m.GovtType = new(string)
				*_m.GovtType = value.String
			}
		case legislation.FieldGovtSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field govt_source", values[i])
			} else if value.Valid {
				_m.GovtSource = new(string)
				*_m.GovtSource = value.String
			}
		case legislation.FieldBillStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bill_status", values[i])
			} else if value.Valid {
				_m.BillStatus = new(string)
				*_m.BillStatus = value.String
			}
		case legislation.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case legislation.FieldLastActionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_action_at", values[i])
			} else if value.Valid {
				_m.LastActionAt = new(time.Time)
				*_m.LastActionAt = value.Time
			}
		case legislation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case legislation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Legislation.
// This includes values selected through modifiers, order, etc.
func (_m *Legislation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVersions queries the "versions" edge of the Legislation entity.
func (_m *Legislation) QueryVersions() *AnalysisVersionQuery {
	return NewLegislationClient(_m.config).QueryVersions(_m)
}

// QueryJobs queries the "jobs" edge of the Legislation entity.
func (_m *Legislation) QueryJobs() *AnalysisJobQuery {
	return NewLegislationClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Legislation.
// Note that you need to call Legislation.Unwrap() before calling this method if this Legislation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Legislation) Update() *LegislationUpdateOne {
	return NewLegislationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Legislation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Legislation) Unwrap() *Legislation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Legislation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Legislation) String() string {
	var builder strings.Builder
	builder.WriteString("Legislation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("bill_number=")
	builder.WriteString(_m.BillNumber)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GovtType; v != nil {
		builder.WriteString("govt_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.GovtSource; v != nil {
		builder.WriteString("govt_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BillStatus; v != nil {
		builder.WriteString("bill_status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastActionAt; v != nil {
		builder.WriteString("last_action_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Legislations is a parsable slice of Legislation.
type Legislations []*Legislation
