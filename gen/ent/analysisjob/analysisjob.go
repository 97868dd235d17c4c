// Code generated by ent, DO NOT EDIT.

package analysisjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the analysisjob type in the database.
	Label = "analysis_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLegislationID holds the string denoting the legislation_id field in the database.
	FieldLegislationID = "legislation_id"
	// FieldVersionID holds the string denoting the version_id field in the database.
	FieldVersionID = "version_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldContentKind holds the string denoting the content_kind field in the database.
	FieldContentKind = "content_kind"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldCacheHit holds the string denoting the cache_hit field in the database.
	FieldCacheHit = "cache_hit"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeLegislation holds the string denoting the legislation edge name in mutations.
	EdgeLegislation = "legislation"
	// Table holds the table name of the analysisjob in the database.
	Table = "analysis_job"
	// LegislationTable is the table that holds the legislation relation/edge.
	LegislationTable = "analysis_job"
	// LegislationInverseTable is the table name for the Legislation entity.
	// It exists in this package in order to avoid circular dependency with the "legislation" package.
	LegislationInverseTable = "legislation"
	// LegislationColumn is the table column denoting the legislation relation/edge.
	LegislationColumn = "legislation_id"
)

// Columns holds all SQL columns for analysisjob fields.
var Columns = []string{
	FieldID,
	FieldLegislationID,
	FieldVersionID,
	FieldStatus,
	FieldContentKind,
	FieldFingerprint,
	FieldCacheHit,
	FieldErrorMessage,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ContentKindValidator is a validator for the "content_kind" field. It is called by the builders before save.
	ContentKindValidator func(string) error
	// DefaultCacheHit holds the default value on creation for the "cache_hit" field.
	DefaultCacheHit bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AnalysisJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLegislationID orders the results by the legislation_id field.
func ByLegislationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegislationID, opts...).ToFunc()
}

// ByVersionID orders the results by the version_id field.
func ByVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByContentKind orders the results by the content_kind field.
func ByContentKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentKind, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByCacheHit orders the results by the cache_hit field.
func ByCacheHit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheHit, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByLegislationField orders the results by legislation field.
func ByLegislationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLegislationStep(), sql.OrderByField(field, opts...))
	}
}
func newLegislationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LegislationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LegislationTable, LegislationColumn),
	)
}
