// Code generated by ent, DO NOT EDIT.

package legislation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the legislation type in the database.
	Label = "legislation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldBillNumber holds the string denoting the bill_number field in the database.
	FieldBillNumber = "bill_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldGovtType holds the string denoting the govt_type field in the database.
	FieldGovtType = "govt_type"
	// FieldGovtSource holds the string denoting the govt_source field in the database.
	FieldGovtSource = "govt_source"
	// FieldBillStatus holds the string denoting the bill_status field in the database.
	FieldBillStatus = "bill_status"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldLastActionAt holds the string denoting the last_action_at field in the database.
	FieldLastActionAt = "last_action_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the legislation in the database.
	Table = "legislation"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "analysis_version"
	// VersionsInverseTable is the table name for the AnalysisVersion entity.
	// It exists in this package in order to avoid circular dependency with the "analysisversion" package.
	VersionsInverseTable = "analysis_version"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "legislation_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "analysis_job"
	// JobsInverseTable is the table name for the AnalysisJob entity.
	// It exists in this package in order to avoid circular dependency with the "analysisjob" package.
	JobsInverseTable = "analysis_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "legislation_id"
)

// Columns holds all SQL columns for legislation fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldBillNumber,
	FieldTitle,
	FieldDescription,
	FieldGovtType,
	FieldGovtSource,
	FieldBillStatus,
	FieldURL,
	FieldLastActionAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	ExternalIDValidator func(string) error
	// BillNumberValidator is a validator for the "bill_number" field. It is called by the builders before save.
	BillNumberValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Legislation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByBillNumber orders the results by the bill_number field.
func ByBillNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByGovtType orders the results by the govt_type field.
func ByGovtType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGovtType, opts...).ToFunc()
}

// ByGovtSource orders the results by the govt_source field.
func ByGovtSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGovtSource, opts...).ToFunc()
}

// ByBillStatus orders the results by the bill_status field.
func ByBillStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBillStatus, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByLastActionAt orders the results by the last_action_at field.
func ByLastActionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActionAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
