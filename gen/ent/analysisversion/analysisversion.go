// Code generated by ent, DO NOT EDIT.

package analysisversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the analysisversion type in the database.
	Label = "analysis_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLegislationID holds the string denoting the legislation_id field in the database.
	FieldLegislationID = "legislation_id"
	// FieldVersionNumber holds the string denoting the version_number field in the database.
	FieldVersionNumber = "version_number"
	// FieldPredecessorID holds the string denoting the predecessor_id field in the database.
	FieldPredecessorID = "predecessor_id"
	// FieldFingerprint holds the string denoting the fingerprint field in the database.
	FieldFingerprint = "fingerprint"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldAnalysisJSON holds the string denoting the analysis_json field in the database.
	FieldAnalysisJSON = "analysis_json"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldImpactLevel holds the string denoting the impact_level field in the database.
	FieldImpactLevel = "impact_level"
	// FieldInsufficientText holds the string denoting the insufficient_text field in the database.
	FieldInsufficientText = "insufficient_text"
	// FieldChunked holds the string denoting the chunked field in the database.
	FieldChunked = "chunked"
	// FieldChunkCount holds the string denoting the chunk_count field in the database.
	FieldChunkCount = "chunk_count"
	// FieldDroppedChunks holds the string denoting the dropped_chunks field in the database.
	FieldDroppedChunks = "dropped_chunks"
	// FieldProcessingMs holds the string denoting the processing_ms field in the database.
	FieldProcessingMs = "processing_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeLegislation holds the string denoting the legislation edge name in mutations.
	EdgeLegislation = "legislation"
	// Table holds the table name of the analysisversion in the database.
	Table = "analysis_version"
	// LegislationTable is the table that holds the legislation relation/edge.
	LegislationTable = "analysis_version"
	// LegislationInverseTable is the table name for the Legislation entity.
	// It exists in this package in order to avoid circular dependency with the "legislation" package.
	LegislationInverseTable = "legislation"
	// LegislationColumn is the table column denoting the legislation relation/edge.
	LegislationColumn = "legislation_id"
)

// Columns holds all SQL columns for analysisversion fields.
var Columns = []string{
	FieldID,
	FieldLegislationID,
	FieldVersionNumber,
	FieldPredecessorID,
	FieldFingerprint,
	FieldModelName,
	FieldSchemaVersion,
	FieldAnalysisJSON,
	FieldConfidence,
	FieldImpactLevel,
	FieldInsufficientText,
	FieldChunked,
	FieldChunkCount,
	FieldDroppedChunks,
	FieldProcessingMs,
	FieldCreatedAt,
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
	// VersionNumberValidator is a validator for the "version_number" field. It is called by the builders before save.
	VersionNumberValidator func(int) error
	// FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	FingerprintValidator func(string) error
	// ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	ModelNameValidator func(string) error
	// SchemaVersionValidator is a validator for the "schema_version" field. It is called by the builders before save.
	SchemaVersionValidator func(string) error
	// DefaultInsufficientText holds the default value on creation for the "insufficient_text" field.
	DefaultInsufficientText bool
	// DefaultChunked holds the default value on creation for the "chunked" field.
	DefaultChunked bool
	// DefaultChunkCount holds the default value on creation for the "chunk_count" field.
	DefaultChunkCount int
	// DefaultProcessingMs holds the default value on creation for the "processing_ms" field.
	DefaultProcessingMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AnalysisVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLegislationID orders the results by the legislation_id field.
func ByLegislationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegislationID, opts...).ToFunc()
}

// ByVersionNumber orders the results by the version_number field.
func ByVersionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNumber, opts...).ToFunc()
}

// ByPredecessorID orders the results by the predecessor_id field.
func ByPredecessorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredecessorID, opts...).ToFunc()
}

// ByFingerprint orders the results by the fingerprint field.
func ByFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFingerprint, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByImpactLevel orders the results by the impact_level field.
func ByImpactLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpactLevel, opts...).ToFunc()
}

// ByInsufficientText orders the results by the insufficient_text field.
func ByInsufficientText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsufficientText, opts...).ToFunc()
}

// ByChunked orders the results by the chunked field.
func ByChunked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunked, opts...).ToFunc()
}

// ByChunkCount orders the results by the chunk_count field.
func ByChunkCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkCount, opts...).ToFunc()
}

// ByProcessingMs orders the results by the processing_ms field.
func ByProcessingMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
