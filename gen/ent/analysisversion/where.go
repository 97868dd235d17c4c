// Code generated by ent, DO NOT EDIT.

package analysisversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldID, id))
}

// LegislationID applies equality check predicate on the "legislation_id" field. It's identical to LegislationIDEQ.
func LegislationID(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldLegislationID, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// PredecessorID applies equality check predicate on the "predecessor_id" field. It's identical to PredecessorIDEQ.
func PredecessorID(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldPredecessorID, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldFingerprint, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldModelName, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldSchemaVersion, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldConfidence, v))
}

// ImpactLevel applies equality check predicate on the "impact_level" field. It's identical to ImpactLevelEQ.
func ImpactLevel(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldImpactLevel, v))
}

// InsufficientText applies equality check predicate on the "insufficient_text" field. It's identical to InsufficientTextEQ.
func InsufficientText(v bool) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldInsufficientText, v))
}

// Chunked applies equality check predicate on the "chunked" field. It's identical to ChunkedEQ.
func Chunked(v bool) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldChunked, v))
}

// ChunkCount applies equality check predicate on the "chunk_count" field. It's identical to ChunkCountEQ.
func ChunkCount(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldChunkCount, v))
}

// ProcessingMs applies equality check predicate on the "processing_ms" field. It's identical to ProcessingMsEQ.
func ProcessingMs(v int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldProcessingMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// LegislationIDEQ applies the EQ predicate on the "legislation_id" field.
func LegislationIDEQ(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldLegislationID, v))
}

// LegislationIDNEQ applies the NEQ predicate on the "legislation_id" field.
func LegislationIDNEQ(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldLegislationID, v))
}

// LegislationIDIn applies the In predicate on the "legislation_id" field.
func LegislationIDIn(vs ...uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldLegislationID, vs...))
}

// LegislationIDNotIn applies the NotIn predicate on the "legislation_id" field.
func LegislationIDNotIn(vs ...uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldLegislationID, vs...))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldVersionNumber, v))
}

// PredecessorIDEQ applies the EQ predicate on the "predecessor_id" field.
func PredecessorIDEQ(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldPredecessorID, v))
}

// PredecessorIDNEQ applies the NEQ predicate on the "predecessor_id" field.
func PredecessorIDNEQ(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldPredecessorID, v))
}

// PredecessorIDIn applies the In predicate on the "predecessor_id" field.
func PredecessorIDIn(vs ...uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldPredecessorID, vs...))
}

// PredecessorIDNotIn applies the NotIn predicate on the "predecessor_id" field.
func PredecessorIDNotIn(vs ...uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldPredecessorID, vs...))
}

// PredecessorIDGT applies the GT predicate on the "predecessor_id" field.
func PredecessorIDGT(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldPredecessorID, v))
}

// PredecessorIDGTE applies the GTE predicate on the "predecessor_id" field.
func PredecessorIDGTE(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldPredecessorID, v))
}

// PredecessorIDLT applies the LT predicate on the "predecessor_id" field.
func PredecessorIDLT(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldPredecessorID, v))
}

// PredecessorIDLTE applies the LTE predicate on the "predecessor_id" field.
func PredecessorIDLTE(v uuid.UUID) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldPredecessorID, v))
}

// PredecessorIDIsNil applies the IsNil predicate on the "predecessor_id" field.
func PredecessorIDIsNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIsNull(FieldPredecessorID))
}

// PredecessorIDNotNil applies the NotNil predicate on the "predecessor_id" field.
func PredecessorIDNotNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotNull(FieldPredecessorID))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContainsFold(FieldFingerprint, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContainsFold(FieldModelName, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldSchemaVersion, v))
}

// SchemaVersionContains applies the Contains predicate on the "schema_version" field.
func SchemaVersionContains(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContains(FieldSchemaVersion, v))
}

// SchemaVersionHasPrefix applies the HasPrefix predicate on the "schema_version" field.
func SchemaVersionHasPrefix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasPrefix(FieldSchemaVersion, v))
}

// SchemaVersionHasSuffix applies the HasSuffix predicate on the "schema_version" field.
func SchemaVersionHasSuffix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasSuffix(FieldSchemaVersion, v))
}

// SchemaVersionEqualFold applies the EqualFold predicate on the "schema_version" field.
func SchemaVersionEqualFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEqualFold(FieldSchemaVersion, v))
}

// SchemaVersionContainsFold applies the ContainsFold predicate on the "schema_version" field.
func SchemaVersionContainsFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContainsFold(FieldSchemaVersion, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotNull(FieldConfidence))
}

// ImpactLevelEQ applies the EQ predicate on the "impact_level" field.
func ImpactLevelEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldImpactLevel, v))
}

// ImpactLevelNEQ applies the NEQ predicate on the "impact_level" field.
func ImpactLevelNEQ(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldImpactLevel, v))
}

// ImpactLevelIn applies the In predicate on the "impact_level" field.
func ImpactLevelIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldImpactLevel, vs...))
}

// ImpactLevelNotIn applies the NotIn predicate on the "impact_level" field.
func ImpactLevelNotIn(vs ...string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldImpactLevel, vs...))
}

// ImpactLevelGT applies the GT predicate on the "impact_level" field.
func ImpactLevelGT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldImpactLevel, v))
}

// ImpactLevelGTE applies the GTE predicate on the "impact_level" field.
func ImpactLevelGTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldImpactLevel, v))
}

// ImpactLevelLT applies the LT predicate on the "impact_level" field.
func ImpactLevelLT(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldImpactLevel, v))
}

// ImpactLevelLTE applies the LTE predicate on the "impact_level" field.
func ImpactLevelLTE(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldImpactLevel, v))
}

// ImpactLevelContains applies the Contains predicate on the "impact_level" field.
func ImpactLevelContains(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContains(FieldImpactLevel, v))
}

// ImpactLevelHasPrefix applies the HasPrefix predicate on the "impact_level" field.
func ImpactLevelHasPrefix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasPrefix(FieldImpactLevel, v))
}

// ImpactLevelHasSuffix applies the HasSuffix predicate on the "impact_level" field.
func ImpactLevelHasSuffix(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldHasSuffix(FieldImpactLevel, v))
}

// ImpactLevelIsNil applies the IsNil predicate on the "impact_level" field.
func ImpactLevelIsNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIsNull(FieldImpactLevel))
}

// ImpactLevelNotNil applies the NotNil predicate on the "impact_level" field.
func ImpactLevelNotNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotNull(FieldImpactLevel))
}

// ImpactLevelEqualFold applies the EqualFold predicate on the "impact_level" field.
func ImpactLevelEqualFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEqualFold(FieldImpactLevel, v))
}

// ImpactLevelContainsFold applies the ContainsFold predicate on the "impact_level" field.
func ImpactLevelContainsFold(v string) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldContainsFold(FieldImpactLevel, v))
}

// InsufficientTextEQ applies the EQ predicate on the "insufficient_text" field.
func InsufficientTextEQ(v bool) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldInsufficientText, v))
}

// InsufficientTextNEQ applies the NEQ predicate on the "insufficient_text" field.
func InsufficientTextNEQ(v bool) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldInsufficientText, v))
}

// ChunkedEQ applies the EQ predicate on the "chunked" field.
func ChunkedEQ(v bool) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldChunked, v))
}

// ChunkedNEQ applies the NEQ predicate on the "chunked" field.
func ChunkedNEQ(v bool) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldChunked, v))
}

// ChunkCountEQ applies the EQ predicate on the "chunk_count" field.
func ChunkCountEQ(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldChunkCount, v))
}

// ChunkCountNEQ applies the NEQ predicate on the "chunk_count" field.
func ChunkCountNEQ(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldChunkCount, v))
}

// ChunkCountIn applies the In predicate on the "chunk_count" field.
func ChunkCountIn(vs ...int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldChunkCount, vs...))
}

// ChunkCountNotIn applies the NotIn predicate on the "chunk_count" field.
func ChunkCountNotIn(vs ...int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldChunkCount, vs...))
}

// ChunkCountGT applies the GT predicate on the "chunk_count" field.
func ChunkCountGT(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldChunkCount, v))
}

// ChunkCountGTE applies the GTE predicate on the "chunk_count" field.
func ChunkCountGTE(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldChunkCount, v))
}

// ChunkCountLT applies the LT predicate on the "chunk_count" field.
func ChunkCountLT(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldChunkCount, v))
}

// ChunkCountLTE applies the LTE predicate on the "chunk_count" field.
func ChunkCountLTE(v int) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldChunkCount, v))
}

// DroppedChunksIsNil applies the IsNil predicate on the "dropped_chunks" field.
func DroppedChunksIsNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIsNull(FieldDroppedChunks))
}

// DroppedChunksNotNil applies the NotNil predicate on the "dropped_chunks" field.
func DroppedChunksNotNil() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotNull(FieldDroppedChunks))
}

// ProcessingMsEQ applies the EQ predicate on the "processing_ms" field.
func ProcessingMsEQ(v int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldProcessingMs, v))
}

// ProcessingMsNEQ applies the NEQ predicate on the "processing_ms" field.
func ProcessingMsNEQ(v int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldProcessingMs, v))
}

// ProcessingMsIn applies the In predicate on the "processing_ms" field.
func ProcessingMsIn(vs ...int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldProcessingMs, vs...))
}

// ProcessingMsNotIn applies the NotIn predicate on the "processing_ms" field.
func ProcessingMsNotIn(vs ...int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldProcessingMs, vs...))
}

// ProcessingMsGT applies the GT predicate on the "processing_ms" field.
func ProcessingMsGT(v int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldProcessingMs, v))
}

// ProcessingMsGTE applies the GTE predicate on the "processing_ms" field.
func ProcessingMsGTE(v int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldProcessingMs, v))
}

// ProcessingMsLT applies the LT predicate on the "processing_ms" field.
func ProcessingMsLT(v int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldProcessingMs, v))
}

// ProcessingMsLTE applies the LTE predicate on the "processing_ms" field.
func ProcessingMsLTE(v int64) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldProcessingMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasLegislation applies the HasEdge predicate on the "legislation" edge.
func HasLegislation() predicate.AnalysisVersion {
	return predicate.AnalysisVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LegislationTable, LegislationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLegislationWith applies the HasEdge predicate on the "legislation" edge with a given conditions (other predicates).
func HasLegislationWith(preds ...predicate.Legislation) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(func(s *sql.Selector) {
		step := newLegislationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisVersion) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisVersion) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisVersion) predicate.AnalysisVersion {
	return predicate.AnalysisVersion(sql.NotPredicates(p))
}
