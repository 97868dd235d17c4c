// Code generated by ent, DO NOT EDIT.

package analysisjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldID, id))
}

// LegislationID applies equality check predicate on the "legislation_id" field. It's identical to LegislationIDEQ.
func LegislationID(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldLegislationID, v))
}

// VersionID applies equality check predicate on the "version_id" field. It's identical to VersionIDEQ.
func VersionID(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldVersionID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldStatus, v))
}

// ContentKind applies equality check predicate on the "content_kind" field. It's identical to ContentKindEQ.
func ContentKind(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldContentKind, v))
}

// Fingerprint applies equality check predicate on the "fingerprint" field. It's identical to FingerprintEQ.
func Fingerprint(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldFingerprint, v))
}

// CacheHit applies equality check predicate on the "cache_hit" field. It's identical to CacheHitEQ.
func CacheHit(v bool) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCacheHit, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldFinishedAt, v))
}

// LegislationIDEQ applies the EQ predicate on the "legislation_id" field.
func LegislationIDEQ(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldLegislationID, v))
}

// LegislationIDNEQ applies the NEQ predicate on the "legislation_id" field.
func LegislationIDNEQ(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldLegislationID, v))
}

// LegislationIDIn applies the In predicate on the "legislation_id" field.
func LegislationIDIn(vs ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldLegislationID, vs...))
}

// LegislationIDNotIn applies the NotIn predicate on the "legislation_id" field.
func LegislationIDNotIn(vs ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldLegislationID, vs...))
}

// VersionIDEQ applies the EQ predicate on the "version_id" field.
func VersionIDEQ(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldVersionID, v))
}

// VersionIDNEQ applies the NEQ predicate on the "version_id" field.
func VersionIDNEQ(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldVersionID, v))
}

// VersionIDIn applies the In predicate on the "version_id" field.
func VersionIDIn(vs ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldVersionID, vs...))
}

// VersionIDNotIn applies the NotIn predicate on the "version_id" field.
func VersionIDNotIn(vs ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldVersionID, vs...))
}

// VersionIDGT applies the GT predicate on the "version_id" field.
func VersionIDGT(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldVersionID, v))
}

// VersionIDGTE applies the GTE predicate on the "version_id" field.
func VersionIDGTE(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldVersionID, v))
}

// VersionIDLT applies the LT predicate on the "version_id" field.
func VersionIDLT(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldVersionID, v))
}

// VersionIDLTE applies the LTE predicate on the "version_id" field.
func VersionIDLTE(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldVersionID, v))
}

// VersionIDIsNil applies the IsNil predicate on the "version_id" field.
func VersionIDIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldVersionID))
}

// VersionIDNotNil applies the NotNil predicate on the "version_id" field.
func VersionIDNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldVersionID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldStatus, v))
}

// ContentKindEQ applies the EQ predicate on the "content_kind" field.
func ContentKindEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldContentKind, v))
}

// ContentKindNEQ applies the NEQ predicate on the "content_kind" field.
func ContentKindNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldContentKind, v))
}

// ContentKindIn applies the In predicate on the "content_kind" field.
func ContentKindIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldContentKind, vs...))
}

// ContentKindNotIn applies the NotIn predicate on the "content_kind" field.
func ContentKindNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldContentKind, vs...))
}

// ContentKindGT applies the GT predicate on the "content_kind" field.
func ContentKindGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldContentKind, v))
}

// ContentKindGTE applies the GTE predicate on the "content_kind" field.
func ContentKindGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldContentKind, v))
}

// ContentKindLT applies the LT predicate on the "content_kind" field.
func ContentKindLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldContentKind, v))
}

// ContentKindLTE applies the LTE predicate on the "content_kind" field.
func ContentKindLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldContentKind, v))
}

// ContentKindContains applies the Contains predicate on the "content_kind" field.
func ContentKindContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldContentKind, v))
}

// ContentKindHasPrefix applies the HasPrefix predicate on the "content_kind" field.
func ContentKindHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldContentKind, v))
}

// ContentKindHasSuffix applies the HasSuffix predicate on the "content_kind" field.
func ContentKindHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldContentKind, v))
}

// ContentKindEqualFold applies the EqualFold predicate on the "content_kind" field.
func ContentKindEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldContentKind, v))
}

// ContentKindContainsFold applies the ContainsFold predicate on the "content_kind" field.
func ContentKindContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldContentKind, v))
}

// FingerprintEQ applies the EQ predicate on the "fingerprint" field.
func FingerprintEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldFingerprint, v))
}

// FingerprintNEQ applies the NEQ predicate on the "fingerprint" field.
func FingerprintNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldFingerprint, v))
}

// FingerprintIn applies the In predicate on the "fingerprint" field.
func FingerprintIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldFingerprint, vs...))
}

// FingerprintNotIn applies the NotIn predicate on the "fingerprint" field.
func FingerprintNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldFingerprint, vs...))
}

// FingerprintGT applies the GT predicate on the "fingerprint" field.
func FingerprintGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldFingerprint, v))
}

// FingerprintGTE applies the GTE predicate on the "fingerprint" field.
func FingerprintGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldFingerprint, v))
}

// FingerprintLT applies the LT predicate on the "fingerprint" field.
func FingerprintLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldFingerprint, v))
}

// FingerprintLTE applies the LTE predicate on the "fingerprint" field.
func FingerprintLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldFingerprint, v))
}

// FingerprintContains applies the Contains predicate on the "fingerprint" field.
func FingerprintContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldFingerprint, v))
}

// FingerprintHasPrefix applies the HasPrefix predicate on the "fingerprint" field.
func FingerprintHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldFingerprint, v))
}

// FingerprintHasSuffix applies the HasSuffix predicate on the "fingerprint" field.
func FingerprintHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldFingerprint, v))
}

// FingerprintIsNil applies the IsNil predicate on the "fingerprint" field.
func FingerprintIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldFingerprint))
}

// FingerprintNotNil applies the NotNil predicate on the "fingerprint" field.
func FingerprintNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldFingerprint))
}

// FingerprintEqualFold applies the EqualFold predicate on the "fingerprint" field.
func FingerprintEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldFingerprint, v))
}

// FingerprintContainsFold applies the ContainsFold predicate on the "fingerprint" field.
func FingerprintContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldFingerprint, v))
}

// CacheHitEQ applies the EQ predicate on the "cache_hit" field.
func CacheHitEQ(v bool) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCacheHit, v))
}

// CacheHitNEQ applies the NEQ predicate on the "cache_hit" field.
func CacheHitNEQ(v bool) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldCacheHit, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldFinishedAt))
}

// HasLegislation applies the HasEdge predicate on the "legislation" edge.
func HasLegislation() predicate.AnalysisJob {
	return predicate.AnalysisJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LegislationTable, LegislationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLegislationWith applies the HasEdge predicate on the "legislation" edge with a given conditions (other predicates).
func HasLegislationWith(preds ...predicate.Legislation) predicate.AnalysisJob {
	return predicate.AnalysisJob(func(s *sql.Selector) {
		step := newLegislationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.NotPredicates(p))
}
