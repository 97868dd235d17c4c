// Code generated by ent, DO NOT EDIT.

package legislation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/policypulse/policypulse/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldExternalID, v))
}

// BillNumber applies equality check predicate on the "bill_number" field. It's identical to BillNumberEQ.
func BillNumber(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldBillNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldDescription, v))
}

// GovtType applies equality check predicate on the "govt_type" field. It's identical to GovtTypeEQ.
func GovtType(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldGovtType, v))
}

// GovtSource applies equality check predicate on the "govt_source" field. It's identical to GovtSourceEQ.
func GovtSource(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldGovtSource, v))
}

// BillStatus applies equality check predicate on the "bill_status" field. It's identical to BillStatusEQ.
func BillStatus(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldBillStatus, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldURL, v))
}

// LastActionAt applies equality check predicate on the "last_action_at" field. It's identical to LastActionAtEQ.
func LastActionAt(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldLastActionAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldExternalID, v))
}

// BillNumberEQ applies the EQ predicate on the "bill_number" field.
func BillNumberEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldBillNumber, v))
}

// BillNumberNEQ applies the NEQ predicate on the "bill_number" field.
func BillNumberNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldBillNumber, v))
}

// BillNumberIn applies the In predicate on the "bill_number" field.
func BillNumberIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldBillNumber, vs...))
}

// BillNumberNotIn applies the NotIn predicate on the "bill_number" field.
func BillNumberNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldBillNumber, vs...))
}

// BillNumberGT applies the GT predicate on the "bill_number" field.
func BillNumberGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldBillNumber, v))
}

// BillNumberGTE applies the GTE predicate on the "bill_number" field.
func BillNumberGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldBillNumber, v))
}

// BillNumberLT applies the LT predicate on the "bill_number" field.
func BillNumberLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldBillNumber, v))
}

// BillNumberLTE applies the LTE predicate on the "bill_number" field.
func BillNumberLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldBillNumber, v))
}

// BillNumberContains applies the Contains predicate on the "bill_number" field.
func BillNumberContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldBillNumber, v))
}

// BillNumberHasPrefix applies the HasPrefix predicate on the "bill_number" field.
func BillNumberHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldBillNumber, v))
}

// BillNumberHasSuffix applies the HasSuffix predicate on the "bill_number" field.
func BillNumberHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldBillNumber, v))
}

// BillNumberEqualFold applies the EqualFold predicate on the "bill_number" field.
func BillNumberEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldBillNumber, v))
}

// BillNumberContainsFold applies the ContainsFold predicate on the "bill_number" field.
func BillNumberContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldBillNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldDescription, v))
}

// GovtTypeEQ applies the EQ predicate on the "govt_type" field.
func GovtTypeEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldGovtType, v))
}

// GovtTypeNEQ applies the NEQ predicate on the "govt_type" field.
func GovtTypeNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldGovtType, v))
}

// GovtTypeIn applies the In predicate on the "govt_type" field.
func GovtTypeIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldGovtType, vs...))
}

// GovtTypeNotIn applies the NotIn predicate on the "govt_type" field.
func GovtTypeNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldGovtType, vs...))
}

// GovtTypeGT applies the GT predicate on the "govt_type" field.
func GovtTypeGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldGovtType, v))
}

// GovtTypeGTE applies the GTE predicate on the "govt_type" field.
func GovtTypeGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldGovtType, v))
}

// GovtTypeLT applies the LT predicate on the "govt_type" field.
func GovtTypeLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldGovtType, v))
}

// GovtTypeLTE applies the LTE predicate on the "govt_type" field.
func GovtTypeLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldGovtType, v))
}

// GovtTypeContains applies the Contains predicate on the "govt_type" field.
func GovtTypeContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldGovtType, v))
}

// GovtTypeHasPrefix applies the HasPrefix predicate on the "govt_type" field.
func GovtTypeHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldGovtType, v))
}

// GovtTypeHasSuffix applies the HasSuffix predicate on the "govt_type" field.
func GovtTypeHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldGovtType, v))
}

// GovtTypeIsNil applies the IsNil predicate on the "govt_type" field.
func GovtTypeIsNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldIsNull(FieldGovtType))
}

// GovtTypeNotNil applies the NotNil predicate on the "govt_type" field.
func GovtTypeNotNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldNotNull(FieldGovtType))
}

// GovtTypeEqualFold applies the EqualFold predicate on the "govt_type" field.
func GovtTypeEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldGovtType, v))
}

// GovtTypeContainsFold applies the ContainsFold predicate on the "govt_type" field.
func GovtTypeContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldGovtType, v))
}

// GovtSourceEQ applies the EQ predicate on the "govt_source" field.
func GovtSourceEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldGovtSource, v))
}

// GovtSourceNEQ applies the NEQ predicate on the "govt_source" field.
func GovtSourceNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldGovtSource, v))
}

// GovtSourceIn applies the In predicate on the "govt_source" field.
func GovtSourceIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldGovtSource, vs...))
}

// GovtSourceNotIn applies the NotIn predicate on the "govt_source" field.
func GovtSourceNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldGovtSource, vs...))
}

// GovtSourceGT applies the GT predicate on the "govt_source" field.
func GovtSourceGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldGovtSource, v))
}

// GovtSourceGTE applies the GTE predicate on the "govt_source" field.
func GovtSourceGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldGovtSource, v))
}

// GovtSourceLT applies the LT predicate on the "govt_source" field.
func GovtSourceLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldGovtSource, v))
}

// GovtSourceLTE applies the LTE predicate on the "govt_source" field.
func GovtSourceLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldGovtSource, v))
}

// GovtSourceContains applies the Contains predicate on the "govt_source" field.
func GovtSourceContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldGovtSource, v))
}

// GovtSourceHasPrefix applies the HasPrefix predicate on the "govt_source" field.
func GovtSourceHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldGovtSource, v))
}

// GovtSourceHasSuffix applies the HasSuffix predicate on the "govt_source" field.
func GovtSourceHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldGovtSource, v))
}

// GovtSourceIsNil applies the IsNil predicate on the "govt_source" field.
func GovtSourceIsNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldIsNull(FieldGovtSource))
}

// GovtSourceNotNil applies the NotNil predicate on the "govt_source" field.
func GovtSourceNotNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldNotNull(FieldGovtSource))
}

// GovtSourceEqualFold applies the EqualFold predicate on the "govt_source" field.
func GovtSourceEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldGovtSource, v))
}

// GovtSourceContainsFold applies the ContainsFold predicate on the "govt_source" field.
func GovtSourceContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldGovtSource, v))
}

// BillStatusEQ applies the EQ predicate on the "bill_status" field.
func BillStatusEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldBillStatus, v))
}

// BillStatusNEQ applies the NEQ predicate on the "bill_status" field.
func BillStatusNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldBillStatus, v))
}

// BillStatusIn applies the In predicate on the "bill_status" field.
func BillStatusIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldBillStatus, vs...))
}

// BillStatusNotIn applies the NotIn predicate on the "bill_status" field.
func BillStatusNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldBillStatus, vs...))
}

// BillStatusGT applies the GT predicate on the "bill_status" field.
func BillStatusGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldBillStatus, v))
}

// BillStatusGTE applies the GTE predicate on the "bill_status" field.
func BillStatusGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldBillStatus, v))
}

// BillStatusLT applies the LT predicate on the "bill_status" field.
func BillStatusLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldBillStatus, v))
}

// BillStatusLTE applies the LTE predicate on the "bill_status" field.
func BillStatusLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldBillStatus, v))
}

// BillStatusContains applies the Contains predicate on the "bill_status" field.
func BillStatusContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldBillStatus, v))
}

// BillStatusHasPrefix applies the HasPrefix predicate on the "bill_status" field.
func BillStatusHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldBillStatus, v))
}

// BillStatusHasSuffix applies the HasSuffix predicate on the "bill_status" field.
func BillStatusHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldBillStatus, v))
}

// BillStatusIsNil applies the IsNil predicate on the "bill_status" field.
func BillStatusIsNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldIsNull(FieldBillStatus))
}

// BillStatusNotNil applies the NotNil predicate on the "bill_status" field.
func BillStatusNotNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldNotNull(FieldBillStatus))
}

// BillStatusEqualFold applies the EqualFold predicate on the "bill_status" field.
func BillStatusEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldBillStatus, v))
}

// BillStatusContainsFold applies the ContainsFold predicate on the "bill_status" field.
func BillStatusContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldBillStatus, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Legislation {
	return predicate.Legislation(sql.FieldContainsFold(FieldURL, v))
}

// LastActionAtEQ applies the EQ predicate on the "last_action_at" field.
func LastActionAtEQ(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldLastActionAt, v))
}

// LastActionAtNEQ applies the NEQ predicate on the "last_action_at" field.
func LastActionAtNEQ(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldLastActionAt, v))
}

// LastActionAtIn applies the In predicate on the "last_action_at" field.
func LastActionAtIn(vs ...time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldLastActionAt, vs...))
}

// LastActionAtNotIn applies the NotIn predicate on the "last_action_at" field.
func LastActionAtNotIn(vs ...time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldLastActionAt, vs...))
}

// LastActionAtGT applies the GT predicate on the "last_action_at" field.
func LastActionAtGT(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldLastActionAt, v))
}

// LastActionAtGTE applies the GTE predicate on the "last_action_at" field.
func LastActionAtGTE(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldLastActionAt, v))
}

// LastActionAtLT applies the LT predicate on the "last_action_at" field.
func LastActionAtLT(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldLastActionAt, v))
}

// LastActionAtLTE applies the LTE predicate on the "last_action_at" field.
func LastActionAtLTE(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldLastActionAt, v))
}

// LastActionAtIsNil applies the IsNil predicate on the "last_action_at" field.
func LastActionAtIsNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldIsNull(FieldLastActionAt))
}

// LastActionAtNotNil applies the NotNil predicate on the "last_action_at" field.
func LastActionAtNotNil() predicate.Legislation {
	return predicate.Legislation(sql.FieldNotNull(FieldLastActionAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Legislation {
	return predicate.Legislation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Legislation {
	return predicate.Legislation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.AnalysisVersion) predicate.Legislation {
	return predicate.Legislation(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Legislation {
	return predicate.Legislation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.AnalysisJob) predicate.Legislation {
	return predicate.Legislation(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Legislation) predicate.Legislation {
	return predicate.Legislation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Legislation) predicate.Legislation {
	return predicate.Legislation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Legislation) predicate.Legislation {
	return predicate.Legislation(sql.NotPredicates(p))
}
