// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/policypulse/policypulse/db/ent/schema"
	"github.com/policypulse/policypulse/gen/ent/analysisjob"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/gen/ent/legislation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescStatus is the schema descriptor for status field.
	analysisjobDescStatus := analysisjobFields[3].Descriptor()
	// analysisjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	analysisjob.StatusValidator = func() func(string) error {
		validators := analysisjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisjobDescContentKind is the schema descriptor for content_kind field.
	analysisjobDescContentKind := analysisjobFields[4].Descriptor()
	// analysisjob.ContentKindValidator is a validator for the "content_kind" field. It is called by the builders before save.
	analysisjob.ContentKindValidator = func() func(string) error {
		validators := analysisjobDescContentKind.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(content_kind string) error {
			for _, fn := range fns {
				if err := fn(content_kind); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisjobDescCacheHit is the schema descriptor for cache_hit field.
	analysisjobDescCacheHit := analysisjobFields[6].Descriptor()
	// analysisjob.DefaultCacheHit holds the default value on creation for the cache_hit field.
	analysisjob.DefaultCacheHit = analysisjobDescCacheHit.Default.(bool)
	// analysisjobDescStartedAt is the schema descriptor for started_at field.
	analysisjobDescStartedAt := analysisjobFields[8].Descriptor()
	// analysisjob.DefaultStartedAt holds the default value on creation for the started_at field.
	analysisjob.DefaultStartedAt = analysisjobDescStartedAt.Default.(func() time.Time)
	// analysisjobDescID is the schema descriptor for id field.
	analysisjobDescID := analysisjobFields[0].Descriptor()
	// analysisjob.DefaultID holds the default value on creation for the id field.
	analysisjob.DefaultID = analysisjobDescID.Default.(func() uuid.UUID)
	analysisversionFields := schema.AnalysisVersion{}.Fields()
	_ = analysisversionFields
	// analysisversionDescVersionNumber is the schema descriptor for version_number field.
	analysisversionDescVersionNumber := analysisversionFields[2].Descriptor()
	// analysisversion.VersionNumberValidator is a validator for the "version_number" field. It is called by the builders before save.
	analysisversion.VersionNumberValidator = analysisversionDescVersionNumber.Validators[0].(func(int) error)
	// analysisversionDescFingerprint is the schema descriptor for fingerprint field.
	analysisversionDescFingerprint := analysisversionFields[4].Descriptor()
	// analysisversion.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	analysisversion.FingerprintValidator = analysisversionDescFingerprint.Validators[0].(func(string) error)
	// analysisversionDescModelName is the schema descriptor for model_name field.
	analysisversionDescModelName := analysisversionFields[5].Descriptor()
	// analysisversion.ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	analysisversion.ModelNameValidator = analysisversionDescModelName.Validators[0].(func(string) error)
	// analysisversionDescSchemaVersion is the schema descriptor for schema_version field.
	analysisversionDescSchemaVersion := analysisversionFields[6].Descriptor()
	// analysisversion.SchemaVersionValidator is a validator for the "schema_version" field. It is called by the builders before save.
	analysisversion.SchemaVersionValidator = analysisversionDescSchemaVersion.Validators[0].(func(string) error)
	// analysisversionDescInsufficientText is the schema descriptor for insufficient_text field.
	analysisversionDescInsufficientText := analysisversionFields[10].Descriptor()
	// analysisversion.DefaultInsufficientText holds the default value on creation for the insufficient_text field.
	analysisversion.DefaultInsufficientText = analysisversionDescInsufficientText.Default.(bool)
	// analysisversionDescChunked is the schema descriptor for chunked field.
	analysisversionDescChunked := analysisversionFields[11].Descriptor()
	// analysisversion.DefaultChunked holds the default value on creation for the chunked field.
	analysisversion.DefaultChunked = analysisversionDescChunked.Default.(bool)
	// analysisversionDescChunkCount is the schema descriptor for chunk_count field.
	analysisversionDescChunkCount := analysisversionFields[12].Descriptor()
	// analysisversion.DefaultChunkCount holds the default value on creation for the chunk_count field.
	analysisversion.DefaultChunkCount = analysisversionDescChunkCount.Default.(int)
	// analysisversionDescProcessingMs is the schema descriptor for processing_ms field.
	analysisversionDescProcessingMs := analysisversionFields[14].Descriptor()
	// analysisversion.DefaultProcessingMs holds the default value on creation for the processing_ms field.
	analysisversion.DefaultProcessingMs = analysisversionDescProcessingMs.Default.(int64)
	// analysisversionDescCreatedAt is the schema descriptor for created_at field.
	analysisversionDescCreatedAt := analysisversionFields[15].Descriptor()
	// analysisversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisversion.DefaultCreatedAt = analysisversionDescCreatedAt.Default.(func() time.Time)
	// analysisversionDescID is the schema descriptor for id field.
	analysisversionDescID := analysisversionFields[0].Descriptor()
	// analysisversion.DefaultID holds the default value on creation for the id field.
	analysisversion.DefaultID = analysisversionDescID.Default.(func() uuid.UUID)
	legislationFields := schema.Legislation{}.Fields()
	_ = legislationFields
	// legislationDescExternalID is the schema descriptor for external_id field.
	legislationDescExternalID := legislationFields[1].Descriptor()
	// legislation.ExternalIDValidator is a validator for the "external_id" field. It is called by the builders before save.
	legislation.ExternalIDValidator = legislationDescExternalID.Validators[0].(func(string) error)
	// legislationDescBillNumber is the schema descriptor for bill_number field.
	legislationDescBillNumber := legislationFields[2].Descriptor()
	// legislation.BillNumberValidator is a validator for the "bill_number" field. It is called by the builders before save.
	legislation.BillNumberValidator = legislationDescBillNumber.Validators[0].(func(string) error)
	// legislationDescTitle is the schema descriptor for title field.
	legislationDescTitle := legislationFields[3].Descriptor()
	// legislation.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	legislation.TitleValidator = legislationDescTitle.Validators[0].(func(string) error)
	// legislationDescCreatedAt is the schema descriptor for created_at field.
	legislationDescCreatedAt := legislationFields[10].Descriptor()
	// legislation.DefaultCreatedAt holds the default value on creation for the created_at field.
	legislation.DefaultCreatedAt = legislationDescCreatedAt.Default.(func() time.Time)
	// legislationDescUpdatedAt is the schema descriptor for updated_at field.
	legislationDescUpdatedAt := legislationFields[11].Descriptor()
	// legislation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	legislation.DefaultUpdatedAt = legislationDescUpdatedAt.Default.(func() time.Time)
	// legislation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	legislation.UpdateDefaultUpdatedAt = legislationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// legislationDescID is the schema descriptor for id field.
	legislationDescID := legislationFields[0].Descriptor()
	// legislation.DefaultID holds the default value on creation for the id field.
	legislation.DefaultID = legislationDescID.Default.(func() uuid.UUID)
}
