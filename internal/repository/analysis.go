package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/policypulse/policypulse/gen/ent"
	"github.com/policypulse/policypulse/gen/ent/analysisversion"
	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/common"
	"github.com/policypulse/policypulse/internal/pipeline"
)

// AnalysisRepository is the append-only store of analysis versions. There is
// deliberately no update or delete: a re-analysis appends a new version with
// a predecessor link, and the current version is the highest number.
type AnalysisRepository interface {
	Append(ctx context.Context, legislationID uuid.UUID, res *pipeline.Result) (*ent.AnalysisVersion, error)
	Current(ctx context.Context, legislationID uuid.UUID) (*ent.AnalysisVersion, error)
	GetVersion(ctx context.Context, legislationID uuid.UUID, number int) (*ent.AnalysisVersion, error)
	ListVersions(ctx context.Context, legislationID uuid.UUID) ([]*ent.AnalysisVersion, error)
	FindByFingerprint(ctx context.Context, legislationID uuid.UUID, fingerprint string) (*ent.AnalysisVersion, error)
}

type analysisRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAnalysisRepository(entc *ent.Client, log *slog.Logger) AnalysisRepository {
	return &analysisRepo{ent: entc, log: log}
}

// Append stores a pipeline result as the next version. Version number and
// predecessor link are computed inside one transaction, so concurrent
// appends for the same legislation serialize on the unique
// (legislation_id, version_number) index rather than racing.
func (r *analysisRepo) Append(ctx context.Context, legislationID uuid.UUID, res *pipeline.Result) (*ent.AnalysisVersion, error) {
	raw, err := json.Marshal(res.Analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	prev, err := tx.AnalysisVersion.Query().
		Where(analysisversion.LegislationID(legislationID)).
		Order(ent.Desc(analysisversion.FieldVersionNumber)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, rollback(tx, err)
	}

	next := 1
	create := tx.AnalysisVersion.Create().
		SetLegislationID(legislationID).
		SetFingerprint(res.Fingerprint).
		SetModelName(res.Model).
		SetSchemaVersion(analysis.SchemaVersion).
		SetAnalysisJSON(raw).
		SetConfidence(res.Analysis.Confidence).
		SetImpactLevel(string(res.Analysis.ImpactSummary.ImpactLevel)).
		SetInsufficientText(res.Analysis.InsufficientText).
		SetChunked(res.Chunked).
		SetChunkCount(res.ChunkCount).
		SetProcessingMs(res.ProcessingMS)
	if len(res.DroppedChunks) > 0 {
		create.SetDroppedChunks(res.DroppedChunks)
	}
	if prev != nil {
		next = prev.VersionNumber + 1
		create.SetPredecessorID(prev.ID)
	}
	create.SetVersionNumber(next)

	ver, err := create.Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.log.Info("analysis_version appended",
		"legislation_id", legislationID,
		"version", ver.VersionNumber,
		"fingerprint", ver.Fingerprint,
		"chunked", ver.Chunked,
	)
	return ver, nil
}

func (r *analysisRepo) Current(ctx context.Context, legislationID uuid.UUID) (*ent.AnalysisVersion, error) {
	ver, err := r.ent.AnalysisVersion.Query().
		Where(analysisversion.LegislationID(legislationID)).
		Order(ent.Desc(analysisversion.FieldVersionNumber)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return ver, err
}

func (r *analysisRepo) GetVersion(ctx context.Context, legislationID uuid.UUID, number int) (*ent.AnalysisVersion, error) {
	ver, err := r.ent.AnalysisVersion.Query().
		Where(
			analysisversion.LegislationID(legislationID),
			analysisversion.VersionNumber(number),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return ver, err
}

func (r *analysisRepo) ListVersions(ctx context.Context, legislationID uuid.UUID) ([]*ent.AnalysisVersion, error) {
	return r.ent.AnalysisVersion.Query().
		Where(analysisversion.LegislationID(legislationID)).
		Order(ent.Asc(analysisversion.FieldVersionNumber)).
		All(ctx)
}

// FindByFingerprint reports whether this exact content/model/schema identity
// was already analyzed for the legislation, newest first.
func (r *analysisRepo) FindByFingerprint(ctx context.Context, legislationID uuid.UUID, fingerprint string) (*ent.AnalysisVersion, error) {
	ver, err := r.ent.AnalysisVersion.Query().
		Where(
			analysisversion.LegislationID(legislationID),
			analysisversion.Fingerprint(fingerprint),
		).
		Order(ent.Desc(analysisversion.FieldVersionNumber)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return ver, err
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}
