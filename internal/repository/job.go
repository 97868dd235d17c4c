package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/policypulse/policypulse/constants"
	"github.com/policypulse/policypulse/gen/ent"
)

type AnalysisJobRepository interface {
	Start(ctx context.Context, legislationID uuid.UUID, kind constants.ContentKind) (*ent.AnalysisJob, error)
	FinishSuccess(ctx context.Context, jobID, versionID uuid.UUID, status constants.JobStatus, fingerprint string, cacheHit bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type analysisJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAnalysisJobRepository(entc *ent.Client, log *slog.Logger) AnalysisJobRepository {
	return &analysisJobRepo{ent: entc, log: log}
}

func (r *analysisJobRepo) Start(ctx context.Context, legislationID uuid.UUID, kind constants.ContentKind) (*ent.AnalysisJob, error) {
	job, err := r.ent.AnalysisJob.
		Create().
		SetLegislationID(legislationID).
		SetStatus(string(constants.JobStatusRunning)).
		SetContentKind(string(kind)).
		Save(ctx)
	if err != nil {
		r.log.Error("analysis_job start failed", "legislation_id", legislationID, "err", err)
		return nil, err
	}
	r.log.Info("analysis_job started", "job_id", job.ID, "legislation_id", legislationID, "kind", kind)
	return job, nil
}

func (r *analysisJobRepo) FinishSuccess(ctx context.Context, jobID, versionID uuid.UUID, status constants.JobStatus, fingerprint string, cacheHit bool) error {
	_, err := r.ent.AnalysisJob.
		UpdateOneID(jobID).
		SetStatus(string(status)).
		SetVersionID(versionID).
		SetFingerprint(fingerprint).
		SetCacheHit(cacheHit).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("analysis_job finish failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("analysis_job finished", "job_id", jobID, "status", status, "cache_hit", cacheHit)
	return nil
}

func (r *analysisJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.AnalysisJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("analysis_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("analysis_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
