package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/policypulse/policypulse/gen/policypulse/v1"

	"github.com/policypulse/policypulse/constants"
	"github.com/policypulse/policypulse/gen/ent"
	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/common"
	"github.com/policypulse/policypulse/internal/export"
	"github.com/policypulse/policypulse/internal/llm"
	"github.com/policypulse/policypulse/internal/pipeline"
	"github.com/policypulse/policypulse/internal/repository"
)

// AnalysisServer exposes the pipeline and the version store over gRPC. All
// user-facing error text is produced here; the pipeline only returns typed
// errors.
type AnalysisServer struct {
	v1.UnimplementedAnalysisServiceServer

	coordinator  *pipeline.Coordinator
	legRepo      repository.LegislationRepository
	analysisRepo repository.AnalysisRepository
	jobRepo      repository.AnalysisJobRepository
	exporter     *export.Service
	logger       *slog.Logger
}

func NewAnalysisServer(
	coordinator *pipeline.Coordinator,
	legRepo repository.LegislationRepository,
	analysisRepo repository.AnalysisRepository,
	jobRepo repository.AnalysisJobRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *AnalysisServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisServer{
		coordinator:  coordinator,
		legRepo:      legRepo,
		analysisRepo: analysisRepo,
		jobRepo:      jobRepo,
		exporter:     exporter,
		logger:       logger,
	}
}

func (s *AnalysisServer) Analyze(ctx context.Context, req *v1.AnalyzeRequest) (*v1.AnalyzeResponse, error) {
	externalID := strings.TrimSpace(req.GetExternalId())
	if externalID == "" {
		return nil, common.InvalidArgumentError("external_id is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	kind := constants.ContentKind(strings.ToUpper(strings.TrimSpace(req.GetContentKind())))
	switch kind {
	case constants.ContentText, constants.ContentPDF:
	case "":
		kind = constants.ContentText
		if constants.IsPDF(req.GetContent()) {
			kind = constants.ContentPDF
		}
	default:
		return nil, common.InvalidArgumentError("content_kind must be TEXT or PDF")
	}
	bill := req.GetBill()
	if bill.GetBillNumber() == "" {
		return nil, common.InvalidArgumentError("bill.bill_number is required")
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())

	leg, err := s.legRepo.Upsert(ctx, repository.UpsertLegislation{
		ExternalID:  externalID,
		BillNumber:  bill.GetBillNumber(),
		Title:       bill.GetTitle(),
		Description: bill.GetDescription(),
		GovtType:    bill.GetGovtType(),
		GovtSource:  bill.GetGovtSource(),
		BillStatus:  bill.GetBillStatus(),
		URL:         bill.GetUrl(),
	})
	if err != nil {
		s.logger.Error("analyze.upsert_failed", "external_id", externalID, "err", err)
		return nil, common.InternalError("failed to record legislation")
	}

	ctx = common.WithLegislationID(ctx, leg.ID.String())

	job, err := s.jobRepo.Start(ctx, leg.ID, kind)
	if err != nil {
		return nil, common.InternalError("failed to start analysis job")
	}

	res, err := s.coordinator.Analyze(ctx, pipeline.Request{
		Content: req.GetContent(),
		Kind:    kind,
		Meta: analysis.DocumentMeta{
			BillNumber:  bill.GetBillNumber(),
			Title:       bill.GetTitle(),
			Description: bill.GetDescription(),
			GovtType:    bill.GetGovtType(),
			GovtSource:  bill.GetGovtSource(),
			Status:      bill.GetBillStatus(),
		},
	})
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, pipelineStatus(err)
	}

	// nothing changed: same fingerprint already stored for this bill
	if existing, err := s.analysisRepo.FindByFingerprint(ctx, leg.ID, res.Fingerprint); err == nil {
		_ = s.jobRepo.FinishSuccess(ctx, job.ID, existing.ID, res.Status, res.Fingerprint, true)
		return &v1.AnalyzeResponse{
			Version:  versionToProto(existing),
			Status:   string(res.Status),
			CacheHit: true,
		}, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		s.logger.Warn("analyze.fingerprint_lookup_failed", "legislation_id", leg.ID, "err", err)
	}

	ver, err := s.analysisRepo.Append(ctx, leg.ID, res)
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		s.logger.Error("analyze.append_failed", "legislation_id", leg.ID, "err", err)
		return nil, common.InternalError("failed to store analysis version")
	}
	_ = s.jobRepo.FinishSuccess(ctx, job.ID, ver.ID, res.Status, res.Fingerprint, res.CacheHit)

	return &v1.AnalyzeResponse{
		Version:  versionToProto(ver),
		Status:   string(res.Status),
		CacheHit: res.CacheHit,
	}, nil
}

func (s *AnalysisServer) GetAnalysis(ctx context.Context, req *v1.GetAnalysisRequest) (*v1.GetAnalysisResponse, error) {
	legID, err := uuid.Parse(strings.TrimSpace(req.GetLegislationId()))
	if err != nil {
		return nil, common.InvalidArgumentError("legislation_id must be a UUID")
	}

	var ver *ent.AnalysisVersion
	if n := req.GetVersionNumber(); n > 0 {
		ver, err = s.analysisRepo.GetVersion(ctx, legID, int(n))
	} else {
		ver, err = s.analysisRepo.Current(ctx, legID)
	}
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.NotFoundError("analysis version not found")
	}
	if err != nil {
		return nil, common.InternalError("failed to load analysis version")
	}
	return &v1.GetAnalysisResponse{Version: versionToProto(ver)}, nil
}

func (s *AnalysisServer) ListVersions(ctx context.Context, req *v1.ListVersionsRequest) (*v1.ListVersionsResponse, error) {
	legID, err := uuid.Parse(strings.TrimSpace(req.GetLegislationId()))
	if err != nil {
		return nil, common.InvalidArgumentError("legislation_id must be a UUID")
	}

	versions, err := s.analysisRepo.ListVersions(ctx, legID)
	if err != nil {
		return nil, common.InternalError("failed to list analysis versions")
	}
	out := make([]*v1.AnalysisVersion, 0, len(versions))
	for _, v := range versions {
		out = append(out, versionToProto(v))
	}
	return &v1.ListVersionsResponse{Versions: out}, nil
}

func (s *AnalysisServer) ExportAnalyses(ctx context.Context, req *v1.ExportAnalysesRequest) (*v1.ExportAnalysesResponse, error) {
	legID, err := uuid.Parse(strings.TrimSpace(req.GetLegislationId()))
	if err != nil {
		return nil, common.InvalidArgumentError("legislation_id must be a UUID")
	}

	opts := export.Options{CurrentOnly: req.GetCurrentOnly()}
	if raw := strings.TrimSpace(req.GetCreatedFrom()); raw != "" {
		opts.CreatedFrom, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("created_from %q is not RFC 3339", raw)
		}
	}
	if raw := strings.TrimSpace(req.GetCreatedTo()); raw != "" {
		opts.CreatedTo, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("created_to %q is not RFC 3339", raw)
		}
	}

	xlsx, err := s.exporter.ExportAnalysesXLSX(ctx, legID, opts)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.NotFoundError("legislation not found")
	}
	if err != nil {
		s.logger.Error("export.xlsx.failed", "legislation_id", legID, "err", err)
		return nil, common.InternalError("export failed")
	}
	return &v1.ExportAnalysesResponse{Xlsx: xlsx}, nil
}

func versionToProto(v *ent.AnalysisVersion) *v1.AnalysisVersion {
	out := &v1.AnalysisVersion{
		Id:               v.ID.String(),
		LegislationId:    v.LegislationID.String(),
		VersionNumber:    int32(v.VersionNumber),
		Fingerprint:      v.Fingerprint,
		ModelName:        v.ModelName,
		SchemaVersion:    v.SchemaVersion,
		AnalysisJson:     string(v.AnalysisJSON),
		InsufficientText: v.InsufficientText,
		Chunked:          v.Chunked,
		ChunkCount:       int32(v.ChunkCount),
		ProcessingMs:     v.ProcessingMs,
		CreatedAt:        v.CreatedAt.Format(time.RFC3339Nano),
	}
	if v.PredecessorID != nil {
		out.PredecessorId = v.PredecessorID.String()
	}
	if v.Confidence != nil {
		out.Confidence = *v.Confidence
	}
	if v.ImpactLevel != nil {
		out.ImpactLevel = *v.ImpactLevel
	}
	for _, d := range v.DroppedChunks {
		out.DroppedChunks = append(out.DroppedChunks, int32(d))
	}
	return out
}

// pipelineStatus maps the pipeline's typed errors to gRPC status codes.
func pipelineStatus(err error) error {
	var cfgErr *llm.ConfigurationError
	if errors.As(err, &cfgErr) {
		return status.Error(codes.FailedPrecondition, cfgErr.Reason)
	}
	var allFailed *pipeline.AllChunksFailedError
	if errors.As(err, &allFailed) {
		return status.Error(codes.Unavailable, "analysis failed for every chunk")
	}
	var transient *llm.TransientCallError
	if errors.As(err, &transient) {
		return status.Error(codes.Unavailable, "model provider unavailable")
	}
	var schemaErr *llm.SchemaValidationError
	if errors.As(err, &schemaErr) {
		return status.Error(codes.Internal, "model produced no valid analysis")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "analysis deadline exceeded")
	}
	return status.Error(codes.Internal, "analysis failed")
}
