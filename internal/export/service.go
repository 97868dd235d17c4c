package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/repository"
)

// Service is a tiny façade over the repositories that produces XLSX bytes
// for analysis exports.
type Service struct {
	legRepo      repository.LegislationRepository
	analysisRepo repository.AnalysisRepository
	logger       *slog.Logger
}

func NewService(legRepo repository.LegislationRepository, analysisRepo repository.AnalysisRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{legRepo: legRepo, analysisRepo: analysisRepo, logger: logger}
}

// Options narrow which versions land in the workbook. Zero time bounds mean
// unbounded; CreatedFrom is inclusive, CreatedTo exclusive.
type Options struct {
	CurrentOnly bool
	CreatedFrom time.Time
	CreatedTo   time.Time
}

// ExportAnalysesXLSX returns an XLSX workbook (as bytes) with one row per
// analysis version for the given legislation. If CurrentOnly is set, only the
// highest version is exported.
func (s *Service) ExportAnalysesXLSX(ctx context.Context, legislationID uuid.UUID, opts Options) ([]byte, error) {
	start := time.Now()

	leg, err := s.legRepo.GetByID(ctx, legislationID)
	if err != nil {
		return nil, fmt.Errorf("query legislation: %w", err)
	}

	versions, err := s.analysisRepo.ListVersions(ctx, legislationID)
	if err != nil {
		return nil, fmt.Errorf("query versions: %w", err)
	}
	if !opts.CreatedFrom.IsZero() || !opts.CreatedTo.IsZero() {
		kept := versions[:0]
		for _, v := range versions {
			if !opts.CreatedFrom.IsZero() && v.CreatedAt.Before(opts.CreatedFrom) {
				continue
			}
			if !opts.CreatedTo.IsZero() && !v.CreatedAt.Before(opts.CreatedTo) {
				continue
			}
			kept = append(kept, v)
		}
		versions = kept
	}
	if opts.CurrentOnly && len(versions) > 1 {
		versions = versions[len(versions)-1:]
	}

	f := excelize.NewFile()
	const sheet = "Analyses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Bill Number",
		"Version",
		"Created",
		"Model",
		"Impact Level",
		"Relevance",
		"Confidence",
		"Chunks",
		"Dropped",
		"Summary",
		"Key Points",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, v := range versions {
		var a analysis.StructuredAnalysis
		if err := json.Unmarshal(v.AnalysisJSON, &a); err != nil {
			s.logger.Warn("export.decode_failed",
				"legislation_id", legislationID, "version", v.VersionNumber, "error", err)
			continue
		}

		write := func(col int, val any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, val)
		}

		points := make([]string, 0, len(a.KeyPoints))
		for _, kp := range a.KeyPoints {
			points = append(points, fmt.Sprintf("[%s] %s", kp.ImpactType, kp.Point))
		}

		write(1, leg.BillNumber)
		write(2, v.VersionNumber)
		write(3, v.CreatedAt.Format("2006-01-02 15:04"))
		write(4, v.ModelName)
		write(5, string(a.ImpactSummary.ImpactLevel))
		write(6, string(a.ImpactSummary.Relevance))
		write(7, a.Confidence)
		write(8, v.ChunkCount)
		write(9, len(v.DroppedChunks))
		write(10, truncate(a.Summary, 500))
		write(11, truncate(strings.Join(points, "\n"), 1000))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 8)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "D", "D", 22)
	_ = f.SetColWidth(sheet, "E", "G", 12)
	_ = f.SetColWidth(sheet, "H", "I", 8)
	_ = f.SetColWidth(sheet, "J", "K", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"legislation_id", legislationID.String(),
		"rows", len(versions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	cut := n - 1
	// never cut inside a multibyte rune
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		return ""
	}
	return s[:cut] + "…"
}
