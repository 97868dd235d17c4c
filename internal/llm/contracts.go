package llm

import (
	"context"

	"github.com/policypulse/policypulse/internal/analysis"
)

// TextRequest asks for a structured analysis of plain text: either a whole
// document or one chunk of it (Chunk.Total > 0).
type TextRequest struct {
	Text  string
	Meta  analysis.DocumentMeta
	Chunk analysis.ChunkContext
}

// PDFRequest asks for a structured analysis of raw PDF bytes via the model's
// document/vision input. Filename is a hint only.
type PDFRequest struct {
	Raw      []byte
	Filename string
	Meta     analysis.DocumentMeta
}

// SynthesisRequest asks for one coherent summary condensed from the in-order
// concatenation of per-chunk summaries.
type SynthesisRequest struct {
	Concatenated string
	Meta         analysis.DocumentMeta
}

// Analyzer is the model-call interface the pipeline depends on. All methods
// are single attempts; retry sits above the Analyzer.
type Analyzer interface {
	AnalyzeText(ctx context.Context, req TextRequest) (*analysis.StructuredAnalysis, []byte /*rawJSON*/, error)
	AnalyzePDF(ctx context.Context, req PDFRequest) (*analysis.StructuredAnalysis, []byte /*rawJSON*/, error)
	SynthesizeSummary(ctx context.Context, req SynthesisRequest) (string, error)

	// Model returns the model identifier requests are routed to. It is part
	// of the fingerprint, so it must be stable for the client's lifetime.
	Model() string

	// SupportsVision reports whether AnalyzePDF can be used at all. Callers
	// must check before sending PDF bytes.
	SupportsVision() bool
}
