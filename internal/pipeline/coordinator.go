package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/policypulse/policypulse/constants"
	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/cache"
	"github.com/policypulse/policypulse/internal/chunk"
	"github.com/policypulse/policypulse/internal/common"
	"github.com/policypulse/policypulse/internal/llm"
	"github.com/policypulse/policypulse/internal/pdftext"
	"github.com/policypulse/policypulse/internal/token"
)

// Request is one analysis request. The caller supplies the content; the
// pipeline never fetches anything itself.
type Request struct {
	Content []byte
	Kind    constants.ContentKind
	Meta    analysis.DocumentMeta
}

// Result packages a finished analysis with its provenance, everything the
// caller needs to persist a new AnalysisVersion.
type Result struct {
	Analysis    *analysis.StructuredAnalysis
	Fingerprint string
	Model       string
	Status      constants.JobStatus

	Chunked       bool
	ChunkCount    int
	DroppedChunks []int
	Synthesized   bool

	ProcessingMS int64
	CacheHit     bool
}

// Coordinator drives one analysis request through its states: fingerprint,
// cache check, then the insufficient / direct / chunked / vision route.
type Coordinator struct {
	cfg      common.PipelineConfig
	counter  *token.Counter
	splitter *chunk.Splitter
	analyzer llm.Analyzer
	cache    *cache.Cache[*Result]
	orch     *ChunkOrchestrator
	limiter  *semaphore.Weighted
	retry    llm.RetryPolicy
	log      *slog.Logger
}

func NewCoordinator(cfg common.PipelineConfig, analyzer llm.Analyzer, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	counter := token.NewCounter(log)
	limiter := semaphore.NewWeighted(int64(max(cfg.MaxConcurrentCalls, 1)))
	retry := llm.RetryPolicy{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.RetryBaseDelay,
	}
	return &Coordinator{
		cfg:      cfg,
		counter:  counter,
		splitter: chunk.NewSplitter(counter, log),
		analyzer: analyzer,
		cache:    cache.New[*Result](cfg.CacheTTL, cfg.CacheMaxEntries, log),
		orch:     NewChunkOrchestrator(analyzer, limiter, retry, log),
		limiter:  limiter,
		retry:    retry,
		log:      log,
	}
}

// Analyze runs the full state machine for one request. Identical concurrent
// requests (same fingerprint) share one computation; repeat requests within
// the cache TTL are served without touching the model.
func (c *Coordinator) Analyze(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	fp := analysis.Fingerprint(req.Content, req.Kind, c.analyzer.Model())

	log := c.log
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		log = log.With("req_id", rid)
	}
	log.Info("pipeline.request.start",
		"fingerprint", fp,
		"kind", req.Kind,
		"content_bytes", len(req.Content),
		"bill", req.Meta.BillNumber,
	)

	res, hit, err := c.cache.GetOrCompute(ctx, fp, func(ctx context.Context) (*Result, error) {
		return c.compute(ctx, fp, req)
	})
	if err != nil {
		log.Error("pipeline.request.failed",
			"fingerprint", fp, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	if hit {
		log.Info("pipeline.cache.hit",
			"fingerprint", fp, "status", res.Status,
			"elapsed_ms", time.Since(start).Milliseconds())
		// shallow copy so the cached provenance stays pristine
		out := *res
		out.CacheHit = true
		return &out, nil
	}

	log.Info("pipeline.request.done",
		"fingerprint", fp, "status", res.Status,
		"chunked", res.Chunked, "dropped", len(res.DroppedChunks),
		"elapsed_ms", time.Since(start).Milliseconds())
	return res, nil
}

// compute runs at most once per fingerprint across concurrent callers. The
// incoming ctx is detached from any single caller; the overall request
// deadline is applied here so it governs the computation itself.
func (c *Coordinator) compute(ctx context.Context, fp string, req Request) (*Result, error) {
	if c.cfg.RequestDeadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestDeadline)
		defer cancel()
	}
	start := time.Now()
	model := c.analyzer.Model()

	text, viaVision, err := c.resolveText(ctx, fp, req)
	if err != nil {
		return nil, err
	}
	if viaVision != nil {
		viaVision.ProcessingMS = time.Since(start).Milliseconds()
		return viaVision, nil
	}

	tokens := c.counter.Count(text, model)

	if tokens < c.cfg.MinAnalyzableTokens {
		c.log.Info("pipeline.insufficient",
			"fingerprint", fp, "tokens", tokens, "threshold", c.cfg.MinAnalyzableTokens)
		return &Result{
			Analysis:     analysis.NewInsufficientTextAnalysis(),
			Fingerprint:  fp,
			Model:        model,
			Status:       constants.JobStatusInsufficient,
			ProcessingMS: time.Since(start).Milliseconds(),
		}, nil
	}

	// the configured window never exceeds what the model actually has
	window := c.cfg.ContextTokens
	if w := c.counter.Params(model).ContextWindow; w > 0 && w < window {
		window = w
	}
	limit := window - c.cfg.SafetyBufferTokens
	if limit <= 0 {
		return nil, fmt.Errorf("pipeline: context %d does not fit safety buffer %d",
			window, c.cfg.SafetyBufferTokens)
	}

	if tokens <= limit {
		out, err := c.directText(ctx, text, req.Meta)
		if err != nil {
			return nil, err
		}
		return &Result{
			Analysis:     out,
			Fingerprint:  fp,
			Model:        model,
			Status:       constants.JobStatusDone,
			ProcessingMS: time.Since(start).Milliseconds(),
		}, nil
	}

	chunks, err := c.splitter.Split(text, limit, model)
	if err != nil {
		return nil, err
	}
	chunked, err := c.orch.AnalyzeChunked(ctx, chunks, req.Meta)
	if err != nil {
		return nil, err
	}

	status := constants.JobStatusDone
	if len(chunked.DroppedChunks) > 0 {
		status = constants.JobStatusPartial
	}
	return &Result{
		Analysis:      chunked.Analysis,
		Fingerprint:   fp,
		Model:         model,
		Status:        status,
		Chunked:       true,
		ChunkCount:    chunked.ChunkCount,
		DroppedChunks: chunked.DroppedChunks,
		Synthesized:   chunked.Synthesized,
		ProcessingMS:  time.Since(start).Milliseconds(),
	}, nil
}

// resolveText normalizes the request down to analyzable text, or completes
// it outright on the vision path. PDF content goes straight to the model
// when it can take documents; otherwise the text layer is extracted and the
// request continues as text.
func (c *Coordinator) resolveText(ctx context.Context, fp string, req Request) (string, *Result, error) {
	if req.Kind != constants.ContentPDF {
		return analysis.NormalizeText(string(req.Content)), nil, nil
	}

	if c.analyzer.SupportsVision() {
		out, err := c.directPDF(ctx, req)
		if err != nil {
			return "", nil, err
		}
		return "", &Result{
			Analysis:    out,
			Fingerprint: fp,
			Model:       c.analyzer.Model(),
			Status:      constants.JobStatusDone,
		}, nil
	}

	c.log.Info("pipeline.pdf.extract_fallback", "fingerprint", fp)
	text, err := pdftext.ExtractText(req.Content, c.log)
	if err != nil {
		return "", nil, err
	}
	return analysis.NormalizeText(text), nil, nil
}

func (c *Coordinator) directText(ctx context.Context, text string, meta analysis.DocumentMeta) (*analysis.StructuredAnalysis, error) {
	if err := c.limiter.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.limiter.Release(1)

	var out *analysis.StructuredAnalysis
	err := c.retry.Do(ctx, c.log, "direct", func(ctx context.Context) error {
		var err error
		out, _, err = c.analyzer.AnalyzeText(ctx, llm.TextRequest{Text: text, Meta: meta})
		return err
	})
	return out, err
}

func (c *Coordinator) directPDF(ctx context.Context, req Request) (*analysis.StructuredAnalysis, error) {
	if err := c.limiter.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.limiter.Release(1)

	var out *analysis.StructuredAnalysis
	err := c.retry.Do(ctx, c.log, "direct_pdf", func(ctx context.Context) error {
		var err error
		out, _, err = c.analyzer.AnalyzePDF(ctx, llm.PDFRequest{Raw: req.Content, Meta: req.Meta})
		return err
	})
	return out, err
}
