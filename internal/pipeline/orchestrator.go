package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/chunk"
	"github.com/policypulse/policypulse/internal/llm"
)

// AllChunksFailedError reports a chunked analysis in which no chunk produced
// a usable result.
type AllChunksFailedError struct {
	Chunks  int
	LastErr error
}

func (e *AllChunksFailedError) Error() string {
	return fmt.Sprintf("all %d chunks failed: %v", e.Chunks, e.LastErr)
}

func (e *AllChunksFailedError) Unwrap() error { return e.LastErr }

// ChunkedResult is the merged output of a fan-out plus its coverage
// provenance. DroppedChunks lists the 0-based indices that contributed
// nothing; a non-empty list is a degradation the caller must surface, never
// an error.
type ChunkedResult struct {
	Analysis      *analysis.StructuredAnalysis
	ChunkCount    int
	DroppedChunks []int
	Synthesized   bool
}

// ChunkOrchestrator fans one document's chunks out to the model under a
// shared concurrency limit and folds the results back into one analysis.
type ChunkOrchestrator struct {
	analyzer llm.Analyzer
	limiter  *semaphore.Weighted
	retry    llm.RetryPolicy
	log      *slog.Logger
}

// NewChunkOrchestrator wires an orchestrator to the given analyzer. The
// limiter is process-wide: every orchestrator (and the direct-call path)
// shares one with the coordinator so total in-flight model calls stay
// bounded no matter how many requests run at once.
func NewChunkOrchestrator(analyzer llm.Analyzer, limiter *semaphore.Weighted, retry llm.RetryPolicy, log *slog.Logger) *ChunkOrchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &ChunkOrchestrator{analyzer: analyzer, limiter: limiter, retry: retry, log: log}
}

// AnalyzeChunked analyzes every chunk concurrently and merges whatever
// succeeded. Dispatch follows chunk index order; completion order does not
// affect the result, which is merged over index-sorted survivors. If the
// context expires mid-flight, chunks that already finished still count.
func (o *ChunkOrchestrator) AnalyzeChunked(ctx context.Context, chunks []chunk.Chunk, meta analysis.DocumentMeta) (*ChunkedResult, error) {
	if len(chunks) == 0 {
		return nil, fmt.Errorf("orchestrator: no chunks")
	}

	start := time.Now()
	o.log.Info("pipeline.chunked.start",
		"bill", meta.BillNumber, "chunks", len(chunks))

	results := make([]*analysis.StructuredAnalysis, len(chunks))
	errs := make([]error, len(chunks))

	var g errgroup.Group
	for i, ch := range chunks {
		g.Go(func() error {
			if err := o.limiter.Acquire(ctx, 1); err != nil {
				errs[i] = err
				return nil
			}
			defer o.limiter.Release(1)

			errs[i] = o.retry.Do(ctx, o.log, fmt.Sprintf("chunk[%d]", i), func(ctx context.Context) error {
				out, _, err := o.analyzer.AnalyzeText(ctx, llm.TextRequest{
					Text: ch.Text,
					Meta: meta,
					Chunk: analysis.ChunkContext{
						Index:     i,
						Total:     len(chunks),
						HardSplit: ch.HardSplit,
					},
				})
				if err != nil {
					return err
				}
				results[i] = out
				return nil
			})
			return nil
		})
	}
	_ = g.Wait()

	var survivors []analysis.ChunkAnalysis
	var dropped []int
	var lastErr error
	for i := range chunks {
		if results[i] == nil {
			dropped = append(dropped, i)
			if errs[i] != nil {
				lastErr = errs[i]
			}
			continue
		}
		survivors = append(survivors, analysis.ChunkAnalysis{
			Index:    i,
			Tokens:   chunks[i].Tokens,
			Analysis: results[i],
		})
	}

	if len(survivors) == 0 {
		o.log.Error("pipeline.chunked.all_failed",
			"bill", meta.BillNumber, "chunks", len(chunks), "error", lastErr,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, &AllChunksFailedError{Chunks: len(chunks), LastErr: lastErr}
	}

	merged, err := analysis.MergeChunkAnalyses(survivors)
	if err != nil {
		return nil, err
	}

	res := &ChunkedResult{
		Analysis:      merged,
		ChunkCount:    len(chunks),
		DroppedChunks: dropped,
	}
	o.synthesizeSummary(ctx, res, survivors, meta)

	if len(dropped) > 0 {
		o.log.Warn("pipeline.chunked.partial",
			"bill", meta.BillNumber, "chunks", len(chunks),
			"dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds())
	} else {
		o.log.Info("pipeline.chunked.ok",
			"bill", meta.BillNumber, "chunks", len(chunks),
			"synthesized", res.Synthesized,
			"elapsed_ms", time.Since(start).Milliseconds())
	}
	return res, nil
}

// synthesizeSummary replaces the concatenated summary with a coherent
// summary-of-summaries when the concatenation had to be truncated. Failure is
// tolerated: the truncated concatenation stands.
func (o *ChunkOrchestrator) synthesizeSummary(ctx context.Context, res *ChunkedResult, survivors []analysis.ChunkAnalysis, meta analysis.DocumentMeta) {
	if len(survivors) < 2 || !strings.HasSuffix(res.Analysis.Summary, "...") {
		return
	}

	parts := make([]string, 0, len(survivors))
	for _, s := range survivors {
		if sum := strings.TrimSpace(s.Analysis.Summary); sum != "" {
			parts = append(parts, sum)
		}
	}

	var synthesized string
	err := o.retry.Do(ctx, o.log, "synthesize", func(ctx context.Context) error {
		var err error
		synthesized, err = o.analyzer.SynthesizeSummary(ctx, llm.SynthesisRequest{
			Concatenated: strings.Join(parts, "\n\n"),
			Meta:         meta,
		})
		return err
	})
	if err != nil || strings.TrimSpace(synthesized) == "" {
		o.log.Warn("pipeline.synthesize.failed",
			"bill", meta.BillNumber, "error", err,
			"hint", "keeping truncated concatenation")
		return
	}
	res.Analysis.Summary = synthesized
	res.Synthesized = true
}
