package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policypulse/policypulse/constants"
	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/common"
	"github.com/policypulse/policypulse/internal/llm"
	"github.com/policypulse/policypulse/internal/token"
)

const fakeModel = "fake-model"

// fakeAnalyzer records calls and can be told to fail specific chunk indices.
type fakeAnalyzer struct {
	mu         sync.Mutex
	textCalls  []llm.TextRequest
	pdfCalls   int
	synthCalls int

	failChunks  map[int]error // chunk index -> permanent failure
	blockChunks map[int]bool  // chunk index -> hang until the context expires
	failAll     error
	failFirst   int32 // fail this many text attempts with a transient error
	attempts    atomic.Int32
	vision      bool
	gate        chan struct{} // when set, AnalyzeText blocks until closed
}

func (f *fakeAnalyzer) Model() string        { return fakeModel }
func (f *fakeAnalyzer) SupportsVision() bool { return f.vision }

func (f *fakeAnalyzer) AnalyzeText(ctx context.Context, req llm.TextRequest) (*analysis.StructuredAnalysis, []byte, error) {
	f.mu.Lock()
	f.textCalls = append(f.textCalls, req)
	f.mu.Unlock()

	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}
	if f.blockChunks[req.Chunk.Index] && req.Chunk.Total > 0 {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}
	if n := f.attempts.Add(1); n <= f.failFirst {
		return nil, nil, &llm.TransientCallError{Op: "chat", Err: fmt.Errorf("transient failure %d", n)}
	}
	if f.failAll != nil {
		return nil, nil, f.failAll
	}
	if err, ok := f.failChunks[req.Chunk.Index]; ok && req.Chunk.Total > 0 {
		return nil, nil, err
	}

	out := &analysis.StructuredAnalysis{
		Summary: fmt.Sprintf("analysis of %d words", len(strings.Fields(req.Text))),
		KeyPoints: []analysis.KeyPoint{
			{Point: fmt.Sprintf("finding for chunk %d", req.Chunk.Index), ImpactType: analysis.ImpactNeutral},
		},
		ImpactSummary: analysis.ImpactSummary{
			PrimaryCategory: analysis.CategoryLocalGov,
			ImpactLevel:     analysis.LevelModerate,
			Relevance:       analysis.RelevanceModerate,
		},
		Confidence: 0.8,
	}
	out.Normalize()
	return out, nil, nil
}

func (f *fakeAnalyzer) AnalyzePDF(ctx context.Context, req llm.PDFRequest) (*analysis.StructuredAnalysis, []byte, error) {
	f.mu.Lock()
	f.pdfCalls++
	f.mu.Unlock()

	out := &analysis.StructuredAnalysis{Summary: "pdf analysis", Confidence: 0.7}
	out.Normalize()
	return out, nil, nil
}

func (f *fakeAnalyzer) SynthesizeSummary(ctx context.Context, req llm.SynthesisRequest) (string, error) {
	f.mu.Lock()
	f.synthCalls++
	f.mu.Unlock()
	return "synthesized summary", nil
}

func (f *fakeAnalyzer) textCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.textCalls)
}

func testConfig() common.PipelineConfig {
	return common.PipelineConfig{
		MinAnalyzableTokens: 10,
		ContextTokens:       120,
		SafetyBufferTokens:  20, // direct-call limit: 100 tokens
		MaxConcurrentCalls:  4,
		MaxAttempts:         2,
		RetryBaseDelay:      time.Millisecond,
		CacheTTL:            time.Minute,
		CacheMaxEntries:     16,
		RequestDeadline:     time.Minute,
	}
}

func newTestCoordinator(fake *fakeAnalyzer) *Coordinator {
	return newTestCoordinatorCfg(fake, testConfig())
}

func newTestCoordinatorCfg(fake *fakeAnalyzer, cfg common.PipelineConfig) *Coordinator {
	c := NewCoordinator(cfg, fake, nil)
	// one word = one token, so tests can hit exact boundaries
	c.counter.RegisterModel(fakeModel, token.ModelParams{
		TokensPerWord: 1,
		TokensPerChar: 0.01,
		ContextWindow: 120,
	})
	return c
}

// wordParagraphs builds n one-word paragraphs, so the text counts n tokens
// and splits at paragraph boundaries.
func wordParagraphs(n int) []byte {
	words := make([]string, n)
	for i := range words {
		words[i] = "clause"
	}
	return []byte(strings.Join(words, "\n\n"))
}

func TestCoordinator_InsufficientText(t *testing.T) {
	fake := &fakeAnalyzer{}
	c := newTestCoordinator(fake)

	res, err := c.Analyze(context.Background(), Request{
		Content: []byte("too short"),
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusInsufficient, res.Status)
	assert.True(t, res.Analysis.InsufficientText)
	assert.Equal(t, 0, fake.textCallCount(), "model must never see insufficient text")

	// the insufficient result is cached like any success
	res2, err := c.Analyze(context.Background(), Request{
		Content: []byte("too short"),
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)
	assert.True(t, res2.CacheHit)
	assert.Equal(t, constants.JobStatusInsufficient, res2.Status)
	assert.Equal(t, 0, fake.textCallCount())
}

func TestCoordinator_DirectAtLimit(t *testing.T) {
	fake := &fakeAnalyzer{}
	c := newTestCoordinator(fake)

	res, err := c.Analyze(context.Background(), Request{
		Content: wordParagraphs(100), // exactly the direct-call limit
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusDone, res.Status)
	assert.False(t, res.Chunked)
	require.Equal(t, 1, fake.textCallCount())
	assert.Equal(t, 0, fake.textCalls[0].Chunk.Total, "direct call carries no chunk context")
}

func TestCoordinator_ChunkedOverLimit(t *testing.T) {
	fake := &fakeAnalyzer{}
	c := newTestCoordinator(fake)

	res, err := c.Analyze(context.Background(), Request{
		Content: wordParagraphs(101), // one past the limit
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusDone, res.Status)
	assert.True(t, res.Chunked)
	assert.Equal(t, 2, res.ChunkCount)
	assert.Empty(t, res.DroppedChunks)
	require.Equal(t, 2, fake.textCallCount())
	for _, call := range fake.textCalls {
		assert.Equal(t, 2, call.Chunk.Total)
	}
}

func TestCoordinator_PartialCoverageOnChunkFailure(t *testing.T) {
	fake := &fakeAnalyzer{
		failChunks: map[int]error{
			2: &llm.SchemaValidationError{Err: errors.New("never valid")},
		},
	}
	c := newTestCoordinator(fake)

	// five 80-word paragraphs: each paragraph overflows a shared chunk, so
	// the splitter emits five chunks under the 100-token budget
	para := strings.Repeat("provision ", 80)
	content := []byte(strings.TrimSpace(strings.Repeat(para+"\n\n", 5)))

	res, err := c.Analyze(context.Background(), Request{
		Content: content,
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusPartial, res.Status)
	assert.Equal(t, 5, res.ChunkCount)
	assert.Equal(t, []int{2}, res.DroppedChunks)
	assert.NotNil(t, res.Analysis)
	assert.False(t, res.Analysis.InsufficientText)
}

func TestCoordinator_DeadlineKeepsFinishedChunks(t *testing.T) {
	// chunk 1 hangs past the request deadline; chunk 0 finishes instantly
	// and must still make it into the merged result
	fake := &fakeAnalyzer{blockChunks: map[int]bool{1: true}}
	cfg := testConfig()
	cfg.RequestDeadline = 100 * time.Millisecond
	cfg.MaxAttempts = 1
	c := newTestCoordinatorCfg(fake, cfg)

	res, err := c.Analyze(context.Background(), Request{
		Content: wordParagraphs(101), // two chunks
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusPartial, res.Status)
	assert.Equal(t, 2, res.ChunkCount)
	assert.Equal(t, []int{1}, res.DroppedChunks)
	require.NotNil(t, res.Analysis)
	assert.NotEmpty(t, res.Analysis.Summary)
}

func TestCoordinator_ModelWindowTightensDirectLimit(t *testing.T) {
	fake := &fakeAnalyzer{}
	c := newTestCoordinator(fake)
	// the model's own window is smaller than the configured one, so the
	// direct-call limit drops to 60-20=40 tokens
	c.counter.RegisterModel(fakeModel, token.ModelParams{
		TokensPerWord: 1,
		TokensPerChar: 0.01,
		ContextWindow: 60,
	})

	res, err := c.Analyze(context.Background(), Request{
		Content: wordParagraphs(50),
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)

	assert.True(t, res.Chunked, "50 tokens must not go direct through a 40-token limit")
	assert.Equal(t, constants.JobStatusDone, res.Status)
	for _, call := range fake.textCalls {
		assert.LessOrEqual(t, len(strings.Fields(call.Text)), 40)
	}
}

func TestCoordinator_AllChunksFailed(t *testing.T) {
	fake := &fakeAnalyzer{
		failAll: &llm.SchemaValidationError{Err: errors.New("never valid")},
	}
	c := newTestCoordinator(fake)

	_, err := c.Analyze(context.Background(), Request{
		Content: wordParagraphs(150),
		Kind:    constants.ContentText,
	})
	require.Error(t, err)

	var allFailed *AllChunksFailedError
	assert.True(t, errors.As(err, &allFailed))
}

func TestCoordinator_ConcurrentIdenticalRequestsShareOneCall(t *testing.T) {
	fake := &fakeAnalyzer{gate: make(chan struct{})}
	c := newTestCoordinator(fake)

	content := wordParagraphs(50)

	const callers = 4
	var wg sync.WaitGroup
	results := make([]*Result, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Analyze(context.Background(), Request{
				Content: content,
				Kind:    constants.ContentText,
			})
		}(i)
	}

	// let all callers join the flight, then release the model call
	require.Eventually(t, func() bool { return fake.textCallCount() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(fake.gate)
	wg.Wait()

	assert.Equal(t, 1, fake.textCallCount(), "identical concurrent requests must share one model call")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].Fingerprint, results[i].Fingerprint)
		assert.Equal(t, results[0].Analysis, results[i].Analysis)
	}
}

func TestCoordinator_RetryRecoversTransientFailure(t *testing.T) {
	fake := &fakeAnalyzer{failFirst: 1}
	c := newTestCoordinator(fake)

	res, err := c.Analyze(context.Background(), Request{
		Content: wordParagraphs(50),
		Kind:    constants.ContentText,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusDone, res.Status)
	assert.Equal(t, 2, fake.textCallCount())
}

func TestCoordinator_PDFVisionDirectPath(t *testing.T) {
	fake := &fakeAnalyzer{vision: true}
	c := newTestCoordinator(fake)

	res, err := c.Analyze(context.Background(), Request{
		Content: []byte("%PDF-1.7 pretend"),
		Kind:    constants.ContentPDF,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusDone, res.Status)
	assert.False(t, res.Chunked, "pdf bypasses chunking")
	assert.Equal(t, 1, fake.pdfCalls)
	assert.Equal(t, 0, fake.textCallCount())
}

func TestCoordinator_PDFWithoutVisionNeedsTextLayer(t *testing.T) {
	fake := &fakeAnalyzer{vision: false}
	c := newTestCoordinator(fake)

	// not a real PDF, so the extraction fallback cannot open it
	_, err := c.Analyze(context.Background(), Request{
		Content: []byte("%PDF-1.7 pretend"),
		Kind:    constants.ContentPDF,
	})
	require.Error(t, err)
	assert.Equal(t, 0, fake.pdfCalls)
	assert.Equal(t, 0, fake.textCallCount())
}
