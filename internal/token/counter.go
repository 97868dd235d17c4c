package token

import (
	"log/slog"
	"math"
	"strings"
	"sync"
)

// ModelParams describe a named model's tokenization scheme for estimation.
type ModelParams struct {
	TokensPerWord float64
	TokensPerChar float64
	ContextWindow int
}

// defaultParams is the documented fallback scheme for unknown models.
var defaultParams = ModelParams{
	TokensPerWord: 1.3,
	TokensPerChar: 0.25,
	ContextWindow: 120_000,
}

var builtinParams = map[string]ModelParams{
	"gpt-4o":            {TokensPerWord: 1.3, TokensPerChar: 0.25, ContextWindow: 128_000},
	"gpt-4o-mini":       {TokensPerWord: 1.3, TokensPerChar: 0.25, ContextWindow: 128_000},
	"gpt-4o-2024-08-06": {TokensPerWord: 1.3, TokensPerChar: 0.25, ContextWindow: 128_000},
	"gpt-3.5-turbo":     {TokensPerWord: 1.3, TokensPerChar: 0.25, ContextWindow: 16_384},
}

// Counter estimates token counts per model. Counting is deterministic and
// side-effect free for a given (text, model) pair; the only side effect is a
// one-time diagnostic when an unknown model falls back to the default scheme.
type Counter struct {
	logger *slog.Logger

	mu     sync.RWMutex
	params map[string]ModelParams

	warned sync.Map // model -> struct{}
}

func NewCounter(logger *slog.Logger) *Counter {
	if logger == nil {
		logger = slog.Default()
	}
	params := make(map[string]ModelParams, len(builtinParams))
	for name, p := range builtinParams {
		params[name] = p
	}
	return &Counter{logger: logger, params: params}
}

// RegisterModel adds or overrides the estimation parameters for a model.
func (c *Counter) RegisterModel(model string, p ModelParams) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params[model] = p
}

// Params returns the estimation parameters for a model, falling back to the
// default scheme for unknown models. The fallback is logged once per model.
func (c *Counter) Params(model string) ModelParams {
	c.mu.RLock()
	p, ok := c.params[model]
	c.mu.RUnlock()
	if ok {
		return p
	}
	if _, logged := c.warned.LoadOrStore(model, struct{}{}); !logged {
		c.logger.Warn("token.counter.unknown_model", "model", model, "fallback", "default scheme")
	}
	return defaultParams
}

// Count returns the estimated token count of text under the named model's
// tokenization scheme. The estimate is the larger of the word-based and
// character-based figures: word counting alone undercounts whitespace-free
// input (CJK text, long identifiers), character counting alone undercounts
// dense prose.
func (c *Counter) Count(text, model string) int {
	if text == "" {
		return 0
	}
	p := c.Params(model)
	byWords := float64(len(strings.Fields(text))) * p.TokensPerWord
	byChars := float64(len(text)) * p.TokensPerChar
	return int(math.Ceil(math.Max(byWords, byChars)))
}
