// Package chunk splits long documents into ordered, token-bounded segments.
//
// Chunks partition the input: they are gapless, non-overlapping, and their
// concatenation in index order reproduces the original text byte for byte.
package chunk

import (
	"fmt"
	"log/slog"
	"regexp"
	"unicode/utf8"

	"github.com/policypulse/policypulse/internal/token"
)

// Chunk is one segment of a larger document.
type Chunk struct {
	Index  int    // 0-based, contiguous
	Text   string // exact slice of the original document
	Start  int    // byte offset into the original document
	End    int    // byte offset one past the last byte
	Tokens int    // estimated token count under the split model
	// HardSplit marks a chunk cut at a token boundary because a single
	// paragraph/sentence unit alone exceeded the budget.
	HardSplit bool
}

var (
	reParagraphSep = regexp.MustCompile(`\n{2,}`)
	reSentenceEnd  = regexp.MustCompile(`[.!?;]['")\]]*\s+`)
)

// Splitter chunks text under a per-chunk token budget.
type Splitter struct {
	counter *token.Counter
	logger  *slog.Logger
}

func NewSplitter(counter *token.Counter, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{counter: counter, logger: logger}
}

// span is a half-open [start, end) byte range of the source text.
type span struct {
	start, end int
	hard       bool
}

// Split greedily accumulates paragraph units (falling back to sentence units,
// then to a hard token-boundary cut) until adding the next unit would exceed
// maxTokens. Every returned chunk except flagged hard-split pieces is within
// the budget.
func (s *Splitter) Split(text string, maxTokens int, model string) ([]Chunk, error) {
	if maxTokens <= 0 {
		return nil, fmt.Errorf("max tokens per chunk must be positive, got %d", maxTokens)
	}
	if text == "" {
		return nil, nil
	}

	units := s.budgetedUnits(text, 0, maxTokens, model)

	var chunks []Chunk
	cur := span{start: 0, end: 0}
	curTokens := 0
	flush := func() {
		if cur.end == cur.start {
			return
		}
		chunks = append(chunks, Chunk{
			Index:     len(chunks),
			Text:      text[cur.start:cur.end],
			Start:     cur.start,
			End:       cur.end,
			Tokens:    s.counter.Count(text[cur.start:cur.end], model),
			HardSplit: cur.hard,
		})
	}

	for _, u := range units {
		uTokens := s.counter.Count(text[u.start:u.end], model)
		switch {
		case u.hard:
			// Hard-split pieces stand alone so the flag stays meaningful.
			flush()
			cur = u
			flush()
			cur = span{start: u.end, end: u.end}
			curTokens = 0
		case curTokens > 0 && curTokens+uTokens > maxTokens:
			flush()
			cur = span{start: cur.end, end: u.end}
			curTokens = uTokens
		default:
			cur.end = u.end
			curTokens += uTokens
		}
	}
	flush()

	s.logger.Debug("chunk.split.done",
		"chunks", len(chunks),
		"budget", maxTokens,
		"model", model,
	)
	return chunks, nil
}

// budgetedUnits returns contiguous spans covering text[base:] where every span
// either fits the budget or is flagged as a hard split.
func (s *Splitter) budgetedUnits(text string, base, maxTokens int, model string) []span {
	var out []span
	for _, p := range splitSpans(text, base, reParagraphSep) {
		if s.counter.Count(text[p.start:p.end], model) <= maxTokens {
			out = append(out, p)
			continue
		}
		// Paragraph too large: try sentences.
		for _, sent := range splitSpans(text[p.start:p.end], p.start, reSentenceEnd) {
			if s.counter.Count(text[sent.start:sent.end], model) <= maxTokens {
				out = append(out, sent)
				continue
			}
			out = append(out, s.hardSplit(text, sent, maxTokens, model)...)
		}
	}
	return out
}

// splitSpans cuts text into contiguous spans ending at each separator match
// (the separator stays attached to the preceding span, preserving round-trip).
func splitSpans(text string, base int, sep *regexp.Regexp) []span {
	var out []span
	start := 0
	for _, m := range sep.FindAllStringIndex(text, -1) {
		if m[1] <= start {
			continue
		}
		out = append(out, span{start: base + start, end: base + m[1]})
		start = m[1]
	}
	if start < len(text) {
		out = append(out, span{start: base + start, end: base + len(text)})
	}
	return out
}

// hardSplit cuts an oversized unit at estimated token boundaries. This is the
// last resort for a single unit that alone exceeds the budget; every piece is
// flagged.
func (s *Splitter) hardSplit(text string, u span, maxTokens int, model string) []span {
	p := s.counter.Params(model)
	maxBytes := int(float64(maxTokens) / p.TokensPerChar)
	if maxBytes < 1 {
		maxBytes = 1
	}

	s.logger.Warn("chunk.hard_split",
		"unit_bytes", u.end-u.start,
		"budget", maxTokens,
		"model", model,
	)

	var out []span
	start := u.start
	for start < u.end {
		end := start + maxBytes
		if end >= u.end {
			end = u.end
		} else {
			// Back off to a rune boundary so pieces stay valid UTF-8.
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
			if end == start {
				end = start + maxBytes // degenerate input, cut anyway
			}
		}
		out = append(out, span{start: start, end: end, hard: true})
		start = end
	}
	return out
}
