package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	goopenai "github.com/sashabaranov/go-openai"

	"github.com/policypulse/policypulse/internal/analysis"
	"github.com/policypulse/policypulse/internal/common"
	"github.com/policypulse/policypulse/internal/llm"
)

// callLogger scopes the client logger to one model call, carrying the
// legislation tag when the serving layer put one on the context.
func (c *Client) callLogger(ctx context.Context) *slog.Logger {
	log := c.log.With("req_id", uuid.New().String())
	if id := common.LegislationIDFromContext(ctx); id != "" {
		log = log.With("legislation_id", id)
	}
	return log
}

// AnalyzeText implements llm.Analyzer for plain text, whole documents and
// chunks alike. Single attempt; the caller owns retries.
func (c *Client) AnalyzeText(ctx context.Context, req llm.TextRequest) (*analysis.StructuredAnalysis, []byte, error) {
	log := c.callLogger(ctx)
	start := time.Now()

	prompt := analysis.BuildPrompt(req.Text, req.Meta, req.Chunk)

	log.Info("llm.analyze.start",
		"model", c.cfg.Model,
		"text_len", len(req.Text),
		"bill", req.Meta.BillNumber,
		"chunk_index", req.Chunk.Index,
		"chunk_total", req.Chunk.Total,
	)

	content, err := c.complete(ctx, prompt, nil)
	if err != nil {
		log.Error("llm.analyze.call_failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, nil, err
	}

	out, raw, err := c.parseStructured(log, prompt, content)
	if err != nil {
		log.Error("llm.analyze.parse_failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, raw, err
	}

	log.Info("llm.analyze.ok",
		"impact_level", out.ImpactSummary.ImpactLevel,
		"relevance", out.ImpactSummary.Relevance,
		"key_points", len(out.KeyPoints),
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, raw, nil
}

// AnalyzePDF sends raw PDF bytes down the model's document input. The
// capability and size checks run before any network traffic.
func (c *Client) AnalyzePDF(ctx context.Context, req llm.PDFRequest) (*analysis.StructuredAnalysis, []byte, error) {
	if !c.cfg.SupportsVision {
		return nil, nil, &llm.ConfigurationError{
			Reason: fmt.Sprintf("model %q has no document input; extract text first", c.cfg.Model),
		}
	}
	if maxBytes := c.cfg.MaxVisionMB * 1024 * 1024; len(req.Raw) > maxBytes {
		return nil, nil, &llm.ConfigurationError{
			Reason: fmt.Sprintf("pdf is %d bytes, over the %dMB document limit", len(req.Raw), c.cfg.MaxVisionMB),
		}
	}

	log := c.callLogger(ctx)
	start := time.Now()

	prompt := analysis.BuildPrompt("(the bill text is in the attached document)", req.Meta, analysis.ChunkContext{})

	log.Info("llm.analyze_pdf.start",
		"model", c.cfg.Model,
		"pdf_bytes", len(req.Raw),
		"filename", req.Filename,
		"bill", req.Meta.BillNumber,
	)

	doc := &goopenai.ChatMessagePart{
		Type: goopenai.ChatMessagePartTypeImageURL,
		ImageURL: &goopenai.ChatMessageImageURL{
			URL:    "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(req.Raw),
			Detail: goopenai.ImageURLDetailHigh,
		},
	}
	content, err := c.complete(ctx, prompt, doc)
	if err != nil {
		log.Error("llm.analyze_pdf.call_failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, nil, err
	}

	out, raw, err := c.parseStructured(log, prompt, content)
	if err != nil {
		log.Error("llm.analyze_pdf.parse_failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, raw, err
	}

	log.Info("llm.analyze_pdf.ok",
		"impact_level", out.ImpactSummary.ImpactLevel,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, raw, nil
}

// SynthesizeSummary condenses the concatenated per-chunk summaries into one.
func (c *Client) SynthesizeSummary(ctx context.Context, req llm.SynthesisRequest) (string, error) {
	log := c.callLogger(ctx)
	start := time.Now()

	prompt := analysis.BuildSynthesisPrompt(req.Concatenated, req.Meta)

	log.Info("llm.synthesize.start",
		"model", c.cfg.Model, "input_len", len(req.Concatenated))

	content, err := c.complete(ctx, prompt, nil)
	if err != nil {
		log.Error("llm.synthesize.call_failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}

	if err := analysis.ValidateJSONAgainstSchema(prompt.Schema, []byte(content)); err != nil {
		return "", &llm.SchemaValidationError{Err: err, Raw: []byte(content)}
	}
	var parsed struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", &llm.SchemaValidationError{Err: err, Raw: []byte(content)}
	}

	log.Info("llm.synthesize.ok",
		"summary_len", len(parsed.Summary),
		"elapsed_ms", time.Since(start).Milliseconds())
	return strings.TrimSpace(parsed.Summary), nil
}

// complete runs one chat completion and returns the assistant message body.
// extraPart, when set, is attached to the user message (the PDF path).
func (c *Client) complete(ctx context.Context, prompt analysis.PromptBundle, extraPart *goopenai.ChatMessagePart) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &llm.ConfigurationError{Reason: "missing API key"}
	}

	schemaMsg := "JSON Schema:\n" + mustJSON(prompt.Schema)

	var userMsg goopenai.ChatCompletionMessage
	if extraPart != nil {
		userMsg = goopenai.ChatCompletionMessage{
			Role: goopenai.ChatMessageRoleUser,
			MultiContent: []goopenai.ChatMessagePart{
				{Type: goopenai.ChatMessagePartTypeText, Text: prompt.User},
				*extraPart,
			},
		}
	} else {
		userMsg = goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleUser,
			Content: prompt.User,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: prompt.Instructions},
			userMsg,
			{Role: goopenai.ChatMessageRoleSystem, Content: schemaMsg},
		},
	})
	if err != nil {
		return "", classifyAPIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &llm.TransientCallError{Op: "chat", Err: errors.New("no choices in response")}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// parseStructured runs strict-then-lenient validation over the model output
// and decodes it into the canonical struct.
func (c *Client) parseStructured(log *slog.Logger, prompt analysis.PromptBundle, content string) (*analysis.StructuredAnalysis, []byte, error) {
	raw := []byte(content)

	if err := analysis.ValidateJSONAgainstSchema(prompt.Schema, raw); err != nil {
		cleaned, repairs, sErr := analysis.NormalizeAndSanitizeJSON(raw)
		if sErr != nil {
			return nil, raw, &llm.SchemaValidationError{Err: sErr, Raw: raw}
		}
		if vErr := analysis.ValidateJSONAgainstSchema(prompt.Schema, cleaned); vErr != nil {
			return nil, raw, &llm.SchemaValidationError{Err: vErr, Raw: raw}
		}
		log.Warn("llm.analyze.sanitize_applied", "repairs", repairs)
		raw = cleaned
	}

	var out analysis.StructuredAnalysis
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, raw, &llm.SchemaValidationError{Err: err, Raw: raw}
	}
	out.Normalize()
	return &out, raw, nil
}

// classifyAPIError maps transport and API failures onto the retry taxonomy.
func classifyAPIError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusUnauthorized,
			apiErr.HTTPStatusCode == http.StatusForbidden,
			apiErr.HTTPStatusCode == http.StatusNotFound:
			return &llm.ConfigurationError{Reason: err.Error()}
		default:
			// 429s and 5xx both come back here
			return &llm.TransientCallError{Op: "chat", Err: err}
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &llm.TransientCallError{Op: "chat", Err: err}
	}
	return &llm.TransientCallError{Op: "chat", Err: err}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
