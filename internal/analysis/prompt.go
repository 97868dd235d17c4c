package analysis

import (
	"fmt"
	"strings"
)

// PromptBundle is everything one structured-generation call needs: the
// instruction prompt, the user prompt, and the schema the response must match.
type PromptBundle struct {
	Instructions string
	User         string
	SchemaName   string
	Schema       map[string]any
}

// ChunkContext positions one chunk inside the whole document. Zero value
// means "not a chunk".
type ChunkContext struct {
	Index int // 0-based
	Total int // total chunk count; 0 for whole-document prompts
	// HardSplit notes that this chunk was cut mid-unit rather than at a
	// natural boundary.
	HardSplit bool
}

func (c ChunkContext) isChunk() bool { return c.Total > 0 }

// BuildPrompt produces the prompt pair and output schema for one model call
// over a whole document or a single chunk. Pure function; no I/O.
func BuildPrompt(text string, meta DocumentMeta, chunk ChunkContext) PromptBundle {
	return PromptBundle{
		Instructions: buildInstructions(chunk),
		User:         buildUserPrompt(text, meta, chunk),
		SchemaName:   "bill_analysis",
		Schema:       BuildAnalysisJSONSchema(),
	}
}

// BuildSynthesisPrompt produces the summary-of-summaries prompt used after a
// chunked merge when the concatenated summary needs condensing.
func BuildSynthesisPrompt(concatenated string, meta DocumentMeta) PromptBundle {
	var b strings.Builder
	b.WriteString("The following are in-order summaries of consecutive sections of one bill")
	if meta.BillNumber != "" {
		b.WriteString(" (")
		b.WriteString(meta.BillNumber)
		b.WriteString(")")
	}
	b.WriteString(". Synthesize them into one coherent summary, preserving section order and every substantive provision.\n\n")
	b.WriteString(concatenated)

	return PromptBundle{
		Instructions: "You are a legislative analysis assistant. Respond with JSON of the form {\"summary\": \"...\"} and nothing else.",
		User:         b.String(),
		SchemaName:   "bill_summary",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary": map[string]any{"type": "string", "minLength": 1},
			},
			"required":             []string{"summary"},
			"additionalProperties": false,
		},
	}
}

func buildInstructions(chunk ChunkContext) string {
	base := "You are a legislative analysis AI specializing in public health and local government impacts. " +
		"Provide a comprehensive, objective analysis of the bill text following the structured format exactly. " +
		"If information is insufficient for any field, provide reasonable, conservative assessments. " +
		"Use only facts present in the text; do not add external information or assumptions. " +
		"Return ONLY JSON that matches the provided JSON Schema. Never output null: use empty arrays for sections with no findings."

	if !chunk.isChunk() {
		return base
	}

	var pos string
	switch {
	case chunk.Index == 0:
		pos = fmt.Sprintf("You are analyzing PART 1 OF %d of a large bill. You do NOT see the whole document; analyze only what is in front of you.", chunk.Total)
	case chunk.Index == chunk.Total-1:
		pos = fmt.Sprintf("You are analyzing THE FINAL PART (%d OF %d) of a large bill. You do NOT see the earlier parts; analyze only what is in front of you.", chunk.Index+1, chunk.Total)
	default:
		pos = fmt.Sprintf("You are analyzing PART %d OF %d of a large bill. You do NOT see the other parts; analyze only what is in front of you.", chunk.Index+1, chunk.Total)
	}
	if chunk.HardSplit {
		pos += " This part was split by size rather than at a natural section boundary, so sentences may be cut at its edges."
	}
	return base + " " + pos
}

func buildUserPrompt(text string, meta DocumentMeta, chunk ChunkContext) string {
	var b strings.Builder

	var ctxBits []string
	if meta.BillNumber != "" {
		ctxBits = append(ctxBits, "Bill Number: "+meta.BillNumber)
	}
	if meta.Title != "" {
		ctxBits = append(ctxBits, "Title: "+meta.Title)
	}
	if meta.Description != "" {
		ctxBits = append(ctxBits, "Description: "+meta.Description)
	}
	if meta.GovtType != "" {
		ctxBits = append(ctxBits, "Government Type: "+meta.GovtType)
	}
	if meta.GovtSource != "" {
		ctxBits = append(ctxBits, "Source: "+meta.GovtSource)
	}
	if meta.Status != "" {
		ctxBits = append(ctxBits, "Status: "+meta.Status)
	}
	if len(ctxBits) > 0 {
		b.WriteString("BILL CONTEXT:\n")
		b.WriteString(strings.Join(ctxBits, "\n"))
		b.WriteString("\n\n")
	}

	if chunk.isChunk() {
		fmt.Fprintf(&b, "SECTION %d of %d TO ANALYZE:\n", chunk.Index+1, chunk.Total)
	} else {
		b.WriteString("LEGISLATIVE TEXT TO ANALYZE:\n")
	}
	b.WriteString("```\n")
	b.WriteString(text)
	b.WriteString("\n```\n\nRespond with JSON.")
	return b.String()
}
