package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_SingleShot(t *testing.T) {
	meta := DocumentMeta{BillNumber: "HB 1234", Title: "Water Quality Act", GovtType: "state", GovtSource: "TX"}

	p := BuildPrompt("Section 1. Short title.", meta, ChunkContext{})

	assert.Contains(t, p.User, "HB 1234")
	assert.Contains(t, p.User, "Section 1. Short title.")
	assert.NotContains(t, p.Instructions, "PART")
	assert.NotEmpty(t, p.SchemaName)
	assert.NotNil(t, p.Schema)
}

func TestBuildPrompt_ChunkContext(t *testing.T) {
	p := BuildPrompt("chunk body", DocumentMeta{BillNumber: "SB 9"}, ChunkContext{Index: 1, Total: 3})
	assert.Contains(t, p.Instructions, "PART 2 OF 3")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	meta := DocumentMeta{BillNumber: "HB 1", Title: "T"}
	a := BuildPrompt("same text", meta, ChunkContext{Index: 0, Total: 2})
	b := BuildPrompt("same text", meta, ChunkContext{Index: 0, Total: 2})
	assert.Equal(t, a, b)
}

func TestBuildSynthesisPrompt(t *testing.T) {
	p := BuildSynthesisPrompt("part one summary part two summary", DocumentMeta{BillNumber: "HB 2"})
	assert.Contains(t, p.User, "part one summary")
	assert.NotEmpty(t, p.SchemaName)
}
