package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policypulse/policypulse/internal/token"
)

const testModel = "gpt-4o"

func newTestSplitter(t *testing.T) *Splitter {
	t.Helper()
	return NewSplitter(token.NewCounter(nil), nil)
}

func paragraphs(n, wordsPer int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString("\n\n")
		}
		for w := 0; w < wordsPer; w++ {
			if w > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("section")
		}
	}
	return b.String()
}

func reassemble(chunks []Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Text)
	}
	return b.String()
}

func TestSplitRoundTrip(t *testing.T) {
	s := newTestSplitter(t)

	cases := map[string]string{
		"structured":    paragraphs(40, 120),
		"single block":  strings.Repeat("word ", 5000),
		"sentences":     strings.Repeat("This is a sentence about appropriations. ", 800),
		"unicode":       strings.Repeat("Läßt sich die Maßnahme prüfen? ", 600),
		"trailing seps": paragraphs(10, 200) + "\n\n\n",
	}

	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			chunks, err := s.Split(text, 500, testModel)
			require.NoError(t, err)
			require.NotEmpty(t, chunks)
			assert.Equal(t, text, reassemble(chunks), "concatenated chunk spans must reproduce the input")

			prevEnd := 0
			for i, c := range chunks {
				assert.Equal(t, i, c.Index)
				assert.Equal(t, prevEnd, c.Start, "chunks must be gapless")
				assert.Equal(t, text[c.Start:c.End], c.Text)
				prevEnd = c.End
			}
			assert.Equal(t, len(text), prevEnd)
		})
	}
}

func TestSplitRespectsBudget(t *testing.T) {
	s := newTestSplitter(t)
	text := paragraphs(60, 90)

	chunks, err := s.Split(text, 400, testModel)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		if !c.HardSplit {
			assert.LessOrEqual(t, c.Tokens, 400, "chunk %d exceeds budget without hard-split flag", c.Index)
		}
	}
}

func TestSplitHardSplitFlagged(t *testing.T) {
	s := newTestSplitter(t)
	// One giant unbroken token run: no paragraph or sentence boundary to cut at.
	text := strings.Repeat("x", 20_000)

	chunks, err := s.Split(text, 100, testModel)
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.True(t, c.HardSplit, "chunk %d should be flagged as hard split", c.Index)
	}
	assert.Equal(t, text, reassemble(chunks))
}

func TestSplitSmallInputSingleChunk(t *testing.T) {
	s := newTestSplitter(t)
	text := "A short bill.\n\nWith two paragraphs."

	chunks, err := s.Split(text, 1000, testModel)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.False(t, chunks[0].HardSplit)
}

func TestSplitEmptyText(t *testing.T) {
	s := newTestSplitter(t)
	chunks, err := s.Split("", 1000, testModel)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplitRejectsNonPositiveBudget(t *testing.T) {
	s := newTestSplitter(t)
	_, err := s.Split("text", 0, testModel)
	assert.Error(t, err)
}
