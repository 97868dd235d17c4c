package analysis

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunkResult(index, tokens int, mutate func(*StructuredAnalysis)) ChunkAnalysis {
	a := &StructuredAnalysis{
		Summary: fmt.Sprintf("Part %d findings.", index),
		KeyPoints: []KeyPoint{
			{Point: fmt.Sprintf("point from chunk %d", index), ImpactType: ImpactNeutral},
		},
		ImpactSummary: ImpactSummary{
			PrimaryCategory: CategoryLocalGov,
			ImpactLevel:     LevelLow,
			Relevance:       RelevanceLow,
		},
		Confidence: 0.5,
	}
	a.Normalize()
	if mutate != nil {
		mutate(a)
	}
	return ChunkAnalysis{Index: index, Tokens: tokens, Analysis: a}
}

func TestMergeChunkAnalyses_Empty(t *testing.T) {
	_, err := MergeChunkAnalyses(nil)
	require.Error(t, err)
}

func TestMergeChunkAnalyses_OrderIndependent(t *testing.T) {
	base := []ChunkAnalysis{
		chunkResult(0, 1000, func(a *StructuredAnalysis) {
			a.ImpactSummary.ImpactLevel = LevelModerate
			a.RecommendedActions = []string{"Review funding formula"}
		}),
		chunkResult(1, 2000, func(a *StructuredAnalysis) {
			a.ImpactSummary.ImpactLevel = LevelHigh
			a.ImpactSummary.PrimaryCategory = CategoryPublicHealth
			a.Confidence = 0.9
		}),
		chunkResult(2, 500, func(a *StructuredAnalysis) {
			a.EnvironmentalImpacts = []string{"Wetland permitting changes"}
		}),
	}

	want, err := MergeChunkAnalyses(base)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]ChunkAnalysis, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := MergeChunkAnalyses(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMergeChunkAnalyses_SummaryOrderAndTruncation(t *testing.T) {
	long := strings.Repeat("w", 1500)
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(1, 100, func(a *StructuredAnalysis) { a.Summary = long }),
		chunkResult(0, 100, func(a *StructuredAnalysis) { a.Summary = long }),
	})
	require.NoError(t, err)

	assert.Len(t, merged.Summary, maxMergedSummaryChars)
	assert.True(t, strings.HasSuffix(merged.Summary, "..."))
}

func TestMergeChunkAnalyses_TruncationKeepsValidUTF8(t *testing.T) {
	// 1995 ASCII bytes plus the joining space put the cut two bytes into
	// the first three-byte kanji
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(0, 100, func(a *StructuredAnalysis) { a.Summary = strings.Repeat("w", 1995) }),
		chunkResult(1, 100, func(a *StructuredAnalysis) { a.Summary = strings.Repeat("日本語の法案", 50) }),
	})
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(merged.Summary))
	assert.True(t, strings.HasSuffix(merged.Summary, "..."))
	assert.LessOrEqual(t, len(merged.Summary), maxMergedSummaryChars)
}

func TestMergeChunkAnalyses_DedupeLists(t *testing.T) {
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(0, 100, func(a *StructuredAnalysis) {
			a.RecommendedActions = []string{"Notify county health officers"}
			a.KeyPoints = []KeyPoint{{Point: "New reporting mandate", ImpactType: ImpactNegative}}
		}),
		chunkResult(1, 100, func(a *StructuredAnalysis) {
			// same items, different whitespace and case
			a.RecommendedActions = []string{"notify  county health officers", "Budget for compliance"}
			a.KeyPoints = []KeyPoint{{Point: "NEW REPORTING MANDATE", ImpactType: ImpactNeutral}}
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Notify county health officers", "Budget for compliance"}, merged.RecommendedActions)
	require.Len(t, merged.KeyPoints, 1)
	// first occurrence wins, including its impact tag
	assert.Equal(t, ImpactNegative, merged.KeyPoints[0].ImpactType)
}

func TestMergeChunkAnalyses_ListCaps(t *testing.T) {
	many := func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s %d", prefix, i)
		}
		return out
	}
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(0, 100, func(a *StructuredAnalysis) {
			a.EnvironmentalImpacts = many("effect", 30)
			a.RecommendedActions = many("action", 30)
			a.ImmediateActions = many("now", 30)
			a.PublicHealthImpacts.DirectEffects = many("direct", 30)
			kps := make([]KeyPoint, 30)
			for i := range kps {
				kps[i] = KeyPoint{Point: fmt.Sprintf("kp %d", i), ImpactType: ImpactNeutral}
			}
			a.KeyPoints = kps
		}),
	})
	require.NoError(t, err)

	assert.Len(t, merged.EnvironmentalImpacts, maxListItems)
	assert.Len(t, merged.RecommendedActions, maxRecommendedActions)
	assert.Len(t, merged.ImmediateActions, maxOtherActions)
	assert.Len(t, merged.PublicHealthImpacts.DirectEffects, maxSectionItems)
	assert.Len(t, merged.KeyPoints, maxKeyPoints)
}

func TestMergeChunkAnalyses_MostSevereWins(t *testing.T) {
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(0, 100, func(a *StructuredAnalysis) {
			a.ImpactSummary = ImpactSummary{
				PrimaryCategory: CategoryEconomic,
				ImpactLevel:     LevelModerate,
				Relevance:       RelevanceHigh,
			}
		}),
		chunkResult(1, 100, func(a *StructuredAnalysis) {
			a.ImpactSummary = ImpactSummary{
				PrimaryCategory: CategoryPublicHealth,
				ImpactLevel:     LevelCritical,
				Relevance:       RelevanceLow,
			}
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, LevelCritical, merged.ImpactSummary.ImpactLevel)
	// category follows the chunk that set the level
	assert.Equal(t, CategoryPublicHealth, merged.ImpactSummary.PrimaryCategory)
	assert.Equal(t, RelevanceHigh, merged.ImpactSummary.Relevance)
}

func TestMergeChunkAnalyses_SeverityTieKeepsEarliest(t *testing.T) {
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(1, 100, func(a *StructuredAnalysis) {
			a.ImpactSummary.ImpactLevel = LevelHigh
			a.ImpactSummary.PrimaryCategory = CategoryEducation
		}),
		chunkResult(0, 100, func(a *StructuredAnalysis) {
			a.ImpactSummary.ImpactLevel = LevelHigh
			a.ImpactSummary.PrimaryCategory = CategoryEconomic
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, CategoryEconomic, merged.ImpactSummary.PrimaryCategory)
}

func TestMergeChunkAnalyses_WeightedConfidence(t *testing.T) {
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(0, 3000, func(a *StructuredAnalysis) { a.Confidence = 0.9 }),
		chunkResult(1, 1000, func(a *StructuredAnalysis) { a.Confidence = 0.5 }),
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.8, merged.Confidence, 1e-9)
}

func TestMergeChunkAnalyses_ZeroTokensFallsBackToMean(t *testing.T) {
	merged, err := MergeChunkAnalyses([]ChunkAnalysis{
		chunkResult(0, 0, func(a *StructuredAnalysis) { a.Confidence = 0.2 }),
		chunkResult(1, 0, func(a *StructuredAnalysis) { a.Confidence = 0.8 }),
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, merged.Confidence, 1e-9)
}
