package analysis

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Caps applied during merge, carried over from the original system so merged
// results stay comparable in size to single-shot results.
const (
	maxMergedSummaryChars = 2000
	maxKeyPoints          = 15
	maxSectionItems       = 8
	maxListItems          = 10
	maxRecommendedActions = 8
	maxOtherActions       = 5
)

// ChunkAnalysis pairs one chunk's analysis with its position and token share.
type ChunkAnalysis struct {
	Index    int
	Tokens   int
	Analysis *StructuredAnalysis
}

// MergeChunkAnalyses folds N per-chunk analyses into one StructuredAnalysis.
//
// The merge is deterministic and independent of completion order: inputs are
// sorted by chunk index before any field is touched. Per-field rules:
//   - summary: concatenated in chunk order, truncated at a fixed cap (a
//     synthesizing pass over the concatenation is the orchestrator's concern)
//   - list fields: unioned in chunk order, de-duplicated by normalized text
//     equality, capped
//   - impact level and relevance: the most severe value wins; ties keep the
//     earliest chunk's judgment
//   - confidence: token-share-weighted mean over the surviving chunks
func MergeChunkAnalyses(in []ChunkAnalysis) (*StructuredAnalysis, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("merge: no chunk analyses")
	}

	parts := make([]ChunkAnalysis, len(in))
	copy(parts, in)
	sort.Slice(parts, func(i, j int) bool { return parts[i].Index < parts[j].Index })

	out := &StructuredAnalysis{}

	var summaries []string
	for _, p := range parts {
		if s := strings.TrimSpace(p.Analysis.Summary); s != "" {
			summaries = append(summaries, s)
		}
	}
	out.Summary = strings.Join(summaries, " ")
	if len(out.Summary) > maxMergedSummaryChars {
		cut := maxMergedSummaryChars - 3
		// Back off to a rune boundary so the cut never splits a multibyte
		// character.
		for cut > 0 && !utf8.RuneStart(out.Summary[cut]) {
			cut--
		}
		out.Summary = out.Summary[:cut] + "..."
	}

	out.KeyPoints = mergeKeyPoints(parts)

	out.PublicHealthImpacts = PublicHealthImpacts{
		DirectEffects:         mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.PublicHealthImpacts.DirectEffects }),
		IndirectEffects:       mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.PublicHealthImpacts.IndirectEffects }),
		FundingImpact:         mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.PublicHealthImpacts.FundingImpact }),
		VulnerablePopulations: mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.PublicHealthImpacts.VulnerablePopulations }),
	}
	out.LocalGovernmentImpacts = LocalGovernmentImpacts{
		Administrative: mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.LocalGovernmentImpacts.Administrative }),
		Fiscal:         mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.LocalGovernmentImpacts.Fiscal }),
		Implementation: mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.LocalGovernmentImpacts.Implementation }),
	}
	out.EconomicImpacts = EconomicImpacts{
		DirectCosts:     mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.EconomicImpacts.DirectCosts }),
		EconomicEffects: mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.EconomicImpacts.EconomicEffects }),
		Benefits:        mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.EconomicImpacts.Benefits }),
		LongTermImpact:  mergeLists(parts, maxSectionItems, func(a *StructuredAnalysis) []string { return a.EconomicImpacts.LongTermImpact }),
	}

	out.EnvironmentalImpacts = mergeLists(parts, maxListItems, func(a *StructuredAnalysis) []string { return a.EnvironmentalImpacts })
	out.EducationImpacts = mergeLists(parts, maxListItems, func(a *StructuredAnalysis) []string { return a.EducationImpacts })
	out.InfrastructureImpacts = mergeLists(parts, maxListItems, func(a *StructuredAnalysis) []string { return a.InfrastructureImpacts })
	out.RecommendedActions = mergeLists(parts, maxRecommendedActions, func(a *StructuredAnalysis) []string { return a.RecommendedActions })
	out.ImmediateActions = mergeLists(parts, maxOtherActions, func(a *StructuredAnalysis) []string { return a.ImmediateActions })
	out.ResourceNeeds = mergeLists(parts, maxOtherActions, func(a *StructuredAnalysis) []string { return a.ResourceNeeds })

	out.ImpactSummary = mergeImpactSummary(parts)
	out.Confidence = weightedConfidence(parts)

	out.Normalize()
	return out, nil
}

func mergeKeyPoints(parts []ChunkAnalysis) []KeyPoint {
	seen := make(map[string]struct{})
	var out []KeyPoint
	for _, p := range parts {
		for _, kp := range p.Analysis.KeyPoints {
			key := normalizeForDedup(kp.Point)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, kp)
			if len(out) >= maxKeyPoints {
				return out
			}
		}
	}
	return out
}

func mergeLists(parts []ChunkAnalysis, limit int, pick func(*StructuredAnalysis) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range parts {
		for _, item := range pick(p.Analysis) {
			key := normalizeForDedup(item)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, item)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// mergeImpactSummary keeps the most severe assessment seen; ties resolve to
// the earliest chunk so the result never depends on completion order.
func mergeImpactSummary(parts []ChunkAnalysis) ImpactSummary {
	best := parts[0].Analysis.ImpactSummary
	for _, p := range parts[1:] {
		cur := p.Analysis.ImpactSummary
		if impactLevelRank[cur.ImpactLevel] > impactLevelRank[best.ImpactLevel] {
			best.ImpactLevel = cur.ImpactLevel
			best.PrimaryCategory = cur.PrimaryCategory
		}
		if relevanceRank[cur.Relevance] > relevanceRank[best.Relevance] {
			best.Relevance = cur.Relevance
		}
	}
	return best
}

// weightedConfidence is the token-share-weighted mean over surviving chunks.
// Weights renormalize over survivors, so dropped chunks lower coverage (which
// is reported separately) without dragging the score toward zero.
func weightedConfidence(parts []ChunkAnalysis) float64 {
	var totalTokens int
	for _, p := range parts {
		totalTokens += p.Tokens
	}
	if totalTokens == 0 {
		// Degenerate weights: fall back to an unweighted mean.
		var sum float64
		for _, p := range parts {
			sum += p.Analysis.Confidence
		}
		return sum / float64(len(parts))
	}
	var sum float64
	for _, p := range parts {
		sum += p.Analysis.Confidence * float64(p.Tokens) / float64(totalTokens)
	}
	return sum
}

func normalizeForDedup(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
