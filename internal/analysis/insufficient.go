package analysis

const insufficientNote = "Unable to determine due to insufficient text"

// NewInsufficientTextAnalysis returns the canonical result for content that
// lacks enough analyzable material. It is a normal, reproducible outcome, not
// an error, and is cached like any successful analysis.
func NewInsufficientTextAnalysis() *StructuredAnalysis {
	a := &StructuredAnalysis{
		Summary: "Insufficient text available for detailed analysis.",
		KeyPoints: []KeyPoint{
			{Point: "Insufficient text for detailed analysis", ImpactType: ImpactNeutral},
		},
		PublicHealthImpacts: PublicHealthImpacts{
			DirectEffects:         []string{insufficientNote},
			IndirectEffects:       []string{insufficientNote},
			FundingImpact:         []string{insufficientNote},
			VulnerablePopulations: []string{insufficientNote},
		},
		LocalGovernmentImpacts: LocalGovernmentImpacts{
			Administrative: []string{insufficientNote},
			Fiscal:         []string{insufficientNote},
			Implementation: []string{insufficientNote},
		},
		EconomicImpacts: EconomicImpacts{
			DirectCosts:     []string{insufficientNote},
			EconomicEffects: []string{insufficientNote},
			Benefits:        []string{insufficientNote},
			LongTermImpact:  []string{insufficientNote},
		},
		ImpactSummary: ImpactSummary{
			PrimaryCategory: CategoryLocalGov,
			ImpactLevel:     LevelLow,
			Relevance:       RelevanceLow,
		},
		Confidence:       0,
		InsufficientText: true,
	}
	a.Normalize()
	return a
}
