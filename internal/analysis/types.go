// Package analysis defines the canonical structured-analysis model produced
// by the pipeline, its JSON schema, prompt construction, response sanitation,
// and the deterministic merge of per-chunk results.
package analysis

// SchemaVersion identifies the shape of StructuredAnalysis. It participates
// in content fingerprints so cached results never cross schema revisions.
const SchemaVersion = "2.0"

// ImpactType is the polarity tag on a key point.
type ImpactType string

const (
	ImpactPositive ImpactType = "positive"
	ImpactNegative ImpactType = "negative"
	ImpactNeutral  ImpactType = "neutral"
)

// ImpactLevel grades the overall severity of a bill's impact.
type ImpactLevel string

const (
	LevelLow      ImpactLevel = "low"
	LevelModerate ImpactLevel = "moderate"
	LevelHigh     ImpactLevel = "high"
	LevelCritical ImpactLevel = "critical"
)

// impactLevelRank orders levels for "keep the more severe" merging.
var impactLevelRank = map[ImpactLevel]int{
	LevelLow:      1,
	LevelModerate: 2,
	LevelHigh:     3,
	LevelCritical: 4,
}

// Relevance grades how directly a bill touches the monitored jurisdiction.
type Relevance string

const (
	RelevanceLow      Relevance = "low"
	RelevanceModerate Relevance = "moderate"
	RelevanceHigh     Relevance = "high"
)

var relevanceRank = map[Relevance]int{
	RelevanceLow:      1,
	RelevanceModerate: 2,
	RelevanceHigh:     3,
}

// PrimaryCategory names the impact section that dominates a bill.
type PrimaryCategory string

const (
	CategoryPublicHealth   PrimaryCategory = "public_health"
	CategoryLocalGov       PrimaryCategory = "local_gov"
	CategoryEconomic       PrimaryCategory = "economic"
	CategoryEnvironmental  PrimaryCategory = "environmental"
	CategoryEducation      PrimaryCategory = "education"
	CategoryInfrastructure PrimaryCategory = "infrastructure"
)

// KeyPoint is one bullet from the analysis, tagged with its polarity.
type KeyPoint struct {
	Point      string     `json:"point"`
	ImpactType ImpactType `json:"impact_type"`
}

// PublicHealthImpacts groups health-related findings.
type PublicHealthImpacts struct {
	DirectEffects         []string `json:"direct_effects"`
	IndirectEffects       []string `json:"indirect_effects"`
	FundingImpact         []string `json:"funding_impact"`
	VulnerablePopulations []string `json:"vulnerable_populations"`
}

// LocalGovernmentImpacts groups findings affecting local government bodies.
type LocalGovernmentImpacts struct {
	Administrative []string `json:"administrative"`
	Fiscal         []string `json:"fiscal"`
	Implementation []string `json:"implementation"`
}

// EconomicImpacts groups cost and benefit findings.
type EconomicImpacts struct {
	DirectCosts     []string `json:"direct_costs"`
	EconomicEffects []string `json:"economic_effects"`
	Benefits        []string `json:"benefits"`
	LongTermImpact  []string `json:"long_term_impact"`
}

// ImpactSummary is the roll-up judgment over all impact sections.
type ImpactSummary struct {
	PrimaryCategory PrimaryCategory `json:"primary_category"`
	ImpactLevel     ImpactLevel     `json:"impact_level"`
	Relevance       Relevance       `json:"relevance"`
}

// StructuredAnalysis is the canonical output of the pipeline. Every instance
// validates against one schema version; empty sections are represented as
// empty slices, never omitted.
type StructuredAnalysis struct {
	Summary                string                 `json:"summary"`
	KeyPoints              []KeyPoint             `json:"key_points"`
	PublicHealthImpacts    PublicHealthImpacts    `json:"public_health_impacts"`
	LocalGovernmentImpacts LocalGovernmentImpacts `json:"local_government_impacts"`
	EconomicImpacts        EconomicImpacts        `json:"economic_impacts"`
	EnvironmentalImpacts   []string               `json:"environmental_impacts"`
	EducationImpacts       []string               `json:"education_impacts"`
	InfrastructureImpacts  []string               `json:"infrastructure_impacts"`
	RecommendedActions     []string               `json:"recommended_actions"`
	ImmediateActions       []string               `json:"immediate_actions"`
	ResourceNeeds          []string               `json:"resource_needs"`
	ImpactSummary          ImpactSummary          `json:"impact_summary"`
	Confidence             float64                `json:"confidence"`
	InsufficientText       bool                   `json:"insufficient_text"`
}

// DocumentMeta carries bill context injected into prompts. The pipeline never
// fetches any of this itself; the caller supplies it with the content.
type DocumentMeta struct {
	BillNumber  string
	Title       string
	Description string
	GovtType    string
	GovtSource  string
	Status      string
}

// Normalize ensures no section is a nil slice and clamps enums and the
// confidence score to their documented ranges.
func (a *StructuredAnalysis) Normalize() {
	a.KeyPoints = normKeyPoints(a.KeyPoints)
	a.PublicHealthImpacts.DirectEffects = normList(a.PublicHealthImpacts.DirectEffects)
	a.PublicHealthImpacts.IndirectEffects = normList(a.PublicHealthImpacts.IndirectEffects)
	a.PublicHealthImpacts.FundingImpact = normList(a.PublicHealthImpacts.FundingImpact)
	a.PublicHealthImpacts.VulnerablePopulations = normList(a.PublicHealthImpacts.VulnerablePopulations)
	a.LocalGovernmentImpacts.Administrative = normList(a.LocalGovernmentImpacts.Administrative)
	a.LocalGovernmentImpacts.Fiscal = normList(a.LocalGovernmentImpacts.Fiscal)
	a.LocalGovernmentImpacts.Implementation = normList(a.LocalGovernmentImpacts.Implementation)
	a.EconomicImpacts.DirectCosts = normList(a.EconomicImpacts.DirectCosts)
	a.EconomicImpacts.EconomicEffects = normList(a.EconomicImpacts.EconomicEffects)
	a.EconomicImpacts.Benefits = normList(a.EconomicImpacts.Benefits)
	a.EconomicImpacts.LongTermImpact = normList(a.EconomicImpacts.LongTermImpact)
	a.EnvironmentalImpacts = normList(a.EnvironmentalImpacts)
	a.EducationImpacts = normList(a.EducationImpacts)
	a.InfrastructureImpacts = normList(a.InfrastructureImpacts)
	a.RecommendedActions = normList(a.RecommendedActions)
	a.ImmediateActions = normList(a.ImmediateActions)
	a.ResourceNeeds = normList(a.ResourceNeeds)

	if _, ok := impactLevelRank[a.ImpactSummary.ImpactLevel]; !ok {
		a.ImpactSummary.ImpactLevel = LevelLow
	}
	if _, ok := relevanceRank[a.ImpactSummary.Relevance]; !ok {
		a.ImpactSummary.Relevance = RelevanceLow
	}
	if a.ImpactSummary.PrimaryCategory == "" {
		a.ImpactSummary.PrimaryCategory = CategoryLocalGov
	}
	if a.Confidence < 0 {
		a.Confidence = 0
	}
	if a.Confidence > 1 {
		a.Confidence = 1
	}
}

func normList(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func normKeyPoints(in []KeyPoint) []KeyPoint {
	if in == nil {
		return []KeyPoint{}
	}
	for i := range in {
		switch in[i].ImpactType {
		case ImpactPositive, ImpactNegative, ImpactNeutral:
		default:
			in[i].ImpactType = ImpactNeutral
		}
	}
	return in
}
