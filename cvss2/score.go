package cvss2

import (
	"math"
)

// Scores is the breakdown of a v2.0 calculation.
type Scores struct {
	Base          float64
	Temporal      float64
	Environmental float64
	// Impact and Exploitability are the base sub-scores, rounded to one
	// decimal place.
	Impact         float64
	Exploitability float64
	// AdjustedImpact is the impact sub-score with the Security Requirements
	// applied.
	AdjustedImpact float64
	// Value is the reported score: Environmental if the vector has any
	// Environmental metrics, Temporal otherwise.
	Value float64
}

// Score returns the reported score of "v".
func Score(v Vector) float64 {
	return Calculate(v).Value
}

// Calculate computes all the scores of "v".
//
// Missing base metrics take their least severe value. Missing temporal and
// environmental metrics take the value that leaves the score unchanged.
func Calculate(v Vector) Scores {
	var s Scores
	c, i, a := v.impacts()
	impact := 10.41 * (1 - (1-c)*(1-i)*(1-a))
	expl := v.exploitability()
	s.Impact = round1(impact)
	s.Exploitability = round1(expl)

	tf := v.temporalFactor()
	base := baseEquation(impact, expl)
	s.Base = clamp(base)
	s.Temporal = clamp(round1(base * tf))

	adj := math.Min(10, 10.41*(1-
		(1-c*requirementWeight[v.ConfidentialityRequirement])*
			(1-i*requirementWeight[v.IntegrityRequirement])*
			(1-a*requirementWeight[v.AvailabilityRequirement])))
	s.AdjustedImpact = round1(adj)
	adjTemporal := round1(baseEquation(adj, expl) * tf)
	cdp := cdpWeight[v.CollateralDamagePotential]
	td := tdWeight[v.TargetDistribution]
	s.Environmental = clamp(round1((adjTemporal + (10-adjTemporal)*cdp) * td))

	s.Value = s.Temporal
	if v.Environmental() {
		s.Value = s.Environmental
	}
	return s
}

// BaseEquation is the rounded, unclamped base equation. With the adjusted
// impact of the environmental equations, the result may be negative.
func baseEquation(impact, expl float64) float64 {
	if impact == 0 {
		return 0
	}
	return round1((0.6*impact + 0.4*expl - 1.5) * 1.176)
}

func (v *Vector) impacts() (c, i, a float64) {
	return impactWeight[v.Confidentiality], impactWeight[v.Integrity], impactWeight[v.Availability]
}

func (v *Vector) exploitability() float64 {
	return 20 * avWeight[v.AccessVector] * acWeight[v.AccessComplexity] * auWeight[v.Authentication]
}

func (v *Vector) temporalFactor() float64 {
	return eWeight[v.Exploitability] * rlWeight[v.RemediationLevel] * rcWeight[v.ReportConfidence]
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clamp(x float64) float64 {
	return math.Min(math.Max(x, 0), 10)
}

// Weights, indexed by metric value. The Not Defined entry of a base metric is
// its least severe value.
var (
	avWeight = [...]float64{
		AccessVectorNotDefined:      0.395,
		AccessVectorLocal:           0.395,
		AccessVectorAdjacentNetwork: 0.646,
		AccessVectorNetwork:         1.0,
	}
	acWeight = [...]float64{
		AccessComplexityNotDefined: 0.35,
		AccessComplexityHigh:       0.35,
		AccessComplexityMedium:     0.61,
		AccessComplexityLow:        0.71,
	}
	auWeight = [...]float64{
		AuthenticationNotDefined: 0.45,
		AuthenticationMultiple:   0.45,
		AuthenticationSingle:     0.56,
		AuthenticationNone:       0.704,
	}
	impactWeight = [...]float64{
		ImpactNotDefined: 0,
		ImpactNone:       0,
		ImpactPartial:    0.275,
		ImpactComplete:   0.660,
	}
	eWeight = [...]float64{
		ExploitabilityNotDefined:     1,
		ExploitabilityUnproven:       0.85,
		ExploitabilityProofOfConcept: 0.9,
		ExploitabilityFunctional:     0.95,
		ExploitabilityHigh:           1,
	}
	rlWeight = [...]float64{
		RemediationLevelNotDefined:   1,
		RemediationLevelOfficialFix:  0.87,
		RemediationLevelTemporaryFix: 0.90,
		RemediationLevelWorkaround:   0.95,
		RemediationLevelUnavailable:  1,
	}
	rcWeight = [...]float64{
		ReportConfidenceNotDefined:     1,
		ReportConfidenceUnconfirmed:    0.90,
		ReportConfidenceUncorroborated: 0.95,
		ReportConfidenceConfirmed:      1,
	}
	cdpWeight = [...]float64{
		CollateralDamagePotentialNotDefined: 0,
		CollateralDamagePotentialNone:       0,
		CollateralDamagePotentialLow:        0.1,
		CollateralDamagePotentialLowMedium:  0.3,
		CollateralDamagePotentialMediumHigh: 0.4,
		CollateralDamagePotentialHigh:       0.5,
	}
	tdWeight = [...]float64{
		TargetDistributionNotDefined: 1,
		TargetDistributionNone:       0,
		TargetDistributionLow:        0.25,
		TargetDistributionMedium:     0.75,
		TargetDistributionHigh:       1,
	}
	requirementWeight = [...]float64{
		RequirementNotDefined: 1,
		RequirementLow:        0.5,
		RequirementMedium:     1,
		RequirementHigh:       1.51,
	}
)
