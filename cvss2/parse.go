package cvss2

import (
	"strings"

	"github.com/quay/cvsscore/internal/vector"
)

// Parse parses the v2.0 vector string "s".
//
// v2.0 vectors have no version token, but some sources add one (e.g.
// "CVSS:2.0/") or wrap the vector in parentheses. Both are tolerated.
// Otherwise, Parse follows the same rules as the other versions: it never
// fails, and anything it doesn't understand is left "Not Defined".
func Parse(s string) Vector {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	return vector.Parse(decoders, s)
}

var decoders = vector.Table[Vector]{
	"AV":  vector.Field(accessVectorCodes, func(v *Vector) *AccessVector { return &v.AccessVector }),
	"AC":  vector.Field(accessComplexityCodes, func(v *Vector) *AccessComplexity { return &v.AccessComplexity }),
	"Au":  vector.Field(authenticationCodes, func(v *Vector) *Authentication { return &v.Authentication }),
	"C":   vector.Field(impactCodes, func(v *Vector) *Impact { return &v.Confidentiality }),
	"I":   vector.Field(impactCodes, func(v *Vector) *Impact { return &v.Integrity }),
	"A":   vector.Field(impactCodes, func(v *Vector) *Impact { return &v.Availability }),
	"E":   vector.Field(exploitabilityCodes, func(v *Vector) *Exploitability { return &v.Exploitability }),
	"RL":  vector.Field(remediationLevelCodes, func(v *Vector) *RemediationLevel { return &v.RemediationLevel }),
	"RC":  vector.Field(reportConfidenceCodes, func(v *Vector) *ReportConfidence { return &v.ReportConfidence }),
	"CDP": vector.Field(collateralDamagePotentialCodes, func(v *Vector) *CollateralDamagePotential { return &v.CollateralDamagePotential }),
	"TD":  vector.Field(targetDistributionCodes, func(v *Vector) *TargetDistribution { return &v.TargetDistribution }),
	"CR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.ConfidentialityRequirement }),
	"IR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.IntegrityRequirement }),
	"AR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.AvailabilityRequirement }),
}
