package cvss3

import (
	"github.com/quay/cvsscore/internal/vector"
)

// Version prefixes for v3.x vector strings.
const (
	Prefix30 = `CVSS:3.0`
	Prefix31 = `CVSS:3.1`
)

// Parse parses the v3.x vector string "s".
//
// The version token is not checked; the caller decides how to score the
// result. See the cvss4 package's Parse for the tolerance rules, which are the
// same here.
func Parse(s string) Vector {
	return vector.Parse(decoders, s)
}

var decoders = vector.Table[Vector]{
	"AV":  vector.Field(attackVectorCodes, func(v *Vector) *AttackVector { return &v.AttackVector }),
	"AC":  vector.Field(attackComplexityCodes, func(v *Vector) *AttackComplexity { return &v.AttackComplexity }),
	"PR":  vector.Field(privilegesRequiredCodes, func(v *Vector) *PrivilegesRequired { return &v.PrivilegesRequired }),
	"UI":  vector.Field(userInteractionCodes, func(v *Vector) *UserInteraction { return &v.UserInteraction }),
	"S":   vector.Field(scopeCodes, func(v *Vector) *Scope { return &v.Scope }),
	"C":   vector.Field(impactCodes, func(v *Vector) *Impact { return &v.Confidentiality }),
	"I":   vector.Field(impactCodes, func(v *Vector) *Impact { return &v.Integrity }),
	"A":   vector.Field(impactCodes, func(v *Vector) *Impact { return &v.Availability }),
	"E":   vector.Field(exploitCodeMaturityCodes, func(v *Vector) *ExploitCodeMaturity { return &v.ExploitCodeMaturity }),
	"RL":  vector.Field(remediationLevelCodes, func(v *Vector) *RemediationLevel { return &v.RemediationLevel }),
	"RC":  vector.Field(reportConfidenceCodes, func(v *Vector) *ReportConfidence { return &v.ReportConfidence }),
	"CR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.ConfidentialityRequirement }),
	"IR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.IntegrityRequirement }),
	"AR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.AvailabilityRequirement }),
	"MAV": vector.Field(attackVectorCodes, func(v *Vector) *AttackVector { return &v.ModifiedAttackVector }),
	"MAC": vector.Field(attackComplexityCodes, func(v *Vector) *AttackComplexity { return &v.ModifiedAttackComplexity }),
	"MPR": vector.Field(privilegesRequiredCodes, func(v *Vector) *PrivilegesRequired { return &v.ModifiedPrivilegesRequired }),
	"MUI": vector.Field(userInteractionCodes, func(v *Vector) *UserInteraction { return &v.ModifiedUserInteraction }),
	"MS":  vector.Field(scopeCodes, func(v *Vector) *Scope { return &v.ModifiedScope }),
	"MC":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.ModifiedConfidentiality }),
	"MI":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.ModifiedIntegrity }),
	"MA":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.ModifiedAvailability }),
}
