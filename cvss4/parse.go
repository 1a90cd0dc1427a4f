package cvss4

import (
	"github.com/quay/cvsscore/internal/vector"
)

// Prefix is the version token that leads a v4.0 vector string.
const Prefix = `CVSS:4.0`

// Parse parses the v4.0 vector string "s".
//
// Parse never fails: a leading version token is ignored, unknown metrics and
// tokens without a colon are skipped, and unknown values leave the metric
// "Not Defined". An empty or garbage string results in a Vector with every
// metric "Not Defined".
func Parse(s string) Vector {
	return vector.Parse(decoders, s)
}

// Decoders is the v4.0 decode table.
var decoders = vector.Table[Vector]{
	"AV":  vector.Field(attackVectorCodes, func(v *Vector) *AttackVector { return &v.AttackVector }),
	"AC":  vector.Field(attackComplexityCodes, func(v *Vector) *AttackComplexity { return &v.AttackComplexity }),
	"AT":  vector.Field(attackRequirementsCodes, func(v *Vector) *AttackRequirements { return &v.AttackRequirements }),
	"PR":  vector.Field(privilegesRequiredCodes, func(v *Vector) *PrivilegesRequired { return &v.PrivilegesRequired }),
	"UI":  vector.Field(userInteractionCodes, func(v *Vector) *UserInteraction { return &v.UserInteraction }),
	"VC":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.VulnerableConfidentiality }),
	"VI":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.VulnerableIntegrity }),
	"VA":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.VulnerableAvailability }),
	"SC":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.SubsequentConfidentiality }),
	"SI":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.SubsequentIntegrity }),
	"SA":  vector.Field(impactCodes, func(v *Vector) *Impact { return &v.SubsequentAvailability }),
	"E":   vector.Field(exploitMaturityCodes, func(v *Vector) *ExploitMaturity { return &v.ExploitMaturity }),
	"CR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.ConfidentialityRequirement }),
	"IR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.IntegrityRequirement }),
	"AR":  vector.Field(requirementCodes, func(v *Vector) *Requirement { return &v.AvailabilityRequirement }),
	"MAV": vector.Field(attackVectorCodes, func(v *Vector) *AttackVector { return &v.ModifiedAttackVector }),
	"MAC": vector.Field(attackComplexityCodes, func(v *Vector) *AttackComplexity { return &v.ModifiedAttackComplexity }),
	"MAT": vector.Field(attackRequirementsCodes, func(v *Vector) *AttackRequirements { return &v.ModifiedAttackRequirements }),
	"MPR": vector.Field(privilegesRequiredCodes, func(v *Vector) *PrivilegesRequired { return &v.ModifiedPrivilegesRequired }),
	"MUI": vector.Field(userInteractionCodes, func(v *Vector) *UserInteraction { return &v.ModifiedUserInteraction }),
	"MVC": vector.Field(impactCodes, func(v *Vector) *Impact { return &v.ModifiedVulnerableConfidentiality }),
	"MVI": vector.Field(impactCodes, func(v *Vector) *Impact { return &v.ModifiedVulnerableIntegrity }),
	"MVA": vector.Field(impactCodes, func(v *Vector) *Impact { return &v.ModifiedVulnerableAvailability }),
	"MSC": vector.Field(impactCodes, func(v *Vector) *Impact { return &v.ModifiedSubsequentConfidentiality }),
	"MSI": vector.Field(safetyImpactCodes, func(v *Vector) *SafetyImpact { return &v.ModifiedSubsequentIntegrity }),
	"MSA": vector.Field(safetyImpactCodes, func(v *Vector) *SafetyImpact { return &v.ModifiedSubsequentAvailability }),
	"S":   vector.Field(safetyCodes, func(v *Vector) *Safety { return &v.Safety }),
	"AU":  vector.Field(automatableCodes, func(v *Vector) *Automatable { return &v.Automatable }),
	"R":   vector.Field(recoveryCodes, func(v *Vector) *Recovery { return &v.Recovery }),
	"V":   vector.Field(valueDensityCodes, func(v *Vector) *ValueDensity { return &v.ValueDensity }),
	"RE":  vector.Field(responseEffortCodes, func(v *Vector) *ResponseEffort { return &v.ResponseEffort }),
	"U":   vector.Field(providerUrgencyCodes, func(v *Vector) *ProviderUrgency { return &v.ProviderUrgency }),
}
