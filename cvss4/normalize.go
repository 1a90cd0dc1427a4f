package cvss4

import (
	"github.com/quay/cvsscore/internal/vector"
)

// Normalize resolves the effective value of every scored metric in "v".
//
// Metrics with a Modified counterpart use the Modified value if defined, then
// the base value, then a default. Base metrics missing from the vector default
// to their least severe value, so a partial vector scores low rather than
// high. Exploit Maturity defaults to Attacked and the Security Requirements
// default to High, the worst cases.
//
// The returned mapping always contains the keys AV, AC, AT, PR, UI, VC, VI,
// VA, SC, SI, SA, E, CR, IR, and AR. SI and SA may resolve to "S" via MSI and
// MSA.
func Normalize(v Vector) vector.Effective {
	return vector.Effective{
		"AV": vector.Resolve("P", v.ModifiedAttackVector.String(), v.AttackVector.String()),
		"AC": vector.Resolve("H", v.ModifiedAttackComplexity.String(), v.AttackComplexity.String()),
		"AT": vector.Resolve("P", v.ModifiedAttackRequirements.String(), v.AttackRequirements.String()),
		"PR": vector.Resolve("H", v.ModifiedPrivilegesRequired.String(), v.PrivilegesRequired.String()),
		"UI": vector.Resolve("A", v.ModifiedUserInteraction.String(), v.UserInteraction.String()),
		"VC": vector.Resolve("N", v.ModifiedVulnerableConfidentiality.String(), v.VulnerableConfidentiality.String()),
		"VI": vector.Resolve("N", v.ModifiedVulnerableIntegrity.String(), v.VulnerableIntegrity.String()),
		"VA": vector.Resolve("N", v.ModifiedVulnerableAvailability.String(), v.VulnerableAvailability.String()),
		"SC": vector.Resolve("N", v.ModifiedSubsequentConfidentiality.String(), v.SubsequentConfidentiality.String()),
		"SI": vector.Resolve("N", v.ModifiedSubsequentIntegrity.String(), v.SubsequentIntegrity.String()),
		"SA": vector.Resolve("N", v.ModifiedSubsequentAvailability.String(), v.SubsequentAvailability.String()),
		"E":  vector.Resolve("A", v.ExploitMaturity.String()),
		"CR": vector.Resolve("H", v.ConfidentialityRequirement.String()),
		"IR": vector.Resolve("H", v.IntegrityRequirement.String()),
		"AR": vector.Resolve("H", v.AvailabilityRequirement.String()),
	}
}
