package cvss3

import (
	"github.com/quay/cvsscore/internal/vector"
)

// Normalize resolves the effective value of every scored metric in "v".
//
// Base metrics missing from the vector default to their least severe value.
// Temporal and Security Requirement metrics resolve to "X", which every
// equation treats as a multiplier of 1.
//
// The returned mapping has the base keys AV, AC, PR, UI, S, C, I, and A with
// the Modified metrics already applied, the keys E, RL, RC, CR, IR, and AR, and
// the unmodified base values under the keys BAV, BAC, BPR, BUI, BS, BC, BI,
// and BA for the base score equations.
func Normalize(v Vector) vector.Effective {
	base := func(e vector.Effective, k, def, val string) {
		e["B"+k] = vector.Resolve(def, val)
	}
	e := vector.Effective{
		"AV": vector.Resolve("P", v.ModifiedAttackVector.String(), v.AttackVector.String()),
		"AC": vector.Resolve("H", v.ModifiedAttackComplexity.String(), v.AttackComplexity.String()),
		"PR": vector.Resolve("H", v.ModifiedPrivilegesRequired.String(), v.PrivilegesRequired.String()),
		"UI": vector.Resolve("R", v.ModifiedUserInteraction.String(), v.UserInteraction.String()),
		"S":  vector.Resolve("U", v.ModifiedScope.String(), v.Scope.String()),
		"C":  vector.Resolve("N", v.ModifiedConfidentiality.String(), v.Confidentiality.String()),
		"I":  vector.Resolve("N", v.ModifiedIntegrity.String(), v.Integrity.String()),
		"A":  vector.Resolve("N", v.ModifiedAvailability.String(), v.Availability.String()),
		"E":  v.ExploitCodeMaturity.String(),
		"RL": v.RemediationLevel.String(),
		"RC": v.ReportConfidence.String(),
		"CR": v.ConfidentialityRequirement.String(),
		"IR": v.IntegrityRequirement.String(),
		"AR": v.AvailabilityRequirement.String(),
	}
	base(e, "AV", "P", v.AttackVector.String())
	base(e, "AC", "H", v.AttackComplexity.String())
	base(e, "PR", "H", v.PrivilegesRequired.String())
	base(e, "UI", "R", v.UserInteraction.String())
	base(e, "S", "U", v.Scope.String())
	base(e, "C", "N", v.Confidentiality.String())
	base(e, "I", "N", v.Integrity.String())
	base(e, "A", "N", v.Availability.String())
	return e
}
