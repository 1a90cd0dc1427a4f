// Package cvss3 implements parsing and scoring of CVSS v3.0 and v3.1 vectors.
//
// The two versions share a metric set and differ only in rounding and in the
// environmental equations for a changed scope.
package cvss3

import (
	"github.com/quay/cvsscore/internal/vector"
)

// Vector is a parsed CVSS v3.x vector.
//
// The zero value of each field is that metric's "Not Defined" value.
type Vector struct {
	// Base
	AttackVector       AttackVector
	AttackComplexity   AttackComplexity
	PrivilegesRequired PrivilegesRequired
	UserInteraction    UserInteraction
	Scope              Scope
	Confidentiality    Impact
	Integrity          Impact
	Availability       Impact
	// Temporal
	ExploitCodeMaturity ExploitCodeMaturity
	RemediationLevel    RemediationLevel
	ReportConfidence    ReportConfidence
	// Environmental
	ConfidentialityRequirement Requirement
	IntegrityRequirement       Requirement
	AvailabilityRequirement    Requirement
	ModifiedAttackVector       AttackVector
	ModifiedAttackComplexity   AttackComplexity
	ModifiedPrivilegesRequired PrivilegesRequired
	ModifiedUserInteraction    UserInteraction
	ModifiedScope              Scope
	ModifiedConfidentiality    Impact
	ModifiedIntegrity          Impact
	ModifiedAvailability       Impact
}

// Temporal reports if the vector has "Temporal" metrics.
func (v *Vector) Temporal() bool {
	return v.ExploitCodeMaturity != ExploitCodeMaturityNotDefined ||
		v.RemediationLevel != RemediationLevelNotDefined ||
		v.ReportConfidence != ReportConfidenceNotDefined
}

// Environmental reports if the vector has "Environmental" metrics.
func (v *Vector) Environmental() bool {
	return v.ConfidentialityRequirement != RequirementNotDefined ||
		v.IntegrityRequirement != RequirementNotDefined ||
		v.AvailabilityRequirement != RequirementNotDefined ||
		v.ModifiedAttackVector != AttackVectorNotDefined ||
		v.ModifiedAttackComplexity != AttackComplexityNotDefined ||
		v.ModifiedPrivilegesRequired != PrivilegesRequiredNotDefined ||
		v.ModifiedUserInteraction != UserInteractionNotDefined ||
		v.ModifiedScope != ScopeNotDefined ||
		v.ModifiedConfidentiality != ImpactNotDefined ||
		v.ModifiedIntegrity != ImpactNotDefined ||
		v.ModifiedAvailability != ImpactNotDefined
}

// AttackVector is the "Attack Vector (AV)" metric.
type AttackVector uint8

// Attack Vector values.
const (
	AttackVectorNotDefined AttackVector = iota
	AttackVectorNetwork
	AttackVectorAdjacent
	AttackVectorLocal
	AttackVectorPhysical
)

var attackVectorCodes = vector.Codes{"X", "N", "A", "L", "P"}

func (m AttackVector) String() string { return attackVectorCodes.Name(int(m)) }

// AttackComplexity is the "Attack Complexity (AC)" metric.
type AttackComplexity uint8

// Attack Complexity values.
const (
	AttackComplexityNotDefined AttackComplexity = iota
	AttackComplexityLow
	AttackComplexityHigh
)

var attackComplexityCodes = vector.Codes{"X", "L", "H"}

func (m AttackComplexity) String() string { return attackComplexityCodes.Name(int(m)) }

// PrivilegesRequired is the "Privileges Required (PR)" metric.
type PrivilegesRequired uint8

// Privileges Required values.
const (
	PrivilegesRequiredNotDefined PrivilegesRequired = iota
	PrivilegesRequiredNone
	PrivilegesRequiredLow
	PrivilegesRequiredHigh
)

var privilegesRequiredCodes = vector.Codes{"X", "N", "L", "H"}

func (m PrivilegesRequired) String() string { return privilegesRequiredCodes.Name(int(m)) }

// UserInteraction is the "User Interaction (UI)" metric.
type UserInteraction uint8

// User Interaction values.
const (
	UserInteractionNotDefined UserInteraction = iota
	UserInteractionNone
	UserInteractionRequired
)

var userInteractionCodes = vector.Codes{"X", "N", "R"}

func (m UserInteraction) String() string { return userInteractionCodes.Name(int(m)) }

// Scope is the "Scope (S)" metric.
type Scope uint8

// Scope values.
const (
	ScopeNotDefined Scope = iota
	ScopeUnchanged
	ScopeChanged
)

var scopeCodes = vector.Codes{"X", "U", "C"}

func (m Scope) String() string { return scopeCodes.Name(int(m)) }

// Impact is the value set of the Confidentiality, Integrity, and Availability
// metrics and their Modified counterparts.
type Impact uint8

// Impact values.
const (
	ImpactNotDefined Impact = iota
	ImpactHigh
	ImpactLow
	ImpactNone
)

var impactCodes = vector.Codes{"X", "H", "L", "N"}

func (m Impact) String() string { return impactCodes.Name(int(m)) }

// ExploitCodeMaturity is the "Exploit Code Maturity (E)" metric.
type ExploitCodeMaturity uint8

// Exploit Code Maturity values.
const (
	ExploitCodeMaturityNotDefined ExploitCodeMaturity = iota
	ExploitCodeMaturityHigh
	ExploitCodeMaturityFunctional
	ExploitCodeMaturityProofOfConcept
	ExploitCodeMaturityUnproven
)

var exploitCodeMaturityCodes = vector.Codes{"X", "H", "F", "P", "U"}

func (m ExploitCodeMaturity) String() string { return exploitCodeMaturityCodes.Name(int(m)) }

// RemediationLevel is the "Remediation Level (RL)" metric.
type RemediationLevel uint8

// Remediation Level values.
const (
	RemediationLevelNotDefined RemediationLevel = iota
	RemediationLevelUnavailable
	RemediationLevelWorkaround
	RemediationLevelTemporaryFix
	RemediationLevelOfficialFix
)

var remediationLevelCodes = vector.Codes{"X", "U", "W", "T", "O"}

func (m RemediationLevel) String() string { return remediationLevelCodes.Name(int(m)) }

// ReportConfidence is the "Report Confidence (RC)" metric.
type ReportConfidence uint8

// Report Confidence values.
const (
	ReportConfidenceNotDefined ReportConfidence = iota
	ReportConfidenceConfirmed
	ReportConfidenceReasonable
	ReportConfidenceUnknown
)

var reportConfidenceCodes = vector.Codes{"X", "C", "R", "U"}

func (m ReportConfidence) String() string { return reportConfidenceCodes.Name(int(m)) }

// Requirement is the value set of the Security Requirements metrics.
type Requirement uint8

// Security Requirement values.
const (
	RequirementNotDefined Requirement = iota
	RequirementHigh
	RequirementMedium
	RequirementLow
)

var requirementCodes = vector.Codes{"X", "H", "M", "L"}

func (m Requirement) String() string { return requirementCodes.Name(int(m)) }
