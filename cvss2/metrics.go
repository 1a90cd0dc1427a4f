// Package cvss2 implements parsing and scoring of CVSS v2.0 vectors.
package cvss2

import (
	"github.com/quay/cvsscore/internal/vector"
)

// Vector is a parsed CVSS v2.0 vector.
//
// The zero value of each field is that metric's "Not Defined" value. v2.0 has
// no Not Defined value for the base metrics, but a missing base metric still
// decodes to it.
type Vector struct {
	// Base
	AccessVector     AccessVector
	AccessComplexity AccessComplexity
	Authentication   Authentication
	Confidentiality  Impact
	Integrity        Impact
	Availability     Impact
	// Temporal
	Exploitability   Exploitability
	RemediationLevel RemediationLevel
	ReportConfidence ReportConfidence
	// Environmental
	CollateralDamagePotential  CollateralDamagePotential
	TargetDistribution         TargetDistribution
	ConfidentialityRequirement Requirement
	IntegrityRequirement       Requirement
	AvailabilityRequirement    Requirement
}

// Temporal reports if the vector has "Temporal" metrics.
func (v *Vector) Temporal() bool {
	return v.Exploitability != ExploitabilityNotDefined ||
		v.RemediationLevel != RemediationLevelNotDefined ||
		v.ReportConfidence != ReportConfidenceNotDefined
}

// Environmental reports if the vector has "Environmental" metrics.
func (v *Vector) Environmental() bool {
	return v.CollateralDamagePotential != CollateralDamagePotentialNotDefined ||
		v.TargetDistribution != TargetDistributionNotDefined ||
		v.ConfidentialityRequirement != RequirementNotDefined ||
		v.IntegrityRequirement != RequirementNotDefined ||
		v.AvailabilityRequirement != RequirementNotDefined
}

// NotDefined is the v2.0 code for a metric without a value.
const notDefined = `ND`

// AccessVector is the "Access Vector (AV)" metric.
type AccessVector uint8

// Access Vector values.
const (
	AccessVectorNotDefined AccessVector = iota
	AccessVectorLocal
	AccessVectorAdjacentNetwork
	AccessVectorNetwork
)

var accessVectorCodes = vector.Codes{notDefined, "L", "A", "N"}

func (m AccessVector) String() string { return accessVectorCodes.Name(int(m)) }

// AccessComplexity is the "Access Complexity (AC)" metric.
type AccessComplexity uint8

// Access Complexity values.
const (
	AccessComplexityNotDefined AccessComplexity = iota
	AccessComplexityHigh
	AccessComplexityMedium
	AccessComplexityLow
)

var accessComplexityCodes = vector.Codes{notDefined, "H", "M", "L"}

func (m AccessComplexity) String() string { return accessComplexityCodes.Name(int(m)) }

// Authentication is the "Authentication (Au)" metric.
type Authentication uint8

// Authentication values.
const (
	AuthenticationNotDefined Authentication = iota
	AuthenticationMultiple
	AuthenticationSingle
	AuthenticationNone
)

var authenticationCodes = vector.Codes{notDefined, "M", "S", "N"}

func (m Authentication) String() string { return authenticationCodes.Name(int(m)) }

// Impact is the value set of the Confidentiality, Integrity, and Availability
// Impact metrics.
type Impact uint8

// Impact values.
const (
	ImpactNotDefined Impact = iota
	ImpactNone
	ImpactPartial
	ImpactComplete
)

var impactCodes = vector.Codes{notDefined, "N", "P", "C"}

func (m Impact) String() string { return impactCodes.Name(int(m)) }

// Exploitability is the "Exploitability (E)" metric.
type Exploitability uint8

// Exploitability values.
const (
	ExploitabilityNotDefined Exploitability = iota
	ExploitabilityUnproven
	ExploitabilityProofOfConcept
	ExploitabilityFunctional
	ExploitabilityHigh
)

var exploitabilityCodes = vector.Codes{notDefined, "U", "POC", "F", "H"}

func (m Exploitability) String() string { return exploitabilityCodes.Name(int(m)) }

// RemediationLevel is the "Remediation Level (RL)" metric.
type RemediationLevel uint8

// Remediation Level values.
const (
	RemediationLevelNotDefined RemediationLevel = iota
	RemediationLevelOfficialFix
	RemediationLevelTemporaryFix
	RemediationLevelWorkaround
	RemediationLevelUnavailable
)

var remediationLevelCodes = vector.Codes{notDefined, "OF", "TF", "W", "U"}

func (m RemediationLevel) String() string { return remediationLevelCodes.Name(int(m)) }

// ReportConfidence is the "Report Confidence (RC)" metric.
type ReportConfidence uint8

// Report Confidence values.
const (
	ReportConfidenceNotDefined ReportConfidence = iota
	ReportConfidenceUnconfirmed
	ReportConfidenceUncorroborated
	ReportConfidenceConfirmed
)

var reportConfidenceCodes = vector.Codes{notDefined, "UC", "UR", "C"}

func (m ReportConfidence) String() string { return reportConfidenceCodes.Name(int(m)) }

// CollateralDamagePotential is the "Collateral Damage Potential (CDP)"
// metric.
type CollateralDamagePotential uint8

// Collateral Damage Potential values.
const (
	CollateralDamagePotentialNotDefined CollateralDamagePotential = iota
	CollateralDamagePotentialNone
	CollateralDamagePotentialLow
	CollateralDamagePotentialLowMedium
	CollateralDamagePotentialMediumHigh
	CollateralDamagePotentialHigh
)

var collateralDamagePotentialCodes = vector.Codes{notDefined, "N", "L", "LM", "MH", "H"}

func (m CollateralDamagePotential) String() string {
	return collateralDamagePotentialCodes.Name(int(m))
}

// TargetDistribution is the "Target Distribution (TD)" metric.
type TargetDistribution uint8

// Target Distribution values.
const (
	TargetDistributionNotDefined TargetDistribution = iota
	TargetDistributionNone
	TargetDistributionLow
	TargetDistributionMedium
	TargetDistributionHigh
)

var targetDistributionCodes = vector.Codes{notDefined, "N", "L", "M", "H"}

func (m TargetDistribution) String() string { return targetDistributionCodes.Name(int(m)) }

// Requirement is the value set of the Security Requirements metrics.
type Requirement uint8

// Security Requirement values.
const (
	RequirementNotDefined Requirement = iota
	RequirementLow
	RequirementMedium
	RequirementHigh
)

var requirementCodes = vector.Codes{notDefined, "L", "M", "H"}

func (m Requirement) String() string { return requirementCodes.Name(int(m)) }
