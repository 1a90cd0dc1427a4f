package cvss4

import (
	"github.com/quay/cvsscore/internal/vector"
)

// Vector is a parsed CVSS v4.0 vector.
//
// Every metric is always present; the zero value of each field is that
// metric's "Not Defined" value.
type Vector struct {
	// Base, Exploitability
	AttackVector       AttackVector
	AttackComplexity   AttackComplexity
	AttackRequirements AttackRequirements
	PrivilegesRequired PrivilegesRequired
	UserInteraction    UserInteraction
	// Base, Impact
	VulnerableConfidentiality Impact
	VulnerableIntegrity       Impact
	VulnerableAvailability    Impact
	SubsequentConfidentiality Impact
	SubsequentIntegrity       Impact
	SubsequentAvailability    Impact
	// Threat
	ExploitMaturity ExploitMaturity
	// Environmental
	ConfidentialityRequirement         Requirement
	IntegrityRequirement               Requirement
	AvailabilityRequirement            Requirement
	ModifiedAttackVector               AttackVector
	ModifiedAttackComplexity           AttackComplexity
	ModifiedAttackRequirements         AttackRequirements
	ModifiedPrivilegesRequired         PrivilegesRequired
	ModifiedUserInteraction            UserInteraction
	ModifiedVulnerableConfidentiality  Impact
	ModifiedVulnerableIntegrity        Impact
	ModifiedVulnerableAvailability     Impact
	ModifiedSubsequentConfidentiality  Impact
	ModifiedSubsequentIntegrity        SafetyImpact
	ModifiedSubsequentAvailability     SafetyImpact
	// Supplemental
	Safety          Safety
	Automatable     Automatable
	Recovery        Recovery
	ValueDensity    ValueDensity
	ResponseEffort  ResponseEffort
	ProviderUrgency ProviderUrgency
}

// Threat reports if the vector has "Threat" metrics.
func (v *Vector) Threat() bool {
	return v.ExploitMaturity != ExploitMaturityNotDefined
}

// Environmental reports if the vector has "Environmental" metrics.
func (v *Vector) Environmental() bool {
	return v.ConfidentialityRequirement != RequirementNotDefined ||
		v.IntegrityRequirement != RequirementNotDefined ||
		v.AvailabilityRequirement != RequirementNotDefined ||
		v.ModifiedAttackVector != AttackVectorNotDefined ||
		v.ModifiedAttackComplexity != AttackComplexityNotDefined ||
		v.ModifiedAttackRequirements != AttackRequirementsNotDefined ||
		v.ModifiedPrivilegesRequired != PrivilegesRequiredNotDefined ||
		v.ModifiedUserInteraction != UserInteractionNotDefined ||
		v.ModifiedVulnerableConfidentiality != ImpactNotDefined ||
		v.ModifiedVulnerableIntegrity != ImpactNotDefined ||
		v.ModifiedVulnerableAvailability != ImpactNotDefined ||
		v.ModifiedSubsequentConfidentiality != ImpactNotDefined ||
		v.ModifiedSubsequentIntegrity != SafetyImpactNotDefined ||
		v.ModifiedSubsequentAvailability != SafetyImpactNotDefined
}

// Supplemental reports if the vector has "Supplemental" metrics.
//
// Supplemental metrics never change the score.
func (v *Vector) Supplemental() bool {
	return v.Safety != SafetyNotDefined ||
		v.Automatable != AutomatableNotDefined ||
		v.Recovery != RecoveryNotDefined ||
		v.ValueDensity != ValueDensityNotDefined ||
		v.ResponseEffort != ResponseEffortNotDefined ||
		v.ProviderUrgency != ProviderUrgencyNotDefined
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

// AttackRequirements is the "Attack Requirements (AT)" metric.
type AttackRequirements uint8

// Attack Requirements values.
const (
	AttackRequirementsNotDefined AttackRequirements = iota
	AttackRequirementsNone
	AttackRequirementsPresent
)

var attackRequirementsCodes = vector.Codes{"X", "N", "P"}

func (m AttackRequirements) String() string { return attackRequirementsCodes.Name(int(m)) }

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
	UserInteractionPassive
	UserInteractionActive
)

var userInteractionCodes = vector.Codes{"X", "N", "P", "A"}

func (m UserInteraction) String() string { return userInteractionCodes.Name(int(m)) }

// Impact is the value set shared by the six impact metrics (VC, VI, VA, SC, SI,
// SA) and their Modified counterparts, except MSI and MSA.
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

// SafetyImpact is the value set of the "Modified Subsequent System Integrity
// (MSI)" and "Modified Subsequent System Availability (MSA)" metrics, which
// add the "Safety (S)" value.
type SafetyImpact uint8

// Safety-aware impact values.
const (
	SafetyImpactNotDefined SafetyImpact = iota
	SafetyImpactSafety
	SafetyImpactHigh
	SafetyImpactLow
	SafetyImpactNone
)

var safetyImpactCodes = vector.Codes{"X", "S", "H", "L", "N"}

func (m SafetyImpact) String() string { return safetyImpactCodes.Name(int(m)) }

// ExploitMaturity is the "Exploit Maturity (E)" metric.
type ExploitMaturity uint8

// Exploit Maturity values.
const (
	ExploitMaturityNotDefined ExploitMaturity = iota
	ExploitMaturityAttacked
	ExploitMaturityPOC
	ExploitMaturityUnreported
)

var exploitMaturityCodes = vector.Codes{"X", "A", "P", "U"}

func (m ExploitMaturity) String() string { return exploitMaturityCodes.Name(int(m)) }

// Requirement is the value set of the security requirement metrics (CR, IR,
// AR).
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

// Safety is the "Safety (S)" supplemental metric.
type Safety uint8

// Safety values.
const (
	SafetyNotDefined Safety = iota
	SafetyNegligible
	SafetyPresent
)

var safetyCodes = vector.Codes{"X", "N", "P"}

func (m Safety) String() string { return safetyCodes.Name(int(m)) }

// Automatable is the "Automatable (AU)" supplemental metric.
type Automatable uint8

// Automatable values.
const (
	AutomatableNotDefined Automatable = iota
	AutomatableNo
	AutomatableYes
)

var automatableCodes = vector.Codes{"X", "N", "Y"}

func (m Automatable) String() string { return automatableCodes.Name(int(m)) }

// Recovery is the "Recovery (R)" supplemental metric.
type Recovery uint8

// Recovery values.
const (
	RecoveryNotDefined Recovery = iota
	RecoveryAutomatic
	RecoveryUser
	RecoveryIrrecoverable
)

var recoveryCodes = vector.Codes{"X", "A", "U", "I"}

func (m Recovery) String() string { return recoveryCodes.Name(int(m)) }

// ValueDensity is the "Value Density (V)" supplemental metric.
type ValueDensity uint8

// Value Density values.
const (
	ValueDensityNotDefined ValueDensity = iota
	ValueDensityDiffuse
	ValueDensityConcentrated
)

var valueDensityCodes = vector.Codes{"X", "D", "C"}

func (m ValueDensity) String() string { return valueDensityCodes.Name(int(m)) }

// ResponseEffort is the "Vulnerability Response Effort (RE)" supplemental
// metric.
type ResponseEffort uint8

// Vulnerability Response Effort values.
const (
	ResponseEffortNotDefined ResponseEffort = iota
	ResponseEffortLow
	ResponseEffortModerate
	ResponseEffortHigh
)

var responseEffortCodes = vector.Codes{"X", "L", "M", "H"}

func (m ResponseEffort) String() string { return responseEffortCodes.Name(int(m)) }

// ProviderUrgency is the "Provider Urgency (U)" supplemental metric.
//
// This is the only metric with values longer than one character.
type ProviderUrgency uint8

// Provider Urgency values.
const (
	ProviderUrgencyNotDefined ProviderUrgency = iota
	ProviderUrgencyClear
	ProviderUrgencyGreen
	ProviderUrgencyAmber
	ProviderUrgencyRed
)

var providerUrgencyCodes = vector.Codes{"X", "Clear", "Green", "Amber", "Red"}

func (m ProviderUrgency) String() string { return providerUrgencyCodes.Name(int(m)) }
