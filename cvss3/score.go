package cvss3

import (
	"math"

	"github.com/quay/cvsscore/internal/vector"
)

// Version selects between the v3.0 and v3.1 equations.
type Version uint8

// Supported minor versions.
const (
	V31 Version = iota
	V30
)

// Scores is the breakdown of a v3.x calculation.
type Scores struct {
	Base          float64
	Temporal      float64
	Environmental float64
	// Impact and Exploitability are the base sub-scores, rounded to one
	// decimal place for display.
	Impact         float64
	Exploitability float64
	// Value is the reported score: Environmental if the vector has any
	// Environmental metrics, Temporal otherwise. Temporal is the same as Base
	// when there are no Temporal metrics.
	Value float64
}

// Score returns the reported score of "v" under the "ver" equations.
func Score(v Vector, ver Version) float64 {
	return Calculate(v, ver).Value
}

// Calculate computes all the scores of "v" under the "ver" equations.
func Calculate(v Vector, ver Version) Scores {
	e := Normalize(v)
	var s Scores
	impact, expl := baseSubscores(e)
	s.Impact = round1(math.Max(impact, 0))
	s.Exploitability = round1(expl)

	changed := e["BS"] == "C"
	switch {
	case impact <= 0:
	case changed:
		s.Base = ver.roundup(math.Min(1.08*(impact+expl), 10))
	default:
		s.Base = ver.roundup(math.Min(impact+expl, 10))
	}
	s.Temporal = ver.roundup(s.Base * temporalFactor(e))
	s.Environmental = environmental(e, ver)

	s.Value = s.Temporal
	if v.Environmental() {
		s.Value = s.Environmental
	}
	return s
}

func baseSubscores(e vector.Effective) (impact, expl float64) {
	changed := e["BS"] == "C"
	iss := 1 - (1-weight["C"][e["BC"]])*(1-weight["I"][e["BI"]])*(1-weight["A"][e["BA"]])
	if changed {
		impact = 7.52*(iss-0.029) - 3.25*math.Pow(iss-0.02, 15)
	} else {
		impact = 6.42 * iss
	}
	expl = 8.22 * weight["AV"][e["BAV"]] * weight["AC"][e["BAC"]] *
		privileges(e["BPR"], changed) * weight["UI"][e["BUI"]]
	return impact, expl
}

func temporalFactor(e vector.Effective) float64 {
	return weight["E"][e["E"]] * weight["RL"][e["RL"]] * weight["RC"][e["RC"]]
}

func environmental(e vector.Effective, ver Version) float64 {
	changed := e["S"] == "C"
	miss := math.Min(1-
		(1-weight["CR"][e["CR"]]*weight["C"][e["C"]])*
			(1-weight["IR"][e["IR"]]*weight["I"][e["I"]])*
			(1-weight["AR"][e["AR"]]*weight["A"][e["A"]]),
		0.915)
	var impact float64
	switch {
	case !changed:
		impact = 6.42 * miss
	case ver == V30:
		impact = 7.52*(miss-0.029) - 3.25*math.Pow(miss-0.02, 15)
	default:
		impact = 7.52*(miss-0.029) - 3.25*math.Pow(miss*0.9731-0.02, 13)
	}
	if impact <= 0 {
		return 0
	}
	expl := 8.22 * weight["AV"][e["AV"]] * weight["AC"][e["AC"]] *
		privileges(e["PR"], changed) * weight["UI"][e["UI"]]
	var sum float64
	if changed {
		sum = ver.roundup(math.Min(1.08*(impact+expl), 10))
	} else {
		sum = ver.roundup(math.Min(impact+expl, 10))
	}
	return ver.roundup(sum * temporalFactor(e))
}

// Privileges reports the Privileges Required weight, which depends on Scope.
func privileges(pr string, changed bool) float64 {
	if changed {
		switch pr {
		case "L":
			return 0.68
		case "H":
			return 0.5
		}
	}
	return weight["PR"][pr]
}

// Roundup returns the smallest number, to one decimal place, that is greater
// than or equal to "x".
//
// v3.1 does this on integers to avoid floating point artifacts; v3.0 does it
// naively.
func (ver Version) roundup(x float64) float64 {
	if ver == V30 {
		return math.Ceil(x*10) / 10
	}
	i := int64(math.Round(x * 100000))
	if i%10000 == 0 {
		return float64(i) / 100000
	}
	return (math.Floor(float64(i)/10000) + 1) / 10
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Weight is the numeric value of each metric value. "X" is present for every
// metric that can be Not Defined after normalization.
var weight = map[string]map[string]float64{
	"AV": {"N": 0.85, "A": 0.62, "L": 0.55, "P": 0.2},
	"AC": {"L": 0.77, "H": 0.44},
	"PR": {"N": 0.85, "L": 0.62, "H": 0.27},
	"UI": {"N": 0.85, "R": 0.62},
	"C":  {"H": 0.56, "L": 0.22, "N": 0},
	"I":  {"H": 0.56, "L": 0.22, "N": 0},
	"A":  {"H": 0.56, "L": 0.22, "N": 0},
	"E":  {"X": 1, "H": 1, "F": 0.97, "P": 0.94, "U": 0.91},
	"RL": {"X": 1, "U": 1, "W": 0.97, "T": 0.96, "O": 0.95},
	"RC": {"X": 1, "C": 1, "R": 0.96, "U": 0.92},
	"CR": {"X": 1, "H": 1.5, "M": 1, "L": 0.5},
	"IR": {"X": 1, "H": 1.5, "M": 1, "L": 0.5},
	"AR": {"X": 1, "H": 1.5, "M": 1, "L": 0.5},
}
