package cvss4

import (
	"strconv"

	"github.com/quay/cvsscore/internal/vector"
)

// Equivalence classes, as indexes into a MacroVector.
const (
	EQ1 = iota // exploitability: AV, PR, UI
	EQ2        // complexity: AC, AT
	EQ3        // vulnerable system impact: VC, VI, VA
	EQ4        // subsequent system impact: SC, SI, SA
	EQ5        // exploit maturity: E
	EQ6        // requirements × vulnerable system impact: CR, IR, AR, VC, VI, VA
	numEQ
)

// EqLevels is the number of levels in each equivalence class.
var eqLevels = [numEQ]uint8{3, 2, 3, 3, 3, 2}

// MacroVector is the classification of a vector into the six equivalence
// classes. Each element is the level of the corresponding class, 0 being the
// most severe.
type MacroVector [numEQ]uint8

// String implements [fmt.Stringer].
//
// The result is always six digits, e.g. "000200".
func (m MacroVector) String() string {
	b := make([]byte, 0, numEQ)
	for _, l := range m {
		b = strconv.AppendUint(b, uint64(l), 10)
	}
	return string(b)
}

// Valid reports whether every level is within its class's range.
//
// A valid MacroVector may still be absent from the lookup table: EQ3 level 2
// with EQ6 level 0 cannot occur.
func (m MacroVector) Valid() bool {
	for i, l := range m {
		if l >= eqLevels[i] {
			return false
		}
	}
	return true
}

// Incr returns a copy of "m" with class "eq" one level less severe, and
// whether that level exists.
func (m MacroVector) incr(eq int) (MacroVector, bool) {
	m[eq]++
	return m, m[eq] < eqLevels[eq]
}

// Classify computes the MacroVector for the effective metrics "e".
//
// See [Normalize] for producing "e" from a [Vector].
func Classify(e vector.Effective) (m MacroVector) {
	// EQ1
	switch av, pr, ui := e["AV"], e["PR"], e["UI"]; {
	case av == "N" && pr == "N" && ui == "N":
		m[EQ1] = 0
	case (av == "N" || pr == "N" || ui == "N") && av != "P":
		m[EQ1] = 1
	default:
		m[EQ1] = 2
	}

	// EQ2
	if e["AC"] == "L" && e["AT"] == "N" {
		m[EQ2] = 0
	} else {
		m[EQ2] = 1
	}

	// EQ3
	switch vc, vi, va := e["VC"], e["VI"], e["VA"]; {
	case vc == "H" && vi == "H":
		m[EQ3] = 0
	case vc == "H" || vi == "H" || va == "H":
		m[EQ3] = 1
	default:
		m[EQ3] = 2
	}

	// EQ4
	//
	// "S" can only come from MSI or MSA, so level 0 requires environmental
	// metrics.
	switch sc, si, sa := e["SC"], e["SI"], e["SA"]; {
	case si == "S" || sa == "S":
		m[EQ4] = 0
	case sc == "H" || si == "H" || sa == "H":
		m[EQ4] = 1
	default:
		m[EQ4] = 2
	}

	// EQ5
	switch e["E"] {
	case "P":
		m[EQ5] = 1
	case "U":
		m[EQ5] = 2
	default: // "A", and "X" defaults to the worst case.
		m[EQ5] = 0
	}

	// EQ6
	switch {
	case e["CR"] == "H" && e["VC"] == "H",
		e["IR"] == "H" && e["VI"] == "H",
		e["AR"] == "H" && e["VA"] == "H":
		m[EQ6] = 0
	default:
		m[EQ6] = 1
	}

	return m
}
