package cvss4

import (
	"math"

	"github.com/quay/cvsscore/internal/vector"
)

// Result is the outcome of a v4.0 score calculation.
type Result struct {
	// Score is the final score, in [0, 10] and rounded to one decimal place.
	Score float64
	// MacroVector is the classification used for the lookup. It's the zero
	// MacroVector when the vector has no impact at all.
	MacroVector MacroVector
	// Missing is set when MacroVector has no entry in the lookup table. The
	// Score is 0 in that case.
	//
	// This should be impossible; it indicates a classification bug.
	Missing bool
	// NoImpact is set when every impact metric is None and the calculation
	// was short-circuited.
	NoImpact bool
}

// Score returns the v4.0 score of "v".
//
// Unlike v2 and v3.x, there's only one score for a vector: Threat and
// Environmental metrics participate directly in the calculation.
func Score(v Vector) float64 {
	return Calculate(v).Score
}

// Calculate is like [Score], but reports the full [Result].
func Calculate(v Vector) Result {
	return Compute(Normalize(v))
}

// Compute runs the v4.0 scoring algorithm over the effective metrics "e".
//
// The vector is classified into a MacroVector and scored by that
// MacroVector's lookup value, then moved down toward the next lower
// MacroVector in proportion to how far the vector is from the
// highest-severity vectors of its class. The mean of the per-class
// adjustments is subtracted from the lookup value.
func Compute(e vector.Effective) Result {
	var res Result
	if e["VC"] == "N" && e["VI"] == "N" && e["VA"] == "N" &&
		e["SC"] == "N" && e["SI"] == "N" && e["SA"] == "N" {
		res.NoImpact = true
		return res
	}

	cur := Classify(e)
	res.MacroVector = cur
	value, ok := macrovectorScore[cur]
	if !ok {
		res.Missing = true
		return res
	}

	var sum float64
	var n int
	for _, g := range groups {
		low, ok := g.lower(cur)
		if !ok {
			continue
		}
		n++
		depth := g.depth(cur)
		if depth == 0 {
			continue
		}
		dist := minDistance(e, g.max(cur))
		sum += (value - low) * (float64(dist) / float64(depth))
	}
	var mean float64
	if n != 0 {
		mean = sum / float64(n)
	}

	s := value - mean
	s = math.Max(s, 0)
	s = math.Min(s, 10)
	res.Score = math.Round(s*10) / 10
	return res
}

// Group is one of the five adjustment groups: EQ1, EQ2, EQ3+EQ6, EQ4, and
// EQ5.
type group struct {
	// Lower reports the lookup score of the next lower MacroVector for this
	// group, if there is one.
	lower func(MacroVector) (float64, bool)
	// Max reports the highest-severity fragments for the current level.
	max func(MacroVector) []fragment
	// Depth reports the depth of the current level.
	depth func(MacroVector) int
}

var groups = [...]group{
	single(EQ1, func(m MacroVector) []fragment { return eq1Max[m[EQ1]] }, func(m MacroVector) int { return eq1Depth[m[EQ1]] }),
	single(EQ2, func(m MacroVector) []fragment { return eq2Max[m[EQ2]] }, func(m MacroVector) int { return eq2Depth[m[EQ2]] }),
	{
		lower: lowerEQ36,
		max:   func(m MacroVector) []fragment { return eq36Max[m[EQ3]][m[EQ6]] },
		depth: func(m MacroVector) int { return eq36Depth[m[EQ3]][m[EQ6]] },
	},
	single(EQ4, func(m MacroVector) []fragment { return eq4Max[m[EQ4]] }, func(m MacroVector) int { return eq4Depth[m[EQ4]] }),
	single(EQ5, func(m MacroVector) []fragment { return eq5Max[m[EQ5]] }, func(m MacroVector) int { return eq5Depth[m[EQ5]] }),
}

// Single constructs a group for an equivalence class that's independent of the
// others.
func single(eq int, top func(MacroVector) []fragment, depth func(MacroVector) int) group {
	return group{
		lower: func(m MacroVector) (float64, bool) {
			next, ok := m.incr(eq)
			if !ok {
				return 0, false
			}
			s, ok := macrovectorScore[next]
			return s, ok
		},
		max:   top,
		depth: depth,
	}
}

// LowerEQ36 finds the next lower MacroVector for the combined EQ3+EQ6 group.
//
// EQ3 is tried first, then EQ6. Both can only exist from level 0/0, in which
// case the higher-scoring one is used.
func lowerEQ36(m MacroVector) (s float64, ok bool) {
	for _, eq := range [...]int{EQ3, EQ6} {
		next, valid := m.incr(eq)
		if !valid {
			continue
		}
		ns, found := macrovectorScore[next]
		if !found {
			continue
		}
		if !ok || ns > s {
			s, ok = ns, true
		}
	}
	return s, ok
}

// MinDistance returns the smallest severity distance between "e" and any of
// the fragments "top".
//
// The distance to a single fragment is the sum, over the fragment's metrics,
// of how many steps less severe "e" is than the fragment. Steps where "e" is
// more severe count as zero.
func minDistance(e vector.Effective, top []fragment) int {
	best := -1
	for _, f := range top {
		var d int
		for m, ref := range f {
			sd, ok := severityDistance[m]
			if !ok {
				continue
			}
			if step := sd[e[m]] - sd[ref]; step > 0 {
				d += step
			}
		}
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
