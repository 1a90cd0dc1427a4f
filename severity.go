package cvsscore

import (
	"fmt"
)

// Severity is the qualitative severity rating of a score.
type Severity uint8

//go:generate go tool stringer -type=Severity -linecomment

// The qualitative severities. The mapping from scores is shared by all
// versions; v2.0 doesn't define one of its own.
const (
	Unknown  Severity = iota // UNKNOWN
	None                     // NONE
	Low                      // LOW
	Medium                   // MEDIUM
	High                     // HIGH
	Critical                 // CRITICAL
)

// Classify returns the Severity for the numeric score "s".
func Classify(s float64) Severity {
	switch {
	case s <= 0:
		return None
	case s < 4:
		return Low
	case s < 7:
		return Medium
	case s < 9:
		return High
	default:
		return Critical
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Severity) UnmarshalText(b []byte) error {
	// This depends on the contents of severity_string.go.
	for i := range len(_Severity_index) - 1 {
		if _Severity_name[_Severity_index[i]:_Severity_index[i+1]] == string(b) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", string(b))
}
