package cvsscore

import (
	"fmt"
	"strings"

	"github.com/quay/cvsscore/cvss3"
	"github.com/quay/cvsscore/cvss4"
)

// Version is a CVSS version.
type Version uint8

//go:generate go tool stringer -type=Version -linecomment

// The supported versions. The zero value is not a valid version.
const (
	VersionUnknown Version = iota // unknown
	V2                            // 2.0
	V30                           // 3.0
	V31                           // 3.1
	V40                           // 4.0
)

// ParseVersion parses a version string like "3.1".
//
// A "CVSS:" or "v" prefix is allowed, and the major versions "2" and "4" are
// accepted as shorthand.
func ParseVersion(s string) (Version, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(t, "CVSS:")
	t = strings.TrimPrefix(t, "v")
	switch t {
	case "2", "2.0":
		return V2, nil
	case "3.0":
		return V30, nil
	case "3.1":
		return V31, nil
	case "4", "4.0":
		return V40, nil
	}
	return VersionUnknown, &Error{
		Op:      "cvsscore.ParseVersion",
		Kind:    ErrInvalid,
		Message: fmt.Sprintf("unknown version %q", s),
	}
}

// DetectVersion guesses at the version of a vector string.
//
// Vectors without a recognized version token are assumed to be v2.0, which
// has none.
func DetectVersion(vec string) Version {
	vec = strings.TrimSpace(vec)
	switch {
	case strings.HasPrefix(vec, cvss4.Prefix):
		return V40
	case strings.HasPrefix(vec, cvss3.Prefix31):
		return V31
	case strings.HasPrefix(vec, cvss3.Prefix30):
		return V30
	}
	return V2
}

// MarshalText implements [encoding.TextMarshaler].
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Version) UnmarshalText(b []byte) error {
	p, err := ParseVersion(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
