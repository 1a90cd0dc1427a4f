package cvsscore

import (
	"github.com/quay/cvsscore/cvss2"
	"github.com/quay/cvsscore/cvss3"
	"github.com/quay/cvsscore/cvss4"
)

// MetricSet is a parsed vector of any supported version.
//
// It holds exactly one version's metric record, selected by [MetricSet.Version].
// MetricSets are comparable and safe to copy. The zero value has an unknown
// version and can't be scored.
type MetricSet struct {
	version Version
	v2      cvss2.Vector
	v3      cvss3.Vector
	v4      cvss4.Vector
}

// FromV2 returns a MetricSet holding "v".
func FromV2(v cvss2.Vector) MetricSet {
	return MetricSet{version: V2, v2: v}
}

// FromV30 returns a MetricSet holding "v", to be scored as v3.0.
func FromV30(v cvss3.Vector) MetricSet {
	return MetricSet{version: V30, v3: v}
}

// FromV31 returns a MetricSet holding "v", to be scored as v3.1.
func FromV31(v cvss3.Vector) MetricSet {
	return MetricSet{version: V31, v3: v}
}

// FromV4 returns a MetricSet holding "v".
func FromV4(v cvss4.Vector) MetricSet {
	return MetricSet{version: V40, v4: v}
}

// Version reports the version of the held vector.
func (m MetricSet) Version() Version { return m.version }

// V2 returns the v2.0 vector, if that's what's held.
func (m MetricSet) V2() (cvss2.Vector, bool) { return m.v2, m.version == V2 }

// V3 returns the v3.x vector, if that's what's held. The caller can use
// [MetricSet.Version] to tell v3.0 and v3.1 apart.
func (m MetricSet) V3() (cvss3.Vector, bool) {
	return m.v3, m.version == V30 || m.version == V31
}

// V4 returns the v4.0 vector, if that's what's held.
func (m MetricSet) V4() (cvss4.Vector, bool) { return m.v4, m.version == V40 }

// Environmental reports whether the held vector has any Environmental
// metrics.
func (m MetricSet) Environmental() bool {
	switch m.version {
	case V2:
		return m.v2.Environmental()
	case V30, V31:
		return m.v3.Environmental()
	case V40:
		return m.v4.Environmental()
	}
	return false
}

// Temporal reports whether the held vector has any Temporal metrics. For v4.0
// vectors, this reports on the Threat metrics.
func (m MetricSet) Temporal() bool {
	switch m.version {
	case V2:
		return m.v2.Temporal()
	case V30, V31:
		return m.v3.Temporal()
	case V40:
		return m.v4.Threat()
	}
	return false
}
