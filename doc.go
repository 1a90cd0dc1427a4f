// Package cvsscore parses and scores Common Vulnerability Scoring System
// vectors.
//
// Versions 2.0, 3.0, 3.1, and 4.0 are supported. The version-specific
// parsers and calculators live in the [github.com/quay/cvsscore/cvss2],
// [github.com/quay/cvsscore/cvss3], and [github.com/quay/cvsscore/cvss4]
// packages; this package provides a single [Engine] in front of them that
// adds the qualitative [Severity], batch scoring, logging, and telemetry.
//
// Parsing is permissive: unknown metrics and values are ignored and missing
// metrics take their defaults, so every vector string produces a score. The
// only errors are for unsupported versions and canceled batches.
//
//	s, err := cvsscore.ScoreVector(ctx, cvsscore.V31, "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H")
//	if err != nil {
//		return err
//	}
//	fmt.Println(s.Value, s.Severity) // 9.8 CRITICAL
package cvsscore
