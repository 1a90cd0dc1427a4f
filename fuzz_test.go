package cvsscore

import (
	"context"
	"testing"
)

func FuzzScoreVector(f *testing.F) {
	seeds := []string{
		vecV2, vecV30, vecV31, vecV31XSS, vecV4, vecV4Full, vecV4NoVuln,
		"",
		"CVSS:",
		"AV:X/AV:N//",
		"(AV:N/AC:L/Au:N/C:C/I:C/A:C)",
		"CVSS:4.0/AV:N/E:U/CR:H/MSI:S/MSA:S/S:P/U:Red",
	}
	for _, s := range seeds {
		for _, v := range []Version{V2, V30, V31, V40} {
			f.Add(uint8(v), s)
		}
	}
	ctx := context.Background()
	e, err := New(ctx, &Config{DisableTelemetry: true})
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, n uint8, vec string) {
		v := Version(n%4) + V2
		got, err := e.ScoreVector(ctx, v, vec)
		if err != nil {
			t.Fatalf("%v %q: %v", v, vec, err)
		}
		if !(got.Value >= 0 && got.Value <= 10) {
			t.Errorf("%v %q: score out of range: %v", v, vec, got.Value)
		}
		if got, want := got.Severity, Classify(got.Value); got != want {
			t.Errorf("%v %q: severity: got: %v, want: %v", v, vec, got, want)
		}

		m1, err := e.Parse(ctx, v, vec)
		if err != nil {
			t.Fatal(err)
		}
		m2, err := e.Parse(ctx, v, vec)
		if err != nil {
			t.Fatal(err)
		}
		if m1 != m2 {
			t.Errorf("%v %q: parse not repeatable: %+v != %+v", v, vec, m1, m2)
		}
		s1, err := e.Score(ctx, m1)
		if err != nil {
			t.Fatal(err)
		}
		s2, err := e.Score(ctx, m1)
		if err != nil {
			t.Fatal(err)
		}
		if s1 != s2 || s1 != got {
			t.Errorf("%v %q: score not repeatable: %v, %v, %v", v, vec, got, s1, s2)
		}
	})
}
