package slotkit_test

import (
	"testing"

	"github.com/calvinalkan/slotkit/pkg/slotkit"
)

// referenceIsOlder computes the forward distance with plain int arithmetic,
// independent of uint16 wrapping.
func referenceIsOlder(a, b uint16) bool {
	distance := (int(a) - int(b) + 65536) % 65536

	return distance >= 32768
}

func FuzzIsOlderVersion_Matches_Reference_When_Random_Pairs(f *testing.F) {
	f.Add(uint16(0), uint16(0))
	f.Add(uint16(0), uint16(65535))
	f.Add(uint16(32768), uint16(0))
	f.Add(uint16(32767), uint16(0))
	f.Add(uint16(65535), uint16(32767))
	f.Add(uint16(1), uint16(32769))

	f.Fuzz(func(t *testing.T, a, b uint16) {
		got := slotkit.IsOlderVersion(a, b)
		want := referenceIsOlder(a, b)

		if got != want {
			t.Fatalf("IsOlderVersion(%d, %d)=%v, want=%v", a, b, got, want)
		}

		// At most one direction can be "strictly newer".
		va, vb := slotkit.Version(a), slotkit.Version(b)
		if va.NewerThan(vb) && vb.NewerThan(va) {
			t.Fatalf("both %d and %d report newer than each other", a, b)
		}

		if a != b && !got && !vb.OlderThan(va) {
			t.Fatalf("neither %d nor %d is older than the other", a, b)
		}
	})
}
