package slotkit

// VersionHalfRange is the forward distance at and beyond which a version is
// considered older than another. Comparisons are only truthful while the real
// number of reuses between two versions stays below it.
const VersionHalfRange = 1 << 15

// Version is a slot generation counter. It wraps to 0 after 65535.
type Version uint16

// IsOlderVersion reports whether a is an older version than b, taking
// wrapping into account.
//
// The result is true iff the forward distance from b to a, (a - b) mod 65536,
// is at least [VersionHalfRange]. Equal versions are not older. A distance of
// exactly 32768 is classified as older.
func IsOlderVersion(a, b uint16) bool {
	return a-b >= VersionHalfRange
}

// OlderThan reports whether v is older than w. See [IsOlderVersion].
func (v Version) OlderThan(w Version) bool {
	return IsOlderVersion(uint16(v), uint16(w))
}

// NewerThan reports whether v is newer than w.
//
// This is not w.OlderThan(v): at a distance of exactly [VersionHalfRange]
// both versions are older than each other, and neither is newer.
func (v Version) NewerThan(w Version) bool {
	return v != w && !v.OlderThan(w)
}

// Next returns the version following v.
func (v Version) Next() Version {
	return v + 1
}

// Advance returns v moved forward by n reuses.
func (v Version) Advance(n uint16) Version {
	return v + Version(n)
}

// Distance returns the forward distance from w to v, (v - w) mod 65536.
func (v Version) Distance(w Version) uint16 {
	return uint16(v - w)
}
