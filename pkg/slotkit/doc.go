// Package slotkit provides the low-level primitives a generational slot map
// builds on.
//
// slotkit does not implement a slot map. It fixes the contract such a
// container relies on: how slot versions are compared, how values known to be
// present are extracted, and how capacity exhaustion is reported.
//
// # Versions
//
// Every slot carries a 16-bit [Version] that is bumped each time the slot is
// reused. Handles remember the version they were issued with; a handle whose
// version is older than the slot's is stale. Because versions wrap to 0 after
// 65535, plain numeric comparison is wrong. Use [IsOlderVersion]:
//
//	if slotkit.IsOlderVersion(handle.Version, slot.Version) {
//	    return nil, false // stale handle
//	}
//
// The answer is only meaningful while the true distance between the two
// versions stays below [VersionHalfRange] (32768 reuses).
//
// # Trusted Extraction
//
// [UnwrapOption], [UnwrapResult] and [Option.UnwrapUnchecked] extract a value
// the caller has already proven to be present. By default, and in every -race
// build, a false precondition panics with a [*Violation]. Building with
//
//	go build -tags slotkit_unchecked
//
// removes the check. A violated precondition is then undefined: the returned
// value is whatever the container held. [ChecksEnabled] reports the mode the
// binary was built in.
//
// # Errors
//
// [OutOfCapacity] is the only error a bounded container reports. Generic code
// that threads an error type can be instantiated for infallible call sites
// with [Never] and [Unreachable]:
//
//	err := slotkit.CheckCapacity(n, limit, slotkit.Passthrough) // may fail
//	err = slotkit.CheckCapacity(n, math.MaxInt, slotkit.Unreachable) // cannot
package slotkit
