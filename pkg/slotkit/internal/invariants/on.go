//go:build !slotkit_unchecked || race

package invariants

// Enabled is true unless the binary was built with the slotkit_unchecked
// build tag. Race builds always keep checks on.
//
// Gate precondition checks on Enabled so they compile away entirely in
// unchecked builds:
//
//	if invariants.Enabled && !ok {
//	    panic(invariants.Newf("Op", nil, "..."))
//	}
const Enabled = true
