//go:build slotkit_unchecked && !race

package invariants

// Enabled is false because the binary was built with the slotkit_unchecked
// build tag (and without -race). Precondition checks guarded by Enabled are
// removed by the compiler.
const Enabled = false
