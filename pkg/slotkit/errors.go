package slotkit

import "strconv"

// SlotMapError enumerates the failures of a bounded slot container.
//
// It has a single variant, [OutOfCapacity], which is also the zero value.
// Values are comparable, so errors.Is works on them directly.
type SlotMapError uint8

const (
	// OutOfCapacity indicates a bounded container has no free slot left.
	//
	// Recovery: grow the backing storage, or reject the request.
	OutOfCapacity SlotMapError = iota
)

// ErrOutOfCapacity is [OutOfCapacity] as an error value, for callers that
// prefer sentinel comparisons:
//
//	if errors.Is(err, slotkit.ErrOutOfCapacity) {
//	    // grow or reject
//	}
var ErrOutOfCapacity error = OutOfCapacity

func (e SlotMapError) Error() string {
	switch e {
	case OutOfCapacity:
		return "slotkit: out of capacity"
	default:
		return "slotkit: unknown error " + strconv.Itoa(int(e))
	}
}

// String returns the variant name.
func (e SlotMapError) String() string {
	switch e {
	case OutOfCapacity:
		return "OutOfCapacity"
	default:
		return "SlotMapError(" + strconv.Itoa(int(e)) + ")"
	}
}

// GoString implements fmt.GoStringer for %#v.
func (e SlotMapError) GoString() string {
	return "slotkit." + e.String()
}

// Passthrough returns err unchanged. It is the conversion used when generic
// code is instantiated at a call site that can run out of capacity.
func Passthrough(err SlotMapError) SlotMapError {
	return err
}

// CheckCapacity reports whether one more element fits into a container
// holding length elements out of capacity.
//
// It returns nil when length < capacity and conv(OutOfCapacity) otherwise.
// Pass [Passthrough] for bounded containers and [Unreachable] for containers
// whose capacity cannot be exhausted.
func CheckCapacity[E error](length, capacity int, conv func(SlotMapError) E) error {
	if length < capacity {
		return nil
	}

	return conv(OutOfCapacity)
}
