// Package verify exhaustively checks the version ordering predicate against
// an independent reference over the full 16-bit counter space.
package verify

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/calvinalkan/slotkit/pkg/slotkit"
)

// Property names reported in [Finding.Property].
const (
	PropertyIrreflexive = "irreflexive"
	PropertyThreshold   = "threshold"
	PropertyHalfCount   = "half_count"
	PropertyTotality    = "totality"
)

// maxFindings bounds how many failing pairs a report keeps. The counters in
// [Report] stay exact.
const maxFindings = 32

// counterSpace is the number of distinct 16-bit versions.
const counterSpace = 1 << 16

// Predicate is an ordering predicate under test.
type Predicate func(a, b uint16) bool

// Options configures [Run].
type Options struct {
	// Workers is the number of goroutines. Zero means GOMAXPROCS.
	Workers int

	// Bases restricts the b values checked. Nil checks all 65536.
	// Every a is always checked against each base.
	Bases []uint16

	// Predicate overrides the predicate under test. Nil means
	// [slotkit.IsOlderVersion].
	Predicate Predicate
}

// Finding is one observed property failure.
type Finding struct {
	Property string `json:"property"`
	A        uint16 `json:"a"`
	B        uint16 `json:"b"`
	Detail   string `json:"detail"`
}

// Report summarizes a verification run.
type Report struct {
	Bases      int       `json:"bases"`
	Pairs      uint64    `json:"pairs"`
	Failures   uint64    `json:"failures"`
	Findings   []Finding `json:"findings,omitempty"`
	Truncated  bool      `json:"truncated,omitempty"`
	ChecksMode string    `json:"checks_mode"`
}

// OK reports whether no property failed.
func (r Report) OK() bool {
	return r.Failures == 0
}

// ReferenceIsOlder computes the ordering with plain int arithmetic, without
// relying on uint16 wraparound.
func ReferenceIsOlder(a, b uint16) bool {
	distance := (int(a) - int(b) + counterSpace) % counterSpace

	return distance >= slotkit.VersionHalfRange
}

// Run checks, for each base b and every a:
//   - irreflexive: the predicate is false for (b, b)
//   - threshold: the predicate agrees with [ReferenceIsOlder]
//   - totality: for a != b, at least one of (a, b) and (b, a) is older
//   - half_count: exactly [slotkit.VersionHalfRange] values of a are older
//
// Run stops early and returns ctx.Err() if ctx is cancelled.
func Run(ctx context.Context, opts Options) (Report, error) {
	predicate := opts.Predicate
	if predicate == nil {
		predicate = slotkit.IsOlderVersion
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	bases := opts.Bases
	if bases == nil {
		bases = make([]uint16, counterSpace)
		for i := range bases {
			bases[i] = uint16(i)
		}
	}

	var (
		mu     sync.Mutex
		report = Report{Bases: len(bases), ChecksMode: ChecksMode()}
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for _, b := range bases {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			failures, findings := checkBase(predicate, b)

			mu.Lock()
			defer mu.Unlock()

			report.Pairs += counterSpace
			report.Failures += failures
			report.Findings = append(report.Findings, findings...)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Report{}, fmt.Errorf("verify: %w", err)
	}

	slices.SortFunc(report.Findings, compareFindings)

	if len(report.Findings) > maxFindings {
		report.Findings = report.Findings[:maxFindings]
		report.Truncated = true
	}

	return report, nil
}

// checkBase runs every property for one base. It returns the exact failure
// count and at most maxFindings pair findings plus the half_count summary.
func checkBase(predicate Predicate, b uint16) (uint64, []Finding) {
	var (
		failures uint64
		findings []Finding
		older    int
	)

	record := func(f Finding) {
		failures++

		if len(findings) < maxFindings {
			findings = append(findings, f)
		}
	}

	if predicate(b, b) {
		record(Finding{Property: PropertyIrreflexive, A: b, B: b, Detail: "version reported older than itself"})
	}

	for i := range counterSpace {
		a := uint16(i)

		got := predicate(a, b)
		if got {
			older++
		}

		if want := ReferenceIsOlder(a, b); got != want {
			record(Finding{
				Property: PropertyThreshold,
				A:        a,
				B:        b,
				Detail:   fmt.Sprintf("got %v, want %v (distance %d)", got, want, a-b),
			})
		}

		if a != b && !got && !predicate(b, a) {
			record(Finding{Property: PropertyTotality, A: a, B: b, Detail: "neither version is older"})
		}
	}

	// The per-base summary is kept even when the pair findings hit the cap.
	if older != slotkit.VersionHalfRange {
		failures++

		findings = append(findings, Finding{
			Property: PropertyHalfCount,
			B:        b,
			Detail:   fmt.Sprintf("%d values older, want %d", older, slotkit.VersionHalfRange),
		})
	}

	return failures, findings
}

func compareFindings(x, y Finding) int {
	if x.B != y.B {
		return int(x.B) - int(y.B)
	}

	if x.A != y.A {
		return int(x.A) - int(y.A)
	}

	switch {
	case x.Property < y.Property:
		return -1
	case x.Property > y.Property:
		return 1
	default:
		return 0
	}
}

// ChecksMode names the extraction mode this binary was built with.
func ChecksMode() string {
	if slotkit.ChecksEnabled() {
		return "checked"
	}

	return "unchecked"
}
