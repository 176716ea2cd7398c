// SPDX-License-Identifier: MIT

// Package relation: functional configuration for Classify.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package relation

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of goroutines Classify uses to evaluate
	// primitive predicates. 1 ⇒ sequential evaluation on the caller's goroutine.
	DefaultWorkers = 1

	// DefaultAcyclicity controls whether Classify also runs the cycle detector.
	DefaultAcyclicity = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "relation: WithParallel: workers must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers    int  // >= 1; DefaultWorkers
	acyclicity bool // DefaultAcyclicity
}

// Workers returns the resolved worker count.
func (o Options) Workers() int { return o.workers }

// Acyclicity reports whether the cycle detector is enabled.
func (o Options) Acyclicity() bool { return o.acyclicity }

// WithParallel evaluates the primitive predicates on up to workers goroutines.
// Implementation:
//   - Stage 1: validate workers >= 1 (panic otherwise).
//   - Stage 2: return a setter that writes workers into Options.
//
// Notes:
//   - Predicates only read the relation, so the fan-out needs no locking.
//   - Results are identical to the sequential run.
//
// AI-Hints:
//   - Worth it from roughly n ≥ 200, where the two O(n³) transitivity scans dominate.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithAcyclicity makes Classify fill Properties.Acyclic via IsAcyclic's walker.
func WithAcyclicity() Option {
	return func(o *Options) { o.acyclicity = true }
}

// DefaultOptions returns the zero-configuration Options.
func DefaultOptions() Options {
	return Options{
		workers:    DefaultWorkers,
		acyclicity: DefaultAcyclicity,
	}
}

// gatherOptions applies user setters over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
