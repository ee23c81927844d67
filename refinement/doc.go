// Package refinement drives the outer generation loop: it owns the
// Objective-ordered Population, hands hyperheuristic.StaticSelective
// one generation's worth of individuals at a time, folds the results
// back in, and polls a termination predicate between generations —
// cooperative cancellation at the generation boundary.
//
// Grounded on the teacher's tsp package's deadline-checked search loops
// (tsp/three_opt.go, tsp/bb.go, tsp/bound_onetree.go): a useDeadline
// bool plus a time.Now().After(deadline) probe, amortized by only
// checking every few generations rather than every one, generalized
// here from "accepted moves" to "accepted generations" and extended
// with additional generation-count and quality-threshold
// predicates.
package refinement
