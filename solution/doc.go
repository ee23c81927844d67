// Package solution holds the mutable, per-search-state layer that sits
// on top of the immutable core.Problem: RouteContext caches
// per-activity derived state (arrival times, latest-arrival bounds,
// waiting, and anything a constraint.ConstraintModule wants to
// memoize) keyed by a StateKey, and SolutionContext aggregates one
// RouteContext per active core.Route plus the set of jobs not yet
// assigned to any route.
//
// Every exported mutable type here follows the teacher's concurrency
// convention: separate sync.RWMutex locks per concern area
// (core.Graph's muVert/muEdgeAdj split), and a Clone/DeepCopy method so
// a worker goroutine can claim its own copy before mutating — the
// hyperheuristic package's per-individual fan-out relies on this.
package solution
