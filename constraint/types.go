package constraint

import "github.com/routeforge/vrpcore/core"

// ActivityViolation reports that a candidate activity insertion is
// infeasible. It is a plain value, never an error: infeasibility is
// expected, high-frequency data during search, distinct from a
// configuration fault, which is an error.
//
// Stopped marks a "stop scanning this route entirely" violation (the
// insertion point and everything after it in the tour can be skipped)
// versus a localized violation at just this position, which still
// permits other insertion points in the same tour to be tried.
type ActivityViolation struct {
	Code    string
	Stopped bool
}

// RouteViolation reports that a route, as a whole, breaches a
// HardRouteConstraint (e.g. an actor limit).
type RouteViolation struct {
	Code string
}

// ActivityContext describes a candidate activity insertion: Target is
// being considered for the slot between Prev and Next in the current
// tour. PrevIndex/NextIndex are Prev/Next's current positions in the
// tour, used to look up cached per-activity state (solution.RouteContext.State).
// Next is nil when Target would become the route's last job activity
// before an open VRP's implicit end.
type ActivityContext struct {
	Prev      *core.Activity
	PrevIndex int
	Target    *core.Activity
	Next      *core.Activity
	NextIndex int
}
