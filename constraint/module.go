package constraint

import (
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
)

// ConstraintModule is the minimal identity every pipeline module must
// provide. A module contributes behavior by additionally implementing
// any subset of the interfaces below; Pipeline discovers which via
// type assertion when the module is added. Modules are
// optional and compose freely.
type ConstraintModule interface {
	Name() string
}

// HardActivityConstraint rejects or accepts inserting Target at the
// position described by actCtx. A nil return means the insertion is
// feasible as far as this module is concerned.
type HardActivityConstraint interface {
	EvaluateActivity(problem *core.Problem, rc *solution.RouteContext, actCtx ActivityContext) *ActivityViolation
}

// SoftActivityConstraint estimates the marginal cost of inserting
// Target at the position described by actCtx, added to
// CompositeRecreate's decision score.
type SoftActivityConstraint interface {
	EstimateActivity(problem *core.Problem, rc *solution.RouteContext, actCtx ActivityContext) float64
}

// HardRouteConstraint rejects or accepts a route as a whole (e.g. an
// actor limit that can only be checked once the full tour is known).
type HardRouteConstraint interface {
	EvaluateRoute(problem *core.Problem, rc *solution.RouteContext) *RouteViolation
}

// SoftRouteConstraint estimates a route-level cost contribution (e.g. a
// fixed cost for using this actor at all).
type SoftRouteConstraint interface {
	EstimateRoute(problem *core.Problem, rc *solution.RouteContext) float64
}

// RouteStateAccepter recomputes per-activity derived state for one
// route (accept_route_state) — called after every
// structural mutation to that route's Tour.
type RouteStateAccepter interface {
	AcceptRouteState(problem *core.Problem, rc *solution.RouteContext)
}

// SolutionStateAccepter recomputes solution-wide derived state (spec
// §4.D's accept_solution_state) — called once per mutation, after every
// affected route has already run AcceptRouteState.
type SolutionStateAccepter interface {
	AcceptSolutionState(problem *core.Problem, sc *solution.SolutionContext)
}
