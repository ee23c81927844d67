package constraint

import (
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
)

// ActorLimitsModule enforces the optional per-actor caps
// (Vehicle.Limits: MaxDistance, ShiftTime, TourSize), grounded on the
// shape of the upstream project's
// vrp-pragmatic/tests/unit/checker/limits_test.rs fixtures (values
// carried over, not Rust syntax). A zero limit means "unlimited", per
// core.VehicleLimits' own doc comment.
type ActorLimitsModule struct{}

// NewActorLimitsModule constructs the module. It needs no state-key
// registration: it is a pure HardRouteConstraint, not a state accepter.
func NewActorLimitsModule() *ActorLimitsModule {
	return &ActorLimitsModule{}
}

// Name implements ConstraintModule.
func (m *ActorLimitsModule) Name() string { return "actor_limits" }

// EvaluateRoute implements HardRouteConstraint.
func (m *ActorLimitsModule) EvaluateRoute(problem *core.Problem, rc *solution.RouteContext) *RouteViolation {
	limits := rc.Route.Actor.Vehicle.Limits
	if limits == nil {
		return nil
	}

	if limits.TourSize > 0 && rc.Route.Tour.JobActivityCount() > limits.TourSize {
		return &RouteViolation{Code: "actor_limits.tour_size"}
	}

	activities := rc.Route.Tour.Activities()
	if len(activities) == 0 {
		return nil
	}

	if limits.ShiftTime > 0 {
		used := activities[len(activities)-1].Schedule.Departure - activities[0].Schedule.Arrival
		if used > limits.ShiftTime {
			return &RouteViolation{Code: "actor_limits.shift_time"}
		}
	}

	if limits.MaxDistance > 0 {
		total := m.totalDistance(problem, rc.Route.Actor, activities)
		if total > limits.MaxDistance {
			return &RouteViolation{Code: "actor_limits.max_distance"}
		}
	}

	return nil
}

func (m *ActorLimitsModule) totalDistance(problem *core.Problem, actor *core.Actor, activities []*core.Activity) float64 {
	total := 0.0
	for i := 0; i+1 < len(activities); i++ {
		from, to := activities[i], activities[i+1]
		total += problem.Transport.Distance(actor.Vehicle.Profile, from.Place.Location, to.Place.Location, from.Schedule.Departure)
	}
	return total
}
