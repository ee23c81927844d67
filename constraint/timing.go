package constraint

import (
	"math"

	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
)

// TimingModule is a direct port of vrp-core's
// construction/constraints/timing.rs: it maintains each route's
// schedule (forward pass) and each activity's latest-feasible-arrival
// and accumulated-waiting state (backward pass), and uses that state to
// evaluate hard and soft activity-insertion feasibility.
type TimingModule struct{}

// NewTimingModule registers the module's two fixed state keys
// (LatestArrivalKey, WaitingKey) with registry and returns the module.
// Registration is explicit so a second, unrelated module can never be
// handed the same key by accident.
func NewTimingModule(registry *solution.StateRegistry) (*TimingModule, error) {
	if err := registry.RegisterExplicit("timing.latest_arrival", solution.LatestArrivalKey); err != nil {
		return nil, err
	}
	if err := registry.RegisterExplicit("timing.waiting", solution.WaitingKey); err != nil {
		return nil, err
	}
	return &TimingModule{}, nil
}

// Name implements ConstraintModule.
func (tm *TimingModule) Name() string { return "timing" }

// AcceptRouteState implements RouteStateAccepter: forward schedule pass
// followed by the backward latest-arrival/waiting pass.
func (tm *TimingModule) AcceptRouteState(problem *core.Problem, rc *solution.RouteContext) {
	activities := rc.Route.Tour.Activities()
	if len(activities) == 0 {
		return
	}
	actor := rc.Route.Actor

	forwardPass(problem, actor, activities, actor.Detail.Time.Start)
	backwardPass(problem, actor, rc, activities)
}

// forwardPass computes Schedule.Arrival/Departure for every activity
// from the start terminal onward, folding departure forward leg by
// leg. startDeparture seeds the start terminal's own schedule — the
// actor's shift start on a fresh route, or a slid-forward departure
// when rescheduleDeparture has shifted it.
func forwardPass(problem *core.Problem, actor *core.Actor, activities []*core.Activity, startDeparture float64) {
	start := activities[0]
	start.Schedule.Arrival = startDeparture
	start.Schedule.Departure = startDeparture

	prev := start
	for i := 1; i < len(activities); i++ {
		act := activities[i]
		arrival := prev.Schedule.Departure + problem.Transport.Duration(actor.Vehicle.Profile, prev.Place.Location, act.Place.Location, prev.Schedule.Departure)
		departure := math.Max(arrival, act.Place.TimeWindow.Start) + problem.Activity.Duration(&actor.Vehicle, &actor.Driver, act, arrival)
		act.Schedule.Arrival = arrival
		act.Schedule.Departure = departure
		prev = act
	}
}

// backwardPass walks activities in reverse, writing LatestArrivalKey
// and WaitingKey state for every job activity. Terminal activities pass
// the accumulator through unchanged, exactly as the Rust original skips
// them rather than writing state for them.
func backwardPass(problem *core.Problem, actor *core.Actor, rc *solution.RouteContext, activities []*core.Activity) {
	endTime := actor.Detail.Time.End
	prevLoc := actor.EndOrStartLocation()
	waiting := 0.0

	for i := len(activities) - 1; i >= 0; i-- {
		act := activities[i]
		if act.IsTerminal() {
			continue
		}

		potentialLatest := endTime -
			problem.Transport.Duration(actor.Vehicle.Profile, act.Place.Location, prevLoc, endTime) -
			problem.Activity.Duration(&actor.Vehicle, &actor.Driver, act, endTime)
		latestArrival := math.Min(act.Place.TimeWindow.End, potentialLatest)
		futureWaiting := waiting + math.Max(act.Place.TimeWindow.Start-act.Schedule.Arrival, 0)

		rc.SetState(solution.LatestArrivalKey, i, latestArrival)
		rc.SetState(solution.WaitingKey, i, futureWaiting)

		endTime = latestArrival
		prevLoc = act.Place.Location
		waiting = futureWaiting
	}
}

// AcceptSolutionState implements SolutionStateAccepter. Once every job
// has been placed (Required is empty) each non-empty route's departure
// is slid forward to cut waiting at its first stop — the
// reschedule_departure this module's Rust source declares but never
// implements.
func (tm *TimingModule) AcceptSolutionState(problem *core.Problem, sc *solution.SolutionContext) {
	if len(sc.Required()) > 0 {
		return
	}
	for _, rc := range sc.Routes() {
		if !rc.Route.Tour.HasJobs() {
			continue
		}
		tm.rescheduleDeparture(problem, rc)
	}
}

// rescheduleDeparture slides a route's start departure forward by the
// minimum slack tolerated by any job activity's latest-arrival bound,
// reducing waiting at the first stop without ever pushing a later
// activity past its own deadline.
func (tm *TimingModule) rescheduleDeparture(problem *core.Problem, rc *solution.RouteContext) {
	activities := rc.Route.Tour.Activities()
	if len(activities) < 2 {
		return
	}

	slack := math.Inf(1)
	for i, act := range activities {
		if act.IsTerminal() {
			continue
		}
		latest, ok := rc.State(solution.LatestArrivalKey, i)
		if !ok {
			return
		}
		if d := latest - act.Schedule.Arrival; d < slack {
			slack = d
		}
	}
	if math.IsInf(slack, 1) || slack <= 0 {
		return
	}

	newStartDeparture := activities[0].Schedule.Departure + slack

	forwardPass(problem, rc.Route.Actor, activities, newStartDeparture)
	backwardPass(problem, rc.Route.Actor, rc, activities)
}

// EvaluateActivity implements HardActivityConstraint, following
// TimeHardActivityConstraint.evaluate_activity's exact structure: a
// pre-check against the actor's own shift end, a closed/open-VRP
// latest-at-next derivation, a skip-feasibility check, and finally the
// target's own latest-arrival bound.
func (tm *TimingModule) EvaluateActivity(problem *core.Problem, rc *solution.RouteContext, actCtx ActivityContext) *ActivityViolation {
	actor := rc.Route.Actor
	prev, target, next := actCtx.Prev, actCtx.Target, actCtx.Next

	if actor.Detail.Time.End < prev.Place.TimeWindow.Start || actor.Detail.Time.End < target.Place.TimeWindow.Start {
		return &ActivityViolation{Code: "timing.shift_end", Stopped: true}
	}
	if next != nil && actor.Detail.Time.End < next.Place.TimeWindow.Start {
		return &ActivityViolation{Code: "timing.shift_end", Stopped: true}
	}

	var nextLoc core.Location
	var latestAtNext float64
	if next != nil {
		nextLoc = next.Place.Location
		if v, ok := rc.State(solution.LatestArrivalKey, actCtx.NextIndex); ok {
			latestAtNext = v
		} else {
			latestAtNext = next.Place.TimeWindow.End
		}
	} else {
		nextLoc = target.Place.Location
		latestAtNext = math.Min(target.Place.TimeWindow.End, actor.Detail.Time.End)
	}

	arrivalAtNextIfSkip := prev.Schedule.Departure + problem.Transport.Duration(actor.Vehicle.Profile, prev.Place.Location, nextLoc, prev.Schedule.Departure)
	if arrivalAtNextIfSkip > latestAtNext {
		return &ActivityViolation{Code: "timing.latest_arrival", Stopped: true}
	}
	if target.Place.TimeWindow.Start > latestAtNext {
		return &ActivityViolation{Code: "timing.latest_arrival", Stopped: false}
	}

	arrivalAtTarget := prev.Schedule.Departure + problem.Transport.Duration(actor.Vehicle.Profile, prev.Place.Location, target.Place.Location, prev.Schedule.Departure)
	endAtTarget := math.Max(arrivalAtTarget, target.Place.TimeWindow.Start) + problem.Activity.Duration(&actor.Vehicle, &actor.Driver, target, arrivalAtTarget)
	latestAtTarget := math.Min(
		target.Place.TimeWindow.End,
		latestAtNext-problem.Transport.Duration(actor.Vehicle.Profile, target.Place.Location, nextLoc, latestAtNext)+problem.Activity.Duration(&actor.Vehicle, &actor.Driver, target, arrivalAtTarget),
	)
	if arrivalAtTarget > latestAtTarget {
		return &ActivityViolation{Code: "timing.latest_arrival", Stopped: false}
	}

	if next != nil {
		return nil
	}

	arrivalAtNextAct := endAtTarget + problem.Transport.Duration(actor.Vehicle.Profile, target.Place.Location, nextLoc, endAtTarget)
	if arrivalAtNextAct > latestAtNext {
		return &ActivityViolation{Code: "timing.latest_arrival", Stopped: false}
	}
	return nil
}

// analyzeLeg mirrors analyze_route_leg: the transport/activity cost
// and resulting departure time for traveling start -> end, leaving
// start at time.
func analyzeLeg(problem *core.Problem, actor *core.Actor, start, end *core.Activity, time float64) (transportCost, activityCost, departure float64) {
	arrival := time + problem.Transport.Duration(actor.Vehicle.Profile, start.Place.Location, end.Place.Location, time)
	departure = math.Max(arrival, end.Place.TimeWindow.Start) + problem.Activity.Duration(&actor.Vehicle, &actor.Driver, end, arrival)
	transportCost = problem.Transport.Cost(&actor.Vehicle, &actor.Driver, start.Place.Location, end.Place.Location, time)
	activityCost = problem.Activity.Cost(&actor.Vehicle, &actor.Driver, end, arrival)
	return
}

// EstimateActivity implements SoftActivityConstraint, following
// TimeSoftActivityConstraint.estimate_activity: the marginal cost of
// detouring through target is the new prev->target->next cost minus the
// prev->next cost it replaces, with the replaced leg's waiting
// allowance netted out asymmetrically (only up to what was actually
// being waited, never manufacturing savings for jobs that weren't
// waiting at all).
func (tm *TimingModule) EstimateActivity(problem *core.Problem, rc *solution.RouteContext, actCtx ActivityContext) float64 {
	actor := rc.Route.Actor
	prev, target, next := actCtx.Prev, actCtx.Target, actCtx.Next

	tpL, acL, depL := analyzeLeg(problem, actor, prev, target, prev.Schedule.Departure)

	var tpR, acR, depR float64
	if next != nil {
		tpR, acR, depR = analyzeLeg(problem, actor, target, next, depL)
	} else {
		tpR, acR, depR = analyzeLeg(problem, actor, target, target, depL)
	}

	newCosts := tpL + tpR + acL + acR

	if !rc.Route.Tour.HasJobs() || next == nil {
		return newCosts
	}

	waitingTime, _ := rc.State(solution.WaitingKey, actCtx.NextIndex)
	tpO, acO, depO := analyzeLeg(problem, actor, prev, next, prev.Schedule.Departure)
	waitingCost := math.Min(waitingTime, math.Max(0, depR-depO)) * actor.Vehicle.Costs.PerWaitingTime
	oldCosts := tpO + acO + waitingCost

	return newCosts - oldCosts
}
