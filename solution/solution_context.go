package solution

import (
	"sync"

	"github.com/routeforge/vrpcore/core"
)

// SolutionContext aggregates one RouteContext per active core.Route
// plus the set of jobs not yet assigned to any route (the "Required"
// set — the original's ctx.required). A freshly built
// SolutionContext has one empty RouteContext per fleet actor and every
// job Required.
type SolutionContext struct {
	Problem *core.Problem

	mu         sync.RWMutex
	routes     map[*core.Actor]*RouteContext
	required   []*core.Job
	ignored    []*core.Job       // jobs permanently excluded (e.g. infeasible for the whole fleet)
	unassigned map[string]string // jobID -> reason code
}

// NewSolutionContext builds the initial, fully-unassigned solution for problem.
func NewSolutionContext(problem *core.Problem) *SolutionContext {
	routes := make(map[*core.Actor]*RouteContext, len(problem.Fleet.Actors))
	for _, actor := range problem.Fleet.Actors {
		routes[actor] = NewRouteContext(core.NewRoute(actor))
	}
	required := make([]*core.Job, len(problem.Jobs))
	copy(required, problem.Jobs)

	return &SolutionContext{
		Problem:    problem,
		routes:     routes,
		required:   required,
		unassigned: make(map[string]string),
	}
}

// NewPartialSolutionContext builds a SolutionContext restricted to
// exactly the given routes and required jobs, bypassing
// NewSolutionContext's "one empty route per fleet actor, every job
// required" defaults. mutation.DecomposeSearch uses this to scope a
// ruin/recreate/local-search Mutation to one disjoint subset of routes
// at a time: since every recreate/ruin strategy only ever iterates
// sc.Routes(), restricting the map here is sufficient to keep a
// partition's mutation from touching routes outside its subset.
func NewPartialSolutionContext(problem *core.Problem, routes map[*core.Actor]*RouteContext, required []*core.Job) *SolutionContext {
	out := make(map[*core.Actor]*RouteContext, len(routes))
	for actor, rc := range routes {
		out[actor] = rc
	}
	req := make([]*core.Job, len(required))
	copy(req, required)

	return &SolutionContext{
		Problem:    problem,
		routes:     out,
		required:   req,
		unassigned: make(map[string]string),
	}
}

// Routes returns every RouteContext currently held, in no particular order.
func (sc *SolutionContext) Routes() []*RouteContext {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]*RouteContext, 0, len(sc.routes))
	for _, rc := range sc.routes {
		out = append(out, rc)
	}
	return out
}

// RouteFor returns the RouteContext for actor, or ErrUnknownRoute if
// actor is not part of this solution's fleet.
func (sc *SolutionContext) RouteFor(actor *core.Actor) (*RouteContext, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	rc, ok := sc.routes[actor]
	if !ok {
		return nil, ErrUnknownRoute
	}
	return rc, nil
}

// SetRoute replaces (or installs) the RouteContext held for actor.
// Recreate/ruin operators call this after building a new RouteContext
// for a route they mutated, so the rest of the pipeline observes the
// update through this SolutionContext rather than a stale copy.
func (sc *SolutionContext) SetRoute(actor *core.Actor, rc *RouteContext) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.routes[actor] = rc
}

// Required returns the jobs not yet assigned to any route.
func (sc *SolutionContext) Required() []*core.Job {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]*core.Job, len(sc.required))
	copy(out, sc.required)
	return out
}

// SetRequired replaces the set of unassigned jobs. Recreate operators
// (package recreate) call this after inserting a job; ruin operators
// (package ruin) call it after removing one.
func (sc *SolutionContext) SetRequired(jobs []*core.Job) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.required = jobs
}

// Ignored returns jobs excluded from this solution for the lifetime of
// the refinement run (e.g. found infeasible against every actor).
func (sc *SolutionContext) Ignored() []*core.Job {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]*core.Job, len(sc.ignored))
	copy(out, sc.ignored)
	return out
}

// Ignore moves job from Required into Ignored; a no-op if job was not Required.
func (sc *SolutionContext) Ignore(job *core.Job) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	for i, j := range sc.required {
		if j == job {
			sc.required = append(sc.required[:i], sc.required[i+1:]...)
			sc.ignored = append(sc.ignored, job)
			return
		}
	}
}

// SetUnassignedReason records why job could not be placed by the last
// recreate pass, surfaced verbatim in the external Solution output. It
// does not itself move job between Required/Ignored — callers decide that.
func (sc *SolutionContext) SetUnassignedReason(job *core.Job, reasonCode string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.unassigned[job.ID] = reasonCode
}

// ClearUnassignedReason removes any recorded reason for job, called once
// a later recreate attempt successfully places it.
func (sc *SolutionContext) ClearUnassignedReason(job *core.Job) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.unassigned, job.ID)
}

// UnassignedReasons returns a copy of the jobID -> reason-code map.
func (sc *SolutionContext) UnassignedReasons() map[string]string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make(map[string]string, len(sc.unassigned))
	for k, v := range sc.unassigned {
		out[k] = v
	}
	return out
}

// HasJobs reports whether any route currently serves at least one job.
func (sc *SolutionContext) HasJobs() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	for _, rc := range sc.routes {
		if rc.Route.Tour.HasJobs() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the whole solution: every RouteContext
// is cloned, and Required/Ignored are copied slices. This is the
// per-individual "deep copy before mutate" primitive that
// hyperheuristic.StaticSelective.mutate relies on to hand each worker
// its own solution to mutate freely.
func (sc *SolutionContext) Clone() *SolutionContext {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	routes := make(map[*core.Actor]*RouteContext, len(sc.routes))
	for actor, rc := range sc.routes {
		routes[actor] = rc.Clone()
	}
	required := make([]*core.Job, len(sc.required))
	copy(required, sc.required)
	ignored := make([]*core.Job, len(sc.ignored))
	copy(ignored, sc.ignored)
	unassigned := make(map[string]string, len(sc.unassigned))
	for k, v := range sc.unassigned {
		unassigned[k] = v
	}

	return &SolutionContext{
		Problem:    sc.Problem,
		routes:     routes,
		required:   required,
		ignored:    ignored,
		unassigned: unassigned,
	}
}

// Evaluate computes this solution's Fitness by summing each route's
// transport+activity costs through the Problem's cost oracles and
// handing the totals to Problem.Objective.Fitness.
func (sc *SolutionContext) Evaluate() core.Fitness {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	routeCosts := make([]float64, 0, len(sc.routes))
	for _, rc := range sc.routes {
		routeCosts = append(routeCosts, routeCost(sc.Problem, rc.Route))
	}
	return sc.Problem.Objective.Fitness(routeCosts, len(sc.required))
}

// routeCost sums transport and activity cost across one route's legs.
func routeCost(problem *core.Problem, route *core.Route) float64 {
	activities := route.Tour.Activities()
	if len(activities) < 2 {
		return 0
	}

	total := 0.0
	for i := 0; i+1 < len(activities); i++ {
		from, to := activities[i], activities[i+1]
		total += problem.Transport.Cost(&route.Actor.Vehicle, &route.Actor.Driver, from.Place.Location, to.Place.Location, from.Schedule.Departure)
	}
	for _, a := range activities {
		total += problem.Activity.Cost(&route.Actor.Vehicle, &route.Actor.Driver, a, a.Schedule.Arrival)
	}
	return total
}
