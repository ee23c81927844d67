package ruin

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// RandomRouteRemoval empties one randomly chosen route entirely, moving
// every job it served back to Required. Routes with no jobs are never
// chosen (there is nothing for them to contribute).
type RandomRouteRemoval struct{}

// NewRandomRouteRemoval builds a RandomRouteRemoval.
func NewRandomRouteRemoval() *RandomRouteRemoval { return &RandomRouteRemoval{} }

func (r *RandomRouteRemoval) Name() string { return "random_route_removal" }

func (r *RandomRouteRemoval) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	routes := sortedRouteContexts(sc)
	candidates := make([]*solution.RouteContext, 0, len(routes))
	for _, rc := range routes {
		if rc.Route.Tour.HasJobs() {
			candidates = append(candidates, rc)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	chosen := candidates[env.Intn(len(candidates))]
	var jobs []*core.Job
	seen := make(map[string]bool)
	for _, a := range chosen.Route.Tour.Activities() {
		if a.Job == nil || seen[a.Job.JobID] {
			continue
		}
		seen[a.Job.JobID] = true
		if job, ok := problem.JobByID(a.Job.JobID); ok {
			jobs = append(jobs, job)
		}
	}
	removeJobs(problem, pipeline, sc, jobs)
	return nil
}
