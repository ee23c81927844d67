package ruin

import (
	"sort"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/samber/lo"
)

// assignedJobs returns every job currently placed in some route, deduped
// across tasks so a multi-task job contributes exactly one entry. The
// result is sorted by JobID: SolutionContext.Routes() iterates a map, so
// without a stable sort here callers indexing into this slice with
// env.Intn/PermN would pick a different job on every run despite an
// identical seed, breaking the engine's determinism guarantee.
func assignedJobs(problem *core.Problem, sc *solution.SolutionContext) []*core.Job {
	seen := make(map[string]bool)
	var out []*core.Job
	for _, rc := range sc.Routes() {
		for _, a := range rc.Route.Tour.Activities() {
			if a.Job == nil || seen[a.Job.JobID] {
				continue
			}
			seen[a.Job.JobID] = true
			if job, ok := problem.JobByID(a.Job.JobID); ok {
				out = append(out, job)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// sortedRouteContexts returns sc.Routes() sorted by the owning actor's
// Vehicle.ID, for the same determinism reason assignedJobs is sorted.
func sortedRouteContexts(sc *solution.SolutionContext) []*solution.RouteContext {
	routes := sc.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Route.Actor.Vehicle.ID < routes[j].Route.Actor.Vehicle.ID
	})
	return routes
}

// removeJob detaches every activity belonging to job from whichever route
// currently serves it, re-runs that route's derived state, and hands job
// back to sc.Required(). Returns false if job was not assigned anywhere.
func removeJob(problem *core.Problem, pipeline *constraint.Pipeline, sc *solution.SolutionContext, job *core.Job) bool {
	for _, rc := range sc.Routes() {
		removed := rc.Route.Tour.RemoveAllForJob(job.ID)
		if len(removed) == 0 {
			continue
		}
		pipeline.AcceptRouteState(problem, rc)
		sc.SetRoute(rc.Route.Actor, rc)

		required := sc.Required()
		if !lo.ContainsBy(required, func(j *core.Job) bool { return j.ID == job.ID }) {
			sc.SetRequired(append(required, job))
		}
		return true
	}
	return false
}

// removeJobs detaches every job in jobs, de-duplicating by ID first since
// some operators build their candidate list from overlapping scans.
func removeJobs(problem *core.Problem, pipeline *constraint.Pipeline, sc *solution.SolutionContext, jobs []*core.Job) int {
	unique := lo.UniqBy(jobs, func(j *core.Job) string { return j.ID })
	n := 0
	for _, job := range unique {
		if removeJob(problem, pipeline, sc, job) {
			n++
		}
	}
	return n
}
