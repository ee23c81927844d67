package mutation

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
)

// placement is the cheapest feasible tour index/place found by
// bestSingleTaskInsertion, mirroring recreate's internal placement type
// but scoped to the Exchange* operators below.
//
// The Exchange operators only ever relocate single-task jobs: a
// multi-task job's precedence constraint makes mid-search relocation a
// much bigger search than the ones below are meant to do, so composite
// recreate/ruin cycles remain the path multi-task jobs take to move
// between routes.
type placement struct {
	index int
	place core.Place
	cost  float64
}

// bestSingleTaskInsertion finds the cheapest feasible way to insert
// job's sole task somewhere in rc, without mutating rc. It returns
// (nil, false) for multi-task jobs or when no feasible slot exists.
func bestSingleTaskInsertion(problem *core.Problem, pipeline *constraint.Pipeline, rc *solution.RouteContext, job *core.Job) (*placement, bool) {
	if len(job.Tasks) != 1 {
		return nil, false
	}
	if v := pipeline.EvaluateHardRoute(problem, rc); v != nil {
		return nil, false
	}

	task := job.Tasks[0]
	trial := rc.Clone()
	activities := trial.Route.Tour.Activities()
	end := len(activities)
	if !trial.Route.Actor.IsOpenVRP() {
		end = len(activities) - 1
	}

	var best *placement
	for idx := 1; idx <= end; idx++ {
		prev := activities[idx-1]
		var next *core.Activity
		if idx < len(activities) {
			next = activities[idx]
		}

		stopScanning := false
		for _, place := range task.Places {
			target := &core.Activity{Type: core.ActivityJob, Place: place, Job: &core.JobRef{JobID: job.ID}}
			actCtx := constraint.ActivityContext{Prev: prev, PrevIndex: idx - 1, Target: target, Next: next, NextIndex: idx}

			if v := pipeline.EvaluateHardActivity(problem, trial, actCtx); v != nil {
				if v.Stopped {
					stopScanning = true
				}
				continue
			}
			soft := pipeline.EstimateSoftActivity(problem, trial, actCtx)

			trial.Route.Tour.InsertAt(idx, target)
			pipeline.AcceptRouteState(problem, trial)
			feasible := pipeline.EvaluateHardRoute(problem, trial) == nil
			trial.Route.Tour.RemoveJob(job.ID, 0)
			pipeline.AcceptRouteState(problem, trial)

			if feasible && (best == nil || soft < best.cost) {
				best = &placement{index: idx, place: place, cost: soft}
			}
		}
		if stopScanning {
			break
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// applyPlacement inserts job's sole task into rc at p, then re-runs the
// route's derived state.
func applyPlacement(problem *core.Problem, pipeline *constraint.Pipeline, rc *solution.RouteContext, job *core.Job, p *placement) {
	activity := &core.Activity{Type: core.ActivityJob, Place: p.place, Job: &core.JobRef{JobID: job.ID}}
	rc.Route.Tour.InsertAt(p.index, activity)
	pipeline.AcceptRouteState(problem, rc)
}

// removeSingleTaskJob removes job's (sole) activity from rc and re-runs
// the route's derived state, returning the removed place so callers can
// reinsert it elsewhere on failure.
func removeSingleTaskJob(problem *core.Problem, pipeline *constraint.Pipeline, rc *solution.RouteContext, job *core.Job) (core.Place, bool) {
	removed, ok := rc.Route.Tour.RemoveJob(job.ID, 0)
	if !ok {
		return core.Place{}, false
	}
	pipeline.AcceptRouteState(problem, rc)
	return removed.Place, true
}

// jobsInRoute returns every single-task job currently placed in rc, in
// tour order.
func jobsInRoute(problem *core.Problem, rc *solution.RouteContext) []*core.Job {
	var out []*core.Job
	for _, a := range rc.Route.Tour.Activities() {
		if a.Job == nil {
			continue
		}
		if job, ok := problem.JobByID(a.Job.JobID); ok && len(job.Tasks) == 1 {
			out = append(out, job)
		}
	}
	return out
}
