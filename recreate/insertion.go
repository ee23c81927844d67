package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// placement is one feasible way to insert every task of a job, in
// precedence order, into a single route.
type placement struct {
	job       *core.Job
	actor     *core.Actor
	positions []int        // tour index to insert each task's activity at, strictly increasing
	places    []core.Place // the core.Place chosen per task
	cost      float64      // sum of SoftActivity estimates across all task insertions
}

// scoreFunc adjusts a raw soft-cost estimate before it is compared
// against other candidates — the hook recreate.Perturbation uses to add
// noise without duplicating the search itself.
type scoreFunc func(env *xrand.Environment, rawCost float64) float64

// identityScore is the scoreFunc used by strategies with no adjustment.
func identityScore(_ *xrand.Environment, cost float64) float64 { return cost }

// bestInsertion finds the cheapest feasible placement of job across
// every route in sc — insertion at the globally cheapest feasible
// position. score lets callers perturb the comparison key
// without perturbing the cost actually recorded (Perturbation still
// books the true cost; only the ranking is noisy).
func bestInsertion(problem *core.Problem, pipeline *constraint.Pipeline, sc *solution.SolutionContext, job *core.Job, env *xrand.Environment, score scoreFunc) *placement {
	var best *placement
	var bestKey float64

	for _, rc := range sc.Routes() {
		p := placeInRoute(problem, pipeline, rc, job)
		if p == nil {
			continue
		}
		key := score(env, p.cost)
		if best == nil || key < bestKey {
			best = p
			bestKey = key
		}
	}
	return best
}

// rankedInsertions returns every route's feasible placement of job,
// sorted cheapest-first by true cost (not a perturbed score) — used by
// Regret (needs the k-th best) and SkipBest (needs to discard the top r).
func rankedInsertions(problem *core.Problem, pipeline *constraint.Pipeline, sc *solution.SolutionContext, job *core.Job) []*placement {
	out := make([]*placement, 0, len(sc.Routes()))
	for _, rc := range sc.Routes() {
		if p := placeInRoute(problem, pipeline, rc, job); p != nil {
			out = append(out, p)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].cost < out[j-1].cost; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// placeInRoute searches one route for the cheapest feasible way to
// insert every task of job, in precedence order. It works against a
// cloned RouteContext so the search can tentatively commit each task
// (advancing schedule/state for the next task's feasibility check)
// without mutating the caller's solution until apply() is invoked.
func placeInRoute(problem *core.Problem, pipeline *constraint.Pipeline, rc *solution.RouteContext, job *core.Job) *placement {
	if hv := pipeline.EvaluateHardRoute(problem, rc); hv != nil {
		return nil
	}

	trial := rc.Clone()
	s := &taskSearch{problem: problem, pipeline: pipeline, job: job}
	if !s.search(trial, 0, 1) {
		return nil
	}
	return &placement{
		job:       job,
		actor:     rc.Route.Actor,
		positions: s.bestPositions,
		places:    s.bestPlaces,
		cost:      s.bestCost,
	}
}

// taskSearch performs the exhaustive (but route-and-job-scoped, so
// small) backtracking search over task insertion positions described
// in the package doc: every task of job must land in this one route,
// in increasing tour-index order, each one hard-feasible against the
// tentatively-updated schedule left by the previous task.
type taskSearch struct {
	problem *core.Problem
	pipeline *constraint.Pipeline
	job     *core.Job

	positions []int
	places    []core.Place
	cost      float64

	found       bool
	bestCost    float64
	bestPositions []int
	bestPlaces    []core.Place
}

func (s *taskSearch) search(trial *solution.RouteContext, taskIdx int, fromIdx int) bool {
	if taskIdx >= len(s.job.Tasks) {
		if !s.found || s.cost < s.bestCost {
			s.found = true
			s.bestCost = s.cost
			s.bestPositions = append([]int(nil), s.positions...)
			s.bestPlaces = append([]core.Place(nil), s.places...)
		}
		return true
	}

	task := s.job.Tasks[taskIdx]
	activities := trial.Route.Tour.Activities()
	end := len(activities)
	if !trial.Route.Actor.IsOpenVRP() {
		end = len(activities) - 1
	}

	anyFeasible := false
	for idx := fromIdx; idx <= end; idx++ {
		prev := activities[idx-1]
		var next *core.Activity
		if idx < len(activities) {
			next = activities[idx]
		}

		stopScanning := false
		for _, place := range task.Places {
			target := &core.Activity{
				Type:  core.ActivityJob,
				Place: place,
				Job:   &core.JobRef{JobID: s.job.ID, TaskIndex: taskIdx},
			}
			actCtx := constraint.ActivityContext{Prev: prev, PrevIndex: idx - 1, Target: target, Next: next, NextIndex: idx}

			if v := s.pipeline.EvaluateHardActivity(s.problem, trial, actCtx); v != nil {
				if v.Stopped {
					stopScanning = true
				}
				continue
			}

			soft := s.pipeline.EstimateSoftActivity(s.problem, trial, actCtx)

			trial.Route.Tour.InsertAt(idx, target)
			s.pipeline.AcceptRouteState(s.problem, trial)
			if rv := s.pipeline.EvaluateHardRoute(s.problem, trial); rv != nil {
				trial.Route.Tour.RemoveJob(s.job.ID, taskIdx)
				s.pipeline.AcceptRouteState(s.problem, trial)
				continue
			}

			s.positions = append(s.positions, idx)
			s.places = append(s.places, place)
			s.cost += soft

			if s.search(trial, taskIdx+1, idx+1) {
				anyFeasible = true
			}

			s.cost -= soft
			s.places = s.places[:len(s.places)-1]
			s.positions = s.positions[:len(s.positions)-1]
			trial.Route.Tour.RemoveJob(s.job.ID, taskIdx)
			s.pipeline.AcceptRouteState(s.problem, trial)
		}
		if stopScanning {
			break
		}
	}
	return anyFeasible
}

// apply commits p to sc: inserts every task's activity at its recorded
// position (positions are in ascending order and were computed against
// a clone with the same starting layout, so replaying them against the
// live RouteContext is safe), reruns AcceptRouteState, and removes job
// from Required.
func apply(problem *core.Problem, pipeline *constraint.Pipeline, sc *solution.SolutionContext, p *placement) {
	rc, err := sc.RouteFor(p.actor)
	if err != nil {
		return
	}
	for i, idx := range p.positions {
		activity := &core.Activity{
			Type:  core.ActivityJob,
			Place: p.places[i],
			Job:   &core.JobRef{JobID: p.job.ID, TaskIndex: i},
		}
		rc.Route.Tour.InsertAt(idx, activity)
	}
	pipeline.AcceptRouteState(problem, rc)
	sc.SetRoute(p.actor, rc)

	remaining := make([]*core.Job, 0, len(sc.Required()))
	for _, j := range sc.Required() {
		if j.ID != p.job.ID {
			remaining = append(remaining, j)
		}
	}
	sc.SetRequired(remaining)
	sc.ClearUnassignedReason(p.job)
}
