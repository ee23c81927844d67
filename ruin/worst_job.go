package ruin

import (
	"sort"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// WorstJobRemoval removes the jobs contributing the most transport cost
// per unit of demand — whatever is costing the most to
// keep. Demand is the sum of every task's Pickup+Delivery; jobs
// with zero demand are scored on raw cost alone.
type WorstJobRemoval struct {
	Limit JobRemovalLimit
}

// NewWorstJobRemoval builds a WorstJobRemoval bounded by limit.
func NewWorstJobRemoval(limit JobRemovalLimit) *WorstJobRemoval {
	return &WorstJobRemoval{Limit: limit}
}

func (w *WorstJobRemoval) Name() string { return "worst_job_removal" }

type scoredJob struct {
	job   *core.Job
	score float64
}

func (w *WorstJobRemoval) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	assigned := assignedJobs(problem, sc)
	n := w.Limit.Count(len(assigned), env)
	if n == 0 {
		return nil
	}

	scored := make([]scoredJob, 0, len(assigned))
	for _, job := range assigned {
		scored = append(scored, scoredJob{job: job, score: removalGain(problem, sc, job)})
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if n > len(scored) {
		n = len(scored)
	}
	picked := make([]*core.Job, 0, n)
	for _, s := range scored[:n] {
		picked = append(picked, s.job)
	}
	removeJobs(problem, pipeline, sc, picked)
	return nil
}

// removalGain estimates how much transport cost job's presence adds to
// its current route: the sum, over every task activity it occupies, of
// (cost(prev,target) + cost(target,next) - cost(prev,next)), or just
// cost(prev,target) for an activity that ends an open route, divided by
// the job's total demand (or left as raw cost if demand is zero).
func removalGain(problem *core.Problem, sc *solution.SolutionContext, job *core.Job) float64 {
	demand := 0
	for _, task := range job.Tasks {
		demand += task.Demand.Pickup + task.Demand.Delivery
	}

	gain := 0.0
	for _, rc := range sc.Routes() {
		activities := rc.Route.Tour.Activities()
		actor := rc.Route.Actor
		for i, a := range activities {
			if a.Job == nil || a.Job.JobID != job.ID {
				continue
			}
			if i == 0 {
				continue
			}
			prev := activities[i-1]
			in := problem.Transport.Cost(&actor.Vehicle, &actor.Driver, prev.Place.Location, a.Place.Location, prev.Schedule.Departure)
			if i == len(activities)-1 {
				gain += in
				continue
			}
			next := activities[i+1]
			out := problem.Transport.Cost(&actor.Vehicle, &actor.Driver, a.Place.Location, next.Place.Location, a.Schedule.Departure)
			direct := problem.Transport.Cost(&actor.Vehicle, &actor.Driver, prev.Place.Location, next.Place.Location, prev.Schedule.Departure)
			gain += in + out - direct
		}
	}

	if demand > 0 {
		return gain / float64(demand)
	}
	return gain
}
