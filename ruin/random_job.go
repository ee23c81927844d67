package ruin

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// RandomJobRemoval detaches a uniformly random sample of assigned jobs,
// the simplest baseline ruin operator.
type RandomJobRemoval struct {
	Limit JobRemovalLimit
}

// NewRandomJobRemoval builds a RandomJobRemoval bounded by limit.
func NewRandomJobRemoval(limit JobRemovalLimit) *RandomJobRemoval {
	return &RandomJobRemoval{Limit: limit}
}

func (r *RandomJobRemoval) Name() string { return "random_job_removal" }

func (r *RandomJobRemoval) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	assigned := assignedJobs(problem, sc)
	n := r.Limit.Count(len(assigned), env)
	if n == 0 {
		return nil
	}

	order := env.PermN(len(assigned))
	picked := make([]*core.Job, 0, n)
	for _, idx := range order[:n] {
		picked = append(picked, assigned[idx])
	}
	removeJobs(problem, pipeline, sc, picked)
	return nil
}
