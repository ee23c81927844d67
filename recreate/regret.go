package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// Regret picks the job with the largest difference between its best
// and k-th best insertion cost. A job
// whose cheapest route is much better than its k-th cheapest is at risk
// of becoming infeasible later if that best route fills up first, so it
// jumps the queue. k is drawn uniformly from [k1,k2] per invocation.
type Regret struct {
	k1, k2 int
}

// NewRegret constructs Regret with k drawn uniformly from [k1,k2].
// Returns ErrInvalidRange if k1 < 1 or k1 > k2.
func NewRegret(k1, k2 int) (*Regret, error) {
	if k1 < 1 || k1 > k2 {
		return nil, ErrInvalidRange
	}
	return &Regret{k1: k1, k2: k2}, nil
}

// Name implements Strategy.
func (r *Regret) Name() string { return "regret" }

// Run implements Strategy.
func (r *Regret) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	for {
		required := sc.Required()
		if len(required) == 0 {
			return nil
		}

		k := r.k1
		if r.k2 > r.k1 {
			k = r.k1 + env.Intn(r.k2-r.k1+1)
		}

		var bestJob *core.Job
		var bestPlacement *placement
		bestRegret := -1.0

		for _, job := range required {
			ranked := rankedInsertions(problem, pipeline, sc, job)
			if len(ranked) == 0 {
				continue
			}
			kth := ranked[len(ranked)-1]
			if k-1 < len(ranked) {
				kth = ranked[k-1]
			}
			regretValue := kth.cost - ranked[0].cost
			if regretValue > bestRegret {
				bestRegret = regretValue
				bestJob = job
				bestPlacement = ranked[0]
			}
		}

		if bestJob == nil {
			for _, job := range required {
				sc.SetUnassignedReason(job, ReasonUnassignable)
			}
			return nil
		}
		apply(problem, pipeline, sc, bestPlacement)
		// Permanently-infeasible jobs (no ranked insertion at all) are
		// left untouched in Required for a later pass, same as every
		// other strategy in this package; mark their reason so callers
		// inspecting SolutionContext mid-loop see why.
		for _, job := range required {
			if job.ID == bestJob.ID {
				continue
			}
			if len(rankedInsertions(problem, pipeline, sc, job)) == 0 {
				sc.SetUnassignedReason(job, ReasonUnassignable)
			}
		}
	}
}
