package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// Blinks, with small probability, "blinks" and skips the current best,
// forcing exploration: each time a job is
// placed, a biased coin (env.IsHit(p)) decides whether to take the
// cheapest feasible position or the next-cheapest instead.
type Blinks struct {
	probability float64
}

// NewBlinks constructs Blinks with p as the blink probability, clamped
// to [0,1] by xrand.Environment.IsHit.
func NewBlinks(p float64) Blinks {
	return Blinks{probability: p}
}

// Name implements Strategy.
func (Blinks) Name() string { return "blinks" }

// Run implements Strategy.
func (s Blinks) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	runUntilExhausted(problem, pipeline, sc,
		func(candidates []*core.Job) *core.Job {
			return candidates[env.Intn(len(candidates))]
		},
		func(job *core.Job) *placement {
			ranked := rankedInsertions(problem, pipeline, sc, job)
			if len(ranked) == 0 {
				return nil
			}
			if len(ranked) > 1 && env.IsHit(s.probability) {
				return ranked[1]
			}
			return ranked[0]
		},
	)
	return nil
}
