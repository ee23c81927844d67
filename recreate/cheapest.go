package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// Cheapest is the baseline insertion strategy: pick any unassigned job
// and insert it at its globally cheapest feasible position. Job
// selection order is randomized (via env) rather than input order, so
// repeated Cheapest passes within one CompositeRecreate don't always
// favor the same jobs when several are tied on feasibility.
type Cheapest struct{}

// NewCheapest constructs the Cheapest strategy.
func NewCheapest() Cheapest { return Cheapest{} }

// Name implements Strategy.
func (Cheapest) Name() string { return "cheapest" }

// Run implements Strategy.
func (s Cheapest) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	runUntilExhausted(problem, pipeline, sc,
		func(candidates []*core.Job) *core.Job {
			return candidates[env.Intn(len(candidates))]
		},
		func(job *core.Job) *placement {
			return bestInsertion(problem, pipeline, sc, job, env, identityScore)
		},
	)
	return nil
}
