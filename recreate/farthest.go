package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/samber/lo"
)

// Farthest prioritizes jobs whose cheapest insertion cost is maximal —
// the mirror image of Cheapest's random
// pick: it inserts the hardest-to-place job first, while the most
// routes are still uncluttered, rather than letting it become
// infeasible once easier jobs have claimed the cheap slots.
type Farthest struct{}

// NewFarthest constructs the Farthest strategy.
func NewFarthest() Farthest { return Farthest{} }

// Name implements Strategy.
func (Farthest) Name() string { return "farthest" }

// Run implements Strategy.
func (s Farthest) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	for {
		required := sc.Required()
		if len(required) == 0 {
			return nil
		}

		feasible := lo.Filter(lo.Map(required, func(job *core.Job, _ int) *placement {
			return bestInsertion(problem, pipeline, sc, job, env, identityScore)
		}), func(p *placement, _ int) bool { return p != nil })

		if len(feasible) == 0 {
			for _, job := range required {
				sc.SetUnassignedReason(job, ReasonUnassignable)
			}
			return nil
		}
		worstPlacement := lo.MaxBy(feasible, func(a, b *placement) bool { return a.cost > b.cost })
		apply(problem, pipeline, sc, worstPlacement)
	}
}
