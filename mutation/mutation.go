package mutation

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// Mutation is the top-level operator hyperheuristic.StaticSelective
// chains: given a solution, produce a candidate solution. Mutate must
// never modify sc in place — the early-exit rule compares the
// candidate against the *original* individual, so callers need both the
// input and the output available simultaneously.
type Mutation interface {
	Name() string
	Mutate(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) *solution.SolutionContext
}
