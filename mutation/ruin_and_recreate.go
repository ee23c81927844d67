package mutation

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/recreate"
	"github.com/routeforge/vrpcore/ruin"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// RuinAndRecreate is the canonical ruin/recreate mutation: deep-copy the
// context, ruin it, then recreate it. Either step failing (a
// configuration fault surfacing mid-search, which should never happen
// against a validated Problem) discards the clone and returns the
// original context unchanged; RuinAndRecreate
// never panics or returns an error itself, matching the Mutation contract.
type RuinAndRecreate struct {
	Ruin     ruin.Operator
	Recreate recreate.Strategy
}

// NewRuinAndRecreate pairs a ruin operator with a recreate strategy.
func NewRuinAndRecreate(r ruin.Operator, rc recreate.Strategy) *RuinAndRecreate {
	return &RuinAndRecreate{Ruin: r, Recreate: rc}
}

func (m *RuinAndRecreate) Name() string { return "ruin_and_recreate:" + m.Ruin.Name() + "+" + m.Recreate.Name() }

func (m *RuinAndRecreate) Mutate(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) *solution.SolutionContext {
	next := sc.Clone()
	if err := m.Ruin.Run(problem, pipeline, env, next); err != nil {
		return sc
	}
	if err := m.Recreate.Run(problem, pipeline, env, next); err != nil {
		return sc
	}
	return next
}
