package ruin

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// SubOperator pairs an Operator with the probability it runs once its
// group has been chosen.
type SubOperator struct {
	Operator    Operator
	Probability float64
}

// Group is a weighted bundle of sub-operators. CompositeRuin first picks
// one Group by weight, then runs every SubOperator in it whose coin flip
// (env.IsHit(Probability)) hits, in order.
type Group struct {
	SubOperators []SubOperator
	Weight       float64
}

// CompositeRuin is the top-level ruin operator: a weighted
// choice of operator groups, mirroring recreate.CompositeRecreate's
// roulette-wheel selection but operating over groups of operators instead
// of single strategies.
type CompositeRuin struct {
	groups []Group
	total  float64
}

// NewCompositeRuin validates and builds a CompositeRuin. Every group must
// carry at least one sub-operator, and at least one group a positive
// weight; groups with weight <= 0 are never sampled.
func NewCompositeRuin(groups ...Group) (*CompositeRuin, error) {
	if len(groups) == 0 {
		return nil, ErrEmptyGroups
	}
	total := 0.0
	for _, g := range groups {
		if len(g.SubOperators) == 0 {
			return nil, ErrEmptyOperators
		}
		if g.Weight > 0 {
			total += g.Weight
		}
	}
	if total <= 0 {
		return nil, ErrEmptyGroups
	}
	return &CompositeRuin{groups: groups, total: total}, nil
}

func (c *CompositeRuin) Name() string { return "composite_ruin" }

func (c *CompositeRuin) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	group := c.sampleGroup(env)
	for _, sub := range group.SubOperators {
		if !env.IsHit(sub.Probability) {
			continue
		}
		if err := sub.Operator.Run(problem, pipeline, env, sc); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeRuin) sampleGroup(env *xrand.Environment) Group {
	roll := env.Float64() * c.total
	acc := 0.0
	for _, g := range c.groups {
		if g.Weight <= 0 {
			continue
		}
		acc += g.Weight
		if roll < acc {
			return g
		}
	}
	return c.groups[len(c.groups)-1]
}

// NewDefaultComposite wires five of the package's operators (all but
// ClusterRemoval) into two groups: a
// "light" group of cheap, general-purpose removals and a "focused" group
// of cost/location-aware removals, giving the refinement loop both broad
// exploration and targeted repair pressure in one operator.
func NewDefaultComposite() (*CompositeRuin, error) {
	limit := DefaultJobRemovalLimit()
	return NewCompositeRuin(
		Group{
			Weight: 0.5,
			SubOperators: []SubOperator{
				{Operator: NewRandomJobRemoval(limit), Probability: 1},
				{Operator: NewRandomRouteRemoval(), Probability: 0.2},
			},
		},
		Group{
			Weight: 0.5,
			SubOperators: []SubOperator{
				{Operator: NewWorstJobRemoval(limit), Probability: 0.6},
				{Operator: NewNeighbourRemoval(limit), Probability: 0.6},
				{Operator: NewAdjustedStringRemoval(limit, 2), Probability: 0.4},
			},
		},
	)
}
