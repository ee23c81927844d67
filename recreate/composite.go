package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// Weighted pairs a Strategy with its selection weight, the unit
// CompositeRecreate/NewCompositeRecreate samples from.
type Weighted struct {
	Strategy Strategy
	Weight   float64
}

// CompositeRecreate holds a weighted list of strategies and samples one
// per invocation proportional to weight.
type CompositeRecreate struct {
	entries []Weighted
	total   float64
}

// NewCompositeRecreate builds a CompositeRecreate from entries. Entries
// with Weight <= 0 are dropped. Returns ErrEmptyWeights if no
// positive-weight entry remains.
func NewCompositeRecreate(entries ...Weighted) (*CompositeRecreate, error) {
	c := &CompositeRecreate{}
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		c.entries = append(c.entries, e)
		c.total += e.Weight
	}
	if len(c.entries) == 0 {
		return nil, ErrEmptyWeights
	}
	return c, nil
}

// NewDefaultComposite builds the out-of-the-box CompositeRecreate this
// engine ships, reproducing the upstream project's default recreate mix:
// Cheapest dominates the weight, with the remaining strategies providing
// diversification in decreasing order of how disruptive they are to a
// greedy baseline.
func NewDefaultComposite() (*CompositeRecreate, error) {
	skipBest, err := NewSkipBest(1, 3)
	if err != nil {
		return nil, err
	}
	regret, err := NewRegret(2, 4)
	if err != nil {
		return nil, err
	}
	return NewCompositeRecreate(
		Weighted{NewCheapest(), 40},
		Weighted{skipBest, 20},
		Weighted{regret, 20},
		Weighted{NewFarthest(), 5},
		Weighted{NewNearestNeighbor(), 5},
		Weighted{NewGaps(), 5},
		Weighted{NewPerturbation(10), 10},
		Weighted{NewBlinks(0.05), 10},
	)
}

// Name implements Strategy.
func (c *CompositeRecreate) Name() string { return "composite_recreate" }

// Run implements Strategy: samples one sub-strategy proportional to
// weight and delegates to it.
func (c *CompositeRecreate) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	return c.sample(env).Run(problem, pipeline, env, sc)
}

func (c *CompositeRecreate) sample(env *xrand.Environment) Strategy {
	r := env.Float64() * c.total
	acc := 0.0
	for _, e := range c.entries {
		acc += e.Weight
		if r < acc {
			return e.Strategy
		}
	}
	return c.entries[len(c.entries)-1].Strategy
}
