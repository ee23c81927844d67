package mutation

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// WeightedOperator pairs a LocalOperator with its roulette-wheel weight.
type WeightedOperator struct {
	Operator LocalOperator
	Weight   float64
}

// CompositeLocalOperator samples a weighted LocalOperator between
// MinProbes and MaxProbes times per Explore call, stopping the instant
// one probe improves.
type CompositeLocalOperator struct {
	operators []WeightedOperator
	total     float64
	minProbes int
	maxProbes int
}

// NewCompositeLocalOperator validates and builds a CompositeLocalOperator.
func NewCompositeLocalOperator(operators []WeightedOperator, minProbes, maxProbes int) (*CompositeLocalOperator, error) {
	total := 0.0
	for _, o := range operators {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total <= 0 {
		return nil, ErrEmptyWeights
	}
	if minProbes < 1 {
		minProbes = 1
	}
	if maxProbes < minProbes {
		maxProbes = minProbes
	}
	return &CompositeLocalOperator{operators: operators, total: total, minProbes: minProbes, maxProbes: maxProbes}, nil
}

func (c *CompositeLocalOperator) Name() string { return "composite_local_operator" }

func (c *CompositeLocalOperator) Explore(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) (*solution.SolutionContext, bool) {
	probes := c.minProbes
	if c.maxProbes > c.minProbes {
		probes = c.minProbes + env.Intn(c.maxProbes-c.minProbes+1)
	}

	for i := 0; i < probes; i++ {
		op := c.sample(env)
		if candidate, ok := op.Explore(problem, pipeline, env, sc); ok {
			return candidate, true
		}
	}
	return nil, false
}

func (c *CompositeLocalOperator) sample(env *xrand.Environment) LocalOperator {
	roll := env.Float64() * c.total
	acc := 0.0
	for _, o := range c.operators {
		if o.Weight <= 0 {
			continue
		}
		acc += o.Weight
		if roll < acc {
			return o.Operator
		}
	}
	return c.operators[len(c.operators)-1].Operator
}

// LocalSearch wraps a single LocalOperator as a Mutation: explore for an
// improvement, or hand back the input unchanged.
type LocalSearch struct {
	Operator LocalOperator
}

// NewLocalSearch wraps operator as a Mutation.
func NewLocalSearch(operator LocalOperator) *LocalSearch {
	return &LocalSearch{Operator: operator}
}

func (l *LocalSearch) Name() string { return "local_search:" + l.Operator.Name() }

func (l *LocalSearch) Mutate(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) *solution.SolutionContext {
	if candidate, ok := l.Operator.Explore(problem, pipeline, env, sc); ok {
		return candidate
	}
	return sc
}
