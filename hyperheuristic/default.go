package hyperheuristic

import (
	"github.com/routeforge/vrpcore/mutation"
	"github.com/routeforge/vrpcore/population"
	"github.com/routeforge/vrpcore/recreate"
	"github.com/routeforge/vrpcore/ruin"
)

// NewDefault reproduces static_selective.rs's new_with_defaults: a
// DecomposeSearch wrapping the default RuinAndRecreate at a low,
// context-gated probability, a shared LocalSearch (composite
// Exchange* operators) run both before and after the main
// RuinAndRecreate at a fixed 5% scalar probability, and the main
// RuinAndRecreate itself always applied — the exact operator list and
// weights from the Rust source, per SPEC_FULL.md's SUPPLEMENTED
// FEATURES #3, so the engine is usable out of the box.
func NewDefault() (*StaticSelective, error) {
	defaultMutation, err := newDefaultMutation()
	if err != nil {
		return nil, err
	}

	localOperator, err := mutation.NewCompositeLocalOperator([]mutation.WeightedOperator{
		{Operator: mutation.NewExchangeInterRouteBest(), Weight: 100},
		{Operator: mutation.NewExchangeInterRouteRandom(), Weight: 30},
		{Operator: mutation.NewExchangeIntraRouteRandom(), Weight: 30},
	}, 1, 2)
	if err != nil {
		return nil, err
	}
	localSearch := mutation.NewLocalSearch(localOperator)

	decompose := mutation.NewDecomposeSearch(defaultMutation, 2, 4, 4)

	return NewStaticSelective([]Entry{
		{
			Mutation: decompose,
			Probability: NewContextAwareProbability(300, 10, map[population.SelectionPhase]float64{
				population.Exploration:  0.01,
				population.Exploitation: 0.02,
			}),
		},
		{Mutation: localSearch, Probability: NewScalarProbability(0.05)},
		{Mutation: defaultMutation, Probability: NewScalarProbability(1)},
		{Mutation: localSearch, Probability: NewScalarProbability(0.05)},
	}), nil
}

// newDefaultMutation builds the RuinAndRecreate every other default
// entry wraps or follows: ruin.NewDefaultComposite for tearing jobs
// out, recreate.NewDefaultComposite for placing them back.
func newDefaultMutation() (*mutation.RuinAndRecreate, error) {
	ruinOp, err := ruin.NewDefaultComposite()
	if err != nil {
		return nil, err
	}
	recreateOp, err := recreate.NewDefaultComposite()
	if err != nil {
		return nil, err
	}
	return mutation.NewRuinAndRecreate(ruinOp, recreateOp), nil
}
