package mutation_test

import (
	"testing"

	"github.com/routeforge/vrpcore/mutation"
	"github.com/routeforge/vrpcore/recreate"
	"github.com/routeforge/vrpcore/ruin"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/stretchr/testify/require"
)

func TestRuinAndRecreate_PreservesTotalJobCount(t *testing.T) {
	problem, pipeline, sc := buildTwoActorProblem(t)
	env := xrand.NewEnvironment(4)
	before := totalJobCount(sc)

	m := mutation.NewRuinAndRecreate(
		ruin.NewRandomJobRemoval(ruin.JobRemovalLimit{Min: 2, Max: 2, Ratio: 1}),
		recreate.NewCheapest(),
	)
	next := m.Mutate(problem, pipeline, env, sc)

	require.Equal(t, before, totalJobCount(next))
}

func TestExchangeInterRouteRandom_NeverWorsensFitness(t *testing.T) {
	problem, pipeline, sc := buildTwoActorProblem(t)
	env := xrand.NewEnvironment(2)
	before := sc.Evaluate()

	op := mutation.NewExchangeInterRouteRandom()
	candidate, ok := op.Explore(problem, pipeline, env, sc)
	if !ok {
		return
	}
	require.Less(t, candidate.Evaluate()[0], before[0])
}

func TestExchangeIntraRouteRandom_NeverWorsensFitness(t *testing.T) {
	problem, pipeline, sc := buildTwoActorProblem(t)
	env := xrand.NewEnvironment(6)
	before := sc.Evaluate()

	op := mutation.NewExchangeIntraRouteRandom()
	candidate, ok := op.Explore(problem, pipeline, env, sc)
	if !ok {
		return
	}
	require.Less(t, candidate.Evaluate()[0], before[0])
}

func TestCompositeLocalOperator_RejectsAllNonPositiveWeights(t *testing.T) {
	_, err := mutation.NewCompositeLocalOperator([]mutation.WeightedOperator{
		{Operator: mutation.NewExchangeIntraRouteRandom(), Weight: 0},
	}, 1, 3)
	require.ErrorIs(t, err, mutation.ErrEmptyWeights)
}

func TestLocalSearch_ReturnsInputWhenNoImprovementFound(t *testing.T) {
	problem, pipeline, sc := buildTwoActorProblem(t)
	env := xrand.NewEnvironment(1)

	search := mutation.NewLocalSearch(mutation.NewExchangeIntraRouteRandom())
	result := search.Mutate(problem, pipeline, env, sc)
	require.NotNil(t, result)
}

func TestDecomposeSearch_PreservesTotalJobCount(t *testing.T) {
	problem, pipeline, sc := buildTwoActorProblem(t)
	env := xrand.NewEnvironment(8)
	before := totalJobCount(sc)

	inner := mutation.NewRuinAndRecreate(
		ruin.NewRandomJobRemoval(ruin.JobRemovalLimit{Min: 1, Max: 1, Ratio: 1}),
		recreate.NewCheapest(),
	)
	decompose := mutation.NewDecomposeSearch(inner, 1, 2, 2)
	next := decompose.Mutate(problem, pipeline, env, sc)

	require.Equal(t, before, totalJobCount(next))
}
