package refinement_test

import (
	"testing"
	"time"

	"github.com/routeforge/vrpcore/hyperheuristic"
	"github.com/routeforge/vrpcore/mutation"
	"github.com/routeforge/vrpcore/recreate"
	"github.com/routeforge/vrpcore/refinement"
	"github.com/routeforge/vrpcore/ruin"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/stretchr/testify/require"
)

func newTestHyperHeuristic(t *testing.T) hyperheuristic.HyperHeuristic {
	t.Helper()
	entry := hyperheuristic.Entry{
		Mutation: mutation.NewRuinAndRecreate(
			ruin.NewRandomJobRemoval(ruin.JobRemovalLimit{Min: 1, Max: 2, Ratio: 1}),
			recreate.NewCheapest(),
		),
		Probability: hyperheuristic.NewScalarProbability(1),
	}
	return hyperheuristic.NewStaticSelective([]hyperheuristic.Entry{entry})
}

func TestNew_RequiresHyperHeuristic(t *testing.T) {
	problem, pipeline, _ := buildProblem(t)
	_, err := refinement.New(problem, pipeline)
	require.ErrorIs(t, err, refinement.ErrNoHyperHeuristic)
}

func TestRefine_RequiresInitialSolutions(t *testing.T) {
	problem, pipeline, _ := buildProblem(t)
	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(newTestHyperHeuristic(t)))
	require.NoError(t, err)

	_, err = engine.Refine(nil, xrand.NewEnvironment(1), refinement.MaxGenerations(1))
	require.ErrorIs(t, err, refinement.ErrNoInitialSolutions)
}

func TestRefine_RequiresTermination(t *testing.T) {
	problem, pipeline, sc := buildProblem(t)
	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(newTestHyperHeuristic(t)))
	require.NoError(t, err)

	_, err = engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(1), nil)
	require.ErrorIs(t, err, refinement.ErrNoTermination)
}

func TestRefine_StopsExactlyAtMaxGenerations(t *testing.T) {
	problem, pipeline, sc := buildProblem(t)
	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(newTestHyperHeuristic(t)))
	require.NoError(t, err)

	result, err := engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(5), refinement.MaxGenerations(3))
	require.NoError(t, err)
	require.Equal(t, 3, result.Generations)
	require.NotNil(t, result.Best)
}

func TestRefine_ZeroMaxGenerationsRunsNone(t *testing.T) {
	problem, pipeline, sc := buildProblem(t)
	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(newTestHyperHeuristic(t)))
	require.NoError(t, err)

	result, err := engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(5), refinement.MaxGenerations(0))
	require.NoError(t, err)
	require.Equal(t, 0, result.Generations)
	// The seed individual is still retained even with zero generations run.
	require.NotNil(t, result.Best)
}

func TestRefine_PreservesJobCountAcrossGenerations(t *testing.T) {
	problem, pipeline, sc := buildProblem(t)
	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(newTestHyperHeuristic(t)))
	require.NoError(t, err)

	result, err := engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(42), refinement.MaxGenerations(5))
	require.NoError(t, err)

	assignedCount := 0
	for _, rc := range result.Best.Routes() {
		assignedCount += rc.Route.Tour.JobActivityCount()
	}
	require.Equal(t, len(problem.Jobs), assignedCount+len(result.Best.Required()))
}

func TestRefine_TimeLimitStopsLoop(t *testing.T) {
	problem, pipeline, sc := buildProblem(t)
	engine, err := refinement.New(problem, pipeline,
		refinement.WithHyperHeuristic(newTestHyperHeuristic(t)),
		refinement.WithDeadlineCheckInterval(1),
	)
	require.NoError(t, err)

	result, err := engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(1), refinement.TimeLimit(time.Nanosecond))
	require.NoError(t, err)
	require.Equal(t, 0, result.Generations)
}

func TestRefine_UnreachableQualityThresholdFallsBackToMaxGenerations(t *testing.T) {
	problem, pipeline, sc := buildProblem(t)
	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(newTestHyperHeuristic(t)))
	require.NoError(t, err)

	// An unreachable best fitness (deeply negative) never triggers; used
	// here only to prove QualityThreshold alone gates nothing until Best
	// is at least that good, i.e. the loop still runs its full budget.
	unreachable := append(problem.Objective.Fitness(nil, 0)[:0:0], -1e18)
	term := refinement.Any(refinement.QualityThreshold(problem.Objective, unreachable), refinement.MaxGenerations(2))

	result, err := engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(1), term)
	require.NoError(t, err)
	require.Equal(t, 2, result.Generations)
}

func TestRefine_DefaultHyperHeuristicRunsWithoutError(t *testing.T) {
	problem, pipeline, sc := buildProblem(t)
	hh, err := hyperheuristic.NewDefault()
	require.NoError(t, err)

	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(hh))
	require.NoError(t, err)

	result, err := engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(9), refinement.MaxGenerations(2))
	require.NoError(t, err)
	require.Equal(t, 2, result.Generations)
	require.NotNil(t, result.Best)
}

func TestRefine_TerminationStatusElapsedGrows(t *testing.T) {
	var elapsedSamples []time.Duration
	problem, pipeline, sc := buildProblem(t)
	engine, err := refinement.New(problem, pipeline, refinement.WithHyperHeuristic(newTestHyperHeuristic(t)))
	require.NoError(t, err)

	term := refinement.Termination(func(s refinement.Status) bool {
		elapsedSamples = append(elapsedSamples, s.Elapsed)
		return s.Generation >= 4
	})
	_, err = engine.Refine([]*solution.SolutionContext{sc}, xrand.NewEnvironment(2), term)
	require.NoError(t, err)
	require.Len(t, elapsedSamples, 5)
	for i := 1; i < len(elapsedSamples); i++ {
		require.GreaterOrEqual(t, elapsedSamples[i], elapsedSamples[i-1])
	}
}
