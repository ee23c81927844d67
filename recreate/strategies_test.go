package recreate_test

import (
	"testing"

	"github.com/routeforge/vrpcore/recreate"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/stretchr/testify/require"
)

func TestStrategies_PlaceAllFeasibleJobs(t *testing.T) {
	skipBest, err := recreate.NewSkipBest(0, 1)
	require.NoError(t, err)
	regret, err := recreate.NewRegret(1, 2)
	require.NoError(t, err)

	strategies := []recreate.Strategy{
		recreate.NewCheapest(),
		skipBest,
		regret,
		recreate.NewFarthest(),
		recreate.NewNearestNeighbor(),
		recreate.NewGaps(),
		recreate.NewPerturbation(2),
		recreate.NewBlinks(0.3),
	}

	for _, strategy := range strategies {
		t.Run(strategy.Name(), func(t *testing.T) {
			problem, _ := buildThreeJobProblem(t)
			pipeline := buildDefaultPipeline(t)
			sc := solution.NewSolutionContext(problem)
			env := xrand.NewEnvironment(13)

			require.NoError(t, strategy.Run(problem, pipeline, env, sc))
			require.Empty(t, sc.Required())
			require.Empty(t, sc.UnassignedReasons())
		})
	}
}
