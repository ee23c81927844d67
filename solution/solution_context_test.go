package solution_test

import (
	"testing"

	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/stretchr/testify/require"
)

type constTransport struct{ dist, dur float64 }

func (c constTransport) Duration(core.VehicleProfile, core.Location, core.Location, float64) float64 {
	return c.dur
}
func (c constTransport) Distance(core.VehicleProfile, core.Location, core.Location, float64) float64 {
	return c.dist
}
func (c constTransport) Cost(*core.Vehicle, *core.Driver, core.Location, core.Location, float64) float64 {
	return c.dist
}

type zeroActivity struct{}

func (zeroActivity) Duration(*core.Vehicle, *core.Driver, *core.Activity, float64) float64 { return 0 }
func (zeroActivity) Cost(*core.Vehicle, *core.Driver, *core.Activity, float64) float64     { return 0 }

type sumObjective struct{}

func (sumObjective) Fitness(routeCosts []float64, unassigned int) core.Fitness {
	total := float64(unassigned) * 1000
	for _, c := range routeCosts {
		total += c
	}
	return core.Fitness{total}
}
func (sumObjective) Compare(a, b core.Fitness) int {
	switch {
	case a[0] < b[0]:
		return -1
	case a[0] > b[0]:
		return 1
	default:
		return 0
	}
}

func buildTestProblem(t *testing.T) *core.Problem {
	t.Helper()
	loc := core.Location(0)
	actor, err := core.NewActor(core.Vehicle{ID: "v1"}, core.Driver{ID: "d1"}, &loc, nil, core.TimeWindow{Start: 0, End: 500})
	require.NoError(t, err)

	job := core.Job{
		ID:   "j1",
		Kind: core.JobSingle,
		Tasks: []core.Task{
			{Places: []core.Place{{Location: 1}}},
		},
	}

	p, err := core.NewProblem(
		[]*core.Job{&job},
		core.Fleet{Actors: []*core.Actor{actor}},
		constTransport{dist: 10, dur: 5},
		zeroActivity{},
		sumObjective{},
	)
	require.NoError(t, err)
	return p
}

func TestNewSolutionContext_StartsFullyUnassigned(t *testing.T) {
	problem := buildTestProblem(t)
	sc := solution.NewSolutionContext(problem)

	require.Len(t, sc.Required(), 1)
	require.Len(t, sc.Routes(), 1)
	require.False(t, sc.HasJobs())
}

func TestSolutionContext_RouteForUnknownActor(t *testing.T) {
	problem := buildTestProblem(t)
	sc := solution.NewSolutionContext(problem)

	loc := core.Location(9)
	stranger, err := core.NewActor(core.Vehicle{}, core.Driver{}, &loc, nil, core.TimeWindow{Start: 0, End: 10})
	require.NoError(t, err)

	_, err = sc.RouteFor(stranger)
	require.ErrorIs(t, err, solution.ErrUnknownRoute)
}

func TestSolutionContext_IgnoreMovesJob(t *testing.T) {
	problem := buildTestProblem(t)
	sc := solution.NewSolutionContext(problem)

	job := sc.Required()[0]
	sc.Ignore(job)

	require.Empty(t, sc.Required())
	require.Len(t, sc.Ignored(), 1)
}

func TestSolutionContext_Evaluate(t *testing.T) {
	problem := buildTestProblem(t)
	sc := solution.NewSolutionContext(problem)

	// one route, empty tour (just start terminal for open VRP) -> 0 cost,
	// one required job -> unassigned penalty of 1000.
	fitness := sc.Evaluate()
	require.Equal(t, core.Fitness{1000}, fitness)
}

func TestSolutionContext_CloneIsIndependent(t *testing.T) {
	problem := buildTestProblem(t)
	sc := solution.NewSolutionContext(problem)

	clone := sc.Clone()
	clone.Ignore(clone.Required()[0])

	require.Len(t, sc.Required(), 1)
	require.Empty(t, sc.Ignored())
}

func TestSolutionContext_UnassignedReasons(t *testing.T) {
	problem := buildTestProblem(t)
	sc := solution.NewSolutionContext(problem)
	job := sc.Required()[0]

	sc.SetUnassignedReason(job, "timing.latest_arrival")
	require.Equal(t, map[string]string{"j1": "timing.latest_arrival"}, sc.UnassignedReasons())

	sc.ClearUnassignedReason(job)
	require.Empty(t, sc.UnassignedReasons())
}

func TestSolutionContext_CloneCopiesUnassignedReasons(t *testing.T) {
	problem := buildTestProblem(t)
	sc := solution.NewSolutionContext(problem)
	sc.SetUnassignedReason(sc.Required()[0], "timing.latest_arrival")

	clone := sc.Clone()
	clone.ClearUnassignedReason(clone.Required()[0])

	require.Len(t, sc.UnassignedReasons(), 1)
	require.Empty(t, clone.UnassignedReasons())
}

func TestNewPartialSolutionContext_RestrictsToGivenRoutes(t *testing.T) {
	problem := buildTestProblem(t)
	full := solution.NewSolutionContext(problem)
	actor := problem.Fleet.Actors[0]
	rc, err := full.RouteFor(actor)
	require.NoError(t, err)

	partial := solution.NewPartialSolutionContext(problem,
		map[*core.Actor]*solution.RouteContext{actor: rc},
		full.Required(),
	)

	require.Len(t, partial.Routes(), 1)
	require.Len(t, partial.Required(), 1)
}
