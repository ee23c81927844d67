package ruin_test

import (
	"fmt"
	"testing"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/recreate"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/stretchr/testify/require"
)

// flatTransport places every location on a single line: duration ==
// distance, mirroring recreate/constraint's own fixtures.
type flatTransport struct{}

func (flatTransport) Duration(_ core.VehicleProfile, from, to core.Location, _ float64) float64 {
	return dist(from, to)
}
func (flatTransport) Distance(_ core.VehicleProfile, from, to core.Location, _ float64) float64 {
	return dist(from, to)
}
func (flatTransport) Cost(vehicle *core.Vehicle, _ *core.Driver, from, to core.Location, _ float64) float64 {
	return dist(from, to) * vehicle.Costs.PerDistance
}

func dist(from, to core.Location) float64 {
	d := float64(to - from)
	if d < 0 {
		d = -d
	}
	return d
}

type flatActivity struct{}

func (flatActivity) Duration(_ *core.Vehicle, _ *core.Driver, act *core.Activity, _ float64) float64 {
	if act.IsTerminal() {
		return 0
	}
	return act.Place.Duration
}
func (flatActivity) Cost(vehicle *core.Vehicle, _ *core.Driver, act *core.Activity, _ float64) float64 {
	if act.IsTerminal() {
		return 0
	}
	return act.Place.Duration * vehicle.Costs.PerTime
}

type flatObjective struct{}

func (flatObjective) Fitness(routeCosts []float64, unassigned int) core.Fitness {
	total := float64(unassigned) * 1e6
	for _, c := range routeCosts {
		total += c
	}
	return core.Fitness{total}
}
func (flatObjective) Compare(a, b core.Fitness) int {
	switch {
	case a[0] < b[0]:
		return -1
	case a[0] > b[0]:
		return 1
	default:
		return 0
	}
}

// buildAssignedProblem builds a single open-VRP actor with five jobs
// spaced ten units apart and fully assigns them via recreate.Cheapest, so
// ruin operator tests start from a solution with real structure to tear
// apart rather than an empty one.
func buildAssignedProblem(t *testing.T) (*core.Problem, *core.Actor, *constraint.Pipeline, *solution.SolutionContext) {
	t.Helper()
	loc := core.Location(0)
	actor, err := core.NewActor(
		core.Vehicle{ID: "v1", Costs: core.Costs{PerDistance: 1, PerTime: 1, PerWaitingTime: 1}},
		core.Driver{ID: "d1"}, &loc, nil, core.TimeWindow{Start: 0, End: 1000},
	)
	require.NoError(t, err)

	jobs := make([]*core.Job, 0, 5)
	for i := 1; i <= 5; i++ {
		start := float64(i * 20)
		jobs = append(jobs, &core.Job{
			ID:   fmt.Sprintf("j%d", i),
			Kind: core.JobSingle,
			Tasks: []core.Task{{Places: []core.Place{{
				Location:   core.Location(i * 10),
				Duration:   5,
				TimeWindow: core.TimeWindow{Start: start, End: start + 50},
			}}}},
		})
	}

	problem, err := core.NewProblem(jobs, core.Fleet{Actors: []*core.Actor{actor}}, flatTransport{}, flatActivity{}, flatObjective{})
	require.NoError(t, err)

	pipeline, err := constraint.DefaultPipeline(solution.NewStateRegistry())
	require.NoError(t, err)

	sc := solution.NewSolutionContext(problem)
	env := xrand.NewEnvironment(1)
	require.NoError(t, recreate.NewCheapest().Run(problem, pipeline, env, sc))
	require.Empty(t, sc.Required())

	return problem, actor, pipeline, sc
}
