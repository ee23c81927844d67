package recreate_test

import (
	"testing"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/stretchr/testify/require"
)

// flatTransport places every location on a single line: duration ==
// distance, 1 unit of distance per 1 unit of time, mirroring
// constraint package's own test fixtures so the numbers in spec §8's
// scenario 1 remain hand-checkable here too.
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

// buildThreeJobProblem reproduces spec §8 scenario 1: a single open-VRP
// actor shift [0,100], three jobs at locations 1,2,3 with windows
// [10,20],[30,40],[50,60], all durations 5.
func buildThreeJobProblem(t *testing.T) (*core.Problem, *core.Actor) {
	t.Helper()
	loc := core.Location(0)
	actor, err := core.NewActor(
		core.Vehicle{ID: "v1", Costs: core.Costs{PerDistance: 1, PerTime: 1, PerWaitingTime: 1}},
		core.Driver{ID: "d1"}, &loc, nil, core.TimeWindow{Start: 0, End: 100},
	)
	require.NoError(t, err)

	jobs := []*core.Job{
		{ID: "j1", Kind: core.JobSingle, Tasks: []core.Task{{Places: []core.Place{{Location: 1, Duration: 5, TimeWindow: core.TimeWindow{Start: 10, End: 20}}}}}},
		{ID: "j2", Kind: core.JobSingle, Tasks: []core.Task{{Places: []core.Place{{Location: 2, Duration: 5, TimeWindow: core.TimeWindow{Start: 30, End: 40}}}}}},
		{ID: "j3", Kind: core.JobSingle, Tasks: []core.Task{{Places: []core.Place{{Location: 3, Duration: 5, TimeWindow: core.TimeWindow{Start: 50, End: 60}}}}}},
	}

	problem, err := core.NewProblem(jobs, core.Fleet{Actors: []*core.Actor{actor}}, flatTransport{}, flatActivity{}, flatObjective{})
	require.NoError(t, err)
	return problem, actor
}

func buildDefaultPipeline(t *testing.T) *constraint.Pipeline {
	t.Helper()
	pipeline, err := constraint.DefaultPipeline(solution.NewStateRegistry())
	require.NoError(t, err)
	return pipeline
}
