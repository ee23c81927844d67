package refinement_test

import (
	"fmt"
	"testing"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/costs"
	"github.com/routeforge/vrpcore/solution"
	"github.com/stretchr/testify/require"
)

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

// buildProblem mirrors hyperheuristic_test's buildTwoActorProblem: two
// open-VRP actors at either end of a line with six scattered jobs, but
// left fully Required — Engine.Refine itself is what must place them.
func buildProblem(t *testing.T) (*core.Problem, *constraint.Pipeline, *solution.SolutionContext) {
	t.Helper()
	locA, locB := core.Location(0), core.Location(100)
	actorA, err := core.NewActor(
		core.Vehicle{ID: "vA", Costs: core.Costs{PerDistance: 1, PerTime: 1, PerWaitingTime: 1}},
		core.Driver{ID: "dA"}, &locA, nil, core.TimeWindow{Start: 0, End: 1000},
	)
	require.NoError(t, err)
	actorB, err := core.NewActor(
		core.Vehicle{ID: "vB", Costs: core.Costs{PerDistance: 1, PerTime: 1, PerWaitingTime: 1}},
		core.Driver{ID: "dB"}, &locB, nil, core.TimeWindow{Start: 0, End: 1000},
	)
	require.NoError(t, err)

	jobs := make([]*core.Job, 0, 6)
	for i, loc := range []int{5, 10, 15, 85, 90, 95} {
		jobs = append(jobs, &core.Job{
			ID:   fmt.Sprintf("j%d", i+1),
			Kind: core.JobSingle,
			Tasks: []core.Task{{Places: []core.Place{{
				Location:   core.Location(loc),
				Duration:   2,
				TimeWindow: core.TimeWindow{Start: 0, End: 1000},
			}}}},
		})
	}

	problem, err := core.NewProblem(jobs, core.Fleet{Actors: []*core.Actor{actorA, actorB}}, flatTransport{}, flatActivity{}, costs.NewDefaultObjective())
	require.NoError(t, err)

	pipeline, err := constraint.DefaultPipeline(solution.NewStateRegistry())
	require.NoError(t, err)

	sc := solution.NewSolutionContext(problem)
	return problem, pipeline, sc
}
