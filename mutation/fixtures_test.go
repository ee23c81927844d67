package mutation_test

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

// buildTwoActorProblem builds two open-VRP actors, one parked at
// location 0 and one at location 100, each with a wide shift window, and
// six jobs scattered along the line. recreate.Cheapest assigns all six
// across both actors, giving Exchange*/DecomposeSearch real cross-route
// structure to operate on.
func buildTwoActorProblem(t *testing.T) (*core.Problem, *constraint.Pipeline, *solution.SolutionContext) {
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

	problem, err := core.NewProblem(jobs, core.Fleet{Actors: []*core.Actor{actorA, actorB}}, flatTransport{}, flatActivity{}, flatObjective{})
	require.NoError(t, err)

	pipeline, err := constraint.DefaultPipeline(solution.NewStateRegistry())
	require.NoError(t, err)

	sc := solution.NewSolutionContext(problem)
	env := xrand.NewEnvironment(11)
	require.NoError(t, recreate.NewCheapest().Run(problem, pipeline, env, sc))
	require.Empty(t, sc.Required())

	return problem, pipeline, sc
}

// totalJobCount returns len(sc.Required()) plus every distinct job ID
// currently assigned across all routes — the invariant spec §8's
// scenario 4 checks after any ruin+recreate chain.
func totalJobCount(sc *solution.SolutionContext) int {
	seen := make(map[string]bool)
	for _, rc := range sc.Routes() {
		for _, a := range rc.Route.Tour.Activities() {
			if a.Job != nil {
				seen[a.Job.JobID] = true
			}
		}
	}
	for _, j := range sc.Required() {
		seen[j.ID] = true
	}
	return len(seen)
}
