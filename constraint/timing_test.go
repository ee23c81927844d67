package constraint_test

import (
	"testing"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/stretchr/testify/require"
)

func TestTimingModule_BackwardPass_LatestArrivalAndWaiting(t *testing.T) {
	problem, actor := buildOpenProblem(t, 1000)
	registry := solution.NewStateRegistry()
	timing, err := constraint.NewTimingModule(registry)
	require.NoError(t, err)

	route := core.NewRoute(actor)
	job := &core.Activity{
		Type:  core.ActivityJob,
		Place: core.Place{Location: 10, Duration: 5, TimeWindow: core.TimeWindow{Start: 50, End: 200}},
		Job:   &core.JobRef{JobID: "j1"},
	}
	route.Tour.InsertAt(1, job)
	rc := solution.NewRouteContext(route)

	timing.AcceptRouteState(problem, rc)

	// arrival = 10 (no traffic), but job's window opens at 50, so the
	// activity waits: actual waiting = 50 - 10 = 40.
	require.Equal(t, 10.0, job.Schedule.Arrival)
	waiting, ok := rc.State(solution.WaitingKey, 1)
	require.True(t, ok)
	require.Equal(t, 40.0, waiting)

	// latest arrival: actor shift ends at 1000, no further activity
	// after this one (open VRP, prevLoc falls back to start location 0),
	// so potential_latest = 1000 - duration(10,0) - activity_duration(5) = 985,
	// bounded by the job's own window end of 200.
	latest, ok := rc.State(solution.LatestArrivalKey, 1)
	require.True(t, ok)
	require.Equal(t, 200.0, latest)
}

func TestTimingModule_AcceptSolutionState_ReschedulesWhenFullyAssigned(t *testing.T) {
	problem, actor := buildOpenProblem(t, 1000)
	registry := solution.NewStateRegistry()
	timing, err := constraint.NewTimingModule(registry)
	require.NoError(t, err)

	route := core.NewRoute(actor)
	job := &core.Activity{
		Type:  core.ActivityJob,
		Place: core.Place{Location: 10, Duration: 5, TimeWindow: core.TimeWindow{Start: 50, End: 200}},
		Job:   &core.JobRef{JobID: "j1"},
	}
	route.Tour.InsertAt(1, job)
	rc := solution.NewRouteContext(route)

	sc := solution.NewSolutionContext(problem)
	sc.SetRoute(actor, rc)
	sc.SetRequired(nil) // everything has been assigned

	timing.AcceptRouteState(problem, rc)
	require.Equal(t, 10.0, job.Schedule.Arrival)

	timing.AcceptSolutionState(problem, sc)
	// the route's departure from the depot is delayed by the full 190
	// units of slack every job activity can tolerate, pushing the
	// vehicle's arrival at the job to the very edge of its window
	// (200) instead of arriving early and waiting there.
	require.Equal(t, 200.0, job.Schedule.Arrival)
	waiting, ok := rc.State(solution.WaitingKey, 1)
	require.True(t, ok)
	require.Equal(t, 0.0, waiting)
}
