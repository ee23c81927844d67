package solution_test

import (
	"testing"

	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/stretchr/testify/require"
)

func newOpenActor(t *testing.T) *core.Actor {
	t.Helper()
	loc := core.Location(0)
	actor, err := core.NewActor(core.Vehicle{ID: "v1"}, core.Driver{ID: "d1"}, &loc, nil, core.TimeWindow{Start: 0, End: 100})
	require.NoError(t, err)
	return actor
}

func TestRouteContext_SetAndGetState(t *testing.T) {
	actor := newOpenActor(t)
	rc := solution.NewRouteContext(core.NewRoute(actor))

	_, ok := rc.State(solution.LatestArrivalKey, 0)
	require.False(t, ok)

	rc.SetState(solution.LatestArrivalKey, 0, 42)
	v, ok := rc.State(solution.LatestArrivalKey, 0)
	require.True(t, ok)
	require.Equal(t, 42.0, v)

	// sparse writes grow the backing slice without disturbing index 0.
	rc.SetState(solution.LatestArrivalKey, 3, 7)
	v, ok = rc.State(solution.LatestArrivalKey, 0)
	require.True(t, ok)
	require.Equal(t, 42.0, v)
}

func TestRouteContext_ResetState(t *testing.T) {
	actor := newOpenActor(t)
	rc := solution.NewRouteContext(core.NewRoute(actor))
	rc.SetState(solution.WaitingKey, 0, 5)

	rc.ResetState(solution.WaitingKey)
	_, ok := rc.State(solution.WaitingKey, 0)
	require.False(t, ok)
}

func TestRouteContext_CloneIsIndependent(t *testing.T) {
	actor := newOpenActor(t)
	rc := solution.NewRouteContext(core.NewRoute(actor))
	rc.SetState(solution.LatestArrivalKey, 0, 10)

	clone := rc.Clone()
	clone.SetState(solution.LatestArrivalKey, 0, 99)

	v, ok := rc.State(solution.LatestArrivalKey, 0)
	require.True(t, ok)
	require.Equal(t, 10.0, v)

	require.NotSame(t, rc.Route, clone.Route)
}
