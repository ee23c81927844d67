package solution

import (
	"sync"

	"github.com/routeforge/vrpcore/core"
)

// RouteContext wraps one core.Route with per-activity derived state,
// keyed by StateKey and indexed by the activity's current position in
// the Tour. Index-based rather than pointer-based storage
// means state survives Tour.Clone()'s pointer reallocation without any
// remapping step — the clone's state slices are copied positionally
// alongside the cloned activities.
//
// muState guards state independently of the Tour's own structural
// mutation (insert/remove), mirroring core.Graph's muVert/muEdgeAdj
// split: a reader can inspect cached state while a different part of
// the pipeline is still recomputing it for a later activity.
type RouteContext struct {
	Route *core.Route

	muState sync.RWMutex
	state   map[StateKey][]float64
}

// NewRouteContext wraps route with an empty state cache.
func NewRouteContext(route *core.Route) *RouteContext {
	return &RouteContext{
		Route: route,
		state: make(map[StateKey][]float64),
	}
}

// ensureLen grows (never shrinks) key's backing slice to at least n
// entries, zero-filling new slots. Callers hold muState for writing.
func (rc *RouteContext) ensureLen(key StateKey, n int) {
	s := rc.state[key]
	if len(s) >= n {
		return
	}
	grown := make([]float64, n)
	copy(grown, s)
	rc.state[key] = grown
}

// SetState records value for key at the activity currently at tour
// index idx.
func (rc *RouteContext) SetState(key StateKey, idx int, value float64) {
	rc.muState.Lock()
	defer rc.muState.Unlock()
	rc.ensureLen(key, idx+1)
	rc.state[key][idx] = value
}

// State reads the value cached for key at tour index idx. ok is false
// if nothing has been recorded for that key/index pair yet.
func (rc *RouteContext) State(key StateKey, idx int) (value float64, ok bool) {
	rc.muState.RLock()
	defer rc.muState.RUnlock()
	s, has := rc.state[key]
	if !has || idx < 0 || idx >= len(s) {
		return 0, false
	}
	return s[idx], true
}

// ResetState discards every cached value for key, forcing the next
// AcceptRouteState pass to recompute it from scratch. Used when a
// structural mutation (insert/remove) invalidates previously-derived
// state for an entire route.
func (rc *RouteContext) ResetState(key StateKey) {
	rc.muState.Lock()
	defer rc.muState.Unlock()
	delete(rc.state, key)
}

// Clone returns a RouteContext with a deep-copied Route and a
// deep-copied state cache, safe to hand to a different goroutine.
func (rc *RouteContext) Clone() *RouteContext {
	rc.muState.RLock()
	defer rc.muState.RUnlock()

	cloned := &RouteContext{
		Route: rc.Route.Clone(),
		state: make(map[StateKey][]float64, len(rc.state)),
	}
	for k, v := range rc.state {
		cp := make([]float64, len(v))
		copy(cp, v)
		cloned.state[k] = cp
	}
	return cloned
}
