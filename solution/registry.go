package solution

import "sync"

// StateKey identifies one kind of per-activity derived value cached on
// a RouteContext. The timing module (constraint/timing.go)
// uses two fixed keys that mirror the original's
// LATEST_ARRIVAL_KEY/WAITING_KEY constants exactly, so other
// constraint modules built later don't collide with them by accident.
type StateKey int

const (
	// LatestArrivalKey caches the latest time an activity can be
	// arrived at without violating any downstream time window.
	LatestArrivalKey StateKey = 1
	// WaitingKey caches accumulated future waiting time from an
	// activity to the end of its route.
	WaitingKey StateKey = 2
)

// StateRegistry assigns StateKeys to named constraint-module state and
// rejects collisions at pipeline-build time, never at
// refinement time. Two modules may request the same explicit key only
// if they agree on the name — this lets built-in modules (timing) keep
// the original's fixed key values while still participating in
// collision detection for modules added later.
type StateRegistry struct {
	mu     sync.RWMutex
	byName map[string]StateKey
	byKey  map[StateKey]string
	next   StateKey
}

// NewStateRegistry creates an empty registry seeded so that the next
// auto-assigned key starts above the fixed timing-module keys.
func NewStateRegistry() *StateRegistry {
	return &StateRegistry{
		byName: make(map[string]StateKey),
		byKey:  make(map[StateKey]string),
		next:   WaitingKey + 1,
	}
}

// Register allocates a new StateKey for name, or returns the
// already-allocated key if name was registered before. Idempotent by
// design: constraint.Pipeline construction may run module setup more
// than once (e.g. rebuilding a pipeline with an added module) without
// producing a different key for state already in use.
func (r *StateRegistry) Register(name string) StateKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key, ok := r.byName[name]; ok {
		return key
	}
	key := r.next
	r.next++
	r.byName[name] = key
	r.byKey[key] = name
	return key
}

// RegisterExplicit claims a fixed key value for name, returning
// ErrStateKeyCollision if that key is already claimed under a
// different name.
func (r *StateRegistry) RegisterExplicit(name string, key StateKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.byKey[key]; ok && owner != name {
		return ErrStateKeyCollision
	}
	r.byKey[key] = name
	r.byName[name] = key
	return nil
}
