package core

// Tour is the ordered sequence of activities belonging to one Route,
// beginning with a start terminal and, for closed VRPs, ending with an
// end terminal. Activities are stored as pointers; per-activity derived
// state is not kept here but in solution.RouteContext, as a
// (state_key, tour index) → value mapping.
type Tour struct {
	activities []*Activity
}

// NewTour creates a Tour seeded with a start terminal at loc, departing
// at departAt, and — for a closed VRP — an end terminal at endLoc.
func NewTour(loc Location, departAt float64, endLoc *Location, endWindow TimeWindow) *Tour {
	t := &Tour{activities: make([]*Activity, 0, 4)}
	t.activities = append(t.activities, &Activity{
		Type:     ActivityStart,
		Place:    Place{Location: loc},
		Schedule: Schedule{Arrival: departAt, Departure: departAt},
	})
	if endLoc != nil {
		t.activities = append(t.activities, &Activity{
			Type:  ActivityEnd,
			Place: Place{Location: *endLoc, TimeWindow: endWindow},
		})
	}
	return t
}

// Activities returns the full activity sequence, including terminals.
// The returned slice aliases internal storage; callers must not retain
// it across a structural mutation (Insert/Remove).
func (t *Tour) Activities() []*Activity {
	return t.activities
}

// Start returns the tour's start terminal. A well-formed Tour always has one.
func (t *Tour) Start() *Activity {
	if len(t.activities) == 0 {
		return nil
	}
	return t.activities[0]
}

// End returns the tour's end terminal, or nil for an open VRP.
func (t *Tour) End() *Activity {
	if len(t.activities) == 0 {
		return nil
	}
	last := t.activities[len(t.activities)-1]
	if last.Type == ActivityEnd {
		return last
	}
	return nil
}

// HasJobs reports whether any activity in the tour serves a job.
func (t *Tour) HasJobs() bool {
	for _, a := range t.activities {
		if !a.IsTerminal() {
			return true
		}
	}
	return false
}

// JobActivityCount returns the number of job (non-terminal) activities.
func (t *Tour) JobActivityCount() int {
	n := 0
	for _, a := range t.activities {
		if !a.IsTerminal() {
			n++
		}
	}
	return n
}

// InsertAt inserts activity at tour index idx (0 is before the start
// terminal is never legal; idx must be in [1, insertableLen]).
// Insertion is a pure slice-splice; callers are responsible for
// re-running the constraint pipeline's AcceptRouteState afterward.
func (t *Tour) InsertAt(idx int, activity *Activity) {
	t.activities = append(t.activities, nil)
	copy(t.activities[idx+1:], t.activities[idx:])
	t.activities[idx] = activity
}

// RemoveJob removes the first activity whose Job matches jobID and
// taskIndex, returning it and true, or (nil, false) if not found.
func (t *Tour) RemoveJob(jobID string, taskIndex int) (*Activity, bool) {
	for i, a := range t.activities {
		if a.Job != nil && a.Job.JobID == jobID && a.Job.TaskIndex == taskIndex {
			removed := a
			t.activities = append(t.activities[:i], t.activities[i+1:]...)
			return removed, true
		}
	}
	return nil, false
}

// RemoveAllForJob removes every activity belonging to jobID (all tasks
// of a multi-job), returning the removed activities in tour order.
func (t *Tour) RemoveAllForJob(jobID string) []*Activity {
	removed := make([]*Activity, 0)
	kept := t.activities[:0:0]
	for _, a := range t.activities {
		if a.Job != nil && a.Job.JobID == jobID {
			removed = append(removed, a)
		} else {
			kept = append(kept, a)
		}
	}
	t.activities = kept
	return removed
}

// Clone returns a deep copy of the tour: new Activity and Schedule
// values, so that mutating the clone never affects the original. This
// is the per-worker "deep-copy before claim" primitive RouteContext and
// SolutionContext rely on for handoff across goroutines.
func (t *Tour) Clone() *Tour {
	out := &Tour{activities: make([]*Activity, len(t.activities))}
	for i, a := range t.activities {
		na := *a
		if a.Job != nil {
			ref := *a.Job
			na.Job = &ref
		}
		out.activities[i] = &na
	}
	return out
}

// Route is one vehicle's full assignment: its Actor and the Tour it drives.
type Route struct {
	Actor *Actor
	Tour  *Tour
}

// Clone returns a deep copy of the Route's Tour; Actor is shared
// read-only (the fleet is immutable for the lifetime of a Problem).
func (r *Route) Clone() *Route {
	return &Route{Actor: r.Actor, Tour: r.Tour.Clone()}
}

// NewRoute creates an empty Route for actor, seeding its Tour from the
// actor's shift start/end.
func NewRoute(actor *Actor) *Route {
	return &Route{
		Actor: actor,
		Tour:  NewTour(actor.Detail.StartLocation, actor.Detail.Time.Start, actor.Detail.EndLocation, actor.Detail.Time),
	}
}
