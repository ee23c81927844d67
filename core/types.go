package core

// Location is an opaque index into a precomputed distance/duration
// matrix keyed by vehicle profile. The engine never interprets a
// Location's value; it only passes it to the cost oracles (see
// TransportCost/ActivityCost in costs.go) and uses it as a map/slice
// index when a concrete oracle chooses to.
type Location int

// TimeWindow is a closed interval [Start, End] of timestamps, expressed
// as seconds (or any consistent unit) since a problem-defined epoch.
// Multiple windows may apply to a single Job or Actor; feasibility
// requires membership in at least one of them, which is why Task (below)
// carries a slice of candidate Places rather than a single window.
type TimeWindow struct {
	Start float64
	End   float64
}

// Contains reports whether t falls within the closed interval [Start, End].
func (tw TimeWindow) Contains(t float64) bool {
	return t >= tw.Start && t <= tw.End
}

// Duration returns End - Start. Callers should not assume it is positive
// for a zero-value TimeWindow.
func (tw TimeWindow) Duration() float64 {
	return tw.End - tw.Start
}

// Place describes where an activity happens, how long it occupies the
// actor, and the single time window during which service may start.
// A Task with multiple legal windows is represented as multiple Places
// sharing a Location (see Task.Places); the constraint pipeline and
// recreate heuristics try each Place as an independent insertion candidate.
type Place struct {
	Location   Location
	Duration   float64
	TimeWindow TimeWindow
}

// ActivityType classifies an Activity as a vehicle terminal or a job visit.
type ActivityType int

const (
	// ActivityStart is the first activity of every Tour.
	ActivityStart ActivityType = iota
	// ActivityEnd is the optional last activity of a closed-VRP Tour.
	ActivityEnd
	// ActivityJob is a scheduled visit to one task of a Job.
	ActivityJob
)

// Schedule is derived state written by the constraint pipeline's forward
// pass (constraint.TimingModule), never supplied by the caller.
type Schedule struct {
	Arrival   float64
	Departure float64
}

// JobRef identifies which task of which Job an Activity serves.
type JobRef struct {
	JobID     string
	TaskIndex int
}

// Activity is one scheduled stop in a Tour. Job is nil for the start/end
// terminals; Schedule is zero-valued until accept_route_state-equivalent
// processing (constraint.Pipeline.AcceptRouteState) has run at least once.
type Activity struct {
	Type     ActivityType
	Place    Place
	Schedule Schedule
	Job      *JobRef
}

// IsTerminal reports whether this activity is a vehicle start/end, as
// opposed to a job visit. The timing module's backward pass skips
// terminal activities when writing LATEST_ARRIVAL/WAITING state.
func (a *Activity) IsTerminal() bool {
	return a.Job == nil
}

// Demand is a single-dimensional capacity requirement. Pickup adds load
// to the vehicle at the activity; Delivery removes it. A plain
// single-job delivery sets Delivery only; a pickup-then-delivery Job
// sets Pickup on its first Task and Delivery on its last.
type Demand struct {
	Pickup   int
	Delivery int
}

// Task is one ordered visit within a Job. A Single job has
// exactly one Task; a Multi job has several, and TaskIndex order within
// Job.Tasks is the precedence order (e.g. pickup before delivery) —
// recreate and the constraint pipeline must not place a later task's
// activity before an earlier one's in the same route-building pass.
type Task struct {
	Places []Place
	Demand Demand
}

// JobKind distinguishes single-visit jobs from ordered multi-visit jobs:
// a Job is either Single(...) or Multi(...).
type JobKind int

const (
	JobSingle JobKind = iota
	JobMulti
)

// Job is one unit of customer work: either a single task (JobSingle) or
// several precedence-ordered tasks (JobMulti, e.g. pickup before delivery).
type Job struct {
	ID     string
	Kind   JobKind
	Tasks  []Task
	Skills []string
}

// Validate checks the structural invariants a Job must satisfy before it
// can enter a Problem. It does not check feasibility against any
// particular Actor — that is the constraint pipeline's job.
func (j *Job) Validate() error {
	if len(j.Tasks) == 0 {
		return ErrEmptyJobTasks
	}
	for i := range j.Tasks {
		if len(j.Tasks[i].Places) == 0 {
			return ErrJobNoPlaces
		}
	}
	return nil
}
