package core

import "errors"

// Configuration-fault sentinels: these abort solver construction
// before the refinement loop ever starts. They are never raised mid-search.
var (
	// ErrNoActors indicates a Fleet with zero actors; no job could ever be served.
	ErrNoActors = errors.New("core: fleet has no actors")

	// ErrMissingStartLocation indicates an Actor whose detail has no start
	// location. The "optional start" question is resolved this way:
	// a missing start location is a configuration fault, not a runtime panic.
	ErrMissingStartLocation = errors.New("core: actor detail is missing a start location")

	// ErrInvalidShiftWindow indicates actor.detail.time.end < actor.detail.time.start.
	ErrInvalidShiftWindow = errors.New("core: actor shift window end precedes start")

	// ErrEmptyJobTasks indicates a Job with zero tasks; a Job must describe
	// at least one place to visit (Single) or one ordered task (Multi).
	ErrEmptyJobTasks = errors.New("core: job has no tasks")

	// ErrJobNoPlaces indicates a Task with zero candidate places.
	ErrJobNoPlaces = errors.New("core: task has no candidate places")

	// ErrDuplicateJobID indicates two jobs in the same Problem share an ID.
	ErrDuplicateJobID = errors.New("core: duplicate job ID")

	// ErrMissingObjective indicates a Problem built without an Objective.
	ErrMissingObjective = errors.New("core: problem has no objective")

	// ErrMissingCostOracle indicates a Problem built without transport or
	// activity cost oracles (component A); every insertion evaluation needs both.
	ErrMissingCostOracle = errors.New("core: problem is missing a transport or activity cost oracle")
)
