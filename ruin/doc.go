// Package ruin implements the ruin operators: strategies that
// move jobs from assigned to SolutionContext.Required, the counterpart
// to package recreate. Every operator shares the removeJob/assignedJobs
// helpers in remove.go so "find the job's current route, detach its
// activities, re-run the route's derived state, and hand it back to
// Required" is implemented exactly once.
package ruin
