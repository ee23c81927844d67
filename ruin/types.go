package ruin

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// Operator moves zero or more jobs from assigned to sc.Required(), the
// mirror image of recreate.Strategy. An operator with nothing eligible to
// remove (empty fleet, no assigned jobs, no qualifying candidate) is a
// no-op, not an error — mutation.RuinAndRecreate always follows a ruin
// call with a recreate pass regardless of how many jobs actually moved.
type Operator interface {
	Name() string
	Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error
}

// JobRemovalLimit bounds how many jobs a single ruin invocation detaches:
// a per-operator (min, max, ratio) removal limit. Max and Ratio
// both cap the count (whichever is tighter); Min is a floor clamped down
// to whatever is actually available.
type JobRemovalLimit struct {
	Min   int
	Max   int
	Ratio float64
}

// DefaultJobRemovalLimit removes between 1 and 8 jobs, never more than
// 30% of what is currently assigned; with fewer than 4 jobs assigned
// that cap rounds down to 0 and nothing is removed.
func DefaultJobRemovalLimit() JobRemovalLimit {
	return JobRemovalLimit{Min: 1, Max: 8, Ratio: 0.3}
}

// Count picks how many of the assigned jobs to remove this call, given
// assigned is the number of jobs currently placed in routes.
func (l JobRemovalLimit) Count(assigned int, env *xrand.Environment) int {
	if assigned <= 0 {
		return 0
	}
	max := l.Max
	if byRatio := int(float64(assigned) * l.Ratio); byRatio < max {
		max = byRatio
	}
	if max > assigned {
		max = assigned
	}
	if max <= 0 {
		return 0
	}
	min := l.Min
	if min > max {
		min = max
	}
	if max == min {
		return min
	}
	return min + env.Intn(max-min+1)
}
