package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/samber/lo"
)

// Strategy is the insertion heuristic contract: given a solution with a
// non-empty Required set, place as many required jobs as feasible,
// leaving any that could not be placed in Required with a recorded
// reason code (solution.SolutionContext.SetUnassignedReason).
//
// Run never returns an error for ordinary infeasibility — that is data,
// recorded via the reason map. It only returns an error
// for a configuration fault surfacing mid-run (e.g. problem/pipeline
// mismatch), which should not occur once a solver is constructed.
type Strategy interface {
	Name() string
	Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error
}

// runUntilExhausted drives the common "pick one job, insert it, repeat
// until Required is empty or no remaining job has any feasible
// placement" loop every strategy in this package shares; pick selects
// which required job to attempt next (and may reorder/filter the slice
// handed to it), given the strategies' own selection rule.
//
// A job with no feasible placement this pass keeps its Required
// membership (a later ruin+recreate cycle may free capacity that makes
// it placeable) but is excluded from further picks within this call, so
// one bad job can't loop the strategy forever.
func runUntilExhausted(problem *core.Problem, pipeline *constraint.Pipeline, sc *solution.SolutionContext, pick func(candidates []*core.Job) *core.Job, place func(job *core.Job) *placement) {
	gaveUp := make(map[string]bool)
	for {
		required := sc.Required()
		candidates := lo.Filter(required, func(j *core.Job, _ int) bool { return !gaveUp[j.ID] })
		if len(candidates) == 0 {
			return
		}
		job := pick(candidates)
		if job == nil {
			return
		}

		p := place(job)
		if p == nil {
			sc.SetUnassignedReason(job, ReasonUnassignable)
			gaveUp[job.ID] = true
			continue
		}
		apply(problem, pipeline, sc, p)
	}
}
