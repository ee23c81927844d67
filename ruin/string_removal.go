package ruin

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// AdjustedStringRemoval tears out one or more contiguous runs ("strings")
// of job activities from randomly chosen routes, a Ropke/Pisinger
// style operator. String length is drawn relative to the fleet-wide
// average of assigned jobs per route so a single route's strings never swallow every other
// route's contribution in one call.
type AdjustedStringRemoval struct {
	Limit      JobRemovalLimit
	MaxStrings int // how many separate contiguous runs to attempt per call
}

// NewAdjustedStringRemoval builds an AdjustedStringRemoval bounded by
// limit, drawing up to maxStrings contiguous runs per call.
func NewAdjustedStringRemoval(limit JobRemovalLimit, maxStrings int) *AdjustedStringRemoval {
	if maxStrings <= 0 {
		maxStrings = 1
	}
	return &AdjustedStringRemoval{Limit: limit, MaxStrings: maxStrings}
}

func (a *AdjustedStringRemoval) Name() string { return "adjusted_string_removal" }

func (a *AdjustedStringRemoval) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	assigned := assignedJobs(problem, sc)
	target := a.Limit.Count(len(assigned), env)
	if target == 0 {
		return nil
	}

	routes := sortedRouteContexts(sc)
	avgPerRoute := 1
	if len(routes) > 0 {
		avgPerRoute = len(assigned) / len(routes)
		if avgPerRoute < 1 {
			avgPerRoute = 1
		}
	}

	removedIDs := make(map[string]bool, target)
	picked := make([]*core.Job, 0, target)

	for attempt := 0; attempt < a.MaxStrings*4 && len(picked) < target; attempt++ {
		candidates := make([]*solution.RouteContext, 0, len(routes))
		for _, rc := range routes {
			if rc.Route.Tour.HasJobs() {
				candidates = append(candidates, rc)
			}
		}
		if len(candidates) == 0 {
			break
		}
		rc := candidates[env.Intn(len(candidates))]
		activities := rc.Route.Tour.Activities()

		jobIdx := make([]int, 0, len(activities))
		for i, act := range activities {
			if act.Job != nil {
				jobIdx = append(jobIdx, i)
			}
		}
		if len(jobIdx) == 0 {
			continue
		}

		start := jobIdx[env.Intn(len(jobIdx))]
		maxLen := avgPerRoute
		if maxLen < 1 {
			maxLen = 1
		}
		length := 1 + env.Intn(maxLen)

		for i := start; i < start+length && i < len(activities) && len(picked) < target; i++ {
			act := activities[i]
			if act.Job == nil || removedIDs[act.Job.JobID] {
				continue
			}
			job, ok := problem.JobByID(act.Job.JobID)
			if !ok {
				continue
			}
			removedIDs[act.Job.JobID] = true
			picked = append(picked, job)
		}
	}

	removeJobs(problem, pipeline, sc, picked)
	return nil
}
