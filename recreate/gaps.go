package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/samber/lo"
)

// Gaps targets the longest temporal gaps in existing routes: each pass
// it ranks the idle gaps (departure of one activity to arrival of the
// next) across every route, then
// selects whichever required job's first candidate place detours
// cheapest into one of the three largest — letting the constraint pipeline
// make the final feasibility/cost call on the actual insertion, exactly
// as NearestNeighbor does for its own selection signal.
type Gaps struct{}

// NewGaps constructs the Gaps strategy.
func NewGaps() Gaps { return Gaps{} }

// Name implements Strategy.
func (Gaps) Name() string { return "gaps" }

// gapSlot identifies one candidate temporal gap.
type gapSlot struct {
	actor   *core.Actor
	prev    *core.Activity
	prevIdx int
	next    *core.Activity
	nextIdx int
	size    float64
}

// Run implements Strategy.
func (s Gaps) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	gaveUp := make(map[string]bool)
	for {
		required := sc.Required()
		candidates := lo.Filter(required, func(j *core.Job, _ int) bool { return !gaveUp[j.ID] })
		if len(candidates) == 0 {
			return nil
		}

		slots := gapSlots(sc)
		job := jobForGaps(problem, slots, candidates)

		p := bestInsertion(problem, pipeline, sc, job, env, identityScore)
		if p == nil {
			sc.SetUnassignedReason(job, ReasonUnassignable)
			gaveUp[job.ID] = true
			continue
		}
		apply(problem, pipeline, sc, p)
	}
}

// gapSlots collects every consecutive-activity gap across every route,
// largest first.
func gapSlots(sc *solution.SolutionContext) []gapSlot {
	var slots []gapSlot
	for _, rc := range sc.Routes() {
		activities := rc.Route.Tour.Activities()
		for i := 0; i+1 < len(activities); i++ {
			prev, next := activities[i], activities[i+1]
			size := next.Schedule.Arrival - prev.Schedule.Departure
			slots = append(slots, gapSlot{actor: rc.Route.Actor, prev: prev, prevIdx: i, next: next, nextIdx: i + 1, size: size})
		}
	}
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && slots[j].size > slots[j-1].size; j-- {
			slots[j], slots[j-1] = slots[j-1], slots[j]
		}
	}
	return slots
}

// jobForGaps picks whichever candidate's first task's first place has
// the cheapest transport detour into the largest few gaps, falling back
// to the first candidate if there are no gaps at all (an all-empty fleet).
func jobForGaps(problem *core.Problem, slots []gapSlot, candidates []*core.Job) *core.Job {
	if len(slots) == 0 {
		return candidates[0]
	}

	probe := slots
	if len(probe) > 3 {
		probe = probe[:3]
	}

	type scoredJob struct {
		job    *core.Job
		detour float64
	}
	scored := lo.Map(candidates, func(job *core.Job, _ int) scoredJob {
		place := job.Tasks[0].Places[0]
		best := -1.0
		for i, slot := range probe {
			out := problem.Transport.Duration(slot.actor.Vehicle.Profile, slot.prev.Place.Location, place.Location, slot.prev.Schedule.Departure)
			back := problem.Transport.Duration(slot.actor.Vehicle.Profile, place.Location, slot.next.Place.Location, slot.prev.Schedule.Departure)
			detour := out + back - slot.size
			if i == 0 || detour < best {
				best = detour
			}
		}
		return scoredJob{job: job, detour: best}
	})
	return lo.MinBy(scored, func(a, b scoredJob) bool { return a.detour < b.detour }).job
}
