package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/samber/lo"
)

// NearestNeighbor inserts next to the most recently placed job,
// measured by duration: after each successful
// insertion, the next job chosen is whichever required job has the
// shortest transport duration from the just-placed job's location
// (using the vehicle profile of the actor that received that job, as a representative
// distance measure — this strategy is a selection heuristic, not a
// routing decision; the constraint pipeline still decides the actual
// insertion position).
type NearestNeighbor struct{}

// NewNearestNeighbor constructs the NearestNeighbor strategy.
func NewNearestNeighbor() NearestNeighbor { return NearestNeighbor{} }

// Name implements Strategy.
func (NearestNeighbor) Name() string { return "nearest_neighbor" }

// Run implements Strategy.
func (s NearestNeighbor) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	var lastLoc *core.Location
	var lastProfile core.VehicleProfile
	gaveUp := make(map[string]bool)

	for {
		required := sc.Required()
		candidates := lo.Filter(required, func(j *core.Job, _ int) bool { return !gaveUp[j.ID] })
		if len(candidates) == 0 {
			return nil
		}

		job := nearestJob(problem, candidates, lastLoc, lastProfile, env)
		p := bestInsertion(problem, pipeline, sc, job, env, identityScore)
		if p == nil {
			sc.SetUnassignedReason(job, ReasonUnassignable)
			gaveUp[job.ID] = true
			continue
		}
		apply(problem, pipeline, sc, p)

		loc := p.places[len(p.places)-1].Location
		lastLoc = &loc
		lastProfile = p.actor.Vehicle.Profile
	}
}

// nearestJob picks the required job whose first candidate place is
// closest (by transport duration) to lastLoc, or a random job if no
// reference point is established yet.
func nearestJob(problem *core.Problem, required []*core.Job, lastLoc *core.Location, profile core.VehicleProfile, env *xrand.Environment) *core.Job {
	if lastLoc == nil {
		return required[env.Intn(len(required))]
	}

	type scoredJob struct {
		job      *core.Job
		duration float64
	}
	scored := lo.Map(required, func(job *core.Job, _ int) scoredJob {
		place := job.Tasks[0].Places[0]
		return scoredJob{job: job, duration: problem.Transport.Duration(profile, *lastLoc, place.Location, 0)}
	})
	return lo.MinBy(scored, func(a, b scoredJob) bool { return a.duration < b.duration }).job
}
