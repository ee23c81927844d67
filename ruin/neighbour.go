package ruin

import (
	"sort"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// NeighbourRemoval picks one random assigned "seed" job and removes the
// jobs spatially closest to it, a Shaw-style related-removal
// operator. Distance is measured through the seed's own route profile so
// the comparison uses one consistent transport matrix.
type NeighbourRemoval struct {
	Limit JobRemovalLimit
}

// NewNeighbourRemoval builds a NeighbourRemoval bounded by limit.
func NewNeighbourRemoval(limit JobRemovalLimit) *NeighbourRemoval {
	return &NeighbourRemoval{Limit: limit}
}

func (n *NeighbourRemoval) Name() string { return "neighbour_removal" }

type jobLocation struct {
	job *core.Job
	loc core.Location
}

func (n *NeighbourRemoval) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	located := jobLocations(problem, sc)
	if len(located) == 0 {
		return nil
	}
	count := n.Limit.Count(len(located), env)
	if count == 0 {
		return nil
	}

	seedIdx := env.Intn(len(located))
	seed := located[seedIdx]
	profile := seedProfile(sc, seed.job)

	type scored struct {
		job  *core.Job
		dist float64
	}
	scoredList := make([]scored, 0, len(located))
	for _, jl := range located {
		if jl.job.ID == seed.job.ID {
			continue
		}
		d := problem.Transport.Distance(profile, seed.loc, jl.loc, 0)
		scoredList = append(scoredList, scored{job: jl.job, dist: d})
	}
	sort.Slice(scoredList, func(i, j int) bool { return scoredList[i].dist < scoredList[j].dist })

	if count > len(scoredList)+1 {
		count = len(scoredList) + 1
	}
	picked := []*core.Job{seed.job}
	for i := 0; i < count-1 && i < len(scoredList); i++ {
		picked = append(picked, scoredList[i].job)
	}
	removeJobs(problem, pipeline, sc, picked)
	return nil
}

// jobLocations returns one representative (job, location) pair per
// assigned job, taken from wherever its first task activity currently
// sits, sorted by JobID for the same determinism reason assignedJobs is.
func jobLocations(problem *core.Problem, sc *solution.SolutionContext) []jobLocation {
	seen := make(map[string]bool)
	var out []jobLocation
	for _, rc := range sc.Routes() {
		for _, a := range rc.Route.Tour.Activities() {
			if a.Job == nil || seen[a.Job.JobID] {
				continue
			}
			seen[a.Job.JobID] = true
			if job, ok := problem.JobByID(a.Job.JobID); ok {
				out = append(out, jobLocation{job: job, loc: a.Place.Location})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].job.ID < out[j].job.ID })
	return out
}

// seedProfile returns the vehicle profile of whichever route currently
// serves seed, falling back to the zero profile if seed is unassigned.
func seedProfile(sc *solution.SolutionContext, seed *core.Job) core.VehicleProfile {
	for _, rc := range sc.Routes() {
		for _, a := range rc.Route.Tour.Activities() {
			if a.Job != nil && a.Job.JobID == seed.ID {
				return rc.Route.Actor.Vehicle.Profile
			}
		}
	}
	return ""
}
