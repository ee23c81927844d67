package mutation

import (
	"sort"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// DecomposeSearch partitions a solution's routes into r (drawn from
// [MinPartitions, MaxPartitions]) disjoint subsets, applies Inner to each
// subset independently via solution.NewPartialSolutionContext, and merges
// the results back. Repetitions controls how many times the
// whole partition-apply-merge cycle repeats, each time with a fresh random
// partition.
type DecomposeSearch struct {
	Inner         Mutation
	MinPartitions int
	MaxPartitions int
	Repetitions   int
}

// NewDecomposeSearch builds a DecomposeSearch. Partition counts and
// repetitions below 1 are clamped to 1.
func NewDecomposeSearch(inner Mutation, minPartitions, maxPartitions, repetitions int) *DecomposeSearch {
	if minPartitions < 1 {
		minPartitions = 1
	}
	if maxPartitions < minPartitions {
		maxPartitions = minPartitions
	}
	if repetitions < 1 {
		repetitions = 1
	}
	return &DecomposeSearch{Inner: inner, MinPartitions: minPartitions, MaxPartitions: maxPartitions, Repetitions: repetitions}
}

func (d *DecomposeSearch) Name() string { return "decompose_search:" + d.Inner.Name() }

func (d *DecomposeSearch) Mutate(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) *solution.SolutionContext {
	current := sc
	for i := 0; i < d.Repetitions; i++ {
		current = d.once(problem, pipeline, env, current)
	}
	return current
}

func (d *DecomposeSearch) once(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) *solution.SolutionContext {
	actors := make([]*core.Actor, 0, len(sc.Routes()))
	for _, rc := range sc.Routes() {
		actors = append(actors, rc.Route.Actor)
	}
	if len(actors) == 0 {
		return sc
	}
	// sorted for the same reason routeContextsWithJobs is: sc.Routes()
	// iterates a map, and indexing into an unsorted slice with
	// env.Intn/PermN would make the partition depend on map iteration
	// order rather than only the RNG seed.
	sort.Slice(actors, func(i, j int) bool { return actors[i].Vehicle.ID < actors[j].Vehicle.ID })

	r := d.MinPartitions
	if d.MaxPartitions > d.MinPartitions {
		r = d.MinPartitions + env.Intn(d.MaxPartitions-d.MinPartitions+1)
	}
	if r > len(actors) {
		r = len(actors)
	}

	order := env.PermN(len(actors))
	groups := make([][]*core.Actor, r)
	for i, idx := range order {
		g := i % r
		groups[g] = append(groups[g], actors[idx])
	}

	merged := sc.Clone()
	required := merged.Required()

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		routes := make(map[*core.Actor]*solution.RouteContext, len(group))
		for _, actor := range group {
			rc, err := merged.RouteFor(actor)
			if err != nil {
				continue
			}
			routes[actor] = rc.Clone()
		}

		assignedHere := assignedInRoutes(problem, routes)
		scoped := dedupeJobs(append(append([]*core.Job{}, required...), assignedHere...))
		sub := solution.NewPartialSolutionContext(problem, routes, scoped)

		result := d.Inner.Mutate(problem, pipeline, env, sub)

		for _, actor := range group {
			if rc, err := result.RouteFor(actor); err == nil {
				merged.SetRoute(actor, rc)
			}
		}
		stillRequired := result.Required()
		for _, job := range scoped {
			if !containsJob(stillRequired, job.ID) {
				merged.ClearUnassignedReason(job)
			}
		}
		for id, reason := range result.UnassignedReasons() {
			if job, ok := problem.JobByID(id); ok {
				merged.SetUnassignedReason(job, reason)
			}
		}
		required = stillRequired
	}

	merged.SetRequired(required)
	return merged
}

// assignedInRoutes returns every single- or multi-task job currently
// placed within the given routes, deduped by ID.
func assignedInRoutes(problem *core.Problem, routes map[*core.Actor]*solution.RouteContext) []*core.Job {
	seen := make(map[string]bool)
	var out []*core.Job
	for _, rc := range routes {
		for _, a := range rc.Route.Tour.Activities() {
			if a.Job == nil || seen[a.Job.JobID] {
				continue
			}
			seen[a.Job.JobID] = true
			if job, ok := problem.JobByID(a.Job.JobID); ok {
				out = append(out, job)
			}
		}
	}
	return out
}

func dedupeJobs(jobs []*core.Job) []*core.Job {
	seen := make(map[string]bool, len(jobs))
	out := make([]*core.Job, 0, len(jobs))
	for _, j := range jobs {
		if seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		out = append(out, j)
	}
	return out
}

func containsJob(jobs []*core.Job, id string) bool {
	for _, j := range jobs {
		if j.ID == id {
			return true
		}
	}
	return false
}
