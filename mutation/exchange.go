package mutation

import (
	"sort"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// LocalOperator is a local-search move: Explore either returns
// a strictly improved SolutionContext and true, or (nil, false) if no
// improving move was found. CompositeLocalOperator and LocalSearch both
// treat a false return as "leave the input unchanged".
type LocalOperator interface {
	Name() string
	Explore(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) (*solution.SolutionContext, bool)
}

// improves reports whether candidate's Fitness strictly beats original's,
// per core.Objective's total order.
func improves(problem *core.Problem, candidate, original *solution.SolutionContext) bool {
	return problem.Objective.Compare(candidate.Evaluate(), original.Evaluate()) < 0
}

// routeContextsWithJobs returns every RouteContext in sc currently
// serving at least one single-task job, sorted by the owning actor's
// Vehicle.ID. SolutionContext.Routes() iterates a map; without this sort
// the Exchange operators' env.Intn/PermN-indexed picks would depend on
// map iteration order instead of only the RNG seed, breaking the
// engine's determinism guarantee.
func routeContextsWithJobs(problem *core.Problem, sc *solution.SolutionContext) []*solution.RouteContext {
	var out []*solution.RouteContext
	for _, rc := range sc.Routes() {
		if len(jobsInRoute(problem, rc)) > 0 {
			out = append(out, rc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Route.Actor.Vehicle.ID < out[j].Route.Actor.Vehicle.ID
	})
	return out
}

// ExchangeInterRouteBest tries swapping every pair of single-task jobs
// across every pair of distinct routes and keeps the swap yielding the
// best improving Fitness — the "best" exchange variant.
type ExchangeInterRouteBest struct{}

func NewExchangeInterRouteBest() *ExchangeInterRouteBest { return &ExchangeInterRouteBest{} }

func (e *ExchangeInterRouteBest) Name() string { return "exchange_inter_route_best" }

func (e *ExchangeInterRouteBest) Explore(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) (*solution.SolutionContext, bool) {
	routes := routeContextsWithJobs(problem, sc)
	var best *solution.SolutionContext

	for i := 0; i < len(routes); i++ {
		for j := i + 1; j < len(routes); j++ {
			for _, jobA := range jobsInRoute(problem, routes[i]) {
				for _, jobB := range jobsInRoute(problem, routes[j]) {
					candidate := trySwap(problem, pipeline, sc, routes[i].Route.Actor, routes[j].Route.Actor, jobA, jobB)
					if candidate == nil {
						continue
					}
					if best == nil || improves(problem, candidate, best) {
						best = candidate
					}
				}
			}
		}
	}

	if best == nil || !improves(problem, best, sc) {
		return nil, false
	}
	return best, true
}

// ExchangeInterRouteRandom picks one random pair of distinct routes and
// one random single-task job from each, accepting the swap only if it
// improves Fitness.
type ExchangeInterRouteRandom struct{}

func NewExchangeInterRouteRandom() *ExchangeInterRouteRandom { return &ExchangeInterRouteRandom{} }

func (e *ExchangeInterRouteRandom) Name() string { return "exchange_inter_route_random" }

func (e *ExchangeInterRouteRandom) Explore(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) (*solution.SolutionContext, bool) {
	routes := routeContextsWithJobs(problem, sc)
	if len(routes) < 2 {
		return nil, false
	}

	order := env.PermN(len(routes))
	routeA, routeB := routes[order[0]], routes[order[1]]
	jobsA, jobsB := jobsInRoute(problem, routeA), jobsInRoute(problem, routeB)
	if len(jobsA) == 0 || len(jobsB) == 0 {
		return nil, false
	}
	jobA := jobsA[env.Intn(len(jobsA))]
	jobB := jobsB[env.Intn(len(jobsB))]

	candidate := trySwap(problem, pipeline, sc, routeA.Route.Actor, routeB.Route.Actor, jobA, jobB)
	if candidate == nil || !improves(problem, candidate, sc) {
		return nil, false
	}
	return candidate, true
}

// ExchangeIntraRouteRandom picks one random route and relocates one
// random single-task job within it, reinserting the job at its cheapest
// feasible position in that same route, accepting only if feasible and
// improving.
type ExchangeIntraRouteRandom struct{}

func NewExchangeIntraRouteRandom() *ExchangeIntraRouteRandom { return &ExchangeIntraRouteRandom{} }

func (e *ExchangeIntraRouteRandom) Name() string { return "exchange_intra_route_random" }

func (e *ExchangeIntraRouteRandom) Explore(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) (*solution.SolutionContext, bool) {
	routes := routeContextsWithJobs(problem, sc)
	if len(routes) == 0 {
		return nil, false
	}
	routeRC := routes[env.Intn(len(routes))]
	jobs := jobsInRoute(problem, routeRC)
	if len(jobs) == 0 {
		return nil, false
	}
	job := jobs[env.Intn(len(jobs))]

	candidate := sc.Clone()
	rc, err := candidate.RouteFor(routeRC.Route.Actor)
	if err != nil {
		return nil, false
	}
	if _, ok := removeSingleTaskJob(problem, pipeline, rc, job); !ok {
		return nil, false
	}
	p, ok := bestSingleTaskInsertion(problem, pipeline, rc, job)
	if !ok {
		return nil, false
	}
	applyPlacement(problem, pipeline, rc, job, p)
	candidate.SetRoute(routeRC.Route.Actor, rc)

	if !improves(problem, candidate, sc) {
		return nil, false
	}
	return candidate, true
}

// trySwap builds a clone of sc with jobA (from actorA's route) and jobB
// (from actorB's route) exchanged, returning nil if either relocation is
// infeasible.
func trySwap(problem *core.Problem, pipeline *constraint.Pipeline, sc *solution.SolutionContext, actorA, actorB *core.Actor, jobA, jobB *core.Job) *solution.SolutionContext {
	candidate := sc.Clone()
	rcA, errA := candidate.RouteFor(actorA)
	rcB, errB := candidate.RouteFor(actorB)
	if errA != nil || errB != nil {
		return nil
	}

	if _, ok := removeSingleTaskJob(problem, pipeline, rcA, jobA); !ok {
		return nil
	}
	if _, ok := removeSingleTaskJob(problem, pipeline, rcB, jobB); !ok {
		return nil
	}

	placeAInB, ok := bestSingleTaskInsertion(problem, pipeline, rcB, jobA)
	if !ok {
		return nil
	}
	placeBInA, ok := bestSingleTaskInsertion(problem, pipeline, rcA, jobB)
	if !ok {
		return nil
	}

	applyPlacement(problem, pipeline, rcB, jobA, placeAInB)
	applyPlacement(problem, pipeline, rcA, jobB, placeBInA)
	candidate.SetRoute(actorA, rcA)
	candidate.SetRoute(actorB, rcB)
	return candidate
}
