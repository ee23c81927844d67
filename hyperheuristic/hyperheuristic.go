package hyperheuristic

import (
	"github.com/routeforge/vrpcore/mutation"
	"github.com/routeforge/vrpcore/parallel"
	"github.com/routeforge/vrpcore/population"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// HyperHeuristic selects and applies mutations across a population of
// individuals.
type HyperHeuristic interface {
	Search(refCtx *RefinementContext, env *xrand.Environment, individuals []*solution.SolutionContext) []*solution.SolutionContext
}

// MutationProbability decides whether its paired mutation should run
// against this individual this round. env is the individual's own
// derived RNG stream, so every IsHit draw stays within that
// individual's deterministic sequence.
type MutationProbability func(refCtx *RefinementContext, individual *solution.SolutionContext, env *xrand.Environment) bool

// NewScalarProbability builds a MutationProbability that ignores
// context entirely: a fixed-probability coin flip, random.is_hit(p).
func NewScalarProbability(p float64) MutationProbability {
	return func(_ *RefinementContext, _ *solution.SolutionContext, env *xrand.Environment) bool {
		return env.IsHit(p)
	}
}

// NewContextAwareProbability builds a context-aware
// predicate: false below either threshold, otherwise a coin flip whose
// weight depends on the population's current SelectionPhase.
func NewContextAwareProbability(jobsThreshold, routesThreshold int, phases map[population.SelectionPhase]float64) MutationProbability {
	table := make(map[population.SelectionPhase]float64, len(phases))
	for k, v := range phases {
		table[k] = v
	}
	return func(refCtx *RefinementContext, individual *solution.SolutionContext, env *xrand.Environment) bool {
		if len(refCtx.Problem.Jobs) < jobsThreshold || len(individual.Routes()) < routesThreshold {
			return false
		}
		return env.IsHit(table[refCtx.Population.SelectionPhase()])
	}
}

// Entry pairs a Mutation with the MutationProbability that gates it.
type Entry struct {
	Mutation    mutation.Mutation
	Probability MutationProbability
}

// StaticSelective is the hyper-heuristic: an ordered Group of
// (mutation, probability) entries, applied in order to each individual
// with an early exit on first strict improvement over the original.
type StaticSelective struct {
	Group []Entry
}

// NewStaticSelective builds a StaticSelective from an ordered group.
func NewStaticSelective(group []Entry) *StaticSelective {
	return &StaticSelective{Group: group}
}

// Search runs mutate against every individual, each on its own RNG
// substream derived from env by index so the per-individual sequence
// of operator choices stays reproducible regardless of how the worker
// pool interleaves goroutines.
func (s *StaticSelective) Search(refCtx *RefinementContext, env *xrand.Environment, individuals []*solution.SolutionContext) []*solution.SolutionContext {
	return parallel.Map(0, individuals, func(idx int, individual *solution.SolutionContext) *solution.SolutionContext {
		sub := env.Derive(uint64(idx))
		return s.mutate(refCtx, individual, sub)
	})
}

// mutate is static_selective.rs's try_fold: ctx is threaded through
// every entry whose probability hits, and the loop exits the instant a
// mutation strictly improves on individual's own original fitness —
// not on the running ctx, so an earlier neutral-or-worse step never
// masks a later improvement.
func (s *StaticSelective) mutate(refCtx *RefinementContext, individual *solution.SolutionContext, env *xrand.Environment) *solution.SolutionContext {
	ctx := individual.Clone()
	originalFitness := individual.Evaluate()

	for _, entry := range s.Group {
		if !entry.Probability(refCtx, individual, env) {
			continue
		}
		next := entry.Mutation.Mutate(refCtx.Problem, refCtx.Pipeline, env, ctx)
		if refCtx.Problem.Objective.Compare(originalFitness, next.Evaluate()) > 0 {
			return next
		}
		ctx = next
	}
	return ctx
}
