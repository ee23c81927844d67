package refinement

import (
	"time"

	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/hyperheuristic"
	"github.com/routeforge/vrpcore/population"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/telemetry"
	"github.com/routeforge/vrpcore/xrand"
)

// Engine is the refinement loop: it owns the Population, builds
// the RefinementContext hyperheuristic.StaticSelective reads every
// generation, and polls a Termination predicate at each generation
// boundary.
type Engine struct {
	problem  *core.Problem
	pipeline *constraint.Pipeline
	config   Config
	pop      *population.Population
}

// New builds an Engine for problem against pipeline, configured by
// opts. Returns ErrNoHyperHeuristic if no HyperHeuristic was supplied —
// a configuration fault caught before any generation runs.
func New(problem *core.Problem, pipeline *constraint.Pipeline, opts ...Option) (*Engine, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.HyperHeuristic == nil {
		return nil, ErrNoHyperHeuristic
	}
	if cfg.Logger == nil {
		cfg.Logger = telemetry.Discard()
	}

	pop := population.NewPopulation(problem.Objective, cfg.PopulationSize, cfg.ExploitationPatience)
	return &Engine{problem: problem, pipeline: pipeline, config: cfg, pop: pop}, nil
}

// Population exposes the Engine's retained individuals, e.g. for a
// caller that wants to inspect exploration/exploitation phase between
// Refine calls.
func (e *Engine) Population() *population.Population { return e.pop }

// Result summarizes one completed Refine call.
type Result struct {
	Best        *solution.SolutionContext
	Generations int
}

// Refine seeds the population with initial (each run once through
// pipeline.AcceptSolutionState so a fully-assigned seed's departure is
// already rescheduled), then repeatedly: snapshots the population,
// fans it out through the configured HyperHeuristic, folds every
// mutated individual back into the population via
// pipeline.AcceptSolutionState + Population.Add, and polls term at the
// generation boundary (cooperative cancellation) before starting the
// next generation.
func (e *Engine) Refine(initial []*solution.SolutionContext, env *xrand.Environment, term Termination) (Result, error) {
	if len(initial) == 0 {
		return Result{}, ErrNoInitialSolutions
	}
	if term == nil {
		return Result{}, ErrNoTermination
	}

	for _, sc := range initial {
		if sc == nil {
			continue
		}
		e.pipeline.AcceptSolutionState(e.problem, sc)
		e.pop.Add(sc)
	}

	refCtx := &hyperheuristic.RefinementContext{
		Problem:    e.problem,
		Pipeline:   e.pipeline,
		Population: e.pop,
	}

	start := time.Now()
	elapsed := time.Duration(0)
	checkEvery := e.config.DeadlineCheckInterval

	gen := 0
	for {
		if checkEvery <= 1 || gen%checkEvery == 0 {
			elapsed = time.Since(start)
		}
		refCtx.Generation = gen
		status := Status{Generation: gen, Elapsed: elapsed, Best: bestFitness(e.pop)}
		if term(status) {
			e.config.Logger.Termination("condition_met", gen)
			break
		}

		sub := env.Derive(uint64(gen))
		individuals := e.pop.Individuals()
		mutated := e.config.HyperHeuristic.Search(refCtx, sub, individuals)
		for _, sc := range mutated {
			if sc == nil {
				continue
			}
			e.pipeline.AcceptSolutionState(e.problem, sc)
			e.pop.Add(sc)
		}

		best := e.pop.Best()
		e.config.Logger.Generation(gen, bestFitness(e.pop), requiredCount(best), time.Since(start).Milliseconds())
		gen++
	}

	return Result{Best: e.pop.Best(), Generations: gen}, nil
}

func bestFitness(pop *population.Population) core.Fitness {
	best := pop.Best()
	if best == nil {
		return nil
	}
	return best.Evaluate()
}

func requiredCount(sc *solution.SolutionContext) int {
	if sc == nil {
		return 0
	}
	return len(sc.Required())
}
