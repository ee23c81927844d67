package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// Perturbation behaves like Cheapest but adds uniform random noise to
// each route's cheapest-placement cost before choosing among routes:
// the noise only perturbs which route's placement is *chosen* (the
// ranking key); within a route the cheapest position is taken without
// noise, and the cost actually booked into the solution's fitness
// remains the placement's true cost, never the noisy one.
type Perturbation struct {
	noise float64 // +/- range of the uniform noise added to each candidate's cost
}

// NewPerturbation constructs Perturbation with noise as the half-width
// of the uniform perturbation applied to each route's cheapest-placement
// cost before ranking (e.g. noise=5 perturbs by a value in [-5, 5]).
func NewPerturbation(noise float64) Perturbation {
	if noise < 0 {
		noise = 0
	}
	return Perturbation{noise: noise}
}

// Name implements Strategy.
func (Perturbation) Name() string { return "perturbation" }

// Run implements Strategy.
func (s Perturbation) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	score := func(e *xrand.Environment, cost float64) float64 {
		return cost + (e.Float64()*2-1)*s.noise
	}
	runUntilExhausted(problem, pipeline, sc,
		func(candidates []*core.Job) *core.Job {
			return candidates[env.Intn(len(candidates))]
		},
		func(job *core.Job) *placement {
			return bestInsertion(problem, pipeline, sc, job, env, score)
		},
	)
	return nil
}
