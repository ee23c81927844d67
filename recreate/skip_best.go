package recreate

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
)

// SkipBest behaves like Cheapest but skips the top r best positions,
// where r is drawn uniformly from [k1,k2]. Skipping forces
// the strategy to occasionally accept a locally suboptimal placement,
// which is how it escapes Cheapest's greedy local optima during ruin
// and recreate.
type SkipBest struct {
	k1, k2 int
}

// NewSkipBest constructs SkipBest with r drawn uniformly from [k1,k2].
// Returns ErrInvalidRange if k1 < 0 or k1 > k2.
func NewSkipBest(k1, k2 int) (*SkipBest, error) {
	if k1 < 0 || k1 > k2 {
		return nil, ErrInvalidRange
	}
	return &SkipBest{k1: k1, k2: k2}, nil
}

// Name implements Strategy.
func (s *SkipBest) Name() string { return "skip_best" }

// Run implements Strategy.
func (s *SkipBest) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	runUntilExhausted(problem, pipeline, sc,
		func(candidates []*core.Job) *core.Job {
			return candidates[env.Intn(len(candidates))]
		},
		func(job *core.Job) *placement {
			ranked := rankedInsertions(problem, pipeline, sc, job)
			if len(ranked) == 0 {
				return nil
			}
			r := s.k1
			if s.k2 > s.k1 {
				r = s.k1 + env.Intn(s.k2-s.k1+1)
			}
			if r >= len(ranked) {
				r = len(ranked) - 1
			}
			return ranked[r]
		},
	)
	return nil
}
