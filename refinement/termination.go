package refinement

import (
	"time"

	"github.com/routeforge/vrpcore/core"
)

// Status is what a generation's outcome hands to every Termination
// predicate: how far the loop has progressed and what it has found.
type Status struct {
	Generation int
	Elapsed    time.Duration
	Best       core.Fitness
}

// Termination reports whether the refinement loop should stop after
// the generation described by s. Implementations poll a time budget,
// a generation count, a quality threshold, or some combination of the
// three, between generations.
type Termination func(s Status) bool

// MaxGenerations stops once Generation reaches n (n < 0 never stops on
// generation count alone; n == 0 is a legitimate budget of zero
// generations).
func MaxGenerations(n int) Termination {
	return func(s Status) bool {
		return n >= 0 && s.Generation >= n
	}
}

// TimeLimit stops once Elapsed reaches d (d <= 0 never stops on time
// alone), grounded on the teacher's tsp.Options.TimeLimit +
// time.Now().After(deadline) idiom (tsp/three_opt.go, tsp/bb.go).
func TimeLimit(d time.Duration) Termination {
	return func(s Status) bool {
		return d > 0 && s.Elapsed >= d
	}
}

// QualityThreshold stops once objective.Compare ranks Best at or
// better than threshold.
func QualityThreshold(objective core.Objective, threshold core.Fitness) Termination {
	return func(s Status) bool {
		if s.Best == nil {
			return false
		}
		return objective.Compare(s.Best, threshold) <= 0
	}
}

// Any combines predicates with OR: the loop stops the first time any
// one of them does.
func Any(predicates ...Termination) Termination {
	return func(s Status) bool {
		for _, p := range predicates {
			if p != nil && p(s) {
				return true
			}
		}
		return false
	}
}
