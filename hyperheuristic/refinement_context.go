package hyperheuristic

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/population"
)

// RefinementContext is the read-only handle mutation-probability
// predicates consult: the Problem being solved, the Pipeline used to
// evaluate candidate insertions, the Population tracking
// exploration/exploitation phase, and which generation is running.
// It is owned and advanced by package refinement; hyperheuristic only
// reads it.
type RefinementContext struct {
	Problem    *core.Problem
	Pipeline   *constraint.Pipeline
	Population *population.Population
	Generation int
}
