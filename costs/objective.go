package costs

import "github.com/routeforge/vrpcore/core"

// DefaultObjective is the engine's out-of-the-box core.Objective: a
// two-component Fitness, unassigned job count first and total route
// cost second, compared lexicographically. Minimizing unassigned jobs
// before cost matches solution.SolutionContext.Evaluate's existing
// (routeCosts, unassignedCount) call shape and is the conventional
// VRP ordering — a solution that places one more job is always
// preferred over a cheaper solution that leaves it out.
type DefaultObjective struct{}

// NewDefaultObjective builds a DefaultObjective.
func NewDefaultObjective() DefaultObjective { return DefaultObjective{} }

func (DefaultObjective) Fitness(routeCosts []float64, unassignedCount int) core.Fitness {
	total := 0.0
	for _, c := range routeCosts {
		total += c
	}
	return core.Fitness{float64(unassignedCount), total}
}

func (DefaultObjective) Compare(a, b core.Fitness) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
