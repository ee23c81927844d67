package refinement

import "errors"

// Configuration-fault sentinels: returned by New or at the start of
// Refine, never mid-run.
var (
	// ErrNoHyperHeuristic indicates a Config built without a HyperHeuristic.
	ErrNoHyperHeuristic = errors.New("refinement: config has no hyper-heuristic")

	// ErrNoInitialSolutions indicates Refine was called with zero seed solutions.
	ErrNoInitialSolutions = errors.New("refinement: no initial solutions supplied")

	// ErrNoTermination indicates Refine was called with a nil
	// termination predicate; an unbounded loop is always a configuration
	// fault, never a runtime surprise.
	ErrNoTermination = errors.New("refinement: config has no termination predicate")
)
