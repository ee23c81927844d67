package recreate

import "errors"

// Sentinel errors for the recreate package. Both are configuration
// faults: they fail Strategy construction, never surface
// mid-search.
var (
	// ErrEmptyWeights is returned by NewCompositeRecreate when given no
	// (strategy, weight) pairs, or when every weight is <= 0.
	ErrEmptyWeights = errors.New("recreate: composite strategy has no positive weight")

	// ErrInvalidRange is returned by NewSkipBest/NewRegret when k1 > k2,
	// or when k1 < 0 (NewSkipBest) or k1 < 1 (NewRegret).
	ErrInvalidRange = errors.New("recreate: invalid [k1,k2] range")
)

// ReasonUnassignable is the reason code recorded on SolutionContext
// when a required job has no feasible insertion anywhere in the fleet.
const ReasonUnassignable = "recreate.no_feasible_insertion"
