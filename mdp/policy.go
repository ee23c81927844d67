package mdp

import (
	"fmt"
	"sort"

	"github.com/routeforge/vrpcore/xrand"
)

// EpsilonGreedy picks the best-valued action with probability
// (1-Epsilon), and a uniformly random action otherwise — the standard
// explore/exploit trade-off for tabular Q-learning. Select reports
// false only when actions is empty (episode termination).
//
// actions is a map, so its key order is randomized per process run;
// Select sorts keys by KeyOrder (or, if nil, by fmt.Sprintf("%v", a))
// before drawing so env.Intn's pick depends only on the RNG seed,
// preserving determinism.
type EpsilonGreedy[A comparable] struct {
	Epsilon  float64
	KeyOrder func(a A) string
}

// NewEpsilonGreedy builds an EpsilonGreedy policy exploring with
// probability epsilon, ordering actions for tie-free determinism by
// their default string form.
func NewEpsilonGreedy[A comparable](epsilon float64) EpsilonGreedy[A] {
	return EpsilonGreedy[A]{Epsilon: epsilon}
}

func (p EpsilonGreedy[A]) Select(actions map[A]float64, env *xrand.Environment) (A, bool) {
	var zero A
	if len(actions) == 0 {
		return zero, false
	}

	keyOf := p.KeyOrder
	if keyOf == nil {
		keyOf = func(a A) string { return fmt.Sprintf("%v", a) }
	}

	keys := make([]A, 0, len(actions))
	for a := range actions {
		keys = append(keys, a)
	}
	sort.Slice(keys, func(i, j int) bool { return keyOf(keys[i]) < keyOf(keys[j]) })

	if env.IsHit(p.Epsilon) {
		return keys[env.Intn(len(keys))], true
	}

	best := keys[0]
	bestValue := actions[best]
	for _, a := range keys[1:] {
		if actions[a] > bestValue {
			best = a
			bestValue = actions[a]
		}
	}
	return best, true
}
