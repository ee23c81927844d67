package mdp

import "github.com/routeforge/vrpcore/xrand"

// Agent is the state/action contract: a state S with action
// type A supporting ActionsFor, Reward, TakeAction, and State. Both S
// and A must be comparable so they can key the Q table.
type Agent[S comparable, A comparable] interface {
	// ActionsFor returns every action available from s, seeded with an
	// initial value estimate (agent.actions_for(s)).
	ActionsFor(s S) map[A]float64

	// Reward returns the immediate reward observed at s.
	Reward(s S) float64

	// TakeAction applies a to the agent's current state, advancing it.
	TakeAction(a A)

	// State returns the agent's current state.
	State() S
}

// Q is the learned value table: state -> action -> estimated value.
type Q[S comparable, A comparable] map[S]map[A]float64

// Clone returns a deep copy of q.
func (q Q[S, A]) Clone() Q[S, A] {
	out := make(Q[S, A], len(q))
	for s, actions := range q {
		row := make(map[A]float64, len(actions))
		for a, v := range actions {
			row[a] = v
		}
		out[s] = row
	}
	return out
}

// Policy chooses one action from a state's current value estimates, or
// reports none available (episode termination): policy.select(Q[s]).
type Policy[S comparable, A comparable] interface {
	Select(actions map[A]float64, env *xrand.Environment) (A, bool)
}

// Reduce merges every agent's observed value for one (state, action)
// pair into the single value Q is overwritten with:
// Q[state][action] = reduce(all observed q_new values for that
// state+action).
type Reduce func(observed []float64) float64

// Average is the default Reduce: the arithmetic mean of every agent's
// observed value for a (state, action) pair.
func Average(observed []float64) float64 {
	if len(observed) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range observed {
		total += v
	}
	return total / float64(len(observed))
}
