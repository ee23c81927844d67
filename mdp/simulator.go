package mdp

import (
	"fmt"
	"sort"

	"github.com/routeforge/vrpcore/parallel"
	"github.com/routeforge/vrpcore/xrand"
)

// Simulator drives the run_episodes loop: every agent explores
// independently against a read-only snapshot of Q, and Simulator merges
// their observed deltas back into Q once every agent has
// converged (its policy offers no further action).
type Simulator[S comparable, A comparable] struct {
	Policy   Policy[S, A]
	Learning LearningRule[A]
	Reduce   Reduce
}

// NewSimulator builds a Simulator. reduce defaults to Average if nil.
func NewSimulator[S comparable, A comparable](policy Policy[S, A], learning LearningRule[A], reduce Reduce) *Simulator[S, A] {
	if reduce == nil {
		reduce = Average
	}
	return &Simulator[S, A]{Policy: policy, Learning: learning, Reduce: reduce}
}

// RunEpisodes runs one episode per agent in parallel against a
// snapshot of q, then overwrites every (state, action) cell any agent
// observed with s.Reduce of the values observed for it across agents:
// for each (state, action) appearing in any delta, Q[state][action] =
// reduce(all observed q_new values for that state+action). States and
// actions no agent visited this round keep their prior value — the
// result is q with the observed cells overwritten in place, not a
// table rebuilt from only what this round touched.
func (s *Simulator[S, A]) RunEpisodes(agents []Agent[S, A], q Q[S, A], env *xrand.Environment) Q[S, A] {
	snapshot := q.Clone()
	deltas := parallel.Map(0, agents, func(idx int, agent Agent[S, A]) Q[S, A] {
		sub := env.Derive(uint64(idx))
		return s.runEpisode(agent, snapshot, sub)
	})

	observed := make(map[S]map[A][]float64)
	for _, delta := range deltas {
		for state, actions := range delta {
			row, ok := observed[state]
			if !ok {
				row = make(map[A][]float64)
				observed[state] = row
			}
			for action, v := range actions {
				row[action] = append(row[action], v)
			}
		}
	}

	merged := q.Clone()
	for state, actions := range observed {
		row, ok := merged[state]
		if !ok {
			row = make(map[A]float64, len(actions))
			merged[state] = row
		}
		for action, values := range actions {
			row[action] = s.Reduce(values)
		}
	}
	return merged
}

// runEpisode is the per-agent loop: ensure_actions, policy.select,
// take_action, ensure_actions again, then the learning-rule update —
// looping until the policy offers no action, i.e. the agent has
// reached a terminal/converged state.
func (s *Simulator[S, A]) runEpisode(agent Agent[S, A], q Q[S, A], env *xrand.Environment) Q[S, A] {
	delta := make(Q[S, A])
	for {
		state := agent.State()
		ensureActions(q, delta, agent, state)

		action, ok := s.Policy.Select(delta[state], env)
		if !ok {
			return delta
		}

		agent.TakeAction(action)
		next := agent.State()
		ensureActions(q, delta, agent, next)

		reward := agent.Reward(next)
		delta[state][action] = s.Learning(reward, delta[state][action], delta[next])
	}
}

// ensureActions seeds delta[s] from the shared Q snapshot if present,
// else from the agent's own action set, without ever overwriting an
// entry delta[s] already holds.
func ensureActions[S comparable, A comparable](q, delta Q[S, A], agent Agent[S, A], state S) {
	if _, ok := delta[state]; ok {
		return
	}
	if row, ok := q[state]; ok {
		copied := make(map[A]float64, len(row))
		for a, v := range row {
			copied[a] = v
		}
		delta[state] = copied
		return
	}
	delta[state] = agent.ActionsFor(state)
}

// OptimalPolicy greedily looks up the best-valued action at state per
// the converged Q table.
func (s *Simulator[S, A]) OptimalPolicy(q Q[S, A], state S) (A, bool) {
	row, ok := q[state]
	if !ok || len(row) == 0 {
		var zero A
		return zero, false
	}
	keys := make([]A, 0, len(row))
	for a := range row {
		keys = append(keys, a)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprintf("%v", keys[i]) < fmt.Sprintf("%v", keys[j])
	})

	best := keys[0]
	bestValue := row[best]
	for _, a := range keys[1:] {
		if row[a] > bestValue {
			best = a
			bestValue = row[a]
		}
	}
	return best, true
}
