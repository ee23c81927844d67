// Package mdp implements a generic MDP Simulator: a generic
// tabular Q-learning loop over any state/action pair the caller
// defines. It is self-contained: no other package in this module
// imports it, and hyperheuristic's mutation-group probabilities are
// static.
//
// Grounded on niceyeti-tabular/reinforcement/learning.go's
// "vanilla batching" coordination scheme: agents explore
// independently and in parallel using a snapshot of the shared Q
// table, each producing its own local delta; a single coordinator
// then merges every agent's delta back into Q once all agents have
// finished, rather than taking a lock on Q during exploration itself.
// parallel.Map is the fan-out primitive, matching hyperheuristic's use
// of it for per-individual mutation.
package mdp
