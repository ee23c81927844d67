// Package vrpcore is the root of a Vehicle Routing Problem (VRP) solver
// engine: a metaheuristic that searches the space of feasible
// multi-vehicle route assignments to minimize a multi-objective cost.
//
// The engine is domain-agnostic over the concrete VRP variant (time
// windows, capacities, pickup/delivery, multi-depot); variant-specific
// rules are expressed through the pluggable constraint pipeline in
// package constraint.
//
// Everything under this module is organized as a set of focused,
// composable packages:
//
//	core/           — Problem, Job, Actor, Tour, Route and the rest of the data model
//	costs/          — transport/activity cost oracles consulted on every insertion
//	solution/       — RouteContext/SolutionContext and their per-route derived state
//	constraint/     — the hard/soft constraint pipeline, including time-window scheduling
//	recreate/       — insertion heuristics that place unassigned jobs into routes
//	ruin/           — operators that move jobs from assigned back to required
//	mutation/       — ruin+recreate composition, local search, decomposition
//	hyperheuristic/ — selection among mutation operators
//	population/     — non-dominated individuals and the exploration/exploitation phase
//	mdp/            — a Q-learning simulator that can adapt operator choice across episodes
//	refinement/     — the outer generation loop and termination
//	xrand/          — a cloneable, thread-safe seeded RNG
//	parallel/       — a small fixed-size worker pool used at the engine's two fan-out points
//
// This package does not itself construct a solver; see refinement.New
// and hyperheuristic.NewDefault for the entry points that wire the
// pieces above into a running engine.
package vrpcore
