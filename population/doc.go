// Package population maintains the set of candidate solutions a
// refinement run keeps across generations. It tracks non-dominated
// retention over core.Fitness's
// component-wise order and the coarse exploration/exploitation phase
// that hyperheuristic's context-aware mutation probabilities read
// (static_selective.rs's SelectionPhase).
package population
