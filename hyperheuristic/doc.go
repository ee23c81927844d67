// Package hyperheuristic implements the Static-Selective
// hyper-heuristic: an ordered list of (mutation, probability) entries
// tried against each individual in turn, exiting as soon as one
// mutation strictly improves on the individual's original fitness.
//
// Grounded on static_selective.rs: StaticSelective.search fans the
// per-individual mutate call out across a worker pool
// (parallel_into_collect / thread_pool_execute in the original,
// parallel.Map here) and StaticSelective.mutate's try_fold-with-Err-
// as-early-exit is reproduced directly as a for loop with an explicit
// early return, since Go has no try_fold equivalent worth forcing.
package hyperheuristic
