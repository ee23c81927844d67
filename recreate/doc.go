// Package recreate implements the insertion heuristics: the
// strategies that place SolutionContext.Required jobs back into routes
// after a ruin operator has removed them (or on first construction of a
// solution, when every job starts out required).
//
// Every Strategy shares the same feasibility search (insertion.go),
// grounded directly on the constraint pipeline's contract
// (constraint.Pipeline.EvaluateHardActivity/EstimateSoftActivity): a
// strategy only decides *which* required job to place next and how
// much of the candidate-position space to consider before committing;
// feasibility and cost estimation always come from package constraint.
//
// Multi-task jobs (core.JobMulti) are placed entirely within one route,
// in task-precedence order — never split across actors — matching
// a Multi job's definition as an ordered list of single-jobs
// with precedence. Splitting a pickup/delivery pair across vehicles is
// out of scope (see DESIGN.md's open-question resolution).
//
// Candidate-list filtering (dropping jobs a strategy has already given
// up on this pass) and best/worst-by-cost selection use github.com/
// samber/lo's Filter/Map/MinBy/MaxBy, the same generics helpers package
// ruin uses for its own candidate bookkeeping.
package recreate
