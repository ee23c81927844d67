// Package constraint implements the constraint pipeline: a
// Pipeline runs a list of ConstraintModule implementations, each of
// which may contribute hard/soft route/activity checks plus
// route/solution state recomputation.
//
// The package's centerpiece is TimingModule (timing.go), a direct,
// arithmetic-for-arithmetic port of the upstream vrp-core Rust
// project's constraint/constraints/timing.rs: a forward schedule pass,
// a backward latest-arrival/waiting pass, and the hard/soft activity
// evaluation formulas used by every recreate and ruin operator in this
// module to score a candidate insertion.
package constraint
