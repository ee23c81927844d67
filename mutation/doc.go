// Package mutation implements the mutation orchestration layer:
// the operators hyperheuristic.StaticSelective chains together.
// RuinAndRecreate composes a ruin.Operator with a recreate.Strategy;
// LocalSearch/CompositeLocalOperator wrap the Exchange* local-search
// moves; DecomposeSearch partitions a solution by route and applies an
// inner Mutation to each partition independently before merging.
package mutation
