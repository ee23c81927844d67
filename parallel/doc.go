// Package parallel provides the small fixed-size worker pool used at
// the engine's two fan-out points: hyperheuristic.StaticSelective
// fanning mutation across a population's individuals, and
// mdp.Simulator fanning episode execution across agents.
//
// It is grounded on the teacher's goroutine+sync.WaitGroup idiom
// (core's concurrency tests build a fixed worker count and join on a
// WaitGroup rather than leaving goroutines unbounded) and on
// niceyeti-tabular/reinforcement/learning.go's channel fan-in pattern
// for collecting per-worker results deterministically.
package parallel
