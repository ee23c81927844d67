// Package telemetry provides structured, line-oriented logging at the
// engine's module/generation/episode boundaries. Spec §1 excludes
// "logging" as an external collaborator's concern — that means the
// surrounding service's request logs, not this repo's own internal
// observability, which the ambient stack still carries (SPEC_FULL.md's
// AMBIENT STACK section).
//
// The "[TAG] message" convention is grounded on
// ride-home-router/internal/routing/greedy.go's log.Printf("[ROUTING]
// ...") idiom — the one convention adopted from a non-teacher example
// repo, since the teacher (katalvlaran/lvlath) is a pure library and
// never logs.
package telemetry

import (
	"log"
	"os"

	"github.com/routeforge/vrpcore/core"
)

// Logger writes tagged, structured lines for the refinement loop and
// the MDP simulator. The zero value is not usable; build one with New
// or Discard.
type Logger struct {
	std    *log.Logger
	silent bool
}

// New builds a Logger writing standard log lines to stderr, prefixed
// per call with a bracketed tag.
func New() *Logger {
	return &Logger{std: log.New(os.Stderr, "", log.LstdFlags)}
}

// Discard returns a Logger that drops every line, used by tests and by
// callers that don't want refinement telemetry on stderr.
func Discard() *Logger {
	return &Logger{silent: true}
}

func (l *Logger) logf(tag, format string, args ...any) {
	if l == nil || l.silent {
		return
	}
	l.std.Printf("["+tag+"] "+format, args...)
}

// Generation logs one refinement generation's outcome.
func (l *Logger) Generation(gen int, best core.Fitness, unassigned int, elapsedMS int64) {
	l.logf("REFINE", "generation=%d best=%v unassigned=%d elapsed_ms=%d", gen, best, unassigned, elapsedMS)
}

// Termination logs why the refinement loop stopped.
func (l *Logger) Termination(reason string, gen int) {
	l.logf("REFINE", "terminated reason=%s generations=%d", reason, gen)
}

// Episode logs one MDP episode's outcome.
func (l *Logger) Episode(agentID string, episode int, steps int, finalReward float64) {
	l.logf("MDP", "agent=%s episode=%d steps=%d final_reward=%.4f", agentID, episode, steps, finalReward)
}

// InvariantBreach logs a fatal invariant-breach incident with
// enough context to reproduce it: a problem hash, the mutation that
// produced it, and the seed in effect.
func (l *Logger) InvariantBreach(problemHash string, mutationName string, seed int64, detail string) {
	l.logf("INVARIANT", "problem_hash=%s mutation=%s seed=%d detail=%s", problemHash, mutationName, seed, detail)
}

// PipelineBuilt logs a successfully constructed constraint pipeline's
// module list.
func (l *Logger) PipelineBuilt(moduleNames []string) {
	l.logf("PIPELINE", "modules=%v", moduleNames)
}
