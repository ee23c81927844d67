package refinement

import (
	"github.com/routeforge/vrpcore/hyperheuristic"
	"github.com/routeforge/vrpcore/telemetry"
)

// Config configures an Engine, following the teacher's functional-options
// convention (tsp.Options/DefaultOptions, core.GraphOption).
type Config struct {
	HyperHeuristic        hyperheuristic.HyperHeuristic
	PopulationSize        int
	ExploitationPatience  int
	DeadlineCheckInterval int
	Logger                *telemetry.Logger
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithPopulationSize overrides the default retained-individual count.
func WithPopulationSize(n int) Option {
	return func(c *Config) { c.PopulationSize = n }
}

// WithExploitationPatience overrides how many consecutive
// non-improving population.Population.Add calls trip the population
// from Exploration into Exploitation.
func WithExploitationPatience(n int) Option {
	return func(c *Config) { c.ExploitationPatience = n }
}

// WithDeadlineCheckInterval amortizes the termination predicate's
// wall-clock probe to once every n generations rather than every one,
// grounded on the teacher's tsp/bound_onetree.go and tsp/three_opt.go
// deadline-check throttling ("only probe wall clock every Nth tick").
// n <= 0 checks every generation.
func WithDeadlineCheckInterval(n int) Option {
	return func(c *Config) { c.DeadlineCheckInterval = n }
}

// WithLogger overrides the Engine's telemetry sink; the zero Config
// logs nothing (telemetry.Discard), matching the teacher's silent
// library default.
func WithLogger(l *telemetry.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithHyperHeuristic sets the operator-selection strategy the Engine
// drives every generation. Required; New returns ErrNoHyperHeuristic
// if it is never set.
func WithHyperHeuristic(hh hyperheuristic.HyperHeuristic) Option {
	return func(c *Config) { c.HyperHeuristic = hh }
}

// DefaultConfig returns a Config with the engine's out-of-the-box
// defaults: population of 10 individuals, 5 consecutive non-improving
// additions before switching to Exploitation, a deadline probe every 4
// generations, and
// telemetry discarded.
func DefaultConfig() Config {
	return Config{
		PopulationSize:        10,
		ExploitationPatience:  5,
		DeadlineCheckInterval: 4,
		Logger:                telemetry.Discard(),
	}
}
