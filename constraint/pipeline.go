package constraint

import (
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
)

// Pipeline is the composed set of constraint modules a refinement run
// evaluates against. Built once via NewPipeline/DefaultPipeline and
// shared read-only across every worker goroutine thereafter — modules
// themselves must not hold per-solution mutable state; anything
// per-route or per-solution belongs on solution.RouteContext /
// solution.SolutionContext instead.
type Pipeline struct {
	registry *solution.StateRegistry

	modules           []ConstraintModule
	hardRoute         []HardRouteConstraint
	hardActivity      []HardActivityConstraint
	softRoute         []SoftRouteConstraint
	softActivity      []SoftActivityConstraint
	routeAccepters    []RouteStateAccepter
	solutionAccepters []SolutionStateAccepter
}

// Option configures a Pipeline at construction time, following the
// teacher's functional-options convention (tsp.Options, core.GraphOption).
type Option func(*Pipeline)

// WithModule adds m to the pipeline, wiring it into whichever
// hard/soft/accepter interfaces it implements.
func WithModule(m ConstraintModule) Option {
	return func(p *Pipeline) { p.addModule(m) }
}

// NewPipeline builds an empty Pipeline configured by opts. registry
// must be the same StateRegistry instance shared by every module that
// calls RegisterExplicit/Register, so collisions across modules are
// actually detected.
func NewPipeline(registry *solution.StateRegistry, opts ...Option) *Pipeline {
	p := &Pipeline{registry: registry}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultPipeline builds the pipeline this engine ships out of the box:
// the timing module plus the actor-limits module.
func DefaultPipeline(registry *solution.StateRegistry) (*Pipeline, error) {
	timing, err := NewTimingModule(registry)
	if err != nil {
		return nil, err
	}
	return NewPipeline(registry,
		WithModule(timing),
		WithModule(NewActorLimitsModule()),
	), nil
}

func (p *Pipeline) addModule(m ConstraintModule) {
	p.modules = append(p.modules, m)
	if v, ok := m.(HardRouteConstraint); ok {
		p.hardRoute = append(p.hardRoute, v)
	}
	if v, ok := m.(HardActivityConstraint); ok {
		p.hardActivity = append(p.hardActivity, v)
	}
	if v, ok := m.(SoftRouteConstraint); ok {
		p.softRoute = append(p.softRoute, v)
	}
	if v, ok := m.(SoftActivityConstraint); ok {
		p.softActivity = append(p.softActivity, v)
	}
	if v, ok := m.(RouteStateAccepter); ok {
		p.routeAccepters = append(p.routeAccepters, v)
	}
	if v, ok := m.(SolutionStateAccepter); ok {
		p.solutionAccepters = append(p.solutionAccepters, v)
	}
}

// Modules returns every module registered with the pipeline, in
// insertion order.
func (p *Pipeline) Modules() []ConstraintModule {
	out := make([]ConstraintModule, len(p.modules))
	copy(out, p.modules)
	return out
}

// AcceptRouteState runs every RouteStateAccepter module against rc, in
// registration order. Callers invoke this after any structural
// mutation to rc's Tour.
func (p *Pipeline) AcceptRouteState(problem *core.Problem, rc *solution.RouteContext) {
	for _, a := range p.routeAccepters {
		a.AcceptRouteState(problem, rc)
	}
}

// AcceptSolutionState runs every SolutionStateAccepter module. Callers
// invoke this once all affected routes have already run AcceptRouteState.
func (p *Pipeline) AcceptSolutionState(problem *core.Problem, sc *solution.SolutionContext) {
	for _, a := range p.solutionAccepters {
		a.AcceptSolutionState(problem, sc)
	}
}

// EvaluateHardActivity returns the first violation reported by any hard
// activity module, or nil if every module accepts the insertion.
func (p *Pipeline) EvaluateHardActivity(problem *core.Problem, rc *solution.RouteContext, actCtx ActivityContext) *ActivityViolation {
	for _, c := range p.hardActivity {
		if v := c.EvaluateActivity(problem, rc, actCtx); v != nil {
			return v
		}
	}
	return nil
}

// EvaluateHardRoute returns the first violation reported by any hard
// route module, or nil if the route is accepted.
func (p *Pipeline) EvaluateHardRoute(problem *core.Problem, rc *solution.RouteContext) *RouteViolation {
	for _, c := range p.hardRoute {
		if v := c.EvaluateRoute(problem, rc); v != nil {
			return v
		}
	}
	return nil
}

// EstimateSoftActivity sums every soft activity module's marginal cost
// estimate for inserting Target at actCtx's position.
func (p *Pipeline) EstimateSoftActivity(problem *core.Problem, rc *solution.RouteContext, actCtx ActivityContext) float64 {
	total := 0.0
	for _, c := range p.softActivity {
		total += c.EstimateActivity(problem, rc, actCtx)
	}
	return total
}

// EstimateSoftRoute sums every soft route module's cost estimate for rc.
func (p *Pipeline) EstimateSoftRoute(problem *core.Problem, rc *solution.RouteContext) float64 {
	total := 0.0
	for _, c := range p.softRoute {
		total += c.EstimateRoute(problem, rc)
	}
	return total
}
