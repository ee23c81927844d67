package population

import (
	"sort"
	"sync"

	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
)

// Population holds the refinement loop's retained individuals, ranked
// by core.Objective's total order, and tracks the
// exploration/exploitation SelectionPhase hyperheuristic's
// context-aware mutation probabilities consult.
//
// Retention keeps at most MaxSize individuals, always the best seen so
// far under Objective.Compare — since Compare is a total order rather
// than genuine multi-criteria Pareto dominance, "non-dominated" here
// means "not strictly beaten by anything else currently kept", which a
// sorted-and-truncated list satisfies by construction.
type Population struct {
	mu        sync.RWMutex
	objective core.Objective
	maxSize   int

	individuals []*solution.SolutionContext
	fitness     []core.Fitness

	exploitationPatience int
	stale                int
	phase                SelectionPhase
}

// NewPopulation builds an empty Population retaining at most maxSize
// individuals. It switches from Exploration to Exploitation once
// exploitationPatience consecutive Add calls fail to strictly improve
// on the best-kept individual.
func NewPopulation(objective core.Objective, maxSize, exploitationPatience int) *Population {
	if maxSize < 1 {
		maxSize = 1
	}
	if exploitationPatience < 1 {
		exploitationPatience = 1
	}
	return &Population{
		objective:            objective,
		maxSize:              maxSize,
		exploitationPatience: exploitationPatience,
		phase:                Exploration,
	}
}

// Add inserts sc in fitness order, evicting the worst individual if
// the population is already at capacity. Returns true if sc became
// (or tied) the new best individual.
func (p *Population) Add(sc *solution.SolutionContext) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	f := sc.Evaluate()
	strictlyBetter := len(p.individuals) == 0 || p.objective.Compare(f, p.fitness[0]) < 0

	idx := sort.Search(len(p.individuals), func(i int) bool {
		return p.objective.Compare(f, p.fitness[i]) <= 0
	})
	p.individuals = insertAt(p.individuals, idx, sc)
	p.fitness = insertFitnessAt(p.fitness, idx, f)

	if len(p.individuals) > p.maxSize {
		p.individuals = p.individuals[:p.maxSize]
		p.fitness = p.fitness[:p.maxSize]
	}

	if strictlyBetter {
		p.stale = 0
	} else {
		p.stale++
	}
	if p.stale >= p.exploitationPatience {
		p.phase = Exploitation
	} else {
		p.phase = Exploration
	}

	return idx == 0
}

// Best returns the best-ranked individual, or nil if the population is empty.
func (p *Population) Best() *solution.SolutionContext {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.individuals) == 0 {
		return nil
	}
	return p.individuals[0]
}

// Individuals returns a snapshot of every retained individual, best first.
func (p *Population) Individuals() []*solution.SolutionContext {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*solution.SolutionContext, len(p.individuals))
	copy(out, p.individuals)
	return out
}

// Len reports how many individuals are currently retained.
func (p *Population) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.individuals)
}

// SelectionPhase reports the population's current search mode.
func (p *Population) SelectionPhase() SelectionPhase {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.phase
}

func insertAt(s []*solution.SolutionContext, idx int, v *solution.SolutionContext) []*solution.SolutionContext {
	s = append(s, nil)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

func insertFitnessAt(s []core.Fitness, idx int, v core.Fitness) []core.Fitness {
	s = append(s, nil)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}
