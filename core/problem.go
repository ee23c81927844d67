package core

// Fleet is the set of actors (vehicle+driver+shift) available to serve jobs.
type Fleet struct {
	Actors []*Actor
}

// Problem is the immutable description the engine searches over: jobs,
// fleet, cost oracles, and the objective. Built once by the external
// parsing/config layer (out of scope for this module) and
// shared read-only across every worker goroutine for the lifetime of a
// refinement run.
type Problem struct {
	Jobs      []*Job
	Fleet     Fleet
	Transport TransportCost
	Activity  ActivityCost
	Objective Objective
	jobByID   map[string]*Job
}

// NewProblem validates and constructs a Problem. Every error it returns
// is a configuration fault: solver construction fails before
// the refinement loop starts, and none of these conditions are ever
// re-checked mid-search.
func NewProblem(jobs []*Job, fleet Fleet, transport TransportCost, activity ActivityCost, objective Objective) (*Problem, error) {
	if len(fleet.Actors) == 0 {
		return nil, ErrNoActors
	}
	if transport == nil || activity == nil {
		return nil, ErrMissingCostOracle
	}
	if objective == nil {
		return nil, ErrMissingObjective
	}

	byID := make(map[string]*Job, len(jobs))
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[j.ID]; dup {
			return nil, ErrDuplicateJobID
		}
		byID[j.ID] = j
	}

	return &Problem{
		Jobs:      jobs,
		Fleet:     fleet,
		Transport: transport,
		Activity:  activity,
		Objective: objective,
		jobByID:   byID,
	}, nil
}

// JobByID looks up a job by its ID, returning (nil, false) if absent.
func (p *Problem) JobByID(id string) (*Job, bool) {
	j, ok := p.jobByID[id]
	return j, ok
}

// JobCount returns the total number of jobs in the problem.
func (p *Problem) JobCount() int {
	return len(p.Jobs)
}
