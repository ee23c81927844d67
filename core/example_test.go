package core_test

import (
	"fmt"

	"github.com/routeforge/vrpcore/core"
)

// Example_newProblem builds the smallest possible valid Problem: one
// actor, one job, and shows how Objective.Compare orders two fitness
// vectors produced from route costs plus an unassigned-job penalty.
func Example_newProblem() {
	loc := core.Location(0)
	actor, err := core.NewActor(core.Vehicle{ID: "v1"}, core.Driver{ID: "d1"}, &loc, nil, core.TimeWindow{Start: 0, End: 480})
	if err != nil {
		panic(err)
	}

	job := core.Job{
		ID:   "job-1",
		Kind: core.JobSingle,
		Tasks: []core.Task{
			{Places: []core.Place{{Location: 7, TimeWindow: core.TimeWindow{Start: 0, End: 480}}}},
		},
	}

	problem, err := core.NewProblem(
		[]*core.Job{&job},
		core.Fleet{Actors: []*core.Actor{actor}},
		stubTransport{},
		stubActivity{},
		stubObjective{},
	)
	if err != nil {
		panic(err)
	}

	betterFitness := stubObjective{}.Fitness([]float64{10}, 0)
	worseFitness := stubObjective{}.Fitness([]float64{10}, 1)

	fmt.Println(problem.JobCount())
	fmt.Println(stubObjective{}.Compare(betterFitness, worseFitness))

	// Output:
	// 1
	// -1
}
