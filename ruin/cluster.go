package ruin

import (
	"github.com/routeforge/vrpcore/constraint"
	"github.com/routeforge/vrpcore/core"
	"github.com/routeforge/vrpcore/solution"
	"github.com/routeforge/vrpcore/xrand"
	"github.com/samber/lo"
)

// ClusterRemoval grows a density-based cluster of spatially close assigned
// jobs (a simplified DBSCAN: breadth-first expansion within Epsilon) from
// a random seed and removes the whole cluster.
type ClusterRemoval struct {
	Limit   JobRemovalLimit
	Epsilon float64 // max transport distance between cluster neighbours
}

// NewClusterRemoval builds a ClusterRemoval bounded by limit, growing
// clusters out to epsilon transport-distance units from each member.
func NewClusterRemoval(limit JobRemovalLimit, epsilon float64) *ClusterRemoval {
	return &ClusterRemoval{Limit: limit, Epsilon: epsilon}
}

func (c *ClusterRemoval) Name() string { return "cluster_removal" }

func (c *ClusterRemoval) Run(problem *core.Problem, pipeline *constraint.Pipeline, env *xrand.Environment, sc *solution.SolutionContext) error {
	located := jobLocations(problem, sc)
	if len(located) == 0 {
		return nil
	}
	limit := c.Limit.Count(len(located), env)
	if limit == 0 {
		return nil
	}

	seed := located[env.Intn(len(located))]
	profile := seedProfile(sc, seed.job)

	visited := map[string]bool{seed.job.ID: true}
	cluster := []jobLocation{seed}
	frontier := []jobLocation{seed}

	for len(frontier) > 0 && len(cluster) < limit {
		current := frontier[0]
		frontier = frontier[1:]

		for _, candidate := range located {
			if visited[candidate.job.ID] {
				continue
			}
			d := problem.Transport.Distance(profile, current.loc, candidate.loc, 0)
			if d <= c.Epsilon {
				visited[candidate.job.ID] = true
				cluster = append(cluster, candidate)
				frontier = append(frontier, candidate)
				if len(cluster) >= limit {
					break
				}
			}
		}
	}

	jobs := lo.Map(cluster, func(jl jobLocation, _ int) *core.Job { return jl.job })
	removeJobs(problem, pipeline, sc, jobs)
	return nil
}
