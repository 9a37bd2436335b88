package routing

import (
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
)

// ShortestPathComputation point-to-point and one-to-all shortest path
// queries over a frozen road graph. implementations are stateless apart
// from per-call allocations and safe to construct per request.
type ShortestPathComputation interface {
	// ComputeShortestPath cheapest path from any of the sources to the
	// destination. the second return is false when the destination is not
	// reachable under the active module filters.
	ComputeShortestPath(sources []*da.Node, destination *da.Node) (*da.Path, bool)

	// ComputeShortestPathCostsReachable final costs of every node reachable
	// from the source set. runs to exhaustion, heuristic estimates are
	// disabled.
	ComputeShortestPathCostsReachable(sources []*da.Node) map[int32]float64
}
