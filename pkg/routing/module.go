package routing

import (
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
)

// Module marker for a dijkstra extension. a module opts into capabilities
// by additionally implementing EdgeConsiderer, DistanceEstimator or
// AbortSignaler; the engine sorts registered modules into the hooks they
// actually provide.
type Module interface {
	isModule()
}

// EdgeConsiderer decides whether an edge takes part in relaxation and may
// adjust its cost. the adjusted cost must not undercut the base cost or
// heuristic admissibility breaks.
type EdgeConsiderer interface {
	ConsiderEdgeForRelaxation(edge *da.Edge, baseCost float64) (float64, bool)
}

// DistanceEstimator lower bound on the remaining cost from node to the
// query destination. estimates of multiple modules combine by maximum,
// which stays admissible when each one is.
type DistanceEstimator interface {
	GetEstimatedDistance(node, destination *da.Node) (float64, bool)
}

// AbortSignaler lets a module terminate the search early. once it returned
// true for a run it must keep returning true.
type AbortSignaler interface {
	ShouldAbort(settledNode *da.Node, settledCost float64) bool
}

// ModuleBase embeddable no-op marker.
type ModuleBase struct{}

func (ModuleBase) isModule() {}
