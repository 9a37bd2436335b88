package usecases

import (
	"github.com/lintang-b-s/osmroute/pkg"
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/routing"
)

// ComputationFactory assembles one shortest path computation per request.
type ComputationFactory interface {
	CreateAlgorithm(requestedModes pkg.ModeMask) routing.ShortestPathComputation
	GetGraph() *da.Graph
}

// SpatialIndex nearest-node snapping for coordinate based queries.
type SpatialIndex interface {
	NearestNode(lat, lon, radius float64) (*da.Node, bool)
}
