package routing

import (
	"github.com/lintang-b-s/osmroute/pkg"
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/metrics"
)

type AlgorithmPolicy uint8

const (
	POLICY_DIJKSTRA AlgorithmPolicy = iota
	POLICY_ASTAR_HAVERSINE
	POLICY_ASTAR_LANDMARKS
)

func ParseAlgorithmPolicy(name string) AlgorithmPolicy {
	switch name {
	case "dijkstra":
		return POLICY_DIJKSTRA
	case "astar":
		return POLICY_ASTAR_HAVERSINE
	case "astar-landmarks":
		return POLICY_ASTAR_LANDMARKS
	default:
		return POLICY_ASTAR_HAVERSINE
	}
}

// ShortestPathComputationFactory assembles a shortest path computation per
// request. all engines share the one frozen graph, landmark material is
// precomputed once and reused across requests.
type ShortestPathComputationFactory struct {
	graph    *da.Graph
	policy   AlgorithmPolicy
	crow     metrics.Metric
	alt      metrics.Metric
	wayModes WayModesLookup
}

// NewShortestPathComputationFactory alt may be nil, POLICY_ASTAR_LANDMARKS
// then falls back to the as-the-crow-flies metric. wayModes may be nil to
// disable mode filtering.
func NewShortestPathComputationFactory(graph *da.Graph, policy AlgorithmPolicy,
	alt metrics.Metric, wayModes WayModesLookup) *ShortestPathComputationFactory {
	return &ShortestPathComputationFactory{
		graph:    graph,
		policy:   policy,
		crow:     metrics.NewAsTheCrowFliesMetric(pkg.MAX_ROAD_SPEED_KMH),
		alt:      alt,
		wayModes: wayModes,
	}
}

// CreateAlgorithm engine wired with the modules of the factory policy plus
// a transportation mode filter for the requested modes.
func (f *ShortestPathComputationFactory) CreateAlgorithm(requestedModes pkg.ModeMask) ShortestPathComputation {
	modules := make([]Module, 0, 2)

	switch f.policy {
	case POLICY_ASTAR_HAVERSINE:
		modules = append(modules, NewAStarModule(f.crow))
	case POLICY_ASTAR_LANDMARKS:
		if f.alt != nil {
			modules = append(modules, NewAStarModule(f.alt))
		} else {
			modules = append(modules, NewAStarModule(f.crow))
		}
	case POLICY_DIJKSTRA:
	}

	if f.wayModes != nil && requestedModes != 0 {
		modules = append(modules, NewTransportationModeModule(f.wayModes, requestedModes))
	}

	return NewModuleDijkstra(f.graph, modules...)
}

func (f *ShortestPathComputationFactory) GetGraph() *da.Graph {
	return f.graph
}
