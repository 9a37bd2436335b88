package spatialindex

import (
	"math"

	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree spatial index over the graph nodes, used to snap a raw coordinate
// of a routing request to the nearest node of the usable road network.
type Rtree struct {
	tr *rtree.RTreeG[*da.Node]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[*da.Node]
	return &Rtree{
		tr: &tr,
	}
}

// Build index every node of the graph as a point box.
func (rt *Rtree) Build(graph *da.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	for _, node := range graph.GetNodes() {
		point := [2]float64{node.GetLon(), node.GetLat()}
		rt.tr.Insert(point, point, node)
	}
	log.Info("R-tree spatial index built.", zap.Int("nodes", graph.NumberOfNodes()))
}

// SearchWithinRadius nodes inside the box whose south-west and north-east
// corners lie radius (in km) from the query point. the box sits inside the
// radius circle, so nodes near the edge of the circle are not returned.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []*da.Node {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]*da.Node, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, node *da.Node) bool {
			results = append(results, node)
			return true
		})
	return results
}

// NearestNode the graph node closest to the query point within radius (in
// km), false when the box around the point is empty.
func (rt *Rtree) NearestNode(qLat, qLon, radius float64) (*da.Node, bool) {
	candidates := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(candidates) == 0 {
		return nil, false
	}

	query := geo.NewCoordinate(qLat, qLon)
	var (
		best     *da.Node
		bestDist = math.MaxFloat64
	)
	for _, node := range candidates {
		dist := geo.AngleDistance(query, node.GetCoordinate())
		if dist < bestDist || (dist == bestDist && node.GetID() < best.GetID()) {
			bestDist = dist
			best = node
		}
	}
	return best, true
}
