package routing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lintang-b-s/osmroute/pkg"
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/metrics"
	"github.com/stretchr/testify/require"
)

// triangle graph: 1->2 cost 5, 2->3 cost 7, 1->3 cost 20.
func buildTriangleGraph() (*da.Graph, []*da.Node) {
	g := da.NewGraph()
	nodes := make([]*da.Node, 4)
	for i := int32(1); i <= 3; i++ {
		nodes[i] = da.NewNode(i)
		g.AddNode(nodes[i])
	}
	g.AddEdge(da.NewEdge(nodes[1], nodes[2], 5, 0))
	g.AddEdge(da.NewEdge(nodes[2], nodes[3], 7, 0))
	g.AddEdge(da.NewEdge(nodes[1], nodes[3], 20, 1))
	return g, nodes
}

func TestDijkstraPrefersCheaperDetour(t *testing.T) {
	g, nodes := buildTriangleGraph()
	dijkstra := NewModuleDijkstra(g)

	path, found := dijkstra.ComputeShortestPath([]*da.Node{nodes[1]}, nodes[3])
	require.True(t, found)

	require.Equal(t, 2, path.Length())
	require.InDelta(t, 12.0, path.GetTotalCost(), 1e-9)
	require.Equal(t, nodes[1], path.GetSource())
	require.Equal(t, nodes[3], path.GetDestination())

	edges := path.GetEdges()
	require.Equal(t, nodes[2], edges[0].GetDestination())
	require.Equal(t, nodes[2], edges[1].GetSource())
}

func TestAStarWithZeroMetricMatchesDijkstra(t *testing.T) {
	g, nodes := buildTriangleGraph()
	astar := NewModuleDijkstra(g, NewAStarModule(metrics.NewZeroMetric()))

	path, found := astar.ComputeShortestPath([]*da.Node{nodes[1]}, nodes[3])
	require.True(t, found)
	require.InDelta(t, 12.0, path.GetTotalCost(), 1e-9)
	require.Equal(t, 2, path.Length())
}

func TestDisconnectedNodesHaveNoPath(t *testing.T) {
	g := da.NewGraph()
	one, two := da.NewNode(1), da.NewNode(2)
	g.AddNode(one)
	g.AddNode(two)

	dijkstra := NewModuleDijkstra(g)
	path, found := dijkstra.ComputeShortestPath([]*da.Node{one}, two)
	require.False(t, found)
	require.Nil(t, path)
}

func TestSourceEqualsDestination(t *testing.T) {
	g, nodes := buildTriangleGraph()
	dijkstra := NewModuleDijkstra(g)

	path, found := dijkstra.ComputeShortestPath([]*da.Node{nodes[1]}, nodes[1])
	require.True(t, found)
	require.Equal(t, 0, path.Length())
	require.Equal(t, 0.0, path.GetTotalCost())
	require.Equal(t, nodes[1], path.GetSource())
	require.Equal(t, nodes[1], path.GetDestination())
}

func TestAbsentEndpointsYieldNoPath(t *testing.T) {
	g, nodes := buildTriangleGraph()
	dijkstra := NewModuleDijkstra(g)

	_, found := dijkstra.ComputeShortestPath([]*da.Node{da.NewNode(99)}, nodes[3])
	require.False(t, found)

	_, found = dijkstra.ComputeShortestPath([]*da.Node{nodes[1]}, da.NewNode(99))
	require.False(t, found)
}

func TestModeFilterExcludesEdges(t *testing.T) {
	g, nodes := buildTriangleGraph()

	// way 0 (the detour over node 2) is car only, way 1 allows foot
	wayModes := func(wayId int32) pkg.ModeMask {
		if wayId == 0 {
			return pkg.CAR.Mask()
		}
		return pkg.CAR.Mask() | pkg.FOOT.Mask()
	}

	walking := NewModuleDijkstra(g, NewTransportationModeModule(wayModes, pkg.FOOT.Mask()))
	path, found := walking.ComputeShortestPath([]*da.Node{nodes[1]}, nodes[3])
	require.True(t, found)
	require.InDelta(t, 20.0, path.GetTotalCost(), 1e-9, "walking must take the direct way")
	require.Equal(t, 1, path.Length())

	// a filter that rejects everything leaving the source
	carOnlyNowhere := NewModuleDijkstra(g, NewTransportationModeModule(
		func(int32) pkg.ModeMask { return pkg.TRAM.Mask() }, pkg.FOOT.Mask()))
	_, found = carOnlyNowhere.ComputeShortestPath([]*da.Node{nodes[1]}, nodes[3])
	require.False(t, found)
}

func TestComputeShortestPathCostsReachable(t *testing.T) {
	g, nodes := buildTriangleGraph()
	dijkstra := NewModuleDijkstra(g)

	costs := dijkstra.ComputeShortestPathCostsReachable([]*da.Node{nodes[1]})

	require.Len(t, costs, 3)
	require.InDelta(t, 0.0, costs[1], 1e-9)
	require.InDelta(t, 5.0, costs[2], 1e-9)
	require.InDelta(t, 12.0, costs[3], 1e-9)
}

func TestMultiSourceSeeding(t *testing.T) {
	g, nodes := buildTriangleGraph()
	dijkstra := NewModuleDijkstra(g)

	path, found := dijkstra.ComputeShortestPath([]*da.Node{nodes[1], nodes[2]}, nodes[3])
	require.True(t, found)
	require.InDelta(t, 7.0, path.GetTotalCost(), 1e-9, "node 2 is the cheaper seed")
	require.Equal(t, nodes[2], path.GetSource())
}

// random road-like grid, a* with the haversine lower bound must settle on
// the same optimum as plain dijkstra for every reachable pair.
func TestAStarHaversineMatchesDijkstraOnGrid(t *testing.T) {
	g, nodes := buildGridGraph(6, 0.02)
	rng := rand.New(rand.NewSource(42))

	crow := metrics.NewAsTheCrowFliesMetric(pkg.MAX_ROAD_SPEED_KMH)
	dijkstra := NewModuleDijkstra(g)
	astar := NewModuleDijkstra(g, NewAStarModule(crow))

	for trial := 0; trial < 200; trial++ {
		s := nodes[rng.Intn(len(nodes))]
		d := nodes[rng.Intn(len(nodes))]

		plainPath, plainFound := dijkstra.ComputeShortestPath([]*da.Node{s}, d)
		astarPath, astarFound := astar.ComputeShortestPath([]*da.Node{s}, d)

		require.Equal(t, plainFound, astarFound)
		if plainFound {
			require.InDelta(t, plainPath.GetTotalCost(), astarPath.GetTotalCost(), 1e-6,
				"query (%d,%d)", s.GetID(), d.GetID())
		}
	}
}

func TestSettledCostsAreMinimal(t *testing.T) {
	g, nodes := buildGridGraph(5, 0.02)
	dijkstra := NewModuleDijkstra(g)

	source := nodes[0]
	costs := dijkstra.ComputeShortestPathCostsReachable([]*da.Node{source})

	// verify against bellman-ford style relaxation to a fixed point
	reference := make(map[int32]float64)
	for _, n := range nodes {
		reference[n.GetID()] = math.MaxFloat64
	}
	reference[source.GetID()] = 0
	for i := 0; i < len(nodes); i++ {
		for _, n := range nodes {
			for _, e := range g.OutgoingEdges(n) {
				if reference[n.GetID()] == math.MaxFloat64 {
					continue
				}
				if cand := reference[n.GetID()] + e.GetCost(); cand < reference[e.GetDestination().GetID()] {
					reference[e.GetDestination().GetID()] = cand
				}
			}
		}
	}

	for id, got := range costs {
		require.InDelta(t, reference[id], got, 1e-9, "node %d", id)
	}
}

// buildGridGraph size x size road nodes spaced spacing degrees apart,
// bidirectional edges with travel time derived from the geometry so the
// haversine bound stays admissible.
func buildGridGraph(size int, spacing float64) (*da.Graph, []*da.Node) {
	g := da.NewGraph()
	nodes := make([]*da.Node, 0, size*size)

	id := int32(0)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			n := da.NewRoadNode(id,
				float32(-7.5+float64(row)*spacing),
				float32(110.3+float64(col)*spacing))
			nodes = append(nodes, n)
			g.AddNode(n)
			id++
		}
	}

	speedMs := 50.0 / 3.6
	connect := func(a, b *da.Node) {
		distM := g.GetHaversineDistanceFromUtoV(a, b) * 1000.0
		cost := distM / speedMs
		g.AddEdge(da.NewEdge(a, b, cost, 0))
		g.AddEdge(da.NewEdge(b, a, cost, 0))
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cur := nodes[row*size+col]
			if col+1 < size {
				connect(cur, nodes[row*size+col+1])
			}
			if row+1 < size {
				connect(cur, nodes[(row+1)*size+col])
			}
		}
	}
	return g, nodes
}
