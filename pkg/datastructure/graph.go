package datastructure

import (
	"github.com/lintang-b-s/osmroute/pkg/geo"
)

// Node vertex of the road graph. identity is the internal dense id assigned
// during ingestion, equality and hashing go by id only.
type Node struct {
	lat float32
	lon float32
	id  int32
}

// NewNode bare node without spatial attributes, used by graph algorithms
// that do not care about geometry.
func NewNode(id int32) *Node {
	return &Node{id: id}
}

func NewRoadNode(id int32, lat, lon float32) *Node {
	return &Node{
		id:  id,
		lat: lat,
		lon: lon,
	}
}

func (n *Node) GetID() int32 {
	return n.id
}

func (n *Node) GetLat() float64 {
	return float64(n.lat)
}

func (n *Node) GetLon() float64 {
	return float64(n.lon)
}

func (n *Node) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(n.GetLat(), n.GetLon())
}

// Edge directed road segment. immutable once inserted into a graph.
// cost is the traversal time in seconds at the way speed limit, wayId groups
// edges that belong to the same openstreetmap way.
type Edge struct {
	source      *Node
	destination *Node
	cost        float64
	wayId       int32
}

func NewEdge(source, destination *Node, cost float64, wayId int32) *Edge {
	return &Edge{
		source:      source,
		destination: destination,
		cost:        cost,
		wayId:       wayId,
	}
}

func (e *Edge) GetSource() *Node {
	return e.source
}

func (e *Edge) GetDestination() *Node {
	return e.destination
}

func (e *Edge) GetCost() float64 {
	return e.cost
}

func (e *Edge) GetWayId() int32 {
	return e.wayId
}

// Graph directed multigraph over road nodes. incidence is kept on both
// sides so forward and backward searches are O(degree). reads are safe to
// share across goroutines once the graph is frozen after ingestion.
type Graph struct {
	nodes    map[int32]*Node
	outEdges map[int32][]*Edge
	inEdges  map[int32][]*Edge
	order    []int32 // insertion order of node ids, for deterministic iteration
}

func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[int32]*Node),
		outEdges: make(map[int32][]*Edge),
		inEdges:  make(map[int32][]*Edge),
		order:    make([]int32, 0),
	}
}

// AddNode idempotent by id. returns whether the node was newly inserted,
// an already present node is never replaced.
func (g *Graph) AddNode(n *Node) bool {
	if _, ok := g.nodes[n.id]; ok {
		return false
	}
	g.nodes[n.id] = n
	g.order = append(g.order, n.id)
	return true
}

// RemoveNode removes the node and every incident edge on both sides.
// returns whether the node was present.
func (g *Graph) RemoveNode(n *Node) bool {
	if _, ok := g.nodes[n.id]; !ok {
		return false
	}

	for _, e := range g.outEdges[n.id] {
		g.inEdges[e.destination.id] = removeEdgeFrom(g.inEdges[e.destination.id], e)
	}
	for _, e := range g.inEdges[n.id] {
		g.outEdges[e.source.id] = removeEdgeFrom(g.outEdges[e.source.id], e)
	}

	delete(g.outEdges, n.id)
	delete(g.inEdges, n.id)
	delete(g.nodes, n.id)

	for i, id := range g.order {
		if id == n.id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// AddEdge inserts the edge on both incidence sides. endpoints that are not
// yet part of the graph are inserted first so that every edge always has
// both endpoints present.
func (g *Graph) AddEdge(e *Edge) {
	g.AddNode(e.source)
	g.AddNode(e.destination)
	g.outEdges[e.source.id] = append(g.outEdges[e.source.id], e)
	g.inEdges[e.destination.id] = append(g.inEdges[e.destination.id], e)
}

// RemoveEdge removes the edge from both incidence sides, matching by edge
// identity. returns whether the edge was present.
func (g *Graph) RemoveEdge(e *Edge) bool {
	out := g.outEdges[e.source.id]
	trimmed := removeEdgeFrom(out, e)
	if len(trimmed) == len(out) {
		return false
	}
	g.outEdges[e.source.id] = trimmed
	g.inEdges[e.destination.id] = removeEdgeFrom(g.inEdges[e.destination.id], e)
	return true
}

func removeEdgeFrom(edges []*Edge, e *Edge) []*Edge {
	for i, cand := range edges {
		if cand == e {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

func (g *Graph) ContainsNodeId(id int32) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) GetNodeById(id int32) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// OutgoingEdges view over the outgoing edges of n. stable while the graph
// is not mutated, callers must not modify it.
func (g *Graph) OutgoingEdges(n *Node) []*Edge {
	return g.outEdges[n.id]
}

func (g *Graph) IncomingEdges(n *Node) []*Edge {
	return g.inEdges[n.id]
}

func (g *Graph) NumberOfNodes() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	m := 0
	for _, edges := range g.outEdges {
		m += len(edges)
	}
	return m
}

// GetNodes nodes in insertion order.
func (g *Graph) GetNodes() []*Node {
	nodes := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.nodes[id])
	}
	return nodes
}

// Reverse returns a graph in which every edge orientation is flipped.
// node objects are shared with the original, edge objects are fresh.
// used for backward one-to-many searches.
func (g *Graph) Reverse() *Graph {
	reversed := NewGraph()
	for _, id := range g.order {
		reversed.AddNode(g.nodes[id])
	}
	for _, id := range g.order {
		for _, e := range g.outEdges[id] {
			reversed.AddEdge(NewEdge(e.destination, e.source, e.cost, e.wayId))
		}
	}
	return reversed
}

func (g *Graph) GetHaversineDistanceFromUtoV(u, v *Node) float64 {
	return geo.CalculateHaversineDistance(u.GetLat(), u.GetLon(), v.GetLat(), v.GetLon())
}
