package routing

import (
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
)

// tentativeDistance bookkeeping for a relaxed node: best known cost, the
// edge it was reached over and the cached heuristic estimate towards the
// query destination.
type tentativeDistance struct {
	cost       float64
	parentEdge *da.Edge
	estimate   float64
}

func (t *tentativeDistance) getCost() float64 {
	return t.cost
}

func (t *tentativeDistance) getParentEdge() *da.Edge {
	return t.parentEdge
}

// ModuleDijkstra generic dijkstra skeleton driven by a composable set of
// modules. modules influence edge admissibility and cost, contribute
// heuristic estimates (a* is just a module) and may abort the search.
type ModuleDijkstra struct {
	graph *da.Graph

	considerers []EdgeConsiderer
	estimators  []DistanceEstimator
	aborters    []AbortSignaler
}

func NewModuleDijkstra(graph *da.Graph, modules ...Module) *ModuleDijkstra {
	d := &ModuleDijkstra{graph: graph}
	for _, m := range modules {
		d.AddModule(m)
	}
	return d
}

func (d *ModuleDijkstra) AddModule(m Module) {
	if c, ok := m.(EdgeConsiderer); ok {
		d.considerers = append(d.considerers, c)
	}
	if e, ok := m.(DistanceEstimator); ok {
		d.estimators = append(d.estimators, e)
	}
	if a, ok := m.(AbortSignaler); ok {
		d.aborters = append(d.aborters, a)
	}
}

// ComputeShortestPath cheapest path from the source set to destination.
// every source is seeded with cost 0, the queue is keyed by tentative cost
// plus heuristic estimate with ties broken by node id, decrease-key is done
// by lazy insertion with stale entries discarded on pop.
func (d *ModuleDijkstra) ComputeShortestPath(sources []*da.Node, destination *da.Node) (*da.Path, bool) {
	if destination == nil || !d.graph.ContainsNodeId(destination.GetID()) {
		return nil, false
	}

	settled := d.search(sources, destination, true)

	record, ok := settled[destination.GetID()]
	if !ok {
		return nil, false
	}

	// walk parent edges back to the seed the destination was reached from
	edges := make([]*da.Edge, 0)
	cur := record
	for cur.getParentEdge() != nil {
		edges = append(edges, cur.getParentEdge())
		cur = settled[cur.getParentEdge().GetSource().GetID()]
	}

	source := destination
	if len(edges) != 0 {
		source = edges[len(edges)-1].GetSource()
	}

	path := da.NewEmptyPath(source)
	for i := len(edges) - 1; i >= 0; i-- {
		path.AddEdge(edges[i])
	}
	return path, true
}

// ComputeShortestPathCostsReachable final tentative cost for every node
// settled from the source set.
func (d *ModuleDijkstra) ComputeShortestPathCostsReachable(sources []*da.Node) map[int32]float64 {
	settled := d.search(sources, nil, false)

	costs := make(map[int32]float64, len(settled))
	for id, record := range settled {
		costs[id] = record.getCost()
	}
	return costs
}

// search core loop shared by both query forms. destination may be nil to
// run to exhaustion, useEstimates toggles the heuristic part of the queue
// key.
func (d *ModuleDijkstra) search(sources []*da.Node, destination *da.Node,
	useEstimates bool) map[int32]*tentativeDistance {

	relaxed := make(map[int32]*tentativeDistance)
	settled := make(map[int32]*tentativeDistance)
	pq := da.NewFourAryHeap[*da.Node]()

	for _, s := range sources {
		if s == nil || !d.graph.ContainsNodeId(s.GetID()) {
			continue
		}
		if _, ok := relaxed[s.GetID()]; ok {
			continue
		}
		record := &tentativeDistance{cost: 0, estimate: d.estimate(s, destination, useEstimates)}
		relaxed[s.GetID()] = record
		pq.Insert(da.NewPriorityQueueNode(record.cost+record.estimate, s.GetID(), s))
	}

	for !pq.IsEmpty() {
		heapNode, _ := pq.ExtractMin()
		u := heapNode.GetItem()

		if _, done := settled[u.GetID()]; done {
			// stale entry of an already settled node
			continue
		}
		record := relaxed[u.GetID()]
		settled[u.GetID()] = record

		if d.shouldAbort(u, record.getCost()) {
			break
		}
		if destination != nil && u.GetID() == destination.GetID() {
			break
		}

		for _, edge := range d.graph.OutgoingEdges(u) {
			edgeCost, take := d.considerEdge(edge)
			if !take {
				continue
			}

			v := edge.GetDestination()
			if _, done := settled[v.GetID()]; done {
				continue
			}

			newCost := record.getCost() + edgeCost
			known, seen := relaxed[v.GetID()]
			if seen && newCost >= known.getCost() {
				continue
			}

			estimate := 0.0
			if seen {
				estimate = known.estimate
			} else {
				estimate = d.estimate(v, destination, useEstimates)
			}

			relaxed[v.GetID()] = &tentativeDistance{
				cost:       newCost,
				parentEdge: edge,
				estimate:   estimate,
			}
			pq.Insert(da.NewPriorityQueueNode(newCost+estimate, v.GetID(), v))
		}
	}

	return settled
}

// considerEdge every considering module must accept the edge, the adjusted
// cost is the maximum the modules return and never undercuts the base cost.
func (d *ModuleDijkstra) considerEdge(edge *da.Edge) (float64, bool) {
	cost := edge.GetCost()
	for _, c := range d.considerers {
		adjusted, ok := c.ConsiderEdgeForRelaxation(edge, edge.GetCost())
		if !ok {
			return 0, false
		}
		if adjusted > cost {
			cost = adjusted
		}
	}
	return cost, true
}

// estimate heuristic lower bound for node towards destination. applied only
// when every estimating module has a value, combined by maximum.
func (d *ModuleDijkstra) estimate(node, destination *da.Node, useEstimates bool) float64 {
	if !useEstimates || destination == nil || len(d.estimators) == 0 {
		return 0
	}
	best := 0.0
	for _, e := range d.estimators {
		estimate, ok := e.GetEstimatedDistance(node, destination)
		if !ok {
			return 0
		}
		if estimate > best {
			best = estimate
		}
	}
	return best
}

func (d *ModuleDijkstra) shouldAbort(node *da.Node, cost float64) bool {
	for _, a := range d.aborters {
		if a.ShouldAbort(node, cost) {
			return true
		}
	}
	return false
}
