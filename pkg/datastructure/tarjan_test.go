package datastructure

import (
	"testing"
)

func TestTarjanTaskElementLifecycle(t *testing.T) {
	element := NewTarjanTaskElement(NewNode(1), NewNode(2))

	if element.GetCurrentTask() != TASK_INDEX {
		t.Error("a fresh element starts at INDEX")
	}
	element.ReportTaskAccomplished()
	if element.GetCurrentTask() != TASK_GET_SUCCESSORS {
		t.Error("second step is GET_SUCCESSORS")
	}
	element.ReportTaskAccomplished()
	if element.GetCurrentTask() != TASK_SET_LOWLINK {
		t.Error("third step is SET_LOWLINK")
	}
	element.ReportTaskAccomplished()
	if element.GetCurrentTask() != TASK_DONE {
		t.Error("after three advances the element is done")
	}

	element.ReportTaskAccomplished()
	if element.GetCurrentTask() != TASK_DONE {
		t.Error("done is sticky, a further advance is a no-op")
	}

	if element.GetNode().GetID() != 1 {
		t.Error("node getter")
	}
	if element.GetPredecessor().GetID() != 2 {
		t.Error("predecessor getter")
	}
	if NewTarjanTaskElement(NewNode(1), nil).GetPredecessor() != nil {
		t.Error("a search root has no predecessor")
	}
}

func TestTarjanSimpleComponents(t *testing.T) {
	g := NewGraph()
	one, two, three, four := NewNode(1), NewNode(2), NewNode(3), NewNode(4)
	g.AddNode(one)
	g.AddNode(two)
	g.AddNode(three)
	g.AddNode(four)
	g.AddEdge(NewEdge(one, two, 1, 0))
	g.AddEdge(NewEdge(two, one, 1, 0))
	g.AddEdge(NewEdge(three, four, 1, 0))

	sccs := NewTarjanSCC(g).ComputeSccs()

	if len(sccs) != 3 {
		t.Fatalf("want 3 sccs, got %d", len(sccs))
	}

	sizes := make(map[int32]int)
	for _, scc := range sccs {
		for _, n := range scc {
			sizes[n.GetID()] = len(scc)
		}
	}
	if sizes[1] != 2 || sizes[2] != 2 {
		t.Error("nodes 1 and 2 form one component")
	}
	if sizes[3] != 1 || sizes[4] != 1 {
		t.Error("nodes 3 and 4 are singleton components")
	}
}

func TestTarjanEveryNodeInExactlyOneScc(t *testing.T) {
	g := buildTwoCyclesGraph()

	sccs := NewTarjanSCC(g).ComputeSccs()

	seen := make(map[int32]int)
	for _, scc := range sccs {
		for _, n := range scc {
			seen[n.GetID()]++
		}
	}
	if len(seen) != g.NumberOfNodes() {
		t.Fatalf("%d of %d nodes assigned", len(seen), g.NumberOfNodes())
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("node %d appears in %d sccs", id, count)
		}
	}
}

func TestTarjanMutualReachabilityWithinScc(t *testing.T) {
	g := buildTwoCyclesGraph()

	for _, scc := range NewTarjanSCC(g).ComputeSccs() {
		for _, a := range scc {
			reachable := reachableFrom(g, a)
			for _, b := range scc {
				if _, ok := reachable[b.GetID()]; !ok {
					t.Fatalf("node %d cannot reach node %d inside one scc",
						a.GetID(), b.GetID())
				}
			}
		}
	}
}

func TestTarjanCondensationIsAcyclic(t *testing.T) {
	g := buildTwoCyclesGraph()

	sccOf := make(map[int32]int)
	for i, scc := range NewTarjanSCC(g).ComputeSccs() {
		for _, n := range scc {
			sccOf[n.GetID()] = i
		}
	}

	// between two distinct components reachability may only go one way
	for _, a := range g.GetNodes() {
		reachable := reachableFrom(g, a)
		for id := range reachable {
			if sccOf[id] == sccOf[a.GetID()] || id == a.GetID() {
				continue
			}
			back, _ := g.GetNodeById(id)
			if _, ok := reachableFrom(g, back)[a.GetID()]; ok {
				t.Fatalf("components of %d and %d reach each other", a.GetID(), id)
			}
		}
	}
}

func TestLargestScc(t *testing.T) {
	g := buildTwoCyclesGraph()

	largest := LargestScc(g)
	if len(largest) != 3 {
		t.Fatalf("largest scc has 3 nodes, got %d", len(largest))
	}
	want := map[int32]bool{3: true, 4: true, 5: true}
	for _, n := range largest {
		if !want[n.GetID()] {
			t.Fatalf("node %d does not belong to the largest scc", n.GetID())
		}
	}
}

// buildTwoCyclesGraph 1<->2, 3->4->5->3, 2->3, 6 isolated.
func buildTwoCyclesGraph() *Graph {
	g := NewGraph()
	nodes := make([]*Node, 7)
	for i := int32(1); i <= 6; i++ {
		nodes[i] = NewNode(i)
		g.AddNode(nodes[i])
	}
	g.AddEdge(NewEdge(nodes[1], nodes[2], 1, 0))
	g.AddEdge(NewEdge(nodes[2], nodes[1], 1, 0))
	g.AddEdge(NewEdge(nodes[2], nodes[3], 1, 0))
	g.AddEdge(NewEdge(nodes[3], nodes[4], 1, 0))
	g.AddEdge(NewEdge(nodes[4], nodes[5], 1, 0))
	g.AddEdge(NewEdge(nodes[5], nodes[3], 1, 0))
	return g
}

func reachableFrom(g *Graph, start *Node) map[int32]struct{} {
	visited := map[int32]struct{}{start.GetID(): {}}
	queue := []*Node{start}
	for len(queue) != 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.OutgoingEdges(u) {
			v := e.GetDestination()
			if _, ok := visited[v.GetID()]; !ok {
				visited[v.GetID()] = struct{}{}
				queue = append(queue, v)
			}
		}
	}
	return visited
}
