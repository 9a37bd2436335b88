package datastructure

import (
	"testing"
)

func TestAddNodeIdempotent(t *testing.T) {
	g := NewGraph()
	one := NewNode(1)

	if !g.AddNode(one) {
		t.Error("first insertion should report newly inserted")
	}
	if g.AddNode(NewNode(1)) {
		t.Error("second insertion of the same id should report not inserted")
	}

	got, ok := g.GetNodeById(1)
	if !ok || got != one {
		t.Error("an existing node must never be replaced")
	}
	if g.NumberOfNodes() != 1 {
		t.Errorf("want 1 node, got %d", g.NumberOfNodes())
	}
}

func TestAddEdgeKeepsIncidenceInSync(t *testing.T) {
	g := NewGraph()
	one, two, three := NewNode(1), NewNode(2), NewNode(3)

	eOneTwo := NewEdge(one, two, 5, 0)
	eTwoThree := NewEdge(two, three, 7, 0)
	g.AddEdge(eOneTwo)
	g.AddEdge(eTwoThree)

	if !g.ContainsNodeId(1) || !g.ContainsNodeId(2) || !g.ContainsNodeId(3) {
		t.Fatal("edge endpoints must be present after insertion")
	}

	if len(g.OutgoingEdges(one)) != 1 || g.OutgoingEdges(one)[0] != eOneTwo {
		t.Error("outgoing incidence of node 1 wrong")
	}
	if len(g.IncomingEdges(two)) != 1 || g.IncomingEdges(two)[0] != eOneTwo {
		t.Error("incoming incidence of node 2 wrong")
	}
	if g.NumberOfEdges() != 2 {
		t.Errorf("want 2 edges, got %d", g.NumberOfEdges())
	}
}

func TestRemoveNodeDropsIncidentEdges(t *testing.T) {
	g := NewGraph()
	one, two, three := NewNode(1), NewNode(2), NewNode(3)

	g.AddEdge(NewEdge(one, two, 1, 0))
	g.AddEdge(NewEdge(two, three, 1, 0))
	g.AddEdge(NewEdge(three, one, 1, 0))

	if !g.RemoveNode(two) {
		t.Fatal("node 2 was present")
	}
	if g.RemoveNode(two) {
		t.Error("removing an absent node should report false")
	}

	checkIncidenceConsistent(t, g)

	if len(g.OutgoingEdges(one)) != 0 {
		t.Error("edge 1->2 must be gone after removing node 2")
	}
	if len(g.IncomingEdges(three)) != 0 {
		t.Error("edge 2->3 must be gone after removing node 2")
	}
	if g.NumberOfEdges() != 1 {
		t.Errorf("only 3->1 should survive, got %d edges", g.NumberOfEdges())
	}
}

func TestRemoveEdge(t *testing.T) {
	g := NewGraph()
	one, two := NewNode(1), NewNode(2)

	first := NewEdge(one, two, 1, 0)
	second := NewEdge(one, two, 2, 1) // parallel edge, multigraph
	g.AddEdge(first)
	g.AddEdge(second)

	if !g.RemoveEdge(first) {
		t.Fatal("edge was present")
	}
	if g.RemoveEdge(first) {
		t.Error("removing an absent edge should report false")
	}

	if len(g.OutgoingEdges(one)) != 1 || g.OutgoingEdges(one)[0] != second {
		t.Error("the parallel edge must survive")
	}
	checkIncidenceConsistent(t, g)
}

func TestGetNodesDeterministicOrder(t *testing.T) {
	g := NewGraph()
	ids := []int32{5, 3, 9, 1, 7}
	for _, id := range ids {
		g.AddNode(NewNode(id))
	}

	for i, n := range g.GetNodes() {
		if n.GetID() != ids[i] {
			t.Fatalf("iteration order must follow insertion order, pos %d: want %d got %d",
				i, ids[i], n.GetID())
		}
	}
}

func TestReverse(t *testing.T) {
	g := NewGraph()
	one, two, three := NewNode(1), NewNode(2), NewNode(3)
	g.AddEdge(NewEdge(one, two, 5, 0))
	g.AddEdge(NewEdge(two, three, 7, 1))

	r := g.Reverse()

	if r.NumberOfNodes() != 3 || r.NumberOfEdges() != 2 {
		t.Fatalf("reversed graph has %d nodes, %d edges", r.NumberOfNodes(), r.NumberOfEdges())
	}

	out := r.OutgoingEdges(two)
	if len(out) != 1 || out[0].GetDestination() != one || out[0].GetCost() != 5 {
		t.Error("edge 1->2 must become 2->1 with the same cost")
	}
	if len(r.OutgoingEdges(one)) != 0 {
		t.Error("node 1 has no outgoing edges in the reversed graph")
	}

	// reversal must not touch the original
	if g.OutgoingEdges(one)[0].GetDestination() != two {
		t.Error("original graph was mutated by Reverse")
	}
}

// checkIncidenceConsistent every edge's endpoints are present and both
// incidence sides agree.
func checkIncidenceConsistent(t *testing.T, g *Graph) {
	t.Helper()
	for _, n := range g.GetNodes() {
		for _, e := range g.OutgoingEdges(n) {
			if !g.ContainsNodeId(e.GetSource().GetID()) || !g.ContainsNodeId(e.GetDestination().GetID()) {
				t.Fatalf("edge %d->%d has a missing endpoint",
					e.GetSource().GetID(), e.GetDestination().GetID())
			}
			found := false
			for _, in := range g.IncomingEdges(e.GetDestination()) {
				if in == e {
					found = true
				}
			}
			if !found {
				t.Fatalf("edge %d->%d missing on the incoming side",
					e.GetSource().GetID(), e.GetDestination().GetID())
			}
		}
		for _, e := range g.IncomingEdges(n) {
			found := false
			for _, out := range g.OutgoingEdges(e.GetSource()) {
				if out == e {
					found = true
				}
			}
			if !found {
				t.Fatalf("edge %d->%d missing on the outgoing side",
					e.GetSource().GetID(), e.GetDestination().GetID())
			}
		}
	}
}
