package datastructure

import (
	"math"
	"testing"
)

func TestPathChainsAndSumsCost(t *testing.T) {
	one, two, three := NewNode(1), NewNode(2), NewNode(3)
	eOneTwo := NewEdge(one, two, 5, 0)
	eTwoThree := NewEdge(two, three, 7, 0)

	p := NewPath(one, []*Edge{eOneTwo, eTwoThree})

	if p.GetSource() != one {
		t.Error("path source must be the first edge's source")
	}
	if p.GetDestination() != three {
		t.Error("path destination must be the last edge's destination")
	}
	if math.Abs(p.GetTotalCost()-12) > 1e-9 {
		t.Errorf("total cost want 12, got %f", p.GetTotalCost())
	}
	if p.Length() != 2 {
		t.Errorf("length want 2, got %d", p.Length())
	}

	edges := p.GetEdges()
	for i := 0; i+1 < len(edges); i++ {
		if edges[i].GetDestination() != edges[i+1].GetSource() {
			t.Fatal("edge destinations must chain")
		}
	}
}

func TestEmptyPath(t *testing.T) {
	s := NewNode(42)
	p := NewEmptyPath(s)

	if p.Length() != 0 {
		t.Error("empty path has length 0")
	}
	if p.GetTotalCost() != 0 {
		t.Error("empty path has cost 0")
	}
	if p.GetSource() != s || p.GetDestination() != s {
		t.Error("source and destination of an empty path are the query source")
	}
}
