package datastructure

import (
	"testing"
)

func TestHeapExtractionOrder(t *testing.T) {
	h := NewFourAryHeap[int32]()
	ranks := []float64{5, 1, 4, 2, 3}
	for i, r := range ranks {
		h.Insert(NewPriorityQueueNode(r, int32(i), int32(i)))
	}

	last := -1.0
	for !h.IsEmpty() {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatal(err)
		}
		if node.GetRank() < last {
			t.Fatalf("extraction out of order: %f after %f", node.GetRank(), last)
		}
		last = node.GetRank()
	}
}

func TestHeapTieBreakByNodeId(t *testing.T) {
	h := NewFourAryHeap[int32]()
	// equal rank, insertion order deliberately scrambled
	for _, id := range []int32{9, 2, 7, 1, 5} {
		h.Insert(NewPriorityQueueNode(3.0, id, id))
	}

	want := []int32{1, 2, 5, 7, 9}
	for _, wantId := range want {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatal(err)
		}
		if node.GetItem() != wantId {
			t.Fatalf("tie-break by lowest id: want %d, got %d", wantId, node.GetItem())
		}
	}
}

func TestHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[int32]()
	a := NewPriorityQueueNode(10.0, 1, int32(1))
	b := NewPriorityQueueNode(20.0, 2, int32(2))
	h.Insert(a)
	h.Insert(b)

	if err := h.DecreaseKey(b, 5.0); err != nil {
		t.Fatal(err)
	}

	node, _ := h.ExtractMin()
	if node.GetItem() != 2 {
		t.Error("decreased key must come out first")
	}

	if err := h.DecreaseKey(a, 100.0); err == nil {
		t.Error("increasing a key must be rejected")
	}
}
