// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package transitivity

import "testing"

func TestAdjacencyListSimple(t *testing.T) {
	simple := AdjacencyList{0: {1, 2}, 1: {2}, 2: {}}
	if ok, _ := simple.Simple(); !ok {
		t.Error("expected a simple graph to report Simple")
	}

	withLoop := AdjacencyList{0: {0}}
	if ok, n := withLoop.Simple(); ok || n != 0 {
		t.Errorf("expected a self-loop to be reported, got ok=%v n=%d", ok, n)
	}

	withParallel := AdjacencyList{0: {1, 1}, 1: {}}
	if ok, n := withParallel.Simple(); ok || n != 0 {
		t.Errorf("expected a parallel arc to be reported, got ok=%v n=%d", ok, n)
	}
}

func TestSliceDigraphWithFilter(t *testing.T) {
	al := AdjacencyList{0: {1, 2}, 1: {}, 2: {}}
	dg := al.AsFilteredDigraph(&hideNodeFilter{hide: 1})

	if dg.Node(1) != nil {
		t.Fatal("filtered node should not be returned by Node")
	}
	n0 := dg.Node(0)
	count := 0
	for e := n0.Out(); e != nil; e = e.Next() {
		count++
		if e.Target().NodeID() == 1 {
			t.Fatal("filtered node should not appear as an edge target")
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one unfiltered out-edge from node 0, got %d", count)
	}
}

// hideNodeFilter hides a single node id, consistently on both Nodes/Node
// and any edge that targets it.
type hideNodeFilter struct{ hide NI }

func (f *hideNodeFilter) FilterNode(n Node) bool { return n.NodeID() == f.hide }
func (f *hideNodeFilter) FilterEdge(e Edge) bool { return e.Target().NodeID() == f.hide }
