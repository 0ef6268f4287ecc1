// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package transitivity

import "testing"

func TestStrongComponentsSingleCycle(t *testing.T) {
	// 0 -> 1 -> 2 -> 0, all one component.
	al := AdjacencyList{
		0: {1},
		1: {2},
		2: {0},
	}
	comp := StrongComponents(al.AsDigraph())
	if comp[0] != comp[1] || comp[1] != comp[2] {
		t.Fatalf("expected all nodes in one component, got %v", comp)
	}
}

func TestStrongComponentsDAG(t *testing.T) {
	// 0 -> 1 -> 2, a simple chain: every node its own component.
	al := AdjacencyList{
		0: {1},
		1: {2},
		2: {},
	}
	comp := StrongComponents(al.AsDigraph())
	if comp[0] == comp[1] || comp[1] == comp[2] || comp[0] == comp[2] {
		t.Fatalf("expected three distinct components, got %v", comp)
	}
}

func TestStrongComponentsTwoCycles(t *testing.T) {
	// {0,1} form a cycle, {2,3} form a cycle, 0 -> 2 bridges them.
	al := AdjacencyList{
		0: {1, 2},
		1: {0},
		2: {3},
		3: {2},
	}
	comp := StrongComponents(al.AsDigraph())
	if comp[0] != comp[1] {
		t.Error("0 and 1 should be in the same component")
	}
	if comp[2] != comp[3] {
		t.Error("2 and 3 should be in the same component")
	}
	if comp[0] == comp[2] {
		t.Error("0 and 2 should be in different components")
	}
}

func TestQuotientEdgesDeduped(t *testing.T) {
	// Two parallel cross-component arcs must collapse into one quotient edge.
	al := AdjacencyList{
		0: {1, 1},
		1: {0, 2, 2},
		2: {},
	}
	q, members := Quotient(al.AsDigraph())
	if q.NodeSize() != 2 {
		t.Fatalf("expected 2 quotient nodes, got %d", q.NodeSize())
	}
	total := 0
	for _, m := range members {
		total += len(m)
	}
	if total != 3 {
		t.Fatalf("expected 3 total members across quotient nodes, got %d", total)
	}
	for _, n := range q.Nodes() {
		count := 0
		for e := n.Out(); e != nil; e = e.Next() {
			count++
		}
		if count > 1 {
			t.Fatalf("quotient node %d has %d outgoing edges, parallel arcs should be deduped", n.NodeID(), count)
		}
	}
}

func TestStrongComponentLeaders(t *testing.T) {
	al := AdjacencyList{
		0: {1},
		1: {2},
		2: {0},
	}
	leaders := StrongComponentLeaders(al.AsDigraph())
	if leaders[0] != leaders[1] || leaders[1] != leaders[2] {
		t.Fatalf("all nodes of one SCC should share a leader, got %v", leaders)
	}
}

func TestSelfLoopIsItsOwnComponent(t *testing.T) {
	al := AdjacencyList{
		0: {0, 1},
		1: {},
	}
	comp := StrongComponents(al.AsDigraph())
	if comp[0] == comp[1] {
		t.Fatal("a self-loop should not merge node 0 with node 1")
	}
}
