// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package transitivity

import "testing"

func TestReachesChain(t *testing.T) {
	// 0 -> 1 -> 2 -> 3
	al := AdjacencyList{
		0: {1},
		1: {2},
		2: {3},
		3: {},
	}
	cc := BuildCompactClosure(al.AsDigraph())
	for u := NI(0); u <= 3; u++ {
		for v := NI(0); v <= 3; v++ {
			want := v >= u
			if got := cc.Reaches(u, v); got != want {
				t.Errorf("Reaches(%d,%d) = %v, want %v", u, v, got, want)
			}
		}
	}
}

func TestReachesDiamond(t *testing.T) {
	// 0 -> {1,2} -> 3
	al := AdjacencyList{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {},
	}
	cc := BuildCompactClosure(al.AsDigraph())
	if !cc.Reaches(0, 3) {
		t.Error("0 should reach 3 through either branch")
	}
	if cc.Reaches(1, 2) {
		t.Error("1 should not reach 2")
	}
	if cc.Reaches(3, 0) {
		t.Error("3 should not reach 0: the diamond is acyclic")
	}
}

func TestReachesWithinCycle(t *testing.T) {
	al := AdjacencyList{
		0: {1},
		1: {2},
		2: {0},
	}
	cc := BuildCompactClosure(al.AsDigraph())
	for u := NI(0); u <= 2; u++ {
		for v := NI(0); v <= 2; v++ {
			if !cc.Reaches(u, v) {
				t.Errorf("every node of a 3-cycle should reach every other: Reaches(%d,%d) = false", u, v)
			}
		}
	}
}

func TestReachesDisconnected(t *testing.T) {
	al := AdjacencyList{
		0: {1},
		1: {},
		2: {3},
		3: {},
	}
	cc := BuildCompactClosure(al.AsDigraph())
	if cc.Reaches(0, 2) || cc.Reaches(0, 3) || cc.Reaches(2, 0) {
		t.Error("disconnected components should not reach one another")
	}
	if !cc.Reaches(0, 1) || !cc.Reaches(2, 3) {
		t.Error("each component should still reach within itself")
	}
}

func TestReachesSelf(t *testing.T) {
	al := AdjacencyList{0: {}, 1: {}}
	cc := BuildCompactClosure(al.AsDigraph())
	if !cc.Reaches(0, 0) || !cc.Reaches(1, 1) {
		t.Error("every node should reach itself")
	}
}

func TestBuildAcyclicClosureMatchesGeneralPath(t *testing.T) {
	al := AdjacencyList{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {},
	}
	dg := al.AsDigraph()
	general := BuildCompactClosure(dg)
	fast := buildAcyclicClosure(dg, nil)

	for u := NI(0); u <= 3; u++ {
		for v := NI(0); v <= 3; v++ {
			if general.Reaches(u, v) != fast.Reaches(u, v) {
				t.Errorf("Reaches(%d,%d) disagree between general and acyclic paths", u, v)
			}
		}
	}
}

// TestReachesLongChain exercises a chain long enough that the range
// pool must span many k-way merge rounds; it is skipped in -short runs
// since it allocates on the order of 48,000 nodes.
func TestReachesLongChain(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long chain reachability test in -short mode")
	}
	const n = 48000
	al := make(AdjacencyList, n)
	for i := 0; i < n-1; i++ {
		al[i] = []NI{NI(i + 1)}
	}
	cc := BuildCompactClosure(al.AsDigraph())
	if !cc.Reaches(0, n-1) {
		t.Fatal("node 0 should reach the last node of the chain")
	}
	if cc.Reaches(n-1, 0) {
		t.Fatal("the last node should not reach node 0: the chain is acyclic")
	}
	mid := NI(n / 2)
	if !cc.Reaches(0, mid) || cc.Reaches(mid, 0) {
		t.Fatal("midpoint reachability is inconsistent with chain order")
	}
}
