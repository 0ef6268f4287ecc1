// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// scc.go
//
// Strongly-connected-components engine (spec §4.2): a single DFS
// producing a component map, a leader map, and — on request — a
// quotient (condensation) DAG with a back-list of original members per
// quotient node.
//
// Grounded on the teacher's Directed.StronglyConnectedComponents
// (David Pearce's single-DFS algorithm) and Directed.Condensation, with
// the leader/startNum bookkeeping spec.md names kept as explicit,
// separate outputs rather than folded into one rindex array.

package transitivity

import (
	"math"

	"github.com/soniakeys/bits"
)

// Unassigned is the sentinel component id for a node that has not (yet,
// or ever, if filtered) been assigned a strongly connected component.
const Unassigned int32 = math.MaxInt32

// sccResult holds the outputs of the SCC engine.
type sccResult struct {
	component []int32 // per node id; Unassigned if filtered/absent
	leader    []NI    // per node id, representative node of its SCC
	count     int     // number of components found

	// quotient DAG, built only if requested.
	quotient AdjacencyList // componentCount nodes
	members  [][]NI        // quotient node id -> original member node ids
}

// computeSCC runs the single-DFS SCC algorithm over dg. If withQuotient
// is true, a second pass also builds the condensation graph and its
// back-list of members.
func computeSCC(dg Digraph, withQuotient bool) *sccResult {
	n := dg.NodeAttrSize()
	filter := dg.GetFilter()

	component := make([]int32, n)
	for i := range component {
		component[i] = Unassigned
	}
	leader := make([]NI, n)
	for i := range leader {
		leader[i] = -1
	}
	startNum := make([]int32, n)
	for i := range startNum {
		startNum[i] = -1
	}
	discovered := bits.New(n)
	stacked := bits.New(n)

	var stack []NI
	var x int32
	var nextComponent int32

	var visit func(v NI)
	visit = func(v NI) {
		startNum[v] = x
		x++
		leader[v] = v
		discovered.SetBit(int(v), 1)
		stacked.SetBit(int(v), 1)
		stack = append(stack, v)

		node := dg.Node(v)
		for e := node.Out(); e != nil; e = e.Next() {
			t := e.Target().NodeID()
			if component[t] != Unassigned {
				continue // target already finalized: different, earlier SCC
			}
			if discovered.Bit(int(t)) == 0 {
				visit(t)
			}
			if startNum[leader[v]] >= startNum[leader[t]] {
				leader[v] = leader[t]
			}
		}

		if leader[v] != v {
			return // still open: remains on stack for an ancestor to claim
		}
		for {
			last := len(stack) - 1
			w := stack[last]
			stack = stack[:last]
			stacked.SetBit(int(w), 0)
			component[w] = nextComponent
			leader[w] = v
			if w == v {
				break
			}
		}
		nextComponent++
	}

	for _, node := range dg.Nodes() {
		v := node.NodeID()
		if discovered.Bit(int(v)) == 0 {
			visit(v)
		}
	}

	r := &sccResult{component: component, leader: leader, count: int(nextComponent)}
	if withQuotient {
		r.buildQuotient(dg, filter)
	}
	return r
}

// buildQuotient performs the second pass of spec §4.2: one edge (c1, c2)
// for every cross-component arc, parallel quotient edges suppressed by a
// componentCount x componentCount dedup bitmap allocated only for the
// duration of this pass (freed on return, per spec §5).
func (r *sccResult) buildQuotient(dg Digraph, filter Filter) {
	count := r.count
	members := make([][]NI, count)
	for _, node := range dg.Nodes() {
		v := node.NodeID()
		c := r.component[v]
		if c == Unassigned {
			continue
		}
		members[c] = append(members[c], v)
	}

	quotient := make(AdjacencyList, count)
	dedup := make([]bits.Bits, count)
	for i := range dedup {
		dedup[i] = bits.New(count)
	}
	for _, node := range dg.Nodes() {
		from := node.NodeID()
		c1 := r.component[from]
		if c1 == Unassigned {
			continue
		}
		for e := node.Out(); e != nil; e = e.Next() {
			if filter != nil && filter.FilterEdge(e) {
				continue
			}
			to := e.Target().NodeID()
			c2 := r.component[to]
			if c2 == Unassigned || c1 == c2 {
				continue
			}
			row := dedup[c1]
			if row.Bit(int(c2)) == 0 {
				row.SetBit(int(c2), 1)
				quotient[c1] = append(quotient[c1], NI(c2))
			}
		}
	}
	r.quotient = quotient
	r.members = members
	// dedup goes out of scope here and is collected; nothing in the
	// result retains it.
}

// StrongComponents computes the component id of every node of dg.
//
// The returned slice has length dg.NodeAttrSize(); filtered or absent
// nodes hold Unassigned.
func StrongComponents(dg Digraph) []int32 {
	return computeSCC(dg, false).component
}

// StrongComponentLeaders returns, for each node of dg, the representative
// node of its strongly connected component.
func StrongComponentLeaders(dg Digraph) map[NI]NI {
	r := computeSCC(dg, false)
	m := make(map[NI]NI, len(r.leader))
	for _, node := range dg.Nodes() {
		id := node.NodeID()
		m[id] = r.leader[id]
	}
	return m
}

// Quotient builds the condensation (quotient) DAG of dg: one node per
// strongly connected component, with an edge (c1, c2) iff some original
// edge crosses from a c1-member to a c2-member. The returned Digraph's
// node ids are component ids (as in the component map). members[q]
// lists the original nodes collapsed into quotient node q, serving the
// role spec.md's QuotientCompListMapKey attribute plays in the original
// design — exposed directly as a return value (spec §9).
func Quotient(dg Digraph) (quotient Digraph, members [][]NI) {
	r := computeSCC(dg, true)
	return r.quotient.AsDigraph(), r.members
}
