// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// reduction.go
//
// Transitive reduction (spec §4.7): the acyclic case removes every edge
// (u,v) for which some other direct successor of u already reaches v,
// leaving the minimal edge set with the same reachability relation.
// The general case condenses to the quotient DAG, reduces that, then
// reintroduces one simple cycle per non-trivial component so strong
// connectivity survives the round trip.

package transitivity

import "sort"

// RemovedEdge records an edge dropped by a reduction.
type RemovedEdge struct {
	From, To NI
}

// AddedEdge records an edge introduced to restore strong connectivity
// after Reduce condenses and re-expands a cyclic digraph.
type AddedEdge struct {
	From, To NI
}

// AcyclicReduce computes the transitive reduction of dg, which must be
// acyclic (undefined behavior on cyclic input: use Reduce instead). It
// returns a fresh MutableDigraph holding only the surviving edges, and
// the list of edges removed.
//
// An edge (u,v) survives iff no other direct successor w of u (w != v)
// can also reach v; equivalently, v is not reachable from u by any path
// of length >= 2. This is computed by building the compact closure index
// once (no dense matrix is materialized) and then testing every direct
// edge against it — O(E * outdegree) closure probes of O(log k) each.
func AcyclicReduce(dg Digraph) (*MutableDigraph, []RemovedEdge) {
	cc := buildAcyclicClosure(dg, nil)
	return reduceWithClosure(dg, cc)
}

func reduceWithClosure(dg Digraph, cc *CompactClosure) (*MutableDigraph, []RemovedEdge) {
	out := NewMutableDigraph()
	filter := dg.GetFilter()
	n := dg.NodeAttrSize()
	idMap := make([]NI, n)
	for i := range idMap {
		idMap[i] = -1
	}
	for _, node := range dg.Nodes() {
		idMap[node.NodeID()] = out.AddNode()
	}

	var removed []RemovedEdge
	for _, node := range dg.Nodes() {
		u := node.NodeID()
		var succ []NI
		for e := node.Out(); e != nil; e = e.Next() {
			if filter != nil && filter.FilterEdge(e) {
				continue
			}
			v := e.Target().NodeID()
			if filter != nil && filter.FilterNode(e.Target()) {
				continue
			}
			succ = append(succ, v)
		}
		for _, v := range succ {
			redundant := false
			for _, w := range succ {
				if w == v {
					continue
				}
				if cc.Reaches(w, v) {
					redundant = true
					break
				}
			}
			if redundant {
				removed = append(removed, RemovedEdge{From: u, To: v})
				continue
			}
			if _, err := out.AddEdge(idMap[u], idMap[v]); err != nil {
				panic(err) // idMap is built from the same node set, cannot fail
			}
		}
	}
	return out, removed
}

// Reduce computes a transitive reduction of dg without requiring it to
// be acyclic: it condenses dg to its quotient DAG, reduces that
// transitively, re-expands each quotient node back to its member nodes,
// and restitches each non-trivial strongly connected component with a
// single simple cycle through its members (sufficient to keep every
// member mutually reachable, per spec §4.7).
//
// It returns the reduced graph, the edges removed from the quotient
// (expressed over representative member nodes), the edges added to
// restore the component cycles, and nMap: the original node id -> new
// node id correspondence in the returned graph (the new graph's ids are
// a dense renumbering of dg's).
func Reduce(dg Digraph) (*MutableDigraph, []RemovedEdge, []AddedEdge, map[NI]NI) {
	r := computeSCC(dg, true)
	qTsNum, qOrder := topoSort(r.quotient)
	qDigraph := r.quotient.AsDigraph()

	qcc := &CompactClosure{
		component: make([]int32, len(r.quotient)),
		tsNum:     qTsNum,
		quotient:  r.quotient,
		members:   nil,
		start:     make([]int32, len(r.quotient)),
		end:       make([]int32, len(r.quotient)),
	}
	for i := range qcc.component {
		qcc.component[i] = int32(i)
	}
	qcc.build(qOrder)

	reducedQuotient, _ := reduceWithClosure(qDigraph, qcc)

	out := NewMutableDigraph()
	nMap := make(map[NI]NI, dg.NodeAttrSize())
	for _, node := range dg.Nodes() {
		nMap[node.NodeID()] = out.AddNode()
	}

	var added []AddedEdge
	for _, mem := range r.members {
		if len(mem) < 2 {
			continue
		}
		sorted := append([]NI(nil), mem...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		for i, v := range sorted {
			w := sorted[(i+1)%len(sorted)]
			if _, err := out.AddEdge(nMap[v], nMap[w]); err != nil {
				panic(err)
			}
			added = append(added, AddedEdge{From: v, To: w})
		}
	}

	var removed []RemovedEdge
	for _, node := range reducedQuotient.Nodes() {
		c1 := node.NodeID()
		rep1 := r.members[c1][0]
		for e := node.Out(); e != nil; e = e.Next() {
			c2 := e.Target().NodeID()
			rep2 := r.members[c2][0]
			if _, err := out.AddEdge(nMap[rep1], nMap[rep2]); err != nil {
				panic(err)
			}
		}
	}
	for _, re := range removedQuotientEdges(r, reducedQuotient) {
		removed = append(removed, re)
	}

	return out, removed, added, nMap
}

// removedQuotientEdges reports, as edges between representative member
// nodes, every quotient edge present in the original condensation but
// absent from its reduction.
func removedQuotientEdges(r *sccResult, reduced Digraph) []RemovedEdge {
	kept := make(map[[2]int32]bool)
	for _, node := range reduced.Nodes() {
		c1 := int32(node.NodeID())
		for e := node.Out(); e != nil; e = e.Next() {
			kept[[2]int32{c1, int32(e.Target().NodeID())}] = true
		}
	}
	var out []RemovedEdge
	for c1, nbs := range r.quotient {
		for _, c2 := range nbs {
			if !kept[[2]int32{int32(c1), int32(c2)}] {
				out = append(out, RemovedEdge{From: r.members[c1][0], To: r.members[c2][0]})
			}
		}
	}
	return out
}
