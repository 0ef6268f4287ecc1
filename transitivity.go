// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// transitivity.go
//
// The package-level façade (spec §6): the small set of entry points an
// application actually calls, each a thin wrapper over the engine types
// defined elsewhere in the package.

package transitivity

// Compact builds the interval-encoded reachability index for dg
// and wraps it as a read-only Matrix (spec's Transitivity.compactClosure).
func Compact(dg Digraph) Matrix {
	return CompactClosureMatrix(BuildCompactClosure(dg))
}

// AcyclicCompact is Compact specialized for digraphs already
// known to be acyclic: it skips the SCC pass. topo, if non-nil, must be
// a conventional (sources-first) topological order of dg's nodes.
func AcyclicCompact(dg Digraph, topo []NI) Matrix {
	return CompactClosureMatrix(buildAcyclicClosure(dg, topo))
}

// DenseClosure is spec's Transitivity.closure: the fully materialized
// n x n reachability matrix.
func DenseClosure(dg Digraph) *DenseBitMatrix {
	return Closure(dg)
}

// Close adds every missing transitive edge to mdg in place, making it
// transitively closed, and returns the edges that were added.
//
// It computes reachability once via BuildCompactClosure, then adds a
// direct edge for every pair (u, v), u != v, such that v is reachable
// from u but no direct edge (u, v) already exists.
func Close(mdg *MutableDigraph) ([]AddedEdge, error) {
	cc := BuildCompactClosure(mdg)
	direct := make(map[[2]NI]bool, mdg.EdgeSize())
	for _, node := range mdg.Nodes() {
		u := node.NodeID()
		for e := node.Out(); e != nil; e = e.Next() {
			direct[[2]NI{u, e.Target().NodeID()}] = true
		}
	}

	var added []AddedEdge
	nodes := mdg.Nodes()
	for _, ni := range nodes {
		u := ni.NodeID()
		for _, nj := range nodes {
			v := nj.NodeID()
			if u == v || direct[[2]NI{u, v}] {
				continue
			}
			if !cc.Reaches(u, v) {
				continue
			}
			if _, err := mdg.AddEdge(u, v); err != nil {
				return added, err
			}
			added = append(added, AddedEdge{From: u, To: v})
		}
	}
	return added, nil
}

// AcyclicReduceInPlace is spec's Transitivity.acyclicReduce: it computes
// the transitive reduction of dg (which must be acyclic) and returns it
// as a new graph alongside the edges that were dropped.
func AcyclicReduceInPlace(dg Digraph) (*MutableDigraph, []RemovedEdge) {
	return AcyclicReduce(dg)
}

// ReduceGraph is spec's Transitivity.reduce: the general (possibly
// cyclic) transitive reduction, returning the reduced graph, the edges
// removed and added in the process, and the node-id correspondence
// (nMap) between dg and the returned graph.
func ReduceGraph(dg Digraph) (reduced *MutableDigraph, removed []RemovedEdge, added []AddedEdge, nMap map[NI]NI) {
	return Reduce(dg)
}
