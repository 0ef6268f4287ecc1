// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// topo.go
//
// Topological sort over the quotient DAG (spec §4.3). The numbering
// here is intentionally "reverse topological": sinks receive the
// smallest tsNum, so that the closure builder (closure.go), which
// processes quotient nodes in reverse of the ordinary forward
// topological order, always processes a node's successors before the
// node itself.
//
// Grounded on the teacher's Directed.Topological / dfTopo (a DFS-based
// topological sort with temp/perm bits.Bits marks), adapted to assign
// tsNum by counting up from 0 as each node finishes rather than
// counting down from len(ordering).

package transitivity

import "github.com/soniakeys/bits"

// topoSort computes a topological numbering of the quotient DAG q: for
// every edge (a, b) of q, tsNum[b] < tsNum[a]. Because q is guaranteed
// acyclic (it is a condensation), no cycle-recovery path is needed —
// unlike the teacher's general-purpose Topological, which must handle
// arbitrary (possibly cyclic) input.
//
// order[i] is the quotient node whose tsNum is i, i.e. order is the
// inverse permutation of tsNum; both are returned since the closure
// builder needs to walk nodes by tsNum order while reaches() needs to
// map a node to its tsNum.
func topoSort(q AdjacencyList) (tsNum []int32, order []NI) {
	n := len(q)
	tsNum = make([]int32, n)
	order = make([]NI, n)
	perm := bits.New(n)
	var next int32

	var df func(NI)
	df = func(v NI) {
		perm.SetBit(int(v), 1)
		for _, w := range q[v] {
			if perm.Bit(int(w)) == 0 {
				df(w)
			}
		}
		// v finishes after all its successors: sinks finish first and
		// get the smallest numbers.
		tsNum[v] = next
		order[next] = v
		next++
	}
	for v := 0; v < n; v++ {
		if perm.Bit(v) == 0 {
			df(NI(v))
		}
	}
	return tsNum, order
}
