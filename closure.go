// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// closure.go
//
// The closure builder (spec §4.4) and the compact reachability index it
// produces (spec §4.5). The builder walks quotient nodes in increasing
// topological-number order — which, thanks to topo.go's sinks-first
// convention, means successors are always built before predecessors —
// merging each node's successors' interval chains with a k-way merge
// over a container/heap priority queue, exactly the pattern the
// teacher's astar.go/dijkstra.go use for their open sets.

package transitivity

import "container/heap"

// CompactClosure is the tuple (component, tsNum, start, end, range
// pool) that answers Reaches in O(log k) time. Once built, it is
// read-only and safe for concurrent queries.
type CompactClosure struct {
	component []int32       // node id -> quotient (component) id
	tsNum     []int32       // quotient id -> topological number (sinks smallest)
	quotient  AdjacencyList // componentCount nodes
	members   [][]NI        // quotient id -> original member node ids

	ranges []IRange // flat, append-only pool
	start  []int32  // quotient id -> first index into ranges
	end    []int32  // quotient id -> last index into ranges (inclusive)
}

// BuildCompactClosure computes the strongly connected components of dg,
// its quotient DAG, a topological numbering of the quotient, and the
// interval-encoded reachable sets for every quotient node.
func BuildCompactClosure(dg Digraph) *CompactClosure {
	r := computeSCC(dg, true)
	tsNum, order := topoSort(r.quotient)

	cc := &CompactClosure{
		component: r.component,
		tsNum:     tsNum,
		quotient:  r.quotient,
		members:   r.members,
		start:     make([]int32, len(r.quotient)),
		end:       make([]int32, len(r.quotient)),
	}
	cc.build(order)
	return cc
}

// build runs the k-way merge described in spec §4.4, processing
// quotient nodes in the order given (ascending tsNum; see topo.go).
func (cc *CompactClosure) build(order []NI) {
	n := len(cc.quotient)
	var arena rangeArena
	var iral []IRange
	rangeHead := make([]int32, n) // quotient id -> arena index of chain head

	var pq rangeQueue

	for _, q := range order {
		cc.start[q] = int32(len(iral))

		pq = pq[:0]
		headIdx := arena.push(IRange{})
		curIdx := headIdx
		current := IRange{}
		rangeHead[q] = headIdx

		for _, t := range cc.quotient[q] {
			h := rangeHead[t]
			pq = append(pq, rqItem{lo: arena.value(h).Lo, idx: h})
		}
		heap.Init(&pq)

		advance := func() {
			arena.setValue(curIdx, current)
			if !current.Empty() {
				iral = append(iral, current)
			}
			next := arena.push(IRange{})
			arena.setNext(curIdx, next)
			curIdx = next
			current = IRange{}
		}

		for pq.Len() > 0 {
			it := heap.Pop(&pq).(rqItem)
			m := arena.value(it.idx)
			if Mergeable(current, m) {
				current.Merge(m)
			} else {
				advance()
				current.Merge(m)
			}
			if next := arena.nextOf(it.idx); next != noNext {
				heap.Push(&pq, rqItem{lo: arena.value(next).Lo, idx: next})
			}
		}

		me := NewIRange(cc.tsNum[q], cc.tsNum[q]+1)
		if Mergeable(current, me) {
			current.Merge(me)
		} else {
			advance()
			current.Merge(me)
		}
		arena.setValue(curIdx, current)
		if !current.Empty() {
			iral = append(iral, current)
		}
		cc.end[q] = int32(len(iral)) - 1
	}
	cc.ranges = iral
}

// rqItem is a priority-queue entry: the head interval of one successor's
// chain, keyed by its Lo.
type rqItem struct {
	lo  int32
	idx int32
}

// rangeQueue implements container/heap, ordered by rqItem.lo — the same
// shape as the teacher's tent/openHeap priority queues in dijkstra.go
// and astar.go.
type rangeQueue []rqItem

func (q rangeQueue) Len() int            { return len(q) }
func (q rangeQueue) Less(i, j int) bool  { return q[i].lo < q[j].lo }
func (q rangeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *rangeQueue) Push(x any)         { *q = append(*q, x.(rqItem)) }
func (q *rangeQueue) Pop() any {
	old := *q
	last := len(old) - 1
	it := old[last]
	*q = old[:last]
	return it
}

// Reaches reports whether v is reachable from u (including u == v).
func (cc *CompactClosure) Reaches(u, v NI) bool {
	cu := cc.component[u]
	cv := cc.component[v]
	if cu == Unassigned || cv == Unassigned {
		return false
	}
	if cu == cv {
		return true
	}
	target := cc.tsNum[cv]
	lo, hi := cc.start[cu], cc.end[cu]
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if cc.ranges[mid].Lo <= target {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return cc.ranges[lo].Contains(target)
}

// Component returns the strongly connected component id of node n.
func (cc *CompactClosure) Component(n NI) int32 { return cc.component[n] }

// ComponentCount returns the number of strongly connected components.
func (cc *CompactClosure) ComponentCount() int { return len(cc.quotient) }

// Quotient returns the condensation DAG and its member back-list.
func (cc *CompactClosure) Quotient() (Digraph, [][]NI) {
	return cc.quotient.AsDigraph(), cc.members
}

// RangeCount returns len(ranges[start[q]..end[q]]) for quotient node q,
// i.e. the number of disjoint intervals in q's reachable set.
func (cc *CompactClosure) RangeCount(q int32) int {
	return int(cc.end[q]-cc.start[q]) + 1
}

// buildAcyclicClosure builds a CompactClosure for a digraph known to be
// acyclic, skipping the SCC pass entirely: every node is its own
// singleton component, so the quotient is (a filtered copy of) dg
// itself. If topo is given it must be a conventional forward
// topological order (sources first); it is reversed internally to
// match this package's sinks-first tsNum convention (see topo.go).
func buildAcyclicClosure(dg Digraph, topo []NI) *CompactClosure {
	n := dg.NodeAttrSize()
	al := make(AdjacencyList, n)
	filter := dg.GetFilter()
	component := make([]int32, n)
	for i := range component {
		component[i] = Unassigned
	}
	members := make([][]NI, n)

	for _, node := range dg.Nodes() {
		from := node.NodeID()
		component[from] = int32(from)
		members[from] = []NI{from}
		var nbs []NI
		for e := node.Out(); e != nil; e = e.Next() {
			if filter != nil && filter.FilterEdge(e) {
				continue
			}
			nbs = append(nbs, e.Target().NodeID())
		}
		al[from] = nbs
	}

	var order []NI
	if topo != nil {
		order = make([]NI, len(topo))
		for i, v := range topo {
			order[len(topo)-1-i] = v
		}
	} else {
		_, order = topoSort(al)
	}
	tsNum := make([]int32, n)
	for i, v := range order {
		tsNum[v] = int32(i)
	}

	cc := &CompactClosure{
		component: component,
		tsNum:     tsNum,
		quotient:  al,
		members:   members,
		start:     make([]int32, n),
		end:       make([]int32, n),
	}
	cc.build(order)
	return cc
}
