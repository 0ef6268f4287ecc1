// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// graph.go
//
// The read-only Digraph capability the engine consumes, and the
// slice-based AdjacencyList representation most callers will use to
// satisfy it.

package transitivity

// NI is a "node int": a node number, used extensively as a slice index.
//
// Node numbers also account for a significant fraction of the memory
// required to represent a graph, so NI is kept narrow.
type NI int32

// Node is a single vertex of a Digraph.
//
// Node.Out returns the head of this node's outgoing adjacency list; walk
// it with Edge.Next until a nil Edge is reached.
type Node interface {
	NodeID() NI
	Out() Edge
}

// Edge is one arc of a Digraph's intrusive adjacency list.
type Edge interface {
	Source() Node
	Target() Node
	Next() Edge
}

// Filter is a read-only predicate on nodes and edges. The engine skips
// any element for which the predicate returns true.
type Filter interface {
	FilterNode(n Node) bool
	FilterEdge(e Edge) bool
}

// Digraph is the read-only contract the engine consumes. Implementations
// are not required to be safe for concurrent mutation while the engine
// is running against them; see Engine (state.go) and spec §4.8 for the
// lifecycle contract.
type Digraph interface {
	// Nodes iterates the graph's nodes in a stable (for this run), but
	// otherwise unspecified, order.
	Nodes() []Node

	// Node returns the node with the given id, or nil if absent.
	Node(id NI) Node

	// NodeSize returns the number of live nodes.
	NodeSize() int

	// NodeAttrSize returns one past the largest node id ever assigned,
	// suitable for sizing dense per-node attribute arrays.
	NodeAttrSize() int

	// EdgeSize returns the number of edges.
	EdgeSize() int

	// GetFilter returns the active filter, or nil if none is set.
	GetFilter() Filter
}

// AdjacencyList represents a graph as a list of neighbors for each node.
// The "node ID" of a node is simply its slice index in the AdjacencyList.
//
// Adjacency lists are inherently directed. Ids are dense: AdjacencyList
// has no notion of a removed node, only an empty neighbor list. Use
// MutableDigraph when holes from removals must be tolerated alongside
// edge removal.
type AdjacencyList [][]NI

// Simple checks for loops and parallel arcs.
//
// A graph is "simple" if it has no loops or parallel arcs. Simple
// returns true, -1 for simple graphs. If a loop or parallel arc is
// found, Simple returns false and a node that is a counterexample.
func (g AdjacencyList) Simple() (s bool, n NI) {
	seen := make(map[NI]bool)
	for i, nbs := range g {
		for k := range seen {
			delete(seen, k)
		}
		for _, nb := range nbs {
			if nb == NI(i) || seen[nb] {
				return false, NI(i)
			}
			seen[nb] = true
		}
	}
	return true, -1
}

// AsDigraph adapts g to the Digraph capability. The returned value
// shares g's backing slices; do not mutate g while the adapter is in use
// by a running engine.
func (g AdjacencyList) AsDigraph() Digraph {
	return &sliceDigraph{al: g}
}

// sliceDigraph adapts an AdjacencyList (and optional filter) to Digraph,
// materializing intrusive Node/Edge views lazily per call. It is the
// idiomatic-Go stand-in for spec.md's Java-shaped Node.out()/Edge.next()
// traversal. Every call to Nodes, Node, Out and Next allocates fresh
// small view values, with or without a filter.
type sliceDigraph struct {
	al     AdjacencyList
	filter Filter
}

// AsFilteredDigraph is like AsDigraph but applies f: filtered nodes are
// excluded from Nodes and Node, and filtered edges are skipped by Out.
func (g AdjacencyList) AsFilteredDigraph(f Filter) Digraph {
	return &sliceDigraph{al: g, filter: f}
}

func (d *sliceDigraph) Nodes() []Node {
	ns := make([]Node, 0, len(d.al))
	for i := range d.al {
		n := &sliceNode{d: d, id: NI(i)}
		if d.filter != nil && d.filter.FilterNode(n) {
			continue
		}
		ns = append(ns, n)
	}
	return ns
}

func (d *sliceDigraph) Node(id NI) Node {
	if id < 0 || int(id) >= len(d.al) {
		return nil
	}
	n := &sliceNode{d: d, id: id}
	if d.filter != nil && d.filter.FilterNode(n) {
		return nil
	}
	return n
}

func (d *sliceDigraph) NodeSize() int { return len(d.Nodes()) }

func (d *sliceDigraph) NodeAttrSize() int { return len(d.al) }

func (d *sliceDigraph) EdgeSize() (m int) {
	for _, nbs := range d.al {
		m += len(nbs)
	}
	return
}

func (d *sliceDigraph) GetFilter() Filter { return d.filter }

type sliceNode struct {
	d  *sliceDigraph
	id NI
}

func (n *sliceNode) NodeID() NI { return n.id }

func (n *sliceNode) Out() Edge {
	nbs := n.d.al[n.id]
	e := &sliceEdge{d: n.d, from: n.id, nbs: nbs, i: 0}
	return e.skipFiltered()
}

type sliceEdge struct {
	d    *sliceDigraph
	from NI
	nbs  []NI
	i    int
}

func (e *sliceEdge) Source() Node { return &sliceNode{d: e.d, id: e.from} }
func (e *sliceEdge) Target() Node { return &sliceNode{d: e.d, id: e.nbs[e.i]} }

func (e *sliceEdge) Next() Edge {
	n := &sliceEdge{d: e.d, from: e.from, nbs: e.nbs, i: e.i + 1}
	return n.skipFiltered()
}

// skipFiltered advances e until it points at an unfiltered edge (or runs
// off the end, in which case nil is returned).
func (e *sliceEdge) skipFiltered() Edge {
	for {
		if e.i >= len(e.nbs) {
			return nil
		}
		if e.d.filter == nil || !e.d.filter.FilterEdge(e) {
			return e
		}
		e.i++
	}
}
