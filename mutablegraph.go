// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// mutablegraph.go
//
// MutableDigraph, the one concrete mutable graph container this repo
// provides at the edges of the package (spec §1 places the editable
// graph container itself out of scope for the closure engine, but
// Transitivity.close/acyclicReduce/reduce need somewhere concrete to
// add and remove edges). It tracks two monotonic modification counters
// so long-lived iterators can fail fast on structural mutation (spec
// §7 ConcurrentModification, §9).

package transitivity

// MutableDigraph is an adjacency-list digraph that supports adding
// nodes and edges, removing edges, removing nodes (which leaves a hole
// at the removed id), and a Filter. Node ids are never reused: AddNode
// always assigns the next id past the largest one ever assigned.
// Self-loops and parallel edges are allowed.
type MutableDigraph struct {
	nodes   []*mutNode // nil entry = removed node (a hole)
	live    int        // number of non-nil entries in nodes
	edges   int
	nodeMod uint64
	edgeMod uint64
	filter  Filter
}

type mutNode struct {
	id  NI
	out []*mutEdge
}

type mutEdge struct {
	g          *MutableDigraph
	from, to   NI
	removed    bool
}

// NewMutableDigraph returns an empty MutableDigraph.
func NewMutableDigraph() *MutableDigraph {
	return &MutableDigraph{}
}

// AddNode adds a new node and returns its id.
func (g *MutableDigraph) AddNode() NI {
	id := NI(len(g.nodes))
	g.nodes = append(g.nodes, &mutNode{id: id})
	g.live++
	g.nodeMod++
	return id
}

// RemoveNode removes n and all of its outgoing edges, leaving a hole at
// its id. Edges from other nodes that still target n are left in place
// (the caller is responsible for removing them first, just as with the
// teacher's own FromTree/FromList bookkeeping, which never scans the
// whole graph on a single node's removal).
func (g *MutableDigraph) RemoveNode(n NI) error {
	if !g.validID(n) {
		return newErrorf(InvalidArgument, "node %d is not a member of this graph", n)
	}
	g.edges -= len(g.nodes[n].out)
	g.nodes[n] = nil
	g.live--
	g.nodeMod++
	return nil
}

// AddEdge adds an edge from->to and returns it.
func (g *MutableDigraph) AddEdge(from, to NI) (Edge, error) {
	if !g.validID(from) || !g.validID(to) {
		return nil, newErrorf(InvalidArgument, "edge (%d,%d) references a node not in this graph", from, to)
	}
	e := &mutEdge{g: g, from: from, to: to}
	g.nodes[from].out = append(g.nodes[from].out, e)
	g.edges++
	g.edgeMod++
	return e, nil
}

// RemoveEdge removes e, which must have been returned by AddEdge on
// this graph and not already removed.
func (g *MutableDigraph) RemoveEdge(e Edge) error {
	me, ok := e.(*mutEdge)
	if !ok || me.g != g {
		return newError(InvalidArgument, "edge does not belong to this graph")
	}
	if me.removed {
		return newError(InvalidArgument, "edge was already removed")
	}
	out := g.nodes[me.from].out
	for i, o := range out {
		if o == me {
			last := len(out) - 1
			out[i] = out[last]
			g.nodes[me.from].out = out[:last]
			me.removed = true
			g.edges--
			g.edgeMod++
			return nil
		}
	}
	return newError(InvalidArgument, "edge was already removed")
}

// SetFilter installs (or, with nil, clears) the active filter.
func (g *MutableDigraph) SetFilter(f Filter) { g.filter = f }

func (g *MutableDigraph) validID(id NI) bool {
	return id >= 0 && int(id) < len(g.nodes) && g.nodes[id] != nil
}

// Digraph interface.

func (g *MutableDigraph) Nodes() []Node {
	ns := make([]Node, 0, g.live)
	for _, n := range g.nodes {
		if n == nil {
			continue
		}
		if g.filter != nil && g.filter.FilterNode(n) {
			continue
		}
		ns = append(ns, n)
	}
	return ns
}

func (g *MutableDigraph) Node(id NI) Node {
	if !g.validID(id) {
		return nil
	}
	n := g.nodes[id]
	if g.filter != nil && g.filter.FilterNode(n) {
		return nil
	}
	return n
}

func (g *MutableDigraph) NodeSize() int { return g.live }

func (g *MutableDigraph) NodeAttrSize() int { return len(g.nodes) }

func (g *MutableDigraph) EdgeSize() int { return g.edges }

func (g *MutableDigraph) GetFilter() Filter { return g.filter }

func (n *mutNode) NodeID() NI { return n.id }

func (n *mutNode) Out() Edge {
	if len(n.out) == 0 {
		return nil
	}
	it := &mutEdgeIter{edges: n.out, i: 0}
	return it.skipFiltered()
}

// mutEdgeIter walks a single node's out-slice; it is separate from
// mutEdge so that a removed or re-added edge's identity (used by
// RemoveEdge) never gets confused with iteration position.
type mutEdgeIter struct {
	edges []*mutEdge
	i     int
}

func (it *mutEdgeIter) Source() Node { return it.edges[it.i].g.nodes[it.edges[it.i].from] }
func (it *mutEdgeIter) Target() Node { return it.edges[it.i].g.nodes[it.edges[it.i].to] }

func (it *mutEdgeIter) Next() Edge {
	n := &mutEdgeIter{edges: it.edges, i: it.i + 1}
	return n.skipFiltered()
}

// skipFiltered advances it until it points at an unfiltered edge (or runs
// off the end, in which case nil is returned), mirroring sliceEdge's
// method of the same name.
func (it *mutEdgeIter) skipFiltered() Edge {
	for {
		if it.i >= len(it.edges) {
			return nil
		}
		g := it.edges[it.i].g
		if g.filter == nil || !g.filter.FilterEdge(it) {
			return it
		}
		it.i++
	}
}

// NodeIter is a fail-fast iterator over a MutableDigraph's live nodes.
// It snapshots the graph's modification counters at construction and
// checks them on every step, raising ConcurrentModification if the
// graph was mutated since the iterator was issued (spec §7, §9).
type NodeIter struct {
	g           *MutableDigraph
	nodeMod     uint64
	edgeMod     uint64
	i           int
}

// IterNodes returns a fail-fast iterator over g's live, unfiltered
// nodes.
func (g *MutableDigraph) IterNodes() *NodeIter {
	return &NodeIter{g: g, nodeMod: g.nodeMod, edgeMod: g.edgeMod}
}

// Next returns the next node, or (nil, false) at the end of iteration.
// It returns a ConcurrentModification error if g was structurally
// mutated since the iterator was created or since the last call to
// Next.
func (it *NodeIter) Next() (Node, bool, error) {
	if it.g.nodeMod != it.nodeMod || it.g.edgeMod != it.edgeMod {
		return nil, false, newError(ConcurrentModification, "digraph was mutated during iteration")
	}
	for it.i < len(it.g.nodes) {
		n := it.g.nodes[it.i]
		it.i++
		if n == nil {
			continue
		}
		if it.g.filter != nil && it.g.filter.FilterNode(n) {
			continue
		}
		return n, true, nil
	}
	return nil, false, nil
}
