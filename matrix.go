// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// matrix.go
//
// The dense-matrix materializer (spec §4.6) and the get-only Matrix
// view over a CompactClosure (spec §6's Transitivity.compactClosure).

package transitivity

import "github.com/soniakeys/bits"

// Matrix answers reachability pair queries. Get is the only supported
// operation; Set always panics with an UnsupportedOperation error, per
// spec §6 (compactClosure's result is immutable).
type Matrix interface {
	Get(u, v NI) bool
	Set(u, v NI, val bool)
}

// CompactMatrix is the get-only Matrix backed directly by a
// CompactClosure: Get costs O(log k), no extra memory is used beyond
// the closure itself.
type CompactMatrix struct {
	cc *CompactClosure
}

func (m *CompactMatrix) Get(u, v NI) bool { return m.cc.Reaches(u, v) }

func (m *CompactMatrix) Set(u, v NI, val bool) {
	panic(newError(UnsupportedOperation, "CompactMatrix is read-only; use a DenseBitMatrix to mutate"))
}

// DenseBitMatrix is a fully materialized reachability matrix, one
// expandable bit vector per row rather than a single contiguous n²
// buffer — per spec §4.6, this lets chains far longer than
// sqrt(2^31) be addressed (each row is independently sized and
// indexed), subject only to available memory, instead of overflowing a
// single flat bit-buffer length computation.
type DenseBitMatrix struct {
	n    int
	rows []bits.Bits
}

// NewDenseBitMatrix allocates a DenseBitMatrix large enough to address
// n x n node pairs.
func NewDenseBitMatrix(n int) *DenseBitMatrix {
	rows := make([]bits.Bits, n)
	for i := range rows {
		rows[i] = bits.New(n)
	}
	return &DenseBitMatrix{n: n, rows: rows}
}

func (m *DenseBitMatrix) Get(u, v NI) bool {
	return m.rows[u].Bit(int(v)) == 1
}

func (m *DenseBitMatrix) Set(u, v NI, val bool) {
	bit := 0
	if val {
		bit = 1
	}
	m.rows[u].SetBit(int(v), bit)
}

// Closure materializes the full dense reachability matrix for dg by
// enumerating every ordered pair through the compact closure index:
// O(n^2 log k) work, acceptable as the cost of materialization (spec
// §4.6). Prefer CompactClosure.Reaches / Compact for graphs
// whose longest chain approaches sqrt(2^31) nodes.
func Closure(dg Digraph) *DenseBitMatrix {
	cc := BuildCompactClosure(dg)
	return closureFrom(dg, cc)
}

func closureFrom(dg Digraph, cc *CompactClosure) *DenseBitMatrix {
	n := dg.NodeAttrSize()
	m := NewDenseBitMatrix(n)
	filter := dg.GetFilter()
	for _, ni := range dg.Nodes() {
		i := ni.NodeID()
		for _, nj := range dg.Nodes() {
			j := nj.NodeID()
			if filter != nil && (filter.FilterNode(ni) || filter.FilterNode(nj)) {
				continue
			}
			m.Set(i, j, cc.Reaches(i, j))
		}
	}
	return m
}

// AcyclicClosure materializes the dense reachability matrix for a
// digraph known to be a DAG. If topo is non-nil it is used as a
// precomputed topological ordering (node ids in topological order);
// otherwise one is computed by a DFS topological sort equivalent to
// spec §4.3 but over dg's own nodes rather than a quotient.
//
// Because dg is acyclic, every strongly connected component is a
// singleton, so this is simply Closure restricted to a DAG — the
// separate entry point exists because callers with a DAG already in
// hand can skip the SCC pass entirely.
func AcyclicClosure(dg Digraph, topo []NI) *DenseBitMatrix {
	cc := buildAcyclicClosure(dg, topo)
	return closureFrom(dg, cc)
}

// CompactClosureMatrix wraps cc as the get-only Matrix described by
// spec §6's Transitivity.compactClosure.
func CompactClosureMatrix(cc *CompactClosure) Matrix {
	return &CompactMatrix{cc: cc}
}
