// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// Package transitivity computes compact transitive closures over large
// sparse directed graphs.
//
// The package answers reachability queries reaches(u, v) in O(log k) time,
// where k is the number of disjoint reachable intervals for u's strongly
// connected component, without materializing a quadratic reachability
// matrix. It does so in three stages:
//
//  1. Strongly connected components are found with a single-DFS,
//     Pearce-style algorithm (see scc.go), producing a component map, a
//     leader map, and a quotient (condensation) DAG.
//  2. The quotient DAG is given a topological numbering in which sinks
//     receive the smallest numbers (see topo.go).
//  3. Walking the quotient in reverse topological order, each node's
//     reachable set is built by a k-way merge of its successors' interval
//     lists into one flat, append-only range pool (see closure.go).
//
// A dense bitmap materializer and a transitive-reduction driver are built
// on top of the same artifacts (see matrix.go and reduction.go).
//
// This package treats the editable graph container as an external
// collaborator: it consumes a read-only Digraph capability (see graph.go)
// and, at its edges, offers one concrete mutable container
// (MutableDigraph) for callers that need to build or mutate a graph before
// or after running the engine.
package transitivity
