// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package transitivity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMutableDigraphAddRemoveEdge(t *testing.T) {
	g := NewMutableDigraph()
	a := g.AddNode()
	b := g.AddNode()

	e, err := g.AddEdge(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeSize())

	require.NoError(t, g.RemoveEdge(e))
	require.Equal(t, 0, g.EdgeSize())

	err = g.RemoveEdge(e)
	require.Error(t, err, "removing an already-removed edge should fail")
	require.True(t, IsKind(err, InvalidArgument))
}

func TestMutableDigraphAddEdgeInvalidNode(t *testing.T) {
	g := NewMutableDigraph()
	a := g.AddNode()
	_, err := g.AddEdge(a, NI(42))
	require.Error(t, err)
	require.True(t, IsKind(err, InvalidArgument))
}

func TestMutableDigraphRemoveNodeLeavesHole(t *testing.T) {
	g := NewMutableDigraph()
	a := g.AddNode()
	b := g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode(a))
	require.Equal(t, 1, g.NodeSize())
	require.Nil(t, g.Node(a))
	require.NotNil(t, g.Node(b))
}

func TestNodeIterFailsFastOnMutation(t *testing.T) {
	g := NewMutableDigraph()
	g.AddNode()
	g.AddNode()

	it := g.IterNodes()
	_, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)

	g.AddNode()

	_, _, err = it.Next()
	require.Error(t, err)
	require.True(t, IsKind(err, ConcurrentModification))
}

func TestNodeIterExhausts(t *testing.T) {
	g := NewMutableDigraph()
	g.AddNode()
	g.AddNode()

	it := g.IterNodes()
	count := 0
	for {
		_, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
	}
	require.Equal(t, 2, count)
}

func TestMutableDigraphFilter(t *testing.T) {
	g := NewMutableDigraph()
	a := g.AddNode()
	b := g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	g.SetFilter(&nodeIDFilter{hide: b})
	require.Equal(t, 1, len(g.Nodes()))
	require.Nil(t, g.Node(b))
}

// nodeIDFilter hides a single node id and never filters edges; used
// only by this test file to exercise Filter wiring.
type nodeIDFilter struct{ hide NI }

func (f *nodeIDFilter) FilterNode(n Node) bool { return n.NodeID() == f.hide }
func (f *nodeIDFilter) FilterEdge(e Edge) bool { return false }

// TestMutableDigraphEdgeFilterAppliesDuringTraversal guards against the
// edge iterator silently ignoring FilterEdge: without it, a direct
// 0->2 arc would wrongly be treated as reachable once filtered out.
func TestMutableDigraphEdgeFilterAppliesDuringTraversal(t *testing.T) {
	g := NewMutableDigraph()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	_, err := g.AddEdge(a, b)
	require.NoError(t, err)
	shortcut, err := g.AddEdge(a, c)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c)
	require.NoError(t, err)

	count := 0
	for e := g.Node(a).Out(); e != nil; e = e.Next() {
		count++
	}
	require.Equal(t, 2, count, "unfiltered node 0 should see both out-edges")

	g.SetFilter(&edgeFilter{hide: shortcut})
	count = 0
	for e := g.Node(a).Out(); e != nil; e = e.Next() {
		count++
		require.NotEqual(t, c, e.Target().NodeID(), "filtered edge should not appear during traversal")
	}
	require.Equal(t, 1, count)

	cc := BuildCompactClosure(g)
	require.True(t, cc.Reaches(a, c), "a should still reach c via b once the direct shortcut is filtered")
}

// edgeFilter hides one specific edge (by identity) and never filters
// nodes.
type edgeFilter struct{ hide Edge }

func (f *edgeFilter) FilterNode(n Node) bool { return false }
func (f *edgeFilter) FilterEdge(e Edge) bool {
	it, ok := e.(*mutEdgeIter)
	if !ok {
		return false
	}
	return it.edges[it.i] == f.hide.(*mutEdge)
}
