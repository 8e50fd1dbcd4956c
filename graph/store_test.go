package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeNodeGraph() *Graph {
	return &Graph{
		Nodes: []Node{
			{ID: "a", Type: "startNode"},
			{ID: "b", Type: "moveNode"},
			{ID: "c", Type: "moveNode"},
		},
		Edges: []Edge{
			{ID: "e1", Source: "a", Target: "b"},
			{ID: "e2", Source: "b", Target: "c"},
		},
	}
}

func TestAddEdgeDropsDangling(t *testing.T) {
	g := threeNodeGraph()
	g.AddEdge(Edge{ID: "e3", Source: "a", Target: "missing"})
	assert.Len(t, g.Edges, 2, "edge to a missing node must never be materialized")

	g.AddEdge(Edge{ID: "e3", Source: "a", Target: "c"})
	assert.Len(t, g.Edges, 3)
}

func TestRemoveNodesPrunesDanglingEdges(t *testing.T) {
	g := threeNodeGraph()
	g.RemoveNodes([]string{"b"})

	assert.Len(t, g.Nodes, 2)
	assert.Empty(t, g.Edges, "edges touching the removed node must be pruned")
}

func TestRemoveEdges(t *testing.T) {
	g := threeNodeGraph()
	g.RemoveEdges([]string{"e1"})

	require.Len(t, g.Edges, 1)
	assert.Equal(t, "e2", g.Edges[0].ID)
}

func TestInternalEdgesRequiresBothEndpoints(t *testing.T) {
	g := threeNodeGraph()

	// Only a-b is internal to {a, b}; b-c has one endpoint outside.
	edges := g.InternalEdges([]string{"a", "b"})
	require.Len(t, edges, 1)
	assert.Equal(t, "e1", edges[0].ID)

	assert.Empty(t, g.InternalEdges([]string{"a"}))
	assert.Len(t, g.InternalEdges([]string{"a", "b", "c"}), 2)
}

func TestSelectionAccessors(t *testing.T) {
	g := threeNodeGraph()
	g.Nodes[0].Selected = true
	g.Nodes[2].Selected = true
	g.Edges[1].Selected = true

	assert.Equal(t, []string{"a", "c"}, g.SelectedNodeIDs())
	assert.Equal(t, []string{"e2"}, g.SelectedEdgeIDs())

	g.ClearSelection()
	assert.Empty(t, g.SelectedNodeIDs())
	assert.Empty(t, g.SelectedEdgeIDs())
}

func TestOutgoingAndIncomingEdges(t *testing.T) {
	g := threeNodeGraph()
	g.AddEdge(Edge{ID: "e3", Source: "a", Target: "c"})

	out := g.OutgoingEdges("a")
	require.Len(t, out, 2)
	assert.Equal(t, "e1", out[0].ID, "outgoing edges keep document order")
	assert.Equal(t, "e3", out[1].ID)

	in := g.IncomingEdges("c")
	require.Len(t, in, 2)
	assert.Empty(t, g.IncomingEdges("a"))
}
