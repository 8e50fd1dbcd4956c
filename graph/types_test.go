package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeCenter(t *testing.T) {
	n := Node{Position: Point{X: 10, Y: 20}, Width: 100, Height: 40}
	assert.Equal(t, Point{X: 60, Y: 40}, n.Center())

	// Unmeasured nodes center on their position.
	unmeasured := Node{Position: Point{X: 5, Y: 5}}
	assert.Equal(t, Point{X: 5, Y: 5}, unmeasured.Center())
}

func TestNodeCloneIsDeep(t *testing.T) {
	n := Node{
		ID:   "moveNode_1",
		Type: "moveNode",
		Data: map[string]any{
			"label":  "Move",
			"nested": map[string]any{"dx": 10},
		},
	}
	c := n.Clone()

	n.Data["label"] = "changed"
	n.Data["nested"].(map[string]any)["dx"] = 99

	assert.Equal(t, "Move", c.Data["label"])
	assert.Equal(t, 10, c.Data["nested"].(map[string]any)["dx"])
}

func TestEdgeCloneIsDeep(t *testing.T) {
	e := Edge{ID: "edge_1", Source: "a", Target: "b", Style: map[string]string{"color": "red"}}
	c := e.Clone()

	e.Style["color"] = "blue"
	assert.Equal(t, "red", c.Style["color"])
}

func TestGraphCloneIndependent(t *testing.T) {
	g := &Graph{
		Nodes: []Node{{ID: "a", Type: "startNode", Data: map[string]any{"label": "Start"}}},
		Edges: []Edge{{ID: "e1", Source: "a", Target: "a"}},
	}
	c := g.Clone()

	g.Nodes[0].Data["label"] = "mutated"
	g.Edges[0].Target = "elsewhere"

	assert.Equal(t, "Start", c.Nodes[0].Data["label"])
	assert.Equal(t, "a", c.Edges[0].Target)
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "startNode_1", Type: "startNode", Position: Point{X: 1.5, Y: 2.5}, Selected: true},
			{ID: "moveNode_1", Type: "moveNode", Data: map[string]any{"muted": true}},
		},
		Edges: []Edge{
			{ID: "edge_1", Source: "startNode_1", Target: "moveNode_1", SourceHandle: "out"},
		},
		Viewport: Viewport{X: -10, Y: 40, Zoom: 1.25},
	}

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var loaded Graph
	require.NoError(t, json.Unmarshal(data, &loaded))

	assert.Equal(t, g.Viewport, loaded.Viewport)
	require.Len(t, loaded.Nodes, 2)
	assert.Equal(t, "startNode_1", loaded.Nodes[0].ID)
	assert.True(t, loaded.Nodes[0].Selected)
	assert.Equal(t, true, loaded.Nodes[1].Data["muted"])
	require.Len(t, loaded.Edges, 1)
	assert.Equal(t, "out", loaded.Edges[0].SourceHandle)
}
