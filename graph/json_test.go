package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")
	g := threeNodeGraph()
	g.Viewport = Viewport{X: 10, Y: 20, Zoom: 2}

	require.NoError(t, Save(path, g))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, g.Viewport, loaded.Viewport)
	assert.Len(t, loaded.Nodes, 3)
	assert.Len(t, loaded.Edges, 2)
}

func TestLoadPrunesDanglingEdges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")
	content := `{
  "nodes": [{"id": "a", "type": "startNode", "position": {"x": 0, "y": 0}}],
  "edges": [{"id": "e1", "source": "a", "target": "ghost"}]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, g.Edges, "an edge to an absent node is dropped on load")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nodes:"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
