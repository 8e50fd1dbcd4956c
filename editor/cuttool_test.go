package editor

import (
	"testing"

	"flowcanvas/graph"
	"flowcanvas/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cutGraph lays two horizontal edges, one above the other, so a vertical
// sweep can cross them in a known order.
func cutSession() *Session {
	g := &graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Type: "moveNode", Position: graph.Point{X: 0, Y: 0}},
			{ID: "b", Type: "moveNode", Position: graph.Point{X: 100, Y: 0}},
			{ID: "c", Type: "moveNode", Position: graph.Point{X: 0, Y: 50}},
			{ID: "d", Type: "moveNode", Position: graph.Point{X: 100, Y: 50}},
		},
		Edges: []graph.Edge{
			{ID: "e1", Source: "a", Target: "b"},
			{ID: "e2", Source: "c", Target: "d"},
		},
	}
	return NewSession(g, registry.Default())
}

func TestCutSweepMarksAndEmitsOnce(t *testing.T) {
	s := cutSession()

	s.ArmCut()
	assert.True(t, s.CutArmed())

	// First point only anchors the path.
	assert.Empty(t, s.SweepCut(graph.Point{X: 50, Y: -10}))
	// Crossing e1 (y=0) then e2 (y=50) in two sweeps.
	assert.Equal(t, []string{"e1"}, s.SweepCut(graph.Point{X: 50, Y: 25}))
	assert.Equal(t, []string{"e2"}, s.SweepCut(graph.Point{X: 50, Y: 60}))

	emitted := s.DisarmCut()
	assert.Equal(t, []string{"e1", "e2"}, emitted)
	assert.False(t, s.CutArmed())

	// The emission happens exactly once; disarming again yields nothing.
	assert.Nil(t, s.DisarmCut())
}

func TestCutMarkingIsMonotonic(t *testing.T) {
	s := cutSession()
	s.ArmCut()

	s.SweepCut(graph.Point{X: 50, Y: -10})
	s.SweepCut(graph.Point{X: 50, Y: 25})
	// Sweep back across e1; it stays marked and is not re-emitted.
	assert.Empty(t, s.SweepCut(graph.Point{X: 50, Y: -10}))

	assert.Equal(t, []string{"e1"}, s.DisarmCut())
}

func TestCutMarkedEdgeGetsStyleHint(t *testing.T) {
	s := cutSession()
	s.ArmCut()
	s.SweepCut(graph.Point{X: 50, Y: -10})
	s.SweepCut(graph.Point{X: 50, Y: 25})

	edge := s.Graph().FindEdge("e1")
	require.NotNil(t, edge)
	assert.Equal(t, "red", edge.Style["color"])
	assert.Equal(t, "dashed", edge.Style["style"])
}

func TestCancelledCutLeavesNoMarkerResidue(t *testing.T) {
	s := cutSession()
	s.ArmCut()
	s.SweepCut(graph.Point{X: 50, Y: -10})
	s.SweepCut(graph.Point{X: 50, Y: 25})

	// Discard the emitted ids, as the ESC path does.
	require.Equal(t, []string{"e1"}, s.DisarmCut())

	edge := s.Graph().FindEdge("e1")
	require.NotNil(t, edge)
	assert.Nil(t, edge.Style, "the marker hint is transient and must not persist")
}

func TestCutDisarmPreservesUnrelatedStyle(t *testing.T) {
	s := cutSession()
	s.Graph().FindEdge("e1").Style = map[string]string{"width": "2"}

	s.ArmCut()
	s.SweepCut(graph.Point{X: 50, Y: -10})
	s.SweepCut(graph.Point{X: 50, Y: 25})
	s.DisarmCut()

	edge := s.Graph().FindEdge("e1")
	assert.Equal(t, "2", edge.Style["width"])
	assert.NotContains(t, edge.Style, "color")
	assert.NotContains(t, edge.Style, "style")
}

func TestCutDisarmWithNothingMarkedEmitsNothing(t *testing.T) {
	s := cutSession()
	s.ArmCut()
	s.SweepCut(graph.Point{X: 500, Y: 500})
	s.SweepCut(graph.Point{X: 600, Y: 600})

	assert.Nil(t, s.DisarmCut())
}

func TestCutSweepWhileIdleIsNoOp(t *testing.T) {
	s := cutSession()
	assert.Nil(t, s.SweepCut(graph.Point{X: 50, Y: 25}))
	assert.Nil(t, s.DisarmCut())
}

func TestCutStateClearedBetweenSessions(t *testing.T) {
	s := cutSession()

	s.ArmCut()
	s.SweepCut(graph.Point{X: 50, Y: -10})
	s.SweepCut(graph.Point{X: 50, Y: 25})
	require.Equal(t, []string{"e1"}, s.DisarmCut())

	// A new session starts from a clean slate; e1 is already marked only
	// in the style hint, not in the tool.
	s.ArmCut()
	s.SweepCut(graph.Point{X: 50, Y: 60})
	assert.Nil(t, s.DisarmCut(), "no crossings in the second session")
}

func TestCutCommitDeletesEmittedEdges(t *testing.T) {
	s := cutSession()

	s.ArmCut()
	s.SweepCut(graph.Point{X: 50, Y: -10})
	s.SweepCut(graph.Point{X: 50, Y: 60})

	ids := s.DisarmCut()
	require.Equal(t, []string{"e1", "e2"}, ids)
	s.DeleteEdges(ids)

	assert.Empty(t, s.Graph().Edges)
	assert.Len(t, s.Graph().Nodes, 4, "cutting edges never touches nodes")
}
