package editor

import (
	"flowcanvas/geometry"
	"flowcanvas/graph"

	"go.uber.org/zap"
)

// Snapshot is an independent copy of a selection captured at copy time.
// It shares no structure with the live document: later graph mutations
// never change a captured snapshot. Edges are restricted to those with
// both endpoints inside the captured nodes.
type Snapshot struct {
	Nodes []graph.Node
	Edges []graph.Edge
}

// Empty reports whether the snapshot holds no nodes.
func (s Snapshot) Empty() bool {
	return len(s.Nodes) == 0
}

// Copy captures the current selection into the session clipboard,
// overwriting the previous snapshot. With nothing selected it is a no-op
// and the previous snapshot stays usable.
func (s *Session) Copy() {
	ids := s.graph.SelectedNodeIDs()
	if len(ids) == 0 {
		return
	}

	var snap Snapshot
	for _, id := range ids {
		snap.Nodes = append(snap.Nodes, s.graph.FindNode(id).Clone())
	}
	for _, edge := range s.graph.InternalEdges(ids) {
		snap.Edges = append(snap.Edges, edge.Clone())
	}

	s.clipboard = snap
	s.logger.Debug("copied selection",
		zap.Int("nodes", len(snap.Nodes)),
		zap.Int("edges", len(snap.Edges)))
}

// Paste re-instantiates the clipboard snapshot recentered on the anchor
// point: every node lands at anchor + (original - snapshot bounding-box
// center), so the captured shape is preserved exactly. Each paste gets
// fresh ids and becomes the sole selection. Empty clipboard is a no-op.
func (s *Session) Paste(anchor graph.Point) {
	if s.clipboard.Empty() {
		return
	}

	center := geometry.BoundsCenter(s.clipboard.Nodes)
	idMap := make(map[string]string, len(s.clipboard.Nodes))

	s.graph.ClearSelection()
	for _, node := range s.clipboard.Nodes {
		fresh := node.Clone()
		fresh.ID = graph.NewNodeID(node.Type)
		fresh.Position = anchor.Add(node.Position.Sub(center))
		fresh.Selected = true
		idMap[node.ID] = fresh.ID
		s.graph.AddNode(fresh)
	}
	for _, edge := range s.clipboard.Edges {
		fresh := edge.Clone()
		fresh.ID = graph.NewEdgeID()
		fresh.Source = idMap[edge.Source]
		fresh.Target = idMap[edge.Target]
		fresh.Selected = true
		s.graph.AddEdge(fresh)
	}

	s.checkpoint()
	s.logger.Debug("pasted snapshot",
		zap.Int("nodes", len(s.clipboard.Nodes)),
		zap.Float64("x", anchor.X),
		zap.Float64("y", anchor.Y))
}

// Clipboard returns the current snapshot, for inspection.
func (s *Session) Clipboard() Snapshot {
	return s.clipboard
}
