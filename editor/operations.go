package editor

import (
	"encoding/json"

	"flowcanvas/geometry"
	"flowcanvas/graph"
	"flowcanvas/registry"

	"go.uber.org/zap"
)

// Duplicate copies the current selection as a unit when more than one node
// is selected, preserving the edges between them. Otherwise it copies just
// the targeted node (from a context menu) or the lone selected node, with
// no edges. The copies become the sole selection. Empty operand is a no-op.
func (s *Session) Duplicate(targetID string) {
	ids := s.graph.SelectedNodeIDs()
	if len(ids) <= 1 && targetID != "" {
		ids = []string{targetID}
	}
	if len(ids) == 0 {
		return
	}

	clone := s.graph.CloneSubgraph(ids)
	if len(clone.Nodes) == 0 {
		return
	}
	s.checkpoint()
	s.logger.Debug("duplicated subgraph",
		zap.Int("nodes", len(clone.Nodes)),
		zap.Int("edges", len(clone.Edges)))
}

// Delete mirrors Duplicate's branching: with a multi-node selection it
// removes the whole selection plus any explicitly selected edges; with a
// single target it removes just that node. Edges left dangling are pruned
// by the store, not enumerated here.
func (s *Session) Delete(targetID string) {
	ids := s.graph.SelectedNodeIDs()
	edgeIDs := s.graph.SelectedEdgeIDs()
	if len(ids) <= 1 && targetID != "" {
		ids = []string{targetID}
		edgeIDs = nil
	}
	if len(ids) == 0 && len(edgeIDs) == 0 {
		return
	}

	s.graph.RemoveEdges(edgeIDs)
	s.graph.RemoveNodes(ids)
	s.graph.ClearSelection()
	s.checkpoint()
	s.logger.Debug("deleted selection", zap.Strings("nodes", ids))
}

// DeleteEdges removes the given edges, typically the ids emitted by the
// cut tool on deactivation.
func (s *Session) DeleteEdges(ids []string) {
	if len(ids) == 0 {
		return
	}
	s.graph.RemoveEdges(ids)
	s.checkpoint()
	s.logger.Debug("deleted edges", zap.Strings("edges", ids))
}

// ToggleMute flips the muted flag on every selected node whose type
// declares one. Types without a muted field are left untouched; this is a
// capability check, not an error.
func (s *Session) ToggleMute() {
	changed := false
	for i := range s.graph.Nodes {
		node := &s.graph.Nodes[i]
		if !node.Selected || !s.registry.CanMute(node.Type) {
			continue
		}
		if node.Data == nil {
			node.Data = make(map[string]any)
		}
		muted, _ := node.Data["muted"].(bool)
		node.Data["muted"] = !muted
		changed = true
	}
	if changed {
		s.checkpoint()
	}
}

// groupPayload is the document a group node keeps in its data, with member
// positions stored relative to the group's anchor point.
type groupPayload struct {
	Nodes []graph.Node `json:"nodes"`
	Edges []graph.Edge `json:"edges"`
}

// CombineGroup replaces a multi-node selection with one group node that
// owns the subgraph internally. Member positions are stored relative to
// the bounding-box center so ExplodeGroup can re-anchor them wherever the
// group ends up. Requires at least two selected nodes.
func (s *Session) CombineGroup() {
	ids := s.graph.SelectedNodeIDs()
	if len(ids) < 2 {
		return
	}

	var members []graph.Node
	for _, id := range ids {
		members = append(members, s.graph.FindNode(id).Clone())
	}
	anchor := geometry.BoundsCenter(members)

	payload := groupPayload{Edges: s.graph.InternalEdges(ids)}
	for _, member := range members {
		member.Position = member.Position.Sub(anchor)
		member.Selected = false
		payload.Nodes = append(payload.Nodes, member)
	}
	for i := range payload.Edges {
		payload.Edges[i].Selected = false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("failed to encode group payload", zap.Error(err))
		return
	}

	spec, _ := s.registry.Lookup(registry.GroupType)
	group := graph.Node{
		ID:       graph.NewNodeID(registry.GroupType),
		Type:     registry.GroupType,
		Position: anchor,
		Data: map[string]any{
			"label":    "Group",
			"subgraph": string(data),
		},
		Width:  spec.Width,
		Height: spec.Height,
	}

	s.graph.RemoveNodes(ids)
	s.graph.ClearSelection()
	group.Selected = true
	s.graph.AddNode(group)
	s.checkpoint()
	s.logger.Debug("combined group",
		zap.String("group", group.ID),
		zap.Int("members", len(payload.Nodes)))
}

// ExplodeGroup re-materializes a group node's subgraph at the group's
// current position and removes the group node. With no explicit target it
// acts on a lone selected group node. The restored elements become the
// sole selection.
func (s *Session) ExplodeGroup(targetID string) {
	if targetID == "" {
		if ids := s.graph.SelectedNodeIDs(); len(ids) == 1 {
			targetID = ids[0]
		}
	}
	group := s.graph.FindNode(targetID)
	if group == nil || group.Type != registry.GroupType {
		return
	}
	encoded, _ := group.Data["subgraph"].(string)
	if encoded == "" {
		return
	}

	var payload groupPayload
	if err := json.Unmarshal([]byte(encoded), &payload); err != nil {
		s.logger.Warn("failed to decode group payload",
			zap.String("group", group.ID), zap.Error(err))
		return
	}

	anchor := group.Position
	s.graph.RemoveNodes([]string{group.ID})
	s.graph.ClearSelection()

	// A duplicated group carries the same payload as its original, so the
	// recorded ids may already be on canvas; remap those to keep every id
	// unique while an untouched round trip keeps its originals.
	idMap := make(map[string]string, len(payload.Nodes))
	for _, member := range payload.Nodes {
		id := member.ID
		if s.graph.HasNode(id) {
			id = graph.NewNodeID(member.Type)
		}
		idMap[member.ID] = id
		member.ID = id
		member.Position = member.Position.Add(anchor)
		member.Selected = true
		s.graph.AddNode(member)
	}
	for _, edge := range payload.Edges {
		edge.Source = idMap[edge.Source]
		edge.Target = idMap[edge.Target]
		if s.graph.FindEdge(edge.ID) != nil {
			edge.ID = graph.NewEdgeID()
		}
		edge.Selected = true
		s.graph.AddEdge(edge)
	}
	s.checkpoint()
	s.logger.Debug("exploded group", zap.String("group", targetID))
}

// DropPending places a node of the pending palette type at the given
// point, with the registry's default data and measured size. No-op when
// nothing is pending.
func (s *Session) DropPending(at graph.Point) {
	nodeType, ok := s.pending.Take()
	if !ok {
		return
	}

	spec, _ := s.registry.Lookup(nodeType)
	node := graph.Node{
		ID:       graph.NewNodeID(nodeType),
		Type:     nodeType,
		Position: at,
		Data:     s.registry.DefaultData(nodeType),
		Width:    spec.Width,
		Height:   spec.Height,
	}

	s.graph.ClearSelection()
	node.Selected = true
	s.graph.AddNode(node)
	s.checkpoint()
	s.logger.Debug("dropped node", zap.String("id", node.ID))
}
