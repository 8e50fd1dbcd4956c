package graph

// FindNode returns a pointer to the node with the given id, or nil.
func (g *Graph) FindNode(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// FindEdge returns a pointer to the edge with the given id, or nil.
func (g *Graph) FindEdge(id string) *Edge {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return &g.Edges[i]
		}
	}
	return nil
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool {
	return g.FindNode(id) != nil
}

// AddNode appends a node to the graph.
func (g *Graph) AddNode(n Node) {
	g.Nodes = append(g.Nodes, n)
}

// AddEdge appends an edge to the graph. Edges whose endpoints are not both
// present are dropped silently, keeping the dangling-edge invariant intact.
func (g *Graph) AddEdge(e Edge) {
	if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
		return
	}
	g.Edges = append(g.Edges, e)
}

// RemoveNodes removes every node whose id is in ids, then prunes any edge
// left dangling by the removal.
func (g *Graph) RemoveNodes(ids []string) {
	if len(ids) == 0 {
		return
	}
	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	kept := g.Nodes[:0]
	for _, node := range g.Nodes {
		if !remove[node.ID] {
			kept = append(kept, node)
		}
	}
	g.Nodes = kept
	g.PruneDanglingEdges()
}

// RemoveEdges removes every edge whose id is in ids.
func (g *Graph) RemoveEdges(ids []string) {
	if len(ids) == 0 {
		return
	}
	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	kept := g.Edges[:0]
	for _, edge := range g.Edges {
		if !remove[edge.ID] {
			kept = append(kept, edge)
		}
	}
	g.Edges = kept
}

// PruneDanglingEdges drops every edge referencing a node that is no longer
// in the graph.
func (g *Graph) PruneDanglingEdges() {
	present := make(map[string]bool, len(g.Nodes))
	for _, node := range g.Nodes {
		present[node.ID] = true
	}

	kept := g.Edges[:0]
	for _, edge := range g.Edges {
		if present[edge.Source] && present[edge.Target] {
			kept = append(kept, edge)
		}
	}
	g.Edges = kept
}

// ClearSelection clears the selected flag on every node and edge.
func (g *Graph) ClearSelection() {
	for i := range g.Nodes {
		g.Nodes[i].Selected = false
	}
	for i := range g.Edges {
		g.Edges[i].Selected = false
	}
}

// SelectedNodeIDs returns the ids of all nodes with the selected flag set,
// in document order.
func (g *Graph) SelectedNodeIDs() []string {
	var ids []string
	for _, node := range g.Nodes {
		if node.Selected {
			ids = append(ids, node.ID)
		}
	}
	return ids
}

// SelectedEdgeIDs returns the ids of all edges with the selected flag set,
// in document order.
func (g *Graph) SelectedEdgeIDs() []string {
	var ids []string
	for _, edge := range g.Edges {
		if edge.Selected {
			ids = append(ids, edge.ID)
		}
	}
	return ids
}

// InternalEdges returns the edges whose source and target are both in the
// given node id set. An edge with both endpoints selected travels with the
// selection even when its own flag is false.
func (g *Graph) InternalEdges(nodeIDs []string) []Edge {
	inside := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		inside[id] = true
	}

	var edges []Edge
	for _, edge := range g.Edges {
		if inside[edge.Source] && inside[edge.Target] {
			edges = append(edges, edge)
		}
	}
	return edges
}

// OutgoingEdges returns the edges whose source is the given node, in
// document order.
func (g *Graph) OutgoingEdges(nodeID string) []Edge {
	var edges []Edge
	for _, edge := range g.Edges {
		if edge.Source == nodeID {
			edges = append(edges, edge)
		}
	}
	return edges
}

// IncomingEdges returns the edges whose target is the given node, in
// document order.
func (g *Graph) IncomingEdges(nodeID string) []Edge {
	var edges []Edge
	for _, edge := range g.Edges {
		if edge.Target == nodeID {
			edges = append(edges, edge)
		}
	}
	return edges
}
