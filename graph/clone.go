package graph

import (
	"strings"

	"github.com/google/uuid"
)

// DuplicateOffset is the translation applied to cloned nodes so a duplicate
// never sits exactly on top of its original.
const DuplicateOffset = 50

// NewNodeID generates a fresh node id of the form {type}_{suffix}. The type
// prefix keeps ids recognisable in saved documents and debug output.
func NewNodeID(nodeType string) string {
	return nodeType + "_" + idSuffix()
}

// NewEdgeID generates a fresh edge id.
func NewEdgeID() string {
	return "edge_" + idSuffix()
}

func idSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// SubgraphClone is the result of cloning a set of nodes: the id remapping,
// plus the freshly created nodes and edges (already appended to the graph).
type SubgraphClone struct {
	IDMap map[string]string
	Nodes []Node
	Edges []Edge
}

// CloneSubgraph duplicates the nodes with the given ids, together with every
// edge whose endpoints are both in the set. Edges with only one endpoint
// inside are dropped, never partially rewritten. Clones are offset by
// DuplicateOffset on both axes and become the sole selection, so a chained
// move or duplicate acts on the new copies only. An empty id set is a no-op.
func (g *Graph) CloneSubgraph(ids []string) SubgraphClone {
	if len(ids) == 0 {
		return SubgraphClone{}
	}

	inside := make(map[string]bool, len(ids))
	for _, id := range ids {
		inside[id] = true
	}

	clone := SubgraphClone{IDMap: make(map[string]string, len(ids))}
	for _, node := range g.Nodes {
		if !inside[node.ID] {
			continue
		}
		fresh := node.Clone()
		fresh.ID = NewNodeID(node.Type)
		fresh.Position.X += DuplicateOffset
		fresh.Position.Y += DuplicateOffset
		fresh.Selected = true
		clone.IDMap[node.ID] = fresh.ID
		clone.Nodes = append(clone.Nodes, fresh)
	}
	if len(clone.Nodes) == 0 {
		return SubgraphClone{}
	}

	for _, edge := range g.Edges {
		if !inside[edge.Source] || !inside[edge.Target] {
			continue
		}
		fresh := edge.Clone()
		fresh.ID = NewEdgeID()
		fresh.Source = clone.IDMap[edge.Source]
		fresh.Target = clone.IDMap[edge.Target]
		fresh.Selected = true
		clone.Edges = append(clone.Edges, fresh)
	}

	// The clones become the sole selection.
	g.ClearSelection()
	g.Nodes = append(g.Nodes, clone.Nodes...)
	g.Edges = append(g.Edges, clone.Edges...)

	return clone
}
