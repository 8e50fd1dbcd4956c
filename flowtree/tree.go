// Package flowtree linearizes a flow graph into a rooted tree for display
// and analysis. The tree is a read-only view: building it never mutates the
// graph, and the renderer and summarizer never mutate the tree.
package flowtree

import "flowcanvas/graph"

// TreeNode carries the displayed attributes of one graph node.
type TreeNode struct {
	ID           string
	Type         string
	Data         map[string]any
	SourceHandle string // Named port of the edge that led here, if any
}

// NodeTree is a rooted, cycle-truncated view of the graph. IsLoop marks a
// node that is a repeated reference to an ancestor already materialized on
// the same path; the producer truncates recursion there instead of
// re-expanding it.
type NodeTree struct {
	Node     TreeNode
	Children []*NodeTree
	IsLoop   bool
}

// Build produces a NodeTree rooted at the given node id, following outgoing
// edges in document order. A child that closes a cycle along the current
// path becomes an IsLoop leaf. A node re-reached along a different path
// (multi-parent convergence) is expanded again: each path sees its own copy
// of the subtree. Returns nil if the root id is not in the graph.
func Build(g *graph.Graph, rootID string) *NodeTree {
	root := g.FindNode(rootID)
	if root == nil {
		return nil
	}
	return buildNode(g, root, "", map[string]bool{})
}

func buildNode(g *graph.Graph, n *graph.Node, sourceHandle string, path map[string]bool) *NodeTree {
	tree := &NodeTree{
		Node: TreeNode{
			ID:           n.ID,
			Type:         n.Type,
			Data:         copyData(n.Data),
			SourceHandle: sourceHandle,
		},
	}
	if path[n.ID] {
		tree.IsLoop = true
		return tree
	}

	for _, edge := range g.OutgoingEdges(n.ID) {
		target := g.FindNode(edge.Target)
		if target == nil {
			continue
		}
		// Each branch gets its own copy of the path so siblings never
		// see each other's ancestry.
		branch := make(map[string]bool, len(path)+1)
		for id := range path {
			branch[id] = true
		}
		branch[n.ID] = true
		tree.Children = append(tree.Children, buildNode(g, target, edge.SourceHandle, branch))
	}
	return tree
}

func copyData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
