package flowtree

// Box-drawing pieces for the tree output.
const (
	branchMid  = "├── "
	branchLast = "└── "
	barCont    = "│   "
	barBlank   = "    "
)

// convergenceMarker annotates a node reached a second time along one path
// without being a declared loop reference.
const convergenceMarker = "↑ [CONVERGENCE POINT]"

// RenderASCIITree renders the tree as one line per node, depth-first
// pre-order, using box-drawing connectors. Declared loop references get a
// [LOOP_REF] suffix. A node whose id repeats along the current path without
// being flagged as a loop is rendered once more, followed by a convergence
// marker line, and its children are not expanded; this keeps the output
// finite even when the producer failed to truncate a cycle.
func RenderASCIITree(tree *NodeTree) []string {
	if tree == nil {
		return nil
	}
	var lines []string
	renderNode(tree, "", "", "", map[string]bool{}, &lines)
	return lines
}

// renderNode emits the line for one node and recurses into its children.
// The ancestor set is path-local: every child branch receives its own copy,
// so sibling subtrees never see each other's ancestry. Sharing one mutable
// set here would change which nodes get flagged as convergence points.
func renderNode(t *NodeTree, prefix, connector, childBar string, ancestors map[string]bool, lines *[]string) {
	label := t.Node.Type + " (" + t.Node.ID + ")"
	if t.IsLoop {
		label += " [LOOP_REF]"
	}
	if t.Node.SourceHandle != "" {
		label += " [" + t.Node.SourceHandle + "]"
	}
	*lines = append(*lines, prefix+connector+label)

	childPrefix := prefix + childBar

	if !t.IsLoop && ancestors[t.Node.ID] {
		// The producer let a cycle through without flagging it; truncate
		// here instead of recursing forever.
		*lines = append(*lines, childPrefix+convergenceMarker)
		return
	}

	for i, child := range t.Children {
		conn := branchMid
		bar := barCont
		if i == len(t.Children)-1 {
			conn = branchLast
			bar = barBlank
		}

		branch := make(map[string]bool, len(ancestors)+1)
		for id := range ancestors {
			branch[id] = true
		}
		if !t.IsLoop {
			branch[t.Node.ID] = true
		}
		renderNode(child, childPrefix, conn, bar, branch, lines)
	}
}
