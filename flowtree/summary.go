package flowtree

import (
	"fmt"
	"strings"
)

const summaryRule = "========================================"

// SummarizeFlow walks the tree once, depth-first, and reports how many
// times each node type occurs plus any declared loop references. Types are
// listed in order of first encounter. The same path-local cycle guard as
// the renderer keeps the walk finite on malformed input.
func SummarizeFlow(tree *NodeTree) []string {
	counts := make(map[string]int)
	var order []string
	var loopIDs []string
	seenLoop := make(map[string]bool)

	var walk func(t *NodeTree, ancestors map[string]bool)
	walk = func(t *NodeTree, ancestors map[string]bool) {
		if t == nil {
			return
		}
		if _, ok := counts[t.Node.Type]; !ok {
			order = append(order, t.Node.Type)
		}
		counts[t.Node.Type]++

		if t.IsLoop && !seenLoop[t.Node.ID] {
			seenLoop[t.Node.ID] = true
			loopIDs = append(loopIDs, t.Node.ID)
		}
		if !t.IsLoop && ancestors[t.Node.ID] {
			return
		}
		for _, child := range t.Children {
			branch := make(map[string]bool, len(ancestors)+1)
			for id := range ancestors {
				branch[id] = true
			}
			if !t.IsLoop {
				branch[t.Node.ID] = true
			}
			walk(child, branch)
		}
	}
	walk(tree, map[string]bool{})

	lines := []string{
		summaryRule,
		"FLOW EXECUTION SUMMARY",
		summaryRule,
		fmt.Sprintf("Total unique node types: %d", len(order)),
	}
	for _, nodeType := range order {
		lines = append(lines, fmt.Sprintf("  %s: %d instance(s)", nodeType, counts[nodeType]))
	}
	if len(loopIDs) > 0 {
		lines = append(lines, "", "Loop references detected:")
		for _, id := range loopIDs {
			lines = append(lines, "  - "+id)
		}
	}
	lines = append(lines, summaryRule)
	return lines
}

// FormatSummary joins the summary lines for direct printing.
func FormatSummary(tree *NodeTree) string {
	return strings.Join(SummarizeFlow(tree), "\n")
}
