package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a {nodes, edges, viewport} document from a JSON file.
// Edges referencing missing nodes are pruned on load.
func Load(filename string) (*Graph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse graph file %s: %w", filename, err)
	}
	g.PruneDanglingEdges()
	return &g, nil
}

// Save writes the document to a JSON file.
func Save(filename string, g *Graph) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
