// Package graph contains the fundamental types used throughout the flowcanvas engine.
package graph

import "math"

// Point represents a 2D coordinate on the canvas plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Node represents a typed, positioned unit in the graph.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Position Point          `json:"position"`
	Data     map[string]any `json:"data,omitempty"`
	Selected bool           `json:"selected,omitempty"`
	Width    float64        `json:"width,omitempty"`  // Measured size, zero until measured
	Height   float64        `json:"height,omitempty"` // Measured size, zero until measured
}

// Center returns the center of the node's bounding box.
// Unmeasured nodes (zero width/height) center on their position.
func (n Node) Center() Point {
	return Point{
		X: n.Position.X + n.Width/2,
		Y: n.Position.Y + n.Height/2,
	}
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	c := n
	if n.Data != nil {
		c.Data = cloneData(n.Data)
	}
	return c
}

// Edge represents a directed connection between two node ids.
type Edge struct {
	ID           string            `json:"id"`
	Source       string            `json:"source"`
	Target       string            `json:"target"`
	SourceHandle string            `json:"sourceHandle,omitempty"` // Named source port, if any
	Selected     bool              `json:"selected,omitempty"`
	Style        map[string]string `json:"style,omitempty"` // Visual hints (color, dash, etc.)
}

// Clone returns a deep copy of the edge.
func (e Edge) Clone() Edge {
	c := e
	if e.Style != nil {
		c.Style = make(map[string]string, len(e.Style))
		for k, v := range e.Style {
			c.Style[k] = v
		}
	}
	return c
}

// Viewport describes the visible region of the infinite plane.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom,omitempty"`
}

// Graph is the mutable node/edge collection for the active document.
type Graph struct {
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Viewport Viewport `json:"viewport,omitempty"`
}

// Clone creates a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}

	clone := &Graph{
		Nodes:    make([]Node, len(g.Nodes)),
		Edges:    make([]Edge, len(g.Edges)),
		Viewport: g.Viewport,
	}
	for i, node := range g.Nodes {
		clone.Nodes[i] = node.Clone()
	}
	for i, edge := range g.Edges {
		clone.Edges[i] = edge.Clone()
	}
	return clone
}

// cloneData deep-copies a node data map. Nested maps and slices are copied;
// scalar values are shared (they are immutable in Go).
func cloneData(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneData(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
