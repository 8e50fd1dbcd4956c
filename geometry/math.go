// Package geometry provides spatial helpers for the flowcanvas engine.
package geometry

import "flowcanvas/graph"

// Abs returns the absolute value of a float64.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two float64s.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64s.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// BoundingBox returns the min and max corners of the bounding box around
// the given node positions. Ok is false for an empty slice.
func BoundingBox(nodes []graph.Node) (min, max graph.Point, ok bool) {
	if len(nodes) == 0 {
		return graph.Point{}, graph.Point{}, false
	}
	min = nodes[0].Position
	max = nodes[0].Position
	for _, n := range nodes[1:] {
		min.X = Min(min.X, n.Position.X)
		min.Y = Min(min.Y, n.Position.Y)
		max.X = Max(max.X, n.Position.X)
		max.Y = Max(max.Y, n.Position.Y)
	}
	return min, max, true
}

// BoundsCenter returns the center of the bounding box around the given
// node positions: the box center, not a centroid of mass.
func BoundsCenter(nodes []graph.Node) graph.Point {
	min, max, ok := BoundingBox(nodes)
	if !ok {
		return graph.Point{}
	}
	return graph.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
}
