package geometry

import "flowcanvas/graph"

// FindClosestNode returns the node whose bounding-box center is nearest to
// the given point, or nil for an empty slice. Ties go to the earlier node
// in input order. Unmeasured nodes are treated as zero-sized.
func FindClosestNode(p graph.Point, nodes []graph.Node) *graph.Node {
	var closest *graph.Node
	best := 0.0
	for i := range nodes {
		d := p.DistanceTo(nodes[i].Center())
		if closest == nil || d < best {
			closest = &nodes[i]
			best = d
		}
	}
	return closest
}

// SegmentsIntersect reports whether the closed segments p1-p2 and q1-q2
// intersect, including touching at an endpoint and collinear overlap.
func SegmentsIntersect(p1, p2, q1, q2 graph.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear cases: an endpoint lying on the other segment.
	if d1 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2) {
		return true
	}
	return false
}

// cross returns the z-component of (b-a) x (c-a).
func cross(a, b, c graph.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c, known to be collinear with a-b, lies on the
// segment a-b.
func onSegment(a, b, c graph.Point) bool {
	return Min(a.X, b.X) <= c.X && c.X <= Max(a.X, b.X) &&
		Min(a.Y, b.Y) <= c.Y && c.Y <= Max(a.Y, b.Y)
}
