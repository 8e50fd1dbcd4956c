package editor

import (
	"flowcanvas/geometry"
	"flowcanvas/graph"
)

// CutTool is a two-state gesture recognizer: idle until armed, then each
// pointer sweep marks every edge the pointer's path crosses. Marking is
// monotonic within one armed session; an edge once marked stays marked.
// Disarming emits the marked edge ids exactly once and resets the tool.
// Committing the deletion is the caller's job.
type CutTool struct {
	armed   bool
	prev    graph.Point
	hasPrev bool
	marked  []string
	seen    map[string]bool
}

// Marker style hints applied to edges crossed by the sweep. They are a
// transient visual cue, stripped again when the tool disarms, never part
// of the persisted document.
const (
	markColorKey = "color"
	markColor    = "red"
	markStyleKey = "style"
	markStyle    = "dashed"
)

// NewCutTool creates an idle cut tool.
func NewCutTool() *CutTool {
	return &CutTool{seen: make(map[string]bool)}
}

// Armed reports whether the tool is accumulating a cut path.
func (c *CutTool) Armed() bool {
	return c.armed
}

// Arm activates the tool. Arming an armed tool is a no-op.
func (c *CutTool) Arm() {
	if c.armed {
		return
	}
	c.armed = true
}

// Sweep extends the pointer path to the given point and marks every edge
// whose segment the new path segment crosses. Edges run between their
// endpoint nodes' bounding-box centers. Marked edges get a distinct style
// hint so the frontend can show them as about to be cut. Returns the ids
// newly marked by this sweep.
func (c *CutTool) Sweep(p graph.Point, g *graph.Graph) []string {
	if !c.armed {
		return nil
	}
	if !c.hasPrev {
		c.prev = p
		c.hasPrev = true
		return nil
	}

	var hit []string
	for i := range g.Edges {
		edge := &g.Edges[i]
		if c.seen[edge.ID] {
			continue
		}
		source := g.FindNode(edge.Source)
		target := g.FindNode(edge.Target)
		if source == nil || target == nil {
			continue
		}
		if !geometry.SegmentsIntersect(c.prev, p, source.Center(), target.Center()) {
			continue
		}
		c.seen[edge.ID] = true
		c.marked = append(c.marked, edge.ID)
		hit = append(hit, edge.ID)
		if edge.Style == nil {
			edge.Style = make(map[string]string)
		}
		edge.Style[markColorKey] = markColor
		edge.Style[markStyleKey] = markStyle
	}
	c.prev = p
	return hit
}

// Disarm deactivates the tool, returning the full marked list exactly once.
// Returns nil when nothing was marked. All internal state is cleared either
// way.
func (c *CutTool) Disarm() []string {
	if !c.armed {
		return nil
	}
	marked := c.marked
	c.armed = false
	c.hasPrev = false
	c.marked = nil
	c.seen = make(map[string]bool)
	if len(marked) == 0 {
		return nil
	}
	return marked
}

// Marked returns the ids marked so far in the current session.
func (c *CutTool) Marked() []string {
	return c.marked
}

// ArmCut activates the session's cut tool.
func (s *Session) ArmCut() {
	s.cut.Arm()
}

// CutArmed reports whether the session's cut tool is active.
func (s *Session) CutArmed() bool {
	return s.cut.Armed()
}

// SweepCut feeds a pointer position to the armed cut tool.
func (s *Session) SweepCut(p graph.Point) []string {
	return s.cut.Sweep(p, s.graph)
}

// CutMarked returns the edge ids marked in the current cut session.
func (s *Session) CutMarked() []string {
	return s.cut.Marked()
}

// DisarmCut deactivates the cut tool and returns the marked edge ids; the
// caller decides whether to delete them (see DeleteEdges). The marker
// styling is removed from every still-present edge either way, so a
// cancelled cut leaves no residue behind.
func (s *Session) DisarmCut() []string {
	ids := s.cut.Disarm()
	for _, id := range ids {
		edge := s.graph.FindEdge(id)
		if edge == nil {
			continue
		}
		delete(edge.Style, markColorKey)
		delete(edge.Style, markStyleKey)
		if len(edge.Style) == 0 {
			edge.Style = nil
		}
	}
	return ids
}
