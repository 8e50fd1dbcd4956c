package editor

import "flowcanvas/graph"

// History manages undo/redo as a bounded stack of deep document snapshots.
// Snapshots are cloned on the way in and on the way out, so neither the
// live document nor a restored one can mutate stored history.
type History struct {
	states  []*graph.Graph
	current int // Position of the state the document currently reflects
	max     int // Maximum number of states to keep
}

// NewHistory creates a new history manager.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 50
	}
	return &History{
		states:  make([]*graph.Graph, 0, max),
		current: -1,
		max:     max,
	}
}

// SaveState records a snapshot of the document, discarding any redo tail.
func (h *History) SaveState(g *graph.Graph) {
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, g.Clone())

	// Past the cap, the oldest state falls off instead of the position
	// advancing.
	if len(h.states) > h.max {
		h.states = h.states[1:]
	} else {
		h.current++
	}
}

// CanUndo returns true if there is an earlier state to return to.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if there is a later state to re-apply.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

// Undo steps back and returns a copy of the previous state, or nil when
// already at the oldest state.
func (h *History) Undo() *graph.Graph {
	if !h.CanUndo() {
		return nil
	}
	h.current--
	return h.states[h.current].Clone()
}

// Redo steps forward and returns a copy of the next state, or nil when
// already at the newest state.
func (h *History) Redo() *graph.Graph {
	if !h.CanRedo() {
		return nil
	}
	h.current++
	return h.states[h.current].Clone()
}

// Clear drops all history.
func (h *History) Clear() {
	h.states = h.states[:0]
	h.current = -1
}

// Stats returns current position and total states.
func (h *History) Stats() (current, total int) {
	return h.current + 1, len(h.states)
}
