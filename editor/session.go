// Package editor implements the headless editing session for a flowcanvas
// document: selection-scoped mutations, the clipboard, the edge-cut tool,
// and undo history. All operations are synchronous and run on the caller's
// event loop; the session has no locking and no background writers.
package editor

import (
	"flowcanvas/graph"
	"flowcanvas/registry"

	"go.uber.org/zap"
)

// Session owns the editing state for one open document.
type Session struct {
	graph    *graph.Graph
	registry *registry.Registry

	clipboard Snapshot
	cut       *CutTool
	history   *History
	pending   *PendingDrop

	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger to the session. The default is a no-op
// logger, so library callers pay nothing.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithHistoryLimit caps the number of undo states kept.
func WithHistoryLimit(max int) Option {
	return func(s *Session) { s.history = NewHistory(max) }
}

// NewSession creates a session around an existing document. A nil graph
// starts an empty document; a nil registry falls back to the built-ins.
func NewSession(g *graph.Graph, reg *registry.Registry, opts ...Option) *Session {
	if g == nil {
		g = &graph.Graph{}
	}
	if reg == nil {
		reg = registry.Default()
	}
	s := &Session{
		graph:    g,
		registry: reg,
		cut:      NewCutTool(),
		history:  NewHistory(100),
		pending:  &PendingDrop{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	// Seed the history so the first undo returns to the loaded document.
	s.history.SaveState(s.graph)
	return s
}

// Graph returns the live document.
func (s *Session) Graph() *graph.Graph {
	return s.graph
}

// Registry returns the node-type capability registry.
func (s *Session) Registry() *registry.Registry {
	return s.registry
}

// Pending returns the palette-to-canvas drop slot.
func (s *Session) Pending() *PendingDrop {
	return s.pending
}

// checkpoint records the document state after a completed mutation.
func (s *Session) checkpoint() {
	s.history.SaveState(s.graph)
}

// Undo restores the previous document state. Returns false when there is
// nothing to undo.
func (s *Session) Undo() bool {
	g := s.history.Undo()
	if g == nil {
		return false
	}
	*s.graph = *g
	s.logger.Debug("undo", zap.Int("nodes", len(s.graph.Nodes)), zap.Int("edges", len(s.graph.Edges)))
	return true
}

// Redo re-applies an undone document state. Returns false when there is
// nothing to redo.
func (s *Session) Redo() bool {
	g := s.history.Redo()
	if g == nil {
		return false
	}
	*s.graph = *g
	return true
}
