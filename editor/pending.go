package editor

// PendingDrop is the single-slot message channel between the node palette
// and the canvas drop target: the palette sets the node type being dragged,
// the drop handler takes it. Scoped to one editing session, never global.
type PendingDrop struct {
	nodeType string
	ok       bool
}

// Set records the node type being dragged, replacing any previous value.
func (p *PendingDrop) Set(nodeType string) {
	p.nodeType = nodeType
	p.ok = true
}

// Peek returns the pending type without consuming it.
func (p *PendingDrop) Peek() (string, bool) {
	return p.nodeType, p.ok
}

// Take consumes and returns the pending type.
func (p *PendingDrop) Take() (string, bool) {
	nodeType, ok := p.nodeType, p.ok
	p.nodeType = ""
	p.ok = false
	return nodeType, ok
}

// Clear empties the slot, e.g. when a drag is cancelled.
func (p *PendingDrop) Clear() {
	p.nodeType = ""
	p.ok = false
}
