// Package registry maps node type names to their data schemas and
// capabilities. Selection operations consult it instead of hardcoding
// type names or duck-typing on data fields.
package registry

// TypeSpec describes the data schema of one node type.
type TypeSpec struct {
	Type     string         `yaml:"type" validate:"required"`
	Fields   []string       `yaml:"fields"`   // Data field names this type declares
	Defaults map[string]any `yaml:"defaults"` // Initial data for freshly dropped nodes
	Width    float64        `yaml:"width" validate:"gte=0"`
	Height   float64        `yaml:"height" validate:"gte=0"`
}

// HasField reports whether the type's data schema declares the field.
func (s TypeSpec) HasField(name string) bool {
	for _, f := range s.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// CanMute reports whether the type declares a muted field.
func (s TypeSpec) CanMute() bool {
	return s.HasField("muted")
}

// Registry holds the known node types for an editing session.
type Registry struct {
	specs map[string]TypeSpec
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{specs: make(map[string]TypeSpec)}
}

// Register adds or replaces a type spec.
func (r *Registry) Register(spec TypeSpec) {
	r.specs[spec.Type] = spec
}

// Lookup returns the spec for a type name.
func (r *Registry) Lookup(nodeType string) (TypeSpec, bool) {
	spec, ok := r.specs[nodeType]
	return spec, ok
}

// CanMute reports whether the given node type declares a muted field.
// Unknown types cannot be muted.
func (r *Registry) CanMute(nodeType string) bool {
	spec, ok := r.specs[nodeType]
	return ok && spec.CanMute()
}

// DefaultData returns a fresh copy of the initial data for a node type.
// Unknown types get an empty map.
func (r *Registry) DefaultData(nodeType string) map[string]any {
	data := make(map[string]any)
	spec, ok := r.specs[nodeType]
	if !ok {
		return data
	}
	for k, v := range spec.Defaults {
		data[k] = v
	}
	return data
}

// GroupType is the node type that owns a combined subgraph.
const GroupType = "groupNode"

// Default returns a registry preloaded with the stock node types.
func Default() *Registry {
	r := New()
	for _, spec := range []TypeSpec{
		{
			Type:     "startNode",
			Fields:   []string{"label"},
			Defaults: map[string]any{"label": "Start"},
			Width:    120, Height: 48,
		},
		{
			Type:     "moveNode",
			Fields:   []string{"label", "muted", "dx", "dy"},
			Defaults: map[string]any{"label": "Move", "muted": false, "dx": 0, "dy": 0},
			Width:    160, Height: 72,
		},
		{
			Type:     "turnNode",
			Fields:   []string{"label", "muted", "angle"},
			Defaults: map[string]any{"label": "Turn", "muted": false, "angle": 90},
			Width:    160, Height: 72,
		},
		{
			Type:     "loopNode",
			Fields:   []string{"label", "muted", "count"},
			Defaults: map[string]any{"label": "Loop", "muted": false, "count": 2},
			Width:    160, Height: 72,
		},
		{
			Type:     "waitNode",
			Fields:   []string{"label", "muted", "duration"},
			Defaults: map[string]any{"label": "Wait", "muted": false, "duration": 1},
			Width:    160, Height: 72,
		},
		{
			Type:     GroupType,
			Fields:   []string{"label", "subgraph"},
			Defaults: map[string]any{"label": "Group"},
			Width:    180, Height: 64,
		},
	} {
		r.Register(spec)
	}
	return r
}
