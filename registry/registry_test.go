package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCapabilities(t *testing.T) {
	r := Default()

	tests := []struct {
		nodeType string
		canMute  bool
	}{
		{"moveNode", true},
		{"loopNode", true},
		{"waitNode", true},
		{"startNode", false},
		{GroupType, false},
		{"unknownNode", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.canMute, r.CanMute(tt.nodeType), tt.nodeType)
	}
}

func TestDefaultDataIsFreshCopy(t *testing.T) {
	r := Default()

	first := r.DefaultData("moveNode")
	first["label"] = "mutated"

	second := r.DefaultData("moveNode")
	assert.Equal(t, "Move", second["label"], "defaults must not share state between calls")

	assert.Empty(t, r.DefaultData("unknownNode"))
}

func TestLookup(t *testing.T) {
	r := Default()

	spec, ok := r.Lookup("loopNode")
	require.True(t, ok)
	assert.True(t, spec.HasField("count"))
	assert.False(t, spec.HasField("angle"))

	_, ok = r.Lookup("nope")
	assert.False(t, ok)
}

func TestLoadFileExtendsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	content := `types:
  - type: customNode
    fields: [label, muted, speed]
    defaults:
      label: Custom
      speed: 3
    width: 140
    height: 60
  - type: moveNode
    fields: [label]
    width: 100
    height: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r, err := LoadFile(path)
	require.NoError(t, err)

	assert.True(t, r.CanMute("customNode"))
	assert.Equal(t, "Custom", r.DefaultData("customNode")["label"])

	// The file entry replaces the built-in moveNode, which no longer
	// declares muted.
	assert.False(t, r.CanMute("moveNode"))

	// Untouched built-ins survive.
	assert.True(t, r.CanMute("loopNode"))
}

func TestLoadFileRejectsInvalidSpecs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	// Entry without a type name fails validation.
	require.NoError(t, os.WriteFile(path, []byte("types:\n  - fields: [label]\n"), 0644))
	_, err := LoadFile(path)
	assert.Error(t, err)

	// Empty file fails validation.
	require.NoError(t, os.WriteFile(path, []byte("types: []\n"), 0644))
	_, err = LoadFile(path)
	assert.Error(t, err)

	// Malformed YAML fails parsing.
	require.NoError(t, os.WriteFile(path, []byte("types: [:::\n"), 0644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
