package registry

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// configFile is the YAML shape of a registry file:
//
//	types:
//	  - type: moveNode
//	    fields: [label, muted, dx, dy]
//	    defaults:
//	      label: Move
//	    width: 160
//	    height: 72
type configFile struct {
	Types []TypeSpec `yaml:"types" validate:"required,min=1,dive"`
}

// LoadFile reads node type specs from a YAML file and returns a registry
// containing them on top of the built-in defaults. A file entry for a
// built-in type replaces it.
func LoadFile(filename string) (*Registry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse registry file %s: %w", filename, err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid registry file %s: %w", filename, err)
	}

	r := Default()
	for _, spec := range cfg.Types {
		r.Register(spec)
	}
	return r, nil
}
