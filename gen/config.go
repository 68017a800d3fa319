package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls what the generator derives and how.
type Config struct {
	// TagKey is the struct tag key configuration field names are read
	// from. Defaults to "json".
	TagKey string `yaml:"tagKey"`

	// Output is the path the generated file is written to. Empty means
	// stdout.
	Output string `yaml:"output"`

	// Types restricts derivation to the named types. Variant structs of a
	// selected enum are always included. Empty means all.
	Types []string `yaml:"types"`

	// EmitIndex adds a Descriptions map indexing the generated factories
	// by type name, for registry wiring.
	EmitIndex bool `yaml:"emitIndex"`
}

// DefaultConfig returns the generator defaults.
func DefaultConfig() *Config {
	return &Config{TagKey: "json"}
}

// LoadConfig reads a YAML config file and fills unset fields with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.TagKey == "" {
		cfg.TagKey = "json"
	}
	return cfg, nil
}
