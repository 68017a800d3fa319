package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matthiasbeyer/type-description/desc"
	"github.com/matthiasbeyer/type-description/registry"
)

// JSON renders a description tree as indented JSON with a trailing newline.
func JSON(d desc.TypeDescription) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding description: %w", err)
	}
	return append(data, '\n'), nil
}

// ExportDir writes one <name>.json schema file per registered type into
// dir, creating it if needed.
func ExportDir(r *registry.Registry, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating schema directory: %w", err)
	}
	for _, name := range r.Names() {
		d, err := r.Describe(name)
		if err != nil {
			return err
		}
		data, err := JSON(d)
		if err != nil {
			return fmt.Errorf("encoding schema %s: %w", name, err)
		}
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing schema %s: %w", name, err)
		}
	}
	return nil
}

// LoadDir reads every *.json schema file in dir, keyed by file name without
// the extension.
func LoadDir(dir string) (map[string]desc.TypeDescription, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema directory: %w", err)
	}

	schemas := make(map[string]desc.TypeDescription)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading schema file %s: %w", entry.Name(), err)
		}
		var d desc.TypeDescription
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decoding schema file %s: %w", entry.Name(), err)
		}
		schemas[strings.TrimSuffix(entry.Name(), ".json")] = d
	}
	return schemas, nil
}
