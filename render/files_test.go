package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matthiasbeyer/type-description/desc"
	"github.com/matthiasbeyer/type-description/registry"
)

func TestJSON(t *testing.T) {
	data, err := JSON(desc.Describe[desc.Bool]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"name": "Boolean"`) {
		t.Errorf("output missing name field:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestExportAndLoadDir(t *testing.T) {
	t.Run("roundtrips registered schemas", func(t *testing.T) {
		reg := registry.New()
		reg.MustRegister("Port", desc.Describe[desc.Uint16])
		reg.MustRegister("Limits", desc.Describe[desc.Map[desc.Sequence[desc.NonZeroUint32]]])

		dir := t.TempDir()
		if err := ExportDir(reg, dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		schemas, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(schemas) != 2 {
			t.Fatalf("loaded %d schemas, want 2", len(schemas))
		}
		if !schemas["Port"].Equal(desc.Describe[desc.Uint16]()) {
			t.Error("Port schema does not roundtrip")
		}
		if !schemas["Limits"].Equal(desc.Describe[desc.Map[desc.Sequence[desc.NonZeroUint32]]]()) {
			t.Error("Limits schema does not roundtrip")
		}
	})

	t.Run("ignores non-json files", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("notes"), 0o644); err != nil {
			t.Fatal(err)
		}
		schemas, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(schemas) != 0 {
			t.Errorf("loaded %d schemas, want 0", len(schemas))
		}
	})

	t.Run("fails on malformed schema files", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "Broken.json"), []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadDir(dir); err == nil {
			t.Fatal("expected an error for malformed JSON")
		}
	})
}
