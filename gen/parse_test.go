package gen

import (
	"strings"
	"testing"
)

const fixture = `package conf

import "net/netip"

// Server is the top level server configuration.
type Server struct {
	// Address to bind the listener to.
	Listen netip.AddrPort ` + "`json:\"listen\"`" + `
	// Worker pool size.
	Workers *uint8              ` + "`json:\"workers\"`" + `
	Tags    []string            ` + "`json:\"tags\"`" + `
	Limits  map[string][]uint32 ` + "`json:\"limits\"`" + `
	Mode    Mode                ` + "`json:\"mode\"`" + `
	hidden  int
	Skipped string ` + "`json:\"-\"`" + `
}

// Mode selects how requests are throttled.
//
//typedesc:enum tag=type
type Mode interface{ isMode() }

// Unlimited turns throttling off.
//
//typedesc:variant of=Mode
type Unlimited struct{}

//typedesc:variant of=Mode
type Limited struct {
	Max uint32 ` + "`json:\"max\"`" + `
}
`

func TestParser(t *testing.T) {
	p := NewParser("json")
	file, err := p.Parse("fixture.go", []byte(fixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("package name", func(t *testing.T) {
		if file.Package != "conf" {
			t.Errorf("Package = %q, want %q", file.Package, "conf")
		}
	})

	t.Run("struct fields in declaration order", func(t *testing.T) {
		server := findStruct(t, file, "Server")
		if server.Doc != "Server is the top level server configuration." {
			t.Errorf("Doc = %q", server.Doc)
		}

		wantNames := []string{"listen", "workers", "tags", "limits", "mode"}
		if len(server.Fields) != len(wantNames) {
			t.Fatalf("got %d fields, want %d", len(server.Fields), len(wantNames))
		}
		for i, want := range wantNames {
			if server.Fields[i].Name != want {
				t.Errorf("Fields[%d].Name = %q, want %q", i, server.Fields[i].Name, want)
			}
		}
	})

	t.Run("field documentation passes through", func(t *testing.T) {
		server := findStruct(t, file, "Server")
		if server.Fields[0].Doc != "Address to bind the listener to." {
			t.Errorf("Doc = %q", server.Fields[0].Doc)
		}
	})

	t.Run("field type mapping", func(t *testing.T) {
		server := findStruct(t, file, "Server")
		wantExprs := map[string]string{
			"listen":  "desc.Describe[desc.SocketAddr]()",
			"workers": "desc.Describe[desc.Optional[desc.Uint8]]()",
			"tags":    "desc.Describe[desc.Sequence[desc.String]]()",
			"limits":  "desc.Describe[desc.Map[desc.Sequence[desc.Uint32]]]()",
			"mode":    "ModeTypeDescription()",
		}
		for _, f := range server.Fields {
			if f.Expr != wantExprs[f.Name] {
				t.Errorf("field %s: Expr = %q, want %q", f.Name, f.Expr, wantExprs[f.Name])
			}
		}
	})

	t.Run("enum declaration", func(t *testing.T) {
		if len(file.Enums) != 1 {
			t.Fatalf("got %d enums, want 1", len(file.Enums))
		}
		mode := file.Enums[0]
		if mode.Name != "Mode" {
			t.Errorf("Name = %q, want %q", mode.Name, "Mode")
		}
		if mode.Tag != "type" {
			t.Errorf("Tag = %q, want %q", mode.Tag, "type")
		}
		if mode.Doc != "Mode selects how requests are throttled." {
			t.Errorf("Doc = %q", mode.Doc)
		}
	})

	t.Run("variants in declaration order", func(t *testing.T) {
		mode := file.Enums[0]
		if len(mode.Variants) != 2 {
			t.Fatalf("got %d variants, want 2", len(mode.Variants))
		}
		if mode.Variants[0].Name != "Unlimited" || !mode.Variants[0].Unit {
			t.Errorf("Variants[0] = %+v, want unit variant Unlimited", mode.Variants[0])
		}
		if mode.Variants[1].Name != "Limited" || mode.Variants[1].Unit {
			t.Errorf("Variants[1] = %+v, want payload variant Limited", mode.Variants[1])
		}
	})

	t.Run("unit variants get no struct of their own", func(t *testing.T) {
		for _, st := range file.Structs {
			if st.Name == "Unlimited" {
				t.Error("unit variant Unlimited should not be emitted as a struct")
			}
		}
		limited := findStruct(t, file, "Limited")
		if !limited.IsVariant {
			t.Error("Limited should be marked as a variant")
		}
	})
}

func TestParser_Errors(t *testing.T) {
	p := NewParser("json")

	t.Run("rejects recursive types", func(t *testing.T) {
		src := `package conf

type Node struct {
	Children []Tree ` + "`json:\"children\"`" + `
}

type Tree struct {
	Root *Node ` + "`json:\"root\"`" + `
}
`
		_, err := p.Parse("recursive.go", []byte(src))
		if err == nil {
			t.Fatal("expected an error for mutually recursive types")
		}
		if !strings.Contains(err.Error(), "recursive type") {
			t.Errorf("error = %v, want mention of recursion", err)
		}
	})

	t.Run("rejects self-referential types", func(t *testing.T) {
		src := `package conf

type Item struct {
	Next *Item ` + "`json:\"next\"`" + `
}
`
		if _, err := p.Parse("self.go", []byte(src)); err == nil {
			t.Fatal("expected an error for a self-referential type")
		}
	})

	t.Run("rejects sums nested in containers", func(t *testing.T) {
		src := `package conf

type Config struct {
	Modes []Mode ` + "`json:\"modes\"`" + `
}

//typedesc:enum
type Mode interface{ isMode() }

//typedesc:variant of=Mode
type On struct{}
`
		_, err := p.Parse("nested.go", []byte(src))
		if err == nil {
			t.Fatal("expected an error for a sum nested in a container")
		}
	})

	t.Run("rejects variants of unknown enums", func(t *testing.T) {
		src := `package conf

//typedesc:variant of=Missing
type Lost struct{}
`
		if _, err := p.Parse("orphan.go", []byte(src)); err == nil {
			t.Fatal("expected an error for a variant of an unknown enum")
		}
	})

	t.Run("rejects enums without variants", func(t *testing.T) {
		src := `package conf

//typedesc:enum
type Empty interface{ isEmpty() }
`
		if _, err := p.Parse("empty.go", []byte(src)); err == nil {
			t.Fatal("expected an error for an enum without variants")
		}
	})

	t.Run("rejects non-string map keys", func(t *testing.T) {
		src := `package conf

type Config struct {
	ByID map[int]string ` + "`json:\"byId\"`" + `
}
`
		if _, err := p.Parse("keys.go", []byte(src)); err == nil {
			t.Fatal("expected an error for an int map key")
		}
	})
}

func findStruct(t *testing.T, file *File, name string) Struct {
	t.Helper()
	for _, st := range file.Structs {
		if st.Name == name {
			return st
		}
	}
	t.Fatalf("struct %s not found", name)
	return Struct{}
}
