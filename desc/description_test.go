package desc

import "testing"

func TestTypeDescription(t *testing.T) {
	t.Run("accessors return constructed values", func(t *testing.T) {
		d := New("Port", WrappedKind{Inner: Describe[Uint16]()}, "A TCP port")

		if d.Name() != "Port" {
			t.Errorf("Name() = %q, want %q", d.Name(), "Port")
		}
		if d.Doc() != "A TCP port" {
			t.Errorf("Doc() = %q, want %q", d.Doc(), "A TCP port")
		}
		if _, ok := d.Kind().(WrappedKind); !ok {
			t.Errorf("Kind() = %T, want WrappedKind", d.Kind())
		}
	})

	t.Run("WithDoc returns a copy and leaves the receiver unmodified", func(t *testing.T) {
		original := New("Integer", IntegerKind{}, "old doc")
		updated := original.WithDoc("new doc")

		if original.Doc() != "old doc" {
			t.Errorf("original Doc() = %q, want %q", original.Doc(), "old doc")
		}
		if updated.Doc() != "new doc" {
			t.Errorf("updated Doc() = %q, want %q", updated.Doc(), "new doc")
		}
		if updated.Name() != original.Name() {
			t.Errorf("updated Name() = %q, want %q", updated.Name(), original.Name())
		}
	})

	t.Run("WithDoc clears documentation with the empty string", func(t *testing.T) {
		d := New("Integer", IntegerKind{}, "doc").WithDoc("")
		if d.Doc() != "" {
			t.Errorf("Doc() = %q, want empty", d.Doc())
		}
	})
}

func TestTypeDescription_Equal(t *testing.T) {
	t.Run("equal trees compare equal", func(t *testing.T) {
		a := Describe[Map[Sequence[Map[String]]]]()
		b := Describe[Map[Sequence[Map[String]]]]()
		if !a.Equal(b) {
			t.Error("expected structurally identical trees to be equal")
		}
	})

	t.Run("doc participates in equality", func(t *testing.T) {
		a := New("Integer", IntegerKind{}, "one")
		b := New("Integer", IntegerKind{}, "two")
		if a.Equal(b) {
			t.Error("expected descriptions with different docs to differ")
		}
	})

	t.Run("kind payloads participate in equality", func(t *testing.T) {
		a := New("x", ArrayKind{Elem: Describe[Int64]()}, "")
		b := New("x", ArrayKind{Elem: Describe[Float64]()}, "")
		if a.Equal(b) {
			t.Error("expected arrays over different elements to differ")
		}
	})

	t.Run("struct fields compare in order", func(t *testing.T) {
		fields := func(first, second string) TypeKind {
			return StructKind{Fields: []StructField{
				{Name: first, Type: Describe[Bool]()},
				{Name: second, Type: Describe[Bool]()},
			}}
		}
		a := New("Config", fields("alpha", "beta"), "")
		b := New("Config", fields("beta", "alpha"), "")
		if a.Equal(b) {
			t.Error("expected field order to participate in equality")
		}
	})

	t.Run("enum tagging participates in equality", func(t *testing.T) {
		variants := []EnumVariant{{Name: "On", Representation: StringVariant{Tag: "On"}}}
		a := New("Mode", EnumKind{Tagging: Tagged{Tag: "type"}, Variants: variants}, "")
		b := New("Mode", EnumKind{Tagging: Untagged{}, Variants: variants}, "")
		if a.Equal(b) {
			t.Error("expected tagged and untagged enums to differ")
		}
	})
}
