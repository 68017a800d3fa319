package desc

// TypeKind is the structural payload of a TypeDescription. The variant set
// is closed: Bool, Integer, Float and String are leaves, the rest wrap
// further descriptions.
type TypeKind interface {
	isTypeKind()
}

// BoolKind represents a boolean true/false value.
type BoolKind struct{}

// IntegerKind represents a whole number. Values are bounded by the 64-bit
// signed integer range.
type IntegerKind struct{}

// FloatKind represents an IEEE 754 double precision number. Whole numbers
// are accepted and promoted.
type FloatKind struct{}

// StringKind represents UTF-8 text.
type StringKind struct{}

// WrappedKind is a refinement over another description: the same data with
// a narrower meaning, such as a port number stored as a 16-bit integer.
type WrappedKind struct {
	Inner TypeDescription
}

// ArrayKind is a homogeneous ordered sequence of the element description.
type ArrayKind struct {
	Elem TypeDescription
}

// HashMapKind is a string-keyed homogeneous map. Keys are always
// string-like, so only the value description is carried.
type HashMapKind struct {
	Value TypeDescription
}

// StructKind is a fixed heterogeneous record. Field order matches the
// declaration order of the described type.
type StructKind struct {
	Fields []StructField
}

// EnumKind is a tagged sum type. Variant order matches the declaration
// order of the described type.
type EnumKind struct {
	Tagging  TypeEnumKind
	Variants []EnumVariant
}

func (BoolKind) isTypeKind()    {}
func (IntegerKind) isTypeKind() {}
func (FloatKind) isTypeKind()   {}
func (StringKind) isTypeKind()  {}
func (WrappedKind) isTypeKind() {}
func (ArrayKind) isTypeKind()   {}
func (HashMapKind) isTypeKind() {}
func (StructKind) isTypeKind()  {}
func (EnumKind) isTypeKind()    {}

// TypeEnumKind selects the wire representation strategy of an Enum.
type TypeEnumKind interface {
	isTypeEnumKind()
}

// Tagged is an internally tagged representation: the variant is selected by
// the value of the named tag field.
type Tagged struct {
	Tag string
}

// Untagged means the variant is inferred from the shape of the value alone.
type Untagged struct{}

func (Tagged) isTypeEnumKind()   {}
func (Untagged) isTypeEnumKind() {}

// EnumVariantRepresentation describes how a single enum variant appears on
// the wire.
type EnumVariantRepresentation interface {
	isEnumVariantRepresentation()
}

// StringVariant represents a variant purely by its tag literal. Unit
// variants use their own name as the tag.
type StringVariant struct {
	Tag string
}

// WrappedVariant represents a variant carrying a value of the wrapped shape.
type WrappedVariant struct {
	Value TypeDescription
}

func (StringVariant) isEnumVariantRepresentation()  {}
func (WrappedVariant) isEnumVariantRepresentation() {}

func kindsEqual(a, b TypeKind) bool {
	switch ka := a.(type) {
	case BoolKind, IntegerKind, FloatKind, StringKind:
		return a == b
	case WrappedKind:
		kb, ok := b.(WrappedKind)
		return ok && ka.Inner.Equal(kb.Inner)
	case ArrayKind:
		kb, ok := b.(ArrayKind)
		return ok && ka.Elem.Equal(kb.Elem)
	case HashMapKind:
		kb, ok := b.(HashMapKind)
		return ok && ka.Value.Equal(kb.Value)
	case StructKind:
		kb, ok := b.(StructKind)
		if !ok || len(ka.Fields) != len(kb.Fields) {
			return false
		}
		for i, f := range ka.Fields {
			g := kb.Fields[i]
			if f.Name != g.Name || f.Doc != g.Doc || !f.Type.Equal(g.Type) {
				return false
			}
		}
		return true
	case EnumKind:
		kb, ok := b.(EnumKind)
		if !ok || ka.Tagging != kb.Tagging || len(ka.Variants) != len(kb.Variants) {
			return false
		}
		for i, v := range ka.Variants {
			w := kb.Variants[i]
			if v.Name != w.Name || v.Doc != w.Doc || !representationsEqual(v.Representation, w.Representation) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func representationsEqual(a, b EnumVariantRepresentation) bool {
	switch ra := a.(type) {
	case StringVariant:
		rb, ok := b.(StringVariant)
		return ok && ra.Tag == rb.Tag
	case WrappedVariant:
		rb, ok := b.(WrappedVariant)
		return ok && ra.Value.Equal(rb.Value)
	default:
		return false
	}
}
