package gen

// File is the parsed model of one Go source file: the declarations the
// generator derives descriptions from.
type File struct {
	Package string
	Structs []Struct
	Enums   []Enum
}

// Struct is a record type selected for derivation. Fields are in
// declaration order.
type Struct struct {
	Name   string
	Doc    string
	Fields []Field

	// IsVariant is set when the struct is a payload variant of an Enum.
	// Unit variants (no fields) get no method of their own.
	IsVariant bool
}

// Field is one struct field: the configuration key, pass-through
// documentation and the Go expression computing the field's description.
type Field struct {
	Name string
	Doc  string

	// Expr is a desc package expression, e.g.
	// "desc.Describe[desc.Sequence[desc.Int64]]()".
	Expr string

	// refs are local type names the field's type reaches, for cycle
	// detection.
	refs []string
}

// Enum is a sum type declared via the typedesc:enum directive. Variants are
// in declaration order.
type Enum struct {
	Name     string
	Doc      string
	Tag      string // tag field name; empty means untagged
	Variants []Variant
}

// Variant is one alternative of an Enum.
type Variant struct {
	Name string
	Doc  string
	Unit bool // no payload; represented by its name alone
}
