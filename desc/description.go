package desc

// TypeDescription describes the shape of a single configuration type.
//
// Name is a human-readable label, fixed for scalars and synthesized for
// composites. Kind carries the structural payload and alone determines how
// the node is interpreted; name and doc only affect presentation.
type TypeDescription struct {
	name string
	kind TypeKind
	doc  string
}

// New constructs a description from a name, a kind and optional
// documentation. An empty doc means "no documentation".
func New(name string, kind TypeKind, doc string) TypeDescription {
	return TypeDescription{name: name, kind: kind, doc: doc}
}

// Name returns the human-readable label of the described type.
func (d TypeDescription) Name() string {
	return d.name
}

// Kind returns the structural payload of the description.
func (d TypeDescription) Kind() TypeKind {
	return d.kind
}

// Doc returns the documentation attached to the description, or the empty
// string if there is none.
func (d TypeDescription) Doc() string {
	return d.doc
}

// WithDoc returns a copy of the description with the documentation replaced.
// The receiver is left unmodified. Passing the empty string clears the doc.
func (d TypeDescription) WithDoc(doc string) TypeDescription {
	d.doc = doc
	return d
}

// Equal reports whether two descriptions are structurally equal: same name,
// same doc and recursively equal kinds.
func (d TypeDescription) Equal(other TypeDescription) bool {
	return d.name == other.name && d.doc == other.doc && kindsEqual(d.kind, other.kind)
}

// StructField is one field of a Struct kind: the field's configuration key,
// its optional documentation and the description of its value.
type StructField struct {
	Name string
	Doc  string
	Type TypeDescription
}

// EnumVariant is one variant of an Enum kind.
type EnumVariant struct {
	Name           string
	Doc            string
	Representation EnumVariantRepresentation
}
