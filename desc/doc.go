// Package desc implements the schema description model for configuration types.
//
// A configuration type describes its own shape by producing a TypeDescription
// tree: a named, documented node whose TypeKind payload is either a leaf
// (Bool, Integer, Float, String) or a composite wrapping further descriptions
// (Wrapped, Array, HashMap, Struct, Enum). Tooling consumes the tree to render
// documentation or build UI forms without ever instantiating the described
// value.
//
// # The capability
//
// Any type that can describe itself implements Describer:
//
//	type Describer interface {
//	    TypeDescription() TypeDescription
//	}
//
// Descriptions are requested statically, without a value:
//
//	d := desc.Describe[desc.Sequence[desc.Float64]]()
//
// The package implements the capability for the built-in scalar kinds
// (see Bool, String, Int64, NonZeroUint16, SocketAddr, ...) and for the
// three generic container shapes Optional, Sequence and Map. Implementations
// for user-defined structs and sum types are emitted by the typedesc-gen
// tool (see the gen package); they are expected to preserve declaration
// order of fields and variants and to pass author documentation through
// unchanged.
//
// # Building trees
//
// Construction is pure and synchronous. Every call builds a fresh tree;
// nothing is cached or shared, so concurrent callers need no coordination.
// Descriptions are immutable once built: WithDoc returns a modified copy
// and leaves its receiver untouched.
//
// # Serialization
//
// TypeDescription marshals to JSON as an object with "name", "kind" and
// "doc" fields. The kind serializes as an externally tagged union: leaf
// variants as bare strings ("Bool"), payload variants as single-key objects
// ({"Array": {...}}). UnmarshalJSON accepts the same shape, so trees can be
// exchanged with documentation renderers as plain JSON files.
package desc
