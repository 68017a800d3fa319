// Package typedesc lets a configuration type describe its own shape.
//
// A type implementing the Describer capability produces a TypeDescription
// tree: scalars and refinements at the leaves, sequences, tables, records
// and tagged sums as composites. Tooling renders the tree into
// documentation or UI forms without ever instantiating the value.
//
// Basic usage:
//
//	type Server struct {
//	    // Address to bind the listener to.
//	    Listen netip.AddrPort `json:"listen"`
//	    Workers *uint8        `json:"workers"`
//	}
//
//	//go:generate typedesc-gen -input config.go -output config_desc.go
//
//	d := typedesc.Describe[Server]()
//	fmt.Println(render.Markdown(d))
//
// This package re-exports the core model from the desc package for
// convenience. The gen package and the typedesc-gen command implement
// derivation for user-defined types; render and preview turn trees into
// documentation.
package typedesc

import (
	"github.com/matthiasbeyer/type-description/desc"
)

// Core model.

// TypeDescription is a named, documented node in a schema tree.
type TypeDescription = desc.TypeDescription

// TypeKind is the structural payload of a TypeDescription.
type TypeKind = desc.TypeKind

// Leaf and composite kinds.
type (
	BoolKind    = desc.BoolKind
	IntegerKind = desc.IntegerKind
	FloatKind   = desc.FloatKind
	StringKind  = desc.StringKind
	WrappedKind = desc.WrappedKind
	ArrayKind   = desc.ArrayKind
	HashMapKind = desc.HashMapKind
	StructKind  = desc.StructKind
	EnumKind    = desc.EnumKind
)

// Struct and enum building blocks.
type (
	StructField               = desc.StructField
	EnumVariant               = desc.EnumVariant
	TypeEnumKind              = desc.TypeEnumKind
	Tagged                    = desc.Tagged
	Untagged                  = desc.Untagged
	EnumVariantRepresentation = desc.EnumVariantRepresentation
	StringVariant             = desc.StringVariant
	WrappedVariant            = desc.WrappedVariant
)

// Describer is the capability a type implements to describe itself.
type Describer = desc.Describer

// New constructs a description. See desc.New.
func New(name string, kind TypeKind, doc string) TypeDescription {
	return desc.New(name, kind, doc)
}

// Describe returns the description of T.
func Describe[T Describer]() TypeDescription {
	return desc.Describe[T]()
}

// Container shapes.
type (
	Optional[T Describer] = desc.Optional[T]
	Sequence[T Describer] = desc.Sequence[T]
	Map[T Describer]      = desc.Map[T]
	PathMap[T Describer]  = desc.PathMap[T]
)

// Scalar types.
type (
	Bool   = desc.Bool
	String = desc.String

	Int8  = desc.Int8
	Int16 = desc.Int16
	Int32 = desc.Int32
	Int64 = desc.Int64

	Uint8  = desc.Uint8
	Uint16 = desc.Uint16
	Uint32 = desc.Uint32
	Uint64 = desc.Uint64

	NonZeroInt8   = desc.NonZeroInt8
	NonZeroInt16  = desc.NonZeroInt16
	NonZeroInt32  = desc.NonZeroInt32
	NonZeroInt64  = desc.NonZeroInt64
	NonZeroUint8  = desc.NonZeroUint8
	NonZeroUint16 = desc.NonZeroUint16
	NonZeroUint32 = desc.NonZeroUint32
	NonZeroUint64 = desc.NonZeroUint64

	Float32 = desc.Float32
	Float64 = desc.Float64

	SocketAddr   = desc.SocketAddr
	SocketAddrV4 = desc.SocketAddrV4
	SocketAddrV6 = desc.SocketAddrV6
)
