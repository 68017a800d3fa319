// Package gen derives TypeDescription implementations from Go source.
//
// The generator plays the role the derive macro plays in other ecosystems:
// it parses a package's source with go/ast, extracts struct declarations,
// field order, documentation comments and tags, and emits one
// TypeDescription method per type. Declaration order and author
// documentation pass through to the emitted descriptions unchanged.
//
// # Structs
//
// Every exported struct type selected by the configuration gets a method:
//
//	type Server struct {
//	    // Address to bind the listener to.
//	    Listen netip.AddrPort `json:"listen"`
//	    Workers *uint8        `json:"workers"`
//	}
//
// Field types map onto the description model: predeclared scalars to the
// scalar types in the desc package, pointers to Optional, slices to
// Sequence, string-keyed maps to Map, and named local types to their own
// recursively-computed descriptions.
//
// # Sum types
//
// Go has no native sum types, so sums are declared as a sealed interface
// carrying a typedesc:enum directive, with variant structs marked by
// typedesc:variant directives:
//
//	//typedesc:enum tag=type
//	type Mode interface{ isMode() }
//
//	// Run without limits.
//	//typedesc:variant of=Mode
//	type Unlimited struct{}
//
//	//typedesc:variant of=Mode
//	type Limited struct {
//	    Max uint32 `json:"max"`
//	}
//
// Variant order follows declaration order. A variant struct without fields
// becomes a String representation using the variant's own name as the tag;
// one with fields becomes a Wrapped representation over its own
// description. The tag argument selects internal tagging by that field
// name; without it the enum is untagged.
//
// # Recursion
//
// The description model is a finite tree, so a type that reaches itself
// through its own fields has no description. The generator detects such
// cycles and reports them as errors instead of emitting code that would
// recurse forever.
package gen
