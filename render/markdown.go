// Package render turns TypeDescription trees into presentation formats:
// Markdown for human-readable documentation and indented JSON for tooling.
// It also reads and writes directories of JSON schema files, the exchange
// format between generated code and the documentation preview server.
package render

import (
	"fmt"
	"strings"

	"github.com/matthiasbeyer/type-description/desc"
)

// Markdown renders a description tree as a Markdown document: a heading,
// the documentation paragraph, and one nested bullet per node.
func Markdown(d desc.TypeDescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Name())
	if d.Doc() != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Doc())
	}
	writeKind(&b, d.Kind(), 0)
	return b.String()
}

func writeKind(b *strings.Builder, k desc.TypeKind, depth int) {
	indent := strings.Repeat("    ", depth)
	switch kk := k.(type) {
	case desc.BoolKind:
		fmt.Fprintf(b, "%s- boolean\n", indent)
	case desc.IntegerKind:
		fmt.Fprintf(b, "%s- integer\n", indent)
	case desc.FloatKind:
		fmt.Fprintf(b, "%s- float\n", indent)
	case desc.StringKind:
		fmt.Fprintf(b, "%s- string\n", indent)
	case desc.WrappedKind:
		fmt.Fprintf(b, "%s- wraps %s\n", indent, label(kk.Inner))
		writeKind(b, kk.Inner.Kind(), depth+1)
	case desc.ArrayKind:
		fmt.Fprintf(b, "%s- array of %s\n", indent, label(kk.Elem))
		writeKind(b, kk.Elem.Kind(), depth+1)
	case desc.HashMapKind:
		fmt.Fprintf(b, "%s- table of %s\n", indent, label(kk.Value))
		writeKind(b, kk.Value.Kind(), depth+1)
	case desc.StructKind:
		fmt.Fprintf(b, "%s- struct\n", indent)
		for _, f := range kk.Fields {
			fmt.Fprintf(b, "%s    - `%s`%s\n", indent, f.Name, docSuffix(f.Doc))
			writeKind(b, f.Type.Kind(), depth+2)
		}
	case desc.EnumKind:
		fmt.Fprintf(b, "%s- one of%s\n", indent, taggingSuffix(kk.Tagging))
		for _, v := range kk.Variants {
			fmt.Fprintf(b, "%s    - `%s`%s\n", indent, v.Name, docSuffix(v.Doc))
			switch r := v.Representation.(type) {
			case desc.StringVariant:
				fmt.Fprintf(b, "%s        - the literal %q\n", indent, r.Tag)
			case desc.WrappedVariant:
				writeKind(b, r.Value.Kind(), depth+2)
			}
		}
	}
}

func label(d desc.TypeDescription) string {
	return fmt.Sprintf("'%s'", d.Name())
}

func docSuffix(doc string) string {
	if doc == "" {
		return ""
	}
	return ": " + doc
}

func taggingSuffix(t desc.TypeEnumKind) string {
	if tagged, ok := t.(desc.Tagged); ok {
		return fmt.Sprintf(", selected by the `%s` field", tagged.Tag)
	}
	return ""
}
