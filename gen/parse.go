package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
)

// Parser parses Go source files into the generator's model.
type Parser struct {
	fset   *token.FileSet
	tagKey string
}

// NewParser creates a Parser that reads configuration keys from the given
// struct tag key, e.g. "json" or "toml".
func NewParser(tagKey string) *Parser {
	return &Parser{
		fset:   token.NewFileSet(),
		tagKey: tagKey,
	}
}

// ParseFile parses the Go source file at path.
func (p *Parser) ParseFile(path string) (*File, error) {
	return p.parse(path, nil)
}

// Parse parses Go source held in memory. The filename is used for
// positions in error messages only.
func (p *Parser) Parse(filename string, src []byte) (*File, error) {
	return p.parse(filename, src)
}

func (p *Parser) parse(filename string, src any) (*File, error) {
	file, err := parser.ParseFile(p.fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	result := &File{Package: file.Name.Name}

	type pendingVariant struct {
		enum    string
		variant Variant
	}
	var pending []pendingVariant
	enumIndex := make(map[string]int)

	// First pass: collect enum declarations so variants can attach to
	// them regardless of relative declaration order.
	for _, spec := range typeSpecs(file) {
		if _, ok := spec.spec.Type.(*ast.InterfaceType); !ok {
			continue
		}
		dir, ok := findDirective(spec.doc, "enum")
		if !ok {
			continue
		}
		enumIndex[spec.spec.Name.Name] = len(result.Enums)
		result.Enums = append(result.Enums, Enum{
			Name: spec.spec.Name.Name,
			Doc:  docText(spec.doc),
			Tag:  dir.args["tag"],
		})
	}

	// Second pass: structs, including enum variants, in declaration order.
	for _, spec := range typeSpecs(file) {
		st, ok := spec.spec.Type.(*ast.StructType)
		if !ok {
			continue
		}
		name := spec.spec.Name.Name
		if !ast.IsExported(name) {
			continue
		}

		fields, err := p.extractFields(name, st)
		if err != nil {
			return nil, err
		}

		if dir, ok := findDirective(spec.doc, "variant"); ok {
			enumName := dir.args["of"]
			if _, known := enumIndex[enumName]; !known {
				return nil, fmt.Errorf("%s: variant %s references unknown enum %q", filename, name, enumName)
			}
			pending = append(pending, pendingVariant{
				enum: enumName,
				variant: Variant{
					Name: name,
					Doc:  docText(spec.doc),
					Unit: len(fields) == 0,
				},
			})
			if len(fields) > 0 {
				result.Structs = append(result.Structs, Struct{
					Name:      name,
					Doc:       docText(spec.doc),
					Fields:    fields,
					IsVariant: true,
				})
			}
			continue
		}

		result.Structs = append(result.Structs, Struct{
			Name:   name,
			Doc:    docText(spec.doc),
			Fields: fields,
		})
	}

	for _, pv := range pending {
		e := &result.Enums[enumIndex[pv.enum]]
		e.Variants = append(e.Variants, pv.variant)
	}
	for _, e := range result.Enums {
		if len(e.Variants) == 0 {
			return nil, fmt.Errorf("%s: enum %s has no variants", filename, e.Name)
		}
	}

	if err := resolveEnumRefs(result); err != nil {
		return nil, err
	}
	if err := checkCycles(result); err != nil {
		return nil, err
	}
	return result, nil
}

type specWithDoc struct {
	spec *ast.TypeSpec
	doc  *ast.CommentGroup
}

func typeSpecs(file *ast.File) []specWithDoc {
	var specs []specWithDoc
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			specs = append(specs, specWithDoc{spec: typeSpec, doc: doc})
		}
	}
	return specs
}

func (p *Parser) extractFields(typeName string, st *ast.StructType) ([]Field, error) {
	var fields []Field
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("%s: embedded fields are not supported", typeName)
		}

		doc := docText(field.Doc)
		if doc == "" && field.Comment != nil {
			doc = strings.TrimSpace(field.Comment.Text())
		}

		arg, refs, err := descTypeArg(field.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", typeName, err)
		}

		for _, ident := range field.Names {
			if !ast.IsExported(ident.Name) {
				continue
			}
			name := ident.Name
			if tagged, skip := p.tagName(field.Tag); skip {
				continue
			} else if tagged != "" {
				name = tagged
			}
			fields = append(fields, Field{
				Name: name,
				Doc:  doc,
				Expr: fmt.Sprintf("desc.Describe[%s]()", arg),
				refs: refs,
			})
		}
	}
	return fields, nil
}

// tagName extracts the configuration key from a struct tag. The second
// return is true when the field is explicitly excluded with "-".
func (p *Parser) tagName(tag *ast.BasicLit) (string, bool) {
	if tag == nil {
		return "", false
	}
	value := strings.Trim(tag.Value, "`")
	name := reflect.StructTag(value).Get(p.tagKey)
	if name == "" {
		return "", false
	}
	name, _, _ = strings.Cut(name, ",")
	if name == "-" {
		return "", true
	}
	return name, false
}

// scalarTypeArgs maps predeclared Go types onto the scalar registry. The
// plain int and uint map to their 64-bit counterparts.
var scalarTypeArgs = map[string]string{
	"bool":    "desc.Bool",
	"string":  "desc.String",
	"int":     "desc.Int64",
	"int8":    "desc.Int8",
	"int16":   "desc.Int16",
	"int32":   "desc.Int32",
	"int64":   "desc.Int64",
	"uint":    "desc.Uint64",
	"uint8":   "desc.Uint8",
	"uint16":  "desc.Uint16",
	"uint32":  "desc.Uint32",
	"uint64":  "desc.Uint64",
	"byte":    "desc.Uint8",
	"rune":    "desc.Int32",
	"float32": "desc.Float32",
	"float64": "desc.Float64",
}

// descTypeArg maps a field's Go type expression to the desc type argument
// describing it, along with the local type names it references.
func descTypeArg(expr ast.Expr) (string, []string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		if mapped, ok := scalarTypeArgs[t.Name]; ok {
			return mapped, nil, nil
		}
		if !ast.IsExported(t.Name) {
			return "", nil, fmt.Errorf("cannot describe unexported type %s", t.Name)
		}
		return t.Name, []string{t.Name}, nil

	case *ast.StarExpr:
		inner, refs, err := descTypeArg(t.X)
		if err != nil {
			return "", nil, err
		}
		return "desc.Optional[" + inner + "]", refs, nil

	case *ast.ArrayType:
		if t.Len != nil {
			return "", nil, fmt.Errorf("fixed-size arrays are not supported")
		}
		inner, refs, err := descTypeArg(t.Elt)
		if err != nil {
			return "", nil, err
		}
		return "desc.Sequence[" + inner + "]", refs, nil

	case *ast.MapType:
		if err := checkMapKey(t.Key); err != nil {
			return "", nil, err
		}
		inner, refs, err := descTypeArg(t.Value)
		if err != nil {
			return "", nil, err
		}
		return "desc.Map[" + inner + "]", refs, nil

	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return "", nil, fmt.Errorf("unsupported field type")
		}
		switch {
		case pkg.Name == "netip" && t.Sel.Name == "AddrPort":
			return "desc.SocketAddr", nil, nil
		case pkg.Name == "desc":
			return "desc." + t.Sel.Name, nil, nil
		default:
			return "", nil, fmt.Errorf("cannot describe %s.%s", pkg.Name, t.Sel.Name)
		}

	default:
		return "", nil, fmt.Errorf("unsupported field type %T", expr)
	}
}

// checkMapKey accepts the string-like key shapes: plain strings and
// filesystem paths. Both describe to the same HashMap kind.
func checkMapKey(expr ast.Expr) error {
	switch k := expr.(type) {
	case *ast.Ident:
		if k.Name == "string" || k.Name == "Path" {
			return nil
		}
	case *ast.SelectorExpr:
		if pkg, ok := k.X.(*ast.Ident); ok && pkg.Name == "desc" && k.Sel.Name == "Path" {
			return nil
		}
	}
	return fmt.Errorf("map keys must be string-like")
}

// resolveEnumRefs rewrites field expressions that reference a sum type.
// Sum types are interfaces and cannot implement the capability themselves;
// their descriptions come from the generated <Name>TypeDescription
// function. A sum nested inside a container has no such hook, so it is
// rejected.
func resolveEnumRefs(file *File) error {
	enums := make(map[string]bool, len(file.Enums))
	for _, e := range file.Enums {
		enums[e.Name] = true
	}

	for si, st := range file.Structs {
		for fi, f := range st.Fields {
			arg := strings.TrimSuffix(strings.TrimPrefix(f.Expr, "desc.Describe["), "]()")
			if enums[arg] {
				file.Structs[si].Fields[fi].Expr = arg + "TypeDescription()"
				continue
			}
			for _, ref := range f.refs {
				if enums[ref] {
					return fmt.Errorf("%s.%s: sum type %s cannot be nested inside a container", st.Name, f.Name, ref)
				}
			}
		}
	}
	return nil
}

type directive struct {
	name string
	args map[string]string
}

// findDirective scans a doc comment for a //typedesc:<name> line. Arguments
// follow as space-separated key=value pairs.
func findDirective(doc *ast.CommentGroup, name string) (directive, bool) {
	if doc == nil {
		return directive{}, false
	}
	for _, comment := range doc.List {
		rest, ok := strings.CutPrefix(comment.Text, "//typedesc:"+name)
		if !ok {
			continue
		}
		if rest != "" && !strings.HasPrefix(rest, " ") {
			continue
		}
		d := directive{name: name, args: make(map[string]string)}
		for _, part := range strings.Fields(rest) {
			if key, value, found := strings.Cut(part, "="); found {
				d.args[key] = value
			}
		}
		return d, true
	}
	return directive{}, false
}

// docText returns the documentation text of a comment group with directive
// lines removed.
func docText(doc *ast.CommentGroup) string {
	return strings.TrimSpace(doc.Text())
}
