package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"
)

const fileTemplate = `// Code generated by typedesc-gen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/matthiasbeyer/type-description/desc"
)
{{range .Structs}}
// TypeDescription implements desc.Describer for {{.Name}}.
func ({{.Name}}) TypeDescription() desc.TypeDescription {
	return desc.New({{printf "%q" .Name}}, desc.StructKind{Fields: []desc.StructField{
{{- range .Fields}}
		{Name: {{printf "%q" .Name}}, {{with .Doc}}Doc: {{printf "%q" .}}, {{end}}Type: {{.Expr}}},
{{- end}}
	}}, {{printf "%q" .Doc}})
}
{{end}}
{{- range .Enums}}
// {{.Name}}TypeDescription returns the description of the {{.Name}} sum type.
func {{.Name}}TypeDescription() desc.TypeDescription {
	return desc.New({{printf "%q" .Name}}, desc.EnumKind{
		Tagging: {{if .Tag}}desc.Tagged{Tag: {{printf "%q" .Tag}}}{{else}}desc.Untagged{}{{end}},
		Variants: []desc.EnumVariant{
{{- range .Variants}}
			{Name: {{printf "%q" .Name}}, {{with .Doc}}Doc: {{printf "%q" .}}, {{end}}Representation: {{if .Unit}}desc.StringVariant{Tag: {{printf "%q" .Name}}}{{else}}desc.WrappedVariant{Value: desc.Describe[{{.Name}}]()}{{end}}},
{{- end}}
		},
	}, {{printf "%q" .Doc}})
}
{{end}}
{{- if .EmitIndex}}
// Descriptions indexes the generated description factories by type name.
var Descriptions = map[string]func() desc.TypeDescription{
{{- range .Structs}}{{if not .IsVariant}}
	{{printf "%q" .Name}}: desc.Describe[{{.Name}}],
{{- end}}{{end}}
{{- range .Enums}}
	{{printf "%q" .Name}}: {{.Name}}TypeDescription,
{{- end}}
}
{{end}}`

// Emitter renders a parsed File into Go source implementing the
// descriptions.
type Emitter struct {
	cfg  *Config
	tmpl *template.Template
}

// NewEmitter creates an Emitter for the given configuration.
func NewEmitter(cfg *Config) *Emitter {
	return &Emitter{
		cfg:  cfg,
		tmpl: template.Must(template.New("typedesc").Parse(fileTemplate)),
	}
}

type templateData struct {
	Package   string
	Structs   []Struct
	Enums     []Enum
	EmitIndex bool
}

// Emit writes gofmt-formatted source for the selected types of file to w.
func (e *Emitter) Emit(file *File, w io.Writer) error {
	data := templateData{
		Package:   file.Package,
		Structs:   file.Structs,
		Enums:     file.Enums,
		EmitIndex: e.cfg.EmitIndex,
	}
	if len(e.cfg.Types) > 0 {
		data.Structs, data.Enums = filterTypes(file, e.cfg.Types)
	}
	if len(data.Structs) == 0 && len(data.Enums) == 0 {
		return fmt.Errorf("no types to generate for package %s", file.Package)
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	if _, err := w.Write(formatted); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// filterTypes keeps the named structs and enums. Variant structs of a kept
// enum are kept as well, because its description refers to theirs.
func filterTypes(file *File, names []string) ([]Struct, []Enum) {
	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}

	var enums []Enum
	for _, e := range file.Enums {
		if keep[e.Name] {
			enums = append(enums, e)
			for _, v := range e.Variants {
				keep[v.Name] = true
			}
		}
	}

	var structs []Struct
	for _, st := range file.Structs {
		if keep[st.Name] {
			structs = append(structs, st)
		}
	}
	return structs, enums
}
