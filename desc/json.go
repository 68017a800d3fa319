package desc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The JSON shape is the contract with documentation renderers: an object
// with "name", "kind" and "doc" fields, where "kind" is an externally tagged
// union. Leaf kinds serialize as bare strings, payload kinds as single-key
// objects.

type descriptionJSON struct {
	Name string          `json:"name"`
	Kind json.RawMessage `json:"kind"`
	Doc  *string         `json:"doc"`
}

// MarshalJSON implements json.Marshaler.
func (d TypeDescription) MarshalJSON() ([]byte, error) {
	kind, err := json.Marshal(kindJSON(d.kind))
	if err != nil {
		return nil, err
	}
	out := descriptionJSON{Name: d.name, Kind: kind}
	if d.doc != "" {
		out.Doc = &d.doc
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *TypeDescription) UnmarshalJSON(data []byte) error {
	var raw descriptionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := unmarshalKind(raw.Kind)
	if err != nil {
		return err
	}
	d.name = raw.Name
	d.kind = kind
	d.doc = ""
	if raw.Doc != nil {
		d.doc = *raw.Doc
	}
	return nil
}

func kindJSON(k TypeKind) any {
	switch kk := k.(type) {
	case BoolKind:
		return "Bool"
	case IntegerKind:
		return "Integer"
	case FloatKind:
		return "Float"
	case StringKind:
		return "String"
	case WrappedKind:
		return map[string]any{"Wrapped": kk.Inner}
	case ArrayKind:
		return map[string]any{"Array": kk.Elem}
	case HashMapKind:
		return map[string]any{"HashMap": kk.Value}
	case StructKind:
		fields := make([]any, 0, len(kk.Fields))
		for _, f := range kk.Fields {
			fields = append(fields, []any{f.Name, docOrNull(f.Doc), f.Type})
		}
		return map[string]any{"Struct": fields}
	case EnumKind:
		variants := make([]any, 0, len(kk.Variants))
		for _, v := range kk.Variants {
			variants = append(variants, []any{v.Name, docOrNull(v.Doc), representationJSON(v.Representation)})
		}
		return map[string]any{"Enum": []any{taggingJSON(kk.Tagging), variants}}
	default:
		return nil
	}
}

func taggingJSON(t TypeEnumKind) any {
	switch tt := t.(type) {
	case Tagged:
		return map[string]any{"Tagged": tt.Tag}
	default:
		return "Untagged"
	}
}

func representationJSON(r EnumVariantRepresentation) any {
	switch rr := r.(type) {
	case StringVariant:
		return map[string]any{"String": rr.Tag}
	case WrappedVariant:
		return map[string]any{"Wrapped": rr.Value}
	default:
		return nil
	}
}

func docOrNull(doc string) any {
	if doc == "" {
		return nil
	}
	return doc
}

func unmarshalKind(data json.RawMessage) (TypeKind, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("missing type kind")
	}

	if trimmed[0] == '"' {
		var tag string
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return nil, err
		}
		switch tag {
		case "Bool":
			return BoolKind{}, nil
		case "Integer":
			return IntegerKind{}, nil
		case "Float":
			return FloatKind{}, nil
		case "String":
			return StringKind{}, nil
		default:
			return nil, fmt.Errorf("unknown type kind %q", tag)
		}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}
	if len(obj) != 1 {
		return nil, fmt.Errorf("type kind must have exactly one variant, got %d", len(obj))
	}

	for tag, payload := range obj {
		switch tag {
		case "Wrapped", "Array", "HashMap":
			var inner TypeDescription
			if err := json.Unmarshal(payload, &inner); err != nil {
				return nil, fmt.Errorf("decoding %s payload: %w", tag, err)
			}
			switch tag {
			case "Wrapped":
				return WrappedKind{Inner: inner}, nil
			case "Array":
				return ArrayKind{Elem: inner}, nil
			default:
				return HashMapKind{Value: inner}, nil
			}
		case "Struct":
			fields, err := unmarshalStructFields(payload)
			if err != nil {
				return nil, err
			}
			return StructKind{Fields: fields}, nil
		case "Enum":
			return unmarshalEnum(payload)
		default:
			return nil, fmt.Errorf("unknown type kind %q", tag)
		}
	}
	return nil, fmt.Errorf("missing type kind")
}

func unmarshalStructFields(data json.RawMessage) ([]StructField, error) {
	var tuples [][]json.RawMessage
	if err := json.Unmarshal(data, &tuples); err != nil {
		return nil, fmt.Errorf("decoding Struct payload: %w", err)
	}
	fields := make([]StructField, 0, len(tuples))
	for _, tuple := range tuples {
		if len(tuple) != 3 {
			return nil, fmt.Errorf("struct field must be a (name, doc, description) triple, got %d elements", len(tuple))
		}
		var f StructField
		if err := json.Unmarshal(tuple[0], &f.Name); err != nil {
			return nil, err
		}
		var doc *string
		if err := json.Unmarshal(tuple[1], &doc); err != nil {
			return nil, err
		}
		if doc != nil {
			f.Doc = *doc
		}
		if err := json.Unmarshal(tuple[2], &f.Type); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func unmarshalEnum(data json.RawMessage) (TypeKind, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("decoding Enum payload: %w", err)
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("enum payload must be a (tagging, variants) pair, got %d elements", len(parts))
	}

	tagging, err := unmarshalTagging(parts[0])
	if err != nil {
		return nil, err
	}

	var tuples [][]json.RawMessage
	if err := json.Unmarshal(parts[1], &tuples); err != nil {
		return nil, fmt.Errorf("decoding Enum variants: %w", err)
	}
	variants := make([]EnumVariant, 0, len(tuples))
	for _, tuple := range tuples {
		if len(tuple) != 3 {
			return nil, fmt.Errorf("enum variant must be a (name, doc, representation) triple, got %d elements", len(tuple))
		}
		var v EnumVariant
		if err := json.Unmarshal(tuple[0], &v.Name); err != nil {
			return nil, err
		}
		var doc *string
		if err := json.Unmarshal(tuple[1], &doc); err != nil {
			return nil, err
		}
		if doc != nil {
			v.Doc = *doc
		}
		v.Representation, err = unmarshalRepresentation(tuple[2])
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return EnumKind{Tagging: tagging, Variants: variants}, nil
}

func unmarshalTagging(data json.RawMessage) (TypeEnumKind, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var tag string
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return nil, err
		}
		if tag != "Untagged" {
			return nil, fmt.Errorf("unknown enum tagging %q", tag)
		}
		return Untagged{}, nil
	}
	var obj map[string]string
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("decoding enum tagging: %w", err)
	}
	tag, ok := obj["Tagged"]
	if !ok || len(obj) != 1 {
		return nil, fmt.Errorf("enum tagging must be \"Untagged\" or {\"Tagged\": ...}")
	}
	return Tagged{Tag: tag}, nil
}

func unmarshalRepresentation(data json.RawMessage) (EnumVariantRepresentation, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decoding variant representation: %w", err)
	}
	if len(obj) != 1 {
		return nil, fmt.Errorf("variant representation must have exactly one variant, got %d", len(obj))
	}
	if raw, ok := obj["String"]; ok {
		var tag string
		if err := json.Unmarshal(raw, &tag); err != nil {
			return nil, err
		}
		return StringVariant{Tag: tag}, nil
	}
	if raw, ok := obj["Wrapped"]; ok {
		var inner TypeDescription
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		return WrappedVariant{Value: inner}, nil
	}
	return nil, fmt.Errorf("unknown variant representation")
}
