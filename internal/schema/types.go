package schema

import (
	"partial-generator/internal/common"
	"partial-generator/internal/diagnostic"
)

// Shape describes the declaration shape of a source type. Only named-field
// structs are eligible for projection.
type Shape int

const (
	// ShapeNamedFields is a struct whose fields all carry names.
	ShapeNamedFields Shape = iota
	// ShapeNoFields is a struct with no fields at all.
	ShapeNoFields
	// ShapeEmbedded is a struct with at least one embedded (anonymous) field.
	ShapeEmbedded
	// ShapeNotStruct is any non-struct type (interface, alias, ...).
	ShapeNotStruct
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeNamedFields:
		return "named-field struct"
	case ShapeNoFields:
		return "field-less struct"
	case ShapeEmbedded:
		return "struct with embedded fields"
	case ShapeNotStruct:
		return "non-struct type"
	default:
		return common.UnknownStr
	}
}

// Field is one named field of a source record. The type is an opaque
// expression copied verbatim into generated output; the engine never
// interprets it.
type Field struct {
	Name string
	// Type is the field's type expression exactly as written in the source.
	Type string
	// Annotations are opaque markers (struct tag literals, backquotes
	// included) copied verbatim onto generated fields.
	Annotations []string
	// PkgRefs are the package qualifiers the type expression references,
	// sorted; the emitter uses them to assemble the generated file's imports.
	PkgRefs []string
}

// SourceRecord is the original composite type being projected. It is built
// once by the loader and only read by the engine.
type SourceRecord struct {
	Name   string
	Shape  Shape
	Fields []Field
	// Pos is the position of the type name in the source, for diagnostics.
	Pos diagnostic.Pos
}

// HasField reports whether the record declares a field with the given name.
func (r *SourceRecord) HasField(name string) bool {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return true
		}
	}

	return false
}

// FieldNames returns the field names in declaration order.
func (r *SourceRecord) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for i := range r.Fields {
		names = append(names, r.Fields[i].Name)
	}

	return names
}
