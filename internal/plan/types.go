package plan

import (
	"partial-generator/internal/directive"
	"partial-generator/internal/schema"
)

// Classification assigns a source field to exactly one of the three
// projection classes.
//
//go:generate go tool stringer -type=Classification
type Classification int

const (
	// Included fields are copied into the projection verbatim.
	Included Classification = iota
	// Omitted fields move to the remainder and become reconstruction
	// parameters.
	Omitted
	// Optional fields are wrapped in a presence container.
	Optional
)

// ClassifiedField is one source field with its classification. The slice
// built by Partition keeps the record's declaration order, which governs the
// field order of every reconstructed full record.
type ClassifiedField struct {
	schema.Field

	Class Classification
}

// GeneratedField is one field of a synthesized type. Type is already wrapped
// for optional fields; annotations ride along verbatim.
type GeneratedField struct {
	Name        string
	Type        string
	Annotations []string
	PkgRefs     []string
	Optional    bool
}

// ProjectionType describes the synthesized projection struct.
type ProjectionType struct {
	Name string
	Doc  string
	// Fields holds included and optional fields in declaration order.
	Fields []GeneratedField
	// Capabilities are the directive's derive(...) identifiers, carried
	// opaquely for the emitter to turn into compile-time assertions.
	Capabilities []string
}

// RemainderType describes the synthesized omitted-fields struct. A nil
// *RemainderType means the remainder is the unit value struct{}.
type RemainderType struct {
	Name   string
	Doc    string
	Fields []GeneratedField
}

// Operations holds the deterministic names of the five generated
// conversion operations.
type Operations struct {
	// ToFull is the consuming reconstruction method on the projection.
	ToFull string
	// ToFullCloned is the non-consuming variant reading through a pointer.
	ToFullCloned string
	// FromFull is the full-to-projection conversion function.
	FromFull string
	// Split is the full-to-(projection, remainder) function.
	Split string
	// Mirror is the convenience split method on the source record itself.
	Mirror string
}

// Resolved is the engine's complete output for one directive: the
// classification, the synthesized types and the operation names.
type Resolved struct {
	Record    *schema.SourceRecord
	Directive directive.Directive
	// Fields is the total classification in declaration order.
	Fields     []ClassifiedField
	Projection ProjectionType
	Remainder  *RemainderType
	Ops        Operations
}

// OmittedFields returns the omitted fields in declaration order.
func (r *Resolved) OmittedFields() []ClassifiedField {
	return r.fieldsOfClass(Omitted)
}

// OptionalFields returns the optional fields in declaration order.
func (r *Resolved) OptionalFields() []ClassifiedField {
	return r.fieldsOfClass(Optional)
}

// IncludedFields returns the included fields in declaration order.
func (r *Resolved) IncludedFields() []ClassifiedField {
	return r.fieldsOfClass(Included)
}

func (r *Resolved) fieldsOfClass(c Classification) []ClassifiedField {
	var out []ClassifiedField

	for _, f := range r.Fields {
		if f.Class == c {
			out = append(out, f)
		}
	}

	return out
}
