package analyze

import (
	"partial-generator/internal/directive"
	"partial-generator/internal/schema"
)

// AnnotatedRecord is one struct declaration carrying //partial: directives,
// together with the context the emitter needs to attach generated code to
// the same package.
type AnnotatedRecord struct {
	Record *schema.SourceRecord
	// Directives are the raw payloads in source order, positions included.
	Directives []directive.Raw
	// PkgName is the package the record is declared in; generated files
	// use the same package clause.
	PkgName string
	// PkgPath is the package's import path.
	PkgPath string
	// Dir is the directory holding the record's source file; generated
	// files are written next to it.
	Dir string
	// Imports maps local import names of the record's file to import
	// paths, for resolving the package qualifiers field types reference.
	Imports map[string]string
}
