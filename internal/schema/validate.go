package schema

import (
	"sort"
	"strings"

	"partial-generator/internal/diagnostic"
	"partial-generator/internal/directive"
)

// ValidateShape rejects records that are not named-field structs. It runs
// once per record, before any directive is considered.
func ValidateShape(r *SourceRecord) *diagnostic.Error {
	switch r.Shape {
	case ShapeNamedFields:
		if len(r.Fields) == 0 {
			return diagnostic.Errorf(diagnostic.KindUnsupportedShape, r.Pos,
				"%s has no fields to project", r.Name)
		}

		return nil

	case ShapeNoFields:
		return diagnostic.Errorf(diagnostic.KindUnsupportedShape, r.Pos,
			"%s has no fields to project", r.Name)

	case ShapeEmbedded:
		return diagnostic.Errorf(diagnostic.KindUnsupportedShape, r.Pos,
			"%s has embedded fields; projections require named fields only", r.Name)

	default:
		return diagnostic.Errorf(diagnostic.KindUnsupportedShape, r.Pos,
			"%s is a %s; projections require a named-field struct", r.Name, r.Shape)
	}
}

// ValidateDirective checks one directive's omit/optional sets against the
// record: every name must match a declared field and no name may appear in
// both sets. The conflict message enumerates every conflicting name, sorted.
func ValidateDirective(r *SourceRecord, d directive.Directive) *diagnostic.Error {
	pos := d.Pos
	if pos.IsZero() {
		pos = r.Pos
	}

	for _, name := range d.Omit {
		if !r.HasField(name) {
			return diagnostic.Errorf(diagnostic.KindUnknownField, pos,
				"%s: omit(...) references unknown field %q", r.Name, name)
		}
	}

	for _, name := range d.Optional {
		if !r.HasField(name) {
			return diagnostic.Errorf(diagnostic.KindUnknownField, pos,
				"%s: optional(...) references unknown field %q", r.Name, name)
		}
	}

	if conflicts := intersect(d.Omit, d.Optional); len(conflicts) > 0 {
		return diagnostic.Errorf(diagnostic.KindConflictingClassification, pos,
			"%s: fields classified as both omitted and optional: %s",
			r.Name, strings.Join(conflicts, ", "))
	}

	return nil
}

// intersect returns the names present in both lists, sorted and deduplicated.
func intersect(a, b []string) []string {
	inA := make(map[string]bool, len(a))
	for _, name := range a {
		inA[name] = true
	}

	seen := make(map[string]bool)

	var out []string

	for _, name := range b {
		if inA[name] && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	sort.Strings(out)

	return out
}
