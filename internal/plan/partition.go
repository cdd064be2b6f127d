package plan

import (
	"partial-generator/internal/directive"
	"partial-generator/internal/schema"
)

// Partition classifies every field of the record, in declaration order:
// omitted beats optional beats included. The result is total — exactly one
// class per field — because ValidateDirective has already rejected
// omit/optional overlaps.
func Partition(rec *schema.SourceRecord, d directive.Directive) []ClassifiedField {
	omit := toSet(d.Omit)
	optional := toSet(d.Optional)

	out := make([]ClassifiedField, 0, len(rec.Fields))

	for _, f := range rec.Fields {
		class := Included

		switch {
		case omit[f.Name]:
			class = Omitted
		case optional[f.Name]:
			class = Optional
		}

		out = append(out, ClassifiedField{Field: f, Class: class})
	}

	return out
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}

	return set
}
