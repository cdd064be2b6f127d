package plan

import (
	"partial-generator/internal/diagnostic"
	"partial-generator/internal/directive"
	"partial-generator/internal/schema"
)

// Resolve is the engine entrypoint: one record plus its raw directives in,
// one Resolved per directive out, or a single diagnostic.
//
// The pass is pure and deterministic. Any failure aborts the whole pass for
// the record — no partial output — and the Resolved slice keeps the
// directives' source order, which is the emission order.
func Resolve(rec *schema.SourceRecord, raws []directive.Raw) ([]Resolved, *diagnostic.Error) {
	if err := schema.ValidateShape(rec); err != nil {
		return nil, err
	}

	dirs, err := directive.Collect(raws)
	if err != nil {
		return nil, err
	}

	out := make([]Resolved, 0, len(dirs))

	for _, d := range dirs {
		if err := schema.ValidateDirective(rec, d); err != nil {
			return nil, err
		}

		fields := Partition(rec, d)
		target := d.TargetFor(rec.Name)
		proj, rem := synthesizeTypes(rec.Name, target, fields, d.Capabilities)

		out = append(out, Resolved{
			Record:     rec,
			Directive:  d,
			Fields:     fields,
			Projection: proj,
			Remainder:  rem,
			Ops:        synthesizeOperations(rec.Name, target),
		})
	}

	return out, nil
}
