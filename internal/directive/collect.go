package directive

import (
	"partial-generator/internal/diagnostic"
)

// Raw is one unparsed directive payload with the source position where the
// payload begins.
type Raw struct {
	Text string
	Pos  diagnostic.Pos
}

// Collect parses every directive attached to a record, in source order.
//
// An empty input produces exactly one fully-defaulted Directive. The first
// parse error aborts collection; later payloads are not parsed, so a failing
// pass surfaces a single unambiguous diagnostic instead of a cascade.
func Collect(raws []Raw) ([]Directive, *diagnostic.Error) {
	if len(raws) == 0 {
		return []Directive{{}}, nil
	}

	out := make([]Directive, 0, len(raws))

	for _, raw := range raws {
		d, err := Parse(raw.Text)
		if err != nil {
			return nil, err.At(raw.Pos)
		}

		d.Pos = raw.Pos
		out = append(out, d)
	}

	return out, nil
}
